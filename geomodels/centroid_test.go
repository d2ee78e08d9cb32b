package geomodels_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/porenet/geometry"
	"github.com/katalvlaran/porenet/geomodels"
	"github.com/katalvlaran/porenet/network"
	"github.com/katalvlaran/porenet/props"
)

// chainWithGeometry builds the chain 0-1-2 with a full-coverage subdomain.
func chainWithGeometry(t *testing.T) (*network.Network, *geometry.Geometry) {
	t.Helper()
	net, err := network.New(
		[][3]float64{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}},
		[][2]int{{0, 1}, {1, 2}},
	)
	require.NoError(t, err)
	geom, err := geometry.New(net, "all", net.Pores(), net.Throats())
	require.NoError(t, err)

	return net, geom
}

// TestPoreCentroid_SingleThroat verifies a pore with exactly one nonzero
// incident centroid copies it exactly.
func TestPoreCentroid_SingleThroat(t *testing.T) {
	net, geom := chainWithGeometry(t)
	verts := props.NewVectorArray(geom.NumThroats())
	require.NoError(t, verts.SetRow(0, 0.5, 0.25, -1))
	// Throat 1 stays at the zero sentinel.
	require.NoError(t, geom.Props().Set("throat.centroid", verts))

	out, err := geomodels.PoreCentroid(net, geom)
	require.NoError(t, err)
	require.Len(t, out, 3)

	// Pore 0's only incident throat carries v; the output is exactly v.
	assert.Equal(t, [3]float64{0.5, 0.25, -1}, out[0])
	// Pore 1 sees one nonzero and one zero-sentinel centroid: the zero row
	// is skipped, not averaged in.
	assert.Equal(t, [3]float64{0.5, 0.25, -1}, out[1])
	// Pore 2's only centroid is the sentinel: output stays zero.
	assert.Equal(t, [3]float64{0, 0, 0}, out[2])
}

// TestPoreCentroid_Mean verifies column-wise averaging over multiple
// incident throats.
func TestPoreCentroid_Mean(t *testing.T) {
	net, geom := chainWithGeometry(t)
	verts := props.NewVectorArray(geom.NumThroats())
	require.NoError(t, verts.SetRow(0, 1, 2, 3))
	require.NoError(t, verts.SetRow(1, 3, 4, 5))
	require.NoError(t, geom.Props().Set("throat.centroid", verts))

	out, err := geomodels.PoreCentroid(net, geom)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{2, 3, 4}, out[1], "pore 1 averages both throats")
}

// TestPoreCentroid_AllZero verifies the all-sentinel case stays zero
// without NaN or error.
func TestPoreCentroid_AllZero(t *testing.T) {
	net, geom := chainWithGeometry(t)
	require.NoError(t, geom.Props().Set("throat.centroid", props.NewVectorArray(geom.NumThroats())))

	out, err := geomodels.PoreCentroid(net, geom)
	require.NoError(t, err)
	for p, c := range out {
		assert.Equal(t, [3]float64{0, 0, 0}, c, "pore %d", p)
	}
}

// TestPoreCentroid_SubdomainRestriction verifies throats outside the
// subdomain are dropped even when incident in the network.
func TestPoreCentroid_SubdomainRestriction(t *testing.T) {
	net, err := network.New(
		[][3]float64{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}},
		[][2]int{{0, 1}, {1, 2}},
	)
	require.NoError(t, err)
	// Only throat 0 belongs to the subdomain.
	geom, err := geometry.New(net, "partial", net.Pores(), []int{0})
	require.NoError(t, err)
	verts := props.NewVectorArray(1)
	require.NoError(t, verts.SetRow(0, 9, 9, 9))
	require.NoError(t, geom.Props().Set("throat.centroid", verts))

	out, err := geomodels.PoreCentroid(net, geom)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{9, 9, 9}, out[1], "pore 1 sees only the held throat")
	assert.Equal(t, [3]float64{0, 0, 0}, out[2], "pore 2's incident throat is outside the subdomain")
}

// TestPoreCentroid_Errors verifies argument and property validation.
func TestPoreCentroid_Errors(t *testing.T) {
	net, geom := chainWithGeometry(t)

	_, err := geomodels.PoreCentroid(nil, geom)
	assert.ErrorIs(t, err, geomodels.ErrNilNetwork)
	_, err = geomodels.PoreCentroid(net, nil)
	assert.ErrorIs(t, err, geomodels.ErrNilGeometry)

	// Missing source property is an error for this pass: no fallback.
	_, err = geomodels.PoreCentroid(net, geom)
	assert.ErrorIs(t, err, props.ErrKeyNotFound)

	require.NoError(t, geom.Props().Set("throat.width1", props.NewArray(geom.NumThroats(), 1)))
	_, err = geomodels.PoreCentroid(net, geom, geomodels.WithCentroidSource("throat.width1"))
	assert.ErrorIs(t, err, geomodels.ErrVectorProperty)
}
