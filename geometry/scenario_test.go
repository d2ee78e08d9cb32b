package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/porenet/geometry"
	"github.com/katalvlaran/porenet/network"
	"github.com/katalvlaran/porenet/props"
)

// TestTrimOccluded_CubicScenario runs the canonical occlusion scenario: a
// 5×5×5 unit lattice with a full-coverage subdomain carrying "throat.area",
// where zeroing the area of every throat incident to pore 0 and trimming
// occluded throats removes those throats and the now-isolated pore 0.
func TestTrimOccluded_CubicScenario(t *testing.T) {
	net, err := network.NewCubic([3]int{5, 5, 5}, 1.0)
	require.NoError(t, err)
	geom, err := geometry.New(net, "test_geom", net.Pores(), net.Throats())
	require.NoError(t, err)

	numPores, numThroats := net.NumPores(), net.NumThroats()
	require.Equal(t, 125, numPores)
	require.Equal(t, 300, numThroats)

	// Subdomain-held throat area, nonzero everywhere first.
	area := props.NewArray(geom.NumThroats(), 1)
	area.Fill(1.0)
	incident, err := net.FindNeighborThroats(0)
	require.NoError(t, err)
	for _, lt := range geom.MapThroats(incident, geometry.Global).Target {
		require.NoError(t, area.SetRow(lt, 0.0))
	}
	require.NoError(t, geom.Props().Set("throat.area", area))

	require.NoError(t, net.TrimOccludedThroats())

	assert.Equal(t, numPores-1, net.NumPores())
	assert.Equal(t, numThroats-len(incident), net.NumThroats())
	assert.True(t, net.CheckHealth().OK())

	// The subdomain followed the renumbering: it lost the same entities.
	assert.Equal(t, numPores-1, geom.NumPores())
	assert.Equal(t, numThroats-len(incident), geom.NumThroats())

	// The corner pore's neighbors survived: each kept its other throats.
	for _, c := range net.Conns() {
		assert.Less(t, c[0], net.NumPores())
		assert.Less(t, c[1], net.NumPores())
	}
}
