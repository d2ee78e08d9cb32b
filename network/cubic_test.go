package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/porenet/network"
)

// TestNewCubic_Counts verifies entity counts of regular lattices.
func TestNewCubic_Counts(t *testing.T) {
	cases := []struct {
		name    string
		shape   [3]int
		pores   int
		throats int
	}{
		{"Single", [3]int{1, 1, 1}, 1, 0},
		{"Line", [3]int{4, 1, 1}, 4, 3},
		{"Plane", [3]int{3, 3, 1}, 9, 12},
		{"Cube555", [3]int{5, 5, 5}, 125, 300},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			net, err := network.NewCubic(tc.shape, 1.0)
			require.NoError(t, err)
			assert.Equal(t, tc.pores, net.NumPores())
			assert.Equal(t, tc.throats, net.NumThroats())
		})
	}
}

// TestNewCubic_Errors verifies parameter validation.
func TestNewCubic_Errors(t *testing.T) {
	_, err := network.NewCubic([3]int{0, 5, 5}, 1.0)
	assert.ErrorIs(t, err, network.ErrCubicShape)
	_, err = network.NewCubic([3]int{5, 5, 5}, 0)
	assert.ErrorIs(t, err, network.ErrCubicSpacing)
}

// TestNewCubic_CoordsAndNeighbors verifies the corner pore's coordinates
// and incidence on a spacing-2 lattice.
func TestNewCubic_CoordsAndNeighbors(t *testing.T) {
	net, err := network.NewCubic([3]int{3, 3, 3}, 2.0)
	require.NoError(t, err)

	coords, ok := net.Props().Get(network.KeyCoords)
	require.True(t, ok)
	assert.Equal(t, []float64{0, 0, 0}, coords.Row(0))
	assert.Equal(t, 27, coords.Rows())

	// Pore 0 is the origin corner: exactly three incident throats,
	// neighbors at +x, +y, +z lattice steps.
	ts, err := net.FindNeighborThroats(0)
	require.NoError(t, err)
	assert.Len(t, ts, 3)

	ps, err := net.FindNeighborPores(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 9}, ps)

	// An interior pore touches six throats.
	center := 13 // (1,1,1) in row-major 3×3×3
	ts, err = net.FindNeighborThroats(center)
	require.NoError(t, err)
	assert.Len(t, ts, 6)
}

// TestNeighborQueries_Range verifies out-of-range pore ids are rejected.
func TestNeighborQueries_Range(t *testing.T) {
	net, err := network.NewCubic([3]int{2, 2, 2}, 1.0)
	require.NoError(t, err)

	_, err = net.FindNeighborThroats(8)
	assert.ErrorIs(t, err, network.ErrPoreIndex)
	_, err = net.FindNeighborPores(-1)
	assert.ErrorIs(t, err, network.ErrPoreIndex)
	_, err = net.ThroatConns(99)
	assert.ErrorIs(t, err, network.ErrThroatIndex)
}

// TestNew_ConnsValidation verifies construction rejects dangling conns.
func TestNew_ConnsValidation(t *testing.T) {
	coords := [][3]float64{{0, 0, 0}, {1, 0, 0}}

	_, err := network.New(nil, nil)
	assert.ErrorIs(t, err, network.ErrNoPores)

	_, err = network.New(coords, [][2]int{{0, 2}})
	assert.ErrorIs(t, err, network.ErrThroatConns)

	net, err := network.New(coords, [][2]int{{0, 1}})
	require.NoError(t, err)
	conns, err := net.ThroatConns(0)
	require.NoError(t, err)
	assert.Equal(t, [2]int{0, 1}, conns)
}
