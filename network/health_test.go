package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/porenet/network"
)

// TestCheckHealth_Clean verifies a fresh lattice reports no findings.
func TestCheckHealth_Clean(t *testing.T) {
	net, err := network.NewCubic([3]int{3, 3, 3}, 1.0)
	require.NoError(t, err)
	assert.True(t, net.CheckHealth().OK())
}

// TestCheckHealth_Findings verifies self-loop and duplicate detection.
func TestCheckHealth_Findings(t *testing.T) {
	net, err := network.New(
		[][3]float64{{0, 0, 0}, {1, 0, 0}},
		[][2]int{{0, 1}, {1, 0}, {1, 1}},
	)
	require.NoError(t, err)

	h := net.CheckHealth()
	assert.False(t, h.OK())
	assert.Empty(t, h.IsolatedPores)
	assert.Equal(t, []int{1}, h.DuplicateThroats, "reversed pair duplicates throat 0")
	assert.Equal(t, []int{2}, h.SelfLoopThroats)
}
