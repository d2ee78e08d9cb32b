// Package geomodels: property keys, defaults, sentinel errors, and small
// vector helpers shared by the reduction passes.
package geomodels

import (
	"errors"
	"math"

	"github.com/katalvlaran/porenet/props"
)

// Property keys consumed by the reducers.
const (
	// DefaultCentroidKey is the vector property PoreCentroid averages.
	DefaultCentroidKey = "throat.centroid"
	// KeyThroatLength is the stored length of each throat.
	KeyThroatLength = "throat.length"
	// KeyPoreDiameter is the optional pore diameter driving the pore-mode split.
	KeyPoreDiameter = "pore.diameter"
	// KeyPoreCentroid is the network-level pore centroid used by centroid mode.
	KeyPoreCentroid = "pore.centroid"
	// KeyThroatCentroid is the network-level throat centroid used by centroid mode.
	KeyThroatCentroid = "throat.centroid"
)

// DefaultLengthFloor is the minimum positive remainder left for the two
// pore half-lengths in pore mode when the stored throat length meets or
// exceeds the center-to-center distance. The value is inherited from
// long-standing practice; override it with WithLengthFloor if your length
// scale differs, noting that results then diverge from the stock
// decomposition.
const DefaultLengthFloor = 2e-9

// Sentinel errors for the reduction passes.
var (
	// ErrNilNetwork indicates a nil network argument.
	ErrNilNetwork = errors.New("geomodels: network must not be nil")
	// ErrNilGeometry indicates a nil geometry argument.
	ErrNilGeometry = errors.New("geomodels: geometry must not be nil")
	// ErrVectorProperty indicates a source property that is not a width-3 vector.
	ErrVectorProperty = errors.New("geomodels: source property must be a width-3 vector")
	// ErrScalarProperty indicates a required property that is not scalar (width 1).
	ErrScalarProperty = errors.New("geomodels: property must be scalar")
)

// distance3 returns the Euclidean distance between two width-3 rows.
func distance3(a, b []float64) float64 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// hasNaN reports whether any value of the array is NaN.
func hasNaN(a *props.Array) bool {
	for i := 0; i < a.Rows(); i++ {
		for _, v := range a.Row(i) {
			if math.IsNaN(v) {
				return true
			}
		}
	}

	return false
}
