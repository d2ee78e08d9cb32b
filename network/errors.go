package network

import "errors"

// Sentinel errors for network construction and topology editing.
// Call sites wrap these with fmt.Errorf("…: %w", Err…) for context;
// tests match them via errors.Is.
var (
	// ErrNoPores indicates a construction attempt with zero pores.
	ErrNoPores = errors.New("network: network must contain at least one pore")
	// ErrPoreIndex indicates a pore id outside the current live range.
	ErrPoreIndex = errors.New("network: pore id out of range")
	// ErrThroatIndex indicates a throat id outside the current live range.
	ErrThroatIndex = errors.New("network: throat id out of range")
	// ErrThroatConns indicates a conns pair referencing an invalid pore id.
	ErrThroatConns = errors.New("network: throat conns reference an invalid pore")
	// ErrCubicShape indicates a cubic lattice shape with a non-positive dimension.
	ErrCubicShape = errors.New("network: cubic shape dimensions must be positive")
	// ErrCubicSpacing indicates a non-positive cubic lattice spacing.
	ErrCubicSpacing = errors.New("network: cubic spacing must be positive")
	// ErrOccludedProperty indicates an occluded-throat selection property that
	// is not a scalar (width-1) throat property.
	ErrOccludedProperty = errors.New("network: occluded selection needs a scalar throat property")
	// ErrDuplicateSubdomain indicates a second subdomain registered under an
	// already-taken name.
	ErrDuplicateSubdomain = errors.New("network: subdomain name already registered")
)
