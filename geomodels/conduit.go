package geomodels

import (
	"fmt"

	"github.com/katalvlaran/porenet/network"
	"github.com/katalvlaran/porenet/props"
)

// Mode selects the conduit-length decomposition strategy.
type Mode int

const (
	// ModePore splits the center-to-center distance minus the throat
	// length between the endpoints by pore-diameter fraction.
	ModePore Mode = iota
	// ModeCentroid measures each half-length from the pore centroid to the
	// throat centroid, falling back to ModePore when centroid data is
	// absent or contains NaN.
	ModeCentroid
)

// conduitConfig collects ConduitLengths parameters.
type conduitConfig struct {
	throats []int
	mode    Mode
	floor   float64
}

// ConduitOption configures ConduitLengths.
type ConduitOption func(*conduitConfig)

// WithThroats restricts the computation to the given throat ids, in the
// given order (default: every throat ascending).
func WithThroats(ids ...int) ConduitOption {
	return func(c *conduitConfig) { c.throats = append(c.throats, ids...) }
}

// WithMode selects the decomposition strategy (default ModePore).
func WithMode(m Mode) ConduitOption {
	return func(c *conduitConfig) { c.mode = m }
}

// WithLengthFloor overrides the pore-mode remainder floor (default
// DefaultLengthFloor). Panics on a non-positive floor (programmer error).
func WithLengthFloor(v float64) ConduitOption {
	if v <= 0 {
		panic("geomodels: length floor must be positive")
	}

	return func(c *conduitConfig) { c.floor = v }
}

// ConduitLengths computes, for each selected throat, the conduit triple
// (half-length owned by the first endpoint pore, the throat's own stored
// length, half-length owned by the second endpoint pore). Output row i
// corresponds to the i-th selected throat.
//
// Pore mode: the center-to-center distance between the endpoint pores,
// minus "throat.length", clamped below by the floor, is split between the
// endpoints in proportion d1/(d1+d2) of their "pore.diameter" values; with
// the diameter property unavailable (or a degenerate zero diameter sum)
// the split is an even half each.
//
// Centroid mode: each half-length is the distance from the endpoint's
// "pore.centroid" to the throat's "throat.centroid", minus half the throat
// length. If either centroid property is missing from the network store or
// contains any NaN, the whole computation degrades to pore mode — the
// precondition is checked once, not per row.
//
// Returns ErrNilNetwork, network.ErrThroatIndex for an out-of-range
// selection, props.ErrKeyNotFound (wrapped) when "throat.length" or
// "pore.coords" is absent, and ErrScalarProperty for a mis-shaped length
// array. Complexity: O(selection).
func ConduitLengths(net *network.Network, opts ...ConduitOption) ([][3]float64, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	cfg := conduitConfig{mode: ModePore, floor: DefaultLengthFloor}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.throats == nil {
		cfg.throats = net.Throats()
	}
	for _, t := range cfg.throats {
		if t < 0 || t >= net.NumThroats() {
			return nil, fmt.Errorf("conduit lengths (throat %d): %w", t, network.ErrThroatIndex)
		}
	}

	store := net.Props()
	tlen, err := store.Require(KeyThroatLength)
	if err != nil {
		return nil, fmt.Errorf("conduit lengths: %w", err)
	}
	if tlen.Width() != 1 {
		return nil, fmt.Errorf("conduit lengths %q: %w", KeyThroatLength, ErrScalarProperty)
	}
	conns := net.Conns()

	if cfg.mode == ModeCentroid {
		if out, ok := centroidLengths(store, conns, tlen, cfg.throats); ok {
			return out, nil
		}
		// Centroid data absent or poisoned with NaN: degrade wholesale.
		cfg.mode = ModePore
	}

	return poreLengths(store, conns, tlen, cfg)
}

// centroidLengths attempts the centroid-mode decomposition. ok is false
// when the precondition (both centroid properties present, width 3,
// NaN-free) does not hold and the caller must degrade to pore mode.
func centroidLengths(store *props.Store, conns [][2]int, tlen *props.Array, throats []int) (out [][3]float64, ok bool) {
	pc, okP := store.Get(KeyPoreCentroid)
	tc, okT := store.Get(KeyThroatCentroid)
	if !okP || !okT || pc.Width() != 3 || tc.Width() != 3 {
		return nil, false
	}
	if hasNaN(pc) || hasNaN(tc) {
		return nil, false
	}

	out = make([][3]float64, len(throats))
	for i, t := range throats {
		c := conns[t]
		length := tlen.At(t, 0)
		out[i] = [3]float64{
			distance3(pc.Row(c[0]), tc.Row(t)) - length/2,
			length,
			distance3(pc.Row(c[1]), tc.Row(t)) - length/2,
		}
	}

	return out, true
}

// poreLengths is the pore-mode decomposition and the common fallback.
func poreLengths(store *props.Store, conns [][2]int, tlen *props.Array, cfg conduitConfig) ([][3]float64, error) {
	coords, err := store.Require(network.KeyCoords)
	if err != nil {
		return nil, fmt.Errorf("conduit lengths: %w", err)
	}
	// Diameters are optional: without them the split is an even half each.
	dia, haveDia := store.Get(KeyPoreDiameter)
	if haveDia && dia.Width() != 1 {
		haveDia = false
	}

	out := make([][3]float64, len(cfg.throats))
	for i, t := range cfg.throats {
		c := conns[t]
		length := tlen.At(t, 0)
		remainder := distance3(coords.Row(c[0]), coords.Row(c[1])) - length
		if remainder < 0 {
			remainder = cfg.floor
		}
		fraction := 0.5
		if haveDia {
			d1, d2 := dia.At(c[0], 0), dia.At(c[1], 0)
			// A zero diameter sum would divide by zero; keep the even split.
			if d1+d2 > 0 {
				fraction = d1 / (d1 + d2)
			}
		}
		out[i] = [3]float64{remainder * fraction, length, remainder * (1 - fraction)}
	}

	return out, nil
}
