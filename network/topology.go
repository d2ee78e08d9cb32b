package network

import (
	"fmt"

	"github.com/katalvlaran/porenet/props"
)

// Defaults for TrimOccludedThroats.
const (
	// DefaultOccludedProperty is the scalar throat property consulted when
	// selecting occluded throats.
	DefaultOccludedProperty = "throat.area"
	// DefaultOccludedThreshold selects throats whose value is ≤ this bound.
	DefaultOccludedThreshold = 0.0
)

// trimConfig collects a trim batch; assembled by TrimOption values.
type trimConfig struct {
	pores        []int
	throats      []int
	keepIsolated bool
}

// TrimOption configures one Trim batch.
type TrimOption func(*trimConfig)

// TrimPores marks the given pore ids for removal. Removing a pore removes
// every throat incident to it.
func TrimPores(ids ...int) TrimOption {
	return func(c *trimConfig) { c.pores = append(c.pores, ids...) }
}

// TrimThroats marks the given throat ids for removal.
func TrimThroats(ids ...int) TrimOption {
	return func(c *trimConfig) { c.throats = append(c.throats, ids...) }
}

// WithKeepIsolatedPores disables the cascading removal of pores left
// without any incident throat.
func WithKeepIsolatedPores() TrimOption {
	return func(c *trimConfig) { c.keepIsolated = true }
}

// Extend appends new pores and throats to the network. Existing ids are
// never disturbed; new entities take the next available ids in input order.
// Each new conns pair may reference pre-existing or newly added pores;
// any other reference returns ErrThroatConns and nothing is mutated.
// Every property array grows by zero rows for the new entities, and
// "pore.coords" receives the new coordinates.
// Complexity: O(new + stored values grown).
func (n *Network) Extend(coords [][3]float64, conns [][2]int) error {
	total := n.NumPores() + len(coords)
	for i, c := range conns {
		if !validConns(c, total) {
			return fmt.Errorf("extend throat %d conns %v: %w", i, c, ErrThroatConns)
		}
	}

	base := n.NumPores()
	n.store.GrowRows(props.Pore, len(coords))
	ca, _ := n.store.Get(KeyCoords) // always present by construction
	for i, xyz := range coords {
		_ = ca.SetRow(base+i, xyz[0], xyz[1], xyz[2])
	}
	n.store.GrowRows(props.Throat, len(conns))
	n.conns = append(n.conns, conns...)
	n.buildIncidence()

	return nil
}

// Trim removes the selected pores and throats as one atomic batch:
//
//  1. Validate every id; any out-of-range id aborts with ErrPoreIndex or
//     ErrThroatIndex before anything is touched.
//  2. Cascade: every throat incident to a trimmed pore dies with it.
//  3. Unless WithKeepIsolatedPores is given, every remaining pore with
//     zero surviving incident throats is removed as well.
//  4. Ids are compacted (all ids above a removed id shift down), every
//     property array on the network is re-sliced to the new numbering,
//     and every registered subdomain is renumbered through remap tables.
//
// An empty batch is a no-op. Complexity: O(P + T + stored values).
func (n *Network) Trim(opts ...TrimOption) error {
	var cfg trimConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	np, nt := n.NumPores(), n.NumThroats()
	for _, p := range cfg.pores {
		if p < 0 || p >= np {
			return fmt.Errorf("trim pore %d: %w", p, ErrPoreIndex)
		}
	}
	for _, t := range cfg.throats {
		if t < 0 || t >= nt {
			return fmt.Errorf("trim throat %d: %w", t, ErrThroatIndex)
		}
	}
	if len(cfg.pores) == 0 && len(cfg.throats) == 0 {
		return nil
	}

	deadPore := make([]bool, np)
	deadThroat := make([]bool, nt)
	for _, p := range cfg.pores {
		deadPore[p] = true
	}
	for _, t := range cfg.throats {
		deadThroat[t] = true
	}
	// A throat cannot outlive either endpoint.
	for t, c := range n.conns {
		if deadPore[c[0]] || deadPore[c[1]] {
			deadThroat[t] = true
		}
	}
	// Isolation cleanup: count surviving incident throats per pore.
	if !cfg.keepIsolated {
		liveDegree := make([]int, np)
		for t, c := range n.conns {
			if deadThroat[t] {
				continue
			}
			liveDegree[c[0]]++
			if c[1] != c[0] {
				liveDegree[c[1]]++
			}
		}
		for p, deg := range liveDegree {
			if !deadPore[p] && deg == 0 {
				deadPore[p] = true
			}
		}
	}

	poreRemap, keepPores := remapLive(deadPore)
	throatRemap, keepThroats := remapLive(deadThroat)

	newConns := make([][2]int, 0, len(keepThroats))
	for _, t := range keepThroats {
		c := n.conns[t]
		newConns = append(newConns, [2]int{poreRemap[c[0]], poreRemap[c[1]]})
	}

	// Keep lists are valid by construction, so compaction cannot fail and
	// the mutation below completes as one batch.
	_ = n.store.CompactRows(props.Pore, keepPores)
	_ = n.store.CompactRows(props.Throat, keepThroats)
	n.conns = newConns
	n.buildIncidence()

	for _, s := range n.subs {
		s.Renumber(poreRemap, throatRemap)
	}

	return nil
}

// remapLive builds the old-id→new-id table for a liveness mask: removed ids
// map to -1, surviving ids to their compacted position. keep lists the
// surviving old ids ascending.
func remapLive(dead []bool) (remap, keep []int) {
	remap = make([]int, len(dead))
	keep = make([]int, 0, len(dead))
	for id, d := range dead {
		if d {
			remap[id] = -1
			continue
		}
		remap[id] = len(keep)
		keep = append(keep, id)
	}

	return remap, keep
}

// occludedConfig collects TrimOccludedThroats parameters.
type occludedConfig struct {
	property  string
	threshold float64
}

// OccludedOption configures TrimOccludedThroats.
type OccludedOption func(*occludedConfig)

// WithOccludedProperty overrides the scalar throat property consulted for
// the selection (default DefaultOccludedProperty).
func WithOccludedProperty(key string) OccludedOption {
	return func(c *occludedConfig) { c.property = key }
}

// WithOccludedThreshold overrides the selection threshold (default
// DefaultOccludedThreshold).
func WithOccludedThreshold(v float64) OccludedOption {
	return func(c *occludedConfig) { c.threshold = v }
}

// TrimOccludedThroats trims every throat whose scalar property value is at
// or below the threshold, cascading to isolated pores as Trim does. The
// property is read from the network store when present there, otherwise
// assembled from registered subdomains (first subdomain holding a value for
// a throat wins, in registration order); throats without a value anywhere
// are not selected. Returns ErrOccludedProperty for a non-throat or
// non-scalar property and props.ErrKeyNotFound if no store holds the key.
// Complexity: O(T·subdomains) worst case.
func (n *Network) TrimOccludedThroats(opts ...OccludedOption) error {
	cfg := occludedConfig{
		property:  DefaultOccludedProperty,
		threshold: DefaultOccludedThreshold,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	kind, _, err := props.ParseKey(cfg.property)
	if err != nil || kind != props.Throat {
		return fmt.Errorf("trim occluded throats %q: %w", cfg.property, ErrOccludedProperty)
	}

	var occluded []int
	if a, ok := n.store.Get(cfg.property); ok {
		if a.Width() != 1 {
			return fmt.Errorf("trim occluded throats %q (width %d): %w", cfg.property, a.Width(), ErrOccludedProperty)
		}
		for t := 0; t < n.NumThroats(); t++ {
			if a.At(t, 0) <= cfg.threshold {
				occluded = append(occluded, t)
			}
		}

		return n.Trim(TrimThroats(occluded...))
	}

	found := false
	for t := 0; t < n.NumThroats(); t++ {
		for _, s := range n.subs {
			v, ok := s.ThroatValue(t, cfg.property)
			if !ok {
				continue
			}
			found = true
			if v <= cfg.threshold {
				occluded = append(occluded, t)
			}
			break
		}
	}
	if !found {
		return fmt.Errorf("trim occluded throats %q: %w", cfg.property, props.ErrKeyNotFound)
	}

	return n.Trim(TrimThroats(occluded...))
}
