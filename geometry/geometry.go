package geometry

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/porenet/network"
	"github.com/katalvlaran/porenet/props"
)

// Sentinel errors for subdomain construction.
var (
	// ErrNilNetwork indicates a nil parent network.
	ErrNilNetwork = errors.New("geometry: parent network must not be nil")
	// ErrEmptyName indicates an empty subdomain name.
	ErrEmptyName = errors.New("geometry: subdomain name must not be empty")
	// ErrPoreIndex indicates a selected pore id outside the network range.
	ErrPoreIndex = errors.New("geometry: pore id out of network range")
	// ErrThroatIndex indicates a selected throat id outside the network range.
	ErrThroatIndex = errors.New("geometry: throat id out of network range")
	// ErrDuplicateID indicates the same id listed twice in one selection.
	ErrDuplicateID = errors.New("geometry: duplicate id in subdomain selection")
)

// Space names an id space for mapping calls.
type Space int

const (
	// Local ids index the subdomain (0..M-1).
	Local Space = iota
	// Global ids index the parent network (0..N-1).
	Global
)

// Mapping is the result of a map call: two parallel sequences where
// Source[i] is an input id that the mapper holds and Target[i] its
// counterpart in the other space. Input order is preserved; unmapped
// input ids appear in neither sequence.
type Mapping struct {
	Source []int
	Target []int
}

// Geometry is a named subdomain of one network: local property store plus
// explicit bidirectional index tables for pores and throats. The tables
// are rebuilt deterministically on every parent-network trim; they never
// rely on positional correspondence with caller-held arrays.
type Geometry struct {
	name  string
	net   *network.Network
	store *props.Store

	poreL2G   []int
	throatL2G []int
	poreG2L   map[int]int
	throatG2L map[int]int
}

// New creates a subdomain over the given network-global pore and throat
// selections and registers it with the parent for renumbering. Local id i
// corresponds to the i-th selected id. Selections may be empty. Returns
// ErrNilNetwork, ErrEmptyName, ErrPoreIndex, ErrThroatIndex or
// ErrDuplicateID; network.ErrDuplicateSubdomain if the name is taken.
// Complexity: O(selection size).
func New(net *network.Network, name string, pores, throats []int) (*Geometry, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	poreL2G, poreG2L, err := buildTables(pores, net.NumPores(), ErrPoreIndex)
	if err != nil {
		return nil, fmt.Errorf("subdomain %q: %w", name, err)
	}
	throatL2G, throatG2L, err := buildTables(throats, net.NumThroats(), ErrThroatIndex)
	if err != nil {
		return nil, fmt.Errorf("subdomain %q: %w", name, err)
	}

	g := &Geometry{
		name:      name,
		net:       net,
		store:     props.NewStore(len(poreL2G), len(throatL2G)),
		poreL2G:   poreL2G,
		throatL2G: throatL2G,
		poreG2L:   poreG2L,
		throatG2L: throatG2L,
	}
	if err = net.RegisterSubdomain(g); err != nil {
		return nil, err
	}

	return g, nil
}

// buildTables validates one selection and produces its local→global slice
// and global→local map. rangeErr tags the out-of-range sentinel to use.
func buildTables(ids []int, limit int, rangeErr error) ([]int, map[int]int, error) {
	l2g := make([]int, 0, len(ids))
	g2l := make(map[int]int, len(ids))
	for _, id := range ids {
		if id < 0 || id >= limit {
			return nil, nil, fmt.Errorf("id %d: %w", id, rangeErr)
		}
		if _, dup := g2l[id]; dup {
			return nil, nil, fmt.Errorf("id %d: %w", id, ErrDuplicateID)
		}
		g2l[id] = len(l2g)
		l2g = append(l2g, id)
	}

	return l2g, g2l, nil
}

// Name returns the subdomain name.
func (g *Geometry) Name() string { return g.name }

// Network returns the parent network.
func (g *Geometry) Network() *network.Network { return g.net }

// Props returns the subdomain's local property store.
func (g *Geometry) Props() *props.Store { return g.store }

// NumPores returns the local pore count.
func (g *Geometry) NumPores() int { return len(g.poreL2G) }

// NumThroats returns the local throat count.
func (g *Geometry) NumThroats() int { return len(g.throatL2G) }

// Pores returns all local pore ids ascending.
func (g *Geometry) Pores() []int { return ascending(len(g.poreL2G)) }

// Throats returns all local throat ids ascending.
func (g *Geometry) Throats() []int { return ascending(len(g.throatL2G)) }

// NetworkPores returns the network-global id of every local pore, indexed
// by local id.
func (g *Geometry) NetworkPores() []int {
	out := make([]int, len(g.poreL2G))
	copy(out, g.poreL2G)

	return out
}

// NetworkThroats returns the network-global id of every local throat,
// indexed by local id.
func (g *Geometry) NetworkThroats() []int {
	out := make([]int, len(g.throatL2G))
	copy(out, g.throatL2G)

	return out
}

// ascending returns 0..count-1.
func ascending(count int) []int {
	ids := make([]int, count)
	for i := range ids {
		ids[i] = i
	}

	return ids
}

// MapPores translates pore ids from the named space into the other one.
// Ids the mapper does not hold are dropped, preserving the order of the
// rest; an unmapped input is never an error. Complexity: O(len(ids)).
func (g *Geometry) MapPores(ids []int, from Space) Mapping {
	return mapIDs(ids, from, g.poreL2G, g.poreG2L)
}

// MapThroats translates throat ids from the named space into the other
// one, with the same partial-result semantics as MapPores.
func (g *Geometry) MapThroats(ids []int, from Space) Mapping {
	return mapIDs(ids, from, g.throatL2G, g.throatG2L)
}

// mapIDs walks ids once, keeping those present in the requested direction.
func mapIDs(ids []int, from Space, l2g []int, g2l map[int]int) Mapping {
	m := Mapping{
		Source: make([]int, 0, len(ids)),
		Target: make([]int, 0, len(ids)),
	}
	for _, id := range ids {
		if from == Local {
			if id >= 0 && id < len(l2g) {
				m.Source = append(m.Source, id)
				m.Target = append(m.Target, l2g[id])
			}
			continue
		}
		if lid, ok := g2l[id]; ok {
			m.Source = append(m.Source, id)
			m.Target = append(m.Target, lid)
		}
	}

	return m
}

// Renumber implements network.Subdomain: after a parent trim, local
// entities whose global id was removed are dropped, local ids compacted,
// the local store re-sliced, and both direction tables rebuilt.
// Complexity: O(subdomain size + local stored values).
func (g *Geometry) Renumber(poreRemap, throatRemap []int) {
	g.poreL2G, g.poreG2L = rebuildTables(g.poreL2G, poreRemap, g.store, props.Pore)
	g.throatL2G, g.throatG2L = rebuildTables(g.throatL2G, throatRemap, g.store, props.Throat)
}

// rebuildTables applies one remap table to one entity kind, compacting the
// store's rows of that kind to the surviving local ids.
func rebuildTables(l2g, remap []int, store *props.Store, kind props.Kind) ([]int, map[int]int) {
	keepLocal := make([]int, 0, len(l2g))
	newL2G := make([]int, 0, len(l2g))
	for local, global := range l2g {
		if next := remap[global]; next >= 0 {
			keepLocal = append(keepLocal, local)
			newL2G = append(newL2G, next)
		}
	}
	// keepLocal indices are valid by construction.
	_ = store.CompactRows(kind, keepLocal)
	g2l := make(map[int]int, len(newL2G))
	for local, global := range newL2G {
		g2l[global] = local
	}

	return newL2G, g2l
}

// ThroatValue implements network.Subdomain: the scalar value of key for a
// network-global throat held by this subdomain, read from the local store.
// Non-scalar arrays and throats outside the subdomain report false.
func (g *Geometry) ThroatValue(throat int, key string) (float64, bool) {
	local, ok := g.throatG2L[throat]
	if !ok {
		return 0, false
	}
	a, ok := g.store.Get(key)
	if !ok || a.Width() != 1 {
		return 0, false
	}

	return a.At(local, 0), true
}
