package network

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/porenet/props"
)

// KeyCoords is the property key of the pore coordinate array, written by
// every constructor and maintained across topology edits.
const KeyCoords = "pore.coords"

// Subdomain is the contract a named subdomain (a geometry) fulfils towards
// its parent network. The network calls Renumber after every trim with
// old-id→new-id remap tables (-1 marks a removed id), and consults
// ThroatValue when a throat property lives on subdomains rather than on the
// network's own store.
type Subdomain interface {
	// Name identifies the subdomain; unique per network.
	Name() string
	// Renumber rewires the subdomain against the post-trim numbering.
	// remap[oldID] is the new id, or -1 if the entity was removed.
	Renumber(poreRemap, throatRemap []int)
	// ThroatValue returns the subdomain's scalar value of key for the given
	// network-global throat id, or false if the throat or key is not held.
	ThroatValue(throat int, key string) (float64, bool)
}

// Network owns the full connectivity (one ordered pore pair per throat) and
// the global property store. Pore ids are 0..NumPores()-1 and throat ids
// 0..NumThroats()-1, dense at all times; topology edits renumber and notify
// every registered subdomain.
type Network struct {
	conns    [][2]int
	store    *props.Store
	settings *props.Settings
	incident [][]int // pore id -> incident throat ids, ascending
	subs     []Subdomain
}

// New constructs a network from pore coordinates and throat connectivity.
// Returns ErrNoPores for an empty coordinate list and ErrThroatConns if any
// conns pair references a pore id outside 0..len(coords)-1.
// Complexity: O(P + T).
func New(coords [][3]float64, conns [][2]int) (*Network, error) {
	if len(coords) == 0 {
		return nil, ErrNoPores
	}
	for t, c := range conns {
		if !validConns(c, len(coords)) {
			return nil, fmt.Errorf("throat %d conns %v: %w", t, c, ErrThroatConns)
		}
	}

	n := &Network{
		conns:    append(make([][2]int, 0, len(conns)), conns...),
		store:    props.NewStore(len(coords), len(conns)),
		settings: props.NewSettings(),
	}
	ca := props.NewVectorArray(len(coords))
	for i, xyz := range coords {
		_ = ca.SetRow(i, xyz[0], xyz[1], xyz[2])
	}
	// Row count matches by construction; Set cannot fail.
	_ = n.store.Set(KeyCoords, ca)
	n.buildIncidence()

	return n, nil
}

// validConns reports whether both endpoints of c lie in [0, numPores).
func validConns(c [2]int, numPores int) bool {
	return c[0] >= 0 && c[0] < numPores && c[1] >= 0 && c[1] < numPores
}

// buildIncidence recomputes the pore→throat incidence lists from conns.
// Throat ids are appended in ascending order, so each list is sorted.
// Complexity: O(P + T).
func (n *Network) buildIncidence() {
	inc := make([][]int, n.store.NumRows(props.Pore))
	for t, c := range n.conns {
		inc[c[0]] = append(inc[c[0]], t)
		if c[1] != c[0] {
			inc[c[1]] = append(inc[c[1]], t)
		}
	}
	n.incident = inc
}

// NumPores returns the live pore count.
func (n *Network) NumPores() int { return n.store.NumRows(props.Pore) }

// NumThroats returns the live throat count.
func (n *Network) NumThroats() int { return n.store.NumRows(props.Throat) }

// Pores returns all pore ids ascending.
func (n *Network) Pores() []int { return ascending(n.NumPores()) }

// Throats returns all throat ids ascending.
func (n *Network) Throats() []int { return ascending(n.NumThroats()) }

// ascending returns 0..count-1.
func ascending(count int) []int {
	ids := make([]int, count)
	for i := range ids {
		ids[i] = i
	}

	return ids
}

// Props returns the network's global property store.
func (n *Network) Props() *props.Store { return n.store }

// Settings returns the network's settings container.
func (n *Network) Settings() *props.Settings { return n.settings }

// Conns returns a copy of the full connectivity table: Conns()[t] is the
// ordered pore pair of throat t.
func (n *Network) Conns() [][2]int {
	out := make([][2]int, len(n.conns))
	copy(out, n.conns)

	return out
}

// ThroatConns returns the ordered pore pair of one throat.
// Returns ErrThroatIndex if t is out of range.
func (n *Network) ThroatConns(t int) ([2]int, error) {
	if t < 0 || t >= len(n.conns) {
		return [2]int{}, fmt.Errorf("throat %d: %w", t, ErrThroatIndex)
	}

	return n.conns[t], nil
}

// FindNeighborThroats returns the ids of all throats incident to the given
// pore, ascending. Returns ErrPoreIndex if pore is out of range.
// Complexity: O(degree).
func (n *Network) FindNeighborThroats(pore int) ([]int, error) {
	if pore < 0 || pore >= n.NumPores() {
		return nil, fmt.Errorf("pore %d: %w", pore, ErrPoreIndex)
	}
	out := make([]int, len(n.incident[pore]))
	copy(out, n.incident[pore])

	return out, nil
}

// FindNeighborPores returns the ids of all pores sharing a throat with the
// given pore, deduplicated and ascending. A self-loop throat does not make
// a pore its own neighbor. Returns ErrPoreIndex if pore is out of range.
// Complexity: O(degree·log degree).
func (n *Network) FindNeighborPores(pore int) ([]int, error) {
	if pore < 0 || pore >= n.NumPores() {
		return nil, fmt.Errorf("pore %d: %w", pore, ErrPoreIndex)
	}
	seen := make(map[int]struct{}, len(n.incident[pore]))
	for _, t := range n.incident[pore] {
		c := n.conns[t]
		other := c[0]
		if other == pore {
			other = c[1]
		}
		if other != pore {
			seen[other] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Ints(out)

	return out, nil
}

// RegisterSubdomain attaches a subdomain so topology edits renumber it.
// Returns ErrDuplicateSubdomain if the name is already taken.
func (n *Network) RegisterSubdomain(s Subdomain) error {
	for _, existing := range n.subs {
		if existing.Name() == s.Name() {
			return fmt.Errorf("%q: %w", s.Name(), ErrDuplicateSubdomain)
		}
	}
	n.subs = append(n.subs, s)

	return nil
}

// Subdomains returns the registered subdomains in registration order.
func (n *Network) Subdomains() []Subdomain {
	out := make([]Subdomain, len(n.subs))
	copy(out, n.subs)

	return out
}
