package props

import (
	"fmt"
	"sort"
)

// Store maps property keys to arrays for one owning index space (a network
// or one subdomain). Every "pore.*" array has exactly NumRows(Pore) rows and
// every "throat.*" array NumRows(Throat) rows; Set enforces this, and the
// row-compaction/growth primitives keep it true under topology edits.
type Store struct {
	numPores   int
	numThroats int
	arrays     map[string]*Array
}

// NewStore creates an empty store for the given entity counts.
// Panics on negative counts (programmer error).
func NewStore(numPores, numThroats int) *Store {
	if numPores < 0 || numThroats < 0 {
		panic("props: entity counts must be non-negative")
	}

	return &Store{
		numPores:   numPores,
		numThroats: numThroats,
		arrays:     make(map[string]*Array),
	}
}

// NumRows returns the live entity count for the given kind.
func (s *Store) NumRows(k Kind) int {
	if k == Pore {
		return s.numPores
	}

	return s.numThroats
}

// Set registers a under key, replacing any previous array. The key must
// parse (ErrBadKey) and a's row count must equal the kind's entity count
// (ErrRowCount). The array is stored by reference, not copied.
func (s *Store) Set(key string, a *Array) error {
	kind, _, err := ParseKey(key)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	if a.Rows() != s.NumRows(kind) {
		return fmt.Errorf("set %q (%d rows, want %d): %w", key, a.Rows(), s.NumRows(kind), ErrRowCount)
	}
	s.arrays[key] = a

	return nil
}

// Get returns the array stored under key, or (nil, false) if absent.
func (s *Store) Get(key string) (*Array, bool) {
	a, ok := s.arrays[key]

	return a, ok
}

// Require returns the array stored under key, or ErrKeyNotFound.
func (s *Store) Require(key string) (*Array, error) {
	a, ok := s.arrays[key]
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, ErrKeyNotFound)
	}

	return a, nil
}

// Has reports whether key is present.
func (s *Store) Has(key string) bool {
	_, ok := s.arrays[key]

	return ok
}

// Delete removes key, reporting whether it was present.
func (s *Store) Delete(key string) bool {
	_, ok := s.arrays[key]
	delete(s.arrays, key)

	return ok
}

// Keys returns all keys sorted lexicographically ascending, for
// deterministic enumeration.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.arrays))
	for k := range s.arrays {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// CompactRows reindexes every array of the given kind to the rows listed in
// keep, in keep's order, and sets the kind's entity count to len(keep).
// Returns ErrRowIndex if any keep entry is out of range; the store is not
// modified on error. Complexity: O(total values of that kind).
func (s *Store) CompactRows(k Kind, keep []int) error {
	for _, row := range keep {
		if row < 0 || row >= s.NumRows(k) {
			return fmt.Errorf("compact %s rows (id %d): %w", k, row, ErrRowIndex)
		}
	}
	for key, a := range s.arrays {
		if kind, _, _ := ParseKey(key); kind == k {
			s.arrays[key] = a.compactRows(keep)
		}
	}
	if k == Pore {
		s.numPores = len(keep)
	} else {
		s.numThroats = len(keep)
	}

	return nil
}

// GrowRows appends n zero rows to every array of the given kind and raises
// the kind's entity count by n. Panics on negative n (programmer error).
func (s *Store) GrowRows(k Kind, n int) {
	if n < 0 {
		panic("props: cannot grow by a negative row count")
	}
	for key, a := range s.arrays {
		if kind, _, _ := ParseKey(key); kind == k {
			a.growRows(n)
		}
	}
	if k == Pore {
		s.numPores += n
	} else {
		s.numThroats += n
	}
}
