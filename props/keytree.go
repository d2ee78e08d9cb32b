package props

import (
	"fmt"
	"sort"
	"strings"
)

// NodeKind tags the two variants a key tree node can take.
type NodeKind int

const (
	// Scalar marks a leaf holding one full property key.
	Scalar NodeKind = iota
	// Nested marks an interior node holding child segments.
	Nested
)

// Node is one entry of a KeyTree: either a Scalar leaf carrying the full
// dotted key it terminates, or a Nested interior node with named children.
// Dispatch on Kind() is explicit and exhaustive; there is no duck typing
// and lookups never create nodes.
type Node struct {
	kind     NodeKind
	key      string
	children map[string]*Node
}

// Kind returns the node's variant tag.
func (n *Node) Kind() NodeKind { return n.kind }

// Key returns the full property key of a Scalar leaf, or "" for a Nested node.
func (n *Node) Key() string { return n.key }

// Children returns the child segment names of a Nested node, sorted
// ascending. A Scalar leaf has none.
func (n *Node) Children() []string {
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Child returns the named child of a Nested node, or (nil, false).
func (n *Node) Child(name string) (*Node, bool) {
	c, ok := n.children[name]

	return c, ok
}

// KeyTree groups a dotted property-key namespace ("pore.surface.area") into
// an explicit tree. Intermediate nodes are created only by Insert, never by
// Lookup: reading a missing path reports "not found" instead of silently
// materializing entries.
type KeyTree struct {
	root *Node
}

// NewKeyTree returns an empty tree.
func NewKeyTree() *KeyTree {
	return &KeyTree{root: &Node{kind: Nested, children: make(map[string]*Node)}}
}

// TreeFromStore builds a tree over every key of the store. Store keys are
// unique and well-formed, so insertion cannot conflict.
func TreeFromStore(s *Store) *KeyTree {
	t := NewKeyTree()
	for _, key := range s.Keys() {
		// Keys() is sorted and duplicate-free; Insert cannot fail here.
		_ = t.Insert(key)
	}

	return t
}

// Insert adds key to the tree, deliberately creating intermediate Nested
// nodes for every path segment. Returns ErrBadKey for an empty key or empty
// segment, ErrKeyConflict if the path runs through or lands on an existing
// Scalar leaf. Inserting the same key twice is a no-op.
// Complexity: O(segments).
func (t *KeyTree) Insert(key string) error {
	segs := strings.Split(key, ".")
	for _, s := range segs {
		if s == "" {
			return fmt.Errorf("insert %q: %w", key, ErrBadKey)
		}
	}
	cur := t.root
	for i, seg := range segs {
		last := i == len(segs)-1
		next, ok := cur.children[seg]
		if !ok {
			if last {
				next = &Node{kind: Scalar, key: key}
			} else {
				next = &Node{kind: Nested, children: make(map[string]*Node)}
			}
			cur.children[seg] = next
		} else if (next.kind == Scalar) != last {
			// An existing leaf blocks a deeper path, and an existing
			// interior node cannot become a leaf.
			return fmt.Errorf("insert %q: %w", key, ErrKeyConflict)
		}
		cur = next
	}

	return nil
}

// Lookup resolves a dotted path and returns the node it names, or
// (nil, false) if any segment is absent. It never modifies the tree.
// Complexity: O(segments).
func (t *KeyTree) Lookup(path string) (*Node, bool) {
	cur := t.root
	for _, seg := range strings.Split(path, ".") {
		next, ok := cur.children[seg]
		if !ok {
			return nil, false
		}
		cur = next
	}

	return cur, true
}
