package network

// Health is a structural-defect report. Each field lists offending entity
// ids; a report with every list empty is healthy.
type Health struct {
	// IsolatedPores lists pores with no incident throat.
	IsolatedPores []int
	// SelfLoopThroats lists throats whose conns connect a pore to itself.
	SelfLoopThroats []int
	// DuplicateThroats lists throats repeating an earlier throat's
	// unordered pore pair.
	DuplicateThroats []int
}

// OK reports whether every finding list is empty.
func (h Health) OK() bool {
	return len(h.IsolatedPores) == 0 &&
		len(h.SelfLoopThroats) == 0 &&
		len(h.DuplicateThroats) == 0
}

// CheckHealth scans the network for structural defects. It never mutates;
// callers decide whether a finding warrants a Trim.
// Complexity: O(P + T).
func (n *Network) CheckHealth() Health {
	var h Health
	for p, inc := range n.incident {
		if len(inc) == 0 {
			h.IsolatedPores = append(h.IsolatedPores, p)
		}
	}
	seen := make(map[[2]int]struct{}, len(n.conns))
	for t, c := range n.conns {
		if c[0] == c[1] {
			h.SelfLoopThroats = append(h.SelfLoopThroats, t)
			continue
		}
		pair := c
		if pair[0] > pair[1] {
			pair[0], pair[1] = pair[1], pair[0]
		}
		if _, dup := seen[pair]; dup {
			h.DuplicateThroats = append(h.DuplicateThroats, t)
			continue
		}
		seen[pair] = struct{}{}
	}

	return h
}
