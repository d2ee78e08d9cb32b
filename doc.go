// Package porenet models a porous medium as a graph — pores (nodes) joined
// by throats (edges) — with dense per-entity numeric properties and named
// subdomains whose local index spaces stay translatable to the parent
// network's global ids across every topology edit.
//
// Everything is organized under five subpackages:
//
//	props/     — property arrays ("pore.<name>" / "throat.<name>" keys),
//	             key tree, and settings
//	network/   — the full graph, cubic lattice construction, neighbor
//	             queries, and the topology editor (extend/trim)
//	geometry/  — named subdomains with local stores and bidirectional
//	             index mappers
//	geomodels/ — geometric reduction passes: pore-centroid aggregation
//	             and conduit-length decomposition
//	stopwatch/ — caller-scoped elapsed-time measurement
//
// Quick ASCII example, one conduit of a cubic lattice:
//
//	P1 ●───────┤throat├───────● P2
//	   └─half₁─┴─length─┴─half₂─┘
//
// A typical session builds a network, carves a subdomain, edits topology,
// and reduces geometry:
//
//	net, _ := network.NewCubic([3]int{5, 5, 5}, 1.0)
//	geom, _ := geometry.New(net, "bulk", net.Pores(), net.Throats())
//	_ = net.TrimOccludedThroats()                 // drop zero-area throats
//	triples, _ := geomodels.ConduitLengths(net)   // per-throat (l1, lt, l2)
//
// Ids are dense at all times: after any trim, pores are 0..NumPores()-1,
// throats 0..NumThroats()-1, every property array is re-sliced to match,
// and every registered subdomain is renumbered in the same batch.
package porenet
