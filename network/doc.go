// Package network implements the pore network: the full graph of pores
// (nodes) and throats (edges) together with its global property store and
// the topology-editing operations that keep every dependent index space
// consistent. It supports:
//
//   - Construction from explicit coordinates and connectivity (New) or as
//     a regular cubic lattice (NewCubic)
//   - Neighbor queries: incident throats and neighboring pores of a pore,
//     returned in ascending id order
//   - Extend: append-only addition of pores and throats, never disturbing
//     existing ids
//   - Trim: atomic batch removal with cascading cleanup — removing a pore
//     removes every incident throat, and pores left without any incident
//     throat are removed too unless WithKeepIsolatedPores is given; ids
//     are compacted and every property array re-sliced to match
//   - TrimOccludedThroats: removal of throats whose scalar property falls
//     at or below a threshold (default "throat.area" ≤ 0)
//   - Subdomain registration: registered subdomains are renumbered after
//     every trim through old-id→new-id remap tables
//   - CheckHealth: a report of structural defects where empty findings
//     mean a healthy network
//
// Entity ids are dense integers: pores 0..NumPores()-1 and throats
// 0..NumThroats()-1 at all times. A trim batch either applies completely
// or, on any invalid id, not at all.
package network
