// Package geometry implements named subdomains of a network. A Geometry
// owns a subset of the parent network's pores and throats under its own
// contiguous local id space (0..M-1), a local property store over that
// subset, and two independent index mappers (one per entity kind) that
// translate id arrays between the local and the network-global space.
// It supports:
//
//   - Construction over explicit pore/throat selections, with duplicate
//     and out-of-range ids rejected before anything is registered
//   - Order-preserving bidirectional mapping: MapPores/MapThroats return
//     parallel source/target sequences, silently dropping ids the mapper
//     does not hold — partial and empty results are valid, never errors
//   - Automatic renumbering: a Geometry registers itself with its parent
//     network and rebuilds its tables in O(subdomain size) whenever a trim
//     compacts the global numbering, dropping local entities whose global
//     counterpart was removed and re-slicing the local property store
//
// Subdomains may overlap: a pore or throat can belong to any number of
// geometries, each holding its own local data for it.
package geometry
