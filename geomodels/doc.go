// Package geomodels implements the geometric reduction passes that run on
// top of a network and its subdomains. It supports:
//
//   - PoreCentroid: per-pore centroid aggregation over a subdomain — each
//     local pore's centroid is the column-wise mean of the centroids of
//     its incident throats that the subdomain also holds, where all-zero
//     centroid rows count as "not yet computed" and are skipped; a pore
//     with no qualifying throat keeps the zero-vector sentinel
//   - ConduitLengths: the three-segment decomposition of each throat into
//     (half-length owned by the first pore, the throat's own length,
//     half-length owned by the second pore), in pore mode (center-to-center
//     distance split by diameter fraction, with a configurable positive
//     floor on the remainder) or centroid mode (per-endpoint centroid
//     distances, degrading to pore mode whenever the centroid data is
//     absent or contains NaN)
//
// Both passes are pure reads over the property stores and index mappers:
// they never mutate a network or subdomain, and degenerate geometry
// (zero vectors, zero lengths, zero diameters) is handled by sentinels
// and clamping, never by failing.
package geomodels
