// Package props implements the property storage layer shared by networks and
// their subdomains. It supports:
//
//   - Dense numeric arrays with a fixed row width, one row per entity
//     (Array), where an all-zero row of vector data is the designated
//     "not yet computed" sentinel
//   - A Store keyed by "pore.<name>" / "throat.<name>" strings, with
//     per-kind row counts enforced on insertion
//   - Row compaction and growth primitives driven by topology editing,
//     so every array stays aligned with entity renumbering
//   - An explicit KeyTree over the dotted key namespace, with a tagged
//     Scalar/Nested node variant and a lookup that never materializes
//     missing entries
//   - A Settings container whose accessor makes the "unset" case visible
//     in its result instead of falling back to an implicit zero value
//
// Keys are parsed with ParseKey into a Kind (Pore or Throat) and a name;
// malformed keys are rejected with ErrBadKey.
package props
