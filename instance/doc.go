// Package instance loads Steiner Tree Packing instances from their four
// flat text files (param.dat, terms.dat, roots.dat, arcs.dat) into a
// typed, fully 0-based Instance value.
//
// File format (whitespace-delimited, "#" comment lines and blank lines
// ignored, node and net ids 1-based in the files):
//
//	param.dat — two lines: "nodes <int>" and "nets <int>"
//	terms.dat — rows "<node> <net>", one per special (root or terminal) node
//	roots.dat — rows "<node> <net>", a subset of terms.dat, one root per net
//	arcs.dat  — rows "<tail> <head> <cost>"
//
// Normalization to 0-based ids happens here and only here; every
// downstream consumer works with the already-converted indices.
//
// Derived sets: Terminals = Specials − Roots, Normals = V − Specials.
// Load validates the partition invariants at the boundary:
//
//	ErrNetMismatch     — a root's net in roots.dat disagrees with terms.dat
//	ErrDuplicateRoot   — two roots claim the same net
//	ErrMissingRoot     — a net has no root
//	ErrNodeOutOfRange  — a node id outside [1, nodes] appears in a file
//	ErrBadParam        — param.dat lacks the nodes or nets key
//
// Load is a pure function of its file inputs: no caching, no hidden
// state.
package instance
