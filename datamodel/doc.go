// Package datamodel defines the typed payload values carried by pipeline
// inputs and outputs (spec.md §3): text/binary streams and files, and the
// composite Image, Mesh, and PolyData structures. Field names follow the
// JSON descriptors (spec.md §6); the codec package copies them into its
// own descriptor structs, which carry the exact JSON field names.
package datamodel
