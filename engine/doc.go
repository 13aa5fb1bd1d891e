// Package engine implements the Engine/Module Loader (spec.md §4.1): it
// compiles raw bytes or a file path into a reusable, immutable wazero
// CompiledModule and classifies the WASI snapshot version a guest imports
// from, so compilation fails fast on an unrecognized ABI.
package engine
