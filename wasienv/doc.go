// Package wasienv implements the WASI Environment Builder (spec.md §4.2):
// given argv, env vars, and a set of preopened host directories, it
// produces a finalized wazero.ModuleConfig for one run. Preopen paths are
// deduplicated; TextFile/BinaryFile payloads contribute their path's
// parent directory to the preopen set by default.
package wasienv
