// Package runtime is the public Pipeline façade (spec.md §6): it owns an
// Engine and CompiledModule and exposes the two caller-facing operations,
// Pipeline.New and Pipeline.Run.
package runtime
