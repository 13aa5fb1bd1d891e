// Package errors provides structured error types for the itk-wasm pipeline
// runtime.
//
// Errors are categorized by Phase (where in the pipeline lifecycle the
// error occurred) and Kind (which of spec.md §7's closed error kinds
// applies). EncodeErrorFor and DecodeErrorFor additionally carry the input
// or output slot index that failed.
//
// Use the convenience constructors, one per error kind:
//
//	err := errors.MissingExport("itk_wasm_delayed_start")
//	err := errors.EncodeErrorFor(slot, cause)
//	err := errors.OutOfBounds(ptr, length, memSize)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
