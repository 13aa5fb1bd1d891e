// Package driver implements the Pipeline Driver (spec.md §4.5): the state
// machine that carries one run of a compiled module from instantiation
// through initialization, input staging, delayed execution, output
// decoding, and delayed exit.
package driver
