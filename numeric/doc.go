// Package numeric implements the Numeric Buffer Bridge (spec.md §4.6): the
// fixed mapping between a scalar component-type tag and the little-endian
// byte layout itk-wasm guests use for pixel, point, and cell buffers.
package numeric
