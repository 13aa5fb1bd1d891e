// Package codec implements the Codec (C4), the per-InterfaceKind
// marshaller that splits a typed datamodel payload into a JSON descriptor
// plus N binary sub-buffers on input, and reassembles them on output
// (spec.md §4.4). Table T1's canonical sub-index ordering is implemented
// here; the address-URL pointer format comes from the root wasmpipeline
// package.
package codec
