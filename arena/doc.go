// Package arena implements the Memory Arena Adapter (spec.md §4.3): a thin,
// bounds-checked wrapper over an instance's linear memory. It does not
// allocate; it only reads and writes ranges previously returned by guest
// allocator exports.
package arena
