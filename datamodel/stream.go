package datamodel

// TextStream is an in-memory UTF-8 string payload (spec.md §3).
type TextStream struct {
	Data string
}

// BinaryStream is an in-memory opaque byte sequence payload (spec.md §3).
type BinaryStream struct {
	Data []byte
}
