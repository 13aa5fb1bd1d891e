package datamodel

// TextFile is a host filesystem path the guest reads or writes via a WASI
// preopen (spec.md §3). The host never allocates guest buffers for this
// kind; the path itself must already be visible to the guest.
type TextFile struct {
	Path string
}

// BinaryFile is the binary counterpart of TextFile.
type BinaryFile struct {
	Path string
}
