package arena

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/itkwasm/wasm-pipeline/errors"
)

// Arena is a bounds-checked view over one instance's linear memory
// (spec.md §4.3). It is valid only for the lifetime of the Instance it
// wraps; callers must not retain an Arena across instances.
type Arena struct {
	mem api.Memory
}

// New wraps the given linear memory in an Arena.
func New(mem api.Memory) *Arena {
	return &Arena{mem: mem}
}

// WriteBytes writes b into guest memory at [ptr, ptr+len(b)). Fails with
// errors.OutOfBounds if the range lies outside current memory size.
func (a *Arena) WriteBytes(ptr uint32, b []byte) error {
	if len(b) == 0 {
		if ptr > a.mem.Size() {
			return errors.OutOfBounds(ptr, 0, a.mem.Size())
		}
		return nil
	}
	if !a.mem.Write(ptr, b) {
		return errors.OutOfBounds(ptr, uint32(len(b)), a.mem.Size())
	}
	return nil
}

// ReadBytes copies length bytes out of guest memory starting at ptr. The
// returned slice is a copy, never an alias of guest memory (spec.md §4.4,
// §4.6: "do not alias guest memory across guest calls").
func (a *Arena) ReadBytes(ptr, length uint32) ([]byte, error) {
	view, err := a.View(ptr, length)
	if err != nil {
		return nil, err
	}
	out := make([]byte, length)
	copy(out, view)
	return out, nil
}

// View returns a non-owning slice into guest memory valid only until the
// next guest call (spec.md §4.3, §5 "Memory view invalidation"). Callers
// that need the bytes to outlive the next guest invocation must use
// ReadBytes instead.
func (a *Arena) View(ptr, length uint32) ([]byte, error) {
	if length == 0 {
		if ptr > a.mem.Size() {
			return nil, errors.OutOfBounds(ptr, 0, a.mem.Size())
		}
		return nil, nil
	}
	view, ok := a.mem.Read(ptr, length)
	if !ok {
		return nil, errors.OutOfBounds(ptr, length, a.mem.Size())
	}
	return view, nil
}

// Size returns the current size of the wrapped linear memory, in bytes.
func (a *Arena) Size() uint32 {
	return a.mem.Size()
}
