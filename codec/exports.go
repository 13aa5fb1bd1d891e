package codec

import (
	"context"

	"github.com/itkwasm/wasm-pipeline/arena"
)

// GuestExports is the subset of a Driver Instance's cached export handles
// the codec needs to stage inputs and read outputs (spec.md §6, §9
// "Global export handles"). The run parameter required by the guest ABI is
// always 0 (spec.md §6) and is fixed inside implementations, not exposed
// here.
type GuestExports interface {
	InputArrayAlloc(ctx context.Context, slot, sub int32, size uint32) (uint32, error)
	InputJSONAlloc(ctx context.Context, slot int32, size uint32) (uint32, error)
	OutputArrayAddress(ctx context.Context, slot, sub int32) (uint32, error)
	OutputArraySize(ctx context.Context, slot, sub int32) (uint32, error)
	OutputJSONAddress(ctx context.Context, slot int32) (uint32, error)
	OutputJSONSize(ctx context.Context, slot int32) (uint32, error)

	// Arena returns the current view over the instance's linear memory.
	// Codec operations must not retain it across guest calls.
	Arena() *arena.Arena
}
