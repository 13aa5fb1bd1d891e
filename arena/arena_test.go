package arena

import (
	"context"
	"testing"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	itkerrors "github.com/itkwasm/wasm-pipeline/errors"
	"github.com/itkwasm/wasm-pipeline/internal/wasmtest"
)

// newTestMemory compiles and instantiates a trivial module exporting a
// single one-page linear memory, mirroring the fixture pattern used for the
// runtime's own tests.
func newTestMemory(t *testing.T) api.Memory {
	t.Helper()
	wasmBytes := wasmtest.MemoryOnly(1)

	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	t.Cleanup(func() { r.Close(ctx) })

	compiled, err := r.CompileModule(ctx, wasmBytes)
	if err != nil {
		t.Fatalf("CompileModule: %v", err)
	}
	mod, err := r.InstantiateModule(ctx, compiled, wazero.NewModuleConfig())
	if err != nil {
		t.Fatalf("InstantiateModule: %v", err)
	}
	t.Cleanup(func() { mod.Close(ctx) })

	mem := mod.Memory()
	if mem == nil {
		t.Fatal("module exports no memory")
	}
	return mem
}

func TestArenaWriteReadRoundTrip(t *testing.T) {
	mem := newTestMemory(t)
	a := New(mem)

	want := []byte{1, 2, 3, 4, 5}
	if err := a.WriteBytes(16, want); err != nil {
		t.Fatalf("WriteBytes: %v", err)
	}
	got, err := a.ReadBytes(16, uint32(len(want)))
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("ReadBytes = %v, want %v", got, want)
	}
}

func TestArenaViewIsCopyFreeButValid(t *testing.T) {
	mem := newTestMemory(t)
	a := New(mem)

	if err := a.WriteBytes(0, []byte{9, 9, 9}); err != nil {
		t.Fatalf("WriteBytes: %v", err)
	}
	view, err := a.View(0, 3)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if len(view) != 3 || view[0] != 9 {
		t.Errorf("View = %v, want [9 9 9]", view)
	}
}

func TestArenaOutOfBounds(t *testing.T) {
	mem := newTestMemory(t)
	a := New(mem)

	hugeOffset := a.Size() + 1
	_, err := a.ReadBytes(hugeOffset, 16)
	if err == nil {
		t.Fatal("expected out of bounds error")
	}
	e, ok := err.(*itkerrors.Error)
	if !ok || e.Kind != itkerrors.KindOutOfBounds {
		t.Errorf("got %v, want KindOutOfBounds", err)
	}
}

func TestArenaEmptyWriteAtExactBoundary(t *testing.T) {
	mem := newTestMemory(t)
	a := New(mem)

	if err := a.WriteBytes(a.Size(), nil); err != nil {
		t.Errorf("zero-length write at memory boundary should succeed: %v", err)
	}
}
