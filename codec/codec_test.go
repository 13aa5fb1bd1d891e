package codec

import (
	"context"
	"testing"

	"github.com/tetratelabs/wazero"

	"github.com/itkwasm/wasm-pipeline/arena"
	"github.com/itkwasm/wasm-pipeline/datamodel"
	"github.com/itkwasm/wasm-pipeline/internal/wasmtest"
	"github.com/itkwasm/wasm-pipeline/numeric"
)

// fakeExports is a minimal in-memory GuestExports double: it bump-allocates
// input buffers and lets a test preload output addresses/sizes, so codec
// logic can be exercised without a real itk-wasm guest binary.
type fakeExports struct {
	a        *arena.Arena
	nextPtr  uint32
	allocLog []string

	outputJSON     map[int32][]byte
	outputSubs     map[[2]int32][]byte
	subAccessCalls int
}

func newFakeExports(t *testing.T) *fakeExports {
	t.Helper()
	wasmBytes := wasmtest.MemoryOnly(4)
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

	return &fakeExports{
		a:          arena.New(mod.Memory()),
		nextPtr:    8,
		outputJSON: map[int32][]byte{},
		outputSubs: map[[2]int32][]byte{},
	}
}

func (f *fakeExports) Arena() *arena.Arena { return f.a }

func (f *fakeExports) InputArrayAlloc(ctx context.Context, slot, sub int32, size uint32) (uint32, error) {
	f.allocLog = append(f.allocLog, "array")
	ptr := f.nextPtr
	f.nextPtr += size + 8
	return ptr, nil
}

func (f *fakeExports) InputJSONAlloc(ctx context.Context, slot int32, size uint32) (uint32, error) {
	f.allocLog = append(f.allocLog, "json")
	ptr := f.nextPtr
	f.nextPtr += size + 8
	return ptr, nil
}

func (f *fakeExports) OutputArrayAddress(ctx context.Context, slot, sub int32) (uint32, error) {
	f.subAccessCalls++
	b := f.outputSubs[[2]int32{slot, sub}]
	ptr := f.nextPtr
	f.nextPtr += uint32(len(b)) + 8
	if err := f.a.WriteBytes(ptr, b); err != nil {
		return 0, err
	}
	return ptr, nil
}

func (f *fakeExports) OutputArraySize(ctx context.Context, slot, sub int32) (uint32, error) {
	return uint32(len(f.outputSubs[[2]int32{slot, sub}])), nil
}

func (f *fakeExports) OutputJSONAddress(ctx context.Context, slot int32) (uint32, error) {
	b := f.outputJSON[slot]
	ptr := f.nextPtr
	f.nextPtr += uint32(len(b)) + 8
	if err := f.a.WriteBytes(ptr, b); err != nil {
		return 0, err
	}
	return ptr, nil
}

func (f *fakeExports) OutputJSONSize(ctx context.Context, slot int32) (uint32, error) {
	return uint32(len(f.outputJSON[slot])), nil
}

func TestEncodeDecodeTextStreamRoundTrip(t *testing.T) {
	ctx := context.Background()
	fx := newFakeExports(t)

	in := datamodel.NewTextStreamInput("hello")
	if err := EncodeInput(ctx, 0, in, fx); err != nil {
		t.Fatalf("EncodeInput: %v", err)
	}

	// Simulate an identity guest: copy whatever JSON the host wrote for
	// input slot 0 isn't directly observable here, so instead stage the
	// output descriptor/array as the host would expect for an echo guest.
	fx.outputSubs[[2]int32{0, 0}] = []byte("hello")
	fx.outputJSON[0] = []byte(`{"size":5,"data":"data:application/vnd.itk.address,0:0"}`)

	out, err := DecodeOutput(ctx, 0, datamodel.NewTextStreamOutput(), fx)
	if err != nil {
		t.Fatalf("DecodeOutput: %v", err)
	}
	if out.TextStream == nil || out.TextStream.Data != "hello" {
		t.Errorf("decoded = %+v, want Data=hello", out.TextStream)
	}
}

func TestEncodeBinaryStreamAllocatesOnlyWhenNonEmpty(t *testing.T) {
	ctx := context.Background()
	fx := newFakeExports(t)

	in := datamodel.NewBinaryStreamInput(nil)
	if err := EncodeInput(ctx, 0, in, fx); err != nil {
		t.Fatalf("EncodeInput: %v", err)
	}
	for _, call := range fx.allocLog {
		if call == "array" {
			t.Errorf("expected no array allocation for empty stream, got log %v", fx.allocLog)
		}
	}
}

func TestDecodeMeshEmptySubBuffers(t *testing.T) {
	ctx := context.Background()
	fx := newFakeExports(t)

	fx.outputJSON[0] = []byte(`{
		"meshType": {"dimension":3,"pointComponentType":"float32","cellComponentType":"uint32","pointPixelComponentType":"float32","cellPixelComponentType":"float32"},
		"name": "",
		"numberOfPoints": 0, "points": "",
		"numberOfCells": 0, "cells": "",
		"cellBufferSize": 0,
		"numberOfPointPixels": 0, "pointData": "",
		"numberOfCellPixels": 0, "cellData": ""
	}`)

	out, err := DecodeOutput(ctx, 0, datamodel.NewMeshOutput(), fx)
	if err != nil {
		t.Fatalf("DecodeOutput: %v", err)
	}
	if out.Mesh.Points.Len() != 0 || out.Mesh.Cells.Len() != 0 {
		t.Errorf("expected zero-length typed arrays, got %+v", out.Mesh)
	}
	if fx.subAccessCalls != 0 {
		t.Errorf("expected zero output_array_address calls for gated-empty sub-buffers, got %d", fx.subAccessCalls)
	}
}

func TestDecodePolyDataAssignsEmptyFieldsCorrectly(t *testing.T) {
	ctx := context.Background()
	fx := newFakeExports(t)

	fx.outputJSON[0] = []byte(`{
		"polyDataType": {"pointPixelComponentType":"float32","cellPixelComponentType":"float32"},
		"name": "",
		"numberOfPoints": 0, "points": "",
		"verticesBufferSize": 0, "vertices": "",
		"linesBufferSize": 0, "lines": "",
		"polygonsBufferSize": 0, "polygons": "",
		"triangleStripsBufferSize": 0, "triangleStrips": "",
		"numberOfPointPixels": 0, "pointData": "",
		"numberOfCellPixels": 0, "cellData": ""
	}`)

	out, err := DecodeOutput(ctx, 0, datamodel.NewPolyDataOutput(), fx)
	if err != nil {
		t.Fatalf("DecodeOutput: %v", err)
	}
	if out.PolyData.PointData.Len() != 0 {
		t.Errorf("PointData.Len() = %d, want 0", out.PolyData.PointData.Len())
	}
	if out.PolyData.CellData.Len() != 0 {
		t.Errorf("CellData.Len() = %d, want 0", out.PolyData.CellData.Len())
	}
	if out.PolyData.TriangleStrips.Len() != 0 {
		t.Errorf("TriangleStrips.Len() = %d, want 0", out.PolyData.TriangleStrips.Len())
	}
	if out.PolyData.PointData.ComponentType != numeric.Float32 {
		t.Errorf("PointData.ComponentType = %v, want float32 (not mis-assigned to triangleStrips' uint32)", out.PolyData.PointData.ComponentType)
	}
}

func TestDecodeFileOutputPassesThrough(t *testing.T) {
	ctx := context.Background()
	fx := newFakeExports(t)

	template := datamodel.NewBinaryFileOutput("/tmp/out.bin")
	out, err := DecodeOutput(ctx, 0, template, fx)
	if err != nil {
		t.Fatalf("DecodeOutput: %v", err)
	}
	if out.BinaryFile == nil || out.BinaryFile.Path != "/tmp/out.bin" {
		t.Errorf("out = %+v, want unchanged BinaryFile path", out.BinaryFile)
	}
}

func TestEncodeFileInputIsNoOp(t *testing.T) {
	ctx := context.Background()
	fx := newFakeExports(t)

	in := datamodel.NewBinaryFileInput("/tmp/in.bin")
	if err := EncodeInput(ctx, 0, in, fx); err != nil {
		t.Fatalf("EncodeInput: %v", err)
	}
	if len(fx.allocLog) != 0 {
		t.Errorf("expected no allocations for file input, got %v", fx.allocLog)
	}
}
