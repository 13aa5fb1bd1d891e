package driver

import (
	"context"
	"testing"

	"github.com/itkwasm/wasm-pipeline/datamodel"
	"github.com/itkwasm/wasm-pipeline/engine"
	"github.com/itkwasm/wasm-pipeline/internal/wasmtest"
)

func compileEcho(t *testing.T) *engine.CompiledModule {
	t.Helper()
	ctx := context.Background()
	e, err := engine.New(ctx)
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	t.Cleanup(func() { e.Close(ctx) })

	mod, err := e.Compile(ctx, wasmtest.EchoGuest())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	t.Cleanup(func() { mod.Close(ctx) })
	return mod
}

func TestDriverRunTextStreamEcho(t *testing.T) {
	ctx := context.Background()
	mod := compileEcho(t)

	d := New(mod)
	result, err := d.Run(ctx,
		[]string{"itk-wasm-pipeline", "echo"},
		[]datamodel.PipelineInput{datamodel.NewTextStreamInput("hello")},
		[]datamodel.PipelineOutput{datamodel.NewTextStreamOutput()},
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.ReturnCode != 0 {
		t.Errorf("ReturnCode = %d, want 0", result.ReturnCode)
	}
	if len(result.Outputs) != 1 {
		t.Fatalf("len(Outputs) = %d, want 1", len(result.Outputs))
	}
	if result.Outputs[0].TextStream == nil || result.Outputs[0].TextStream.Data != "hello" {
		t.Errorf("Outputs[0] = %+v, want TextStream.Data=hello", result.Outputs[0].TextStream)
	}
	if d.State() != StateExited {
		t.Errorf("State() = %v, want StateExited", d.State())
	}
}

func TestDriverRunBinaryStreamEcho(t *testing.T) {
	ctx := context.Background()
	mod := compileEcho(t)

	d := New(mod)
	result, err := d.Run(ctx,
		[]string{"itk-wasm-pipeline"},
		[]datamodel.PipelineInput{datamodel.NewBinaryStreamInput([]byte{0x00, 0xFF, 0x10, 0x20})},
		[]datamodel.PipelineOutput{datamodel.NewBinaryStreamOutput()},
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := result.Outputs[0].BinaryStream.Data
	want := []byte{0x00, 0xFF, 0x10, 0x20}
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("byte %d = %x, want %x", i, got[i], want[i])
		}
	}
}

func TestDriverRunMissingExport(t *testing.T) {
	ctx := context.Background()
	e, err := engine.New(ctx)
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	defer e.Close(ctx)

	mod, err := e.Compile(ctx, wasmtest.MissingExports())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	defer mod.Close(ctx)

	d := New(mod)
	_, err = d.Run(ctx, []string{"itk-wasm-pipeline"}, nil, nil)
	if err == nil {
		t.Fatal("expected MissingExport error")
	}
}
