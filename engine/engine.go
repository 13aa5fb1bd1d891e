package engine

import (
	"context"
	"os"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/itkwasm/wasm-pipeline/errors"
)

// Config tunes the wazero runtime backing an Engine.
type Config struct {
	// MemoryLimitPages caps a guest instance's linear memory growth, in
	// 64KiB wasm pages. Zero means no additional limit beyond the module's
	// own declared maximum.
	MemoryLimitPages uint32
}

// Engine owns one wazero.Runtime and its single wasi_snapshot_preview1 host
// module instantiation, shared by every Module compiled through it
// (spec.md §4.1).
type Engine struct {
	runtime wazero.Runtime
	wasi    api.Module
}

// New constructs an Engine with default configuration.
func New(ctx context.Context) (*Engine, error) {
	return NewWithConfig(ctx, Config{})
}

// NewWithConfig constructs an Engine, binding WASI once up front so every
// Module compiled from it shares the same host module instance.
func NewWithConfig(ctx context.Context, cfg Config) (*Engine, error) {
	rtCfg := wazero.NewRuntimeConfig()
	if cfg.MemoryLimitPages > 0 {
		rtCfg = rtCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}
	r := wazero.NewRuntimeWithConfig(ctx, rtCfg)

	wasiMod, err := InstantiateWASI(ctx, r)
	if err != nil {
		_ = r.Close(ctx)
		return nil, errors.Wrap(errors.PhaseWASI, errors.KindUnsupportedWasiVersion, err, "bind wasi_snapshot_preview1 host module")
	}

	return &Engine{runtime: r, wasi: wasiMod}, nil
}

// Close releases the underlying wazero runtime and every Module compiled
// from it.
func (e *Engine) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// Runtime returns the wazero.Runtime backing this Engine, for packages
// (driver) that need to instantiate a CompiledModule.
func (e *Engine) Runtime() wazero.Runtime {
	return e.runtime
}

// Compile reads raw wasm bytes into a reusable, immutable CompiledModule
// (spec.md §4.1). Fails with errors.ModuleCompileError on invalid
// bytecode, or errors.UnsupportedWasiVersion if no recognized WASI
// snapshot is imported.
func (e *Engine) Compile(ctx context.Context, source []byte) (*CompiledModule, error) {
	compiled, err := e.runtime.CompileModule(ctx, source)
	if err != nil {
		return nil, errors.ModuleCompileError(err)
	}

	version, err := detectWasiVersion(compiled.ImportedFunctions())
	if err != nil {
		_ = compiled.Close(ctx)
		return nil, err
	}

	return &CompiledModule{
		compiled:    compiled,
		runtime:     e.runtime,
		wasiVersion: version,
	}, nil
}

// CompileFile reads the file at path fully into memory and compiles it
// (spec.md §4.1: "source is either raw bytes or a filesystem path").
func (e *Engine) CompileFile(ctx context.Context, path string) (*CompiledModule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ModuleCompileError(err)
	}
	return e.Compile(ctx, data)
}

// CompiledModule is an immutable, shareable compiled guest artifact
// (spec.md §3: "Module ... shareable across runs ... destroyed when no
// instance references it").
type CompiledModule struct {
	compiled    wazero.CompiledModule
	runtime     wazero.Runtime
	wasiVersion WasiVersion
}

// WasiVersion reports the WASI snapshot this module imports from.
func (m *CompiledModule) WasiVersion() WasiVersion {
	return m.wasiVersion
}

// Wazero exposes the underlying wazero.CompiledModule, for the driver to
// instantiate with a per-run wazero.ModuleConfig.
func (m *CompiledModule) Wazero() wazero.CompiledModule {
	return m.compiled
}

// Runtime returns the wazero.Runtime the module was compiled against.
func (m *CompiledModule) Runtime() wazero.Runtime {
	return m.runtime
}

// RequiredExports returns the names of the exports every itk-wasm guest
// must provide (spec.md §6), in a fixed, documented order.
func RequiredExports() []string {
	return []string{
		"memory",
		"_initialize",
		"itk_wasm_input_array_alloc",
		"itk_wasm_input_json_alloc",
		"itk_wasm_output_array_address",
		"itk_wasm_output_array_size",
		"itk_wasm_output_json_address",
		"itk_wasm_output_json_size",
		"itk_wasm_delayed_start",
		"itk_wasm_delayed_exit",
	}
}

// Close releases the compiled module's resources.
func (m *CompiledModule) Close(ctx context.Context) error {
	return m.compiled.Close(ctx)
}
