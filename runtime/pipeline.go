package runtime

import (
	"context"

	"github.com/itkwasm/wasm-pipeline/datamodel"
	"github.com/itkwasm/wasm-pipeline/driver"
	"github.com/itkwasm/wasm-pipeline/engine"
)

// Pipeline is the caller-facing entry point (spec.md §6): Pipeline.new
// compiles a module once; Pipeline.run may be called any number of times,
// each run getting a fresh Instance.
type Pipeline struct {
	eng    *engine.Engine
	module *engine.CompiledModule
}

type config struct {
	engineConfig engine.Config
}

// Option configures Pipeline construction.
type Option func(*config)

// WithEngineConfig overrides the wazero engine configuration (e.g. a
// memory page limit) used to compile and run the module.
func WithEngineConfig(c engine.Config) Option {
	return func(cfg *config) { cfg.engineConfig = c }
}

func buildConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// New compiles source as raw wasm bytes into a Pipeline (spec.md §6:
// "Pipeline.new(source: bytes | path)").
func New(ctx context.Context, source []byte, opts ...Option) (*Pipeline, error) {
	cfg := buildConfig(opts)

	eng, err := engine.NewWithConfig(ctx, cfg.engineConfig)
	if err != nil {
		return nil, err
	}
	module, err := eng.Compile(ctx, source)
	if err != nil {
		_ = eng.Close(ctx)
		return nil, err
	}
	return &Pipeline{eng: eng, module: module}, nil
}

// NewFromFile compiles the wasm module at path into a Pipeline, the
// filesystem-path overload of Pipeline.new.
func NewFromFile(ctx context.Context, path string, opts ...Option) (*Pipeline, error) {
	cfg := buildConfig(opts)

	eng, err := engine.NewWithConfig(ctx, cfg.engineConfig)
	if err != nil {
		return nil, err
	}
	module, err := eng.CompileFile(ctx, path)
	if err != nil {
		_ = eng.Close(ctx)
		return nil, err
	}
	return &Pipeline{eng: eng, module: module}, nil
}

// WasiVersion reports the WASI snapshot this pipeline's module imports
// from.
func (p *Pipeline) WasiVersion() engine.WasiVersion {
	return p.module.WasiVersion()
}

// Module exposes the underlying compiled module, for introspection tools
// (cmd/pipeline-inspect) that list a module's exports.
func (p *Pipeline) Module() *engine.CompiledModule {
	return p.module
}

// Run executes one fresh instance of the pipeline (spec.md §6:
// "Pipeline.run(args, outputs, inputs) -> outputs"). A non-zero guest
// return code yields an empty output slice, not an error (spec.md §7).
func (p *Pipeline) Run(ctx context.Context, args []string, inputs []datamodel.PipelineInput, outputs []datamodel.PipelineOutput) ([]datamodel.PipelineOutput, error) {
	result, err := p.RunWithResult(ctx, args, inputs, outputs)
	if err != nil {
		return nil, err
	}
	return result.Outputs, nil
}

// RunWithResult is Run, additionally exposing the guest's process-style
// return code (spec.md §7: "An implementation MAY additionally expose the
// return code; the original surface does not").
func (p *Pipeline) RunWithResult(ctx context.Context, args []string, inputs []datamodel.PipelineInput, outputs []datamodel.PipelineOutput) (driver.RunResult, error) {
	d := driver.New(p.module)
	Logger().Sugar().Debugw("pipeline run starting", "args", args, "numInputs", len(inputs), "numOutputs", len(outputs))
	result, err := d.Run(ctx, args, inputs, outputs)
	if err != nil {
		Logger().Sugar().Debugw("pipeline run failed", "error", err)
		return driver.RunResult{}, err
	}
	Logger().Sugar().Debugw("pipeline run finished", "returnCode", result.ReturnCode, "numOutputs", len(result.Outputs))
	return result, nil
}

// Close releases the pipeline's compiled module and engine.
func (p *Pipeline) Close(ctx context.Context) error {
	if err := p.module.Close(ctx); err != nil {
		return err
	}
	return p.eng.Close(ctx)
}
