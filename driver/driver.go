package driver

import (
	"context"

	"github.com/itkwasm/wasm-pipeline/codec"
	"github.com/itkwasm/wasm-pipeline/datamodel"
	"github.com/itkwasm/wasm-pipeline/engine"
	"github.com/itkwasm/wasm-pipeline/errors"
	"github.com/itkwasm/wasm-pipeline/wasienv"
)

// State is one stage of a run's lifecycle (spec.md §4.5).
type State int

const (
	StateFresh State = iota
	StateInstantiated
	StateInitialized
	StateInputsStaged
	StateExecuting
	StateOutputsDecoded
	StateExited
)

// RunResult is the result of one pipeline run. ReturnCode is an additional
// value beyond the original surface (spec.md §7: "An implementation MAY
// additionally expose the return code").
type RunResult struct {
	Outputs    []datamodel.PipelineOutput
	ReturnCode int32
}

// Driver orchestrates one run of a CompiledModule (spec.md §4.5).
type Driver struct {
	module *engine.CompiledModule
	state  State
}

// New returns a Driver bound to module, ready to Run.
func New(module *engine.CompiledModule) *Driver {
	return &Driver{module: module, state: StateFresh}
}

// State reports the driver's current lifecycle state.
func (d *Driver) State() State { return d.state }

// Run executes the full Fresh->...->Exited lifecycle once (spec.md §4.5).
// No retry: any failure aborts the run with that error. Once the guest's
// exports are resolved, delayed_exit is still attempted on a best-effort
// basis and its own failure is ignored.
func (d *Driver) Run(ctx context.Context, args []string, inputs []datamodel.PipelineInput, outputs []datamodel.PipelineOutput) (RunResult, error) {
	cfg := wasienv.NewBuilder().
		WithArgs(args...).
		WithInputFileDirs(inputs).
		WithOutputFileDirs(outputs).
		Build()

	mod, err := d.module.Runtime().InstantiateModule(ctx, d.module.Wazero(), cfg)
	if err != nil {
		return RunResult{}, errors.Wrap(errors.PhaseRuntime, errors.KindMissingExport, err, "instantiate module")
	}
	defer mod.Close(ctx)

	inst, err := resolveInstance(mod)
	if err != nil {
		return RunResult{}, err
	}
	d.state = StateInstantiated

	if err := inst.initialize(ctx); err != nil {
		d.bestEffortExit(ctx, inst, 1)
		return RunResult{}, errors.InitTrap(err)
	}
	d.state = StateInitialized

	for slot, in := range inputs {
		if err := codec.EncodeInput(ctx, slot, in, inst); err != nil {
			d.bestEffortExit(ctx, inst, 1)
			return RunResult{}, err
		}
	}
	d.state = StateInputsStaged

	d.state = StateExecuting
	returnCode, err := inst.delayedStart(ctx)
	if err != nil {
		d.bestEffortExit(ctx, inst, 1)
		return RunResult{}, errors.GuestTrap(err)
	}

	var decoded []datamodel.PipelineOutput
	if returnCode == 0 {
		decoded = make([]datamodel.PipelineOutput, 0, len(outputs))
		for slot, template := range outputs {
			out, err := codec.DecodeOutput(ctx, slot, template, inst)
			if err != nil {
				d.bestEffortExit(ctx, inst, 1)
				return RunResult{}, err
			}
			decoded = append(decoded, out)
		}
	}
	d.state = StateOutputsDecoded

	_ = inst.delayedExit(ctx, returnCode)
	d.state = StateExited

	return RunResult{Outputs: decoded, ReturnCode: returnCode}, nil
}

// bestEffortExit attempts delayed_exit after an abort, ignoring any
// secondary failure (spec.md §4.5, §7: "the Driver attempts
// delayed_exit(nonzero) on a best-effort basis and ignores any secondary
// failure").
func (d *Driver) bestEffortExit(ctx context.Context, inst *instance, code int32) {
	_ = inst.delayedExit(ctx, code)
}
