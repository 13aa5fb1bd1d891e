package driver

import (
	"context"

	"github.com/tetratelabs/wazero/api"

	"github.com/itkwasm/wasm-pipeline/arena"
	"github.com/itkwasm/wasm-pipeline/errors"
)

// instance caches one run's guest export handles and linear memory view
// (spec.md §9, "Global export handles": "the design places them on the
// Instance record ... so re-runs cannot accidentally read a stale memory
// from a prior instance"). It implements codec.GuestExports.
type instance struct {
	mod   api.Module
	arena *arena.Arena

	initializeFn          api.Function
	inputArrayAllocFn      api.Function
	inputJSONAllocFn       api.Function
	outputArrayAddressFn   api.Function
	outputArraySizeFn      api.Function
	outputJSONAddressFn    api.Function
	outputJSONSizeFn       api.Function
	delayedStartFn         api.Function
	delayedExitFn          api.Function
}

// resolveInstance binds every required export (spec.md §6) onto a fresh
// instance record. Fails errors.MissingExport if any is absent.
func resolveInstance(mod api.Module) (*instance, error) {
	mem := mod.Memory()
	if mem == nil {
		return nil, errors.MissingExport("memory")
	}

	inst := &instance{mod: mod, arena: arena.New(mem)}

	required := map[string]*api.Function{
		"_initialize":                   &inst.initializeFn,
		"itk_wasm_input_array_alloc":    &inst.inputArrayAllocFn,
		"itk_wasm_input_json_alloc":     &inst.inputJSONAllocFn,
		"itk_wasm_output_array_address": &inst.outputArrayAddressFn,
		"itk_wasm_output_array_size":    &inst.outputArraySizeFn,
		"itk_wasm_output_json_address":  &inst.outputJSONAddressFn,
		"itk_wasm_output_json_size":     &inst.outputJSONSizeFn,
		"itk_wasm_delayed_start":        &inst.delayedStartFn,
		"itk_wasm_delayed_exit":         &inst.delayedExitFn,
	}
	for name, slot := range required {
		fn := mod.ExportedFunction(name)
		if fn == nil {
			return nil, errors.MissingExport(name)
		}
		*slot = fn
	}
	return inst, nil
}

func (i *instance) Arena() *arena.Arena { return i.arena }

func callReturningI32(ctx context.Context, fn api.Function, args ...uint64) (uint32, error) {
	res, err := fn.Call(ctx, args...)
	if err != nil {
		return 0, err
	}
	return uint32(res[0]), nil
}

// InputArrayAlloc implements codec.GuestExports.
func (i *instance) InputArrayAlloc(ctx context.Context, slot, sub int32, size uint32) (uint32, error) {
	return callReturningI32(ctx, i.inputArrayAllocFn, 0, uint64(uint32(slot)), uint64(uint32(sub)), uint64(size))
}

// InputJSONAlloc implements codec.GuestExports.
func (i *instance) InputJSONAlloc(ctx context.Context, slot int32, size uint32) (uint32, error) {
	return callReturningI32(ctx, i.inputJSONAllocFn, 0, uint64(uint32(slot)), uint64(size))
}

// OutputArrayAddress implements codec.GuestExports.
func (i *instance) OutputArrayAddress(ctx context.Context, slot, sub int32) (uint32, error) {
	return callReturningI32(ctx, i.outputArrayAddressFn, 0, uint64(uint32(slot)), uint64(uint32(sub)))
}

// OutputArraySize implements codec.GuestExports.
func (i *instance) OutputArraySize(ctx context.Context, slot, sub int32) (uint32, error) {
	return callReturningI32(ctx, i.outputArraySizeFn, 0, uint64(uint32(slot)), uint64(uint32(sub)))
}

// OutputJSONAddress implements codec.GuestExports.
func (i *instance) OutputJSONAddress(ctx context.Context, slot int32) (uint32, error) {
	return callReturningI32(ctx, i.outputJSONAddressFn, 0, uint64(uint32(slot)))
}

// OutputJSONSize implements codec.GuestExports.
func (i *instance) OutputJSONSize(ctx context.Context, slot int32) (uint32, error) {
	return callReturningI32(ctx, i.outputJSONSizeFn, 0, uint64(uint32(slot)))
}

// initialize invokes the guest's WASI reactor initializer.
func (i *instance) initialize(ctx context.Context) error {
	_, err := i.initializeFn.Call(ctx)
	return err
}

// delayedStart invokes the guest's main entry and returns its process-style
// return code.
func (i *instance) delayedStart(ctx context.Context) (int32, error) {
	res, err := i.delayedStartFn.Call(ctx)
	if err != nil {
		return 0, err
	}
	return int32(res[0]), nil
}

// delayedExit invokes the guest's exit hook. Errors are the caller's to
// decide whether to ignore (spec.md §4.5: "Always called ... on a
// best-effort basis").
func (i *instance) delayedExit(ctx context.Context, code int32) error {
	_, err := i.delayedExitFn.Call(ctx, uint64(uint32(code)))
	return err
}
