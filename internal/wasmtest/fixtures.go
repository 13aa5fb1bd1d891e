package wasmtest

// MemoryOnly returns a module exporting only a memory of the given page
// count, for tests that just need a valid api.Memory to read/write (arena,
// codec's fake guest exports).
func MemoryOnly(pages uint32) []byte {
	return Module{MemoryPages: pages, MemoryExport: "memory"}.Build()
}

// WasiModule returns a module that imports proc_exit from wasiModuleName,
// exports a one-page memory, and optionally exports an empty _initialize,
// for engine's WASI-version-detection tests.
func WasiModule(wasiModuleName string, exportInitialize bool) []byte {
	m := Module{
		Imports: []Import{
			{Module: wasiModuleName, Name: "proc_exit", Sig: Sig{Params: []ValType{I32}}},
		},
		MemoryPages:  1,
		MemoryExport: "memory",
	}
	if exportInitialize {
		m.Funcs = []Func{{Sig: Sig{}, Export: "_initialize"}}
	}
	return m.Build()
}

// UnrecognizedImportModule returns a module that imports from a host
// module name that is neither wasi_snapshot_preview1 nor wasi_unstable.
func UnrecognizedImportModule() []byte {
	m := Module{
		Imports: []Import{
			{Module: "env", Name: "something", Sig: Sig{}},
		},
		MemoryPages:  1,
		MemoryExport: "memory",
	}
	return m.Build()
}

// MissingExports returns a module that imports proc_exit and exports
// memory, but declares none of the fixed itk-wasm exports, for driver's
// missing-export error path.
func MissingExports() []byte {
	return WasiModule("wasi_snapshot_preview1", false)
}

// EchoGuest returns a module implementing the full fixed itk-wasm ABI as a
// single-slot identity echo: whatever the host stages for slot 0 is read
// back unchanged as output slot 0. It uses a global-variable bump
// allocator and never touches the bytes the host writes, so it exercises
// the full Driver/Pipeline state machine (encode -> delayed_start ->
// decode -> delayed_exit) without a real compiled itk-wasm binary.
//
// Globals: 0=bump 1=inArrayPtr 2=inArraySize 3=inJsonPtr 4=inJsonSize.
func EchoGuest() []byte {
	i32 := Sig{Params: []ValType{I32}}
	i32i32i32 := Sig{Params: []ValType{I32, I32, I32}, Results: []ValType{I32}}
	i32i32i32i32 := Sig{Params: []ValType{I32, I32, I32, I32}, Results: []ValType{I32}}
	i32i32 := Sig{Params: []ValType{I32, I32}, Results: []ValType{I32}}
	noResult := Sig{}
	i32Result := Sig{Results: []ValType{I32}}

	inputArrayAlloc := Func{
		Sig:    i32i32i32i32, // run, slot, sub, size
		Locals: []ValType{I32},
		Body: Concat(
			GlobalGet(0), LocalSet(4), // ptr = bump
			GlobalGet(0), LocalGet(3), I32Add(), GlobalSet(0), // bump += size
			LocalGet(4), GlobalSet(1), // inArrayPtr = ptr
			LocalGet(3), GlobalSet(2), // inArraySize = size
			LocalGet(4), // return ptr
		),
		Export: "itk_wasm_input_array_alloc",
	}
	inputJSONAlloc := Func{
		Sig:    i32i32i32, // run, slot, size
		Locals: []ValType{I32},
		Body: Concat(
			GlobalGet(0), LocalSet(3), // ptr = bump
			GlobalGet(0), LocalGet(2), I32Add(), GlobalSet(0), // bump += size
			LocalGet(3), GlobalSet(3), // inJsonPtr = ptr
			LocalGet(2), GlobalSet(4), // inJsonSize = size
			LocalGet(3), // return ptr
		),
		Export: "itk_wasm_input_json_alloc",
	}
	outputArrayAddress := Func{Sig: i32i32i32, Body: GlobalGet(1), Export: "itk_wasm_output_array_address"}
	outputArraySize := Func{Sig: i32i32i32, Body: GlobalGet(2), Export: "itk_wasm_output_array_size"}
	outputJSONAddress := Func{Sig: i32i32, Body: GlobalGet(3), Export: "itk_wasm_output_json_address"}
	outputJSONSize := Func{Sig: i32i32, Body: GlobalGet(4), Export: "itk_wasm_output_json_size"}
	delayedStart := Func{Sig: i32Result, Body: I32Const(0), Export: "itk_wasm_delayed_start"}
	delayedExit := Func{Sig: i32, Body: nil, Export: "itk_wasm_delayed_exit"}
	initialize := Func{Sig: noResult, Export: "_initialize"}

	m := Module{
		Imports: []Import{
			{Module: "wasi_snapshot_preview1", Name: "proc_exit", Sig: i32},
		},
		MemoryPages:  4,
		MemoryExport: "memory",
		Globals: []Global{
			{Mutable: true, Init: 2048}, // bump
			{Mutable: true, Init: 0},    // inArrayPtr
			{Mutable: true, Init: 0},    // inArraySize
			{Mutable: true, Init: 0},    // inJsonPtr
			{Mutable: true, Init: 0},    // inJsonSize
		},
		Funcs: []Func{
			initialize,
			inputArrayAlloc,
			inputJSONAlloc,
			outputArrayAddress,
			outputArraySize,
			outputJSONAddress,
			outputJSONSize,
			delayedStart,
			delayedExit,
		},
	}
	return m.Build()
}
