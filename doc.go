// Package wasmpipeline is a host runtime for itk-wasm pipeline modules: it
// compiles a WASI-ABI WebAssembly guest, stages typed scientific-imaging
// inputs (images, meshes, polydata, streams, files) into guest linear
// memory, drives the guest's delayed-start/delayed-exit entry points, and
// decodes typed outputs back out.
//
// The package layout mirrors the runtime's own decomposition:
//
//	engine    - compiles modules and detects their WASI snapshot version
//	wasienv   - builds the WASI environment (args, env, preopens) for one run
//	arena     - bounds-checked reads/writes into an instance's linear memory
//	numeric   - converts raw bytes to/from typed scalar arrays
//	datamodel - the typed payload values (Image, Mesh, PolyData, streams, files)
//	codec     - per-InterfaceKind encode/decode between payloads and memory
//	driver    - the Fresh->...->Exited state machine for a single run
//	runtime   - the public Pipeline façade most callers use
//
// This root package holds only the address-URL mini-format that the wire
// protocol uses to embed guest pointers inside JSON descriptors.
package wasmpipeline
