// Package wasmtest hand-assembles minimal WebAssembly binaries for this
// repository's own tests: a handful of imports/globals/functions encoded
// directly to the module binary format, with no text-format front end.
package wasmtest

// ValType is a WebAssembly value type, encoded as its binary-format byte.
type ValType byte

const (
	I32 ValType = 0x7F
	I64 ValType = 0x7E
)

// Sig is a function signature (param and result value types).
type Sig struct {
	Params  []ValType
	Results []ValType
}

// Import is a single imported function.
type Import struct {
	Module string
	Name   string
	Sig    Sig
}

// Global is a module-level global, always i32 (the only type this
// repository's fixtures need).
type Global struct {
	Mutable bool
	Init    int32
	Export  string // "" = not exported
}

// Func is a defined function body, expressed as raw instruction bytes (see
// the opcode helpers below). The trailing `end` opcode is added by Build.
type Func struct {
	Sig    Sig
	Locals []ValType // additional locals beyond the signature's params
	Body   []byte
	Export string // "" = not exported
}

// Module is the declarative description of a tiny wasm binary: one memory,
// a handful of globals, imported and defined functions.
type Module struct {
	Imports      []Import
	MemoryPages  uint32
	MemoryExport string // "" = memory not exported (no memory section unless MemoryPages > 0)
	Globals      []Global
	Funcs        []Func
}

// Opcode helpers, one per instruction this package's fixtures use.
func LocalGet(i uint32) []byte  { return withIndex(0x20, i) }
func LocalSet(i uint32) []byte  { return withIndex(0x21, i) }
func GlobalGet(i uint32) []byte { return withIndex(0x23, i) }
func GlobalSet(i uint32) []byte { return withIndex(0x24, i) }
func I32Add() []byte            { return []byte{0x6A} }

func I32Const(v int32) []byte {
	return append([]byte{0x41}, sleb128(int64(v))...)
}

func withIndex(op byte, i uint32) []byte {
	return append([]byte{op}, uleb128(uint64(i))...)
}

// Concat joins instruction byte slices into one function body.
func Concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Build encodes m into a complete wasm binary module.
func (m Module) Build() []byte {
	out := []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}

	sigs := make([]Sig, 0, len(m.Imports)+len(m.Funcs))
	for _, imp := range m.Imports {
		sigs = append(sigs, imp.Sig)
	}
	for _, f := range m.Funcs {
		sigs = append(sigs, f.Sig)
	}
	out = append(out, section(1, encodeTypes(sigs))...)

	if len(m.Imports) > 0 {
		out = append(out, section(2, encodeImports(m.Imports))...)
	}
	if len(m.Funcs) > 0 {
		out = append(out, section(3, encodeFuncTypeIndices(len(m.Imports), len(m.Funcs)))...)
	}
	if m.MemoryExport != "" || m.MemoryPages > 0 {
		out = append(out, section(5, encodeMemory(m.MemoryPages))...)
	}
	if len(m.Globals) > 0 {
		out = append(out, section(6, encodeGlobals(m.Globals))...)
	}
	if exp := encodeExports(m); len(exp) > 0 {
		out = append(out, section(7, exp)...)
	}
	if len(m.Funcs) > 0 {
		out = append(out, section(10, encodeCode(m.Funcs))...)
	}
	return out
}

func section(id byte, content []byte) []byte {
	return append([]byte{id}, append(uleb128(uint64(len(content))), content...)...)
}

func encodeName(s string) []byte {
	return append(uleb128(uint64(len(s))), []byte(s)...)
}

func encodeTypes(sigs []Sig) []byte {
	out := uleb128(uint64(len(sigs)))
	for _, s := range sigs {
		out = append(out, 0x60)
		out = append(out, uleb128(uint64(len(s.Params)))...)
		for _, p := range s.Params {
			out = append(out, byte(p))
		}
		out = append(out, uleb128(uint64(len(s.Results)))...)
		for _, r := range s.Results {
			out = append(out, byte(r))
		}
	}
	return out
}

func encodeImports(imports []Import) []byte {
	out := uleb128(uint64(len(imports)))
	for i, imp := range imports {
		out = append(out, encodeName(imp.Module)...)
		out = append(out, encodeName(imp.Name)...)
		out = append(out, 0x00) // func import
		out = append(out, uleb128(uint64(i))...)
	}
	return out
}

func encodeFuncTypeIndices(numImports, numFuncs int) []byte {
	out := uleb128(uint64(numFuncs))
	for i := 0; i < numFuncs; i++ {
		out = append(out, uleb128(uint64(numImports+i))...)
	}
	return out
}

func encodeMemory(pages uint32) []byte {
	out := uleb128(1)
	out = append(out, 0x00) // flags: min only, no max
	out = append(out, uleb128(uint64(pages))...)
	return out
}

func encodeGlobals(globals []Global) []byte {
	out := uleb128(uint64(len(globals)))
	for _, g := range globals {
		out = append(out, byte(I32))
		if g.Mutable {
			out = append(out, 0x01)
		} else {
			out = append(out, 0x00)
		}
		out = append(out, 0x41) // i32.const
		out = append(out, sleb128(int64(g.Init))...)
		out = append(out, 0x0B) // end
	}
	return out
}

type export struct {
	name string
	kind byte
	idx  uint32
}

func encodeExports(m Module) []byte {
	var exports []export
	if m.MemoryExport != "" {
		exports = append(exports, export{m.MemoryExport, 0x02, 0})
	}
	for i, g := range m.Globals {
		if g.Export != "" {
			exports = append(exports, export{g.Export, 0x03, uint32(i)})
		}
	}
	for i, f := range m.Funcs {
		if f.Export != "" {
			exports = append(exports, export{f.Export, 0x00, uint32(len(m.Imports) + i)})
		}
	}
	if len(exports) == 0 {
		return nil
	}
	out := uleb128(uint64(len(exports)))
	for _, e := range exports {
		out = append(out, encodeName(e.name)...)
		out = append(out, e.kind)
		out = append(out, uleb128(uint64(e.idx))...)
	}
	return out
}

func encodeCode(funcs []Func) []byte {
	out := uleb128(uint64(len(funcs)))
	for _, f := range funcs {
		body := uleb128(uint64(len(f.Locals)))
		for _, lt := range f.Locals {
			body = append(body, uleb128(1)...)
			body = append(body, byte(lt))
		}
		body = append(body, f.Body...)
		body = append(body, 0x0B) // end
		out = append(out, uleb128(uint64(len(body)))...)
		out = append(out, body...)
	}
	return out
}

func uleb128(v uint64) []byte {
	var out []byte
	for {
		b := byte(v & 0x7F)
		v >>= 7
		if v != 0 {
			out = append(out, b|0x80)
		} else {
			out = append(out, b)
			break
		}
	}
	return out
}

func sleb128(v int64) []byte {
	var out []byte
	for {
		b := byte(v & 0x7F)
		v >>= 7
		signBitSet := b&0x40 != 0
		if (v == 0 && !signBitSet) || (v == -1 && signBitSet) {
			out = append(out, b)
			break
		}
		out = append(out, b|0x80)
	}
	return out
}
