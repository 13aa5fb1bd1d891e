// Package errors provides the structured error type used across the
// pipeline runtime.
package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the pipeline lifecycle the error occurred.
type Phase string

const (
	PhaseCompile Phase = "compile" // module loading/compilation
	PhaseWASI    Phase = "wasi"    // WASI version detection / environment build
	PhaseMemory  Phase = "memory"  // arena bounds checks
	PhaseEncode  Phase = "encode"  // host -> guest marshalling
	PhaseDecode  Phase = "decode"  // guest -> host marshalling
	PhaseRuntime Phase = "runtime" // driver lifecycle / guest invocation
	PhaseNumeric Phase = "numeric" // typed buffer bridge
)

// Kind categorizes the error, one per spec.md §7 error kind.
type Kind string

const (
	KindModuleCompile            Kind = "module_compile_error"
	KindUnsupportedWasiVersion   Kind = "unsupported_wasi_version"
	KindMissingExport            Kind = "missing_export"
	KindInitTrap                 Kind = "init_trap"
	KindEncode                   Kind = "encode_error"
	KindGuestTrap                Kind = "guest_trap"
	KindDecode                   Kind = "decode_error"
	KindOutOfBounds              Kind = "out_of_bounds"
	KindUnsupportedComponentType Kind = "unsupported_component_type"
	KindMisalignedBuffer         Kind = "misaligned_buffer"
	KindUnsupportedInterfaceKind Kind = "unsupported_interface_kind"
)

// Error is the structured error type returned by every package in this
// module.
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	// Slot is the input/output slot index associated with the error, or -1
	// when not applicable (spec.md §7: EncodeError{slot, cause}, DecodeError{slot, cause}).
	Slot int
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Slot >= 0 {
		fmt.Fprintf(&b, " slot=%d", e.Slot)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target matches this error's phase and kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Phase == t.Phase && e.Kind == t.Kind
}

func newErr(phase Phase, kind Kind, detail string) *Error {
	return &Error{Phase: phase, Kind: kind, Detail: detail, Slot: -1}
}

// ModuleCompileError wraps a failure to compile guest bytecode (C1).
func ModuleCompileError(cause error) *Error {
	e := newErr(PhaseCompile, KindModuleCompile, "compile module")
	e.Cause = cause
	return e
}

// UnsupportedWasiVersion reports a module whose imports match no known
// WASI snapshot (C1).
func UnsupportedWasiVersion(detail string) *Error {
	return newErr(PhaseWASI, KindUnsupportedWasiVersion, detail)
}

// MissingExport reports an absent required guest export (§6) discovered
// during the Instantiated transition (C5).
func MissingExport(name string) *Error {
	return newErr(PhaseRuntime, KindMissingExport, fmt.Sprintf("required export %q not found", name))
}

// InitTrap wraps a trap raised by the guest's _initialize call (C5).
func InitTrap(cause error) *Error {
	e := newErr(PhaseRuntime, KindInitTrap, "_initialize trapped")
	e.Cause = cause
	return e
}

// EncodeErrorFor wraps a failure encoding one input slot (C4/C5).
func EncodeErrorFor(slot int, cause error) *Error {
	e := newErr(PhaseEncode, KindEncode, "encode input")
	e.Cause = cause
	e.Slot = slot
	return e
}

// GuestTrap wraps a trap raised by itk_wasm_delayed_start (C5).
func GuestTrap(cause error) *Error {
	e := newErr(PhaseRuntime, KindGuestTrap, "guest call trapped")
	e.Cause = cause
	return e
}

// DecodeErrorFor wraps a failure decoding one output slot (C4/C5).
func DecodeErrorFor(slot int, cause error) *Error {
	e := newErr(PhaseDecode, KindDecode, "decode output")
	e.Cause = cause
	e.Slot = slot
	return e
}

// OutOfBounds reports an arena access outside current linear memory (C3).
func OutOfBounds(ptr, length, memSize uint32) *Error {
	return newErr(PhaseMemory, KindOutOfBounds,
		fmt.Sprintf("range [%d, %d) outside memory of size %d", ptr, ptr+length, memSize))
}

// UnsupportedComponentType reports a scalar component type tag outside the
// fixed table of §4.6 (C6).
func UnsupportedComponentType(tag string) *Error {
	return newErr(PhaseNumeric, KindUnsupportedComponentType, fmt.Sprintf("unsupported component type %q", tag))
}

// MisalignedBuffer reports a byte slice whose length is not a multiple of
// the scalar element size (C6).
func MisalignedBuffer(length int, elementSize int) *Error {
	return newErr(PhaseNumeric, KindMisalignedBuffer,
		fmt.Sprintf("length %d is not a multiple of element size %d", length, elementSize))
}

// UnsupportedInterfaceKind reports an InterfaceKind outside the closed
// enumeration of spec.md §3 (C4).
func UnsupportedInterfaceKind(kind string) *Error {
	return newErr(PhaseEncode, KindUnsupportedInterfaceKind, fmt.Sprintf("unsupported interface kind %q", kind))
}

// Wrap attaches phase/kind context to an arbitrary cause.
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	e := newErr(phase, kind, detail)
	e.Cause = cause
	return e
}
