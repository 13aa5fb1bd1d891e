package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name:     "with slot",
			err:      EncodeErrorFor(2, errors.New("bad json")),
			contains: []string{"[encode]", "encode_error", "slot=2", "encode input", "bad json"},
		},
		{
			name:     "minimal error",
			err:      &Error{Phase: PhaseDecode, Kind: KindOutOfBounds, Slot: -1},
			contains: []string{"[decode]", "out_of_bounds"},
		},
		{
			name:     "error with cause",
			err:      Wrap(PhaseRuntime, KindGuestTrap, errors.New("underlying error"), "memory full"),
			contains: []string{"[runtime]", "guest_trap", "memory full", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(PhaseEncode, KindEncode, cause, "")

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{Phase: PhaseEncode, Kind: KindEncode, Slot: -1}

	if !err.Is(&Error{Phase: PhaseEncode, Kind: KindEncode}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindEncode}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseEncode, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseEncode, Kind: KindEncode}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("ModuleCompileError", func(t *testing.T) {
		err := ModuleCompileError(errors.New("bad magic"))
		if err.Kind != KindModuleCompile {
			t.Errorf("Kind = %v, want %v", err.Kind, KindModuleCompile)
		}
	})

	t.Run("UnsupportedWasiVersion", func(t *testing.T) {
		err := UnsupportedWasiVersion("no recognized wasi imports")
		if err.Kind != KindUnsupportedWasiVersion {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupportedWasiVersion)
		}
	})

	t.Run("MissingExport", func(t *testing.T) {
		err := MissingExport("itk_wasm_delayed_start")
		if err.Kind != KindMissingExport {
			t.Errorf("Kind = %v, want %v", err.Kind, KindMissingExport)
		}
		if !strings.Contains(err.Detail, "itk_wasm_delayed_start") {
			t.Errorf("Detail = %v, should contain export name", err.Detail)
		}
	})

	t.Run("InitTrap", func(t *testing.T) {
		err := InitTrap(errors.New("trap"))
		if err.Kind != KindInitTrap {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInitTrap)
		}
	})

	t.Run("EncodeErrorFor", func(t *testing.T) {
		err := EncodeErrorFor(3, errors.New("bad"))
		if err.Kind != KindEncode || err.Slot != 3 {
			t.Errorf("Kind=%v Slot=%d, want %v/3", err.Kind, err.Slot, KindEncode)
		}
	})

	t.Run("GuestTrap", func(t *testing.T) {
		err := GuestTrap(errors.New("trap"))
		if err.Kind != KindGuestTrap {
			t.Errorf("Kind = %v, want %v", err.Kind, KindGuestTrap)
		}
	})

	t.Run("DecodeErrorFor", func(t *testing.T) {
		err := DecodeErrorFor(1, errors.New("bad json"))
		if err.Kind != KindDecode || err.Slot != 1 {
			t.Errorf("Kind=%v Slot=%d, want %v/1", err.Kind, err.Slot, KindDecode)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(10, 5, 8)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if !strings.Contains(err.Detail, "15") {
			t.Errorf("Detail = %v, should contain computed end offset", err.Detail)
		}
	})

	t.Run("UnsupportedComponentType", func(t *testing.T) {
		err := UnsupportedComponentType("complex128")
		if err.Kind != KindUnsupportedComponentType {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupportedComponentType)
		}
	})

	t.Run("MisalignedBuffer", func(t *testing.T) {
		err := MisalignedBuffer(5, 4)
		if err.Kind != KindMisalignedBuffer {
			t.Errorf("Kind = %v, want %v", err.Kind, KindMisalignedBuffer)
		}
	})

	t.Run("UnsupportedInterfaceKind", func(t *testing.T) {
		err := UnsupportedInterfaceKind("Tensor")
		if err.Kind != KindUnsupportedInterfaceKind {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupportedInterfaceKind)
		}
	})
}
