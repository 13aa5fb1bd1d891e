package datamodel

import "testing"

func TestInterfaceKindPredicates(t *testing.T) {
	tests := []struct {
		kind       InterfaceKind
		file       bool
		stream     bool
	}{
		{KindTextStream, false, true},
		{KindBinaryStream, false, true},
		{KindTextFile, true, false},
		{KindBinaryFile, true, false},
		{KindImage, false, false},
		{KindMesh, false, false},
		{KindPolyData, false, false},
	}
	for _, tt := range tests {
		if got := tt.kind.IsFileKind(); got != tt.file {
			t.Errorf("%v.IsFileKind() = %v, want %v", tt.kind, got, tt.file)
		}
		if got := tt.kind.IsStreamKind(); got != tt.stream {
			t.Errorf("%v.IsStreamKind() = %v, want %v", tt.kind, got, tt.stream)
		}
	}
}

func TestImageDirectionAt(t *testing.T) {
	img := &Image{ImageType: ImageType{Dimension: 2}}
	img.SetDirectionAt(0, 0, 1)
	img.SetDirectionAt(0, 1, 0)
	img.SetDirectionAt(1, 0, 0)
	img.SetDirectionAt(1, 1, 1)

	want := [2][2]float64{{1, 0}, {0, 1}}
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			if got := img.DirectionAt(r, c); got != want[r][c] {
				t.Errorf("DirectionAt(%d,%d) = %v, want %v", r, c, got, want[r][c])
			}
		}
	}
}

func TestNewTextStreamInput(t *testing.T) {
	in := NewTextStreamInput("hello")
	if in.Kind != KindTextStream {
		t.Fatalf("Kind = %v, want %v", in.Kind, KindTextStream)
	}
	if in.TextStream == nil || in.TextStream.Data != "hello" {
		t.Fatalf("TextStream = %+v, want Data=hello", in.TextStream)
	}
}

func TestNewBinaryFileOutput(t *testing.T) {
	out := NewBinaryFileOutput("/tmp/out.bin")
	if out.Kind != KindBinaryFile {
		t.Fatalf("Kind = %v, want %v", out.Kind, KindBinaryFile)
	}
	if out.BinaryFile == nil || out.BinaryFile.Path != "/tmp/out.bin" {
		t.Fatalf("BinaryFile = %+v, want Path=/tmp/out.bin", out.BinaryFile)
	}
}
