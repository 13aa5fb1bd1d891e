package numeric

import (
	"encoding/binary"
	"math"

	"github.com/itkwasm/wasm-pipeline/errors"
)

// ComponentType names a scalar element type carried by a pixel, point, or
// cell buffer. Values match itk-wasm's wire vocabulary.
type ComponentType string

const (
	UInt8   ComponentType = "uint8"
	Int8    ComponentType = "int8"
	UInt16  ComponentType = "uint16"
	Int16   ComponentType = "int16"
	UInt32  ComponentType = "uint32"
	Int32   ComponentType = "int32"
	UInt64  ComponentType = "uint64"
	Int64   ComponentType = "int64"
	Float32 ComponentType = "float32"
	Float64 ComponentType = "float64"
)

// ElementSize returns the byte width of one scalar of the given type, per
// the table in spec.md §4.6.
func ElementSize(ct ComponentType) (int, error) {
	switch ct {
	case UInt8, Int8:
		return 1, nil
	case UInt16, Int16:
		return 2, nil
	case UInt32, Int32, Float32:
		return 4, nil
	case UInt64, Int64, Float64:
		return 8, nil
	default:
		return 0, errors.UnsupportedComponentType(string(ct))
	}
}

// Array is a typed numeric array decoded from (or destined for) guest
// linear memory. Exactly one slice field is populated, selected by
// ComponentType.
type Array struct {
	ComponentType ComponentType
	Uint8         []uint8
	Int8          []int8
	Uint16        []uint16
	Int16         []int16
	Uint32        []uint32
	Int32         []int32
	Uint64        []uint64
	Int64         []int64
	Float32       []float32
	Float64       []float64
}

// Len returns the number of scalar elements held by the array.
func (a Array) Len() int {
	switch a.ComponentType {
	case UInt8:
		return len(a.Uint8)
	case Int8:
		return len(a.Int8)
	case UInt16:
		return len(a.Uint16)
	case Int16:
		return len(a.Int16)
	case UInt32:
		return len(a.Uint32)
	case Int32:
		return len(a.Int32)
	case UInt64:
		return len(a.Uint64)
	case Int64:
		return len(a.Int64)
	case Float32:
		return len(a.Float32)
	case Float64:
		return len(a.Float64)
	default:
		return 0
	}
}

// Empty returns an empty typed array of the given component type, used by
// the Codec (C4) when a sub-buffer's gating count is zero (spec.md §8:
// "Size-0 pixel data on output produces an empty typed array of the
// declared component type without invoking output_array_address").
func Empty(ct ComponentType) (Array, error) {
	if _, err := ElementSize(ct); err != nil {
		return Array{}, err
	}
	return BytesToArray(ct, nil)
}

// BytesToArray reinterprets a little-endian byte buffer copied out of guest
// linear memory as a typed Array. The bytes are always copied, never
// aliased, per spec.md §4.6 ("do not alias guest memory across guest
// calls").
func BytesToArray(ct ComponentType, data []byte) (Array, error) {
	elemSize, err := ElementSize(ct)
	if err != nil {
		return Array{}, err
	}
	if len(data)%elemSize != 0 {
		return Array{}, errors.MisalignedBuffer(len(data), elemSize)
	}
	n := len(data) / elemSize

	out := Array{ComponentType: ct}
	switch ct {
	case UInt8:
		out.Uint8 = append([]uint8(nil), data...)
	case Int8:
		s := make([]int8, n)
		for i := range s {
			s[i] = int8(data[i])
		}
		out.Int8 = s
	case UInt16:
		s := make([]uint16, n)
		for i := range s {
			s[i] = binary.LittleEndian.Uint16(data[i*2:])
		}
		out.Uint16 = s
	case Int16:
		s := make([]int16, n)
		for i := range s {
			s[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
		}
		out.Int16 = s
	case UInt32:
		s := make([]uint32, n)
		for i := range s {
			s[i] = binary.LittleEndian.Uint32(data[i*4:])
		}
		out.Uint32 = s
	case Int32:
		s := make([]int32, n)
		for i := range s {
			s[i] = int32(binary.LittleEndian.Uint32(data[i*4:]))
		}
		out.Int32 = s
	case UInt64:
		s := make([]uint64, n)
		for i := range s {
			s[i] = binary.LittleEndian.Uint64(data[i*8:])
		}
		out.Uint64 = s
	case Int64:
		s := make([]int64, n)
		for i := range s {
			s[i] = int64(binary.LittleEndian.Uint64(data[i*8:]))
		}
		out.Int64 = s
	case Float32:
		s := make([]float32, n)
		for i := range s {
			s[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
		}
		out.Float32 = s
	case Float64:
		s := make([]float64, n)
		for i := range s {
			s[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[i*8:]))
		}
		out.Float64 = s
	}
	return out, nil
}

// ArrayToBytes produces the little-endian byte encoding of a typed Array,
// the inverse of BytesToArray.
func ArrayToBytes(a Array) ([]byte, error) {
	elemSize, err := ElementSize(a.ComponentType)
	if err != nil {
		return nil, err
	}
	n := a.Len()
	out := make([]byte, n*elemSize)

	switch a.ComponentType {
	case UInt8:
		copy(out, a.Uint8)
	case Int8:
		for i, v := range a.Int8 {
			out[i] = byte(v)
		}
	case UInt16:
		for i, v := range a.Uint16 {
			binary.LittleEndian.PutUint16(out[i*2:], v)
		}
	case Int16:
		for i, v := range a.Int16 {
			binary.LittleEndian.PutUint16(out[i*2:], uint16(v))
		}
	case UInt32:
		for i, v := range a.Uint32 {
			binary.LittleEndian.PutUint32(out[i*4:], v)
		}
	case Int32:
		for i, v := range a.Int32 {
			binary.LittleEndian.PutUint32(out[i*4:], uint32(v))
		}
	case UInt64:
		for i, v := range a.Uint64 {
			binary.LittleEndian.PutUint64(out[i*8:], v)
		}
	case Int64:
		for i, v := range a.Int64 {
			binary.LittleEndian.PutUint64(out[i*8:], uint64(v))
		}
	case Float32:
		for i, v := range a.Float32 {
			binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
		}
	case Float64:
		for i, v := range a.Float64 {
			binary.LittleEndian.PutUint64(out[i*8:], math.Float64bits(v))
		}
	}
	return out, nil
}
