package codec

import (
	"context"
	"encoding/json"

	wasmpipeline "github.com/itkwasm/wasm-pipeline"
	"github.com/itkwasm/wasm-pipeline/datamodel"
	"github.com/itkwasm/wasm-pipeline/errors"
)

// EncodeInput stages one input payload into guest memory (spec.md §4.4
// encode_input). File kinds are a no-op: the guest reads the path directly
// through its WASI preopen.
func EncodeInput(ctx context.Context, slot int, in datamodel.PipelineInput, gx GuestExports) error {
	switch in.Kind {
	case datamodel.KindTextStream:
		return encodeTextStreamInput(ctx, slot, in.TextStream, gx)
	case datamodel.KindBinaryStream:
		return encodeBinaryStreamInput(ctx, slot, in.BinaryStream, gx)
	case datamodel.KindTextFile, datamodel.KindBinaryFile:
		return nil
	case datamodel.KindImage:
		return encodeImageInput(ctx, slot, in.Image, gx)
	case datamodel.KindMesh:
		return encodeMeshInput(ctx, slot, in.Mesh, gx)
	case datamodel.KindPolyData:
		return encodePolyDataInput(ctx, slot, in.PolyData, gx)
	default:
		return errors.UnsupportedInterfaceKind(string(in.Kind))
	}
}

// DecodeOutput reassembles one output payload from guest memory (spec.md
// §4.4 decode_output). template carries the caller-declared Kind and, for
// file kinds, the target Path; it is returned unchanged for file kinds
// since the guest already wrote the file directly.
func DecodeOutput(ctx context.Context, slot int, template datamodel.PipelineOutput, gx GuestExports) (datamodel.PipelineOutput, error) {
	switch template.Kind {
	case datamodel.KindTextStream:
		return decodeTextStreamOutput(ctx, slot, gx)
	case datamodel.KindBinaryStream:
		return decodeBinaryStreamOutput(ctx, slot, gx)
	case datamodel.KindTextFile, datamodel.KindBinaryFile:
		return template, nil
	case datamodel.KindImage:
		return decodeImageOutput(ctx, slot, gx)
	case datamodel.KindMesh:
		return decodeMeshOutput(ctx, slot, gx)
	case datamodel.KindPolyData:
		return decodePolyDataOutput(ctx, slot, gx)
	default:
		return datamodel.PipelineOutput{}, errors.UnsupportedInterfaceKind(string(template.Kind))
	}
}

// allocateAndWrite allocates a guest input sub-buffer for non-empty data
// and writes it, returning the address-URL to embed in the JSON
// descriptor. Empty sub-buffers are never allocated (spec.md §3, §8).
func allocateAndWrite(ctx context.Context, gx GuestExports, slot, sub int32, data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	ptr, err := gx.InputArrayAlloc(ctx, slot, sub, uint32(len(data)))
	if err != nil {
		return "", errors.EncodeErrorFor(int(slot), err)
	}
	if err := gx.Arena().WriteBytes(ptr, data); err != nil {
		return "", errors.EncodeErrorFor(int(slot), err)
	}
	return wasmpipeline.EncodeAddressURL(ptr), nil
}

// readSubBuffer reads an output sub-buffer gated by count > 0. When the
// gate is false it returns nil without invoking any guest accessor
// (spec.md §4.4 step 3, §8 "Empty sub-buffers ... zero calls to the guest
// accessor on output").
func readSubBuffer(ctx context.Context, gx GuestExports, slot, sub int32, gate bool) ([]byte, error) {
	if !gate {
		return nil, nil
	}
	ptr, err := gx.OutputArrayAddress(ctx, slot, sub)
	if err != nil {
		return nil, errors.DecodeErrorFor(int(slot), err)
	}
	size, err := gx.OutputArraySize(ctx, slot, sub)
	if err != nil {
		return nil, errors.DecodeErrorFor(int(slot), err)
	}
	b, err := gx.Arena().ReadBytes(ptr, size)
	if err != nil {
		return nil, errors.DecodeErrorFor(int(slot), err)
	}
	return b, nil
}

func writeInputJSON(ctx context.Context, gx GuestExports, slot int32, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return errors.EncodeErrorFor(int(slot), err)
	}
	ptr, err := gx.InputJSONAlloc(ctx, slot, uint32(len(b)))
	if err != nil {
		return errors.EncodeErrorFor(int(slot), err)
	}
	if err := gx.Arena().WriteBytes(ptr, b); err != nil {
		return errors.EncodeErrorFor(int(slot), err)
	}
	return nil
}

func readOutputJSON(ctx context.Context, gx GuestExports, slot int32, v any) error {
	ptr, err := gx.OutputJSONAddress(ctx, slot)
	if err != nil {
		return errors.DecodeErrorFor(int(slot), err)
	}
	size, err := gx.OutputJSONSize(ctx, slot)
	if err != nil {
		return errors.DecodeErrorFor(int(slot), err)
	}
	b, err := gx.Arena().ReadBytes(ptr, size)
	if err != nil {
		return errors.DecodeErrorFor(int(slot), err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return errors.DecodeErrorFor(int(slot), err)
	}
	return nil
}
