package codec

import (
	"context"

	"github.com/itkwasm/wasm-pipeline/datamodel"
)

// streamDescriptor is the JSON descriptor shared by TextStream and
// BinaryStream (spec.md §6: "Streams: { size: N, data: <address-URL> }").
type streamDescriptor struct {
	Size int    `json:"size"`
	Data string `json:"data"`
}

func encodeTextStreamInput(ctx context.Context, slot int, ts *datamodel.TextStream, gx GuestExports) error {
	return encodeStreamBytes(ctx, slot, []byte(ts.Data), gx)
}

func encodeBinaryStreamInput(ctx context.Context, slot int, bs *datamodel.BinaryStream, gx GuestExports) error {
	return encodeStreamBytes(ctx, slot, bs.Data, gx)
}

func encodeStreamBytes(ctx context.Context, slot int, data []byte, gx GuestExports) error {
	addr, err := allocateAndWrite(ctx, gx, int32(slot), 0, data)
	if err != nil {
		return err
	}
	return writeInputJSON(ctx, gx, int32(slot), streamDescriptor{Size: len(data), Data: addr})
}

func decodeStreamBytes(ctx context.Context, slot int, gx GuestExports) ([]byte, error) {
	var desc streamDescriptor
	if err := readOutputJSON(ctx, gx, int32(slot), &desc); err != nil {
		return nil, err
	}
	return readSubBuffer(ctx, gx, int32(slot), 0, desc.Size > 0)
}

func decodeTextStreamOutput(ctx context.Context, slot int, gx GuestExports) (datamodel.PipelineOutput, error) {
	b, err := decodeStreamBytes(ctx, slot, gx)
	if err != nil {
		return datamodel.PipelineOutput{}, err
	}
	return datamodel.PipelineOutput{
		Kind:       datamodel.KindTextStream,
		TextStream: &datamodel.TextStream{Data: string(b)},
	}, nil
}

func decodeBinaryStreamOutput(ctx context.Context, slot int, gx GuestExports) (datamodel.PipelineOutput, error) {
	b, err := decodeStreamBytes(ctx, slot, gx)
	if err != nil {
		return datamodel.PipelineOutput{}, err
	}
	return datamodel.PipelineOutput{
		Kind:         datamodel.KindBinaryStream,
		BinaryStream: &datamodel.BinaryStream{Data: b},
	}, nil
}
