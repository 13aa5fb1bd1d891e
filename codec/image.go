package codec

import (
	"context"

	"github.com/itkwasm/wasm-pipeline/datamodel"
	"github.com/itkwasm/wasm-pipeline/errors"
	"github.com/itkwasm/wasm-pipeline/numeric"
)

// imageTypeDescriptor is the nested imageType object of an Image JSON
// descriptor (spec.md §6).
type imageTypeDescriptor struct {
	Dimension     int                   `json:"dimension"`
	ComponentType numeric.ComponentType `json:"componentType"`
	PixelType     string                `json:"pixelType"`
	Components    int                   `json:"components"`
}

// imageDescriptor is the full Image JSON descriptor (spec.md §6).
type imageDescriptor struct {
	ImageType imageTypeDescriptor `json:"imageType"`
	Name      string              `json:"name"`
	Origin    []float64           `json:"origin"`
	Spacing   []float64           `json:"spacing"`
	Size      []int64             `json:"size"`
	Direction string              `json:"direction"`
	Data      string              `json:"data"`
}

func pixelCount(size []int64, components int) int64 {
	n := int64(components)
	for _, s := range size {
		n *= s
	}
	return n
}

func encodeImageInput(ctx context.Context, slot int, img *datamodel.Image, gx GuestExports) error {
	pixelBytes, err := numeric.ArrayToBytes(img.Data)
	if err != nil {
		return errors.EncodeErrorFor(slot, err)
	}
	directionBytes, err := numeric.ArrayToBytes(numeric.Array{ComponentType: numeric.Float64, Float64: img.Direction})
	if err != nil {
		return errors.EncodeErrorFor(slot, err)
	}

	dataAddr, err := allocateAndWrite(ctx, gx, int32(slot), 0, pixelBytes)
	if err != nil {
		return err
	}
	directionAddr, err := allocateAndWrite(ctx, gx, int32(slot), 1, directionBytes)
	if err != nil {
		return err
	}

	desc := imageDescriptor{
		ImageType: imageTypeDescriptor{
			Dimension:     img.ImageType.Dimension,
			ComponentType: img.ImageType.ComponentType,
			PixelType:     img.ImageType.PixelType,
			Components:    img.ImageType.Components,
		},
		Name:      img.Name,
		Origin:    img.Origin,
		Spacing:   img.Spacing,
		Size:      img.Size,
		Direction: directionAddr,
		Data:      dataAddr,
	}
	return writeInputJSON(ctx, gx, int32(slot), desc)
}

func decodeImageOutput(ctx context.Context, slot int, gx GuestExports) (datamodel.PipelineOutput, error) {
	var desc imageDescriptor
	if err := readOutputJSON(ctx, gx, int32(slot), &desc); err != nil {
		return datamodel.PipelineOutput{}, err
	}

	pixelGate := pixelCount(desc.Size, desc.ImageType.Components) > 0
	pixelBytes, err := readSubBuffer(ctx, gx, int32(slot), 0, pixelGate)
	if err != nil {
		return datamodel.PipelineOutput{}, err
	}
	var pixelArray numeric.Array
	if pixelGate {
		pixelArray, err = numeric.BytesToArray(desc.ImageType.ComponentType, pixelBytes)
	} else {
		pixelArray, err = numeric.Empty(desc.ImageType.ComponentType)
	}
	if err != nil {
		return datamodel.PipelineOutput{}, errors.DecodeErrorFor(slot, err)
	}

	directionGate := desc.ImageType.Dimension > 0
	directionBytes, err := readSubBuffer(ctx, gx, int32(slot), 1, directionGate)
	if err != nil {
		return datamodel.PipelineOutput{}, err
	}
	var direction []float64
	if directionGate {
		directionArray, derr := numeric.BytesToArray(numeric.Float64, directionBytes)
		if derr != nil {
			return datamodel.PipelineOutput{}, errors.DecodeErrorFor(slot, derr)
		}
		direction = directionArray.Float64
	}

	img := &datamodel.Image{
		ImageType: datamodel.ImageType{
			Dimension:     desc.ImageType.Dimension,
			ComponentType: desc.ImageType.ComponentType,
			PixelType:     desc.ImageType.PixelType,
			Components:    desc.ImageType.Components,
		},
		Name:      desc.Name,
		Origin:    desc.Origin,
		Spacing:   desc.Spacing,
		Size:      desc.Size,
		Direction: direction,
		Data:      pixelArray,
	}
	return datamodel.PipelineOutput{Kind: datamodel.KindImage, Image: img}, nil
}
