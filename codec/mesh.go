package codec

import (
	"context"

	"github.com/itkwasm/wasm-pipeline/datamodel"
	"github.com/itkwasm/wasm-pipeline/errors"
	"github.com/itkwasm/wasm-pipeline/numeric"
)

// meshTypeDescriptor is the nested meshType object of a Mesh JSON
// descriptor (spec.md §6).
type meshTypeDescriptor struct {
	Dimension               int                   `json:"dimension"`
	PointComponentType      numeric.ComponentType `json:"pointComponentType"`
	CellComponentType       numeric.ComponentType `json:"cellComponentType"`
	PointPixelComponentType numeric.ComponentType `json:"pointPixelComponentType"`
	CellPixelComponentType  numeric.ComponentType `json:"cellPixelComponentType"`
}

// meshDescriptor is the full Mesh JSON descriptor (spec.md §6).
type meshDescriptor struct {
	MeshType            meshTypeDescriptor `json:"meshType"`
	Name                string             `json:"name"`
	NumberOfPoints      int64              `json:"numberOfPoints"`
	Points              string             `json:"points"`
	NumberOfCells       int64              `json:"numberOfCells"`
	Cells               string             `json:"cells"`
	CellBufferSize      int64              `json:"cellBufferSize"`
	NumberOfPointPixels int64              `json:"numberOfPointPixels"`
	PointData           string             `json:"pointData"`
	NumberOfCellPixels  int64              `json:"numberOfCellPixels"`
	CellData            string             `json:"cellData"`
}

func encodeMeshInput(ctx context.Context, slot int, m *datamodel.Mesh, gx GuestExports) error {
	pointsBytes, err := numeric.ArrayToBytes(m.Points)
	if err != nil {
		return errors.EncodeErrorFor(slot, err)
	}
	cellsBytes, err := numeric.ArrayToBytes(m.Cells)
	if err != nil {
		return errors.EncodeErrorFor(slot, err)
	}
	pointDataBytes, err := numeric.ArrayToBytes(m.PointData)
	if err != nil {
		return errors.EncodeErrorFor(slot, err)
	}
	cellDataBytes, err := numeric.ArrayToBytes(m.CellData)
	if err != nil {
		return errors.EncodeErrorFor(slot, err)
	}

	if m.NumberOfPoints == 0 {
		pointsBytes = nil
	}
	if m.NumberOfCells == 0 {
		cellsBytes = nil
	}
	if m.NumberOfPointPixels == 0 {
		pointDataBytes = nil
	}
	if m.NumberOfCellPixels == 0 {
		cellDataBytes = nil
	}

	pointsAddr, err := allocateAndWrite(ctx, gx, int32(slot), 0, pointsBytes)
	if err != nil {
		return err
	}
	cellsAddr, err := allocateAndWrite(ctx, gx, int32(slot), 1, cellsBytes)
	if err != nil {
		return err
	}
	pointDataAddr, err := allocateAndWrite(ctx, gx, int32(slot), 2, pointDataBytes)
	if err != nil {
		return err
	}
	cellDataAddr, err := allocateAndWrite(ctx, gx, int32(slot), 3, cellDataBytes)
	if err != nil {
		return err
	}

	desc := meshDescriptor{
		MeshType: meshTypeDescriptor{
			Dimension:               m.MeshType.Dimension,
			PointComponentType:      m.MeshType.PointComponentType,
			CellComponentType:       m.MeshType.CellComponentType,
			PointPixelComponentType: m.MeshType.PointPixelComponentType,
			CellPixelComponentType:  m.MeshType.CellPixelComponentType,
		},
		Name:                m.Name,
		NumberOfPoints:      m.NumberOfPoints,
		Points:              pointsAddr,
		NumberOfCells:       m.NumberOfCells,
		Cells:               cellsAddr,
		CellBufferSize:      m.CellBufferSize,
		NumberOfPointPixels: m.NumberOfPointPixels,
		PointData:           pointDataAddr,
		NumberOfCellPixels:  m.NumberOfCellPixels,
		CellData:            cellDataAddr,
	}
	return writeInputJSON(ctx, gx, int32(slot), desc)
}

func decodeMeshOutput(ctx context.Context, slot int, gx GuestExports) (datamodel.PipelineOutput, error) {
	var desc meshDescriptor
	if err := readOutputJSON(ctx, gx, int32(slot), &desc); err != nil {
		return datamodel.PipelineOutput{}, err
	}

	readTyped := func(sub int32, ct numeric.ComponentType, gate bool) (numeric.Array, error) {
		b, err := readSubBuffer(ctx, gx, int32(slot), sub, gate)
		if err != nil {
			return numeric.Array{}, err
		}
		if !gate {
			return numeric.Empty(ct)
		}
		arr, aerr := numeric.BytesToArray(ct, b)
		if aerr != nil {
			return numeric.Array{}, errors.DecodeErrorFor(slot, aerr)
		}
		return arr, nil
	}

	points, err := readTyped(0, desc.MeshType.PointComponentType, desc.NumberOfPoints > 0)
	if err != nil {
		return datamodel.PipelineOutput{}, err
	}
	cells, err := readTyped(1, desc.MeshType.CellComponentType, desc.NumberOfCells > 0)
	if err != nil {
		return datamodel.PipelineOutput{}, err
	}
	pointData, err := readTyped(2, desc.MeshType.PointPixelComponentType, desc.NumberOfPointPixels > 0)
	if err != nil {
		return datamodel.PipelineOutput{}, err
	}
	cellData, err := readTyped(3, desc.MeshType.CellPixelComponentType, desc.NumberOfCellPixels > 0)
	if err != nil {
		return datamodel.PipelineOutput{}, err
	}

	m := &datamodel.Mesh{
		MeshType: datamodel.MeshType{
			Dimension:               desc.MeshType.Dimension,
			PointComponentType:      desc.MeshType.PointComponentType,
			CellComponentType:       desc.MeshType.CellComponentType,
			PointPixelComponentType: desc.MeshType.PointPixelComponentType,
			CellPixelComponentType:  desc.MeshType.CellPixelComponentType,
		},
		Name:                desc.Name,
		NumberOfPoints:      desc.NumberOfPoints,
		Points:              points,
		NumberOfCells:       desc.NumberOfCells,
		Cells:               cells,
		CellBufferSize:      desc.CellBufferSize,
		NumberOfPointPixels: desc.NumberOfPointPixels,
		PointData:           pointData,
		NumberOfCellPixels:  desc.NumberOfCellPixels,
		CellData:            cellData,
	}
	return datamodel.PipelineOutput{Kind: datamodel.KindMesh, Mesh: m}, nil
}
