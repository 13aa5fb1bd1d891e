package codec

import (
	"context"

	"github.com/itkwasm/wasm-pipeline/datamodel"
	"github.com/itkwasm/wasm-pipeline/errors"
	"github.com/itkwasm/wasm-pipeline/numeric"
)

// polyDataTypeDescriptor is the nested polyDataType object of a PolyData
// JSON descriptor (spec.md §6).
type polyDataTypeDescriptor struct {
	PointPixelComponentType numeric.ComponentType `json:"pointPixelComponentType"`
	CellPixelComponentType  numeric.ComponentType `json:"cellPixelComponentType"`
}

// polyDataDescriptor is the full PolyData JSON descriptor (spec.md §6).
type polyDataDescriptor struct {
	PolyDataType             polyDataTypeDescriptor `json:"polyDataType"`
	Name                     string                 `json:"name"`
	NumberOfPoints           int64                  `json:"numberOfPoints"`
	Points                   string                 `json:"points"`
	VerticesBufferSize       int64                  `json:"verticesBufferSize"`
	Vertices                 string                 `json:"vertices"`
	LinesBufferSize          int64                  `json:"linesBufferSize"`
	Lines                    string                 `json:"lines"`
	PolygonsBufferSize       int64                  `json:"polygonsBufferSize"`
	Polygons                 string                 `json:"polygons"`
	TriangleStripsBufferSize int64                  `json:"triangleStripsBufferSize"`
	TriangleStrips           string                 `json:"triangleStrips"`
	NumberOfPointPixels      int64                  `json:"numberOfPointPixels"`
	PointData                string                 `json:"pointData"`
	NumberOfCellPixels       int64                  `json:"numberOfCellPixels"`
	CellData                 string                 `json:"cellData"`
}

func encodePolyDataInput(ctx context.Context, slot int, p *datamodel.PolyData, gx GuestExports) error {
	pointsBytes, err := numeric.ArrayToBytes(p.Points)
	if err != nil {
		return errors.EncodeErrorFor(slot, err)
	}
	verticesBytes, err := numeric.ArrayToBytes(p.Vertices)
	if err != nil {
		return errors.EncodeErrorFor(slot, err)
	}
	linesBytes, err := numeric.ArrayToBytes(p.Lines)
	if err != nil {
		return errors.EncodeErrorFor(slot, err)
	}
	polygonsBytes, err := numeric.ArrayToBytes(p.Polygons)
	if err != nil {
		return errors.EncodeErrorFor(slot, err)
	}
	triangleStripsBytes, err := numeric.ArrayToBytes(p.TriangleStrips)
	if err != nil {
		return errors.EncodeErrorFor(slot, err)
	}
	pointDataBytes, err := numeric.ArrayToBytes(p.PointData)
	if err != nil {
		return errors.EncodeErrorFor(slot, err)
	}
	cellDataBytes, err := numeric.ArrayToBytes(p.CellData)
	if err != nil {
		return errors.EncodeErrorFor(slot, err)
	}

	if p.NumberOfPoints == 0 {
		pointsBytes = nil
	}
	if p.VerticesBufferSize == 0 {
		verticesBytes = nil
	}
	if p.LinesBufferSize == 0 {
		linesBytes = nil
	}
	if p.PolygonsBufferSize == 0 {
		polygonsBytes = nil
	}
	if p.TriangleStripsBufferSize == 0 {
		triangleStripsBytes = nil
	}
	if p.NumberOfPointPixels == 0 {
		pointDataBytes = nil
	}
	if p.NumberOfCellPixels == 0 {
		cellDataBytes = nil
	}

	pointsAddr, err := allocateAndWrite(ctx, gx, int32(slot), 0, pointsBytes)
	if err != nil {
		return err
	}
	verticesAddr, err := allocateAndWrite(ctx, gx, int32(slot), 1, verticesBytes)
	if err != nil {
		return err
	}
	linesAddr, err := allocateAndWrite(ctx, gx, int32(slot), 2, linesBytes)
	if err != nil {
		return err
	}
	polygonsAddr, err := allocateAndWrite(ctx, gx, int32(slot), 3, polygonsBytes)
	if err != nil {
		return err
	}
	triangleStripsAddr, err := allocateAndWrite(ctx, gx, int32(slot), 4, triangleStripsBytes)
	if err != nil {
		return err
	}
	pointDataAddr, err := allocateAndWrite(ctx, gx, int32(slot), 5, pointDataBytes)
	if err != nil {
		return err
	}
	cellDataAddr, err := allocateAndWrite(ctx, gx, int32(slot), 6, cellDataBytes)
	if err != nil {
		return err
	}

	desc := polyDataDescriptor{
		PolyDataType: polyDataTypeDescriptor{
			PointPixelComponentType: p.PolyDataType.PointPixelComponentType,
			CellPixelComponentType:  p.PolyDataType.CellPixelComponentType,
		},
		Name:                     p.Name,
		NumberOfPoints:           p.NumberOfPoints,
		Points:                   pointsAddr,
		VerticesBufferSize:       p.VerticesBufferSize,
		Vertices:                 verticesAddr,
		LinesBufferSize:          p.LinesBufferSize,
		Lines:                    linesAddr,
		PolygonsBufferSize:       p.PolygonsBufferSize,
		Polygons:                 polygonsAddr,
		TriangleStripsBufferSize: p.TriangleStripsBufferSize,
		TriangleStrips:           triangleStripsAddr,
		NumberOfPointPixels:      p.NumberOfPointPixels,
		PointData:                pointDataAddr,
		NumberOfCellPixels:       p.NumberOfCellPixels,
		CellData:                 cellDataAddr,
	}
	return writeInputJSON(ctx, gx, int32(slot), desc)
}

// decodePolyDataOutput reassembles a PolyData output. Unlike the original
// itk-wasm pipeline implementation, the empty-gate case assigns the
// zero-length typed array to the field whose own count gates it
// (pointData for numberOfPointPixels == 0, cellData for
// numberOfCellPixels == 0), not to triangleStrips for both (spec.md §9,
// "Known source defects": the source's two mis-assignments are not
// reproduced here).
func decodePolyDataOutput(ctx context.Context, slot int, gx GuestExports) (datamodel.PipelineOutput, error) {
	var desc polyDataDescriptor
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

	points, err := readTyped(0, numeric.Float32, desc.NumberOfPoints > 0)
	if err != nil {
		return datamodel.PipelineOutput{}, err
	}
	vertices, err := readTyped(1, numeric.UInt32, desc.VerticesBufferSize > 0)
	if err != nil {
		return datamodel.PipelineOutput{}, err
	}
	lines, err := readTyped(2, numeric.UInt32, desc.LinesBufferSize > 0)
	if err != nil {
		return datamodel.PipelineOutput{}, err
	}
	polygons, err := readTyped(3, numeric.UInt32, desc.PolygonsBufferSize > 0)
	if err != nil {
		return datamodel.PipelineOutput{}, err
	}
	triangleStrips, err := readTyped(4, numeric.UInt32, desc.TriangleStripsBufferSize > 0)
	if err != nil {
		return datamodel.PipelineOutput{}, err
	}
	pointData, err := readTyped(5, desc.PolyDataType.PointPixelComponentType, desc.NumberOfPointPixels > 0)
	if err != nil {
		return datamodel.PipelineOutput{}, err
	}
	cellData, err := readTyped(6, desc.PolyDataType.CellPixelComponentType, desc.NumberOfCellPixels > 0)
	if err != nil {
		return datamodel.PipelineOutput{}, err
	}

	p := &datamodel.PolyData{
		PolyDataType: datamodel.PolyDataType{
			PointPixelComponentType: desc.PolyDataType.PointPixelComponentType,
			CellPixelComponentType:  desc.PolyDataType.CellPixelComponentType,
		},
		Name:                     desc.Name,
		NumberOfPoints:           desc.NumberOfPoints,
		Points:                   points,
		VerticesBufferSize:       desc.VerticesBufferSize,
		Vertices:                 vertices,
		LinesBufferSize:          desc.LinesBufferSize,
		Lines:                    lines,
		PolygonsBufferSize:       desc.PolygonsBufferSize,
		Polygons:                 polygons,
		TriangleStripsBufferSize: desc.TriangleStripsBufferSize,
		TriangleStrips:           triangleStrips,
		NumberOfPointPixels:      desc.NumberOfPointPixels,
		PointData:                pointData,
		NumberOfCellPixels:       desc.NumberOfCellPixels,
		CellData:                 cellData,
	}
	return datamodel.PipelineOutput{Kind: datamodel.KindPolyData, PolyData: p}, nil
}
