package datamodel

import "github.com/itkwasm/wasm-pipeline/numeric"

// PolyDataType names the scalar component types that gate PolyData's point
// and cell data buffers (spec.md §3). The geometry buffers (points,
// vertices, lines, polygons, triangleStrips) always use the fixed scalar
// types float32/uint32 dictated by Table T1, so they are not part of the
// descriptor.
type PolyDataType struct {
	PointPixelComponentType numeric.ComponentType `json:"pointPixelComponentType"`
	CellPixelComponentType  numeric.ComponentType `json:"cellPixelComponentType"`
}

// PolyData is the composite payload for InterfaceKind PolyData (spec.md
// §3, §4.4 Table T1): a descriptor plus seven buffers.
//
//	sub-index 0: Points           float32, gated by NumberOfPoints > 0
//	sub-index 1: Vertices         uint32,  gated by VerticesBufferSize > 0
//	sub-index 2: Lines            uint32,  gated by LinesBufferSize > 0
//	sub-index 3: Polygons         uint32,  gated by PolygonsBufferSize > 0
//	sub-index 4: TriangleStrips   uint32,  gated by TriangleStripsBufferSize > 0
//	sub-index 5: PointData        PolyDataType.PointPixelComponentType, gated by NumberOfPointPixels > 0
//	sub-index 6: CellData         PolyDataType.CellPixelComponentType,  gated by NumberOfCellPixels > 0
type PolyData struct {
	PolyDataType PolyDataType
	Name         string

	NumberOfPoints int64
	Points         numeric.Array

	VerticesBufferSize int64
	Vertices           numeric.Array

	LinesBufferSize int64
	Lines           numeric.Array

	PolygonsBufferSize int64
	Polygons           numeric.Array

	TriangleStripsBufferSize int64
	TriangleStrips           numeric.Array

	NumberOfPointPixels int64
	PointData           numeric.Array

	NumberOfCellPixels int64
	CellData           numeric.Array
}
