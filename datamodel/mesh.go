package datamodel

import "github.com/itkwasm/wasm-pipeline/numeric"

// MeshType names the four scalar component types that gate Mesh's four
// sub-buffers (spec.md §3: "MeshType with four component types").
type MeshType struct {
	Dimension               int                   `json:"dimension"`
	PointComponentType      numeric.ComponentType `json:"pointComponentType"`
	CellComponentType       numeric.ComponentType `json:"cellComponentType"`
	PointPixelComponentType numeric.ComponentType `json:"pointPixelComponentType"`
	CellPixelComponentType  numeric.ComponentType `json:"cellPixelComponentType"`
}

// Mesh is the composite payload for InterfaceKind Mesh (spec.md §3, §4.4
// Table T1): a descriptor plus four optional buffers, each empty when its
// gating count is zero.
//
//	sub-index 0: Points    (MeshType.PointComponentType),      gated by NumberOfPoints > 0
//	sub-index 1: Cells     (MeshType.CellComponentType),       gated by NumberOfCells > 0
//	sub-index 2: PointData (MeshType.PointPixelComponentType), gated by NumberOfPointPixels > 0
//	sub-index 3: CellData  (MeshType.CellPixelComponentType),  gated by NumberOfCellPixels > 0
type Mesh struct {
	MeshType MeshType
	Name     string

	NumberOfPoints int64
	Points         numeric.Array

	NumberOfCells  int64
	Cells          numeric.Array
	CellBufferSize int64

	NumberOfPointPixels int64
	PointData           numeric.Array

	NumberOfCellPixels int64
	CellData           numeric.Array
}
