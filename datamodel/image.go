package datamodel

import "github.com/itkwasm/wasm-pipeline/numeric"

// ImageType describes the scalar layout of an Image's pixel buffer
// (spec.md §3, §6).
type ImageType struct {
	Dimension     int                   `json:"dimension"`
	ComponentType numeric.ComponentType `json:"componentType"`
	PixelType     string                `json:"pixelType"`
	Components    int                   `json:"components"`
}

// Image is the composite payload for InterfaceKind Image (spec.md §3, §4.4
// Table T1): a descriptor plus two binary buffers, pixel data (sub-index 0,
// scalar type ImageType.ComponentType) and a direction matrix (sub-index 1,
// always float64, shape dim*dim, row-major).
type Image struct {
	ImageType ImageType
	Name      string
	Origin    []float64
	Spacing   []float64
	Size      []int64

	// Direction holds dim*dim float64 values in row-major order. Use
	// DirectionAt/SetDirectionAt to address it as a (dim, dim) matrix.
	Direction []float64

	// Data is the pixel buffer, scalar type ImageType.ComponentType.
	Data numeric.Array
}

// DirectionAt returns the direction matrix entry at (row, col).
func (img *Image) DirectionAt(row, col int) float64 {
	return img.Direction[row*img.ImageType.Dimension+col]
}

// SetDirectionAt sets the direction matrix entry at (row, col), growing
// Direction to dim*dim if necessary.
func (img *Image) SetDirectionAt(row, col int, v float64) {
	dim := img.ImageType.Dimension
	if len(img.Direction) != dim*dim {
		img.Direction = make([]float64, dim*dim)
	}
	img.Direction[row*dim+col] = v
}
