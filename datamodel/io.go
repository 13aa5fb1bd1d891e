package datamodel

// PipelineInput is a (kind, payload) pair (spec.md §3): the payload is
// fully populated by the caller before the run. Exactly one of the typed
// fields matching Kind is set; the constructor functions below enforce
// this.
type PipelineInput struct {
	Kind InterfaceKind

	TextStream   *TextStream
	BinaryStream *BinaryStream
	TextFile     *TextFile
	BinaryFile   *BinaryFile
	Image        *Image
	Mesh         *Mesh
	PolyData     *PolyData
}

func NewTextStreamInput(data string) PipelineInput {
	return PipelineInput{Kind: KindTextStream, TextStream: &TextStream{Data: data}}
}

func NewBinaryStreamInput(data []byte) PipelineInput {
	return PipelineInput{Kind: KindBinaryStream, BinaryStream: &BinaryStream{Data: data}}
}

func NewTextFileInput(path string) PipelineInput {
	return PipelineInput{Kind: KindTextFile, TextFile: &TextFile{Path: path}}
}

func NewBinaryFileInput(path string) PipelineInput {
	return PipelineInput{Kind: KindBinaryFile, BinaryFile: &BinaryFile{Path: path}}
}

func NewImageInput(img *Image) PipelineInput {
	return PipelineInput{Kind: KindImage, Image: img}
}

func NewMeshInput(m *Mesh) PipelineInput {
	return PipelineInput{Kind: KindMesh, Mesh: m}
}

func NewPolyDataInput(p *PolyData) PipelineInput {
	return PipelineInput{Kind: KindPolyData, PolyData: p}
}

// PipelineOutput is a (kind, payload) pair (spec.md §3): before the run the
// caller supplies only Kind (and, for file kinds, a target Path via
// TextFile/BinaryFile); the runtime populates the remaining payload
// fields on return.
type PipelineOutput struct {
	Kind InterfaceKind

	TextStream   *TextStream
	BinaryStream *BinaryStream
	TextFile     *TextFile
	BinaryFile   *BinaryFile
	Image        *Image
	Mesh         *Mesh
	PolyData     *PolyData
}

func NewTextStreamOutput() PipelineOutput {
	return PipelineOutput{Kind: KindTextStream}
}

func NewBinaryStreamOutput() PipelineOutput {
	return PipelineOutput{Kind: KindBinaryStream}
}

func NewTextFileOutput(path string) PipelineOutput {
	return PipelineOutput{Kind: KindTextFile, TextFile: &TextFile{Path: path}}
}

func NewBinaryFileOutput(path string) PipelineOutput {
	return PipelineOutput{Kind: KindBinaryFile, BinaryFile: &BinaryFile{Path: path}}
}

func NewImageOutput() PipelineOutput {
	return PipelineOutput{Kind: KindImage}
}

func NewMeshOutput() PipelineOutput {
	return PipelineOutput{Kind: KindMesh}
}

func NewPolyDataOutput() PipelineOutput {
	return PipelineOutput{Kind: KindPolyData}
}
