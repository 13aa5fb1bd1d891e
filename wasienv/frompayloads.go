package wasienv

import "github.com/itkwasm/wasm-pipeline/datamodel"

// WithInputFileDirs preopens the parent directory of every TextFile/
// BinaryFile input payload (spec.md §4.2, §8 scenario 6: "Preopen
// derivation").
func (b *Builder) WithInputFileDirs(inputs []datamodel.PipelineInput) *Builder {
	for _, in := range inputs {
		switch in.Kind {
		case datamodel.KindTextFile:
			b.WithFilePayloadDir(in.TextFile.Path)
		case datamodel.KindBinaryFile:
			b.WithFilePayloadDir(in.BinaryFile.Path)
		}
	}
	return b
}

// WithOutputFileDirs preopens the parent directory of every TextFile/
// BinaryFile output's target path.
func (b *Builder) WithOutputFileDirs(outputs []datamodel.PipelineOutput) *Builder {
	for _, out := range outputs {
		switch out.Kind {
		case datamodel.KindTextFile:
			if out.TextFile != nil {
				b.WithFilePayloadDir(out.TextFile.Path)
			}
		case datamodel.KindBinaryFile:
			if out.BinaryFile != nil {
				b.WithFilePayloadDir(out.BinaryFile.Path)
			}
		}
	}
	return b
}
