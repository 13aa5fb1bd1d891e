// Command pipeline-run is a non-interactive CLI around runtime.Pipeline: it
// compiles one wasm module, stages a single TextStream/BinaryStream input
// from a flag, stdin, or nothing, runs the pipeline once, and prints the
// decoded output.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/itkwasm/wasm-pipeline/datamodel"
	"github.com/itkwasm/wasm-pipeline/runtime"
)

func main() {
	var (
		wasmFile  = flag.String("wasm", "", "Path to the itk-wasm pipeline module")
		arg       = flag.String("arg", "", "TextStream input value")
		fromStdin = flag.Bool("stdin", false, "Read a stream input from stdin (text unless -binary)")
		binary    = flag.Bool("binary", false, "Treat the -stdin input as BinaryStream instead of TextStream")
		argv      = flag.String("argv", "", "Guest argv, comma-separated (argv[0] defaults to the wasm path)")
		list      = flag.Bool("list", false, "Print the detected WASI version and exit")
	)
	flag.Parse()

	if *wasmFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: pipeline-run -wasm <file.wasm> [-arg string] [-stdin [-binary]]")
		fmt.Fprintln(os.Stderr, "       pipeline-run -wasm <file.wasm> -list")
		os.Exit(1)
	}

	if err := run(*wasmFile, *arg, *argv, *fromStdin, *binary, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(wasmFile, arg, argvStr string, fromStdin, binary, listOnly bool) error {
	ctx := context.Background()

	if fromStdin && term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("-stdin was given but stdin is a terminal, not a pipe")
	}

	p, err := runtime.NewFromFile(ctx, wasmFile)
	if err != nil {
		return fmt.Errorf("load %s: %w", wasmFile, err)
	}
	defer p.Close(ctx)

	fmt.Printf("Module: %s\n", wasmFile)
	fmt.Printf("WASI version: %s\n", p.WasiVersion())

	if listOnly {
		return nil
	}

	args := buildArgs(wasmFile, argvStr)
	var inputs []datamodel.PipelineInput
	var outputs []datamodel.PipelineOutput

	switch {
	case fromStdin:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		if binary {
			inputs = append(inputs, datamodel.NewBinaryStreamInput(data))
			outputs = append(outputs, datamodel.NewBinaryStreamOutput())
		} else {
			inputs = append(inputs, datamodel.NewTextStreamInput(string(data)))
			outputs = append(outputs, datamodel.NewTextStreamOutput())
		}
	case arg != "":
		inputs = append(inputs, datamodel.NewTextStreamInput(arg))
		outputs = append(outputs, datamodel.NewTextStreamOutput())
	}

	fmt.Printf("\nRunning %s...\n", wasmFile)
	result, err := p.RunWithResult(ctx, args, inputs, outputs)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	fmt.Printf("Return code: %d\n", result.ReturnCode)
	for i, out := range result.Outputs {
		fmt.Printf("Output %d: %s\n", i, describeOutput(out))
	}
	return nil
}

func buildArgs(wasmFile, argvStr string) []string {
	if argvStr == "" {
		return []string{wasmFile}
	}
	return strings.Split(argvStr, ",")
}

func describeOutput(out datamodel.PipelineOutput) string {
	switch out.Kind {
	case datamodel.KindTextStream:
		return fmt.Sprintf("TextStream %q", out.TextStream.Data)
	case datamodel.KindBinaryStream:
		return fmt.Sprintf("BinaryStream (%d bytes)", len(out.BinaryStream.Data))
	case datamodel.KindTextFile:
		return fmt.Sprintf("TextFile %s", out.TextFile.Path)
	case datamodel.KindBinaryFile:
		return fmt.Sprintf("BinaryFile %s", out.BinaryFile.Path)
	case datamodel.KindImage:
		return fmt.Sprintf("Image %dD %s", out.Image.ImageType.Dimension, out.Image.ImageType.ComponentType)
	case datamodel.KindMesh:
		return fmt.Sprintf("Mesh %d points, %d cells", out.Mesh.NumberOfPoints, out.Mesh.NumberOfCells)
	case datamodel.KindPolyData:
		return fmt.Sprintf("PolyData %d points", out.PolyData.NumberOfPoints)
	default:
		return string(out.Kind)
	}
}
