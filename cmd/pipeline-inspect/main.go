// Command pipeline-inspect is an interactive TUI for poking at a compiled
// itk-wasm pipeline module: it shows the detected WASI version and which of
// the fixed guest exports are present, lets an operator pick an output kind
// and a stream input value, runs the pipeline once, and renders the decoded
// output.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/itkwasm/wasm-pipeline/datamodel"
	"github.com/itkwasm/wasm-pipeline/driver"
	"github.com/itkwasm/wasm-pipeline/engine"
	"github.com/itkwasm/wasm-pipeline/runtime"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	presentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	missingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: pipeline-inspect <file.wasm>")
		os.Exit(1)
	}

	m := newInspectModel(os.Args[1])
	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type modelState int

const (
	stateLoading modelState = iota
	stateSelectOutputKind
	stateInputValue
	stateShowResult
)

var outputKinds = []datamodel.InterfaceKind{datamodel.KindTextStream, datamodel.KindBinaryStream}

type inspectModel struct {
	filename  string
	err       error
	pipeline  *runtime.Pipeline
	wasi      engine.WasiVersion
	exports   map[string]bool
	state     modelState
	selected  int
	input     textinput.Model
	result    string
}

func newInspectModel(filename string) *inspectModel {
	ti := textinput.New()
	ti.Placeholder = "stream data"
	ti.Prompt = "value: "
	ti.Width = 40
	return &inspectModel{filename: filename, state: stateLoading, input: ti}
}

type loadedMsg struct {
	err      error
	pipeline *runtime.Pipeline
	wasi     engine.WasiVersion
	exports  map[string]bool
}

type runResultMsg struct {
	err    error
	result string
}

func (m *inspectModel) Init() tea.Cmd {
	return m.load
}

func (m *inspectModel) load() tea.Msg {
	ctx := context.Background()

	p, err := runtime.NewFromFile(ctx, m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}

	exports := make(map[string]bool, len(engine.RequiredExports()))
	wazeroMod := p.Module().Wazero()
	defined := wazeroMod.ExportedFunctions()
	memories := wazeroMod.ExportedMemories()
	for _, name := range engine.RequiredExports() {
		if name == "memory" {
			_, exports[name] = memories[name]
			continue
		}
		_, exports[name] = defined[name]
	}

	return loadedMsg{pipeline: p, wasi: p.WasiVersion(), exports: exports}
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.pipeline != nil {
				m.pipeline.Close(context.Background())
			}
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectOutputKind && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectOutputKind && m.selected < len(outputKinds)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectOutputKind:
				m.state = stateInputValue
				m.input.Focus()
			case stateInputValue:
				return m, m.runPipeline
			case stateShowResult:
				m.state = stateSelectOutputKind
				m.result = ""
				m.err = nil
				m.input.SetValue("")
			}

		case "esc":
			if m.state == stateInputValue {
				m.state = stateSelectOutputKind
				m.input.Blur()
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.pipeline = msg.pipeline
		m.wasi = msg.wasi
		m.exports = msg.exports
		m.state = stateSelectOutputKind

	case runResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputValue {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *inspectModel) runPipeline() tea.Msg {
	ctx := context.Background()
	kind := outputKinds[m.selected]

	var inputs []datamodel.PipelineInput
	var outputs []datamodel.PipelineOutput
	if kind == datamodel.KindBinaryStream {
		inputs = append(inputs, datamodel.NewBinaryStreamInput([]byte(m.input.Value())))
		outputs = append(outputs, datamodel.NewBinaryStreamOutput())
	} else {
		inputs = append(inputs, datamodel.NewTextStreamInput(m.input.Value()))
		outputs = append(outputs, datamodel.NewTextStreamOutput())
	}

	result, err := m.pipeline.RunWithResult(ctx, []string{m.filename}, inputs, outputs)
	if err != nil {
		return runResultMsg{err: err}
	}
	return runResultMsg{result: describeResult(result)}
}

func describeResult(result driver.RunResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "return code: %d\n", result.ReturnCode)
	for i, out := range result.Outputs {
		switch out.Kind {
		case datamodel.KindTextStream:
			fmt.Fprintf(&b, "output %d: %q\n", i, out.TextStream.Data)
		case datamodel.KindBinaryStream:
			fmt.Fprintf(&b, "output %d: %d bytes\n", i, len(out.BinaryStream.Data))
		}
	}
	return b.String()
}

func (m *inspectModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err)) + "\n"
	}

	if m.state == stateLoading {
		return "Loading " + m.filename + "...\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Pipeline Inspector"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("WASI version: "))
	b.WriteString(string(m.wasi))
	b.WriteString("\n")
	for _, name := range engine.RequiredExports() {
		if m.exports[name] {
			b.WriteString(presentStyle.Render("  [present] " + name))
		} else {
			b.WriteString(missingStyle.Render("  [missing] " + name))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch m.state {
	case stateSelectOutputKind:
		b.WriteString("Select an output kind to exercise:\n\n")
		for i, k := range outputKinds {
			cursor := "  "
			line := cursor + string(k)
			if i == m.selected {
				line = selectedStyle.Render("> " + string(k))
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter continue • q quit"))

	case stateInputValue:
		b.WriteString(fmt.Sprintf("Input for slot 0 (%s):\n\n", outputKinds[m.selected]))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter run • esc back"))

	case stateShowResult:
		b.WriteString("Result:\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter run again • q quit"))
	}

	return b.String()
}
