package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/raggedlabs/ragged/builder"
	"github.com/raggedlabs/ragged/kernel"
	"github.com/raggedlabs/ragged/kernel/native"
	"github.com/raggedlabs/ragged/layout"
	"github.com/raggedlabs/ragged/strop"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	opStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	treeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

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

type interactiveModel struct {
	err      error
	tree     layout.Content
	provider kernel.Provider
	filename string
	result   string
	ops      []opInfo
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
}

type opInfo struct {
	name   string
	params []string
}

type modelState int

const (
	stateSelectOp modelState = iota
	stateInputArgs
	stateShowResult
)

var inspectOps = []opInfo{
	{name: "flatten", params: []string{"axis"}},
	{name: "find", params: []string{"pattern"}},
	{name: "find-regex", params: []string{"pattern"}},
	{name: "split", params: []string{"pattern", "max-splits"}},
	{name: "split-regex", params: []string{"pattern", "max-splits"}},
}

func runInteractive(filename string) error {
	m := newInteractiveModel(filename)
	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}

func newInteractiveModel(filename string) *interactiveModel {
	return &interactiveModel{
		filename: filename,
		provider: native.New(),
		ops:      inspectOps,
		state:    stateSelectOp,
	}
}

type loadedMsg struct {
	err  error
	tree layout.Content
}

type opResultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadLayout
}

func (m *interactiveModel) loadLayout() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	tree, err := builder.FromJSON(data)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{tree: tree}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateInputArgs || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectOp && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectOp && m.selected < len(m.ops)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectOp:
				m.prepareInputs()
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.runOp

			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectOp
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.tree = msg.tree

	case opResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	op := m.ops[m.selected]
	m.inputs = make([]textinput.Model, len(op.params))
	for i, p := range op.params {
		ti := textinput.New()
		ti.Placeholder = p
		ti.Prompt = p + ": "
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) runOp() tea.Msg {
	if m.tree == nil {
		return opResultMsg{err: fmt.Errorf("layout not loaded")}
	}

	op := m.ops[m.selected]
	var out layout.Content
	var err error
	switch op.name {
	case "flatten":
		axis := 1
		if v := m.inputs[0].Value(); v != "" {
			axis, err = strconv.Atoi(v)
			if err != nil {
				return opResultMsg{err: fmt.Errorf("axis: %w", err)}
			}
		}
		out, err = layout.Flatten(m.tree, axis)

	case "find":
		out, err = strop.FindSubstring(m.tree, m.provider, m.inputs[0].Value(), kernel.FindOptions{})

	case "find-regex":
		out, err = strop.FindSubstringRegex(m.tree, m.provider, m.inputs[0].Value(), kernel.FindOptions{})

	case "split", "split-regex":
		opts := kernel.SplitOptions{MaxSplits: -1}
		if v := m.inputs[1].Value(); v != "" {
			opts.MaxSplits, err = strconv.Atoi(v)
			if err != nil {
				return opResultMsg{err: fmt.Errorf("max-splits: %w", err)}
			}
		}
		if op.name == "split" {
			out, err = strop.SplitPattern(m.tree, m.provider, m.inputs[0].Value(), opts)
		} else {
			out, err = strop.SplitPatternRegex(m.tree, m.provider, m.inputs[0].Value(), opts)
		}
	}
	if err != nil {
		return opResultMsg{err: err}
	}

	encoded, err := json.Marshal(layout.Values(out))
	if err != nil {
		return opResultMsg{err: err}
	}
	return opResultMsg{result: describe(out, 0) + "\n\n" + string(encoded)}
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.tree == nil {
		return "Loading layout..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Layout Inspector"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")
	b.WriteString(treeStyle.Render(describe(m.tree, 0)))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectOp:
		b.WriteString("Select an operation:\n\n")
		for i, op := range m.ops {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + m.formatOp(op)))
			} else {
				b.WriteString(cursor + m.formatOp(op))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter run • q quit"))

	case stateInputArgs:
		op := m.ops[m.selected]
		b.WriteString(fmt.Sprintf("Running %s\n\n", opStyle.Render(op.name)))
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter run • esc back"))

	case stateShowResult:
		op := m.ops[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", opStyle.Render(op.name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatOp(op opInfo) string {
	return opStyle.Render(op.name) + "(" + strings.Join(op.params, ", ") + ")"
}
