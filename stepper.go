// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/balancedtree/replay"
)

const (
	focusOps = iota
	focusInput
)

// opItem represents an operation in the ops list
type opItem struct {
	op   replay.Op
	step *replay.Step // nil until applied
}

func (i opItem) FilterValue() string { return i.op.String() }
func (i opItem) Title() string       { return i.op.String() }
func (i opItem) Description() string {
	if i.step == nil {
		return "pending"
	}
	return fmt.Sprintf("-> %t  height %d  size %d", i.step.Result, i.step.Height, i.step.Size)
}

// StepModel is the Bubble Tea state of the interactive stepper
type StepModel struct {
	ready bool

	opsList  list.Model
	treeView viewport.Model
	input    textinput.Model

	runner replay.Runner
	script *replay.Script
	items  []opItem
	next   int // index of the next script op to apply

	focus  int
	status string
	failed bool

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// NewStepModel creates the stepper for a loaded script
func NewStepModel(script *replay.Script, runner replay.Runner, styles *Styles) StepModel {
	items := make([]opItem, len(script.Ops))
	listItems := make([]list.Item, len(script.Ops))
	for i, op := range script.Ops {
		items[i] = opItem{op: op}
		listItems[i] = items[i]
	}

	opsList := list.New(listItems, list.NewDefaultDelegate(), 0, 0)
	opsList.SetShowTitle(false)
	opsList.SetShowHelp(false)
	opsList.SetFilteringEnabled(false)

	input := textinput.New()
	input.Placeholder = "insert 42 | delete 7 | search 3"
	input.CharLimit = 256
	input.Width = 50

	treeView := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	return StepModel{
		opsList:         opsList,
		treeView:        treeView,
		input:           input,
		runner:          runner,
		script:          script,
		items:           items,
		styles:          styles,
		glamourRenderer: glamourRenderer,
		status:          fmt.Sprintf("**%s**: %d operations, press `n` to apply the next one", script.Name, len(script.Ops)),
	}
}

// Init is called when the program starts
func (m StepModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m StepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			if m.focus == focusOps {
				m.focus = focusInput
				return m, m.input.Focus()
			}
			m.focus = focusOps
			m.input.Blur()
			return m, nil
		}

		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateOps(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}
	return m, nil
}

func (m StepModel) updateOps(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "n", " ", "right":
		m.applyNext()
	case "a":
		for m.applyNext() {
		}
	case "c":
		drawing := m.runner.Render()
		return m, func() tea.Msg {
			copyToClipboard(drawing)
			return nil
		}
	case "pgup":
		m.treeView.LineUp(m.treeView.Height)
	case "pgdown":
		m.treeView.LineDown(m.treeView.Height)
	case "up", "k":
		m.treeView.LineUp(1)
	case "down", "j":
		m.treeView.LineDown(1)
	}
	return m, nil
}

func (m StepModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		line := m.input.Value()
		m.input.SetValue("")
		ops, err := replay.ParseLine(line)
		if err != nil {
			m.setStatus(fmt.Sprintf("**error**: %v", err), true)
			return m, nil
		}
		for _, op := range ops {
			if _, err := m.apply(op); err != nil {
				break
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// applyNext applies the next pending script operation and reports whether
// there was one that succeeded
func (m *StepModel) applyNext() bool {
	if m.next >= len(m.items) {
		m.setStatus("script finished", false)
		m.verify()
		return false
	}
	step, err := m.apply(m.items[m.next].op)
	if err != nil {
		return false
	}
	m.items[m.next].step = &step
	m.opsList.SetItem(m.next, m.items[m.next])
	m.opsList.Select(m.next)
	m.next++
	if m.next == len(m.items) {
		m.verify()
	}
	return true
}

func (m *StepModel) apply(op replay.Op) (replay.Step, error) {
	step, err := m.runner.Apply(op)
	if err != nil {
		m.setStatus(fmt.Sprintf("**%s** failed: %v", op, err), true)
		return step, err
	}
	m.treeView.SetContent(m.runner.Render())
	m.setStatus(fmt.Sprintf("**#%d %s** -> `%t`, height %d, size %d", step.Index, op, step.Result, step.Height, step.Size), false)
	return step, nil
}

func (m *StepModel) verify() {
	if m.script.Expect == nil {
		return
	}
	if err := m.runner.Verify(m.script.Expect); err != nil {
		m.setStatus("**expectations failed**\n\n* "+strings.ReplaceAll(err.Error(), "\n", "\n* "), true)
		return
	}
	m.setStatus("**all expectations met**", false)
}

func (m *StepModel) setStatus(markdown string, failed bool) {
	m.status = markdown
	m.failed = failed
}

func (m *StepModel) updateLayout() {
	listWidth := m.width / 3
	treeWidth := m.width - listWidth - 4
	bodyHeight := m.height - 10
	if bodyHeight < 5 {
		bodyHeight = 5
	}

	m.opsList.SetSize(listWidth, bodyHeight)
	m.treeView.Width = treeWidth
	m.treeView.Height = bodyHeight
	m.input.Width = m.width - 6
}

// View renders the stepper
func (m StepModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	opsBorder, inputBorder := m.styles.BorderFocused, m.styles.BorderBlurred
	if m.focus == focusInput {
		opsBorder, inputBorder = m.styles.BorderBlurred, m.styles.BorderFocused
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		opsBorder.Render(m.opsList.View()),
		m.styles.BorderBlurred.Render(m.treeView.View()),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("avlreplay: "+m.script.Name),
		body,
		m.renderStatus(),
		inputBorder.Render(m.input.View()),
		m.renderHelp(),
	)
}

func (m StepModel) renderStatus() string {
	if m.glamourRenderer != nil {
		if out, err := m.glamourRenderer.Render(m.status); err == nil {
			return strings.TrimSpace(out)
		}
	}
	if m.failed {
		return m.styles.Fail.Render(m.status)
	}
	return m.status
}

func (m StepModel) renderHelp() string {
	keys := []struct{ key, desc string }{
		{"n", "next"},
		{"a", "apply all"},
		{"tab", "command input"},
		{"c", "copy tree"},
		{"pgup/pgdown", "scroll"},
		{"q", "quit"},
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, m.styles.HelpKey.Render(k.key)+" "+m.styles.HelpDesc.Render(k.desc))
	}
	return strings.Join(parts, "  ")
}

func runStepper(script *replay.Script, runner replay.Runner, styles *Styles) error {
	program := tea.NewProgram(
		NewStepModel(script, runner, styles),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	return err
}
