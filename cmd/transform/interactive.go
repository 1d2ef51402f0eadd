package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NilaySheth/jsbundle/transform"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	variantStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	depStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectVariant modelState = iota
	stateViewVariant
)

type viewMode int

const (
	viewCode viewMode = iota
	viewDeps
	viewMap
)

type interactiveModel struct {
	err      error
	opts     transform.Options
	result   *transform.File
	names    []string
	view     viewport.Model
	selected int
	mode     viewMode
	state    modelState
	width    int
	height   int
	ready    bool
}

func newInteractiveModel(opts transform.Options) *interactiveModel {
	return &interactiveModel{
		opts:  opts,
		state: stateSelectVariant,
	}
}

type loadedMsg struct {
	err    error
	result *transform.File
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadFile
}

func (m *interactiveModel) loadFile() tea.Msg {
	content, err := os.ReadFile(m.opts.File)
	if err != nil {
		return loadedMsg{err: err}
	}

	result, err := transform.Transform(context.Background(), content, m.opts)
	if err != nil {
		return loadedMsg{err: err}
	}

	return loadedMsg{result: result}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectVariant && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectVariant && m.selected < len(m.names)-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateSelectVariant && len(m.names) > 0 {
				m.state = stateViewVariant
				m.mode = viewCode
				m.setViewContent()
			}

		case "tab":
			if m.state == stateViewVariant {
				m.mode = (m.mode + 1) % 3
				m.setViewContent()
			}

		case "esc":
			if m.state == stateViewVariant {
				m.state = stateSelectVariant
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.view = viewport.New(msg.Width, msg.Height-4)
			m.ready = true
		} else {
			m.view.Width = msg.Width
			m.view.Height = msg.Height - 4
		}
		if m.state == stateViewVariant {
			m.setViewContent()
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.result = msg.result
		m.names = make([]string, 0, len(msg.result.Variants))
		for name := range msg.result.Variants {
			m.names = append(m.names, name)
		}
		sort.Strings(m.names)
	}

	if m.state == stateViewVariant {
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) setViewContent() {
	v := m.result.Variants[m.names[m.selected]]

	switch m.mode {
	case viewCode:
		m.view.SetContent(v.Code)

	case viewDeps:
		if len(v.Dependencies) == 0 {
			m.view.SetContent("(no dependencies)")
			break
		}
		var b strings.Builder
		fmt.Fprintf(&b, "Dependency map: %s\n\n", v.DependencyMapName)
		for i, d := range v.Dependencies {
			fmt.Fprintf(&b, "[%d] %s\n", i, d.Name)
		}
		m.view.SetContent(b.String())

	case viewMap:
		if len(v.SourceMap) == 0 {
			m.view.SetContent("(no source map)")
			break
		}
		m.view.SetContent(string(v.SourceMap))
	}

	m.view.GotoTop()
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.result == nil {
		return "Transforming..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Module Transform"))
	b.WriteString(" ")
	b.WriteString(m.result.File)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectVariant:
		if len(m.names) == 0 {
			b.WriteString("No variant output for this file kind.\n\n")
			b.WriteString(helpStyle.Render("q quit"))
			break
		}

		b.WriteString("Select a variant:\n\n")
		for i, name := range m.names {
			v := m.result.Variants[name]
			line := fmt.Sprintf("%s  %s", variantStyle.Render(name),
				depStyle.Render(fmt.Sprintf("%d deps, %d bytes", len(v.Dependencies), len(v.Code))))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter view • q quit"))

	case stateViewVariant:
		mode := map[viewMode]string{viewCode: "code", viewDeps: "dependencies", viewMap: "source map"}[m.mode]
		b.WriteString(fmt.Sprintf("Variant %s (%s)\n", variantStyle.Render(m.names[m.selected]), mode))
		b.WriteString(m.view.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab switch view • ↑/↓ scroll • esc back • q quit"))
	}

	return b.String()
}

func runInteractive(opts transform.Options) error {
	p := tea.NewProgram(newInteractiveModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
