package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/redhouse-labs/pygauge/internal/metrics"
)

// keyMap defines keybindings for the interactive TUI.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Quit, k.Help},
	}
}

var defaultKeyMap = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("^/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("v/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

// Styles for the TUI.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	tuiHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	tuiBorderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))
)

// scanModel is the Bubble Tea model for browsing the per-file
// breakdown of a scan.
type scanModel struct {
	project  *metrics.Project
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	ready    bool
	content  string
}

func newScanModel(project *metrics.Project) scanModel {
	return scanModel{
		project: project,
		help:    help.New(),
		keys:    defaultKeyMap,
		content: renderScanContent(project),
	}
}

func renderScanContent(project *metrics.Project) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(
		fmt.Sprintf("Pygauge: %d file(s), %d function(s), %d violation(s)",
			project.TotalFiles, project.TotalFunctions, len(project.Violations))))
	sb.WriteString("\n\n")

	for _, fm := range project.Files {
		sb.WriteString(tuiHeaderStyle.Render(fmt.Sprintf("=== %s ===", fm.Path)))
		sb.WriteString("\n")
		sb.WriteString(statusStyle.Render(fmt.Sprintf(
			"    %d lines (%d code), %d imports, classes: %s",
			fm.TotalLines, fm.CodeLines, fm.Imports, classList(fm.Classes))))
		sb.WriteString("\n")

		if len(fm.Functions) == 0 {
			sb.WriteString(statusStyle.Render("    No functions."))
			sb.WriteString("\n\n")
			continue
		}

		rows := make([][]string, 0, len(fm.Functions))
		for _, fn := range fm.Functions {
			rows = append(rows, []string{
				fn.Name,
				fmt.Sprintf("%d", fn.StartLine),
				fmt.Sprintf("%d", fn.Lines),
				fmt.Sprintf("%d", fn.Complexity),
			})
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(tuiBorderStyle).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return tuiHeaderStyle
				}
				return lipgloss.NewStyle()
			}).
			Headers("FUNCTION", "LINE", "LINES", "COMPLEXITY").
			Rows(rows...)

		sb.WriteString(t.String())
		sb.WriteString("\n\n")
	}

	return sb.String()
}

func classList(classes []string) string {
	if len(classes) == 0 {
		return "none"
	}
	return strings.Join(classes, ", ")
}

func (m scanModel) Init() tea.Cmd {
	return nil
}

func (m scanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 0
		footerHeight := 2
		verticalMargin := headerHeight + footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-verticalMargin)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - verticalMargin
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m scanModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	footer := statusStyle.Render(
		fmt.Sprintf(" %3.f%% ", m.viewport.ScrollPercent()*100)) +
		" " + m.help.View(m.keys)

	return m.viewport.View() + "\n" + footer
}

// runInteractiveScan launches the Bubble Tea TUI for browsing scan
// results.
func runInteractiveScan(project *metrics.Project) error {
	model := newScanModel(project)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
