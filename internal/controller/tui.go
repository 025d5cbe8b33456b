package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "doccov.dev/pkg/doccov/internal/model"
)

const (
	defaultViewHeight = 24
	// header, blank line, summary, blank line and footer.
	chromeLines = 5
	barWidth    = 20
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	lowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	highStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// TUI implements UI with a scrollable Bubble Tea coverage viewer. Everything
// except the aggregate view is printed like SimpleUI.
type TUI struct {
	*SimpleUI
	height int
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd), height: defaultViewHeight}
}

// DisplayAggregate shows the per-file coverage list. Short lists are printed
// directly; longer ones open an interactive viewer.
func (t *TUI) DisplayAggregate(ctx context.Context, agg m.AggregateStats) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newCoverageModel(agg)
	model.height = t.height

	out := t.cmd.OutOrStdout()

	if !model.needsPagination() {
		_, err := fmt.Fprint(out, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("coverage viewer: %w", err)
	}

	return nil
}

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "f", " "), key.WithHelp("pgdn", "page down")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// coverageModel lists files by coverage, lowest first.
type coverageModel struct {
	agg     m.AggregateStats
	entries []m.FileCoverage
	keys    keyMap
	offset  int
	height  int
	width   int
}

func newCoverageModel(agg m.AggregateStats) coverageModel {
	return coverageModel{
		agg:     agg,
		entries: agg.Sorted(),
		keys:    defaultKeyMap(),
		height:  defaultViewHeight,
	}
}

func (cm coverageModel) Init() tea.Cmd {
	return nil
}

func (cm coverageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cm.height = msg.Height
		cm.width = msg.Width
		cm.offset = min(cm.offset, cm.maxOffset())

		return cm, nil
	case tea.KeyMsg:
		return cm.handleKeyPress(msg)
	}

	return cm, nil
}

func (cm coverageModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, cm.keys.Quit):
		return cm, tea.Quit
	case key.Matches(msg, cm.keys.Down):
		cm.offset = min(cm.offset+1, cm.maxOffset())
	case key.Matches(msg, cm.keys.Up):
		cm.offset = max(cm.offset-1, 0)
	case key.Matches(msg, cm.keys.PageDown):
		cm.offset = min(cm.offset+cm.itemsPerPage(), cm.maxOffset())
	case key.Matches(msg, cm.keys.PageUp):
		cm.offset = max(cm.offset-cm.itemsPerPage(), 0)
	}

	return cm, nil
}

func (cm coverageModel) itemsPerPage() int {
	return max(cm.height-chromeLines, 1)
}

func (cm coverageModel) maxOffset() int {
	return max(len(cm.entries)-cm.itemsPerPage(), 0)
}

func (cm coverageModel) needsPagination() bool {
	return len(cm.entries) > cm.itemsPerPage()
}

func (cm coverageModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Documentation coverage (lowest first)"))
	b.WriteString("\n\n")

	if len(cm.entries) == 0 {
		b.WriteString(faintStyle.Render("No source files found."))
		b.WriteString("\n")

		return b.String()
	}

	end := min(cm.offset+cm.itemsPerPage(), len(cm.entries))
	for _, entry := range cm.entries[cm.offset:end] {
		b.WriteString(renderEntry(entry))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d files, %d/%d documented, %s overall\n",
		cm.agg.Files, cm.agg.DocumentedItems, cm.agg.TotalItems,
		coverageStyle(cm.agg.CoveragePercentage).Render(fmt.Sprintf("%.2f%%", cm.agg.CoveragePercentage))))

	if cm.needsPagination() {
		b.WriteString(faintStyle.Render(fmt.Sprintf("%d-%d of %d  ↑/↓ scroll  pgup/pgdn page  q quit",
			cm.offset+1, end, len(cm.entries))))
		b.WriteString("\n")
	}

	return b.String()
}

func renderEntry(entry m.FileCoverage) string {
	style := coverageStyle(entry.Stats.CoveragePercentage)
	filled := int(entry.Stats.CoveragePercentage / 100 * barWidth)
	filled = min(max(filled, 0), barWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	return fmt.Sprintf("%s %7s  %5s  %s",
		style.Render(bar),
		style.Render(fmt.Sprintf("%.2f%%", entry.Stats.CoveragePercentage)),
		fmt.Sprintf("%d/%d", entry.Stats.DocumentedItems, entry.Stats.TotalItems),
		entry.Path)
}

func coverageStyle(coverage float64) lipgloss.Style {
	switch {
	case coverage < 20:
		return lowStyle
	case coverage < 80:
		return mediumStyle
	}

	return highStyle
}
