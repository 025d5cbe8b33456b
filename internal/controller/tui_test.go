package controller

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "doccov.dev/pkg/doccov/internal/model"
)

func largeAggregate(n int) m.AggregateStats {
	agg := m.AggregateStats{Files: n, PerFile: make(map[m.Path]m.FileStats, n)}

	for i := range n {
		agg.PerFile[m.Path(fmt.Sprintf("File%03d.swift", i))] = m.FileStats{
			TotalItems:         10,
			DocumentedItems:    i % 11,
			CoveragePercentage: float64(i%11) * 10,
		}
	}

	return agg
}

func press(model tea.Model, keys ...string) tea.Model {
	for _, k := range keys {
		var msg tea.KeyMsg

		switch k {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "pgdown":
			msg = tea.KeyMsg{Type: tea.KeyPgDown}
		case "pgup":
			msg = tea.KeyMsg{Type: tea.KeyPgUp}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}

		model, _ = model.Update(msg)
	}

	return model
}

func TestTUI_DisplayAggregate_SmallListPrintsDirectly(t *testing.T) {
	cmd, out, _ := newTestCommand()

	if err := NewTUI(cmd).DisplayAggregate(context.Background(), testAggregate()); err != nil {
		t.Fatalf("DisplayAggregate() error = %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Documentation coverage (lowest first)") {
		t.Errorf("output should contain header:\n%s", output)
	}

	if !strings.Contains(output, "Bad.swift") || !strings.Contains(output, "Good.swift") {
		t.Errorf("output should list files:\n%s", output)
	}

	if !strings.Contains(output, "2 files, 3/5 documented") {
		t.Errorf("output should contain summary:\n%s", output)
	}
}

func TestTUI_DisplayAggregate_Empty(t *testing.T) {
	cmd, out, _ := newTestCommand()

	if err := NewTUI(cmd).DisplayAggregate(context.Background(), m.AggregateStats{}); err != nil {
		t.Fatalf("DisplayAggregate() error = %v", err)
	}

	if !strings.Contains(out.String(), "No source files found.") {
		t.Errorf("expected empty message, got: %s", out.String())
	}
}

func TestCoverageModel_Scrolling(t *testing.T) {
	model := newCoverageModel(largeAggregate(50))
	model.height = 15 // ten entries per page

	if !model.needsPagination() {
		t.Fatal("50 entries should need pagination")
	}

	var current tea.Model = model

	current = press(current, "down", "j")
	if got := current.(coverageModel).offset; got != 2 {
		t.Errorf("offset after two downs = %d, want 2", got)
	}

	current = press(current, "up", "k", "k")
	if got := current.(coverageModel).offset; got != 0 {
		t.Errorf("offset must not go negative, got %d", got)
	}

	current = press(current, "pgdown", "pgdown", "pgdown", "pgdown", "pgdown")
	if got := current.(coverageModel).offset; got != 40 {
		t.Errorf("offset after paging to the end = %d, want 40", got)
	}

	current = press(current, "pgup")
	if got := current.(coverageModel).offset; got != 30 {
		t.Errorf("offset after page up = %d, want 30", got)
	}

	view := current.View()
	if !strings.Contains(view, "31-40 of 50") {
		t.Errorf("view should show position:\n%s", view)
	}
}

func TestCoverageModel_WindowResizeClampsOffset(t *testing.T) {
	model := newCoverageModel(largeAggregate(12))
	model.height = 7
	model.offset = model.maxOffset()

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 40})

	resized := updated.(coverageModel)
	if resized.offset != 0 {
		t.Errorf("offset = %d, want 0 once everything fits", resized.offset)
	}

	if resized.needsPagination() {
		t.Error("12 entries fit in 40 lines")
	}
}

func TestCoverageModel_Quit(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := newCoverageModel(largeAggregate(3)).Update(k)
		if cmd == nil {
			t.Fatalf("%s should quit", k)
		}

		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s should produce QuitMsg", k)
		}
	}
}

func TestCoverageStyle(t *testing.T) {
	tests := []struct {
		coverage float64
		want     lipgloss.TerminalColor
	}{
		{0, lipgloss.Color("9")},
		{19.99, lipgloss.Color("9")},
		{50, lipgloss.Color("11")},
		{80, lipgloss.Color("10")},
		{100, lipgloss.Color("10")},
	}

	for _, tt := range tests {
		if got := coverageStyle(tt.coverage).GetForeground(); got != tt.want {
			t.Errorf("coverageStyle(%v) foreground = %v, want %v", tt.coverage, got, tt.want)
		}
	}
}
