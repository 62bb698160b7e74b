package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(code rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: code} }

func TestMenu_SkipsDisabledAndRunsAction(t *testing.T) {
	ran := ""
	m := NewMenu([]MenuItem{
		{Label: "Disabled", Disabled: true},
		{Label: "First", Action: func() tea.Cmd { ran = "first"; return nil }},
		{Label: "Second", Action: func() tea.Cmd { ran = "second"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Selected)
	}

	m, _ = m.Update(key(tea.KeyUp))
	if m.Selected != 1 {
		t.Fatalf("moved onto disabled item")
	}
	m, _ = m.Update(key(tea.KeyDown))
	m.Update(key(tea.KeyEnter))
	if ran != "second" {
		t.Fatalf("ran = %q, want second", ran)
	}
}

func TestSelector(t *testing.T) {
	s := NewSelector("Style", []string{"Visual", "Audio", "Mixed"}, "Audio")
	if s.Value() != "Audio" {
		t.Fatalf("Value() = %q", s.Value())
	}
	s, changed := s.Update(key(tea.KeyRight))
	if !changed || s.Value() != "Mixed" {
		t.Fatalf("right: %q, %v", s.Value(), changed)
	}
	s, _ = s.Update(key(tea.KeyRight))
	if s.Value() != "Visual" {
		t.Fatalf("right should wrap, got %q", s.Value())
	}
	s, _ = s.Update(key(tea.KeyLeft))
	if s.Value() != "Mixed" {
		t.Fatalf("left should wrap, got %q", s.Value())
	}
	if _, changed := s.Update(key('x')); changed {
		t.Fatal("unrelated key changed the selector")
	}
}

func TestMultiChoiceMarksAnswers(t *testing.T) {
	mc := MultiChoice{Question: "2+2?", Options: []string{"3", "4"}, CorrectIndex: 1, Chosen: 0, Submitted: true}
	out := mc.View()
	if !strings.Contains(out, "✓") || !strings.Contains(out, "✗") {
		t.Fatalf("submitted view should mark answers:\n%s", out)
	}
}

func TestProgressBarPercent(t *testing.T) {
	out := NewProgressBar("", 0.666, true, 30).View()
	if !strings.Contains(out, "67%") {
		t.Fatalf("progress = %q", out)
	}
}
