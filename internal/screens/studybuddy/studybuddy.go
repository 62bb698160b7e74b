// Package studybuddy is the AI tutor chat view.
package studybuddy

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adaptive-learning/studybuddy/internal/chat"
	"github.com/adaptive-learning/studybuddy/internal/gateway"
	"github.com/adaptive-learning/studybuddy/internal/screen"
	"github.com/adaptive-learning/studybuddy/internal/ui/components"
	"github.com/adaptive-learning/studybuddy/internal/ui/layout"
	"github.com/adaptive-learning/studybuddy/internal/ui/theme"
)

// Toasts for the copy action.
const (
	ToastCopied      = "Copied to clipboard!"
	ToastNothingCopy = "Nothing to copy yet."
	ToastCopyFailed  = "Could not copy to the clipboard."
)

// replyMsg carries the tutor's answer.
type replyMsg struct {
	text string
}

// StudyBuddyScreen implements screen.Screen for the tutor chat.
type StudyBuddyScreen struct {
	deps       screen.Deps
	transcript *chat.Transcript
	input      components.TextInput
	suggestion int // -1 when no suggestion is highlighted
	spinner    components.Spinner
}

var _ screen.Screen = (*StudyBuddyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyBuddyScreen)(nil)
var _ screen.TextCapturer = (*StudyBuddyScreen)(nil)

func New(deps screen.Deps) *StudyBuddyScreen {
	return &StudyBuddyScreen{
		deps:       deps,
		transcript: chat.NewTranscript(),
		input:      components.NewTextInput("Ask me anything about your studies...", "", 500),
		suggestion: -1,
	}
}

func (s *StudyBuddyScreen) Init() tea.Cmd { return s.input.Init() }

func (s *StudyBuddyScreen) Title() string { return "AI Study Buddy" }

func (s *StudyBuddyScreen) CapturingText() bool { return true }

func (s *StudyBuddyScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Send"}}
	if s.transcript.ShowSuggestions() {
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Suggestions"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+Y", Description: "Copy reply"}, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *StudyBuddyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		s.transcript.Finish(msg.text)
		return s, nil

	case components.SpinnerTickMsg:
		if !s.transcript.Loading() {
			return s, nil
		}
		s.spinner.Advance()
		return s, components.SpinnerTick()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			return s, s.send()
		case "ctrl+y":
			s.copyLastReply()
			return s, nil
		case "up", "down":
			if s.transcript.ShowSuggestions() {
				s.moveSuggestion(msg.String())
				return s, nil
			}
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *StudyBuddyScreen) moveSuggestion(key string) {
	n := len(chat.SuggestionPrompts)
	if key == "down" {
		s.suggestion = min(s.suggestion+1, n-1)
	} else {
		s.suggestion = max(s.suggestion-1, -1)
	}
}

// send submits the typed prompt, or the highlighted suggestion when the
// input is empty. Blank prompts and prompts sent while a reply is
// loading are ignored.
func (s *StudyBuddyScreen) send() tea.Cmd {
	prompt := s.input.Value()
	if strings.TrimSpace(prompt) == "" && s.suggestion >= 0 && s.transcript.ShowSuggestions() {
		prompt = chat.SuggestionPrompts[s.suggestion]
	}

	history, ok := s.transcript.Begin(prompt)
	if !ok {
		return nil
	}
	s.input.Reset()
	s.suggestion = -1

	return tea.Batch(s.ask(prompt, history), components.SpinnerTick())
}

func (s *StudyBuddyScreen) ask(prompt string, history []gateway.Turn) tea.Cmd {
	tutor := s.deps.Tutor
	return func() tea.Msg {
		if tutor == nil {
			return replyMsg{text: gateway.TutorUnavailable}
		}
		return replyMsg{text: tutor.TutorResponse(context.Background(), prompt, history)}
	}
}

func (s *StudyBuddyScreen) copyLastReply() {
	i := s.transcript.LastReply()
	if i < 0 {
		s.deps.State.ShowToast(ToastNothingCopy, 0)
		return
	}
	if err := s.transcript.Copy(i); err != nil {
		s.deps.Log.Warnw("copy failed", "error", err)
		s.deps.State.ShowToast(ToastCopyFailed, 0)
		return
	}
	s.deps.State.ShowToast(ToastCopied, 0)
}

func (s *StudyBuddyScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	bubble := lipgloss.NewStyle().Width(cw - 4)

	var lines []string
	for _, m := range s.transcript.Messages() {
		if m.Speaker == chat.SpeakerUser {
			lines = append(lines, lipgloss.PlaceHorizontal(cw, lipgloss.Right,
				theme.Selected.Render("You: ")+theme.Body.Render(m.Text)))
		} else {
			lines = append(lines, theme.Selected.Render("AI")+"  "+bubble.Render(renderReply(m.Text)))
		}
		lines = append(lines, "")
	}
	if s.transcript.Loading() {
		lines = append(lines, theme.Selected.Render("AI")+"  "+s.spinner.View("thinking..."), "")
	}
	if s.transcript.ShowSuggestions() {
		lines = append(lines, theme.Hint.Render("Suggestion prompts"))
		for i, p := range chat.SuggestionPrompts {
			style, prefix := theme.Unselected, "  "
			if i == s.suggestion {
				style, prefix = theme.Selected, "▸ "
			}
			lines = append(lines, style.Render(prefix+p))
		}
	}

	input := s.input.View()
	chatHeight := max(height-lipgloss.Height(input)-3, 1)
	body := tail(strings.Join(lines, "\n"), chatHeight)

	return lipgloss.NewStyle().Padding(1, 2).Render(body + "\n\n" + input)
}

// renderReply shows a reply's prose with its markdown links listed
// underneath.
func renderReply(text string) string {
	prose, links := chat.ExtractLinks(text)
	out := theme.Body.Render(strings.TrimSpace(prose))
	if len(links) == 0 {
		return out
	}
	out += "\n\n" + theme.Subtitle.Render("Related Materials:")
	for _, l := range links {
		out += "\n  " + theme.Body.Render(l.Title) + "\n  " + theme.Hint.Render(l.URL)
	}
	return out
}

// tail keeps the last n lines of s so the newest messages stay visible.
func tail(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[len(lines)-n:], "\n")
}
