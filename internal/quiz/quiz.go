// Package quiz implements the quiz session state machine: question
// sampling, answer submission, hints, skipping and final scoring.
package quiz

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
	"github.com/adaptive-learning/studybuddy/internal/state"
)

// PracticeSize is the number of questions sampled for a practice quiz.
const PracticeSize = 5

// HintFailureText replaces the hint when the hint source fails.
const HintFailureText = "Sorry, couldn't fetch a hint right now."

// Phase is the session's position in its lifecycle.
type Phase int

const (
	PhaseNotStarted Phase = iota // Waiting for Start
	PhaseUnanswered              // Current question open for selection
	PhaseSubmitted               // Current question answered
	PhaseFinished                // Score published
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseUnanswered:
		return "unanswered"
	case PhaseSubmitted:
		return "submitted"
	case PhaseFinished:
		return "finished"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Publisher receives the final score when a session finishes.
type Publisher interface {
	SetLastQuizScore(*state.Score)
}

// HintSource answers a hint prompt.
type HintSource interface {
	Hint(ctx context.Context, prompt string) (string, error)
}

// TopicResult counts answers for one topic.
type TopicResult struct {
	Correct   int
	Attempted int
}

// Result summarises a finished session.
type Result struct {
	Goal   catalog.Goal
	Type   catalog.QuizType
	Score  state.Score
	Topics map[string]TopicResult
}

// Build samples the question sequence for goal. The whole bank is
// permuted with a Fisher-Yates shuffle; practice quizzes keep the first
// PracticeSize questions, final quizzes keep everything.
func Build(goal catalog.Goal, qt catalog.QuizType, rng *rand.Rand) []catalog.Question {
	qs := catalog.Questions(goal)
	for i := len(qs) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		qs[i], qs[j] = qs[j], qs[i]
	}
	if qt == catalog.QuizPractice && len(qs) > PracticeSize {
		qs = qs[:PracticeSize]
	}
	return qs
}

// Session is one run through a quiz. It is not safe for concurrent use;
// the owning screen drives it from its update loop.
type Session struct {
	goal      catalog.Goal
	quizType  catalog.QuizType
	questions []catalog.Question
	publisher Publisher

	started     bool
	finished    bool
	index       int
	score       int
	selected    int // -1 when nothing is selected
	submitted   bool
	lastCorrect bool

	hint        string
	hintLoading bool

	topics map[string]TopicResult
}

// New builds a fresh, not yet started session.
func New(goal catalog.Goal, qt catalog.QuizType, rng *rand.Rand, pub Publisher) *Session {
	return &Session{
		goal:      goal,
		quizType:  qt,
		questions: Build(goal, qt, rng),
		publisher: pub,
		selected:  -1,
		topics:    make(map[string]TopicResult),
	}
}

// Goal returns the goal the session was built for.
func (s *Session) Goal() catalog.Goal { return s.goal }

// Type returns the quiz type.
func (s *Session) Type() catalog.QuizType { return s.quizType }

// Questions returns the sampled sequence.
func (s *Session) Questions() []catalog.Question { return s.questions }

// Len is the number of questions in the session.
func (s *Session) Len() int { return len(s.questions) }

// Index is the zero-based position of the current question.
func (s *Session) Index() int { return s.index }

// Score is the running count of correct answers.
func (s *Session) Score() int { return s.score }

// Selected returns the selected answer index, or -1.
func (s *Session) Selected() int { return s.selected }

// LastCorrect reports whether the last submission was correct.
func (s *Session) LastCorrect() bool { return s.lastCorrect }

// Hint returns the hint for the current question, if any.
func (s *Session) Hint() string { return s.hint }

// HintLoading reports whether a hint request is outstanding.
func (s *Session) HintLoading() bool { return s.hintLoading }

// Current returns the current question. ok is false once finished or when
// the session is empty.
func (s *Session) Current() (q catalog.Question, ok bool) {
	if s.finished || s.index >= len(s.questions) {
		return catalog.Question{}, false
	}
	return s.questions[s.index], true
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	switch {
	case s.finished:
		return PhaseFinished
	case !s.started:
		return PhaseNotStarted
	case s.submitted:
		return PhaseSubmitted
	default:
		return PhaseUnanswered
	}
}

// Start opens the first question for answering.
func (s *Session) Start() {
	if s.started || s.finished {
		return
	}
	s.started = true
	if len(s.questions) == 0 {
		s.finish()
	}
}

// Select marks answer i. It is ignored before Start, after Submit, or for
// an out-of-range index.
func (s *Session) Select(i int) bool {
	if s.Phase() != PhaseUnanswered {
		return false
	}
	q := s.questions[s.index]
	if i < 0 || i >= len(q.Answers) {
		return false
	}
	s.selected = i
	return true
}

// Submit grades the selected answer. It is a no-op without a selection.
func (s *Session) Submit() bool {
	if s.Phase() != PhaseUnanswered || s.selected < 0 {
		return false
	}
	q := s.questions[s.index]
	s.lastCorrect = s.selected == q.CorrectIndex
	if s.lastCorrect {
		s.score++
	}
	s.submitted = true
	s.record(q.Topic, s.lastCorrect)
	return true
}

// Advance moves past a submitted question.
func (s *Session) Advance() bool {
	if s.Phase() != PhaseSubmitted {
		return false
	}
	s.next()
	return true
}

// Skip moves past the current question without grading it.
func (s *Session) Skip() bool {
	if s.Phase() != PhaseUnanswered {
		return false
	}
	s.record(s.questions[s.index].Topic, false)
	s.next()
	return true
}

func (s *Session) record(topic string, correct bool) {
	tr := s.topics[topic]
	tr.Attempted++
	if correct {
		tr.Correct++
	}
	s.topics[topic] = tr
}

func (s *Session) next() {
	s.selected = -1
	s.submitted = false
	s.lastCorrect = false
	s.hint = ""
	s.hintLoading = false
	if s.index+1 < len(s.questions) {
		s.index++
		return
	}
	s.finish()
}

func (s *Session) finish() {
	s.finished = true
	if s.publisher != nil {
		sc := s.FinalScore()
		s.publisher.SetLastQuizScore(&sc)
	}
}

// FinalScore is {score, len}.
func (s *Session) FinalScore() state.Score {
	return state.Score{Correct: s.score, Total: len(s.questions)}
}

// Percentage is the score as a whole percentage, rounded half up.
func (s *Session) Percentage() int {
	return state.Percent(s.score, len(s.questions))
}

// Result summarises the session for storage. Topics is a copy.
func (s *Session) Result() Result {
	topics := make(map[string]TopicResult, len(s.topics))
	for k, v := range s.topics {
		topics[k] = v
	}
	return Result{Goal: s.goal, Type: s.quizType, Score: s.FinalScore(), Topics: topics}
}

// HintPrompt is the prompt sent to the hint source for the current
// question. It never includes the answer.
func (s *Session) HintPrompt() string {
	q, ok := s.Current()
	if !ok {
		return ""
	}
	return fmt.Sprintf("Give a short, one-sentence hint for the question: \"%s\". Don't give the answer.", q.Text)
}

// BeginHint marks a hint request as in flight and returns the prompt and
// the question index it belongs to. ok is false when a hint is already
// present or loading, or when no question is open.
func (s *Session) BeginHint() (prompt string, index int, ok bool) {
	if s.hint != "" || s.hintLoading {
		return "", 0, false
	}
	if p := s.Phase(); p != PhaseUnanswered && p != PhaseSubmitted {
		return "", 0, false
	}
	s.hintLoading = true
	return s.HintPrompt(), s.index, true
}

// ApplyHint stores the outcome of a hint request started by BeginHint. A
// result for a question that is no longer current is discarded.
func (s *Session) ApplyHint(index int, text string, err error) {
	if s.finished || index != s.index || !s.hintLoading {
		return
	}
	s.hintLoading = false
	if err != nil || text == "" {
		s.hint = HintFailureText
		return
	}
	s.hint = text
}

// RequestHint fetches a hint synchronously.
func (s *Session) RequestHint(ctx context.Context, src HintSource) {
	prompt, idx, ok := s.BeginHint()
	if !ok {
		return
	}
	text, err := src.Hint(ctx, prompt)
	s.ApplyHint(idx, text, err)
}
