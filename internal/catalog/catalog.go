package catalog

import "fmt"

// Goal is the subject area a learner is studying.
type Goal string

const (
	GoalMath    Goal = "Improve Math"
	GoalHistory Goal = "Learn History"
	GoalScience Goal = "Master Science"
	GoalWeb     Goal = "Code a Website"
)

// AllGoals returns all goals in display order.
func AllGoals() []Goal {
	return []Goal{GoalMath, GoalHistory, GoalScience, GoalWeb}
}

// ParseGoal matches a goal label exactly.
func ParseGoal(s string) (Goal, error) {
	for _, g := range AllGoals() {
		if string(g) == s {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown learning goal: %q", s)
}

// LearningStyle is the learner's preferred presentation mode.
type LearningStyle string

const (
	StyleVisual LearningStyle = "Visual"
	StyleAudio  LearningStyle = "Audio"
	StyleMixed  LearningStyle = "Mixed"
)

// AllStyles returns all learning styles in display order.
func AllStyles() []LearningStyle {
	return []LearningStyle{StyleVisual, StyleAudio, StyleMixed}
}

// ParseStyle matches a learning style label exactly.
func ParseStyle(s string) (LearningStyle, error) {
	for _, st := range AllStyles() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown learning style: %q", s)
}

// QuizType selects between the short sampled quiz and the full one.
type QuizType string

const (
	QuizPractice QuizType = "practice"
	QuizFinal    QuizType = "final"
)

// ParseQuizType parses "practice" or "final".
func ParseQuizType(s string) (QuizType, error) {
	switch QuizType(s) {
	case QuizPractice, QuizFinal:
		return QuizType(s), nil
	}
	return "", fmt.Errorf("unknown quiz type: %q", s)
}

// Profile is the authenticated learner.
type Profile struct {
	Name          string
	Goal          Goal
	LearningStyle LearningStyle
}

// Question is one multiple-choice record from the static bank.
type Question struct {
	Text         string
	Answers      []string
	CorrectIndex int
	Topic        string
	Tags         []string
}

// Validate checks that the question has at least two answers and a
// correct index that points into them.
func (q Question) Validate() error {
	if q.Text == "" {
		return fmt.Errorf("question text is empty")
	}
	if len(q.Answers) < 2 {
		return fmt.Errorf("question %q has %d answers, need at least 2", q.Text, len(q.Answers))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Answers) {
		return fmt.Errorf("question %q: correct index %d out of range [0,%d)", q.Text, q.CorrectIndex, len(q.Answers))
	}
	return nil
}

func (q Question) clone() Question {
	q.Answers = append([]string(nil), q.Answers...)
	q.Tags = append([]string(nil), q.Tags...)
	return q
}

// Video is a related video attached to a learning material.
type Video struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Material is a learning resource shown on the Recommendations view.
type Material struct {
	Title  string  `json:"title"`
	Source string  `json:"source"`
	URL    string  `json:"url"`
	Type   string  `json:"type"`
	Videos []Video `json:"videos,omitempty"`
}

// Questions returns a copy of the question bank for goal. Unknown goals
// fall back to the math bank.
func Questions(goal Goal) []Question {
	bank, ok := questionBank[goal]
	if !ok {
		bank = questionBank[GoalMath]
	}
	out := make([]Question, len(bank))
	for i, q := range bank {
		out[i] = q.clone()
	}
	return out
}

// Materials returns a copy of the static material list for goal.
// Unknown goals yield an empty list.
func Materials(goal Goal) []Material {
	list := materialBank[goal]
	out := make([]Material, len(list))
	for i, m := range list {
		m.Videos = append([]Video(nil), m.Videos...)
		out[i] = m
	}
	return out
}

// Validate checks every question in the bank.
func Validate() error {
	for _, g := range AllGoals() {
		bank, ok := questionBank[g]
		if !ok || len(bank) == 0 {
			return fmt.Errorf("goal %q has no questions", g)
		}
		for _, q := range bank {
			if err := q.Validate(); err != nil {
				return fmt.Errorf("goal %q: %w", g, err)
			}
		}
	}
	return nil
}
