package quiz

import (
	"errors"
	"fmt"
	"sort"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
	"github.com/adaptive-learning/studybuddy/internal/state"
	"github.com/adaptive-learning/studybuddy/internal/store"
)

// ErrUnknownQuestion is returned by Grade for a question not in the
// goal's bank.
var ErrUnknownQuestion = errors.New("unknown question")

// Answer is a client-graded response. Selected is -1 for a skipped
// question.
type Answer struct {
	Question string `json:"question"`
	Selected int    `json:"selected"`
}

// Grade scores answers against goal's question bank. Skipped questions
// count as attempted, as they do in a Session.
func Grade(goal catalog.Goal, qt catalog.QuizType, answers []Answer) (Result, error) {
	bank := make(map[string]catalog.Question)
	for _, q := range catalog.Questions(goal) {
		bank[q.Text] = q
	}

	res := Result{Goal: goal, Type: qt, Topics: make(map[string]TopicResult)}
	for _, a := range answers {
		q, ok := bank[a.Question]
		if !ok {
			return Result{}, fmt.Errorf("%w: %q", ErrUnknownQuestion, a.Question)
		}
		if a.Selected < -1 || a.Selected >= len(q.Answers) {
			return Result{}, fmt.Errorf("answer %d out of range for %q", a.Selected, q.Text)
		}
		correct := a.Selected == q.CorrectIndex
		tr := res.Topics[q.Topic]
		tr.Attempted++
		if correct {
			tr.Correct++
			res.Score.Correct++
		}
		res.Topics[q.Topic] = tr
	}
	res.Score.Total = len(answers)
	return res, nil
}

// Percentage is the result score rounded half up.
func (r Result) Percentage() int {
	return state.Percent(r.Score.Correct, r.Score.Total)
}

// Record converts r into a stored quiz result, topics sorted by name.
func (r Result) Record(learner string) store.QuizResultData {
	data := store.QuizResultData{
		Learner:  learner,
		Goal:     string(r.Goal),
		QuizType: string(r.Type),
		Correct:  r.Score.Correct,
		Total:    r.Score.Total,
	}
	for topic, tr := range r.Topics {
		data.Topics = append(data.Topics, store.TopicTally{Topic: topic, Correct: tr.Correct, Attempted: tr.Attempted})
	}
	sort.Slice(data.Topics, func(i, j int) bool { return data.Topics[i].Topic < data.Topics[j].Topic })
	return data
}
