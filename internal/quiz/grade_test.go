package quiz

import (
	"errors"
	"testing"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
)

func TestGrade(t *testing.T) {
	bank := catalog.Questions(catalog.GoalScience)
	wrong := (bank[1].CorrectIndex + 1) % len(bank[1].Answers)
	answers := []Answer{
		{Question: bank[0].Text, Selected: bank[0].CorrectIndex},
		{Question: bank[1].Text, Selected: wrong},
		{Question: bank[2].Text, Selected: -1},
	}

	res, err := Grade(catalog.GoalScience, catalog.QuizPractice, answers)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Score.Correct != 1 || res.Score.Total != 3 {
		t.Fatalf("score = %+v, want 1/3", res.Score)
	}
	if res.Percentage() != 33 {
		t.Errorf("Percentage() = %d, want 33", res.Percentage())
	}

	attempted := 0
	for _, tr := range res.Topics {
		attempted += tr.Attempted
	}
	if attempted != 3 {
		t.Errorf("topics attempted = %d, want 3", attempted)
	}
}

func TestGrade_Rejects(t *testing.T) {
	q := catalog.Questions(catalog.GoalMath)[0]

	_, err := Grade(catalog.GoalMath, catalog.QuizFinal, []Answer{{Question: "What is love?", Selected: 0}})
	if !errors.Is(err, ErrUnknownQuestion) {
		t.Fatalf("expected ErrUnknownQuestion, got %v", err)
	}

	_, err = Grade(catalog.GoalMath, catalog.QuizFinal, []Answer{{Question: q.Text, Selected: len(q.Answers)}})
	if err == nil {
		t.Fatal("expected out of range error")
	}
}

func TestResultRecord(t *testing.T) {
	res := Result{Goal: catalog.GoalMath, Type: catalog.QuizFinal}
	res.Topics = map[string]TopicResult{
		"Geometry": {Correct: 1, Attempted: 2},
		"Algebra":  {Correct: 2, Attempted: 2},
	}
	res.Score.Correct, res.Score.Total = 3, 4

	data := res.Record("Katabo")
	if data.Learner != "Katabo" || data.Goal != "Improve Math" || data.QuizType != "final" {
		t.Fatalf("record = %+v", data)
	}
	if data.Correct != 3 || data.Total != 4 {
		t.Fatalf("score = %d/%d", data.Correct, data.Total)
	}
	if len(data.Topics) != 2 || data.Topics[0].Topic != "Algebra" || data.Topics[1].Attempted != 2 {
		t.Fatalf("topics = %+v", data.Topics)
	}
}
