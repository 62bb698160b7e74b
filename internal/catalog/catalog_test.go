package catalog

import "testing"

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestQuestionsPerGoal(t *testing.T) {
	for _, g := range AllGoals() {
		qs := Questions(g)
		if len(qs) != 10 {
			t.Errorf("Questions(%q) returned %d questions, want 10", g, len(qs))
		}
	}
}

func TestQuestionsUnknownGoalFallsBackToMath(t *testing.T) {
	got := Questions(Goal("Juggling"))
	want := Questions(GoalMath)
	if len(got) != len(want) || got[0].Text != want[0].Text {
		t.Fatalf("unknown goal did not fall back to the math bank")
	}
}

func TestQuestionsReturnsCopy(t *testing.T) {
	qs := Questions(GoalMath)
	qs[0].Answers[0] = "mutated"
	qs[0].Tags = nil

	again := Questions(GoalMath)
	if again[0].Answers[0] != "18" {
		t.Fatalf("bank was mutated through returned slice: %q", again[0].Answers[0])
	}
	if len(again[0].Tags) != 2 {
		t.Fatalf("tags = %v, want 2 entries", again[0].Tags)
	}
}

func TestFirstMathQuestion(t *testing.T) {
	q := Questions(GoalMath)[0]
	if q.Text != "What is the value of 8 x 3?" {
		t.Fatalf("Text = %q", q.Text)
	}
	if q.Answers[q.CorrectIndex] != "24" {
		t.Errorf("correct answer = %q, want 24", q.Answers[q.CorrectIndex])
	}
	if q.Topic != "Algebra Basics" {
		t.Errorf("Topic = %q", q.Topic)
	}
}

func TestQuestionValidate(t *testing.T) {
	tests := []struct {
		name    string
		q       Question
		wantErr bool
	}{
		{"ok", Question{Text: "q", Answers: []string{"a", "b"}, CorrectIndex: 1}, false},
		{"empty text", Question{Answers: []string{"a", "b"}}, true},
		{"one answer", Question{Text: "q", Answers: []string{"a"}}, true},
		{"index too high", Question{Text: "q", Answers: []string{"a", "b"}, CorrectIndex: 2}, true},
		{"negative index", Question{Text: "q", Answers: []string{"a", "b"}, CorrectIndex: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.q.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMaterials(t *testing.T) {
	want := map[Goal]int{
		GoalMath:    4,
		GoalHistory: 3,
		GoalScience: 3,
		GoalWeb:     4,
	}
	for g, n := range want {
		ms := Materials(g)
		if len(ms) != n {
			t.Errorf("Materials(%q) = %d entries, want %d", g, len(ms), n)
		}
		for _, m := range ms {
			if m.Title == "" || m.URL == "" || m.Type == "" || m.Source == "" {
				t.Errorf("material with empty field: %+v", m)
			}
			if len(m.Videos) != 2 {
				t.Errorf("material %q has %d videos, want 2", m.Title, len(m.Videos))
			}
		}
	}
	if got := Materials(Goal("nope")); len(got) != 0 {
		t.Errorf("unknown goal returned %d materials", len(got))
	}
}

func TestParse(t *testing.T) {
	if g, err := ParseGoal("Learn History"); err != nil || g != GoalHistory {
		t.Errorf("ParseGoal = %q, %v", g, err)
	}
	if _, err := ParseGoal("learn history"); err == nil {
		t.Error("ParseGoal should be case sensitive")
	}
	if s, err := ParseStyle("Audio"); err != nil || s != StyleAudio {
		t.Errorf("ParseStyle = %q, %v", s, err)
	}
	if _, err := ParseStyle("Kinesthetic"); err == nil {
		t.Error("ParseStyle accepted unknown style")
	}
	if qt, err := ParseQuizType("final"); err != nil || qt != QuizFinal {
		t.Errorf("ParseQuizType = %q, %v", qt, err)
	}
	if _, err := ParseQuizType("exam"); err == nil {
		t.Error("ParseQuizType accepted unknown type")
	}
}
