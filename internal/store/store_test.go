package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if i == 0 && seq != 1 {
			t.Errorf("first sequence = %d, want 1", seq)
		}
		if i > 0 && seq != prev+1 {
			t.Errorf("seq[%d] = %d, want %d", i, seq, prev+1)
		}
		prev = seq
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='quiz_result_events'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	calls := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "tutor", InputTokens: 10, OutputTokens: 20, LatencyMs: 100, Success: true, RequestBody: "[user]\nhi"},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "hint", InputTokens: 4, OutputTokens: 6, LatencyMs: 300, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "tutor", LatencyMs: 50, Success: false, ErrorMessage: "boom"},
	}
	for _, c := range calls {
		if err := repo.AppendLLMRequest(ctx, c); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].ErrorMessage != "boom" {
		t.Errorf("newest event = %+v, want the failed tutor call", events[0])
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil || got == nil {
		t.Fatalf("get: %v, %v", got, err)
	}
	if got.Purpose != "tutor" || got.Success {
		t.Errorf("GetLLMEvent = %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil || missing != nil {
		t.Errorf("missing event = %v, %v; want nil, nil", missing, err)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(byPurpose) != 2 || byPurpose[0].Purpose != "tutor" || byPurpose[0].Calls != 2 {
		t.Fatalf("usage by purpose = %+v", byPurpose)
	}
	if byPurpose[0].AvgLatencyMs != 75 {
		t.Errorf("tutor avg latency = %d, want 75", byPurpose[0].AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].InputTokens != 14 || byModel[0].OutputTokens != 26 {
		t.Errorf("usage by model = %+v", byModel)
	}
}

func TestQuizResults(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	first := QuizResultData{
		Learner:  "Ada",
		Goal:     "Improve Math",
		QuizType: "practice",
		Correct:  3,
		Total:    5,
		Topics:   []TopicTally{{Topic: "Geometry", Correct: 1, Attempted: 2}},
	}
	second := QuizResultData{Learner: "Ada", Goal: "Improve Math", QuizType: "final", Correct: 7, Total: 10}

	for _, d := range []QuizResultData{first, second} {
		if err := repo.AppendQuizResult(ctx, d); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	results, err := repo.QueryQuizResults(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Correct != 3 || results[1].Correct != 7 {
		t.Errorf("results not oldest first: %+v", results)
	}
	if len(results[0].Topics) != 1 || results[0].Topics[0].Topic != "Geometry" {
		t.Errorf("topics = %+v", results[0].Topics)
	}
	if results[0].Sequence >= results[1].Sequence {
		t.Error("sequences not increasing")
	}

	recent, err := repo.QueryQuizResults(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	if err != nil {
		t.Fatalf("query from: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("From filter returned %d results", len(recent))
	}
}

func TestAppendQuizResultRejectsInvalidScore(t *testing.T) {
	s := openTestStore(t)
	err := s.EventRepo().AppendQuizResult(context.Background(), QuizResultData{Goal: "Improve Math", QuizType: "practice", Correct: 6, Total: 5})
	if err == nil {
		t.Fatal("expected error for correct > total")
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	_ = repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "tutor", Success: true})
	_ = repo.AppendQuizResult(ctx, QuizResultData{Goal: "Learn History", QuizType: "practice", Correct: 1, Total: 5})

	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	llm, _ := repo.QueryLLMEvents(ctx, QueryOpts{})
	quiz, _ := repo.QueryQuizResults(ctx, QueryOpts{})
	if len(llm) != 0 || len(quiz) != 0 {
		t.Errorf("after reset: %d llm events, %d quiz results", len(llm), len(quiz))
	}

	// New events still get fresh, unique sequences.
	if err := repo.AppendQuizResult(ctx, QuizResultData{Goal: "Learn History", QuizType: "practice", Correct: 2, Total: 5}); err != nil {
		t.Fatalf("append after reset: %v", err)
	}
}
