package store

import (
	"context"
	"fmt"

	"github.com/adaptive-learning/studybuddy/ent"
	"github.com/adaptive-learning/studybuddy/ent/quizresultevent"
	entschema "github.com/adaptive-learning/studybuddy/ent/schema"
)

func (r *eventRepo) AppendQuizResult(ctx context.Context, data QuizResultData) error {
	if data.Total < data.Correct || data.Correct < 0 {
		return fmt.Errorf("invalid quiz result %d/%d", data.Correct, data.Total)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	topics := make([]entschema.TopicCount, len(data.Topics))
	for i, t := range data.Topics {
		topics[i] = entschema.TopicCount{Topic: t.Topic, Correct: t.Correct, Attempted: t.Attempted}
	}

	builder := r.client.QuizResultEvent.Create().
		SetSequence(seqNum).
		SetLearner(data.Learner).
		SetGoal(data.Goal).
		SetQuizType(data.QuizType).
		SetCorrect(data.Correct).
		SetTotal(data.Total)
	if len(topics) > 0 {
		builder = builder.SetTopics(topics)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save quiz result event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryQuizResults(ctx context.Context, opts QueryOpts) ([]QuizResultRecord, error) {
	query := r.client.QuizResultEvent.Query().
		Order(ent.Asc(quizresultevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(quizresultevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(quizresultevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(quizresultevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(quizresultevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz results: %w", err)
	}

	records := make([]QuizResultRecord, len(events))
	for i, e := range events {
		topics := make([]TopicTally, len(e.Topics))
		for j, t := range e.Topics {
			topics[j] = TopicTally{Topic: t.Topic, Correct: t.Correct, Attempted: t.Attempted}
		}
		records[i] = QuizResultRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			QuizResultData: QuizResultData{
				Learner:  e.Learner,
				Goal:     e.Goal,
				QuizType: e.QuizType,
				Correct:  e.Correct,
				Total:    e.Total,
				Topics:   topics,
			},
		}
	}
	return records, nil
}

// Reset deletes all events in one transaction. The sequence counter keeps
// counting so sequences stay unique across resets.
func (r *eventRepo) Reset(ctx context.Context) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	if _, err := tx.LLMRequestEvent.Delete().Exec(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete LLM events: %w", err)
	}
	if _, err := tx.QuizResultEvent.Delete().Exec(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete quiz results: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}
	return nil
}
