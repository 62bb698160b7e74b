package insights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptive-learning/studybuddy/internal/store"
)

var now = time.Date(2026, 6, 12, 18, 0, 0, 0, time.UTC)

func result(daysAgo int, correct, total int, topics ...store.TopicTally) store.QuizResultRecord {
	return store.QuizResultRecord{
		Timestamp: now.AddDate(0, 0, -daysAgo),
		QuizResultData: store.QuizResultData{
			Learner: "Katabo",
			Correct: correct,
			Total:   total,
			Topics:  topics,
		},
	}
}

func tally(topic string, correct, attempted int) store.TopicTally {
	return store.TopicTally{Topic: topic, Correct: correct, Attempted: attempted}
}

func TestCompute_Empty(t *testing.T) {
	in := Compute(nil, now)
	assert.True(t, in.Empty())
	assert.Empty(t, in.Topics)
	assert.Empty(t, in.Coverage)
	require.Len(t, in.Streak, StreakDays)
	for _, d := range in.Streak {
		assert.Zero(t, d.Intensity)
	}
	assert.Zero(t, in.CurrentStreak)
}

func TestCompute_ScoresOverTime(t *testing.T) {
	in := Compute([]store.QuizResultRecord{
		result(7, 3, 5),
		result(0, 2, 3),
	}, now)

	require.Len(t, in.Scores, 2)
	assert.Equal(t, ScorePoint{Label: "Jun 5", At: now.AddDate(0, 0, -7), Percent: 60}, in.Scores[0])
	assert.Equal(t, 67, in.Scores[1].Percent)
}

func TestCompute_TopicProficiencyWeakestFirst(t *testing.T) {
	in := Compute([]store.QuizResultRecord{
		result(1, 3, 5, tally("Algebra", 2, 2), tally("Geometry", 1, 3)),
		result(0, 2, 4, tally("Algebra", 1, 2), tally("Rates", 1, 2)),
	}, now)

	require.Len(t, in.Topics, 3)
	assert.Equal(t, "Geometry", in.Topics[0].Topic)
	assert.Equal(t, 33, in.Topics[0].Percent)
	assert.Equal(t, Weak, in.Topics[0].Band)
	assert.Equal(t, "Rates", in.Topics[1].Topic)
	assert.Equal(t, Fair, in.Topics[1].Band)
	assert.Equal(t, TopicProficiency{Topic: "Algebra", Correct: 3, Attempted: 4, Percent: 75, Band: Strong}, in.Topics[2])
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		percent int
		want    Band
	}{
		{100, Strong}, {75, Strong}, {74, Fair}, {50, Fair}, {49, Weak}, {0, Weak},
	}
	for _, tt := range tests {
		if got := BandFor(tt.percent); got != tt.want {
			t.Errorf("BandFor(%d) = %v, want %v", tt.percent, got, tt.want)
		}
	}
}

func TestCompute_CoverageGroupsOther(t *testing.T) {
	in := Compute([]store.QuizResultRecord{
		result(0, 0, 10,
			tally("Algebra", 0, 4),
			tally("Geometry", 0, 3),
			tally("Probability", 0, 1),
			tally("Fractions", 0, 1),
			tally("Rates", 0, 1),
		),
	}, now)

	assert.Equal(t, []CoverageSlice{
		{Topic: "Algebra", Attempted: 4, Share: 40},
		{Topic: "Geometry", Attempted: 3, Share: 30},
		{Topic: "Fractions", Attempted: 1, Share: 10},
		{Topic: "Other", Attempted: 2, Share: 20},
	}, in.Coverage)
}

func TestCompute_Streak(t *testing.T) {
	in := Compute([]store.QuizResultRecord{
		result(40, 1, 1), // outside the calendar
		result(2, 1, 1),
		result(1, 1, 1),
		result(1, 1, 1),
		result(0, 1, 1),
		result(0, 1, 1),
		result(0, 1, 1),
		result(0, 1, 1),
	}, now)

	require.Len(t, in.Streak, StreakDays)
	last := in.Streak[StreakDays-1]
	assert.Equal(t, 4, last.Quizzes)
	assert.Equal(t, 3, last.Intensity)
	assert.Equal(t, 2, in.Streak[StreakDays-2].Intensity)
	assert.Equal(t, 1, in.Streak[StreakDays-3].Intensity)
	assert.Equal(t, 0, in.Streak[0].Intensity)
	assert.Equal(t, 3, in.CurrentStreak)
}

func TestCurrentStreak_CountsFromYesterday(t *testing.T) {
	in := Compute([]store.QuizResultRecord{result(2, 1, 1), result(1, 1, 1)}, now)
	assert.Equal(t, 2, in.CurrentStreak)
}

type quizRepo struct {
	store.EventRepo
	results []store.QuizResultRecord
	err     error
}

func (r quizRepo) QueryQuizResults(context.Context, store.QueryOpts) ([]store.QuizResultRecord, error) {
	return r.results, r.err
}

func TestLoad_FiltersLearner(t *testing.T) {
	other := result(0, 0, 5)
	other.Learner = "Someone"
	repo := quizRepo{results: []store.QuizResultRecord{result(0, 5, 5), other}}

	in, err := Load(context.Background(), repo, "Katabo", now)
	require.NoError(t, err)
	require.Len(t, in.Scores, 1)
	assert.Equal(t, 100, in.Scores[0].Percent)
}

func TestLoad_Error(t *testing.T) {
	_, err := Load(context.Background(), quizRepo{err: errors.New("locked")}, "", now)
	assert.Error(t, err)
}
