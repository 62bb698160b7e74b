// Package insights derives the progress charts from stored quiz results.
package insights

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/adaptive-learning/studybuddy/internal/state"
	"github.com/adaptive-learning/studybuddy/internal/store"
)

// StreakDays is the length of the study calendar.
const StreakDays = 35

// CoverageSlices is the number of named topics in the coverage chart;
// the remainder is grouped under "Other".
const CoverageSlices = 3

// Band classifies topic proficiency for coloring.
type Band int

const (
	Weak Band = iota
	Fair
	Strong
)

// BandFor returns Strong at 75% and above, Fair at 50% and above.
func BandFor(percent int) Band {
	switch {
	case percent >= 75:
		return Strong
	case percent >= 50:
		return Fair
	default:
		return Weak
	}
}

type ScorePoint struct {
	Label   string
	At      time.Time
	Percent int
}

type TopicProficiency struct {
	Topic     string
	Correct   int
	Attempted int
	Percent   int
	Band      Band
}

type Day struct {
	Date      time.Time
	Quizzes   int
	Intensity int // 0 none, 1 low, 2 mid, 3 high
}

type CoverageSlice struct {
	Topic     string
	Attempted int
	Share     int
}

// Insights is everything the Insights view draws.
type Insights struct {
	Scores   []ScorePoint
	Topics   []TopicProficiency
	Streak   []Day
	Coverage []CoverageSlice

	// CurrentStreak counts consecutive study days ending today, or
	// yesterday when nothing has been done yet today.
	CurrentStreak int
}

// Empty reports whether no quiz has been recorded.
func (in Insights) Empty() bool { return len(in.Scores) == 0 }

// Compute builds the charts from results ordered oldest first.
func Compute(results []store.QuizResultRecord, now time.Time) Insights {
	in := Insights{Streak: streak(results, now)}
	if len(results) == 0 {
		return in
	}

	tallies := map[string]*TopicProficiency{}
	for _, r := range results {
		in.Scores = append(in.Scores, ScorePoint{
			Label:   r.Timestamp.Format("Jan 2"),
			At:      r.Timestamp,
			Percent: state.Percent(r.Correct, r.Total),
		})
		for _, t := range r.Topics {
			tp, ok := tallies[t.Topic]
			if !ok {
				tp = &TopicProficiency{Topic: t.Topic}
				tallies[t.Topic] = tp
			}
			tp.Correct += t.Correct
			tp.Attempted += t.Attempted
		}
	}

	total := 0
	for _, tp := range tallies {
		tp.Percent = state.Percent(tp.Correct, tp.Attempted)
		tp.Band = BandFor(tp.Percent)
		in.Topics = append(in.Topics, *tp)
		total += tp.Attempted
	}
	// Weakest first.
	sort.Slice(in.Topics, func(i, j int) bool {
		a, b := in.Topics[i], in.Topics[j]
		if a.Percent != b.Percent {
			return a.Percent < b.Percent
		}
		return a.Topic < b.Topic
	})

	in.Coverage = coverage(in.Topics, total)
	in.CurrentStreak = currentStreak(in.Streak)
	return in
}

func coverage(topics []TopicProficiency, total int) []CoverageSlice {
	if total == 0 {
		return nil
	}
	byCount := append([]TopicProficiency(nil), topics...)
	sort.Slice(byCount, func(i, j int) bool {
		if byCount[i].Attempted != byCount[j].Attempted {
			return byCount[i].Attempted > byCount[j].Attempted
		}
		return byCount[i].Topic < byCount[j].Topic
	})

	var out []CoverageSlice
	other := 0
	for i, tp := range byCount {
		if i < CoverageSlices {
			out = append(out, CoverageSlice{Topic: tp.Topic, Attempted: tp.Attempted, Share: state.Percent(tp.Attempted, total)})
			continue
		}
		other += tp.Attempted
	}
	if other > 0 {
		out = append(out, CoverageSlice{Topic: "Other", Attempted: other, Share: state.Percent(other, total)})
	}
	return out
}

func streak(results []store.QuizResultRecord, now time.Time) []Day {
	today := midnight(now)
	counts := make(map[time.Time]int)
	for _, r := range results {
		counts[midnight(r.Timestamp.In(now.Location()))]++
	}

	days := make([]Day, StreakDays)
	for i := range days {
		d := today.AddDate(0, 0, i-(StreakDays-1))
		n := counts[d]
		days[i] = Day{Date: d, Quizzes: n, Intensity: min(n, 3)}
	}
	return days
}

func currentStreak(days []Day) int {
	i := len(days) - 1
	if i >= 0 && days[i].Quizzes == 0 {
		i--
	}
	n := 0
	for ; i >= 0 && days[i].Quizzes > 0; i-- {
		n++
	}
	return n
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Load reads learner's quiz results from repo and computes the charts.
// An empty learner includes every result.
func Load(ctx context.Context, repo store.EventRepo, learner string, now time.Time) (Insights, error) {
	results, err := repo.QueryQuizResults(ctx, store.QueryOpts{})
	if err != nil {
		return Insights{}, fmt.Errorf("loading quiz results: %w", err)
	}
	if learner != "" {
		mine := results[:0]
		for _, r := range results {
			if r.Learner == learner {
				mine = append(mine, r)
			}
		}
		results = mine
	}
	return Compute(results, now), nil
}
