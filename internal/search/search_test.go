package search

import (
	"context"
	"reflect"
	"testing"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
)

type countingFinder struct {
	calls   int
	queries []string
	result  []catalog.Material
}

func (f *countingFinder) FindMaterials(_ context.Context, query string, _ catalog.Goal) []catalog.Material {
	f.calls++
	f.queries = append(f.queries, query)
	return f.result
}

func TestFilters(t *testing.T) {
	tests := []struct {
		goal catalog.Goal
		want []string
	}{
		{catalog.GoalMath, []string{"All", "Interactive", "Article"}},
		{catalog.GoalHistory, []string{"All", "Course", "Article"}},
		{catalog.GoalWeb, []string{"All", "Tutorial", "Course", "Docs"}},
	}
	for _, tt := range tests {
		if got := Filters(tt.goal); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Filters(%s) = %v, want %v", tt.goal, got, tt.want)
		}
	}
}

func titles(ms []catalog.Material) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Title
	}
	return out
}

func TestFilter(t *testing.T) {
	math := catalog.Materials(catalog.GoalMath)

	tests := []struct {
		name   string
		filter string
		query  string
		want   []string
	}{
		{"all, empty query", All, "", []string{
			"Factoring Quadratic Equations", "Probability Theory Basics",
			"The Pythagorean Theorem", "Solving Trigonometric Equations",
		}},
		{"type only", "Interactive", "", []string{"Factoring Quadratic Equations", "Solving Trigonometric Equations"}},
		{"title, mixed case, padded", All, "  PYTHAGOREAN ", []string{"The Pythagorean Theorem"}},
		{"source", All, "brilliant", []string{"Solving Trigonometric Equations"}},
		{"video title", All, "tree diagrams", []string{"Probability Theory Basics"}},
		{"type and query", "Article", "khan", []string{"The Pythagorean Theorem"}},
		{"no match", All, "calculus", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(Filter(math, tt.filter, tt.query))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSearch_StaticMatchSkipsFinder(t *testing.T) {
	f := &countingFinder{}
	res := New(f).Search(context.Background(), catalog.GoalMath, All, "probability")

	if f.calls != 0 {
		t.Fatalf("finder called %d times, want 0", f.calls)
	}
	if len(res.Materials) != 1 || res.Dynamic || res.NoResults {
		t.Fatalf("Result = %+v", res)
	}
}

func TestSearch_NoStaticMatchCallsFinderOnce(t *testing.T) {
	f := &countingFinder{result: []catalog.Material{
		{Title: "Calculus 1", Source: "MIT OCW", URL: "https://ocw.mit.edu", Type: "Course"},
	}}
	res := New(f).Search(context.Background(), catalog.GoalMath, All, "calculus")

	if f.calls != 1 || f.queries[0] != "calculus" {
		t.Fatalf("finder calls = %d, queries = %v", f.calls, f.queries)
	}
	if !res.Dynamic || len(res.Materials) != 1 || res.Materials[0].Title != "Calculus 1" {
		t.Fatalf("Result = %+v", res)
	}
}

func TestSearch_EmptyDynamicIsNoResults(t *testing.T) {
	f := &countingFinder{result: []catalog.Material{}}
	res := New(f).Search(context.Background(), catalog.GoalMath, All, "calculus")

	if f.calls != 1 {
		t.Fatalf("finder calls = %d", f.calls)
	}
	if !res.NoResults || res.Dynamic || len(res.Materials) != 0 {
		t.Fatalf("Result = %+v", res)
	}
}

func TestSearch_FilterOnlyNeverFetches(t *testing.T) {
	f := &countingFinder{}
	res := New(f).Search(context.Background(), catalog.GoalMath, "Video", "")

	if f.calls != 0 {
		t.Fatalf("finder calls = %d", f.calls)
	}
	if !res.NoResults {
		t.Fatalf("Result = %+v", res)
	}
}

func TestSearch_FilterHidesStaticMatch(t *testing.T) {
	// "khan" matches an Interactive material, so no fetch happens even
	// though the Course filter leaves nothing to show.
	f := &countingFinder{}
	res := New(f).Search(context.Background(), catalog.GoalMath, "Course", "khan")

	if f.calls != 0 {
		t.Fatalf("finder calls = %d", f.calls)
	}
	if !res.NoResults {
		t.Fatalf("Result = %+v", res)
	}
}

func TestSearch_NilFinder(t *testing.T) {
	res := New(nil).Search(context.Background(), catalog.GoalScience, All, "volcanoes")
	if !res.NoResults {
		t.Fatalf("Result = %+v", res)
	}
}

func TestNeedsDynamic(t *testing.T) {
	math := catalog.Materials(catalog.GoalMath)
	if NeedsDynamic(math, "   ") {
		t.Error("blank query should not fetch")
	}
	if NeedsDynamic(math, "quadratic") {
		t.Error("matching query should not fetch")
	}
	if !NeedsDynamic(math, "topology") {
		t.Error("unmatched query should fetch")
	}
}
