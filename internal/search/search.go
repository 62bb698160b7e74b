// Package search filters a goal's learning materials and falls back to a
// model-backed search when the static list has nothing for the query.
package search

import (
	"context"
	"strings"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
)

// All is the filter that matches every material type.
const All = "All"

// MaterialFinder looks up materials outside the static catalog.
type MaterialFinder interface {
	FindMaterials(ctx context.Context, query string, goal catalog.Goal) []catalog.Material
}

// Filters returns All followed by the distinct material types of goal in
// first-seen order.
func Filters(goal catalog.Goal) []string {
	out := []string{All}
	seen := map[string]bool{}
	for _, m := range catalog.Materials(goal) {
		if !seen[m.Type] {
			seen[m.Type] = true
			out = append(out, m.Type)
		}
	}
	return out
}

// Filter keeps materials of typeFilter (any type for All) whose title,
// source or a video title contains query, ignoring case and surrounding
// whitespace. An empty query matches everything.
func Filter(materials []catalog.Material, typeFilter, query string) []catalog.Material {
	q := normalize(query)
	out := []catalog.Material{}
	for _, m := range materials {
		if typeFilter != All && m.Type != typeFilter {
			continue
		}
		if q != "" && !matches(m, q) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// NeedsDynamic reports whether query is non-empty and matches none of
// materials regardless of type. The type filter is deliberately ignored.
func NeedsDynamic(materials []catalog.Material, query string) bool {
	q := normalize(query)
	if q == "" {
		return false
	}
	for _, m := range materials {
		if matches(m, q) {
			return false
		}
	}
	return true
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func matches(m catalog.Material, q string) bool {
	if strings.Contains(strings.ToLower(m.Title), q) || strings.Contains(strings.ToLower(m.Source), q) {
		return true
	}
	for _, v := range m.Videos {
		if strings.Contains(strings.ToLower(v.Title), q) {
			return true
		}
	}
	return false
}

// Result is what the Recommendations view displays.
type Result struct {
	Materials []catalog.Material `json:"materials"`
	// Dynamic is true when Materials came from the finder.
	Dynamic bool `json:"dynamic"`
	// NoResults asks the view to show "No materials found.".
	NoResults bool `json:"no_results"`
}

// Searcher combines the static catalog with a MaterialFinder.
type Searcher struct {
	finder MaterialFinder
}

// New creates a Searcher. finder may be nil, in which case no dynamic
// search happens.
func New(finder MaterialFinder) *Searcher {
	return &Searcher{finder: finder}
}

// Search resolves what to show for goal, typeFilter and query. The finder
// is called at most once, and only when no static material of any type
// matches a non-empty query.
func (s *Searcher) Search(ctx context.Context, goal catalog.Goal, typeFilter, query string) Result {
	static := catalog.Materials(goal)
	var dynamic []catalog.Material
	if s.finder != nil && NeedsDynamic(static, query) {
		dynamic = s.finder.FindMaterials(ctx, query, goal)
	}
	return Resolve(static, dynamic, typeFilter, query)
}

// Resolve picks between the filtered static list and dynamic results.
func Resolve(static, dynamic []catalog.Material, typeFilter, query string) Result {
	res := Result{Materials: Filter(static, typeFilter, query)}
	hasQuery := normalize(query) != ""

	if len(res.Materials) == 0 && hasQuery {
		res.Materials = append([]catalog.Material{}, dynamic...)
		res.Dynamic = len(dynamic) > 0
	}
	res.NoResults = len(res.Materials) == 0 && (hasQuery || typeFilter != All)
	return res
}
