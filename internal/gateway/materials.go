package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
	"github.com/adaptive-learning/studybuddy/internal/llm"
)

// MaterialsSchema is the structured reply requested by FindMaterials.
var MaterialsSchema = &llm.Schema{
	Name:        "learning-materials",
	Description: "A list of learning materials.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"materials": map[string]any{
				"type":        "array",
				"description": "A list of learning materials.",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "The full title of the learning material.",
						},
						"source": map[string]any{
							"type":        "string",
							"description": `The name of the source website or platform, e.g., "Khan Academy", "YouTube", "freeCodeCamp".`,
						},
						"url": map[string]any{
							"type":        "string",
							"description": "The direct, full URL to the learning material.",
						},
						"type": map[string]any{
							"type":        "string",
							"description": `The type of material. Examples: "Article", "Video", "Interactive", "Course", "Tutorial", "Docs".`,
						},
					},
					"required":             []any{"title", "source", "url", "type"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"materials"},
		"additionalProperties": false,
	},
}

// MaterialsPrompt is the search request sent for query within goal.
func MaterialsPrompt(query string, goal catalog.Goal) string {
	return fmt.Sprintf("Find a list of 3-5 high-quality, English learning materials for the topic \"%s\" within the broader subject of \"%s\". The materials should be diverse (articles, videos, interactive tutorials, etc.).", query, goal)
}

type materialsReply struct {
	Materials []struct {
		Title  string `json:"title"`
		Source string `json:"source"`
		URL    string `json:"url"`
		Type   string `json:"type"`
	} `json:"materials"`
}

// FindMaterials asks the model for learning materials. Any failure yields
// an empty, non-nil list. Entries missing a mandatory field are dropped.
func (g *Gateway) FindMaterials(ctx context.Context, query string, goal catalog.Goal) []catalog.Material {
	out := []catalog.Material{}
	if !g.Available() {
		return out
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeMaterialSearch)
	resp, err := g.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: MaterialsPrompt(query, goal)}},
		Schema:   MaterialsSchema,
	})
	if err != nil {
		g.log.Warnw("material search failed", "query", query, "goal", goal, "error", err)
		return out
	}

	raw := strings.TrimSpace(string(resp.Content))
	if raw == "" {
		return out
	}
	var reply materialsReply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		g.log.Warnw("material search returned malformed JSON", "error", err)
		return out
	}

	for _, m := range reply.Materials {
		if strings.TrimSpace(m.Title) == "" || strings.TrimSpace(m.Source) == "" ||
			strings.TrimSpace(m.URL) == "" || strings.TrimSpace(m.Type) == "" {
			continue
		}
		out = append(out, catalog.Material{
			Title:  m.Title,
			Source: m.Source,
			URL:    m.URL,
			Type:   m.Type,
		})
	}
	return out
}
