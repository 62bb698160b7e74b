package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

const validMaterialsJSON = `{"materials":[{"title":"Khan Academy Algebra","source":"Khan Academy","url":"https://www.khanacademy.org/math/algebra","type":"Course"}]}`

func materialsTestSchema() *Schema {
	return &Schema{
		Name:        "test-materials",
		Description: "learning materials",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"materials": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"title":  map[string]any{"type": "string"},
							"source": map[string]any{"type": "string"},
							"url":    map[string]any{"type": "string"},
							"type":   map[string]any{"type": "string", "enum": []any{"Video", "Article", "Course"}},
						},
						"required": []any{"title", "source", "url", "type"},
					},
				},
			},
			"required": []any{"materials"},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", validMaterialsJSON, false},
		{"empty list", `{"materials":[]}`, false},
		{"missing field", `{"materials":[{"title":"x","source":"y","url":"z"}]}`, true},
		{"bad enum", `{"materials":[{"title":"x","source":"y","url":"z","type":"Podcast"}]}`, true},
		{"missing root", `{}`, true},
		{"not json", `Here are some materials`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(materialsTestSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var inv *ErrInvalidResponse
				if !errors.As(err, &inv) {
					t.Fatalf("expected ErrInvalidResponse, got %T", err)
				}
			}
		})
	}
}

func TestValidate_NilSchema(t *testing.T) {
	if err := Validate(nil, json.RawMessage("anything")); err != nil {
		t.Fatalf("nil schema should pass, got %v", err)
	}
}
