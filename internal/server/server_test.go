package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
	"github.com/adaptive-learning/studybuddy/internal/config"
	"github.com/adaptive-learning/studybuddy/internal/gateway"
	"github.com/adaptive-learning/studybuddy/internal/store"
)

type fakeAI struct {
	reply       string
	materials   []catalog.Material
	prompts     []string
	histories   [][]gateway.Turn
	searchCalls int
}

func (f *fakeAI) TutorResponse(_ context.Context, prompt string, history []gateway.Turn) string {
	f.prompts = append(f.prompts, prompt)
	f.histories = append(f.histories, history)
	return f.reply
}

func (f *fakeAI) FindMaterials(context.Context, string, catalog.Goal) []catalog.Material {
	f.searchCalls++
	return f.materials
}

type quizRepo struct {
	store.EventRepo
	results []store.QuizResultData
	err     error
}

func (r *quizRepo) AppendQuizResult(_ context.Context, data store.QuizResultData) error {
	if r.err != nil {
		return r.err
	}
	r.results = append(r.results, data)
	return nil
}

func testConfig() config.ServerConfig {
	cfg := config.Default().Server
	cfg.Mode = gin.TestMode
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000}
	return cfg
}

func newTestServer(t *testing.T, deps Deps) *Server {
	t.Helper()
	if deps.NewRand == nil {
		deps.NewRand = func() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }
	}
	return New(testConfig(), deps)
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, s *Server, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, Deps{})
	rec, env := do(t, s, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","ai":false}`, string(env.Data))
}

func TestGoals(t *testing.T) {
	s := newTestServer(t, Deps{})
	rec, env := do(t, s, http.MethodGet, "/api/goals", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Goals []struct {
			Goal    string   `json:"goal"`
			Filters []string `json:"filters"`
		} `json:"goals"`
		Styles    []string `json:"styles"`
		QuizTypes []string `json:"quiz_types"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Goals, 4)
	assert.Equal(t, "Improve Math", data.Goals[0].Goal)
	assert.Equal(t, []string{"All", "Interactive", "Article"}, data.Goals[0].Filters)
	assert.Equal(t, []string{"Visual", "Audio", "Mixed"}, data.Styles)
	assert.Equal(t, []string{"practice", "final"}, data.QuizTypes)
}

func TestBuildQuiz(t *testing.T) {
	s := newTestServer(t, Deps{})

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantLen  int
	}{
		{"practice by default", "/api/quiz/" + url.PathEscape("Improve Math"), http.StatusOK, 5},
		{"final keeps all", "/api/quiz/" + url.PathEscape("Learn History") + "?type=final", http.StatusOK, 10},
		{"seeded", "/api/quiz/" + url.PathEscape("Master Science") + "?seed=42", http.StatusOK, 5},
		{"unknown goal", "/api/quiz/Cooking", http.StatusNotFound, 0},
		{"bad type", "/api/quiz/" + url.PathEscape("Improve Math") + "?type=midterm", http.StatusBadRequest, 0},
		{"bad seed", "/api/quiz/" + url.PathEscape("Improve Math") + "?seed=-1", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, s, http.MethodGet, tt.path, nil)
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantCode != http.StatusOK {
				return
			}
			var data struct {
				Questions []questionDTO `json:"questions"`
			}
			require.NoError(t, json.Unmarshal(env.Data, &data))
			assert.Len(t, data.Questions, tt.wantLen)
		})
	}
}

func TestBuildQuiz_SeedIsReproducible(t *testing.T) {
	s := newTestServer(t, Deps{})
	path := "/api/quiz/" + url.PathEscape("Code a Website") + "?seed=7"
	_, first := do(t, s, http.MethodGet, path, nil)
	_, second := do(t, s, http.MethodGet, path, nil)
	assert.JSONEq(t, string(first.Data), string(second.Data))
}

func TestScoreQuiz_StoresResult(t *testing.T) {
	repo := &quizRepo{}
	s := newTestServer(t, Deps{Repo: repo})

	bank := catalog.Questions(catalog.GoalMath)
	body := gin.H{
		"learner": " Katabo ",
		"goal":    "Improve Math",
		"answers": []gin.H{
			{"question": bank[0].Text, "selected": bank[0].CorrectIndex},
			{"question": bank[1].Text, "selected": -1},
		},
	}
	rec, env := do(t, s, http.MethodPost, "/api/quiz/score", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got scoreResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, scoreResponse{Correct: 1, Total: 2, Percentage: 50, Stored: true}, got)

	require.Len(t, repo.results, 1)
	assert.Equal(t, "Katabo", repo.results[0].Learner)
	assert.Equal(t, "practice", repo.results[0].QuizType)
}

func TestScoreQuiz_StoreFailureStillScores(t *testing.T) {
	s := newTestServer(t, Deps{Repo: &quizRepo{err: errors.New("disk full")}})
	q := catalog.Questions(catalog.GoalMath)[0]

	rec, env := do(t, s, http.MethodPost, "/api/quiz/score", gin.H{
		"goal":    "Improve Math",
		"answers": []gin.H{{"question": q.Text, "selected": q.CorrectIndex}},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var got scoreResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.False(t, got.Stored)
	assert.Equal(t, 100, got.Percentage)
}

func TestScoreQuiz_BadRequests(t *testing.T) {
	s := newTestServer(t, Deps{})
	tests := []struct {
		name string
		body any
	}{
		{"missing goal", gin.H{"answers": []gin.H{}}},
		{"unknown goal", gin.H{"goal": "Cooking", "answers": []gin.H{}}},
		{"bad type", gin.H{"goal": "Improve Math", "type": "midterm", "answers": []gin.H{}}},
		{"unknown question", gin.H{"goal": "Improve Math", "answers": []gin.H{{"question": "?", "selected": 0}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, s, http.MethodPost, "/api/quiz/score", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, env.Message)
		})
	}
}

func TestTutor(t *testing.T) {
	ai := &fakeAI{reply: "Try [Khan Academy](https://www.khanacademy.org) for practice."}
	s := newTestServer(t, Deps{AI: ai})

	rec, env := do(t, s, http.MethodPost, "/api/tutor", gin.H{
		"prompt":  "Explain probability basics.",
		"history": []gin.H{{"role": "model", "text": "Hi there!"}},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var data struct {
		Text  string `json:"text"`
		Prose string `json:"prose"`
		Links []struct {
			Title string `json:"title"`
			URL   string `json:"url"`
		} `json:"links"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, ai.reply, data.Text)
	assert.Equal(t, "Try  for practice.", data.Prose)
	require.Len(t, data.Links, 1)
	assert.Equal(t, "Khan Academy", data.Links[0].Title)

	require.Len(t, ai.histories, 1)
	assert.Equal(t, []gateway.Turn{{Role: gateway.RoleModel, Text: "Hi there!"}}, ai.histories[0])
}

func TestTutor_Validation(t *testing.T) {
	s := newTestServer(t, Deps{AI: &fakeAI{}})

	rec, _ := do(t, s, http.MethodPost, "/api/tutor", gin.H{"prompt": "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, s, http.MethodPost, "/api/tutor", gin.H{
		"prompt":  "hi",
		"history": []gin.H{{"role": "system", "text": "x"}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTutor_Unavailable(t *testing.T) {
	s := newTestServer(t, Deps{})
	rec, env := do(t, s, http.MethodPost, "/api/tutor", gin.H{"prompt": "hi"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"text":"`+gateway.TutorUnavailable+`"}`, string(env.Data))
}

func TestSearchMaterials(t *testing.T) {
	ai := &fakeAI{materials: []catalog.Material{{Title: "Dynamic", Source: "Web", URL: "https://example.com", Type: "Article"}}}
	s := newTestServer(t, Deps{AI: ai})

	type result struct {
		Materials []catalog.Material `json:"materials"`
		Dynamic   bool               `json:"dynamic"`
		NoResults bool               `json:"no_results"`
	}
	search := func(body gin.H) result {
		rec, env := do(t, s, http.MethodPost, "/api/materials/search", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var r result
		require.NoError(t, json.Unmarshal(env.Data, &r))
		return r
	}

	all := search(gin.H{"goal": "Improve Math"})
	assert.Len(t, all.Materials, len(catalog.Materials(catalog.GoalMath)))
	assert.Zero(t, ai.searchCalls)

	dyn := search(gin.H{"goal": "Improve Math", "query": "zzzz unmatched"})
	assert.True(t, dyn.Dynamic)
	assert.Equal(t, "Dynamic", dyn.Materials[0].Title)
	assert.Equal(t, 1, ai.searchCalls)

	rec, _ := do(t, s, http.MethodPost, "/api/materials/search", gin.H{"goal": "Cooking"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLinks(t *testing.T) {
	s := newTestServer(t, Deps{})
	rec, env := do(t, s, http.MethodPost, "/api/links", gin.H{"text": "no links here"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"prose":"no links here","links":[]}`, string(env.Data))
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, Deps{})
	do(t, s, http.MethodGet, "/api/goals", nil)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `studybuddy_http_requests_total{endpoint="/api/goals",method="GET",status="200"} 1`)
}

func TestCORS(t *testing.T) {
	s := newTestServer(t, Deps{})
	req := httptest.NewRequest(http.MethodGet, "/api/goals", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/goals", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2}
	s := New(cfg, Deps{})

	codes := make([]int, 3)
	for i := range codes {
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/goals", nil))
		codes[i] = rec.Code
	}
	assert.Equal(t, []int{200, 200, 429}, codes)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code, "health checks are not rate limited")
}

func TestRateLimiter_SweepsIdleVisitors(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := newRateLimiter(config.RateLimitConfig{RequestsPerSecond: 1, Burst: 1})
	rl.now = func() time.Time { return now }

	rl.allow("10.0.0.1")
	now = now.Add(visitorExpiry + 2*time.Minute)
	rl.allow("10.0.0.2")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.visitors, "10.0.0.1")
	assert.Contains(t, rl.visitors, "10.0.0.2")
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	cfg := testConfig()
	cfg.Addr = "127.0.0.1:0"
	s := New(cfg, Deps{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
