package server

import (
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adaptive-learning/studybuddy/internal/catalog"
	"github.com/adaptive-learning/studybuddy/internal/chat"
	"github.com/adaptive-learning/studybuddy/internal/gateway"
	"github.com/adaptive-learning/studybuddy/internal/quiz"
	"github.com/adaptive-learning/studybuddy/internal/search"
)

func (s *Server) health(c *gin.Context) {
	success(c, gin.H{"status": "ok", "ai": s.deps.AI != nil})
}

type goalInfo struct {
	Goal    catalog.Goal `json:"goal"`
	Filters []string     `json:"filters"`
}

func (s *Server) goals(c *gin.Context) {
	goals := make([]goalInfo, 0, len(catalog.AllGoals()))
	for _, g := range catalog.AllGoals() {
		goals = append(goals, goalInfo{Goal: g, Filters: search.Filters(g)})
	}
	success(c, gin.H{
		"goals":      goals,
		"styles":     catalog.AllStyles(),
		"quiz_types": []catalog.QuizType{catalog.QuizPractice, catalog.QuizFinal},
	})
}

type questionDTO struct {
	Text         string   `json:"text"`
	Answers      []string `json:"answers"`
	CorrectIndex int      `json:"correct_index"`
	Topic        string   `json:"topic"`
	Tags         []string `json:"tags,omitempty"`
}

func (s *Server) buildQuiz(c *gin.Context) {
	goal, err := catalog.ParseGoal(c.Param("goal"))
	if err != nil {
		fail(c, http.StatusNotFound, err.Error())
		return
	}
	qt, err := catalog.ParseQuizType(c.DefaultQuery("type", string(catalog.QuizPractice)))
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	rng := s.deps.NewRand()
	if raw := c.Query("seed"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			fail(c, http.StatusBadRequest, "seed must be an unsigned integer")
			return
		}
		rng = rand.New(rand.NewPCG(seed, seed))
	}

	qs := quiz.Build(goal, qt, rng)
	out := make([]questionDTO, len(qs))
	for i, q := range qs {
		out[i] = questionDTO{Text: q.Text, Answers: q.Answers, CorrectIndex: q.CorrectIndex, Topic: q.Topic, Tags: q.Tags}
	}
	success(c, gin.H{"goal": goal, "type": qt, "questions": out})
}

type scoreRequest struct {
	Learner string        `json:"learner"`
	Goal    string        `json:"goal" binding:"required"`
	Type    string        `json:"type"`
	Answers []quiz.Answer `json:"answers" binding:"required"`
}

type scoreResponse struct {
	Correct    int  `json:"correct"`
	Total      int  `json:"total"`
	Percentage int  `json:"percentage"`
	Stored     bool `json:"stored"`
}

func (s *Server) scoreQuiz(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	goal, err := catalog.ParseGoal(req.Goal)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Type == "" {
		req.Type = string(catalog.QuizPractice)
	}
	qt, err := catalog.ParseQuizType(req.Type)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := quiz.Grade(goal, qt, req.Answers)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	out := scoreResponse{Correct: res.Score.Correct, Total: res.Score.Total, Percentage: res.Percentage()}
	if s.deps.Repo != nil && res.Score.Total > 0 {
		if err := s.deps.Repo.AppendQuizResult(c.Request.Context(), res.Record(strings.TrimSpace(req.Learner))); err != nil {
			s.deps.Log.Errorw("storing quiz result", "error", err)
		} else {
			out.Stored = true
		}
	}
	success(c, out)
}

type tutorRequest struct {
	Prompt  string         `json:"prompt" binding:"required"`
	History []gateway.Turn `json:"history"`
}

func (s *Server) tutor(c *gin.Context) {
	var req tutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		fail(c, http.StatusBadRequest, "prompt is empty")
		return
	}
	if s.deps.AI == nil {
		success(c, gin.H{"text": gateway.TutorUnavailable})
		return
	}
	for _, t := range req.History {
		if t.Role != gateway.RoleUser && t.Role != gateway.RoleModel {
			fail(c, http.StatusBadRequest, "history role must be user or model")
			return
		}
	}

	text := s.deps.AI.TutorResponse(c.Request.Context(), req.Prompt, req.History)
	prose, links := chat.ExtractLinks(text)
	success(c, gin.H{"text": text, "prose": strings.TrimSpace(prose), "links": nonNil(links)})
}

type materialsRequest struct {
	Goal  string `json:"goal" binding:"required"`
	Query string `json:"query"`
	Type  string `json:"type"`
}

func (s *Server) searchMaterials(c *gin.Context) {
	var req materialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	goal, err := catalog.ParseGoal(req.Goal)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Type == "" {
		req.Type = search.All
	}

	res := s.searcher.Search(c.Request.Context(), goal, req.Type, req.Query)
	success(c, gin.H{
		"materials":  res.Materials,
		"dynamic":    res.Dynamic,
		"no_results": res.NoResults,
	})
}

type linksRequest struct {
	Text string `json:"text"`
}

func (s *Server) links(c *gin.Context) {
	var req linksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	prose, links := chat.ExtractLinks(req.Text)
	success(c, gin.H{"prose": prose, "links": nonNil(links)})
}

func nonNil(links []chat.Link) []chat.Link {
	if links == nil {
		return []chat.Link{}
	}
	return links
}
