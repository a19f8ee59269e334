package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"craftconnect_backend/internal/model"
	"craftconnect_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	output string
	err    error
}

func (g *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.output, nil
}

type memAssessmentStore struct {
	nextID      uint
	assessments map[uint]*model.Assessment
}

func newMemAssessmentStore() *memAssessmentStore {
	return &memAssessmentStore{assessments: map[uint]*model.Assessment{}}
}

func (s *memAssessmentStore) Create(a *model.Assessment) error {
	s.nextID++
	a.ID = s.nextID
	clone := *a
	s.assessments[a.ID] = &clone
	return nil
}

func (s *memAssessmentStore) FindByID(id uint) (*model.Assessment, error) {
	a, ok := s.assessments[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	clone := *a
	return &clone, nil
}

func (s *memAssessmentStore) FindByArtisan(artisanID uint) ([]model.Assessment, error) {
	var out []model.Assessment
	for _, a := range s.assessments {
		if a.ArtisanID == artisanID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *memAssessmentStore) Update(a *model.Assessment) error {
	clone := *a
	s.assessments[a.ID] = &clone
	return nil
}

func assessmentRouter(store service.AssessmentStore, gen service.TextGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewAssessmentController(service.NewAssessmentService(store, gen))

	r := gin.New()
	r.POST("/api/assessment/start", ctrl.StartAssessment)
	r.POST("/api/assessment/submit", ctrl.SubmitAssessment)
	r.GET("/api/assessment/:id", ctrl.GetAssessment)
	r.GET("/api/assessment/artisan/:artisanId", ctrl.ListArtisanAssessments)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func fiveQuestionSet() string {
	questions := make([]service.Question, service.QuestionCount)
	for i := range questions {
		questions[i] = service.Question{
			Question: fmt.Sprintf("Q%d?", i+1),
			Options:  map[string]string{"A": "a", "B": "b", "C": "c", "D": "d"},
			Answer:   "B",
		}
	}
	raw, _ := json.Marshal(service.QuestionSet{Questions: questions})
	return string(raw)
}

func TestStartAssessmentEndpointCreatesAttempt(t *testing.T) {
	store := newMemAssessmentStore()
	r := assessmentRouter(store, &stubGenerator{output: fiveQuestionSet()})

	w := postJSON(t, r, "/api/assessment/start", gin.H{"trade_category": "Welder", "artisan": 7})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, store.assessments, 1)
}

func TestStartAssessmentEndpointMissingBody(t *testing.T) {
	r := assessmentRouter(newMemAssessmentStore(), &stubGenerator{})

	w := postJSON(t, r, "/api/assessment/start", gin.H{"artisan": 7})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartAssessmentEndpointUpstreamFailure(t *testing.T) {
	gen := &stubGenerator{err: &service.GenerationError{StatusCode: 500, Body: "boom"}}
	r := assessmentRouter(newMemAssessmentStore(), gen)

	w := postJSON(t, r, "/api/assessment/start", gin.H{"trade_category": "Welder", "artisan": 7})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestStartAssessmentEndpointMalformedAIReply(t *testing.T) {
	r := assessmentRouter(newMemAssessmentStore(), &stubGenerator{output: "plain text"})

	w := postJSON(t, r, "/api/assessment/start", gin.H{"trade_category": "Welder", "artisan": 7})
	assert.Equal(t, http.StatusBadGateway, w.Code)

	var body struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Data, "raw_output")
}

func TestStartAssessmentEndpointSchemaViolation(t *testing.T) {
	r := assessmentRouter(newMemAssessmentStore(), &stubGenerator{output: `{"questions": []}`})

	w := postJSON(t, r, "/api/assessment/start", gin.H{"trade_category": "Welder", "artisan": 7})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestStartAssessmentEndpointTimeout(t *testing.T) {
	r := assessmentRouter(newMemAssessmentStore(), &stubGenerator{err: service.ErrGenerationTimeout})

	w := postJSON(t, r, "/api/assessment/start", gin.H{"trade_category": "Welder", "artisan": 7})
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestSubmitAssessmentEndpointFlow(t *testing.T) {
	store := newMemAssessmentStore()
	r := assessmentRouter(store, &stubGenerator{output: fiveQuestionSet()})

	w := postJSON(t, r, "/api/assessment/start", gin.H{"trade_category": "Welder", "artisan": 7})
	require.Equal(t, http.StatusCreated, w.Code)

	evalRouter := assessmentRouter(store, &stubGenerator{
		output: `{"score": 100, "feedback": {"summary": "solid"}}`,
	})
	w = postJSON(t, evalRouter, "/api/assessment/submit", gin.H{
		"assessment_id": 1,
		"answers":       []string{"B", "B", "B", "B", "B"},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Score int `json:"score"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 100, body.Data.Score)
}

func TestSubmitAssessmentEndpointNotFound(t *testing.T) {
	r := assessmentRouter(newMemAssessmentStore(), &stubGenerator{})

	w := postJSON(t, r, "/api/assessment/submit", gin.H{
		"assessment_id": 42,
		"answers":       []string{"A"},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitAssessmentEndpointConflictOnResubmit(t *testing.T) {
	store := newMemAssessmentStore()
	startRouter := assessmentRouter(store, &stubGenerator{output: fiveQuestionSet()})
	w := postJSON(t, startRouter, "/api/assessment/start", gin.H{"trade_category": "Welder", "artisan": 7})
	require.Equal(t, http.StatusCreated, w.Code)

	submitRouter := assessmentRouter(store, &stubGenerator{
		output: `{"score": 0, "feedback": {"summary": "s"}}`,
	})
	payload := gin.H{"assessment_id": 1, "answers": []string{"A", "A", "A", "A", "A"}}

	w = postJSON(t, submitRouter, "/api/assessment/submit", payload)
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, submitRouter, "/api/assessment/submit", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSubmitAssessmentEndpointAnswerCountMismatch(t *testing.T) {
	store := newMemAssessmentStore()
	startRouter := assessmentRouter(store, &stubGenerator{output: fiveQuestionSet()})
	w := postJSON(t, startRouter, "/api/assessment/start", gin.H{"trade_category": "Welder", "artisan": 7})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, startRouter, "/api/assessment/submit", gin.H{
		"assessment_id": 1,
		"answers":       []string{"A", "B"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAssessmentEndpoint(t *testing.T) {
	store := newMemAssessmentStore()
	r := assessmentRouter(store, &stubGenerator{output: fiveQuestionSet()})
	w := postJSON(t, r, "/api/assessment/start", gin.H{"trade_category": "Mason", "artisan": 3})
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/assessment/1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/assessment/999", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListArtisanAssessmentsEndpoint(t *testing.T) {
	store := newMemAssessmentStore()
	r := assessmentRouter(store, &stubGenerator{output: fiveQuestionSet()})
	for i := 0; i < 2; i++ {
		w := postJSON(t, r, "/api/assessment/start", gin.H{"trade_category": "Tailor", "artisan": 5})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/assessment/artisan/5", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []model.Assessment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)
}
