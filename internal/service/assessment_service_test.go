package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"craftconnect_backend/internal/model"
	"craftconnect_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	output string
	err    error
	calls  int
	prompt string
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.calls++
	g.prompt = prompt
	if g.err != nil {
		return "", g.err
	}
	return g.output, nil
}

type fakeAssessmentStore struct {
	nextID      uint
	assessments map[uint]*model.Assessment
	updateErr   error
}

func newFakeAssessmentStore() *fakeAssessmentStore {
	return &fakeAssessmentStore{assessments: map[uint]*model.Assessment{}}
}

func (s *fakeAssessmentStore) Create(a *model.Assessment) error {
	s.nextID++
	a.ID = s.nextID
	clone := *a
	s.assessments[a.ID] = &clone
	return nil
}

func (s *fakeAssessmentStore) FindByID(id uint) (*model.Assessment, error) {
	a, ok := s.assessments[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	clone := *a
	return &clone, nil
}

func (s *fakeAssessmentStore) FindByArtisan(artisanID uint) ([]model.Assessment, error) {
	var out []model.Assessment
	for _, a := range s.assessments {
		if a.ArtisanID == artisanID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *fakeAssessmentStore) Update(a *model.Assessment) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	clone := *a
	s.assessments[a.ID] = &clone
	return nil
}

func questionsWithAnswers(answers ...string) []Question {
	qs := make([]Question, len(answers))
	for i, ans := range answers {
		qs[i] = Question{
			Question: fmt.Sprintf("Question %d?", i+1),
			Options:  map[string]string{"A": "a", "B": "b", "C": "c", "D": "d"},
			Answer:   ans,
		}
	}
	return qs
}

func startedAssessment(t *testing.T, store *fakeAssessmentStore, answers ...string) *model.Assessment {
	t.Helper()
	raw, err := json.Marshal(questionsWithAnswers(answers...))
	require.NoError(t, err)
	a := &model.Assessment{
		ArtisanID:     7,
		TradeCategory: "Welder",
		Questions:     raw,
		Status:        model.AssessmentPending,
	}
	require.NoError(t, store.Create(a))
	return a
}

func evaluationReply(score int) string {
	return fmt.Sprintf(`{"score": %d, "feedback": {"summary": "ok", "strengths": "s", "weaknesses": "w", "wrong_questions": [], "recommendation": "r"}}`, score)
}

func TestStartAssessmentPersistsPendingAttempt(t *testing.T) {
	store := newFakeAssessmentStore()
	gen := &fakeGenerator{output: validSetJSON(t, QuestionCount)}
	svc := NewAssessmentService(store, gen)

	a, err := svc.StartAssessment(context.Background(), StartAssessmentRequest{
		TradeCategory: "Tailor",
		ArtisanID:     12,
	})
	require.NoError(t, err)
	assert.Equal(t, model.AssessmentPending, a.Status)
	assert.Equal(t, uint(12), a.ArtisanID)
	assert.Equal(t, "Tailor", a.TradeCategory)
	assert.Nil(t, a.Score)

	stored, err := store.FindByID(a.ID)
	require.NoError(t, err)
	var qs []Question
	require.NoError(t, json.Unmarshal(stored.Questions, &qs))
	assert.Len(t, qs, QuestionCount)

	assert.Contains(t, gen.prompt, `"Tailor"`)
}

func TestStartAssessmentMissingFields(t *testing.T) {
	svc := NewAssessmentService(newFakeAssessmentStore(), &fakeGenerator{})

	_, err := svc.StartAssessment(context.Background(), StartAssessmentRequest{ArtisanID: 1})
	assert.ErrorIs(t, err, util.ErrInvalidInput)

	_, err = svc.StartAssessment(context.Background(), StartAssessmentRequest{TradeCategory: "Mason"})
	assert.ErrorIs(t, err, util.ErrInvalidInput)
}

func TestStartAssessmentPersistsNothingOnFailure(t *testing.T) {
	cases := []struct {
		name string
		gen  *fakeGenerator
	}{
		{"generation error", &fakeGenerator{err: &GenerationError{StatusCode: 500, Body: "upstream down"}}},
		{"timeout", &fakeGenerator{err: ErrGenerationTimeout}},
		{"invalid json", &fakeGenerator{output: "not json"}},
		{"schema violation", &fakeGenerator{output: `{"questions": []}`}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeAssessmentStore()
			svc := NewAssessmentService(store, tc.gen)

			_, err := svc.StartAssessment(context.Background(), StartAssessmentRequest{
				TradeCategory: "Plumber",
				ArtisanID:     3,
			})
			require.Error(t, err)
			assert.Empty(t, store.assessments)
		})
	}
}

func TestStartAssessmentRepeatedCallsCreateIndependentAttempts(t *testing.T) {
	store := newFakeAssessmentStore()
	gen := &fakeGenerator{output: validSetJSON(t, QuestionCount)}
	svc := NewAssessmentService(store, gen)

	first, err := svc.StartAssessment(context.Background(), StartAssessmentRequest{TradeCategory: "Carpenter", ArtisanID: 5})
	require.NoError(t, err)
	second, err := svc.StartAssessment(context.Background(), StartAssessmentRequest{TradeCategory: "Carpenter", ArtisanID: 5})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, store.assessments, 2)
}

func TestSubmitAssessmentScoresAndCompletes(t *testing.T) {
	store := newFakeAssessmentStore()
	a := startedAssessment(t, store, "A", "B", "C", "D", "A")
	gen := &fakeGenerator{output: evaluationReply(60)}
	svc := NewAssessmentService(store, gen)

	res, err := svc.SubmitAssessment(context.Background(), SubmitAssessmentRequest{
		AssessmentID: a.ID,
		Answers:      []string{"A", "B", "C", "A", "B"}, // 3 of 5 correct
	})
	require.NoError(t, err)
	assert.Equal(t, 60, res.Score)

	stored, err := store.FindByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AssessmentCompleted, stored.Status)
	require.NotNil(t, stored.Score)
	assert.Equal(t, 60, *stored.Score)

	var answers []string
	require.NoError(t, json.Unmarshal(stored.Answers, &answers))
	assert.Equal(t, []string{"A", "B", "C", "A", "B"}, answers)
	assert.NotEmpty(t, stored.AIFeedback)
}

func TestSubmitAssessmentLocalScoreIsAuthoritative(t *testing.T) {
	store := newFakeAssessmentStore()
	a := startedAssessment(t, store, "A", "A", "A", "A", "A")
	// Evaluator disagrees with the deterministic score; its number is
	// advisory only.
	gen := &fakeGenerator{output: evaluationReply(95)}
	svc := NewAssessmentService(store, gen)

	res, err := svc.SubmitAssessment(context.Background(), SubmitAssessmentRequest{
		AssessmentID: a.ID,
		Answers:      []string{"A", "A", "A", "A", "A"},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, res.Score)

	stored, _ := store.FindByID(a.ID)
	assert.Equal(t, 100, *stored.Score)

	var feedback map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(stored.AIFeedback, &feedback))
	require.Contains(t, feedback, "ai_score")
	var aiScore float64
	require.NoError(t, json.Unmarshal(feedback["ai_score"], &aiScore))
	assert.Equal(t, 95.0, aiScore)
}

func TestSubmitAssessmentAnswerCountMismatch(t *testing.T) {
	store := newFakeAssessmentStore()
	a := startedAssessment(t, store, "A", "B", "C", "D", "A")
	gen := &fakeGenerator{output: evaluationReply(0)}
	svc := NewAssessmentService(store, gen)

	_, err := svc.SubmitAssessment(context.Background(), SubmitAssessmentRequest{
		AssessmentID: a.ID,
		Answers:      []string{"A", "B"},
	})
	assert.ErrorIs(t, err, util.ErrInvalidInput)
	assert.Zero(t, gen.calls)

	stored, _ := store.FindByID(a.ID)
	assert.Equal(t, model.AssessmentPending, stored.Status)
}

func TestSubmitAssessmentNotFound(t *testing.T) {
	svc := NewAssessmentService(newFakeAssessmentStore(), &fakeGenerator{})

	_, err := svc.SubmitAssessment(context.Background(), SubmitAssessmentRequest{
		AssessmentID: 99,
		Answers:      []string{"A"},
	})
	assert.ErrorIs(t, err, util.ErrAssessmentNotFound)
}

func TestSubmitAssessmentRejectsResubmission(t *testing.T) {
	store := newFakeAssessmentStore()
	a := startedAssessment(t, store, "A", "B", "C", "D", "A")
	gen := &fakeGenerator{output: evaluationReply(100)}
	svc := NewAssessmentService(store, gen)

	answers := []string{"A", "B", "C", "D", "A"}
	_, err := svc.SubmitAssessment(context.Background(), SubmitAssessmentRequest{AssessmentID: a.ID, Answers: answers})
	require.NoError(t, err)

	_, err = svc.SubmitAssessment(context.Background(), SubmitAssessmentRequest{AssessmentID: a.ID, Answers: answers})
	assert.ErrorIs(t, err, util.ErrAssessmentCompleted)
}

func TestSubmitAssessmentLeavesRecordUntouchedOnEvaluationFailure(t *testing.T) {
	cases := []struct {
		name string
		gen  *fakeGenerator
	}{
		{"generation error", &fakeGenerator{err: &GenerationError{StatusCode: 502, Body: "bad gateway"}}},
		{"timeout", &fakeGenerator{err: ErrGenerationTimeout}},
		{"invalid json reply", &fakeGenerator{output: "sorry, no JSON today"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeAssessmentStore()
			a := startedAssessment(t, store, "A", "B", "C", "D", "A")
			svc := NewAssessmentService(store, tc.gen)

			_, err := svc.SubmitAssessment(context.Background(), SubmitAssessmentRequest{
				AssessmentID: a.ID,
				Answers:      []string{"A", "B", "C", "D", "A"},
			})
			require.Error(t, err)

			stored, _ := store.FindByID(a.ID)
			assert.Equal(t, model.AssessmentPending, stored.Status)
			assert.Nil(t, stored.Score)
			assert.Empty(t, stored.Answers)
		})
	}
}

func TestSubmitAssessmentFallsBackWhenFeedbackMissing(t *testing.T) {
	store := newFakeAssessmentStore()
	a := startedAssessment(t, store, "A", "B", "C", "D", "A")
	gen := &fakeGenerator{output: `{"score": 40}`}
	svc := NewAssessmentService(store, gen)

	res, err := svc.SubmitAssessment(context.Background(), SubmitAssessmentRequest{
		AssessmentID: a.ID,
		Answers:      []string{"A", "A", "A", "A", "A"}, // 2 of 5 correct
	})
	require.NoError(t, err)
	assert.Equal(t, 40, res.Score)

	var feedback map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(res.Feedback, &feedback))
	assert.Contains(t, feedback, "summary")
	assert.Contains(t, feedback, "wrong_questions")
}

func TestScoreAnswers(t *testing.T) {
	questions := questionsWithAnswers("A", "B", "C", "D", "A")

	cases := []struct {
		name      string
		answers   []string
		score     int
		wrongNums []int
	}{
		{"all correct", []string{"A", "B", "C", "D", "A"}, 100, nil},
		{"all wrong", []string{"B", "C", "D", "A", "B"}, 0, []int{1, 2, 3, 4, 5}},
		{"three of five", []string{"A", "B", "C", "A", "B"}, 60, []int{4, 5}},
		{"case sensitive", []string{"a", "B", "C", "D", "A"}, 80, []int{1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score, wrong := ScoreAnswers(questions, tc.answers)
			assert.Equal(t, tc.score, score)

			var nums []int
			for _, w := range wrong {
				nums = append(nums, w.QuestionNumber)
			}
			assert.Equal(t, tc.wrongNums, nums)
		})
	}
}

func TestScoreAnswersFloorsPercentage(t *testing.T) {
	questions := questionsWithAnswers("A", "B", "C")
	score, _ := ScoreAnswers(questions, []string{"A", "X", "X"})
	assert.Equal(t, 33, score)
}

func TestWrongAnswersCarryDetail(t *testing.T) {
	questions := questionsWithAnswers("A", "B")
	_, wrong := ScoreAnswers(questions, []string{"A", "D"})
	require.Len(t, wrong, 1)
	assert.Equal(t, 2, wrong[0].QuestionNumber)
	assert.Equal(t, "Question 2?", wrong[0].Question)
	assert.Equal(t, "B", wrong[0].CorrectAnswer)
	assert.Equal(t, "D", wrong[0].UserAnswer)
}
