package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"craftconnect_backend/internal/model"
	"craftconnect_backend/internal/util"
	"craftconnect_backend/pkg/logger"

	"go.uber.org/zap"
)

// AssessmentStore is the persistence boundary for attempts. Implemented
// by repository.AssessmentRepository; tests use an in-memory fake.
type AssessmentStore interface {
	Create(assessment *model.Assessment) error
	FindByID(id uint) (*model.Assessment, error)
	FindByArtisan(artisanID uint) ([]model.Assessment, error)
	Update(assessment *model.Assessment) error
}

// AssessmentService runs the two-phase attempt lifecycle: start
// generates, validates and persists a question set; submit scores the
// answers locally, asks the model for feedback and persists the result.
type AssessmentService struct {
	Store     AssessmentStore
	Generator TextGenerator
}

func NewAssessmentService(store AssessmentStore, generator TextGenerator) *AssessmentService {
	return &AssessmentService{Store: store, Generator: generator}
}

type StartAssessmentRequest struct {
	TradeCategory string `json:"trade_category" binding:"required"`
	ArtisanID     uint   `json:"artisan" binding:"required"`
}

type SubmitAssessmentRequest struct {
	AssessmentID uint     `json:"assessment_id" binding:"required"`
	Answers      []string `json:"answers" binding:"required"`
}

// WrongAnswer is one locally detected mismatch, 1-indexed by question.
type WrongAnswer struct {
	QuestionNumber int    `json:"question_number"`
	Question       string `json:"question"`
	CorrectAnswer  string `json:"correct_answer"`
	UserAnswer     string `json:"user_answer"`
}

// SubmitResult is the submit phase outcome. Score is the deterministic
// local score; the model's own score, when it returns one, stays inside
// Feedback as advisory content.
type SubmitResult struct {
	Assessment *model.Assessment `json:"assessment"`
	Score      int               `json:"score"`
	Feedback   json.RawMessage   `json:"feedback"`
}

// StartAssessment builds a generation prompt for the trade, invokes the
// model, validates the returned question set and persists a pending
// attempt. Nothing is persisted on any failure, and repeated calls
// always create independent attempts.
func (s *AssessmentService) StartAssessment(ctx context.Context, req StartAssessmentRequest) (*model.Assessment, error) {
	if strings.TrimSpace(req.TradeCategory) == "" || req.ArtisanID == 0 {
		return nil, fmt.Errorf("%w: trade_category and artisan are required", util.ErrInvalidInput)
	}

	prompt := buildGenerationPrompt(req.TradeCategory)

	output, err := s.Generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	set, err := ParseQuestionSet(output)
	if err != nil {
		return nil, err
	}

	questions, err := json.Marshal(set.Questions)
	if err != nil {
		return nil, err
	}

	assessment := &model.Assessment{
		ArtisanID:     req.ArtisanID,
		TradeCategory: req.TradeCategory,
		Questions:     questions,
		Status:        model.AssessmentPending,
	}
	if err := s.Store.Create(assessment); err != nil {
		return nil, err
	}

	logger.Log.Info("assessment started",
		zap.Uint("assessmentId", assessment.ID),
		zap.Uint("artisanId", req.ArtisanID),
		zap.String("tradeCategory", req.TradeCategory))

	return assessment, nil
}

// SubmitAssessment scores the submitted answers against the stored
// questions, asks the model for structured feedback and completes the
// attempt. The record is left untouched when the evaluation call or its
// parsing fails.
func (s *AssessmentService) SubmitAssessment(ctx context.Context, req SubmitAssessmentRequest) (*SubmitResult, error) {
	if req.AssessmentID == 0 || req.Answers == nil {
		return nil, fmt.Errorf("%w: assessment_id and answers are required", util.ErrInvalidInput)
	}

	assessment, err := s.Store.FindByID(req.AssessmentID)
	if err != nil {
		return nil, util.ErrAssessmentNotFound
	}

	if assessment.Status == model.AssessmentCompleted {
		return nil, util.ErrAssessmentCompleted
	}

	var questions []Question
	if err := json.Unmarshal(assessment.Questions, &questions); err != nil {
		return nil, fmt.Errorf("stored questions are unreadable: %w", err)
	}

	if len(req.Answers) != len(questions) {
		return nil, fmt.Errorf("%w: you must submit exactly %d answers", util.ErrInvalidInput, len(questions))
	}

	score, wrong := ScoreAnswers(questions, req.Answers)

	prompt := buildEvaluationPrompt(questions, req.Answers, score)

	output, err := s.Generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var evaluation struct {
		Score    *float64        `json:"score"`
		Feedback json.RawMessage `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(ExtractJSON(output)), &evaluation); err != nil {
		return nil, &MalformedResponseError{Raw: output, Err: err}
	}

	feedback := evaluation.Feedback
	if len(feedback) == 0 {
		// Evaluator omitted the feedback object; fall back to the local
		// wrong-answer breakdown so the client still gets detail.
		feedback, _ = json.Marshal(map[string]interface{}{
			"summary":         "Automatic scoring only; evaluator feedback was unavailable.",
			"wrong_questions": wrong,
		})
	} else if evaluation.Score != nil {
		// The evaluator's own score stays advisory, stored inside the
		// feedback; the persisted Score column is always the local one.
		var fb map[string]json.RawMessage
		if json.Unmarshal(feedback, &fb) == nil {
			if _, ok := fb["ai_score"]; !ok {
				fb["ai_score"], _ = json.Marshal(*evaluation.Score)
				if merged, err := json.Marshal(fb); err == nil {
					feedback = merged
				}
			}
		}
	}

	answers, err := json.Marshal(req.Answers)
	if err != nil {
		return nil, err
	}

	localScore := score
	assessment.Answers = answers
	assessment.Score = &localScore
	assessment.AIFeedback = feedback
	assessment.Status = model.AssessmentCompleted

	if err := s.Store.Update(assessment); err != nil {
		return nil, err
	}

	logger.Log.Info("assessment submitted",
		zap.Uint("assessmentId", assessment.ID),
		zap.Int("score", score),
		zap.Int("wrongAnswers", len(wrong)))

	return &SubmitResult{
		Assessment: assessment,
		Score:      score,
		Feedback:   feedback,
	}, nil
}

func (s *AssessmentService) GetAssessment(id uint) (*model.Assessment, error) {
	assessment, err := s.Store.FindByID(id)
	if err != nil {
		return nil, util.ErrAssessmentNotFound
	}
	return assessment, nil
}

func (s *AssessmentService) ListByArtisan(artisanID uint) ([]model.Assessment, error) {
	return s.Store.FindByArtisan(artisanID)
}

// ScoreAnswers compares each answer to the stored correct choice by
// exact token equality and returns the integer percentage (floored)
// plus the mismatches in ascending question order.
func ScoreAnswers(questions []Question, answers []string) (int, []WrongAnswer) {
	correct := 0
	var wrong []WrongAnswer

	for i, q := range questions {
		if answers[i] == q.Answer {
			correct++
			continue
		}
		wrong = append(wrong, WrongAnswer{
			QuestionNumber: i + 1,
			Question:       q.Question,
			CorrectAnswer:  q.Answer,
			UserAnswer:     answers[i],
		})
	}

	return correct * 100 / len(questions), wrong
}

func buildGenerationPrompt(tradeCategory string) string {
	return fmt.Sprintf(`Generate EXACTLY %d exam-style multiple-choice questions for the trade: %q.

STRICT RULES:
- Only JSON output.
- No explanation or extra text.
- Each question must have options A-D.
- "answer" MUST be one of: "A", "B", "C", or "D".
- Output MUST MATCH this structure:

{
  "questions": [
    {
      "question": "string",
      "options": {
        "A": "string",
        "B": "string",
        "C": "string",
        "D": "string"
      },
      "answer": "A"
    }
  ]
}
`, QuestionCount, tradeCategory)
}

func buildEvaluationPrompt(questions []Question, answers []string, score int) string {
	var qa strings.Builder
	for i, q := range questions {
		fmt.Fprintf(&qa, "\nQ%d: %s\nCorrect: %s\nUser: %s\n", i+1, q.Question, q.Answer, answers[i])
	}

	return fmt.Sprintf(`You are evaluating an artisan's skill assessment.
Analyze each question and the user's answers.

Return **detailed JSON only**, no extra text.

Required JSON format:
{
  "score": %d,
  "feedback": {
    "summary": "string",
    "strengths": "string",
    "weaknesses": "string",
    "wrong_questions": [
        {
          "question_number": number,
          "correct_answer": "A/B/C/D",
          "user_answer": "A/B/C/D",
          "explanation": "string"
        }
    ],
    "recommendation": "string"
  }
}

Here are the user's answers:
%s`, score, qa.String())
}
