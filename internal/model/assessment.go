package model

import "encoding/json"

// AssessmentStatus is the two-transition lifecycle of an attempt:
// pending on creation, completed on successful submission. Failed exists
// in the schema for operators flagging dead records; the service never
// transitions into it on its own.
type AssessmentStatus string

const (
	AssessmentPending   AssessmentStatus = "pending"
	AssessmentCompleted AssessmentStatus = "completed"
	AssessmentFailed    AssessmentStatus = "failed"
)

// Assessment is one AI-generated skill test attempt by one artisan.
// Questions are set once at creation; Answers, Score, AIFeedback and the
// completed status are set once at submission.
// swagger:model Assessment
type Assessment struct {
	BaseModel
	ArtisanID     uint             `gorm:"index;not null" json:"artisanId"`
	Artisan       *Artisan         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	TradeCategory string           `gorm:"size:100;not null" json:"tradeCategory"`
	Questions     json.RawMessage  `gorm:"type:json;not null" json:"questions"`
	Answers       json.RawMessage  `gorm:"type:json" json:"answers,omitempty"`
	AIFeedback    json.RawMessage  `gorm:"type:json" json:"aiFeedback,omitempty"`
	Score         *int             `json:"score,omitempty"`
	Status        AssessmentStatus `gorm:"size:20;default:'pending'" json:"status"`
}

func (Assessment) TableName() string {
	return "assessments"
}
