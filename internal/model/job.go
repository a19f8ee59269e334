package model

type JobStatus string

const (
	JobOpen      JobStatus = "open"
	JobAssigned  JobStatus = "assigned"
	JobCompleted JobStatus = "completed"
	JobCancelled JobStatus = "cancelled"
)

// swagger:model JobPosting
type JobPosting struct {
	BaseModel
	ClientID          uint           `gorm:"index;not null" json:"clientId"`
	Client            *Client        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	TradeCategoryID   uint           `gorm:"index;not null" json:"tradeCategoryId"`
	TradeCategory     *TradeCategory `json:"tradeCategory,omitempty"`
	Title             string         `gorm:"size:255;not null" json:"title"`
	Description       string         `gorm:"type:text" json:"description"`
	Budget            *float64       `json:"budget,omitempty"`
	Location          string         `gorm:"size:255" json:"location"`
	Status            JobStatus      `gorm:"size:20;default:'open'" json:"status"`
	AssignedArtisanID *uint          `gorm:"index" json:"assignedArtisanId,omitempty"`
	AssignedArtisan   *Artisan       `json:"-"`
}

func (JobPosting) TableName() string {
	return "job_postings"
}
