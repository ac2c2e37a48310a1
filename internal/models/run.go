package models

import (
	"time"

	"github.com/google/uuid"
)

type RunStatus string

const (
	RunCompleted RunStatus = "completed"
	RunRejected  RunStatus = "rejected"
	RunCancelled RunStatus = "cancelled"
)

// RunRecord is the optional audit row for a run. It carries counts only.
type RunRecord struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Trigger       Trigger   `gorm:"type:text;not null" json:"trigger"`
	Status        RunStatus `gorm:"type:text;not null" json:"status"`
	DocumentCount int       `gorm:"not null" json:"document_count"`
	ResultCount   int       `gorm:"not null" json:"result_count"`
	FailureCount  int       `gorm:"not null" json:"failure_count"`
	Threshold     *int      `json:"threshold,omitempty"`
	DurationMs    int64     `json:"duration_ms"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (RunRecord) TableName() string {
	return "runs"
}
