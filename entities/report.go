package entities

import "time"

// Report is a shareable summary derived from exactly one completed assessment.
type Report struct {
	ReportID     uint   `gorm:"primaryKey" json:"report_id"`
	AssessmentID uint   `gorm:"index" json:"assessment_id"`
	ShareID      string `gorm:"uniqueIndex" json:"share_id"`
	Title        string `json:"title"`
	Type         string `json:"type"`   // basic|advanced
	Status       string `json:"status"` // draft|sent
	Pages        int    `json:"pages"`
	Recipients   string `json:"recipients,omitempty"`
	Cultivar     string `json:"cultivar,omitempty"`

	// Season is derived from the assessment date: month > 6 means the
	// "2025/2026" style southern-hemisphere growing season.
	Season string `json:"season"`

	// SummaryMD holds the advisory write-up on advanced reports.
	SummaryMD string `json:"summary_md,omitempty"`

	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time
}

const (
	ReportTypeBasic    = "basic"
	ReportTypeAdvanced = "advanced"

	ReportStatusDraft = "draft"
	ReportStatusSent  = "sent"
)
