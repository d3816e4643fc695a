package entities

import "time"

// Location is a paddock: a named, measured field area owned by a farmer
// (or created by a retailer on behalf of a customer).
type Location struct {
	LocationID uint    `gorm:"primaryKey" json:"location_id"`
	UserID     uint    `gorm:"index" json:"user_id"`
	CustomerID *uint   `gorm:"index" json:"customer_id,omitempty"`
	Name       string  `json:"name"`
	AreaHa     float64 `json:"area_ha"`
	Status     string  `json:"status"` // draft|not-started
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`

	// AssessmentID points at the single in-progress draft assessment for
	// this paddock, if any. One draft per paddock.
	AssessmentID *uint `gorm:"index" json:"assessment_id,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	LocationStatusDraft      = "draft"
	LocationStatusNotStarted = "not-started"
)
