package entities

import "time"

// Assessment is one dry-matter sampling session for a paddock. It is created
// as a draft when the wizard starts and mutated at every step; completion is
// one-way (draft -> completed, never back).
type Assessment struct {
	AssessmentID       uint   `gorm:"primaryKey" json:"assessment_id"`
	LocationID         uint   `gorm:"index" json:"location_id"`
	CropTypeID         uint   `json:"crop_type_id"`
	CultivarID         *uint  `json:"cultivar_id,omitempty"`
	CustomCultivarName string `json:"custom_cultivar_name,omitempty"`
	Status             string `gorm:"index" json:"status"` // draft|completed

	Date           time.Time `json:"date"`
	AssessmentDate time.Time `json:"assessment_date"`
	SowingDate     time.Time `json:"sowing_date"`

	WaterType  string `json:"water_type"` // irrigated|dryland
	StockType  string `json:"stock_type"`
	StockCount int    `json:"stock_count"`

	RowSpacingM          float64 `json:"row_spacing_m"`
	MeasurementLengthM   float64 `json:"measurement_length_m"`
	EstimatedGrowingCost float64 `json:"estimated_growing_cost"`

	// Field-setup dry matter percentages; ValueType says whether they are
	// the farmer's estimate or lab-measured actuals.
	ValueType        string   `json:"value_type"` // estimate|actual
	LeafDryMatterPct *float64 `json:"leaf_dry_matter_pct,omitempty"`
	BulbDryMatterPct *float64 `json:"bulb_dry_matter_pct,omitempty"`

	// Derived at review time.
	DryMatterPct    *float64 `json:"dry_matter_pct,omitempty"`
	YieldTPerHa     *float64 `json:"estimated_yield_t_ha,omitempty"`
	TotalYieldT     *float64 `json:"total_yield_t,omitempty"`
	FeedingDays     *int     `json:"feeding_capacity_days,omitempty"`

	SampleAreas []SampleArea `gorm:"foreignKey:AssessmentID" json:"sample_areas,omitempty"`
	CropCounts  []CropCount  `gorm:"foreignKey:AssessmentID" json:"measurements,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SampleArea is one cut-and-weighed row sample.
type SampleArea struct {
	SampleID      uint     `gorm:"primaryKey" json:"sample_id"`
	AssessmentID  uint     `gorm:"index" json:"assessment_id"`
	SampleLengthM *float64 `json:"sample_length_m,omitempty"`
	WeightKG      *float64 `json:"weight_kg,omitempty"`
	DryMatterPct  *float64 `json:"dry_matter_pct,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	CreatedAt     time.Time
}

// CropCount is one leaf/bulb/plant-count row from the measurements step.
type CropCount struct {
	CountID      uint     `gorm:"primaryKey" json:"count_id"`
	AssessmentID uint     `gorm:"index" json:"assessment_id"`
	LeafKG       *float64 `json:"leaf,omitempty"`
	BulbKG       *float64 `json:"bulb,omitempty"`
	Plants       *int     `json:"plants,omitempty"`
	CreatedAt    time.Time
}

const (
	AssessmentStatusDraft     = "draft"
	AssessmentStatusCompleted = "completed"

	WaterTypeIrrigated = "irrigated"
	WaterTypeDryland   = "dryland"
)
