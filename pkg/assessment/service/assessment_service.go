package service

import (
	"beetguru/entities"
	"beetguru/pkg/assessment/wizard"
	"beetguru/pkg/assessment/yield"
)

// AssessmentView joins in the names the list and detail screens show.
type AssessmentView struct {
	entities.Assessment
	LocationName string `json:"location_name,omitempty"`
	CropTypeName string `json:"crop_type_name,omitempty"`
	CultivarName string `json:"cultivar_name,omitempty"`
}

// Review is the read-only summary the last wizard step renders.
type Review struct {
	Assessment      AssessmentView `json:"assessment"`
	MeasurementArea string         `json:"measurement_area_m2"`
	Result          yield.Result   `json:"result"`
	Display         yield.Display  `json:"display"`
}

// AssessmentPatch applies only the non-nil fields.
type AssessmentPatch struct {
	CropTypeID           *uint    `json:"crop_type_id"`
	CultivarID           *uint    `json:"cultivar_id"`
	CustomCultivarName   *string  `json:"custom_cultivar_name"`
	WaterType            *string  `json:"water_type"`
	StockType            *string  `json:"stock_type"`
	StockCount           *int     `json:"stock_count"`
	RowSpacingM          *float64 `json:"row_spacing_m"`
	MeasurementLengthM   *float64 `json:"measurement_length_m"`
	EstimatedGrowingCost *float64 `json:"estimated_growing_cost"`
}

type AssessmentService interface {
	// Wizard lifecycle.
	StartDraft(locationID uint) (*entities.Assessment, error)
	ApplyCropDetails(id uint, values map[string]string) (*entities.Assessment, map[string]string, error)
	ApplyFieldSetup(id uint, values map[string]string) (*entities.Assessment, map[string]string, error)
	ApplyMeasurements(id uint, counts []wizard.CropCountInput, samples []wizard.SampleAreaInput) (*entities.Assessment, map[string]string, error)
	GetReview(id uint) (*Review, error)
	Complete(id uint, reportType string) (*entities.Assessment, *entities.Report, error)
	Discard(id uint) error

	// Plain CRUD outside the wizard.
	Create(a *entities.Assessment) (*entities.Assessment, error)
	Get(id uint) (*AssessmentView, error)
	List(status string, userID uint) ([]AssessmentView, error)
	Update(id uint, patch AssessmentPatch) (*entities.Assessment, error)
	Delete(id uint) error
}
