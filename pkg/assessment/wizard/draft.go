package wizard

import (
	"fmt"
	"time"

	"beetguru/entities"
)

// Draft is the typed assessment-in-progress carried across wizard steps.
// Step appliers return a new Draft instead of mutating, so partial state is
// easy to persist and test.
type Draft struct {
	Step Step

	LocationID         uint
	CropTypeID         uint
	CultivarID         *uint
	CustomCultivarName string
	StockType          string
	StockCount         int
	SowingDate         time.Time
	AssessmentDate     time.Time
	WaterType          string
	EstimatedGrowingCost float64

	RowSpacingM        float64
	MeasurementLengthM float64
	ValueType          string
	LeafDryMatterPct   *float64
	BulbDryMatterPct   *float64

	CropCounts  []entities.CropCount
	SampleAreas []entities.SampleArea
}

const (
	DefaultGrowingCost       = 2500.0
	DefaultRowSpacingM       = 0.5
	DefaultMeasurementLength = 4.0
)

// NewDraft seeds a draft for a paddock with the crop-details defaults:
// sowing date Oct 20 of the prior year, assessment date today, dryland,
// growing cost 2500.
func NewDraft(locationID uint, now time.Time) Draft {
	return Draft{
		Step:                 StepCropDetails,
		LocationID:           locationID,
		SowingDate:           time.Date(now.Year()-1, time.October, 20, 0, 0, 0, 0, now.Location()),
		AssessmentDate:       now.Truncate(24 * time.Hour),
		WaterType:            entities.WaterTypeDryland,
		EstimatedGrowingCost: DefaultGrowingCost,
		RowSpacingM:          DefaultRowSpacingM,
		MeasurementLengthM:   DefaultMeasurementLength,
		ValueType:            "estimate",
	}
}

// MeasurementArea is the derived display value on the field-setup step,
// recomputed from current inputs on every change.
func (d Draft) MeasurementArea() float64 {
	return d.RowSpacingM * d.MeasurementLengthM
}

// MeasurementAreaDisplay renders the area in m2 with two decimals.
func (d Draft) MeasurementAreaDisplay() string {
	return fmt.Sprintf("%.2f", d.MeasurementArea())
}

// Advance moves to the next step; false when Review is reached.
func (d Draft) Advance() (Draft, bool) {
	next, ok := d.Step.Next()
	if !ok {
		return d, false
	}
	d.Step = next
	return d, true
}

// Retreat moves to the previous step.
func (d Draft) Retreat() Draft {
	d.Step = d.Step.Back()
	return d
}

// ToAssessment materializes the draft as a persistable assessment row.
func (d Draft) ToAssessment(status string, now time.Time) entities.Assessment {
	return entities.Assessment{
		LocationID:           d.LocationID,
		CropTypeID:           d.CropTypeID,
		CultivarID:           d.CultivarID,
		CustomCultivarName:   d.CustomCultivarName,
		Status:               status,
		Date:                 now,
		AssessmentDate:       d.AssessmentDate,
		SowingDate:           d.SowingDate,
		WaterType:            d.WaterType,
		StockType:            d.StockType,
		StockCount:           d.StockCount,
		RowSpacingM:          d.RowSpacingM,
		MeasurementLengthM:   d.MeasurementLengthM,
		EstimatedGrowingCost: d.EstimatedGrowingCost,
		ValueType:            d.ValueType,
		LeafDryMatterPct:     d.LeafDryMatterPct,
		BulbDryMatterPct:     d.BulbDryMatterPct,
		SampleAreas:          d.SampleAreas,
		CropCounts:           d.CropCounts,
	}
}

// FromAssessment rebuilds a draft so a saved assessment can resume in the
// wizard at the measurements step.
func FromAssessment(a *entities.Assessment) Draft {
	return Draft{
		Step:                 StepMeasurements,
		LocationID:           a.LocationID,
		CropTypeID:           a.CropTypeID,
		CultivarID:           a.CultivarID,
		CustomCultivarName:   a.CustomCultivarName,
		StockType:            a.StockType,
		StockCount:           a.StockCount,
		SowingDate:           a.SowingDate,
		AssessmentDate:       a.AssessmentDate,
		WaterType:            a.WaterType,
		EstimatedGrowingCost: a.EstimatedGrowingCost,
		RowSpacingM:          a.RowSpacingM,
		MeasurementLengthM:   a.MeasurementLengthM,
		ValueType:            a.ValueType,
		LeafDryMatterPct:     a.LeafDryMatterPct,
		BulbDryMatterPct:     a.BulbDryMatterPct,
		CropCounts:           a.CropCounts,
		SampleAreas:          a.SampleAreas,
	}
}
