package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beetguru/entities"
)

func TestNewDraft_Defaults(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)
	d := NewDraft(7, now)

	assert.Equal(t, StepCropDetails, d.Step)
	assert.Equal(t, uint(7), d.LocationID)
	assert.Equal(t, time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC), d.SowingDate)
	assert.Equal(t, entities.WaterTypeDryland, d.WaterType)
	assert.Equal(t, DefaultGrowingCost, d.EstimatedGrowingCost)
	assert.Equal(t, "estimate", d.ValueType)
}

func TestMeasurementArea_TracksInputs(t *testing.T) {
	d := NewDraft(1, time.Now())
	assert.Equal(t, "2.00", d.MeasurementAreaDisplay()) // 0.5 * 4

	d.MeasurementLengthM = 8
	assert.Equal(t, "4.00", d.MeasurementAreaDisplay())
}

func TestStep_AdvanceAndRetreat(t *testing.T) {
	d := NewDraft(1, time.Now())

	d, ok := d.Advance()
	require.True(t, ok)
	assert.Equal(t, StepFieldSetup, d.Step)
	d, ok = d.Advance()
	require.True(t, ok)
	d, ok = d.Advance()
	require.True(t, ok)
	assert.Equal(t, StepReview, d.Step)

	_, ok = d.Advance()
	assert.False(t, ok)

	d = d.Retreat()
	assert.Equal(t, StepMeasurements, d.Step)
}

func TestStep_BackStopsAtFirst(t *testing.T) {
	d := NewDraft(1, time.Now())
	d = d.Retreat()
	assert.Equal(t, StepCropDetails, d.Step)
}

func TestParseStep(t *testing.T) {
	s, err := ParseStep("field-setup")
	require.NoError(t, err)
	assert.Equal(t, StepFieldSetup, s)

	_, err = ParseStep("bogus")
	assert.Error(t, err)
}

func validCropDetails() map[string]string {
	return map[string]string{
		"crop_type_id":           "1",
		"cultivar_id":            "2",
		"water_type":             "irrigated",
		"sowing_date":            "2025-10-20",
		"assessment_date":        "2026-03-15",
		"estimated_growing_cost": "2500",
	}
}

func TestApplyCropDetails_Valid(t *testing.T) {
	d := NewDraft(1, time.Now())
	out, errs := d.ApplyCropDetails(validCropDetails())

	require.Empty(t, errs)
	assert.Equal(t, StepFieldSetup, out.Step)
	assert.Equal(t, uint(1), out.CropTypeID)
	require.NotNil(t, out.CultivarID)
	assert.Equal(t, uint(2), *out.CultivarID)
	assert.Equal(t, entities.WaterTypeIrrigated, out.WaterType)
}

func TestApplyCropDetails_OtherCultivarRequiresName(t *testing.T) {
	d := NewDraft(1, time.Now())
	v := validCropDetails()
	v["cultivar_id"] = "other"
	v["custom_cultivar_name"] = ""

	out, errs := d.ApplyCropDetails(v)
	assert.Equal(t, d, out) // unchanged on failure
	assert.Contains(t, errs, "custom_cultivar_name")

	v["custom_cultivar_name"] = "Jamon"
	out, errs = d.ApplyCropDetails(v)
	require.Empty(t, errs)
	assert.Nil(t, out.CultivarID)
	assert.Equal(t, "Jamon", out.CustomCultivarName)
}

func TestApplyFieldSetup_RejectsBadGeometry(t *testing.T) {
	d := NewDraft(1, time.Now())
	d.Step = StepFieldSetup

	_, errs := d.ApplyFieldSetup(map[string]string{"row_spacing": "0.05"})
	assert.Contains(t, errs, "row_spacing")

	_, errs = d.ApplyFieldSetup(map[string]string{"measurement_length": "abc"})
	assert.Contains(t, errs, "measurement_length")

	out, errs := d.ApplyFieldSetup(map[string]string{
		"row_spacing":        "0.5",
		"measurement_length": "4",
		"value_type":         "actual",
		"leaf_dry_matter_pct": "12.5",
	})
	require.Empty(t, errs)
	assert.Equal(t, StepMeasurements, out.Step)
	assert.Equal(t, "actual", out.ValueType)
	require.NotNil(t, out.LeafDryMatterPct)
	assert.Equal(t, 12.5, *out.LeafDryMatterPct)
}

func TestApplyFieldSetup_DryMatterBounds(t *testing.T) {
	d := NewDraft(1, time.Now())
	_, errs := d.ApplyFieldSetup(map[string]string{"bulb_dry_matter_pct": "120"})
	assert.Contains(t, errs, "bulb_dry_matter_pct")
}

func TestApplyMeasurements_ParsesKeypadValues(t *testing.T) {
	d := NewDraft(1, time.Now())
	out, errs := d.ApplyMeasurements(
		[]CropCountInput{{Leaf: "2.5", Bulb: "10", Plants: "34"}},
		[]SampleAreaInput{{SampleLength: "2", Weight: "25.4", DryMatter: "14.2", Notes: "east row"}},
	)

	require.Empty(t, errs)
	assert.Equal(t, StepReview, out.Step)
	require.Len(t, out.CropCounts, 1)
	require.NotNil(t, out.CropCounts[0].Plants)
	assert.Equal(t, 34, *out.CropCounts[0].Plants)
	require.Len(t, out.SampleAreas, 1)
	assert.Equal(t, "east row", out.SampleAreas[0].Notes)
	require.NotNil(t, out.SampleAreas[0].WeightKG)
	assert.Equal(t, 25.4, *out.SampleAreas[0].WeightKG)
}

func TestApplyMeasurements_RejectsMalformedNumbers(t *testing.T) {
	d := NewDraft(1, time.Now())
	out, errs := d.ApplyMeasurements(
		[]CropCountInput{{Leaf: "2..5"}},
		[]SampleAreaInput{{Weight: "abc"}},
	)
	assert.Equal(t, d, out)
	assert.Contains(t, errs, "measurements.0.leaf")
	assert.Contains(t, errs, "sample_areas.0.weight")
}

func TestApplyMeasurements_EmptyFieldsAreNotEntered(t *testing.T) {
	d := NewDraft(1, time.Now())
	out, errs := d.ApplyMeasurements(nil, []SampleAreaInput{{SampleLength: "2"}})
	require.Empty(t, errs)
	require.Len(t, out.SampleAreas, 1)
	assert.Nil(t, out.SampleAreas[0].WeightKG)
	assert.Nil(t, out.SampleAreas[0].DryMatterPct)
}

func TestDraftRoundTrip(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	d := NewDraft(3, now)
	d.CropTypeID = 1
	cid := uint(2)
	d.CultivarID = &cid

	a := d.ToAssessment(entities.AssessmentStatusDraft, now)
	assert.Equal(t, entities.AssessmentStatusDraft, a.Status)
	assert.Equal(t, uint(3), a.LocationID)

	back := FromAssessment(&a)
	assert.Equal(t, StepMeasurements, back.Step)
	assert.Equal(t, d.SowingDate, back.SowingDate)
	assert.Equal(t, d.CultivarID, back.CultivarID)
}
