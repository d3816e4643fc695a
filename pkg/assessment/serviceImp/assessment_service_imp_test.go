package serviceImp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beetguru/database"
	"beetguru/entities"
	assessRepoImp "beetguru/pkg/assessment/repositoryImp"
	"beetguru/pkg/assessment/wizard"
	cultRepoImp "beetguru/pkg/cultivar/repositoryImp"
	locRepoImp "beetguru/pkg/location/repositoryImp"
)

type stubReports struct{ generated []*entities.Assessment }

func (s *stubReports) Generate(a *entities.Assessment, reportType string) (*entities.Report, error) {
	s.generated = append(s.generated, a)
	return &entities.Report{AssessmentID: a.AssessmentID, Type: reportType}, nil
}

func newTestSvc(t *testing.T) (*AssessmentSvc, *stubReports, uint) {
	t.Helper()
	db := database.OpenSQLite(":memory:")

	loc := entities.Location{UserID: 1, Name: "North Paddock", AreaHa: 3.5, Status: entities.LocationStatusNotStarted}
	require.NoError(t, db.Create(&loc).Error)

	reports := &stubReports{}
	svc := New(assessRepoImp.New(db), locRepoImp.New(db), cultRepoImp.New(db), reports)
	return svc, reports, loc.LocationID
}

func TestStartDraft_OnePerPaddock(t *testing.T) {
	svc, _, locID := newTestSvc(t)

	a, err := svc.StartDraft(locID)
	require.NoError(t, err)
	assert.Equal(t, entities.AssessmentStatusDraft, a.Status)

	loc, err := svc.locations.FindByID(locID)
	require.NoError(t, err)
	require.NotNil(t, loc.AssessmentID)
	assert.Equal(t, a.AssessmentID, *loc.AssessmentID)
	assert.Equal(t, entities.LocationStatusDraft, loc.Status)

	_, err = svc.StartDraft(locID)
	assert.ErrorIs(t, err, ErrDraftExists)
}

func TestApplySteps_PersistAcrossLoads(t *testing.T) {
	svc, _, locID := newTestSvc(t)
	a, err := svc.StartDraft(locID)
	require.NoError(t, err)

	_, fieldErrs, err := svc.ApplyCropDetails(a.AssessmentID, map[string]string{
		"crop_type_id":           "1",
		"cultivar_id":            "other",
		"custom_cultivar_name":   "Jamon",
		"water_type":             "irrigated",
		"sowing_date":            "2025-10-20",
		"assessment_date":        "2026-03-15",
		"estimated_growing_cost": "2500",
	})
	require.NoError(t, err)
	require.Empty(t, fieldErrs)

	out, fieldErrs, err := svc.ApplyFieldSetup(a.AssessmentID, map[string]string{
		"row_spacing":        "0.5",
		"measurement_length": "4",
		"value_type":         "estimate",
	})
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	assert.Equal(t, "Jamon", out.CustomCultivarName)
	assert.Equal(t, entities.WaterTypeIrrigated, out.WaterType)
	assert.Equal(t, 0.5, out.RowSpacingM)
}

func TestApplyCropDetails_ValidationDoesNotPersist(t *testing.T) {
	svc, _, locID := newTestSvc(t)
	a, err := svc.StartDraft(locID)
	require.NoError(t, err)

	_, fieldErrs, err := svc.ApplyCropDetails(a.AssessmentID, map[string]string{
		"crop_type_id": "0",
	})
	require.NoError(t, err)
	assert.Contains(t, fieldErrs, "crop_type_id")

	reloaded, err := svc.repo.FindByID(a.AssessmentID)
	require.NoError(t, err)
	assert.Zero(t, reloaded.CropTypeID)
}

func completeDraft(t *testing.T, svc *AssessmentSvc, id uint) {
	t.Helper()
	_, fieldErrs, err := svc.ApplyMeasurements(id, nil, []wizard.SampleAreaInput{
		{SampleLength: "2", Weight: "25.4", DryMatter: "14.2"},
		{SampleLength: "2", Weight: "25.4", DryMatter: "14.2"},
	})
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
}

func TestComplete_WritesDerivedFiguresAndClearsPointer(t *testing.T) {
	svc, reports, locID := newTestSvc(t)
	a, err := svc.StartDraft(locID)
	require.NoError(t, err)
	completeDraft(t, svc, a.AssessmentID)

	done, rep, err := svc.Complete(a.AssessmentID, entities.ReportTypeBasic)
	require.NoError(t, err)
	assert.Equal(t, entities.AssessmentStatusCompleted, done.Status)
	require.NotNil(t, done.YieldTPerHa)
	assert.InDelta(t, 360.68, *done.YieldTPerHa, 0.01)
	require.NotNil(t, done.TotalYieldT)
	assert.InDelta(t, 1262.38, *done.TotalYieldT, 0.01)
	require.NotNil(t, rep)
	assert.Len(t, reports.generated, 1)

	loc, err := svc.locations.FindByID(locID)
	require.NoError(t, err)
	assert.Nil(t, loc.AssessmentID)
	assert.Equal(t, entities.LocationStatusNotStarted, loc.Status)

	// Completion is one-way; wizard endpoints refuse the assessment now.
	_, _, err = svc.Complete(a.AssessmentID, entities.ReportTypeBasic)
	assert.ErrorIs(t, err, ErrNotDraft)
	_, _, err = svc.ApplyFieldSetup(a.AssessmentID, nil)
	assert.ErrorIs(t, err, ErrNotDraft)
}

func TestGetReview_DisplaysNAWithoutSamples(t *testing.T) {
	svc, _, locID := newTestSvc(t)
	a, err := svc.StartDraft(locID)
	require.NoError(t, err)

	rev, err := svc.GetReview(a.AssessmentID)
	require.NoError(t, err)
	assert.False(t, rev.Result.Valid)
	assert.Equal(t, "N/A", rev.Display.Yield)
	assert.Equal(t, "2.00", rev.MeasurementArea)
}

func TestDiscard_ReleasesPaddock(t *testing.T) {
	svc, _, locID := newTestSvc(t)
	a, err := svc.StartDraft(locID)
	require.NoError(t, err)

	require.NoError(t, svc.Discard(a.AssessmentID))

	loc, err := svc.locations.FindByID(locID)
	require.NoError(t, err)
	assert.Nil(t, loc.AssessmentID)

	_, err = svc.repo.FindByID(a.AssessmentID)
	assert.Error(t, err)

	// Paddock is free for a new draft again.
	_, err = svc.StartDraft(locID)
	assert.NoError(t, err)
}

func TestApplyMeasurements_ReplacesChildRows(t *testing.T) {
	svc, _, locID := newTestSvc(t)
	a, err := svc.StartDraft(locID)
	require.NoError(t, err)

	completeDraft(t, svc, a.AssessmentID)
	out, fieldErrs, err := svc.ApplyMeasurements(a.AssessmentID, nil, []wizard.SampleAreaInput{
		{SampleLength: "1", Weight: "10", DryMatter: "12"},
	})
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	assert.Len(t, out.SampleAreas, 1)
}
