package serviceImp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"beetguru/database"
	"beetguru/entities"
	"beetguru/pkg/advisory"
	assessRepoImp "beetguru/pkg/assessment/repositoryImp"
	cultRepoImp "beetguru/pkg/cultivar/repositoryImp"
	locRepoImp "beetguru/pkg/location/repositoryImp"
	repRepoImp "beetguru/pkg/report/repositoryImp"
)

func f(v float64) *float64 { return &v }

func newTestSvc(t *testing.T) (*ReportSvc, *gorm.DB) {
	t.Helper()
	db := database.OpenSQLite(":memory:")
	svc := New(repRepoImp.New(db), assessRepoImp.New(db), locRepoImp.New(db), cultRepoImp.New(db), advisory.NewMock())
	return svc, db
}

func seedCompleted(t *testing.T, db *gorm.DB, date time.Time) *entities.Assessment {
	t.Helper()
	loc := entities.Location{UserID: 1, Name: "North Paddock", AreaHa: 3.5}
	require.NoError(t, db.Create(&loc).Error)

	ct := entities.CropType{Name: "Fodder Beet"}
	require.NoError(t, db.Create(&ct).Error)
	cv := entities.Cultivar{CropTypeID: ct.CropTypeID, Name: "Brigadier"}
	require.NoError(t, db.Create(&cv).Error)

	a := entities.Assessment{
		LocationID:     loc.LocationID,
		CropTypeID:     ct.CropTypeID,
		CultivarID:     &cv.CultivarID,
		Status:         entities.AssessmentStatusCompleted,
		Date:           date,
		AssessmentDate: date,
		SowingDate:     date.AddDate(0, -5, 0),
		WaterType:      entities.WaterTypeDryland,
		RowSpacingM:    0.5,
		DryMatterPct:   f(14.2),
		YieldTPerHa:    f(360.7),
		TotalYieldT:    f(1262.4),
		SampleAreas: []entities.SampleArea{
			{SampleLengthM: f(2), WeightKG: f(25.4), DryMatterPct: f(14.2), Notes: "east row"},
		},
	}
	require.NoError(t, db.Create(&a).Error)
	return &a
}

func TestSeason(t *testing.T) {
	assert.Equal(t, "2026/2027", Season(time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026/2027", Season(time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025/2026", Season(time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025/2026", Season(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)))
}

func TestGenerate_Basic(t *testing.T) {
	svc, db := newTestSvc(t)
	a := seedCompleted(t, db, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC))

	rep, err := svc.Generate(a, entities.ReportTypeBasic)
	require.NoError(t, err)
	assert.Equal(t, entities.ReportTypeBasic, rep.Type)
	assert.Equal(t, entities.ReportStatusDraft, rep.Status)
	assert.Equal(t, 2, rep.Pages)
	assert.Equal(t, "2025/2026", rep.Season)
	assert.Equal(t, "Brigadier", rep.Cultivar)
	assert.Contains(t, rep.Title, "North Paddock")
	assert.Empty(t, rep.SummaryMD)
	assert.NotZero(t, rep.ReportID)
	assert.NotEmpty(t, rep.ShareID)
}

func TestGenerate_AdvancedCarriesSummary(t *testing.T) {
	svc, db := newTestSvc(t)
	a := seedCompleted(t, db, time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC))

	rep, err := svc.Generate(a, entities.ReportTypeAdvanced)
	require.NoError(t, err)
	assert.Equal(t, 5, rep.Pages)
	assert.Equal(t, "2025/2026", rep.Season)
	assert.Contains(t, rep.SummaryMD, "North Paddock")
	assert.Contains(t, rep.SummaryMD, "360.7 t/ha")
}

func TestGenerateByID_RequiresCompleted(t *testing.T) {
	svc, db := newTestSvc(t)
	loc := entities.Location{UserID: 1, Name: "Back Field", AreaHa: 2}
	require.NoError(t, db.Create(&loc).Error)
	a := entities.Assessment{LocationID: loc.LocationID, Status: entities.AssessmentStatusDraft}
	require.NoError(t, db.Create(&a).Error)

	_, err := svc.GenerateByID(a.AssessmentID, entities.ReportTypeBasic)
	assert.ErrorIs(t, err, ErrNotCompleted)

	_, err = svc.GenerateByID(9999, entities.ReportTypeBasic)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSend_MarksSentWithRecipients(t *testing.T) {
	svc, db := newTestSvc(t)
	a := seedCompleted(t, db, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC))

	rep, err := svc.Generate(a, entities.ReportTypeBasic)
	require.NoError(t, err)

	out, err := svc.Send(rep.ReportID, []string{"sarah@ruralsupplies.co.nz", "john@beetfarm.co.nz"})
	require.NoError(t, err)
	assert.Equal(t, entities.ReportStatusSent, out.Status)
	assert.Equal(t, "sarah@ruralsupplies.co.nz, john@beetfarm.co.nz", out.Recipients)
}

func TestExport_Workbook(t *testing.T) {
	svc, db := newTestSvc(t)
	a := seedCompleted(t, db, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC))
	rep, err := svc.Generate(a, entities.ReportTypeBasic)
	require.NoError(t, err)

	x, err := svc.Export(rep.ReportID)
	require.NoError(t, err)
	defer x.Close()

	assert.Contains(t, x.GetSheetList(), "Summary")
	assert.Contains(t, x.GetSheetList(), "Sample Areas")

	v, err := x.GetCellValue("Summary", "B3")
	require.NoError(t, err)
	assert.Equal(t, "North Paddock", v)

	notes, err := x.GetCellValue("Sample Areas", "E2")
	require.NoError(t, err)
	assert.Equal(t, "east row", notes)
}
