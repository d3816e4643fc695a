package serviceImp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"beetguru/entities"
	"beetguru/pkg/advisory"
	assessrepo "beetguru/pkg/assessment/repository"
	"beetguru/pkg/assessment/yield"
	cultivarrepo "beetguru/pkg/cultivar/repository"
	locationrepo "beetguru/pkg/location/repository"
	repo "beetguru/pkg/report/repository"
)

var ErrNotCompleted = errors.New("Report requires a completed assessment")

type ReportSvc struct {
	repo        repo.ReportRepository
	assessments assessrepo.AssessmentRepository
	locations   locationrepo.LocationRepository
	cultivars   cultivarrepo.CultivarRepository
	advisor     advisory.Client
}

func New(r repo.ReportRepository, ar assessrepo.AssessmentRepository, lr locationrepo.LocationRepository, cr cultivarrepo.CultivarRepository, adv advisory.Client) *ReportSvc {
	return &ReportSvc{repo: r, assessments: ar, locations: lr, cultivars: cr, advisor: adv}
}

// Season derives the growing season label from the assessment date:
// July onwards belongs to the season that ends next year.
func Season(date time.Time) string {
	y := date.Year()
	if int(date.Month()) > 6 {
		return fmt.Sprintf("%d/%d", y, y+1)
	}
	return fmt.Sprintf("%d/%d", y-1, y)
}

func (s *ReportSvc) cultivarName(a *entities.Assessment) string {
	if a.CultivarID != nil {
		if cv, err := s.cultivars.FindByID(*a.CultivarID); err == nil {
			return cv.Name
		}
	}
	return a.CustomCultivarName
}

func (s *ReportSvc) Generate(a *entities.Assessment, reportType string) (*entities.Report, error) {
	if a.Status != entities.AssessmentStatusCompleted {
		return nil, ErrNotCompleted
	}
	if reportType != entities.ReportTypeAdvanced {
		reportType = entities.ReportTypeBasic
	}
	loc, err := s.locations.FindByID(a.LocationID)
	if err != nil {
		return nil, err
	}

	rep := &entities.Report{
		AssessmentID: a.AssessmentID,
		ShareID:      uuid.NewString(),
		Title:        fmt.Sprintf("%s Assessment %s", loc.Name, a.AssessmentDate.Format("2 Jan 2006")),
		Type:         reportType,
		Status:       entities.ReportStatusDraft,
		Pages:        2,
		Cultivar:     s.cultivarName(a),
		Season:       Season(a.Date),
	}
	if reportType == entities.ReportTypeAdvanced {
		rep.Pages = 5
		if s.advisor != nil {
			rep.SummaryMD = s.advisor.SummarizeAssessment(a, loc, displayFor(a))
		}
	}
	if err := s.repo.Create(rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *ReportSvc) GenerateByID(assessmentID uint, reportType string) (*entities.Report, error) {
	a, err := s.assessments.FindByID(assessmentID)
	if err != nil {
		return nil, err
	}
	return s.Generate(a, reportType)
}

func (s *ReportSvc) List() ([]entities.Report, error) { return s.repo.List() }

func (s *ReportSvc) ListForAssessment(assessmentID uint) ([]entities.Report, error) {
	return s.repo.ListByAssessments([]uint{assessmentID})
}

func (s *ReportSvc) Get(id uint) (*entities.Report, error) { return s.repo.FindByID(id) }

func (s *ReportSvc) Send(id uint, recipients []string) (*entities.Report, error) {
	rep, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	rep.Recipients = strings.Join(recipients, ", ")
	rep.Status = entities.ReportStatusSent
	if err := s.repo.Update(rep); err != nil {
		return nil, err
	}
	return rep, nil
}

// displayFor recomputes the display strings from the persisted derived
// figures so the report does not depend on re-running the calculation.
func displayFor(a *entities.Assessment) yield.Display {
	d := yield.Display{Yield: yield.NA, TotalYield: yield.NA, FeedingDays: yield.NA, DryMatter: yield.NA}
	if a.YieldTPerHa != nil {
		d.Yield = fmt.Sprintf("%.1f t/ha", *a.YieldTPerHa)
	}
	if a.TotalYieldT != nil {
		d.TotalYield = fmt.Sprintf("%.1f tonnes", *a.TotalYieldT)
	}
	if a.FeedingDays != nil {
		d.FeedingDays = fmt.Sprintf("%d days", *a.FeedingDays)
	}
	if a.DryMatterPct != nil {
		d.DryMatter = fmt.Sprintf("%.1f%%", *a.DryMatterPct)
	}
	return d
}

// Export renders the report as a workbook: a summary sheet plus the raw
// sample areas.
func (s *ReportSvc) Export(id uint) (*excelize.File, error) {
	rep, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	a, err := s.assessments.FindByID(rep.AssessmentID)
	if err != nil {
		return nil, err
	}
	loc, err := s.locations.FindByID(a.LocationID)
	if err != nil {
		return nil, err
	}
	d := displayFor(a)

	x := excelize.NewFile()
	const summary = "Summary"
	if err := x.SetSheetName("Sheet1", summary); err != nil {
		return nil, err
	}
	rows := [][]any{
		{"Report", rep.Title},
		{"Season", rep.Season},
		{"Paddock", loc.Name},
		{"Area (ha)", loc.AreaHa},
		{"Cultivar", rep.Cultivar},
		{"Water type", a.WaterType},
		{"Sowing date", a.SowingDate.Format("2006-01-02")},
		{"Assessment date", a.AssessmentDate.Format("2006-01-02")},
		{"Estimated yield", d.Yield},
		{"Total yield", d.TotalYield},
		{"Feeding capacity", d.FeedingDays},
		{"Dry matter", d.DryMatter},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := x.SetSheetRow(summary, cell, &row); err != nil {
			return nil, err
		}
	}

	const samples = "Sample Areas"
	if _, err := x.NewSheet(samples); err != nil {
		return nil, err
	}
	head := []any{"Sample", "Length (m)", "Weight (kg)", "Dry matter (%)", "Notes"}
	if err := x.SetSheetRow(samples, "A1", &head); err != nil {
		return nil, err
	}
	for i, sa := range a.SampleAreas {
		row := []any{i + 1, deref(sa.SampleLengthM), deref(sa.WeightKG), deref(sa.DryMatterPct), sa.Notes}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := x.SetSheetRow(samples, cell, &row); err != nil {
			return nil, err
		}
	}
	return x, nil
}

func deref(f *float64) any {
	if f == nil {
		return ""
	}
	return *f
}
