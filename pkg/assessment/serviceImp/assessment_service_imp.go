package serviceImp

import (
	"errors"
	"time"

	"beetguru/entities"
	repo "beetguru/pkg/assessment/repository"
	"beetguru/pkg/assessment/service"
	"beetguru/pkg/assessment/wizard"
	"beetguru/pkg/assessment/yield"
	cultivarrepo "beetguru/pkg/cultivar/repository"
	locationrepo "beetguru/pkg/location/repository"
)

var (
	// ErrDraftExists enforces the one-draft-per-paddock invariant.
	ErrDraftExists = errors.New("Location already has a draft assessment")
	ErrNotDraft    = errors.New("Assessment is not a draft")
)

type reportGenerator interface {
	Generate(a *entities.Assessment, reportType string) (*entities.Report, error)
}

type AssessmentSvc struct {
	repo      repo.AssessmentRepository
	locations locationrepo.LocationRepository
	cultivars cultivarrepo.CultivarRepository
	reports   reportGenerator
}

func New(r repo.AssessmentRepository, lr locationrepo.LocationRepository, cr cultivarrepo.CultivarRepository, rg reportGenerator) *AssessmentSvc {
	return &AssessmentSvc{repo: r, locations: lr, cultivars: cr, reports: rg}
}

// StartDraft opens the wizard on a paddock. A paddock carries at most one
// draft at a time; a second start is a conflict, not a new draft.
func (s *AssessmentSvc) StartDraft(locationID uint) (*entities.Assessment, error) {
	loc, err := s.locations.FindByID(locationID)
	if err != nil {
		return nil, err
	}
	if loc.AssessmentID != nil {
		return nil, ErrDraftExists
	}
	d := wizard.NewDraft(locationID, time.Now())
	a := d.ToAssessment(entities.AssessmentStatusDraft, time.Now())
	if err := s.repo.Create(&a); err != nil {
		return nil, err
	}
	if err := s.locations.SetDraftPointer(locationID, &a.AssessmentID); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AssessmentSvc) loadDraft(id uint) (*entities.Assessment, error) {
	a, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if a.Status != entities.AssessmentStatusDraft {
		return nil, ErrNotDraft
	}
	return a, nil
}

func (s *AssessmentSvc) persistDraft(a *entities.Assessment, d wizard.Draft, children bool) (*entities.Assessment, error) {
	next := d.ToAssessment(entities.AssessmentStatusDraft, a.Date)
	next.AssessmentID = a.AssessmentID
	next.CreatedAt = a.CreatedAt
	if err := s.repo.Update(&next); err != nil {
		return nil, err
	}
	if children {
		if err := s.repo.ReplaceChildren(&next); err != nil {
			return nil, err
		}
	}
	return s.repo.FindByID(a.AssessmentID)
}

func (s *AssessmentSvc) ApplyCropDetails(id uint, values map[string]string) (*entities.Assessment, map[string]string, error) {
	a, err := s.loadDraft(id)
	if err != nil {
		return nil, nil, err
	}
	d := wizard.FromAssessment(a)
	d.Step = wizard.StepCropDetails
	next, fieldErrs := d.ApplyCropDetails(values)
	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}
	out, err := s.persistDraft(a, next, false)
	return out, nil, err
}

func (s *AssessmentSvc) ApplyFieldSetup(id uint, values map[string]string) (*entities.Assessment, map[string]string, error) {
	a, err := s.loadDraft(id)
	if err != nil {
		return nil, nil, err
	}
	d := wizard.FromAssessment(a)
	d.Step = wizard.StepFieldSetup
	next, fieldErrs := d.ApplyFieldSetup(values)
	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}
	out, err := s.persistDraft(a, next, false)
	return out, nil, err
}

func (s *AssessmentSvc) ApplyMeasurements(id uint, counts []wizard.CropCountInput, samples []wizard.SampleAreaInput) (*entities.Assessment, map[string]string, error) {
	a, err := s.loadDraft(id)
	if err != nil {
		return nil, nil, err
	}
	d := wizard.FromAssessment(a)
	next, fieldErrs := d.ApplyMeasurements(counts, samples)
	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}
	out, err := s.persistDraft(a, next, true)
	return out, nil, err
}

func (s *AssessmentSvc) calc(a *entities.Assessment, areaHa float64) yield.Result {
	samples := make([]yield.Sample, 0, len(a.SampleAreas))
	for _, sa := range a.SampleAreas {
		samples = append(samples, yield.Sample{
			SampleLengthM: sa.SampleLengthM,
			WeightKG:      sa.WeightKG,
			DryMatterPct:  sa.DryMatterPct,
		})
	}
	return yield.Estimate(yield.Inputs{
		Samples:     samples,
		RowSpacingM: a.RowSpacingM,
		FieldAreaHa: areaHa,
		HerdSize:    a.StockCount,
	})
}

func (s *AssessmentSvc) GetReview(id uint) (*service.Review, error) {
	a, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	loc, err := s.locations.FindByID(a.LocationID)
	if err != nil {
		return nil, err
	}
	res := s.calc(a, loc.AreaHa)
	d := wizard.FromAssessment(a)
	return &service.Review{
		Assessment:      s.decorate(a),
		MeasurementArea: d.MeasurementAreaDisplay(),
		Result:          res,
		Display:         res.Display(),
	}, nil
}

// Complete finalizes the draft: derived yield figures are written, status
// flips to completed (one-way), the paddock's draft pointer clears, and a
// report is generated off the finished assessment.
func (s *AssessmentSvc) Complete(id uint, reportType string) (*entities.Assessment, *entities.Report, error) {
	a, err := s.loadDraft(id)
	if err != nil {
		return nil, nil, err
	}
	loc, err := s.locations.FindByID(a.LocationID)
	if err != nil {
		return nil, nil, err
	}
	res := s.calc(a, loc.AreaHa)
	if res.Valid {
		a.DryMatterPct = &res.AvgDryMatterPct
		a.YieldTPerHa = &res.YieldTPerHa
		a.TotalYieldT = &res.TotalYieldT
		a.FeedingDays = &res.FeedingDays
	}
	a.Status = entities.AssessmentStatusCompleted
	if err := s.repo.Update(a); err != nil {
		return nil, nil, err
	}
	if err := s.locations.SetDraftPointer(a.LocationID, nil); err != nil {
		return nil, nil, err
	}
	rep, err := s.reports.Generate(a, reportType)
	if err != nil {
		return nil, nil, err
	}
	return a, rep, nil
}

// Discard deletes the draft and releases the paddock.
func (s *AssessmentSvc) Discard(id uint) error {
	a, err := s.loadDraft(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	return s.locations.SetDraftPointer(a.LocationID, nil)
}

func (s *AssessmentSvc) decorate(a *entities.Assessment) service.AssessmentView {
	v := service.AssessmentView{Assessment: *a}
	if loc, err := s.locations.FindByID(a.LocationID); err == nil {
		v.LocationName = loc.Name
	}
	if a.CultivarID != nil {
		if cv, err := s.cultivars.FindByID(*a.CultivarID); err == nil {
			v.CultivarName = cv.Name
		}
	} else if a.CustomCultivarName != "" {
		v.CultivarName = a.CustomCultivarName
	}
	if types, err := s.cultivars.ListCropTypes(); err == nil {
		for _, ct := range types {
			if ct.CropTypeID == a.CropTypeID {
				v.CropTypeName = ct.Name
				break
			}
		}
	}
	return v
}

// Create is the direct (non-wizard) insert path. Like the client API it
// defaults to a completed assessment dated today.
func (s *AssessmentSvc) Create(a *entities.Assessment) (*entities.Assessment, error) {
	if _, err := s.locations.FindByID(a.LocationID); err != nil {
		return nil, err
	}
	if a.Status == "" {
		a.Status = entities.AssessmentStatusCompleted
	}
	if a.Date.IsZero() {
		a.Date = time.Now()
	}
	if err := s.repo.Create(a); err != nil {
		return nil, err
	}
	if a.Status == entities.AssessmentStatusDraft {
		if err := s.locations.SetDraftPointer(a.LocationID, &a.AssessmentID); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (s *AssessmentSvc) Get(id uint) (*service.AssessmentView, error) {
	a, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	v := s.decorate(a)
	return &v, nil
}

// List returns assessments, scoped to the paddocks a user owns when userID
// is non-zero.
func (s *AssessmentSvc) List(status string, userID uint) ([]service.AssessmentView, error) {
	var locIDs []uint
	if userID != 0 {
		ls, err := s.locations.ListByUser(userID)
		if err != nil {
			return nil, err
		}
		locIDs = make([]uint, 0, len(ls))
		for _, l := range ls {
			locIDs = append(locIDs, l.LocationID)
		}
	}
	as, err := s.repo.List(status, locIDs)
	if err != nil {
		return nil, err
	}
	out := make([]service.AssessmentView, 0, len(as))
	for i := range as {
		out = append(out, s.decorate(&as[i]))
	}
	return out, nil
}

func (s *AssessmentSvc) Update(id uint, patch service.AssessmentPatch) (*entities.Assessment, error) {
	a, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if patch.CropTypeID != nil {
		a.CropTypeID = *patch.CropTypeID
	}
	if patch.CultivarID != nil {
		a.CultivarID = patch.CultivarID
	}
	if patch.CustomCultivarName != nil {
		a.CustomCultivarName = *patch.CustomCultivarName
	}
	if patch.WaterType != nil {
		a.WaterType = *patch.WaterType
	}
	if patch.StockType != nil {
		a.StockType = *patch.StockType
	}
	if patch.StockCount != nil {
		a.StockCount = *patch.StockCount
	}
	if patch.RowSpacingM != nil {
		a.RowSpacingM = *patch.RowSpacingM
	}
	if patch.MeasurementLengthM != nil {
		a.MeasurementLengthM = *patch.MeasurementLengthM
	}
	if patch.EstimatedGrowingCost != nil {
		a.EstimatedGrowingCost = *patch.EstimatedGrowingCost
	}
	if err := s.repo.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AssessmentSvc) Delete(id uint) error {
	a, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	if loc, err := s.locations.FindByID(a.LocationID); err == nil {
		if loc.AssessmentID != nil && *loc.AssessmentID == id {
			return s.locations.SetDraftPointer(a.LocationID, nil)
		}
	}
	return nil
}
