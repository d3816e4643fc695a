package serviceImp

import (
	"errors"

	"beetguru/entities"
	repo "beetguru/pkg/location/repository"
	"beetguru/pkg/location/service"
)

// ErrLocationInUse carries the exact message the clients display.
var ErrLocationInUse = errors.New("Cannot delete location that is used in assessments")

type draftFinder interface {
	FindByID(id uint) (*entities.Assessment, error)
}

type locationSvc struct {
	r      repo.LocationRepository
	drafts draftFinder
}

func New(r repo.LocationRepository, drafts draftFinder) service.LocationService {
	return &locationSvc{r: r, drafts: drafts}
}

func (s *locationSvc) Create(l *entities.Location) (*entities.Location, error) {
	if l.Status == "" {
		l.Status = entities.LocationStatusNotStarted
	}
	if err := s.r.Create(l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *locationSvc) Get(id uint) (*entities.Location, error) {
	return s.r.FindByID(id)
}

func (s *locationSvc) ListForUser(userID uint, withStatus bool) ([]service.LocationWithDraft, error) {
	ls, err := s.r.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]service.LocationWithDraft, 0, len(ls))
	for _, l := range ls {
		item := service.LocationWithDraft{Location: l}
		if withStatus && l.AssessmentID != nil && s.drafts != nil {
			if a, err := s.drafts.FindByID(*l.AssessmentID); err == nil {
				item.Draft = a
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *locationSvc) Update(id uint, patch service.LocationPatch) (*entities.Location, error) {
	l, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		l.Name = *patch.Name
	}
	if patch.AreaHa != nil {
		l.AreaHa = *patch.AreaHa
	}
	if patch.Latitude != nil {
		l.Latitude = patch.Latitude
	}
	if patch.Longitude != nil {
		l.Longitude = patch.Longitude
	}
	if err := s.r.Update(l); err != nil {
		return nil, err
	}
	return l, nil
}

// Delete refuses to remove a paddock any assessment still references.
func (s *locationSvc) Delete(id uint) error {
	if _, err := s.r.FindByID(id); err != nil {
		return err
	}
	n, err := s.r.CountAssessments(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrLocationInUse
	}
	return s.r.Delete(id)
}
