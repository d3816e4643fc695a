package service

import "beetguru/entities"

// LocationWithDraft decorates a paddock with its in-progress draft
// assessment when the caller asked for status.
type LocationWithDraft struct {
	entities.Location
	Draft *entities.Assessment `json:"draft_assessment,omitempty"`
}

type LocationService interface {
	Create(l *entities.Location) (*entities.Location, error)
	Get(id uint) (*entities.Location, error)
	ListForUser(userID uint, withStatus bool) ([]LocationWithDraft, error)
	Update(id uint, patch LocationPatch) (*entities.Location, error)
	Delete(id uint) error
}

// LocationPatch applies only the non-nil fields.
type LocationPatch struct {
	Name      *string  `json:"name"`
	AreaHa    *float64 `json:"area_ha"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}
