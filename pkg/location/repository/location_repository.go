package repository

import "beetguru/entities"

type LocationRepository interface {
	Create(l *entities.Location) error
	Update(l *entities.Location) error
	FindByID(id uint) (*entities.Location, error)
	ListByUser(userID uint) ([]entities.Location, error)
	Delete(id uint) error
	SetDraftPointer(id uint, assessmentID *uint) error
	CountAssessments(locationID uint) (int64, error)
}
