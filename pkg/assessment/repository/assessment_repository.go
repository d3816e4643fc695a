package repository

import "beetguru/entities"

type AssessmentRepository interface {
	Create(a *entities.Assessment) error
	Update(a *entities.Assessment) error
	FindByID(id uint) (*entities.Assessment, error)
	List(status string, locationIDs []uint) ([]entities.Assessment, error)
	Delete(id uint) error

	// ReplaceChildren swaps the sample-area and crop-count rows for the
	// assessment in one transaction.
	ReplaceChildren(a *entities.Assessment) error
}
