package repository

import "beetguru/entities"

type ReportRepository interface {
	Create(r *entities.Report) error
	Update(r *entities.Report) error
	FindByID(id uint) (*entities.Report, error)
	List() ([]entities.Report, error)
	ListByAssessments(assessmentIDs []uint) ([]entities.Report, error)
}
