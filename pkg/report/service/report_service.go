package service

import (
	"github.com/xuri/excelize/v2"

	"beetguru/entities"
)

type ReportService interface {
	// Generate builds a report off an already-loaded completed assessment.
	Generate(a *entities.Assessment, reportType string) (*entities.Report, error)
	// GenerateByID is the standalone endpoint variant.
	GenerateByID(assessmentID uint, reportType string) (*entities.Report, error)
	List() ([]entities.Report, error)
	ListForAssessment(assessmentID uint) ([]entities.Report, error)
	Get(id uint) (*entities.Report, error)
	Send(id uint, recipients []string) (*entities.Report, error)
	Export(id uint) (*excelize.File, error)
}
