package repositoryImp

import (
	"gorm.io/gorm"

	"beetguru/entities"
	"beetguru/pkg/report/repository"
)

type reportRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ReportRepository { return &reportRepo{db} }

func (r *reportRepo) Create(rep *entities.Report) error { return r.db.Create(rep).Error }

func (r *reportRepo) Update(rep *entities.Report) error { return r.db.Save(rep).Error }

func (r *reportRepo) FindByID(id uint) (*entities.Report, error) {
	var rep entities.Report
	if err := r.db.First(&rep, id).Error; err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *reportRepo) List() ([]entities.Report, error) {
	var out []entities.Report
	return out, r.db.Order("created_at DESC, report_id DESC").Find(&out).Error
}

func (r *reportRepo) ListByAssessments(assessmentIDs []uint) ([]entities.Report, error) {
	if len(assessmentIDs) == 0 {
		return nil, nil
	}
	var out []entities.Report
	return out, r.db.Where("assessment_id IN ?", assessmentIDs).Order("created_at DESC").Find(&out).Error
}
