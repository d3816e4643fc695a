package repositoryImp

import (
	"gorm.io/gorm"

	"beetguru/entities"
	"beetguru/pkg/assessment/repository"
)

type assessmentRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AssessmentRepository { return &assessmentRepo{db} }

func (r *assessmentRepo) Create(a *entities.Assessment) error { return r.db.Create(a).Error }

func (r *assessmentRepo) Update(a *entities.Assessment) error {
	return r.db.Omit("SampleAreas", "CropCounts").Save(a).Error
}

func (r *assessmentRepo) FindByID(id uint) (*entities.Assessment, error) {
	var a entities.Assessment
	if err := r.db.Preload("SampleAreas").Preload("CropCounts").First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assessmentRepo) List(status string, locationIDs []uint) ([]entities.Assessment, error) {
	q := r.db.Preload("SampleAreas").Preload("CropCounts").Order("date DESC, assessment_id DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if locationIDs != nil {
		q = q.Where("location_id IN ?", locationIDs)
	}
	var out []entities.Assessment
	return out, q.Find(&out).Error
}

func (r *assessmentRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assessment_id = ?", id).Delete(&entities.SampleArea{}).Error; err != nil {
			return err
		}
		if err := tx.Where("assessment_id = ?", id).Delete(&entities.CropCount{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Assessment{}, id).Error
	})
}

func (r *assessmentRepo) ReplaceChildren(a *entities.Assessment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assessment_id = ?", a.AssessmentID).Delete(&entities.SampleArea{}).Error; err != nil {
			return err
		}
		if err := tx.Where("assessment_id = ?", a.AssessmentID).Delete(&entities.CropCount{}).Error; err != nil {
			return err
		}
		for i := range a.SampleAreas {
			a.SampleAreas[i].SampleID = 0
			a.SampleAreas[i].AssessmentID = a.AssessmentID
		}
		for i := range a.CropCounts {
			a.CropCounts[i].CountID = 0
			a.CropCounts[i].AssessmentID = a.AssessmentID
		}
		if len(a.SampleAreas) > 0 {
			if err := tx.Create(&a.SampleAreas).Error; err != nil {
				return err
			}
		}
		if len(a.CropCounts) > 0 {
			if err := tx.Create(&a.CropCounts).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
