package repositoryImp

import (
	"gorm.io/gorm"

	"beetguru/entities"
	"beetguru/pkg/location/repository"
)

type locationRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LocationRepository { return &locationRepo{db} }

func (r *locationRepo) Create(l *entities.Location) error { return r.db.Create(l).Error }

func (r *locationRepo) Update(l *entities.Location) error { return r.db.Save(l).Error }

func (r *locationRepo) FindByID(id uint) (*entities.Location, error) {
	var l entities.Location
	if err := r.db.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *locationRepo) ListByUser(userID uint) ([]entities.Location, error) {
	var out []entities.Location
	if err := r.db.Where("user_id = ?", userID).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *locationRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Location{}, id).Error
}

func (r *locationRepo) SetDraftPointer(id uint, assessmentID *uint) error {
	status := entities.LocationStatusNotStarted
	if assessmentID != nil {
		status = entities.LocationStatusDraft
	}
	return r.db.Model(&entities.Location{}).Where("location_id = ?", id).
		Updates(map[string]any{"assessment_id": assessmentID, "status": status}).Error
}

func (r *locationRepo) CountAssessments(locationID uint) (int64, error) {
	var n int64
	err := r.db.Model(&entities.Assessment{}).Where("location_id = ?", locationID).Count(&n).Error
	return n, err
}
