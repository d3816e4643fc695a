package repositoryImp

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"beetguru/entities"
)

type CustomerRepo struct{ db *gorm.DB }

func New(db *gorm.DB) *CustomerRepo { return &CustomerRepo{db: db} }

func (r *CustomerRepo) CreateRelationship(rel *entities.CustomerRelationship) error {
	return r.db.Create(rel).Error
}

func (r *CustomerRepo) ListByRetailer(retailerID uint) ([]entities.CustomerRelationship, error) {
	var out []entities.CustomerRelationship
	err := r.db.Where("retailer_id = ?", retailerID).Order("relationship_start desc").Find(&out).Error
	return out, err
}

func (r *CustomerRepo) FindRelationship(retailerID, customerID uint) (*entities.CustomerRelationship, error) {
	var rel entities.CustomerRelationship
	err := r.db.Where("retailer_id = ? AND customer_id = ?", retailerID, customerID).First(&rel).Error
	return &rel, err
}

func (r *CustomerRepo) FindUser(id uint) (*entities.User, error) {
	var u entities.User
	err := r.db.First(&u, id).Error
	return &u, err
}

func (r *CustomerRepo) PaddockCount(customerID uint) (int64, error) {
	var n int64
	err := r.db.Model(&entities.Location{}).Where("user_id = ?", customerID).Count(&n).Error
	return n, err
}

func (r *CustomerRepo) LastAssessmentDate(customerID uint) (*time.Time, error) {
	var a entities.Assessment
	err := r.db.
		Joins("JOIN locations ON locations.location_id = assessments.location_id").
		Where("locations.user_id = ? AND assessments.status = ?", customerID, entities.AssessmentStatusCompleted).
		Order("assessments.assessment_date desc").
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	d := a.AssessmentDate
	return &d, nil
}
