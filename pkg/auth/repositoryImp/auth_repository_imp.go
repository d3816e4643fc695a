package repositoryImp

import (
	"gorm.io/gorm"

	"beetguru/entities"
)

type AuthRepo struct{ db *gorm.DB }

func New(db *gorm.DB) *AuthRepo { return &AuthRepo{db: db} }

func (r *AuthRepo) FindUserByEmail(email string) (*entities.User, error) {
	var u entities.User
	err := r.db.Where("email = ?", email).First(&u).Error
	return &u, err
}

func (r *AuthRepo) FindUserByID(id uint) (*entities.User, error) {
	var u entities.User
	err := r.db.First(&u, id).Error
	return &u, err
}

func (r *AuthRepo) CreateCode(vc *entities.VerificationCode) error { return r.db.Create(vc).Error }

func (r *AuthRepo) FindCode(email string) (*entities.VerificationCode, error) {
	var vc entities.VerificationCode
	err := r.db.Where("email = ?", email).Order("created_at desc").First(&vc).Error
	return &vc, err
}

func (r *AuthRepo) UpdateCode(vc *entities.VerificationCode) error { return r.db.Save(vc).Error }

func (r *AuthRepo) DeleteCodes(email string) error {
	return r.db.Where("email = ?", email).Delete(&entities.VerificationCode{}).Error
}
