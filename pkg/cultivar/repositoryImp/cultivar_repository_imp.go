package repositoryImp

import (
	"gorm.io/gorm"

	"beetguru/entities"
	"beetguru/pkg/cultivar/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CultivarRepository { return &repo{db} }

func (r *repo) CreateCropType(ct *entities.CropType) error { return r.db.Create(ct).Error }

func (r *repo) ListCropTypes() ([]entities.CropType, error) {
	var out []entities.CropType
	return out, r.db.Order("crop_type_id ASC").Find(&out).Error
}

func (r *repo) FindCropTypeByName(name string) (*entities.CropType, error) {
	var ct entities.CropType
	if err := r.db.Where("name = ?", name).First(&ct).Error; err != nil {
		return nil, err
	}
	return &ct, nil
}

func (r *repo) Create(cv *entities.Cultivar) error { return r.db.Create(cv).Error }

func (r *repo) BulkInsert(cvs []entities.Cultivar) error { return r.db.Create(&cvs).Error }

func (r *repo) List(cropTypeID uint) ([]entities.Cultivar, error) {
	q := r.db.Order("name ASC")
	if cropTypeID != 0 {
		q = q.Where("crop_type_id = ?", cropTypeID)
	}
	var out []entities.Cultivar
	return out, q.Find(&out).Error
}

func (r *repo) FindByID(id uint) (*entities.Cultivar, error) {
	var cv entities.Cultivar
	if err := r.db.First(&cv, id).Error; err != nil {
		return nil, err
	}
	return &cv, nil
}

func (r *repo) Count() (int64, error) {
	var n int64
	return n, r.db.Model(&entities.Cultivar{}).Count(&n).Error
}
