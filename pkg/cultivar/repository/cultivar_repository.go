package repository

import "beetguru/entities"

type CultivarRepository interface {
	CreateCropType(ct *entities.CropType) error
	ListCropTypes() ([]entities.CropType, error)
	FindCropTypeByName(name string) (*entities.CropType, error)
	Create(cv *entities.Cultivar) error
	BulkInsert(cvs []entities.Cultivar) error
	List(cropTypeID uint) ([]entities.Cultivar, error)
	FindByID(id uint) (*entities.Cultivar, error)
	Count() (int64, error)
}
