package repository

import (
	"time"

	"beetguru/entities"
)

type CustomerRepository interface {
	CreateRelationship(r *entities.CustomerRelationship) error
	ListByRetailer(retailerID uint) ([]entities.CustomerRelationship, error)
	FindRelationship(retailerID, customerID uint) (*entities.CustomerRelationship, error)
	FindUser(id uint) (*entities.User, error)
	// PaddockCount is the number of locations the customer owns.
	PaddockCount(customerID uint) (int64, error)
	// LastAssessmentDate is nil when the customer has no completed assessments.
	LastAssessmentDate(customerID uint) (*time.Time, error)
}
