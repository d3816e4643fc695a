package repository

import "beetguru/entities"

type AuthRepository interface {
	FindUserByEmail(email string) (*entities.User, error)
	FindUserByID(id uint) (*entities.User, error)
	CreateCode(vc *entities.VerificationCode) error
	// FindCode returns the newest unconsumed code for the email.
	FindCode(email string) (*entities.VerificationCode, error)
	UpdateCode(vc *entities.VerificationCode) error
	// DeleteCodes consumes every outstanding code for the email.
	DeleteCodes(email string) error
}
