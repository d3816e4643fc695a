package service

import "beetguru/entities"

// LoginResult carries the signed bearer token alongside the user record.
type LoginResult struct {
	Token string         `json:"token"`
	User  *entities.User `json:"user"`
}

type AuthService interface {
	LoginWithPassword(email, password string) (*LoginResult, error)
	// GenerateVerificationCode invalidates any outstanding code for the
	// email and issues a fresh one. The code itself is returned so the
	// caller can hand it to a delivery channel.
	GenerateVerificationCode(email string) (string, error)
	// VerifyCode consumes the code on success and on terminal failure.
	VerifyCode(email, code string) (*LoginResult, error)
	CheckEmailExists(email string) (bool, error)
	GetUser(id uint) (*entities.User, error)
}
