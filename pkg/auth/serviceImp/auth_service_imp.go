package serviceImp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"beetguru/entities"
	"beetguru/pkg/auth/repository"
	"beetguru/pkg/auth/service"
)

const (
	codeTTL     = 10 * time.Minute
	maxAttempts = 5
	tokenTTL    = 24 * time.Hour
)

var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrNoCode             = errors.New("No verification code found. Please request a new code.")
	ErrCodeExpired        = errors.New("Verification code has expired. Please request a new code.")
	ErrTooManyAttempts    = errors.New("Too many failed attempts. Please request a new code.")
)

// AttemptsError reports a code mismatch with the attempts the caller has
// left before the code is invalidated.
type AttemptsError struct{ Remaining int }

func (e *AttemptsError) Error() string {
	return fmt.Sprintf("Invalid code. %d attempts remaining.", e.Remaining)
}

type AuthSvc struct {
	repo      repository.AuthRepository
	jwtSecret []byte
}

func New(repo repository.AuthRepository, jwtSecret string) *AuthSvc {
	return &AuthSvc{repo: repo, jwtSecret: []byte(jwtSecret)}
}

func (s *AuthSvc) sign(u *entities.User) (string, error) {
	claims := jwt.MapClaims{
		"uid":          u.UserID,
		"email":        u.Email,
		"account_type": u.AccountType,
		"exp":          time.Now().Add(tokenTTL).Unix(),
		"iat":          time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func (s *AuthSvc) login(u *entities.User) (*service.LoginResult, error) {
	token, err := s.sign(u)
	if err != nil {
		return nil, err
	}
	return &service.LoginResult{Token: token, User: u}, nil
}

func (s *AuthSvc) LoginWithPassword(email, password string) (*service.LoginResult, error) {
	u, err := s.repo.FindUserByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.HasPassword || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.login(u)
}

func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func (s *AuthSvc) GenerateVerificationCode(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := s.repo.FindUserByEmail(email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	// A fresh code always replaces any outstanding one.
	if err := s.repo.DeleteCodes(email); err != nil {
		return "", err
	}
	code, err := randomCode()
	if err != nil {
		return "", err
	}
	vc := &entities.VerificationCode{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(codeTTL),
	}
	if err := s.repo.CreateCode(vc); err != nil {
		return "", err
	}
	return code, nil
}

func (s *AuthSvc) VerifyCode(email, code string) (*service.LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	vc, err := s.repo.FindCode(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoCode
		}
		return nil, err
	}
	if time.Now().After(vc.ExpiresAt) {
		if err := s.repo.DeleteCodes(email); err != nil {
			return nil, err
		}
		return nil, ErrCodeExpired
	}
	if vc.Code != strings.TrimSpace(code) {
		vc.Attempts++
		if vc.Attempts >= maxAttempts {
			if err := s.repo.DeleteCodes(email); err != nil {
				return nil, err
			}
			return nil, ErrTooManyAttempts
		}
		if err := s.repo.UpdateCode(vc); err != nil {
			return nil, err
		}
		return nil, &AttemptsError{Remaining: maxAttempts - vc.Attempts}
	}
	// Single use: consume on success.
	if err := s.repo.DeleteCodes(email); err != nil {
		return nil, err
	}
	u, err := s.repo.FindUserByEmail(email)
	if err != nil {
		return nil, err
	}
	return s.login(u)
}

func (s *AuthSvc) CheckEmailExists(email string) (bool, error) {
	_, err := s.repo.FindUserByEmail(strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *AuthSvc) GetUser(id uint) (*entities.User, error) { return s.repo.FindUserByID(id) }
