package serviceImp

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"beetguru/database"
	"beetguru/entities"
	authRepoImp "beetguru/pkg/auth/repositoryImp"
)

func newTestSvc(t *testing.T) (*AuthSvc, *gorm.DB) {
	t.Helper()
	db := database.OpenSQLite(":memory:")

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entities.User{
		Name:         "John Wilson",
		Email:        "john@beetfarm.co.nz",
		PasswordHash: string(hash),
		HasPassword:  true,
		AccountType:  entities.AccountTypeFarmer,
	}).Error)

	return New(authRepoImp.New(db), "test-secret"), db
}

func TestLoginWithPassword(t *testing.T) {
	svc, _ := newTestSvc(t)

	out, err := svc.LoginWithPassword("john@beetfarm.co.nz", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "John Wilson", out.User.Name)

	// Email matching is case and whitespace tolerant.
	_, err = svc.LoginWithPassword("  John@beetfarm.co.nz ", "password123")
	assert.NoError(t, err)
}

func TestLoginWithPassword_InvalidCredentials(t *testing.T) {
	svc, _ := newTestSvc(t)

	_, err := svc.LoginWithPassword("john@beetfarm.co.nz", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.EqualError(t, err, "Invalid credentials")

	// Unknown email gets the same error, not a not-found leak.
	_, err = svc.LoginWithPassword("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyCode_SingleUse(t *testing.T) {
	svc, _ := newTestSvc(t)

	code, err := svc.GenerateVerificationCode("john@beetfarm.co.nz")
	require.NoError(t, err)
	require.Len(t, code, 6)

	out, err := svc.VerifyCode("john@beetfarm.co.nz", code)
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)

	// The code is consumed on success.
	_, err = svc.VerifyCode("john@beetfarm.co.nz", code)
	assert.ErrorIs(t, err, ErrNoCode)
}

func TestVerifyCode_AttemptsExhaustion(t *testing.T) {
	svc, _ := newTestSvc(t)

	code, err := svc.GenerateVerificationCode("john@beetfarm.co.nz")
	require.NoError(t, err)

	for want := 4; want >= 1; want-- {
		_, err = svc.VerifyCode("john@beetfarm.co.nz", "000000")
		var attempts *AttemptsError
		require.ErrorAs(t, err, &attempts)
		assert.Equal(t, want, attempts.Remaining)
		assert.EqualError(t, err, fmt.Sprintf("Invalid code. %d attempts remaining.", want))
	}

	// Fifth failure is terminal and invalidates the code.
	_, err = svc.VerifyCode("john@beetfarm.co.nz", "000000")
	require.ErrorIs(t, err, ErrTooManyAttempts)

	_, err = svc.VerifyCode("john@beetfarm.co.nz", code)
	assert.ErrorIs(t, err, ErrNoCode)
}

func TestVerifyCode_Expiry(t *testing.T) {
	svc, db := newTestSvc(t)

	code, err := svc.GenerateVerificationCode("john@beetfarm.co.nz")
	require.NoError(t, err)

	require.NoError(t, db.Model(&entities.VerificationCode{}).
		Where("email = ?", "john@beetfarm.co.nz").
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	_, err = svc.VerifyCode("john@beetfarm.co.nz", code)
	require.ErrorIs(t, err, ErrCodeExpired)

	// Expired codes are removed, not retried.
	_, err = svc.VerifyCode("john@beetfarm.co.nz", code)
	assert.ErrorIs(t, err, ErrNoCode)
}

func TestGenerateVerificationCode_ReplacesOutstanding(t *testing.T) {
	svc, _ := newTestSvc(t)

	first, err := svc.GenerateVerificationCode("john@beetfarm.co.nz")
	require.NoError(t, err)
	second, err := svc.GenerateVerificationCode("john@beetfarm.co.nz")
	require.NoError(t, err)

	if first != second {
		_, err = svc.VerifyCode("john@beetfarm.co.nz", first)
		var attempts *AttemptsError
		assert.ErrorAs(t, err, &attempts)
	}
	_, err = svc.VerifyCode("john@beetfarm.co.nz", second)
	assert.NoError(t, err)
}

func TestCheckEmailExists(t *testing.T) {
	svc, _ := newTestSvc(t)

	ok, err := svc.CheckEmailExists("john@beetfarm.co.nz")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.CheckEmailExists("nobody@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}
