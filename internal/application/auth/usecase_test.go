package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interiorhq/interman-api/internal/application/auth"
	"github.com/interiorhq/interman-api/internal/application/dto"
	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/infrastructure/memory"
	pkgjwt "github.com/interiorhq/interman-api/pkg/jwt"
)

var testCfg = auth.JWTConfig{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "interior-manager-test",
}

func newAuthUC() *auth.AuthUseCase {
	return auth.NewAuthUseCase(memory.NewUserRepository(), testCfg)
}

func TestSignUpCreatesEmployee(t *testing.T) {
	uc := newAuthUC()

	user, err := uc.SignUp(dto.RegisterRequest{
		Email: "priya@example.com", Password: "secret-password", Name: "Priya",
	})
	require.NoError(t, err)

	// Every sign-up is an employee; admin promotion is not an API operation.
	assert.Equal(t, entity.RoleEmployee, user.Role)
	assert.Equal(t, "active", user.Status)
	assert.Equal(t, "Priya", user.Name)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	uc := newAuthUC()

	_, err := uc.SignUp(dto.RegisterRequest{Email: "priya@example.com", Password: "secret-password"})
	require.NoError(t, err)

	_, err = uc.SignUp(dto.RegisterRequest{Email: "priya@example.com", Password: "another-password"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestSignUpShortPassword(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.SignUp(dto.RegisterRequest{Email: "priya@example.com", Password: "short"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSignInReturnsTokenWithRole(t *testing.T) {
	uc := newAuthUC()

	_, err := uc.SignUp(dto.RegisterRequest{
		Email: "priya@example.com", Password: "secret-password", Name: "Priya",
	})
	require.NoError(t, err)

	out, err := uc.SignIn(dto.LoginRequest{Email: "priya@example.com", Password: "secret-password"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, name, role, err := pkgjwt.Parse(testCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "Priya", name)
	assert.Equal(t, entity.RoleEmployee, role)
}

func TestSignInWrongPassword(t *testing.T) {
	uc := newAuthUC()

	_, err := uc.SignUp(dto.RegisterRequest{Email: "priya@example.com", Password: "secret-password"})
	require.NoError(t, err)

	_, err = uc.SignIn(dto.LoginRequest{Email: "priya@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSignInUnknownEmail(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.SignIn(dto.LoginRequest{Email: "nobody@example.com", Password: "whatever-password"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMe(t *testing.T) {
	uc := newAuthUC()

	created, err := uc.SignUp(dto.RegisterRequest{
		Email: "priya@example.com", Password: "secret-password", Name: "Priya",
	})
	require.NoError(t, err)

	me, err := uc.Me(created.ID)
	require.NoError(t, err)
	require.NotNil(t, me)
	assert.Equal(t, created.Email, me.Email)

	missing, err := uc.Me("no-such-id")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
