package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/portfolio-service/internal/config"
	"github.com/spec-kit/portfolio-service/internal/domain"
	"github.com/spec-kit/portfolio-service/internal/persistence"
	"github.com/spec-kit/portfolio-service/internal/repository"
	"github.com/spec-kit/portfolio-service/internal/session"
	apperrors "github.com/spec-kit/portfolio-service/pkg/util/errorutil"
)

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:         "test-secret",
			SessionTTLMinutes: 60,
			BcryptCost:        4, // min cost keeps tests fast
		},
	}
}

func newAccountFixture(t *testing.T) (*AccountService, *repository.UserCollection, *session.MemoryHolder) {
	t.Helper()
	users := repository.NewUserCollection(persistence.NewMemoryStore())
	sessions := session.NewMemoryHolder()
	svc := NewAccountService(testConfig(), AccountDependencies{Users: users, Sessions: sessions})
	return svc, users, sessions
}

func requireDomainError(t *testing.T, err error) *apperrors.DomainError {
	t.Helper()
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	return domainErr
}

func TestRegisterSuccessDoesNotLogin(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newAccountFixture(t)

	user, err := svc.Register(ctx, "Amy", "amy@a.edu", "secret1", domain.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, "Amy", user.Name)
	assert.Equal(t, domain.RoleStudent, user.Role)
	assert.NotEqual(t, "secret1", user.PasswordHash, "password is stored hashed")

	stored, err := users.FindByEmail(ctx, "amy@a.edu")
	require.NoError(t, err)
	require.NotNil(t, stored)

	// No session was created: login is a separate step.
	result, err := svc.Login(ctx, "amy@a.edu", "secret1")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStudent, result.User.Role, "role preserved through round trip")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newAccountFixture(t)

	_, err := svc.Register(ctx, "Amy", "amy@a.edu", "secret1", domain.RoleStudent)
	require.NoError(t, err)

	// Same email fails regardless of name or role.
	_, err = svc.Register(ctx, "Other", "amy@a.edu", "different1", domain.RoleAdmin)
	domainErr := requireDomainError(t, err)
	assert.Equal(t, "DUPLICATE_EMAIL", domainErr.Code)
	assert.Contains(t, domainErr.Details, "email")

	// The failed registration caused no side effects.
	all, err := users.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRegisterValidationReportsAllFields(t *testing.T) {
	svc, _, _ := newAccountFixture(t)

	_, err := svc.Register(context.Background(), "", "bad-email", "abc", "faculty")
	domainErr := requireDomainError(t, err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Details, "name")
	assert.Contains(t, domainErr.Details, "email")
	assert.Contains(t, domainErr.Details, "password")
	assert.Contains(t, domainErr.Details, "role")
}

func TestLoginWrongPasswordFailsOnBothFields(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAccountFixture(t)

	_, err := svc.Register(ctx, "Amy", "amy@a.edu", "secret1", domain.RoleStudent)
	require.NoError(t, err)

	_, err = svc.Login(ctx, "amy@a.edu", "wrong-password")
	domainErr := requireDomainError(t, err)
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	assert.Equal(t, domainErr.Details["email"], domainErr.Details["password"],
		"identical message on both fields so neither is confirmed")
}

func TestLoginUnknownEmailIndistinguishableFromWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAccountFixture(t)

	_, err := svc.Login(ctx, "nobody@a.edu", "secret1")
	domainErr := requireDomainError(t, err)
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
}

func TestLoginSetsSessionAndLogoutClearsIt(t *testing.T) {
	ctx := context.Background()
	svc, _, sessions := newAccountFixture(t)

	_, err := svc.Register(ctx, "Amy", "amy@a.edu", "secret1", domain.RoleStudent)
	require.NoError(t, err)

	result, err := svc.Login(ctx, "amy@a.edu", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	claims, err := svc.TokenManager().ParseToken(result.Token)
	require.NoError(t, err)

	held, err := sessions.Get(ctx, claims.SessionID)
	require.NoError(t, err)
	require.NotNil(t, held)
	assert.Equal(t, "amy@a.edu", held.Email)

	require.NoError(t, svc.Logout(ctx, claims.SessionID))
	held, err = sessions.Get(ctx, claims.SessionID)
	require.NoError(t, err)
	assert.Nil(t, held, "token references a dead session after logout")

	// Logout is unconditional: repeating it is fine.
	require.NoError(t, svc.Logout(ctx, claims.SessionID))
}

func TestLoginValidatesPresenceBeforeLookup(t *testing.T) {
	svc, _, _ := newAccountFixture(t)

	_, err := svc.Login(context.Background(), "", "")
	domainErr := requireDomainError(t, err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Details, "email")
	assert.Contains(t, domainErr.Details, "password")
}
