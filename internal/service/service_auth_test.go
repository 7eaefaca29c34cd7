package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-budget-sync/internal/config"
	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/store"
	"github.com/MKhiriev/go-budget-sync/models"
)

// fakeUserRepository is an in-memory store.UserRepository keyed by login.
type fakeUserRepository struct {
	users  map[string]models.User
	nextID int64

	createErr error
	findErr   error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]models.User), nextID: 1}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	if f.createErr != nil {
		return models.User{}, f.createErr
	}
	if _, taken := f.users[user.Login]; taken {
		return models.User{}, store.ErrLoginAlreadyExists
	}

	user.UserID = f.nextID
	user.CreatedAt = time.Now().UTC()
	f.nextID++
	f.users[user.Login] = user
	return user, nil
}

func (f *fakeUserRepository) FindUserByLogin(_ context.Context, login string) (models.User, error) {
	if f.findErr != nil {
		return models.User{}, f.findErr
	}
	user, ok := f.users[login]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

func newTestAuthSvc(t *testing.T) (AuthService, *fakeUserRepository) {
	t.Helper()

	repo := newFakeUserRepository()
	svc := NewAuthService(repo, config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "budget-sync-test",
		TokenDuration: time.Hour,
	}, logger.Nop())

	return svc, repo
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	svc, repo := newTestAuthSvc(t)

	registered, err := svc.RegisterUser(context.Background(), models.User{
		Login:    "alice",
		Password: "s3cret-password",
		Name:     "Alice",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)
	assert.Empty(t, registered.Password, "plaintext password must not survive registration")
	assert.NotEmpty(t, registered.PasswordHash)

	stored := repo.users["alice"]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-password")))
}

func TestAuthService_RegisterUser_InvalidData(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	tests := []struct {
		name string
		user models.User
	}{
		{name: "empty login", user: models.User{Password: "s3cret-password"}},
		{name: "empty password", user: models.User{Login: "alice"}},
		{name: "both empty", user: models.User{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tt.user)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_RegisterUser_LoginTaken(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, models.User{Login: "alice", Password: "s3cret-password"})
	require.NoError(t, err)

	_, err = svc.RegisterUser(ctx, models.User{Login: "alice", Password: "another-password"})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, models.User{Login: "alice", Password: "s3cret-password"})
	require.NoError(t, err)

	user, err := svc.Login(ctx, models.User{Login: "alice", Password: "s3cret-password"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "alice", user.Login)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, models.User{Login: "alice", Password: "s3cret-password"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, models.User{Login: "alice", Password: "wrong-password"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.Login(context.Background(), models.User{Login: "ghost", Password: "whatever-pass"})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_Login_InvalidData(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.Login(context.Background(), models.User{Login: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── CreateToken / ParseToken ─────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42, Login: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)

	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.ParseToken(context.Background(), "not.a.token")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongSignKey(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	ctx := context.Background()

	otherSvc := NewAuthService(newFakeUserRepository(), config.Auth{
		TokenSignKey:  "a-different-key",
		TokenIssuer:   "budget-sync-test",
		TokenDuration: time.Hour,
	}, logger.Nop())

	token, err := otherSvc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token.SignedString)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewAuthService(repo, config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "budget-sync-test",
		TokenDuration: -time.Hour,
	}, logger.Nop())
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token.SignedString)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
