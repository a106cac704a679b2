package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/domains/user"
	"portfolio-backend/pkg/jwt"
)

type fakeRepo struct {
	byID    map[uuid.UUID]*user.User
	byEmail map[string]uuid.UUID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byID:    make(map[uuid.UUID]*user.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (f *fakeRepo) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if _, exists := f.byEmail[u.Email]; exists {
		return nil, user.ErrDuplicateEmail
	}
	stored := *u
	stored.ID = uuid.New()
	stored.IsActive = true
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.byID[stored.ID] = &stored
	f.byEmail[stored.Email] = stored.ID
	out := stored
	return &out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (f *fakeRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	id, ok := f.byEmail[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return f.GetByID(ctx, id)
}

func (f *fakeRepo) Update(ctx context.Context, u *user.User) (*user.User, error) {
	if _, ok := f.byID[u.ID]; !ok {
		return nil, user.ErrUserNotFound
	}
	stored := *u
	stored.UpdatedAt = time.Now()
	f.byID[u.ID] = &stored
	out := stored
	return &out, nil
}

func (f *fakeRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	if u, ok := f.byID[id]; ok {
		u.LastLoginAt = &at
	}
	return nil
}

func newTestService(repo user.Repository) user.Service {
	return NewUserService(repo, jwt.NewManager("test-secret", 15*time.Minute, 168*time.Hour))
}

func TestRegisterHashesPasswordAndAssignsUserRole(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	auth, err := svc.Register(context.Background(), &user.RegisterRequest{
		Email:    "Alice@Example.com",
		Password: "correct-horse",
		FullName: "Alice",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", auth.User.Email)
	assert.Equal(t, user.RoleUser, auth.User.Role)
	assert.NotEmpty(t, auth.AccessToken)
	assert.NotEmpty(t, auth.RefreshToken)

	stored := repo.byID[auth.User.ID]
	assert.NotEqual(t, "correct-horse", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct-horse")))
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.Register(context.Background(), &user.RegisterRequest{
		Email: "a@b.com", Password: "password1", FullName: "A",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &user.RegisterRequest{
		Email: "a@b.com", Password: "password2", FullName: "B",
	})
	assert.ErrorIs(t, err, user.ErrDuplicateEmail)
}

func TestLoginIsUniformForUnknownEmailAndWrongPassword(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.Register(context.Background(), &user.RegisterRequest{
		Email: "a@b.com", Password: "password1", FullName: "A",
	})
	require.NoError(t, err)

	_, wrongPw := svc.Login(context.Background(), &user.LoginRequest{Email: "a@b.com", Password: "nope-nope"})
	_, unknown := svc.Login(context.Background(), &user.LoginRequest{Email: "ghost@b.com", Password: "password1"})

	assert.ErrorIs(t, wrongPw, user.ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, user.ErrInvalidCredentials)
	assert.Equal(t, wrongPw.Error(), unknown.Error())
}

func TestLoginSucceedsWithCorrectPassword(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.Register(context.Background(), &user.RegisterRequest{
		Email: "a@b.com", Password: "password1", FullName: "A",
	})
	require.NoError(t, err)

	auth, err := svc.Login(context.Background(), &user.LoginRequest{Email: "a@b.com", Password: "password1"})
	require.NoError(t, err)
	assert.NotEmpty(t, auth.AccessToken)
	assert.Positive(t, auth.ExpiresIn)
}

func TestLoginRejectsInactiveAccount(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	auth, err := svc.Register(context.Background(), &user.RegisterRequest{
		Email: "a@b.com", Password: "password1", FullName: "A",
	})
	require.NoError(t, err)

	repo.byID[auth.User.ID].IsActive = false

	_, err = svc.Login(context.Background(), &user.LoginRequest{Email: "a@b.com", Password: "password1"})
	assert.ErrorIs(t, err, user.ErrUserInactive)
}

func TestRefreshExchangesRefreshTokenOnly(t *testing.T) {
	svc := newTestService(newFakeRepo())

	auth, err := svc.Register(context.Background(), &user.RegisterRequest{
		Email: "a@b.com", Password: "password1", FullName: "A",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), &user.RefreshRequest{RefreshToken: auth.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Empty(t, refreshed.RefreshToken)

	// an access token is not accepted on the refresh endpoint
	_, err = svc.Refresh(context.Background(), &user.RefreshRequest{RefreshToken: auth.AccessToken})
	assert.ErrorIs(t, err, user.ErrInvalidToken)
}
