package service

import (
	"context"
	"errors"
	"testing"

	"github.com/layebamba/Fadj-MA/internal/config"
	"github.com/layebamba/Fadj-MA/internal/dto"
	"github.com/layebamba/Fadj-MA/internal/model"
	"github.com/layebamba/Fadj-MA/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	users   map[uuid.UUID]*model.User
	byEmail map[string]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		users:   make(map[uuid.UUID]*model.User),
		byEmail: make(map[string]*model.User),
	}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if _, exists := r.byEmail[u.Email]; exists {
		return errors.New("duplicated key not allowed")
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

func buildAuthSvc() (AuthService, *stubUserRepo) {
	repo := newStubUserRepo()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
	}
	return NewAuthService(repo, cfg, nil), repo
}

func registerPharmacist(t *testing.T, svc AuthService) *dto.UserResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:     "pharmacien@fadjma.sn",
		Password:  "Passer123!",
		FirstName: "Modou",
		LastName:  "Fall",
		Role:      "pharmacist",
	})
	require.NoError(t, err)
	return resp
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestRegister_DefaultsRoleAndHashesPassword(t *testing.T) {
	svc, repo := buildAuthSvc()

	resp, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:     "fatou.sall@fadjma.sn",
		Password:  "Secret1234",
		FirstName: "Fatou",
		LastName:  "Sall",
	})
	require.NoError(t, err)
	assert.Equal(t, "user", resp.Role)
	assert.Equal(t, "Fatou Sall", resp.FullName)
	assert.True(t, resp.IsActive)

	stored := repo.byEmail["fatou.sall@fadjma.sn"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "Secret1234", stored.PasswordHash, "password must be stored hashed")
}

func TestLoginAndRefresh(t *testing.T) {
	svc, _ := buildAuthSvc()
	registerPharmacist(t, svc)

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "pharmacien@fadjma.sn",
		Password: "Passer123!",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)
	assert.NotEmpty(t, login.RefreshToken)
	assert.Equal(t, "bearer", login.TokenType)
	assert.Equal(t, 8*3600, login.ExpiresIn)
	assert.Equal(t, "pharmacist", login.User.Role)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, login.User.ID, refreshed.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := buildAuthSvc()
	registerPharmacist(t, svc)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "pharmacien@fadjma.sn",
		Password: "wrong",
	})
	assert.ErrorContains(t, err, "Email ou mot de passe incorrect")
}

func TestLogin_InactiveAccount(t *testing.T) {
	svc, repo := buildAuthSvc()
	registerPharmacist(t, svc)
	repo.byEmail["pharmacien@fadjma.sn"].IsActive = false

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "pharmacien@fadjma.sn",
		Password: "Passer123!",
	})
	assert.ErrorContains(t, err, "Compte désactivé")
}

func TestRefresh_GarbageToken(t *testing.T) {
	svc, _ := buildAuthSvc()
	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	assert.ErrorContains(t, err, "Refresh token invalide ou expiré")
}

func TestChangePassword(t *testing.T) {
	svc, _ := buildAuthSvc()
	user := registerPharmacist(t, svc)
	uid := uuid.MustParse(user.ID)

	err := svc.ChangePassword(context.Background(), uid, dto.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "NewSecret123",
	})
	assert.ErrorContains(t, err, "Ancien mot de passe incorrect")

	err = svc.ChangePassword(context.Background(), uid, dto.ChangePasswordRequest{
		OldPassword: "Passer123!",
		NewPassword: "NewSecret123",
	})
	require.NoError(t, err)

	// old password is gone, new one works
	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "pharmacien@fadjma.sn", Password: "Passer123!"})
	assert.Error(t, err)
	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "pharmacien@fadjma.sn", Password: "NewSecret123"})
	assert.NoError(t, err)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := buildAuthSvc()
	user := registerPharmacist(t, svc)
	uid := uuid.MustParse(user.ID)

	phone := "771234567"
	birth := "1985-03-20"
	resp, err := svc.UpdateProfile(context.Background(), uid, dto.UpdateProfileRequest{
		FirstName: "Mamadou",
		Phone:     &phone,
		BirthDate: &birth,
	})
	require.NoError(t, err)
	assert.Equal(t, "Mamadou", resp.FirstName)
	assert.Equal(t, "Fall", resp.LastName)
	assert.Equal(t, "771234567", resp.Phone)
	require.NotNil(t, resp.BirthDate)
	assert.Equal(t, "1985-03-20", *resp.BirthDate)
}
