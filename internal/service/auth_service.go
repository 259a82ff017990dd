package service

import (
	"context"
	"errors"
	"time"

	"github.com/layebamba/Fadj-MA/internal/config"
	"github.com/layebamba/Fadj-MA/internal/dto"
	"github.com/layebamba/Fadj-MA/internal/model"
	"github.com/layebamba/Fadj-MA/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const blacklistPrefix = "token:blacklist:"

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req dto.UpdateProfileRequest) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req dto.ChangePasswordRequest) error
}

type authService struct {
	repo repository.UserRepository
	cfg  *config.Config
	rdb  *redis.Client
}

func NewAuthService(repo repository.UserRepository, cfg *config.Config, rdb *redis.Client) AuthService {
	return &authService{repo: repo, cfg: cfg, rdb: rdb}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "user"
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Gender:       req.Gender,
		Phone:        req.Phone,
		Role:         role,
		IsActive:     true,
	}
	if req.BirthDate != "" {
		bd, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return nil, errors.New("Date de naissance invalide")
		}
		user.BirthDate = &bd
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.New("Un compte avec cet email existe déjà")
		}
		return nil, err
	}
	return userToResponse(user), nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("Email ou mot de passe incorrect")
	}
	if !user.IsActive {
		return nil, errors.New("Compte désactivé")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("Email ou mot de passe incorrect")
	}
	return s.issueTokens(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	claims, err := s.parseToken(refreshToken)
	if err != nil {
		return nil, errors.New("Refresh token invalide ou expiré")
	}

	// Revoked tokens stay blacklisted in Redis until their natural expiry.
	if s.rdb != nil {
		n, err := s.rdb.Exists(ctx, blacklistPrefix+refreshToken).Result()
		if err == nil && n > 0 {
			return nil, errors.New("Refresh token révoqué")
		}
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("Token mal formé")
	}
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, errors.New("Token mal formé")
	}

	user, err := s.repo.FindByID(ctx, uid)
	if err != nil || !user.IsActive {
		return nil, errors.New("Utilisateur introuvable ou inactif")
	}
	return s.issueTokens(user)
}

// Logout blacklists the refresh token until it would have expired anyway.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.parseToken(refreshToken)
	if err != nil {
		// Already invalid — nothing to revoke.
		return nil
	}
	if s.rdb == nil {
		return nil
	}

	ttl := time.Duration(s.cfg.JWTRefreshHours) * time.Hour
	if exp, ok := claims["exp"].(float64); ok {
		if remaining := time.Until(time.Unix(int64(exp), 0)); remaining > 0 {
			ttl = remaining
		}
	}
	return s.rdb.Set(ctx, blacklistPrefix+refreshToken, "1", ttl).Err()
}

func (s *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.New("Utilisateur introuvable")
	}
	return userToResponse(user), nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, req dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.New("Utilisateur introuvable")
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Gender != "" {
		user.Gender = req.Gender
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.BirthDate != nil {
		if *req.BirthDate == "" {
			user.BirthDate = nil
		} else {
			bd, err := time.Parse("2006-01-02", *req.BirthDate)
			if err != nil {
				return nil, errors.New("Date de naissance invalide")
			}
			user.BirthDate = &bd
		}
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, req dto.ChangePasswordRequest) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return errors.New("Utilisateur introuvable")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return errors.New("Ancien mot de passe incorrect")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), 12)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	return s.repo.Update(ctx, user)
}

func (s *authService) issueTokens(user *model.User) (*dto.LoginResponse, error) {
	accessToken, err := s.generateToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.generateToken(user, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User:         *userToResponse(user),
	}, nil
}

func (s *authService) generateToken(user *model.User, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(duration).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *authService) parseToken(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("token invalide")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("claims invalides")
	}
	return claims, nil
}

func userToResponse(u *model.User) *dto.UserResponse {
	var birthDate *string
	if u.BirthDate != nil {
		bd := u.BirthDate.Format("2006-01-02")
		birthDate = &bd
	}
	return &dto.UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		Gender:    u.Gender,
		BirthDate: birthDate,
		Phone:     u.Phone,
		Role:      u.Role,
		IsActive:  u.IsActive,
	}
}
