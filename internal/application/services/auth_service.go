package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	config "github.com/stayops/hotel-management-api/configs"
	"github.com/stayops/hotel-management-api/internal/core/domain/auth"
	"github.com/stayops/hotel-management-api/internal/core/domain/user"
	"github.com/stayops/hotel-management-api/internal/core/ports"
)

// ErrEmailTaken is returned by Signup when the email is already registered.
var ErrEmailTaken = fmt.Errorf("email already registered")

type AuthService struct {
	userRepo  ports.UserRepository
	jwtConfig *config.JWTConfig
	logger    *logrus.Logger
}

func NewAuthService(userRepo ports.UserRepository, jwtConfig *config.JWTConfig, logger *logrus.Logger) ports.AuthService {
	return &AuthService{userRepo: userRepo, jwtConfig: jwtConfig, logger: logger}
}

func (s *AuthService) Signup(ctx context.Context, req *auth.SignupRequest) (*auth.AuthToken, error) {
	if existing, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, &user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"user_id": created.ID}).Info("user signed up")
	}

	return s.generateToken(created)
}

func (s *AuthService) Login(ctx context.Context, req *auth.LoginRequest) (*auth.AuthToken, error) {
	foundUser, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	return s.generateToken(foundUser)
}

func (s *AuthService) generateToken(u *user.User) (*auth.AuthToken, error) {
	now := time.Now()

	claims := &auth.Claims{
		UserID: u.ID,
		Email:  u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", u.ID),
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtConfig.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	return &auth.AuthToken{
		AccessToken: signed,
		ExpiresIn:   int64(s.jwtConfig.AccessTokenTTL.Seconds()),
	}, nil
}

func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &auth.Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC (prevent alg confusion)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	// The principal must still exist; a deleted user's token is dead.
	if _, err := s.userRepo.GetByID(ctx, claims.UserID); err != nil {
		return nil, fmt.Errorf("unknown user")
	}

	return claims, nil
}
