// internals/features/users/auth/service/auth_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"classroom_backend/internals/constants"
	userModel "classroom_backend/internals/features/classroom/users/model"
	"classroom_backend/internals/features/users/auth/dto"
	authModel "classroom_backend/internals/features/users/auth/model"
	authRepo "classroom_backend/internals/features/users/auth/repository"
	helper "classroom_backend/internals/helpers"
)

const (
	msgInvalidCredentials = "Invalid email or password"
	msgUserExists         = "User already exists"
)

// Session is a freshly issued or verified token together with its owner.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      userModel.UserModel
}

type AuthService struct {
	Repo   authRepo.AuthRepository
	Tokens *TokenService
	Log    *zap.Logger
}

func NewAuthService(repo authRepo.AuthRepository, tokens *TokenService, log *zap.Logger) *AuthService {
	return &AuthService{Repo: repo, Tokens: tokens, Log: log.Named("auth")}
}

/* ==========================
   Sign up / Sign in
========================== */

func (s *AuthService) SignUp(ctx context.Context, req dto.SignUpRequest) (*Session, error) {
	if len(req.Password) > maxPasswordBytes {
		return nil, helper.ValidationFailed("password must be at most 72 bytes", nil)
	}

	if _, err := s.Repo.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, helper.Conflict(msgUserExists, nil)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.Internal("Failed to sign up", err)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, helper.Internal("Failed to sign up", err)
	}

	user := userModel.UserModel{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Email: req.Email,
		Image: req.Image,
		Role:  constants.RoleStudent,
	}
	account := authModel.AccountModel{PasswordHash: hash}

	if err := s.Repo.CreateUserWithAccount(ctx, &user, &account); err != nil {
		return nil, helper.FromDBError(err, "User", "Failed to sign up")
	}
	s.Log.Info("user signed up", zap.String("user_id", user.ID), zap.String("role", user.Role))

	return s.issue(user)
}

func (s *AuthService) SignIn(ctx context.Context, req dto.SignInRequest) (*Session, error) {
	user, err := s.Repo.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.Unauthorized(msgInvalidCredentials)
	}
	if err != nil {
		return nil, helper.Internal("Failed to sign in", err)
	}

	account, err := s.Repo.FindAccount(ctx, user.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.Unauthorized(msgInvalidCredentials)
	}
	if err != nil {
		return nil, helper.Internal("Failed to sign in", err)
	}

	if err := CheckPasswordHash(account.PasswordHash, req.Password); err != nil {
		return nil, helper.Unauthorized(msgInvalidCredentials)
	}
	return s.issue(*user)
}

func (s *AuthService) issue(user userModel.UserModel) (*Session, error) {
	token, exp, err := s.Tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, helper.Internal("Failed to issue session", err)
	}
	return &Session{Token: token, ExpiresAt: exp, User: user}, nil
}

/* ==========================
   Session
========================== */

// Verify parses raw and rejects signed-out tokens.
func (s *AuthService) Verify(ctx context.Context, raw string) (*Claims, error) {
	claims, err := s.Tokens.Parse(raw)
	if err != nil {
		return nil, helper.Unauthorized(constants.ErrUnauthenticated)
	}

	revoked, err := s.Repo.IsBlacklisted(ctx, raw)
	if err != nil {
		return nil, helper.Internal("Failed to verify session", err)
	}
	if revoked {
		return nil, helper.Unauthorized(constants.ErrUnauthenticated)
	}
	return claims, nil
}

func (s *AuthService) GetSession(ctx context.Context, raw string) (*Session, error) {
	claims, err := s.Verify(ctx, raw)
	if err != nil {
		return nil, err
	}

	user, err := s.Repo.FindUserByID(ctx, claims.Subject)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.Unauthorized(constants.ErrUnauthenticated)
	}
	if err != nil {
		return nil, helper.Internal("Failed to fetch session", err)
	}
	return &Session{Token: raw, ExpiresAt: claims.ExpiresAt.Time.UTC(), User: *user}, nil
}

// SignOut blacklists raw until its own expiry. Unknown or expired tokens are
// a no-op so sign-out stays idempotent.
func (s *AuthService) SignOut(ctx context.Context, raw string) error {
	if raw == "" {
		return nil
	}
	claims, err := s.Tokens.Parse(raw)
	if err != nil {
		return nil
	}
	if err := s.Repo.BlacklistToken(ctx, raw, claims.ExpiresAt.Time); err != nil {
		return helper.Internal("Failed to sign out", err)
	}
	return nil
}

// CleanupBlacklist drops blacklist rows whose tokens have expired anyway.
func (s *AuthService) CleanupBlacklist(ctx context.Context) (int64, error) {
	return s.Repo.CleanupExpiredBlacklist(ctx)
}
