// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "classroom_backend/internals/features/users/auth/model"
	userModel "classroom_backend/internals/features/classroom/users/model"
)

type AuthRepository interface {
	FindUserByEmail(ctx context.Context, email string) (*userModel.UserModel, error)
	FindUserByID(ctx context.Context, id string) (*userModel.UserModel, error)
	FindAccount(ctx context.Context, userID string) (*authModel.AccountModel, error)
	CreateUserWithAccount(ctx context.Context, u *userModel.UserModel, a *authModel.AccountModel) error

	BlacklistToken(ctx context.Context, token string, expiresAt time.Time) error
	IsBlacklisted(ctx context.Context, token string) (bool, error)
	CleanupExpiredBlacklist(ctx context.Context) (int64, error)
}

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

/* ====================== USER ====================== */

func (r *authRepository) FindUserByEmail(ctx context.Context, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *authRepository) FindUserByID(ctx context.Context, id string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *authRepository) FindAccount(ctx context.Context, userID string) (*authModel.AccountModel, error) {
	var acc authModel.AccountModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&acc).Error; err != nil {
		return nil, err
	}
	return &acc, nil
}

// CreateUserWithAccount inserts the user and its credential together.
func (r *authRepository) CreateUserWithAccount(ctx context.Context, u *userModel.UserModel, a *authModel.AccountModel) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		a.UserID = u.ID
		return tx.Create(a).Error
	})
}

/* ====================== BLACKLIST TOKEN ====================== */

func (r *authRepository) BlacklistToken(ctx context.Context, token string, expiresAt time.Time) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "token"}}, DoNothing: true}).
		Create(&authModel.TokenBlacklistModel{
			Token:     token,
			ExpiredAt: expiresAt.UTC(),
		}).Error
}

func (r *authRepository) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	var existing authModel.TokenBlacklistModel
	err := r.db.WithContext(ctx).Select("id").Where("token = ?", token).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *authRepository) CleanupExpiredBlacklist(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expired_at <= ?", time.Now().UTC()).
		Delete(&authModel.TokenBlacklistModel{})
	return res.RowsAffected, res.Error
}
