package model

import "time"

// AccountModel stores the email/password credential of a user.
type AccountModel struct {
	UserID       string    `gorm:"column:user_id;type:text;primaryKey"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (AccountModel) TableName() string { return "accounts" }
