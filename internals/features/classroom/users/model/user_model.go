package model

import "time"

// UserModel maps the `users` table. Ids are opaque strings so accounts
// created by the auth delegate and by the seeder share one key space.
type UserModel struct {
	ID            string    `json:"id"            gorm:"column:id;type:text;primaryKey"`
	Name          string    `json:"name"          gorm:"column:name;type:varchar(255);not null"`
	Email         string    `json:"email"         gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	Image         *string   `json:"image"         gorm:"column:image;type:text"`
	Role          string    `json:"role"          gorm:"column:role;type:user_role;not null;default:student"`
	EmailVerified bool      `json:"emailVerified" gorm:"column:email_verified;not null;default:false"`
	CreatedAt     time.Time `json:"createdAt"     gorm:"column:created_at;type:timestamptz;not null;default:now();autoCreateTime"`
	UpdatedAt     time.Time `json:"updatedAt"     gorm:"column:updated_at;type:timestamptz;not null;default:now();autoUpdateTime"`
}

func (UserModel) TableName() string { return "users" }
