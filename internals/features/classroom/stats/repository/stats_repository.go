package repository

import (
	"context"

	"gorm.io/gorm"

	"classroom_backend/internals/constants"
)

type Overview struct {
	Users       int64 `json:"users"`
	Admins      int64 `json:"admins"`
	Teachers    int64 `json:"teachers"`
	Students    int64 `json:"students"`
	Departments int64 `json:"departments"`
	Subjects    int64 `json:"subjects"`
	Classes     int64 `json:"classes"`
	Enrollments int64 `json:"enrollments"`
}

type StatsRepository interface {
	Overview(ctx context.Context) (*Overview, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

type roleCount struct {
	Role  string `gorm:"column:role"`
	Total int64  `gorm:"column:total"`
}

// Overview runs independent counts; they are not a consistent snapshot.
func (r *statsRepository) Overview(ctx context.Context) (*Overview, error) {
	var out Overview

	tables := []struct {
		name string
		dst  *int64
	}{
		{"users", &out.Users},
		{"departments", &out.Departments},
		{"subjects", &out.Subjects},
		{"classes", &out.Classes},
		{"enrollments", &out.Enrollments},
	}
	for _, t := range tables {
		if err := r.db.WithContext(ctx).Table(t.name).Count(t.dst).Error; err != nil {
			return nil, err
		}
	}

	var roles []roleCount
	if err := r.db.WithContext(ctx).
		Table("users").
		Select("role, COUNT(*) AS total").
		Group("role").
		Scan(&roles).Error; err != nil {
		return nil, err
	}
	for _, rc := range roles {
		switch rc.Role {
		case constants.RoleAdmin:
			out.Admins = rc.Total
		case constants.RoleTeacher:
			out.Teachers = rc.Total
		case constants.RoleStudent:
			out.Students = rc.Total
		}
	}
	return &out, nil
}
