package model

import "time"

type DepartmentModel struct {
	ID          int64     `json:"id"          gorm:"column:id;primaryKey;autoIncrement"`
	Code        string    `json:"code"        gorm:"column:code;type:varchar(50);not null;uniqueIndex"`
	Name        string    `json:"name"        gorm:"column:name;type:varchar(255);not null"`
	Description *string   `json:"description" gorm:"column:description;type:text"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at;type:timestamptz;not null;default:now();autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt"   gorm:"column:updated_at;type:timestamptz;not null;default:now();autoUpdateTime"`
}

func (DepartmentModel) TableName() string { return "departments" }

// DepartmentRow is a department joined with its subject count.
type DepartmentRow struct {
	DepartmentModel
	TotalSubjects int64 `gorm:"column:total_subjects"`
}
