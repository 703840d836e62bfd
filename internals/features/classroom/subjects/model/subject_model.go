package model

import "time"

type SubjectModel struct {
	ID           int64     `json:"id"           gorm:"column:id;primaryKey;autoIncrement"`
	DepartmentID int64     `json:"departmentId" gorm:"column:department_id;not null;index"`
	Code         string    `json:"code"         gorm:"column:code;type:varchar(50);not null;uniqueIndex"`
	Name         string    `json:"name"         gorm:"column:name;type:varchar(255);not null"`
	Description  *string   `json:"description"  gorm:"column:description;type:text"`
	CreatedAt    time.Time `json:"createdAt"    gorm:"column:created_at;type:timestamptz;not null;default:now();autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt"    gorm:"column:updated_at;type:timestamptz;not null;default:now();autoUpdateTime"`
}

func (SubjectModel) TableName() string { return "subjects" }

// SubjectRow: subject + LEFT JOIN departments + class count.
type SubjectRow struct {
	SubjectModel

	DepartmentCode        *string `gorm:"column:department_code"`
	DepartmentName        *string `gorm:"column:department_name"`
	DepartmentDescription *string `gorm:"column:department_description"`

	TotalClasses int64 `gorm:"column:total_classes"`
}
