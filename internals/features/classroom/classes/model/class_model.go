package model

import (
	"time"

	"gorm.io/datatypes"
)

// Schedules maps a weekday to an "HH:MM-HH:MM" range, e.g.
// {"Monday":"10:00-11:30"}.
type Schedules map[string]string

type ClassModel struct {
	ID          int64   `json:"id"          gorm:"column:id;primaryKey;autoIncrement"`
	SubjectID   int64   `json:"subjectId"   gorm:"column:subject_id;not null;index"`
	TeacherID   string  `json:"teacherId"   gorm:"column:teacher_id;type:text;not null;index"`
	InviteCode  string  `json:"inviteCode"  gorm:"column:invite_code;type:varchar(50);not null;uniqueIndex"`
	Name        string  `json:"name"        gorm:"column:name;type:varchar(255);not null"`
	Description *string `json:"description" gorm:"column:description;type:text"`
	BannerURL   *string `json:"bannerUrl"   gorm:"column:banner_url;type:text"`

	Capacity int    `json:"capacity" gorm:"column:capacity;not null;default:50"`
	Status   string `json:"status"   gorm:"column:status;type:class_status;not null;default:active"`

	Schedules datatypes.JSONType[Schedules] `json:"schedules" gorm:"column:schedules;type:jsonb;not null;default:'{}'"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;type:timestamptz;not null;default:now();autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at;type:timestamptz;not null;default:now();autoUpdateTime"`
}

func (ClassModel) TableName() string { return "classes" }

// ClassRow: class + subject + teacher + enrollment count.
type ClassRow struct {
	ClassModel

	SubjectCode         *string `gorm:"column:subject_code"`
	SubjectName         *string `gorm:"column:subject_name"`
	SubjectDepartmentID *int64  `gorm:"column:subject_department_id"`

	TeacherName  *string `gorm:"column:teacher_name"`
	TeacherEmail *string `gorm:"column:teacher_email"`
	TeacherImage *string `gorm:"column:teacher_image"`

	TotalEnrollments int64 `gorm:"column:total_enrollments"`
}
