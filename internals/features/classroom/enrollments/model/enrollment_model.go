package model

import (
	"time"

	"gorm.io/datatypes"

	classModel "classroom_backend/internals/features/classroom/classes/model"
)

// EnrollmentModel: student ↔ class. The pair is not unique.
type EnrollmentModel struct {
	ID        int64     `json:"id"        gorm:"column:id;primaryKey;autoIncrement"`
	StudentID string    `json:"studentId" gorm:"column:student_id;type:text;not null;index"`
	ClassID   int64     `json:"classId"   gorm:"column:class_id;not null;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;type:timestamptz;not null;default:now();autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at;type:timestamptz;not null;default:now();autoUpdateTime"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }

type EnrollmentRow struct {
	EnrollmentModel

	StudentName  *string `gorm:"column:student_name"`
	StudentEmail *string `gorm:"column:student_email"`
	StudentImage *string `gorm:"column:student_image"`
	StudentRole  *string `gorm:"column:student_role"`

	ClassSubjectID  *int64                                   `gorm:"column:class_subject_id"`
	ClassTeacherID  *string                                  `gorm:"column:class_teacher_id"`
	ClassName       *string                                  `gorm:"column:class_name"`
	ClassInviteCode *string                                  `gorm:"column:class_invite_code"`
	ClassCapacity   *int                                     `gorm:"column:class_capacity"`
	ClassStatus     *string                                  `gorm:"column:class_status"`
	ClassSchedules  datatypes.JSONType[classModel.Schedules] `gorm:"column:class_schedules"`

	SubjectCode         *string `gorm:"column:subject_code"`
	SubjectName         *string `gorm:"column:subject_name"`
	SubjectDepartmentID *int64  `gorm:"column:subject_department_id"`
}
