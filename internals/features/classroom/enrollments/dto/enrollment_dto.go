package dto

import (
	"errors"
	"strings"
	"time"

	classDTO "classroom_backend/internals/features/classroom/classes/dto"
	classModel "classroom_backend/internals/features/classroom/classes/model"
	"classroom_backend/internals/features/classroom/enrollments/model"
	subjectDTO "classroom_backend/internals/features/classroom/subjects/dto"
	userDTO "classroom_backend/internals/features/classroom/users/dto"
	helper "classroom_backend/internals/helpers"
)

var validate = helper.NewValidator()

type ListQuery struct {
	Search    string
	StudentID *string
	ClassID   *int64
	Paging    helper.Paging
	Order     string
}

var SortColumns = map[string]string{
	"createdAt": "e.created_at",
	"updatedAt": "e.updated_at",
	"student":   "u.name",
	"class":     "c.name",
}

// No capacity check and no duplicate-pair check on create.
type CreateEnrollmentRequest struct {
	StudentID string `json:"studentId" validate:"required,max=255"`
	ClassID   int64  `json:"classId"   validate:"required,gt=0"`
}

func (r *CreateEnrollmentRequest) Normalize() {
	r.StudentID = strings.TrimSpace(r.StudentID)
}

func (r CreateEnrollmentRequest) Validate() error { return validate.Struct(r) }

func (r CreateEnrollmentRequest) ToModel() model.EnrollmentModel {
	return model.EnrollmentModel{StudentID: r.StudentID, ClassID: r.ClassID}
}

type UpdateEnrollmentRequest struct {
	StudentID helper.PatchField[string] `json:"studentId"`
	ClassID   helper.PatchField[int64]  `json:"classId"`
}

func (r UpdateEnrollmentRequest) Validate() error {
	if r.StudentID.IsNull() || (r.StudentID.Value != nil && strings.TrimSpace(*r.StudentID.Value) == "") {
		return errors.New("studentId cannot be empty")
	}
	if r.ClassID.IsNull() || (r.ClassID.Value != nil && *r.ClassID.Value <= 0) {
		return errors.New("classId must be greater than 0")
	}
	return nil
}

func (r UpdateEnrollmentRequest) Updates() map[string]any {
	u := map[string]any{}
	if v, ok := r.StudentID.Get(); ok && v != nil {
		u["student_id"] = strings.TrimSpace(*v)
	}
	if v, ok := r.ClassID.Get(); ok && v != nil {
		u["class_id"] = *v
	}
	if len(u) > 0 {
		u["updated_at"] = time.Now()
	}
	return u
}

/* =========================================================
   RESPONSE
   ========================================================= */

type EnrollmentResponse struct {
	ID        int64                   `json:"id"`
	StudentID string                  `json:"studentId"`
	ClassID   int64                   `json:"classId"`
	Student   *userDTO.StudentSummary `json:"student"`
	Class     *classDTO.ClassSummary  `json:"class"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
}

func FromRow(r model.EnrollmentRow) EnrollmentResponse {
	out := EnrollmentResponse{
		ID:        r.ID,
		StudentID: r.StudentID,
		ClassID:   r.ClassID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.StudentName != nil {
		out.Student = &userDTO.StudentSummary{
			ID:    r.StudentID,
			Name:  *r.StudentName,
			Email: deref(r.StudentEmail),
			Image: r.StudentImage,
			Role:  deref(r.StudentRole),
		}
	}
	if r.ClassName != nil {
		sched := r.ClassSchedules.Data()
		if sched == nil {
			sched = classModel.Schedules{}
		}
		cls := &classDTO.ClassSummary{
			ID:         r.ClassID,
			SubjectID:  derefInt(r.ClassSubjectID),
			TeacherID:  deref(r.ClassTeacherID),
			Name:       *r.ClassName,
			InviteCode: deref(r.ClassInviteCode),
			Status:     deref(r.ClassStatus),
			Schedules:  sched,
		}
		if r.ClassCapacity != nil {
			cls.Capacity = *r.ClassCapacity
		}
		if r.SubjectName != nil {
			cls.Subject = &subjectDTO.SubjectSummary{
				ID:           cls.SubjectID,
				DepartmentID: derefInt(r.SubjectDepartmentID),
				Code:         deref(r.SubjectCode),
				Name:         *r.SubjectName,
			}
		}
		out.Class = cls
	}
	return out
}

func FromRows(rs []model.EnrollmentRow) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRow(r))
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int64) int64 {
	if n == nil {
		return 0
	}
	return *n
}
