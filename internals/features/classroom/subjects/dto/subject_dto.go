package dto

import (
	"errors"
	"strings"
	"time"

	deptDTO "classroom_backend/internals/features/classroom/departments/dto"
	"classroom_backend/internals/features/classroom/subjects/model"
	helper "classroom_backend/internals/helpers"
)

var validate = helper.NewValidator()

type ListQuery struct {
	Search       string
	Department   *string
	DepartmentID *int64
	Paging       helper.Paging
	Order        string
}

var SortColumns = map[string]string{
	"createdAt":    "s.created_at",
	"updatedAt":    "s.updated_at",
	"name":         "s.name",
	"code":         "s.code",
	"totalClasses": "total_classes",
}

/* =========================================================
   CREATE
   ========================================================= */

type CreateSubjectRequest struct {
	DepartmentID int64   `json:"departmentId" validate:"required,gt=0"`
	Code         string  `json:"code"         validate:"required,max=50"`
	Name         string  `json:"name"         validate:"required,max=255"`
	Description  *string `json:"description"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.Code = strings.TrimSpace(r.Code)
	r.Name = strings.TrimSpace(r.Name)
	r.Description = helper.TrimPtr(r.Description)
}

func (r CreateSubjectRequest) Validate() error { return validate.Struct(r) }

func (r CreateSubjectRequest) ToModel() model.SubjectModel {
	return model.SubjectModel{
		DepartmentID: r.DepartmentID,
		Code:         r.Code,
		Name:         r.Name,
		Description:  r.Description,
	}
}

/* =========================================================
   UPDATE (PATCH)
   ========================================================= */

type UpdateSubjectRequest struct {
	DepartmentID helper.PatchField[int64]  `json:"departmentId"`
	Code         helper.PatchField[string] `json:"code"`
	Name         helper.PatchField[string] `json:"name"`
	Description  helper.PatchField[string] `json:"description"`
}

func (r UpdateSubjectRequest) Validate() error {
	if r.DepartmentID.IsNull() || (r.DepartmentID.Value != nil && *r.DepartmentID.Value <= 0) {
		return errors.New("departmentId must be greater than 0")
	}
	if r.Code.IsNull() || (r.Code.Value != nil && strings.TrimSpace(*r.Code.Value) == "") {
		return errors.New("code cannot be empty")
	}
	if r.Code.Value != nil && len(strings.TrimSpace(*r.Code.Value)) > 50 {
		return errors.New("code must be at most 50")
	}
	if r.Name.IsNull() || (r.Name.Value != nil && strings.TrimSpace(*r.Name.Value) == "") {
		return errors.New("name cannot be empty")
	}
	return nil
}

func (r UpdateSubjectRequest) Updates() map[string]any {
	u := map[string]any{}
	if v, ok := r.DepartmentID.Get(); ok && v != nil {
		u["department_id"] = *v
	}
	if v, ok := r.Code.Get(); ok && v != nil {
		u["code"] = strings.TrimSpace(*v)
	}
	if v, ok := r.Name.Get(); ok && v != nil {
		u["name"] = strings.TrimSpace(*v)
	}
	if v, ok := r.Description.Get(); ok {
		u["description"] = helper.Nullable(helper.TrimPtr(v))
	}
	if len(u) > 0 {
		u["updated_at"] = time.Now()
	}
	return u
}

/* =========================================================
   RESPONSE
   ========================================================= */

type SubjectResponse struct {
	ID           int64                      `json:"id"`
	DepartmentID int64                      `json:"departmentId"`
	Code         string                     `json:"code"`
	Name         string                     `json:"name"`
	Description  *string                    `json:"description"`
	Department   *deptDTO.DepartmentSummary `json:"department"`
	TotalClasses int64                      `json:"totalClasses"`
	CreatedAt    time.Time                  `json:"createdAt"`
	UpdatedAt    time.Time                  `json:"updatedAt"`
}

func FromRow(r model.SubjectRow) SubjectResponse {
	out := SubjectResponse{
		ID:           r.ID,
		DepartmentID: r.DepartmentID,
		Code:         r.Code,
		Name:         r.Name,
		Description:  r.Description,
		TotalClasses: r.TotalClasses,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.DepartmentName != nil {
		out.Department = &deptDTO.DepartmentSummary{
			ID:          r.DepartmentID,
			Code:        deref(r.DepartmentCode),
			Name:        *r.DepartmentName,
			Description: r.DepartmentDescription,
		}
	}
	return out
}

func FromRows(rs []model.SubjectRow) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRow(r))
	}
	return out
}

// SubjectSummary is the subject embedded in classes.
type SubjectSummary struct {
	ID           int64  `json:"id"`
	DepartmentID int64  `json:"departmentId"`
	Code         string `json:"code"`
	Name         string `json:"name"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
