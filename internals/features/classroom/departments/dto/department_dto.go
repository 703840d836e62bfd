package dto

import (
	"errors"
	"strings"
	"time"

	"classroom_backend/internals/features/classroom/departments/model"
	helper "classroom_backend/internals/helpers"
)

var validate = helper.NewValidator()

type ListQuery struct {
	Search string
	Paging helper.Paging
	Order  string
}

var SortColumns = map[string]string{
	"createdAt":     "d.created_at",
	"updatedAt":     "d.updated_at",
	"name":          "d.name",
	"code":          "d.code",
	"totalSubjects": "total_subjects",
}

/* =========================================================
   CREATE
   ========================================================= */

type CreateDepartmentRequest struct {
	Code        string  `json:"code"        validate:"required,max=50"`
	Name        string  `json:"name"        validate:"required,max=255"`
	Description *string `json:"description"`
}

func (r *CreateDepartmentRequest) Normalize() {
	r.Code = strings.TrimSpace(r.Code)
	r.Name = strings.TrimSpace(r.Name)
	r.Description = helper.TrimPtr(r.Description)
}

func (r CreateDepartmentRequest) Validate() error { return validate.Struct(r) }

func (r CreateDepartmentRequest) ToModel() model.DepartmentModel {
	return model.DepartmentModel{
		Code:        r.Code,
		Name:        r.Name,
		Description: r.Description,
	}
}

/* =========================================================
   UPDATE (PATCH)
   ========================================================= */

type UpdateDepartmentRequest struct {
	Code        helper.PatchField[string] `json:"code"`
	Name        helper.PatchField[string] `json:"name"`
	Description helper.PatchField[string] `json:"description"`
}

func (r UpdateDepartmentRequest) Validate() error {
	if blank(r.Code) {
		return errors.New("code cannot be empty")
	}
	if r.Code.Value != nil && len(strings.TrimSpace(*r.Code.Value)) > 50 {
		return errors.New("code must be at most 50")
	}
	if blank(r.Name) {
		return errors.New("name cannot be empty")
	}
	if r.Name.Value != nil && len(strings.TrimSpace(*r.Name.Value)) > 255 {
		return errors.New("name must be at most 255")
	}
	return nil
}

func (r UpdateDepartmentRequest) Updates() map[string]any {
	u := map[string]any{}
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

// present and null, or present and blank
func blank(p helper.PatchField[string]) bool {
	return p.IsNull() || (p.Value != nil && strings.TrimSpace(*p.Value) == "")
}

/* =========================================================
   RESPONSE
   ========================================================= */

type DepartmentResponse struct {
	ID            int64     `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	TotalSubjects int64     `json:"totalSubjects"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromRow(r model.DepartmentRow) DepartmentResponse {
	return DepartmentResponse{
		ID:            r.ID,
		Code:          r.Code,
		Name:          r.Name,
		Description:   r.Description,
		TotalSubjects: r.TotalSubjects,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func FromRows(rs []model.DepartmentRow) []DepartmentResponse {
	out := make([]DepartmentResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRow(r))
	}
	return out
}

// DepartmentSummary is the department embedded in subjects.
type DepartmentSummary struct {
	ID          int64   `json:"id"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}
