package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"classroom_backend/internals/constants"
	"classroom_backend/internals/features/classroom/users/model"
	helper "classroom_backend/internals/helpers"
)

var validate = helper.NewValidator()

/* =========================================================
   LIST QUERY
   ========================================================= */

type ListQuery struct {
	Search string
	Role   string
	Paging helper.Paging
	Order  string
}

// SortColumns whitelists ?sort= keys.
var SortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"name":      "name",
	"email":     "email",
	"role":      "role",
}

/* =========================================================
   CREATE
   ========================================================= */

type CreateUserRequest struct {
	ID            *string `json:"id"            validate:"omitempty,min=1,max=255"`
	Name          string  `json:"name"          validate:"required,max=255"`
	Email         string  `json:"email"         validate:"required,email,max=255"`
	Image         *string `json:"image"`
	Role          *string `json:"role"          validate:"omitempty,oneof=admin teacher student"`
	EmailVerified *bool   `json:"emailVerified"`
}

func (r *CreateUserRequest) Normalize() {
	r.ID = helper.TrimPtr(r.ID)
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Image = helper.TrimPtr(r.Image)
	r.Role = helper.TrimPtr(r.Role)
}

func (r CreateUserRequest) Validate() error { return validate.Struct(r) }

func (r CreateUserRequest) ToModel() model.UserModel {
	m := model.UserModel{
		ID:    uuid.NewString(),
		Name:  r.Name,
		Email: r.Email,
		Image: r.Image,
		Role:  constants.RoleStudent,
	}
	if r.ID != nil {
		m.ID = *r.ID
	}
	if r.Role != nil {
		m.Role = *r.Role
	}
	if r.EmailVerified != nil {
		m.EmailVerified = *r.EmailVerified
	}
	return m
}

/* =========================================================
   UPDATE (PATCH) — tri-state
   ========================================================= */

type UpdateUserRequest struct {
	Name          helper.PatchField[string] `json:"name"`
	Email         helper.PatchField[string] `json:"email"`
	Image         helper.PatchField[string] `json:"image"`
	Role          helper.PatchField[string] `json:"role"`
	EmailVerified helper.PatchField[bool]   `json:"emailVerified"`
}

func (r UpdateUserRequest) Validate() error {
	if r.Name.IsNull() || (r.Name.Value != nil && strings.TrimSpace(*r.Name.Value) == "") {
		return errors.New("name cannot be empty")
	}
	if r.Email.IsNull() {
		return errors.New("email cannot be empty")
	}
	if r.Email.Value != nil {
		if err := validate.Var(strings.TrimSpace(*r.Email.Value), "required,email,max=255"); err != nil {
			return errors.New("email must be a valid email")
		}
	}
	if r.Role.IsNull() {
		return errors.New("role cannot be empty")
	}
	if r.Role.Value != nil && !constants.IsValidRole(*r.Role.Value) {
		return errors.New("role must be one of: admin teacher student")
	}
	if r.EmailVerified.IsNull() {
		return errors.New("emailVerified cannot be null")
	}
	return nil
}

// Updates returns only the columns present in the body.
func (r UpdateUserRequest) Updates() map[string]any {
	u := map[string]any{}
	if v, ok := r.Name.Get(); ok && v != nil {
		u["name"] = strings.TrimSpace(*v)
	}
	if v, ok := r.Email.Get(); ok && v != nil {
		u["email"] = strings.ToLower(strings.TrimSpace(*v))
	}
	if v, ok := r.Image.Get(); ok {
		u["image"] = helper.Nullable(helper.TrimPtr(v))
	}
	if v, ok := r.Role.Get(); ok && v != nil {
		u["role"] = *v
	}
	if v, ok := r.EmailVerified.Get(); ok && v != nil {
		u["email_verified"] = *v
	}
	if len(u) > 0 {
		u["updated_at"] = time.Now()
	}
	return u
}

/* =========================================================
   RESPONSE
   ========================================================= */

type UserResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Image         *string   `json:"image"`
	Role          string    `json:"role"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromModel(m model.UserModel) UserResponse {
	return UserResponse{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		Image:         m.Image,
		Role:          m.Role,
		EmailVerified: m.EmailVerified,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func FromModels(ms []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}

// TeacherSummary is the user shape embedded in classes.
type TeacherSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Image *string `json:"image"`
}

// StudentSummary is the user shape embedded in enrollments.
type StudentSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Image *string `json:"image"`
	Role  string  `json:"role"`
}
