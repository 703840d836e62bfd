package dto

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"classroom_backend/internals/constants"
	"classroom_backend/internals/features/classroom/classes/model"
	subjectDTO "classroom_backend/internals/features/classroom/subjects/dto"
	userDTO "classroom_backend/internals/features/classroom/users/dto"
	helper "classroom_backend/internals/helpers"
)

const DefaultCapacity = 50

var validate = helper.NewValidator()

type ListQuery struct {
	Search    string
	Subject   *string
	Teacher   *string
	SubjectID *int64
	TeacherID *string
	Status    *string
	Paging    helper.Paging
	Order     string
}

var SortColumns = map[string]string{
	"createdAt":        "c.created_at",
	"updatedAt":        "c.updated_at",
	"name":             "c.name",
	"capacity":         "c.capacity",
	"status":           "c.status",
	"totalEnrollments": "total_enrollments",
}

func IsValidStatus(s string) bool {
	for _, v := range constants.ClassStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// GenerateInviteCode returns 8 upper-case alphanumerics.
func GenerateInviteCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
}

/* =========================================================
   CREATE
   ========================================================= */

type CreateClassRequest struct {
	SubjectID   int64             `json:"subjectId"   validate:"required,gt=0"`
	TeacherID   string            `json:"teacherId"   validate:"required,max=255"`
	Name        string            `json:"name"        validate:"required,max=255"`
	InviteCode  *string           `json:"inviteCode"  validate:"omitempty,max=50"`
	Capacity    *int              `json:"capacity"    validate:"omitempty,gt=0"`
	Description *string           `json:"description"`
	Status      *string           `json:"status"      validate:"omitempty,oneof=active inactive archived"`
	Schedules   map[string]string `json:"schedules"   validate:"omitempty,schedules"`
	BannerURL   *string           `json:"bannerUrl"`
}

func (r *CreateClassRequest) Normalize() {
	r.TeacherID = strings.TrimSpace(r.TeacherID)
	r.Name = strings.TrimSpace(r.Name)
	r.InviteCode = helper.TrimPtr(r.InviteCode)
	r.Description = helper.TrimPtr(r.Description)
	r.Status = helper.TrimPtr(r.Status)
	r.BannerURL = helper.TrimPtr(r.BannerURL)
}

func (r CreateClassRequest) Validate() error { return validate.Struct(r) }

func (r CreateClassRequest) ToModel() model.ClassModel {
	m := model.ClassModel{
		SubjectID:   r.SubjectID,
		TeacherID:   r.TeacherID,
		Name:        r.Name,
		Description: r.Description,
		BannerURL:   r.BannerURL,
		Capacity:    DefaultCapacity,
		Status:      constants.ClassActive,
		Schedules:   datatypes.NewJSONType(model.Schedules{}),
	}
	if r.InviteCode != nil {
		m.InviteCode = *r.InviteCode
	} else {
		m.InviteCode = GenerateInviteCode()
	}
	if r.Capacity != nil {
		m.Capacity = *r.Capacity
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	if r.Schedules != nil {
		m.Schedules = datatypes.NewJSONType(model.Schedules(r.Schedules))
	}
	return m
}

/* =========================================================
   UPDATE (PATCH) — no status transition rules
   ========================================================= */

type UpdateClassRequest struct {
	SubjectID   helper.PatchField[int64]             `json:"subjectId"`
	TeacherID   helper.PatchField[string]            `json:"teacherId"`
	Name        helper.PatchField[string]            `json:"name"`
	InviteCode  helper.PatchField[string]            `json:"inviteCode"`
	Capacity    helper.PatchField[int]               `json:"capacity"`
	Description helper.PatchField[string]            `json:"description"`
	Status      helper.PatchField[string]            `json:"status"`
	Schedules   helper.PatchField[map[string]string] `json:"schedules"`
	BannerURL   helper.PatchField[string]            `json:"bannerUrl"`
}

func (r UpdateClassRequest) Validate() error {
	if r.SubjectID.IsNull() || (r.SubjectID.Value != nil && *r.SubjectID.Value <= 0) {
		return errors.New("subjectId must be greater than 0")
	}
	if blank(r.TeacherID) {
		return errors.New("teacherId cannot be empty")
	}
	if blank(r.Name) {
		return errors.New("name cannot be empty")
	}
	if blank(r.InviteCode) {
		return errors.New("inviteCode cannot be empty")
	}
	if r.InviteCode.Value != nil && len(strings.TrimSpace(*r.InviteCode.Value)) > 50 {
		return errors.New("inviteCode must be at most 50")
	}
	if r.Capacity.IsNull() || (r.Capacity.Value != nil && *r.Capacity.Value <= 0) {
		return errors.New("capacity must be greater than 0")
	}
	if r.Status.IsNull() || (r.Status.Value != nil && !IsValidStatus(*r.Status.Value)) {
		return errors.New("status must be one of: active inactive archived")
	}
	if r.Schedules.Value != nil {
		if err := helper.ValidateSchedules(*r.Schedules.Value); err != nil {
			return errors.New("schedules must map weekdays to HH:MM-HH:MM ranges")
		}
	}
	return nil
}

func (r UpdateClassRequest) Updates() map[string]any {
	u := map[string]any{}
	if v, ok := r.SubjectID.Get(); ok && v != nil {
		u["subject_id"] = *v
	}
	if v, ok := r.TeacherID.Get(); ok && v != nil {
		u["teacher_id"] = strings.TrimSpace(*v)
	}
	if v, ok := r.Name.Get(); ok && v != nil {
		u["name"] = strings.TrimSpace(*v)
	}
	if v, ok := r.InviteCode.Get(); ok && v != nil {
		u["invite_code"] = strings.TrimSpace(*v)
	}
	if v, ok := r.Capacity.Get(); ok && v != nil {
		u["capacity"] = *v
	}
	if v, ok := r.Description.Get(); ok {
		u["description"] = helper.Nullable(helper.TrimPtr(v))
	}
	if v, ok := r.Status.Get(); ok && v != nil {
		u["status"] = *v
	}
	if v, ok := r.Schedules.Get(); ok {
		// null resets to an empty schedule
		s := model.Schedules{}
		if v != nil {
			s = model.Schedules(*v)
		}
		u["schedules"] = datatypes.NewJSONType(s)
	}
	if v, ok := r.BannerURL.Get(); ok {
		u["banner_url"] = helper.Nullable(helper.TrimPtr(v))
	}
	if len(u) > 0 {
		u["updated_at"] = time.Now()
	}
	return u
}

func blank(p helper.PatchField[string]) bool {
	return p.IsNull() || (p.Value != nil && strings.TrimSpace(*p.Value) == "")
}

/* =========================================================
   RESPONSE
   ========================================================= */

type ClassResponse struct {
	ID                  int64                      `json:"id"`
	SubjectID           int64                      `json:"subjectId"`
	TeacherID           string                     `json:"teacherId"`
	InviteCode          string                     `json:"inviteCode"`
	Name                string                     `json:"name"`
	Description         *string                    `json:"description"`
	BannerURL           *string                    `json:"bannerUrl"`
	Capacity            int                        `json:"capacity"`
	Status              string                     `json:"status"`
	Schedules           model.Schedules            `json:"schedules"`
	Subject             *subjectDTO.SubjectSummary `json:"subject"`
	Teacher             *userDTO.TeacherSummary    `json:"teacher"`
	TotalEnrollments    int64                      `json:"totalEnrollments"`
	CapacityUsedPercent float64                    `json:"capacityUsedPercent"`
	CreatedAt           time.Time                  `json:"createdAt"`
	UpdatedAt           time.Time                  `json:"updatedAt"`
}

// CapacityUsedPercent is enrolled/capacity as a percentage, one decimal.
func CapacityUsedPercent(enrolled int64, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	pct := float64(enrolled) / float64(capacity) * 100
	return math.Round(pct*10) / 10
}

func FromRow(r model.ClassRow) ClassResponse {
	sched := r.Schedules.Data()
	if sched == nil {
		sched = model.Schedules{}
	}
	out := ClassResponse{
		ID:                  r.ID,
		SubjectID:           r.SubjectID,
		TeacherID:           r.TeacherID,
		InviteCode:          r.InviteCode,
		Name:                r.Name,
		Description:         r.Description,
		BannerURL:           r.BannerURL,
		Capacity:            r.Capacity,
		Status:              r.Status,
		Schedules:           sched,
		TotalEnrollments:    r.TotalEnrollments,
		CapacityUsedPercent: CapacityUsedPercent(r.TotalEnrollments, r.Capacity),
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
	if r.SubjectName != nil {
		out.Subject = &subjectDTO.SubjectSummary{
			ID:           r.SubjectID,
			DepartmentID: derefInt(r.SubjectDepartmentID),
			Code:         deref(r.SubjectCode),
			Name:         *r.SubjectName,
		}
	}
	if r.TeacherName != nil {
		out.Teacher = &userDTO.TeacherSummary{
			ID:    r.TeacherID,
			Name:  *r.TeacherName,
			Email: deref(r.TeacherEmail),
			Image: r.TeacherImage,
		}
	}
	return out
}

func FromRows(rs []model.ClassRow) []ClassResponse {
	out := make([]ClassResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRow(r))
	}
	return out
}

// ClassSummary is the class embedded in enrollments.
type ClassSummary struct {
	ID         int64                      `json:"id"`
	SubjectID  int64                      `json:"subjectId"`
	TeacherID  string                     `json:"teacherId"`
	Name       string                     `json:"name"`
	InviteCode string                     `json:"inviteCode"`
	Capacity   int                        `json:"capacity"`
	Status     string                     `json:"status"`
	Schedules  model.Schedules            `json:"schedules"`
	Subject    *subjectDTO.SubjectSummary `json:"subject"`
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
