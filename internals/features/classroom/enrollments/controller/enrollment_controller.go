package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"classroom_backend/internals/features/classroom/enrollments/dto"
	"classroom_backend/internals/features/classroom/enrollments/repository"
	helper "classroom_backend/internals/helpers"
)

const resource = "Enrollment"

type EnrollmentController struct {
	Repo repository.EnrollmentRepository
	Log  *zap.Logger
}

func NewEnrollmentController(repo repository.EnrollmentRepository, log *zap.Logger) *EnrollmentController {
	return &EnrollmentController{Repo: repo, Log: log.Named("enrollments")}
}

// GET /enrollments?search=&student=&classId=
func (h *EnrollmentController) List(c *fiber.Ctx) error {
	q := dto.ListQuery{
		Search:    c.Query("search"),
		StudentID: helper.QueryString(c, "student"),
		Paging:    helper.ResolvePaging(c, helper.DefaultLimit, helper.MaxLimit),
		Order:     helper.ResolveOrder(c, dto.SortColumns, "createdAt", "e.id"),
	}
	classID, ok, err := helper.QueryID(c, "classId")
	if err != nil {
		return helper.WriteError(c, h.Log, err)
	}
	if ok {
		q.ClassID = &classID
	}

	rows, total, err := h.Repo.List(c.UserContext(), q)
	if err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to fetch enrollments"))
	}
	return helper.JsonList(c, dto.FromRows(rows), total, q.Paging)
}

// GET /enrollments/:id
func (h *EnrollmentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id", resource)
	if err != nil {
		return helper.WriteError(c, h.Log, err)
	}
	row, err := h.Repo.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to fetch enrollment"))
	}
	return helper.JsonOK(c, dto.FromRow(*row))
}

// POST /enrollments
func (h *EnrollmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateEnrollmentRequest
	if err := helper.BindJSON(c, &req); err != nil {
		return helper.WriteError(c, h.Log, err)
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return helper.WriteError(c, h.Log, helper.ValidationError(err))
	}

	m := req.ToModel()
	if err := h.Repo.Create(c.UserContext(), &m); err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to create enrollment"))
	}
	h.Log.Info("enrollment created",
		zap.Int64("id", m.ID),
		zap.String("student_id", m.StudentID),
		zap.Int64("class_id", m.ClassID),
	)

	row, err := h.Repo.GetByID(c.UserContext(), m.ID)
	if err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to create enrollment"))
	}
	return helper.JsonCreated(c, dto.FromRow(*row))
}

// PATCH /enrollments/:id
func (h *EnrollmentController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id", resource)
	if err != nil {
		return helper.WriteError(c, h.Log, err)
	}

	var req dto.UpdateEnrollmentRequest
	if err := helper.BindJSON(c, &req); err != nil {
		return helper.WriteError(c, h.Log, err)
	}
	if err := req.Validate(); err != nil {
		return helper.WriteError(c, h.Log, helper.ValidationError(err))
	}

	row, err := h.Repo.Update(c.UserContext(), id, req.Updates())
	if err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to update enrollment"))
	}
	return helper.JsonOK(c, dto.FromRow(*row))
}

// DELETE /enrollments/:id
func (h *EnrollmentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id", resource)
	if err != nil {
		return helper.WriteError(c, h.Log, err)
	}
	if err := h.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to delete enrollment"))
	}
	return helper.JsonDeleted(c, "Enrollment deleted successfully")
}
