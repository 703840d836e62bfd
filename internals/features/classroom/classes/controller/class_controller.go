package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"classroom_backend/internals/features/classroom/classes/dto"
	"classroom_backend/internals/features/classroom/classes/repository"
	helper "classroom_backend/internals/helpers"
)

const resource = "Class"

type ClassController struct {
	Repo repository.ClassRepository
	Log  *zap.Logger
}

func NewClassController(repo repository.ClassRepository, log *zap.Logger) *ClassController {
	return &ClassController{Repo: repo, Log: log.Named("classes")}
}

/* =========================================================
   LIST
   GET /classes?search=&subject=&teacher=&subjectId=&teacherId=&status=
   ========================================================= */

func (h *ClassController) List(c *fiber.Ctx) error {
	q := dto.ListQuery{
		Search:    c.Query("search"),
		Subject:   helper.QueryString(c, "subject"),
		Teacher:   helper.QueryString(c, "teacher"),
		TeacherID: helper.QueryString(c, "teacherId"),
		Status:    helper.QueryString(c, "status"),
		Paging:    helper.ResolvePaging(c, helper.DefaultLimit, helper.MaxLimit),
		Order:     helper.ResolveOrder(c, dto.SortColumns, "createdAt", "c.id"),
	}
	subjectID, ok, err := helper.QueryID(c, "subjectId")
	if err != nil {
		return helper.WriteError(c, h.Log, err)
	}
	if ok {
		q.SubjectID = &subjectID
	}
	if q.Status != nil && !dto.IsValidStatus(*q.Status) {
		return helper.WriteError(c, h.Log, helper.ValidationFailed("status must be one of: active inactive archived", nil))
	}

	rows, total, err := h.Repo.List(c.UserContext(), q)
	if err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to fetch classes"))
	}
	return helper.JsonList(c, dto.FromRows(rows), total, q.Paging)
}

// GET /classes/:id
func (h *ClassController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id", resource)
	if err != nil {
		return helper.WriteError(c, h.Log, err)
	}
	row, err := h.Repo.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to fetch class"))
	}
	return helper.JsonOK(c, dto.FromRow(*row))
}

// POST /classes
func (h *ClassController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := helper.BindJSON(c, &req); err != nil {
		return helper.WriteError(c, h.Log, err)
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return helper.WriteError(c, h.Log, helper.ValidationError(err))
	}

	m := req.ToModel()
	if err := h.Repo.Create(c.UserContext(), &m); err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to create class"))
	}
	h.Log.Info("class created",
		zap.Int64("id", m.ID),
		zap.String("invite_code", m.InviteCode),
		zap.Int("capacity", m.Capacity),
	)

	row, err := h.Repo.GetByID(c.UserContext(), m.ID)
	if err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to create class"))
	}
	return helper.JsonCreated(c, dto.FromRow(*row))
}

// PATCH /classes/:id
func (h *ClassController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id", resource)
	if err != nil {
		return helper.WriteError(c, h.Log, err)
	}

	var req dto.UpdateClassRequest
	if err := helper.BindJSON(c, &req); err != nil {
		return helper.WriteError(c, h.Log, err)
	}
	if err := req.Validate(); err != nil {
		return helper.WriteError(c, h.Log, helper.ValidationError(err))
	}

	row, err := h.Repo.Update(c.UserContext(), id, req.Updates())
	if err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to update class"))
	}
	return helper.JsonOK(c, dto.FromRow(*row))
}

// DELETE /classes/:id
func (h *ClassController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id", resource)
	if err != nil {
		return helper.WriteError(c, h.Log, err)
	}
	if err := h.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to delete class"))
	}
	h.Log.Info("class deleted", zap.Int64("id", id))
	return helper.JsonDeleted(c, "Class deleted successfully")
}
