package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"classroom_backend/internals/features/classroom/subjects/dto"
	"classroom_backend/internals/features/classroom/subjects/repository"
	helper "classroom_backend/internals/helpers"
)

const resource = "Subject"

type SubjectController struct {
	Repo repository.SubjectRepository
	Log  *zap.Logger
}

func NewSubjectController(repo repository.SubjectRepository, log *zap.Logger) *SubjectController {
	return &SubjectController{Repo: repo, Log: log.Named("subjects")}
}

// GET /subjects?search=&department=&departmentId=
func (h *SubjectController) List(c *fiber.Ctx) error {
	q := dto.ListQuery{
		Search:     c.Query("search"),
		Department: helper.QueryString(c, "department"),
		Paging:     helper.ResolvePaging(c, helper.DefaultLimit, helper.MaxLimit),
		Order:      helper.ResolveOrder(c, dto.SortColumns, "createdAt", "s.id"),
	}
	deptID, ok, err := helper.QueryID(c, "departmentId")
	if err != nil {
		return helper.WriteError(c, h.Log, err)
	}
	if ok {
		q.DepartmentID = &deptID
	}

	rows, total, err := h.Repo.List(c.UserContext(), q)
	if err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to fetch subjects"))
	}
	return helper.JsonList(c, dto.FromRows(rows), total, q.Paging)
}

// GET /subjects/:id
func (h *SubjectController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id", resource)
	if err != nil {
		return helper.WriteError(c, h.Log, err)
	}
	row, err := h.Repo.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to fetch subject"))
	}
	return helper.JsonOK(c, dto.FromRow(*row))
}

// POST /subjects
func (h *SubjectController) Create(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := helper.BindJSON(c, &req); err != nil {
		return helper.WriteError(c, h.Log, err)
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return helper.WriteError(c, h.Log, helper.ValidationError(err))
	}

	m := req.ToModel()
	if err := h.Repo.Create(c.UserContext(), &m); err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to create subject"))
	}
	h.Log.Info("subject created", zap.Int64("id", m.ID), zap.Int64("department_id", m.DepartmentID))

	// re-read for the embedded department
	row, err := h.Repo.GetByID(c.UserContext(), m.ID)
	if err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to create subject"))
	}
	return helper.JsonCreated(c, dto.FromRow(*row))
}

// PATCH /subjects/:id
func (h *SubjectController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id", resource)
	if err != nil {
		return helper.WriteError(c, h.Log, err)
	}

	var req dto.UpdateSubjectRequest
	if err := helper.BindJSON(c, &req); err != nil {
		return helper.WriteError(c, h.Log, err)
	}
	if err := req.Validate(); err != nil {
		return helper.WriteError(c, h.Log, helper.ValidationError(err))
	}

	row, err := h.Repo.Update(c.UserContext(), id, req.Updates())
	if err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to update subject"))
	}
	return helper.JsonOK(c, dto.FromRow(*row))
}

// DELETE /subjects/:id
func (h *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id", resource)
	if err != nil {
		return helper.WriteError(c, h.Log, err)
	}
	if err := h.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to delete subject"))
	}
	h.Log.Info("subject deleted", zap.Int64("id", id))
	return helper.JsonDeleted(c, "Subject deleted successfully")
}
