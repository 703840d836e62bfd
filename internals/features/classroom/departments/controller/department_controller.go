package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"classroom_backend/internals/features/classroom/departments/dto"
	"classroom_backend/internals/features/classroom/departments/model"
	"classroom_backend/internals/features/classroom/departments/repository"
	helper "classroom_backend/internals/helpers"
)

const resource = "Department"

type DepartmentController struct {
	Repo repository.DepartmentRepository
	Log  *zap.Logger
}

func NewDepartmentController(repo repository.DepartmentRepository, log *zap.Logger) *DepartmentController {
	return &DepartmentController{Repo: repo, Log: log.Named("departments")}
}

// GET /departments
func (h *DepartmentController) List(c *fiber.Ctx) error {
	q := dto.ListQuery{
		Search: c.Query("search"),
		Paging: helper.ResolvePaging(c, helper.DefaultLimit, helper.MaxLimit),
		Order:  helper.ResolveOrder(c, dto.SortColumns, "createdAt", "d.id"),
	}

	rows, total, err := h.Repo.List(c.UserContext(), q)
	if err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to fetch departments"))
	}
	return helper.JsonList(c, dto.FromRows(rows), total, q.Paging)
}

// GET /departments/:id
func (h *DepartmentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id", resource)
	if err != nil {
		return helper.WriteError(c, h.Log, err)
	}
	row, err := h.Repo.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to fetch department"))
	}
	return helper.JsonOK(c, dto.FromRow(*row))
}

// POST /departments
func (h *DepartmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateDepartmentRequest
	if err := helper.BindJSON(c, &req); err != nil {
		return helper.WriteError(c, h.Log, err)
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return helper.WriteError(c, h.Log, helper.ValidationError(err))
	}

	m := req.ToModel()
	if err := h.Repo.Create(c.UserContext(), &m); err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to create department"))
	}
	h.Log.Info("department created", zap.Int64("id", m.ID), zap.String("code", m.Code))
	return helper.JsonCreated(c, dto.FromRow(model.DepartmentRow{DepartmentModel: m}))
}

// PATCH /departments/:id
func (h *DepartmentController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id", resource)
	if err != nil {
		return helper.WriteError(c, h.Log, err)
	}

	var req dto.UpdateDepartmentRequest
	if err := helper.BindJSON(c, &req); err != nil {
		return helper.WriteError(c, h.Log, err)
	}
	if err := req.Validate(); err != nil {
		return helper.WriteError(c, h.Log, helper.ValidationError(err))
	}

	row, err := h.Repo.Update(c.UserContext(), id, req.Updates())
	if err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to update department"))
	}
	return helper.JsonOK(c, dto.FromRow(*row))
}

// DELETE /departments/:id
func (h *DepartmentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id", resource)
	if err != nil {
		return helper.WriteError(c, h.Log, err)
	}
	if err := h.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to delete department"))
	}
	h.Log.Info("department deleted", zap.Int64("id", id))
	return helper.JsonDeleted(c, "Department deleted successfully")
}
