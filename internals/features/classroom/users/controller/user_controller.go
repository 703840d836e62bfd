package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"classroom_backend/internals/constants"
	"classroom_backend/internals/features/classroom/users/dto"
	"classroom_backend/internals/features/classroom/users/repository"
	helper "classroom_backend/internals/helpers"
)

const resource = "User"

type UserController struct {
	Repo repository.UserRepository
	Log  *zap.Logger
}

func NewUserController(repo repository.UserRepository, log *zap.Logger) *UserController {
	return &UserController{Repo: repo, Log: log.Named("users")}
}

// GET /users
func (h *UserController) List(c *fiber.Ctx) error {
	q := dto.ListQuery{
		Search: c.Query("search"),
		Role:   strings.TrimSpace(c.Query("role")),
		Paging: helper.ResolvePaging(c, helper.DefaultLimit, helper.MaxLimit),
		Order:  helper.ResolveOrder(c, dto.SortColumns, "createdAt", "id"),
	}
	if q.Role != "" && !constants.IsValidRole(q.Role) {
		return helper.WriteError(c, h.Log, helper.ValidationFailed("role must be one of: admin teacher student", nil))
	}

	rows, total, err := h.Repo.List(c.UserContext(), q)
	if err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to fetch users"))
	}
	return helper.JsonList(c, dto.FromModels(rows), total, q.Paging)
}

// GET /users/:id
func (h *UserController) GetByID(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return helper.WriteError(c, h.Log, helper.NotFound(resource))
	}
	m, err := h.Repo.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to fetch user"))
	}
	return helper.JsonOK(c, dto.FromModel(*m))
}

// POST /users
func (h *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := helper.BindJSON(c, &req); err != nil {
		return helper.WriteError(c, h.Log, err)
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return helper.WriteError(c, h.Log, helper.ValidationError(err))
	}

	m := req.ToModel()
	if err := h.Repo.Create(c.UserContext(), &m); err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to create user"))
	}
	h.Log.Info("user created", zap.String("id", m.ID), zap.String("role", m.Role))
	return helper.JsonCreated(c, dto.FromModel(m))
}

// PATCH /users/:id
func (h *UserController) Patch(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return helper.WriteError(c, h.Log, helper.NotFound(resource))
	}

	var req dto.UpdateUserRequest
	if err := helper.BindJSON(c, &req); err != nil {
		return helper.WriteError(c, h.Log, err)
	}
	if err := req.Validate(); err != nil {
		return helper.WriteError(c, h.Log, helper.ValidationError(err))
	}

	m, err := h.Repo.Update(c.UserContext(), id, req.Updates())
	if err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to update user"))
	}
	return helper.JsonOK(c, dto.FromModel(*m))
}

// DELETE /users/:id
func (h *UserController) Delete(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return helper.WriteError(c, h.Log, helper.NotFound(resource))
	}
	if err := h.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.WriteError(c, h.Log, helper.FromDBError(err, resource, "Failed to delete user"))
	}
	h.Log.Info("user deleted", zap.String("id", id))
	return helper.JsonDeleted(c, "User deleted successfully")
}
