package assignment

import (
	"go-erp/internal/config"
	"go-erp/internal/middleware"
	"go-erp/internal/permissions"

	"github.com/gofiber/fiber/v2"
)

type AssignmentApi struct {
	controller *AssignmentController
	config     *config.Config
	engine     middleware.AccessEngine
}

func NewAssignmentApi(controller *AssignmentController, cfg *config.Config, engine middleware.AccessEngine) *AssignmentApi {
	return &AssignmentApi{
		controller: controller,
		config:     cfg,
		engine:     engine,
	}
}

// Setup registers assignment routes. Assigning sub-roles is a user-management
// capability, so the guards point there rather than at sub_roles.
func (h *AssignmentApi) Setup(app *fiber.App) {
	assignments := app.Group("/api/user-sub-roles", middleware.AuthMiddleware(h.config.SkipAuth))

	assignments.Post("/", middleware.RequireAccess(h.engine, permissions.ModuleAdmin, "user_management", permissions.ActionUpdate), h.controller.Assign)
	assignments.Delete("/:id", middleware.RequireAccess(h.engine, permissions.ModuleAdmin, "user_management", permissions.ActionUpdate), h.controller.Unassign)
	assignments.Patch("/:id/expiration", middleware.RequireAccess(h.engine, permissions.ModuleAdmin, "user_management", permissions.ActionUpdate), h.controller.UpdateExpiration)
	assignments.Get("/user/:userId", middleware.RequireAccess(h.engine, permissions.ModuleAdmin, "user_management", permissions.ActionRead), h.controller.ListByUser)
	assignments.Get("/sub-role/:subRoleId", middleware.RequireAccess(h.engine, permissions.ModuleAdmin, "user_management", permissions.ActionRead), h.controller.ListBySubRole)
}
