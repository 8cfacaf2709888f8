package role

import (
	"go-erp/internal/config"
	"go-erp/internal/middleware"
	"go-erp/internal/permissions"

	"github.com/gofiber/fiber/v2"
)

type RoleApi struct {
	controller *RoleController
	config     *config.Config
	engine     middleware.AccessEngine
}

func NewRoleApi(controller *RoleController, cfg *config.Config, engine middleware.AccessEngine) *RoleApi {
	return &RoleApi{
		controller: controller,
		config:     cfg,
		engine:     engine,
	}
}

// Setup registers role routes. Role management lives in the admin module's
// user_management area.
func (h *RoleApi) Setup(app *fiber.App) {
	roles := app.Group("/api/roles", middleware.AuthMiddleware(h.config.SkipAuth))

	roles.Get("/", middleware.RequireAccess(h.engine, permissions.ModuleAdmin, "user_management", permissions.ActionRead), h.controller.ListRoles)
	roles.Post("/", middleware.RequireAccess(h.engine, permissions.ModuleAdmin, "user_management", permissions.ActionCreate), h.controller.CreateRole)
	roles.Get("/:id", middleware.RequireAccess(h.engine, permissions.ModuleAdmin, "user_management", permissions.ActionRead), h.controller.GetRole)
	roles.Put("/:id", middleware.RequireAccess(h.engine, permissions.ModuleAdmin, "user_management", permissions.ActionUpdate), h.controller.UpdateRole)
	roles.Delete("/:id", middleware.RequireAccess(h.engine, permissions.ModuleAdmin, "user_management", permissions.ActionDelete), h.controller.DeleteRole)
}
