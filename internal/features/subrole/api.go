package subrole

import (
	"go-erp/internal/config"
	"go-erp/internal/middleware"
	"go-erp/internal/permissions"

	"github.com/gofiber/fiber/v2"
)

type SubRoleApi struct {
	controller *SubRoleController
	config     *config.Config
	engine     middleware.AccessEngine
}

func NewSubRoleApi(controller *SubRoleController, cfg *config.Config, engine middleware.AccessEngine) *SubRoleApi {
	return &SubRoleApi{
		controller: controller,
		config:     cfg,
		engine:     engine,
	}
}

// Setup registers sub-role routes under the admin module's sub_roles area.
func (h *SubRoleApi) Setup(app *fiber.App) {
	subRoles := app.Group("/api/sub-roles", middleware.AuthMiddleware(h.config.SkipAuth))

	subRoles.Get("/", middleware.RequireAccess(h.engine, permissions.ModuleAdmin, "sub_roles", permissions.ActionRead), h.controller.ListSubRoles)
	subRoles.Get("/modules/:module/submodules", middleware.RequireAccess(h.engine, permissions.ModuleAdmin, "sub_roles", permissions.ActionRead), h.controller.ListModuleSubmodules)
	subRoles.Post("/", middleware.RequireAccess(h.engine, permissions.ModuleAdmin, "sub_roles", permissions.ActionCreate), h.controller.CreateSubRole)
	subRoles.Get("/:id", middleware.RequireAccess(h.engine, permissions.ModuleAdmin, "sub_roles", permissions.ActionRead), h.controller.GetSubRole)
	subRoles.Put("/:id", middleware.RequireAccess(h.engine, permissions.ModuleAdmin, "sub_roles", permissions.ActionUpdate), h.controller.UpdateSubRole)
	subRoles.Delete("/:id", middleware.RequireAccess(h.engine, permissions.ModuleAdmin, "sub_roles", permissions.ActionDelete), h.controller.DeleteSubRole)
}
