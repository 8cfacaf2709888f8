package access

import (
	"go-erp/internal/config"
	"go-erp/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AccessApi struct {
	controller *AccessController
	config     *config.Config
}

func NewAccessApi(controller *AccessController, cfg *config.Config) *AccessApi {
	return &AccessApi{
		controller: controller,
		config:     cfg,
	}
}

// Setup registers self-service access routes. Auth is required but there is
// no permission guard: any authenticated user may ask about themselves.
func (h *AccessApi) Setup(app *fiber.App) {
	accessGroup := app.Group("/api/access", middleware.AuthMiddleware(h.config.SkipAuth))

	accessGroup.Post("/check", h.controller.Check)
	accessGroup.Get("/modules/:module", h.controller.CheckModule)
	accessGroup.Get("/modules/:module/submodules", h.controller.ListAllowedSubmodules)
}
