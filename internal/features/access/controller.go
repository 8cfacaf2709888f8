package access

import (
	"go-erp/internal/common/apperror"
	"go-erp/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AccessController exposes the engine for self-service checks: frontends ask
// about the calling user only, identified by their token.
type AccessController struct {
	Engine   AccessEngine
	Validate *validator.Validate
}

func NewAccessController(engine AccessEngine, validate *validator.Validate) *AccessController {
	return &AccessController{Engine: engine, Validate: validate}
}

type CheckRequest struct {
	Module    string `json:"module" validate:"required"`
	Submodule string `json:"submodule"`
	Action    string `json:"action" validate:"required"`
}

func (ctrl *AccessController) Check(c *fiber.Ctx) error {
	var req CheckRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	allowed, err := ctrl.Engine.CheckAccess(c.Context(), currentUserID(c), req.Module, req.Submodule, req.Action)
	if err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{
			"error": "Failed to resolve access",
		})
	}
	return c.JSON(fiber.Map{"allowed": allowed})
}

func (ctrl *AccessController) CheckModule(c *fiber.Ctx) error {
	allowed, err := ctrl.Engine.CheckModuleAccess(c.Context(), currentUserID(c), c.Params("module"))
	if err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{
			"error": "Failed to resolve access",
		})
	}
	return c.JSON(fiber.Map{"allowed": allowed})
}

func (ctrl *AccessController) ListAllowedSubmodules(c *fiber.Ctx) error {
	submodules, err := ctrl.Engine.AllowedSubmodulesForUser(c.Context(), currentUserID(c), c.Params("module"))
	if err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{
			"error": "Failed to resolve access",
		})
	}
	return c.JSON(fiber.Map{
		"module":     c.Params("module"),
		"submodules": submodules,
	})
}

func currentUserID(c *fiber.Ctx) string {
	claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
	if !ok {
		return ""
	}
	return claims.UserID
}
