package middleware

import (
	"context"

	"go-erp/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// AccessEngine structurally mirrors access.AccessEngine. It is declared here
// so feature packages the access engine itself depends on (role, subrole,
// assignment) can wire these guards without importing the access package back
// into an import cycle — the same interface-adapter pattern used for
// subrole.AssignmentCounter.
type AccessEngine interface {
	CheckAccess(ctx context.Context, userID, module, submodule, action string) (bool, error)
	CheckModuleAccess(ctx context.Context, userID, module string) (bool, error)
	AllowedSubmodulesForUser(ctx context.Context, userID, module string) ([]string, error)
}

// RequireAccess guards a route with a full (module, submodule, action)
// resolution. A denied check is a 403, never an error response.
func RequireAccess(engine AccessEngine, module, submodule, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		allowed, err := engine.CheckAccess(c.Context(), claims.UserID, module, submodule, action)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal Server Error",
			})
		}
		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Insufficient permissions",
			})
		}

		return c.Next()
	}
}

// RequireModuleAccess guards a route with the coarse module-entry check only.
func RequireModuleAccess(engine AccessEngine, module string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		allowed, err := engine.CheckModuleAccess(c.Context(), claims.UserID, module)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal Server Error",
			})
		}
		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Insufficient permissions",
			})
		}

		return c.Next()
	}
}
