package role

import (
	"go-erp/internal/common/apperror"
	"go-erp/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RoleController struct {
	Service  RoleService
	Validate *validator.Validate
}

func NewRoleController(service RoleService, validate *validator.Validate) *RoleController {
	return &RoleController{Service: service, Validate: validate}
}

func (ctrl *RoleController) ListRoles(c *fiber.Ctx) error {
	roles, err := ctrl.Service.ListRoles(c.Context())
	if err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{
			"error": "Failed to fetch roles",
		})
	}
	return c.JSON(fiber.Map{"roles": roles})
}

func (ctrl *RoleController) GetRole(c *fiber.Ctx) error {
	role, err := ctrl.Service.GetRoleByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(role)
}

func (ctrl *RoleController) CreateRole(c *fiber.Ctx) error {
	var draft Draft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := ctrl.Validate.Struct(draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	created, err := ctrl.Service.CreateRole(c.Context(), draft, currentUserID(c))
	if err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (ctrl *RoleController) UpdateRole(c *fiber.Ctx) error {
	var draft Draft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := ctrl.Validate.Struct(draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	updated, err := ctrl.Service.UpdateRole(c.Context(), c.Params("id"), draft, currentUserID(c))
	if err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(updated)
}

func (ctrl *RoleController) DeleteRole(c *fiber.Ctx) error {
	if err := ctrl.Service.DeleteRole(c.Context(), c.Params("id")); err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Role deleted successfully",
	})
}

// currentUserID pulls the authenticated user's id out of the request
// context; a zero id means the route ran without auth (dev mode).
func currentUserID(c *fiber.Ctx) primitive.ObjectID {
	claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
	if !ok {
		return primitive.NilObjectID
	}
	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID
	}
	return id
}
