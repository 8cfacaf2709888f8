package subrole

import (
	"strconv"

	"go-erp/internal/common/apperror"
	"go-erp/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SubRoleController struct {
	Service  SubRoleService
	Validate *validator.Validate
}

func NewSubRoleController(service SubRoleService, validate *validator.Validate) *SubRoleController {
	return &SubRoleController{Service: service, Validate: validate}
}

func (ctrl *SubRoleController) ListSubRoles(c *fiber.Ctx) error {
	page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.Query("limit", "10"), 10, 64)

	filter := ListFilter{
		Module: c.Query("module"),
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}

	subRoles, total, err := ctrl.Service.ListSubRoles(c.Context(), filter)
	if err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{
			"error": "Failed to fetch sub-roles",
		})
	}

	return c.JSON(fiber.Map{
		"sub_roles": subRoles,
		"total":     total,
		"page":      page,
		"limit":     limit,
	})
}

func (ctrl *SubRoleController) GetSubRole(c *fiber.Ctx) error {
	subRole, err := ctrl.Service.GetSubRoleByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(subRole)
}

func (ctrl *SubRoleController) CreateSubRole(c *fiber.Ctx) error {
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

	created, err := ctrl.Service.CreateSubRole(c.Context(), draft, currentUserID(c))
	if err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (ctrl *SubRoleController) UpdateSubRole(c *fiber.Ctx) error {
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

	updated, err := ctrl.Service.UpdateSubRole(c.Context(), c.Params("id"), draft)
	if err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(updated)
}

func (ctrl *SubRoleController) DeleteSubRole(c *fiber.Ctx) error {
	if err := ctrl.Service.DeleteSubRole(c.Context(), c.Params("id")); err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Sub-role deleted successfully",
	})
}

// ListModuleSubmodules enumerates the valid submodules for a module, for
// admin UIs building permission pickers.
func (ctrl *SubRoleController) ListModuleSubmodules(c *fiber.Ctx) error {
	submodules, err := ctrl.Service.SubmodulesForModule(c.Params("module"))
	if err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"module":     c.Params("module"),
		"submodules": submodules,
	})
}

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
