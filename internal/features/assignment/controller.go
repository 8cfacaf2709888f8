package assignment

import (
	"time"

	"go-erp/internal/common/apperror"
	"go-erp/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AssignmentController struct {
	Service  AssignmentService
	Validate *validator.Validate
}

func NewAssignmentController(service AssignmentService, validate *validator.Validate) *AssignmentController {
	return &AssignmentController{Service: service, Validate: validate}
}

type AssignRequest struct {
	UserID    string     `json:"user_id" validate:"required"`
	SubRoleID string     `json:"sub_role_id" validate:"required"`
	ExpiresAt *time.Time `json:"expires_at"`
}

type UpdateExpirationRequest struct {
	ExpiresAt *time.Time `json:"expires_at"`
}

func (ctrl *AssignmentController) Assign(c *fiber.Ctx) error {
	var req AssignRequest
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

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user id",
		})
	}
	subRoleID, err := primitive.ObjectIDFromHex(req.SubRoleID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid sub-role id",
		})
	}

	created, err := ctrl.Service.Assign(c.Context(), userID, subRoleID, currentUserID(c), req.ExpiresAt)
	if err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (ctrl *AssignmentController) Unassign(c *fiber.Ctx) error {
	if err := ctrl.Service.Unassign(c.Context(), c.Params("id")); err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Sub-role unassigned successfully",
	})
}

func (ctrl *AssignmentController) UpdateExpiration(c *fiber.Ctx) error {
	var req UpdateExpirationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := ctrl.Service.UpdateExpiration(c.Context(), c.Params("id"), req.ExpiresAt); err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Expiration updated successfully",
	})
}

func (ctrl *AssignmentController) ListByUser(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user id",
		})
	}

	assignments, err := ctrl.Service.FindActiveByUser(c.Context(), userID)
	if err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{
			"error": "Failed to fetch assignments",
		})
	}
	return c.JSON(fiber.Map{"assignments": assignments})
}

func (ctrl *AssignmentController) ListBySubRole(c *fiber.Ctx) error {
	subRoleID, err := primitive.ObjectIDFromHex(c.Params("subRoleId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid sub-role id",
		})
	}

	assignments, err := ctrl.Service.FindActiveBySubRole(c.Context(), subRoleID)
	if err != nil {
		return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{
			"error": "Failed to fetch assignments",
		})
	}
	return c.JSON(fiber.Map{"assignments": assignments})
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
