package assignment

import (
	"context"
	"time"

	"go-erp/internal/common/apperror"
	"go-erp/internal/features/subrole"
	"go-erp/internal/features/user"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AssignmentService interface {
	Assign(ctx context.Context, userID, subRoleID, assignedBy primitive.ObjectID, expiresAt *time.Time) (*UserSubRole, error)
	Unassign(ctx context.Context, assignmentID string) error
	UpdateExpiration(ctx context.Context, assignmentID string, expiresAt *time.Time) error
	FindActiveByUser(ctx context.Context, userID primitive.ObjectID) ([]UserSubRole, error)
	FindActiveBySubRole(ctx context.Context, subRoleID primitive.ObjectID) ([]UserSubRole, error)
}

type AssignmentServiceImpl struct {
	AssignmentRepo AssignmentRepository
	SubRoleRepo    subrole.SubRoleRepository
	UserRepo       user.UserRepository
}

func NewAssignmentService(
	assignmentRepo AssignmentRepository,
	subRoleRepo subrole.SubRoleRepository,
	userRepo user.UserRepository,
) AssignmentService {
	return &AssignmentServiceImpl{
		AssignmentRepo: assignmentRepo,
		SubRoleRepo:    subRoleRepo,
		UserRepo:       userRepo,
	}
}

// Assign creates one active assignment per (user, subRole) pair. It is an
// idempotency guard, not an upsert: a second assign while one is active is a
// conflict. The partial unique index serializes concurrent attempts; a
// duplicate-key race surfaces as the same conflict.
func (s *AssignmentServiceImpl) Assign(ctx context.Context, userID, subRoleID, assignedBy primitive.ObjectID, expiresAt *time.Time) (*UserSubRole, error) {
	target, err := s.UserRepo.FindByID(ctx, userID.Hex())
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperror.NotFound("user not found")
	}

	subRole, err := s.SubRoleRepo.FindByID(ctx, subRoleID.Hex())
	if err != nil {
		return nil, err
	}
	if subRole == nil {
		return nil, apperror.NotFound("sub-role not found")
	}
	if !subRole.IsActive {
		return nil, apperror.Validation("cannot assign an inactive sub-role")
	}

	if expiresAt != nil && !expiresAt.After(time.Now()) {
		return nil, apperror.Validation("expiration must be in the future")
	}

	existing, err := s.AssignmentRepo.FindActivePair(ctx, userID, subRoleID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("user already has an active assignment for this sub-role")
	}

	now := time.Now()
	assignment := &UserSubRole{
		ID:         primitive.NewObjectID(),
		User:       userID,
		SubRole:    subRoleID,
		AssignedBy: assignedBy,
		AssignedAt: now,
		IsActive:   true,
		ExpiresAt:  expiresAt,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.AssignmentRepo.Create(ctx, assignment); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperror.Conflict("user already has an active assignment for this sub-role")
		}
		return nil, err
	}

	assignment.SubRoleDoc = subRole
	return assignment, nil
}

// Unassign is a soft delete: the record is kept with IsActive false.
func (s *AssignmentServiceImpl) Unassign(ctx context.Context, assignmentID string) error {
	assignment, err := s.AssignmentRepo.FindByID(ctx, assignmentID)
	if err != nil {
		return err
	}
	if assignment == nil {
		return apperror.NotFound("assignment not found")
	}

	return s.AssignmentRepo.SetActive(ctx, assignment.ID, false)
}

// UpdateExpiration replaces the expiration timestamp in place; IsActive is
// untouched. A nil expiresAt clears the bound.
func (s *AssignmentServiceImpl) UpdateExpiration(ctx context.Context, assignmentID string, expiresAt *time.Time) error {
	assignment, err := s.AssignmentRepo.FindByID(ctx, assignmentID)
	if err != nil {
		return err
	}
	if assignment == nil {
		return apperror.NotFound("assignment not found")
	}

	return s.AssignmentRepo.UpdateExpiration(ctx, assignment.ID, expiresAt)
}

func (s *AssignmentServiceImpl) FindActiveByUser(ctx context.Context, userID primitive.ObjectID) ([]UserSubRole, error) {
	return s.AssignmentRepo.FindActiveByUser(ctx, userID)
}

func (s *AssignmentServiceImpl) FindActiveBySubRole(ctx context.Context, subRoleID primitive.ObjectID) ([]UserSubRole, error) {
	return s.AssignmentRepo.FindActiveBySubRole(ctx, subRoleID)
}
