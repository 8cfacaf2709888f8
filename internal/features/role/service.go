package role

import (
	"context"
	"time"

	"go-erp/internal/common/apperror"
	"go-erp/internal/features/user"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RoleService interface {
	CreateRole(ctx context.Context, draft Draft, createdBy primitive.ObjectID) (*Role, error)
	GetRoleByID(ctx context.Context, id string) (*Role, error)
	GetRoleByName(ctx context.Context, name string) (*Role, error)
	ListRoles(ctx context.Context) ([]Role, error)
	UpdateRole(ctx context.Context, id string, draft Draft, updatedBy primitive.ObjectID) (*Role, error)
	DeleteRole(ctx context.Context, id string) error
}

type RoleServiceImpl struct {
	RoleRepo RoleRepository
	UserRepo user.UserRepository
}

func NewRoleService(roleRepo RoleRepository, userRepo user.UserRepository) RoleService {
	return &RoleServiceImpl{
		RoleRepo: roleRepo,
		UserRepo: userRepo,
	}
}

func (s *RoleServiceImpl) CreateRole(ctx context.Context, draft Draft, createdBy primitive.ObjectID) (*Role, error) {
	clean, err := ValidateAndNormalize(draft)
	if err != nil {
		return nil, err
	}

	existing, err := s.RoleRepo.FindByName(ctx, clean.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("role %q already exists", clean.Name)
	}

	clean.ID = primitive.NewObjectID()
	clean.CreatedBy = &createdBy
	clean.CreatedAt = time.Now()
	clean.UpdatedAt = clean.CreatedAt

	if err := s.RoleRepo.Create(ctx, clean); err != nil {
		return nil, err
	}
	return clean, nil
}

func (s *RoleServiceImpl) GetRoleByID(ctx context.Context, id string) (*Role, error) {
	role, err := s.RoleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, apperror.NotFound("role not found")
	}
	return role, nil
}

func (s *RoleServiceImpl) GetRoleByName(ctx context.Context, name string) (*Role, error) {
	role, err := s.RoleRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, apperror.NotFound("role not found")
	}
	return role, nil
}

func (s *RoleServiceImpl) ListRoles(ctx context.Context) ([]Role, error) {
	return s.RoleRepo.List(ctx)
}

func (s *RoleServiceImpl) UpdateRole(ctx context.Context, id string, draft Draft, updatedBy primitive.ObjectID) (*Role, error) {
	existing, err := s.RoleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("role not found")
	}

	clean, err := ValidateAndNormalize(draft)
	if err != nil {
		return nil, err
	}

	if existing.IsSystemRole && clean.Name != existing.Name {
		return nil, apperror.Conflict("cannot rename system role %q", existing.Name)
	}

	clean.ID = existing.ID
	clean.IsSystemRole = existing.IsSystemRole
	clean.CreatedBy = existing.CreatedBy
	clean.CreatedAt = existing.CreatedAt
	clean.UpdatedBy = &updatedBy
	clean.UpdatedAt = time.Now()

	if err := s.RoleRepo.Update(ctx, id, clean); err != nil {
		return nil, err
	}
	return clean, nil
}

// DeleteRole refuses system roles and roles still referenced by users,
// regardless of which external path invoked it.
func (s *RoleServiceImpl) DeleteRole(ctx context.Context, id string) error {
	existing, err := s.RoleRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("role not found")
	}

	if existing.IsSystemRole {
		return apperror.Conflict("cannot delete system role")
	}

	count, err := s.UserRepo.CountByRole(ctx, existing.Name)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.Conflict("cannot delete role: %d user(s) still hold it", count)
	}

	return s.RoleRepo.Delete(ctx, id)
}
