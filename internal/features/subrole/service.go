package subrole

import (
	"context"
	"strings"
	"time"

	"go-erp/internal/common/apperror"
	"go-erp/internal/permissions"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssignmentCounter reports how many active assignments reference a sub-role.
// Implemented by the assignment ledger; declared here to keep the dependency
// one-directional.
type AssignmentCounter interface {
	CountActiveBySubRole(ctx context.Context, subRoleID primitive.ObjectID) (int64, error)
}

type SubRoleService interface {
	CreateSubRole(ctx context.Context, draft Draft, createdBy primitive.ObjectID) (*SubRole, error)
	GetSubRoleByID(ctx context.Context, id string) (*SubRole, error)
	ListSubRoles(ctx context.Context, filter ListFilter) ([]SubRole, int64, error)
	UpdateSubRole(ctx context.Context, id string, draft Draft) (*SubRole, error)
	DeleteSubRole(ctx context.Context, id string) error
	SubmodulesForModule(module string) ([]string, error)
}

type SubRoleServiceImpl struct {
	SubRoleRepo SubRoleRepository
	Assignments AssignmentCounter
	Catalog     *permissions.Catalog
}

func NewSubRoleService(subRoleRepo SubRoleRepository, assignments AssignmentCounter, catalog *permissions.Catalog) SubRoleService {
	return &SubRoleServiceImpl{
		SubRoleRepo: subRoleRepo,
		Assignments: assignments,
		Catalog:     catalog,
	}
}

func (s *SubRoleServiceImpl) CreateSubRole(ctx context.Context, draft Draft, createdBy primitive.ObjectID) (*SubRole, error) {
	clean, err := ValidateAndNormalize(s.Catalog, draft)
	if err != nil {
		return nil, err
	}

	existing, err := s.SubRoleRepo.FindActiveByName(ctx, clean.Module, clean.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("sub-role with this name already exists for this module")
	}

	clean.ID = primitive.NewObjectID()
	clean.CreatedBy = &createdBy
	clean.CreatedAt = time.Now()
	clean.UpdatedAt = clean.CreatedAt

	if err := s.SubRoleRepo.Create(ctx, clean); err != nil {
		return nil, err
	}
	return clean, nil
}

func (s *SubRoleServiceImpl) GetSubRoleByID(ctx context.Context, id string) (*SubRole, error) {
	subRole, err := s.SubRoleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subRole == nil {
		return nil, apperror.NotFound("sub-role not found")
	}
	return subRole, nil
}

func (s *SubRoleServiceImpl) ListSubRoles(ctx context.Context, filter ListFilter) ([]SubRole, int64, error) {
	return s.SubRoleRepo.List(ctx, filter)
}

// UpdateSubRole keeps the sub-role's module fixed: permissions in the draft
// are validated against the stored module, not a module from the request.
func (s *SubRoleServiceImpl) UpdateSubRole(ctx context.Context, id string, draft Draft) (*SubRole, error) {
	existing, err := s.SubRoleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("sub-role not found")
	}

	draft.Module = existing.Module
	clean, err := ValidateAndNormalize(s.Catalog, draft)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(clean.Name, existing.Name) {
		duplicate, err := s.SubRoleRepo.FindActiveByName(ctx, existing.Module, clean.Name)
		if err != nil {
			return nil, err
		}
		if duplicate != nil && duplicate.ID != existing.ID {
			return nil, apperror.Conflict("sub-role with this name already exists for this module")
		}
	}

	clean.ID = existing.ID
	clean.IsActive = existing.IsActive
	clean.CreatedBy = existing.CreatedBy
	clean.CreatedAt = existing.CreatedAt
	clean.UpdatedAt = time.Now()

	if err := s.SubRoleRepo.Update(ctx, id, clean); err != nil {
		return nil, err
	}
	return clean, nil
}

// DeleteSubRole soft-deletes: the document stays for audit history, flagged
// inactive. Refused while any active assignment still references it.
func (s *SubRoleServiceImpl) DeleteSubRole(ctx context.Context, id string) error {
	existing, err := s.SubRoleRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("sub-role not found")
	}

	count, err := s.Assignments.CountActiveBySubRole(ctx, existing.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.Conflict("cannot delete sub-role: it is assigned to %d user(s), unassign them first", count)
	}

	existing.IsActive = false
	existing.UpdatedAt = time.Now()
	return s.SubRoleRepo.Update(ctx, id, existing)
}

func (s *SubRoleServiceImpl) SubmodulesForModule(module string) ([]string, error) {
	if !s.Catalog.ValidModule(module) {
		return nil, apperror.Validation("invalid module: %s", module)
	}
	return s.Catalog.SubmodulesFor(module), nil
}
