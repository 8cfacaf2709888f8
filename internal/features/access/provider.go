package access

import (
	"context"

	"go-erp/internal/common/models"
	"go-erp/internal/features/role"
	"go-erp/internal/permissions"
)

// RoleAccessProvider answers whether a user's base role grants entry to a
// module. The engine depends only on this interface; the static legacy table
// and the dynamic Role documents are two implementations behind it.
type RoleAccessProvider interface {
	HasModuleAccess(ctx context.Context, u *models.User, module string) (bool, error)
}

// StaticRoleProvider answers from the catalog's legacy role table.
type StaticRoleProvider struct {
	Catalog *permissions.Catalog
}

func NewStaticRoleProvider(catalog *permissions.Catalog) *StaticRoleProvider {
	return &StaticRoleProvider{Catalog: catalog}
}

func (p *StaticRoleProvider) HasModuleAccess(_ context.Context, u *models.User, module string) (bool, error) {
	return p.Catalog.HasModuleAccess(u.Role, module), nil
}

// DocumentRoleProvider answers from the user's dynamic Role document and
// falls back to the static table when no usable document exists. A user may
// reference a Role by id (RoleRef) or implicitly by their role name matching
// a Role document.
type DocumentRoleProvider struct {
	Roles    role.RoleRepository
	Fallback RoleAccessProvider
}

func NewDocumentRoleProvider(roles role.RoleRepository, fallback *StaticRoleProvider) *DocumentRoleProvider {
	return &DocumentRoleProvider{Roles: roles, Fallback: fallback}
}

func (p *DocumentRoleProvider) HasModuleAccess(ctx context.Context, u *models.User, module string) (bool, error) {
	doc, err := p.lookup(ctx, u)
	if err != nil {
		return false, err
	}
	if doc == nil || !doc.IsActive {
		return p.Fallback.HasModuleAccess(ctx, u, module)
	}
	return doc.HasModulePermission(module), nil
}

func (p *DocumentRoleProvider) lookup(ctx context.Context, u *models.User) (*role.Role, error) {
	if u.RoleRef != nil {
		return p.Roles.FindByID(ctx, u.RoleRef.Hex())
	}
	if u.Role != "" {
		return p.Roles.FindByName(ctx, u.Role)
	}
	return nil, nil
}
