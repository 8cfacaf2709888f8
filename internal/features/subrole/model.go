package subrole

import (
	"slices"
	"strings"
	"time"

	"go-erp/internal/common/apperror"
	"go-erp/internal/permissions"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubRolePermission grants a set of actions on one submodule. There is no
// module-level catch-all: a sub-role is inherently a restriction to specific
// submodules.
type SubRolePermission struct {
	Submodule string   `bson:"submodule" json:"submodule"`
	Actions   []string `bson:"actions" json:"actions"`
}

// SubRole is a module-scoped permission set assignable to users on top of
// their base role.
type SubRole struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name        string              `bson:"name" json:"name"`
	Description string              `bson:"description" json:"description"`
	Module      string              `bson:"module" json:"module"`
	IsActive    bool                `bson:"isActive" json:"is_active"`
	CreatedBy   *primitive.ObjectID `bson:"createdBy,omitempty" json:"created_by,omitempty"`
	Permissions []SubRolePermission `bson:"permissions" json:"permissions"`
	CreatedAt   time.Time           `bson:"createdAt" json:"created_at"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updated_at"`
}

// HasPermission reports whether this sub-role grants an action on a
// submodule. A missing submodule entry is a deny.
func (s *SubRole) HasPermission(submodule, action string) bool {
	for _, p := range s.Permissions {
		if p.Submodule == submodule {
			return slices.Contains(p.Actions, action)
		}
	}
	return false
}

// AllowedSubmodules lists the submodules this sub-role grants anything for.
func (s *SubRole) AllowedSubmodules() []string {
	out := make([]string, 0, len(s.Permissions))
	for _, p := range s.Permissions {
		if !slices.Contains(out, p.Submodule) {
			out = append(out, p.Submodule)
		}
	}
	return out
}

// PermissionDraft is one submodule grant as received from the wire; Actions is
// untyped so stringified payloads pass through the normalizer.
type PermissionDraft struct {
	Submodule string `json:"submodule"`
	Actions   any    `json:"actions"`
}

// Draft is the write-path input for creating or updating a sub-role.
type Draft struct {
	Name        string            `json:"name" validate:"required,min=2,max=100"`
	Description string            `json:"description" validate:"max=500"`
	Module      string            `json:"module" validate:"required"`
	Permissions []PermissionDraft `json:"permissions" validate:"required,min=1"`
}

// ValidateAndNormalize turns a draft into a structurally safe SubRole. Every
// submodule must belong to the sub-role's module per the catalog, and every
// grant must keep at least one action after coercion — an empty grant would
// otherwise be indistinguishable from a fail-closed normalizer result.
func ValidateAndNormalize(catalog *permissions.Catalog, draft Draft) (*SubRole, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return nil, apperror.Validation("sub-role name is required")
	}

	module := strings.TrimSpace(draft.Module)
	if !catalog.ValidModule(module) {
		return nil, apperror.Validation("invalid module: %s", module)
	}

	if len(draft.Permissions) == 0 {
		return nil, apperror.Validation("at least one permission is required")
	}

	perms := make([]SubRolePermission, 0, len(draft.Permissions))
	for _, p := range draft.Permissions {
		submodule := strings.TrimSpace(p.Submodule)
		if submodule == "" {
			return nil, apperror.Validation("permission entry is missing a submodule")
		}
		if !catalog.ValidSubmodule(module, submodule) {
			return nil, apperror.Validation("invalid submodule: %s for module: %s", submodule, module)
		}

		actions := permissions.CoerceToStrings(p.Actions)
		if len(actions) == 0 {
			return nil, apperror.Validation("at least one action is required for submodule %s", submodule)
		}
		perms = append(perms, SubRolePermission{Submodule: submodule, Actions: actions})
	}

	return &SubRole{
		Name:        name,
		Description: strings.TrimSpace(draft.Description),
		Module:      module,
		IsActive:    true,
		Permissions: perms,
	}, nil
}
