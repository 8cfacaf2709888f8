package role

import (
	"slices"
	"strings"
	"time"

	"go-erp/internal/common/apperror"
	"go-erp/internal/permissions"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Permission grants access within one module. Actions is the module-level
// list; Submodules narrows to specific capabilities. The two lists are
// independent, not unioned.
type Permission struct {
	Module     string                       `bson:"module" json:"module"`
	Actions    []string                     `bson:"actions" json:"actions"`
	Submodules []permissions.SubmoduleEntry `bson:"submodules" json:"submodules"`
}

// Role is an administrator-defined role document with structured permissions.
type Role struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name         string              `bson:"name" json:"name"`
	DisplayName  string              `bson:"displayName" json:"display_name"`
	Description  string              `bson:"description" json:"description"`
	Permissions  []Permission        `bson:"permissions" json:"permissions"`
	IsActive     bool                `bson:"isActive" json:"is_active"`
	IsSystemRole bool                `bson:"isSystemRole" json:"is_system_role"`
	CreatedBy    *primitive.ObjectID `bson:"createdBy,omitempty" json:"created_by,omitempty"`
	UpdatedBy    *primitive.ObjectID `bson:"updatedBy,omitempty" json:"updated_by,omitempty"`
	CreatedAt    time.Time           `bson:"createdAt" json:"created_at"`
	UpdatedAt    time.Time           `bson:"updatedAt" json:"updated_at"`
}

func (r *Role) findModule(module string) *Permission {
	for i := range r.Permissions {
		if r.Permissions[i].Module == module {
			return &r.Permissions[i]
		}
	}
	return nil
}

// HasModulePermission reports whether any permission entry targets the module.
func (r *Role) HasModulePermission(module string) bool {
	return r.findModule(module) != nil
}

// HasSubmodulePermission reports whether the module entry lists the submodule,
// in either the shorthand or the scoped form.
func (r *Role) HasSubmodulePermission(module, submodule string) bool {
	entry := r.findModule(module)
	if entry == nil {
		return false
	}
	for _, sub := range entry.Submodules {
		if sub.Submodule == submodule {
			return true
		}
	}
	return false
}

// HasActionPermission checks an action against the module entry. A scoped
// submodule tests its own actions; the legacy shorthand falls back to the
// module-level list, as does a check with no submodule or a module entry with
// no submodules at all.
func (r *Role) HasActionPermission(module, submodule, action string) bool {
	entry := r.findModule(module)
	if entry == nil {
		return false
	}

	if submodule != "" && len(entry.Submodules) > 0 {
		for _, sub := range entry.Submodules {
			if sub.Submodule != submodule {
				continue
			}
			if sub.Shorthand {
				return slices.Contains(entry.Actions, action)
			}
			return slices.Contains(sub.Actions, action)
		}
		return false
	}

	return slices.Contains(entry.Actions, action)
}

// AllowedModules lists every module this role grants anything for.
func (r *Role) AllowedModules() []string {
	out := make([]string, 0, len(r.Permissions))
	for _, entry := range r.Permissions {
		if !slices.Contains(out, entry.Module) {
			out = append(out, entry.Module)
		}
	}
	return out
}

// AllowedSubmodules lists the submodules granted within a module.
func (r *Role) AllowedSubmodules(module string) []string {
	entry := r.findModule(module)
	if entry == nil {
		return []string{}
	}
	out := make([]string, 0, len(entry.Submodules))
	for _, sub := range entry.Submodules {
		if !slices.Contains(out, sub.Submodule) {
			out = append(out, sub.Submodule)
		}
	}
	return out
}

// AllowedActions lists the actions granted for a (module, submodule) pair,
// mirroring HasActionPermission.
func (r *Role) AllowedActions(module, submodule string) []string {
	entry := r.findModule(module)
	if entry == nil {
		return []string{}
	}

	if submodule != "" && len(entry.Submodules) > 0 {
		for _, sub := range entry.Submodules {
			if sub.Submodule != submodule {
				continue
			}
			if sub.Shorthand {
				return slices.Clone(entry.Actions)
			}
			return slices.Clone(sub.Actions)
		}
		return []string{}
	}

	return slices.Clone(entry.Actions)
}

// PermissionDraft is a permission entry as received from the wire. Actions and
// Submodules are untyped because intermediary proxies have been observed
// re-serializing them into strings; the normalizer sorts it out.
type PermissionDraft struct {
	Module     string `json:"module"`
	Actions    any    `json:"actions"`
	Submodules any    `json:"submodules"`
}

// Draft is the write-path input for creating or updating a role.
type Draft struct {
	Name        string            `json:"name" validate:"required,min=2,max=100"`
	DisplayName string            `json:"display_name" validate:"max=100"`
	Description string            `json:"description" validate:"max=500"`
	Permissions []PermissionDraft `json:"permissions"`
	IsActive    *bool             `json:"is_active"`
}

// ValidateAndNormalize turns a draft into a structurally safe Role. It runs on
// every write path so no caller can persist a raw-string permission payload:
// the name is lower-cased, the display name defaults to the name, and every
// actions/submodules field is rebuilt through the payload normalizer.
func ValidateAndNormalize(draft Draft) (*Role, error) {
	name := strings.ToLower(strings.TrimSpace(draft.Name))
	if name == "" {
		return nil, apperror.Validation("role name is required")
	}

	displayName := strings.TrimSpace(draft.DisplayName)
	if displayName == "" {
		displayName = name
	}

	perms := make([]Permission, 0, len(draft.Permissions))
	for _, p := range draft.Permissions {
		module := strings.TrimSpace(p.Module)
		if module == "" {
			return nil, apperror.Validation("permission entry is missing a module")
		}
		perms = append(perms, Permission{
			Module:     module,
			Actions:    permissions.CoerceToStrings(p.Actions),
			Submodules: permissions.NormalizeSubmodules(p.Submodules),
		})
	}

	active := true
	if draft.IsActive != nil {
		active = *draft.IsActive
	}

	return &Role{
		Name:        name,
		DisplayName: displayName,
		Description: strings.TrimSpace(draft.Description),
		Permissions: perms,
		IsActive:    active,
	}, nil
}
