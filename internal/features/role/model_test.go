package role

import (
	"reflect"
	"testing"

	"go-erp/internal/common/apperror"
	"go-erp/internal/permissions"
)

func hrRole() *Role {
	return &Role{
		Name:     "hr_clerk",
		IsActive: true,
		Permissions: []Permission{
			{
				Module:  "hr",
				Actions: []string{"read", "view"},
				Submodules: []permissions.SubmoduleEntry{
					{Submodule: "payroll_management", Actions: []string{"read"}},
					{Submodule: "leave_management", Actions: []string{}, Shorthand: true},
				},
			},
			{
				Module:  "dashboard",
				Actions: []string{"view"},
			},
		},
	}
}

func TestHasActionPermission(t *testing.T) {
	r := hrRole()

	tests := []struct {
		name      string
		module    string
		submodule string
		action    string
		want      bool
	}{
		{name: "Scoped Submodule Grants Its Action", module: "hr", submodule: "payroll_management", action: "read", want: true},
		{name: "Scoped Submodule Denies Other Action", module: "hr", submodule: "payroll_management", action: "update", want: false},
		{name: "Shorthand Falls Back To Module Actions", module: "hr", submodule: "leave_management", action: "view", want: true},
		{name: "Shorthand Denies Unlisted Module Action", module: "hr", submodule: "leave_management", action: "delete", want: false},
		{name: "Unlisted Submodule Denied", module: "hr", submodule: "loan_management", action: "read", want: false},
		{name: "Empty Submodule Tests Module Actions", module: "hr", submodule: "", action: "read", want: true},
		{name: "Module Without Submodules Uses Module Actions", module: "dashboard", submodule: "overview", action: "view", want: true},
		{name: "Unknown Module Denied", module: "finance", submodule: "", action: "read", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.HasActionPermission(tt.module, tt.submodule, tt.action); got != tt.want {
				t.Errorf("HasActionPermission(%q, %q, %q) = %v, want %v", tt.module, tt.submodule, tt.action, got, tt.want)
			}
		})
	}
}

func TestHasSubmodulePermission(t *testing.T) {
	r := hrRole()

	if !r.HasSubmodulePermission("hr", "leave_management") {
		t.Error("shorthand entry should count as listed")
	}
	if r.HasSubmodulePermission("hr", "loan_management") {
		t.Error("unlisted submodule should be denied")
	}
	if r.HasSubmodulePermission("finance", "banking") {
		t.Error("unknown module should be denied")
	}
}

func TestAllowedActions(t *testing.T) {
	r := hrRole()

	if got := r.AllowedActions("hr", "payroll_management"); !reflect.DeepEqual(got, []string{"read"}) {
		t.Errorf("scoped actions = %v", got)
	}
	if got := r.AllowedActions("hr", "leave_management"); !reflect.DeepEqual(got, []string{"read", "view"}) {
		t.Errorf("shorthand actions = %v", got)
	}
	if got := r.AllowedActions("hr", "loan_management"); len(got) != 0 {
		t.Errorf("unlisted submodule actions = %v, want empty", got)
	}
}

func TestValidateAndNormalize(t *testing.T) {
	draft := Draft{
		Name: "HR_Clerk",
		Permissions: []PermissionDraft{
			{
				Module:     "hr",
				Actions:    `['read','view']`,
				Submodules: `["leave_management", {submodule: 'payroll_management', actions: ['read']}]`,
			},
		},
	}

	r, err := ValidateAndNormalize(draft)
	if err != nil {
		t.Fatalf("ValidateAndNormalize: %v", err)
	}

	if r.Name != "hr_clerk" {
		t.Errorf("name = %q, want lower-cased", r.Name)
	}
	if r.DisplayName != "hr_clerk" {
		t.Errorf("display name should default to name, got %q", r.DisplayName)
	}
	if !r.IsActive {
		t.Error("new roles default to active")
	}

	perm := r.Permissions[0]
	if !reflect.DeepEqual(perm.Actions, []string{"read", "view"}) {
		t.Errorf("actions = %v", perm.Actions)
	}
	if len(perm.Submodules) != 2 {
		t.Fatalf("submodules = %v", perm.Submodules)
	}
	if !perm.Submodules[0].Shorthand {
		t.Error("bare string entry should stay shorthand")
	}
	if perm.Submodules[1].Shorthand || !reflect.DeepEqual(perm.Submodules[1].Actions, []string{"read"}) {
		t.Errorf("scoped entry = %#v", perm.Submodules[1])
	}
}

func TestValidateAndNormalizeRejects(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
	}{
		{name: "Missing Name", draft: Draft{Permissions: []PermissionDraft{{Module: "hr"}}}},
		{name: "Blank Module", draft: Draft{Name: "x", Permissions: []PermissionDraft{{Module: "  "}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndNormalize(tt.draft); !apperror.IsValidation(err) {
				t.Errorf("want validation error, got %v", err)
			}
		})
	}
}

func TestValidateAndNormalizeFailsClosed(t *testing.T) {
	// A payload the normalizer cannot parse yields empty grants, never an
	// implicit widening.
	draft := Draft{
		Name: "broken",
		Permissions: []PermissionDraft{
			{Module: "hr", Actions: "{{nonsense", Submodules: "also broken"},
		},
	}

	r, err := ValidateAndNormalize(draft)
	if err != nil {
		t.Fatalf("ValidateAndNormalize: %v", err)
	}
	if len(r.Permissions[0].Actions) != 0 || len(r.Permissions[0].Submodules) != 0 {
		t.Errorf("broken payload produced grants: %#v", r.Permissions[0])
	}
	if r.HasActionPermission("hr", "payroll_management", "read") {
		t.Error("broken payload must not grant access")
	}
}
