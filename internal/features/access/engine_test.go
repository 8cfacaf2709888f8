package access

import (
	"context"
	"testing"
	"time"

	"go-erp/internal/common/models"
	"go-erp/internal/features/assignment"
	"go-erp/internal/features/role"
	"go-erp/internal/features/subrole"
	"go-erp/internal/permissions"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) FindByUsername(_ context.Context, _ string) (*models.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) CountByRole(_ context.Context, _ string) (int64, error) { return 0, nil }

// fakeLedger mimics the repository contract: only effectively active
// assignments come back, populated with their sub-role documents.
type fakeLedger struct {
	assignments map[string][]assignment.UserSubRole
}

func (f *fakeLedger) Create(_ context.Context, _ *assignment.UserSubRole) error { return nil }
func (f *fakeLedger) FindByID(_ context.Context, _ string) (*assignment.UserSubRole, error) {
	return nil, nil
}

func (f *fakeLedger) FindActiveByUser(_ context.Context, userID primitive.ObjectID) ([]assignment.UserSubRole, error) {
	now := time.Now()
	var out []assignment.UserSubRole
	for _, a := range f.assignments[userID.Hex()] {
		if a.EffectivelyActive(now) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeLedger) FindActiveBySubRole(_ context.Context, _ primitive.ObjectID) ([]assignment.UserSubRole, error) {
	return nil, nil
}
func (f *fakeLedger) FindActivePair(_ context.Context, _, _ primitive.ObjectID) (*assignment.UserSubRole, error) {
	return nil, nil
}
func (f *fakeLedger) CountActiveBySubRole(_ context.Context, _ primitive.ObjectID) (int64, error) {
	return 0, nil
}
func (f *fakeLedger) SetActive(_ context.Context, _ primitive.ObjectID, _ bool) error { return nil }
func (f *fakeLedger) UpdateExpiration(_ context.Context, _ primitive.ObjectID, _ *time.Time) error {
	return nil
}
func (f *fakeLedger) EnsureIndexes(_ context.Context) error { return nil }

type fakeRoleRepo struct {
	byName map[string]*role.Role
}

func (f *fakeRoleRepo) Create(_ context.Context, _ *role.Role) error { return nil }
func (f *fakeRoleRepo) FindByID(_ context.Context, _ string) (*role.Role, error) {
	return nil, nil
}
func (f *fakeRoleRepo) FindByName(_ context.Context, name string) (*role.Role, error) {
	if f.byName == nil {
		return nil, nil
	}
	return f.byName[name], nil
}
func (f *fakeRoleRepo) List(_ context.Context) ([]role.Role, error)            { return nil, nil }
func (f *fakeRoleRepo) Update(_ context.Context, _ string, _ *role.Role) error { return nil }
func (f *fakeRoleRepo) Delete(_ context.Context, _ string) error               { return nil }
func (f *fakeRoleRepo) EnsureIndexes(_ context.Context) error                  { return nil }

type engineFixture struct {
	engine AccessEngine
	users  *fakeUserRepo
	ledger *fakeLedger
	roles  *fakeRoleRepo
}

func newFixture() *engineFixture {
	users := &fakeUserRepo{users: make(map[string]*models.User)}
	ledger := &fakeLedger{assignments: make(map[string][]assignment.UserSubRole)}
	roles := &fakeRoleRepo{}

	catalog := permissions.Default()
	static := NewStaticRoleProvider(catalog)
	provider := NewDocumentRoleProvider(roles, static)

	return &engineFixture{
		engine: NewAccessEngine(users, ledger, provider, catalog, zap.NewNop()),
		users:  users,
		ledger: ledger,
		roles:  roles,
	}
}

func (fx *engineFixture) addUser(roleName string) primitive.ObjectID {
	id := primitive.NewObjectID()
	fx.users.users[id.Hex()] = &models.User{ID: id, Role: roleName, IsActive: true}
	return id
}

func (fx *engineFixture) addAssignment(userID primitive.ObjectID, sr *subrole.SubRole, expiresAt *time.Time) {
	fx.ledger.assignments[userID.Hex()] = append(fx.ledger.assignments[userID.Hex()], assignment.UserSubRole{
		ID:         primitive.NewObjectID(),
		User:       userID,
		SubRole:    sr.ID,
		IsActive:   true,
		ExpiresAt:  expiresAt,
		SubRoleDoc: sr,
	})
}

func payrollViewer() *subrole.SubRole {
	return &subrole.SubRole{
		ID:       primitive.NewObjectID(),
		Name:     "payroll_viewer",
		Module:   "hr",
		IsActive: true,
		Permissions: []subrole.SubRolePermission{
			{Submodule: "payroll_management", Actions: []string{"read", "view"}},
		},
	}
}

func TestCheckAccessSuperAdmin(t *testing.T) {
	fx := newFixture()
	id := fx.addUser(permissions.RoleSuperAdmin)

	for _, tuple := range [][3]string{
		{"hr", "payroll_management", "delete"},
		{"finance", "banking", "approve"},
		{"nonexistent", "whatever", "anything"},
	} {
		ok, err := fx.engine.CheckAccess(context.Background(), id.Hex(), tuple[0], tuple[1], tuple[2])
		if err != nil {
			t.Fatalf("CheckAccess: %v", err)
		}
		if !ok {
			t.Errorf("super_admin denied %v", tuple)
		}
	}
}

func TestCheckAccessBaseRoleFallback(t *testing.T) {
	fx := newFixture()
	id := fx.addUser(permissions.RoleHRManager)

	// No sub-roles at all: base-role module access decides, for any
	// submodule/action inside an accessible module.
	ok, err := fx.engine.CheckAccess(context.Background(), id.Hex(), "hr", "payroll_management", "update")
	if err != nil {
		t.Fatalf("CheckAccess: %v", err)
	}
	if !ok {
		t.Error("hr_manager should reach hr through base role")
	}

	ok, err = fx.engine.CheckAccess(context.Background(), id.Hex(), "finance", "banking", "read")
	if err != nil {
		t.Fatalf("CheckAccess: %v", err)
	}
	if ok {
		t.Error("hr_manager must not reach finance")
	}
}

func TestCheckAccessSubRoleNarrows(t *testing.T) {
	fx := newFixture()
	id := fx.addUser(permissions.RoleHRManager)
	fx.addAssignment(id, payrollViewer(), nil)

	tests := []struct {
		name      string
		submodule string
		action    string
		want      bool
	}{
		{name: "Granted By Sub Role", submodule: "payroll_management", action: "read", want: true},
		{name: "Action Outside Grant", submodule: "payroll_management", action: "update", want: false},
		{name: "Submodule Outside Grant", submodule: "employee_management", action: "read", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := fx.engine.CheckAccess(context.Background(), id.Hex(), "hr", tt.submodule, tt.action)
			if err != nil {
				t.Fatalf("CheckAccess: %v", err)
			}
			if ok != tt.want {
				t.Errorf("CheckAccess(hr, %q, %q) = %v, want %v", tt.submodule, tt.action, ok, tt.want)
			}
		})
	}
}

func TestCheckAccessCrossModuleFallback(t *testing.T) {
	fx := newFixture()
	// hr_manager's base role covers hr and admin; their only sub-role is in hr.
	id := fx.addUser(permissions.RoleHRManager)
	fx.addAssignment(id, payrollViewer(), nil)

	// Sub-roles narrow hr...
	ok, err := fx.engine.CheckAccess(context.Background(), id.Hex(), "hr", "employee_management", "read")
	if err != nil {
		t.Fatalf("CheckAccess: %v", err)
	}
	if ok {
		t.Error("hr access should be narrowed to the sub-role's grants")
	}

	// ...but admin still falls back to the base role.
	ok, err = fx.engine.CheckAccess(context.Background(), id.Hex(), "admin", "event_management", "read")
	if err != nil {
		t.Fatalf("CheckAccess: %v", err)
	}
	if !ok {
		t.Error("sub-roles in hr must not disable base-role access to admin")
	}
}

func TestCheckAccessExpiredAssignmentIgnored(t *testing.T) {
	fx := newFixture()
	id := fx.addUser(permissions.RoleEmployee)
	past := time.Now().Add(-time.Hour)
	fx.addAssignment(id, payrollViewer(), &past)

	// The expired sub-role neither grants hr access nor blocks anything.
	ok, err := fx.engine.CheckAccess(context.Background(), id.Hex(), "hr", "payroll_management", "read")
	if err != nil {
		t.Fatalf("CheckAccess: %v", err)
	}
	if ok {
		t.Error("expired assignment must not grant access")
	}
}

func TestCheckAccessDeactivatedSubRoleIgnored(t *testing.T) {
	fx := newFixture()
	id := fx.addUser(permissions.RoleHRManager)
	sr := payrollViewer()
	sr.IsActive = false
	fx.addAssignment(id, sr, nil)

	// A deactivated sub-role drops out entirely, so base-role fallback applies.
	ok, err := fx.engine.CheckAccess(context.Background(), id.Hex(), "hr", "employee_management", "read")
	if err != nil {
		t.Fatalf("CheckAccess: %v", err)
	}
	if !ok {
		t.Error("deactivated sub-role should not narrow base-role access")
	}
}

func TestCheckAccessDenies(t *testing.T) {
	fx := newFixture()
	inactive := primitive.NewObjectID()
	fx.users.users[inactive.Hex()] = &models.User{ID: inactive, Role: permissions.RoleSuperAdmin, IsActive: false}

	tests := []struct {
		name   string
		userID string
	}{
		{name: "Malformed User ID", userID: "not-an-object-id"},
		{name: "Unknown User", userID: primitive.NewObjectID().Hex()},
		{name: "Inactive User", userID: inactive.Hex()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := fx.engine.CheckAccess(context.Background(), tt.userID, "hr", "", "read")
			if err != nil {
				t.Fatalf("CheckAccess: %v", err)
			}
			if ok {
				t.Error("want deny")
			}
		})
	}
}

func TestCheckModuleAccessIgnoresSubRoles(t *testing.T) {
	fx := newFixture()
	// employee has no base module access; a sub-role in hr does not change the
	// coarse module answer.
	id := fx.addUser(permissions.RoleEmployee)
	fx.addAssignment(id, payrollViewer(), nil)

	ok, err := fx.engine.CheckModuleAccess(context.Background(), id.Hex(), "hr")
	if err != nil {
		t.Fatalf("CheckModuleAccess: %v", err)
	}
	if ok {
		t.Error("module access must come from the base role only")
	}

	admin := fx.addUser(permissions.RoleSuperAdmin)
	ok, err = fx.engine.CheckModuleAccess(context.Background(), admin.Hex(), "finance")
	if err != nil {
		t.Fatalf("CheckModuleAccess: %v", err)
	}
	if !ok {
		t.Error("super_admin should pass the module check")
	}
}

func TestCheckModuleAccessDocumentRole(t *testing.T) {
	fx := newFixture()
	id := fx.addUser("night_auditor")

	// Unknown in the static table, but a matching Role document grants audit.
	fx.roles.byName = map[string]*role.Role{
		"night_auditor": {
			Name:     "night_auditor",
			IsActive: true,
			Permissions: []role.Permission{
				{Module: "audit", Actions: []string{"read"}},
			},
		},
	}

	ok, err := fx.engine.CheckModuleAccess(context.Background(), id.Hex(), "audit")
	if err != nil {
		t.Fatalf("CheckModuleAccess: %v", err)
	}
	if !ok {
		t.Error("document role should grant audit access")
	}

	ok, err = fx.engine.CheckModuleAccess(context.Background(), id.Hex(), "finance")
	if err != nil {
		t.Fatalf("CheckModuleAccess: %v", err)
	}
	if ok {
		t.Error("document role must not grant finance access")
	}
}

func TestAllowedSubmodulesForUser(t *testing.T) {
	fx := newFixture()

	admin := fx.addUser(permissions.RoleSuperAdmin)
	got, err := fx.engine.AllowedSubmodulesForUser(context.Background(), admin.Hex(), "hr")
	if err != nil {
		t.Fatalf("AllowedSubmodulesForUser: %v", err)
	}
	if len(got) != len(permissions.Default().SubmodulesFor("hr")) {
		t.Errorf("super_admin submodules = %v", got)
	}

	narrowed := fx.addUser(permissions.RoleHRManager)
	fx.addAssignment(narrowed, payrollViewer(), nil)
	got, err = fx.engine.AllowedSubmodulesForUser(context.Background(), narrowed.Hex(), "hr")
	if err != nil {
		t.Fatalf("AllowedSubmodulesForUser: %v", err)
	}
	if len(got) != 1 || got[0] != "payroll_management" {
		t.Errorf("narrowed submodules = %v, want [payroll_management]", got)
	}

	denied := fx.addUser(permissions.RoleEmployee)
	got, err = fx.engine.AllowedSubmodulesForUser(context.Background(), denied.Hex(), "hr")
	if err != nil {
		t.Fatalf("AllowedSubmodulesForUser: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("employee submodules = %v, want empty", got)
	}
}
