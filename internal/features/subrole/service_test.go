package subrole

import (
	"context"
	"testing"

	"go-erp/internal/common/apperror"
	"go-erp/internal/permissions"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeSubRoleRepo struct {
	byID    map[string]*SubRole
	byName  map[string]*SubRole // key: module + "/" + name
	created []*SubRole
	updated []*SubRole
}

func newFakeSubRoleRepo() *fakeSubRoleRepo {
	return &fakeSubRoleRepo{
		byID:   make(map[string]*SubRole),
		byName: make(map[string]*SubRole),
	}
}

func (f *fakeSubRoleRepo) Create(_ context.Context, subRole *SubRole) error {
	f.created = append(f.created, subRole)
	f.byID[subRole.ID.Hex()] = subRole
	return nil
}

func (f *fakeSubRoleRepo) FindByID(_ context.Context, id string) (*SubRole, error) {
	return f.byID[id], nil
}

func (f *fakeSubRoleRepo) FindActiveByName(_ context.Context, module, name string) (*SubRole, error) {
	return f.byName[module+"/"+name], nil
}

func (f *fakeSubRoleRepo) List(_ context.Context, _ ListFilter) ([]SubRole, int64, error) {
	return nil, 0, nil
}

func (f *fakeSubRoleRepo) Update(_ context.Context, id string, subRole *SubRole) error {
	f.updated = append(f.updated, subRole)
	f.byID[id] = subRole
	return nil
}

func (f *fakeSubRoleRepo) EnsureIndexes(_ context.Context) error { return nil }

type fakeCounter struct {
	count int64
}

func (f *fakeCounter) CountActiveBySubRole(_ context.Context, _ primitive.ObjectID) (int64, error) {
	return f.count, nil
}

func newService(repo SubRoleRepository, counter AssignmentCounter) SubRoleService {
	return NewSubRoleService(repo, counter, permissions.Default())
}

func TestCreateSubRoleDuplicateName(t *testing.T) {
	repo := newFakeSubRoleRepo()
	repo.byName["hr/Payroll Viewer"] = &SubRole{Name: "Payroll Viewer", Module: "hr", IsActive: true}

	svc := newService(repo, &fakeCounter{})

	_, err := svc.CreateSubRole(context.Background(), Draft{
		Name:   "Payroll Viewer",
		Module: "hr",
		Permissions: []PermissionDraft{
			{Submodule: "payroll_management", Actions: []string{"read"}},
		},
	}, primitive.NewObjectID())

	if !apperror.IsConflict(err) {
		t.Errorf("want conflict, got %v", err)
	}
}

func TestCreateSubRole(t *testing.T) {
	repo := newFakeSubRoleRepo()
	svc := newService(repo, &fakeCounter{})

	created, err := svc.CreateSubRole(context.Background(), Draft{
		Name:   "Payroll Viewer",
		Module: "hr",
		Permissions: []PermissionDraft{
			{Submodule: "payroll_management", Actions: `['read','view']`},
		},
	}, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("CreateSubRole: %v", err)
	}

	if created.ID.IsZero() {
		t.Error("id not assigned")
	}
	if !created.IsActive {
		t.Error("new sub-role should be active")
	}
	if len(repo.created) != 1 {
		t.Errorf("created %d documents", len(repo.created))
	}
}

func TestDeleteSubRoleWithActiveAssignments(t *testing.T) {
	id := primitive.NewObjectID()
	repo := newFakeSubRoleRepo()
	repo.byID[id.Hex()] = &SubRole{ID: id, Name: "payroll_viewer", Module: "hr", IsActive: true}

	svc := newService(repo, &fakeCounter{count: 3})

	err := svc.DeleteSubRole(context.Background(), id.Hex())
	if !apperror.IsConflict(err) {
		t.Errorf("want conflict while assignments exist, got %v", err)
	}
	if len(repo.updated) != 0 {
		t.Error("sub-role must not be touched while assigned")
	}
}

func TestDeleteSubRoleSoftDeletes(t *testing.T) {
	id := primitive.NewObjectID()
	repo := newFakeSubRoleRepo()
	repo.byID[id.Hex()] = &SubRole{ID: id, Name: "payroll_viewer", Module: "hr", IsActive: true}

	svc := newService(repo, &fakeCounter{count: 0})

	if err := svc.DeleteSubRole(context.Background(), id.Hex()); err != nil {
		t.Fatalf("DeleteSubRole: %v", err)
	}

	if len(repo.updated) != 1 {
		t.Fatalf("updated %d documents", len(repo.updated))
	}
	if repo.updated[0].IsActive {
		t.Error("delete must flip isActive, not remove the document")
	}
}

func TestUpdateSubRoleKeepsModule(t *testing.T) {
	id := primitive.NewObjectID()
	repo := newFakeSubRoleRepo()
	repo.byID[id.Hex()] = &SubRole{ID: id, Name: "payroll_viewer", Module: "hr", IsActive: true}

	svc := newService(repo, &fakeCounter{})

	// The draft claims a different module; the stored module wins, so the
	// finance submodule no longer validates.
	_, err := svc.UpdateSubRole(context.Background(), id.Hex(), Draft{
		Name:   "payroll_viewer",
		Module: "finance",
		Permissions: []PermissionDraft{
			{Submodule: "banking", Actions: []string{"read"}},
		},
	})
	if !apperror.IsValidation(err) {
		t.Errorf("want validation error from pinned module, got %v", err)
	}
}

func TestGetSubRoleByIDNotFound(t *testing.T) {
	svc := newService(newFakeSubRoleRepo(), &fakeCounter{})

	_, err := svc.GetSubRoleByID(context.Background(), primitive.NewObjectID().Hex())
	if !apperror.IsNotFound(err) {
		t.Errorf("want not found, got %v", err)
	}
}
