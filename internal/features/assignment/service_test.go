package assignment

import (
	"context"
	"testing"
	"time"

	"go-erp/internal/common/apperror"
	"go-erp/internal/common/models"
	"go-erp/internal/features/subrole"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeAssignmentRepo struct {
	byID       map[string]*UserSubRole
	activePair *UserSubRole
	created    []*UserSubRole
	deactived  []primitive.ObjectID
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{byID: make(map[string]*UserSubRole)}
}

func (f *fakeAssignmentRepo) Create(_ context.Context, a *UserSubRole) error {
	f.created = append(f.created, a)
	f.byID[a.ID.Hex()] = a
	return nil
}

func (f *fakeAssignmentRepo) FindByID(_ context.Context, id string) (*UserSubRole, error) {
	return f.byID[id], nil
}

func (f *fakeAssignmentRepo) FindActiveByUser(_ context.Context, _ primitive.ObjectID) ([]UserSubRole, error) {
	return nil, nil
}

func (f *fakeAssignmentRepo) FindActiveBySubRole(_ context.Context, _ primitive.ObjectID) ([]UserSubRole, error) {
	return nil, nil
}

func (f *fakeAssignmentRepo) FindActivePair(_ context.Context, _, _ primitive.ObjectID) (*UserSubRole, error) {
	return f.activePair, nil
}

func (f *fakeAssignmentRepo) CountActiveBySubRole(_ context.Context, _ primitive.ObjectID) (int64, error) {
	return 0, nil
}

func (f *fakeAssignmentRepo) SetActive(_ context.Context, id primitive.ObjectID, active bool) error {
	if !active {
		f.deactived = append(f.deactived, id)
	}
	return nil
}

func (f *fakeAssignmentRepo) UpdateExpiration(_ context.Context, _ primitive.ObjectID, _ *time.Time) error {
	return nil
}

func (f *fakeAssignmentRepo) EnsureIndexes(_ context.Context) error { return nil }

type fakeSubRoleFinder struct {
	subRole *subrole.SubRole
}

func (f *fakeSubRoleFinder) Create(_ context.Context, _ *subrole.SubRole) error { return nil }
func (f *fakeSubRoleFinder) FindByID(_ context.Context, _ string) (*subrole.SubRole, error) {
	return f.subRole, nil
}
func (f *fakeSubRoleFinder) FindActiveByName(_ context.Context, _, _ string) (*subrole.SubRole, error) {
	return nil, nil
}
func (f *fakeSubRoleFinder) List(_ context.Context, _ subrole.ListFilter) ([]subrole.SubRole, int64, error) {
	return nil, 0, nil
}
func (f *fakeSubRoleFinder) Update(_ context.Context, _ string, _ *subrole.SubRole) error { return nil }
func (f *fakeSubRoleFinder) EnsureIndexes(_ context.Context) error                        { return nil }

type fakeUserFinder struct {
	user *models.User
}

func (f *fakeUserFinder) FindByID(_ context.Context, _ string) (*models.User, error) {
	return f.user, nil
}
func (f *fakeUserFinder) FindByUsername(_ context.Context, _ string) (*models.User, error) {
	return f.user, nil
}
func (f *fakeUserFinder) CountByRole(_ context.Context, _ string) (int64, error) { return 0, nil }

func activeSubRole() *subrole.SubRole {
	return &subrole.SubRole{
		ID:       primitive.NewObjectID(),
		Name:     "payroll_viewer",
		Module:   "hr",
		IsActive: true,
	}
}

func activeUser() *models.User {
	return &models.User{ID: primitive.NewObjectID(), Username: "jdoe", Role: "employee", IsActive: true}
}

func TestAssign(t *testing.T) {
	repo := newFakeAssignmentRepo()
	svc := NewAssignmentService(repo, &fakeSubRoleFinder{subRole: activeSubRole()}, &fakeUserFinder{user: activeUser()})

	created, err := svc.Assign(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID(), nil)
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}

	if !created.IsActive {
		t.Error("new assignment should be active")
	}
	if created.ExpiresAt != nil {
		t.Error("expiry should stay unset")
	}
	if len(repo.created) != 1 {
		t.Errorf("created %d assignments", len(repo.created))
	}
}

func TestAssignDuplicate(t *testing.T) {
	repo := newFakeAssignmentRepo()
	repo.activePair = &UserSubRole{IsActive: true}

	svc := NewAssignmentService(repo, &fakeSubRoleFinder{subRole: activeSubRole()}, &fakeUserFinder{user: activeUser()})

	_, err := svc.Assign(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID(), nil)
	if !apperror.IsConflict(err) {
		t.Errorf("want conflict, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Error("duplicate assign must not insert")
	}
}

func TestAssignUnknownUser(t *testing.T) {
	svc := NewAssignmentService(newFakeAssignmentRepo(), &fakeSubRoleFinder{subRole: activeSubRole()}, &fakeUserFinder{})

	_, err := svc.Assign(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID(), nil)
	if !apperror.IsNotFound(err) {
		t.Errorf("want not found, got %v", err)
	}
}

func TestAssignInactiveSubRole(t *testing.T) {
	sr := activeSubRole()
	sr.IsActive = false

	svc := NewAssignmentService(newFakeAssignmentRepo(), &fakeSubRoleFinder{subRole: sr}, &fakeUserFinder{user: activeUser()})

	_, err := svc.Assign(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID(), nil)
	if !apperror.IsValidation(err) {
		t.Errorf("want validation error, got %v", err)
	}
}

func TestAssignPastExpiry(t *testing.T) {
	svc := NewAssignmentService(newFakeAssignmentRepo(), &fakeSubRoleFinder{subRole: activeSubRole()}, &fakeUserFinder{user: activeUser()})

	past := time.Now().Add(-time.Minute)
	_, err := svc.Assign(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID(), &past)
	if !apperror.IsValidation(err) {
		t.Errorf("want validation error, got %v", err)
	}
}

func TestUnassign(t *testing.T) {
	repo := newFakeAssignmentRepo()
	id := primitive.NewObjectID()
	repo.byID[id.Hex()] = &UserSubRole{ID: id, IsActive: true}

	svc := NewAssignmentService(repo, &fakeSubRoleFinder{}, &fakeUserFinder{})

	if err := svc.Unassign(context.Background(), id.Hex()); err != nil {
		t.Fatalf("Unassign: %v", err)
	}
	if len(repo.deactived) != 1 || repo.deactived[0] != id {
		t.Errorf("deactivated = %v", repo.deactived)
	}
}

func TestUnassignNotFound(t *testing.T) {
	svc := NewAssignmentService(newFakeAssignmentRepo(), &fakeSubRoleFinder{}, &fakeUserFinder{})

	err := svc.Unassign(context.Background(), primitive.NewObjectID().Hex())
	if !apperror.IsNotFound(err) {
		t.Errorf("want not found, got %v", err)
	}
}
