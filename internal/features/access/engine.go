package access

import (
	"context"
	"time"

	"go-erp/internal/common/models"
	"go-erp/internal/features/assignment"
	"go-erp/internal/features/subrole"
	"go-erp/internal/features/user"
	"go-erp/internal/permissions"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	snapshotCacheSize = 2048
	snapshotCacheTTL  = 30 * time.Second
)

// AccessEngine answers the authorization question for a single
// (user, module, submodule, action) tuple. Denial is always a plain false,
// never an error; errors mean the question could not be answered at all.
type AccessEngine interface {
	CheckAccess(ctx context.Context, userID, module, submodule, action string) (bool, error)
	CheckModuleAccess(ctx context.Context, userID, module string) (bool, error)
	AllowedSubmodulesForUser(ctx context.Context, userID, module string) ([]string, error)
}

// snapshot is one user's resolution inputs, loaded together so a burst of
// checks during a single request sees a consistent view.
type snapshot struct {
	User        *models.User
	Assignments []assignment.UserSubRole
}

type AccessEngineImpl struct {
	UserRepo    user.UserRepository
	Assignments assignment.AssignmentRepository
	Provider    RoleAccessProvider
	Catalog     *permissions.Catalog
	Logger      *zap.Logger

	cache *expirable.LRU[string, *snapshot]
}

func NewAccessEngine(
	userRepo user.UserRepository,
	assignments assignment.AssignmentRepository,
	provider *DocumentRoleProvider,
	catalog *permissions.Catalog,
	logger *zap.Logger,
) AccessEngine {
	return &AccessEngineImpl{
		UserRepo:    userRepo,
		Assignments: assignments,
		Provider:    provider,
		Catalog:     catalog,
		Logger:      logger,
		cache:       expirable.NewLRU[string, *snapshot](snapshotCacheSize, nil, snapshotCacheTTL),
	}
}

// CheckAccess resolves the full precedence chain:
//
//  1. super_admin passes everything.
//  2. If the user holds active sub-roles in the requested module, those
//     sub-roles alone decide; the base role is not consulted for that module.
//  3. Otherwise the base role's module access decides.
//
// Sub-roles held in other modules do not narrow anything here: a user with
// only finance sub-roles still reaches hr through their base role.
func (e *AccessEngineImpl) CheckAccess(ctx context.Context, userID, module, submodule, action string) (bool, error) {
	snap, err := e.load(ctx, userID)
	if err != nil {
		return false, err
	}
	if snap.User == nil || !snap.User.IsActive {
		return false, nil
	}
	if snap.User.Role == permissions.RoleSuperAdmin {
		return true, nil
	}

	inModule := subRolesInModule(snap.Assignments, module)
	if len(inModule) > 0 {
		for _, sr := range inModule {
			if sr.HasPermission(submodule, action) {
				return true, nil
			}
		}
		return false, nil
	}

	return e.Provider.HasModuleAccess(ctx, snap.User, module)
}

// CheckModuleAccess is the coarse entry check: super_admin or base-role
// module access. Sub-roles are intentionally not consulted; a user whose only
// grant is a sub-role still needs CheckAccess for the fine-grained answer.
func (e *AccessEngineImpl) CheckModuleAccess(ctx context.Context, userID, module string) (bool, error) {
	snap, err := e.load(ctx, userID)
	if err != nil {
		return false, err
	}
	if snap.User == nil || !snap.User.IsActive {
		return false, nil
	}
	if snap.User.Role == permissions.RoleSuperAdmin {
		return true, nil
	}
	return e.Provider.HasModuleAccess(ctx, snap.User, module)
}

// AllowedSubmodulesForUser lists the submodules the user may see inside a
// module, following the same precedence as CheckAccess: sub-roles in the
// module narrow the list to their union, otherwise base-role module access
// opens the whole catalog enumeration.
func (e *AccessEngineImpl) AllowedSubmodulesForUser(ctx context.Context, userID, module string) ([]string, error) {
	snap, err := e.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if snap.User == nil || !snap.User.IsActive {
		return []string{}, nil
	}
	if snap.User.Role == permissions.RoleSuperAdmin {
		return e.Catalog.SubmodulesFor(module), nil
	}

	inModule := subRolesInModule(snap.Assignments, module)
	if len(inModule) > 0 {
		seen := make(map[string]bool)
		var result []string
		for _, sr := range inModule {
			for _, sm := range sr.AllowedSubmodules() {
				if !seen[sm] {
					seen[sm] = true
					result = append(result, sm)
				}
			}
		}
		if result == nil {
			result = []string{}
		}
		return result, nil
	}

	ok, err := e.Provider.HasModuleAccess(ctx, snap.User, module)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}
	return e.Catalog.SubmodulesFor(module), nil
}

// load fetches the user and their effectively active assignments, through a
// short-lived cache so repeated checks within one request window do not hit
// the database again.
func (e *AccessEngineImpl) load(ctx context.Context, userID string) (*snapshot, error) {
	if snap, ok := e.cache.Get(userID); ok {
		return snap, nil
	}

	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		// Malformed ids deny rather than error: the caller passed an
		// identifier that cannot name any user.
		e.Logger.Debug("access check with malformed user id", zap.String("userId", userID))
		return &snapshot{}, nil
	}

	u, err := e.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	snap := &snapshot{User: u}
	if u != nil {
		assignments, err := e.Assignments.FindActiveByUser(ctx, objectID)
		if err != nil {
			return nil, err
		}
		snap.Assignments = assignments
	}

	e.cache.Add(userID, snap)
	return snap, nil
}

// subRolesInModule picks the active sub-role documents scoped to one module.
// Assignments whose sub-role document is missing or deactivated are skipped.
func subRolesInModule(assignments []assignment.UserSubRole, module string) []*subrole.SubRole {
	var result []*subrole.SubRole
	for i := range assignments {
		doc := assignments[i].SubRoleDoc
		if doc == nil || !doc.IsActive {
			continue
		}
		if doc.Module == module {
			result = append(result, doc)
		}
	}
	return result
}
