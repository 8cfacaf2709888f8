package main

import (
	"context"
	"sort"
	"strings"
	"time"

	common_models "go-erp/internal/common/models"
	"go-erp/internal/config"
	"go-erp/internal/database"
	"go-erp/internal/features/role"
	"go-erp/internal/features/user"
	"go-erp/internal/logger"
	"go-erp/internal/permissions"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// systemRoles lifts the static catalog into Role documents so admins can see
// and extend the built-in roles. Seeded documents are flagged IsSystemRole,
// which makes them rename-proof and undeletable through the service layer.
func systemRoles(catalog *permissions.Catalog) []role.Role {
	now := time.Now()
	roles := make([]role.Role, 0, len(catalog.Roles))

	for _, name := range catalog.Roles {
		access := catalog.RoleAccess[name]

		modules := access.Modules
		if access.CanAccessAll {
			modules = catalog.Modules
		}

		perms := make([]role.Permission, 0, len(modules))
		for _, module := range modules {
			perms = append(perms, role.Permission{
				Module:  module,
				Actions: actionsFor(catalog, name, module, access.CanAccessAll),
			})
		}

		roles = append(roles, role.Role{
			Name:         name,
			DisplayName:  strings.ReplaceAll(name, "_", " "),
			Description:  access.Description,
			Permissions:  perms,
			IsActive:     true,
			IsSystemRole: true,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	return roles
}

// actionsFor collects the distinct actions the legacy mapping table grants a
// role inside one module.
func actionsFor(catalog *permissions.Catalog, roleName, module string, all bool) []string {
	seen := make(map[string]bool)
	for key, allowed := range catalog.Mappings {
		parts := strings.Split(key, ".")
		if parts[0] != module || len(parts) < 3 {
			continue
		}
		if !all && !contains(allowed, roleName) {
			continue
		}
		seen[parts[len(parts)-1]] = true
	}

	actions := make([]string, 0, len(seen))
	for a := range seen {
		actions = append(actions, a)
	}
	sort.Strings(actions)
	return actions
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// Seed runs the database seeding
func Seed(
	lc fx.Lifecycle,
	roleRepo role.RoleRepository,
	userRepo user.UserRepository,
	mongodb *database.MongodbDB,
	catalog *permissions.Catalog,
	logger *zap.Logger,
	shutdowner fx.Shutdowner,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer func() {
					if err := shutdowner.Shutdown(); err != nil {
						logger.Error("Failed to shutdown", zap.Error(err))
					}
				}()

				logger.Info("🌱 Starting Database Seeding...")

				// 1. Seed system roles from the static catalog
				for _, r := range systemRoles(catalog) {
					existing, err := roleRepo.FindByName(ctx, r.Name)
					if err != nil {
						logger.Error("Failed to look up role", zap.String("role", r.Name), zap.Error(err))
						continue
					}
					if existing != nil {
						logger.Info("Role exists, skipping", zap.String("role", r.Name))
						continue
					}

					r.ID = primitive.NewObjectID()
					if err := roleRepo.Create(ctx, &r); err != nil {
						logger.Error("Failed to create role", zap.String("role", r.Name), zap.Error(err))
						continue
					}
					logger.Info("Role created", zap.String("role", r.Name))
				}

				// 2. Bootstrap a super admin if none exists
				count, err := userRepo.CountByRole(ctx, permissions.RoleSuperAdmin)
				if err != nil {
					logger.Fatal("Failed to count super admins", zap.Error(err))
				}
				if count > 0 {
					logger.Info("Super admin exists, skipping bootstrap")
					return
				}

				hash, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), bcrypt.DefaultCost)
				if err != nil {
					logger.Fatal("Failed to hash bootstrap password", zap.Error(err))
				}

				now := time.Now()
				admin := common_models.User{
					ID:        primitive.NewObjectID(),
					Username:  "superadmin",
					Email:     "superadmin@example.com",
					Password:  string(hash),
					Role:      permissions.RoleSuperAdmin,
					IsActive:  true,
					CreatedAt: now,
					UpdatedAt: now,
				}
				if _, err := mongodb.DB.Collection("users").InsertOne(ctx, admin); err != nil {
					logger.Fatal("Failed to create super admin", zap.Error(err))
				}
				logger.Info("Super admin created", zap.String("username", admin.Username))

				logger.Info("✅ Seeding complete")
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			database.NewDatabase,
			permissions.Default,
			role.NewRoleRepository,
			user.NewUserRepository,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(Seed),
	)

	app.Run()
}
