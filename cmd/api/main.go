package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go-erp/internal/api"
	common_api "go-erp/internal/common/api"
	"go-erp/internal/config"
	"go-erp/internal/database"
	"go-erp/internal/features/access"
	"go-erp/internal/features/assignment"
	"go-erp/internal/features/auth"
	"go-erp/internal/features/role"
	"go-erp/internal/features/subrole"
	"go-erp/internal/features/user"
	"go-erp/internal/logger"
	"go-erp/internal/middleware"
	"go-erp/internal/permissions"
	"go-erp/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Use custom CORS middleware
	app.Use(middleware.CORSMiddleware())

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),    // Cast to Interface
		fx.ResultTags(`group:"routes"`), // Add to Group
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	log.Printf("Registering %d routes...\n", len(routes))
	for i, route := range routes {
		log.Printf("Setting up route %d: %T\n", i+1, route)
		route.Setup(app)
	}
	log.Println("All routes registered successfully")
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
// StartServer now needs Config to know which port to listen on
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	utils.SetSecret(cfg.JWTSecret)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// InitializeIndexes ensures that necessary database indexes are created
func InitializeIndexes(
	lc fx.Lifecycle,
	roleRepo role.RoleRepository,
	subRoleRepo subrole.SubRoleRepository,
	assignmentRepo assignment.AssignmentRepository,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				// Use a background context with timeout for index creation
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := roleRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure role indexes: %v", err)
				}
				if err := subRoleRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure sub-role indexes: %v", err)
				}
				if err := assignmentRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure assignment indexes: %v", err)
				}
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Database
			database.NewDatabase,

			// Static permission catalog
			permissions.Default,

			// Shared request validator
			common_api.NewValidator,

			// Initialize Repository
			user.NewUserRepository,
			role.NewRoleRepository,
			subrole.NewSubRoleRepository,
			assignment.NewAssignmentRepository,

			role.NewRoleService,
			subrole.NewSubRoleService,
			assignment.NewAssignmentService,
			auth.NewAuthService,

			// Resolution engine and its role-access chain
			access.NewStaticRoleProvider,
			access.NewDocumentRoleProvider,
			access.NewAccessEngine,

			// Interface Adapters to break circular dependencies and satisfy Fx
			func(r assignment.AssignmentRepository) subrole.AssignmentCounter { return r },
			func(e access.AccessEngine) middleware.AccessEngine { return e },

			// Initialize Controller
			auth.NewAuthController,
			role.NewRoleController,
			subrole.NewSubRoleController,
			assignment.NewAssignmentController,
			access.NewAccessController,

			// Initialize API Routes
			AsRoute(auth.NewAuthApi),
			AsRoute(role.NewRoleApi),
			AsRoute(subrole.NewSubRoleApi),
			AsRoute(assignment.NewAssignmentApi),
			AsRoute(access.NewAccessApi),
			AsRoute(api.NewHealthApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			// Register Routes & Start
			RegisterAllRoutesWithAnnotation,
			StartServer,
			InitializeIndexes,
		),
	)

	app.Run()
}
