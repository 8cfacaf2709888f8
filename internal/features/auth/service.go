package auth

import (
	"context"
	"errors"

	"go-erp/internal/common/models"
	"go-erp/internal/features/access"
	"go-erp/internal/features/user"
	"go-erp/internal/permissions"
	"go-erp/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Profile is what a frontend needs to render for the signed-in user: who they
// are, which modules they can open, and their legacy permission keys.
type Profile struct {
	User           *models.User `json:"user"`
	Role           string       `json:"role"`
	AllowedModules []string     `json:"allowed_modules"`
	Permissions    []string     `json:"permissions"`
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Me(ctx context.Context, userID string) (*Profile, error)
}

type AuthServiceImpl struct {
	UserRepo user.UserRepository
	Engine   access.AccessEngine
	Catalog  *permissions.Catalog
}

func NewAuthService(userRepo user.UserRepository, engine access.AccessEngine, catalog *permissions.Catalog) AuthService {
	return &AuthServiceImpl{
		UserRepo: userRepo,
		Engine:   engine,
		Catalog:  catalog,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	usr, err := s.UserRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if usr == nil {
		return "", ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	if !usr.IsActive {
		return "", errors.New("account inactive")
	}

	return utils.GenerateToken(usr.ID, usr.Role)
}

func (s *AuthServiceImpl) Me(ctx context.Context, userID string) (*Profile, error) {
	usr, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, ErrInvalidCredentials
	}

	allowed := make([]string, 0, len(s.Catalog.Modules))
	for _, module := range s.Catalog.Modules {
		ok, err := s.Engine.CheckModuleAccess(ctx, userID, module)
		if err != nil {
			return nil, err
		}
		if ok {
			allowed = append(allowed, module)
		}
	}

	usr.Password = ""
	return &Profile{
		User:           usr,
		Role:           usr.Role,
		AllowedModules: allowed,
		Permissions:    s.Catalog.UserPermissions(usr.Role),
	}, nil
}
