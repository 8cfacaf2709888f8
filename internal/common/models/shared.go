package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContextKey string

const (
	UserIDKey ContextKey = "user_id"
)

// User carries the legacy string role plus an optional reference to a dynamic
// Role document. SubRoles is a denormalized convenience list; the assignment
// ledger is the source of truth for whether an assignment is currently active.
type User struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username  string               `bson:"username" json:"username"`
	Email     string               `bson:"email" json:"email"`
	Password  string               `bson:"password" json:"-"`
	FirstName string               `bson:"firstName,omitempty" json:"first_name,omitempty"`
	LastName  string               `bson:"lastName,omitempty" json:"last_name,omitempty"`
	Role      string               `bson:"role" json:"role"`
	RoleRef   *primitive.ObjectID  `bson:"roleRef,omitempty" json:"role_ref,omitempty"`
	SubRoles  []primitive.ObjectID `bson:"subRoles,omitempty" json:"sub_roles,omitempty"`
	IsActive  bool                 `bson:"isActive" json:"is_active"`
	LastLogin *time.Time           `bson:"lastLogin,omitempty" json:"last_login,omitempty"`
	CreatedAt time.Time            `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updated_at"`
}

// Log is the document written by the async zap tee.
type Log struct {
	Message      string    `bson:"message" json:"message"`
	IpAddress    string    `bson:"ip_address" json:"ip_address"`
	UserID       string    `bson:"user_id,omitempty" json:"user_id,omitempty"`
	LogLevelId   int       `bson:"log_level_id" json:"log_level_id"`
	Caller       string    `bson:"caller,omitempty" json:"caller,omitempty"`
	CreatedOnUtc time.Time `bson:"created_on_utc" json:"created_on_utc"`
}
