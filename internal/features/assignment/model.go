package assignment

import (
	"time"

	"go-erp/internal/common/models"
	"go-erp/internal/features/subrole"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserSubRole is one time-bounded assignment of a sub-role to a user.
// Records are never physically removed: unassignment flips IsActive so the
// history stays auditable.
type UserSubRole struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User       primitive.ObjectID `bson:"user" json:"user"`
	SubRole    primitive.ObjectID `bson:"subRole" json:"sub_role"`
	AssignedBy primitive.ObjectID `bson:"assignedBy" json:"assigned_by"`
	AssignedAt time.Time          `bson:"assignedAt" json:"assigned_at"`
	IsActive   bool               `bson:"isActive" json:"is_active"`
	ExpiresAt  *time.Time         `bson:"expiresAt" json:"expires_at"`
	CreatedAt  time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updated_at"`

	// Populated by the repository, never persisted.
	SubRoleDoc *subrole.SubRole `bson:"-" json:"sub_role_doc,omitempty"`
	UserDoc    *models.User     `bson:"-" json:"user_doc,omitempty"`
}

// EffectivelyActive is the derived state recomputed at query time; it is
// never persisted. An assignment still looks active in storage after expiry,
// only resolution treats it as inactive.
func (a *UserSubRole) EffectivelyActive(now time.Time) bool {
	return a.IsActive && (a.ExpiresAt == nil || a.ExpiresAt.After(now))
}
