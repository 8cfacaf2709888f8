package assignment

import (
	"context"
	"errors"
	"time"

	"go-erp/internal/common/models"
	"go-erp/internal/database"
	"go-erp/internal/features/subrole"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *UserSubRole) error
	FindByID(ctx context.Context, id string) (*UserSubRole, error)
	// FindActiveByUser returns the user's effectively active assignments
	// (isActive and not expired), each populated with its SubRole.
	FindActiveByUser(ctx context.Context, userID primitive.ObjectID) ([]UserSubRole, error)
	// FindActiveBySubRole is the symmetric query, populated with users.
	FindActiveBySubRole(ctx context.Context, subRoleID primitive.ObjectID) ([]UserSubRole, error)
	FindActivePair(ctx context.Context, userID, subRoleID primitive.ObjectID) (*UserSubRole, error)
	CountActiveBySubRole(ctx context.Context, subRoleID primitive.ObjectID) (int64, error)
	SetActive(ctx context.Context, id primitive.ObjectID, active bool) error
	UpdateExpiration(ctx context.Context, id primitive.ObjectID, expiresAt *time.Time) error
	EnsureIndexes(ctx context.Context) error
}

type AssignmentRepositoryImpl struct {
	Collection *mongo.Collection
	SubRoles   *mongo.Collection
	Users      *mongo.Collection
}

func NewAssignmentRepository(mongodb *database.MongodbDB) AssignmentRepository {
	return &AssignmentRepositoryImpl{
		Collection: mongodb.DB.Collection("usersubroles"),
		SubRoles:   mongodb.DB.Collection("subroles"),
		Users:      mongodb.DB.Collection("users"),
	}
}

func (r *AssignmentRepositoryImpl) Create(ctx context.Context, assignment *UserSubRole) error {
	_, err := r.Collection.InsertOne(ctx, assignment)
	return err
}

func (r *AssignmentRepositoryImpl) FindByID(ctx context.Context, id string) (*UserSubRole, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var assignment UserSubRole
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&assignment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

// activeFilter matches assignments that are effectively active right now.
// Expiration is evaluated lazily here, at query time; there is no sweep job.
func activeFilter(now time.Time) bson.M {
	return bson.M{
		"isActive": true,
		"$or": []bson.M{
			{"expiresAt": nil},
			{"expiresAt": bson.M{"$gt": now}},
		},
	}
}

func (r *AssignmentRepositoryImpl) FindActiveByUser(ctx context.Context, userID primitive.ObjectID) ([]UserSubRole, error) {
	filter := activeFilter(time.Now())
	filter["user"] = userID

	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assignments []UserSubRole
	if err = cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}

	if err := r.populateSubRoles(ctx, assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *AssignmentRepositoryImpl) FindActiveBySubRole(ctx context.Context, subRoleID primitive.ObjectID) ([]UserSubRole, error) {
	filter := activeFilter(time.Now())
	filter["subRole"] = subRoleID

	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assignments []UserSubRole
	if err = cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}

	if err := r.populateUsers(ctx, assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// FindActivePair is the idempotency guard lookup: it matches on the persisted
// isActive flag only, because the partial unique index that serializes
// concurrent assigns cannot see expiry.
func (r *AssignmentRepositoryImpl) FindActivePair(ctx context.Context, userID, subRoleID primitive.ObjectID) (*UserSubRole, error) {
	var assignment UserSubRole
	err := r.Collection.FindOne(ctx, bson.M{
		"user":     userID,
		"subRole":  subRoleID,
		"isActive": true,
	}).Decode(&assignment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

func (r *AssignmentRepositoryImpl) CountActiveBySubRole(ctx context.Context, subRoleID primitive.ObjectID) (int64, error) {
	return r.Collection.CountDocuments(ctx, bson.M{"subRole": subRoleID, "isActive": true})
}

func (r *AssignmentRepositoryImpl) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"isActive": active, "updatedAt": time.Now()},
	})
	return err
}

func (r *AssignmentRepositoryImpl) UpdateExpiration(ctx context.Context, id primitive.ObjectID, expiresAt *time.Time) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"expiresAt": expiresAt, "updatedAt": time.Now()},
	})
	return err
}

func (r *AssignmentRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user", Value: 1}, {Key: "subRole", Value: 1}},
			Options: options.Index().
				SetName("idx_user_subrole_active").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"isActive": true}),
		},
		{
			Keys:    bson.D{{Key: "subRole", Value: 1}, {Key: "isActive", Value: 1}},
			Options: options.Index().SetName("idx_subrole_active"),
		},
	}

	_, err := r.Collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *AssignmentRepositoryImpl) populateSubRoles(ctx context.Context, assignments []UserSubRole) error {
	if len(assignments) == 0 {
		return nil
	}

	ids := make([]primitive.ObjectID, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.SubRole)
	}

	cursor, err := r.SubRoles.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var docs []subrole.SubRole
	if err = cursor.All(ctx, &docs); err != nil {
		return err
	}

	byID := make(map[primitive.ObjectID]*subrole.SubRole, len(docs))
	for i := range docs {
		byID[docs[i].ID] = &docs[i]
	}
	for i := range assignments {
		assignments[i].SubRoleDoc = byID[assignments[i].SubRole]
	}
	return nil
}

func (r *AssignmentRepositoryImpl) populateUsers(ctx context.Context, assignments []UserSubRole) error {
	if len(assignments) == 0 {
		return nil
	}

	ids := make([]primitive.ObjectID, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.User)
	}

	cursor, err := r.Users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var docs []models.User
	if err = cursor.All(ctx, &docs); err != nil {
		return err
	}

	byID := make(map[primitive.ObjectID]*models.User, len(docs))
	for i := range docs {
		byID[docs[i].ID] = &docs[i]
	}
	for i := range assignments {
		assignments[i].UserDoc = byID[assignments[i].User]
	}
	return nil
}
