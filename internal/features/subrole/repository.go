package subrole

import (
	"context"
	"errors"
	"regexp"

	"go-erp/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListFilter narrows List to a module and/or a name/description search term.
type ListFilter struct {
	Module string
	Search string
	Page   int64
	Limit  int64
}

type SubRoleRepository interface {
	Create(ctx context.Context, subRole *SubRole) error
	FindByID(ctx context.Context, id string) (*SubRole, error)
	FindActiveByName(ctx context.Context, module, name string) (*SubRole, error)
	List(ctx context.Context, filter ListFilter) ([]SubRole, int64, error)
	Update(ctx context.Context, id string, subRole *SubRole) error
	EnsureIndexes(ctx context.Context) error
}

type SubRoleRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewSubRoleRepository(mongodb *database.MongodbDB) SubRoleRepository {
	return &SubRoleRepositoryImpl{
		Collection: mongodb.DB.Collection("subroles"),
	}
}

func (r *SubRoleRepositoryImpl) Create(ctx context.Context, subRole *SubRole) error {
	_, err := r.Collection.InsertOne(ctx, subRole)
	return err
}

func (r *SubRoleRepositoryImpl) FindByID(ctx context.Context, id string) (*SubRole, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var subRole SubRole
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&subRole)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &subRole, nil
}

// FindActiveByName looks up an active sub-role by case-insensitive name
// within one module; names are only unique per module.
func (r *SubRoleRepositoryImpl) FindActiveByName(ctx context.Context, module, name string) (*SubRole, error) {
	filter := bson.M{
		"name":     bson.M{"$regex": primitive.Regex{Pattern: "^" + regexQuote(name) + "$", Options: "i"}},
		"module":   module,
		"isActive": true,
	}

	var subRole SubRole
	err := r.Collection.FindOne(ctx, filter).Decode(&subRole)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &subRole, nil
}

func (r *SubRoleRepositoryImpl) List(ctx context.Context, filter ListFilter) ([]SubRole, int64, error) {
	query := bson.M{"isActive": true}
	if filter.Module != "" {
		query["module"] = filter.Module
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexQuote(filter.Search), Options: "i"}
		query["$or"] = []bson.M{
			{"name": bson.M{"$regex": pattern}},
			{"description": bson.M{"$regex": pattern}},
		}
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var subRoles []SubRole
	if err = cursor.All(ctx, &subRoles); err != nil {
		return nil, 0, err
	}

	total, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return subRoles, total, nil
}

func (r *SubRoleRepositoryImpl) Update(ctx context.Context, id string, subRole *SubRole) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{
		"$set": bson.M{
			"name":        subRole.Name,
			"description": subRole.Description,
			"permissions": subRole.Permissions,
			"isActive":    subRole.IsActive,
			"updatedAt":   subRole.UpdatedAt,
		},
	}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	return err
}

func (r *SubRoleRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "module", Value: 1}, {Key: "name", Value: 1}},
			Options: options.Index().SetName("idx_subrole_module_name"),
		},
		{
			Keys:    bson.D{{Key: "isActive", Value: 1}, {Key: "module", Value: 1}},
			Options: options.Index().SetName("idx_subrole_active_module"),
		},
	}

	_, err := r.Collection.Indexes().CreateMany(ctx, indexes)
	return err
}

// regexQuote escapes regex metacharacters in user-supplied search input.
func regexQuote(s string) string {
	return regexp.QuoteMeta(s)
}
