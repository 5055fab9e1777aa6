package repos

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/propview/properties-backend/internal/db"
	"github.com/propview/properties-backend/internal/domain"
	"github.com/propview/properties-backend/internal/pkg/logger"
)

type OwnerRepo interface {
	GetAll(ctx context.Context) ([]*domain.Owner, error)
	// GetByID returns (nil, nil) when the id does not resolve. The returned
	// owner has its Properties back-reference populated from the properties
	// collection.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Owner, error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	// ExistsByNameAddress reports whether another owner already holds the
	// given name+address pair. exclude, when non-nil, removes one id from
	// consideration (the owner being updated).
	ExistsByNameAddress(ctx context.Context, name, address string, exclude *primitive.ObjectID) (bool, error)
	Add(ctx context.Context, owner *domain.Owner) (*domain.Owner, error)
	Update(ctx context.Context, owner *domain.Owner) (*domain.Owner, error)
	// Delete reports false when the store removed nothing.
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type ownerRepo struct {
	owners     *mongo.Collection
	properties *mongo.Collection
	log        *logger.Logger
}

func NewOwnerRepo(database *mongo.Database, baseLog *logger.Logger) OwnerRepo {
	repoLog := baseLog.With("repo", "OwnerRepo")
	return &ownerRepo{
		owners:     database.Collection(db.OwnersCollection),
		properties: database.Collection(db.PropertiesCollection),
		log:        repoLog,
	}
}

func (or *ownerRepo) GetAll(ctx context.Context) ([]*domain.Owner, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := or.owners.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	results := []*domain.Owner{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (or *ownerRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Owner, error) {
	var owner domain.Owner
	err := or.owners.FindOne(ctx, bson.M{"_id": id}).Decode(&owner)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	cursor, err := or.properties.Find(ctx, bson.M{"idOwner": id})
	if err != nil {
		return nil, err
	}
	owner.Properties = []*domain.Property{}
	if err := cursor.All(ctx, &owner.Properties); err != nil {
		return nil, err
	}
	return &owner, nil
}

func (or *ownerRepo) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := or.owners.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (or *ownerRepo) ExistsByNameAddress(ctx context.Context, name, address string, exclude *primitive.ObjectID) (bool, error) {
	query := bson.M{"name": name, "address": address}
	if exclude != nil {
		query["_id"] = bson.M{"$ne": *exclude}
	}
	count, err := or.owners.CountDocuments(ctx, query)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (or *ownerRepo) Add(ctx context.Context, owner *domain.Owner) (*domain.Owner, error) {
	if owner.ID.IsZero() {
		owner.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	owner.CreatedAt = now
	owner.UpdatedAt = now

	if _, err := or.owners.InsertOne(ctx, owner); err != nil {
		return nil, err
	}
	return owner, nil
}

func (or *ownerRepo) Update(ctx context.Context, owner *domain.Owner) (*domain.Owner, error) {
	owner.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"name":      owner.Name,
		"address":   owner.Address,
		"updatedAt": owner.UpdatedAt,
	}}
	if _, err := or.owners.UpdateOne(ctx, bson.M{"_id": owner.ID}, update); err != nil {
		return nil, err
	}
	return owner, nil
}

func (or *ownerRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := or.owners.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
