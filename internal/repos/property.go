package repos

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/propview/properties-backend/internal/db"
	"github.com/propview/properties-backend/internal/domain"
	"github.com/propview/properties-backend/internal/pkg/logger"
)

type PropertyRepo interface {
	GetAll(ctx context.Context) ([]*domain.Property, error)
	GetAllWithFilters(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, error)
	// GetByID returns (nil, nil) when the id does not resolve.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Property, error)
	GetByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*domain.Property, error)
	CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error)
	Add(ctx context.Context, property *domain.Property) (*domain.Property, error)
	Update(ctx context.Context, property *domain.Property) (*domain.Property, error)
	// Delete reports false when the store removed nothing.
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	Statistics(ctx context.Context) (*domain.PropertyStats, error)
}

type propertyRepo struct {
	properties *mongo.Collection
	log        *logger.Logger
}

func NewPropertyRepo(database *mongo.Database, baseLog *logger.Logger) PropertyRepo {
	repoLog := baseLog.With("repo", "PropertyRepo")
	return &propertyRepo{
		properties: database.Collection(db.PropertiesCollection),
		log:        repoLog,
	}
}

// buildFilter composes the listing predicate incrementally: one document
// field per supplied criterion, so composition is conjunctive and
// order-independent. Name and address match as case-insensitive quoted
// substrings; price bounds are inclusive and merge into one range document.
func buildFilter(filter domain.PropertyFilter) bson.M {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = bson.M{"$regex": regexp.QuoteMeta(filter.Name), "$options": "i"}
	}
	if filter.Address != "" {
		query["address"] = bson.M{"$regex": regexp.QuoteMeta(filter.Address), "$options": "i"}
	}
	if filter.MinPrice != nil || filter.MaxPrice != nil {
		price := bson.M{}
		if filter.MinPrice != nil {
			price["$gte"] = *filter.MinPrice
		}
		if filter.MaxPrice != nil {
			price["$lte"] = *filter.MaxPrice
		}
		query["price"] = price
	}
	return query
}

func (pr *propertyRepo) GetAll(ctx context.Context) ([]*domain.Property, error) {
	return pr.GetAllWithFilters(ctx, domain.PropertyFilter{})
}

func (pr *propertyRepo) GetAllWithFilters(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := pr.properties.Find(ctx, buildFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	results := []*domain.Property{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *propertyRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Property, error) {
	var property domain.Property
	err := pr.properties.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (pr *propertyRepo) GetByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*domain.Property, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := pr.properties.Find(ctx, bson.M{"idOwner": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	results := []*domain.Property{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *propertyRepo) CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	return pr.properties.CountDocuments(ctx, bson.M{"idOwner": ownerID})
}

func (pr *propertyRepo) Add(ctx context.Context, property *domain.Property) (*domain.Property, error) {
	if property.ID.IsZero() {
		property.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	property.CreatedAt = now
	property.UpdatedAt = now

	if _, err := pr.properties.InsertOne(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (pr *propertyRepo) Update(ctx context.Context, property *domain.Property) (*domain.Property, error) {
	property.UpdatedAt = time.Now().UTC()
	set := bson.M{
		"idOwner":   property.OwnerID,
		"name":      property.Name,
		"address":   property.Address,
		"price":     property.Price,
		"updatedAt": property.UpdatedAt,
	}
	if property.Image != nil {
		set["image"] = property.Image
	}
	if _, err := pr.properties.UpdateOne(ctx, bson.M{"_id": property.ID}, bson.M{"$set": set}); err != nil {
		return nil, err
	}
	return property, nil
}

func (pr *propertyRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := pr.properties.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// Statistics runs two aggregations: collection-wide totals with the average
// rounded to two decimals, and per-owner counts sorted by descending count.
func (pr *propertyRepo) Statistics(ctx context.Context) (*domain.PropertyStats, error) {
	totalsPipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalProperties", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "averagePrice", Value: bson.D{{Key: "$avg", Value: "$price"}}},
			{Key: "minPrice", Value: bson.D{{Key: "$min", Value: "$price"}}},
			{Key: "maxPrice", Value: bson.D{{Key: "$max", Value: "$price"}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "totalProperties", Value: 1},
			{Key: "averagePrice", Value: bson.D{{Key: "$round", Value: bson.A{"$averagePrice", 2}}}},
			{Key: "minPrice", Value: 1},
			{Key: "maxPrice", Value: 1},
		}}},
	}

	cursor, err := pr.properties.Aggregate(ctx, totalsPipeline)
	if err != nil {
		return nil, err
	}
	var totals []domain.PropertyStats
	if err := cursor.All(ctx, &totals); err != nil {
		return nil, err
	}

	stats := &domain.PropertyStats{}
	if len(totals) > 0 {
		*stats = totals[0]
	}

	byOwnerPipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$idOwner"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "idOwner", Value: bson.D{{Key: "$toString", Value: "$_id"}}},
			{Key: "count", Value: 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	cursor, err = pr.properties.Aggregate(ctx, byOwnerPipeline)
	if err != nil {
		return nil, err
	}
	stats.PropertiesByOwner = []domain.OwnerPropertyCount{}
	if err := cursor.All(ctx, &stats.PropertiesByOwner); err != nil {
		return nil, err
	}
	return stats, nil
}
