package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/propview/properties-backend/internal/pkg/logger"
	"github.com/propview/properties-backend/internal/utils"
)

const (
	OwnersCollection     = "owners"
	PropertiesCollection = "properties"
)

type MongoService struct {
	client *mongo.Client
	db     *mongo.Database
	log    *logger.Logger
}

func NewMongoService(ctx context.Context, log *logger.Logger) (*MongoService, error) {
	serviceLog := log.With("service", "MongoService")

	log.Info("Loading environment variables...")
	mongoURI := utils.GetEnv("MONGO_URI", "mongodb://localhost:27017", log)
	mongoName := utils.GetEnv("MONGO_DB", "properties_app", log)

	log.Info("Connecting to MongoDB...")
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		serviceLog.Error("Failed to connect to MongoDB", "error", err)
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		serviceLog.Error("Failed to ping MongoDB", "error", err)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	serviceLog.Info("Connected to MongoDB", "database", mongoName)

	return &MongoService{
		client: client,
		db:     client.Database(mongoName),
		log:    serviceLog,
	}, nil
}

// EnsureIndexes creates the query-path indexes: properties by owner and by
// price, and the owner name+address pair used by the duplicate probe.
func (s *MongoService) EnsureIndexes(ctx context.Context) error {
	s.log.Info("Ensuring MongoDB indexes...")

	_, err := s.db.Collection(PropertiesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "idOwner", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
	})
	if err != nil {
		s.log.Error("Failed to create property indexes", "error", err)
		return fmt.Errorf("create property indexes: %w", err)
	}

	_, err = s.db.Collection(OwnersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}, {Key: "address", Value: 1}},
	})
	if err != nil {
		s.log.Error("Failed to create owner indexes", "error", err)
		return fmt.Errorf("create owner indexes: %w", err)
	}

	s.log.Info("MongoDB indexes ensured")
	return nil
}

func (s *MongoService) Database() *mongo.Database {
	return s.db
}

func (s *MongoService) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
