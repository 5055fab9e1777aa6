package repos

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/propview/properties-backend/internal/domain"
	"github.com/propview/properties-backend/internal/pkg/logger"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// testDB connects to the instance named by MONGO_TEST_URI and hands the test
// a throwaway database that is dropped on cleanup. Without the variable the
// test is skipped, so the suite stays runnable offline.
func testDB(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set, skipping mongodb integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect to mongodb: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		t.Fatalf("ping mongodb: %v", err)
	}

	database := client.Database(fmt.Sprintf("properties_test_%d", time.Now().UnixNano()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = database.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return database
}

func seedOwner(t *testing.T, ctx context.Context, repo OwnerRepo, name, address string) *domain.Owner {
	t.Helper()
	owner, err := repo.Add(ctx, &domain.Owner{Name: name, Address: address})
	if err != nil {
		t.Fatalf("seed owner %q: %v", name, err)
	}
	return owner
}

func seedProperty(t *testing.T, ctx context.Context, repo PropertyRepo, ownerID primitive.ObjectID, name, address string, price float64) *domain.Property {
	t.Helper()
	property, err := repo.Add(ctx, &domain.Property{
		OwnerID: ownerID,
		Name:    name,
		Address: address,
		Price:   price,
	})
	if err != nil {
		t.Fatalf("seed property %q: %v", name, err)
	}
	return property
}
