package app

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/propview/properties-backend/internal/pkg/logger"
	"github.com/propview/properties-backend/internal/repos"
)

type Repos struct {
	Owner    repos.OwnerRepo
	Property repos.PropertyRepo
}

func wireRepos(database *mongo.Database, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Owner:    repos.NewOwnerRepo(database, log),
		Property: repos.NewPropertyRepo(database, log),
	}
}
