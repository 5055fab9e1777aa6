package app

import (
	"github.com/propview/properties-backend/internal/pkg/logger"
	"github.com/propview/properties-backend/internal/platform/cache"
	"github.com/propview/properties-backend/internal/services"
)

type Services struct {
	Owner    services.OwnerService
	Property services.PropertyService
}

func wireServices(log *logger.Logger, reposet Repos, cacheService *cache.Service) Services {
	log.Info("Wiring services...")
	return Services{
		Owner:    services.NewOwnerService(log, reposet.Owner, reposet.Property),
		Property: services.NewPropertyService(log, reposet.Property, reposet.Owner, cacheService),
	}
}
