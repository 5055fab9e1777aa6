package app

import (
	"github.com/gin-gonic/gin"

	"github.com/propview/properties-backend/internal/http"
	httpH "github.com/propview/properties-backend/internal/http/handlers"
	"github.com/propview/properties-backend/internal/pkg/logger"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	Owner    *httpH.OwnerHandler
	Property *httpH.PropertyHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(),
		Owner:    httpH.NewOwnerHandler(serviceset.Owner),
		Property: httpH.NewPropertyHandler(serviceset.Property),
	}
}

func wireRouter(log *logger.Logger, handlerset Handlers) *gin.Engine {
	return http.NewRouter(http.RouterConfig{
		Log:             log,
		HealthHandler:   handlerset.Health,
		OwnerHandler:    handlerset.Owner,
		PropertyHandler: handlerset.Property,
	})
}
