package app

import (
	"time"

	"github.com/propview/properties-backend/internal/pkg/logger"
	"github.com/propview/properties-backend/internal/utils"
)

type Config struct {
	HTTPPort      string
	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	httpPort := utils.GetEnv("HTTP_PORT", "8080", log)
	redisAddr := utils.GetEnv("REDIS_ADDR", "", log)
	redisPassword := utils.GetEnv("REDIS_PASSWORD", "", log)
	cacheTTLSeconds := utils.GetEnvAsInt("CACHE_TTL_SECONDS", 60, log)
	return Config{
		HTTPPort:      httpPort,
		RedisAddr:     redisAddr,
		RedisPassword: redisPassword,
		CacheTTL:      time.Duration(cacheTTLSeconds) * time.Second,
	}
}
