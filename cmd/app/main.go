package main

import (
	"tempo/config"
	"tempo/di"
	"tempo/shared/logger"
	"tempo/shared/timezone"
)

// @title Tempo API
// @version 1.0
// @description Zoned datetime values rendered as ISO-8601.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	_ = timezone.Init(cfg.App.Timezone)

	http := di.InitializeService()
	http.Serve()
}
