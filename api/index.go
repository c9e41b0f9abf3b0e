package handler

import (
	"net/http"
	"sync"
	"tempo/config"
	"tempo/di"
	"tempo/shared/logger"
	"tempo/shared/timezone"
)

var (
	server http.Handler
	once   sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		_ = timezone.Init(cfg.App.Timezone)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
