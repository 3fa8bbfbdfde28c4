package handler

import (
	"net/http"

	"github.com/GitMovi52027/movi5/config"
	"github.com/GitMovi52027/movi5/di"
	"github.com/GitMovi52027/movi5/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	handler := di.InitializeService()
	handler.ServeHTTP(w, r)
}
