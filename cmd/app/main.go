package main

import (
	"github.com/GitMovi52027/movi5/config"
	"github.com/GitMovi52027/movi5/di"
	"github.com/GitMovi52027/movi5/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
