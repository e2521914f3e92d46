package main

import (
	"go-agency/internal/app"
	"go-agency/internal/shared/apperror"
	"go-agency/internal/shared/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	log, err := logger.New(logger.ConfigFromEnv())
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	apperror.Init()

	if err := app.RunConsumer(); err != nil {
		log.Fatal("run consumer failed", zap.Error(err))
	}
}
