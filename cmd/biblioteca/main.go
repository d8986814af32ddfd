package main

import (
	stdlog "log"

	"github.com/Astemirdum/biblioteca-service/app"
	"github.com/Astemirdum/biblioteca-service/config"
	_ "github.com/Astemirdum/biblioteca-service/docs"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// @title Biblioteca Service API
// @version 1.0
// @description Library management: loans, returns, fines and activity feed.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		stdlog.Printf("no .env file: %v", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
	)
	if err := app.Run(cfg); err != nil {
		stdlog.Fatalf("app run: %v", err)
	}
}
