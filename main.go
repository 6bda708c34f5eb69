package main

import (
	"fmt"
	"log"

	"github.com/thefr3spirit/homs-backend/internal/config"
	"github.com/thefr3spirit/homs-backend/internal/database"
	"github.com/thefr3spirit/homs-backend/internal/router"

	"github.com/sirupsen/logrus"
)

func main() {
	// load configuration from the environment (and .env in dev)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := config.NewLogger(cfg.Server.Debug)

	// init database
	db, err := database.Init(cfg.Database, cfg.Server.Debug)
	if err != nil {
		logger.Fatalf("init database: %v", err)
	}

	// ensure the schema exists
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatalf("migrate database: %v", err)
	}
	logger.Info("database initialized")

	// setup router
	r := router.Setup(cfg, db, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.WithFields(logrus.Fields{
		"app":     cfg.App.Name,
		"version": cfg.App.Version,
		"addr":    addr,
	}).Info("server listening")
	if err := r.Run(addr); err != nil {
		logger.Fatalf("run server: %v", err)
	}
}
