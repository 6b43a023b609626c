package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"horse-registry/internal/platform/config"
	"horse-registry/internal/platform/logger"
	"horse-registry/internal/router"
)

// @title       Horse Registry API
// @version     1.0
// @description Registro de caballos y dueños con validación de pedigree.
// @BasePath    /
func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	lg := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    "horse-registry",
	})

	h, err := router.New(router.Options{Config: cfg, Log: lg})
	if err != nil {
		lg.Error("startup error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	lg.Info("starting server", map[string]any{"addr": cfg.Addr, "driver": cfg.Storage.Driver})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lg.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
