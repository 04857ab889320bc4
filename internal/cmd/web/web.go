// Package web wires configuration and dependencies for the web command.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/roivolution/roivolution/internal/platform/config"
	"github.com/roivolution/roivolution/internal/platform/otel"
	"github.com/roivolution/roivolution/internal/roi/anomaly"
	"github.com/roivolution/roivolution/internal/roi/storage/sqlite"
	"github.com/roivolution/roivolution/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr        string `env:"ROIVOLUTION_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	StoragePath     string `env:"ROIVOLUTION_WEB_STORAGE_PATH" envDefault:"roivolution.db"`
	AnomalyEndpoint string `env:"ROIVOLUTION_ANOMALY_ENDPOINT"`
	AnomalyKey      string `env:"ROIVOLUTION_ANOMALY_KEY"`
}

// ParseConfig loads configuration from the environment and applies flag
// overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.StoragePath, "storage-path", cfg.StoragePath, "SQLite database path")
	fs.StringVar(&cfg.AnomalyEndpoint, "anomaly-endpoint", cfg.AnomalyEndpoint, "Anomaly Detector base URL")
	fs.StringVar(&cfg.AnomalyKey, "anomaly-key", cfg.AnomalyKey, "Anomaly Detector subscription key")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the web server with its storage and anomaly dependencies.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, "web")
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	store, err := sqlite.Open(cfg.StoragePath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close storage: %v", err)
		}
	}()

	detector := anomaly.New(cfg.AnomalyEndpoint, cfg.AnomalyKey)
	if !detector.Configured() {
		log.Printf("anomaly detection disabled: endpoint or key not configured")
	}

	server, err := web.NewServer(cfg.HTTPAddr, web.Dependencies{
		Store:    store,
		Detector: detector,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
