package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/improvlabs/stagepass/internal/core/service"
	"github.com/improvlabs/stagepass/internal/infra/buildinfo"
	"github.com/improvlabs/stagepass/internal/infra/confloader"
	"github.com/improvlabs/stagepass/internal/infra/livekit"
	"github.com/improvlabs/stagepass/internal/infra/shutdown"
	"github.com/improvlabs/stagepass/internal/server/config"
	"github.com/improvlabs/stagepass/internal/server/httpserver"
	"github.com/improvlabs/stagepass/internal/server/httpserver/handler"
	"github.com/improvlabs/stagepass/internal/telemetry/logger"
	"github.com/improvlabs/stagepass/internal/telemetry/metric"
)

func main() {
	app := &cli.App{
		Name:    "stagepass-server",
		Usage:   "LiveKit room token service",
		Version: buildinfo.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to configuration file",
				EnvVars: []string{"STAGEPASS_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "addr",
				Usage: "listen address (overrides config)",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c.String("config"), c.String("addr"))
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile, addrOverride string) error {
	// Load configuration
	cfg, err := loadConfig(configFile, addrOverride)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Initialize logger
	log, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	info := buildinfo.Get()
	log.Info("starting stagepass-server",
		"version", info.Version,
		"commit", info.Commit,
		"config", configFile)
	log.Debug("effective configuration", "config", config.Sanitize(cfg))

	// Metrics registry
	metrics := metric.NewRegistry()

	// LiveKit token signer
	signer, err := livekit.NewSigner(cfg.LiveKit.Key, cfg.LiveKit.Secret)
	if err != nil {
		return fmt.Errorf("init signer: %w", err)
	}

	// Token service
	tokenSvc := service.NewTokenService(signer, &service.TokenServiceConfig{
		URL:      cfg.LiveKit.URL,
		Room:     cfg.Token.Room,
		ValidFor: cfg.Token.TTL,
	})

	// HTTP handler and router
	httpHandler := handler.New(tokenSvc, metrics, log)
	router := httpserver.NewRouter(httpserver.RouterConfig{
		Handler:            httpHandler,
		Logger:             log,
		Metrics:            metrics,
		CORSAllowedOrigins: cfg.Server.HTTP.CORSAllowedOrigins,
		RateLimit:          cfg.Server.HTTP.RateLimit,
		TrustProxyHeaders:  cfg.Server.HTTP.TrustProxyHeaders,
	})

	httpServer := httpserver.New(cfg.Server.HTTP.Addr, router)

	// Setup graceful shutdown
	shutdownHandler := shutdown.NewHandler(30 * time.Second)

	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down HTTP server")
		return httpServer.Shutdown(ctx)
	})

	// Watch the config file so log level changes apply without a restart
	if configFile != "" {
		watcher, err := initConfigWatcher(configFile, log)
		if err != nil {
			log.Warn("config watcher disabled", "error", err)
		} else {
			shutdownHandler.OnShutdown(func(ctx context.Context) error {
				return watcher.Stop()
			})
		}
	}

	// Start HTTP server in goroutine
	go func() {
		log.Info("HTTP server listening", "addr", cfg.Server.HTTP.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	// Wait for shutdown signal
	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig loads configuration from defaults, file, environment and flags.
func loadConfig(configFile, addrOverride string) (*config.ServerConfig, error) {
	// Start with defaults
	cfg := config.Default()

	opts := []confloader.Option{}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	loader := confloader.NewLoader(opts...)

	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	// Flags override everything
	if addrOverride != "" {
		cfg.Server.HTTP.Addr = addrOverride
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// initLogger initializes the structured logger and sets it as default.
func initLogger(cfg *config.ServerConfig) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return nil, err
	}

	logger.SetDefault(log)
	return log, nil
}

// initConfigWatcher reloads the log level when the config file changes.
// Other settings require a restart.
func initConfigWatcher(configFile string, log logger.Logger) (*confloader.Watcher, error) {
	watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(log))
	if err != nil {
		return nil, err
	}
	if err := watcher.Watch(configFile); err != nil {
		return nil, err
	}

	watcher.OnChange(func(path string) {
		reloaded := config.Default()
		loader := confloader.NewLoader(confloader.WithConfigFile(configFile))
		if err := loader.Load(reloaded); err != nil {
			log.Warn("config reload failed", "path", path, "error", err)
			return
		}

		if reloaded.Log.Level != logger.GetLevel() {
			log.Info("log level changed",
				"from", logger.GetLevel(),
				"to", reloaded.Log.Level)
			logger.SetLevel(reloaded.Log.Level)
		}
	})

	watcher.StartAsync()
	return watcher, nil
}
