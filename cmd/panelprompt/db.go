package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"panelprompt/internal/config"
	"panelprompt/internal/kv"
	"panelprompt/internal/kv/memory"
	"panelprompt/internal/kv/postgres"
	"panelprompt/internal/kv/sqlite"
	"panelprompt/internal/library"
	"panelprompt/internal/project"
)

type workspace struct {
	cfg     *config.ProjectConfig
	store   kv.Store
	lib     *library.Library
	project *project.Store
}

func (w *workspace) Close(ctx context.Context) {
	if err := w.store.Close(ctx); err != nil {
		slog.Warn("closing storage", "error", err)
	}
}

func loadConfig() (*config.ProjectConfig, error) {
	cfg, err := config.LoadProjectConfig(configPath)
	if err != nil {
		return nil, err
	}
	level := cfg.Log.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return cfg, nil
}

func openWorkspace(ctx context.Context) (*workspace, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &workspace{
		cfg:     cfg,
		store:   store,
		lib:     library.New(store),
		project: project.New(store),
	}, nil
}

func openStore(ctx context.Context, cfg *config.ProjectConfig) (kv.Store, error) {
	var store kv.Store
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		client, err := sqlite.New(ctx, cfg.Storage.DSN)
		if err != nil {
			return nil, err
		}
		store = client
	case config.DriverPostgres:
		client, err := postgres.New(ctx, cfg.Storage.DSN)
		if err != nil {
			return nil, err
		}
		store = client
	case config.DriverMemory:
		store = memory.New()
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Storage.Driver)
	}
	slog.Debug("opened storage", "driver", cfg.Storage.Driver)

	if ttl := cfg.Cache.Duration(); ttl > 0 {
		return kv.Cached(store, ttl), nil
	}
	return store, nil
}
