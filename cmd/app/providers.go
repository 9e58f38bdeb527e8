package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/feastly/backend/internal/domain/menu"
	"github.com/feastly/backend/internal/domain/restaurantsearch"
	"github.com/feastly/backend/internal/infra/catalogrepo"
	"github.com/feastly/backend/internal/infra/config"
	"github.com/feastly/backend/internal/infra/geostore"
)

func provideSearchConfig(cfg *config.Config) restaurantsearch.Config {
	windows := make([]restaurantsearch.PeakWindow, 0, len(cfg.Search.PeakWindows))
	for _, w := range cfg.Search.PeakWindows {
		windows = append(windows, restaurantsearch.PeakWindow{Start: w.Start, End: w.End})
	}
	return restaurantsearch.Config{
		CacheTTL:         cfg.Search.CacheTTL,
		GeohashPrecision: cfg.Search.GeohashPrecision,
		PeakRadiusKm:     cfg.Search.PeakRadiusKm,
		NormalRadiusKm:   cfg.Search.NormalRadiusKm,
		SubSearchTimeout: cfg.Search.SubSearchTimeout,
		PeakWindows:      windows,
	}
}

// catalogBackend is whatever implements both read sides of the catalog.
type catalogBackend interface {
	restaurantsearch.Catalog
	menu.Repository
}

func provideCatalogBackend(cfg *config.Config, logger *slog.Logger) catalogBackend {
	fallback := catalogrepo.NewMemoryRepository()
	uri := strings.TrimSpace(cfg.Mongo.URI)
	if uri == "" {
		logger.Info("mongo uri not set, using memory catalog")
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logger.Error("failed to connect to mongo, using memory catalog", "error", err)
		return fallback
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Error("mongo ping failed, using memory catalog", "error", err)
		return fallback
	}
	logger.Info("mongo catalog enabled", "database", cfg.Mongo.Database)
	return catalogrepo.NewMongoRepository(client.Database(cfg.Mongo.Database))
}

func provideCatalog(backend catalogBackend) restaurantsearch.Catalog {
	return backend
}

func provideMenuRepository(backend catalogBackend) menu.Repository {
	return backend
}

func provideStore(cfg *config.Config, logger *slog.Logger) restaurantsearch.Store {
	if cfg.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return geostore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return geostore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("valkey proximity cache enabled", "addr", cfg.Valkey.Addr)
			return geostore.NewValkeyStore(client, "geo")
		}
	}
	return geostore.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
