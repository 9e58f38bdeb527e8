//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/feastly/backend/internal/bootstrap"
	"github.com/feastly/backend/internal/domain/menu"
	"github.com/feastly/backend/internal/domain/restaurantsearch"
	"github.com/feastly/backend/internal/infra/config"
	httpiface "github.com/feastly/backend/internal/interface/http"
	"github.com/feastly/backend/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideSearchConfig,
		provideCatalogBackend,
		provideCatalog,
		provideMenuRepository,
		provideStore,
		restaurantsearch.NewService,
		menu.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
