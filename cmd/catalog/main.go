package main

import (
	"context"
	"log/slog"
	"os"

	"catalog/config"
	"catalog/internal/delivery"
	"catalog/internal/delivery/api"
	"catalog/internal/delivery/api/router/handler"
	"catalog/internal/domain/lifecycle"
	"catalog/internal/infra/feed"
	logs "catalog/internal/infra/log"
	"catalog/internal/infra/metrics"
	"catalog/internal/infra/persistence/gateway"
	"catalog/internal/infra/persistence/sqlstore"
	"catalog/internal/usecase"
	"catalog/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type loadCatalogParams struct {
	fx.In
	fx.Lifecycle

	Logger    *slog.Logger
	CatalogUC usecase.CatalogUsecase
	RefreshUC usecase.RefreshUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			loadCatalog,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.NewRegistry,
		metrics.NewRecorder,
		gateway.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlstore.NewCountryRepository,
			sqlstore.NewCategoryRepository,
			sqlstore.NewPriceHistoryRepository,
			sqlstore.NewProductRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			feed.NewParser,
			feed.NewSource,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewRefresher,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// loadCatalog fills the stores before the servers accept requests. A store that cannot be
// read falls back to a full refresh from the feed.
func loadCatalog(params loadCatalogParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
			defer cancel()

			if err := params.CatalogUC.LoadStores(ctx); err != nil {
				params.Logger.Error("Failed to load catalog stores", slog.Any("error", err))

				if _, err := params.RefreshUC.Trigger(); err != nil {
					params.Logger.Warn("Fallback refresh not started", slog.Any("error", err))
				}
			}

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
