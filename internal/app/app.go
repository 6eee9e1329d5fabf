package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/hyperbros/cardstore/config"
	"github.com/hyperbros/cardstore/internal/adapter/catalogapi"
	"github.com/hyperbros/cardstore/internal/adapter/httphandler"
	"github.com/hyperbros/cardstore/internal/adapter/storage"
	"github.com/hyperbros/cardstore/internal/core/port"
	"github.com/hyperbros/cardstore/internal/core/service"
)

type App struct {
	ctx        context.Context
	cfg        config.Config
	sqldb      *storage.SQLDB
	service    *service.Service
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initCoreService() {
	const op = "App.initCoreService"

	source := catalogapi.New(catalogapi.Config{
		URL:         app.cfg.Catalog.APIURL,
		Timeout:     app.cfg.Catalog.FetchTimeout,
		MaxAttempts: app.cfg.Catalog.MaxAttempts,
	})

	var store port.CatalogStore
	if app.cfg.SQLDB != "" {
		sqldb, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
		if err != nil {
			app.fallDown(op, err)
		}
		app.sqldb = &sqldb
		store = storage.NewCatalogRepository(sqldb)
	}

	s := service.New(
		source,
		store,
		service.CheckoutConfig{
			ItemURL:     app.cfg.Checkout.ItemURL,
			MaxQuantity: app.cfg.Checkout.MaxQuantity,
		},
		service.SearchWeights{
			Title:    app.cfg.Catalog.TitleWeight,
			Category: app.cfg.Catalog.CategoryWeight,
		},
	)

	if err := s.Load(app.ctx); err != nil {
		app.fallDown(op, err)
	}
	app.service = s
}

func (app *App) initInboundAdapters() {
	addr := app.cfg.HTTPServerAddr
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.service, app.service, app.service, app.service)

	handler := httphandler.LogRequests(mux)
	app.httpServer = httphandler.NewHTTPServer(addr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	if app.sqldb != nil {
		app.sqldb.Close()
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
