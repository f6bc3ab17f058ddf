package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/shop/config"
	"github.com/niksmo/shop/internal/adapter/auth"
	"github.com/niksmo/shop/internal/adapter/httphandler"
	"github.com/niksmo/shop/internal/adapter/rediscache"
	"github.com/niksmo/shop/internal/adapter/storage"
	"github.com/niksmo/shop/internal/core/service"
	"github.com/niksmo/shop/pkg/retry"
)

type adapters struct {
	sqldb storage.SQLDB
	cache rediscache.ProductsCache
}

type services struct {
	catalog service.CatalogService
	orders  service.OrderService
	users   service.UserService
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	adapters   adapters
	services   services
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initOutboundAdapters()
	app.initCoreServices()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	sqldb, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.adapters.sqldb = sqldb

	cache, err := rediscache.New(app.ctx, app.cfg.Cache.Addr)
	if err != nil {
		app.fallDown(op, err)
	}
	app.adapters.cache = cache
}

func (app *App) initCoreServices() {
	products := storage.NewProductsRepository(app.adapters.sqldb)
	orders := storage.NewOrdersRepository(app.adapters.sqldb)
	users := storage.NewUsersRepository(app.adapters.sqldb)

	hasher := auth.NewHasher()
	tokens := auth.NewJWTProvider(app.cfg.Auth.JWTSecret, app.cfg.Auth.TokenTTL)

	app.services.catalog = service.NewCatalog(products, app.adapters.cache)
	app.services.orders = service.NewOrders(orders, app.adapters.cache)
	app.services.users = service.NewUsers(users, products, hasher, tokens)
}

func (app *App) initInboundAdapters() {
	retryCfg := retry.RetryConfig{
		MaxAttempts: app.cfg.Order.PlaceAttempts,
		Backoff:     retry.ConstantBackoff(app.cfg.Order.RetryDelay),
		ShouldRetry: storage.IsTxConflict,
	}

	mux := http.NewServeMux()
	httphandler.RegisterProducts(mux, app.services.catalog, app.services.catalog)
	httphandler.RegisterOrders(mux, app.services.orders, app.services.users, retryCfg)
	httphandler.RegisterUsers(mux, app.services.users, app.services.users, app.services.users)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.adapters.cache.Close()
	app.adapters.sqldb.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
