package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/nvoronin/storefront/config"
	"github.com/nvoronin/storefront/internal/adapter/dummyjson"
	"github.com/nvoronin/storefront/internal/adapter/httphandler"
	"github.com/nvoronin/storefront/internal/core/domain"
	"github.com/nvoronin/storefront/internal/core/service"
)

type App struct {
	ctx        context.Context
	cfg        config.Config
	catalog    *service.CatalogService
	cart       *service.CartService
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initCoreServices()
	app.initHTTPServer()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initCoreServices() {
	client := dummyjson.NewClient(
		app.cfg.Catalog.BaseURL,
		app.cfg.Catalog.ProductsLimit,
		app.cfg.Catalog.RequestTimeout,
	)

	app.catalog = service.NewCatalog(client, app.cfg.Catalog.PlaceholderImage)
	app.cart = service.NewCart()

	app.cart.Subscribe(func(s domain.CartSummary) {
		slog.Debug("cart changed",
			"totalItems", s.TotalItems,
			"totalPrice", s.TotalPrice.StringFixed(2),
		)
	})
}

func (app *App) initHTTPServer() {
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.catalog)
	httphandler.RegisterCart(mux, app.cart, app.catalog)
	httphandler.RegisterCheckout(mux, app.cart)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)
	go app.initialRefresh()

	slog.Info("application is running")
}

// initialRefresh loads the catalog once at startup. A failure leaves the
// catalog empty and is not retried; POST /v1/catalog/refresh is the
// manual recovery path.
func (app *App) initialRefresh() {
	const op = "App.initialRefresh"

	if err := app.catalog.Refresh(app.ctx); err != nil {
		slog.Error("initial catalog refresh failed", "op", op, "err", err)
	}
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)

	slog.Info("application is closed")
}
