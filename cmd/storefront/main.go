package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aaravmahajanofficial/storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/cache"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/health"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/storage"
	"github.com/aaravmahajanofficial/storefront/internal/storage/postgres"
	"github.com/aaravmahajanofficial/storefront/internal/stores"
	"github.com/aaravmahajanofficial/storefront/internal/tracing"
	"github.com/aaravmahajanofficial/storefront/internal/views"
	"github.com/aaravmahajanofficial/storefront/pkg/catalog"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	tp, err := tracing.Setup(context.Background(), &cfg.Otel, cfg.Env)
	if err != nil {
		slog.Error("❌ Error setting up tracing", "error", err.Error())
		os.Exit(1)
	}

	// Redis is shared by storage and cache when either uses it
	var redisClient *redis.Client
	if cfg.Storage.Driver == "redis" || cfg.Cache.Driver == "redis" {
		redisClient, err = storage.NewRedisClient(&cfg.RedisConnect)
		if err != nil {
			slog.Warn("⚠️ Redis unavailable, falling back", "error", err.Error())
		} else {
			defer redisClient.Close()
		}
	}

	// Storage setup
	st := newStorage(cfg, redisClient)

	defer func() {
		if err := st.Close(); err != nil {
			slog.Error("⚠️ Error closing storage", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Storage closed")
		}
	}()

	// Cache setup
	responseCache := newCache(cfg, redisClient)
	defer responseCache.Close()

	zeroPolicy := catalog.ZeroPolicyKeep
	if cfg.API.DropZeroParams {
		zeroPolicy = catalog.ZeroPolicyDrop
	}

	catalogClient, err := catalog.NewClient(cfg.API.BaseURL,
		catalog.WithTimeout(cfg.API.Timeout),
		catalog.WithZeroPolicy(zeroPolicy),
		catalog.WithRetry(cfg.API.RetryAttempts, cfg.API.RetryInitialInterval, cfg.API.RetryMaxInterval),
		catalog.WithCache(cache.Instrumented(responseCache)),
		catalog.WithObserver(metrics.ObserveCatalogRequest),
		catalog.WithLogger(logger),
	)
	if err != nil {
		slog.Error("❌ Error creating catalog client", "error", err.Error())
		os.Exit(1)
	}

	// Stores are loaded once before serving
	cart := stores.NewCart(st, cfg.Storage.CartKey)
	watchlist := stores.NewWatchlist(st, cfg.Storage.WatchlistKey)
	cart.Load(context.Background())
	watchlist.Load(context.Background())

	cart.Subscribe(logEvent)
	watchlist.Subscribe(logEvent)

	layout := views.NewLayout(cfg.UI.CompactBreakpoint)

	catalogService := service.NewCatalogService(catalogClient, cart, watchlist)
	cartService := service.NewCartService(cart, catalogClient)
	watchlistService := service.NewWatchlistService(watchlist, catalogClient)

	productHandler := handlers.NewProductHandler(catalogService, layout)
	departmentHandler := handlers.NewDepartmentHandler(catalogService, layout)
	filterHandler := handlers.NewFilterHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	watchlistHandler := handlers.NewWatchlistHandler(watchlistService)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{
		Catalog: catalogClient,
		Storage: st,
	})
	if err != nil {
		slog.Error("❌ Error creating health handler", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized",
		slog.String("env", cfg.Env),
		slog.String("version", health.Version),
		slog.String("driver", cfg.Storage.Driver))

	// Setup router
	routerMux := http.NewServeMux()

	routes := map[string]http.Handler{
		"GET /api/v1/home":                      productHandler.Home(),
		"GET /api/v1/products":                  productHandler.ListProducts(),
		"GET /api/v1/products/{id}":             productHandler.GetProduct(),
		"GET /api/v1/stats":                     productHandler.Stats(),
		"GET /api/v1/departments":               departmentHandler.ListDepartments(),
		"GET /api/v1/departments/{id}":          departmentHandler.GetDepartment(),
		"GET /api/v1/departments/{id}/products": departmentHandler.DepartmentProducts(),
		"GET /api/v1/filters":                   filterHandler.GetFilters(),
		"PATCH /api/v1/filters":                 filterHandler.UpdateFilters(),
		"DELETE /api/v1/filters/{key}":          filterHandler.RemoveFilter(),
		"DELETE /api/v1/filters":                filterHandler.ClearFilters(),
		"GET /api/v1/cart":                      cartHandler.GetCart(),
		"POST /api/v1/cart/items":               cartHandler.AddItem(),
		"PUT /api/v1/cart/items/{id}":           cartHandler.UpdateQuantity(),
		"DELETE /api/v1/cart/items/{id}":        cartHandler.RemoveItem(),
		"DELETE /api/v1/cart":                   cartHandler.ClearCart(),
		"GET /api/v1/watchlist":                 watchlistHandler.GetWatchlist(),
		"POST /api/v1/watchlist/items":          watchlistHandler.AddItem(),
		"DELETE /api/v1/watchlist/items/{id}":   watchlistHandler.RemoveItem(),
		"DELETE /api/v1/watchlist":              watchlistHandler.ClearWatchlist(),
	}

	for pattern, h := range routes {
		routerMux.Handle(pattern, metrics.Route(pattern, h))
	}

	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, cfg.Otel.ServiceName)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := tp.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}
}

// newStorage opens the configured backend. Unreachable backends fall back to
// memory so the stores keep working for the life of the process.
func newStorage(cfg *config.Config, redisClient *redis.Client) storage.Storage {
	switch cfg.Storage.Driver {
	case "memory":
		return storage.NewMemoryStorage()
	case "redis":
		if redisClient != nil {
			return storage.NewRedisStorage(redisClient, cfg.Storage.Prefix)
		}
	case "postgres":
		pg, err := postgres.New(&cfg.Database)
		if err == nil {
			return pg
		}

		slog.Warn("⚠️ Postgres unavailable, falling back to memory storage", "error", err.Error())
	default:
		fs, err := storage.NewFileStorage(cfg.Storage.Dir)
		if err == nil {
			return fs
		}

		slog.Warn("⚠️ File storage unavailable, falling back to memory storage", "error", err.Error())
	}

	return storage.NewMemoryStorage()
}

func newCache(cfg *config.Config, redisClient *redis.Client) cache.Cache {
	switch cfg.Cache.Driver {
	case "none":
		return cache.NewNoopCache()
	case "redis":
		if redisClient != nil {
			return cache.NewRedisCache(redisClient, &cfg.Cache, cfg.Storage.Prefix)
		}
	}

	return cache.NewMemoryCache(&cfg.Cache)
}

func logEvent(ev stores.Event) {
	slog.Info("Collection changed",
		slog.String("store", ev.Store),
		slog.String("kind", string(ev.Kind)),
		slog.Int64("item_id", ev.ItemID))
}
