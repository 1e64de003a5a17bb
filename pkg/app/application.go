package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"classbook/pkg/config"
	"classbook/pkg/contracts"
	apperrors "classbook/pkg/errors"
	httputil "classbook/pkg/http"
	"classbook/pkg/middleware"

	"github.com/julienschmidt/httprouter"
)

type shutdownHook struct {
	name string
	fn   func() error
}

type Application struct {
	cfg              *config.Config
	server           *http.Server
	idempotencyStore *middleware.InMemoryIdempotencyStore
	healthHandler    http.Handler
	appHttpHandler   http.Handler
	shutdownHooks    []shutdownHook
}

func NewApplication(cfg *config.Config) *Application {
	return &Application{cfg: cfg}
}

// SetApp mounts the health endpoints behind a minimal middleware chain and
// every other handler behind the full one.
func (a *Application) SetApp(healthHandler contracts.Handler, appHandlers ...contracts.Handler) {
	a.setHealthHandler(healthHandler)
	a.setAppHandler(appHandlers)
	a.setAppServer()
}

// OnShutdown registers fn to run after the server stops, in registration order.
func (a *Application) OnShutdown(name string, fn func() error) {
	a.shutdownHooks = append(a.shutdownHooks, shutdownHook{name: name, fn: fn})
}

// Handler exposes the fully wrapped root handler.
func (a *Application) Handler() http.Handler {
	return a.server.Handler
}

func (a *Application) setHealthHandler(healthHandler contracts.Handler) {
	healthRouter := httprouter.New()
	healthHandler.RegisterRoutes(healthRouter)

	var healthHTTPHandler http.Handler = healthRouter
	healthHTTPHandler = middleware.Recovery(a.cfg.Log)(healthHTTPHandler)
	healthHTTPHandler = middleware.RequestLogging(a.cfg.Log)(healthHTTPHandler)
	a.healthHandler = healthHTTPHandler
	a.cfg.Log.Info("Health endpoints configured with minimal middleware (Recovery + Logging only)")
}

func (a *Application) setAppHandler(appHandlers []contracts.Handler) {
	appRouter := httprouter.New()
	appRouter.NotFound = http.HandlerFunc(a.notFound)
	appRouter.MethodNotAllowed = http.HandlerFunc(a.methodNotAllowed)
	for _, h := range appHandlers {
		h.RegisterRoutes(appRouter)
		if n, ok := h.(contracts.Named); ok {
			a.cfg.Log.Debug("routes registered", "handler", n.Name())
		}
	}

	a.idempotencyStore = middleware.NewInMemoryIdempotencyStore(a.cfg.IdempotencyTTL)
	a.OnShutdown("idempotency store", func() error {
		a.idempotencyStore.Stop()
		return nil
	})

	var appHttpHandler http.Handler = appRouter
	appHttpHandler = middleware.Idempotency(a.idempotencyStore, middleware.DefaultIdempotencyHeader)(appHttpHandler)
	appHttpHandler = middleware.RequestTimeout(a.cfg.RequestTimeout)(appHttpHandler)
	appHttpHandler = middleware.ContentTypeValidation(a.cfg.Log)(appHttpHandler)
	appHttpHandler = middleware.MaxRequestSize(int64(a.cfg.MaxRequestSize))(appHttpHandler)
	appHttpHandler = middleware.Recovery(a.cfg.Log)(appHttpHandler)
	appHttpHandler = middleware.RequestLogging(a.cfg.Log)(appHttpHandler)
	a.appHttpHandler = appHttpHandler
	a.cfg.Log.Info("Application endpoints configured with full middleware stack")
}

func (a *Application) notFound(w http.ResponseWriter, r *http.Request) {
	if err := httputil.WriteError(w, apperrors.NotFound("Route")); err != nil {
		a.cfg.Log.Error("failed to write error response", "handler", "NotFound", "operation", "WriteError", "error", err)
	}
}

func (a *Application) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if err := httputil.WriteError(w, apperrors.New("METHOD_NOT_ALLOWED", "Method not allowed", http.StatusMethodNotAllowed)); err != nil {
		a.cfg.Log.Error("failed to write error response", "handler", "MethodNotAllowed", "operation", "WriteError", "error", err)
	}
}

func (a *Application) setAppServer() {
	mux := http.NewServeMux()
	mux.Handle("/health", a.healthHandler)
	mux.Handle("/ready", a.healthHandler)
	mux.Handle("/", a.appHttpHandler)

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      mux,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port)
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		a.runShutdownHooks()
		a.cfg.Log.Fatal("HTTP server failed", "error", err)

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig)
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	a.cfg.Log.Info("Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Error("Could not stop server gracefully", "error", err)
		}
	}

	a.runShutdownHooks()
	a.cfg.Log.Info("Server stopped gracefully")
}

func (a *Application) runShutdownHooks() {
	for _, hook := range a.shutdownHooks {
		if err := hook.fn(); err != nil {
			a.cfg.Log.Error("Shutdown hook failed", "hook", hook.name, "error", err)
			continue
		}
		a.cfg.Log.Info("Shutdown hook completed", "hook", hook.name)
	}
}
