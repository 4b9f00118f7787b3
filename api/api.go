package api

import (
	"context"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/zagvozdeen/irys-gallery/config"
	"github.com/zagvozdeen/irys-gallery/internal/gallery"
	"github.com/zagvozdeen/irys-gallery/internal/render"
	"log/slog"
	"net/http"
	"os"
	"time"
)

const (
	shutdownTimeout = 10 * time.Second
	requestLimit    = 600
)

type Application struct {
	config   config.Config
	logger   *slog.Logger
	store    gallery.Store
	renderer *render.Renderer
	// requests per minute per client IP under /api
	requestLimit int
}

func New(cfg config.Config, store gallery.Store, renderer *render.Renderer) *Application {
	return &Application{
		config:       cfg,
		logger:       slog.New(slog.NewJSONHandler(os.Stdout, nil)),
		store:        store,
		renderer:     renderer,
		requestLimit: requestLimit,
	}
}

func (a *Application) Handler() http.Handler {
	r := chi.NewRouter()
	// Forwarding headers are client-controlled unless a proxy overwrites
	// them, and the rate limiter keys on the resulting address.
	if a.config.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(
		requestID,
		a.accessLog,
		middleware.Recoverer,
		cors(a.config.AllowedOrigins),
	)
	r.Route("/api", func(r chi.Router) {
		r.Use(a.rateLimit(a.requestLimit, time.Minute))
		r.Get("/health", a.health)
		r.Get("/ready", a.ready)
		r.Post("/users/connect", a.connectWallet)
		r.Get("/artworks", a.listArtworks)
	})
	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (a *Application) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              a.config.Addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		a.logger.Info("Starting server", "addr", server.Addr, "production", a.config.IsProduction)
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
