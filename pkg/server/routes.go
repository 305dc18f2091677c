package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handlers struct {
	Logs     *LogServer
	Wines    *WineServer
	Cellar   *CellarServer
	Partners *PartnerServer
	Scan     *ScanServer
	Food     *FoodSearchServer
	Images   *ImageServer
}

type Middlewares struct {
	// Auth must put the user in the request context.
	Auth func(http.Handler) http.Handler
	// RateLimit guards the model-backed routes. Nil disables limiting.
	RateLimit func(http.Handler) http.Handler
}

// Static holds the unauthenticated handlers served next to the API.
type Static struct {
	Worker http.Handler
	Images http.Handler
}

func NewRouter(handlers Handlers, middlewares Middlewares, static Static, logger *zap.Logger) chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(logger))
	router.Use(middleware.Recoverer)

	router.Get("/health", health)

	if static.Worker != nil {
		router.Method(http.MethodGet, "/sw.js", static.Worker)
	}

	if static.Images != nil {
		router.Method(http.MethodGet, "/images/*", static.Images)
	}

	limit := middlewares.RateLimit
	if limit == nil {
		limit = func(next http.Handler) http.Handler { return next }
	}

	router.Route("/api", func(r chi.Router) {
		r.Use(middlewares.Auth)

		r.Route("/logs", func(r chi.Router) {
			r.Get("/", handlers.Logs.GetLogs)
			r.Post("/", handlers.Logs.AddLog)
			r.Delete("/", handlers.Logs.DeleteLog)
		})
		r.Get("/stats", handlers.Logs.GetStats)

		r.Post("/wines", handlers.Wines.AddWine)

		r.Route("/cellar", func(r chi.Router) {
			r.Get("/", handlers.Cellar.GetCellar)
			r.Post("/", handlers.Cellar.AddToCellar)
			r.Patch("/", handlers.Cellar.UpdateCellarItem)
			r.Delete("/", handlers.Cellar.DeleteCellarItem)
		})

		r.Route("/partners", func(r chi.Router) {
			r.Get("/", handlers.Partners.GetPartners)
			r.Post("/", handlers.Partners.Invite)
			r.Delete("/", handlers.Partners.DeletePartner)
			r.Post("/link", handlers.Partners.LinkPartners)
		})

		r.Post("/images", handlers.Images.UploadImage)

		r.Group(func(r chi.Router) {
			r.Use(limit)
			r.Post("/scan-wine", handlers.Scan.ScanWine)
			r.Post("/search-food", handlers.Food.SearchFood)
		})
	})

	return router
}

func health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapped := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				logger.Info("request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", wrapped.Status()),
					zap.Int("bytes", wrapped.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
					zap.String("request_id", middleware.GetReqID(r.Context())))
			}()

			next.ServeHTTP(wrapped, r)
		})
	}
}
