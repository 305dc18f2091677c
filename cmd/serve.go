package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	grpcreflect "github.com/bufbuild/connect-grpcreflect-go"
	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/Vinlogg/configs"
	"droscher.com/Vinlogg/pkg/auth"
	"droscher.com/Vinlogg/pkg/integrations"
	"droscher.com/Vinlogg/pkg/offline"
	"droscher.com/Vinlogg/pkg/pairing"
	"droscher.com/Vinlogg/pkg/ratelimit"
	"droscher.com/Vinlogg/pkg/repository"
	"droscher.com/Vinlogg/pkg/server"
	"droscher.com/Vinlogg/pkg/sommelier"
	"droscher.com/Vinlogg/pkg/storage"
)

const (
	timeout          = 5 * time.Second
	shutdownTimeout  = 15 * time.Second
	compressMinBytes = 1024
)

type ServeCmd struct {
	ConfigFile string `default:".Vinlogg.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(cliContext *Context) error {
	logConfig := zap.NewProductionConfig()
	if cliContext.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	if conf.Auth.SecretKey == "" {
		logger.Error("no auth secret key configured")

		return fmt.Errorf("%w: Auth.SecretKey is required to serve", configs.ErrConfiguration)
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	worker, err := offline.NewWorker(conf.Offline)
	if err != nil {
		logger.Error("error rendering service worker", zap.Error(err))

		return err
	}

	authManager := auth.NewAuthManager(conf, repo, logger)
	sommelierClient := sommelier.NewClient(conf.OpenAI, logger)
	imageStore := storage.NewFileStore(conf, logger)

	handlers := server.Handlers{
		Logs:     server.NewLogServer(repo, repo, logger),
		Wines:    server.NewWineServer(repo, logger),
		Cellar:   server.NewCellarServer(repo, repo, logger),
		Partners: server.NewPartnerServer(repo, repo, logger),
		Scan:     server.NewScanServer(sommelierClient, integrations.NewChain(conf, logger), repo, logger),
		Food:     server.NewFoodSearchServer(pairing.NewResolver(sommelierClient, logger), repo, logger),
		Images:   server.NewImageServer(imageStore, logger),
	}

	middlewares := server.Middlewares{
		Auth:      authManager.Middleware,
		RateLimit: newLimiter(conf, logger).Middleware,
	}

	router := server.NewRouter(handlers, middlewares, server.Static{Worker: worker, Images: imageStore.Handler()}, logger)

	checker := grpchealth.NewStaticChecker()
	mountProbes(router, checker)

	address := fmt.Sprintf(":%d", conf.Server.Port)

	// Configure CORS first
	corsHandler := configureCORS(router)
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()

		checker.SetStatus("", grpchealth.StatusNotServing)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := svr.Shutdown(shutdownCtx); err != nil {
			logger.Error("error shutting down server", zap.Error(err))
		}
	}()

	logger.Info("listening", zap.String("address", address))

	err = svr.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

// newLimiter returns nil when no Redis address is configured, which disables limiting.
func newLimiter(conf *configs.Config, logger *zap.Logger) *ratelimit.Limiter {
	client := ratelimit.NewRedisClient(conf.Redis)
	if client == nil {
		logger.Info("rate limiting disabled, no redis configured")

		return nil
	}

	return ratelimit.NewLimiter(client, conf.RateLimit, logger)
}

func mountProbes(router chi.Router, checker *grpchealth.StaticChecker) {
	options := connect.WithCompressMinBytes(compressMinBytes)
	reflector := grpcreflect.NewStaticReflector(grpchealth.HealthV1ServiceName)

	for _, probe := range []func() (string, http.Handler){
		func() (string, http.Handler) { return grpchealth.NewHandler(checker, options) },
		func() (string, http.Handler) { return grpcreflect.NewHandlerV1(reflector, options) },
		func() (string, http.Handler) { return grpcreflect.NewHandlerV1Alpha(reflector, options) },
	} {
		path, handler := probe()
		router.Handle(path+"*", handler)
	}
}

func configureCORS(handler http.Handler) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-encoding",
			"content-length",
			"content-type",
			"grpc-timeout",
			"if-none-match",
			"origin",
			"referer",
			"user-agent",
			"x-grpc-web",
			"x-user-agent",
		},
		ExposedHeaders: []string{
			"etag",
			"retry-after",
			"x-ratelimit-limit",
			"x-ratelimit-remaining",
			"grpc-message",
			"grpc-status",
		},
		MaxAge:             86400, // 24 hours
		OptionsPassthrough: false, // Handle OPTIONS requests in CORS middleware
	})

	return corsOpts.Handler(handler)
}
