package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"legal-advisor-backend/config"
	"legal-advisor-backend/handlers"
	"legal-advisor-backend/llm"
	"legal-advisor-backend/logging"
	"legal-advisor-backend/repository"
	"legal-advisor-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

// evictionInterval sweeps a few times per idle timeout, at most once a minute
func evictionInterval(idleTimeout time.Duration) time.Duration {
	interval := idleTimeout / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	return interval
}

func main() {
	var (
		configPath string
		port       int
	)

	cmd := &cobra.Command{
		Use:          "server",
		Short:        "Serve the Australian legal advisor UI and JSON API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configPath, port)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides PORT)")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, port int) error {
	// Load .env file from project root (relative to cmd/server/)
	// Try current directory first, then project root
	dotenvErr := godotenv.Load()
	if dotenvErr != nil {
		dotenvErr = godotenv.Load("../../.env")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Port = port
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	if dotenvErr != nil {
		logger.Warn("no .env file found, using environment variables")
	}
	if !cfg.HasActiveAPIKey() {
		logger.Warn("API key not set; queries will fail with a configuration error until it is provided",
			zap.String("provider", cfg.LLMProvider),
			zap.String("env", cfg.ActiveAPIKeyName()),
		)
	}

	completer, err := llm.NewFromConfig(cfg)
	if err != nil {
		return err
	}
	if closer, ok := completer.(io.Closer); ok {
		defer closer.Close()
	}

	// Initialize repositories and services
	historyRepo := repository.NewHistoryRepository(
		repository.WithIdleTimeout(cfg.SessionIdleTimeout),
		repository.WithMaxSessions(cfg.MaxSessions),
	)

	queryService := service.NewQueryService(
		service.WithCompleter(completer),
		service.WithLogger(logger),
	)
	historyService := service.NewHistoryService(
		service.WithHistoryRepository(historyRepo),
	)

	gin.SetMode(cfg.GinMode)
	router, err := handlers.NewRouter(handlers.RouterConfig{
		QueryService:   queryService,
		HistoryService: historyService,
		Logger:         logger,
		SessionCookie:  cfg.SessionCookie,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("provider", cfg.LLMProvider),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		ticker := time.NewTicker(evictionInterval(cfg.SessionIdleTimeout))
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if n := historyRepo.EvictIdle(); n > 0 {
					logger.Debug("evicted idle sessions",
						zap.Int("count", n),
						zap.Int("remaining", historyRepo.SessionCount()),
					)
				}
			}
		}
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
