package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salary-predictor-service/internal/adapters/primary/http/handlers"
	"salary-predictor-service/internal/adapters/primary/http/middleware"
	"salary-predictor-service/internal/adapters/primary/http/view"
	"salary-predictor-service/internal/adapters/secondary/forest"
	"salary-predictor-service/internal/adapters/secondary/kserve"
	"salary-predictor-service/internal/adapters/secondary/manifest"
	"salary-predictor-service/internal/adapters/secondary/onnx"
	"salary-predictor-service/internal/config"
	"salary-predictor-service/internal/core/domain"
	output "salary-predictor-service/internal/core/ports/output"
	"salary-predictor-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)
	if envErr != nil {
		log.Debug("no .env file found, using environment variables")
	}

	// Column manifest and model are loaded once and shared read-only
	columns, err := manifest.Load(cfg.Model.FeaturesPath)
	if err != nil {
		log.Fatalf("load column manifest: %v", err)
	}
	log.WithFields(log.Fields{
		"path":    cfg.Model.FeaturesPath,
		"columns": columns.Len(),
	}).Info("column manifest loaded")

	predictor, err := newPredictor(cfg, columns)
	if err != nil {
		log.Fatalf("load model: %v", err)
	}
	defer func() {
		if err := predictor.Close(); err != nil {
			log.WithError(err).Warn("close model")
		}
	}()
	log.WithFields(log.Fields{
		"format": cfg.Model.Format,
		"model":  predictor.Describe(),
	}).Info("model loaded")

	salarySvc, err := services.NewSalaryService(columns, predictor)
	if err != nil {
		log.Fatalf("check model against manifest: %v", err)
	}

	tmpl, err := view.Templates()
	if err != nil {
		log.Fatalf("parse templates: %v", err)
	}

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(salarySvc, cfg.UI)

	// Setup router
	if cfg.Logger.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())
	router.SetHTMLTemplate(tmpl)
	h.RegisterRoutes(router)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// returning instead of exiting runs the deferred model Close
	if err := serve(srv, quit, cfg.Server.ShutdownTimeout); err != nil {
		log.Errorf("server error: %v", err)
		return
	}

	log.Info("server stopped")
}

// serve runs srv until it fails or a signal arrives on quit, then shuts it
// down within timeout.
func serve(srv *http.Server, quit <-chan os.Signal, timeout time.Duration) error {
	serveErr := make(chan error, 1)
	go func() {
		log.Infof("starting server on %s", srv.Addr)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-quit:
	}
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	return nil
}

func newPredictor(cfg *config.Config, columns *domain.ColumnManifest) (output.Predictor, error) {
	switch cfg.Model.Format {
	case config.ModelFormatForest:
		model, err := forest.Load(cfg.Model.Path)
		if err != nil {
			return nil, err
		}
		return model, nil

	case config.ModelFormatONNX:
		p, err := onnx.NewPredictor(&cfg.ONNX, cfg.Model.Path, columns.Len())
		if err != nil {
			return nil, err
		}
		return p, nil

	case config.ModelFormatKServe:
		// Kubernetes lookup (Optional - based on config)
		var resolver output.InferenceServiceResolver
		if cfg.Kubernetes.Enabled {
			client, err := kserve.NewKServeClient(&cfg.Kubernetes)
			if err != nil {
				return nil, err
			}
			resolver = client
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.KServe.Timeout)
		defer cancel()
		p, err := kserve.ResolvePredictor(ctx, &cfg.KServe, resolver)
		if err != nil {
			return nil, err
		}
		return p, nil

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedBackend, cfg.Model.Format)
	}
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
