package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"docqa/internal/extract"
	"docqa/internal/generation"
	handlers "docqa/internal/http/handler"
	"docqa/internal/http/middleware"
	"docqa/internal/otel"
	"docqa/internal/service"
	"docqa/internal/storage"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.WithError(err).Warn("tracer shutdown")
		}
	}()

	st, err := openStores(ctx)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := st.close(sctx); err != nil {
			log.WithError(err).Warn("store close")
		}
	}()

	// Archiving originals is optional; without MinIO only the extracted text is kept.
	var objStore storage.Storage
	if cfg.MinIO.Enabled() {
		objStore, err = storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			return err
		}
	}

	gen, err := generation.New(cfg.Generation)
	if err != nil {
		return err
	}
	if c, ok := gen.(interface{ Close() error }); ok {
		defer c.Close()
	}
	if cfg.Generation.APIKey == "" {
		log.Warn("GEMINI_API_KEY is not set; /generate will fail until it is configured")
	}
	gen, err = generation.Instrument(gen, cfg.Generation.Backend, prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	docSvc := service.NewDocumentService(st.documents, extract.Default(), objStore)
	questionSvc := service.NewQuestionService(st.documents, st.questions)
	answerSvc := service.NewAnswerService(docSvc, questionSvc, gen, cfg.Generation.Model)

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		BodyLimit:             cfg.BodyLimit(),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST",
		AllowCredentials: true,
	}))
	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	handlers.RegisterRoutes(app, st.documents, handlers.Services{
		Documents: docSvc,
		Questions: questionSvc,
		Answers:   answerSvc,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		log.WithFields(logrus.Fields{
			"addr":               addr,
			"store_driver":       cfg.StoreDriver,
			"generation_backend": cfg.Generation.Backend,
			"archive_enabled":    objStore != nil,
		}).Info("server starting")
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	case <-ctx.Done():
		log.Info("shutting down")
		return app.ShutdownWithTimeout(shutdownTimeout)
	}
}
