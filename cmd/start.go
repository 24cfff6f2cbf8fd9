package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"revo-utils/core/database"
	"revo-utils/core/loader"
	"revo-utils/core/logger"
	"revo-utils/core/metrics"
	"revo-utils/core/middleware/auth"
	"revo-utils/core/middleware/rayid"
	"revo-utils/core/storage"
	"revo-utils/core/webpack"

	"revo-utils/feature/assets"
	"revo-utils/feature/tables"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "revo-utils/docs/swagger"
)

// @title Revo Utils API
// @version 1.0
// @description Table exports and webpack bundle lookups.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg, err := bootstrap()
		if err != nil {
			log.Fatal(err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !cfg.Server.IsValidEnvironment() {
			logg.Fatal("Invalid server environment", zap.String("environment", cfg.Server.Environment))
		}

		// Database is optional; without it the tables feature stays disabled
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database, logg); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
		}

		var store storage.Client
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Storage unavailable, uploads disabled", zap.Error(err))
		} else {
			store = client
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m := metrics.New(reg)

		bundles, err := webpack.NewRegistry(cfg.Assets,
			webpack.WithStorage(store),
			webpack.WithLogger(logg.Named("webpack")),
			webpack.WithMetrics(m),
		)
		if err != nil {
			logg.Fatal("Invalid assets configuration", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ReadTimeout:           cfg.Server.ReadTimeout(),
			WriteTimeout:          cfg.Server.WriteTimeout(),
		})

		mgr := loader.NewManager(logg)
		mgr.Register(tables.NewFeature(db, store, cfg.Storage.Bucket, cfg.Export, logg, m))
		mgr.Register(assets.NewFeature(bundles, logg))

		// RayID first so every later log line carries it
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

		app.Use(auth.New(auth.Config{
			ApiKey: cfg.Server.ApiKey,
			Skip:   []string{"/swagger", "/metrics"},
		}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if cfg.Assets.Cache {
			go func() {
				if err := bundles.Watch(ctx); err != nil {
					logg.Warn("Bundle stats watcher stopped", zap.Error(err))
				}
			}()
		}

		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("environment", cfg.Server.Environment),
			)
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		cancel()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
