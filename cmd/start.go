package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"livecast/core/broadcast"
	"livecast/core/config"
	"livecast/core/database"
	"livecast/core/geo"
	"livecast/core/loader"
	"livecast/core/logger"
	"livecast/core/metrics"
	"livecast/core/middleware/rayid"
	"livecast/core/middleware/requestlog"
	"livecast/core/server"
	"livecast/core/storage"
	"livecast/feature/dashboard"
	"livecast/feature/files"
	"livecast/feature/live"
	"livecast/feature/templates"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "livecast/docs/swagger"
)

// @title Livecast API
// @version 1.0
// @description Live template broadcast server.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the livecast server",
	Long:  `Starts the HTTP server with the live page, the push channel and the dashboard.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Build the application
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		srv, err := newServer(cmd.Context(), cfg, logg, reg)
		if err != nil {
			logg.Fatal("Failed to build server", zap.Error(err))
		}

		// 4. Start Server
		go func() {
			logg.Info("Starting server", zap.String("addr", cfg.Server.Addr()), zap.Strings("features", srv.features))
			if err := srv.app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 5. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		srv.shutdown(time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second)
	},
}

// liveServer is the assembled application.
type liveServer struct {
	app      *fiber.App
	hub      *broadcast.Hub
	live     *live.Service
	features []string
}

// newServer wires storage, the optional visit history and every feature into a fiber app.
func newServer(ctx context.Context, cfg *config.Config, logg *zap.Logger, reg *prometheus.Registry) (*liveServer, error) {
	m := metrics.New(reg)
	hub := broadcast.NewHub(cfg.Broadcast, m, logg)

	resolver, err := geo.New(cfg.Geo)
	if err != nil {
		return nil, err
	}

	// Visit history is optional; a failing database only disables it
	var history *live.HistoryRepository
	if cfg.Database.Enabled() {
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			repo := live.NewHistoryRepository(db)
			if err := repo.Migrate(); err != nil {
				logg.Warn("Visit history disabled", zap.Error(err))
			} else {
				history = repo
				logg.Info("Visit history enabled", zap.String("driver", cfg.Database.Driver))
			}
		}
	}

	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize template storage: %w", err)
	}
	if disk, ok := store.(*storage.DiskStore); ok {
		logg.Info("Template storage on disk", zap.String("dir", disk.Dir()))
	} else {
		logg.Info("Template storage on object store", zap.String("bucket", cfg.Storage.Bucket))
	}

	app := server.New(cfg.Server, logg)

	// RayID must be first to trace everything
	app.Use(rayid.New())
	app.Use(requestlog.New(logg))

	app.Get("/swagger/*", swagger.HandlerDefault)
	metrics.RegisterRoutes(app, reg)

	liveFeature := live.NewFeature(live.Dependencies{
		Hub:      hub,
		Resolver: resolver,
		History:  history,
		Clock:    clockwork.NewRealClock(),
		Metrics:  m,
		Logger:   logg,
	}, cfg.Broadcast)

	mgr := loader.NewManager()
	mgr.Register(liveFeature)
	mgr.Register(templates.NewFeature(store, m, logg))
	mgr.Register(files.NewFeature(afero.NewOsFs(), logg))
	// The static mount must stay last
	mgr.Register(dashboard.NewFeature(cfg.Server.AssetsDir))

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}

	return &liveServer{
		app:      app,
		hub:      hub,
		live:     liveFeature.Service(),
		features: mgr.Loaded(),
	}, nil
}

// shutdown ends every push stream before draining HTTP connections.
func (s *liveServer) shutdown(timeout time.Duration) {
	s.hub.Close()
	if err := s.app.ShutdownWithTimeout(timeout); err != nil {
		zap.L().Warn("Shutdown did not complete", zap.Error(err))
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
