package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/routewise/backend/internal/config"
	"github.com/routewise/backend/internal/logging"
	"github.com/routewise/backend/internal/repository/memory"
	"github.com/routewise/backend/internal/repository/ports"
	"github.com/routewise/backend/internal/repository/postgres"
	"github.com/routewise/backend/internal/service"
	transport "github.com/routewise/backend/internal/transport/http"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		writer, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr)
		if err != nil {
			log.Fatalf("logstash writer: %v", err)
		}
		defer writer.Close()
		log.SetOutput(io.MultiWriter(os.Stdout, writer))
	}

	users, routes, progress, saved, err := buildRepositories(cfg)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	userService := service.NewUserService(users)
	routeService := service.NewRouteService(routes)
	progressService := service.NewProgressService(progress)
	savedService := service.NewSavedRouteService(saved)

	e := transport.NewRouter(cfg.AllowOrigins)
	transport.RegisterPages(e)
	transport.RegisterSwagger(e)
	transport.RegisterRoutes(e, routeService)
	transport.RegisterUsers(e, userService)
	transport.RegisterProgress(e, progressService)
	transport.RegisterSavedRoutes(e, savedService)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Printf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func buildRepositories(cfg config.Config) (ports.UserRepository, ports.RouteRepository, ports.ProgressRepository, ports.SavedRouteRepository, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		db, err := postgres.New(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		if err := postgres.Migrate(db, cfg.MigrationsDir); err != nil {
			return nil, nil, nil, nil, err
		}
		log.Printf("storage: postgres")
		return postgres.NewUserRepo(db), postgres.NewRouteRepo(db),
			postgres.NewProgressRepo(db), postgres.NewSavedRouteRepo(db), nil
	default:
		store := memory.NewStore()
		if cfg.SeedDemoData {
			store.SeedDemoData()
			log.Printf("storage: memory (demo data seeded, user %s)", memory.DemoUserID)
		} else {
			log.Printf("storage: memory")
		}
		return store.Users(), store.Routes(), store.Progress(), store.SavedRoutes(), nil
	}
}
