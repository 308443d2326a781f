package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/tazman887/rork-organizator-nunta/internal/admin"
	"github.com/tazman887/rork-organizator-nunta/internal/api"
	"github.com/tazman887/rork-organizator-nunta/internal/config"
	"github.com/tazman887/rork-organizator-nunta/internal/middleware"
	"github.com/tazman887/rork-organizator-nunta/internal/planner"
	"github.com/tazman887/rork-organizator-nunta/internal/seed"
	"github.com/tazman887/rork-organizator-nunta/internal/state"
	"github.com/tazman887/rork-organizator-nunta/internal/store"
)

func main() {
	cfg := config.Load()

	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	gin.SetMode(cfg.GinMode)

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		log.WithError(err).Fatal("failed to create db directory")
	}

	snapshots, err := store.NewSnapshotStore(cfg.DBPath)
	if err != nil {
		log.WithError(err).Fatal("failed to open snapshot store")
	}
	defer snapshots.Close()

	if err := seed.LoadFromFile(cfg.SeedFile, snapshots); err != nil {
		log.WithError(err).Fatal("failed to seed snapshot")
	}

	remote := store.NewRemoteStore(store.RemoteConfig{
		Endpoint:  cfg.KVEndpoint,
		Namespace: cfg.KVNamespace,
		Token:     cfg.KVToken,
		Key:       cfg.KVKey,
	})

	cache := state.NewCache()
	synchronizer := state.New(cache, remote, snapshots,
		state.WithDebounce(cfg.SyncDebounce),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	synchronizer.Load(ctx)
	go synchronizer.RunRefresh(ctx, cfg.RefreshInterval)

	plan := planner.New(synchronizer)

	swagger, err := api.GetSwagger()
	if err != nil {
		log.WithError(err).Fatal("failed to load embedded openapi spec")
	}

	validator, err := middleware.NewOpenAPIValidator(swagger)
	if err != nil {
		log.WithError(err).Fatal("failed to create openapi validator")
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.NewRateLimiter(ctx, rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst))
	r.Use(validator)
	api.RegisterHandlers(r, api.NewHandler(plan, synchronizer))

	srv := &http.Server{
		Handler: r,
		Addr:    net.JoinHostPort("0.0.0.0", cfg.Port),
	}

	adminRouter := gin.New()
	adminRouter.Use(gin.Recovery())
	admin.RegisterHandlers(adminRouter, admin.NewHandler(synchronizer))

	adminSrv := &http.Server{
		Handler: adminRouter,
		Addr:    net.JoinHostPort("0.0.0.0", cfg.AdminPort),
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server error")
		}
	}()

	go func() {
		log.WithField("addr", adminSrv.Addr).Info("starting admin server")
		if err := adminSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("admin server error")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down servers")

	if err := srv.Close(); err != nil {
		log.WithError(err).Error("server close error")
	}
	if err := adminSrv.Close(); err != nil {
		log.WithError(err).Error("admin server close error")
	}

	// The debounce window must not swallow the last edits on shutdown.
	flushCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	synchronizer.Flush(flushCtx)
}
