// Command server runs the filings gateway: the allowable-action resolver,
// draft filing-data endpoints, and the entity configuration resource behind
// one HTTP listener.
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"filings-gateway/internal/allowable"
	allowablehandler "filings-gateway/internal/allowable/handler"
	allowablemetrics "filings-gateway/internal/allowable/metrics"
	entityhandler "filings-gateway/internal/entity/handler"
	entitystore "filings-gateway/internal/entity/store"
	configHandler "filings-gateway/internal/entityconfig/handler"
	filinghandler "filings-gateway/internal/filing/handler"
	filingservice "filings-gateway/internal/filing/service"
	filingstore "filings-gateway/internal/filing/store"
	"filings-gateway/internal/flags"
	httpapi "filings-gateway/internal/http"
	"filings-gateway/internal/jwttoken"
	"filings-gateway/internal/platform/config"
	"filings-gateway/internal/platform/httpserver"
	"filings-gateway/internal/platform/logger"
	"filings-gateway/internal/platform/postgres"
	platformredis "filings-gateway/internal/platform/redis"
	"filings-gateway/pkg/platform/audit"
	auditkafka "filings-gateway/pkg/platform/audit/kafka"
	auditpg "filings-gateway/pkg/platform/audit/postgres"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx := context.Background()

	// Stores: postgres when a DSN is configured, in-memory otherwise.
	var (
		db         *sql.DB
		businesses entitystore.Store
		drafts     filingstore.Store
	)
	if cfg.Postgres.DSN != "" {
		var err error
		db, err = postgres.Open(cfg.Postgres)
		if err != nil {
			log.Error("postgres connection failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		businesses = entitystore.NewPostgres(db)
		drafts = filingstore.NewPostgres(db)
		log.Info("stores backed by postgres")
	} else {
		businesses = entitystore.NewMemory()
		drafts = filingstore.NewMemory()
		log.Info("stores backed by memory, snapshots will not survive restarts")
	}

	// Optional redis, used as a flag source.
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// One-shot flag initialization; on any failure the compiled-in defaults
	// stand for the life of the process.
	gate := flags.NewGate(flags.WithLogger(log))
	initCtx, cancelInit := context.WithTimeout(ctx, cfg.Flags.InitTimeout)
	gate.Init(initCtx, flagProvider(cfg.Flags, redisClient))
	cancelInit()
	log.Info("feature flags initialized", "remote", gate.RemoteLoaded())

	// Audit sink: kafka when brokers are configured, otherwise the postgres
	// archive, otherwise memory.
	var (
		publisher audit.Publisher
		archive   httpapi.AuditArchive
	)
	switch {
	case len(cfg.Kafka.Brokers) > 0:
		kafkaPublisher, err := auditkafka.New(cfg.Kafka.Brokers, auditkafka.WithLogger(log))
		if err != nil {
			log.Error("kafka publisher init failed", "error", err)
			os.Exit(1)
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = kafkaPublisher.Close(closeCtx)
		}()
		publisher = kafkaPublisher
		log.Info("audit events published to kafka", "brokers", cfg.Kafka.Brokers)
	case cfg.Postgres.DSN != "":
		store, pool, err := auditpg.Open(ctx, cfg.Postgres.DSN)
		if err != nil {
			log.Error("audit store init failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		publisher = store
		archive = store
		log.Info("audit events archived in postgres")
	default:
		publisher = audit.NewMemoryPublisher()
		log.Warn("audit events held in memory only")
	}

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)

	resolver, err := allowable.NewService(businesses, drafts, gate,
		allowable.WithLogger(log),
		allowable.WithMetrics(allowablemetrics.New()),
		allowable.WithAudit(publisher),
	)
	if err != nil {
		log.Error("resolver init failed", "error", err)
		os.Exit(1)
	}
	filingSvc, err := filingservice.NewService(businesses, drafts,
		filingservice.WithLogger(log),
		filingservice.WithAudit(publisher),
	)
	if err != nil {
		log.Error("filing service init failed", "error", err)
		os.Exit(1)
	}

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:         log,
		TokenValidator: jwttoken.NewValidator(jwtService),
		AdminKeyHash:   cfg.AdminKeyHash,
		Public: []httpapi.Registrar{
			allowablehandler.New(resolver, log),
			filinghandler.New(filingSvc, log),
			configHandler.New(log),
		},
		AdminRoutes: []httpapi.Registrar{
			entityhandler.New(businesses, publisher, log),
		},
		Archive: archive,
		Ready: func(ctx context.Context) error {
			if db != nil {
				if err := db.PingContext(ctx); err != nil {
					return err
				}
			}
			if redisClient != nil {
				return redisClient.Health(ctx)
			}
			return nil
		},
	})

	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info("filings gateway listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// flagProvider selects the configured flag source. nil freezes the defaults.
func flagProvider(cfg config.Flags, redisClient *platformredis.Client) flags.Provider {
	switch cfg.Source {
	case "http":
		if cfg.URL == "" {
			return nil
		}
		return flags.NewHTTPProvider(cfg.URL, cfg.InitTimeout)
	case "redis":
		if redisClient == nil {
			return nil
		}
		return flags.NewRedisProvider(redisClient, cfg.Key)
	default:
		return nil
	}
}
