package router

import (
	"context"
	"database/sql"
	"net/http"

	mem "horse-registry/internal/adapters/storage/memory"
	pg "horse-registry/internal/adapters/storage/postgres"
	sq "horse-registry/internal/adapters/storage/sqlite"
	"horse-registry/internal/domain/horses"
	"horse-registry/internal/domain/owners"
	"horse-registry/internal/middleware"
	"horse-registry/internal/platform/config"
	"horse-registry/internal/platform/logger"
	"horse-registry/internal/platform/metrics"

	_ "horse-registry/docs" // registro del doc swagger generado

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Config config.Config
	Log    logger.Logger

	// Opcional: pool Postgres ya abierto (tests). Si viene, manda sobre Storage.
	DB *sql.DB
}

// New arma el árbol completo: storage según driver, services, middleware y rutas.
func New(opts Options) (http.Handler, error) {
	log := opts.Log
	if log == nil {
		log = logger.Nop{}
	}

	horseRepo, ownerRepo, err := buildRepos(opts)
	if err != nil {
		return nil, err
	}

	ownersSvc := owners.NewService(ownerRepo)
	horsesSvc := horses.NewService(horseRepo, ownersSvc)

	m := metrics.New()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics(m))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	horses.RegisterRoutes(r, horsesSvc, log)
	owners.RegisterRoutes(r, ownersSvc, log)

	return r, nil
}

func buildRepos(opts Options) (horses.Repository, owners.Repository, error) {
	ctx := context.Background()
	cfg := opts.Config

	if opts.DB != nil {
		return pg.NewHorsesRepo(opts.DB), pg.NewOwnersRepo(opts.DB), nil
	}

	switch cfg.Storage.Driver {
	case "memory":
		or := mem.NewOwnersRepo()
		hr := mem.NewHorsesRepo(or)
		if cfg.Seed {
			mem.SeedFixtures(hr, or)
		}
		return hr, or, nil

	case "postgres":
		db, err := pg.Open(cfg.Storage.DSN)
		if err != nil {
			return nil, nil, err
		}
		if err := pg.Migrate(ctx, db); err != nil {
			return nil, nil, err
		}
		return pg.NewHorsesRepo(db), pg.NewOwnersRepo(db), nil

	default: // sqlite
		db, err := sq.Open(cfg.Storage.DSN)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Seed {
			if err := sq.Seed(ctx, db); err != nil {
				return nil, nil, err
			}
		}
		return sq.NewHorsesRepo(db), sq.NewOwnersRepo(db), nil
	}
}
