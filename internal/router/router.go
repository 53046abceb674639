package router

import (
	"context"
	"net/http"
	"os"

	filesnap "tambo-herd/internal/adapters/snapshot/file"
	pgsnap "tambo-herd/internal/adapters/snapshot/postgres"
	"tambo-herd/internal/domain/breeding"
	"tambo-herd/internal/domain/events"
	"tambo-herd/internal/domain/herd"
	"tambo-herd/internal/domain/views"
	"tambo-herd/internal/middleware"
	"tambo-herd/internal/platform/logger"
	"tambo-herd/internal/ports/snapshot"
	"tambo-herd/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "tambo-herd/docs"
)

type Options struct {
	Logger logger.Logger

	// Opcional: persistencia explícita. Si no viene, se elige por env:
	// DB_DSN => Postgres, DATA_FILE => archivo JSON, nada => volátil.
	Snapshot snapshot.Store
}

// NewRouter arma el store (cargando el snapshot persistido) y monta toda la
// superficie HTTP del motor.
func NewRouter(opts Options) (http.Handler, error) {
	lg := opts.Logger
	if lg == nil {
		lg = logger.NewFromEnv()
	}

	snap := opts.Snapshot
	if snap == nil {
		snap = snapshotFromEnv(lg)
	}

	st := store.New(store.Options{Snapshot: snap, Logger: lg})
	if err := st.Load(context.Background()); err != nil {
		// No arrancamos con un store vacío sobre datos ilegibles:
		// el próximo guardado los pisaría.
		return nil, err
	}

	viewsSvc := views.NewService(st)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.EditLock(st.Locked, "/lock/toggle", "/admin/wipe"))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	herd.RegisterRoutes(r, st)
	events.RegisterRoutes(r, st)
	views.RegisterRoutes(r, viewsSvc)
	breeding.RegisterRoutes(r)

	registerAdminRoutes(r, st)

	return r, nil
}

func snapshotFromEnv(lg logger.Logger) snapshot.Store {
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		db, err := pgsnap.Open(dsn)
		if err != nil {
			lg.Error("no se pudo abrir Postgres, sigo sin persistencia", map[string]any{"err": err.Error()})
			return nil
		}
		pg := pgsnap.NewStore(db)
		if err := pg.EnsureSchema(context.Background()); err != nil {
			lg.Error("no se pudo crear el esquema, sigo sin persistencia", map[string]any{"err": err.Error()})
			return nil
		}
		return pg
	}

	if path := os.Getenv("DATA_FILE"); path != "" {
		return filesnap.New(path)
	}

	lg.Warn("sin DB_DSN ni DATA_FILE: los datos viven solo en memoria", nil)
	return nil
}
