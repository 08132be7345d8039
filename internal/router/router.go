package router

import (
	"errors"
	"net/http"
	"time"

	"pawcare/internal/adapters/remote"
	"pawcare/internal/adapters/storage"
	"pawcare/internal/adapters/storage/local"
	"pawcare/internal/config"
	"pawcare/internal/domain/activity"
	"pawcare/internal/domain/appointments"
	"pawcare/internal/domain/owners"
	"pawcare/internal/domain/pets"
	"pawcare/internal/domain/prescriptions"
	"pawcare/internal/domain/reports"
	"pawcare/internal/domain/users"
	"pawcare/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	Cfg config.Config

	// Modo local: el store lo abre y cierra el caller; acá solo se usa.
	Store storage.Store

	Log logger.Logger

	// Reloj inyectable (tests); nil => time.Now.
	Now func() time.Time
}

// NewRouter arma el árbol completo de repos, services y rutas según el modo
// configurado. El modo se decide una sola vez acá; nada aguas abajo vuelve a
// mirar la config.
func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(requestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		petsRepo  pets.Repository
		ownerRepo owners.Repository
		apptsRepo appointments.Repository
		rxRepo    prescriptions.Repository
		usersRepo users.Repository
		actLog    activity.Log
		summarize reports.Summarizer
	)

	switch opts.Cfg.Mode {
	case config.ModeRemote:
		client, err := remote.NewClient(remote.Config{
			BaseURL: opts.Cfg.APIBaseURL,
			Token:   opts.Cfg.APIToken,
		})
		if err != nil {
			return nil, err
		}
		petsRepo = remote.NewPetsRepo(client)
		ownerRepo = remote.NewOwnersRepo(client)
		apptsRepo = remote.NewAppointmentsRepo(client)
		rxRepo = remote.NewPrescriptionsRepo(client)
		usersRepo = remote.NewUsersRepo(client)
		actLog = remote.NewActivityLog(client)
		summarize = remote.NewReports(client)

	default:
		if opts.Store == nil {
			return nil, errors.New("router: local mode requires a store")
		}
		actLog = local.NewActivityLog(opts.Store)

		lp := local.NewPetsRepo(opts.Store, actLog, opts.Cfg.UploadDir)
		la := local.NewAppointmentsRepo(opts.Store, actLog)
		lr := local.NewPrescriptionsRepo(opts.Store, actLog)
		if opts.Now != nil {
			lp.WithNow(opts.Now)
			la.WithNow(opts.Now)
			lr.WithNow(opts.Now)
		}

		petsRepo = lp
		ownerRepo = local.NewOwnersRepo(opts.Store, actLog)
		apptsRepo = la
		rxRepo = lr
		usersRepo = local.NewUsersRepo(opts.Store, actLog)

		engine := reports.NewEngine(petsRepo, ownerRepo, apptsRepo, rxRepo, actLog)
		if opts.Now != nil {
			engine.WithNow(opts.Now)
		}
		summarize = engine

		// Las fotos subidas se sirven estáticas solo en modo local; en remoto
		// las sirve el backend.
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(opts.Cfg.UploadDir)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	// Services por módulo
	petsSvc := pets.NewService(petsRepo)
	ownersSvc := owners.NewService(ownerRepo)
	apptsSvc := appointments.NewService(apptsRepo)
	rxSvc := prescriptions.NewService(rxRepo)
	usersSvc := users.NewService(usersRepo)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	owners.RegisterRoutes(r, ownersSvc)
	appointments.RegisterRoutes(r, apptsSvc)
	prescriptions.RegisterRoutes(r, rxSvc)
	users.RegisterRoutes(r, usersSvc)
	activity.RegisterRoutes(r, actLog)
	reports.RegisterRoutes(r, summarize)

	return r, nil
}

func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, req.ProtoMajor)
			next.ServeHTTP(ww, req)
			log.Info("http request", map[string]any{
				"method":    req.Method,
				"path":      req.URL.Path,
				"status":    ww.Status(),
				"elapsedMs": time.Since(start).Milliseconds(),
			})
		})
	}
}
