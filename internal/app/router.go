package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dairyledger/dairyledger/internal/catalog"
	"github.com/dairyledger/dairyledger/internal/ledger"
	"github.com/dairyledger/dairyledger/internal/observability"
	"github.com/dairyledger/dairyledger/internal/reporting"
	"github.com/dairyledger/dairyledger/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	Metrics          *observability.Metrics
	CatalogHandler   *catalog.Handler
	LedgerHandler    *ledger.Handler
	ReportingHandler *reporting.Handler
	JobsHandler      *jobs.Handler
}

// NewRouter constructs the chi.Router with DairyLedger defaults. Business
// routes live under /chotu-dairy, the prefix the shop frontend calls.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	if params.Metrics != nil {
		r.Use(params.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"service":"dairyledger"}`))
	})

	r.Route("/chotu-dairy", func(r chi.Router) {
		if params.CatalogHandler != nil {
			params.CatalogHandler.MountRoutes(r)
		}
		if params.LedgerHandler != nil {
			params.LedgerHandler.MountRoutes(r)
		}
		if params.ReportingHandler != nil {
			params.ReportingHandler.MountRoutes(r)
		}
	})

	if params.JobsHandler != nil {
		r.Route("/jobs", func(r chi.Router) {
			params.JobsHandler.MountRoutes(r)
		})
	}

	return r
}
