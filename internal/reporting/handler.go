package reporting

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/dairyledger/dairyledger/internal/civil"
	"github.com/dairyledger/dairyledger/internal/platform/httpx"
)

// Handler exposes the report endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers report routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/sales/summary", h.summary)
	r.Get("/sales/dashboard", h.dashboard)
	r.Get("/sales/top-products", h.topProducts)
	r.Get("/sales/graph/weekly", h.weeklyGraph)
	r.Get("/sales/graph/monthly", h.monthlyGraph)
	r.Get("/sales/graph/yearly", h.yearlyGraph)
}

// Graph series cross the wire with per-granularity axis keys.
type weekdayPoint struct {
	Day   string  `json:"day"`
	Total float64 `json:"total"`
}

type dayOfMonthPoint struct {
	Day   int     `json:"day"`
	Total float64 `json:"total"`
}

type monthPoint struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Summary(r.Context())
	if err != nil {
		h.logger.Error("sales summary", slog.Any("error", err))
		httpx.StoreUnavailable(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

// dashboard serves the overview screen in one round trip: the summary card
// figures and the top sellers, fetched concurrently.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	var (
		summary SummaryView
		top     []ProductRank
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		view, err := h.service.Summary(ctx)
		if err != nil {
			return err
		}
		summary = view
		return nil
	})
	g.Go(func() error {
		ranking, err := h.service.TopProducts(ctx, DefaultTopN)
		if err != nil {
			return err
		}
		top = ranking
		return nil
	})
	if err := g.Wait(); err != nil {
		h.logger.Error("sales dashboard", slog.Any("error", err))
		httpx.StoreUnavailable(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"summary":      summary,
		"top_products": top,
	})
}

func (h *Handler) topProducts(w http.ResponseWriter, r *http.Request) {
	n := DefaultTopN
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			httpx.Problem(w, http.StatusBadRequest, "Invalid Limit", "limit must be a positive number")
			return
		}
		n = parsed
	}

	ranking, err := h.service.TopProducts(r.Context(), n)
	if err != nil {
		h.logger.Error("top products", slog.Any("error", err))
		httpx.StoreUnavailable(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ranking)
}

func (h *Handler) weeklyGraph(w http.ResponseWriter, r *http.Request) {
	anchor, err := civil.Parse(r.URL.Query().Get("start_date"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Date", "start_date must be YYYY-MM-DD")
		return
	}
	if raw := r.URL.Query().Get("end_date"); raw != "" {
		end, err := civil.Parse(raw)
		if err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Invalid Date", "end_date must be YYYY-MM-DD")
			return
		}
		if anchor.After(end) {
			httpx.Problem(w, http.StatusBadRequest, "Invalid Range", "start_date must not be after end_date")
			return
		}
	}

	view, err := h.service.WeeklyGraph(r.Context(), anchor)
	if err != nil {
		h.respondGraphError(w, "weekly graph", err)
		return
	}
	points := make([]weekdayPoint, 0, len(view.Points))
	for _, p := range view.Points {
		points = append(points, weekdayPoint{Day: p.Label, Total: p.Total})
	}
	httpx.JSON(w, http.StatusOK, points)
}

func (h *Handler) monthlyGraph(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Year", "year must be a positive number")
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Month", "month must be between 1 and 12")
		return
	}

	view, err := h.service.MonthlyGraph(r.Context(), year, time.Month(month))
	if err != nil {
		h.respondGraphError(w, "monthly graph", err)
		return
	}
	points := make([]dayOfMonthPoint, 0, len(view.Points))
	for i, p := range view.Points {
		points = append(points, dayOfMonthPoint{Day: i + 1, Total: p.Total})
	}
	httpx.JSON(w, http.StatusOK, points)
}

func (h *Handler) yearlyGraph(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Year", "year must be a positive number")
		return
	}

	view, err := h.service.YearlyGraph(r.Context(), year)
	if err != nil {
		h.respondGraphError(w, "yearly graph", err)
		return
	}
	points := make([]monthPoint, 0, len(view.Points))
	for _, p := range view.Points {
		points = append(points, monthPoint{Month: p.Label, Total: p.Total})
	}
	httpx.JSON(w, http.StatusOK, points)
}

func (h *Handler) respondGraphError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, ErrInvalidRange) || errors.Is(err, ErrOutOfWindow) {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Range", err.Error())
		return
	}
	h.logger.Error(op, slog.Any("error", err))
	httpx.StoreUnavailable(w, err)
}
