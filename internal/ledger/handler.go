package ledger

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/dairyledger/dairyledger/internal/catalog"
	"github.com/dairyledger/dairyledger/internal/civil"
	"github.com/dairyledger/dairyledger/internal/platform/httpx"
)

// Handler exposes the sales ledger endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
	}
}

// MountRoutes registers ledger routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/sales", h.listByDate)
	r.Post("/sales", h.recordSale)
	r.Get("/sales/by-date-range", h.listByRange)
	r.Get("/sales/by-year", h.listByYear)
}

func (h *Handler) recordSale(w http.ResponseWriter, r *http.Request) {
	var req RecordSaleRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	sale, err := h.service.Record(r.Context(), req)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", "product does not exist")
			return
		}
		h.logger.Error("record sale", slog.String("product_id", req.ProductID.String()), slog.Any("error", err))
		httpx.StoreUnavailable(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, sale)
}

func (h *Handler) listByDate(w http.ResponseWriter, r *http.Request) {
	date := civil.Today(nil)
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := civil.Parse(raw)
		if err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Invalid Date", "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	sales, err := h.service.ListByDate(r.Context(), date)
	if err != nil {
		h.logger.Error("list sales by date", slog.String("date", date.String()), slog.Any("error", err))
		httpx.StoreUnavailable(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sales)
}

func (h *Handler) listByRange(w http.ResponseWriter, r *http.Request) {
	start, err := civil.Parse(r.URL.Query().Get("start_date"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Date", "start_date must be YYYY-MM-DD")
		return
	}
	end, err := civil.Parse(r.URL.Query().Get("end_date"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Date", "end_date must be YYYY-MM-DD")
		return
	}

	sales, err := h.service.ListByRange(r.Context(), start, end)
	if err != nil {
		if errors.Is(err, ErrInvalidRange) {
			httpx.Problem(w, http.StatusBadRequest, "Invalid Range", "start_date must not be after end_date")
			return
		}
		h.logger.Error("list sales by range", slog.Any("error", err))
		httpx.StoreUnavailable(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sales)
}

func (h *Handler) listByYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Year", "year must be a positive number")
		return
	}

	sales, err := h.service.ListByYear(r.Context(), year)
	if err != nil {
		h.logger.Error("list sales by year", slog.Int("year", year), slog.Any("error", err))
		httpx.StoreUnavailable(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sales)
}
