package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"menuverse/analytics-svc/internal/domain"
	"menuverse/analytics-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Analytics service.AnalyticsInterface
	Logger    *zap.Logger
}

func NewHandler(svc service.AnalyticsInterface, logger *zap.Logger) *Handler {
	return &Handler{Analytics: svc, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/analytics/top-today", h.getTopToday).Methods("GET")
	r.HandleFunc("/api/analytics/top-alltime", h.getTopAllTime).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/analytics", h.getOverview).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/analytics/top-items", h.getTopItems).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/analytics/notifications", h.getNotifications).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidPeriod) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.Logger.Error("analytics request failed", zap.Error(err))
	http.Error(w, "analytics unavailable", http.StatusInternalServerError)
}

func limitParam(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 10, true
	}
	limit, err := strconv.Atoi(raw)
	return limit, err == nil && limit > 0
}

// Leaderboards fall back to an empty list so the dashboard still renders.
func (h *Handler) getTopToday(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.TopToday(r.Context())
	if err != nil {
		h.Logger.Warn("top today unavailable", zap.Error(err))
		data = []domain.ItemScore{}
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *Handler) getTopAllTime(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.TopAllTime(r.Context())
	if err != nil {
		h.Logger.Warn("top all time unavailable", zap.Error(err))
		data = []domain.ItemScore{}
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *Handler) getOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.Analytics.Overview(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

func (h *Handler) getTopItems(w http.ResponseWriter, r *http.Request) {
	limit, ok := limitParam(r)
	if !ok {
		http.Error(w, "invalid limit", http.StatusBadRequest)
		return
	}
	period := r.URL.Query().Get("period")
	if period == "" {
		period = domain.PeriodAll
	}
	items, err := h.Analytics.TopItems(r.Context(), mux.Vars(r)["restaurantId"], period, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getNotifications(w http.ResponseWriter, r *http.Request) {
	limit, ok := limitParam(r)
	if !ok {
		http.Error(w, "invalid limit", http.StatusBadRequest)
		return
	}
	notifications, err := h.Analytics.Notifications(r.Context(), mux.Vars(r)["restaurantId"], limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}
