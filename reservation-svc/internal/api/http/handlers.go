package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"menuverse/reservation-svc/internal/domain"
	"menuverse/reservation-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Reservations service.ReservationServiceInterface
	Logger       *zap.Logger
}

func NewHandler(reservations service.ReservationServiceInterface, logger *zap.Logger) *Handler {
	return &Handler{Reservations: reservations, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/reservations/options", h.getOptions).Methods("GET")
	r.HandleFunc("/api/reservations/{id}", h.getReservation).Methods("GET")
	r.HandleFunc("/api/reservations/{id}/pay", h.payReservation).Methods("POST")
	r.HandleFunc("/api/reservations/{id}/cancel", h.cancelReservation).Methods("POST")

	r.HandleFunc("/api/restaurants/{restaurantId}/reservations", h.createReservation).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/reservations", h.listReservations).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var validation *domain.ValidationError
	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  err.Error(),
			"fields": validation.Fields,
		})
	case errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrRestaurantNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrCartNotFound),
		errors.Is(err, domain.ErrPreOrderMismatch):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrAlreadyPaid),
		errors.Is(err, domain.ErrReservationCancelled),
		errors.Is(err, domain.ErrPaymentInProgress):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, "payment interrupted", http.StatusRequestTimeout)
	default:
		h.Logger.Error("request failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "reservation-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Reservations.Options())
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var req domain.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	res, err := h.Reservations.Create(r.Context(), mux.Vars(r)["restaurantId"], req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) listReservations(w http.ResponseWriter, r *http.Request) {
	list, err := h.Reservations.ListByRestaurant(mux.Vars(r)["restaurantId"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) getReservation(w http.ResponseWriter, r *http.Request) {
	res, err := h.Reservations.Get(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) payReservation(w http.ResponseWriter, r *http.Request) {
	res, err := h.Reservations.Pay(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) cancelReservation(w http.ResponseWriter, r *http.Request) {
	res, err := h.Reservations.Cancel(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
