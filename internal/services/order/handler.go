package order

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"restaurant-backend/internal/logger"
	"restaurant-backend/internal/models"
	"restaurant-backend/internal/web"
)

// Pinger reports storage health for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler handles the customer-facing order endpoints.
type Handler struct {
	service *Service
	db      Pinger
	logger  *logger.Logger
}

// NewHandler creates a new order handler.
func NewHandler(service *Service, db Pinger, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		db:      db,
		logger:  log,
	}
}

// Register attaches the order routes to the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/orders", web.WithLogging(h.logger, h.CreateOrder))
	mux.HandleFunc("/api/orders/", web.WithLogging(h.logger, h.GetOrder))
	mux.HandleFunc("/health", web.WithLogging(h.logger, h.HealthCheck))
}

// CreateOrder handles POST /api/orders.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	if r.Method != http.MethodPost {
		web.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", requestID)
		return
	}
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		web.WriteError(w, http.StatusBadRequest, "Content-Type must be application/json", requestID)
		return
	}

	var req models.CreateOrderRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		h.logger.Error("validation_failed", "Failed to parse request body", requestID, err, nil)
		web.WriteError(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Error("validation_failed", "Request validation failed", requestID, err, nil)
		web.WriteError(w, http.StatusBadRequest, err.Error(), requestID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	order, err := h.service.Submit(ctx, &req)
	if err != nil {
		h.writeServiceError(w, err, requestID)
		return
	}

	h.logger.Info("order_created", "Order created successfully", requestID, map[string]interface{}{
		"order_id":     order.ID,
		"table_number": order.TableNumber,
		"total_amount": order.TotalAmount.String(),
	})

	web.WriteJSON(w, http.StatusCreated, order)
}

// GetOrder handles GET /api/orders/{id}.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	if r.Method != http.MethodGet {
		web.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", requestID)
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/orders/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id < 1 {
		web.WriteError(w, http.StatusBadRequest, "Invalid order id", requestID)
		return
	}

	order, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err, requestID)
		return
	}

	web.WriteJSON(w, http.StatusOK, order)
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		web.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "order-service",
	}

	if err := h.db.Ping(ctx); err != nil {
		response["status"] = "unhealthy"
		web.WriteJSON(w, http.StatusServiceUnavailable, response)
		return
	}

	web.WriteJSON(w, http.StatusOK, response)
}

// writeServiceError maps service error kinds to HTTP responses.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error, requestID string) {
	var (
		invalidReq  *InvalidRequestError
		unavailable *ItemUnavailableError
		notFound    *NotFoundError
	)

	switch {
	case errors.As(err, &invalidReq):
		web.WriteError(w, http.StatusBadRequest, invalidReq.Message, requestID)
	case errors.As(err, &unavailable):
		web.WriteError(w, http.StatusConflict, unavailable.Error(), requestID)
	case errors.As(err, &notFound):
		web.WriteError(w, http.StatusNotFound, notFound.Error(), requestID)
	default:
		h.logger.Error("order_request_failed", "Unexpected error handling order request", requestID, err, nil)
		web.WriteError(w, http.StatusInternalServerError, "Internal server error", requestID)
	}
}
