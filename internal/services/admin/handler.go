package admin

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"restaurant-backend/internal/logger"
	"restaurant-backend/internal/models"
	"restaurant-backend/internal/services/menu"
	"restaurant-backend/internal/services/order"
	"restaurant-backend/internal/web"
)

// Handler serves the admin endpoints: login, menu management, and order
// tracking/status updates.
type Handler struct {
	admins *Service
	menu   *menu.Service
	orders *order.Service
	logger *logger.Logger
}

// NewHandler creates a new admin handler.
func NewHandler(admins *Service, menuSvc *menu.Service, orders *order.Service, log *logger.Logger) *Handler {
	return &Handler{
		admins: admins,
		menu:   menuSvc,
		orders: orders,
		logger: log,
	}
}

// Register attaches the admin routes to the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/admin/auth/login", web.WithLogging(h.logger, h.Login))
	mux.HandleFunc("/api/admin/menu", web.WithLogging(h.logger, h.requireAuth(h.handleMenu)))
	mux.HandleFunc("/api/admin/menu/", web.WithLogging(h.logger, h.requireAuth(h.handleMenuItem)))
	mux.HandleFunc("/api/admin/orders", web.WithLogging(h.logger, h.requireAuth(h.handleOrders)))
	mux.HandleFunc("/api/admin/orders/", web.WithLogging(h.logger, h.requireAuth(h.handleOrder)))
}

// requireAuth checks the bearer token on admin endpoints.
func (h *Handler) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" || !h.admins.Verify(token) {
			web.WriteError(w, http.StatusUnauthorized, "Unauthorized", logger.GenerateRequestID())
			return
		}
		next(w, r)
	}
}

// Login handles POST /api/admin/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	if r.Method != http.MethodPost {
		web.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", requestID)
		return
	}

	var req models.AdminLoginRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		web.WriteError(w, http.StatusBadRequest, "Invalid JSON format", requestID)
		return
	}

	resp, err := h.admins.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			web.WriteError(w, http.StatusUnauthorized, "Invalid credentials", requestID)
			return
		}
		h.logger.Error("admin_login_failed", "Login failed", requestID, err, nil)
		web.WriteError(w, http.StatusInternalServerError, "Internal server error", requestID)
		return
	}

	web.WriteJSON(w, http.StatusOK, resp)
}

// handleMenu handles GET (list all) and POST (create) on /api/admin/menu.
func (h *Handler) handleMenu(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	switch r.Method {
	case http.MethodGet:
		items, err := h.menu.ListAll(r.Context())
		if err != nil {
			h.writeServiceError(w, err, requestID)
			return
		}
		web.WriteJSON(w, http.StatusOK, items)
	case http.MethodPost:
		var req models.MenuItemRequest
		if err := web.DecodeJSON(r, &req); err != nil {
			web.WriteError(w, http.StatusBadRequest, "Invalid JSON format", requestID)
			return
		}
		if err := req.ValidateCreate(); err != nil {
			web.WriteError(w, http.StatusBadRequest, err.Error(), requestID)
			return
		}
		item, err := h.menu.Create(r.Context(), &req)
		if err != nil {
			h.writeServiceError(w, err, requestID)
			return
		}
		web.WriteJSON(w, http.StatusCreated, item)
	default:
		web.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", requestID)
	}
}

// handleMenuItem handles /api/admin/menu/{id} and /api/admin/menu/{id}/toggle.
func (h *Handler) handleMenuItem(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	rest := strings.TrimPrefix(r.URL.Path, "/api/admin/menu/")
	toggle := false
	if idStr, found := strings.CutSuffix(rest, "/toggle"); found {
		rest = idStr
		toggle = true
	}

	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || id < 1 {
		web.WriteError(w, http.StatusBadRequest, "Invalid menu item id", requestID)
		return
	}

	if toggle {
		if r.Method != http.MethodPatch {
			web.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", requestID)
			return
		}
		item, err := h.menu.Toggle(r.Context(), id)
		if err != nil {
			h.writeServiceError(w, err, requestID)
			return
		}
		web.WriteJSON(w, http.StatusOK, item)
		return
	}

	switch r.Method {
	case http.MethodGet:
		item, err := h.menu.GetByID(r.Context(), id)
		if err != nil {
			h.writeServiceError(w, err, requestID)
			return
		}
		web.WriteJSON(w, http.StatusOK, item)
	case http.MethodPut:
		var req models.MenuItemRequest
		if err := web.DecodeJSON(r, &req); err != nil {
			web.WriteError(w, http.StatusBadRequest, "Invalid JSON format", requestID)
			return
		}
		if err := req.ValidateUpdate(); err != nil {
			web.WriteError(w, http.StatusBadRequest, err.Error(), requestID)
			return
		}
		item, err := h.menu.Update(r.Context(), id, &req)
		if err != nil {
			h.writeServiceError(w, err, requestID)
			return
		}
		web.WriteJSON(w, http.StatusOK, item)
	case http.MethodDelete:
		if err := h.menu.Delete(r.Context(), id); err != nil {
			h.writeServiceError(w, err, requestID)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		web.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", requestID)
	}
}

// handleOrders handles GET /api/admin/orders.
func (h *Handler) handleOrders(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	if r.Method != http.MethodGet {
		web.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", requestID)
		return
	}

	orders, err := h.orders.List(r.Context())
	if err != nil {
		h.writeServiceError(w, err, requestID)
		return
	}
	web.WriteJSON(w, http.StatusOK, orders)
}

// handleOrder handles /api/admin/orders/{id} and /api/admin/orders/{id}/status.
func (h *Handler) handleOrder(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	rest := strings.TrimPrefix(r.URL.Path, "/api/admin/orders/")
	status := false
	if idStr, found := strings.CutSuffix(rest, "/status"); found {
		rest = idStr
		status = true
	}

	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || id < 1 {
		web.WriteError(w, http.StatusBadRequest, "Invalid order id", requestID)
		return
	}

	if status {
		if r.Method != http.MethodPatch {
			web.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", requestID)
			return
		}

		var req models.UpdateStatusRequest
		if err := web.DecodeJSON(r, &req); err != nil {
			web.WriteError(w, http.StatusBadRequest, "Invalid JSON format", requestID)
			return
		}
		if err := req.Validate(); err != nil {
			web.WriteError(w, http.StatusBadRequest, err.Error(), requestID)
			return
		}

		updated, err := h.orders.SetStatus(r.Context(), id, req.Status)
		if err != nil {
			h.writeServiceError(w, err, requestID)
			return
		}

		h.logger.Info("order_status_updated", "Order status updated", requestID, map[string]interface{}{
			"order_id": id,
			"status":   req.Status,
		})

		web.WriteJSON(w, http.StatusOK, updated)
		return
	}

	if r.Method != http.MethodGet {
		web.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", requestID)
		return
	}

	ord, err := h.orders.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err, requestID)
		return
	}
	web.WriteJSON(w, http.StatusOK, ord)
}

// writeServiceError maps service error kinds to HTTP responses.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error, requestID string) {
	var (
		menuNotFound  *menu.NotFoundError
		orderNotFound *order.NotFoundError
	)

	switch {
	case errors.As(err, &menuNotFound):
		web.WriteError(w, http.StatusNotFound, menuNotFound.Error(), requestID)
	case errors.As(err, &orderNotFound):
		web.WriteError(w, http.StatusNotFound, orderNotFound.Error(), requestID)
	default:
		h.logger.Error("admin_request_failed", "Unexpected error handling admin request", requestID, err, nil)
		web.WriteError(w, http.StatusInternalServerError, "Internal server error", requestID)
	}
}
