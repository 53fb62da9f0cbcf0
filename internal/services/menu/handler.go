package menu

import (
	"net/http"

	"restaurant-backend/internal/logger"
	"restaurant-backend/internal/web"
)

// Handler serves the customer-facing menu endpoint. Admin menu management
// lives under the admin handler.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new menu handler.
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// Register attaches the menu routes to the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/menu", web.WithLogging(h.logger, h.ListMenu))
}

// ListMenu handles GET /api/menu, returning the active menu items.
func (h *Handler) ListMenu(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	if r.Method != http.MethodGet {
		web.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", requestID)
		return
	}

	items, err := h.service.ListActive(r.Context())
	if err != nil {
		h.logger.Error("menu_list_failed", "Failed to list menu items", requestID, err, nil)
		web.WriteError(w, http.StatusInternalServerError, "Internal server error", requestID)
		return
	}

	web.WriteJSON(w, http.StatusOK, items)
}
