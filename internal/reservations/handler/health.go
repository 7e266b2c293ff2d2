package handler

import (
	"net/http"

	"concierge/internal/reservations/catalog"
	httputil "concierge/pkg/http"
	"concierge/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type HealthHandler struct {
	catalog *catalog.Catalog
	log     *logger.Logger
}

func NewHealthHandler(catalog *catalog.Catalog, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		catalog: catalog,
		log:     log,
	}
}

type healthResponse struct {
	Status    string   `json:"status"`
	RoomTypes []string `json:"room_types"`
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	resp := healthResponse{
		Status:    "healthy",
		RoomTypes: h.catalog.RoomTypes(),
	}
	if err := httputil.WriteJSON(w, http.StatusOK, resp); err != nil {
		h.log.Error("failed to write health response", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Health)
}
