package handlers

import (
	"encoding/json"
	"net/http"

	"concierge/internal/fulfillment/service"
	"concierge/pkg/logger"
)

type WebhookHandler struct {
	service *service.FulfillmentService
	log     *logger.Logger
}

func NewWebhookHandler(service *service.FulfillmentService, log *logger.Logger) *WebhookHandler {
	return &WebhookHandler{
		service: service,
		log:     log,
	}
}

// WebhookRequest is the assistant webhook payload. Only the intent name
// and parameters are consumed.
type WebhookRequest struct {
	QueryResult struct {
		Intent struct {
			DisplayName string `json:"displayName"`
		} `json:"intent"`
		Parameters map[string]any `json:"parameters"`
	} `json:"queryResult"`
}

type WebhookResponse struct {
	FulfillmentText string `json:"fulfillmentText"`
}

type IntentsResponse struct {
	Intents []string `json:"intents"`
}

func (h *WebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req WebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode webhook request", "error", err)
		h.writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	intent := req.QueryResult.Intent.DisplayName
	params := req.QueryResult.Parameters
	if params == nil {
		params = make(map[string]any)
	}

	reply, err := h.service.ExecuteIntent(r.Context(), intent, params)
	if err != nil {
		h.log.Error("intent execution failed", "intent", intent, "error", err)
		h.writeError(w, http.StatusInternalServerError, "fulfillment failed")
		return
	}

	h.writeJSON(w, http.StatusOK, WebhookResponse{FulfillmentText: reply})
}

func (h *WebhookHandler) ListIntents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	h.writeJSON(w, http.StatusOK, IntentsResponse{Intents: h.service.AvailableIntents()})
}

func (h *WebhookHandler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error("failed to encode response", "error", err)
	}
}

func (h *WebhookHandler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
