package api

import (
	"net/http"

	"concierge/internal/fulfillment/core"
	"concierge/internal/fulfillment/handlers"
	"concierge/internal/fulfillment/service"
	"concierge/pkg/client"
	"concierge/pkg/logger"
)

func SetupRouter(client *client.Client, calendar core.CalendarService, payment core.PaymentProcessor, log *logger.Logger) *http.ServeMux {
	fulfillmentService := service.NewFulfillmentService(client, calendar, payment, log)
	webhookHandler := handlers.NewWebhookHandler(fulfillmentService, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/fulfillment/webhook", webhookHandler.HandleWebhook)
	mux.HandleFunc("/api/v1/fulfillment/intents", webhookHandler.ListIntents)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	})
	return mux
}
