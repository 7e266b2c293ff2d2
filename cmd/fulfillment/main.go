package main

import (
	"net/http"
	"os"

	"concierge/internal/fulfillment/api"
	"concierge/internal/fulfillment/calendar"
	"concierge/internal/fulfillment/core"
	"concierge/internal/fulfillment/payment"
	"concierge/pkg/client"
	"concierge/pkg/config"
)

const ServiceName = "fulfillment"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Fulfillment service")

	apiClient := client.NewClient()
	apiClient.SetReservationClient(cfg.ReservationsBaseURL)

	var calendarService core.CalendarService
	if cfg.CalendarBaseURL != "" {
		calendarService = calendar.NewClient(cfg.CalendarBaseURL, cfg.CalendarID, cfg.Log)
		cfg.Log.Info("Calendar integration enabled", "calendar_id", cfg.CalendarID)
	} else {
		cfg.Log.Info("Calendar base URL not configured, calendar integration disabled")
	}

	router := api.SetupRouter(apiClient, calendarService, payment.NewMockProcessor(cfg.Log), cfg.Log)

	addr := ":" + cfg.Port
	cfg.Log.Info("Starting Fulfillment API server",
		"address", addr,
		"reservations_base_url", cfg.ReservationsBaseURL,
	)

	if err := http.ListenAndServe(addr, router); err != nil {
		cfg.Log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
