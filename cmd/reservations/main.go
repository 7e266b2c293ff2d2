package main

import (
	"concierge/internal/reservations/catalog"
	"concierge/internal/reservations/engine"
	"concierge/internal/reservations/events"
	"concierge/internal/reservations/handler"
	"concierge/internal/reservations/ledger"
	"concierge/internal/reservations/validator"
	"concierge/pkg/app"
	"concierge/pkg/config"
	"concierge/pkg/kafka"
	kafka_config "concierge/pkg/kafka/config"
)

const ServiceName = "reservations"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Reservations service")

	roomCatalog, err := catalog.New(cfg.RoomInventory)
	if err != nil {
		cfg.Log.Fatal("Invalid room catalog", "error", err)
	}

	publisher := initPublisher(cfg)
	var enginePublisher engine.BookedPublisher
	if publisher != nil {
		enginePublisher = publisher
		defer publisher.Close()
	}

	reservationEngine := engine.NewEngine(roomCatalog, ledger.New(), enginePublisher, cfg)
	reservationValidator := validator.NewReservationValidator(cfg.Log)

	cfg.Log.Info("Reservation engine initialized", "room_types", roomCatalog.RoomTypes())

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewReservationHandler(reservationEngine, reservationValidator, cfg.Log),
		handler.NewHealthHandler(roomCatalog, cfg.Log),
	)
	serverApp.Run()
}

func initPublisher(cfg *config.Config) *events.Publisher {
	kafkaCfg := kafka_config.Load()
	if !kafkaCfg.Enabled() {
		cfg.Log.Info("Kafka brokers not configured, booking events disabled")
		return nil
	}

	producer, err := kafka.NewProducer(kafkaCfg, cfg.BookingEventsTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create booking event producer", "error", err)
	}

	cfg.Log.Info("Booking event publishing enabled",
		"brokers", kafkaCfg.Brokers,
		"topic", cfg.BookingEventsTopic,
	)
	return events.NewPublisher(producer, cfg.Log)
}
