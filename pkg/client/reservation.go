package client

import (
	"context"
	"fmt"

	"concierge/pkg/model"
)

// ReservationClient calls the reservations service.
type ReservationClient struct {
	httpClient *HttpClient
}

func NewReservationClient(baseURL string) *ReservationClient {
	return &ReservationClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *ReservationClient) CheckAvailability(ctx context.Context, roomType, date string) (*model.AvailabilityResponse, error) {
	resp, err := c.httpClient.POST(ctx, "/api/v1/availability", model.ReservationRequest{
		RoomType: roomType,
		Date:     date,
	})
	if err != nil {
		return nil, err
	}

	var availability model.AvailabilityResponse
	if err := resp.DecodeJSON(&availability); err != nil {
		return nil, fmt.Errorf("could not decode availability response: %w", err)
	}
	return &availability, nil
}

func (c *ReservationClient) Book(ctx context.Context, roomType, date string) (*model.BookingResponse, error) {
	resp, err := c.httpClient.POST(ctx, "/api/v1/bookings", model.ReservationRequest{
		RoomType: roomType,
		Date:     date,
	})
	if err != nil {
		return nil, err
	}

	var booking model.BookingResponse
	if err := resp.DecodeJSON(&booking); err != nil {
		return nil, fmt.Errorf("could not decode booking response: %w", err)
	}
	return &booking, nil
}
