package calendar

import (
	"context"
	"fmt"
	"net/url"

	"concierge/pkg/client"
	"concierge/pkg/logger"
)

type eventDate struct {
	Date string `json:"date"`
}

type event struct {
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Start       eventDate `json:"start"`
	End         eventDate `json:"end"`
}

// Client creates all-day booking events on an external calendar API.
type Client struct {
	httpClient *client.HttpClient
	calendarID string
	log        *logger.Logger
}

func NewClient(baseURL, calendarID string, log *logger.Logger) *Client {
	return &Client{
		httpClient: client.NewHttpClient(baseURL),
		calendarID: calendarID,
		log:        log,
	}
}

func (c *Client) CreateBookingEvent(ctx context.Context, roomType, date string) error {
	body := event{
		Summary:     fmt.Sprintf("Hotel Room Booking: %s", roomType),
		Description: "Reservation confirmed via Concierge Agent.",
		Start:       eventDate{Date: date},
		End:         eventDate{Date: date},
	}

	path := fmt.Sprintf("/calendars/%s/events", url.PathEscape(c.calendarID))
	resp, err := c.httpClient.POST(ctx, path, body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("calendar API returned status %d", resp.StatusCode)
	}

	c.log.Info("Calendar event created", "calendar_id", c.calendarID, "room_type", roomType, "date", date)
	return nil
}
