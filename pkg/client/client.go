package client

// Client aggregates the service clients a caller needs.
type Client struct {
	Reservations *ReservationClient
}

func NewClient() *Client {
	return &Client{}
}

func (c *Client) SetReservationClient(baseURL string) {
	c.Reservations = NewReservationClient(baseURL)
}
