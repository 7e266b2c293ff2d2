package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"concierge/pkg/client"
	"concierge/pkg/logger"
	"concierge/pkg/model"
)

type mockCalendar struct {
	calls int
	err   error
}

func (m *mockCalendar) CreateBookingEvent(ctx context.Context, roomType, date string) error {
	m.calls++
	return m.err
}

type mockPayment struct {
	calls int
	err   error
}

func (m *mockPayment) Confirm(ctx context.Context, bookingID int64) error {
	m.calls++
	return m.err
}

// stubReservations emulates the reservations service wire behavior.
type stubReservations struct {
	available bool
	bookResp  model.BookingResponse
	bookCalls int
}

func (s *stubReservations) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/availability", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(model.AvailabilityResponse{Available: s.available})
	})
	mux.HandleFunc("/api/v1/bookings", func(w http.ResponseWriter, r *http.Request) {
		s.bookCalls++
		w.Header().Set("Content-Type", "application/json")
		status := http.StatusOK
		if s.bookResp.Success {
			status = http.StatusCreated
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(s.bookResp)
	})
	return mux
}

func newTestService(t *testing.T, stub *stubReservations, cal *mockCalendar, pay *mockPayment) (*FulfillmentService, func()) {
	t.Helper()

	ts := httptest.NewServer(stub.handler())

	apiClient := client.NewClient()
	apiClient.SetReservationClient(ts.URL)

	log := logger.New(logger.Config{Level: logger.ERROR, Service: "test"})
	return NewFulfillmentService(apiClient, cal, pay, log), ts.Close
}

func bookParams() map[string]any {
	return map[string]any{"room-type": "double", "date": "2024-06-01"}
}

func TestExecuteIntent_BookRoomSuccess(t *testing.T) {
	stub := &stubReservations{
		available: true,
		bookResp:  model.BookingResponse{Success: true, Message: "Room booked successfully", BookingID: 7},
	}
	cal := &mockCalendar{}
	pay := &mockPayment{}
	svc, cleanup := newTestService(t, stub, cal, pay)
	defer cleanup()

	reply, err := svc.ExecuteIntent(context.Background(), IntentBookRoom, bookParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reply, "booked for 2024-06-01 successfully") {
		t.Errorf("unexpected reply: %q", reply)
	}
	if cal.calls != 1 {
		t.Errorf("expected 1 calendar call, got %d", cal.calls)
	}
	if pay.calls != 1 {
		t.Errorf("expected 1 payment call, got %d", pay.calls)
	}
}

func TestExecuteIntent_BookRoomNotAvailable(t *testing.T) {
	stub := &stubReservations{available: false}
	cal := &mockCalendar{}
	pay := &mockPayment{}
	svc, cleanup := newTestService(t, stub, cal, pay)
	defer cleanup()

	reply, err := svc.ExecuteIntent(context.Background(), IntentBookRoom, bookParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reply, "no double rooms are available") {
		t.Errorf("unexpected reply: %q", reply)
	}
	if stub.bookCalls != 0 {
		t.Errorf("book must not be called when unavailable, got %d calls", stub.bookCalls)
	}
	if cal.calls != 0 || pay.calls != 0 {
		t.Error("side effects must not run without a committed booking")
	}
}

// A true availability snapshot does not guarantee the booking; the flow
// must cope with losing the race.
func TestExecuteIntent_BookRoomLosesRace(t *testing.T) {
	stub := &stubReservations{
		available: true,
		bookResp:  model.BookingResponse{Success: false, Message: "No rooms available"},
	}
	cal := &mockCalendar{}
	pay := &mockPayment{}
	svc, cleanup := newTestService(t, stub, cal, pay)
	defer cleanup()

	reply, err := svc.ExecuteIntent(context.Background(), IntentBookRoom, bookParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reply, "booking failed") {
		t.Errorf("unexpected reply: %q", reply)
	}
	if cal.calls != 0 || pay.calls != 0 {
		t.Error("side effects must not run for a failed booking")
	}
}

func TestExecuteIntent_SideEffectFailuresKeepBooking(t *testing.T) {
	tests := []struct {
		name      string
		calErr    error
		payErr    error
		wantReply string
	}{
		{
			name:      "calendar failure keeps success reply",
			calErr:    errors.New("calendar down"),
			wantReply: "successfully",
		},
		{
			name:      "payment failure asks to complete payment",
			payErr:    errors.New("card declined"),
			wantReply: "payment failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubReservations{
				available: true,
				bookResp:  model.BookingResponse{Success: true, Message: "Room booked successfully", BookingID: 1},
			}
			svc, cleanup := newTestService(t, stub, &mockCalendar{err: tt.calErr}, &mockPayment{err: tt.payErr})
			defer cleanup()

			reply, err := svc.ExecuteIntent(context.Background(), IntentBookRoom, bookParams())
			if err != nil {
				t.Fatalf("side effect failure must not surface as an error: %v", err)
			}
			if !strings.Contains(reply, tt.wantReply) {
				t.Errorf("expected reply containing %q, got %q", tt.wantReply, reply)
			}
		})
	}
}

func TestExecuteIntent_BookRoomMissingParams(t *testing.T) {
	stub := &stubReservations{available: true}
	svc, cleanup := newTestService(t, stub, &mockCalendar{}, &mockPayment{})
	defer cleanup()

	reply, err := svc.ExecuteIntent(context.Background(), IntentBookRoom, map[string]any{"room-type": "double"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reply, "Please provide") {
		t.Errorf("unexpected reply: %q", reply)
	}
}

func TestExecuteIntent_CheckAvailability(t *testing.T) {
	tests := []struct {
		name      string
		available bool
		wantReply string
	}{
		{"available", true, "is available on"},
		{"not available", false, "is not available on"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, cleanup := newTestService(t, &stubReservations{available: tt.available}, &mockCalendar{}, &mockPayment{})
			defer cleanup()

			reply, err := svc.ExecuteIntent(context.Background(), IntentCheckAvailability, bookParams())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(reply, tt.wantReply) {
				t.Errorf("expected reply containing %q, got %q", tt.wantReply, reply)
			}
		})
	}
}

func TestExecuteIntent_CheckAvailabilityBackendDown(t *testing.T) {
	apiClient := client.NewClient()
	apiClient.SetReservationClient("http://127.0.0.1:1")

	log := logger.New(logger.Config{Level: logger.ERROR, Service: "test"})
	svc := NewFulfillmentService(apiClient, &mockCalendar{}, &mockPayment{}, log)

	reply, err := svc.ExecuteIntent(context.Background(), IntentCheckAvailability, bookParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reply, "unavailable") {
		t.Errorf("unexpected reply: %q", reply)
	}
}

func TestExecuteIntent_StaticIntents(t *testing.T) {
	svc, cleanup := newTestService(t, &stubReservations{}, &mockCalendar{}, &mockPayment{})
	defer cleanup()

	tests := []struct {
		name      string
		intent    string
		wantReply string
	}{
		{"explain services", IntentExplainServices, "Our hotel offers"},
		{"cancel booking is a stub", IntentCancelBooking, "will be available soon"},
		{"unknown intent", "OrderPizza", "did not understand"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := svc.ExecuteIntent(context.Background(), tt.intent, map[string]any{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(reply, tt.wantReply) {
				t.Errorf("expected reply containing %q, got %q", tt.wantReply, reply)
			}
		})
	}
}
