package validator

import (
	"errors"
	"testing"

	reservationserrors "concierge/internal/reservations/errors"
	"concierge/pkg/logger"
	"concierge/pkg/model"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid date", "2024-06-01", false},
		{"valid leap day", "2024-02-29", false},
		{"slash separated", "13/1/2024", true},
		{"missing zero padding", "2024-1-1", true},
		{"month out of range", "2024-13-01", true},
		{"day out of range", "2024-02-30", true},
		{"non-leap-year feb 29", "2023-02-29", true},
		{"datetime instead of date", "2024-06-01T10:00:00Z", true},
		{"empty string", "", true},
		{"garbage", "tomorrow", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canonical, err := ParseDate(tt.input)
			if tt.wantErr {
				if !errors.Is(err, reservationserrors.ErrInvalidDateFormat) {
					t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDateFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if canonical != tt.input {
				t.Errorf("ParseDate(%q) canonical = %q, want input unchanged", tt.input, canonical)
			}
		})
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	v := NewReservationValidator(logger.New(logger.Config{Level: logger.ERROR, Service: "test"}))

	tests := []struct {
		name    string
		req     model.ReservationRequest
		wantErr bool
	}{
		{"both fields present", model.ReservationRequest{RoomType: "single", Date: "2024-06-01"}, false},
		{"missing room type", model.ReservationRequest{Date: "2024-06-01"}, true},
		{"missing date", model.ReservationRequest{RoomType: "single"}, true},
		{"both missing", model.ReservationRequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
