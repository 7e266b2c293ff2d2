package config

import (
	"reflect"
	"testing"
)

func TestParseInventory(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    map[string]int
		wantErr bool
	}{
		{
			name: "default inventory",
			spec: DefaultRoomInventory,
			want: map[string]int{"single": 5, "double": 3, "suite": 2},
		},
		{
			name: "single entry",
			spec: "single:1",
			want: map[string]int{"single": 1},
		},
		{
			name: "whitespace tolerated",
			spec: " single : 5 , double : 3 ",
			want: map[string]int{"single": 5, "double": 3},
		},
		{"empty spec", "", nil, true},
		{"missing count", "single", nil, true},
		{"non-numeric count", "single:many", nil, true},
		{"zero capacity", "single:0", nil, true},
		{"negative capacity", "single:-2", nil, true},
		{"empty room type", ":5", nil, true},
		{"duplicate room type", "single:5,single:3", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInventory(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseInventory(%q) expected error, got %v", tt.spec, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInventory(%q) unexpected error: %v", tt.spec, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseInventory(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}
