package service

import (
	"testing"

	"go.uber.org/zap"
)

func TestWeatherForLocation(t *testing.T) {
	svc := NewWeatherService(zap.NewNop())

	tests := []struct {
		location string
		want     string
		temp     int
	}{
		{"shimla", "Shimla", 15},
		{"  MUMBAI ", "Mumbai", 30},
		{"Atlantis", "Delhi", 28},
		{"", "Delhi", 28},
	}
	for _, tt := range tests {
		w := svc.ForLocation(tt.location)
		if w.Location != tt.want || w.Temperature != tt.temp {
			t.Errorf("ForLocation(%q) = %s %d, want %s %d", tt.location, w.Location, w.Temperature, tt.want, tt.temp)
		}
		if len(w.Forecast) != 3 || w.Forecast[0].Day != "Tomorrow" {
			t.Errorf("forecast = %+v", w.Forecast)
		}
	}
}
