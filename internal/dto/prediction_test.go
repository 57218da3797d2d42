package dto

import (
	"encoding/json"
	"testing"
)

func TestFloatUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{`25`, 25, false},
		{`6.5`, 6.5, false},
		{`"25"`, 25, false},
		{`" 6.5 "`, 6.5, false},
		{`"fifty"`, 0, true},
		{`""`, 0, true},
		{`true`, 0, true},
	}

	for _, tt := range tests {
		var f Float
		err := json.Unmarshal([]byte(tt.in), &f)
		if (err != nil) != tt.wantErr {
			t.Fatalf("%s: err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if !tt.wantErr && float64(f) != tt.want {
			t.Errorf("%s: got %v, want %v", tt.in, f, tt.want)
		}
	}
}

func TestPredictRequestMissingFieldStaysNil(t *testing.T) {
	var req PredictRequest
	if err := json.Unmarshal([]byte(`{"temperature":"25","N":null}`), &req); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if req.Temperature == nil || *req.Temperature != 25 {
		t.Fatalf("temperature = %v", req.Temperature)
	}
	if req.N != nil || req.Moisture != nil {
		t.Fatalf("absent fields decoded: N=%v moisture=%v", req.N, req.Moisture)
	}
}
