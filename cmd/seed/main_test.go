package main

import "testing"

func TestParseSeedEmbedded(t *testing.T) {
	seed, err := parseSeed(demoData)
	if err != nil {
		t.Fatalf("parseSeed() error = %v", err)
	}
	if len(seed.Farmers) != 2 {
		t.Fatalf("farmers = %d, want 2", len(seed.Farmers))
	}

	f := seed.Farmers[0]
	if f.Username != "ramesh" || f.FullName != "Ramesh Kumar" || f.TotalLand != "25" {
		t.Errorf("farmer = %+v", f.RegisterRequest)
	}
	if len(f.Crops) != 2 || f.Crops[0].CropType != "Wheat" || f.Crops[0].Acre != 12 {
		t.Errorf("crops = %+v", f.Crops)
	}
	if len(f.SoilTests) != 2 || f.SoilTests[0].NitrogenLevel != "Low" || f.SoilTests[0].PHLevel != 7.8 {
		t.Errorf("soil tests = %+v", f.SoilTests)
	}
}

func TestParseSeedInvalid(t *testing.T) {
	if _, err := parseSeed([]byte("farmers: [")); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
