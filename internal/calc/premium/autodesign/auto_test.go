package autodesign

import "testing"

func TestAutoThickness(t *testing.T) {
	res, err := Lapjoint(Input{LoadKN: 150, WidthMM: 150})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 6 mm pair bears 2.5*550*12*10 = 165 kN for the smallest bolt.
	if res.ThicknessMM != 6 {
		t.Errorf("thickness = %v, want 6", res.ThicknessMM)
	}
	if res.Design.BearingCapacityN < 150*1000 {
		t.Errorf("bearing %v N below demand", res.Design.BearingCapacityN)
	}
	if res.Design.NumberOfBolts < 2 {
		t.Errorf("bolts = %d, want >= 2", res.Design.NumberOfBolts)
	}
}

func TestAutoThicknessInvalidInput(t *testing.T) {
	if _, err := Lapjoint(Input{LoadKN: 0, WidthMM: 150}); err == nil {
		t.Fatal("expected error for zero load")
	}
}

func TestAutoThicknessBadGrade(t *testing.T) {
	if _, err := Lapjoint(Input{LoadKN: 50, WidthMM: 150, PlateGrade: "E999"}); err == nil {
		t.Fatal("expected error for unknown grade")
	}
}
