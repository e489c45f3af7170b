package recommend

import "testing"

func TestPlateGradeRecommendation(t *testing.T) {
	res, err := PlateGrade(PlateGradeInput{LoadKN: 100, WidthMM: 150, Thickness1MM: 10, Thickness2MM: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.PlateGrade == "" {
		t.Fatal("no grade recommended")
	}
	if res.BearingCapacityN < 100*1000 {
		t.Errorf("bearing %v N below demand", res.BearingCapacityN)
	}
	// E250 already bears 2.5*410*20*10 = 205 kN for the smallest bolt.
	if res.PlateGrade != "E250" {
		t.Errorf("grade = %s, want E250", res.PlateGrade)
	}
}

func TestPlateGradeInvalidInput(t *testing.T) {
	if _, err := PlateGrade(PlateGradeInput{LoadKN: 0, WidthMM: 150, Thickness1MM: 10, Thickness2MM: 10}); err == nil {
		t.Fatal("expected error for zero load")
	}
}
