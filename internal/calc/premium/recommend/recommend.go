package recommend

import (
	"fmt"

	lapjoint "Lapjoint/internal/calc/lapjoint"
)

type PlateGradeInput struct {
	LoadKN       float64 `json:"load_kn"`
	WidthMM      float64 `json:"width_mm"`
	Thickness1MM float64 `json:"thickness1_mm"`
	Thickness2MM float64 `json:"thickness2_mm"`
}

type PlateGradeResult struct {
	PlateGrade       string          `json:"plate_grade"`
	BearingCapacityN float64         `json:"bearing_capacity_n"`
	Design           lapjoint.Result `json:"design"`
	Notes            string          `json:"notes"`
}

// PlateGrade picks the lowest catalog grade whose bearing capacity covers
// the applied load for the selected bolt layout. The core design check is
// shear-governed; this is the serviceability side the core only reports.
func PlateGrade(in PlateGradeInput) (PlateGradeResult, error) {
	if in.LoadKN <= 0 || in.WidthMM <= 0 || in.Thickness1MM <= 0 || in.Thickness2MM <= 0 {
		return PlateGradeResult{}, fmt.Errorf("invalid input")
	}
	loadN := in.LoadKN * 1000
	cat := lapjoint.DefaultCatalog()
	for _, ps := range cat.PlateStrengths {
		res, err := cat.Calculate(lapjoint.Input{
			LoadKN:       in.LoadKN,
			WidthMM:      in.WidthMM,
			Thickness1MM: in.Thickness1MM,
			Thickness2MM: in.Thickness2MM,
			PlateGrade:   ps.Name,
		})
		if err != nil {
			continue
		}
		if res.BearingCapacityN >= loadN {
			return PlateGradeResult{
				PlateGrade:       ps.Name,
				BearingCapacityN: res.BearingCapacityN,
				Design:           res,
				Notes:            "Lowest grade whose bearing capacity covers the load.",
			}, nil
		}
	}
	return PlateGradeResult{}, fmt.Errorf("no plate grade provides enough bearing capacity")
}
