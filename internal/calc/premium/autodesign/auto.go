package autodesign

import (
	"fmt"

	lapjoint "Lapjoint/internal/calc/lapjoint"
)

// Standard plate thicknesses considered by the auto-sizer, thinnest first.
var standardThicknessesMM = []float64{6, 8, 10, 12, 16, 20, 24}

type Input struct {
	LoadKN     float64 `json:"load_kn"`
	WidthMM    float64 `json:"width_mm"`
	PlateGrade string  `json:"plate_grade"`
}

type Result struct {
	ThicknessMM float64         `json:"thickness_mm"`
	Design      lapjoint.Result `json:"design"`
	Notes       string          `json:"notes"`
}

// Lapjoint sizes both plates to the thinnest standard thickness whose
// bearing capacity covers the applied load, then returns the bolt design
// for that pair.
func Lapjoint(in Input) (Result, error) {
	if in.LoadKN <= 0 || in.WidthMM <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	loadN := in.LoadKN * 1000
	for _, t := range standardThicknessesMM {
		res, err := lapjoint.Calculate(lapjoint.Input{
			LoadKN:       in.LoadKN,
			WidthMM:      in.WidthMM,
			Thickness1MM: t,
			Thickness2MM: t,
			PlateGrade:   in.PlateGrade,
		})
		if err != nil {
			return Result{}, err
		}
		if res.BearingCapacityN >= loadN {
			return Result{
				ThicknessMM: t,
				Design:      res,
				Notes:       "Thinnest standard plate pair with bearing capacity above the load.",
			}, nil
		}
	}
	return Result{}, fmt.Errorf("no standard thickness provides enough bearing capacity")
}
