package lapjoint

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

type Input struct {
	LoadKN       float64 `json:"load_kn"`
	WidthMM      float64 `json:"width_mm"`
	Thickness1MM float64 `json:"thickness1_mm"`
	Thickness2MM float64 `json:"thickness2_mm"`
	PlateGrade   string  `json:"plate_grade"`
}

type Result struct {
	BoltDiameterMM      float64 `json:"bolt_diameter_mm"`
	BoltGrade           float64 `json:"bolt_grade"`
	NumberOfBolts       int     `json:"number_of_bolts"`
	PitchMM             float64 `json:"pitch_mm"`
	GaugeMM             float64 `json:"gauge_mm"`
	EndDistanceMM       float64 `json:"end_distance_mm"`
	EdgeDistanceMM      float64 `json:"edge_distance_mm"`
	Rows                int     `json:"rows"`
	Columns             int     `json:"columns"`
	HoleDiameterMM      float64 `json:"hole_diameter_mm"`
	ConnectionStrengthN float64 `json:"connection_strength_n"`
	BearingCapacityN    float64 `json:"bearing_capacity_n"`
	YieldStrengthPlate1 float64 `json:"yield_strength_plate_1_mpa"`
	YieldStrengthPlate2 float64 `json:"yield_strength_plate_2_mpa"`
	ConnectionLengthMM  float64 `json:"connection_length_mm"`
	Utilization         float64 `json:"utilization"`
}

// ErrNoFeasibleDesign is returned when the full diameter/grade cross
// product contains no candidate with utilization <= 1.
var ErrNoFeasibleDesign = errors.New("no suitable design found")

type InvalidPlateGradeError struct {
	Grade string
	Valid []string
}

func (e *InvalidPlateGradeError) Error() string {
	return fmt.Sprintf("invalid plate grade %q, available grades: %s",
		e.Grade, strings.Join(e.Valid, ", "))
}

// BoltStrength derives the ultimate and yield strength in MPa from a bolt
// grade. Grade X.Y encodes fu = X*100 and fy = (Y/10)*fu. The function is
// not gated by the catalog; any numeric grade computes a result.
func BoltStrength(grade float64) (fuMPa, fyMPa float64) {
	fu := math.Floor(grade) * 100
	fy := (grade - math.Floor(grade)) * fu
	return fu, fy
}

// ShearCapacityN is the single-bolt shear capacity V_b = 0.6 * fy * A,
// shank area, no threads reduction.
func ShearCapacityN(fyBoltMPa, areaMM2 float64) float64 {
	return 0.6 * fyBoltMPa * areaMM2
}

// BearingCapacityN is V_dpb = 2.5 * fu_plate * t_total * d.
func BearingCapacityN(fuPlateMPa, tTotalMM, diameterMM float64) float64 {
	return 2.5 * fuPlateMPa * tTotalMM * diameterMM
}

// Calculate runs the design search against the default catalog.
func Calculate(in Input) (Result, error) {
	return DefaultCatalog().Calculate(in)
}

// Calculate picks the bolt diameter and grade that satisfy the shear check
// with the shortest connection length. Candidates are enumerated in catalog
// order and ties keep the first candidate seen. An empty plate grade means
// the default grade; an unknown one fails before any search work.
func (c Catalog) Calculate(in Input) (Result, error) {
	if in.PlateGrade == "" {
		in.PlateGrade = DefaultPlateGrade
	}
	plate, ok := c.plateStrength(in.PlateGrade)
	if !ok {
		return Result{}, &InvalidPlateGradeError{Grade: in.PlateGrade, Valid: c.PlateGradeNames()}
	}

	loadN := in.LoadKN * 1000
	tTotal := in.Thickness1MM + in.Thickness2MM

	var best Result
	found := false
	minLength := math.Inf(1)

	for _, d := range c.BoltDiametersMM {
		for _, gb := range c.BoltGrades {
			_, fyBolt := BoltStrength(gb)
			area := math.Pi * (d / 2) * (d / 2)
			vb := ShearCapacityN(fyBolt, area)

			// Design capacity is nominal/SafetyFactor. A lap joint needs
			// at least two bolts to resist rotation, so the count is
			// clamped up even when one bolt would carry the load.
			nb := int(math.Ceil(loadN / (vb / c.SafetyFactor)))
			if nb < 2 {
				nb = 2
			}

			e := d + 5
			length := in.WidthMM + 2*e
			strength := float64(nb) * vb / c.SafetyFactor
			util := loadN / strength

			// Bearing is reported alongside the result but does not gate
			// feasibility; only the shear check governs.
			bearing := BearingCapacityN(plate.FuMPa, tTotal, d)

			if util <= 1 && length < minLength {
				minLength = length
				found = true
				best = Result{
					BoltDiameterMM:      d,
					BoltGrade:           gb,
					NumberOfBolts:       nb,
					PitchMM:             d + 10,
					GaugeMM:             in.WidthMM / 2,
					EndDistanceMM:       e,
					EdgeDistanceMM:      e,
					Rows:                1,
					Columns:             nb,
					HoleDiameterMM:      d + 2,
					ConnectionStrengthN: strength,
					BearingCapacityN:    bearing,
					YieldStrengthPlate1: plate.FyMPa,
					YieldStrengthPlate2: plate.FyMPa,
					ConnectionLengthMM:  length,
					Utilization:         util,
				}
			}
		}
	}

	if !found {
		return Result{}, ErrNoFeasibleDesign
	}
	return best, nil
}
