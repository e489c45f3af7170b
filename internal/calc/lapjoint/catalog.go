package lapjoint

// Reference data for the lap joint designer: standard bolt diameters and
// grades, and the plate grade strength table (IS 800 material values).

type PlateStrength struct {
	Name  string  `json:"name"`
	FyMPa float64 `json:"fy_mpa"`
	FuMPa float64 `json:"fu_mpa"`
}

type Catalog struct {
	BoltDiametersMM []float64       `json:"bolt_diameters_mm"`
	BoltGrades      []float64       `json:"bolt_grades"`
	PlateStrengths  []PlateStrength `json:"plate_strengths"`
	SafetyFactor    float64         `json:"safety_factor"`
}

const DefaultPlateGrade = "E410"

// DefaultCatalog returns the standard catalog. The returned value is owned
// by the caller; the package never mutates catalogs.
func DefaultCatalog() Catalog {
	return Catalog{
		BoltDiametersMM: []float64{10, 12, 16, 20, 24},
		BoltGrades:      []float64{3.6, 4.6, 4.8, 5.6, 5.8, 6.8, 8.8, 10.9},
		PlateStrengths: []PlateStrength{
			{Name: "E250", FyMPa: 250, FuMPa: 410},
			{Name: "E275", FyMPa: 275, FuMPa: 440},
			{Name: "E300", FyMPa: 300, FuMPa: 470},
			{Name: "E350", FyMPa: 350, FuMPa: 510},
			{Name: "E410", FyMPa: 410, FuMPa: 550},
			{Name: "E450", FyMPa: 450, FuMPa: 590},
			{Name: "E500", FyMPa: 500, FuMPa: 650},
			{Name: "E550", FyMPa: 550, FuMPa: 700},
		},
		SafetyFactor: 1.33,
	}
}

func (c Catalog) PlateGradeNames() []string {
	names := make([]string, 0, len(c.PlateStrengths))
	for _, ps := range c.PlateStrengths {
		names = append(names, ps.Name)
	}
	return names
}

func (c Catalog) plateStrength(name string) (PlateStrength, bool) {
	for _, ps := range c.PlateStrengths {
		if ps.Name == name {
			return ps, true
		}
	}
	return PlateStrength{}, false
}
