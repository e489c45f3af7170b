package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	lapjoint "Lapjoint/internal/calc/lapjoint"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type ImportResult struct {
	Count   int               `json:"count"`
	Results []lapjoint.Result `json:"results"`
}

// Lapjoint imports design cases from an xlsx upload, one case per row:
// load_kn, width_mm, t1_mm, t2_mm, plate_grade (optional). The first row
// is a header. Rows that fail to parse or design are skipped.
func (h *Handler) Lapjoint(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []lapjoint.Result
	for i := 1; i < len(rows); i++ {
		input, err := parseRow(rows[i])
		if err != nil {
			continue
		}
		res, err := lapjoint.Calculate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResult{Count: len(results), Results: results})
}

func parseRow(row []string) (lapjoint.Input, error) {
	if len(row) < 4 {
		return lapjoint.Input{}, fmt.Errorf("bad row")
	}
	load, err := toFloat(row[0])
	if err != nil {
		return lapjoint.Input{}, err
	}
	width, err := toFloat(row[1])
	if err != nil {
		return lapjoint.Input{}, err
	}
	t1, err := toFloat(row[2])
	if err != nil {
		return lapjoint.Input{}, err
	}
	t2, err := toFloat(row[3])
	if err != nil {
		return lapjoint.Input{}, err
	}
	grade := ""
	if len(row) > 4 {
		grade = row[4]
	}
	return lapjoint.Input{
		LoadKN:       load,
		WidthMM:      width,
		Thickness1MM: t1,
		Thickness2MM: t2,
		PlateGrade:   grade,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
