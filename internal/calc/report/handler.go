package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	lapjoint "Lapjoint/internal/calc/lapjoint"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string         `json:"project"`
	Author  string         `json:"author"`
	Title   string         `json:"title"`
	Design  lapjoint.Input `json:"design"`
}

type Handler struct{}

// Generate runs the lap joint design and streams a one-page PDF with the
// inputs and the full result record.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Bolted Lap Joint Design"
	}

	res, err := lapjoint.Calculate(input.Design)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Input")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	grade := input.Design.PlateGrade
	if grade == "" {
		grade = lapjoint.DefaultPlateGrade
	}
	lines := []string{
		fmt.Sprintf("Tensile load: %.1f kN", input.Design.LoadKN),
		fmt.Sprintf("Plate width: %.0f mm", input.Design.WidthMM),
		fmt.Sprintf("Plate thicknesses: %.0f / %.0f mm", input.Design.Thickness1MM, input.Design.Thickness2MM),
		fmt.Sprintf("Plate grade: %s", grade),
	}
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Result")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	lines = []string{
		fmt.Sprintf("Bolt: M%.0f grade %.1f, %d pcs (1 x %d)", res.BoltDiameterMM, res.BoltGrade, res.NumberOfBolts, res.Columns),
		fmt.Sprintf("Hole diameter: %.0f mm", res.HoleDiameterMM),
		fmt.Sprintf("Pitch %.0f mm, gauge %.0f mm, end/edge %.0f mm", res.PitchMM, res.GaugeMM, res.EndDistanceMM),
		fmt.Sprintf("Connection length: %.0f mm", res.ConnectionLengthMM),
		fmt.Sprintf("Connection strength: %.1f kN", res.ConnectionStrengthN/1000),
		fmt.Sprintf("Bearing capacity: %.1f kN", res.BearingCapacityN/1000),
		fmt.Sprintf("Plate yield strength: %.0f MPa", res.YieldStrengthPlate1),
		fmt.Sprintf("Utilization: %.3f", res.Utilization),
	}
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"lapjoint-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
