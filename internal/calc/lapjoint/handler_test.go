package lapjoint

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCalcHandler(t *testing.T) {
	h := &Handler{}
	body := `{"load_kn":50,"width_mm":150,"thickness1_mm":10,"thickness2_mm":10,"plate_grade":"E410"}`
	req := httptest.NewRequest(http.MethodPost, "/tools/lapjoint/calc", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Calc(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var res Result
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.NumberOfBolts < 2 {
		t.Errorf("bolts = %d, want >= 2", res.NumberOfBolts)
	}
}

func TestCalcHandlerInvalidGrade(t *testing.T) {
	h := &Handler{}
	body := `{"load_kn":50,"width_mm":150,"thickness1_mm":10,"thickness2_mm":10,"plate_grade":"E999"}`
	req := httptest.NewRequest(http.MethodPost, "/tools/lapjoint/calc", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Calc(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "E999") {
		t.Errorf("error body %q does not name the bad grade", rec.Body.String())
	}
}

func TestCalcHandlerBadPayload(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/tools/lapjoint/calc", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.Calc(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCatalogHandler(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodGet, "/tools/lapjoint/catalog", nil)
	rec := httptest.NewRecorder()
	h.Catalog(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var cat Catalog
	if err := json.NewDecoder(rec.Body).Decode(&cat); err != nil {
		t.Fatalf("decode catalog: %v", err)
	}
	if len(cat.BoltDiametersMM) != 5 || len(cat.BoltGrades) != 8 || len(cat.PlateStrengths) != 8 {
		t.Errorf("catalog sizes = %d/%d/%d, want 5/8/8",
			len(cat.BoltDiametersMM), len(cat.BoltGrades), len(cat.PlateStrengths))
	}
}
