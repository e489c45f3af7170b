package history

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	auth "Lapjoint/internal/auth"
	repo "Lapjoint/internal/repo"
)

type fakeRepo struct {
	designs map[int][]repo.DesignRecord
	nextID  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{designs: make(map[int][]repo.DesignRecord), nextID: 1}
}

func (f *fakeRepo) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	return 1, nil
}

func (f *fakeRepo) GetByLogin(ctx context.Context, login string) (int, string, error) {
	return 0, "", nil
}

func (f *fakeRepo) SaveDesign(ctx context.Context, userID int, name string, input, result json.RawMessage) (int, error) {
	id := f.nextID
	f.nextID++
	f.designs[userID] = append(f.designs[userID], repo.DesignRecord{
		ID: id, Name: name, Input: input, Result: result, CreatedAt: time.Now(),
	})
	return id, nil
}

func (f *fakeRepo) ListDesigns(ctx context.Context, userID int) ([]repo.DesignRecord, error) {
	return f.designs[userID], nil
}

func TestSaveAndList(t *testing.T) {
	store := newFakeRepo()
	h := &Handler{Repo: store}

	body := `{"name":"splice A","input":{"load_kn":60,"width_mm":150,"thickness1_mm":10,"thickness2_mm":10}}`
	req := httptest.NewRequest(http.MethodPost, "/history", strings.NewReader(body))
	req = req.WithContext(auth.WithUserID(req.Context(), 7))
	rec := httptest.NewRecorder()
	h.Save(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("save status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var saved SaveResponse
	if err := json.NewDecoder(rec.Body).Decode(&saved); err != nil {
		t.Fatalf("decode save response: %v", err)
	}
	if saved.Result.NumberOfBolts < 2 {
		t.Errorf("saved design has %d bolts", saved.Result.NumberOfBolts)
	}

	req = httptest.NewRequest(http.MethodGet, "/history", nil)
	req = req.WithContext(auth.WithUserID(req.Context(), 7))
	rec = httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var records []repo.DesignRecord
	if err := json.NewDecoder(rec.Body).Decode(&records); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(records) != 1 || records[0].Name != "splice A" {
		t.Fatalf("records = %+v, want one named 'splice A'", records)
	}
}

func TestSaveRequiresAuth(t *testing.T) {
	h := &Handler{Repo: newFakeRepo()}
	req := httptest.NewRequest(http.MethodPost, "/history", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	h.Save(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestSaveRejectsBadDesign(t *testing.T) {
	h := &Handler{Repo: newFakeRepo()}
	body := `{"name":"x","input":{"load_kn":60,"width_mm":150,"thickness1_mm":10,"thickness2_mm":10,"plate_grade":"E999"}}`
	req := httptest.NewRequest(http.MethodPost, "/history", strings.NewReader(body))
	req = req.WithContext(auth.WithUserID(req.Context(), 7))
	rec := httptest.NewRecorder()
	h.Save(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
