package history

import (
	"encoding/json"
	"net/http"

	auth "Lapjoint/internal/auth"
	lapjoint "Lapjoint/internal/calc/lapjoint"
	repo "Lapjoint/internal/repo"
)

type Handler struct {
	Repo repo.Repository
}

type SaveRequest struct {
	Name  string         `json:"name"`
	Input lapjoint.Input `json:"input"`
}

type SaveResponse struct {
	ID     int             `json:"id"`
	Result lapjoint.Result `json:"result"`
}

// Save runs the design and stores the input/result pair under the
// authenticated user. The design call itself stays pure; persistence
// happens only here.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	res, err := lapjoint.Calculate(req.Input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	inputJSON, err := json.Marshal(req.Input)
	if err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}
	resultJSON, err := json.Marshal(res)
	if err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}

	id, err := h.Repo.SaveDesign(r.Context(), userID, req.Name, inputJSON, resultJSON)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SaveResponse{ID: id, Result: res})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	records, err := h.Repo.ListDesigns(r.Context(), userID)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []repo.DesignRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}
