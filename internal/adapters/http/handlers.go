package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sharondrury/arrow-game/internal/domain"
	"github.com/sharondrury/arrow-game/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/canexit", h.handleCanExit)
	mux.HandleFunc("/api/validate", h.handleValidate)
}

// ---- Generate ----

type generateReq struct {
	Rows        int     `json:"rows,omitempty"`
	Cols        int     `json:"cols,omitempty"`
	Density     float64 `json:"density,omitempty"`
	MaxLength   int     `json:"maxLength,omitempty"`
	MaxAttempts int     `json:"maxAttempts,omitempty"`
	Seed        int64   `json:"seed,omitempty"`
}

type generateResp struct {
	Level      *domain.Level `json:"level,omitempty"`
	Seed       int64         `json:"seed,omitempty"`
	DurationMs int64         `json:"durationMs,omitempty"`
	States     int           `json:"states,omitempty"`
	Error      string        `json:"error,omitempty"`
}

func clampInt(v, lo, hi, def int) int {
	if v == 0 {
		return def
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampConfig is the settings-form stand-in: the engine itself does not
// enforce the documented ranges, so the boundary does.
func clampConfig(req generateReq) domain.Config {
	cfg := domain.Config{
		Rows:        clampInt(req.Rows, 2, 12, 6),
		Cols:        clampInt(req.Cols, 2, 12, 6),
		Density:     req.Density,
		MaxLength:   clampInt(req.MaxLength, 1, 4, 3),
		MaxAttempts: req.MaxAttempts,
	}
	if cfg.Density <= 0 {
		cfg.Density = 0.45
	}
	if cfg.Density > 0.9 {
		cfg.Density = 0.9
	}
	return cfg
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	lvl, st := h.UC.Generate(r.Context(), seed, clampConfig(req))
	_ = json.NewEncoder(w).Encode(generateResp{
		Level:      lvl,
		Seed:       seed,
		DurationMs: st.Duration.Milliseconds(),
		States:     st.States,
	})
}

// ---- Solve ----

type solveReq struct {
	Board     domain.Grid `json:"board"`
	MaxStates int         `json:"maxStates,omitempty"`
}

type solveResp struct {
	Found      bool            `json:"found"`
	Solution   domain.Solution `json:"solution,omitempty"`
	DurationMs int64           `json:"durationMs,omitempty"`
	States     int             `json:"states,omitempty"`
	Error      string          `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	sol, st, ok := h.UC.Solve(r.Context(), &req.Board, req.MaxStates)
	_ = json.NewEncoder(w).Encode(solveResp{
		Found:      ok,
		Solution:   sol,
		DurationMs: st.Duration.Milliseconds(),
		States:     st.States,
	})
}

// ---- Hint ----

type hintReq struct {
	Board domain.Grid `json:"board"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Move  domain.Move `json:"move"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	m, ok := h.UC.Hint(r.Context(), &req.Board)
	_ = json.NewEncoder(w).Encode(hintResp{Found: ok, Move: m})
}

// ---- CanExit ----

type canExitReq struct {
	Board domain.Grid `json:"board"`
	Row   int         `json:"row"`
	Col   int         `json:"col"`
}

type canExitResp struct {
	CanExit bool   `json:"canExit"`
	Error   string `json:"error,omitempty"`
}

func (h *Handler) handleCanExit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req canExitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(canExitResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(canExitResp{CanExit: h.UC.CanExit(&req.Board, req.Row, req.Col)})
}

// ---- Validate ----

type validateReq struct {
	Board domain.Grid `json:"board"`
}

type validateResp struct {
	OK        bool          `json:"ok"`
	Conflicts []domain.Move `json:"conflicts,omitempty"`
	Error     string        `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	ok, conflicts := h.UC.Validate(r.Context(), &req.Board)
	_ = json.NewEncoder(w).Encode(validateResp{OK: ok, Conflicts: conflicts})
}
