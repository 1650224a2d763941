package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/oldpence/change-calculator/internal/change"
	"github.com/oldpence/change-calculator/internal/currency"
	"github.com/oldpence/change-calculator/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler wires solver and storage dependencies into HTTP handlers.
type Handler struct {
	solver  change.Solver
	storage storage.Storage

	clock func() time.Time

	mu                     sync.RWMutex
	denominationsUpdatedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(solver change.Solver, store storage.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		solver:  solver,
		storage: store,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.denominationsUpdatedAt = h.clock()
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetDenominations(w http.ResponseWriter, r *http.Request) {
	_ = r
	values, err := h.storage.GetDenominations()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := denominationsResponse{
		Denominations: values,
		UpdatedAt:     h.currentDenominationsUpdatedAt(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePutDenominations(w http.ResponseWriter, r *http.Request) {
	var req denominationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if len(req.Denominations) == 0 {
		writeError(w, http.StatusBadRequest, "Invalid denominations", "denominations must contain at least one halfpence value")
		return
	}

	if err := h.storage.SetDenominations(req.Denominations); err != nil {
		if errors.Is(err, storage.ErrInvalidDenominations) {
			writeError(w, http.StatusBadRequest, "Invalid denominations", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	h.markDenominationsUpdated()

	values, err := h.storage.GetDenominations()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := denominationsResponse{
		Denominations: values,
		UpdatedAt:     h.currentDenominationsUpdatedAt(),
		Message:       "Denominations updated successfully",
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleChange(w http.ResponseWriter, r *http.Request) {
	var req changeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	price, err := req.price()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid price", err.Error())
		return
	}
	target := price.ToHalfpence()

	denominations, err := h.storage.GetDenominations()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	start := time.Now()
	pieces, solveErr := h.solver.Change(target, denominations)
	elapsed := time.Since(start)

	if solveErr != nil {
		switch {
		case errors.Is(solveErr, change.ErrInvalidTarget):
			writeError(w, http.StatusBadRequest, "Invalid request", solveErr.Error())
		case errors.Is(solveErr, change.ErrNoExactChange):
			suggestion := fmt.Sprintf("Consider adding a denomination that divides %d halfpence or adjust the amount", target)
			writeError(w, http.StatusUnprocessableEntity, "Cannot make exact change", solveErr.Error(), suggestion)
		case errors.Is(solveErr, change.ErrInvalidDenominations):
			writeError(w, http.StatusInternalServerError, "Internal error", solveErr.Error())
		default:
			writeInternalError(w, solveErr)
		}
		return
	}

	breakdown := make(map[string]int, len(pieces))
	for _, value := range pieces {
		breakdown[strconv.Itoa(value)]++
	}

	resp := changeResponse{
		Price:             currency.PriceFromHalfpence(target).String(),
		Halfpence:         target,
		Change:            breakdown,
		Wallet:            namedWallet(pieces),
		TotalPieces:       len(pieces),
		CalculationTimeMs: elapsed.Milliseconds(),
	}
	writeJSON(w, http.StatusOK, resp)
}

// namedWallet maps piece values back to denomination names. It returns nil
// when any value has no named denomination, which happens once the stored
// set diverges from the standard pre-decimal one.
func namedWallet(pieces []int) map[string]int {
	var wallet currency.Wallet
	for _, value := range pieces {
		c, ok := currency.FromHalfpence(value)
		if !ok {
			return nil
		}
		wallet.Add(c)
	}

	named := make(map[string]int)
	for _, c := range currency.All() {
		if count := wallet.Count(c); count > 0 {
			named[c.String()] = count
		}
	}
	return named
}

func (h *Handler) currentDenominationsUpdatedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.denominationsUpdatedAt
}

func (h *Handler) markDenominationsUpdated() {
	h.mu.Lock()
	h.denominationsUpdatedAt = h.clock()
	h.mu.Unlock()
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type denominationsRequest struct {
	Denominations []int `json:"denominations"`
}

type changeRequest struct {
	Notation  string `json:"price,omitempty"`
	Pounds    int    `json:"pounds"`
	Shillings int    `json:"shillings"`
	Pence     int    `json:"pence"`
}

// price resolves the requested amount: slash notation when present,
// otherwise the numeric components.
func (r changeRequest) price() (currency.Price, error) {
	if r.Notation != "" {
		return currency.ParsePrice(r.Notation)
	}
	if r.Pounds < 0 || r.Shillings < 0 || r.Pence < 0 {
		return currency.Price{}, errors.New("pounds, shillings, and pence must be non-negative")
	}
	return currency.NewPrice(r.Pounds, r.Shillings, r.Pence*2), nil
}

type changeResponse struct {
	Price             string         `json:"price"`
	Halfpence         int            `json:"halfpence"`
	Change            map[string]int `json:"change"`
	Wallet            map[string]int `json:"wallet,omitempty"`
	TotalPieces       int            `json:"totalPieces"`
	CalculationTimeMs int64          `json:"calculationTimeMs"`
}

type denominationsResponse struct {
	Denominations []int     `json:"denominations"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Message       string    `json:"message,omitempty"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
