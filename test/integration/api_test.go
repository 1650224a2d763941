package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/oldpence/change-calculator/internal/api"
	"github.com/oldpence/change-calculator/internal/change"
	"github.com/oldpence/change-calculator/internal/storage"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	store := storage.NewMemoryStorage()
	solver := change.New()
	handler := api.NewHandler(solver, store)
	logger := zaptest.NewLogger(t)
	return api.NewRouter(handler, logger)
}

func performRequest(t *testing.T, handler http.Handler, method, target string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestIntegrationFlow(t *testing.T) {
	handler := newRouter(t)
	jsonHeaders := map[string]string{"Content-Type": "application/json"}

	rec := performRequest(t, handler, http.MethodGet, "/api/health", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from health, got %d", rec.Code)
	}

	// change for a price given in slash notation against the standard set
	payload, _ := json.Marshal(map[string]string{"price": "9/12/9"})
	rec = performRequest(t, handler, http.MethodPost, "/api/change", payload, jsonHeaders)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from change, got %d: %s", rec.Code, rec.Body.String())
	}

	var changeResp struct {
		Price       string         `json:"price"`
		Halfpence   int            `json:"halfpence"`
		Wallet      map[string]int `json:"wallet"`
		TotalPieces int            `json:"totalPieces"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &changeResp); err != nil {
		t.Fatalf("decode change response: %v", err)
	}
	if changeResp.Price != "£9 12s 9d" || changeResp.Halfpence != 4626 {
		t.Fatalf("unexpected price echo: %+v", changeResp)
	}
	if changeResp.TotalPieces != 9 || changeResp.Wallet["five_pound"] != 1 || changeResp.Wallet["crown"] != 2 {
		t.Fatalf("unexpected change: %+v", changeResp)
	}

	// swap in a sparse denomination set and ask for an unreachable amount
	payload, _ = json.Marshal(map[string][]int{"denominations": {10, 5}})
	rec = performRequest(t, handler, http.MethodPut, "/api/denominations", payload, jsonHeaders)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from denominations update, got %d", rec.Code)
	}

	payload, _ = json.Marshal(map[string]int{"pence": 7})
	rec = performRequest(t, handler, http.MethodPost, "/api/change", payload, jsonHeaders)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for unreachable amount, got %d: %s", rec.Code, rec.Body.String())
	}

	// a reachable amount on the sparse set still works
	payload, _ = json.Marshal(map[string]int{"pence": 10})
	rec = performRequest(t, handler, http.MethodPost, "/api/change", payload, jsonHeaders)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var sparseResp struct {
		Change      map[string]int `json:"change"`
		TotalPieces int            `json:"totalPieces"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &sparseResp); err != nil {
		t.Fatalf("decode change response: %v", err)
	}
	if sparseResp.TotalPieces != 2 || sparseResp.Change["10"] != 2 {
		t.Fatalf("unexpected sparse change: %+v", sparseResp)
	}

	// restore the standard set
	payload, _ = json.Marshal(map[string][]int{"denominations": storage.DefaultDenominations()})
	rec = performRequest(t, handler, http.MethodPut, "/api/denominations", payload, jsonHeaders)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from denominations restore, got %d", rec.Code)
	}

	rec = performRequest(t, handler, http.MethodGet, "/api/denominations", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from denominations read, got %d", rec.Code)
	}
}
