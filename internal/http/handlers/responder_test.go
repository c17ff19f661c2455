package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestWriteJSONSetsContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusCreated, map[string]string{"ok": "yes"}, nil)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("content type = %q", got)
	}
}

func TestWriteErrorShape(t *testing.T) {
	h := NewHandler(nil, nil, nil, false)
	h.now = func() time.Time {
		return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.writeError(rec, req, http.StatusBadRequest, "bad input")

	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success {
		t.Error("success should be false")
	}
	if body.Error != "bad input" {
		t.Errorf("error = %q", body.Error)
	}
	if body.ErrorCode != "HTTP_400" {
		t.Errorf("error_code = %q", body.ErrorCode)
	}
	if body.Timestamp != "2024-03-15T10:30:00Z" {
		t.Errorf("timestamp = %q", body.Timestamp)
	}
}

func TestDecodeJSONLimitsBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	var dst map[string]any
	if err := decodeJSON(req, &dst); err == nil {
		t.Fatal("expected error for empty body")
	}
}
