package locales

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type handlerResponse struct {
	Data []Option `json:"data"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) handlerResponse {
	t.Helper()
	var payload handlerResponse
	if err := json.NewDecoder(rec.Result().Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return payload
}

func TestNewHandler_EmptyQueryWithNoneModeReturnsEmptyArray(t *testing.T) {
	h := NewHandler(
		WithLocales([]string{"de"}),
		WithEmptySearchMode(EmptySearchNone),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/datepicker/locales", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content-type, got %q", ct)
	}
	payload := decode(t, rec)
	if payload.Data == nil || len(payload.Data) != 0 {
		t.Fatalf("expected empty data array, got %#v", payload.Data)
	}
}

func TestNewHandler_SearchMatchesCodeAndLabel(t *testing.T) {
	h := NewHandler(WithLocales([]string{"de", "fr", "fr-CH", "pt", "pt-BR"}))

	req := httptest.NewRequest(http.MethodGet, "/api/datepicker/locales?q=germ", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	payload := decode(t, rec)
	if len(payload.Data) != 1 || payload.Data[0].Value != "de" {
		t.Fatalf("expected german only, got %#v", payload.Data)
	}
	if payload.Data[0].Label != "German (de)" {
		t.Fatalf("unexpected label: %q", payload.Data[0].Label)
	}
}

func TestNewHandler_LimitClamped(t *testing.T) {
	h := NewHandler(
		WithLocales([]string{"de", "fr", "fr-CH", "pt", "pt-BR"}),
		WithMaxLimit(2),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/datepicker/locales?limit=10", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	payload := decode(t, rec)
	if len(payload.Data) != 2 {
		t.Fatalf("expected 2 results, got %#v", payload.Data)
	}
	if payload.Data[0].Value != "de" || payload.Data[1].Value != "fr" {
		t.Fatalf("unexpected results: %#v", payload.Data)
	}
}

func TestNewHandler_CustomQueryParams(t *testing.T) {
	h := NewHandler(
		WithLocales([]string{"de", "fr"}),
		WithSearchParam("search"),
		WithLimitParam("l"),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/datepicker/locales?search=FR&l=5", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	payload := decode(t, rec)
	if len(payload.Data) != 1 || payload.Data[0].Value != "fr" {
		t.Fatalf("unexpected results: %#v", payload.Data)
	}
}

func TestNewHandler_RejectsPost(t *testing.T) {
	h := NewHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/datepicker/locales", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET, HEAD" {
		t.Fatalf("unexpected Allow header: %q", allow)
	}
}

func TestNewHandler_HeadHasNoBody(t *testing.T) {
	h := NewHandler(WithLocales([]string{"de"}))

	req := httptest.NewRequest(http.MethodHead, "/api/datepicker/locales?q=de", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestNewHandler_GuardStatus(t *testing.T) {
	h := NewHandler(WithGuard(func(*http.Request) error {
		return StatusError{Code: http.StatusUnauthorized, Err: errors.New("no session")}
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/datepicker/locales", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	h = NewHandler(WithGuard(func(*http.Request) error { return errors.New("denied") }))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestNewHandler_DefaultsToEmbeddedLocales(t *testing.T) {
	h := NewHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/datepicker/locales?q=zh", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	payload := decode(t, rec)
	if len(payload.Data) < 2 || payload.Data[0].Value != "zh-CN" || payload.Data[1].Value != "zh-TW" {
		t.Fatalf("expected embedded chinese bundles first, got %#v", payload.Data)
	}
}
