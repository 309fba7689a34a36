package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Arbaznazir/shehjar-sub001/internal/models"
)

// fakeOrderStore records the last update it was asked to apply.
type fakeOrderStore struct {
	gotRef string
	gotUpd models.OrderUpdate
	calls  int
	err    error
}

func (f *fakeOrderStore) UpdateOrder(orderRef string, upd models.OrderUpdate) error {
	f.calls++
	f.gotRef = orderRef
	f.gotUpd = upd
	return f.err
}

func newAPIMux(store *fakeOrderStore) *http.ServeMux {
	h := &APIHandler{Orders: store}
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/orders/{orderId}", h.UpdateOrder)
	return mux
}

func TestUpdateOrderSparseFields(t *testing.T) {
	name := "Aarif"
	paid := true
	status := "served"

	tests := []struct {
		name string
		body string
		want models.OrderUpdate
	}{
		{"status only", `{"status":"served"}`, models.OrderUpdate{Status: &status}},
		{"name only", `{"customerName":"Aarif"}`, models.OrderUpdate{CustomerName: &name}},
		{"paid only", `{"isPaid":true}`, models.OrderUpdate{IsPaid: &paid}},
		{"empty object", `{}`, models.OrderUpdate{}},
		{"unrecognized fields only", `{"table":4,"note":"x"}`, models.OrderUpdate{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeOrderStore{}
			mux := newAPIMux(store)

			req := httptest.NewRequest(http.MethodPut, "/api/orders/42", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != http.StatusNoContent {
				t.Fatalf("status = %d, want 204", rec.Code)
			}
			if rec.Body.Len() != 0 {
				t.Errorf("204 response should have no body, got %q", rec.Body.String())
			}
			if store.calls != 1 {
				t.Fatalf("store called %d times, want 1", store.calls)
			}
			if store.gotRef != "42" {
				t.Errorf("order ref = %q, want %q", store.gotRef, "42")
			}

			got, want := store.gotUpd, tt.want
			if (got.CustomerName == nil) != (want.CustomerName == nil) ||
				(got.CustomerName != nil && *got.CustomerName != *want.CustomerName) {
				t.Errorf("CustomerName = %v, want %v", got.CustomerName, want.CustomerName)
			}
			if (got.IsPaid == nil) != (want.IsPaid == nil) ||
				(got.IsPaid != nil && *got.IsPaid != *want.IsPaid) {
				t.Errorf("IsPaid = %v, want %v", got.IsPaid, want.IsPaid)
			}
			if (got.Status == nil) != (want.Status == nil) ||
				(got.Status != nil && *got.Status != *want.Status) {
				t.Errorf("Status = %v, want %v", got.Status, want.Status)
			}
		})
	}
}

func TestUpdateOrderMalformedBodyProceedsAsEmpty(t *testing.T) {
	store := &fakeOrderStore{}
	mux := newAPIMux(store)

	req := httptest.NewRequest(http.MethodPut, "/api/orders/42", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if store.calls != 1 {
		t.Fatalf("store called %d times, want 1", store.calls)
	}
	if !store.gotUpd.IsEmpty() {
		t.Errorf("malformed body should reach the store as an empty update, got %+v", store.gotUpd)
	}
}

func TestUpdateOrderStoreFailure(t *testing.T) {
	store := &fakeOrderStore{err: errors.New("row is locked")}
	mux := newAPIMux(store)

	req := httptest.NewRequest(http.MethodPut, "/api/orders/42", strings.NewReader(`{"status":"served"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	if body["error"] != "row is locked" {
		t.Errorf(`error = %q, want the store's message verbatim`, body["error"])
	}
}

func TestUpdateOrderMethodNotAllowed(t *testing.T) {
	store := &fakeOrderStore{}
	mux := newAPIMux(store)

	req := httptest.NewRequest(http.MethodPost, "/api/orders/42", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
	if store.calls != 0 {
		t.Errorf("store should not be called for a POST")
	}
}
