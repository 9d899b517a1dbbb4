package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookwise/models"
	"bookwise/services/booking"
	"bookwise/utils"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := &booking.DefaultBookingService{
		Registry:  booking.NewInMemoryRegistry(),
		StartHour: 9,
		EndHour:   17,
	}
	handler := NewBookingHandler(svc, utils.GetLogger())

	router := gin.New()
	api := router.Group("/api/booking")
	{
		api.GET("/slots", handler.GetSlots)
		api.GET("/reservations", handler.ListReservations)
		api.POST("/reservations", handler.CreateReservation)
		api.DELETE("/reservations", handler.CancelReservation)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetSlotsValidation(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name string
		path string
		want int
	}{
		{"missing date", "/api/booking/slots", http.StatusBadRequest},
		{"malformed date", "/api/booking/slots?date=12-06-2024", http.StatusBadRequest},
		{"non-numeric granularity", "/api/booking/slots?date=2024-06-12&slotMinutes=abc", http.StatusBadRequest},
		{"granularity above cap", "/api/booking/slots?date=2024-06-12&slotMinutes=121", http.StatusBadRequest},
		{"valid query", "/api/booking/slots?date=2024-06-12&timezone=America/New_York", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodGet, tt.path, nil)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (body: %s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestGetSlotsPayload(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/booking/slots?date=2024-06-12&timezone=UTC", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Date        string        `json:"date"`
		Timezone    string        `json:"timezone"`
		SlotMinutes int           `json:"slotMinutes"`
		Slots       []models.Slot `json:"slots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Date != "2024-06-12" || resp.Timezone != "UTC" || resp.SlotMinutes != 30 {
		t.Errorf("unexpected envelope: %+v", resp)
	}
	if len(resp.Slots) != 16 {
		t.Errorf("got %d slots, want 16", len(resp.Slots))
	}
}

func TestReservationLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter()

	// Missing required fields.
	w := doJSON(t, router, http.MethodPost, "/api/booking/reservations", map[string]any{
		"email": "alice@example.com",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing fields: status = %d, want 400", w.Code)
	}

	// Successful create.
	w = doJSON(t, router, http.MethodPost, "/api/booking/reservations", map[string]any{
		"name":     "Alice",
		"email":    "alice@example.com",
		"timezone": "America/New_York",
		"startUtc": "2024-06-12T14:00:00Z",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body: %s", w.Code, w.Body.String())
	}
	var created struct {
		Reservation models.Reservation `json:"reservation"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.Reservation.Status != models.ReservationConfirmed {
		t.Errorf("created status = %s, want confirmed", created.Reservation.Status)
	}

	// Overlapping create maps to 409, a different class than validation.
	w = doJSON(t, router, http.MethodPost, "/api/booking/reservations", map[string]any{
		"name":     "Bob",
		"email":    "bob@example.com",
		"startUtc": "2024-06-12T14:10:00Z",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("overlap: status = %d, want 409 (body: %s)", w.Code, w.Body.String())
	}

	// Case-insensitive email filter.
	w = doJSON(t, router, http.MethodGet, "/api/booking/reservations?email=Alice@Example.com", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: status = %d", w.Code)
	}
	var listed struct {
		Reservations []models.Reservation `json:"reservations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed.Reservations) != 1 {
		t.Errorf("listed %d reservations, want 1", len(listed.Reservations))
	}

	// Cancel, then cancel again: 200 then 404.
	cancelBody := map[string]any{"id": created.Reservation.ID}
	w = doJSON(t, router, http.MethodDelete, "/api/booking/reservations", cancelBody)
	if w.Code != http.StatusOK {
		t.Errorf("cancel: status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}
	w = doJSON(t, router, http.MethodDelete, "/api/booking/reservations", cancelBody)
	if w.Code != http.StatusNotFound {
		t.Errorf("double cancel: status = %d, want 404", w.Code)
	}

	// Unknown id and missing id.
	w = doJSON(t, router, http.MethodDelete, "/api/booking/reservations", map[string]any{"id": "no-such-id"})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown id: status = %d, want 404", w.Code)
	}
	w = doJSON(t, router, http.MethodDelete, "/api/booking/reservations", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing id: status = %d, want 400", w.Code)
	}

	// The cancelled slot shows as available again.
	w = doJSON(t, router, http.MethodGet, "/api/booking/slots?date=2024-06-12&timezone=UTC", nil)
	var slotsResp struct {
		Slots []models.Slot `json:"slots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &slotsResp); err != nil {
		t.Fatalf("decode slots response: %v", err)
	}
	for _, s := range slotsResp.Slots {
		if s.Status != models.SlotAvailable {
			t.Errorf("slot %s still %s after cancellation", s.StartUTC, s.Status)
		}
	}
}

func TestCreateReservationBadDuration(t *testing.T) {
	router := newTestRouter()

	for _, duration := range []int{0, -30, 241} {
		w := doJSON(t, router, http.MethodPost, "/api/booking/reservations", map[string]any{
			"name":            "Alice",
			"email":           "alice@example.com",
			"startUtc":        "2024-06-12T14:00:00Z",
			"durationMinutes": duration,
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("duration %d: status = %d, want 400", duration, w.Code)
		}
	}
}

func TestListReservationsEmptyIsNotNull(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/booking/reservations", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	want := fmt.Sprintf("%q:[]", "reservations")
	if !bytes.Contains(w.Body.Bytes(), []byte(want)) {
		t.Errorf("body = %s, want an empty array, not null", w.Body.String())
	}
}
