package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freight-backend/internal/apperrors"
	"freight-backend/internal/models"
	"freight-backend/internal/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingStore struct {
	nextID   int
	bookings map[int]*models.Booking
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{nextID: 1, bookings: make(map[int]*models.Booking)}
}

func (f *fakeBookingStore) Create(ctx context.Context, b *models.Booking) error {
	for _, existing := range f.bookings {
		if existing.LRNumber == b.LRNumber {
			return apperrors.ErrConflict
		}
	}
	b.ID = f.nextID
	f.nextID++
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeBookingStore) Get(ctx context.Context, id int) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingStore) List(ctx context.Context) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range f.bookings {
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeBookingStore) ListBetween(ctx context.Context, from, to *time.Time, location string) ([]*models.Booking, error) {
	return f.List(ctx)
}

func (f *fakeBookingStore) Update(ctx context.Context, b *models.Booking) error {
	if _, ok := f.bookings[b.ID]; !ok {
		return apperrors.ErrNotFound
	}
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeBookingStore) Delete(ctx context.Context, id int) error {
	if _, ok := f.bookings[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.bookings, id)
	return nil
}

// newBookingRouter wires just the booking routes so mux.Vars resolve
func newBookingRouter() *mux.Router {
	h := NewBookingHandler(services.NewBookingService(newFakeBookingStore()))
	r := mux.NewRouter()
	r.HandleFunc("/api/bookings", h.ListBookings).Methods("GET")
	r.HandleFunc("/api/bookings", h.CreateBooking).Methods("POST")
	r.HandleFunc("/api/bookings/{id}", h.GetBooking).Methods("GET")
	r.HandleFunc("/api/bookings/{id}", h.UpdateBooking).Methods("PUT")
	r.HandleFunc("/api/bookings/{id}", h.DeleteBooking).Methods("DELETE")
	return r
}

func bookingPayload() map[string]interface{} {
	return map[string]interface{}{
		"lrNumber":        "LR-1001",
		"agentName":       "Ravi",
		"fromLocation":    "Hyderabad",
		"toLocation":      "Chennai",
		"senderCompany":   "Acme Traders",
		"senderMobile":    "9876543210",
		"senderGST":       "36AAAAA0000A1Z5",
		"receiverCompany": "Beta Mills",
		"receiverMobile":  "9123456780",
		"receiverGST":     "33BBBBB0000B1Z4",
		"material":        "Cotton bales",
		"qty":             10,
		"weight":          250.5,
		"freight":         1200,
		"total":           1250,
	}
}

func doRequest(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	return rec
}

func TestBookingCRUD(t *testing.T) {
	router := newBookingRouter()

	// Create
	rec := doRequest(t, router, http.MethodPost, "/api/bookings", bookingPayload())
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Booking
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "LR-1001", created.LRNumber)
	assert.Equal(t, "pending", created.Status)

	// Get
	rec = doRequest(t, router, http.MethodGet, "/api/bookings/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Update one field
	rec = doRequest(t, router, http.MethodPut, "/api/bookings/1", map[string]interface{}{
		"status": "confirmed",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated models.Booking
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
	assert.Equal(t, "confirmed", updated.Status)
	assert.Equal(t, "Acme Traders", updated.SenderCompany)

	// List
	rec = doRequest(t, router, http.MethodGet, "/api/bookings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []*models.Booking
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	assert.Len(t, list, 1)

	// Delete
	rec = doRequest(t, router, http.MethodDelete, "/api/bookings/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Booking removed")

	rec = doRequest(t, router, http.MethodGet, "/api/bookings/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBooking_DuplicateLR(t *testing.T) {
	router := newBookingRouter()

	rec := doRequest(t, router, http.MethodPost, "/api/bookings", bookingPayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/bookings", bookingPayload())
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "LR-1001")
}

func TestBooking_MissingFields(t *testing.T) {
	router := newBookingRouter()

	payload := bookingPayload()
	delete(payload, "lrNumber")
	rec := doRequest(t, router, http.MethodPost, "/api/bookings", payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBooking_NonNumericID(t *testing.T) {
	router := newBookingRouter()

	rec := doRequest(t, router, http.MethodGet, "/api/bookings/abc", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBooking_ListEmpty(t *testing.T) {
	router := newBookingRouter()

	rec := doRequest(t, router, http.MethodGet, "/api/bookings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}
