package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"freight-backend/internal/apperrors"
	"freight-backend/internal/models"
	"freight-backend/internal/services"
	"freight-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type BookingHandler struct {
	Service *services.BookingService
}

func NewBookingHandler(s *services.BookingService) *BookingHandler {
	return &BookingHandler{Service: s}
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Service.ListBookings(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	if bookings == nil {
		bookings = []*models.Booking{}
	}
	utils.JSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, apperrors.E(apperrors.ErrNotFound, "Booking not found"))
		return
	}

	booking, err := h.Service.GetBooking(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.Service.CreateBooking(r.Context(), &req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, apperrors.E(apperrors.ErrNotFound, "Booking not found"))
		return
	}

	var req models.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.Service.UpdateBooking(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, apperrors.E(apperrors.ErrNotFound, "Booking not found"))
		return
	}

	if err := h.Service.DeleteBooking(r.Context(), id); err != nil {
		utils.Error(w, err)
		return
	}
	utils.Message(w, http.StatusOK, "Booking removed")
}
