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

type DeliveryHandler struct {
	Service *services.DeliveryService
}

func NewDeliveryHandler(s *services.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{Service: s}
}

func (h *DeliveryHandler) ListDeliveries(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.Service.ListDeliveries(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	if deliveries == nil {
		deliveries = []*models.Delivery{}
	}
	utils.JSON(w, http.StatusOK, deliveries)
}

func (h *DeliveryHandler) GetDelivery(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, apperrors.E(apperrors.ErrNotFound, "Delivery not found"))
		return
	}

	delivery, err := h.Service.GetDelivery(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, delivery)
}

func (h *DeliveryHandler) CreateDelivery(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	delivery, err := h.Service.CreateDelivery(r.Context(), &req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, delivery)
}

func (h *DeliveryHandler) UpdateDelivery(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, apperrors.E(apperrors.ErrNotFound, "Delivery not found"))
		return
	}

	var req models.UpdateDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	delivery, err := h.Service.UpdateDelivery(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, delivery)
}

// UpdateStatus handles the delivery board's narrow status transition
func (h *DeliveryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, apperrors.E(apperrors.ErrNotFound, "Delivery not found"))
		return
	}

	var req models.UpdateDeliveryStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	delivery, err := h.Service.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, delivery)
}

func (h *DeliveryHandler) DeleteDelivery(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, apperrors.E(apperrors.ErrNotFound, "Delivery not found"))
		return
	}

	if err := h.Service.DeleteDelivery(r.Context(), id); err != nil {
		utils.Error(w, err)
		return
	}
	utils.Message(w, http.StatusOK, "Delivery removed")
}
