package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"freight-backend/internal/apperrors"
	"freight-backend/internal/models"
	"freight-backend/internal/services"
	"freight-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type LoadingSheetHandler struct {
	Service *services.LoadingSheetService
	Reports *services.ReportService
}

func NewLoadingSheetHandler(s *services.LoadingSheetService, reports *services.ReportService) *LoadingSheetHandler {
	return &LoadingSheetHandler{Service: s, Reports: reports}
}

func (h *LoadingSheetHandler) ListLoadingSheets(w http.ResponseWriter, r *http.Request) {
	sheets, err := h.Service.ListLoadingSheets(r.Context())
	if err != nil {
		utils.Error(w, err)
		return
	}
	if sheets == nil {
		sheets = []*models.LoadingSheet{}
	}
	utils.JSON(w, http.StatusOK, sheets)
}

func (h *LoadingSheetHandler) GetLoadingSheet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, apperrors.E(apperrors.ErrNotFound, "Loading sheet not found"))
		return
	}

	sheet, err := h.Service.GetLoadingSheet(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, sheet)
}

func (h *LoadingSheetHandler) CreateLoadingSheet(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLoadingSheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sheet, err := h.Service.CreateLoadingSheet(r.Context(), &req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, sheet)
}

func (h *LoadingSheetHandler) UpdateLoadingSheet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, apperrors.E(apperrors.ErrNotFound, "Loading sheet not found"))
		return
	}

	var req models.UpdateLoadingSheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sheet, err := h.Service.UpdateLoadingSheet(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, sheet)
}

func (h *LoadingSheetHandler) DeleteLoadingSheet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, apperrors.E(apperrors.ErrNotFound, "Loading sheet not found"))
		return
	}

	if err := h.Service.DeleteLoadingSheet(r.Context(), id); err != nil {
		utils.Error(w, err)
		return
	}
	utils.Message(w, http.StatusOK, "Loading sheet removed")
}

// ManifestPDF streams the printable manifest for one loading sheet
func (h *LoadingSheetHandler) ManifestPDF(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, apperrors.E(apperrors.ErrNotFound, "Loading sheet not found"))
		return
	}

	pdf, err := h.Reports.GenerateLoadingSheetPDF(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="loading-sheet-%d.pdf"`, id))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
