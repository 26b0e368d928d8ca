package handlers

import (
	"net/http"
	"time"

	"freight-backend/internal/apperrors"
	"freight-backend/internal/services"
	"freight-backend/internal/timeutil"
	"freight-backend/pkg/utils"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(s *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: s}
}

// BookingsCSV exports filtered bookings with a totals row.
// Query params: from, to (YYYY-MM-DD, IST), location.
func (h *ReportHandler) BookingsCSV(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var from, to *time.Time
	if v := q.Get("from"); v != "" {
		t, err := time.ParseInLocation(timeutil.DateLayout, v, timeutil.IST)
		if err != nil {
			utils.Error(w, apperrors.E(apperrors.ErrValidation, "Invalid from date, expected YYYY-MM-DD"))
			return
		}
		t = timeutil.StartOfDay(t)
		from = &t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.ParseInLocation(timeutil.DateLayout, v, timeutil.IST)
		if err != nil {
			utils.Error(w, apperrors.E(apperrors.ErrValidation, "Invalid to date, expected YYYY-MM-DD"))
			return
		}
		t = timeutil.EndOfDay(t)
		to = &t
	}

	data, err := h.Service.GenerateBookingsCSV(r.Context(), from, to, q.Get("location"))
	if err != nil {
		utils.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="bookings.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
