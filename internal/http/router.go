package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"freight-backend/internal/handlers"
	"freight-backend/internal/middleware"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	bookingHandler *handlers.BookingHandler,
	loadingSheetHandler *handlers.LoadingSheetHandler,
	deliveryHandler *handlers.DeliveryHandler,
	reportHandler *handlers.ReportHandler,
	loginLogHandler *handlers.LoginLogHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public routes - Authentication
	r.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/auth/profile", authHandler.Profile).Methods("GET")
	r.HandleFunc("/api/auth/check-admin", authHandler.CheckAdmin).Methods("GET")

	// Agent management - admin only
	r.Handle("/api/auth/create-agent", authMiddleware.RequireAdmin(http.HandlerFunc(authHandler.CreateAgent))).Methods("POST")
	r.Handle("/api/auth/agents", authMiddleware.RequireAdmin(http.HandlerFunc(authHandler.ListAgents))).Methods("GET")
	r.Handle("/api/auth/agents/{id}", authMiddleware.RequireAdmin(http.HandlerFunc(authHandler.UpdateAgent))).Methods("PUT")
	r.Handle("/api/auth/agents/{id}", authMiddleware.RequireAdmin(http.HandlerFunc(authHandler.DeactivateAgent))).Methods("DELETE")

	// Protected API routes - Bookings
	bookingsAPI := r.PathPrefix("/api/bookings").Subrouter()
	bookingsAPI.Use(authMiddleware.Authenticate)
	bookingsAPI.HandleFunc("", bookingHandler.ListBookings).Methods("GET")
	bookingsAPI.HandleFunc("", bookingHandler.CreateBooking).Methods("POST")
	bookingsAPI.HandleFunc("/{id}", bookingHandler.GetBooking).Methods("GET")
	bookingsAPI.HandleFunc("/{id}", bookingHandler.UpdateBooking).Methods("PUT")
	bookingsAPI.HandleFunc("/{id}", bookingHandler.DeleteBooking).Methods("DELETE")

	// Protected API routes - Loading Sheets
	sheetsAPI := r.PathPrefix("/api/loading-sheets").Subrouter()
	sheetsAPI.Use(authMiddleware.Authenticate)
	sheetsAPI.HandleFunc("", loadingSheetHandler.ListLoadingSheets).Methods("GET")
	sheetsAPI.HandleFunc("", loadingSheetHandler.CreateLoadingSheet).Methods("POST")
	sheetsAPI.HandleFunc("/{id}", loadingSheetHandler.GetLoadingSheet).Methods("GET")
	sheetsAPI.HandleFunc("/{id}", loadingSheetHandler.UpdateLoadingSheet).Methods("PUT")
	sheetsAPI.HandleFunc("/{id}", loadingSheetHandler.DeleteLoadingSheet).Methods("DELETE")
	sheetsAPI.HandleFunc("/{id}/pdf", loadingSheetHandler.ManifestPDF).Methods("GET")

	// Protected API routes - Deliveries
	deliveriesAPI := r.PathPrefix("/api/deliveries").Subrouter()
	deliveriesAPI.Use(authMiddleware.Authenticate)
	deliveriesAPI.HandleFunc("", deliveryHandler.ListDeliveries).Methods("GET")
	deliveriesAPI.HandleFunc("", deliveryHandler.CreateDelivery).Methods("POST")
	deliveriesAPI.HandleFunc("/{id}", deliveryHandler.GetDelivery).Methods("GET")
	deliveriesAPI.HandleFunc("/{id}", deliveryHandler.UpdateDelivery).Methods("PUT")
	deliveriesAPI.HandleFunc("/{id}/status", deliveryHandler.UpdateStatus).Methods("PATCH")
	deliveriesAPI.HandleFunc("/{id}", deliveryHandler.DeleteDelivery).Methods("DELETE")

	// Reports and audit - admin only
	r.Handle("/api/reports/bookings.csv", authMiddleware.RequireAdmin(http.HandlerFunc(reportHandler.BookingsCSV))).Methods("GET")
	r.Handle("/api/login-logs", authMiddleware.RequireAdmin(http.HandlerFunc(loginLogHandler.List))).Methods("GET")

	// Health and metrics
	r.HandleFunc("/api/health", healthHandler.Liveness).Methods("GET")
	r.HandleFunc("/api/health/ready", healthHandler.Readiness).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}
