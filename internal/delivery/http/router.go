package http

import (
	"net/http"

	"vetclinic-backend/internal/delivery/http/handler"
	"vetclinic-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	veterinaryHandler    *handler.VeterinaryHandler
	petHandler           *handler.PetHandler
	scheduleHandler      *handler.ScheduleHandler
	appointmentHandler   *handler.AppointmentHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	veterinaryHandler *handler.VeterinaryHandler,
	petHandler *handler.PetHandler,
	scheduleHandler *handler.ScheduleHandler,
	appointmentHandler *handler.AppointmentHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		veterinaryHandler:    veterinaryHandler,
		petHandler:           petHandler,
		scheduleHandler:      scheduleHandler,
		appointmentHandler:   appointmentHandler,
		medicalRecordHandler: medicalRecordHandler,
		auditLogHandler:      auditLogHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/customer", r.authHandler.RegisterCustomer).Methods(http.MethodPost)
	auth.HandleFunc("/register/veterinary", r.authHandler.RegisterVeterinary).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Veterinary directory (any authenticated user)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("/veterinaries", r.veterinaryHandler.ListVeterinaries).Methods(http.MethodGet)
	protected.HandleFunc("/veterinaries/{id}", r.veterinaryHandler.GetVeterinary).Methods(http.MethodGet)
	protected.HandleFunc("/veterinaries/{id}/schedule", r.scheduleHandler.GetVeterinaryWeek).Methods(http.MethodGet)
	protected.HandleFunc("/veterinaries/{id}/slots", r.scheduleHandler.GetAvailableSlots).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/pets/{id}", r.petHandler.GetPet).Methods(http.MethodGet)
	protected.HandleFunc("/pets/{id}/records", r.medicalRecordHandler.ListPetRecords).Methods(http.MethodGet)
	protected.HandleFunc("/records/{id}", r.medicalRecordHandler.GetMedicalRecord).Methods(http.MethodGet)
	protected.HandleFunc("/records/{id}/evaluation", r.medicalRecordHandler.EvaluateAnalysis).Methods(http.MethodGet)

	// Customer routes (protected - customer only)
	customer := api.PathPrefix("/customer").Subrouter()
	customer.Use(r.authMiddleware.Authenticate)
	customer.Use(middleware.RequireCustomer)
	customer.HandleFunc("/join-clinic", r.veterinaryHandler.JoinClinic).Methods(http.MethodPost)
	customer.HandleFunc("/pets", r.petHandler.CreatePet).Methods(http.MethodPost)
	customer.HandleFunc("/pets", r.petHandler.ListMyPets).Methods(http.MethodGet)
	customer.HandleFunc("/pets/{id}", r.petHandler.UpdatePet).Methods(http.MethodPut)
	customer.HandleFunc("/pets/{id}", r.petHandler.DeactivatePet).Methods(http.MethodDelete)
	customer.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	customer.HandleFunc("/appointments", r.appointmentHandler.ListMyAppointments).Methods(http.MethodGet)
	customer.HandleFunc("/appointments/upcoming", r.appointmentHandler.ListUpcomingAppointments).Methods(http.MethodGet)

	// Veterinary routes (protected - veterinary only)
	veterinary := api.PathPrefix("/veterinary").Subrouter()
	veterinary.Use(r.authMiddleware.Authenticate)
	veterinary.Use(middleware.RequireVeterinary)
	veterinary.HandleFunc("/schedule", r.scheduleHandler.GetMyWeek).Methods(http.MethodGet)
	veterinary.HandleFunc("/schedule", r.scheduleHandler.ReplaceWeek).Methods(http.MethodPut)
	veterinary.HandleFunc("/schedule/day", r.scheduleHandler.SetDay).Methods(http.MethodPost)
	veterinary.HandleFunc("/schedule/day/{weekday}", r.scheduleHandler.GetDay).Methods(http.MethodGet)
	veterinary.HandleFunc("/customers", r.veterinaryHandler.ListCustomers).Methods(http.MethodGet)
	veterinary.HandleFunc("/pets", r.petHandler.ListClinicPets).Methods(http.MethodGet)
	veterinary.HandleFunc("/appointments", r.appointmentHandler.ListVeterinaryAppointments).Methods(http.MethodGet)
	veterinary.HandleFunc("/appointments/pending", r.appointmentHandler.ListPendingAppointments).Methods(http.MethodGet)
	veterinary.HandleFunc("/appointments/today", r.appointmentHandler.ListTodayAppointments).Methods(http.MethodGet)
	veterinary.HandleFunc("/appointments/{id}/approve", r.appointmentHandler.ApproveAppointment).Methods(http.MethodPost)
	veterinary.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.CompleteAppointment).Methods(http.MethodPost)
	veterinary.HandleFunc("/records", r.medicalRecordHandler.CreateMedicalRecord).Methods(http.MethodPost)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
