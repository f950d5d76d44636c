package http

import (
	"net/http"

	"go-medical-booking/internal/delivery/http/handler"
	"go-medical-booking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	availabilityHandler *handler.AvailabilityHandler
	workloadHandler     *handler.WorkloadHandler
	scheduleHandler     *handler.ScheduleHandler
	exceptionHandler    *handler.ExceptionHandler
	appointmentHandler  *handler.AppointmentHandler
	directoryHandler    *handler.DirectoryHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	loginLimiter        *middleware.RateLimiter
}

type RouterHandlers struct {
	Auth         *handler.AuthHandler
	Availability *handler.AvailabilityHandler
	Workload     *handler.WorkloadHandler
	Schedule     *handler.ScheduleHandler
	Exception    *handler.ExceptionHandler
	Appointment  *handler.AppointmentHandler
	Directory    *handler.DirectoryHandler
	AuditLog     *handler.AuditLogHandler
}

func NewRouter(
	handlers RouterHandlers,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loginLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         handlers.Auth,
		availabilityHandler: handlers.Availability,
		workloadHandler:     handlers.Workload,
		scheduleHandler:     handlers.Schedule,
		exceptionHandler:    handlers.Exception,
		appointmentHandler:  handlers.Appointment,
		directoryHandler:    handlers.Directory,
		auditLogHandler:     handlers.AuditLog,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		loginLimiter:        loginLimiter,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(middleware.Metrics)

	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.Handle("/login", r.loginLimiter.Handle(http.HandlerFunc(r.authHandler.Login))).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Authenticated routes, access is decided per resource in the usecases
	authed := api.NewRoute().Subrouter()
	authed.Use(r.authMiddleware.Authenticate)
	authed.HandleFunc("/auth/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authed.HandleFunc("/auth/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	authed.HandleFunc("/providers/{id}/availability", r.availabilityHandler.GetAvailability).Methods(http.MethodGet)
	authed.HandleFunc("/providers/{id}/blackout", r.availabilityHandler.GetBlackout).Methods(http.MethodGet)
	authed.HandleFunc("/providers/{id}/day", r.availabilityHandler.GetDayAvailability).Methods(http.MethodGet)
	authed.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	authed.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	authed.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	authed.HandleFunc("/appointments/{id}/status", r.appointmentHandler.TransitionStatus).Methods(http.MethodPatch)
	authed.HandleFunc("/appointments/{id}/history", r.appointmentHandler.ListHistory).Methods(http.MethodGet)
	authed.HandleFunc("/patients/{id}/upcoming-appointments", r.appointmentHandler.GetUpcomingForPatient).Methods(http.MethodGet)

	// Staff routes (admin, doctor, registrar)
	staff := api.NewRoute().Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)
	staff.HandleFunc("/providers/{id}/conflicts", r.availabilityHandler.CheckConflict).Methods(http.MethodGet)
	staff.HandleFunc("/providers/{id}/workload", r.workloadHandler.GetProviderWorkload).Methods(http.MethodGet)
	staff.HandleFunc("/providers/{id}/no-show-rate", r.workloadHandler.GetNoShowRate).Methods(http.MethodGet)
	staff.HandleFunc("/providers/{id}/affected-appointments", r.exceptionHandler.AffectedAppointments).Methods(http.MethodGet)
	staff.HandleFunc("/providers/{id}/exceptions", r.exceptionHandler.ListExceptions).Methods(http.MethodGet)
	staff.HandleFunc("/appointments/{id}/time", r.appointmentHandler.UpdateAppointmentTime).Methods(http.MethodPut)

	// Directory routes (admin, registrar)
	directory := api.NewRoute().Subrouter()
	directory.Use(r.authMiddleware.Authenticate)
	directory.Use(middleware.RequireAdminOrRegistrar)
	directory.HandleFunc("/patients", r.directoryHandler.CreatePatient).Methods(http.MethodPost)
	directory.HandleFunc("/patients/{id}", r.directoryHandler.GetPatient).Methods(http.MethodGet)
	directory.HandleFunc("/providers", r.directoryHandler.CreateProvider).Methods(http.MethodPost)
	directory.HandleFunc("/providers/{id}", r.directoryHandler.GetProvider).Methods(http.MethodGet)
	directory.HandleFunc("/providers/{id}/services", r.directoryHandler.AssignService).Methods(http.MethodPost)
	directory.HandleFunc("/services", r.directoryHandler.CreateService).Methods(http.MethodPost)
	directory.HandleFunc("/services/{id}", r.directoryHandler.GetService).Methods(http.MethodGet)

	// Admin routes
	admin := api.NewRoute().Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/workload", r.workloadHandler.GetClinicWorkload).Methods(http.MethodGet)

	admin.HandleFunc("/schedules", r.scheduleHandler.CreateSchedule).Methods(http.MethodPost)
	admin.HandleFunc("/schedules/{id}", r.scheduleHandler.GetSchedule).Methods(http.MethodGet)
	admin.HandleFunc("/schedules/{id}", r.scheduleHandler.UpdateSchedule).Methods(http.MethodPut)
	admin.HandleFunc("/schedules/{id}", r.scheduleHandler.DeleteSchedule).Methods(http.MethodDelete)
	admin.HandleFunc("/providers/{id}/schedules", r.scheduleHandler.GetSchedulesByProvider).Methods(http.MethodGet)

	admin.HandleFunc("/exceptions", r.exceptionHandler.CreateException).Methods(http.MethodPost)
	admin.HandleFunc("/exceptions/{id}", r.exceptionHandler.GetException).Methods(http.MethodGet)
	admin.HandleFunc("/exceptions/{id}", r.exceptionHandler.DeleteException).Methods(http.MethodDelete)

	admin.HandleFunc("/audit-logs", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
