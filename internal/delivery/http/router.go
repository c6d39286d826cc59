package http

import (
	"net/http"

	"clinic-management/internal/delivery/http/handler"
	"clinic-management/internal/delivery/http/middleware"
	"clinic-management/internal/domain/entity"
	"clinic-management/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	patientHandler      *handler.PatientHandler
	professionalHandler *handler.ProfessionalHandler
	appointmentHandler  *handler.AppointmentHandler
	encounterHandler    *handler.EncounterHandler
	billingHandler      *handler.BillingHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	professionalHandler *handler.ProfessionalHandler,
	appointmentHandler *handler.AppointmentHandler,
	encounterHandler *handler.EncounterHandler,
	billingHandler *handler.BillingHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		patientHandler:      patientHandler,
		professionalHandler: professionalHandler,
		appointmentHandler:  appointmentHandler,
		encounterHandler:    encounterHandler,
		billingHandler:      billingHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		loggingMiddleware:   loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Use(r.loggingMiddleware.Recover)
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	// Preflight requests match here so the CORS middleware can answer them.
	r.router.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, req *http.Request) {})

	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Session routes (public)
	r.router.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	r.router.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	api := r.router.PathPrefix("/api").Subrouter()
	api.Handle("/me", r.authMiddleware.Authenticate(http.HandlerFunc(r.authHandler.GetCurrentUser))).Methods(http.MethodGet)

	// Patients
	api.Handle("/pacientes", r.guard(entity.CapPatientRead, r.patientHandler.GetAllPatients)).Methods(http.MethodGet)
	api.Handle("/pacientes", r.guard(entity.CapPatientWrite, r.patientHandler.CreatePatient)).Methods(http.MethodPost)
	api.Handle("/pacientes/{id:[0-9]+}", r.guard(entity.CapPatientRead, r.patientHandler.GetPatient)).Methods(http.MethodGet)
	api.Handle("/pacientes/{id:[0-9]+}", r.guard(entity.CapPatientWrite, r.patientHandler.UpdatePatient)).Methods(http.MethodPut)
	api.Handle("/pacientes/{id:[0-9]+}", r.guard(entity.CapPatientWrite, r.patientHandler.DeletePatient)).Methods(http.MethodDelete)

	// Professionals
	api.Handle("/profissionais", r.guard(entity.CapProfessionalRead, r.professionalHandler.GetAllProfessionals)).Methods(http.MethodGet)
	api.Handle("/profissionais", r.guard(entity.CapProfessionalWrite, r.professionalHandler.CreateProfessional)).Methods(http.MethodPost)
	api.Handle("/profissionais/{id:[0-9]+}", r.guard(entity.CapProfessionalRead, r.professionalHandler.GetProfessional)).Methods(http.MethodGet)
	api.Handle("/profissionais/{id:[0-9]+}", r.guard(entity.CapProfessionalWrite, r.professionalHandler.UpdateProfessional)).Methods(http.MethodPut)
	api.Handle("/profissionais/{id:[0-9]+}", r.guard(entity.CapProfessionalWrite, r.professionalHandler.DeleteProfessional)).Methods(http.MethodDelete)

	// Appointments
	api.Handle("/consultas", r.guard(entity.CapAppointmentRead, r.appointmentHandler.GetAllAppointments)).Methods(http.MethodGet)
	api.Handle("/consultas", r.guard(entity.CapAppointmentWrite, r.appointmentHandler.CreateAppointment)).Methods(http.MethodPost)
	api.Handle("/consultas/historico", r.guard(entity.CapAppointmentRead, r.appointmentHandler.GetHistory)).Methods(http.MethodGet)
	api.Handle("/consultas/{id:[0-9]+}", r.guard(entity.CapAppointmentRead, r.appointmentHandler.GetAppointment)).Methods(http.MethodGet)
	api.Handle("/consultas/{id:[0-9]+}", r.guard(entity.CapAppointmentWrite, r.appointmentHandler.UpdateAppointment)).Methods(http.MethodPut)
	api.Handle("/consultas/{id:[0-9]+}", r.guard(entity.CapAppointmentWrite, r.appointmentHandler.UpdateStatus)).Methods(http.MethodPatch)
	api.Handle("/consultas/{id:[0-9]+}", r.guard(entity.CapAppointmentWrite, r.appointmentHandler.DeleteAppointment)).Methods(http.MethodDelete)

	// Encounters
	api.Handle("/atendimentos", r.guard(entity.CapEncounterRead, r.encounterHandler.GetAllEncounters)).Methods(http.MethodGet)
	api.Handle("/atendimentos", r.guard(entity.CapEncounterWrite, r.encounterHandler.CreateEncounter)).Methods(http.MethodPost)
	api.Handle("/atendimentos/{id:[0-9]+}", r.guard(entity.CapEncounterWrite, r.encounterHandler.UpdateEncounter)).Methods(http.MethodPut)
	api.Handle("/atendimentos/consulta/{consultaId:[0-9]+}", r.guard(entity.CapEncounterRead, r.encounterHandler.GetByAppointment)).Methods(http.MethodGet)
	api.Handle("/historicoConsultas", r.guard(entity.CapEncounterRead, r.encounterHandler.GetHistory)).Methods(http.MethodGet)
	api.Handle("/historicoConsultas/{pacienteId:[0-9]+}", r.guard(entity.CapEncounterRead, r.encounterHandler.GetHistory)).Methods(http.MethodGet)

	// Billing
	api.Handle("/financeiro", r.guard(entity.CapBillingRead, r.billingHandler.GetAllBillingEntries)).Methods(http.MethodGet)
	api.Handle("/financeiro/{id:[0-9]+}/pagar", r.guard(entity.CapBillingWrite, r.billingHandler.PayBillingEntry)).Methods(http.MethodPut)
	api.Handle("/financeiro/gerar/{consultaId:[0-9]+}", r.guard(entity.CapBillingWrite, r.billingHandler.GenerateBillingEntry)).Methods(http.MethodPost)

	// Audit trail (admin)
	api.Handle("/auditoria", r.guard(entity.CapAuditRead, r.auditLogHandler.GetAllAuditLogs)).Methods(http.MethodGet)
	api.Handle("/auditoria/{id:[0-9]+}", r.guard(entity.CapAuditRead, r.auditLogHandler.GetAuditLog)).Methods(http.MethodGet)

	return r.router
}

func (r *Router) guard(capability entity.Capability, h http.HandlerFunc) http.Handler {
	return r.authMiddleware.Require(capability)(h)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
