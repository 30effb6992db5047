package http

import (
	"net/http"

	"emr-service/internal/delivery/http/handler"
	"emr-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	facilityHandler       *handler.FacilityHandler
	serviceTypeHandler    *handler.ServiceTypeHandler
	patientHandler        *handler.PatientHandler
	serviceRequestHandler *handler.ServiceRequestHandler
	loggingMiddleware     *middleware.LoggingMiddleware
	corsMiddleware        *middleware.CORSMiddleware
}

func NewRouter(
	facilityHandler *handler.FacilityHandler,
	serviceTypeHandler *handler.ServiceTypeHandler,
	patientHandler *handler.PatientHandler,
	serviceRequestHandler *handler.ServiceRequestHandler,
	loggingMiddleware *middleware.LoggingMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		facilityHandler:       facilityHandler,
		serviceTypeHandler:    serviceTypeHandler,
		patientHandler:        patientHandler,
		serviceRequestHandler: serviceRequestHandler,
		loggingMiddleware:     loggingMiddleware,
		corsMiddleware:        corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Facility catalog
	api.HandleFunc("/facilities", r.facilityHandler.CreateFacility).Methods(http.MethodPost)
	api.HandleFunc("/facilities", r.facilityHandler.GetActiveFacilities).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{id}", r.facilityHandler.GetFacility).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{id}", r.facilityHandler.DeactivateFacility).Methods(http.MethodDelete)
	api.HandleFunc("/facilities/{facilityId}/services/{serviceTypeId}", r.facilityHandler.AttachServiceType).Methods(http.MethodPost)
	api.HandleFunc("/facilities/{id}/service-types", r.serviceTypeHandler.GetServiceTypesByFacility).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{id}/service-requests", r.facilityHandler.GetFacilityServiceRequests).Methods(http.MethodGet)

	// Service type catalog
	api.HandleFunc("/service-types", r.serviceTypeHandler.CreateServiceType).Methods(http.MethodPost)
	api.HandleFunc("/service-types", r.serviceTypeHandler.GetServiceTypes).Methods(http.MethodGet)

	// Patient management
	api.HandleFunc("/patients", r.patientHandler.RegisterPatient).Methods(http.MethodPost)
	api.HandleFunc("/patients/search", r.patientHandler.SearchPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients/mrn/{mrn}", r.patientHandler.GetPatientByMRN).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	api.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)
	api.HandleFunc("/patients/{id}/service-requests", r.serviceRequestHandler.GetPatientServiceRequests).Methods(http.MethodGet)

	// Service request ledger
	api.HandleFunc("/service-requests", r.serviceRequestHandler.ScheduleServiceRequest).Methods(http.MethodPost)
	api.HandleFunc("/service-requests/{id}/status", r.serviceRequestHandler.UpdateServiceRequestStatus).Methods(http.MethodPatch)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
