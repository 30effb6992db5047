package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"emr-service/internal/delivery/dto"
	"emr-service/internal/usecase"
	"emr-service/pkg/response"
	"emr-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ServiceRequestHandler struct {
	serviceRequestUsecase usecase.ServiceRequestUsecase
	validator             *validator.CustomValidator
}

func NewServiceRequestHandler(serviceRequestUsecase usecase.ServiceRequestUsecase, validator *validator.CustomValidator) *ServiceRequestHandler {
	return &ServiceRequestHandler{
		serviceRequestUsecase: serviceRequestUsecase,
		validator:             validator,
	}
}

func (h *ServiceRequestHandler) ScheduleServiceRequest(w http.ResponseWriter, r *http.Request) {
	var req dto.ScheduleServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := h.serviceRequestUsecase.Schedule(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrServiceTypeNotFound:
			response.NotFound(w, "Service type not found")
		case usecase.ErrFacilityNotFound:
			response.NotFound(w, "Facility not found")
		default:
			response.InternalServerError(w, "Failed to schedule service request")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Service request scheduled successfully", request)
}

// GetPatientServiceRequests lists a patient's service requests, optionally
// filtered by the status query parameter.
func (h *ServiceRequestHandler) GetPatientServiceRequests(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	status := r.URL.Query().Get("status")

	var requests []dto.ServiceRequestResponse
	if status != "" {
		requests, err = h.serviceRequestUsecase.GetByPatientAndStatus(r.Context(), patientID, status)
	} else {
		requests, err = h.serviceRequestUsecase.GetByPatient(r.Context(), patientID)
	}
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, "Invalid status, valid values are SCHEDULED, COMPLETED, CANCELLED", nil)
		default:
			response.InternalServerError(w, "Failed to get service requests")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service requests retrieved successfully", requests)
}

func (h *ServiceRequestHandler) UpdateServiceRequestStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service request ID", nil)
		return
	}

	var req dto.UpdateServiceRequestStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := h.serviceRequestUsecase.UpdateStatus(r.Context(), requestID, &req)
	if err != nil {
		switch err {
		case usecase.ErrServiceRequestNotFound:
			response.NotFound(w, "Service request not found")
		case usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, "Invalid status, valid values are SCHEDULED, COMPLETED, CANCELLED", nil)
		case usecase.ErrInvalidStatusTransition:
			response.Conflict(w, "Service request status cannot be changed")
		default:
			response.InternalServerError(w, "Failed to update service request status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service request status updated successfully", request)
}
