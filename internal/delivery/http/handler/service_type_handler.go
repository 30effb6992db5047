package handler

import (
	"encoding/json"
	"net/http"

	"emr-service/internal/delivery/dto"
	"emr-service/internal/usecase"
	"emr-service/pkg/response"
	"emr-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ServiceTypeHandler struct {
	serviceTypeUsecase usecase.ServiceTypeUsecase
	validator          *validator.CustomValidator
}

func NewServiceTypeHandler(serviceTypeUsecase usecase.ServiceTypeUsecase, validator *validator.CustomValidator) *ServiceTypeHandler {
	return &ServiceTypeHandler{
		serviceTypeUsecase: serviceTypeUsecase,
		validator:          validator,
	}
}

func (h *ServiceTypeHandler) CreateServiceType(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateServiceTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	serviceType, err := h.serviceTypeUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrServiceTypeCodeExists:
			response.Conflict(w, "Service type code already exists")
		case usecase.ErrInvalidServiceCategory:
			response.Error(w, http.StatusBadRequest, "Invalid service category", nil)
		default:
			response.InternalServerError(w, "Failed to create service type")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Service type created successfully", serviceType)
}

// GetServiceTypes lists all service types, optionally filtered by the
// category query parameter.
func (h *ServiceTypeHandler) GetServiceTypes(w http.ResponseWriter, r *http.Request) {
	serviceTypes, err := h.serviceTypeUsecase.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		if err == usecase.ErrInvalidServiceCategory {
			response.Error(w, http.StatusBadRequest, "Invalid service category", nil)
			return
		}
		response.InternalServerError(w, "Failed to get service types")
		return
	}

	response.Success(w, http.StatusOK, "Service types retrieved successfully", serviceTypes)
}

func (h *ServiceTypeHandler) GetServiceTypesByFacility(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid facility ID", nil)
		return
	}

	serviceTypes, err := h.serviceTypeUsecase.ListByFacility(r.Context(), facilityID)
	if err != nil {
		if err == usecase.ErrFacilityNotFound {
			response.NotFound(w, "Facility not found")
			return
		}
		response.InternalServerError(w, "Failed to get service types")
		return
	}

	response.Success(w, http.StatusOK, "Service types retrieved successfully", serviceTypes)
}
