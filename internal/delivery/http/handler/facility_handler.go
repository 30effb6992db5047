package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"emr-service/internal/delivery/dto"
	"emr-service/internal/usecase"
	"emr-service/pkg/response"
	"emr-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type FacilityHandler struct {
	facilityUsecase       usecase.FacilityUsecase
	serviceRequestUsecase usecase.ServiceRequestUsecase
	validator             *validator.CustomValidator
}

func NewFacilityHandler(
	facilityUsecase usecase.FacilityUsecase,
	serviceRequestUsecase usecase.ServiceRequestUsecase,
	validator *validator.CustomValidator,
) *FacilityHandler {
	return &FacilityHandler{
		facilityUsecase:       facilityUsecase,
		serviceRequestUsecase: serviceRequestUsecase,
		validator:             validator,
	}
}

func (h *FacilityHandler) CreateFacility(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFacilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	facility, err := h.facilityUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrFacilityCodeExists:
			response.Conflict(w, "Facility code already exists")
		default:
			response.InternalServerError(w, "Failed to create facility")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Facility created successfully", facility)
}

func (h *FacilityHandler) GetFacility(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid facility ID", nil)
		return
	}

	facility, err := h.facilityUsecase.GetByID(r.Context(), facilityID)
	if err != nil {
		if err == usecase.ErrFacilityNotFound {
			response.NotFound(w, "Facility not found")
			return
		}
		response.InternalServerError(w, "Failed to get facility")
		return
	}

	response.Success(w, http.StatusOK, "Facility retrieved successfully", facility)
}

func (h *FacilityHandler) GetActiveFacilities(w http.ResponseWriter, r *http.Request) {
	facilities, err := h.facilityUsecase.ListActive(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get facilities")
		return
	}

	response.Success(w, http.StatusOK, "Facilities retrieved successfully", facilities)
}

func (h *FacilityHandler) AttachServiceType(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityID, err := uuid.Parse(vars["facilityId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid facility ID", nil)
		return
	}

	serviceTypeID, err := strconv.Atoi(vars["serviceTypeId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service type ID", nil)
		return
	}

	facility, err := h.facilityUsecase.AttachServiceType(r.Context(), facilityID, serviceTypeID)
	if err != nil {
		switch err {
		case usecase.ErrFacilityNotFound:
			response.NotFound(w, "Facility not found")
		case usecase.ErrServiceTypeNotFound:
			response.NotFound(w, "Service type not found")
		default:
			response.InternalServerError(w, "Failed to attach service type")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service type attached successfully", facility)
}

func (h *FacilityHandler) DeactivateFacility(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid facility ID", nil)
		return
	}

	facility, err := h.facilityUsecase.Deactivate(r.Context(), facilityID)
	if err != nil {
		if err == usecase.ErrFacilityNotFound {
			response.NotFound(w, "Facility not found")
			return
		}
		response.InternalServerError(w, "Failed to deactivate facility")
		return
	}

	response.Success(w, http.StatusOK, "Facility deactivated successfully", facility)
}

// GetFacilityServiceRequests lists a facility's service requests. With
// start and end query parameters it returns the inclusive date range,
// otherwise a paginated page.
func (h *FacilityHandler) GetFacilityServiceRequests(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid facility ID", nil)
		return
	}

	query := r.URL.Query()
	startParam := query.Get("start")
	endParam := query.Get("end")

	if startParam != "" || endParam != "" {
		start, err := time.Parse(time.RFC3339, startParam)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid start date, expected RFC 3339", nil)
			return
		}
		end, err := time.Parse(time.RFC3339, endParam)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid end date, expected RFC 3339", nil)
			return
		}

		requests, err := h.serviceRequestUsecase.GetByFacilityAndDateRange(r.Context(), facilityID, start, end)
		if err != nil {
			switch err {
			case usecase.ErrFacilityNotFound:
				response.NotFound(w, "Facility not found")
			case usecase.ErrInvalidDateRange:
				response.Error(w, http.StatusBadRequest, "Start date must not be after end date", nil)
			default:
				response.InternalServerError(w, "Failed to get service requests")
			}
			return
		}

		response.Success(w, http.StatusOK, "Service requests retrieved successfully", requests)
		return
	}

	page, size := paginationParams(query.Get("page"), query.Get("size"))

	requests, total, err := h.serviceRequestUsecase.GetByFacility(r.Context(), facilityID, page, size)
	if err != nil {
		if err == usecase.ErrFacilityNotFound {
			response.NotFound(w, "Facility not found")
			return
		}
		response.InternalServerError(w, "Failed to get service requests")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Service requests retrieved successfully", requests, pageMeta(page, size, total))
}
