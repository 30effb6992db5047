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

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Register(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrFacilityNotFound:
			response.NotFound(w, "Facility not found")
		case usecase.ErrServiceTypeNotFound:
			response.NotFound(w, "Service type not found")
		case usecase.ErrMRNExists:
			response.Conflict(w, "Patient with this MRN already exists")
		case usecase.ErrInvalidGender:
			response.Error(w, http.StatusBadRequest, "Invalid gender, valid values are MALE, FEMALE, OTHER", nil)
		case usecase.ErrInvalidDateOfBirth:
			response.Error(w, http.StatusBadRequest, "Date of birth must be a valid date in the past", nil)
		default:
			response.InternalServerError(w, "Failed to register patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient registered successfully", patient)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	patient, err := h.patientUsecase.GetByID(r.Context(), patientID)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) GetPatientByMRN(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	patient, err := h.patientUsecase.GetByMRN(r.Context(), vars["mrn"])
	if err != nil {
		switch err {
		case usecase.ErrMRNRequired:
			response.Error(w, http.StatusBadRequest, "MRN is required", nil)
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

// SearchPatients searches a facility's patients by name or MRN. The
// facilityId query parameter is mandatory, search is optional, pages are
// zero-indexed.
func (h *PatientHandler) SearchPatients(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var facilityID *uuid.UUID
	if param := query.Get("facilityId"); param != "" {
		parsed, err := uuid.Parse(param)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid facility ID", nil)
			return
		}
		facilityID = &parsed
	}

	page, size := paginationParams(query.Get("page"), query.Get("size"))

	patients, total, err := h.patientUsecase.Search(r.Context(), facilityID, query.Get("search"), page, size)
	if err != nil {
		switch err {
		case usecase.ErrFacilityRequired:
			response.Error(w, http.StatusBadRequest, "facilityId query parameter is required", nil)
		case usecase.ErrFacilityNotFound:
			response.NotFound(w, "Facility not found")
		default:
			response.InternalServerError(w, "Failed to search patients")
		}
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Patients retrieved successfully", patients, pageMeta(page, size, total))
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Update(r.Context(), patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidGender:
			response.Error(w, http.StatusBadRequest, "Invalid gender, valid values are MALE, FEMALE, OTHER", nil)
		case usecase.ErrInvalidDateOfBirth:
			response.Error(w, http.StatusBadRequest, "Date of birth must be a valid date in the past", nil)
		default:
			response.InternalServerError(w, "Failed to update patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	if err := h.patientUsecase.Delete(r.Context(), patientID); err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to delete patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient deleted successfully", nil)
}
