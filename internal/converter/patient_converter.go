package converter

import (
	"emr-service/internal/delivery/dto"
	"emr-service/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to a PatientResponse DTO.
// The denormalized facility name is best effort: when the facility
// reference is not loaded or cannot be resolved, the name is omitted
// instead of failing the conversion.
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	resp := &dto.PatientResponse{
		ID:                    patient.ID,
		MRN:                   patient.MRN,
		FirstName:             patient.FirstName,
		LastName:              patient.LastName,
		Gender:                string(patient.Gender),
		DateOfBirth:           patient.DateOfBirth.Format(dto.DateOfBirthLayout),
		Email:                 patient.Email,
		Phone:                 patient.Phone,
		Address:               patient.Address,
		City:                  patient.City,
		State:                 patient.State,
		ZipCode:               patient.ZipCode,
		InsuranceProvider:     patient.InsuranceProvider,
		InsurancePolicyNumber: patient.InsurancePolicyNumber,
		InsuranceGroupNumber:  patient.InsuranceGroupNumber,
		FacilityID:            patient.FacilityID,
		CreatedAt:             patient.CreatedAt,
		UpdatedAt:             patient.UpdatedAt,
	}

	if patient.Facility != nil {
		resp.FacilityName = patient.Facility.Name
	}
	if len(patient.ServiceRequests) > 0 {
		resp.ServiceRequests = ServiceRequestsToResponses(patient.ServiceRequests)
	}

	return resp
}

// PatientsToResponses converts a slice of Patient entities
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
