package converter

import (
	"emr-service/internal/delivery/dto"
	"emr-service/internal/domain/entity"
)

// ServiceRequestToResponse converts a ServiceRequest entity to its DTO.
// Service type code/name are filled in when the association is loaded.
func ServiceRequestToResponse(request *entity.ServiceRequest) *dto.ServiceRequestResponse {
	if request == nil {
		return nil
	}

	resp := &dto.ServiceRequestResponse{
		ID:            request.ID,
		PatientID:     request.PatientID,
		ServiceTypeID: request.ServiceTypeID,
		FacilityID:    request.FacilityID,
		Status:        string(request.Status),
		ScheduledDate: request.ScheduledDate,
		CompletedDate: request.CompletedDate,
		Notes:         request.Notes,
		ProviderName:  request.ProviderName,
		CreatedAt:     request.CreatedAt,
	}

	if request.ServiceType != nil {
		resp.ServiceTypeCode = request.ServiceType.Code
		resp.ServiceTypeName = request.ServiceType.Name
	}

	return resp
}

// ServiceRequestsToResponses converts a slice of ServiceRequest entities
func ServiceRequestsToResponses(requests []entity.ServiceRequest) []dto.ServiceRequestResponse {
	responses := make([]dto.ServiceRequestResponse, len(requests))
	for i := range requests {
		responses[i] = *ServiceRequestToResponse(&requests[i])
	}
	return responses
}
