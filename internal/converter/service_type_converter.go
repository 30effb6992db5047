package converter

import (
	"emr-service/internal/delivery/dto"
	"emr-service/internal/domain/entity"
)

// ServiceTypeToResponse converts a ServiceType entity to its DTO
func ServiceTypeToResponse(serviceType *entity.ServiceType) *dto.ServiceTypeResponse {
	if serviceType == nil {
		return nil
	}

	return &dto.ServiceTypeResponse{
		ID:          serviceType.ID,
		Code:        serviceType.Code,
		Name:        serviceType.Name,
		Description: serviceType.Description,
		Category:    string(serviceType.Category),
	}
}

// ServiceTypesToResponses converts a slice of ServiceType entities.
// Always returns a non-nil slice so the JSON shape stays stable.
func ServiceTypesToResponses(serviceTypes []entity.ServiceType) []dto.ServiceTypeResponse {
	responses := make([]dto.ServiceTypeResponse, len(serviceTypes))
	for i := range serviceTypes {
		responses[i] = *ServiceTypeToResponse(&serviceTypes[i])
	}
	return responses
}
