package converter

import (
	"emr-service/internal/delivery/dto"
	"emr-service/internal/domain/entity"
)

// FacilityToResponse converts a Facility entity to a FacilityResponse DTO
func FacilityToResponse(facility *entity.Facility) *dto.FacilityResponse {
	if facility == nil {
		return nil
	}

	return &dto.FacilityResponse{
		ID:        facility.ID,
		Code:      facility.Code,
		Name:      facility.Name,
		Address:   facility.Address,
		City:      facility.City,
		State:     facility.State,
		ZipCode:   facility.ZipCode,
		Phone:     facility.Phone,
		Email:     facility.Email,
		Active:    facility.Active,
		Services:  ServiceTypesToResponses(facility.Services),
		CreatedAt: facility.CreatedAt,
	}
}

// FacilitiesToResponses converts a slice of Facility entities
func FacilitiesToResponses(facilities []entity.Facility) []dto.FacilityResponse {
	responses := make([]dto.FacilityResponse, len(facilities))
	for i := range facilities {
		responses[i] = *FacilityToResponse(&facilities[i])
	}
	return responses
}
