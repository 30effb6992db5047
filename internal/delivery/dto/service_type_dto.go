package dto

// Request DTOs

type CreateServiceTypeRequest struct {
	Code        string `json:"code" validate:"required,max=20"`
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Category    string `json:"category" validate:"required,oneof=LAB IMAGING CONSULT PROCEDURE THERAPY PHARMACY"`
}

// Response DTOs

type ServiceTypeResponse struct {
	ID          int    `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
}

type ServiceTypeListResponse struct {
	ServiceTypes []ServiceTypeResponse `json:"service_types"`
	Total        int                   `json:"total"`
}
