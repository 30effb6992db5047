package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateFacilityRequest struct {
	Code    string `json:"code" validate:"required,max=20"`
	Name    string `json:"name" validate:"required,max=100"`
	Address string `json:"address" validate:"omitempty,max=500"`
	City    string `json:"city" validate:"omitempty,max=100"`
	State   string `json:"state" validate:"omitempty,max=50"`
	ZipCode string `json:"zip_code" validate:"omitempty,max=20"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// Response DTOs

type FacilityResponse struct {
	ID        uuid.UUID             `json:"id"`
	Code      string                `json:"code"`
	Name      string                `json:"name"`
	Address   string                `json:"address,omitempty"`
	City      string                `json:"city,omitempty"`
	State     string                `json:"state,omitempty"`
	ZipCode   string                `json:"zip_code,omitempty"`
	Phone     string                `json:"phone,omitempty"`
	Email     string                `json:"email,omitempty"`
	Active    bool                  `json:"active"`
	Services  []ServiceTypeResponse `json:"services"`
	CreatedAt time.Time             `json:"created_at"`
}

type FacilityListResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
	Total      int                `json:"total"`
}
