package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type ScheduleServiceRequest struct {
	PatientID     uuid.UUID  `json:"patient_id" validate:"required"`
	ServiceTypeID int        `json:"service_type_id" validate:"required"`
	FacilityID    uuid.UUID  `json:"facility_id" validate:"required"`
	ScheduledDate *time.Time `json:"scheduled_date" validate:"omitempty"`
	Notes         string     `json:"notes" validate:"omitempty,max=1000"`
	ProviderName  string     `json:"provider_name" validate:"omitempty,max=100"`
}

type UpdateServiceRequestStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Response DTOs

type ServiceRequestResponse struct {
	ID              int64      `json:"id"`
	PatientID       uuid.UUID  `json:"patient_id"`
	ServiceTypeID   int        `json:"service_type_id"`
	ServiceTypeCode string     `json:"service_type_code,omitempty"`
	ServiceTypeName string     `json:"service_type_name,omitempty"`
	FacilityID      uuid.UUID  `json:"facility_id"`
	Status          string     `json:"status"`
	ScheduledDate   time.Time  `json:"scheduled_date"`
	CompletedDate   *time.Time `json:"completed_date,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	ProviderName    string     `json:"provider_name,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type ServiceRequestListResponse struct {
	ServiceRequests []ServiceRequestResponse `json:"service_requests"`
	Total           int                      `json:"total"`
}
