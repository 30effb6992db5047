package dto

import (
	"time"

	"github.com/google/uuid"
)

// DateOfBirthLayout is the wire format for patient dates of birth.
const DateOfBirthLayout = "2006-01-02"

// Request DTOs

type RequestedService struct {
	ServiceTypeID int        `json:"service_type_id" validate:"required"`
	ScheduledDate *time.Time `json:"scheduled_date" validate:"omitempty"`
	Notes         string     `json:"notes" validate:"omitempty,max=1000"`
	ProviderName  string     `json:"provider_name" validate:"omitempty,max=100"`
}

type CreatePatientRequest struct {
	MRN         string `json:"mrn" validate:"omitempty,max=20"`
	FirstName   string `json:"first_name" validate:"required,max=50"`
	LastName    string `json:"last_name" validate:"required,max=50"`
	Gender      string `json:"gender" validate:"required"`
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`

	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Address string `json:"address" validate:"omitempty,max=500"`
	City    string `json:"city" validate:"omitempty,max=100"`
	State   string `json:"state" validate:"omitempty,max=50"`
	ZipCode string `json:"zip_code" validate:"omitempty,max=20"`

	InsuranceProvider     string `json:"insurance_provider" validate:"omitempty,max=100"`
	InsurancePolicyNumber string `json:"insurance_policy_number" validate:"omitempty,max=50"`
	InsuranceGroupNumber  string `json:"insurance_group_number" validate:"omitempty,max=50"`

	FacilityID uuid.UUID `json:"facility_id" validate:"required"`

	RequestedServices []RequestedService `json:"requested_services" validate:"omitempty,dive"`
}

// UpdatePatientRequest carries the mutable demographic and insurance
// fields. MRN and facility association are never changed by an update.
type UpdatePatientRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=50"`
	LastName    string `json:"last_name" validate:"required,max=50"`
	Gender      string `json:"gender" validate:"required"`
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`

	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Address string `json:"address" validate:"omitempty,max=500"`
	City    string `json:"city" validate:"omitempty,max=100"`
	State   string `json:"state" validate:"omitempty,max=50"`
	ZipCode string `json:"zip_code" validate:"omitempty,max=20"`

	InsuranceProvider     string `json:"insurance_provider" validate:"omitempty,max=100"`
	InsurancePolicyNumber string `json:"insurance_policy_number" validate:"omitempty,max=50"`
	InsuranceGroupNumber  string `json:"insurance_group_number" validate:"omitempty,max=50"`
}

// Response DTOs

type PatientResponse struct {
	ID          uuid.UUID `json:"id"`
	MRN         string    `json:"mrn"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Gender      string    `json:"gender"`
	DateOfBirth string    `json:"date_of_birth"`

	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`

	InsuranceProvider     string `json:"insurance_provider,omitempty"`
	InsurancePolicyNumber string `json:"insurance_policy_number,omitempty"`
	InsuranceGroupNumber  string `json:"insurance_group_number,omitempty"`

	FacilityID uuid.UUID `json:"facility_id"`
	// FacilityName is denormalized for display; empty when the facility
	// reference could not be resolved.
	FacilityName string `json:"facility_name,omitempty"`

	ServiceRequests []ServiceRequestResponse `json:"service_requests,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
