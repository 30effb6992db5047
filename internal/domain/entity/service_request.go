package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ServiceRequestStatus represents the scheduling state of a service request
type ServiceRequestStatus string

const (
	ServiceStatusScheduled ServiceRequestStatus = "SCHEDULED"
	ServiceStatusCompleted ServiceRequestStatus = "COMPLETED"
	ServiceStatusCancelled ServiceRequestStatus = "CANCELLED"
)

// ErrTerminalStatus is returned when a transition is attempted on a
// request that is already COMPLETED or CANCELLED.
var ErrTerminalStatus = errors.New("service request is already in a terminal status")

// ParseServiceRequestStatus matches the input case-insensitively against
// the known status values.
func ParseServiceRequestStatus(s string) (ServiceRequestStatus, bool) {
	switch ServiceRequestStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case ServiceStatusScheduled:
		return ServiceStatusScheduled, true
	case ServiceStatusCompleted:
		return ServiceStatusCompleted, true
	case ServiceStatusCancelled:
		return ServiceStatusCancelled, true
	}
	return "", false
}

// ServiceRequest links a patient, a service type and a facility with a
// scheduling status. SCHEDULED is the initial state; COMPLETED and
// CANCELLED are terminal. CreatedAt is immutable after insert.
type ServiceRequest struct {
	ID            int64                `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID     uuid.UUID            `gorm:"type:uuid;not null;index" json:"patient_id"`
	ServiceTypeID int                  `gorm:"not null;index" json:"service_type_id"`
	FacilityID    uuid.UUID            `gorm:"type:uuid;not null;index" json:"facility_id"`
	Status        ServiceRequestStatus `gorm:"type:varchar(20);not null;default:'SCHEDULED';index" json:"status"`
	ScheduledDate time.Time            `gorm:"not null;index" json:"scheduled_date"`
	CompletedDate *time.Time           `json:"completed_date,omitempty"`
	Notes         string               `gorm:"type:text" json:"notes,omitempty"`
	ProviderName  string               `gorm:"type:varchar(100)" json:"provider_name,omitempty"`
	CreatedAt     time.Time            `gorm:"autoCreateTime;<-:create" json:"created_at"`

	// Relationships
	Patient     *Patient     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	ServiceType *ServiceType `gorm:"foreignKey:ServiceTypeID" json:"service_type,omitempty"`
	Facility    *Facility    `gorm:"foreignKey:FacilityID" json:"facility,omitempty"`
}

func (ServiceRequest) TableName() string {
	return "service_requests"
}

// IsScheduled checks if the request is still in its initial state
func (s *ServiceRequest) IsScheduled() bool {
	return s.Status == ServiceStatusScheduled
}

// Complete transitions the request to COMPLETED and stamps the completion
// date. The completion date can only ever be set through this transition.
func (s *ServiceRequest) Complete(at time.Time) error {
	if !s.IsScheduled() {
		return ErrTerminalStatus
	}
	s.Status = ServiceStatusCompleted
	s.CompletedDate = &at
	return nil
}

// Cancel transitions the request to CANCELLED.
func (s *ServiceRequest) Cancel() error {
	if !s.IsScheduled() {
		return ErrTerminalStatus
	}
	s.Status = ServiceStatusCancelled
	return nil
}
