package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Gender enumerates the accepted patient gender values
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// ParseGender matches the input case-insensitively against the accepted
// gender values. The second return value is false for unknown input.
func ParseGender(s string) (Gender, bool) {
	switch Gender(strings.ToUpper(strings.TrimSpace(s))) {
	case GenderMale:
		return GenderMale, true
	case GenderFemale:
		return GenderFemale, true
	case GenderOther:
		return GenderOther, true
	}
	return "", false
}

// Patient is a registered patient record. The MRN is the externally
// meaningful business identifier, globally unique and derived from the
// owning facility's code. The facility association is set at registration
// and never changed afterwards.
type Patient struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	MRN         string    `gorm:"column:mrn;type:varchar(20);uniqueIndex;not null" json:"mrn"`
	FirstName   string    `gorm:"type:varchar(50);not null;index:idx_patients_name" json:"first_name"`
	LastName    string    `gorm:"type:varchar(50);not null;index:idx_patients_name" json:"last_name"`
	Gender      Gender    `gorm:"type:varchar(10);not null" json:"gender"`
	DateOfBirth time.Time `gorm:"type:date;not null" json:"date_of_birth"`

	Email   string `gorm:"type:varchar(100)" json:"email,omitempty"`
	Phone   string `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Address string `gorm:"type:varchar(500)" json:"address,omitempty"`
	City    string `gorm:"type:varchar(100)" json:"city,omitempty"`
	State   string `gorm:"type:varchar(50)" json:"state,omitempty"`
	ZipCode string `gorm:"type:varchar(20)" json:"zip_code,omitempty"`

	InsuranceProvider     string `gorm:"type:varchar(100)" json:"insurance_provider,omitempty"`
	InsurancePolicyNumber string `gorm:"type:varchar(50)" json:"insurance_policy_number,omitempty"`
	InsuranceGroupNumber  string `gorm:"type:varchar(50)" json:"insurance_group_number,omitempty"`

	FacilityID uuid.UUID `gorm:"type:uuid;not null;index" json:"facility_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships. Facility is a read-side join target only; the owning
	// reference is FacilityID.
	Facility        *Facility        `gorm:"foreignKey:FacilityID" json:"facility,omitempty"`
	ServiceRequests []ServiceRequest `gorm:"foreignKey:PatientID" json:"service_requests,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
