package entity

import (
	"time"

	"github.com/google/uuid"
)

// Facility represents a care site that registers patients and offers a
// subset of service types. Facilities are never physically removed; they
// are deactivated via the Active flag.
type Facility struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Code    string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"code"`
	Name    string    `gorm:"type:varchar(100);not null;index" json:"name"`
	Address string    `gorm:"type:varchar(500)" json:"address,omitempty"`
	City    string    `gorm:"type:varchar(100)" json:"city,omitempty"`
	State   string    `gorm:"type:varchar(50)" json:"state,omitempty"`
	ZipCode string    `gorm:"type:varchar(20)" json:"zip_code,omitempty"`
	Phone   string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email   string    `gorm:"type:varchar(100)" json:"email,omitempty"`
	Active  bool      `gorm:"not null;default:true;index" json:"active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Services []ServiceType `gorm:"many2many:facility_service_types" json:"services,omitempty"`
	Patients []Patient     `gorm:"foreignKey:FacilityID" json:"patients,omitempty"`
}

func (Facility) TableName() string {
	return "facilities"
}

// OffersService reports whether the service type is already attached to
// this facility. Only meaningful when Services has been loaded.
func (f *Facility) OffersService(serviceTypeID int) bool {
	for _, st := range f.Services {
		if st.ID == serviceTypeID {
			return true
		}
	}
	return false
}

// Deactivate marks the facility inactive without removing it.
func (f *Facility) Deactivate() {
	f.Active = false
}
