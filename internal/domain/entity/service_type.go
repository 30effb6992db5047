package entity

// ServiceCategory classifies a clinical service type
type ServiceCategory string

const (
	CategoryLab       ServiceCategory = "LAB"
	CategoryImaging   ServiceCategory = "IMAGING"
	CategoryConsult   ServiceCategory = "CONSULT"
	CategoryProcedure ServiceCategory = "PROCEDURE"
	CategoryTherapy   ServiceCategory = "THERAPY"
	CategoryPharmacy  ServiceCategory = "PHARMACY"
)

// ServiceCategories lists every valid category value.
var ServiceCategories = []ServiceCategory{
	CategoryLab,
	CategoryImaging,
	CategoryConsult,
	CategoryProcedure,
	CategoryTherapy,
	CategoryPharmacy,
}

// ValidServiceCategory reports whether s is a known category value.
func ValidServiceCategory(s string) bool {
	for _, c := range ServiceCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// ServiceType is immutable reference data shared by all facilities
// (many-to-many). It is owned by no facility exclusively.
type ServiceType struct {
	ID          int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Code        string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"code"`
	Name        string          `gorm:"type:varchar(100);not null;index" json:"name"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Category    ServiceCategory `gorm:"type:varchar(20);not null;index" json:"category"`

	// Relationships
	Facilities []Facility `gorm:"many2many:facility_service_types" json:"facilities,omitempty"`
}

func (ServiceType) TableName() string {
	return "service_types"
}
