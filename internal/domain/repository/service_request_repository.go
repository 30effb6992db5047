package repository

import (
	"context"
	"time"

	"emr-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceRequestRepository interface {
	Create(ctx context.Context, db *gorm.DB, request *entity.ServiceRequest) error
	Update(ctx context.Context, db *gorm.DB, request *entity.ServiceRequest) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.ServiceRequest, error)
	FindByPatient(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.ServiceRequest, error)
	FindByFacility(ctx context.Context, db *gorm.DB, facilityID uuid.UUID, limit, offset int) ([]entity.ServiceRequest, int64, error)
	// FindByFacilityAndDateRange filters on scheduled date; both bounds inclusive.
	FindByFacilityAndDateRange(ctx context.Context, db *gorm.DB, facilityID uuid.UUID, start, end time.Time) ([]entity.ServiceRequest, error)
	FindByPatientAndStatus(ctx context.Context, db *gorm.DB, patientID uuid.UUID, status entity.ServiceRequestStatus) ([]entity.ServiceRequest, error)
	DeleteByPatient(ctx context.Context, db *gorm.DB, patientID uuid.UUID) error
}
