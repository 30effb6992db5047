package repository

import (
	"context"

	"emr-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FacilityRepository interface {
	Create(ctx context.Context, db *gorm.DB, facility *entity.Facility) error
	Update(ctx context.Context, db *gorm.DB, facility *entity.Facility) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Facility, error)
	FindActive(ctx context.Context, db *gorm.DB) ([]entity.Facility, error)
	ExistsByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error)
	ExistsByCode(ctx context.Context, db *gorm.DB, code string) (bool, error)
	// AppendService attaches a service type to the facility's offered set.
	AppendService(ctx context.Context, db *gorm.DB, facility *entity.Facility, serviceType *entity.ServiceType) error
}
