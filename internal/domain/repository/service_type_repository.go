package repository

import (
	"context"

	"emr-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceTypeRepository interface {
	Create(ctx context.Context, db *gorm.DB, serviceType *entity.ServiceType) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.ServiceType, error)
	FindByCode(ctx context.Context, db *gorm.DB, code string) (*entity.ServiceType, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.ServiceType, error)
	FindByCategory(ctx context.Context, db *gorm.DB, category entity.ServiceCategory) ([]entity.ServiceType, error)
	FindByFacility(ctx context.Context, db *gorm.DB, facilityID uuid.UUID) ([]entity.ServiceType, error)
	ExistsByCode(ctx context.Context, db *gorm.DB, code string) (bool, error)
}
