package repository

import (
	"context"
	"errors"

	"emr-service/internal/domain/entity"
	domainRepo "emr-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type serviceTypeRepository struct{}

func NewServiceTypeRepository() domainRepo.ServiceTypeRepository {
	return &serviceTypeRepository{}
}

func (r *serviceTypeRepository) Create(ctx context.Context, db *gorm.DB, serviceType *entity.ServiceType) error {
	return db.WithContext(ctx).Create(serviceType).Error
}

func (r *serviceTypeRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.ServiceType, error) {
	var serviceType entity.ServiceType
	err := db.WithContext(ctx).Where("id = ?", id).First(&serviceType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &serviceType, nil
}

func (r *serviceTypeRepository) FindByCode(ctx context.Context, db *gorm.DB, code string) (*entity.ServiceType, error) {
	var serviceType entity.ServiceType
	err := db.WithContext(ctx).Where("code = ?", code).First(&serviceType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &serviceType, nil
}

func (r *serviceTypeRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.ServiceType, error) {
	var serviceTypes []entity.ServiceType
	err := db.WithContext(ctx).Order("code").Find(&serviceTypes).Error
	if err != nil {
		return nil, err
	}
	return serviceTypes, nil
}

func (r *serviceTypeRepository) FindByCategory(ctx context.Context, db *gorm.DB, category entity.ServiceCategory) ([]entity.ServiceType, error) {
	var serviceTypes []entity.ServiceType
	err := db.WithContext(ctx).Where("category = ?", category).Order("code").Find(&serviceTypes).Error
	if err != nil {
		return nil, err
	}
	return serviceTypes, nil
}

func (r *serviceTypeRepository) FindByFacility(ctx context.Context, db *gorm.DB, facilityID uuid.UUID) ([]entity.ServiceType, error) {
	var serviceTypes []entity.ServiceType
	err := db.WithContext(ctx).
		Joins("JOIN facility_service_types fst ON fst.service_type_id = service_types.id").
		Where("fst.facility_id = ?", facilityID).
		Order("service_types.code").
		Find(&serviceTypes).Error
	if err != nil {
		return nil, err
	}
	return serviceTypes, nil
}

func (r *serviceTypeRepository) ExistsByCode(ctx context.Context, db *gorm.DB, code string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.ServiceType{}).Where("code = ?", code).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
