package repository

import (
	"context"
	"errors"

	"emr-service/internal/domain/entity"
	domainRepo "emr-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type facilityRepository struct{}

func NewFacilityRepository() domainRepo.FacilityRepository {
	return &facilityRepository{}
}

func (r *facilityRepository) Create(ctx context.Context, db *gorm.DB, facility *entity.Facility) error {
	return db.WithContext(ctx).Create(facility).Error
}

func (r *facilityRepository) Update(ctx context.Context, db *gorm.DB, facility *entity.Facility) error {
	return db.WithContext(ctx).Save(facility).Error
}

func (r *facilityRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Facility, error) {
	var facility entity.Facility
	err := db.WithContext(ctx).Preload("Services").Where("id = ?", id).First(&facility).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &facility, nil
}

func (r *facilityRepository) FindActive(ctx context.Context, db *gorm.DB) ([]entity.Facility, error) {
	var facilities []entity.Facility
	err := db.WithContext(ctx).Preload("Services").
		Where("active = ?", true).
		Order("name").
		Find(&facilities).Error
	if err != nil {
		return nil, err
	}
	return facilities, nil
}

func (r *facilityRepository) ExistsByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Facility{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *facilityRepository) ExistsByCode(ctx context.Context, db *gorm.DB, code string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Facility{}).Where("code = ?", code).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *facilityRepository) AppendService(ctx context.Context, db *gorm.DB, facility *entity.Facility, serviceType *entity.ServiceType) error {
	return db.WithContext(ctx).Model(facility).Association("Services").Append(serviceType)
}
