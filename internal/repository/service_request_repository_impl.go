package repository

import (
	"context"
	"errors"
	"time"

	"emr-service/internal/domain/entity"
	domainRepo "emr-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type serviceRequestRepository struct{}

func NewServiceRequestRepository() domainRepo.ServiceRequestRepository {
	return &serviceRequestRepository{}
}

func (r *serviceRequestRepository) Create(ctx context.Context, db *gorm.DB, request *entity.ServiceRequest) error {
	return db.WithContext(ctx).Create(request).Error
}

func (r *serviceRequestRepository) Update(ctx context.Context, db *gorm.DB, request *entity.ServiceRequest) error {
	return db.WithContext(ctx).Save(request).Error
}

func (r *serviceRequestRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.ServiceRequest, error) {
	var request entity.ServiceRequest
	err := db.WithContext(ctx).Preload("ServiceType").Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *serviceRequestRepository) FindByPatient(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.ServiceRequest, error) {
	var requests []entity.ServiceRequest
	err := db.WithContext(ctx).Preload("ServiceType").
		Where("patient_id = ?", patientID).
		Order("scheduled_date, id").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *serviceRequestRepository) FindByFacility(ctx context.Context, db *gorm.DB, facilityID uuid.UUID, limit, offset int) ([]entity.ServiceRequest, int64, error) {
	var requests []entity.ServiceRequest
	var total int64

	if err := db.WithContext(ctx).Model(&entity.ServiceRequest{}).
		Where("facility_id = ?", facilityID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.WithContext(ctx).Preload("ServiceType").
		Where("facility_id = ?", facilityID).
		Order("scheduled_date, id").
		Limit(limit).Offset(offset).
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (r *serviceRequestRepository) FindByFacilityAndDateRange(ctx context.Context, db *gorm.DB, facilityID uuid.UUID, start, end time.Time) ([]entity.ServiceRequest, error) {
	var requests []entity.ServiceRequest
	err := db.WithContext(ctx).Preload("ServiceType").
		Where("facility_id = ? AND scheduled_date BETWEEN ? AND ?", facilityID, start, end).
		Order("scheduled_date, id").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *serviceRequestRepository) FindByPatientAndStatus(ctx context.Context, db *gorm.DB, patientID uuid.UUID, status entity.ServiceRequestStatus) ([]entity.ServiceRequest, error) {
	var requests []entity.ServiceRequest
	err := db.WithContext(ctx).Preload("ServiceType").
		Where("patient_id = ? AND status = ?", patientID, status).
		Order("scheduled_date, id").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *serviceRequestRepository) DeleteByPatient(ctx context.Context, db *gorm.DB, patientID uuid.UUID) error {
	return db.WithContext(ctx).Where("patient_id = ?", patientID).Delete(&entity.ServiceRequest{}).Error
}
