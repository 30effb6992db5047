package repository

import (
	"context"
	"errors"
	"strings"

	"emr-service/internal/domain/entity"
	domainRepo "emr-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Save(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Preload("Facility").Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByMRN(ctx context.Context, db *gorm.DB, mrn string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Preload("Facility").Where("mrn = ?", mrn).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) ExistsByMRN(ctx context.Context, db *gorm.DB, mrn string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Patient{}).Where("mrn = ?", mrn).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *patientRepository) MaxMRNSequence(ctx context.Context, db *gorm.DB, prefix string) (int, error) {
	var max int
	err := db.WithContext(ctx).Model(&entity.Patient{}).
		Select("COALESCE(MAX(CAST(SUBSTRING(mrn FROM ?) AS INTEGER)), 0)", len(prefix)+1).
		Where("mrn LIKE ?", prefix+"%").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max, nil
}

func (r *patientRepository) FindByFacility(ctx context.Context, db *gorm.DB, facilityID uuid.UUID, limit, offset int) ([]entity.Patient, int64, error) {
	var patients []entity.Patient
	var total int64

	base := db.WithContext(ctx).Model(&entity.Patient{}).Where("facility_id = ?", facilityID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.WithContext(ctx).Preload("Facility").
		Where("facility_id = ?", facilityID).
		Order("last_name, first_name, id").
		Limit(limit).Offset(offset).
		Find(&patients).Error
	if err != nil {
		return nil, 0, err
	}
	return patients, total, nil
}

func (r *patientRepository) SearchByFacility(ctx context.Context, db *gorm.DB, facilityID uuid.UUID, term string, limit, offset int) ([]entity.Patient, int64, error) {
	var patients []entity.Patient
	var total int64

	like := "%" + strings.ToLower(term) + "%"
	match := "LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(mrn) LIKE ?"

	base := db.WithContext(ctx).Model(&entity.Patient{}).
		Where("facility_id = ?", facilityID).
		Where(match, like, like, like)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.WithContext(ctx).Preload("Facility").
		Where("facility_id = ?", facilityID).
		Where(match, like, like, like).
		Order("last_name, first_name, id").
		Limit(limit).Offset(offset).
		Find(&patients).Error
	if err != nil {
		return nil, 0, err
	}
	return patients, total, nil
}

func (r *patientRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}
