package repository

import (
	"context"

	"emr-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatientRepository owns patient persistence. Every method takes the
// *gorm.DB handle explicitly so callers can pass a transaction.
type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	FindByMRN(ctx context.Context, db *gorm.DB, mrn string) (*entity.Patient, error)
	ExistsByMRN(ctx context.Context, db *gorm.DB, mrn string) (bool, error)
	// MaxMRNSequence returns the highest numeric suffix among MRNs starting
	// with prefix, or 0 when none exist.
	MaxMRNSequence(ctx context.Context, db *gorm.DB, prefix string) (int, error)
	FindByFacility(ctx context.Context, db *gorm.DB, facilityID uuid.UUID, limit, offset int) ([]entity.Patient, int64, error)
	SearchByFacility(ctx context.Context, db *gorm.DB, facilityID uuid.UUID, term string, limit, offset int) ([]entity.Patient, int64, error)
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}
