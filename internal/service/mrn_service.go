package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"emr-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// mrnSeqStart is the first sequence number handed out for a facility code
// that has no patients yet.
const mrnSeqStart = 1000

// ErrEmptyFacilityCode is returned when allocation is requested without a
// facility code.
var ErrEmptyFacilityCode = errors.New("facility code cannot be null or empty for MRN generation")

// MRNAllocator derives the next sequential Medical Record Number for a
// facility from its code prefix: {CODE}{6-digit zero-padded sequence}.
//
// The derivation is read-then-write and only monotonic under serialized
// access. Two concurrent allocations for the same prefix can compute the
// same candidate; the unique index on patients.mrn makes the losing commit
// fail, and the caller is expected to re-allocate and retry once.
type MRNAllocator struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewMRNAllocator(log *logrus.Logger, patientRepo repository.PatientRepository) *MRNAllocator {
	return &MRNAllocator{
		log:         log,
		patientRepo: patientRepo,
	}
}

// Allocate returns the next MRN for the facility code. The code is trimmed
// and uppercased before use. Pass the enclosing transaction as db so the
// scan and the subsequent insert share one unit of work.
func (a *MRNAllocator) Allocate(ctx context.Context, db *gorm.DB, facilityCode string) (string, error) {
	prefix := strings.ToUpper(strings.TrimSpace(facilityCode))
	if prefix == "" {
		return "", ErrEmptyFacilityCode
	}

	max, err := a.patientRepo.MaxMRNSequence(ctx, db, prefix)
	if err != nil {
		a.log.Warnf("Failed to scan MRN sequence for prefix %s: %+v", prefix, err)
		return "", err
	}

	next := mrnSeqStart
	if max > 0 {
		next = max + 1
	}

	mrn := fmt.Sprintf("%s%06d", prefix, next)
	a.log.Debugf("Allocated MRN %s for facility code %s", mrn, facilityCode)
	return mrn, nil
}
