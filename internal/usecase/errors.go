package usecase

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// Not found
	ErrFacilityNotFound       = errors.New("facility not found")
	ErrServiceTypeNotFound    = errors.New("service type not found")
	ErrPatientNotFound        = errors.New("patient not found")
	ErrServiceRequestNotFound = errors.New("service request not found")

	// Conflicts
	ErrFacilityCodeExists    = errors.New("facility code already exists")
	ErrServiceTypeCodeExists = errors.New("service type code already exists")
	ErrMRNExists             = errors.New("patient with this MRN already exists")

	// Invalid input
	ErrInvalidGender           = errors.New("invalid gender value, valid values are: MALE, FEMALE, OTHER")
	ErrInvalidDateOfBirth      = errors.New("date of birth must be a valid date in the past")
	ErrInvalidServiceCategory  = errors.New("invalid service category")
	ErrInvalidStatus           = errors.New("invalid service request status")
	ErrInvalidStatusTransition = errors.New("service request status cannot be changed from a terminal state")
	ErrInvalidDateRange        = errors.New("start date must not be after end date")
	ErrFacilityRequired        = errors.New("facility id cannot be null")
	ErrMRNRequired             = errors.New("mrn cannot be null or empty")
)

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// on the named constraint
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key
// violation on the named constraint
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
