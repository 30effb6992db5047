package converter

import (
	"testing"
	"time"

	"emr-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPatientToResponse(t *testing.T) {
	facilityID := uuid.New()
	patient := &entity.Patient{
		ID:          uuid.New(),
		MRN:         "GEN001000",
		FirstName:   "Jane",
		LastName:    "Doe",
		Gender:      entity.GenderFemale,
		DateOfBirth: time.Date(1990, 4, 15, 0, 0, 0, 0, time.UTC),
		FacilityID:  facilityID,
		Facility:    &entity.Facility{ID: facilityID, Code: "GEN", Name: "General Hospital"},
		ServiceRequests: []entity.ServiceRequest{
			{ID: 1, Status: entity.ServiceStatusScheduled, ServiceType: &entity.ServiceType{Code: "XRAY", Name: "X-Ray"}},
		},
	}

	resp := PatientToResponse(patient)

	assert.Equal(t, "GEN001000", resp.MRN)
	assert.Equal(t, "FEMALE", resp.Gender)
	assert.Equal(t, "1990-04-15", resp.DateOfBirth)
	assert.Equal(t, "General Hospital", resp.FacilityName)
	if assert.Len(t, resp.ServiceRequests, 1) {
		assert.Equal(t, "XRAY", resp.ServiceRequests[0].ServiceTypeCode)
	}
}

func TestPatientToResponseWithoutFacilityLoaded(t *testing.T) {
	patient := &entity.Patient{
		ID:          uuid.New(),
		MRN:         "GEN001001",
		Gender:      entity.GenderMale,
		DateOfBirth: time.Date(1985, 1, 2, 0, 0, 0, 0, time.UTC),
		FacilityID:  uuid.New(),
	}

	resp := PatientToResponse(patient)

	assert.Empty(t, resp.FacilityName)
	assert.Empty(t, resp.ServiceRequests)
}

func TestPatientToResponseNil(t *testing.T) {
	assert.Nil(t, PatientToResponse(nil))
}
