package usecase

import (
	"context"
	"testing"
	"time"

	"emr-service/internal/delivery/dto"
	"emr-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type serviceRequestUsecaseFixture struct {
	serviceRequestRepo *mockServiceRequestRepository
	patientRepo        *mockPatientRepository
	serviceTypeRepo    *mockServiceTypeRepository
	facilityRepo       *mockFacilityRepository
	uc                 ServiceRequestUsecase
}

func newServiceRequestUsecaseFixture() *serviceRequestUsecaseFixture {
	f := &serviceRequestUsecaseFixture{
		serviceRequestRepo: &mockServiceRequestRepository{},
		patientRepo:        &mockPatientRepository{},
		serviceTypeRepo:    &mockServiceTypeRepository{},
		facilityRepo:       &mockFacilityRepository{},
	}
	f.uc = NewServiceRequestUsecase(nil, testLogger(), f.serviceRequestRepo, f.patientRepo, f.serviceTypeRepo, f.facilityRepo)
	return f
}

func (f *serviceRequestUsecaseFixture) stubResolution(patientID, facilityID uuid.UUID) {
	f.patientRepo.FindByIDFunc = func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
		if id == patientID {
			return &entity.Patient{ID: id, MRN: "GEN001000", FacilityID: facilityID}, nil
		}
		return nil, nil
	}
	f.serviceTypeRepo.FindByIDFunc = func(ctx context.Context, db *gorm.DB, id int) (*entity.ServiceType, error) {
		return &entity.ServiceType{ID: id, Code: "XRAY", Name: "X-Ray", Category: entity.CategoryImaging}, nil
	}
	f.facilityRepo.ExistsByIDFunc = func(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
		return id == facilityID, nil
	}
}

func TestSchedulePatientNotFound(t *testing.T) {
	f := newServiceRequestUsecaseFixture()

	_, err := f.uc.Schedule(context.Background(), &dto.ScheduleServiceRequest{
		PatientID:     uuid.New(),
		ServiceTypeID: 1,
		FacilityID:    uuid.New(),
	})

	assert.ErrorIs(t, err, ErrPatientNotFound)
	assert.EqualValues(t, 0, f.serviceRequestRepo.CreateCalls)
}

func TestScheduleServiceTypeNotFound(t *testing.T) {
	f := newServiceRequestUsecaseFixture()
	patientID := uuid.New()
	f.patientRepo.FindByIDFunc = func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
		return &entity.Patient{ID: id}, nil
	}

	_, err := f.uc.Schedule(context.Background(), &dto.ScheduleServiceRequest{
		PatientID:     patientID,
		ServiceTypeID: 99,
		FacilityID:    uuid.New(),
	})

	assert.ErrorIs(t, err, ErrServiceTypeNotFound)
}

func TestScheduleDefaultsToTomorrow(t *testing.T) {
	f := newServiceRequestUsecaseFixture()
	patientID := uuid.New()
	facilityID := uuid.New()
	f.stubResolution(patientID, facilityID)

	request, err := f.uc.Schedule(context.Background(), &dto.ScheduleServiceRequest{
		PatientID:     patientID,
		ServiceTypeID: 3,
		FacilityID:    facilityID,
		Notes:         "  fasting required ",
	})

	assert.NoError(t, err)
	assert.EqualValues(t, 1, f.serviceRequestRepo.CreateCalls)
	assert.Equal(t, string(entity.ServiceStatusScheduled), request.Status)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), request.ScheduledDate, 5*time.Second)
	assert.Equal(t, "fasting required", request.Notes)
	assert.Equal(t, "XRAY", request.ServiceTypeCode)
}

func TestScheduleKeepsExplicitDate(t *testing.T) {
	f := newServiceRequestUsecaseFixture()
	patientID := uuid.New()
	facilityID := uuid.New()
	f.stubResolution(patientID, facilityID)

	scheduled := time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC)
	request, err := f.uc.Schedule(context.Background(), &dto.ScheduleServiceRequest{
		PatientID:     patientID,
		ServiceTypeID: 3,
		FacilityID:    facilityID,
		ScheduledDate: &scheduled,
	})

	assert.NoError(t, err)
	assert.True(t, request.ScheduledDate.Equal(scheduled))
}

func TestGetByPatientNotFound(t *testing.T) {
	f := newServiceRequestUsecaseFixture()

	_, err := f.uc.GetByPatient(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestGetByPatientAndStatusInvalidStatus(t *testing.T) {
	f := newServiceRequestUsecaseFixture()

	_, err := f.uc.GetByPatientAndStatus(context.Background(), uuid.New(), "PENDING")

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetByPatientAndStatus(t *testing.T) {
	f := newServiceRequestUsecaseFixture()
	patientID := uuid.New()
	f.patientRepo.FindByIDFunc = func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
		return &entity.Patient{ID: id}, nil
	}
	f.serviceRequestRepo.FindByPatientAndStatusFunc = func(ctx context.Context, db *gorm.DB, id uuid.UUID, status entity.ServiceRequestStatus) ([]entity.ServiceRequest, error) {
		assert.Equal(t, entity.ServiceStatusCompleted, status)
		return []entity.ServiceRequest{{ID: 7, PatientID: id, Status: status}}, nil
	}

	requests, err := f.uc.GetByPatientAndStatus(context.Background(), patientID, "completed")

	assert.NoError(t, err)
	assert.Len(t, requests, 1)
	assert.Equal(t, "COMPLETED", requests[0].Status)
}

func TestGetByFacilityAndDateRangeInverted(t *testing.T) {
	f := newServiceRequestUsecaseFixture()
	now := time.Now()

	_, err := f.uc.GetByFacilityAndDateRange(context.Background(), uuid.New(), now, now.Add(-time.Hour))

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestGetByFacilityNotFound(t *testing.T) {
	f := newServiceRequestUsecaseFixture()

	_, _, err := f.uc.GetByFacility(context.Background(), uuid.New(), 0, 20)

	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestUpdateStatusNotFound(t *testing.T) {
	f := newServiceRequestUsecaseFixture()

	_, err := f.uc.UpdateStatus(context.Background(), 42, &dto.UpdateServiceRequestStatusRequest{Status: "COMPLETED"})

	assert.ErrorIs(t, err, ErrServiceRequestNotFound)
}

func TestUpdateStatusComplete(t *testing.T) {
	f := newServiceRequestUsecaseFixture()
	f.serviceRequestRepo.FindByIDFunc = func(ctx context.Context, db *gorm.DB, id int64) (*entity.ServiceRequest, error) {
		return &entity.ServiceRequest{ID: id, Status: entity.ServiceStatusScheduled}, nil
	}

	request, err := f.uc.UpdateStatus(context.Background(), 42, &dto.UpdateServiceRequestStatusRequest{Status: "completed"})

	assert.NoError(t, err)
	assert.EqualValues(t, 1, f.serviceRequestRepo.UpdateCalls)
	assert.Equal(t, "COMPLETED", request.Status)
	if assert.NotNil(t, request.CompletedDate) {
		assert.WithinDuration(t, time.Now(), *request.CompletedDate, 5*time.Second)
	}
}

func TestUpdateStatusCancel(t *testing.T) {
	f := newServiceRequestUsecaseFixture()
	f.serviceRequestRepo.FindByIDFunc = func(ctx context.Context, db *gorm.DB, id int64) (*entity.ServiceRequest, error) {
		return &entity.ServiceRequest{ID: id, Status: entity.ServiceStatusScheduled}, nil
	}

	request, err := f.uc.UpdateStatus(context.Background(), 42, &dto.UpdateServiceRequestStatusRequest{Status: "CANCELLED"})

	assert.NoError(t, err)
	assert.Equal(t, "CANCELLED", request.Status)
	assert.Nil(t, request.CompletedDate)
}

func TestUpdateStatusFromTerminal(t *testing.T) {
	f := newServiceRequestUsecaseFixture()
	f.serviceRequestRepo.FindByIDFunc = func(ctx context.Context, db *gorm.DB, id int64) (*entity.ServiceRequest, error) {
		return &entity.ServiceRequest{ID: id, Status: entity.ServiceStatusCancelled}, nil
	}

	_, err := f.uc.UpdateStatus(context.Background(), 42, &dto.UpdateServiceRequestStatusRequest{Status: "COMPLETED"})

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.EqualValues(t, 0, f.serviceRequestRepo.UpdateCalls)
}

func TestUpdateStatusBackToScheduled(t *testing.T) {
	f := newServiceRequestUsecaseFixture()
	f.serviceRequestRepo.FindByIDFunc = func(ctx context.Context, db *gorm.DB, id int64) (*entity.ServiceRequest, error) {
		return &entity.ServiceRequest{ID: id, Status: entity.ServiceStatusScheduled}, nil
	}

	_, err := f.uc.UpdateStatus(context.Background(), 42, &dto.UpdateServiceRequestStatusRequest{Status: "SCHEDULED"})

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestUpdateStatusInvalidValue(t *testing.T) {
	f := newServiceRequestUsecaseFixture()

	_, err := f.uc.UpdateStatus(context.Background(), 42, &dto.UpdateServiceRequestStatusRequest{Status: "DONE"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}
