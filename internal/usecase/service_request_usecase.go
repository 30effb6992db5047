package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"emr-service/internal/converter"
	"emr-service/internal/delivery/dto"
	"emr-service/internal/domain/entity"
	"emr-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ServiceRequestUsecase is the ledger of requested services: scheduling,
// querying and status transitions.
type ServiceRequestUsecase interface {
	Schedule(ctx context.Context, req *dto.ScheduleServiceRequest) (*dto.ServiceRequestResponse, error)
	GetByPatient(ctx context.Context, patientID uuid.UUID) ([]dto.ServiceRequestResponse, error)
	GetByPatientAndStatus(ctx context.Context, patientID uuid.UUID, status string) ([]dto.ServiceRequestResponse, error)
	GetByFacility(ctx context.Context, facilityID uuid.UUID, page, size int) ([]dto.ServiceRequestResponse, int64, error)
	GetByFacilityAndDateRange(ctx context.Context, facilityID uuid.UUID, start, end time.Time) ([]dto.ServiceRequestResponse, error)
	UpdateStatus(ctx context.Context, id int64, req *dto.UpdateServiceRequestStatusRequest) (*dto.ServiceRequestResponse, error)
}

type serviceRequestUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	serviceRequestRepo repository.ServiceRequestRepository
	patientRepo        repository.PatientRepository
	serviceTypeRepo    repository.ServiceTypeRepository
	facilityRepo       repository.FacilityRepository
}

func NewServiceRequestUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	serviceRequestRepo repository.ServiceRequestRepository,
	patientRepo repository.PatientRepository,
	serviceTypeRepo repository.ServiceTypeRepository,
	facilityRepo repository.FacilityRepository,
) ServiceRequestUsecase {
	return &serviceRequestUsecase{
		db:                 db,
		log:                log,
		serviceRequestRepo: serviceRequestRepo,
		patientRepo:        patientRepo,
		serviceTypeRepo:    serviceTypeRepo,
		facilityRepo:       facilityRepo,
	}
}

// Schedule records a new service request for an existing patient. When no
// scheduled date is given the request defaults to one day from now.
func (u *serviceRequestUsecase) Schedule(ctx context.Context, req *dto.ScheduleServiceRequest) (*dto.ServiceRequestResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	serviceType, err := u.serviceTypeRepo.FindByID(ctx, u.db, req.ServiceTypeID)
	if err != nil {
		u.log.Warnf("Failed to find service type %d: %+v", req.ServiceTypeID, err)
		return nil, err
	}
	if serviceType == nil {
		return nil, ErrServiceTypeNotFound
	}

	exists, err := u.facilityRepo.ExistsByID(ctx, u.db, req.FacilityID)
	if err != nil {
		u.log.Warnf("Failed to check facility %s: %+v", req.FacilityID, err)
		return nil, err
	}
	if !exists {
		return nil, ErrFacilityNotFound
	}

	request := &entity.ServiceRequest{
		PatientID:     patient.ID,
		ServiceTypeID: serviceType.ID,
		FacilityID:    req.FacilityID,
		Status:        entity.ServiceStatusScheduled,
		ScheduledDate: defaultScheduledDate(req.ScheduledDate),
		Notes:         strings.TrimSpace(req.Notes),
		ProviderName:  strings.TrimSpace(req.ProviderName),
	}

	if err := u.serviceRequestRepo.Create(ctx, u.db, request); err != nil {
		if isForeignKeyError(err, "") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create service request: %+v", err)
		return nil, err
	}

	u.log.Infof("Service request scheduled: id=%d, patient=%s, type=%s", request.ID, request.PatientID, serviceType.Code)

	request.ServiceType = serviceType
	return converter.ServiceRequestToResponse(request), nil
}

func (u *serviceRequestUsecase) GetByPatient(ctx context.Context, patientID uuid.UUID) ([]dto.ServiceRequestResponse, error) {
	if err := u.requirePatient(ctx, patientID); err != nil {
		return nil, err
	}

	requests, err := u.serviceRequestRepo.FindByPatient(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to list service requests for patient %s: %+v", patientID, err)
		return nil, err
	}
	return converter.ServiceRequestsToResponses(requests), nil
}

func (u *serviceRequestUsecase) GetByPatientAndStatus(ctx context.Context, patientID uuid.UUID, status string) ([]dto.ServiceRequestResponse, error) {
	parsed, ok := entity.ParseServiceRequestStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	if err := u.requirePatient(ctx, patientID); err != nil {
		return nil, err
	}

	requests, err := u.serviceRequestRepo.FindByPatientAndStatus(ctx, u.db, patientID, parsed)
	if err != nil {
		u.log.Warnf("Failed to list %s service requests for patient %s: %+v", parsed, patientID, err)
		return nil, err
	}
	return converter.ServiceRequestsToResponses(requests), nil
}

func (u *serviceRequestUsecase) GetByFacility(ctx context.Context, facilityID uuid.UUID, page, size int) ([]dto.ServiceRequestResponse, int64, error) {
	if err := u.requireFacility(ctx, facilityID); err != nil {
		return nil, 0, err
	}

	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = defaultSearchPageSize
	}

	requests, total, err := u.serviceRequestRepo.FindByFacility(ctx, u.db, facilityID, size, page*size)
	if err != nil {
		u.log.Warnf("Failed to list service requests for facility %s: %+v", facilityID, err)
		return nil, 0, err
	}
	return converter.ServiceRequestsToResponses(requests), total, nil
}

func (u *serviceRequestUsecase) GetByFacilityAndDateRange(ctx context.Context, facilityID uuid.UUID, start, end time.Time) ([]dto.ServiceRequestResponse, error) {
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	if err := u.requireFacility(ctx, facilityID); err != nil {
		return nil, err
	}

	requests, err := u.serviceRequestRepo.FindByFacilityAndDateRange(ctx, u.db, facilityID, start, end)
	if err != nil {
		u.log.Warnf("Failed to list service requests for facility %s in range: %+v", facilityID, err)
		return nil, err
	}
	return converter.ServiceRequestsToResponses(requests), nil
}

// UpdateStatus applies a status transition through the entity's own state
// machine: COMPLETED stamps the completion date, CANCELLED does not, and
// terminal requests reject any further change.
func (u *serviceRequestUsecase) UpdateStatus(ctx context.Context, id int64, req *dto.UpdateServiceRequestStatusRequest) (*dto.ServiceRequestResponse, error) {
	status, ok := entity.ParseServiceRequestStatus(req.Status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	request, err := u.serviceRequestRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find service request %d: %+v", id, err)
		return nil, err
	}
	if request == nil {
		return nil, ErrServiceRequestNotFound
	}

	switch status {
	case entity.ServiceStatusCompleted:
		err = request.Complete(time.Now())
	case entity.ServiceStatusCancelled:
		err = request.Cancel()
	default:
		// Reverting to SCHEDULED is never a valid transition.
		return nil, ErrInvalidStatusTransition
	}
	if err != nil {
		if errors.Is(err, entity.ErrTerminalStatus) {
			return nil, ErrInvalidStatusTransition
		}
		return nil, err
	}

	if err := u.serviceRequestRepo.Update(ctx, u.db, request); err != nil {
		u.log.Warnf("Failed to update service request %d: %+v", id, err)
		return nil, err
	}

	u.log.Infof("Service request %d transitioned to %s", request.ID, request.Status)
	return converter.ServiceRequestToResponse(request), nil
}

func (u *serviceRequestUsecase) requirePatient(ctx context.Context, patientID uuid.UUID) error {
	patient, err := u.patientRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}
	return nil
}

func (u *serviceRequestUsecase) requireFacility(ctx context.Context, facilityID uuid.UUID) error {
	exists, err := u.facilityRepo.ExistsByID(ctx, u.db, facilityID)
	if err != nil {
		u.log.Warnf("Failed to check facility %s: %+v", facilityID, err)
		return err
	}
	if !exists {
		return ErrFacilityNotFound
	}
	return nil
}
