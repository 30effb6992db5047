package usecase

import (
	"context"
	"strings"
	"time"

	"emr-service/internal/converter"
	"emr-service/internal/delivery/dto"
	"emr-service/internal/domain/entity"
	"emr-service/internal/domain/repository"
	"emr-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const defaultSearchPageSize = 20

// PatientUsecase composes the MRN allocator, the patient store, the
// facility catalog and the service request ledger for patient management.
type PatientUsecase interface {
	Register(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	GetByMRN(ctx context.Context, mrn string) (*dto.PatientResponse, error)
	Search(ctx context.Context, facilityID *uuid.UUID, term string, page, size int) ([]dto.PatientResponse, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type patientUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	patientRepo        repository.PatientRepository
	facilityRepo       repository.FacilityRepository
	serviceTypeRepo    repository.ServiceTypeRepository
	serviceRequestRepo repository.ServiceRequestRepository
	mrnAllocator       *service.MRNAllocator
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	facilityRepo repository.FacilityRepository,
	serviceTypeRepo repository.ServiceTypeRepository,
	serviceRequestRepo repository.ServiceRequestRepository,
	mrnAllocator *service.MRNAllocator,
) PatientUsecase {
	return &patientUsecase{
		db:                 db,
		log:                log,
		patientRepo:        patientRepo,
		facilityRepo:       facilityRepo,
		serviceTypeRepo:    serviceTypeRepo,
		serviceRequestRepo: serviceRequestRepo,
		mrnAllocator:       mrnAllocator,
	}
}

// Register creates a patient together with its requested services as one
// unit of work. MRN handling: an explicit MRN is uniqueness-checked, an
// omitted one is allocated from the facility code inside the transaction.
// A unique violation on a generated MRN (concurrent registration for the
// same facility) is retried once with a fresh allocation.
func (u *patientUsecase) Register(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	gender, ok := entity.ParseGender(req.Gender)
	if !ok {
		return nil, ErrInvalidGender
	}

	dateOfBirth, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	facility, err := u.facilityRepo.FindByID(ctx, u.db, req.FacilityID)
	if err != nil {
		u.log.Warnf("Failed to find facility %s: %+v", req.FacilityID, err)
		return nil, err
	}
	if facility == nil {
		return nil, ErrFacilityNotFound
	}

	mrn := strings.TrimSpace(req.MRN)
	generated := mrn == ""
	if !generated {
		exists, err := u.patientRepo.ExistsByMRN(ctx, u.db, mrn)
		if err != nil {
			u.log.Warnf("Failed to check MRN %s: %+v", mrn, err)
			return nil, err
		}
		if exists {
			return nil, ErrMRNExists
		}
	}

	// Resolve every requested service type before writing anything: one
	// unresolvable type aborts the whole registration.
	serviceTypes := make([]*entity.ServiceType, len(req.RequestedServices))
	for i, rs := range req.RequestedServices {
		serviceType, err := u.serviceTypeRepo.FindByID(ctx, u.db, rs.ServiceTypeID)
		if err != nil {
			u.log.Warnf("Failed to find service type %d: %+v", rs.ServiceTypeID, err)
			return nil, err
		}
		if serviceType == nil {
			return nil, ErrServiceTypeNotFound
		}
		serviceTypes[i] = serviceType
	}

	var patient *entity.Patient
	for attempt := 0; ; attempt++ {
		patient, err = u.registerTx(ctx, req, gender, dateOfBirth, facility, mrn, generated, serviceTypes)
		if err == nil {
			break
		}
		if generated && isDuplicateKeyError(err, "mrn") && attempt == 0 {
			u.log.Warnf("Generated MRN collided for facility %s, retrying allocation", facility.Code)
			continue
		}
		if isDuplicateKeyError(err, "mrn") {
			return nil, ErrMRNExists
		}
		u.log.Warnf("Failed to register patient: %+v", err)
		return nil, err
	}

	u.log.Infof("Patient registered: id=%s, mrn=%s, services=%d", patient.ID, patient.MRN, len(serviceTypes))

	patient.Facility = facility
	return converter.PatientToResponse(patient), nil
}

// registerTx runs one registration attempt inside a single transaction.
func (u *patientUsecase) registerTx(
	ctx context.Context,
	req *dto.CreatePatientRequest,
	gender entity.Gender,
	dateOfBirth time.Time,
	facility *entity.Facility,
	mrn string,
	generated bool,
	serviceTypes []*entity.ServiceType,
) (*entity.Patient, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer tx.Rollback()

	if generated {
		allocated, err := u.mrnAllocator.Allocate(ctx, tx, facility.Code)
		if err != nil {
			return nil, err
		}
		mrn = allocated
	}

	patient := &entity.Patient{
		MRN:         mrn,
		Gender:      gender,
		DateOfBirth: dateOfBirth,
		FacilityID:  facility.ID,
	}
	applyDemographics(patient, req.FirstName, req.LastName, req.Email, req.Phone, req.Address,
		req.City, req.State, req.ZipCode,
		req.InsuranceProvider, req.InsurancePolicyNumber, req.InsuranceGroupNumber)

	if err := u.patientRepo.Create(ctx, tx, patient); err != nil {
		return nil, err
	}

	for i, rs := range req.RequestedServices {
		request := &entity.ServiceRequest{
			PatientID:     patient.ID,
			ServiceTypeID: serviceTypes[i].ID,
			FacilityID:    facility.ID,
			Status:        entity.ServiceStatusScheduled,
			ScheduledDate: defaultScheduledDate(rs.ScheduledDate),
			Notes:         strings.TrimSpace(rs.Notes),
			ProviderName:  strings.TrimSpace(rs.ProviderName),
		}
		if err := u.serviceRequestRepo.Create(ctx, tx, request); err != nil {
			return nil, err
		}
		patient.ServiceRequests = append(patient.ServiceRequests, *request)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return patient, nil
}

// Update overwrites the mutable demographic and insurance fields. The MRN
// and the facility association are never changed.
func (u *patientUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	gender, ok := entity.ParseGender(req.Gender)
	if !ok {
		return nil, ErrInvalidGender
	}

	dateOfBirth, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	patient.Gender = gender
	patient.DateOfBirth = dateOfBirth
	applyDemographics(patient, req.FirstName, req.LastName, req.Email, req.Phone, req.Address,
		req.City, req.State, req.ZipCode,
		req.InsuranceProvider, req.InsurancePolicyNumber, req.InsuranceGroupNumber)

	if err := u.patientRepo.Update(ctx, u.db, patient); err != nil {
		u.log.Warnf("Failed to update patient %s: %+v", id, err)
		return nil, err
	}

	u.log.Infof("Patient updated: id=%s", patient.ID)
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetByMRN(ctx context.Context, mrn string) (*dto.PatientResponse, error) {
	mrn = strings.TrimSpace(mrn)
	if mrn == "" {
		return nil, ErrMRNRequired
	}

	patient, err := u.patientRepo.FindByMRN(ctx, u.db, mrn)
	if err != nil {
		u.log.Warnf("Failed to find patient by MRN %s: %+v", mrn, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

// Search returns the facility's patients whose first name, last name or
// MRN contains the term (case-insensitive), or all of them when the term
// is blank. Pages are zero-indexed.
func (u *patientUsecase) Search(ctx context.Context, facilityID *uuid.UUID, term string, page, size int) ([]dto.PatientResponse, int64, error) {
	if facilityID == nil {
		return nil, 0, ErrFacilityRequired
	}

	exists, err := u.facilityRepo.ExistsByID(ctx, u.db, *facilityID)
	if err != nil {
		u.log.Warnf("Failed to check facility %s: %+v", facilityID, err)
		return nil, 0, err
	}
	if !exists {
		return nil, 0, ErrFacilityNotFound
	}

	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = defaultSearchPageSize
	}
	offset := page * size

	term = strings.TrimSpace(term)

	var patients []entity.Patient
	var total int64
	if term == "" {
		patients, total, err = u.patientRepo.FindByFacility(ctx, u.db, *facilityID, size, offset)
	} else {
		patients, total, err = u.patientRepo.SearchByFacility(ctx, u.db, *facilityID, term, size, offset)
	}
	if err != nil {
		u.log.Warnf("Failed to search patients for facility %s: %+v", facilityID, err)
		return nil, 0, err
	}

	return converter.PatientsToResponses(patients), total, nil
}

// Delete removes the patient and its service requests in one transaction.
func (u *patientUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	if err := u.serviceRequestRepo.DeleteByPatient(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete service requests for patient %s: %+v", id, err)
		return err
	}

	affected, err := u.patientRepo.Delete(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete patient %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Patient deleted: id=%s", id)
	return nil
}

// parseDateOfBirth parses the wire format and enforces that the date lies
// strictly in the past.
func parseDateOfBirth(s string) (time.Time, error) {
	dateOfBirth, err := time.Parse(dto.DateOfBirthLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateOfBirth
	}
	if !dateOfBirth.Before(time.Now()) {
		return time.Time{}, ErrInvalidDateOfBirth
	}
	return dateOfBirth, nil
}

// applyDemographics trims and assigns the mutable text fields shared by
// registration and update.
func applyDemographics(patient *entity.Patient, firstName, lastName, email, phone, address,
	city, state, zipCode, insuranceProvider, insurancePolicyNumber, insuranceGroupNumber string,
) {
	patient.FirstName = strings.TrimSpace(firstName)
	patient.LastName = strings.TrimSpace(lastName)
	patient.Email = strings.TrimSpace(email)
	patient.Phone = strings.TrimSpace(phone)
	patient.Address = strings.TrimSpace(address)
	patient.City = strings.TrimSpace(city)
	patient.State = strings.TrimSpace(state)
	patient.ZipCode = strings.TrimSpace(zipCode)
	patient.InsuranceProvider = strings.TrimSpace(insuranceProvider)
	patient.InsurancePolicyNumber = strings.TrimSpace(insurancePolicyNumber)
	patient.InsuranceGroupNumber = strings.TrimSpace(insuranceGroupNumber)
}

// defaultScheduledDate falls back to one day from now when no scheduled
// date was requested.
func defaultScheduledDate(requested *time.Time) time.Time {
	if requested != nil {
		return *requested
	}
	return time.Now().Add(24 * time.Hour)
}
