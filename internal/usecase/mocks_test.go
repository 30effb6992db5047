package usecase

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"emr-service/internal/domain/entity"
	"emr-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Hand-rolled repository mocks. Each method delegates to a settable
// function field and counts its calls; unset fields return zero values.

type mockPatientRepository struct {
	CreateFunc           func(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	UpdateFunc           func(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindByIDFunc         func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	FindByMRNFunc        func(ctx context.Context, db *gorm.DB, mrn string) (*entity.Patient, error)
	ExistsByMRNFunc      func(ctx context.Context, db *gorm.DB, mrn string) (bool, error)
	MaxMRNSequenceFunc   func(ctx context.Context, db *gorm.DB, prefix string) (int, error)
	FindByFacilityFunc   func(ctx context.Context, db *gorm.DB, facilityID uuid.UUID, limit, offset int) ([]entity.Patient, int64, error)
	SearchByFacilityFunc func(ctx context.Context, db *gorm.DB, facilityID uuid.UUID, term string, limit, offset int) ([]entity.Patient, int64, error)
	DeleteFunc           func(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)

	CreateCalls           int32
	UpdateCalls           int32
	FindByFacilityCalls   int32
	SearchByFacilityCalls int32
}

var _ repository.PatientRepository = (*mockPatientRepository)(nil)

func (m *mockPatientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	atomic.AddInt32(&m.CreateCalls, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, db, patient)
	}
	return nil
}

func (m *mockPatientRepository) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	atomic.AddInt32(&m.UpdateCalls, 1)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, db, patient)
	}
	return nil
}

func (m *mockPatientRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, db, id)
	}
	return nil, nil
}

func (m *mockPatientRepository) FindByMRN(ctx context.Context, db *gorm.DB, mrn string) (*entity.Patient, error) {
	if m.FindByMRNFunc != nil {
		return m.FindByMRNFunc(ctx, db, mrn)
	}
	return nil, nil
}

func (m *mockPatientRepository) ExistsByMRN(ctx context.Context, db *gorm.DB, mrn string) (bool, error) {
	if m.ExistsByMRNFunc != nil {
		return m.ExistsByMRNFunc(ctx, db, mrn)
	}
	return false, nil
}

func (m *mockPatientRepository) MaxMRNSequence(ctx context.Context, db *gorm.DB, prefix string) (int, error) {
	if m.MaxMRNSequenceFunc != nil {
		return m.MaxMRNSequenceFunc(ctx, db, prefix)
	}
	return 0, nil
}

func (m *mockPatientRepository) FindByFacility(ctx context.Context, db *gorm.DB, facilityID uuid.UUID, limit, offset int) ([]entity.Patient, int64, error) {
	atomic.AddInt32(&m.FindByFacilityCalls, 1)
	if m.FindByFacilityFunc != nil {
		return m.FindByFacilityFunc(ctx, db, facilityID, limit, offset)
	}
	return nil, 0, nil
}

func (m *mockPatientRepository) SearchByFacility(ctx context.Context, db *gorm.DB, facilityID uuid.UUID, term string, limit, offset int) ([]entity.Patient, int64, error) {
	atomic.AddInt32(&m.SearchByFacilityCalls, 1)
	if m.SearchByFacilityFunc != nil {
		return m.SearchByFacilityFunc(ctx, db, facilityID, term, limit, offset)
	}
	return nil, 0, nil
}

func (m *mockPatientRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, db, id)
	}
	return 0, nil
}

type mockFacilityRepository struct {
	CreateFunc        func(ctx context.Context, db *gorm.DB, facility *entity.Facility) error
	UpdateFunc        func(ctx context.Context, db *gorm.DB, facility *entity.Facility) error
	FindByIDFunc      func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Facility, error)
	FindActiveFunc    func(ctx context.Context, db *gorm.DB) ([]entity.Facility, error)
	ExistsByIDFunc    func(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error)
	ExistsByCodeFunc  func(ctx context.Context, db *gorm.DB, code string) (bool, error)
	AppendServiceFunc func(ctx context.Context, db *gorm.DB, facility *entity.Facility, serviceType *entity.ServiceType) error

	CreateCalls        int32
	AppendServiceCalls int32
}

var _ repository.FacilityRepository = (*mockFacilityRepository)(nil)

func (m *mockFacilityRepository) Create(ctx context.Context, db *gorm.DB, facility *entity.Facility) error {
	atomic.AddInt32(&m.CreateCalls, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, db, facility)
	}
	return nil
}

func (m *mockFacilityRepository) Update(ctx context.Context, db *gorm.DB, facility *entity.Facility) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, db, facility)
	}
	return nil
}

func (m *mockFacilityRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Facility, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, db, id)
	}
	return nil, nil
}

func (m *mockFacilityRepository) FindActive(ctx context.Context, db *gorm.DB) ([]entity.Facility, error) {
	if m.FindActiveFunc != nil {
		return m.FindActiveFunc(ctx, db)
	}
	return nil, nil
}

func (m *mockFacilityRepository) ExistsByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, db, id)
	}
	return false, nil
}

func (m *mockFacilityRepository) ExistsByCode(ctx context.Context, db *gorm.DB, code string) (bool, error) {
	if m.ExistsByCodeFunc != nil {
		return m.ExistsByCodeFunc(ctx, db, code)
	}
	return false, nil
}

func (m *mockFacilityRepository) AppendService(ctx context.Context, db *gorm.DB, facility *entity.Facility, serviceType *entity.ServiceType) error {
	atomic.AddInt32(&m.AppendServiceCalls, 1)
	if m.AppendServiceFunc != nil {
		return m.AppendServiceFunc(ctx, db, facility, serviceType)
	}
	return nil
}

type mockServiceTypeRepository struct {
	CreateFunc         func(ctx context.Context, db *gorm.DB, serviceType *entity.ServiceType) error
	FindByIDFunc       func(ctx context.Context, db *gorm.DB, id int) (*entity.ServiceType, error)
	FindByCodeFunc     func(ctx context.Context, db *gorm.DB, code string) (*entity.ServiceType, error)
	FindAllFunc        func(ctx context.Context, db *gorm.DB) ([]entity.ServiceType, error)
	FindByCategoryFunc func(ctx context.Context, db *gorm.DB, category entity.ServiceCategory) ([]entity.ServiceType, error)
	FindByFacilityFunc func(ctx context.Context, db *gorm.DB, facilityID uuid.UUID) ([]entity.ServiceType, error)
	ExistsByCodeFunc   func(ctx context.Context, db *gorm.DB, code string) (bool, error)

	CreateCalls         int32
	FindAllCalls        int32
	FindByCategoryCalls int32
}

var _ repository.ServiceTypeRepository = (*mockServiceTypeRepository)(nil)

func (m *mockServiceTypeRepository) Create(ctx context.Context, db *gorm.DB, serviceType *entity.ServiceType) error {
	atomic.AddInt32(&m.CreateCalls, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, db, serviceType)
	}
	return nil
}

func (m *mockServiceTypeRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.ServiceType, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, db, id)
	}
	return nil, nil
}

func (m *mockServiceTypeRepository) FindByCode(ctx context.Context, db *gorm.DB, code string) (*entity.ServiceType, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, db, code)
	}
	return nil, nil
}

func (m *mockServiceTypeRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.ServiceType, error) {
	atomic.AddInt32(&m.FindAllCalls, 1)
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, db)
	}
	return nil, nil
}

func (m *mockServiceTypeRepository) FindByCategory(ctx context.Context, db *gorm.DB, category entity.ServiceCategory) ([]entity.ServiceType, error) {
	atomic.AddInt32(&m.FindByCategoryCalls, 1)
	if m.FindByCategoryFunc != nil {
		return m.FindByCategoryFunc(ctx, db, category)
	}
	return nil, nil
}

func (m *mockServiceTypeRepository) FindByFacility(ctx context.Context, db *gorm.DB, facilityID uuid.UUID) ([]entity.ServiceType, error) {
	if m.FindByFacilityFunc != nil {
		return m.FindByFacilityFunc(ctx, db, facilityID)
	}
	return nil, nil
}

func (m *mockServiceTypeRepository) ExistsByCode(ctx context.Context, db *gorm.DB, code string) (bool, error) {
	if m.ExistsByCodeFunc != nil {
		return m.ExistsByCodeFunc(ctx, db, code)
	}
	return false, nil
}

type mockServiceRequestRepository struct {
	CreateFunc                     func(ctx context.Context, db *gorm.DB, request *entity.ServiceRequest) error
	UpdateFunc                     func(ctx context.Context, db *gorm.DB, request *entity.ServiceRequest) error
	FindByIDFunc                   func(ctx context.Context, db *gorm.DB, id int64) (*entity.ServiceRequest, error)
	FindByPatientFunc              func(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.ServiceRequest, error)
	FindByFacilityFunc             func(ctx context.Context, db *gorm.DB, facilityID uuid.UUID, limit, offset int) ([]entity.ServiceRequest, int64, error)
	FindByFacilityAndDateRangeFunc func(ctx context.Context, db *gorm.DB, facilityID uuid.UUID, start, end time.Time) ([]entity.ServiceRequest, error)
	FindByPatientAndStatusFunc     func(ctx context.Context, db *gorm.DB, patientID uuid.UUID, status entity.ServiceRequestStatus) ([]entity.ServiceRequest, error)
	DeleteByPatientFunc            func(ctx context.Context, db *gorm.DB, patientID uuid.UUID) error

	CreateCalls int32
	UpdateCalls int32
}

var _ repository.ServiceRequestRepository = (*mockServiceRequestRepository)(nil)

func (m *mockServiceRequestRepository) Create(ctx context.Context, db *gorm.DB, request *entity.ServiceRequest) error {
	atomic.AddInt32(&m.CreateCalls, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, db, request)
	}
	return nil
}

func (m *mockServiceRequestRepository) Update(ctx context.Context, db *gorm.DB, request *entity.ServiceRequest) error {
	atomic.AddInt32(&m.UpdateCalls, 1)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, db, request)
	}
	return nil
}

func (m *mockServiceRequestRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.ServiceRequest, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, db, id)
	}
	return nil, nil
}

func (m *mockServiceRequestRepository) FindByPatient(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.ServiceRequest, error) {
	if m.FindByPatientFunc != nil {
		return m.FindByPatientFunc(ctx, db, patientID)
	}
	return nil, nil
}

func (m *mockServiceRequestRepository) FindByFacility(ctx context.Context, db *gorm.DB, facilityID uuid.UUID, limit, offset int) ([]entity.ServiceRequest, int64, error) {
	if m.FindByFacilityFunc != nil {
		return m.FindByFacilityFunc(ctx, db, facilityID, limit, offset)
	}
	return nil, 0, nil
}

func (m *mockServiceRequestRepository) FindByFacilityAndDateRange(ctx context.Context, db *gorm.DB, facilityID uuid.UUID, start, end time.Time) ([]entity.ServiceRequest, error) {
	if m.FindByFacilityAndDateRangeFunc != nil {
		return m.FindByFacilityAndDateRangeFunc(ctx, db, facilityID, start, end)
	}
	return nil, nil
}

func (m *mockServiceRequestRepository) FindByPatientAndStatus(ctx context.Context, db *gorm.DB, patientID uuid.UUID, status entity.ServiceRequestStatus) ([]entity.ServiceRequest, error) {
	if m.FindByPatientAndStatusFunc != nil {
		return m.FindByPatientAndStatusFunc(ctx, db, patientID, status)
	}
	return nil, nil
}

func (m *mockServiceRequestRepository) DeleteByPatient(ctx context.Context, db *gorm.DB, patientID uuid.UUID) error {
	if m.DeleteByPatientFunc != nil {
		return m.DeleteByPatientFunc(ctx, db, patientID)
	}
	return nil
}
