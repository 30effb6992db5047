package usecase

import (
	"context"
	"strings"

	"emr-service/internal/converter"
	"emr-service/internal/delivery/dto"
	"emr-service/internal/domain/entity"
	"emr-service/internal/domain/repository"
	"emr-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type FacilityUsecase interface {
	Create(ctx context.Context, req *dto.CreateFacilityRequest) (*dto.FacilityResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.FacilityResponse, error)
	ListActive(ctx context.Context) (*dto.FacilityListResponse, error)
	AttachServiceType(ctx context.Context, facilityID uuid.UUID, serviceTypeID int) (*dto.FacilityResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*dto.FacilityResponse, error)
}

type facilityUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	facilityRepo    repository.FacilityRepository
	serviceTypeRepo repository.ServiceTypeRepository
	catalogCache    *service.CatalogCache
}

func NewFacilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	facilityRepo repository.FacilityRepository,
	serviceTypeRepo repository.ServiceTypeRepository,
	catalogCache *service.CatalogCache,
) FacilityUsecase {
	return &facilityUsecase{
		db:              db,
		log:             log,
		facilityRepo:    facilityRepo,
		serviceTypeRepo: serviceTypeRepo,
		catalogCache:    catalogCache,
	}
}

func (u *facilityUsecase) Create(ctx context.Context, req *dto.CreateFacilityRequest) (*dto.FacilityResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))

	exists, err := u.facilityRepo.ExistsByCode(ctx, u.db, code)
	if err != nil {
		u.log.Warnf("Failed to check facility code %s: %+v", code, err)
		return nil, err
	}
	if exists {
		return nil, ErrFacilityCodeExists
	}

	facility := &entity.Facility{
		Code:    code,
		Name:    strings.TrimSpace(req.Name),
		Address: strings.TrimSpace(req.Address),
		City:    strings.TrimSpace(req.City),
		State:   strings.TrimSpace(req.State),
		ZipCode: strings.TrimSpace(req.ZipCode),
		Phone:   strings.TrimSpace(req.Phone),
		Email:   strings.TrimSpace(req.Email),
		Active:  true,
	}

	if err := u.facilityRepo.Create(ctx, u.db, facility); err != nil {
		u.log.Warnf("Failed to create facility: %+v", err)
		if isDuplicateKeyError(err, "code") {
			return nil, ErrFacilityCodeExists
		}
		return nil, err
	}

	u.catalogCache.InvalidateFacility(ctx, facility.ID)
	u.log.Infof("Facility created: id=%s, code=%s", facility.ID, facility.Code)

	return converter.FacilityToResponse(facility), nil
}

func (u *facilityUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.FacilityResponse, error) {
	if cached, ok := u.catalogCache.GetFacility(ctx, id); ok {
		return converter.FacilityToResponse(cached), nil
	}

	facility, err := u.facilityRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find facility %s: %+v", id, err)
		return nil, err
	}
	if facility == nil {
		return nil, ErrFacilityNotFound
	}

	u.catalogCache.SetFacility(ctx, facility)
	return converter.FacilityToResponse(facility), nil
}

func (u *facilityUsecase) ListActive(ctx context.Context) (*dto.FacilityListResponse, error) {
	if cached, ok := u.catalogCache.GetActiveFacilities(ctx); ok {
		return &dto.FacilityListResponse{
			Facilities: converter.FacilitiesToResponses(cached),
			Total:      len(cached),
		}, nil
	}

	facilities, err := u.facilityRepo.FindActive(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list active facilities: %+v", err)
		return nil, err
	}

	u.catalogCache.SetActiveFacilities(ctx, facilities)

	return &dto.FacilityListResponse{
		Facilities: converter.FacilitiesToResponses(facilities),
		Total:      len(facilities),
	}, nil
}

// AttachServiceType adds a service type to the facility's offered set.
// Attaching an already-attached service type is a no-op, not an error.
func (u *facilityUsecase) AttachServiceType(ctx context.Context, facilityID uuid.UUID, serviceTypeID int) (*dto.FacilityResponse, error) {
	facility, err := u.facilityRepo.FindByID(ctx, u.db, facilityID)
	if err != nil {
		u.log.Warnf("Failed to find facility %s: %+v", facilityID, err)
		return nil, err
	}
	if facility == nil {
		return nil, ErrFacilityNotFound
	}

	serviceType, err := u.serviceTypeRepo.FindByID(ctx, u.db, serviceTypeID)
	if err != nil {
		u.log.Warnf("Failed to find service type %d: %+v", serviceTypeID, err)
		return nil, err
	}
	if serviceType == nil {
		return nil, ErrServiceTypeNotFound
	}

	if facility.OffersService(serviceType.ID) {
		return converter.FacilityToResponse(facility), nil
	}

	if err := u.facilityRepo.AppendService(ctx, u.db, facility, serviceType); err != nil {
		u.log.Warnf("Failed to attach service type %d to facility %s: %+v", serviceTypeID, facilityID, err)
		return nil, err
	}

	u.catalogCache.InvalidateFacility(ctx, facilityID)
	u.log.Infof("Service type %d attached to facility %s", serviceTypeID, facilityID)

	facility.Services = append(facility.Services, *serviceType)
	return converter.FacilityToResponse(facility), nil
}

// Deactivate marks the facility inactive. Facilities are never physically
// removed; deactivating an inactive facility is a no-op.
func (u *facilityUsecase) Deactivate(ctx context.Context, id uuid.UUID) (*dto.FacilityResponse, error) {
	facility, err := u.facilityRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find facility %s: %+v", id, err)
		return nil, err
	}
	if facility == nil {
		return nil, ErrFacilityNotFound
	}

	if !facility.Active {
		return converter.FacilityToResponse(facility), nil
	}

	facility.Deactivate()
	if err := u.facilityRepo.Update(ctx, u.db, facility); err != nil {
		u.log.Warnf("Failed to deactivate facility %s: %+v", id, err)
		return nil, err
	}

	u.catalogCache.InvalidateFacility(ctx, id)
	u.log.Infof("Facility deactivated: id=%s, code=%s", facility.ID, facility.Code)

	return converter.FacilityToResponse(facility), nil
}
