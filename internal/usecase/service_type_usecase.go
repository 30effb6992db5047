package usecase

import (
	"context"
	"strings"

	"emr-service/internal/converter"
	"emr-service/internal/delivery/dto"
	"emr-service/internal/domain/entity"
	"emr-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ServiceTypeUsecase interface {
	Create(ctx context.Context, req *dto.CreateServiceTypeRequest) (*dto.ServiceTypeResponse, error)
	List(ctx context.Context, category string) (*dto.ServiceTypeListResponse, error)
	ListByFacility(ctx context.Context, facilityID uuid.UUID) (*dto.ServiceTypeListResponse, error)
}

type serviceTypeUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	serviceTypeRepo repository.ServiceTypeRepository
	facilityRepo    repository.FacilityRepository
}

func NewServiceTypeUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	serviceTypeRepo repository.ServiceTypeRepository,
	facilityRepo repository.FacilityRepository,
) ServiceTypeUsecase {
	return &serviceTypeUsecase{
		db:              db,
		log:             log,
		serviceTypeRepo: serviceTypeRepo,
		facilityRepo:    facilityRepo,
	}
}

func (u *serviceTypeUsecase) Create(ctx context.Context, req *dto.CreateServiceTypeRequest) (*dto.ServiceTypeResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))

	exists, err := u.serviceTypeRepo.ExistsByCode(ctx, u.db, code)
	if err != nil {
		u.log.Warnf("Failed to check service type code %s: %+v", code, err)
		return nil, err
	}
	if exists {
		return nil, ErrServiceTypeCodeExists
	}

	serviceType := &entity.ServiceType{
		Code:        code,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Category:    entity.ServiceCategory(req.Category),
	}

	if err := u.serviceTypeRepo.Create(ctx, u.db, serviceType); err != nil {
		u.log.Warnf("Failed to create service type: %+v", err)
		if isDuplicateKeyError(err, "code") {
			return nil, ErrServiceTypeCodeExists
		}
		return nil, err
	}

	u.log.Infof("Service type created: id=%d, code=%s", serviceType.ID, serviceType.Code)
	return converter.ServiceTypeToResponse(serviceType), nil
}

// List returns all service types, optionally filtered by category.
func (u *serviceTypeUsecase) List(ctx context.Context, category string) (*dto.ServiceTypeListResponse, error) {
	var serviceTypes []entity.ServiceType
	var err error

	category = strings.ToUpper(strings.TrimSpace(category))
	if category != "" {
		if !entity.ValidServiceCategory(category) {
			return nil, ErrInvalidServiceCategory
		}
		serviceTypes, err = u.serviceTypeRepo.FindByCategory(ctx, u.db, entity.ServiceCategory(category))
	} else {
		serviceTypes, err = u.serviceTypeRepo.FindAll(ctx, u.db)
	}
	if err != nil {
		u.log.Warnf("Failed to list service types: %+v", err)
		return nil, err
	}

	return &dto.ServiceTypeListResponse{
		ServiceTypes: converter.ServiceTypesToResponses(serviceTypes),
		Total:        len(serviceTypes),
	}, nil
}

// ListByFacility returns the service types offered by one facility.
func (u *serviceTypeUsecase) ListByFacility(ctx context.Context, facilityID uuid.UUID) (*dto.ServiceTypeListResponse, error) {
	exists, err := u.facilityRepo.ExistsByID(ctx, u.db, facilityID)
	if err != nil {
		u.log.Warnf("Failed to check facility %s: %+v", facilityID, err)
		return nil, err
	}
	if !exists {
		return nil, ErrFacilityNotFound
	}

	serviceTypes, err := u.serviceTypeRepo.FindByFacility(ctx, u.db, facilityID)
	if err != nil {
		u.log.Warnf("Failed to list service types for facility %s: %+v", facilityID, err)
		return nil, err
	}

	return &dto.ServiceTypeListResponse{
		ServiceTypes: converter.ServiceTypesToResponses(serviceTypes),
		Total:        len(serviceTypes),
	}, nil
}
