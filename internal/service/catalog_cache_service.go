package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"emr-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key layout for the facility catalog
	facilityKeyPrefix   = "catalog:facility:"
	activeFacilitiesKey = "catalog:facilities:active"

	catalogCacheTTL = 5 * time.Minute
)

// CatalogCache keeps the facility catalog (slow-changing reference data) in
// Redis in front of the relational store. Every operation is best effort:
// a cache failure is logged and the caller falls through to the database.
type CatalogCache struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewCatalogCache(client *redis.Client, log *logrus.Logger) *CatalogCache {
	return &CatalogCache{
		client: client,
		log:    log,
	}
}

// GetFacility returns the cached facility and true on a hit.
func (c *CatalogCache) GetFacility(ctx context.Context, id uuid.UUID) (*entity.Facility, bool) {
	if c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, facilityKeyPrefix+id.String()).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read facility %s from cache: %+v", id, err)
		}
		return nil, false
	}

	var facility entity.Facility
	if err := json.Unmarshal(data, &facility); err != nil {
		c.log.Warnf("Failed to decode cached facility %s: %+v", id, err)
		return nil, false
	}
	return &facility, true
}

func (c *CatalogCache) SetFacility(ctx context.Context, facility *entity.Facility) {
	if c.client == nil || facility == nil {
		return
	}

	data, err := json.Marshal(facility)
	if err != nil {
		c.log.Warnf("Failed to encode facility %s for cache: %+v", facility.ID, err)
		return
	}
	if err := c.client.Set(ctx, facilityKeyPrefix+facility.ID.String(), data, catalogCacheTTL).Err(); err != nil {
		c.log.Warnf("Failed to cache facility %s: %+v", facility.ID, err)
	}
}

// GetActiveFacilities returns the cached active facility list and true on a hit.
func (c *CatalogCache) GetActiveFacilities(ctx context.Context) ([]entity.Facility, bool) {
	if c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, activeFacilitiesKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read active facilities from cache: %+v", err)
		}
		return nil, false
	}

	var facilities []entity.Facility
	if err := json.Unmarshal(data, &facilities); err != nil {
		c.log.Warnf("Failed to decode cached facility list: %+v", err)
		return nil, false
	}
	return facilities, true
}

func (c *CatalogCache) SetActiveFacilities(ctx context.Context, facilities []entity.Facility) {
	if c.client == nil {
		return
	}

	data, err := json.Marshal(facilities)
	if err != nil {
		c.log.Warnf("Failed to encode facility list for cache: %+v", err)
		return
	}
	if err := c.client.Set(ctx, activeFacilitiesKey, data, catalogCacheTTL).Err(); err != nil {
		c.log.Warnf("Failed to cache facility list: %+v", err)
	}
}

// InvalidateFacility drops the per-facility entry and the active list after
// a catalog mutation.
func (c *CatalogCache) InvalidateFacility(ctx context.Context, id uuid.UUID) {
	if c.client == nil {
		return
	}

	if err := c.client.Del(ctx, facilityKeyPrefix+id.String(), activeFacilitiesKey).Err(); err != nil {
		c.log.Warnf("Failed to invalidate facility %s in cache: %+v", id, err)
	}
}
