package handler

import (
	"math"
	"strconv"

	"emr-service/pkg/response"
)

const (
	defaultPage = 0
	defaultSize = 20
)

// paginationParams parses zero-indexed page and size query parameters,
// falling back to the defaults on missing or malformed input.
func paginationParams(pageParam, sizeParam string) (int, int) {
	page := defaultPage
	if p, err := strconv.Atoi(pageParam); err == nil && p >= 0 {
		page = p
	}

	size := defaultSize
	if s, err := strconv.Atoi(sizeParam); err == nil && s >= 1 {
		size = s
	}

	return page, size
}

func pageMeta(page, size int, total int64) *response.Meta {
	return &response.Meta{
		Page:       page,
		Limit:      size,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(size))),
	}
}
