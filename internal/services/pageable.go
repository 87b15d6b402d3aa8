package services

import (
	"strconv"

	"github.com/autohaus/autohaus/internal/config"
	"gorm.io/gorm"
)

// Pageable describes the requested slice of a result set. Number is
// zero-based. Size 0 means "all records, unpaginated".
type Pageable struct {
	Number int
	Size   int
}

// Slice is one page of results together with the overall total.
type Slice[T any] struct {
	Content       []T
	TotalElements int64
	Pageable      Pageable
}

// TotalPages derives the page count from the total and the page size.
func (s Slice[T]) TotalPages() int64 {
	if s.Pageable.Size <= 0 {
		if s.TotalElements > 0 {
			return 1
		}
		return 0
	}
	size := int64(s.Pageable.Size)
	return (s.TotalElements + size - 1) / size
}

// CreatePageable builds a Pageable from raw wire values. The wire page
// number is 1-based; missing or unusable values fall back to the defaults.
// An explicit size=0 requests the full result set.
func CreatePageable(pageStr, sizeStr string) Pageable {
	number := config.DefaultPageNumber
	if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
		number = page - 1
	}

	size := config.DefaultPageSize
	if sizeStr != "" {
		if s, err := strconv.Atoi(sizeStr); err == nil && s >= 0 {
			size = s
			if size > config.MaxPageSize {
				size = config.MaxPageSize
			}
		}
	}

	return Pageable{Number: number, Size: size}
}

// Paginate returns a GORM scope applying offset and limit for the given
// Pageable. Size 0 leaves the query unrestricted.
func Paginate(pageable Pageable) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pageable.Size <= 0 {
			return db
		}
		return db.Offset(pageable.Number * pageable.Size).Limit(pageable.Size)
	}
}
