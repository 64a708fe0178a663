// Package warehouse holds the target-side DTOs used in examples and tests.
package warehouse

import (
	"errors"

	"enum-mapper/enum"
	"enum-mapper/store"
)

// StatusForDto mirrors store.Status member for member.
type StatusForDto int

const (
	StatusForDtoInProgress StatusForDto = 1
	StatusForDtoComplete   StatusForDto = 2
)

// LegacyStatus shares numeric codes with store.Status but none of its names.
type LegacyStatus int

const (
	LegacyStatusActive LegacyStatus = 1
	LegacyStatusDone   LegacyStatus = 2
)

// ReviewStatus shares one name with store.Status and no numeric codes.
type ReviewStatus int

const (
	ReviewStatusInProgress ReviewStatus = 7
	ReviewStatusClosed     ReviewStatus = 8
)

// OrderDto reuses the source enum type verbatim.
type OrderDto struct {
	ID     int64
	Status store.Status
}

// OrderDtoWithOwnStatus declares its own status enum.
type OrderDtoWithOwnStatus struct {
	ID     int64
	Status StatusForDto
}

// OrderSummary is populated from store.Order with a legacy status code.
type OrderSummary struct {
	ID     int64
	Status LegacyStatus
	Total  int64
}

// RegisterEnums declares the enum types of this package in r.
func RegisterEnums(r *enum.Registry) error {
	var errs []error

	for _, build := range []func() (*enum.Type, error){
		func() (*enum.Type, error) {
			return enum.Of(map[string]StatusForDto{
				"InProgress": StatusForDtoInProgress,
				"Complete":   StatusForDtoComplete,
			})
		},
		func() (*enum.Type, error) {
			return enum.Of(map[string]LegacyStatus{
				"Active": LegacyStatusActive,
				"Done":   LegacyStatusDone,
			})
		},
		func() (*enum.Type, error) {
			return enum.Of(map[string]ReviewStatus{
				"InProgress": ReviewStatusInProgress,
				"Closed":     ReviewStatusClosed,
			})
		},
	} {
		t, err := build()
		if err == nil {
			err = r.Register(t)
		}
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
