// Package store holds the source-side domain model used in examples and tests.
package store

import (
	"enum-mapper/enum"
)

//go:generate go tool stringer -type=Status -trimprefix=Status -output=status_string.go

// Status is the lifecycle state of an order.
type Status int

const (
	StatusInProgress Status = 1
	StatusComplete   Status = 2
)

// Order is a transaction made by a customer.
type Order struct {
	ID         int64
	CustomerID int64
	Status     Status
	TotalCents int64
	Note       string
}

// RegisterEnums declares the enum types of this package in r.
func RegisterEnums(r *enum.Registry) error {
	t, err := enum.OfStringer(StatusInProgress, StatusComplete)
	if err != nil {
		return err
	}

	return r.Register(t)
}
