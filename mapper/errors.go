package mapper

import (
	"errors"
	"fmt"
)

var (
	ErrMapNotFound        = errors.New("no map registered for type pair")
	ErrUnknownMember      = errors.New("unknown member")
	ErrResolvedType       = errors.New("resolver result does not fit member")
	ErrIncompatibleMember = errors.New("member types are not compatible")
	ErrNilSource          = errors.New("source is nil")
	ErrNilDestination     = errors.New("destination is nil")
)

// MemberError reports the destination member whose mapping failed.
type MemberError struct {
	Pair   string // e.g. "store.Order -> warehouse.OrderDto"
	Member string
	Err    error
}

func (e *MemberError) Error() string {
	return fmt.Sprintf("%s: member %s: %v", e.Pair, e.Member, e.Err)
}

func (e *MemberError) Unwrap() error {
	return e.Err
}
