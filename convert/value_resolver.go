package convert

import (
	"fmt"
	"reflect"

	"enum-mapper/enum"
)

// ValueResolver computes a destination member's value from a source model.
// Registered for a member, it replaces the default pipeline for that member.
// Implementations reused across goroutines must not hold shared mutable state.
type ValueResolver interface {
	// Resolve returns the value to assign to the destination member.
	Resolve(model any) (any, error)
	// ResolvedType is the type of every value Resolve returns.
	ResolvedType() reflect.Type
}

type funcResolver[M, T any] struct {
	fn func(M) (T, error)
}

// Func adapts fn to a ValueResolver bound to model type M and result type T.
func Func[M, T any](fn func(M) (T, error)) ValueResolver {
	return funcResolver[M, T]{fn: fn}
}

func (f funcResolver[M, T]) Resolve(model any) (any, error) {
	m, ok := model.(M)
	if !ok {
		return nil, &ModelError{Want: reflect.TypeFor[M](), Got: reflect.TypeOf(model)}
	}

	return f.fn(m)
}

func (f funcResolver[M, T]) ResolvedType() reflect.Type {
	return reflect.TypeFor[T]()
}

// EnumValueResolver converts In values to Out values by member name.
// It performs name matching only: a name missing from Out is an error even
// when a member with the same integer exists.
type EnumValueResolver[In, Out enum.Integer] struct {
	source *enum.Type
	target *enum.Type
}

// NewEnumValueResolver looks up both descriptors in r once; the resolver is
// then reusable across any number of mappings.
func NewEnumValueResolver[In, Out enum.Integer](r *enum.Registry) (*EnumValueResolver[In, Out], error) {
	source, err := r.MustLookup(reflect.TypeFor[In]())
	if err != nil {
		return nil, fmt.Errorf("enum value resolver source: %w", err)
	}

	target, err := r.MustLookup(reflect.TypeFor[Out]())
	if err != nil {
		return nil, fmt.Errorf("enum value resolver target: %w", err)
	}

	return &EnumValueResolver[In, Out]{source: source, target: target}, nil
}

// MustEnumValueResolver is like NewEnumValueResolver on enum.Default but panics on error.
func MustEnumValueResolver[In, Out enum.Integer]() *EnumValueResolver[In, Out] {
	r, err := NewEnumValueResolver[In, Out](enum.Default)
	if err != nil {
		panic(err)
	}

	return r
}

// Convert converts in by name.
func (r *EnumValueResolver[In, Out]) Convert(in In) (Out, error) {
	var zero Out

	src, err := r.source.ValueOf(reflect.ValueOf(in))
	if err != nil {
		return zero, err
	}

	out, err := ResolveName(src, r.target)
	if err != nil {
		return zero, err
	}

	return enum.As[Out](out)
}

// Resolve implements ValueResolver. The model must be an In value, typically
// supplied through a FromMember registration.
func (r *EnumValueResolver[In, Out]) Resolve(model any) (any, error) {
	in, ok := model.(In)
	if !ok {
		return nil, &ModelError{Want: reflect.TypeFor[In](), Got: reflect.TypeOf(model)}
	}

	return r.Convert(in)
}

// ResolvedType implements ValueResolver.
func (r *EnumValueResolver[In, Out]) ResolvedType() reflect.Type {
	return reflect.TypeFor[Out]()
}
