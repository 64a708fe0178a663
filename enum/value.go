package enum

import (
	"fmt"
	"reflect"
)

// Value is a single value of an enum type.
// The zero Value has no type and is never returned by a successful lookup.
type Value struct {
	typ  *Type
	name string
	int  int64
}

// Type returns the enum type the value belongs to.
func (v Value) Type() *Type {
	return v.typ
}

// Name returns the symbolic name, or "" for an undeclared value.
func (v Value) Name() string {
	return v.name
}

// Int returns the underlying integer.
func (v Value) Int() int64 {
	return v.int
}

// IsDeclared reports whether the value is one of the type's members.
func (v Value) IsDeclared() bool {
	return v.name != ""
}

// IsValid reports whether the value belongs to a type.
func (v Value) IsValid() bool {
	return v.typ != nil
}

// String returns "Type.Name", or "Type(n)" for undeclared values.
func (v Value) String() string {
	if v.typ == nil {
		return "<invalid>"
	}
	if v.name == "" {
		return fmt.Sprintf("%s(%s)", v.typ.id.Name, formatInt(v.typ, v.int))
	}

	return v.typ.id.Name + "." + v.name
}

// Reflect returns the value as a reflect.Value of the enum's runtime type.
func (v Value) Reflect() (reflect.Value, error) {
	if v.typ == nil || v.typ.rtype == nil {
		return reflect.Value{}, fmt.Errorf("%s: %w", v, ErrNoReflectType)
	}

	rv := reflect.New(v.typ.rtype).Elem()
	if isUnsigned(rv.Kind()) {
		rv.SetUint(uint64(v.int))
	} else {
		rv.SetInt(v.int)
	}

	return rv, nil
}

// Interface returns the value as the enum's runtime type boxed in an any.
func (v Value) Interface() (any, error) {
	rv, err := v.Reflect()
	if err != nil {
		return nil, err
	}

	return rv.Interface(), nil
}

// As returns the value converted to T, which must be the enum's runtime type.
func As[T Integer](v Value) (T, error) {
	var zero T

	rt := reflect.TypeFor[T]()
	if v.typ == nil || v.typ.rtype != rt {
		return zero, fmt.Errorf("%s is not %v: %w", v, rt, ErrTypeMismatch)
	}

	rv, err := v.Reflect()
	if err != nil {
		return zero, err
	}

	return rv.Interface().(T), nil
}
