package convert

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"enum-mapper/enum"
)

var (
	ErrNoMatchingName   = errors.New("no enum member with matching name")
	ErrConversionFailed = errors.New("enum conversion failed")
	ErrUnexpectedModel  = errors.New("resolver received an unexpected model")
	ErrInvalidSource    = errors.New("source value has no enum type")
	ErrNilTarget        = errors.New("target enum type is nil")
)

// NameError reports a name lookup that found no member in the target type.
type NameError struct {
	Name   string
	Target *enum.Type
}

func (e *NameError) Error() string {
	return fmt.Sprintf("%s has no member named %q", e.Target, e.Name)
}

func (e *NameError) Unwrap() error {
	return ErrNoMatchingName
}

// ConversionError reports that no step of the pipeline could convert Value.
// It carries enough context to report the offending mapping.
type ConversionError struct {
	Source *enum.Type
	Target *enum.Type
	Value  enum.Value
	Mode   Mode
}

func (e *ConversionError) Error() string {
	var tried []string
	if e.Value.IsDeclared() {
		tried = append(tried, fmt.Sprintf("no member named %q", e.Value.Name()))
	}
	if e.Mode == ModeDefault {
		tried = append(tried, fmt.Sprintf("no member with value %d", e.Value.Int()))
	}
	if len(tried) == 0 {
		tried = append(tried, "undeclared values only convert by value")
	}

	return fmt.Sprintf("cannot convert %s to %s: %s", e.Value, e.Target, strings.Join(tried, " and "))
}

func (e *ConversionError) Unwrap() error {
	return ErrConversionFailed
}

// ModelError reports a ValueResolver invoked with a model of the wrong type.
type ModelError struct {
	Want reflect.Type
	Got  reflect.Type
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("resolver expects %v, got %v", e.Want, e.Got)
}

func (e *ModelError) Unwrap() error {
	return ErrUnexpectedModel
}
