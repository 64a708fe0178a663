package mapper

import (
	"reflect"

	"enum-mapper/internal/match"
)

// exportedFields returns the exported, non-embedded fields of struct type t.
func exportedFields(t reflect.Type) []reflect.StructField {
	var fields []reflect.StructField
	for i := range t.NumField() {
		f := t.Field(i)
		if f.IsExported() && !f.Anonymous {
			fields = append(fields, f)
		}
	}

	return fields
}

func fieldNames(fields []reflect.StructField) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}

	return names
}

// sourceField finds the top-level member name in t, first exactly and then
// by normalized name.
func sourceField(t reflect.Type, name string) (reflect.StructField, bool) {
	fields := exportedFields(t)
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}

	found, ok := match.FindNormalized(name, fieldNames(fields))
	if !ok {
		return reflect.StructField{}, false
	}

	for _, f := range fields {
		if f.Name == found {
			return f, true
		}
	}

	return reflect.StructField{}, false
}

func isNamedInteger(t reflect.Type) bool {
	return t.PkgPath() != "" && isIntegerKind(t.Kind())
}

func isIntegerKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func isNumericKind(k reflect.Kind) bool {
	return isIntegerKind(k) || k == reflect.Float32 || k == reflect.Float64
}

// convertibleScalar reports whether a Go conversion from st to dt is a plain
// scalar conversion: numeric to numeric, string to string or bool to bool.
func convertibleScalar(st, dt reflect.Type) bool {
	sk, dk := st.Kind(), dt.Kind()

	switch {
	case isNumericKind(sk) && isNumericKind(dk):
		return true
	case sk == reflect.String && dk == reflect.String,
		sk == reflect.Bool && dk == reflect.Bool:
		return true
	default:
		return false
	}
}
