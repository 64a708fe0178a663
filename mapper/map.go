package mapper

import (
	"fmt"
	"reflect"

	"enum-mapper/convert"
	"enum-mapper/enum"
)

// Map maps src into a new D using the map registered for their types.
// src may be a struct or a pointer to one.
func Map[D any](m *Mapper, src any) (D, error) {
	var dst D
	err := MapTo(m, src, &dst)

	return dst, err
}

// MapTo maps src into *dst. Members without a source keep their current value.
func MapTo[D any](m *Mapper, src any, dst *D) error {
	if dst == nil {
		return ErrNilDestination
	}

	sv := reflect.ValueOf(src)
	if sv.Kind() == reflect.Pointer {
		if sv.IsNil() {
			return ErrNilSource
		}
		sv = sv.Elem()
	}
	if !sv.IsValid() {
		return ErrNilSource
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	dt := reflect.TypeFor[D]()
	tm, ok := m.maps[pairKey{source: sv.Type(), dest: dt}]
	if !ok {
		return fmt.Errorf("%s -> %s: %w", typeName(sv.Type()), typeName(dt), ErrMapNotFound)
	}

	return m.mapStruct(tm, sv, reflect.ValueOf(dst).Elem())
}

func (m *Mapper) mapStruct(tm *TypeMap, src, dst reflect.Value) error {
	for _, field := range exportedFields(tm.dest) {
		out := dst.FieldByIndex(field.Index)

		err := m.mapMember(tm, field, src, out)
		if err == nil {
			continue
		}

		if m.policy == AbortMapping {
			return &MemberError{Pair: tm.String(), Member: field.Name, Err: err}
		}

		out.Set(reflect.Zero(field.Type))
		m.log.Warn().
			Err(err).
			Str("pair", tm.String()).
			Str("member", field.Name).
			Msg("member skipped")
	}

	return nil
}

func (m *Mapper) mapMember(tm *TypeMap, field reflect.StructField, src, out reflect.Value) error {
	cfg := tm.members[field.Name]
	if cfg == nil {
		cfg = &memberConfig{}
	}

	switch {
	case cfg.ignore:
		return nil
	case cfg.resolver != nil:
		return m.resolveCustom(tm, cfg, field, src, out)
	}

	name := field.Name
	if cfg.from != "" {
		name = cfg.from
	}

	sf, ok := sourceField(tm.source, name)
	if !ok {
		if cfg.from != "" {
			return fmt.Errorf("source member %q: %w", name, ErrUnknownMember)
		}

		m.log.Debug().Str("pair", tm.String()).Str("member", field.Name).Msg("member has no source")

		return nil
	}

	v, err := m.convertValue(src.FieldByIndex(sf.Index), field.Type)
	if err != nil {
		return err
	}
	out.Set(v)

	return nil
}

func (m *Mapper) resolveCustom(
	tm *TypeMap,
	cfg *memberConfig,
	field reflect.StructField,
	src, out reflect.Value,
) error {
	model := src.Interface()
	if cfg.from != "" {
		sf, ok := sourceField(tm.source, cfg.from)
		if !ok {
			return fmt.Errorf("source member %q: %w", cfg.from, ErrUnknownMember)
		}
		model = src.FieldByIndex(sf.Index).Interface()
	}

	res, err := cfg.resolver.Resolve(model)
	if err != nil {
		return err
	}

	rv := reflect.ValueOf(res)
	if !rv.IsValid() {
		out.Set(reflect.Zero(field.Type))
		return nil
	}
	if !rv.Type().AssignableTo(field.Type) {
		return fmt.Errorf("resolver returned %v for %v: %w", rv.Type(), field.Type, ErrResolvedType)
	}

	m.log.Debug().
		Str("pair", tm.String()).
		Str("member", field.Name).
		Stringer("strategy", convert.StrategyCustom).
		Msg("member resolved")
	out.Set(rv)

	return nil
}

// convertValue turns a source member value into a value of type dt.
func (m *Mapper) convertValue(sv reflect.Value, dt reflect.Type) (reflect.Value, error) {
	st := sv.Type()
	srcEnum, srcOK := m.registry.Lookup(st)
	dstEnum, dstOK := m.registry.Lookup(dt)

	switch {
	case srcOK && dstOK:
		return m.convertEnum(sv, srcEnum, dstEnum)
	case srcOK && isNamedInteger(dt):
		return reflect.Value{}, fmt.Errorf("%v: %w", dt, enum.ErrNotRegistered)
	case dstOK && isNamedInteger(st):
		return reflect.Value{}, fmt.Errorf("%v: %w", st, enum.ErrNotRegistered)
	case st.AssignableTo(dt):
		return sv, nil
	case convertibleScalar(st, dt):
		return sv.Convert(dt), nil
	default:
		return reflect.Value{}, fmt.Errorf("cannot map %v to %v: %w", st, dt, ErrIncompatibleMember)
	}
}

func (m *Mapper) convertEnum(sv reflect.Value, source, target *enum.Type) (reflect.Value, error) {
	ev, err := source.ValueOf(sv)
	if err != nil {
		return reflect.Value{}, err
	}

	out, _, err := m.resolver.Resolve(ev, target)
	if err != nil {
		return reflect.Value{}, err
	}

	return out.Reflect()
}
