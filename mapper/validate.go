package mapper

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"enum-mapper/convert"
	"enum-mapper/enum"
	"enum-mapper/internal/diagnostic"
	"enum-mapper/internal/match"
)

const maxSuggestions = 3

// Validate inspects every type map without mapping anything. It reports
// unknown member names, resolvers whose result type does not fit, members
// with no source, incompatible member types and enum pairs where some source
// member cannot convert.
func (m *Mapper) Validate() diagnostic.Diagnostics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tms := slices.Collect(maps.Values(m.maps))
	slices.SortFunc(tms, func(a, b *TypeMap) int {
		return strings.Compare(a.String(), b.String())
	})

	var diags diagnostic.Diagnostics
	for _, tm := range tms {
		m.validateMap(tm, &diags)
	}

	return diags
}

func (m *Mapper) validateMap(tm *TypeMap, diags *diagnostic.Diagnostics) {
	pair := tm.String()
	destFields := exportedFields(tm.dest)
	destNames := fieldNames(destFields)
	sourceNames := fieldNames(exportedFields(tm.source))

	for _, name := range slices.Sorted(maps.Keys(tm.members)) {
		if !slices.Contains(destNames, name) {
			diags.AddError(diagnostic.CodeUnknownMember, "destination has no member "+name, pair, name,
				match.Suggest(name, destNames, maxSuggestions)...)
		}

		from := tm.members[name].from
		if from == "" {
			continue
		}
		if _, ok := sourceField(tm.source, from); !ok {
			diags.AddError(diagnostic.CodeUnknownMember, "source has no member "+from, pair, name,
				match.Suggest(from, sourceNames, maxSuggestions)...)
		}
	}

	for _, field := range destFields {
		cfg := tm.members[field.Name]
		if cfg == nil {
			cfg = &memberConfig{}
		}

		switch {
		case cfg.ignore:
			continue
		case cfg.resolver != nil:
			validateResolver(pair, field, cfg.resolver, diags)
			continue
		}

		name := field.Name
		if cfg.from != "" {
			name = cfg.from
		}

		sf, ok := sourceField(tm.source, name)
		if !ok {
			if cfg.from == "" {
				diags.AddWarning(diagnostic.CodeUnmappedMember, "no source member, left unchanged", pair, field.Name)
			}
			continue
		}
		if sf.Name != name {
			diags.AddInfo(diagnostic.CodeNormalizedMember, "mapped from "+sf.Name, pair, field.Name)
		}

		m.validateTypes(pair, field.Name, sf.Type, field.Type, diags)
	}
}

func validateResolver(pair string, field reflect.StructField, r convert.ValueResolver, diags *diagnostic.Diagnostics) {
	rt := r.ResolvedType()
	if rt == nil || !rt.AssignableTo(field.Type) {
		diags.AddError(diagnostic.CodeResolverType,
			fmt.Sprintf("resolver returns %v, member is %v", rt, field.Type), pair, field.Name)

		return
	}

	diags.AddInfo(diagnostic.CodeCustomResolver, "resolved by custom resolver", pair, field.Name)
}

func (m *Mapper) validateTypes(pair, member string, st, dt reflect.Type, diags *diagnostic.Diagnostics) {
	srcEnum, srcOK := m.registry.Lookup(st)
	dstEnum, dstOK := m.registry.Lookup(dt)

	switch {
	case srcOK && dstOK:
		m.validateEnumPair(pair, member, srcEnum, dstEnum, diags)
	case srcOK && isNamedInteger(dt):
		diags.AddError(diagnostic.CodeUnregisteredEnum, fmt.Sprintf("%v is not a registered enum", dt), pair, member)
	case dstOK && isNamedInteger(st):
		diags.AddError(diagnostic.CodeUnregisteredEnum, fmt.Sprintf("%v is not a registered enum", st), pair, member)
	case st.AssignableTo(dt), convertibleScalar(st, dt):
	default:
		diags.AddError(diagnostic.CodeIncompatibleMember, fmt.Sprintf("cannot map %v to %v", st, dt), pair, member)
	}
}

func (m *Mapper) validateEnumPair(pair, member string, source, target *enum.Type, diags *diagnostic.Diagnostics) {
	if source.Same(target) {
		diags.AddInfo(diagnostic.CodeIdentityConversion, "enum type is shared, values pass through", pair, member)
		return
	}

	outcomes, err := m.resolver.Plan(source, target)
	if err != nil {
		diags.AddError(diagnostic.CodeConversionFailed, err.Error(), pair, member)
		return
	}

	names := make([]string, 0, target.Len())
	for _, mem := range target.Members() {
		names = append(names, mem.Name)
	}

	for _, o := range outcomes {
		switch {
		case o.Err != nil:
			diags.AddError(diagnostic.CodeConversionFailed, o.Err.Error(), pair, member,
				match.Suggest(o.Source.Name(), names, maxSuggestions)...)
		case o.Strategy == convert.StrategyValue:
			diags.AddWarning(diagnostic.CodeValueMatch,
				fmt.Sprintf("%s converts by value to %s", o.Source.Name(), o.Target.Name()), pair, member)
		}
	}
}
