package enum

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
)

var (
	ErrEmptyName      = errors.New("enum member name is empty")
	ErrDuplicateName  = errors.New("enum member name is declared twice")
	ErrDuplicateValue = errors.New("enum member value is declared twice")
	ErrNotInteger     = errors.New("enum type must have an integer underlying type")
	ErrNoReflectType  = errors.New("enum type has no runtime type")
	ErrTypeMismatch   = errors.New("value does not belong to enum type")
)

// Integer is the set of underlying types an enum may have.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// TypeID uniquely identifies an enum type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "enum-mapper/store"
	Name    string // e.g., "Status"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Member is a single named constant of an enum type.
// Unsigned values above math.MaxInt64 are kept as their two's complement bit pattern.
type Member struct {
	Name  string
	Value int64
}

// Type describes an enum type: its identity and the full set of members.
type Type struct {
	id      TypeID
	rtype   reflect.Type // nil for descriptors built from static analysis
	members []Member     // ordered by value
	byName  map[string]int
	byValue map[int64]int
}

// New builds a descriptor without a runtime type. Used for types discovered
// by static analysis, where only names and values are known.
func New(id TypeID, members ...Member) (*Type, error) {
	return build(id, nil, members)
}

// Reflect builds a descriptor bound to the runtime type rt.
func Reflect(rt reflect.Type, members ...Member) (*Type, error) {
	if rt == nil || !isInteger(rt.Kind()) {
		return nil, fmt.Errorf("%v: %w", rt, ErrNotInteger)
	}

	return build(TypeID{PkgPath: rt.PkgPath(), Name: rt.Name()}, rt, members)
}

// Of builds a descriptor for T from a name to value table.
func Of[T Integer](values map[string]T) (*Type, error) {
	rt := reflect.TypeFor[T]()

	members := make([]Member, 0, len(values))
	for name, v := range values {
		members = append(members, Member{Name: name, Value: toInt64(reflect.ValueOf(v))})
	}

	return Reflect(rt, members...)
}

// OfStringer builds a descriptor for T taking member names from String().
func OfStringer[T interface {
	Integer
	fmt.Stringer
}](values ...T) (*Type, error) {
	members := make([]Member, 0, len(values))
	for _, v := range values {
		members = append(members, Member{Name: v.String(), Value: toInt64(reflect.ValueOf(v))})
	}

	return Reflect(reflect.TypeFor[T](), members...)
}

func build(id TypeID, rt reflect.Type, members []Member) (*Type, error) {
	t := &Type{
		id:      id,
		rtype:   rt,
		members: slices.Clone(members),
		byName:  make(map[string]int, len(members)),
		byValue: make(map[int64]int, len(members)),
	}

	// Sort first so the lookup tables index the final order.
	slices.SortStableFunc(t.members, func(a, b Member) int {
		switch {
		case a.Value < b.Value:
			return -1
		case a.Value > b.Value:
			return 1
		default:
			return 0
		}
	})

	for i, m := range t.members {
		if m.Name == "" {
			return nil, fmt.Errorf("%s: %w", id, ErrEmptyName)
		}
		if _, ok := t.byName[m.Name]; ok {
			return nil, fmt.Errorf("%s.%s: %w", id, m.Name, ErrDuplicateName)
		}
		if prev, ok := t.byValue[m.Value]; ok {
			return nil, fmt.Errorf("%s.%s and %s.%s = %d: %w",
				id, t.members[prev].Name, id, m.Name, m.Value, ErrDuplicateValue)
		}

		t.byName[m.Name] = i
		t.byValue[m.Value] = i
	}

	return t, nil
}

// ID returns the identity of the enum type.
func (t *Type) ID() TypeID {
	return t.id
}

// ReflectType returns the runtime type, or nil when the descriptor came from
// static analysis.
func (t *Type) ReflectType() reflect.Type {
	return t.rtype
}

// String returns the fully qualified type name.
func (t *Type) String() string {
	return t.id.String()
}

// Members returns a copy of the members ordered by value.
func (t *Type) Members() []Member {
	return slices.Clone(t.members)
}

// Len returns the number of declared members.
func (t *Type) Len() int {
	return len(t.members)
}

// Same reports whether t and other describe the same enum type.
func (t *Type) Same(other *Type) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t == other {
		return true
	}
	if t.rtype != nil && other.rtype != nil {
		return t.rtype == other.rtype
	}

	return t.id == other.id
}

// ByName returns the member declared with the given name.
func (t *Type) ByName(name string) (Value, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Value{}, false
	}

	return Value{typ: t, name: t.members[i].Name, int: t.members[i].Value}, true
}

// ByValue returns the member declared with the given integer value.
func (t *Type) ByValue(v int64) (Value, bool) {
	i, ok := t.byValue[v]
	if !ok {
		return Value{}, false
	}

	return Value{typ: t, name: t.members[i].Name, int: t.members[i].Value}, true
}

// Value returns the value of t holding v. The name is empty when v is not a
// declared member.
func (t *Type) Value(v int64) Value {
	if m, ok := t.ByValue(v); ok {
		return m
	}

	return Value{typ: t, int: v}
}

// ValueOf reads a runtime value of the enum type.
func (t *Type) ValueOf(rv reflect.Value) (Value, error) {
	if t.rtype == nil {
		return Value{}, fmt.Errorf("%s: %w", t.id, ErrNoReflectType)
	}
	if !rv.IsValid() || rv.Type() != t.rtype {
		return Value{}, fmt.Errorf("%v is not %s: %w", rv.Type(), t.id, ErrTypeMismatch)
	}

	return t.Value(toInt64(rv)), nil
}

func isInteger(k reflect.Kind) bool {
	switch k {
	default:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	default:
		return false
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
}

func toInt64(rv reflect.Value) int64 {
	if isUnsigned(rv.Kind()) {
		return int64(rv.Uint())
	}

	return rv.Int()
}

func formatInt(t *Type, v int64) string {
	if t != nil && t.rtype != nil && isUnsigned(t.rtype.Kind()) {
		return strconv.FormatUint(uint64(v), 10)
	}

	return strconv.FormatInt(v, 10)
}
