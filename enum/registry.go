package enum

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
)

var (
	ErrNilType           = errors.New("enum descriptor is nil or has no runtime type")
	ErrAlreadyRegistered = errors.New("enum type is already registered with a different descriptor")
	ErrNotRegistered     = errors.New("enum type is not registered")
)

// Default is the process-wide registry used by Define and Lookup.
var Default = NewRegistry()

// Registry maps runtime types to enum descriptors.
// Reads take a shared lock; descriptors themselves are immutable.
type Registry struct {
	mu    sync.RWMutex
	types map[reflect.Type]*Type
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[reflect.Type]*Type)}
}

// Register adds t to the registry. Registering the same descriptor twice is a
// no-op; registering a different descriptor for the same runtime type fails.
func (r *Registry) Register(t *Type) error {
	if t == nil || t.rtype == nil {
		return ErrNilType
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.types[t.rtype]; ok {
		if old == t || slices.Equal(old.members, t.members) {
			return nil
		}

		return fmt.Errorf("%s: %w", t.id, ErrAlreadyRegistered)
	}

	r.types[t.rtype] = t
	return nil
}

// Lookup returns the descriptor registered for rt.
func (r *Registry) Lookup(rt reflect.Type) (*Type, bool) {
	if rt == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[rt]
	return t, ok
}

// MustLookup returns the descriptor registered for rt or an ErrNotRegistered error.
func (r *Registry) MustLookup(rt reflect.Type) (*Type, error) {
	t, ok := r.Lookup(rt)
	if !ok {
		return nil, fmt.Errorf("%v: %w", rt, ErrNotRegistered)
	}

	return t, nil
}

// Types returns all registered descriptors ordered by type name.
func (r *Registry) Types() []*Type {
	r.mu.RLock()
	out := make([]*Type, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b *Type) int {
		return strings.Compare(a.id.String(), b.id.String())
	})

	return out
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.types)
}

// Reset removes every registration.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.types = make(map[reflect.Type]*Type)
}

// ValueOf reads v as an enum value using its registered descriptor.
func (r *Registry) ValueOf(v any) (Value, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return Value{}, ErrNilType
	}

	t, err := r.MustLookup(rv.Type())
	if err != nil {
		return Value{}, err
	}

	return t.ValueOf(rv)
}

// Define builds a descriptor for T and registers it in the Default registry.
func Define[T Integer](values map[string]T) (*Type, error) {
	t, err := Of(values)
	if err != nil {
		return nil, err
	}

	return t, Default.Register(t)
}

// DefineStringer is Define with names taken from each value's String method.
func DefineStringer[T interface {
	Integer
	fmt.Stringer
}](values ...T) (*Type, error) {
	t, err := OfStringer(values...)
	if err != nil {
		return nil, err
	}

	return t, Default.Register(t)
}

// MustDefine is like Define but panics on error. Intended for package-level vars.
func MustDefine[T Integer](values map[string]T) *Type {
	t, err := Define(values)
	if err != nil {
		panic(err)
	}

	return t
}

// Lookup returns the descriptor for T from the Default registry.
func Lookup[T any]() (*Type, bool) {
	return Default.Lookup(reflect.TypeFor[T]())
}
