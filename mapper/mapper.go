package mapper

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/rs/zerolog"

	"enum-mapper/convert"
	"enum-mapper/enum"
)

// FailurePolicy decides what happens when one member fails to map.
type FailurePolicy int

const (
	// AbortMapping stops at the first failing member and returns its error.
	AbortMapping FailurePolicy = iota
	// SkipMember leaves a failing member at its zero value and carries on.
	SkipMember
)

func (p FailurePolicy) String() string {
	switch p {
	case AbortMapping:
		return "abort"
	case SkipMember:
		return "skip"
	default:
		return fmt.Sprintf("FailurePolicy(%d)", int(p))
	}
}

// Mapper holds type maps and the collaborators used to apply them.
// Registration and mapping may run concurrently.
type Mapper struct {
	mu       sync.RWMutex
	maps     map[pairKey]*TypeMap
	registry *enum.Registry
	resolver *convert.Resolver
	policy   FailurePolicy
	log      zerolog.Logger
}

type pairKey struct {
	source reflect.Type
	dest   reflect.Type
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithRegistry sets the registry enum descriptors are looked up in.
// Defaults to enum.Default.
func WithRegistry(r *enum.Registry) Option {
	return func(m *Mapper) {
		m.registry = r
	}
}

// WithResolver sets the resolver used for enum members.
func WithResolver(r *convert.Resolver) Option {
	return func(m *Mapper) {
		m.resolver = r
	}
}

// WithFailurePolicy sets how member failures are handled. Defaults to AbortMapping.
func WithFailurePolicy(p FailurePolicy) Option {
	return func(m *Mapper) {
		m.policy = p
	}
}

// WithLogger attaches a logger. Skipped members are logged as warnings.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Mapper) {
		m.log = l
	}
}

// New creates a Mapper.
func New(opts ...Option) *Mapper {
	m := &Mapper{
		maps:     make(map[pairKey]*TypeMap),
		registry: enum.Default,
		resolver: convert.NewResolver(),
		policy:   AbortMapping,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// CreateMap registers the pair S -> D and returns its TypeMap. Calling it
// again for the same pair returns the existing TypeMap.
// It panics unless both S and D are struct types.
func CreateMap[S, D any](m *Mapper) *TypeMap {
	return m.createMap(reflect.TypeFor[S](), reflect.TypeFor[D]())
}

func (m *Mapper) createMap(source, dest reflect.Type) *TypeMap {
	if source.Kind() != reflect.Struct || dest.Kind() != reflect.Struct {
		panic(fmt.Sprintf("mapper: CreateMap needs struct types, got %v and %v", source, dest))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := pairKey{source: source, dest: dest}
	if tm, ok := m.maps[key]; ok {
		return tm
	}

	tm := &TypeMap{
		mapper:  m,
		source:  source,
		dest:    dest,
		members: make(map[string]*memberConfig),
	}
	m.maps[key] = tm

	return tm
}

// Reset removes every type map.
func (m *Mapper) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.maps = make(map[pairKey]*TypeMap)
}
