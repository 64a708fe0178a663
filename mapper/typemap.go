package mapper

import (
	"reflect"

	"enum-mapper/convert"
	"enum-mapper/internal/common"
)

// TypeMap is the configuration of one source/destination struct pair.
type TypeMap struct {
	mapper  *Mapper
	source  reflect.Type
	dest    reflect.Type
	members map[string]*memberConfig // keyed by destination member name
}

type memberConfig struct {
	resolver convert.ValueResolver
	from     string
	ignore   bool
}

// MemberOption configures one destination member.
type MemberOption func(*memberConfig)

// ResolveUsing computes the member with r instead of the default pipeline.
// r receives the whole source struct, or the FromMember value when set.
func ResolveUsing(r convert.ValueResolver) MemberOption {
	return func(c *memberConfig) {
		c.resolver = r
	}
}

// FromMember reads the member from the named source member.
func FromMember(name string) MemberOption {
	return func(c *memberConfig) {
		c.from = name
	}
}

// Ignore leaves the member untouched.
func Ignore() MemberOption {
	return func(c *memberConfig) {
		c.ignore = true
	}
}

// ForMember configures the destination member name. Options accumulate
// across calls.
func (tm *TypeMap) ForMember(name string, opts ...MemberOption) *TypeMap {
	tm.mapper.mu.Lock()
	defer tm.mapper.mu.Unlock()

	cfg, ok := tm.members[name]
	if !ok {
		cfg = &memberConfig{}
		tm.members[name] = cfg
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return tm
}

// String returns "store.Order -> warehouse.OrderDto".
func (tm *TypeMap) String() string {
	return common.PairName(typeName(tm.source), typeName(tm.dest))
}

func typeName(t reflect.Type) string {
	if t.Name() == "" {
		return t.String()
	}

	return common.ShortName(t.PkgPath(), t.Name())
}
