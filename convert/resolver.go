package convert

import (
	"fmt"

	"github.com/rs/zerolog"

	"enum-mapper/enum"
)

// Resolver converts enum values through the identity, name and value steps.
// A Resolver holds no mutable state and is safe for concurrent use.
type Resolver struct {
	mode Mode
	log  zerolog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMode selects which pipeline steps run.
func WithMode(m Mode) Option {
	return func(r *Resolver) {
		r.mode = m
	}
}

// WithoutValueMatch is shorthand for WithMode(ModeStrict).
func WithoutValueMatch() Option {
	return WithMode(ModeStrict)
}

// WithLogger attaches a logger that receives a debug event per resolution.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Resolver) {
		r.log = l
	}
}

// NewResolver creates a Resolver. Without options it runs the full pipeline
// and does not log.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		mode: ModeDefault,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

var defaultResolver = NewResolver()

// Resolve converts src to target with the default pipeline.
func Resolve(src enum.Value, target *enum.Type) (enum.Value, Strategy, error) {
	return defaultResolver.Resolve(src, target)
}

// Mode returns the configured mode.
func (r *Resolver) Mode() Mode {
	return r.mode
}

// Resolve converts src to a value of target.
//
// In ModeNameOnly a missing name is reported as a *NameError, matching
// EnumValueResolver. Otherwise exhausting the pipeline yields a *ConversionError.
func (r *Resolver) Resolve(src enum.Value, target *enum.Type) (enum.Value, Strategy, error) {
	if !src.IsValid() {
		return enum.Value{}, StrategyNone, ErrInvalidSource
	}
	if target == nil {
		return enum.Value{}, StrategyNone, ErrNilTarget
	}

	out, strategy, err := r.resolve(src, target)

	ev := r.log.Debug().
		Str("source", src.String()).
		Str("target_type", target.String()).
		Stringer("strategy", strategy)
	if err != nil {
		ev.Err(err).Msg("enum conversion failed")
	} else {
		ev.Str("target", out.String()).Msg("enum resolved")
	}

	return out, strategy, err
}

func (r *Resolver) resolve(src enum.Value, target *enum.Type) (enum.Value, Strategy, error) {
	if r.mode == ModeNameOnly {
		out, err := ResolveName(src, target)
		if err != nil {
			return enum.Value{}, StrategyNone, err
		}

		return out, StrategyName, nil
	}

	// 1. identity
	if src.Type().Same(target) {
		return src, StrategyIdentity, nil
	}

	// 2. name
	if src.IsDeclared() {
		if out, ok := target.ByName(src.Name()); ok {
			return out, StrategyName, nil
		}
	}

	// 3. value
	if r.mode == ModeDefault {
		if out, ok := target.ByValue(src.Int()); ok {
			return out, StrategyValue, nil
		}
	}

	return enum.Value{}, StrategyNone, &ConversionError{
		Source: src.Type(),
		Target: target,
		Value:  src,
		Mode:   r.mode,
	}
}

// ResolveName converts src by symbolic name only. It never falls back to
// value matching; a missing name is returned as a *NameError.
func ResolveName(src enum.Value, target *enum.Type) (enum.Value, error) {
	if !src.IsValid() {
		return enum.Value{}, ErrInvalidSource
	}
	if target == nil {
		return enum.Value{}, ErrNilTarget
	}

	out, ok := target.ByName(src.Name())
	if !ok || !src.IsDeclared() {
		return enum.Value{}, &NameError{Name: src.Name(), Target: target}
	}

	return out, nil
}

// Outcome is the result of converting one source member.
type Outcome struct {
	Source   enum.Value
	Target   enum.Value
	Strategy Strategy
	Err      error
}

// Plan converts every member of source to target and reports each outcome in
// member order. It is used to validate an enum pair ahead of mapping.
func (r *Resolver) Plan(source, target *enum.Type) ([]Outcome, error) {
	if source == nil || target == nil {
		return nil, fmt.Errorf("plan %v -> %v: %w", source, target, ErrNilTarget)
	}

	members := source.Members()
	out := make([]Outcome, 0, len(members))
	for _, m := range members {
		src, _ := source.ByName(m.Name)
		v, strategy, err := r.Resolve(src, target)
		out = append(out, Outcome{Source: src, Target: v, Strategy: strategy, Err: err})
	}

	return out, nil
}

// Failed returns the outcomes that did not convert.
func Failed(outcomes []Outcome) []Outcome {
	var failed []Outcome
	for _, o := range outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}

	return failed
}
