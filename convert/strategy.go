package convert

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Strategy -trimprefix=Strategy -output=strategy_string.go

// Strategy records which step of the pipeline produced a value.
type Strategy int

const (
	StrategyNone     Strategy = iota // resolution failed
	StrategyIdentity                 // same enum type, value returned unchanged
	StrategyName                     // matched by symbolic name
	StrategyValue                    // matched by underlying integer
	StrategyCustom                   // produced by a ValueResolver
)

// Mode selects which steps of the pipeline are enabled.
type Mode int

const (
	// ModeDefault runs identity, name and value matching.
	ModeDefault Mode = iota
	// ModeStrict runs identity and name matching only.
	ModeStrict
	// ModeNameOnly runs name matching only, like EnumValueResolver.
	ModeNameOnly
)

const (
	modeDefault  = "default"
	modeStrict   = "strict"
	modeNameOnly = "name"
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeDefault:
		return modeDefault
	case ModeStrict:
		return modeStrict
	case ModeNameOnly:
		return modeNameOnly
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses a configuration name. The empty string is ModeDefault.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", modeDefault:
		return ModeDefault, nil
	case modeStrict:
		return ModeStrict, nil
	case modeNameOnly:
		return ModeNameOnly, nil
	default:
		return ModeDefault, fmt.Errorf("unknown conversion mode %q (want %s, %s or %s)",
			s, modeDefault, modeStrict, modeNameOnly)
	}
}
