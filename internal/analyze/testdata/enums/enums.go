// Package enums is loaded by the analyzer tests.
package enums

type Level uint8

const (
	LevelLow  Level = 1
	LevelHigh Level = 255

	LevelDefault = LevelLow // alias, skipped
)

type Shape int

const (
	Circle Shape = iota
	Square
	ShapeTriangle
	shapeHidden
)

// Count is an integer type without constants, not an enum.
type Count int

type Label string

const LabelA Label = "a"

type internal int

const InternalA internal = 1
