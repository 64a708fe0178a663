// Package enum describes Go enum types so their values can be converted
// between distinct types at runtime.
//
// Go has no first-class enums. An enum type here is a named integer type
// whose members are typed constants:
//
//	type Status int
//
//	const (
//		StatusInProgress Status = 1
//		StatusComplete   Status = 2
//	)
//
// Constants are invisible to reflect, so members are declared once through
// Define (explicit names) or DefineStringer (names taken from String()).
// The resulting Type holds precomputed name and value tables that are never
// mutated afterwards and can be shared between goroutines freely.
//
// Key types:
//   - TypeID: package import path + type name
//   - Member: a named constant (name, integer value)
//   - Type: the descriptor with its name/value lookup tables
//   - Value: one value of a Type, declared or not
//   - Registry: descriptors keyed by reflect.Type
package enum
