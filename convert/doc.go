// Package convert converts enum values between enum types.
//
// Resolution pipeline for a source value and a target type:
//  1. Identity: the target is the source's own type, return the value unchanged
//  2. Name: the target declares a member with the source's name
//  3. Value: the target declares a member with the source's integer
//  4. Otherwise fail with a *ConversionError
//
// Each step runs only when the previous one does not apply. Mode narrows the
// chain: ModeStrict drops step 3, ModeNameOnly keeps only step 2.
//
// Callers that need different logic for one destination member supply a
// ValueResolver instead. Func adapts a plain function; EnumValueResolver is a
// reusable name-only resolver parameterized by two enum types.
package convert
