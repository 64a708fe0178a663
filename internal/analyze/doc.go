// Package analyze extracts enum descriptors from Go source.
//
// It uses golang.org/x/tools/go/packages with go/types to find named types
// with an integer underlying type and the exported constants declared with
// them. Member names drop the type name prefix, so StatusForDtoInProgress of
// type StatusForDto becomes member InProgress, matching what stringer
// -trimprefix produces at runtime.
//
// Key types:
//   - Graph: enum descriptors of every loaded package, keyed by enum.TypeID
//   - PackageInfo: the enums declared by one package and the constants skipped as aliases
package analyze
