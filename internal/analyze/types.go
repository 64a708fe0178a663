package analyze

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"enum-mapper/enum"
	"enum-mapper/internal/common"
)

var (
	ErrEnumNotFound  = errors.New("enum type not found")
	ErrAmbiguousEnum = errors.New("enum type name is ambiguous")
)

// Graph holds the enums of all loaded packages.
type Graph struct {
	// Enums maps type identity to descriptor. Descriptors carry no reflect.Type.
	Enums map[enum.TypeID]*enum.Type
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string        // Import path
	Name  string        // Package name
	Enums []enum.TypeID // Enum types defined in this package, sorted by name
	// Aliases lists constants skipped because an earlier constant already
	// declares their value, e.g. StatusDefault = StatusInProgress.
	Aliases []string
}

// NewGraph creates an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		Enums:    make(map[enum.TypeID]*enum.Type),
		Packages: make(map[string]*PackageInfo),
	}
}

// IDs returns every enum identity in sorted order.
func (g *Graph) IDs() []enum.TypeID {
	ids := make([]enum.TypeID, 0, len(g.Enums))
	for id := range g.Enums {
		ids = append(ids, id)
	}

	slices.SortFunc(ids, func(a, b enum.TypeID) int {
		return strings.Compare(a.String(), b.String())
	})

	return ids
}

// Lookup resolves a type reference written as
//   - "enum-mapper/store.Status" (full import path)
//   - "store.Status" (package name or path suffix)
//   - "Status" (name only, must be unique)
func (g *Graph) Lookup(ref string) (*enum.Type, error) {
	if ref == "" {
		return nil, fmt.Errorf("empty type reference: %w", ErrEnumNotFound)
	}

	pkg, name := "", ref
	if lastDot := strings.LastIndex(ref, "."); lastDot >= 0 {
		pkg, name = ref[:lastDot], ref[lastDot+1:]
	}

	if pkg != "" {
		if t, ok := g.Enums[enum.TypeID{PkgPath: pkg, Name: name}]; ok {
			return t, nil
		}
	}

	var found []enum.TypeID
	for _, id := range g.IDs() {
		if id.Name != name {
			continue
		}
		if pkg == "" || common.PkgAlias(id.PkgPath) == pkg || strings.HasSuffix(id.PkgPath, "/"+pkg) {
			found = append(found, id)
		}
	}

	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%s: %w", ref, ErrEnumNotFound)
	case 1:
		return g.Enums[found[0]], nil
	default:
		return nil, fmt.Errorf("%s matches %v: %w", ref, found, ErrAmbiguousEnum)
	}
}
