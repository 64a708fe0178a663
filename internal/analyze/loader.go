package analyze

import (
	"errors"
	"fmt"
	"go/constant"
	"go/types"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/go/packages"

	"enum-mapper/enum"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedImports

// Analyzer loads Go packages and collects their enum types.
type Analyzer struct {
	dir   string
	graph *Graph
}

// NewAnalyzer creates an Analyzer that resolves patterns relative to dir
// (the current directory when empty).
func NewAnalyzer(dir string) *Analyzer {
	return &Analyzer{
		dir:   dir,
		graph: NewGraph(),
	}
}

// LoadPackages loads the specified packages and adds their enums to the graph.
// Patterns are standard Go package patterns (e.g., "./store", "enum-mapper/warehouse").
func (a *Analyzer) LoadPackages(patterns ...string) (*Graph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return a.graph, nil
}

// Graph returns the current graph.
func (a *Analyzer) Graph() *Graph {
	return a.graph
}

func (a *Analyzer) processPackage(pkg *packages.Package) error {
	info := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	scope := pkg.Types.Scope()

	// Pass 1: named integer types.
	consts := make(map[*types.TypeName][]*types.Const)
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !tn.Exported() || tn.IsAlias() {
			continue
		}
		if basic, ok := tn.Type().Underlying().(*types.Basic); ok && basic.Info()&types.IsInteger != 0 {
			consts[tn] = nil
		}
	}

	// Pass 2: exported constants of those types.
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || !c.Exported() {
			continue
		}
		named, ok := c.Type().(*types.Named)
		if !ok {
			continue
		}
		if _, ok := consts[named.Obj()]; ok {
			consts[named.Obj()] = append(consts[named.Obj()], c)
		}
	}

	for tn, cs := range consts {
		if len(cs) == 0 {
			continue // a plain integer type, not an enum
		}

		t, aliases, err := buildEnum(pkg.PkgPath, tn, cs)
		if err != nil {
			return err
		}

		a.graph.Enums[t.ID()] = t
		info.Enums = append(info.Enums, t.ID())
		info.Aliases = append(info.Aliases, aliases...)
	}

	slices.SortFunc(info.Enums, func(x, y enum.TypeID) int { return strings.Compare(x.Name, y.Name) })
	slices.Sort(info.Aliases)

	a.graph.Packages[pkg.PkgPath] = info
	return nil
}

// buildEnum turns the constants of tn into a descriptor. Constants are taken
// in declaration order; a constant repeating an earlier value is an alias.
func buildEnum(pkgPath string, tn *types.TypeName, cs []*types.Const) (*enum.Type, []string, error) {
	slices.SortFunc(cs, func(x, y *types.Const) int { return int(x.Pos() - y.Pos()) })

	unsigned := tn.Type().Underlying().(*types.Basic).Info()&types.IsUnsigned != 0

	var (
		members []enum.Member
		aliases []string
		seen    = make(map[int64]bool, len(cs))
		names   = make(map[string]bool, len(cs))
	)
	for _, c := range cs {
		v, ok := constValue(c.Val(), unsigned)
		if !ok {
			return nil, nil, fmt.Errorf("constant %s does not fit in 64 bits", c.Name())
		}
		if seen[v] {
			aliases = append(aliases, c.Name())
			continue
		}
		seen[v] = true

		name := memberName(tn.Name(), c.Name())
		if names[name] {
			name = c.Name()
		}
		names[name] = true

		members = append(members, enum.Member{Name: name, Value: v})
	}

	t, err := enum.New(enum.TypeID{PkgPath: pkgPath, Name: tn.Name()}, members...)
	if err != nil {
		return nil, nil, err
	}

	return t, aliases, nil
}

func constValue(v constant.Value, unsigned bool) (int64, bool) {
	v = constant.ToInt(v)
	if unsigned {
		u, ok := constant.Uint64Val(v)
		return int64(u), ok
	}

	return constant.Int64Val(v)
}

// memberName strips the type name prefix when what remains is still an
// exported identifier: StatusInProgress -> InProgress, but Statuses stays.
func memberName(typeName, constName string) string {
	rest, ok := strings.CutPrefix(constName, typeName)
	if !ok || rest == "" {
		return constName
	}

	r, _ := utf8.DecodeRuneInString(rest)
	if !unicode.IsUpper(r) {
		return constName
	}

	return rest
}
