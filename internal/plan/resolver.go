package plan

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"enum-mapper/convert"
	"enum-mapper/enum"
	"enum-mapper/internal/analyze"
	"enum-mapper/internal/common"
	"enum-mapper/internal/diagnostic"
	"enum-mapper/internal/mapping"
	"enum-mapper/internal/match"
)

// MaxSuggestions bounds the "did you mean" list of a failed member.
const MaxSuggestions = 3

// Resolver checks the pairs of a check file against an enum graph.
type Resolver struct {
	graph *analyze.Graph
	file  *mapping.CheckFile
	log   zerolog.Logger
}

// NewResolver creates a new Resolver. A zero logger disables logging.
func NewResolver(graph *analyze.Graph, file *mapping.CheckFile, log zerolog.Logger) *Resolver {
	return &Resolver{graph: graph, file: file, log: log}
}

// Resolve checks every pair. Pairs whose types cannot be found are reported
// as diagnostics and skipped; the returned error is reserved for unusable input.
func (r *Resolver) Resolve() (*Plan, error) {
	if r.file == nil {
		return nil, errors.New("check file is required")
	}
	if r.graph == nil {
		return nil, errors.New("enum graph is required")
	}

	p := &Plan{}
	for _, pair := range r.file.Pairs {
		report, err := r.resolvePair(pair, &p.Diagnostics)
		if err != nil {
			p.Diagnostics.AddError(diagnostic.CodeUnregisteredEnum, err.Error(), pair.String(), "")
			continue
		}

		p.Pairs = append(p.Pairs, *report)
	}

	return p, nil
}

func (r *Resolver) resolvePair(pair mapping.Pair, diags *diagnostic.Diagnostics) (*PairReport, error) {
	mode, err := convert.ParseMode(pair.Mode)
	if err != nil {
		return nil, err
	}

	source, err := r.graph.Lookup(pair.Source)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}

	target, err := r.graph.Lookup(pair.Target)
	if err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}

	resolver := convert.NewResolver(convert.WithMode(mode), convert.WithLogger(r.log))

	outcomes, err := resolver.Plan(source, target)
	if err != nil {
		return nil, err
	}

	report := &PairReport{
		Pair:     pair,
		Source:   source,
		Target:   target,
		Mode:     mode,
		Outcomes: outcomes,
	}
	r.diagnose(report, diags)

	return report, nil
}

func (r *Resolver) diagnose(report *PairReport, diags *diagnostic.Diagnostics) {
	name := report.Name()

	if report.Source.Same(report.Target) {
		diags.AddInfo(diagnostic.CodeIdentityConversion, "enum type is shared, values pass through", name, "")
		return
	}

	targetNames := memberNames(report.Target)
	for _, o := range report.Outcomes {
		member := o.Source.Name()

		switch {
		case o.Err != nil && report.Pair.Ignores(member):
			diags.AddInfo(diagnostic.CodeConversionFailed, "ignored: "+o.Err.Error(), name, member)
		case o.Err != nil:
			diags.AddError(diagnostic.CodeConversionFailed, o.Err.Error(), name, member,
				match.Suggest(member, targetNames, MaxSuggestions)...)
		case o.Strategy == convert.StrategyValue:
			diags.AddWarning(diagnostic.CodeValueMatch,
				fmt.Sprintf("converts by value to %s", o.Target.Name()), name, member)
		}
	}
}

func memberNames(t *enum.Type) []string {
	members := t.Members()
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}

	return names
}

func pairName(source, target *enum.Type) string {
	return common.PairName(
		common.ShortName(source.ID().PkgPath, source.ID().Name),
		common.ShortName(target.ID().PkgPath, target.ID().Name),
	)
}
