package plan

import (
	"enum-mapper/convert"
	"enum-mapper/enum"
	"enum-mapper/internal/diagnostic"
	"enum-mapper/internal/mapping"
)

// Plan is the result of checking a whole file.
type Plan struct {
	Pairs       []PairReport
	Diagnostics diagnostic.Diagnostics
}

// PairReport holds the outcome of one enum pair.
type PairReport struct {
	Pair   mapping.Pair
	Source *enum.Type
	Target *enum.Type
	Mode   convert.Mode
	// Outcomes lists one conversion per source member, in member order.
	Outcomes []convert.Outcome
}

// Name returns the short pair name used in diagnostics.
func (p *PairReport) Name() string {
	return pairName(p.Source, p.Target)
}

// Failed returns the outcomes that did not convert and are not ignored.
func (p *PairReport) Failed() []convert.Outcome {
	var failed []convert.Outcome
	for _, o := range convert.Failed(p.Outcomes) {
		if !p.Pair.Ignores(o.Source.Name()) {
			failed = append(failed, o)
		}
	}

	return failed
}

// Count returns how many outcomes used each strategy.
func (p *PairReport) Count() map[convert.Strategy]int {
	counts := make(map[convert.Strategy]int)
	for _, o := range p.Outcomes {
		counts[o.Strategy]++
	}

	return counts
}

// OK reports whether no pair failed.
func (p *Plan) OK() bool {
	for i := range p.Pairs {
		if len(p.Pairs[i].Failed()) > 0 {
			return false
		}
	}

	return !p.Diagnostics.HasErrors()
}
