package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"enum-mapper/internal/analyze"
	"enum-mapper/internal/mapping"
	"enum-mapper/internal/plan"
)

func runCheck(opts options, stdout io.Writer, log zerolog.Logger) int {
	cf, err := mapping.LoadFile(opts.configPath)
	if err != nil {
		log.Error().Err(err).Msg("loading check file")
		return 1
	}
	if err := mapping.Validate(cf); err != nil {
		log.Error().Err(err).Str("file", opts.configPath).Msg("invalid check file")
		return 1
	}

	graph, err := analyze.NewAnalyzer(opts.dir).LoadPackages(cf.Packages...)
	if err != nil {
		log.Error().Err(err).Strs("packages", cf.Packages).Msg("loading packages")
		return 1
	}
	log.Debug().Int("enums", len(graph.Enums)).Msg("packages loaded")

	p, err := plan.NewResolver(graph, cf, log).Resolve()
	if err != nil {
		log.Error().Err(err).Msg("checking pairs")
		return 1
	}

	if err := writeReport(stdout, p); err != nil {
		log.Error().Err(err).Msg("writing report")
		return 1
	}

	if !p.OK() {
		return 1
	}

	return 0
}

// writeReport prints one table per pair followed by the diagnostics.
func writeReport(w io.Writer, p *plan.Plan) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for i := range p.Pairs {
		pair := &p.Pairs[i]

		fmt.Fprintf(tw, "%s (%s)\n", pair.Name(), pair.Mode)
		fmt.Fprintln(tw, "  MEMBER\tSTRATEGY\tRESULT")
		for _, o := range pair.Outcomes {
			result := o.Target.Name()
			switch {
			case o.Err != nil && pair.Pair.Ignores(o.Source.Name()):
				result = "ignored"
			case o.Err != nil:
				result = "FAILED"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", o.Source.Name(), o.Strategy, result)
		}
		fmt.Fprintln(tw)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	for _, d := range p.Diagnostics.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}

	status := "ok"
	if !p.OK() {
		status = "FAILED"
	}
	_, err := fmt.Fprintf(w, "%d pairs checked: %s\n", len(p.Pairs), status)

	return err
}
