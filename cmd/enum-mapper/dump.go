package main

import (
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"

	"enum-mapper/enum"
	"enum-mapper/internal/analyze"
	"enum-mapper/internal/mapping"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func runDump(opts options, patterns []string, stdout io.Writer, log zerolog.Logger) int {
	if len(patterns) == 0 {
		cf, err := mapping.LoadFile(opts.configPath)
		if err != nil {
			log.Error().Err(err).Msg("no patterns given and no check file")
			return 1
		}
		patterns = cf.Packages
	}

	graph, err := analyze.NewAnalyzer(opts.dir).LoadPackages(patterns...)
	if err != nil {
		log.Error().Err(err).Strs("packages", patterns).Msg("loading packages")
		return 1
	}

	members := make(map[string][]enum.Member, len(graph.Enums))
	for _, id := range graph.IDs() {
		members[id.String()] = graph.Enums[id].Members()
	}

	dumpConfig.Fdump(stdout, members)

	return 0
}
