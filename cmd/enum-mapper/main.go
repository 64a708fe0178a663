// Package main provides the CLI entrypoint for enum-mapper.
//
// enum-mapper checks enum conversions between Go packages ahead of mapping:
//   - check: converts every member of each configured enum pair and reports
//     how it resolved (identity, name or value) or why it failed
//   - dump: prints the enum types found in packages
//   - version: prints build information
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"enum-mapper/internal/config"
	elog "enum-mapper/internal/log"
	"enum-mapper/internal/version"
)

const usage = `Usage: enum-mapper [flags] <command> [args]

Commands:
  check            check the enum pairs of the check file
  dump [pattern]   print the enum types of packages (default: check file packages)
  version          print build information

Flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	configPath string
	dir        string
	debug      bool
}

func run(args []string, stdout, stderr io.Writer) int {
	env, err := config.ParseEnv()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	fs := flag.NewFlagSet("enum-mapper", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	var opts options
	fs.StringVar(&opts.configPath, "config", env.ConfigPath, "Path to the check file")
	fs.StringVar(&opts.dir, "dir", ".", "Directory package patterns are resolved in")
	fs.BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := env.LogLevel
	if opts.debug {
		level = zerolog.LevelDebugValue
	}
	logger := elog.New(elog.Config{Level: level, Output: stderr, Console: env.LogConsole})

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	switch cmd := fs.Arg(0); cmd {
	case "check":
		return runCheck(opts, stdout, elog.WithComponent(logger, "check"))
	case "dump":
		return runDump(opts, fs.Args()[1:], stdout, elog.WithComponent(logger, "dump"))
	case "version":
		fmt.Fprintln(stdout, version.Info().String())
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		fs.Usage()

		return 2
	}
}
