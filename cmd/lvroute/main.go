// Command lvroute computes a routing table for one source router.
//
// It loads a YAML topology (or the built-in four-router network), asks for a
// source router and an algorithm, and prints the cost and path to every
// router:
//
//	$ lvroute -topology net.yaml
//	Enter source router: 1
//	Choose algorithm: 1. Dijkstra  2. Bellman-Ford
//	2
//	Bellman-Ford Algorithm (Source: 1)
//	To 1 - Cost: 0 | Path: 1
//	...
//
// -source and -algorithm skip the matching prompt. -generate replaces the
// topology file with a synthetic network, e.g. -generate grid:4x4 -seed 7.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/internal/logging"
	"github.com/katalvlaran/lvroute/internal/report"
	"github.com/katalvlaran/lvroute/routing"
	"github.com/katalvlaran/lvroute/topology"
)

// errRunFailed marks a run whose error was already reported to the user.
var errRunFailed = errors.New("run failed")

const (
	promptSource    = "Enter source router: "
	promptAlgorithm = "Choose algorithm: 1. Dijkstra  2. Bellman-Ford\n"
)

type options struct {
	topology  string
	generate  string
	seed      uint64
	maxCost   int64
	source    string
	algorithm string
	logLevel  string
	dev       bool
}

func main() {
	err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:])
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errRunFailed):
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func parseFlags(args []string, errW io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("lvroute", flag.ContinueOnError)
	fs.SetOutput(errW)
	fs.StringVar(&o.topology, "topology", "", "YAML topology file (default: built-in four-router network)")
	fs.StringVar(&o.generate, "generate", "", "synthetic topology: "+generateUsage)
	fs.Uint64Var(&o.seed, "seed", 1, "random seed for -generate")
	fs.Int64Var(&o.maxCost, "max-cost", 10, "largest link cost for -generate")
	fs.StringVar(&o.source, "source", "", "source router id; prompts when empty")
	fs.StringVar(&o.algorithm, "algorithm", "", "1|dijkstra or 2|bellman-ford; prompts when empty")
	fs.StringVar(&o.logLevel, "log-level", "warn", "debug, info, warn or error")
	fs.BoolVar(&o.dev, "dev", false, "human-readable log output")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if o.topology != "" && o.generate != "" {
		return o, errors.New("-topology and -generate are mutually exclusive")
	}

	return o, nil
}

// run is main without the process exit, so tests can drive it.
// Setup problems (flags, logger, topology) are returned as-is; a failed
// computation is printed as "Error: <message>" and returned as errRunFailed.
func run(in io.Reader, out, errW io.Writer, args []string) error {
	o, err := parseFlags(args, errW)
	if err != nil {
		return err
	}

	logger, err := logging.New(o.logLevel, o.dev)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	g, err := loadGraph(o)
	if err != nil {
		return err
	}
	logger.Info("topology loaded",
		zap.String("path", o.topology),
		zap.String("generate", o.generate),
		zap.Int("routers", g.NodeCount()),
		zap.Int("links", g.EdgeCount()),
	)

	sc := bufio.NewScanner(in)
	if err := compute(sc, out, g, o, logger); err != nil {
		_ = report.Error(errW, err)
		logger.Debug("run failed", zap.Error(err))
		return errRunFailed
	}

	return nil
}

func loadGraph(o options) (*core.Graph, error) {
	if o.generate != "" {
		return generateGraph(o.generate, o.seed, o.maxCost)
	}
	t := topology.Default()
	if o.topology != "" {
		var err error
		if t, err = topology.Load(o.topology); err != nil {
			return nil, err
		}
	}

	return t.Build()
}

// compute prompts for any missing input, runs the selected algorithm and
// writes the report.
func compute(sc *bufio.Scanner, out io.Writer, g *core.Graph, o options, logger *zap.Logger) error {
	rawSource := o.source
	if rawSource == "" {
		fmt.Fprint(out, promptSource)
		var err error
		if rawSource, err = readToken(sc); err != nil {
			return err
		}
	}
	source, err := strconv.ParseInt(strings.TrimSpace(rawSource), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid source router %q", rawSource)
	}

	rawAlgorithm := o.algorithm
	if rawAlgorithm == "" {
		fmt.Fprint(out, promptAlgorithm)
		if rawAlgorithm, err = readToken(sc); err != nil {
			return err
		}
	}
	sel, err := routing.ParseSelector(rawAlgorithm)
	if err != nil {
		return err
	}

	alg, err := routing.New(sel, g, routing.WithLogger(logger))
	if err != nil {
		return err
	}
	res, err := alg.Compute(core.NodeID(source))
	if err != nil {
		return err
	}

	return report.Write(out, routing.BuildTable(g, alg.Name(), res))
}

// readToken returns the next non-empty input line, trimmed.
func readToken(sc *bufio.Scanner) (string, error) {
	for sc.Scan() {
		if tok := strings.TrimSpace(sc.Text()); tok != "" {
			return tok, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	return "", io.ErrUnexpectedEOF
}
