// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// parseArgs reads the command line into a config. shouldExit is true after -h.
// klog's flags (-v, -logtostderr, ...) are registered on the same set.
func parseArgs(args []string, output io.Writer) (*config, bool, error) {
	fset := flag.NewFlagSet("mincut", flag.ContinueOnError)
	fset.SetOutput(output)
	klog.InitFlags(fset)
	if err := fset.Set("logtostderr", "true"); err != nil {
		return nil, false, errors.Wrap(err, "mincut: klog flags not registered")
	}
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          false,
	})

	fset.Usage = func() {
		fmt.Fprint(output, `
mincut - global minimum cut of an undirected weighted graph (Stoer-Wagner).

Usage:
  mincut [options] [PATH]

Arguments:
  PATH
    Adjacency text ("a: b c" per line) or an .hcl graph file.

Options:
`)
		fset.PrintDefaults()
	}

	var cfg config
	fset.StringVar(&cfg.input, "input", "", "Path to the graph file.")
	fset.StringVar(&cfg.builtin, "builtin", "", "Solve a built-in graph: 'article' or 'example'.")
	fset.BoolVar(&cfg.allowDisconnected, "allow-disconnected", false, "Report a zero-weight cut for disconnected graphs instead of failing.")
	fset.BoolVar(&cfg.verify, "verify", false, "Cross-check the cut weight with max-flow.")

	if err := fset.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if cfg.input == "" && fset.NArg() > 0 {
		cfg.input = fset.Arg(0)
	}
	if fset.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "at most one PATH argument is accepted"}
	}

	cfg.builtin = strings.ToLower(cfg.builtin)
	switch cfg.builtin {
	case "", builtinArticle, builtinExample:
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid builtin: must be 'article' or 'example'"}
	}
	if cfg.builtin != "" && cfg.input != "" {
		return nil, false, &ExitError{Code: 2, Message: "-builtin and PATH are mutually exclusive"}
	}

	return &cfg, false, nil
}
