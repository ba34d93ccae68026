// SPDX-License-Identifier: MIT

// Command mincut computes the global minimum cut of an undirected weighted graph
// with the Stoer-Wagner algorithm and prints both sides, the cut edges, the cut
// weight and the product of the side sizes.
//
// Usage:
//
//	mincut [flags] [PATH]
//
// PATH is adjacency text ("a: b c") or an .hcl graph file. Without PATH or
// -builtin, the two built-in graphs are solved followed by ./input.txt when present.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/flow"
	"github.com/katalvlaran/mincut/loader"
	"github.com/katalvlaran/mincut/stoerwagner"
)

const (
	builtinArticle = "article"
	builtinExample = "example"

	// defaultInput is tried when neither a path nor -builtin is given.
	defaultInput = "input.txt"

	verifyTolerance = 1e-9
)

// ExitError carries a process exit code through run.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

type config struct {
	input             string
	builtin           string
	allowDisconnected bool
	verify            bool
}

func main() {
	err := run(os.Stdout, os.Args[1:])
	klog.Flush()
	if err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, solves the selected graphs and writes the reports to outW.
func run(outW io.Writer, args []string) error {
	cfg, shouldExit, err := parseArgs(args, outW)
	if err != nil || shouldExit {
		return err
	}
	ctx := context.Background()

	if cfg.builtin != "" {
		return runBuiltin(ctx, outW, cfg)
	}
	if cfg.input != "" {
		g, err := loader.Load(cfg.input)
		if err != nil {
			return err
		}
		return report(ctx, outW, cfg.input, g, cfg)
	}

	return runDefaults(ctx, outW, cfg)
}

// runDefaults solves both built-in graphs, then defaultInput if it exists.
func runDefaults(ctx context.Context, outW io.Writer, cfg *config) error {
	for _, name := range []string{builtinArticle, builtinExample} {
		sub := *cfg
		sub.builtin = name
		if err := runBuiltin(ctx, outW, &sub); err != nil {
			return err
		}
	}

	g, err := loader.Load(defaultInput)
	if errors.Is(err, os.ErrNotExist) {
		klog.Warningf("can not find %s, skipping", defaultInput)
		return nil
	}
	if err != nil {
		return err
	}

	return report(ctx, outW, defaultInput, g, cfg)
}

func runBuiltin(ctx context.Context, outW io.Writer, cfg *config) error {
	if cfg.builtin == builtinArticle {
		return report(ctx, outW, builtinArticle, loader.Article(), cfg)
	}
	g, err := loader.ParseAdjacency(strings.NewReader(loader.SampleAdjacency))
	if err != nil {
		return err
	}

	return report(ctx, outW, builtinExample, g, cfg)
}

// report solves g and prints the result in a fixed line-oriented format.
func report[T comparable](ctx context.Context, outW io.Writer, name string, g *core.WeightedGraph[T], cfg *config) error {
	klog.V(1).Infof("%s: %d vertices, %d edges", name, g.VertexCount(), g.EdgeCount())

	opts := []stoerwagner.Option{
		stoerwagner.WithContext(ctx),
		stoerwagner.WithOnPhase(func(p stoerwagner.PhaseInfo) {
			klog.V(2).Infof("%s: phase %d merged %d+%d cut=%g improved=%t remaining=%d",
				name, p.Index, p.S, p.T, p.CutOfPhase, p.Improved, p.Remaining)
		}),
	}
	if cfg.allowDisconnected {
		opts = append(opts, stoerwagner.WithAllowDisconnected())
	}

	start := time.Now()
	mc, err := stoerwagner.New(g, opts...)
	elapsed := time.Since(start)
	if err != nil {
		return errors.Wrap(err, name)
	}

	fmt.Fprintf(outW, "== %s\n", name)
	fmt.Fprintf(outW, "partition group 1: %v\n", mc.Partition1().Vertices())
	fmt.Fprintf(outW, "partition group 2: %v\n", mc.Partition2().Vertices())
	fmt.Fprintf(outW, "edges cut: %v\n", mc.CutEdges())
	fmt.Fprintf(outW, "cost of cut: %g\n", mc.BestWeight())
	fmt.Fprintf(outW, "product: %d\n", mc.Product())
	fmt.Fprintf(outW, "time: %d ms\n", elapsed.Milliseconds())

	if !cfg.verify {
		return nil
	}
	st, err := flow.GlobalMinCut(ctx, g, nil)
	if err != nil {
		return errors.Wrapf(err, "%s: verify", name)
	}
	if !scalar.EqualWithinAbsOrRel(st.Value, mc.BestWeight(), verifyTolerance, verifyTolerance) {
		return errors.Errorf("%s: verify: max-flow cut %g differs from %g", name, st.Value, mc.BestWeight())
	}
	fmt.Fprintf(outW, "verified: max-flow %v--%v = %g\n", st.Source, st.Sink, st.Value)

	return nil
}
