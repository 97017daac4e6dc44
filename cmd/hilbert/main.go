// Package main provides the hilbert CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/orneryd/hilbert/pkg/cache"
	"github.com/orneryd/hilbert/pkg/config"
	"github.com/orneryd/hilbert/pkg/hilbert"
	"github.com/orneryd/hilbert/pkg/parse"
	"github.com/orneryd/hilbert/pkg/ratvec"
	"github.com/orneryd/hilbert/pkg/stats"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hilbert",
		Short: "hilbert - Hilbert basis computation for linear inequality systems",
		Long: `hilbert computes the Hilbert basis of a system of homogeneous linear
inequalities over non-negative integer variables: the minimal generating
set of the monoid of solutions.

Features:
  • Exact arbitrary-precision rational arithmetic
  • Pottier-style saturation with subsumption pruning
  • Persistent basis cache keyed by the constraint system
  • YAML input format`,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("hilbert v%s (%s)\n", version, commit)
		},
	})

	solveCmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Compute the Hilbert basis of a constraint system",
		Long: `Compute the Hilbert basis of the constraint system described by FILE.

The basis is printed one generator per line, coordinates space-separated.
"unsat" is printed when some constraint admits no non-trivial solution.`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}
	solveCmd.Flags().Bool("stats", false, "Print engine statistics to stderr")
	solveCmd.Flags().Bool("trace", false, "Dump engine state to stderr after solving")
	solveCmd.Flags().String("cache-dir", "", "Basis cache directory (enables the cache)")
	solveCmd.Flags().Duration("timeout", 0, "Abort saturation after this duration (0 = none)")
	rootCmd.AddCommand(solveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg := config.LoadFromEnv()
	if dir, _ := cmd.Flags().GetString("cache-dir"); dir != "" {
		cfg.Cache.Enabled = true
		cfg.Cache.Dir = dir
	}
	if on, _ := cmd.Flags().GetBool("stats"); on {
		cfg.Stats.Enabled = true
	}
	if on, _ := cmd.Flags().GetBool("trace"); on {
		cfg.Trace = true
	}
	if d, _ := cmd.Flags().GetDuration("timeout"); d != 0 {
		cfg.Timeout = d
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	sys, err := parse.LoadFile(args[0])
	if err != nil {
		return err
	}

	var bc *cache.BasisCache
	var key []byte
	if cfg.Cache.Enabled {
		bc, err = cache.Open(cfg.Cache.Dir)
		if err != nil {
			return err
		}
		defer bc.Close()
		key = cache.Key(sys.Canonical())
		rows, ok, err := bc.Get(key)
		if err != nil {
			return err
		}
		if ok {
			basis, err := cache.DecodeBasis(rows)
			if err != nil {
				return err
			}
			printBasis(cmd, basis)
			return nil
		}
	}

	b := hilbert.New()
	if err := sys.Apply(b); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	result := b.Saturate(ctx)

	if cfg.Trace {
		b.Dump(cmd.ErrOrStderr())
	}
	if cfg.Stats.Enabled {
		st := stats.New()
		b.CollectStats(st)
		_ = st.Display(cmd.ErrOrStderr())
	}

	switch result {
	case hilbert.ResultUnsat:
		fmt.Fprintln(cmd.OutOrStdout(), "unsat")
		return nil
	case hilbert.ResultCancelled:
		return fmt.Errorf("saturation cancelled")
	}

	basis := b.BasisAll()
	printBasis(cmd, basis)
	if bc != nil {
		if err := bc.Put(key, cache.EncodeBasis(basis)); err != nil {
			return err
		}
	}
	return nil
}

func printBasis(cmd *cobra.Command, basis []ratvec.Vec) {
	out := cmd.OutOrStdout()
	for _, v := range basis {
		fmt.Fprintln(out, ratvec.String(v))
	}
}
