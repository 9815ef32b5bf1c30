package main

import (
	"context"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"nextprime/pkg/prime"
)

var checkConcurrency int

// checkCmd runs Baillie-PSW on every argument
var checkCmd = &cobra.Command{
	Use:   "check n [n...]",
	Short: "Report whether each argument is a Baillie-PSW probable prime",
	Long: `Tests every argument independently. Candidates are evaluated
concurrently; results are printed in argument order as "n prime" or
"n composite".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().IntVarP(&checkConcurrency, "concurrency", "j", 0, "Maximum candidates tested at once (default from config)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	candidates := make([]*big.Int, len(args))
	for i, arg := range args {
		n, err := prime.ParseCandidate(arg)
		if err != nil {
			return err
		}
		candidates[i] = n
	}

	limit := cfg.Check.Concurrency
	if checkConcurrency > 0 {
		limit = checkConcurrency
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	verdicts := make([]bool, len(candidates))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)
	for i, n := range candidates {
		i, n := i, n // per-iteration copies (go directive < 1.22)
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			ok, err := tester.IsPrime(n)
			if err != nil {
				return fmt.Errorf("check %v: %w", n, err)
			}
			verdicts[i] = ok
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, n := range candidates {
		verdict := "composite"
		if verdicts[i] {
			verdict = "prime"
		}
		fmt.Fprintf(out, "%v %s\n", n, verdict)
	}
	log.Debug("check finished", zap.Int("candidates", len(candidates)), zap.Int("concurrency", limit))
	return nil
}
