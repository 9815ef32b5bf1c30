package main

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nextprime/pkg/prime"
)

var (
	walkCount   int
	walkTimeout time.Duration
)

// walkCmd feeds each result back in as the next input
var walkCmd = &cobra.Command{
	Use:   "walk [n]",
	Short: "Print a run of consecutive primes after n",
	Long: `Starting from n (or from nothing, which yields 2 first), repeatedly
computes the next prime and uses it as the following input, printing each
result. --count bounds the number of steps and --timeout bounds the wall
clock; the deadline is checked between steps.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWalk,
}

func init() {
	walkCmd.Flags().IntVarP(&walkCount, "count", "n", 0, "Number of primes to print (default from config)")
	walkCmd.Flags().DurationVar(&walkTimeout, "timeout", 0, "Overall time budget, 0 for none (default from config)")
}

func runWalk(cmd *cobra.Command, args []string) error {
	var current *big.Int
	if len(args) == 1 {
		parsed, err := prime.ParseCandidate(args[0])
		if err != nil {
			return err
		}
		current = parsed
	}

	count := cfg.Walk.Count
	if cmd.Flags().Changed("count") {
		count = walkCount
	}
	if count < 0 {
		return fmt.Errorf("walk: count %d: %w", count, prime.ErrInvalidArgument)
	}
	timeout := cfg.Walk.Timeout
	if cmd.Flags().Changed("timeout") {
		timeout = walkTimeout
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	out := cmd.OutOrStdout()
	for step := 0; step < count; step++ {
		if err := ctx.Err(); err != nil {
			log.Warn("walk stopped early", zap.Int("step", step), zap.Error(err))
			return fmt.Errorf("walk stopped after %d steps: %w", step, err)
		}
		next, err := nextFrom(current)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, next)
		log.Debug("walk step", zap.Int("step", step), zap.Stringer("prime", next))
		current = next
	}
	return nil
}
