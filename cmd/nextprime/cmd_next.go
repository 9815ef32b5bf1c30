package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nextprime/pkg/prime"
)

// nextCmd prints the prime following n, or 2 when n is omitted
var nextCmd = &cobra.Command{
	Use:   "next [n]",
	Short: "Print the smallest prime greater than n (2 when n is omitted)",
	Long: `Prints the smallest prime strictly greater than n, or 2 when n is
omitted. Negative input is rejected; pass it after "--" (next -- -5),
otherwise it is read as a flag.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runNext,
}

func runNext(cmd *cobra.Command, args []string) error {
	var n *big.Int
	if len(args) == 1 {
		parsed, err := prime.ParseCandidate(args[0])
		if err != nil {
			return err
		}
		n = parsed
	}

	next, err := nextFrom(n)
	if err != nil {
		return err
	}
	log.Debug("next computed", zap.Stringer("next", next))
	fmt.Fprintln(cmd.OutOrStdout(), next)
	return nil
}

// nextFrom treats a nil n as "no previous result".
func nextFrom(n *big.Int) (*big.Int, error) {
	if n == nil {
		return prime.NextPrime(nil)
	}
	return tester.Next(n)
}
