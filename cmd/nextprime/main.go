package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nextprime/internal/config"
	"nextprime/internal/logger"
	"nextprime/pkg/prime"
)

var (
	// Global flags
	configPath   string
	verbose      bool
	sieveLimit   int
	selfridgeMax int

	// 由 PersistentPreRunE 初始化
	cfg    *config.Config
	log    *zap.Logger
	tester *prime.Tester
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nextprime",
	Short: "Baillie-PSW primality checks and next-prime search",
	Long: `nextprime tests integers with the Baillie-PSW probable-prime test
(trial division, strong pseudoprime tests to bases 2 and 3, and a strong
Lucas test with Selfridge parameters) and searches for the next prime.

Baillie-PSW has no known counterexample, but it is not a primality proof.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().IntVar(&sieveLimit, "sieve-limit", prime.DefaultSieveLimit, "Trial-division bound (primes below it are tried)")
	rootCmd.PersistentFlags().IntVar(&selfridgeMax, "selfridge-max", prime.DefaultSelfridgeMaxIterations, "Iteration cap for the Selfridge parameter search")

	rootCmd.AddCommand(nextCmd, checkCmd, walkCmd)
}

// setup loads the config file, applies flag overrides and builds the logger and tester.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if verbose {
		loaded.Log.Level = "debug"
	}
	if flags.Changed("sieve-limit") {
		loaded.Prime.SieveLimit = sieveLimit
	}
	if flags.Changed("selfridge-max") {
		loaded.Prime.SelfridgeMaxIterations = selfridgeMax
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	l, err := logger.New(loaded.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	t, err := prime.NewTester(loaded.Prime.TesterConfig(), l)
	if err != nil {
		return err
	}

	cfg, log, tester = loaded, l, t
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
