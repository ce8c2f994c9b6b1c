// Command trmvcheck inspects and exercises the trmv dispatch layer: which
// native backends are linked in, whether every path agrees, and how much
// the native path buys.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var level string
	root := &cobra.Command{
		Use:           "trmvcheck",
		Short:         "Inspect and verify triangular matrix-vector dispatch",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := zerolog.ParseLevel(level)
			if err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			zerolog.SetGlobalLevel(lvl)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})
			return nil
		},
	}
	root.PersistentFlags().StringVar(&level, "log-level", "warn", "zerolog level (debug, info, warn, error)")
	root.AddCommand(newBackendsCmd(), newVerifyCmd(), newBenchCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "trmvcheck:", err)
		os.Exit(1)
	}
}
