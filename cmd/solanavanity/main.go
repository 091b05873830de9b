// Command solanavanity searches for Ed25519 keypairs whose base58-encoded
// Solana public key matches a requested prefix and/or suffix.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:     "solanavanity",
		Short:   "Search for Solana vanity keypairs",
		Version: version,
	}
	root.PersistentFlags().String("config", "", "optional YAML config file")
	root.PersistentFlags().String("log-level", "info", "zap log level (debug, info, warn, error)")
	root.AddCommand(newSearchCommand())
	return root
}
