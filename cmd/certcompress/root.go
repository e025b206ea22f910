// Package main is the certcompress CLI: a thin cobra wrapper that drives
// the library's compress/decompress pipeline end to end, grounded in the
// teacher's cmd/root.go and cmd/compress.go structure (a struct holding a
// *zap.Logger, and a newXxxCmd(logger) constructor that returns the
// *cobra.Command with its flags bound).
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/dennisjackson/certcompress/internal/obslog"
)

var verbose bool

func newRootCmd(logger *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "certcompress",
		Short: "Compress and decompress TLS 1.3 Certificate messages (RFC 8879)",
		// Runs after flag parsing, so a --config path is visible to viper.
		PersistentPreRun: func(*cobra.Command, []string) { loadConfig(logger) },
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().String("config", "", "path to a config file (overrides defaults; flags and env vars take precedence)")
	if err := viper.BindPFlag("config", root.PersistentFlags().Lookup("config")); err != nil {
		logger.Warn("failed to bind config flag", zap.Error(err))
	}

	root.AddCommand(newCompressCmd(logger))
	root.AddCommand(newDecompressCmd(logger))
	root.AddCommand(newDemoCmd(logger))

	return root
}

func main() {
	logger, err := obslog.New(hasVerboseFlag())
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("failed to start logger: %v", err))
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

// hasVerboseFlag does a best-effort scan of os.Args so the logger itself —
// built before cobra parses flags — can also honor -v/--verbose.
func hasVerboseFlag() bool {
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "--verbose" {
			return true
		}
	}
	return false
}
