package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dennisjackson/certcompress"
	"github.com/dennisjackson/certcompress/internal/obslog"
)

// newDemoCmd mirrors the Rust prior art's src/bin/demo.rs: read a file (or
// every file in a directory), optionally base64-decode it, run it through
// the built-in compressor or decompressor, and report the size change.
func newDemoCmd(logger *zap.Logger) *cobra.Command {
	logger = obslog.WithComponent(logger, "demo")

	cmd := &cobra.Command{
		Use:   "demo <input-path>",
		Short: "Run the built-in codec over a file or directory of files and report savings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decompress, _ := cmd.Flags().GetBool("decompress")
			useBase64, _ := cmd.Flags().GetBool("base64")
			maxSize, _ := cmd.Flags().GetInt("max-size")

			files, err := demoInputFiles(args[0])
			if err != nil {
				return err
			}

			runID := uuid.NewString()
			for _, f := range files {
				if err := runDemoFile(cmd, logger, runID, f, decompress, useBase64, maxSize); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolP("decompress", "d", false, "decompress instead of compress")
	cmd.Flags().BoolP("base64", "b", false, "input is base64-encoded")
	cmd.Flags().Int("max-size", defaultMaxSize, "maximum decompressed size (decompress mode only)")

	return cmd
}

func demoInputFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, filepath.Join(path, e.Name()))
		}
	}
	return files, nil
}

func runDemoFile(cmd *cobra.Command, logger *zap.Logger, runID, path string, decompress, useBase64 bool, maxSize int) error {
	input, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to open input %q: %w", path, err)
	}
	if useBase64 {
		decoded, err := base64.StdEncoding.DecodeString(string(input))
		if err != nil {
			return fmt.Errorf("error decoding base64 for %q: %w", path, err)
		}
		input = decoded
	}

	var output []byte
	if decompress {
		output, err = certcompress.NewDecompressor().Decompress(input, maxSize)
	} else {
		output, err = certcompress.New().Compress(input)
	}
	if err != nil {
		return fmt.Errorf("%q failed: %w", path, err)
	}

	verb := "Compressed"
	if decompress {
		verb = "Decompressed"
	}
	logger.Info(verb+" file",
		zap.String("run_id", runID),
		zap.String("path", path),
		zap.Int("from_bytes", len(input)),
		zap.Int("to_bytes", len(output)),
	)

	return writeOutput(cmd.OutOrStdout(), output, true)
}
