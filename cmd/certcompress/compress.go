package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/dennisjackson/certcompress"
	"github.com/dennisjackson/certcompress/internal/obslog"
)

type compressCmd struct {
	logger *zap.Logger
}

func newCompressCmd(logger *zap.Logger) *cobra.Command {
	c := &compressCmd{logger: obslog.WithComponent(logger, "compress")}

	cmd := &cobra.Command{
		Use:     "compress [input-file]",
		Short:   "Compress a serialized TLS 1.3 Certificate message",
		Example: `certcompress compress --algorithm zstd message.bin`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    c.run,
	}

	cmd.Flags().StringP("algorithm", "a", "zstd", "pass-2 algorithm: zstd, zlib or brotli")
	cmd.Flags().Bool("base64", false, "emit output as base64 instead of raw bytes")
	if err := viper.BindPFlag("algorithm", cmd.Flags().Lookup("algorithm")); err != nil {
		c.logger.Warn("failed to bind algorithm flag", zap.Error(err))
	}

	return cmd
}

func (c *compressCmd) run(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	algName, _ := cmd.Flags().GetString("algorithm")
	alg, err := algorithmByName(algName)
	if err != nil {
		return err
	}

	compressor := certcompress.NewWithAlgorithm(alg)
	output, err := compressor.Compress(input)
	if err != nil {
		return fmt.Errorf("compress failed: %w", err)
	}

	c.logger.Info("compressed message",
		zap.Int("input_bytes", len(input)),
		zap.Int("output_bytes", len(output)),
		zap.String("algorithm", algName),
	)

	useBase64, _ := cmd.Flags().GetBool("base64")
	return writeOutput(cmd.OutOrStdout(), output, useBase64)
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

func writeOutput(w io.Writer, data []byte, useBase64 bool) error {
	if useBase64 {
		_, err := io.WriteString(w, base64.StdEncoding.EncodeToString(data))
		return err
	}
	_, err := w.Write(data)
	return err
}
