package main

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/dennisjackson/certcompress"
	"github.com/dennisjackson/certcompress/internal/obslog"
)

type decompressCmd struct {
	logger *zap.Logger
}

func newDecompressCmd(logger *zap.Logger) *cobra.Command {
	c := &decompressCmd{logger: obslog.WithComponent(logger, "decompress")}

	cmd := &cobra.Command{
		Use:     "decompress [input-file]",
		Short:   "Decompress a compressed TLS 1.3 Certificate message",
		Example: `certcompress decompress --max-size 16000 message.bin.zst`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    c.run,
	}

	cmd.Flags().StringP("algorithm", "a", "zstd", "pass-2 algorithm: zstd, zlib or brotli")
	cmd.Flags().Int("max-size", defaultMaxSize, "maximum allowed decompressed size in bytes")
	cmd.Flags().Bool("base64", false, "input is base64-encoded")
	if err := viper.BindPFlag("max-size", cmd.Flags().Lookup("max-size")); err != nil {
		c.logger.Warn("failed to bind max-size flag", zap.Error(err))
	}

	return cmd
}

func (c *decompressCmd) run(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	useBase64, _ := cmd.Flags().GetBool("base64")
	if useBase64 {
		decoded, err := base64.StdEncoding.DecodeString(string(input))
		if err != nil {
			return fmt.Errorf("failed to decode base64 input: %w", err)
		}
		input = decoded
	}

	algName, _ := cmd.Flags().GetString("algorithm")
	alg, err := algorithmByName(algName)
	if err != nil {
		return err
	}

	maxSize := viper.GetInt("max-size")
	decompressor := certcompress.NewDecompressorWithAlgorithm(alg)
	output, err := decompressor.Decompress(input, maxSize)
	if err != nil {
		return fmt.Errorf("decompress failed: %w", err)
	}

	c.logger.Info("decompressed message",
		zap.Int("input_bytes", len(input)),
		zap.Int("output_bytes", len(output)),
		zap.Int("max_size", maxSize),
	)

	_, err = cmd.OutOrStdout().Write(output)
	return err
}
