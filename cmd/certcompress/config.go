package main

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// defaultMaxSize mirrors the demo CLI's canonical cap in the Rust prior
// art this codec is based on.
const defaultMaxSize = 16_000

func loadConfig(logger *zap.Logger) {
	viper.SetEnvPrefix("CERTCOMPRESS")
	viper.AutomaticEnv()
	viper.SetDefault("max-size", defaultMaxSize)
	viper.SetDefault("algorithm", "zstd")

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			logger.Warn("failed to read config file", zap.String("path", cfgFile), zap.Error(err))
		}
	}
}
