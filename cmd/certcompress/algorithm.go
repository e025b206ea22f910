package main

import (
	"fmt"

	"github.com/dennisjackson/certcompress/internal/pass1/builtins"
	"github.com/dennisjackson/certcompress/internal/pass2"
)

func algorithmByName(name string) (pass2.Algorithm, error) {
	switch name {
	case "", "zstd", "zstandard":
		return pass2.NewZstdAlgorithm(builtins.Dictionary()), nil
	case "zlib":
		return pass2.NewZlibAlgorithm(9, builtins.Dictionary()), nil
	case "brotli":
		return pass2.NewBrotliAlgorithm(9), nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q (want zstd, zlib or brotli)", name)
	}
}
