// Command gentables is the offline dataset compiler: given a pass1.json
// dataset (the same {"data": {id_hex: cert_hex}} format internal/pass1
// embeds and parses at init time), it emits a Go source file defining the
// equivalent tables as map literals.
//
// It exists for deployments that want their built-in tables baked in as
// compile-time constants rather than derived (and BLAKE-256-hashed) every
// time the process starts — the same tradeoff the Rust prior art's
// build.rs made with phf_codegen, reworked here as a standalone tool
// instead of a build-script hook since Go has no equivalent to cargo's
// build.rs stage.
package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"go/format"
	"os"
	"sort"

	"github.com/decred/dcrd/crypto/blake256"
)

type dataset struct {
	Data map[string]string `json:"data"`
}

func main() {
	inPath := flag.String("in", "internal/pass1/builtins/data/pass1.json", "path to the pass1.json dataset")
	outPath := flag.String("out", "", "output Go file path (default: stdout)")
	pkg := flag.String("package", "builtins", "package name for the generated file")
	flag.Parse()

	if err := run(*inPath, *outPath, *pkg); err != nil {
		fmt.Fprintln(os.Stderr, "gentables:", err)
		os.Exit(1)
	}
}

func run(inPath, outPath, pkg string) error {
	raw, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read dataset: %w", err)
	}

	var ds dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return fmt.Errorf("failed to parse dataset: %w", err)
	}

	ids := make([]string, 0, len(ds.Data))
	for id := range ds.Data {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by tools/gentables from %s. DO NOT EDIT.\n\n", inPath)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	buf.WriteString("var generatedIDToCert = map[string][]byte{\n")
	for _, idHex := range ids {
		cert, err := hex.DecodeString(ds.Data[idHex])
		if err != nil {
			return fmt.Errorf("id %s: %w", idHex, err)
		}
		fmt.Fprintf(&buf, "\t%q: %#v,\n", mustDecodeHexString(idHex), cert)
	}
	buf.WriteString("}\n\n")

	buf.WriteString("var generatedHashToID = map[[32]byte]string{\n")
	for _, idHex := range ids {
		cert, _ := hex.DecodeString(ds.Data[idHex])
		sum := blake256.Sum256(cert)
		fmt.Fprintf(&buf, "\t%#v: %q,\n", sum, mustDecodeHexString(idHex))
	}
	buf.WriteString("}\n")

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to gofmt generated source: %w", err)
	}

	if outPath == "" {
		_, err := os.Stdout.Write(formatted)
		return err
	}
	return os.WriteFile(outPath, formatted, 0o644)
}

func mustDecodeHexString(s string) string {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return string(b)
}
