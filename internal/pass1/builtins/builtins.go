// Package builtins holds the certificate compressor's built-in,
// compile-time-fixed identifier/certificate tables. The tables are derived
// once, at package init, from the embedded JSON dataset data/pass1.json
// (tools/gentables can compile the same dataset into Go map literals);
// nothing in this package ever mutates them afterward.
package builtins

import (
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/decred/dcrd/crypto/blake256"
)

//go:embed data/pass1.json
var datasetJSON []byte

// Fingerprint is a BLAKE-256 digest of a certificate's DER bytes.
type Fingerprint [32]byte

type dataset struct {
	Data map[string]string `json:"data"`
}

var (
	idToCert map[string][]byte
	hashToID map[Fingerprint]string
	idToHash map[string]Fingerprint

	// maxExpansionRatio is the largest (len(cert) / len(identifier)) seen
	// across the built-in table. It is reported by MaxExpansionRatio; the
	// composite codec does not use it to size pass 2's output cap.
	maxExpansionRatio float64
)

func init() {
	var ds dataset
	if err := json.Unmarshal(datasetJSON, &ds); err != nil {
		panic(fmt.Sprintf("builtins: embedded dataset is not valid JSON: %v", err))
	}
	if len(ds.Data) == 0 {
		panic("builtins: embedded dataset is empty")
	}

	idToCert = make(map[string][]byte, len(ds.Data))
	hashToID = make(map[Fingerprint]string, len(ds.Data))
	idToHash = make(map[string]Fingerprint, len(ds.Data))
	maxExpansionRatio = 1

	for idHex, certHex := range ds.Data {
		id, err := hex.DecodeString(idHex)
		if err != nil {
			panic(fmt.Sprintf("builtins: identifier %q is not hex: %v", idHex, err))
		}
		cert, err := hex.DecodeString(certHex)
		if err != nil {
			panic(fmt.Sprintf("builtins: certificate for id %q is not hex: %v", idHex, err))
		}

		idKey := string(id)
		fp := Fingerprint(blake256.Sum256(cert))

		if _, dup := idToCert[idKey]; dup {
			panic(fmt.Sprintf("builtins: duplicate identifier %q", idHex))
		}
		if other, dup := hashToID[fp]; dup {
			panic(fmt.Sprintf("builtins: fingerprint collision between %q and %q", idHex, other))
		}

		idToCert[idKey] = cert
		hashToID[fp] = idKey
		idToHash[idKey] = fp

		if ratio := float64(len(cert)) / float64(len(id)); ratio > maxExpansionRatio {
			maxExpansionRatio = ratio
		}
	}

	assertBijective()
}

// assertBijective re-derives hashToID from idToCert and checks the two
// tables agree, catching a corrupt or hand-edited embedded dataset at
// startup rather than at first lookup.
func assertBijective() {
	for idKey, cert := range idToCert {
		fp := Fingerprint(blake256.Sum256(cert))
		gotID, ok := hashToID[fp]
		if !ok || gotID != idKey {
			panic("builtins: id_to_cert and hash_to_id tables disagree")
		}
	}
}

// CertToIdentifier returns the built-in identifier assigned to cert's DER
// bytes, and whether one exists.
func CertToIdentifier(cert []byte) (id []byte, ok bool) {
	fp := Fingerprint(blake256.Sum256(cert))
	idKey, ok := hashToID[fp]
	if !ok {
		return nil, false
	}
	return []byte(idKey), true
}

// IdentifierToCert returns the certificate DER bytes assigned to id, and
// whether one exists.
func IdentifierToCert(id []byte) (cert []byte, ok bool) {
	cert, ok = idToCert[string(id)]
	return cert, ok
}

// Fingerprints of an identifier, if present in the (optional) id_to_hash
// side table.
func IdentifierToFingerprint(id []byte) (fp Fingerprint, ok bool) {
	fp, ok = idToHash[string(id)]
	return fp, ok
}

// MaxExpansionRatio reports the largest ratio of certificate size to
// identifier size across the built-in table. It is always >= 1. This
// bounds how much a single substituted entry can grow when pass 1 expands
// its identifier back to the full certificate; callers sizing their own
// buffers around a requested maxSize can use it to estimate the worst-case
// transient memory a decompress call may need (see certcompress.Decompressor.Decompress).
func MaxExpansionRatio() float64 {
	return maxExpansionRatio
}

// Dictionary returns the raw priming bytes used to seed the pass-2 entropy
// coder: the concatenated DER bytes of every built-in certificate, in a
// stable order. It is not a trained zstd dictionary (no frame magic, no
// entropy tables) — just representative content, which klauspost/compress's
// raw-content dictionary mode accepts directly.
func Dictionary() []byte {
	// Concatenate in a stable, sorted-by-identifier order so Dictionary is
	// deterministic across process runs despite Go's randomized map order.
	ids := make([]string, 0, len(idToCert))
	for id := range idToCert {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []byte
	for _, id := range ids {
		out = append(out, idToCert[id]...)
	}
	return out
}
