//go:build certcompress_debug

package pass1

import (
	"bytes"
	"fmt"

	"github.com/dennisjackson/certcompress/internal/pass1/builtins"
)

// Under -tags certcompress_debug, a caller-supplied lookup's results are
// cross-checked against the built-in table whenever both resolve the same
// input: a lookup that disagrees with the built-in dataset on an entry they
// both claim to know is a caller bug, reported by panicking rather than
// silently diverging. A lookup resolving an entry the built-in table
// doesn't know (or vice versa) is expected for a genuinely different
// dataset and is not flagged.
func debugCheckIDAgreement(cert, gotID []byte, gotOK bool) {
	wantID, wantOK := builtins.CertToIdentifier(cert)
	if gotOK && wantOK && !bytes.Equal(wantID, gotID) {
		panic(fmt.Sprintf("pass1: custom lookup disagrees with built-in table for cert %x", cert))
	}
}

func debugCheckCertAgreement(id, gotCert []byte, gotOK bool) {
	wantCert, wantOK := builtins.IdentifierToCert(id)
	if gotOK && wantOK && !bytes.Equal(wantCert, gotCert) {
		panic(fmt.Sprintf("pass1: custom lookup disagrees with built-in table for id %x", id))
	}
}
