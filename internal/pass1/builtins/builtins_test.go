package builtins

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTablesAreBijective(t *testing.T) {
	require.NotEmpty(t, idToCert)
	require.Equal(t, len(idToCert), len(hashToID))

	for idKey, cert := range idToCert {
		id := []byte(idKey)
		gotID, ok := CertToIdentifier(cert)
		require.True(t, ok)
		require.Equal(t, id, gotID)

		gotCert, ok := IdentifierToCert(id)
		require.True(t, ok)
		require.Equal(t, cert, gotCert)
	}
}

func TestUnknownCertificateIsTransparent(t *testing.T) {
	_, ok := CertToIdentifier([]byte("not a certificate anyone registered"))
	require.False(t, ok)
}

func TestUnknownIdentifierIsTransparent(t *testing.T) {
	_, ok := IdentifierToCert([]byte("0123456789abcdef0123456789abcdef"))
	require.False(t, ok)
}

func TestMaxExpansionRatioAtLeastOne(t *testing.T) {
	require.GreaterOrEqual(t, MaxExpansionRatio(), 1.0)
}

func TestDictionaryIsDeterministic(t *testing.T) {
	a := Dictionary()
	b := Dictionary()
	require.Equal(t, a, b)
	require.NotEmpty(t, a)
}
