package pass2

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var samplePlaintext = bytes.Repeat([]byte("certificate bytes go here, over and over again. "), 400)

func TestZstdRoundTrip(t *testing.T) {
	alg := NewZstdAlgorithm(nil)
	compressed, err := alg.Compress(samplePlaintext)
	require.NoError(t, err)
	require.Less(t, len(compressed), len(samplePlaintext))

	out, err := alg.Decompress(compressed, len(samplePlaintext)+1000)
	require.NoError(t, err)
	require.Equal(t, samplePlaintext, out)
}

func TestZstdOutputTooLarge(t *testing.T) {
	alg := NewZstdAlgorithm(nil)
	compressed, err := alg.Compress(samplePlaintext)
	require.NoError(t, err)

	_, err = alg.Decompress(compressed, 100)
	require.Error(t, err)
	var pass2Err *Error
	require.ErrorAs(t, err, &pass2Err)
	require.Equal(t, KindOutputTooLarge, pass2Err.Kind)
	require.True(t, errors.Is(err, ErrOutputTooLarge))
}

func TestZstdWithDictionaryRoundTrip(t *testing.T) {
	dict := bytes.Repeat([]byte("dictionary priming content"), 20)
	alg := NewZstdAlgorithm(dict)
	compressed, err := alg.Compress(samplePlaintext)
	require.NoError(t, err)

	out, err := alg.Decompress(compressed, len(samplePlaintext)+1000)
	require.NoError(t, err)
	require.Equal(t, samplePlaintext, out)
}

func TestZlibRoundTrip(t *testing.T) {
	alg := NewZlibAlgorithm(9, nil)
	compressed, err := alg.Compress(samplePlaintext)
	require.NoError(t, err)

	out, err := alg.Decompress(compressed, len(samplePlaintext)+1000)
	require.NoError(t, err)
	require.Equal(t, samplePlaintext, out)
}

func TestBrotliRoundTrip(t *testing.T) {
	alg := NewBrotliAlgorithm(9)
	compressed, err := alg.Compress(samplePlaintext)
	require.NoError(t, err)

	out, err := alg.Decompress(compressed, len(samplePlaintext)+1000)
	require.NoError(t, err)
	require.Equal(t, samplePlaintext, out)
}

func FuzzZstdDecompress(f *testing.F) {
	alg := NewZstdAlgorithm(nil)
	compressed, err := alg.Compress(samplePlaintext)
	if err != nil {
		f.Fatal(err)
	}
	f.Add(compressed, 16000)
	f.Add([]byte{0x28, 0xb5, 0x2f, 0xfd}, 16000) // zstd magic only
	f.Add([]byte{}, 0)

	f.Fuzz(func(t *testing.T, data []byte, maxSize int) {
		if maxSize < 0 || maxSize > 1<<20 {
			t.Skip()
		}
		out, err := alg.Decompress(data, maxSize)
		if err == nil {
			require.LessOrEqual(t, len(out), maxSize)
		}
	})
}
