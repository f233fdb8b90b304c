package digest

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/hashify/pkg/hashify"
)

func TestResolve_KnownVectors(t *testing.T) {
	// Digests of "alice@example.com" (UTF-8), verified against Python hashlib.
	tests := []struct {
		algorithm string
		expected  string
	}{
		{"md5", "c160f8cc69a4f0bf2b0362752353d060"},
		{"sha1", "fc2398a73dd54d6237c4fdb58fd7d75347cf5af3"},
		{"sha256", "ff8d9819fc0e12bf0d24892e45987e249a28dce836a85cad60e28eaaa8c6d976"},
		{"sha512", "284475ccd5b97d7c67438ebead74e5e234be891dbc2cea85a3db97b00799e3ec7ce9a5cbd94dcf5f0ea332c5dbfbe3937ec0b020561ac465e18233e93c951941"},
		{"blake2b", "c90c07bc806591e17a017db05a5c7552f473b1021587d06cf80323e76b8b0f7f924e706215ceaff9eb6ee0e1a2248f192e5756a24fbadf199db3bebe44deb6f2"},
		{"blake2s", "939e6f8a61ba0d00b20baff4e98adb9b0db64da416dcff67e94aba8c52dec5ca"},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			algo, err := Resolve(tt.algorithm)
			require.NoError(t, err)
			assert.Equal(t, tt.algorithm, algo.Name())
			assert.Equal(t, tt.expected, algo.SumString("alice@example.com"))
		})
	}
}

func TestResolve_NonASCIIInput(t *testing.T) {
	// Digest is computed over the UTF-8 byte encoding.
	algo, err := Resolve("sha256")
	require.NoError(t, err)
	assert.Equal(t,
		"850f7dc43910ff890f8879c0ed26fe697c93a067ad93a7d50f466a7028a9bf4e",
		algo.SumString("café"))
}

func TestResolve_CaseInsensitive(t *testing.T) {
	for _, name := range []string{"SHA256", "Sha256", "sHa256", "sha256"} {
		algo, err := Resolve(name)
		require.NoError(t, err, "Resolve(%q)", name)
		assert.Equal(t, "sha256", algo.Name())
	}
}

func TestResolve_Unsupported(t *testing.T) {
	_, err := Resolve("sha3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, hashify.ErrUnsupportedAlgorithm))

	// The message must list the full supported set.
	for _, name := range Names() {
		assert.Contains(t, err.Error(), name)
	}
	assert.Contains(t, err.Error(), `"sha3"`)
}

func TestSum_Deterministic(t *testing.T) {
	algo, err := Resolve("blake2b")
	require.NoError(t, err)

	first := algo.SumString("same input")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, algo.SumString("same input"))
	}
}

func TestSum_LowercaseHex(t *testing.T) {
	for _, name := range Names() {
		algo, err := Resolve(name)
		require.NoError(t, err)

		sum := algo.SumString("Hello, World")
		assert.Equal(t, strings.ToLower(sum), sum, "%s digest must be lowercase hex", name)
		assert.NotEmpty(t, sum)
	}
}

func TestSum_DigestLengths(t *testing.T) {
	// Hex length is twice the digest size in bytes.
	lengths := map[string]int{
		"md5":     32,
		"sha1":    40,
		"sha256":  64,
		"sha512":  128,
		"blake2b": 128,
		"blake2s": 64,
	}

	for name, expected := range lengths {
		algo, err := Resolve(name)
		require.NoError(t, err)
		assert.Len(t, algo.SumString("x"), expected, "%s digest length", name)
	}
}

func TestNames_SortedAndClosed(t *testing.T) {
	expected := []string{"blake2b", "blake2s", "md5", "sha1", "sha256", "sha512"}
	assert.Equal(t, expected, Names())
}
