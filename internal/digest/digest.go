package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"

	"github.com/vvka-141/hashify/pkg/hashify"
)

// Algorithm is a member of the closed digest set. The zero value is not
// usable; obtain one through Resolve.
type Algorithm struct {
	name string
	new  func() hash.Hash
}

// table is the process-wide algorithm registry, keyed by canonical
// lowercase name. Constructed once, never mutated.
//
// BLAKE2b uses the 512-bit form and BLAKE2s the 256-bit form, the
// unkeyed defaults of those functions. The constructors only error on
// oversized keys, so with a nil key the error is ignored.
var table = map[string]func() hash.Hash{
	"md5":    md5.New,
	"sha1":   sha1.New,
	"sha256": sha256.New,
	"sha512": sha512.New,
	"blake2b": func() hash.Hash {
		h, _ := blake2b.New512(nil)
		return h
	},
	"blake2s": func() hash.Hash {
		h, _ := blake2s.New256(nil)
		return h
	},
}

// Names returns the canonical algorithm names in sorted order.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve maps a case-insensitive algorithm name to its Algorithm.
// Unknown names fail with hashify.ErrUnsupportedAlgorithm; the message
// lists the supported set.
func Resolve(name string) (Algorithm, error) {
	canonical := strings.ToLower(name)
	ctor, ok := table[canonical]
	if !ok {
		return Algorithm{}, fmt.Errorf("%w: %q (supported: %s)",
			hashify.ErrUnsupportedAlgorithm, name, strings.Join(Names(), ", "))
	}
	return Algorithm{name: canonical, new: ctor}, nil
}

// Name returns the canonical lowercase name, e.g. "sha256".
func (a Algorithm) Name() string {
	return a.name
}

// Sum computes the lowercase-hexadecimal digest of data.
func (a Algorithm) Sum(data []byte) string {
	h := a.new()
	h.Write(data) // hash.Hash.Write never returns an error
	return hex.EncodeToString(h.Sum(nil))
}

// SumString computes the digest of the UTF-8 byte encoding of s.
func (a Algorithm) SumString(s string) string {
	return a.Sum([]byte(s))
}
