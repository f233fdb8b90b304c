// Package digest maps algorithm names to hash functions and computes
// lowercase-hexadecimal digests.
//
// The supported set is closed: md5, sha1, sha256, sha512, blake2b, blake2s.
// Resolution is a static, total mapping with case-insensitive names — no
// fallback, no partial matches. The table is built once and never mutated,
// so a resolved Algorithm is safe for concurrent use.
package digest
