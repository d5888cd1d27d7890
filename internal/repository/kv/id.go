package kv

import "math/rand/v2"

const (
	idPrefix   = "id_"
	idFragLen  = 8
	idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// NewID returns an opaque identifier: a fixed prefix plus a random base-36
// fragment. Collisions are possible but treated as negligible; no uniqueness
// check is made against existing collections. Not for anything
// security-sensitive.
func NewID() string {
	b := make([]byte, 0, len(idPrefix)+idFragLen)
	b = append(b, idPrefix...)
	for range idFragLen {
		b = append(b, idAlphabet[rand.IntN(len(idAlphabet))])
	}

	return string(b)
}
