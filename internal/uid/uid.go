// Package uid derives the stable hexadecimal identifiers that cross-link
// manifest objects. An identifier is a truncated MD5 of a human-readable
// salt, so the same salt always yields the same identifier across runs and
// across manifest sections.
package uid

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
)

// Length is the number of hex digits in an identifier, matching the
// 24-character object ID format Xcode uses.
const Length = 24

// Hash returns the identifier for the given salt: the first Length hex
// digits of the salt's MD5 digest, uppercased. Pure function, no state.
func Hash(salt string) string {
	sum := md5.Sum([]byte(salt))
	return strings.ToUpper(hex.EncodeToString(sum[:]))[:Length]
}

// Generator issues identifiers for a single manifest build. Repeated
// requests for the same salt return the same identifier. When two distinct
// salts produce the same identifier, the later salt is perturbed until its
// identifier is free and the event is logged.
type Generator struct {
	bySalt map[string]string
	byID   map[string]string // identifier -> owning salt
	hashFn func(string) string
}

// NewGenerator creates an empty Generator.
func NewGenerator() *Generator {
	return &Generator{
		bySalt: make(map[string]string),
		byID:   make(map[string]string),
		hashFn: Hash,
	}
}

// ID returns the identifier for salt, resolving collisions by perturbation.
func (g *Generator) ID(salt string) string {
	if id, ok := g.bySalt[salt]; ok {
		return id
	}

	id := g.hashFn(salt)
	for n := 1; ; n++ {
		owner, taken := g.byID[id]
		if !taken {
			break
		}
		next := fmt.Sprintf("%s#%d", salt, n)
		slog.Warn("identifier collision, perturbing salt",
			"salt", salt, "collidesWith", owner, "retry", next)
		id = g.hashFn(next)
	}

	g.bySalt[salt] = id
	g.byID[id] = salt
	return id
}
