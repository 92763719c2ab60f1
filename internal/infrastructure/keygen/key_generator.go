package keygen

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/Irfansyah001/223-APIKeyGenerator/domain"
)

// Generator implements domain.KeyGenerator backed by crypto/rand.
// Uniqueness is enforced downstream by the store's unique constraint;
// the randomness here only has to make collisions astronomically unlikely.
type Generator struct{}

// NewGenerator creates a new key generator
func NewGenerator() domain.KeyGenerator {
	return &Generator{}
}

// segment produces 4 random bytes as 8 uppercase hex characters
func (g *Generator) segment() string {
	bytes := make([]byte, 4)
	rand.Read(bytes)
	return strings.ToUpper(hex.EncodeToString(bytes))
}

// Generate implements domain.KeyGenerator. A non-empty prefix is trimmed
// and joined to the segments with a single trailing underscore.
func (g *Generator) Generate(prefix string) string {
	p := strings.TrimSpace(prefix)
	if p != "" && !strings.HasSuffix(p, "_") {
		p += "_"
	}
	return p + g.segment() + "-" + g.segment() + "-" + g.segment()
}
