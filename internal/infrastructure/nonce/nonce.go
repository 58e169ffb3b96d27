package nonce

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"nairagate.com/internal/domain/port"
)

// DefaultLength is the random suffix length used when callers pass a
// non-positive length.
const DefaultLength = 16

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Generator produces request correlation strings: the current unix-millis
// timestamp in base36 followed by a random base36 suffix. Roughly
// chronologically ordered with low collision probability; not a security
// token and not guaranteed unique.
type Generator struct{}

// NewGenerator creates a nonce generator.
func NewGenerator() port.NonceGenerator {
	return &Generator{}
}

// Generate returns a new nonce with a random suffix of the given length.
func (g *Generator) Generate(length int) string {
	if length <= 0 {
		length = DefaultLength
	}

	var sb strings.Builder
	sb.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 36))
	for i := 0; i < length; i++ {
		sb.WriteByte(base36Alphabet[rand.Intn(len(base36Alphabet))])
	}
	return sb.String()
}
