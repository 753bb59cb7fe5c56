// Package identifier generates human-facing identifiers: order numbers and URL slugs.
package identifier

import (
	"math/rand/v2"
	"regexp"
	"strings"
	"time"
)

const (
	orderNumberPrefix     = "ORD"
	orderNumberDateLayout = "20060102"
	orderNumberSuffixLen  = 6
	base36Alphabet        = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// OrderNumberPattern matches every value produced by GenerateOrderNumber.
var OrderNumberPattern = regexp.MustCompile(`^ORD-\d{8}-[A-Z0-9]{6}$`)

var defaultOrderNumbers = NewOrderNumberGenerator(time.Now)

// OrderNumberGenerator produces order numbers of the form ORD-YYYYMMDD-XXXXXX.
//
// The six character suffix is drawn from the process-wide PRNG. Numbers are collision
// resistant, not unique: two calls on the same day may collide, so persistence must
// enforce uniqueness and callers retry on conflict.
type OrderNumberGenerator struct {
	now func() time.Time
}

// NewOrderNumberGenerator creates a generator that stamps numbers with the UTC date of now().
func NewOrderNumberGenerator(now func() time.Time) OrderNumberGenerator {
	if now == nil {
		now = time.Now
	}
	return OrderNumberGenerator{now: now}
}

// Next returns a fresh order number.
func (g OrderNumberGenerator) Next() string {
	var b strings.Builder
	b.Grow(len(orderNumberPrefix) + 1 + len(orderNumberDateLayout) + 1 + orderNumberSuffixLen)

	b.WriteString(orderNumberPrefix)
	b.WriteByte('-')
	b.WriteString(g.now().UTC().Format(orderNumberDateLayout))
	b.WriteByte('-')
	for range orderNumberSuffixLen {
		b.WriteByte(base36Alphabet[rand.IntN(len(base36Alphabet))]) //nolint:gosec // not a secret
	}

	return b.String()
}

// GenerateOrderNumber returns an order number stamped with today's UTC date.
func GenerateOrderNumber() string {
	return defaultOrderNumbers.Next()
}

var (
	// \s is ASCII only in RE2; \p{Z} and NEL add the rest of unicode.IsSpace.
	whitespaceRun   = regexp.MustCompile(`[\s\p{Z}\x{0085}]+`)
	nonSlugChars    = regexp.MustCompile(`[^\w-]+`)
	repeatedHyphens = regexp.MustCompile(`-{2,}`)
)

// Slugify turns free text into a lowercase, hyphenated, URL-safe identifier.
//
//	Slugify("  Hello, World! ") == "hello-world"
//
// Slugify is idempotent and never returns leading, trailing or doubled hyphens.
// Text with no word characters yields "".
func Slugify(text string) string {
	s := strings.TrimSpace(strings.ToLower(text))
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = nonSlugChars.ReplaceAllString(s, "")
	s = repeatedHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
