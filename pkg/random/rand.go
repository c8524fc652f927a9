package random

import (
	"fmt"
	"math"
	mathrand "math/rand/v2"
	"strings"
	"sync"
)

// Rand is a goroutine-safe seeded random source.
type Rand struct {
	mu  sync.Mutex
	rng *mathrand.Rand
}

// New returns a Rand seeded with seed. Two Rands with the same seed produce
// the same sequence of values.
func New(seed uint64) *Rand {
	return &Rand{rng: mathrand.New(mathrand.NewPCG(seed, 0))}
}

// IntN returns a random int in [0, n). Returns 0 when n <= 0.
func (r *Rand) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	if r == nil {
		return mathrand.IntN(n)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

// Float64 returns a random float64 in [0, 1).
func (r *Rand) Float64() float64 {
	if r == nil {
		return mathrand.Float64()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// IntRange returns a random int in [min, max]. The bounds are swapped when
// given in the wrong order.
func (r *Rand) IntRange(min, max int) int {
	if min > max {
		min, max = max, min
	}
	if span := max - min + 1; span > 0 {
		return min + r.IntN(span)
	}
	// The span does not fit in an int. Wrapping arithmetic keeps the
	// offset inside [min, max].
	width := uint64(max) - uint64(min)
	if width == math.MaxUint64 {
		return int(r.uint64())
	}
	return min + int(r.uint64N(width+1))
}

func (r *Rand) uint64() uint64 {
	if r == nil {
		return mathrand.Uint64()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Uint64()
}

func (r *Rand) uint64N(n uint64) uint64 {
	if r == nil {
		return mathrand.Uint64N(n)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Uint64N(n)
}

// Float64Range returns a random float64 in [min, max).
func (r *Rand) Float64Range(min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	return min + r.Float64()*(max-min)
}

// Bool returns a random boolean.
func (r *Rand) Bool() bool {
	return r.IntN(2) == 1
}

// Digits returns a string of n random decimal digits.
func (r *Rand) Digits(n int) string {
	return r.String(n, DigitChars)
}

// String returns a string of n characters drawn uniformly from charset.
func (r *Rand) String(n int, charset string) string {
	if n <= 0 || charset == "" {
		return ""
	}
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(charset[r.IntN(len(charset))])
	}
	return sb.String()
}

// Character sets used by generators.
const (
	DigitChars       = "0123456789"
	LetterChars      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	AlphaNumChars    = LetterChars + DigitChars
	UpperHexChars    = "0123456789ABCDEF"
	PunctuationChars = `!"#$%+:<?@^_`
)

// Choice returns a uniformly chosen element of items.
// It panics if items is empty: selecting from nothing is a programming or
// packaging error and must not yield a zero value.
func Choice[T any](r *Rand, items []T) T {
	if len(items) == 0 {
		panic(fmt.Sprintf("random: Choice called with empty %T", items))
	}
	return items[r.IntN(len(items))]
}

// Sample returns k distinct elements of items in random order (selection
// without replacement). k is clamped to len(items).
func Sample[T any](r *Rand, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	if k <= 0 {
		return nil
	}
	// Partial Fisher-Yates over a copy; items is shared and read-only.
	pool := make([]T, len(items))
	copy(pool, items)
	for i := 0; i < k; i++ {
		j := i + r.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
