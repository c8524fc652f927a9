// Package random provides the selection primitives every generator uses:
// uniform choice, sampling without replacement and bounded numbers.
//
// A *Rand wraps a seeded PCG source so that a generator built with a fixed
// seed reproduces its output. A nil *Rand is valid and draws from the global
// math/rand/v2 source. Neither mode is suitable for cryptographic use.
package random
