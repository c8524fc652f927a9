// Package template renders text containing {{expression}} placeholders
// with generated data.
//
// # Fields
//
// Any field of the provider catalog can be used directly:
//   - {{address.city}} - City name in the engine's locale
//   - {{personal.full_name}} - Full name of a random gender
//   - {{food.fruit}} - Fruit name
//
// See provider.Generic.Fields for the full list.
//
// # Built-in Variables
//
// Random values:
//   - {{uuid}} - Random UUID v4
//   - {{uuid.short}} - First 8 characters of a UUID v4
//   - {{random.int}} - Random integer 0-100
//   - {{random.int(min, max)}} - Random integer in range [min, max]
//   - {{random.float}} - Random float 0.0-1.0
//   - {{random.float(min, max)}} - Random float in range
//   - {{random.float(min, max, precision)}} - Random float with decimal precision
//   - {{random.string}} - Random 10-character alphanumeric string
//   - {{random.string(N)}} - Random N-character alphanumeric string
//
// Counters:
//   - {{sequence("name")}} - Named counter starting at 1
//   - {{sequence("name", start)}} - Named counter starting at start
//
// # Functions
//
// Arguments are either quoted literals or expressions:
//   - {{upper(address.city)}} - Uppercase using the locale's case rules
//   - {{lower("ÇA")}} - Lowercase using the locale's case rules
//   - {{default(personal.profession, "none")}} - Fallback when the value is
//     empty or its dataset is missing
//
// # Errors
//
// Unlike a lenient templating engine, an unknown expression or a failing
// field stops rendering and Process returns the error.
//
// # Determinism
//
// When the provider is seeded, every random expression, including uuid,
// draws from the same source, so a template renders identically for the
// same seed.
package template
