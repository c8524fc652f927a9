// Package locale normalizes the locale identifiers used to select a
// partition of the reference store.
//
// Identifiers are lowercase language_region pairs such as "en_us" or
// "ru_ru". Callers may pass any casing and either separator ("en-US",
// "EN_us"); Normalize maps them to the canonical form. Tag converts an
// identifier to a BCP 47 language.Tag for locale-aware text operations.
package locale
