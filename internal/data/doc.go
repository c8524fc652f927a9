// Package data embeds the reference datasets shipped with church.
//
// The store is laid out as one directory per locale partition, one plain-text
// file per category and one entry per line:
//
//	en_us/street
//	en_us/chemical_elements
//	ru_ru/m_surnames
//	other/naughty_strings
//
// The "other" directory holds auxiliary lists that are not tied to a locale.
package data
