// Package config loads the church CLI configuration.
//
// Values are layered, later layers overriding earlier ones:
//
//  1. Defaults
//  2. Global file ($XDG_CONFIG_HOME/church/config.yaml)
//  3. Local file (.churchrc.yaml in the working directory)
//  4. Environment (CHURCH_LOCALE, CHURCH_SEED, ...), including a .env file
//     in the working directory
//  5. Command-line flags, applied by the caller with Set
//
// Config.Sources records which layer each value came from; Dump renders the
// effective configuration as YAML annotated with those sources.
package config
