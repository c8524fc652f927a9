// Package logging provides structured logging configuration for church.
//
// This package wraps log/slog so the resolver and the CLI share one logger
// setup with configurable level and output format.
//
// # Usage
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatText,
//	})
//
//	logger.Debug("dataset loaded", "category", "street", "locale", "en_us")
//
// # Integration
//
// Components accept a *slog.Logger through an option. When none is given
// they use logging.Nop(), so the library is silent unless asked otherwise.
package logging
