// Package logger is a thin factory over log/slog with the options this kit's
// packages share: format (json for aggregation, text for terminals), level,
// output, static attributes and a per-component tag.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("countryctl"),
//	    logger.WithComponent("session"),
//	)
//	log.Info("session written", logger.Email(rec.Email))
//
// Core packages accept a *slog.Logger through their own options and fall back
// to slog.Default(), so wiring this package is optional.
package logger
