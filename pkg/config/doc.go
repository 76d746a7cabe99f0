// Package config loads environment-based configuration into typed structs.
//
// It wraps caarlos0/env with a per-type cache so that every package's Config
// struct is parsed exactly once per process, and bootstraps a .env file via
// godotenv on first use (missing .env files are silently ignored).
//
// # Usage
//
//	var cfg session.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Use MustLoad for configuration without which the program cannot start.
package config
