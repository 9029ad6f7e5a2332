// Package config provides centralized configuration for the aggregator CLI.
// It loads configuration from multiple sources, validates the result, and
// hands the rest of the application a single typed Config value.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. An optional YAML configuration file
//	3. Built-in defaults (lowest priority)
//
// A .env file in the working directory is read into the environment before
// environment variables are processed, so pipeline runners can ship settings
// alongside the data they feed in.
//
// # Environment Variables
//
// All environment variables use the AGG_ prefix for namespacing:
//
//	AGG_LOGGING_LEVEL=debug
//	AGG_LOGGING_OUTPUT=file
//	AGG_FALLBACK_ENABLED=false
//	AGG_OUTPUT_FORMAT=csv
package config
