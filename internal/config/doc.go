// Package config defines the application configuration structures and
// loading logic. Configuration is sourced from environment variables and
// an optional YAML file, validated before use, and injected into the
// services that need it; no package reads configuration from globals.
package config
