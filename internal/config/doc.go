// Package config defines the application's configuration structures and
// loading logic. Configuration is sourced from environment variables with
// an optional YAML file, and validated before use.
package config
