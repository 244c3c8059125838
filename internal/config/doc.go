// Package config loads the pbpaths command's own settings (log level, output
// format, property sources) from YAML files, environment variables and CLI
// flags with precedence: CLI flags > YAML config > Environment variables >
// Defaults. The data-set locations themselves are resolved by pbconfig.
package config
