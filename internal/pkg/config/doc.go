// Package config loads and validates the service configuration.
//
// Settings are read from a YAML file through viper, overridden by TUTORIA_*
// environment variables and validated with go-playground/validator before
// any component is built from them.
package config
