// Package config provides functionality for loading and managing application configuration.
//
// Settings are layered: built-in defaults, an optional YAML file, an optional .env
// file and finally process environment variables. Every settings struct validates
// itself with go-playground/validator before it is handed to the rest of the
// application.
package config
