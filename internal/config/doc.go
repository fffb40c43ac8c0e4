// Package config loads, merges, and validates the application configuration.
//
// Values are collected from environment variables, command line flags, and
// an optional JSON file, and merged in that order with
// non-zero fields of earlier sources taking precedence. The merged result is
// validated and defaulted before use.
package config
