// Package config provides configuration loading, merging, and validation
// facilities for the content console.
//
// Configuration is assembled from multiple sources. A value set by an
// earlier source wins over later ones:
//  1. Command-line flags
//  2. Environment variables (optionally seeded from a .env file)
//  3. JSON config file (path from -c/-config or CONFIG)
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig], which returns the validated
// [ClientConfig] view used by cmd/console.
package config
