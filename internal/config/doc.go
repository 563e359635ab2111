// Package config provides configuration loading, merging, and validation
// facilities for qr-mint.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server runtime and
// [GetClientConfig] for the TUI client.
package config
