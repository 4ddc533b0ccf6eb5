// Package config provides configuration loading, merging, and validation
// facilities for safevault.
//
// Configuration is assembled from multiple sources; for each field the first
// source with a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
