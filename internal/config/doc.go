// Package config provides configuration loading, merging, and validation
// for the site client.
//
// Configuration is assembled from multiple sources. Earlier sources win for
// every field they set:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry point for the client binary is [GetClientConfig].
package config
