// Package config provides configuration loading, merging, and validation
// facilities for the chat client and the development server.
//
// Configuration is assembled from multiple sources. For every field the first
// source that provides a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetClientConfig] for the interactive client and
// [GetDevServerConfig] for the local backend emulator.
package config
