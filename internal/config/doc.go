// Package config loads, merges and validates configuration for the
// vault-adder client and the privileged backend.
//
// Sources, in increasing priority (later non-zero fields override earlier):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Entry points are [GetClientConfig] and [GetServerConfig], each returning a
// validated per-binary view of [StructuredConfig].
package config
