// Package config loads runtime configuration for the portal client.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. PORTAL_* environment variables, e.g. PORTAL_BACKEND_URL.
//  4. Command-line flags.
//
// Supported flags
//
//	-a string   backend API base URL
//	-d string   state database path
//	-o string   directory downloaded documents are written to
//	-l string   listen address of the local web portal
//
// # JSON schema
//
// Durations are strings like "15s" or integer nanoseconds. Keys that are
// absent keep their previous value:
//
//	{
//	  "backend_url": "https://nvpwelfare.in/api",
//	  "http_timeout": "15s",
//	  "locale": "en-IN",
//	  "s3_bucket": "receipts"
//	}
package config
