// Package config provides configuration management for motogp-nospoiler.
//
// This package handles:
//   - Loading and saving settings from JSON or TOML files
//   - Default configuration values
//   - Environment overrides (NOSPOILER_*), including a local .env file
//   - Validation
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Fetches from the public MotoGP API
//	// Writes pages to ./output with links rooted at "/"
//
// # Loading from File
//
//	settings, err := config.Load("nospoiler.toml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//	settings.ApplyEnv()
//	if err := settings.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Sample File
//
//	err := config.CreateSample("nospoiler.toml")
package config
