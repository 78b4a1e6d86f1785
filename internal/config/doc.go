// Package config holds the application configuration: CLI-populated
// options with documented defaults, validation with sentinel errors,
// and the optional .framelytics YAML file with per-page overrides.
//
// Configuration flows through the application by dependency injection;
// there is no global state. The CLI builds a Config from flags, merges
// the discovered config file into it, validates once, and passes it
// down.
package config
