// Package config holds the settings of the tterm command.
//
// Settings come from three layers, later layers winning:
//
//  1. Default
//  2. a YAML or TOML file named by --config (Load)
//  3. command-line flags the user set explicitly (BindFlags)
//
// Validate checks the merged result once, after all layers are applied.
package config
