// Package commands defines the nestplot CLI.
//
// Commands
//
//   - plot    Draw a fitted-probability plot to a PNG or SVG file
//   - table   Print the prediction table behind a plot
//   - demo    Write a synthetic dataset, its model spec and two example plots
//
// # Configuration
//
// Settings come from an optional YAML file (--config), with ${VAR}
// references expanded from the environment after an optional .env file is
// loaded. Flags given on the command line override the file.
package commands
