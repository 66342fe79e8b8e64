// Package cmd provides the command-line interface for mayura.
//
// This package implements all CLI commands using the Cobra framework.
//
// # Available Commands
//
//   - serve: Start the live widget showcase
//   - list: List the widget catalogue
//   - pages: Print the pagination window for a page
//   - playground: Drive the table and select from the terminal
//   - version: Show version information
//
// # Command Examples
//
//	// Start the showcase on another port with custom demo data
//	mayura serve --port 3000 --fixtures demo.yml
//
//	// List widgets with their props as YAML
//	mayura list --with-props --format yaml
//
//	// Print the window around page 6 of 20
//	mayura pages --current 6 --total 20
//
// # Configuration Integration
//
// Commands respect configuration from multiple sources in order of precedence:
//
//  1. Command-line flags (highest priority)
//  2. Environment variables (MAYURA_*)
//  3. Configuration file (.mayura.yml or MAYURA_CONFIG_FILE)
//  4. Default values (lowest priority)
package cmd
