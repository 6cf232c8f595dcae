// Package cli parses command-line arguments into a config.Config, layering
// flags over an optional HCL configuration file, and maps failures to exit
// codes.
package cli
