// Package config holds the run configuration of pipegrid and loads the
// optional HCL configuration file.
//
// A configuration file may set any of:
//
//	input      = "grids/connected_sinks.txt"
//	render     = true
//	log_level  = "debug"
//	log_format = "json"
//	traversal  = "dfs"
//
// Expressions can read the process environment through the env object,
// e.g. log_level = env.PIPEGRID_LOG_LEVEL.
package config
