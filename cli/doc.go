// Package cli contains the command line interface for builddetails.
//
// # Usage
//
// Generate writes the build details selected by the selection file into the
// directory named by OUT_DIR (or --out-dir):
//
//	builddetails
//	builddetails --syntax go --package main build_details.go
//	builddetails --check
//
// Kinds lists every detail kind and whether the current selection includes
// it; init writes a starter selection file:
//
//	builddetails kinds
//	builddetails init --log-level=debug
//
// # Selection File
//
// The selection file is YAML. It is read from --config, or
// .builddetails.yaml in the working directory, or config.yaml in the user
// configuration directory. Its flags section provides defaults for any
// command-line flag:
//
//	preset: default
//	require: [version, profile]
//	flags:
//	  log-level: debug
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, etc.)
//   - --[no-]log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
//     (default: ~/.cache/builddetails/pprof)
package cli
