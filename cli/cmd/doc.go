// Package cmd implements the builddetails subcommands: generate, kinds and
// init.
package cmd

var (
	// ConfigIdentifier is the kong variable identifier containing the path to
	// the selection file.
	ConfigIdentifier = "config"

	// SyntaxIdentifier is the kong variable identifier containing the
	// comma-separated names of the supported target syntaxes.
	SyntaxIdentifier = "syntaxEnum"
)
