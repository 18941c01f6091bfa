// Package config reads the selection file that tells the builddetails
// command which details to generate.
//
// The file is YAML:
//
//	flags:
//	  log-level: debug
//	preset: default
//	syntax: rust
//	output: build_details.rs
//	require: [profile]
//	include: [cfg, features]
//	exclude: [rust-flags]
//	rules:
//	  - when: 'env("PROFILE") == "release"'
//	    require: [version, name]
//
// [File.Build] starts from the preset, applies require, include and exclude
// in that order, then the lists of each rule whose condition holds, in file
// order. Later steps win: a kind both required and then included ends up
// optional.
//
// # Rules
//
// A rule condition is an expr-lang boolean expression. It sees:
//
//	env(name)   value of an environment variable, "" if unset
//	has(name)   whether an environment variable is set
//	profile     value of PROFILE
//	features    enabled feature names (CARGO_FEATURE_* suffixes), sorted
//	cfg         configuration options (CARGO_CFG_* suffixes to values)
//
// A rule without a condition always applies.
//
// # Flags
//
// The flags section holds default values of the command line flags, keyed
// by flag name. Flags given on the command line take precedence.
package config
