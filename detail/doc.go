// Package detail generates source files embedding build-time facts as typed
// constants.
//
// It runs as a pre-compilation step: a build script (or a go:generate
// directive) inspects the environment of the build and writes a file of
// constant declarations the program compiles in, so that facts such as the
// package version, the build profile or the enabled features are readable
// at run time.
//
// # Details
//
// Each fact is a [Kind]. The [Catalog] maps every kind to a [Descriptor]
// holding the constant name, its [Type], and a [Value] read fresh from the
// [Environment] (or the clock, for [Timestamp]):
//
//	Kind         Constant     Source
//	timestamp    TIMESTAMP    clock
//	version      VERSION      CARGO_PKG_VERSION
//	profile      PROFILE      PROFILE
//	rust-flags   RUST_FLAGS   RUSTFLAGS
//	name         NAME         CARGO_PKG_NAME
//	authors      AUTHORS      CARGO_PKG_AUTHORS
//	description  DESCRIPTION  CARGO_PKG_DESCRIPTION
//	homepage     HOMEPAGE     CARGO_PKG_HOMEPAGE
//	opt-level    OPT_LEVEL    OPT_LEVEL
//	cfg          CFG          CARGO_CFG_*
//	features     FEATURES     CARGO_FEATURE_*
//
// # Required and Optional
//
// A [Set] holds each selected kind as either required or optional. An
// optional detail is presence-wrapped and renders even when its value is
// absent:
//
//	pub const PROFILE: Option<&'static str> = None;
//
// A required detail renders the bare value, and generation fails with
// [MissingDetail] when there is none. Details resolved by the consuming
// compiler (env!) are still checked for presence when generated.
//
// # Generating
//
//	err := detail.Default().
//		Require(detail.Profile).
//		Include(detail.Features).
//		Generate("build_details.rs")
//
// The file is created in the directory named by OUT_DIR. Declarations are
// emitted optional first, then required, each in kind declaration order, so
// regenerating in an unchanged environment yields an identical file (except
// for the timestamp).
//
// # Syntax
//
// Output targets [Rust] by default. [Go] emits a Go source file instead, for
// use from go:generate.
package detail
