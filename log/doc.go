// Package log provides a concurrency-safe structured logging interface based
// on [log/slog].
//
// A [Logger] is configured once, at creation, with functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("RFC3339Nano"))
//
//	logger.Info("generated build details", slog.String("path", path))
//
// The zero Logger discards everything, so a Logger field can be left unset.
//
// Package-level functions log through a default logger writing to
// [os.Stderr]; [Config] reconfigures it.
//
// # Formats
//
// [FormatJSON] (default) and [FormatText] select the slog handler. With
// [WithPretty], both formats are rendered for humans instead, styled with
// lipgloss when the output is a terminal.
package log
