package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/builddetails/config"
	"github.com/ardnew/builddetails/detail"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	selectionKey   struct{}
	configPathKey  struct{}
	environmentKey struct{}
)

// WithSelection returns a new context.Context containing the decoded
// selection file.
func WithSelection(ctx context.Context, f config.File) context.Context {
	return context.WithValue(ctx, selectionKey{}, f)
}

// selectionFrom returns the selection stored by WithSelection, or
// [config.Default].
func selectionFrom(ctx context.Context) config.File {
	f, ok := ctx.Value(selectionKey{}).(config.File)
	if !ok {
		return config.Default()
	}

	return f
}

// WithConfigPath returns a new context.Context containing the path of the
// selection file.
func WithConfigPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, configPathKey{}, path)
}

// configPathFrom returns the path stored by WithConfigPath, falling back to
// the kong variable and then to [config.DefaultPath].
func configPathFrom(ctx context.Context) string {
	if path, ok := ctx.Value(configPathKey{}).(string); ok && path != "" {
		return path
	}

	if ktx := kongContextFrom(ctx); ktx != nil {
		if path, ok := ktx.Model.Vars()[ConfigIdentifier]; ok && path != "" {
			return path
		}
	}

	return config.DefaultPath
}

// WithEnvironment returns a new context.Context containing the build
// environment details are read from.
func WithEnvironment(ctx context.Context, env detail.Environment) context.Context {
	return context.WithValue(ctx, environmentKey{}, env)
}

// EnvironmentFrom returns the environment stored by WithEnvironment, or the
// process environment.
func EnvironmentFrom(ctx context.Context) detail.Environment {
	env, ok := ctx.Value(environmentKey{}).(detail.Environment)
	if !ok || env == nil {
		return detail.OS()
	}

	return env
}

// stdout returns the standard output of the running kong application.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// stderr returns the standard error of the running kong application.
func stderr(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stderr != nil {
		return ktx.Stderr
	}

	return os.Stderr
}
