package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/ardnew/builddetails/config"
	"github.com/ardnew/builddetails/pkg"
)

// basePrefix returns the base name of the executable, used to name the user
// configuration and cache directories.
//
// It is the base name of the executable file unless it matches one of the
// following substitution rules:
//   - "__debug_bin" (default output of the dlv debugger): replaced with cmd
//   - "^\.+" (dot-prefixed names): remove the dot prefix
var basePrefix = sync.OnceValue(
	func() string {
		id := os.Args[0]
		exe, err := os.Executable()
		if err == nil {
			id = exe
		}

		ext := filepath.Ext(filepath.Base(id))
		id = strings.TrimSuffix(filepath.Base(id), ext)

		for rex, rep := range map[*regexp.Regexp]string{
			regexp.MustCompile(`^__debug_bin\d+$`): pkg.Name, // dlv default output
			regexp.MustCompile(`^\.+`):             "",       // remove leading dot(s)
		} {
			id = rex.ReplaceAllString(id, rep)
		}

		if id == "" {
			id = pkg.Name
		}

		return id
	},
)

// userDir returns dir joined with the base prefix, or a fallback under the
// home (or working) directory when dir could not be determined.
func userDir(dir string, err error, fallback string) string {
	if err != nil {
		dir, err = os.UserHomeDir()
		if err == nil {
			dir = filepath.Join(dir, fallback)
		} else if dir, err = os.Getwd(); err != nil {
			dir = "."
		}
	}

	return filepath.Join(dir, basePrefix())
}

// configDir returns the user configuration directory.
var configDir = sync.OnceValue(
	func() string {
		dir, err := os.UserConfigDir()

		return userDir(dir, err, ".config")
	},
)

// cacheDir returns the cache directory path used for transient files.
var cacheDir = sync.OnceValue(
	func() string {
		dir, err := os.UserCacheDir()

		return userDir(dir, err, ".cache")
	},
)

// userConfigPath is the selection file used when the working directory has
// none.
func userConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// defaultConfigPath returns the selection file in the working directory if it
// exists, then the user selection file if it exists, and otherwise the path
// in the working directory.
func defaultConfigPath() string {
	for _, path := range []string{config.DefaultPath, userConfigPath()} {
		if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
			return path
		}
	}

	return config.DefaultPath
}

// scanConfigPath returns the selection file named with --config or -c in
// args, or [defaultConfigPath]. Scanning stops at "--".
func scanConfigPath(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--":
			return defaultConfigPath()

		case arg == "--config" || arg == "-c":
			if i+1 < len(args) {
				return args[i+1]
			}

		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")

		case strings.HasPrefix(arg, "-c") && !strings.HasPrefix(arg, "--"):
			return strings.TrimPrefix(strings.TrimPrefix(arg, "-c"), "=")
		}
	}

	return defaultConfigPath()
}
