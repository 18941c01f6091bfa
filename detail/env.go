package detail

import (
	"maps"
	"os"
	"slices"
	"strings"
)

// Environment is the source of build environment variables.
//
// The hosting build tool defines the variables; [OS] reads them from the
// process, and [Env] supplies a fixed mapping.
type Environment interface {
	// LookupEnv returns the value of the variable named key and whether it
	// is set.
	LookupEnv(key string) (string, bool)
	// Environ returns every variable as a "key=value" string.
	Environ() []string
}

type osEnv struct{}

func (osEnv) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

func (osEnv) Environ() []string { return os.Environ() }

// OS returns the [Environment] of the current process.
//
// The process environment must not be modified while a [Set] renders.
func OS() Environment { return osEnv{} }

// Env is an [Environment] backed by a fixed map.
type Env map[string]string

// LookupEnv implements [Environment].
func (e Env) LookupEnv(key string) (string, bool) {
	v, ok := e[key]

	return v, ok
}

// Environ implements [Environment]. Entries are sorted by key.
func (e Env) Environ() []string {
	list := make([]string, 0, len(e))

	for _, key := range slices.Sorted(maps.Keys(e)) {
		list = append(list, key+"="+e[key])
	}

	return list
}

type overlay struct {
	base Environment
	over Env
}

// Overlay returns an [Environment] where the variables in over shadow those
// of base.
func Overlay(base Environment, over Env) Environment {
	if base == nil {
		base = Env{}
	}

	if len(over) == 0 {
		return base
	}

	return overlay{base: base, over: over}
}

func (o overlay) LookupEnv(key string) (string, bool) {
	if v, ok := o.over[key]; ok {
		return v, true
	}

	return o.base.LookupEnv(key)
}

func (o overlay) Environ() []string {
	list := make([]string, 0, len(o.over))

	for _, entry := range o.base.Environ() {
		key, _, _ := strings.Cut(entry, "=")
		if _, ok := o.over[key]; !ok {
			list = append(list, entry)
		}
	}

	return append(list, o.over.Environ()...)
}

// Lookup returns the value of the variable name in env, if set.
func Lookup(env Environment, name string) (string, bool) {
	if env == nil {
		return "", false
	}

	return env.LookupEnv(name)
}

// LookupPrefixed returns every variable of env whose name starts with prefix,
// keyed by the remainder of the name. When two entries produce the same key,
// the one scanned last wins.
func LookupPrefixed(env Environment, prefix string) map[string]string {
	found := make(map[string]string)

	if env == nil {
		return found
	}

	for _, entry := range env.Environ() {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}

		if suffix, ok := strings.CutPrefix(key, prefix); ok {
			found[suffix] = value
		}
	}

	return found
}
