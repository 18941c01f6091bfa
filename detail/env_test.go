package detail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnv(t *testing.T) {
	env := Env{"B": "2", "A": "1", "EMPTY": ""}

	v, ok := env.LookupEnv("A")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	v, ok = env.LookupEnv("EMPTY")
	assert.True(t, ok, "set but empty is present")
	assert.Empty(t, v)

	_, ok = env.LookupEnv("C")
	assert.False(t, ok)

	assert.Equal(t, []string{"A=1", "B=2", "EMPTY="}, env.Environ())
}

func TestOverlay(t *testing.T) {
	env := Overlay(Env{"A": "base", "B": "kept"}, Env{"A": "over", "C": "new"})

	v, _ := env.LookupEnv("A")
	assert.Equal(t, "over", v)

	v, _ = env.LookupEnv("B")
	assert.Equal(t, "kept", v)

	assert.ElementsMatch(t, []string{"B=kept", "A=over", "C=new"}, env.Environ())

	base := Env{"X": "1"}
	assert.Equal(t, base, Overlay(base, nil))
}

func TestLookup_Nil(t *testing.T) {
	_, ok := Lookup(nil, "A")
	assert.False(t, ok)
	assert.Empty(t, LookupPrefixed(nil, "A"))
}

func TestLookupPrefixed(t *testing.T) {
	env := Env{
		"CARGO_CFG_UNIX":        "",
		"CARGO_CFG_TARGET_OS":   "linux",
		"CARGO_FEATURE_STD":     "1",
		"CARGO_PKG_VERSION":     "0.1.0",
		"NOT_CARGO_CFG_MATCHES": "x",
	}

	assert.Equal(t,
		map[string]string{"UNIX": "", "TARGET_OS": "linux"},
		LookupPrefixed(env, "CARGO_CFG_"))
	assert.Equal(t,
		map[string]string{"STD": "1"},
		LookupPrefixed(env, "CARGO_FEATURE_"))
	assert.Empty(t, LookupPrefixed(env, "RUSTFLAGS"))
}
