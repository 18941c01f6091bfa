package detail

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(secs int64) func() time.Time {
	return func() time.Time { return time.Unix(secs, 0) }
}

func TestCatalog_Resolve(t *testing.T) {
	env := Env{
		"CARGO_PKG_VERSION":  "0.1.0",
		"CARGO_PKG_NAME":     "demo",
		"PROFILE":            "release",
		"OPT_LEVEL":          "3",
		"CARGO_CFG_UNIX":     "",
		"CARGO_FEATURE_STD":  "1",
		"CARGO_FEATURE_JSON": "1",
	}
	cat := NewCatalog(env, fixedClock(1700000000))

	tests := []struct {
		kind Kind
		line string
	}{
		{Timestamp, `pub const TIMESTAMP: u64 = 1700000000;`},
		{Version, `pub const VERSION: &'static str = env!("CARGO_PKG_VERSION");`},
		{Profile, `pub const PROFILE: &'static str = "release";`},
		{Name, `pub const NAME: &'static str = env!("CARGO_PKG_NAME");`},
		{OptLevel, `pub const OPT_LEVEL: &'static str = "3";`},
		{Cfg, "pub const CFG: ::phf::Map<&'static str, &'static str> = ::phf::phf_map! {\n    \"UNIX\" => \"\",\n};"},
		{Features, "pub const FEATURES: &'static [&'static str] = &[\n    \"JSON\",\n    \"STD\",\n];"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			d, err := cat.Resolve(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.kind.Constant(), d.Name)
			assert.Equal(t, tt.kind.Type(), d.Type)

			line, err := d.RenderRequired(Rust())
			require.NoError(t, err)
			assert.Equal(t, tt.line, line)
		})
	}
}

func TestCatalog_Resolve_Absent(t *testing.T) {
	cat := NewCatalog(Env{}, fixedClock(0))

	for _, k := range []Kind{Version, Profile, RustFlags, Name, Authors, Description, Homepage, OptLevel} {
		t.Run(k.String(), func(t *testing.T) {
			d, err := cat.Resolve(k)
			require.NoError(t, err)

			_, err = d.RenderRequired(Rust())
			assert.ErrorIs(t, err, ErrMissingDetail)
			assert.Equal(t, k.Constant(), err.(*Error).Subject())
		})
	}

	for _, k := range []Kind{Cfg, Features} {
		t.Run(k.String(), func(t *testing.T) {
			d, err := cat.Resolve(k)
			require.NoError(t, err)

			_, err = d.RenderRequired(Rust())
			assert.NoError(t, err, "collections are never missing")
		})
	}
}

func TestCatalog_Timestamp(t *testing.T) {
	d, err := NewCatalog(Env{}, fixedClock(0)).Resolve(Timestamp)
	require.NoError(t, err)

	line, err := d.RenderRequired(Rust())
	require.NoError(t, err)
	assert.Equal(t, `pub const TIMESTAMP: u64 = 0;`, line)

	d, err = NewCatalog(Env{}, fixedClock(-1)).Resolve(Timestamp)
	require.NoError(t, err)

	_, err = d.RenderRequired(Rust())
	assert.ErrorIs(t, err, ErrMissingDetail)

	line, err = d.RenderOptional(Rust())
	require.NoError(t, err)
	assert.Equal(t, `pub const TIMESTAMP: Option<u64> = None;`, line)
}

func TestCatalog_ReadsFresh(t *testing.T) {
	env := Env{}
	cat := NewCatalog(env, nil)

	d, err := cat.Resolve(Profile)
	require.NoError(t, err)

	_, err = d.RenderRequired(Rust())
	require.ErrorIs(t, err, ErrMissingDetail)

	env["PROFILE"] = "debug"

	d, err = cat.Resolve(Profile)
	require.NoError(t, err)

	line, err := d.RenderRequired(Rust())
	require.NoError(t, err)
	assert.Contains(t, line, `"debug"`)
}

func TestCatalog_Resolve_Unknown(t *testing.T) {
	_, err := NewCatalog(nil, nil).Resolve(Kind(42))
	assert.ErrorIs(t, err, ErrUnknownKind)
}
