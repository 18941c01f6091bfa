package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ardnew/builddetails/log"
)

func restoreLogger(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { log.Config(log.WithDefaults(os.Stderr)) })
}

func TestLogConfig_Scan(t *testing.T) {
	restoreLogger(t)

	f := logConfig{Pretty: true}
	f.scan([]string{
		"--log-level", "debug",
		"--log-format=json",
		"--no-log-pretty",
		"--log-caller=true",
		"--log-time-layout=none",
		"generate",
	})

	assert.Equal(t, logLevel("debug"), f.Level)
	assert.Equal(t, logFormat("json"), f.Format)
	assert.False(t, f.Pretty)
	assert.True(t, f.Caller)
	assert.Equal(t, "none", f.TimeLayout)

	assert.Equal(t, log.LevelDebug, log.Default().Level())
	assert.Equal(t, log.FormatJSON, log.Default().Format())
}

func TestLogConfig_ScanStops(t *testing.T) {
	restoreLogger(t)

	f := logConfig{Level: "info"}
	f.scan([]string{"kinds", "--", "--log-level", "error"})

	assert.Equal(t, logLevel("info"), f.Level)
}

func TestLogConfig_ScanInvalidBool(t *testing.T) {
	restoreLogger(t)

	f := logConfig{Caller: true}
	f.scan([]string{"--log-caller=maybe"})

	assert.True(t, f.Caller)
}

func TestLogConfig_Vars(t *testing.T) {
	vars := (&logConfig{}).vars()

	assert.Equal(t, "trace,debug,info,warn,error", vars["logLevelEnum"])
	assert.Equal(t, "json,text", vars["logFormatEnum"])
}
