package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf)

	if logger.Level() != LevelInfo {
		t.Errorf("expected default level Info, got %v", logger.Level())
	}

	if logger.config.caller {
		t.Error("expected caller disabled by default")
	}

	if logger.Format() != FormatJSON {
		t.Errorf("expected default format JSON, got %v", logger.Format())
	}
}

func TestLogger_Make_WithLevel_FiltersMessages(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelDebug))

	logger.Debug("debug message")

	if !strings.Contains(buf.String(), "debug message") {
		t.Error("debug message not logged after setting level to Debug")
	}

	buf.Reset()

	logger = Make(&buf, WithLevel(LevelError))
	logger.Info("info message")

	if buf.Len() > 0 {
		t.Error("info message logged when level is Error")
	}

	logger.Error("error message")

	if !strings.Contains(buf.String(), "error message") {
		t.Error("error message not logged at Error level")
	}
}

func TestLogger_Trace_LevelName(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelTrace))

	logger.Trace("deep")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if entry["level"] != "TRACE" {
		t.Errorf("expected level TRACE, got %v", entry["level"])
	}
}

func TestLogger_JSON_Attributes(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf).With(slog.String("component", "detail"))

	logger.Info("rendered", slog.Int("count", 3))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if entry["msg"] != "rendered" {
		t.Errorf("expected msg rendered, got %v", entry["msg"])
	}

	if entry["component"] != "detail" {
		t.Errorf("expected component attribute, got %v", entry["component"])
	}

	if entry["count"] != float64(3) {
		t.Errorf("expected count 3, got %v", entry["count"])
	}
}

func TestLogger_Text_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithFormat(FormatText), WithTimeLayout("none"))

	logger.Warn("careful", slog.String("user", "alice"))

	got := buf.String()
	if strings.Contains(got, "time=") {
		t.Errorf("expected no time attribute, got %q", got)
	}

	if !strings.Contains(got, "level=WARN") || !strings.Contains(got, "user=alice") {
		t.Errorf("unexpected text output %q", got)
	}
}

func TestLogger_WithCaller_AddsSource(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithCaller(true))

	logger.Info("where")

	if !strings.Contains(buf.String(), "log_test.go") {
		t.Errorf("expected caller in output, got %q", buf.String())
	}
}

func TestLogger_Pretty_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf,
		WithPretty(true),
		WithFormat(FormatText),
		WithTimeLayout("none"),
	)

	logger.With(slog.String("kind", "version")).
		Info("rendered", slog.Bool("required", true))

	got := buf.String()
	for _, want := range []string{"level=INFO", "msg=rendered", "kind=version", "required=true"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}

	if strings.Count(got, "\n") != 1 {
		t.Errorf("expected a single line, got %q", got)
	}
}

func TestLogger_Pretty_Multiline(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithPretty(true), WithTimeLayout("none"))

	logger.Error("failed", slog.String("path", "/tmp/x"))

	got := buf.String()
	if !strings.HasPrefix(got, "{\n") || !strings.HasSuffix(got, "\n}\n") {
		t.Errorf("expected braced output, got %q", got)
	}

	if !strings.Contains(got, "path: /tmp/x") {
		t.Errorf("expected path field, got %q", got)
	}
}

func TestLogger_Pretty_Group(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf,
		WithPretty(true),
		WithFormat(FormatText),
		WithTimeLayout("none"),
	)

	l := slog.New(logger.Handler().WithGroup("set"))
	l.Info("grouped", slog.Int("n", 2))

	if !strings.Contains(buf.String(), "set.n=2") {
		t.Errorf("expected qualified key, got %q", buf.String())
	}
}

func TestLogger_ZeroValue_Silent(t *testing.T) {
	var logger Logger

	logger.Info("nothing")
	logger.Error("still nothing")

	if logger.Level() != DefaultLevel {
		t.Errorf("expected default level, got %v", logger.Level())
	}

	if got := logger.With(slog.String("k", "v")); got.Logger != nil {
		t.Error("expected zero logger from With on zero logger")
	}
}

func TestLogger_Wrap_KeepsConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithFormat(FormatText)).Wrap(WithLevel(LevelDebug))

	if logger.Format() != FormatText {
		t.Errorf("expected text format, got %v", logger.Format())
	}

	logger.Debug("visible")

	if !strings.Contains(buf.String(), "visible") {
		t.Error("expected debug message after Wrap")
	}
}

func TestLogger_Concurrent(t *testing.T) {
	var (
		buf bytes.Buffer
		mu  sync.Mutex
	)

	logger := Make(writerFunc(func(p []byte) (int, error) {
		mu.Lock()
		defer mu.Unlock()

		return buf.Write(p)
	}), WithPretty(true), WithFormat(FormatText))

	var wg sync.WaitGroup

	for i := range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			logger.Info("concurrent", slog.Int("i", i))
		}()
	}

	wg.Wait()

	if got := strings.Count(buf.String(), "\n"); got != 8 {
		t.Errorf("expected 8 lines, got %d", got)
	}
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }
