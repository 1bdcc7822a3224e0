package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	cerrors "github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	ferrors "github.com/omicsgo/featselect/pkg/errors"
)

func TestHandlerRenamesAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelInfo))

	logger.Info("aggregation finished", MethodsKey, 4, OperationKey, "aggregate_scores")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}

	if record["severity"] != "INFO" {
		t.Errorf("severity = %v, want INFO", record["severity"])
	}
	if record["message"] != "aggregation finished" {
		t.Errorf("message = %v, want aggregation finished", record["message"])
	}
	if _, ok := record["level"]; ok {
		t.Error("level key should be renamed to severity")
	}
	if record[MethodsKey] != 4.0 {
		t.Errorf("%s = %v, want 4", MethodsKey, record[MethodsKey])
	}
	if record[OperationKey] != "aggregate_scores" {
		t.Errorf("%s = %v, want aggregate_scores", OperationKey, record[OperationKey])
	}
}

func TestHandlerExtractsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelInfo))

	err := cerrors.WithStack(cerrors.New("fold aggregation failed"))
	logger.Error("aggregation failed", ErrAttr(err))

	output := buf.String()
	if !strings.Contains(output, StacktraceAttrKey) {
		t.Errorf("expected a %s attribute in output: %s", StacktraceAttrKey, output)
	}
	if !strings.Contains(output, "handler_test.go") {
		t.Error("stacktrace should point at the error's origin")
	}
}

func TestHandlerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelWarn))

	logger.Info("this should not appear")
	logger.Warn("this should appear")

	output := buf.String()
	if strings.Contains(output, "this should not appear") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(output, "this should appear") {
		t.Error("warn record should be emitted at warn level")
	}
}

func TestToLogLevel(t *testing.T) {
	levels := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for name, want := range levels {
		if got := ToLogLevel(name); got != want {
			t.Errorf("ToLogLevel(%q) = %v, want %v", name, got, want)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("ToLogLevel should panic on an unknown level")
		}
	}()
	ToLogLevel("verbose")
}

func TestSetupWarningsRoutesThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	SetupWarnings(zerolog.New(&buf))
	defer ferrors.SetZerologWarnFunc(nil)

	ferrors.Warn(ferrors.NewUndefinedMetricWarning(
		"normalized_importance", "zero-sum importance vector", 0.0,
	))

	output := buf.String()
	if !strings.Contains(output, `"type":"UndefinedMetricWarning"`) {
		t.Errorf("structured warning fields missing: %s", output)
	}
	if !strings.Contains(output, `"metric":"normalized_importance"`) {
		t.Errorf("metric field missing: %s", output)
	}
	if !strings.Contains(output, `"level":"warn"`) {
		t.Errorf("warning should log at warn level: %s", output)
	}
}
