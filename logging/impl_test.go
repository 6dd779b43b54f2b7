package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.viam.com/test"
)

func newBufferedLogger(level Level) (Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := &impl{"impl", NewAtomicLevelAt(level), true, []Appender{NewWriterAppender(zapcore.AddSync(&buf))}}
	return logger, &buf
}

func TestConsoleFormatting(t *testing.T) {
	logger, buf := newBufferedLogger(DEBUG)

	logger.Info("info ", "message")
	line, err := buf.ReadString('\n')
	test.That(t, err, test.ShouldBeNil)
	parts := strings.Split(strings.TrimSuffix(line, "\n"), "\t")
	test.That(t, parts, test.ShouldHaveLength, 5)
	test.That(t, len(parts[0]), test.ShouldEqual, len("2024-01-23T09:26:57.843Z"))
	test.That(t, parts[1], test.ShouldEqual, "INFO")
	test.That(t, parts[2], test.ShouldEqual, "impl")
	test.That(t, parts[3], test.ShouldStartWith, "logging/impl_test.go:")
	test.That(t, parts[4], test.ShouldEqual, "info message")

	logger.Debugw("structured", "nodes", 73, "trimmed", true)
	line, err = buf.ReadString('\n')
	test.That(t, err, test.ShouldBeNil)
	test.That(t, line, test.ShouldContainSubstring, "structured")
	test.That(t, line, test.ShouldContainSubstring, `{"nodes": 73, "trimmed": true}`)
}

func TestLevels(t *testing.T) {
	logger, buf := newBufferedLogger(WARN)

	logger.Debug("dropped")
	logger.Infof("dropped %d", 1)
	test.That(t, buf.Len(), test.ShouldEqual, 0)

	logger.Warnf("kept %d", 2)
	logger.Errorw("kept", "n", 3)
	test.That(t, strings.Count(buf.String(), "\n"), test.ShouldEqual, 2)

	logger.SetLevel(DEBUG)
	test.That(t, logger.GetLevel(), test.ShouldEqual, DEBUG)
	logger.Debug("now kept")
	test.That(t, buf.String(), test.ShouldContainSubstring, "now kept")
}

func TestLevelFromString(t *testing.T) {
	for _, tc := range []struct {
		in    string
		level Level
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{"Warn", WARN},
		{"warning", WARN},
		{"error", ERROR},
	} {
		level, err := LevelFromString(tc.in)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, level, test.ShouldEqual, tc.level)
	}

	_, err := LevelFromString("loud")
	test.That(t, err, test.ShouldNotBeNil)

	var level Level
	test.That(t, level.UnmarshalJSON([]byte(`"error"`)), test.ShouldBeNil)
	test.That(t, level, test.ShouldEqual, ERROR)
	out, err := WARN.MarshalJSON()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(out), test.ShouldEqual, `"warn"`)
}

func TestObservedSublogger(t *testing.T) {
	logger, observed := NewObservedTestLogger(t)
	sub := logger.Sublogger("quadtree").Sublogger("trim")

	sub.Debugw("trimmed tree", "before", 89, "after", 73)
	sub.Infow("odd", "key")

	entries := observed.All()
	test.That(t, entries, test.ShouldHaveLength, 2)
	test.That(t, entries[0].LoggerName, test.ShouldEqual, "quadtree.trim")
	test.That(t, entries[0].Message, test.ShouldEqual, "trimmed tree")
	test.That(t, entries[0].ContextMap(), test.ShouldResemble, map[string]interface{}{"before": int64(89), "after": int64(73)})
	test.That(t, entries[1].ContextMap()["key"], test.ShouldNotBeNil)
	test.That(t, observed.FilterMessage("trimmed tree").Len(), test.ShouldEqual, 1)

	test.That(t, sub.Sync(), test.ShouldBeNil)
}

func TestAsZap(t *testing.T) {
	logger, observed := NewObservedTestLogger(t)
	logger.SetLevel(INFO)

	zl := logger.AsZap()
	zl.Debug("below level")
	zl.Infow("through zap", "k", "v")

	test.That(t, observed.FilterMessage("below level").Len(), test.ShouldEqual, 0)
	test.That(t, observed.FilterMessage("through zap").Len(), test.ShouldEqual, 1)
}

func TestGlobal(t *testing.T) {
	prev := Global()
	defer ReplaceGlobal(prev)

	blank := NewBlankLogger("blank")
	ReplaceGlobal(blank)
	test.That(t, Global(), test.ShouldEqual, blank)
	Global().Info("goes nowhere")
}
