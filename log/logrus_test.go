package log

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleFormatter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger("debug", &buf)

	l.WithField("index", 2).WithField("address", "/source").Warnf("dropped %s", "message")

	line := buf.String()
	assert.Regexp(t, regexp.MustCompile(`^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}\.\d{6} \[WAR\] dropped message address=/source index=2\n$`), line)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger("info", &buf)
	l.Debugf("hidden")
	assert.Empty(t, buf.String())

	l.Infof("shown")
	assert.Contains(t, buf.String(), "[INF] shown")
}

func TestInvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger("loud", &buf)
	l.Debugf("hidden")
	l.Errorf("boom")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[ERR] boom")
}

func TestNewLogrusLoggerFile(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLogrusLogger("info", dir)
	assert.NoError(t, err)
	l.Infof("to file")
	assert.FileExists(t, dir+"/tracker.log")
}
