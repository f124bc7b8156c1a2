package logger

import (
	"bytes"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestNewLevels(t *testing.T) {
	c := qt.New(t)
	var buf bytes.Buffer
	log, err := New("warn", &buf)
	c.Assert(err, qt.IsNil)
	log.Infow("hidden", "k", 1)
	log.Warnw("shown", "file", "x.go")
	c.Assert(buf.String(), qt.Not(qt.Contains), "hidden")
	c.Assert(buf.String(), qt.Contains, "WARN")
	c.Assert(buf.String(), qt.Contains, "aritygen")
	c.Assert(buf.String(), qt.Contains, "shown")
	c.Assert(buf.String(), qt.Contains, `"file": "x.go"`)
}

func TestNewDefaultLevel(t *testing.T) {
	c := qt.New(t)
	var buf bytes.Buffer
	log, err := New("", &buf)
	c.Assert(err, qt.IsNil)
	log.Debug("hidden")
	log.Info("shown")
	c.Assert(buf.String(), qt.Equals, "INFO\taritygen\tshown\n")
}

func TestNewInvalidLevel(t *testing.T) {
	c := qt.New(t)
	_, err := New("loud", &bytes.Buffer{})
	c.Assert(err, qt.ErrorMatches, `invalid log level "loud"`)
}
