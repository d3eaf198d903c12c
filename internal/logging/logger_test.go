package logging

import (
	"bytes"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
)

// TestHelpersWriteToBuffer swaps the package logger for a buffer-backed one
// and checks the leveled helpers all land in it.
func TestHelpersWriteToBuffer(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	L.SetLevel(clog.DebugLevel)
	defer func() { L = prev }()

	Debugf("debug %s", "msg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("error %v", "boom")

	out := buf.String()
	for _, want := range []string{"debug msg", "info 1", "warn", "error boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q; got %q", want, out)
		}
	}
}
