package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/urandom/feedkeeper/config"
)

func TestWithStd(t *testing.T) {
	tests := []struct {
		level string
		info  bool
		debug bool
	}{
		{"error", false, false},
		{"", true, false},
		{"info", true, false},
		{"debug", true, true},
	}
	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := config.Log{Level: tt.level}
			cfg.Converted.Writer = &buf
			cfg.Converted.Prefix = "[test] "

			l := WithStd(cfg)
			l.Printf("failure %d", 1)
			l.Infof("info %d", 2)
			l.Debugln("debug", 3)

			out := buf.String()
			if !strings.Contains(out, "[test] ") || !strings.Contains(out, "failure 1") {
				t.Errorf("WithStd() output = %q, want error line", out)
			}
			if strings.Contains(out, "info 2") != tt.info {
				t.Errorf("WithStd() output = %q, want info %v", out, tt.info)
			}
			if strings.Contains(out, "debug 3") != tt.debug {
				t.Errorf("WithStd() output = %q, want debug %v", out, tt.debug)
			}
		})
	}
}
