package ber

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLogger_CapturesDecodeFailures(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	if _, err := Decode([]byte{0x02, 0x05, 0x01}, false); err == nil {
		t.Fatalf("Decode(truncated) succeeded, want error")
	}

	if !strings.Contains(buf.String(), "decode failed") {
		t.Errorf("log output %q does not mention decode failure", buf.String())
	}
}

func TestSetLogger_NilRestoresQuietDefault(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	SetLogger(nil)

	if _, err := Decode([]byte{0x02, 0x05, 0x01}, false); err == nil {
		t.Fatalf("Decode(truncated) succeeded, want error")
	}

	if buf.Len() != 0 {
		t.Errorf("expected no output after SetLogger(nil), got %q", buf.String())
	}
}
