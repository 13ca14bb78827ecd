package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newBufferLogger(t *testing.T, level string) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, err := New(&Config{Level: level, Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l, &buf
}

func decode(t *testing.T, line string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(line), &m); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", line, err)
	}
	return m
}

func TestNewLevels(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
	}

	for _, tt := range tests {
		l, err := New(&Config{Level: tt.in, Output: &bytes.Buffer{}})
		if err != nil {
			t.Fatalf("New(%q): %v", tt.in, err)
		}
		if l.Level() != tt.want {
			t.Errorf("level %q: got %v, want %v", tt.in, l.Level(), tt.want)
		}
	}

	if _, err := New(&Config{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestEventFields(t *testing.T) {
	l, buf := newBufferLogger(t, "debug")

	secret, _ := new(big.Int).SetString("75263518707598184987916378021939673586055614731957507592904438851787542395619", 10)
	l.DebugEvent().
		Str("curve", "secp256k1").
		Bool("ok", true).
		BigInt("r", big.NewInt(12345)).
		Hex("digest", []byte{0xde, 0xad}).
		Secret("key", secret).
		Err(errors.New("boom")).
		Msg("signed")

	m := decode(t, strings.TrimSpace(buf.String()))
	if m["message"] != "signed" || m["level"] != "debug" {
		t.Fatalf("unexpected envelope %v", m)
	}
	if m["r"] != "12345" {
		t.Errorf("r = %v", m["r"])
	}
	if m["digest"] != "dead" {
		t.Errorf("digest = %v", m["digest"])
	}
	if m["key"] != "<redacted>" {
		t.Errorf("key = %v", m["key"])
	}
	if m["error"] != "boom" {
		t.Errorf("error = %v", m["error"])
	}
	if strings.Contains(buf.String(), secret.String()[:12]) {
		t.Fatal("secret digits leaked into log output")
	}
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newBufferLogger(t, "warn")

	l.Debug("hidden")
	l.InfoEvent().Str("x", "y").Msg("hidden")
	l.DebugEvent().BigInt("x", big.NewInt(1)).Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	l.WarnEvent().Msg("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatal("warn message missing")
	}
}

func TestContext(t *testing.T) {
	l, buf := newBufferLogger(t, "info")

	child := l.With().Str("component", "signer").Logger()
	child.InfoEvent().Msg("ready")

	m := decode(t, strings.TrimSpace(buf.String()))
	if m["component"] != "signer" || m["message"] != "ready" {
		t.Fatalf("context fields missing: %v", m)
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Debug("ignored")
	l.WarnEvent().Secret("k", nil).Msg("ignored")
}

func TestRedactSecret(t *testing.T) {
	tests := map[string]string{
		"":           "<empty>",
		"short":      "<redacted>",
		"0123456789": "<redacted>",
	}
	for in, want := range tests {
		if got := RedactSecret(in); got != want {
			t.Errorf("RedactSecret(%q) = %q, want %q", in, got, want)
		}
	}
}
