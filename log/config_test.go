package log

import (
	"slices"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"WARN", LevelWarn},
		{"error", LevelError},
		{" debug ", LevelDebug},
		{"", DefaultLevel},
		{"verbose", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"text", FormatText},
		{" Text ", FormatText},
		{"xml", DefaultFormat},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseFormat(tt.in); got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevels_EnumeratesAllNames(t *testing.T) {
	got := slices.Collect(Levels())
	want := []string{"trace", "debug", "info", "warn", "error"}

	if !slices.Equal(got, want) {
		t.Errorf("Levels() = %v, want %v", got, want)
	}
}

func TestFormats_EnumeratesAllNames(t *testing.T) {
	got := slices.Collect(Formats())
	want := []string{"json", "text"}

	if !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestConfig_Options_SetFields(t *testing.T) {
	c := makeConfig(nil,
		WithLevel(LevelWarn),
		WithFormat(FormatText),
		WithCaller(true),
		WithPretty(false),
	)

	if c.level != LevelWarn {
		t.Errorf("level = %v, want %v", c.level, LevelWarn)
	}

	if c.format != FormatText {
		t.Errorf("format = %v, want %v", c.format, FormatText)
	}

	if !c.caller {
		t.Error("expected caller enabled")
	}

	if c.pretty {
		t.Error("expected pretty disabled")
	}

	if c.output == nil {
		t.Error("expected nil output to be replaced with a discard writer")
	}
}

func TestConfig_With_DoesNotModifyReceiver(t *testing.T) {
	base := makeConfig(nil, WithLevel(LevelInfo))
	derived := base.with(WithLevel(LevelError))

	if base.level != LevelInfo {
		t.Errorf("base level changed to %v", base.level)
	}

	if derived.level != LevelError {
		t.Errorf("derived level = %v, want %v", derived.level, LevelError)
	}
}

func TestConfig_formatTime_FormatsTimestamp(t *testing.T) {
	now := time.Date(2023, 10, 15, 14, 30, 45, 123456789, time.UTC)

	tests := []struct {
		name   string
		layout string
		want   string
	}{
		{"rfc3339 named layout", "RFC3339", "2023-10-15T14:30:45Z"},
		{"rfc3339 nano named layout", "RFC3339Nano", "2023-10-15T14:30:45.123456789Z"},
		{"punctuation ignored", "rfc-3339", "2023-10-15T14:30:45Z"},
		{"kitchen", "kitchen", "2:30PM"},
		{"custom layout", "2006-01-02 15:04", "2023-10-15 14:30"},
		{"none disables", "none", ""},
		{"empty disables", "", ""},
		{"whitespace disables", "  \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := makeConfig(nil, WithTimeLayout(tt.layout))
			if got := c.formatTime(now); got != tt.want {
				t.Errorf("formatTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLevel_String_UnknownValue(t *testing.T) {
	if got := Level(3).String(); !strings.HasPrefix(got, "Level(") {
		t.Errorf("Level(3).String() = %q, want Level(...)", got)
	}
}

func BenchmarkConfig_formatTime(b *testing.B) {
	c := makeConfig(nil, WithTimeLayout("RFC3339Nano"))
	now := time.Now()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = c.formatTime(now)
	}
}
