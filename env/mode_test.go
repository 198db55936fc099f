package env

import (
	"slices"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"development", Development},
		{"test", Test},
		{"production", Production},
		{"", Development},
		{"nonsense", Development},
		{"Production", Development},
		{" test", Development},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseMode(tt.in); got != tt.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name    string
		environ Environment
		key     string
		want    Mode
	}{
		{"unset", Environment{}, "", Development},
		{"default key", FromMap(map[string]string{"NODE_ENV": "test"}), "", Test},
		{"custom key", FromMap(map[string]string{"APP_ENV": "production"}), "APP_ENV", Production},
		{"custom key ignores default", FromMap(map[string]string{"NODE_ENV": "test"}), "APP_ENV", Development},
		{"garbage", FromMap(map[string]string{"NODE_ENV": "staging"}), "", Development},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveMode(tt.environ, tt.key); got != tt.want {
				t.Errorf("ResolveMode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestModes(t *testing.T) {
	got := slices.Collect(Modes())
	want := []Mode{Development, Test, Production}

	if !slices.Equal(got, want) {
		t.Errorf("Modes() = %v, want %v", got, want)
	}
}
