package version

import "testing"

func TestCanonical(t *testing.T) {
	tests := []struct{ in, want string }{
		{"1.2.3", "v1.2.3"},
		{"v1.2.3", "v1.2.3"},
		{"v1.2", "v1.2.0"},
		{"2.0.0-rc.1", "v2.0.0-rc.1"},
		{"dev", "dev"},
	}
	for _, tt := range tests {
		if got := Canonical(tt.in); got != tt.want {
			t.Errorf("Canonical(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct{ v, want string }{
		{"v1.0.0", "lc-dir v1.0.0 (commit: abc, built: today)"},
		{"1.1.0-beta.2", "lc-dir v1.1.0-beta.2 (commit: abc, built: today) [pre-release]"},
		{"dev", "lc-dir dev (commit: abc, built: today) [development build]"},
	}
	for _, tt := range tests {
		if got := Describe("lc-dir", tt.v, "abc", "today"); got != tt.want {
			t.Errorf("Describe(%q) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
