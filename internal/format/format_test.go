package format

import "testing"

func TestMB(t *testing.T) {
	tests := []struct {
		bytes uint64
		want  string
	}{
		{0, "0"},
		{1048576, "1"},
		{1572864, "2"}, // rounds, not truncates
		{8 << 30, "8192"},
	}

	for _, tt := range tests {
		if got := MB(tt.bytes); got != tt.want {
			t.Errorf("MB(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestMBf(t *testing.T) {
	if got := MBf(1048576 * 2.4); got != "2" {
		t.Errorf("MBf = %q, want 2", got)
	}
}

func TestClip(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 3, "hel"},
		{"hello", 0, ""},
		{"hello", -1, ""},
		{"héllo", 2, "hé"}, // rune-aware
	}

	for _, tt := range tests {
		if got := Clip(tt.s, tt.width); got != tt.want {
			t.Errorf("Clip(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}
