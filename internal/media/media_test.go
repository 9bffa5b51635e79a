package media

import "testing"

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{"news", News},
		{"NEWS", News},
		{" tv ", TV},
		{"radio", Radio},
		{"video", Video},
		{"", Generic},
		{"music", Generic},
	}
	for _, tt := range tests {
		if got := ParseType(tt.in); got != tt.want {
			t.Errorf("ParseType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
