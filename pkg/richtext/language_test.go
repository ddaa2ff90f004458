package richtext

import "testing"

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"js", "javascript"},
		{"ts", "typescript"},
		{"py", "python"},
		{"sh", "bash"},
		{"shell", "bash"},
		{"yml", "yaml"},
		{"golang", "go"},
		{"go", "go"},
		{"Go", "go"},
		{"  rust  ", "rust"},
		{"", "plaintext"},
		{"   ", "plaintext"},
	}

	for _, tt := range tests {
		got := NormalizeLanguage(tt.in)
		if got != tt.want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
