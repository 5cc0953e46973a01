package escape

import "testing"

func TestTypst(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"", ""},
		{"user@example.com", `user\@example.com`},
		{"<label>", `\<label\>`},
		{"[content]", `\[content\]`},
		{"#set", `\#set`},
		{"$5", `\$5`},
		{"*bold* _em_", `\*bold\* \_em\_`},
		{`C:\path`, `C:\\path`},
		{"100% ünïcödé", "100% ünïcödé"},
	}

	for _, tt := range tests {
		if got := Typst(tt.in); got != tt.want {
			t.Errorf("Typst(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNone(t *testing.T) {
	if got := None("#[x]"); got != "#[x]" {
		t.Errorf("None() = %q", got)
	}
}
