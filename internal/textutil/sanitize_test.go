package textutil

import "testing"

func TestStripDelimiters(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"braces", "{13th USENIX Security Symposium}", "13th USENIX Security Symposium"},
		{"quotes", "\"Proceedings of CCS\"", "Proceedings of CCS"},
		{"trailing comma", "{IEEE S\\&P},", "IEEE S\\&P"},
		{"assignment fragment", "booktitle = {NDSS}", "NDSS"},
		{"whitespace", "  { padded }  ", "padded"},
		{"plain", "plain text", "plain text"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripDelimiters(tt.in); got != tt.want {
				t.Errorf("StripDelimiters(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLettersOnly(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"tor:", "tor"},
		{"O'Neill", "ONeill"},
		{"c. 1999", "c"},
		{"2004", ""},
		{"second-generation", "secondgeneration"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := LettersOnly(tt.in); got != tt.want {
			t.Errorf("LettersOnly(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCollapseSpaces(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a  b\tc", "a b c"},
		{"  leading and trailing  ", "leading and trailing"},
		{"single", "single"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CollapseSpaces(tt.in); got != tt.want {
			t.Errorf("CollapseSpaces(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
