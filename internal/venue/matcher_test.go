package venue

import "testing"

func TestMatchCanonicalizesKnownVenues(t *testing.T) {
	m := NewMatcher()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"usenix security", "13th USENIX Security Symposium", "USENIX Security Symposium"},
		{"braced input", "{Proceedings of the ACM Conference on Computer and Communications Security}", "ACM Conference on Computer and Communications Security"},
		{"oakland nickname", "Oakland 2019", "IEEE Symposium on Security and Privacy"},
		{"case insensitive", "proceedings of the network and distributed system security symposium", "Network and Distributed System Security Symposium"},
		{"already canonical", "USENIX Security Symposium", "USENIX Security Symposium"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fix := m.Match(tt.in)
			if got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if fix {
				t.Errorf("Match(%q) flagged a manual fix", tt.in)
			}
		})
	}
}

func TestMatchUnknownVenueFlagsManualFix(t *testing.T) {
	m := NewMatcher()
	got, fix := m.Match("{Journal of Obscure Results},")
	if !fix {
		t.Fatal("expected manual-fix flag for unknown venue")
	}
	if got != "Journal of Obscure Results" {
		t.Errorf("expected sanitized original back, got %q", got)
	}
}

func TestMatchLastRuleWins(t *testing.T) {
	// Both rules match the same input; the later one must determine the result.
	m := NewMatcher(
		Rule{Keywords: []string{"overlap workshop"}, Name: "First Canonical"},
		Rule{Keywords: []string{"overlap"}, Name: "Second Canonical"},
	)
	got, fix := m.Match("Proceedings of the Overlap Workshop")
	if fix {
		t.Fatal("unexpected manual-fix flag")
	}
	if got != "Second Canonical" {
		t.Errorf("expected later rule to win, got %q", got)
	}
}

func TestExtraRulesOverrideBuiltins(t *testing.T) {
	m := NewMatcher(Rule{Keywords: []string{"usenix security"}, Name: "House Style USENIX Sec"})
	got, _ := m.Match("13th USENIX Security Symposium")
	if got != "House Style USENIX Sec" {
		t.Errorf("expected appended rule to override built-in, got %q", got)
	}
}
