package format

import "testing"

func TestReference(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		author string
		year   string
		want   string
	}{
		{
			"typical entry",
			"Tor: the Second Generation Onion Router",
			"Roger Dingledine and Nick Mathewson",
			"2004",
			"dingledine2004tor",
		},
		{
			"leading stop words skipped",
			"On the Feasibility of Things",
			"Kate Thomas",
			"2014",
			"thomas2014feasibility",
		},
		{
			"organization author used whole",
			"Annual Report",
			"Acme",
			"1999",
			"acme1999annual",
		},
		{"missing title", "", "Kate Thomas", "2014", ""},
		{"missing author", "Some Title", "", "2014", ""},
		{"missing year", "Some Title", "Kate Thomas", "", ""},
		{"all stop words", "Of the and For", "Kate Thomas", "2014", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reference(tt.title, tt.author, tt.year); got != tt.want {
				t.Errorf("Reference(%q, %q, %q) = %q, want %q", tt.title, tt.author, tt.year, got, tt.want)
			}
		})
	}
}

func TestReferenceDeterministicAndCaseInsensitive(t *testing.T) {
	a := Reference("Tor: the Second Generation Onion Router", "Roger Dingledine", "2004")
	b := Reference("Tor: the Second Generation Onion Router", "Roger Dingledine", "2004")
	if a != b {
		t.Fatalf("Reference is not deterministic: %q vs %q", a, b)
	}
	c := Reference("TOR: THE SECOND GENERATION ONION ROUTER", "ROGER DINGLEDINE", "2004")
	if a != c {
		t.Errorf("Reference depends on letter case: %q vs %q", a, c)
	}
}
