package extract

import "testing"

func TestDecodeEntities(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain text untouched", "plain text untouched"},
		{"Tom &amp; Jerry", "Tom & Jerry"},
		{"&#65;&#66;&#67;", "ABC"},
		{"&#x2019;s role", "’s role"},
		{"&ldquo;quoted&rdquo;", "“quoted”"},
		{"salary &ndash; negotiable", "salary – negotiable"},
		{"A&nbsp;B", "A B"},
		{"5 &gt; 3 &lt; 7", "5 > 3 < 7"},
		// Unknown references fall through to the generic pass.
		{"&euro;100", "€100"},
		// Broken references stay as-is.
		{"&#; &#xZZ;", "&#; &#xZZ;"},
	}

	for _, tt := range tests {
		got := DecodeEntities(tt.in)
		if got != tt.want {
			t.Errorf("DecodeEntities(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecodeEntitiesIdempotent(t *testing.T) {
	inputs := []string{
		"Tom &amp; Jerry",
		"&#65;BC &#x42;",
		"no entities at all",
		"&ldquo;mixed&rdquo; &amp; &#39;raw&#39;",
	}
	for _, in := range inputs {
		once := DecodeEntities(in)
		twice := DecodeEntities(once)
		if once != twice {
			t.Errorf("DecodeEntities not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}
