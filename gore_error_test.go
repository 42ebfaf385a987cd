package brx

import "testing"

func TestInvalidPatterns(t *testing.T) {
	invalidPatterns := []struct {
		pattern string
		desc    string
	}{
		{"(", "unclosed group"},
		{")", "unmatched closing paren"},
		{"[", "unclosed character class"},
		{"[z-a]", "invalid range"},
		{"(?P<name>abc)", "named groups are not supported"},
		{"*", "quantifier without target"},
		{"+", "quantifier without target"},
		{"?", "quantifier without target"},
		{"(?", "incomplete group"},
		{"\\", "trailing backslash"},
		{"[\\", "unclosed escape in class"},
		{"a{", "unclosed quantifier"},
		{"a{3,2}", "invalid range (min > max)"},
		{"\\bword", "word boundary is not supported"},
		{"(?<=a)b", "lookbehind is not supported"},
	}

	for _, tt := range invalidPatterns {
		_, err := Compile(tt.pattern)
		if err == nil {
			t.Errorf("Compile(%q) should fail (%s), but succeeded", tt.pattern, tt.desc)
		}
	}
}

func TestValidEdgeCasePatterns(t *testing.T) {
	validPatterns := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"", "", true},
		{"", "a", true},
		{"(?:)", "", true},
		{"()", "", true},
		{"a{0}", "", true},
		{"a{0,0}", "", true},
		{"a{0}b", "b", true},
		{"x{1,1}", "x", true},
	}

	for _, tt := range validPatterns {
		re, err := Compile(tt.pattern)
		if err != nil {
			t.Errorf("Compile(%q) should succeed, but failed: %v", tt.pattern, err)
			continue
		}
		got := re.MatchString(tt.input)
		if got != tt.want {
			t.Errorf("Pattern %q on input %q: got %v, want %v", tt.pattern, tt.input, got, tt.want)
		}
	}
}
