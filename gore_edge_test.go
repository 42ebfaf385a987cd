package brx

import "testing"

func TestEmptyMatchesAndZeroWidth(t *testing.T) {
	re := MustCompile("")
	if !re.MatchString("anything") {
		t.Error("Empty pattern should match")
	}

	re2 := MustCompile("a(b*)c")
	matches := re2.FindStringSubmatch("ac")
	if len(matches) != 2 || matches[1] != "" {
		t.Errorf("Empty group: got %v; want [\"ac\", \"\"]", matches)
	}

	re5 := MustCompile("a||b")
	if !re5.MatchString("") {
		t.Error("Empty alternation branch should match empty")
	}
}

func TestEmptyStringMatching(t *testing.T) {
	tests := []struct {
		pattern string
		want    bool
	}{
		{"", true},
		{"a?", true},
		{"a*", true},
		{"a+", false},
		{"()", true},
		{"(?:)", true},
		{"^$", true},
	}

	for _, tt := range tests {
		re := MustCompile(tt.pattern)
		got := re.MatchString("")
		if got != tt.want {
			t.Errorf("Pattern %q on empty string: got %v; want %v",
				tt.pattern, got, tt.want)
		}
	}
}

func TestZeroWidthEnumeration(t *testing.T) {
	re := MustCompile("a*")
	got := re.FindAllStringIndex("baab", -1)
	// "a*" consumes each run of 'a' greedily, and otherwise matches
	// the empty string at the position it's tried.
	want := [][]int{{0, 0}, {1, 3}, {3, 3}, {4, 4}}

	if len(got) != len(want) {
		t.Fatalf("FindAllStringIndex(a*, baab) = %v; want %v", got, want)
	}
	for i := range want {
		if got[i][0] != want[i][0] || got[i][1] != want[i][1] {
			t.Errorf("match %d = %v; want %v", i, got[i], want[i])
		}
	}
}
