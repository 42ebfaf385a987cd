package brx

// MatchString reports whether s contains any match of re.
func (re *Regexp) MatchString(s string) bool {
	return re.Match([]byte(s))
}

// FindStringIndex returns the byte offsets of the leftmost match of
// re in s, or nil if there is none.
func (re *Regexp) FindStringIndex(s string) []int {
	return re.FindIndex([]byte(s))
}

// FindString returns the leftmost match of re in s, or the empty
// string if there is none. Callers that need to distinguish "no
// match" from "matched the empty string" should use FindStringIndex.
func (re *Regexp) FindString(s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return ""
	}
	return s[loc[0]:loc[1]]
}

// FindStringSubmatch returns the leftmost match of re in s and the
// matches of its capturing groups. A group that did not participate
// is the empty string.
func (re *Regexp) FindStringSubmatch(s string) []string {
	submatches := re.FindSubmatch([]byte(s))
	if submatches == nil {
		return nil
	}
	result := make([]string, len(submatches))
	for i, b := range submatches {
		result[i] = string(b)
	}
	return result
}

// FindAllStringIndex returns the index pairs of every non-overlapping
// match of re in s, in order.
func (re *Regexp) FindAllStringIndex(s string, n int) [][]int {
	return re.FindAllIndex([]byte(s), n)
}

// FindAllString returns the text of every non-overlapping match of re
// in s, in order.
func (re *Regexp) FindAllString(s string, n int) []string {
	matches := re.FindAll([]byte(s), n)
	if matches == nil {
		return nil
	}
	result := make([]string, len(matches))
	for i, m := range matches {
		result[i] = string(m)
	}
	return result
}

// FindAllStringSubmatch returns the submatches of every
// non-overlapping match of re in s, in order.
func (re *Regexp) FindAllStringSubmatch(s string, n int) [][]string {
	allMatches := re.FindAllSubmatch([]byte(s), n)
	if allMatches == nil {
		return nil
	}
	result := make([][]string, len(allMatches))
	for i, match := range allMatches {
		result[i] = make([]string, len(match))
		for j, b := range match {
			result[i][j] = string(b)
		}
	}
	return result
}

// Split slices s into the substrings between successive matches of
// re. n < 0 returns all substrings; n == 0 returns nil.
func (re *Regexp) Split(s string, n int) []string {
	if n == 0 {
		return nil
	}
	matches := re.FindAllStringIndex(s, -1)
	if matches == nil {
		return []string{s}
	}
	if n > 0 && len(matches) > n-1 {
		matches = matches[:n-1]
	}

	result := make([]string, 0, len(matches)+1)
	prev := 0
	for _, m := range matches {
		result = append(result, s[prev:m[0]])
		prev = m[1]
	}
	result = append(result, s[prev:])
	return result
}
