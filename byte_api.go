package brx

// Match reports whether subject contains any match of re.
func (re *Regexp) Match(subject []byte) bool {
	e := re.getEngine()
	defer re.putEngine(e)
	_, ok := e.Search(subject, 0)
	return ok
}

// FindIndex returns a two-element slice holding the start and end
// byte offsets of the leftmost match, or nil if there is none.
func (re *Regexp) FindIndex(subject []byte) []int {
	e := re.getEngine()
	defer re.putEngine(e)
	caps, ok := e.Search(subject, 0)
	if !ok {
		return nil
	}
	return []int{caps[0], caps[1]}
}

// Find returns the leftmost match of re in subject, or nil if there
// is none.
func (re *Regexp) Find(subject []byte) []byte {
	loc := re.FindIndex(subject)
	if loc == nil {
		return nil
	}
	return subject[loc[0]:loc[1]]
}

// FindSubmatch returns the leftmost match and the matches of its
// capturing groups. Index 0 is the whole match; a group that did not
// participate is nil.
func (re *Regexp) FindSubmatch(subject []byte) [][]byte {
	e := re.getEngine()
	defer re.putEngine(e)
	caps, ok := e.Search(subject, 0)
	if !ok {
		return nil
	}
	return buildByteSubmatch(subject, caps, re.numCaps)
}

// FindAllIndex returns the index pairs of every non-overlapping match
// of re in subject, in order. n < 0 means no limit; n == 0 returns
// nil.
func (re *Regexp) FindAllIndex(subject []byte, n int) [][]int {
	if n == 0 {
		return nil
	}
	e := re.getEngine()
	defer re.putEngine(e)

	var out [][]int
	for _, caps := range e.EnumerateAll(subject) {
		out = append(out, []int{caps[0], caps[1]})
		if n > 0 && len(out) >= n {
			break
		}
	}
	return out
}

// FindAll returns the byte slices of every non-overlapping match of
// re in subject, in order.
func (re *Regexp) FindAll(subject []byte, n int) [][]byte {
	locs := re.FindAllIndex(subject, n)
	if locs == nil {
		return nil
	}
	out := make([][]byte, len(locs))
	for i, loc := range locs {
		out[i] = subject[loc[0]:loc[1]]
	}
	return out
}

// FindAllSubmatch returns the submatches of every non-overlapping
// match of re in subject, in order.
func (re *Regexp) FindAllSubmatch(subject []byte, n int) [][][]byte {
	if n == 0 {
		return nil
	}
	e := re.getEngine()
	defer re.putEngine(e)

	var out [][][]byte
	for _, caps := range e.EnumerateAll(subject) {
		out = append(out, buildByteSubmatch(subject, caps, re.numCaps))
		if n > 0 && len(out) >= n {
			break
		}
	}
	return out
}

// buildByteSubmatch assembles the reported match: the whole match at
// index 0, followed by every capturing group that is not strictly
// contained within another group's range. A group whose span is
// nested inside a sibling's span (e.g. the inner groups of
// "((a)(b))") carries no information the outer group didn't already
// report, so it is dropped from the result entirely rather than left
// as a hole; the result can therefore be shorter than numCaps+1.
func buildByteSubmatch(subject []byte, caps []int, numCaps int) [][]byte {
	contained := make([]bool, numCaps+1)
	for i := 1; i <= numCaps; i++ {
		iStart, iEnd := caps[2*i], caps[2*i+1]
		if iStart < 0 || iEnd < 0 {
			continue
		}
		for j := 1; j <= numCaps; j++ {
			if i == j || contained[j] {
				continue
			}
			jStart, jEnd := caps[2*j], caps[2*j+1]
			if jStart < 0 || jEnd < 0 {
				continue
			}
			if jStart <= iStart && iEnd <= jEnd && (jStart < iStart || iEnd < jEnd) {
				contained[i] = true
				break
			}
		}
	}

	result := [][]byte{subject[caps[0]:caps[1]]}
	for i := 1; i <= numCaps; i++ {
		if contained[i] {
			continue
		}
		start, end := caps[2*i], caps[2*i+1]
		if start < 0 || end < 0 {
			result = append(result, nil)
			continue
		}
		result = append(result, subject[start:end])
	}
	return result
}
