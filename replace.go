package brx

import "brx/template"

// ReplaceAllString returns a copy of src with every non-overlapping
// match of re replaced by repl, expanded as a template: \1-\9 and
// $1-$9 substitute the entry at that index of the group list
// FindStringSubmatch would report (groups nested inside another
// group's range are dropped from that list, so they cannot be
// referenced), \0/$0 the whole match, and \\/$$ a literal
// backslash/dollar.
func (re *Regexp) ReplaceAllString(src, repl string) string {
	tmpl, err := template.Parse(repl)
	if err != nil {
		return src
	}
	return re.expandAllString(src, tmpl)
}

// ReplaceString returns a copy of src with only the leftmost match of
// re replaced by repl, expanded as a template exactly as
// ReplaceAllString expands it. If re does not match, src is returned
// unchanged.
func (re *Regexp) ReplaceString(src, repl string) string {
	tmpl, err := template.Parse(repl)
	if err != nil {
		return src
	}
	return re.expandFirstString(src, tmpl)
}

// ReplaceAllLiteralString is like ReplaceAllString but repl is
// substituted literally, with no template expansion.
func (re *Regexp) ReplaceAllLiteralString(src, repl string) string {
	return re.ReplaceAllStringFunc(src, func(string) string { return repl })
}

// ReplaceAllStringFunc returns a copy of src with every
// non-overlapping match of re replaced by the result of calling repl
// on the matched text.
func (re *Regexp) ReplaceAllStringFunc(src string, repl func(string) string) string {
	locs := re.FindAllStringIndex(src, -1)
	if locs == nil {
		return src
	}
	var out []byte
	last := 0
	for _, loc := range locs {
		out = append(out, src[last:loc[0]]...)
		out = append(out, repl(src[loc[0]:loc[1]])...)
		last = loc[1]
	}
	out = append(out, src[last:]...)
	return string(out)
}

// Replace is the []byte form of ReplaceString.
func (re *Regexp) Replace(src, repl []byte) []byte {
	return []byte(re.ReplaceString(string(src), string(repl)))
}

// ReplaceAll is the []byte form of ReplaceAllString.
func (re *Regexp) ReplaceAll(src, repl []byte) []byte {
	return []byte(re.ReplaceAllString(string(src), string(repl)))
}

// ReplaceAllLiteral is the []byte form of ReplaceAllLiteralString.
func (re *Regexp) ReplaceAllLiteral(src, repl []byte) []byte {
	return []byte(re.ReplaceAllLiteralString(string(src), string(repl)))
}

// ReplaceAllFunc is the []byte form of ReplaceAllStringFunc.
func (re *Regexp) ReplaceAllFunc(src []byte, repl func([]byte) []byte) []byte {
	return []byte(re.ReplaceAllStringFunc(string(src), func(s string) string {
		return string(repl([]byte(s)))
	}))
}

// expandFirstString replaces only the leftmost match, with no
// rescanning after the substitution is spliced in.
func (re *Regexp) expandFirstString(src string, tmpl *template.Template) string {
	loc := re.FindStringIndex(src)
	if loc == nil {
		return src
	}
	submatch := re.FindStringSubmatch(src)

	var out []byte
	out = append(out, src[:loc[0]]...)
	out = append(out, template.Expand(tmpl, submatch)...)
	out = append(out, src[loc[1]:]...)
	return string(out)
}

// expandAllString implements the all=true branch the way the
// ground-truth original does: it mutates a working buffer in place,
// one match at a time, and resumes the next search from the end of
// the spliced-in expansion rather than the end of the original match.
// Computing every match up front against the untouched src (as
// FindAllStringSubmatch would) can't produce that: an earlier
// expansion can introduce or remove a match further along, e.g. a
// '^' anchor under WithMultiline() that only appears once a preceding
// expansion has inserted a newline.
func (re *Regexp) expandAllString(src string, tmpl *template.Template) string {
	e := re.getEngine()
	defer re.putEngine(e)

	result := []byte(src)
	pos := 0
	for pos <= len(result) {
		caps, ok := e.Search(result, pos)
		if !ok {
			break
		}

		submatch := buildByteSubmatch(result, caps, re.numCaps)
		strs := make([]string, len(submatch))
		for i, b := range submatch {
			strs[i] = string(b)
		}
		repl := template.Expand(tmpl, strs)

		start, end := caps[0], caps[1]
		spliced := make([]byte, 0, len(result)-(end-start)+len(repl))
		spliced = append(spliced, result[:start]...)
		spliced = append(spliced, repl...)
		spliced = append(spliced, result[end:]...)
		result = spliced

		pos = start + len(repl)
		if end == start {
			pos++
		}
	}
	return string(result)
}
