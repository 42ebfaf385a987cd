package main

import (
	"bufio"
	"fmt"
	"io"

	"brx"
)

// scanAndPrint reads from r line by line, prints matching lines (with
// an optional filename prefix), and reports whether any line matched.
func scanAndPrint(prefix string, r io.Reader, re *brx.Regexp, addPrefix bool) bool {
	scanner := bufio.NewScanner(r)
	found := false
	for scanner.Scan() {
		line := scanner.Bytes()
		if re.Match(line) {
			if addPrefix {
				fmt.Printf("%s:%s\n", prefix, line)
			} else {
				fmt.Println(string(line))
			}
			found = true
		}
	}
	return found
}
