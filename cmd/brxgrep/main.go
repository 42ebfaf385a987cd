package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"brx"
)

func main() {
	recursive, foldCase, pattern, paths, err := parseArgs(os.Args)
	if err != nil {
		log.Printf("argument error: %v", err)
		os.Exit(2)
	}

	var opts []brx.Option
	if foldCase {
		opts = append(opts, brx.WithFoldCase())
	}
	re, err := brx.Compile(pattern, opts...)
	if err != nil {
		log.Printf("bad pattern %q: %v", pattern, err)
		os.Exit(2)
	}

	foundAny := false
	multi := recursive || len(paths) > 1

	switch {
	case len(paths) == 0:
		if scanAndPrint("stdin", os.Stdin, re, false) {
			foundAny = true
		}
	case recursive:
		for _, root := range paths {
			walkErr := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
				if err != nil || info.IsDir() {
					return nil
				}
				f, err := os.Open(path)
				if err != nil {
					return nil
				}
				defer f.Close()
				if scanAndPrint(path, f, re, true) {
					foundAny = true
				}
				return nil
			})
			if walkErr != nil {
				log.Printf("error walking %s: %v", root, walkErr)
				os.Exit(2)
			}
		}
	default:
		for _, filename := range paths {
			f, err := os.Open(filename)
			if err != nil {
				log.Printf("failed to open %q: %v", filename, err)
				os.Exit(2)
			}
			defer f.Close()
			if scanAndPrint(filename, f, re, multi) {
				foundAny = true
			}
		}
	}

	if foundAny {
		os.Exit(0)
	}
	os.Exit(1)
}

func usage() error {
	return fmt.Errorf("usage: brxgrep [-r] [-i] <pattern> [paths...]")
}

// parseArgs handles [-r] [-i] <pattern> [paths...].
func parseArgs(args []string) (recursive, foldCase bool, pattern string, paths []string, err error) {
	i := 1
	for i < len(args) && len(args[i]) == 2 && args[i][0] == '-' {
		switch args[i][1] {
		case 'r':
			recursive = true
		case 'i':
			foldCase = true
		default:
			return false, false, "", nil, usage()
		}
		i++
	}
	if i >= len(args) {
		return false, false, "", nil, usage()
	}
	pattern = args[i]
	i++
	paths = args[i:]
	return
}
