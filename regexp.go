package brx

import (
	"fmt"
	"sync"
)

// Regexp is an immutable, compiled pattern. It is safe for concurrent
// use by multiple goroutines: each matching call borrows its own
// Engine from an internal pool rather than sharing mutable state.
type Regexp struct {
	expr    string
	prog    *Program
	numCaps int
	opts    compileOptions

	engines sync.Pool
}

// Compile parses and compiles pattern, applying every Option in
// order. It is the only entry point that can fail; every other
// operation on a *Regexp always succeeds.
func Compile(pattern string, opts ...Option) (*Regexp, error) {
	o := resolveOptions(opts)
	node, numCaps, err := ParsePattern(pattern, o)
	if err != nil {
		return nil, err
	}
	prog := compileProgram(node, numCaps, o)

	re := &Regexp{expr: pattern, prog: prog, numCaps: numCaps, opts: o}
	re.engines.New = func() interface{} { return NewEngine(re.prog, re.opts) }
	return re, nil
}

// MustCompile is like Compile but panics if pattern cannot be
// compiled. It is intended for patterns known at init time.
func MustCompile(pattern string, opts ...Option) *Regexp {
	re, err := Compile(pattern, opts...)
	if err != nil {
		panic(fmt.Sprintf("brx: Compile(%q): %v", pattern, err))
	}
	return re
}

// Clone returns an independent *Regexp compiled from the same pattern
// and options. Since Regexp is already concurrency-safe, Clone exists
// only for callers that want a separate Engine pool of their own.
func (re *Regexp) Clone() *Regexp {
	clone := &Regexp{expr: re.expr, prog: re.prog, numCaps: re.numCaps, opts: re.opts}
	clone.engines.New = func() interface{} { return NewEngine(clone.prog, clone.opts) }
	return clone
}

// String returns the source pattern text re was compiled from.
func (re *Regexp) String() string {
	return re.expr
}

// NumSubexp returns the number of capturing groups in the pattern,
// not counting the implicit whole-match group 0.
func (re *Regexp) NumSubexp() int {
	return re.numCaps
}

func (re *Regexp) getEngine() *Engine {
	return re.engines.Get().(*Engine)
}

func (re *Regexp) putEngine(e *Engine) {
	re.engines.Put(e)
}
