package brx

import "sync"

// frame is one entry of the explicit backtrack stack: the alternative
// program counter a SPLIT pushed, the subject position at the time it
// was pushed, and a snapshot of the capture slots to restore if this
// alternative is ever resumed.
type frame struct {
	pc   int
	pos  int
	caps []int
}

var capsPool = sync.Pool{
	New: func() interface{} { return make([]int, 0, 16) },
}

func newCaps(n int) []int {
	c := capsPool.Get().([]int)
	if cap(c) < n {
		c = make([]int, n)
	} else {
		c = c[:n]
	}
	for i := range c {
		c[i] = -1
	}
	return c
}

func cloneCaps(src []int) []int {
	c := capsPool.Get().([]int)
	if cap(c) < len(src) {
		c = make([]int, len(src))
	} else {
		c = c[:len(src)]
	}
	copy(c, src)
	return c
}

func releaseCaps(c []int) {
	capsPool.Put(c[:0])
}

var framePool = sync.Pool{
	New: func() interface{} { return make([]frame, 0, 64) },
}

// Engine runs one compiled Program against byte subjects. It holds
// only the program and options; each execAt call takes its capture
// slots and backtrack stack from the package-level pools above.
// Regexp pools Engines so callers never share one.
type Engine struct {
	prog *Program
	opts compileOptions
}

// NewEngine builds an Engine bound to prog.
func NewEngine(prog *Program, opts compileOptions) *Engine {
	return &Engine{prog: prog, opts: opts}
}

// Match runs the program starting at exactly pos, with no scanning.
// It reports the capture slot vector on success.
func (e *Engine) Match(subject []byte, pos int) ([]int, bool) {
	return e.execAt(subject, pos)
}

// Search scans forward a byte at a time from from until execAt
// succeeds or the subject is exhausted.
func (e *Engine) Search(subject []byte, from int) ([]int, bool) {
	for pos := from; pos <= len(subject); pos++ {
		if caps, ok := e.execAt(subject, pos); ok {
			return caps, true
		}
	}
	return nil, false
}

// EnumerateAll finds every non-overlapping match in subject, advancing
// past a zero-width match by one byte so enumeration always makes
// forward progress.
func (e *Engine) EnumerateAll(subject []byte) [][]int {
	var all [][]int
	pos := 0
	for pos <= len(subject) {
		caps, ok := e.Search(subject, pos)
		if !ok {
			break
		}
		all = append(all, caps)
		if caps[1] == caps[0] {
			pos = caps[1] + 1
		} else {
			pos = caps[1]
		}
	}
	return all
}

// execAt is the non-recursive backtracking core: a dispatch loop over
// the current instruction, with failure handled by popping the
// explicit frame stack rather than returning up the host call stack.
func (e *Engine) execAt(subject []byte, startPos int) ([]int, bool) {
	caps := newCaps(2 * (e.prog.NumCaps + 1))

	stack := framePool.Get().([]frame)
	stack = stack[:0]
	defer framePool.Put(stack[:0])

	pc := 0
	pos := startPos

	for {
		failed := false
		matched := false

		for pc < len(e.prog.Insts) {
			inst := e.prog.Insts[pc]
			switch inst.Op {
			case OpChar:
				if pos < len(subject) && subject[pos] == inst.Byte {
					pos++
					pc++
				} else {
					failed = true
				}

			case OpAny:
				if pos < len(subject) {
					pos++
					pc++
				} else {
					failed = true
				}

			case OpRange:
				if pos < len(subject) && subject[pos] >= inst.Lo && subject[pos] <= inst.Hi {
					pos++
					pc++
				} else {
					failed = true
				}

			case OpClass:
				if pos < len(subject) && inst.Set.Test(subject[pos]) {
					pos++
					pc++
				} else {
					failed = true
				}

			case OpNotClass:
				if pos < len(subject) && !inst.Set.Test(subject[pos]) {
					pos++
					pc++
				} else {
					failed = true
				}

			case OpClassPred:
				if pos < len(subject) {
					m := matchPredicate(inst.Pred, subject[pos])
					if inst.Negate {
						m = !m
					}
					if m {
						pos++
						pc++
					} else {
						failed = true
					}
				} else {
					failed = true
				}

			case OpJump:
				pc = inst.Primary

			case OpSplit:
				stack = append(stack, frame{pc: inst.Secondary, pos: pos, caps: cloneCaps(caps)})
				pc = inst.Primary

			case OpSave:
				caps[inst.Primary] = pos
				pc++

			case OpAnchorStart:
				if e.atLineStart(subject, pos) {
					pc++
				} else {
					failed = true
				}

			case OpAnchorEnd:
				if e.atLineEnd(subject, pos) {
					pc++
				} else {
					failed = true
				}

			case OpBackref:
				// Backreferences are a defined opcode that never
				// succeeds at runtime.
				failed = true

			case OpMatch:
				matched = true

			default:
				pc++
			}

			if failed || matched {
				break
			}
		}

		if matched {
			result := make([]int, len(caps))
			copy(result, caps)
			releaseCaps(caps)
			return result, true
		}

		if len(stack) == 0 {
			releaseCaps(caps)
			return nil, false
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		releaseCaps(caps)
		pc, pos, caps = top.pc, top.pos, top.caps
	}
}

func (e *Engine) atLineStart(subject []byte, pos int) bool {
	if pos == 0 {
		return true
	}
	return e.opts.multiline && subject[pos-1] == '\n'
}

func (e *Engine) atLineEnd(subject []byte, pos int) bool {
	if pos == len(subject) {
		return true
	}
	return e.opts.multiline && subject[pos] == '\n'
}
