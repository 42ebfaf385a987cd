package brx

// Compiler walks an AST and emits a flat Program, patching jump and
// split targets as it goes rather than in a second pass.
type Compiler struct {
	insts []Inst
	opts  compileOptions
}

// compileProgram assembles node into a runnable Program. Capture slot
// 0 (the whole match) is saved implicitly around the entire pattern;
// numCaps is the count of capturing groups the parser assigned.
func compileProgram(node Node, numCaps int, opts compileOptions) *Program {
	c := &Compiler{opts: opts}
	c.emit(Inst{Op: OpSave, Primary: 0})
	c.compileNode(node)
	c.emit(Inst{Op: OpSave, Primary: 1})
	c.emit(Inst{Op: OpMatch})
	return &Program{Insts: c.insts, NumCaps: numCaps}
}

func (c *Compiler) emit(i Inst) int {
	c.insts = append(c.insts, i)
	return len(c.insts) - 1
}

func (c *Compiler) compileNode(node Node) {
	switch n := node.(type) {
	case *LiteralNode:
		c.compileLiteral(n.Byte)

	case *DotNode:
		c.emit(Inst{Op: OpAny})

	case *ConcatNode:
		for _, child := range n.Children {
			c.compileNode(child)
		}

	case *AlternateNode:
		c.compileAlternate(n.Branches)

	case *RepeatNode:
		c.compileRepeat(n)

	case *CharClassNode:
		c.compileClass(n.Set, n.Pred, false)

	case *NegCharClassNode:
		c.compileClass(n.Set, n.Pred, true)

	case *AnchorStartNode:
		c.emit(Inst{Op: OpAnchorStart})

	case *AnchorEndNode:
		c.emit(Inst{Op: OpAnchorEnd})

	case *GroupNode:
		c.emit(Inst{Op: OpSave, Primary: 2 * n.Index})
		c.compileNode(n.Child)
		c.emit(Inst{Op: OpSave, Primary: 2*n.Index + 1})

	case *BackrefNode:
		c.emit(Inst{Op: OpBackref, Backref: n.Group})
	}
}

func (c *Compiler) compileLiteral(b byte) {
	if c.opts.foldCase && isASCIILetter(b) {
		var set CharSet
		set.Set(b)
		c.emit(Inst{Op: OpClass, Set: foldCaseSet(set)})
		return
	}
	c.emit(Inst{Op: OpChar, Byte: b})
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func (c *Compiler) compileClass(set CharSet, pred ClassPredicate, negate bool) {
	if pred != PredNone && set.Lo == 0 && set.Hi == 0 {
		c.emit(Inst{Op: OpClassPred, Pred: pred, Negate: negate})
		return
	}
	if c.opts.foldCase {
		set = foldCaseSet(set)
	}
	op := OpClass
	if negate {
		op = OpNotClass
	}
	c.emit(Inst{Op: op, Set: set})
}

// compileAlternate emits a chain of splits, one per branch but the
// last, each jumping past the remaining branches once its own branch
// matches.
func (c *Compiler) compileAlternate(branches []Node) {
	if len(branches) == 0 {
		return
	}
	var jumps []int
	for i, b := range branches {
		if i == len(branches)-1 {
			c.compileNode(b)
			break
		}
		split := c.emit(Inst{Op: OpSplit})
		c.insts[split].Primary = len(c.insts)
		c.compileNode(b)
		jumps = append(jumps, c.emit(Inst{Op: OpJump}))
		c.insts[split].Secondary = len(c.insts)
	}
	end := len(c.insts)
	for _, j := range jumps {
		c.insts[j].Primary = end
	}
}

// compileRepeat implements the {n,m} expansion decided on: n
// mandatory unrolled copies of the body, followed by an unbounded
// greedy-loop tail when Max is infiniteRepeat, or (Max-Min) nested
// optional copies otherwise. '*', '+' and '?' are the Min=0/Max=inf,
// Min=1/Max=inf and Min=0/Max=1 special cases of the same shape.
func (c *Compiler) compileRepeat(n *RepeatNode) {
	for i := 0; i < n.Min; i++ {
		c.compileNode(n.Child)
	}
	switch {
	case n.Max == infiniteRepeat:
		c.compileStarTail(n.Child, n.Greedy)
	case n.Max > n.Min:
		c.compileOptionalTail(n.Child, n.Max-n.Min, n.Greedy)
	}
}

// compileStarTail emits a zero-or-more loop: split to either enter
// the body and jump back, or skip straight past it.
func (c *Compiler) compileStarTail(child Node, greedy bool) {
	start := len(c.insts)
	split := c.emit(Inst{Op: OpSplit})
	c.compileNode(child)
	c.emit(Inst{Op: OpJump, Primary: split})
	end := len(c.insts)
	if greedy {
		c.insts[split].Primary = start + 1
		c.insts[split].Secondary = end
	} else {
		c.insts[split].Primary = end
		c.insts[split].Secondary = start + 1
	}
}

// compileOptionalTail emits k nested optional copies of child, each
// able to skip itself and every copy after it in one step.
func (c *Compiler) compileOptionalTail(child Node, k int, greedy bool) {
	var splits []int
	for i := 0; i < k; i++ {
		s := c.emit(Inst{Op: OpSplit})
		splits = append(splits, s)
		c.compileNode(child)
	}
	end := len(c.insts)
	for _, s := range splits {
		if greedy {
			c.insts[s].Primary = s + 1
			c.insts[s].Secondary = end
		} else {
			c.insts[s].Primary = end
			c.insts[s].Secondary = s + 1
		}
	}
}
