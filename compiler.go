package amarantine

// Compiler lowers an AST into a flat Instruction slice. Jump targets are
// backpatched after the referenced instructions exist, following the
// teacher's emit-then-patch style rather than building a separate fixup
// list.
type Compiler struct {
	insts  []Instruction
	numCap int
}

// compileProgram lowers root into a complete Prog, wrapping it in the
// SAVE 0 / SAVE 1 pair that bracket the whole match (slots 0 and 1 of the
// capture vector, per spec.md §3) and a trailing MATCH.
func compileProgram(root Node, numCap int) *Prog {
	c := &Compiler{numCap: numCap}
	c.emit(Instruction{Op: OpSave, Slot: 0})
	c.compileNode(root)
	c.emit(Instruction{Op: OpSave, Slot: 1})
	c.emit(Instruction{Op: OpMatch})
	return &Prog{Insts: c.insts, NumCap: numCap}
}

func (c *Compiler) emit(inst Instruction) int {
	c.insts = append(c.insts, inst)
	return len(c.insts) - 1
}

func (c *Compiler) here() int {
	return len(c.insts)
}

func (c *Compiler) patchOut(idx, target int) {
	c.insts[idx].Out = target
}

func (c *Compiler) patchOut1(idx, target int) {
	c.insts[idx].Out1 = target
}

func (c *Compiler) compileNode(n Node) {
	switch node := n.(type) {
	case *Literal:
		c.emit(Instruction{Op: OpChar, Ch: node.Ch})

	case *Dot:
		c.emit(Instruction{Op: OpAny})

	case *Class:
		c.emit(Instruction{Op: OpClass, SetLo: node.Lo, SetHi: node.Hi, Named: node.Named, HasPred: node.HasPred})

	case *NotClass:
		c.emit(Instruction{Op: OpNotClass, SetLo: node.Lo, SetHi: node.Hi, Named: node.Named, HasPred: node.HasPred})

	case *AnchorStart:
		c.emit(Instruction{Op: OpAnchorStart})

	case *AnchorEnd:
		c.emit(Instruction{Op: OpAnchorEnd})

	case *Concat:
		for _, child := range node.Children {
			c.compileNode(child)
		}

	case *Alternate:
		c.compileAlternate(node)

	case *Repeat:
		c.compileRepeat(node)

	case *Group:
		c.emit(Instruction{Op: OpSave, Slot: 2 * node.Index})
		c.compileNode(node.Child)
		c.emit(Instruction{Op: OpSave, Slot: 2*node.Index + 1})

	case *Backref:
		c.emit(Instruction{Op: OpBackref, Group: node.Index})
	}
}

// compileAlternate emits:
//
//	SPLIT L1, L2
//	L1: <left>
//	    JUMP L3
//	L2: <right>
//	L3:
func (c *Compiler) compileAlternate(node *Alternate) {
	split := c.emit(Instruction{Op: OpSplit})
	l1 := c.here()
	c.compileNode(node.Left)
	jmp := c.emit(Instruction{Op: OpJump})
	l2 := c.here()
	c.compileNode(node.Right)
	l3 := c.here()

	c.patchOut(split, l1)
	c.patchOut1(split, l2)
	c.patchOut(jmp, l3)
}

// compileRepeat implements the four quantifier shapes from spec.md §4.3.
// '*' '+' '?' are always compiled to their textbook greedy SPLIT/JUMP form.
// A braced '{n,m}' form emits exactly Min copies of Child; when Max is
// finite and greater than Min, the (Max-Min) optional copies are never
// emitted at all — a faithful reproduction of the reference compiler's
// "only handle the minimum required" shortcut, not a bug this module fixes.
func (c *Compiler) compileRepeat(node *Repeat) {
	if !node.Braced {
		switch {
		case node.Min == 0 && node.Max < 0:
			c.compileStar(node.Child)
		case node.Min == 1 && node.Max < 0:
			c.compilePlus(node.Child)
		case node.Min == 0 && node.Max == 1:
			c.compileOptional(node.Child)
		default:
			c.compileBraced(node)
		}
		return
	}
	c.compileBraced(node)
}

// compileStar emits:
//
//	L1: SPLIT L2, L3
//	L2: <child>
//	    JUMP L1
//	L3:
func (c *Compiler) compileStar(child Node) {
	l1 := c.here()
	split := c.emit(Instruction{Op: OpSplit})
	l2 := c.here()
	c.compileNode(child)
	jmp := c.emit(Instruction{Op: OpJump})
	l3 := c.here()

	c.patchOut(split, l2)
	c.patchOut1(split, l3)
	c.patchOut(jmp, l1)
}

// compilePlus emits:
//
//	L1: <child>
//	    SPLIT L1, L2
//	L2:
func (c *Compiler) compilePlus(child Node) {
	l1 := c.here()
	c.compileNode(child)
	split := c.emit(Instruction{Op: OpSplit})
	l2 := c.here()

	c.patchOut(split, l1)
	c.patchOut1(split, l2)
}

// compileOptional emits:
//
//	SPLIT L1, L2
//	L1: <child>
//	L2:
func (c *Compiler) compileOptional(child Node) {
	split := c.emit(Instruction{Op: OpSplit})
	l1 := c.here()
	c.compileNode(child)
	l2 := c.here()

	c.patchOut(split, l1)
	c.patchOut1(split, l2)
}

// compileBraced handles every braced form — '{n}', '{n,}' (encoded as
// Max<=0) and '{n,m}' — by emitting exactly Min copies of Child and
// nothing else. This holds uniformly, including '{0}' and '{n,0}': the
// reference compiler never emits an unbounded tail for '{n,}', it emits
// the same fixed Min copies as every other braced form (amaranth.h:1081-1087).
func (c *Compiler) compileBraced(node *Repeat) {
	for i := 0; i < node.Min; i++ {
		c.compileNode(node.Child)
	}
	// Max > Min (finite, e.g. '{2,4}') or Max <= 0 (unbounded '{n,}'): the
	// optional/unbounded tail is deliberately never emitted (see doc
	// comment on compileRepeat).
}
