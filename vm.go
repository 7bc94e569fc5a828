package amarantine

// backtrackFrame is a saved VM state to resume from on failure: the
// instruction to retry, the text position to retry it at, and a full copy
// of the capture vector as it stood when the frame was pushed. This
// mirrors the reference engine's executeAt loop (an explicit stack) rather
// than a recursive-call backtracking VM.
type backtrackFrame struct {
	pc   int
	pos  int
	caps []int
}

// VM executes a compiled Prog against a byte slice using an explicit
// backtrack stack, per spec.md §4.4.
type VM struct {
	prog *Prog
	text []byte
}

func NewVM(prog *Prog, text []byte) *VM {
	return &VM{prog: prog, text: text}
}

// maxBacktrackDepth bounds the backtrack stack so a pathological pattern
// against a long input fails fast instead of exhausting memory.
const maxBacktrackDepth = 1 << 20

// Run attempts a match anchored at start. On success it returns the final
// capture vector (slot 0/1 hold the whole match's [start,end)); on failure
// it returns (nil, false).
func (vm *VM) Run(start int) ([]int, bool) {
	caps := make([]int, 2*(vm.prog.NumCap+1))
	for i := range caps {
		caps[i] = -1
	}

	var stack []backtrackFrame
	pc := vm.prog.Start()
	pos := start

	push := func(pc, pos int) bool {
		if len(stack) >= maxBacktrackDepth {
			return false
		}
		saved := make([]int, len(caps))
		copy(saved, caps)
		stack = append(stack, backtrackFrame{pc: pc, pos: pos, caps: saved})
		return true
	}

	fail := func() bool {
		if len(stack) == 0 {
			return false
		}
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		pc = frame.pc
		pos = frame.pos
		caps = frame.caps
		return true
	}

	for {
		inst := vm.prog.Insts[pc]

		switch inst.Op {
		case OpChar:
			if pos < len(vm.text) && vm.text[pos] == inst.Ch {
				pc++
				pos++
				continue
			}
			if !fail() {
				return nil, false
			}
			continue

		case OpAny:
			if pos < len(vm.text) {
				pc++
				pos++
				continue
			}
			if !fail() {
				return nil, false
			}
			continue

		case OpClass:
			if pos < len(vm.text) && classMatches(inst, vm.text[pos], false) {
				pc++
				pos++
				continue
			}
			if !fail() {
				return nil, false
			}
			continue

		case OpNotClass:
			if pos < len(vm.text) && classMatches(inst, vm.text[pos], true) {
				pc++
				pos++
				continue
			}
			if !fail() {
				return nil, false
			}
			continue

		case OpAnchorStart:
			if pos == 0 {
				pc++
				continue
			}
			if !fail() {
				return nil, false
			}
			continue

		case OpAnchorEnd:
			if pos == len(vm.text) {
				pc++
				continue
			}
			if !fail() {
				return nil, false
			}
			continue

		case OpJump:
			pc = inst.Out
			continue

		case OpSplit:
			if !push(inst.Out1, pos) {
				return nil, false
			}
			pc = inst.Out
			continue

		case OpSave:
			if inst.Slot < len(caps) {
				caps[inst.Slot] = pos
			}
			pc++
			continue

		case OpBackref:
			// Back-references are accepted by the parser and compiler but
			// never succeed at execution time (spec.md §4.4 / §9).
			if !fail() {
				return nil, false
			}
			continue

		case OpMatch:
			result := make([]int, len(caps))
			copy(result, caps)
			return result, true

		default:
			if !fail() {
				return nil, false
			}
			continue
		}
	}
}

// classMatches evaluates an OpClass / OpNotClass instruction against c.
// The instruction always carries the positive set or predicate (a named
// predicate is evaluated with neg=false); notClass flips that membership
// test, for bit-sets and named predicates alike.
func classMatches(inst Instruction, c byte, notClass bool) bool {
	var member bool
	if inst.HasPred {
		member = matchNamedClass(inst.Named, c, false)
	} else {
		member = (bitSet{lo: inst.SetLo, hi: inst.SetHi}).contains(c)
	}
	if notClass {
		return !member
	}
	return member
}

// Start returns the entry instruction index. The compiler always emits the
// program starting at index 0.
func (p *Prog) Start() int {
	return 0
}
