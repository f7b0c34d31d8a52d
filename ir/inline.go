package ir

import "fmt"

// Inline replaces the call at index i of block b
// with a renamed copy of the body of callee,
// and returns the InlinerInfo used to copy it.
//
// Blocks following b are unchanged;
// the instructions after the call move to a new continuation block.
// If the call passes a closure literal defined by b's scope,
// the closure body is also inlined at each yield to it.
func Inline(b *BasicBlock, i int, callee *Scope) *InlinerInfo {
	call, ok := b.Instrs[i].(CallBase)
	if !ok {
		panic(fmt.Sprintf("inlining non-call %s", b.Instrs[i]))
	}
	g := b.CFG
	i = stabilizeCallOperands(b, i)
	call = b.Instrs[i].(CallBase)

	ii := NewInlinerInfo(call, g)
	tail := b.SplitAt(i, g.Scope.NewLabel())
	b.Instrs = b.Instrs[:i]
	copyBody(ii, callee.CFG, tail, ii.CallResultVariable())
	b.Instrs = append(b.Instrs, &Jump{Target: ii.RenamedLabel(callee.CFG.Entry().Label), L: call.Loc()})

	recvClosures := receivedClosures(callee.CFG, ii)
	for _, site := range ii.YieldSites() {
		var closure *Scope
		switch blk := site.Yield.Block.(type) {
		case *Closure:
			closure = blk.Scope
		case *Variable:
			if c, ok := ii.CallClosure().(*Closure); ok && recvClosures[blk] {
				closure = c.Scope
			}
		}
		if closure == nil || !CanInlineClosure(closure, g.Scope) {
			continue
		}
		yb, j := findInstr(g, site.Yield)
		InlineClosureAtYieldSite(ii.Call, yb, j, closure)
	}
	return ii
}

// InlineClosureAtYieldSite replaces the Yield at index i of block b
// with a renamed copy of the body of closure,
// and returns the InlinerInfo used to copy it.
// The closure must be defined by b's scope.
func InlineClosureAtYieldSite(call CallBase, b *BasicBlock, i int, closure *Scope) *InlinerInfo {
	y, ok := b.Instrs[i].(*Yield)
	if !ok {
		panic(fmt.Sprintf("inlining closure at non-yield %s", b.Instrs[i]))
	}
	if closure.Parent != b.CFG.Scope {
		panic(fmt.Sprintf("closure %s is not defined by %s", closure.Name, b.CFG.Scope.Name))
	}
	g := b.CFG
	ii := NewInlinerInfo(call, g)
	tail := b.SplitAt(i, g.Scope.NewLabel())
	b.Instrs = b.Instrs[:i]
	ii.SetupYieldArgsAndYieldResult(y, b, closure.Arity)
	copyBody(ii, closure.CFG, tail, ii.YieldResult())
	b.Instrs = append(b.Instrs, &Jump{Target: ii.RenamedLabel(closure.CFG.Entry().Label), L: y.L})
	return ii
}

// copyBody copies the blocks of body into ii's caller CFG
// before the block tail.
// Each Return is replaced by a Copy of its value into res, if non-nil,
// and a Jump to tail.
func copyBody(ii *InlinerInfo, body *CFG, tail *BasicBlock, res *Variable) {
	var copies []*BasicBlock
	for _, b := range body.Blocks {
		c := ii.OrCreateRenamedBB(b)
		for _, r := range b.Instrs {
			ret, ok := r.(*Return)
			if !ok {
				r = r.CloneForInlining(ii)
				c.Instrs = append(c.Instrs, r)
				if y, ok := r.(*Yield); ok {
					ii.RecordYieldSite(c, y)
				}
				continue
			}
			if res != nil {
				c.Instrs = append(c.Instrs, &Copy{Res: res, Src: ret.Val.CloneForInlining(ii), L: ret.L})
			}
			c.Instrs = append(c.Instrs, &Jump{Target: tail.Label, L: ret.L})
		}
		copies = append(copies, c)
	}
	g := ii.CallerCFG
	g.InsertBlocks(g.IndexOf(tail), copies...)
}

// stabilizeCallOperands copies the variable receiver and arguments
// of the call at index i of b into fresh temporaries,
// so that the inlined body sees their values at the time of the call
// even if a yield reassigns the variables.
// It returns the new index of the call.
func stabilizeCallOperands(b *BasicBlock, i int) int {
	var recv *Operand
	var args []Operand
	switch call := b.Instrs[i].(type) {
	case *Call:
		recv, args = &call.Recv, call.Args
	case *NoResultCall:
		recv, args = &call.Recv, call.Args
	default:
		panic("impossible")
	}
	var copies []Instr
	stabilize := func(o *Operand) {
		v, ok := (*o).(*Variable)
		if !ok {
			return
		}
		tmp := b.CFG.Scope.NewTemporaryVariable()
		copies = append(copies, &Copy{Res: tmp, Src: v, L: b.Instrs[i].Loc()})
		*o = tmp
	}
	stabilize(recv)
	for j := range args {
		stabilize(&args[j])
	}
	if len(copies) == 0 {
		return i
	}
	instrs := append(append(append([]Instr{}, b.Instrs[:i]...), copies...), b.Instrs[i:]...)
	b.Instrs = instrs
	return i + len(copies)
}

// receivedClosures returns the renamed variables of body
// that are assigned only by a ReceiveClosure.
func receivedClosures(body *CFG, ii *InlinerInfo) map[*Variable]bool {
	assigns := make(map[*Variable]int)
	var recv []*Variable
	for _, b := range body.Blocks {
		for _, r := range b.Instrs {
			if r, ok := r.(ResultInstr); ok {
				assigns[r.Result()]++
			}
			if r, ok := r.(*ReceiveClosure); ok {
				recv = append(recv, r.Res)
			}
		}
	}
	vs := make(map[*Variable]bool)
	for _, v := range recv {
		if assigns[v] == 1 {
			vs[ii.RenamedVariable(v)] = true
		}
	}
	return vs
}

// CanInlineClosure returns whether the closure body
// can be inlined into a yield of the host scope.
// The closure must be defined by host, must not receive a block,
// and must not define closures of its own.
func CanInlineClosure(closure, host *Scope) bool {
	if closure.Parent != host || len(closure.CFG.Blocks) == 0 {
		return false
	}
	for _, b := range closure.CFG.Blocks {
		for _, r := range b.Instrs {
			if _, ok := r.(*ReceiveClosure); ok {
				return false
			}
			if definesClosure(r) {
				return false
			}
		}
	}
	return true
}

func definesClosure(r Instr) bool {
	for _, o := range r.Operands() {
		if _, ok := o.(*Closure); ok {
			return true
		}
	}
	return false
}

func findInstr(g *CFG, r Instr) (*BasicBlock, int) {
	for _, b := range g.Blocks {
		for i, x := range b.Instrs {
			if x == r {
				return b, i
			}
		}
	}
	panic(fmt.Sprintf("%s: instruction %s not found", g.Scope.Name, r))
}
