package ir

import (
	"strconv"
	"sync"
)

// inlineCount numbers InlinerInfos across the process.
// Every InlinerInfo takes a distinct count,
// which makes its variable prefix unique.
var inlineCount struct {
	sync.Mutex
	n int
}

func nextInlinePrefix() string {
	inlineCount.Lock()
	defer inlineCount.Unlock()
	prefix := "%in" + strconv.Itoa(inlineCount.n) + "_"
	inlineCount.n++
	return prefix
}

// A YieldSite is a Yield instruction
// and the block of the inlined copy that contains it.
type YieldSite struct {
	Block *BasicBlock
	Yield *Yield
}

// InlinerInfo is the state of inlining one call site.
//
// It renames the labels, variables, and blocks of the inlined body
// into fresh names of the caller's scope,
// and substitutes the arguments, receiver, and closure of the call.
// An InlinerInfo must not be shared between goroutines.
type InlinerInfo struct {
	CallerCFG *CFG
	Call      CallBase

	args     []Operand
	receiver Operand
	prefix   string

	labels    map[*Label]*Label
	vars      map[*Variable]*Variable
	blocks    map[*BasicBlock]*BasicBlock
	yieldSite []YieldSite

	// Set by SetupYieldArgsAndYieldResult
	// when the inlined body is a closure.
	inClosure   bool
	yieldArg    Operand
	yieldResult *Variable
}

// NewInlinerInfo returns an InlinerInfo for inlining call into caller.
// The call's arguments and receiver are read once, here.
func NewInlinerInfo(call CallBase, caller *CFG) *InlinerInfo {
	return &InlinerInfo{
		CallerCFG: caller,
		Call:      call,
		args:      append([]Operand{}, call.CallArgs()...),
		receiver:  call.Receiver(),
		prefix:    nextInlinePrefix(),
		labels:    make(map[*Label]*Label),
		vars:      make(map[*Variable]*Variable),
		blocks:    make(map[*BasicBlock]*BasicBlock),
	}
}

// HostScope returns the scope into which code is inlined.
func (ii *InlinerInfo) HostScope() *Scope { return ii.CallerCFG.Scope }

// Prefix returns the prefix of variables renamed by ii.
func (ii *InlinerInfo) Prefix() string { return ii.prefix }

// RenamedLabel returns the host label standing in for l,
// allocating one the first time l is seen.
func (ii *InlinerInfo) RenamedLabel(l *Label) *Label {
	n, ok := ii.labels[l]
	if !ok {
		n = ii.HostScope().NewLabel()
		ii.labels[l] = n
	}
	return n
}

// RenamedVariable returns the host variable standing in for v,
// allocating one the first time v is seen.
//
// When inlining a closure body,
// a variable of a scope enclosing the closure (Depth > 0)
// is the host's variable one scope level shallower,
// since the host is the closure's enclosing scope.
func (ii *InlinerInfo) RenamedVariable(v *Variable) *Variable {
	n, ok := ii.vars[v]
	if ok {
		return n
	}
	if ii.inClosure && v.Kind == LocalVar && v.Depth > 0 {
		n = ii.HostScope().LocalVariable(v.Name, v.Depth-1)
	} else {
		n = ii.HostScope().NewInlineVariable(ii.prefix, v)
	}
	ii.vars[v] = n
	return n
}

// RenamedBB returns the host block standing in for b, or nil if there is none yet.
func (ii *InlinerInfo) RenamedBB(b *BasicBlock) *BasicBlock { return ii.blocks[b] }

// OrCreateRenamedBB returns the host block standing in for b,
// creating one the first time b is seen.
// A created block is owned by the caller's CFG
// and is labeled with the renamed label of b.
// The caller is responsible for adding it to the CFG's block list.
func (ii *InlinerInfo) OrCreateRenamedBB(b *BasicBlock) *BasicBlock {
	n, ok := ii.blocks[b]
	if !ok {
		n = NewBasicBlock(ii.CallerCFG, ii.RenamedLabel(b.Label))
		ii.blocks[b] = n
	}
	return n
}

// ResetRenameMaps forgets the variable and label renamings,
// so that inlining the same body again
// allocates new host labels and variables
// distinct from those of the earlier copy.
// The block renamings, call arguments, and yield state are kept.
func (ii *InlinerInfo) ResetRenameMaps() {
	ii.labels = make(map[*Label]*Label)
	ii.vars = make(map[*Variable]*Variable)
}

// ArgsCount returns the number of positional call arguments.
func (ii *InlinerInfo) ArgsCount() int { return len(ii.args) }

// CallArg returns the index'th call argument,
// or nil if there are not that many arguments.
func (ii *InlinerInfo) CallArg(index int) Operand {
	if index < 0 || index >= len(ii.args) {
		return nil
	}
	return ii.args[index]
}

// CallArgRest returns CallArg(index) if restOfArgArray is false.
// Otherwise it returns an Array of the arguments
// from index to the end, which is empty if index is past the end.
func (ii *InlinerInfo) CallArgRest(index int, restOfArgArray bool) Operand {
	switch {
	case !restOfArgArray:
		return ii.CallArg(index)
	case index >= len(ii.args):
		return NewArray()
	default:
		return NewArray(append([]Operand{}, ii.args[index:]...)...)
	}
}

// CallReceiver returns the receiver of the call.
func (ii *InlinerInfo) CallReceiver() Operand { return ii.receiver }

// CallClosure returns the closure argument of the call,
// or NilValue if the call passes no block.
func (ii *InlinerInfo) CallClosure() Operand { return ii.Call.ClosureArg(NilValue) }

// CallResultVariable returns the result variable of the call,
// or nil if the call does not produce a result.
func (ii *InlinerInfo) CallResultVariable() *Variable {
	if r, ok := ii.Call.(ResultInstr); ok {
		return r.Result()
	}
	return nil
}

// RecordYieldSite records a Yield found in block b of the inlined copy.
func (ii *InlinerInfo) RecordYieldSite(b *BasicBlock, y *Yield) {
	ii.yieldSite = append(ii.yieldSite, YieldSite{Block: b, Yield: y})
}

// YieldSites returns the recorded yield sites in the order recorded.
func (ii *InlinerInfo) YieldSites() []YieldSite { return ii.yieldSite }

// SetupYieldArgsAndYieldResult prepares ii to inline
// the body of a closure of the given arity at the yield y,
// found in block yieldBlock of the host.
//
// The closure receives its arguments from YieldArg:
// the empty array if nothing is yielded or the arity is 0,
// the yielded operand itself if it is a literal Array,
// and otherwise a new temporary assigned by a ToAry
// that is added to yieldBlock.
// The closure's result is written to YieldResult, the result of y.
//
// TODO: a literal Array yielded to a closure of arity 1
// should bind the whole array to its parameter, as Ruby does,
// not its first element.
func (ii *InlinerInfo) SetupYieldArgsAndYieldResult(y *Yield, yieldBlock *BasicBlock, arity Arity) {
	ii.inClosure = true
	switch _, isArray := y.Arg.(*Array); {
	case y.Arg == nil || arity.Value() == 0:
		ii.yieldArg = NewArray()
	case isArray:
		ii.yieldArg = y.Arg
	default:
		tmp := ii.HostScope().NewTemporaryVariable()
		yieldBlock.AddInstr(&ToAry{Res: tmp, Src: y.Arg, L: y.L})
		ii.yieldArg = tmp
	}
	ii.yieldResult = y.Res
}

// InliningClosure reports whether ii is inlining a closure body,
// that is, whether SetupYieldArgsAndYieldResult has been called.
func (ii *InlinerInfo) InliningClosure() bool { return ii.inClosure }

// YieldArg returns the operand holding the arguments of an inlined closure.
func (ii *InlinerInfo) YieldArg() Operand { return ii.yieldArg }

// YieldResult returns the variable receiving the result of an inlined closure.
func (ii *InlinerInfo) YieldResult() *Variable { return ii.yieldResult }
