package ir

import (
	"strings"

	"github.com/ConradIrwin/rubyir/loc"
)

// An Instr is an instruction of a BasicBlock.
type Instr interface {
	String() string
	buildString(*strings.Builder) *strings.Builder
	Loc() loc.Loc

	// Operands returns the operands read by the instruction.
	Operands() []Operand

	// CloneForInlining returns a copy of the instruction
	// with its operands and result renamed through ii.
	CloneForInlining(ii *InlinerInfo) Instr

	// SimplifyOperands replaces each operand of the instruction
	// with its SimplifiedOperand.
	SimplifyOperands(m ValueMap, force bool)
}

// A ResultInstr is an instruction that assigns a variable.
type ResultInstr interface {
	Instr
	Result() *Variable
}

// A Terminal is an instruction that ends a BasicBlock.
type Terminal interface {
	Instr
	Targets() []*Label
}

// CallBase is implemented by the call instructions.
type CallBase interface {
	Instr
	MethodName() string
	Receiver() Operand
	CallArgs() []Operand
	// ClosureArg returns the block argument of the call,
	// or def if the call passes no block.
	ClosureArg(def Operand) Operand
}

// UsedVariables returns the variables read by r.
func UsedVariables(r Instr) []*Variable {
	var vs []*Variable
	for _, o := range r.Operands() {
		vs = o.AddUsedVariables(vs)
	}
	return vs
}

type Copy struct {
	Res *Variable
	Src Operand
	L   loc.Loc
}

func (r *Copy) Result() *Variable   { return r.Res }
func (r *Copy) Operands() []Operand { return []Operand{r.Src} }
func (r *Copy) Loc() loc.Loc        { return r.L }

// Call is a method call whose result is assigned to Res.
type Call struct {
	Res    *Variable
	Recv   Operand
	Method string
	Args   []Operand
	// Block is the closure argument, or nil if there is none.
	Block Operand
	L     loc.Loc
}

func (r *Call) Result() *Variable   { return r.Res }
func (r *Call) Operands() []Operand { return callOperands(r.Recv, r.Args, r.Block) }
func (r *Call) Loc() loc.Loc        { return r.L }
func (r *Call) MethodName() string  { return r.Method }
func (r *Call) Receiver() Operand   { return r.Recv }
func (r *Call) CallArgs() []Operand { return r.Args }

func (r *Call) ClosureArg(def Operand) Operand {
	if r.Block == nil {
		return def
	}
	return r.Block
}

// NoResultCall is a method call whose result is discarded.
type NoResultCall struct {
	Recv   Operand
	Method string
	Args   []Operand
	Block  Operand
	L      loc.Loc
}

func (r *NoResultCall) Operands() []Operand { return callOperands(r.Recv, r.Args, r.Block) }
func (r *NoResultCall) Loc() loc.Loc        { return r.L }
func (r *NoResultCall) MethodName() string  { return r.Method }
func (r *NoResultCall) Receiver() Operand   { return r.Recv }
func (r *NoResultCall) CallArgs() []Operand { return r.Args }

func (r *NoResultCall) ClosureArg(def Operand) Operand {
	if r.Block == nil {
		return def
	}
	return r.Block
}

func callOperands(recv Operand, args []Operand, block Operand) []Operand {
	ops := append([]Operand{recv}, args...)
	if block != nil {
		ops = append(ops, block)
	}
	return ops
}

// ReceiveArg assigns the Index'th argument of the method or closure.
// If Rest is set, it assigns an Array
// of all arguments from Index to the end.
type ReceiveArg struct {
	Res   *Variable
	Index int
	Rest  bool
	L     loc.Loc
}

func (r *ReceiveArg) Result() *Variable { return r.Res }
func (*ReceiveArg) Operands() []Operand { return nil }
func (r *ReceiveArg) Loc() loc.Loc      { return r.L }

// ReceiveClosure assigns the block argument of the method,
// or nil if there is none.
type ReceiveClosure struct {
	Res *Variable
	L   loc.Loc
}

func (r *ReceiveClosure) Result() *Variable { return r.Res }
func (*ReceiveClosure) Operands() []Operand { return nil }
func (r *ReceiveClosure) Loc() loc.Loc      { return r.L }

// Yield calls Block with Arg and assigns the result.
type Yield struct {
	Res   *Variable
	Block Operand
	// Arg is nil if nothing is yielded.
	Arg Operand
	L   loc.Loc
}

func (r *Yield) Result() *Variable { return r.Res }
func (r *Yield) Loc() loc.Loc      { return r.L }

func (r *Yield) Operands() []Operand {
	if r.Arg == nil {
		return []Operand{r.Block}
	}
	return []Operand{r.Block, r.Arg}
}

// ToAry assigns Src coerced to an array:
// an array is unchanged, nil is the empty array,
// and any other value is wrapped in a one-element array.
type ToAry struct {
	Res *Variable
	Src Operand
	L   loc.Loc
}

func (r *ToAry) Result() *Variable   { return r.Res }
func (r *ToAry) Operands() []Operand { return []Operand{r.Src} }
func (r *ToAry) Loc() loc.Loc        { return r.L }

// ArrayElement assigns the Index'th element of Array,
// or nil if there is no such element.
// If Rest is set, it assigns the sub-array starting at Index.
type ArrayElement struct {
	Res   *Variable
	Array Operand
	Index int
	Rest  bool
	L     loc.Loc
}

func (r *ArrayElement) Result() *Variable   { return r.Res }
func (r *ArrayElement) Operands() []Operand { return []Operand{r.Array} }
func (r *ArrayElement) Loc() loc.Loc        { return r.L }

type Jump struct {
	Target *Label
	L      loc.Loc
}

func (*Jump) Operands() []Operand { return nil }
func (r *Jump) Loc() loc.Loc      { return r.L }
func (r *Jump) Targets() []*Label { return []*Label{r.Target} }

// If branches to Then if Cond is truthy
// (neither nil nor false), otherwise to Else.
type If struct {
	Cond Operand
	Then *Label
	Else *Label
	L    loc.Loc
}

func (r *If) Operands() []Operand { return []Operand{r.Cond} }
func (r *If) Loc() loc.Loc        { return r.L }
func (r *If) Targets() []*Label   { return []*Label{r.Then, r.Else} }

type Return struct {
	Val Operand
	L   loc.Loc
}

func (r *Return) Operands() []Operand { return []Operand{r.Val} }
func (r *Return) Loc() loc.Loc        { return r.L }
func (*Return) Targets() []*Label     { return nil }
