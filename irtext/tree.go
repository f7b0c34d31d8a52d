package irtext

import "github.com/ConradIrwin/rubyir/loc"

type file struct {
	Scopes []*scopeDef
}

type scopeDef struct {
	Closure bool
	Name    ident
	Arity   *intLit // nil for methods
	Parent  ident   // Name is empty if unspecified
	Blocks  []*blockDef
	L       loc.Loc
}

type blockDef struct {
	Label  ident
	Instrs []instrNode
}

type ident struct {
	Name string
	L    loc.Loc
}

type instrNode interface {
	Loc() loc.Loc
}

// An assignInstr is an instruction with a result variable.
// Rhs is one of *callInstr, *copyInstr, *recvArgInstr,
// *recvClosureInstr, *yieldInstr, *toAryInstr, or *elemInstr.
type assignInstr struct {
	Res *varRef
	Rhs instrNode
	L   loc.Loc
}

type callInstr struct {
	Recv   operandNode
	Method string
	Args   []operandNode
	Block  operandNode // nil if unspecified
	L      loc.Loc
}

type jumpInstr struct {
	Target ident
	L      loc.Loc
}

type ifInstr struct {
	Cond operandNode
	Then ident
	Else ident
	L    loc.Loc
}

type returnInstr struct {
	Val operandNode
	L   loc.Loc
}

type copyInstr struct {
	Src operandNode
	L   loc.Loc
}

type recvArgInstr struct {
	Index *intLit
	Rest  bool
	L     loc.Loc
}

type recvClosureInstr struct {
	L loc.Loc
}

type yieldInstr struct {
	Block operandNode
	Arg   operandNode // nil if unspecified
	L     loc.Loc
}

type toAryInstr struct {
	Src operandNode
	L   loc.Loc
}

type elemInstr struct {
	Array operandNode
	Index *intLit
	Rest  bool
	L     loc.Loc
}

func (n *assignInstr) Loc() loc.Loc      { return n.L }
func (n *callInstr) Loc() loc.Loc        { return n.L }
func (n *jumpInstr) Loc() loc.Loc        { return n.L }
func (n *ifInstr) Loc() loc.Loc          { return n.L }
func (n *returnInstr) Loc() loc.Loc      { return n.L }
func (n *copyInstr) Loc() loc.Loc        { return n.L }
func (n *recvArgInstr) Loc() loc.Loc     { return n.L }
func (n *recvClosureInstr) Loc() loc.Loc { return n.L }
func (n *yieldInstr) Loc() loc.Loc       { return n.L }
func (n *toAryInstr) Loc() loc.Loc       { return n.L }
func (n *elemInstr) Loc() loc.Loc        { return n.L }

type operandNode interface {
	Loc() loc.Loc
}

type arrayLit struct {
	Elems []operandNode
	L     loc.Loc
}

type splat struct {
	Operand operandNode
	L       loc.Loc
}

type closureRef struct {
	Name string
	L    loc.Loc
}

type symbolLit struct {
	Name string
	L    loc.Loc
}

// A stringLit is a double-quoted string literal.
// Text includes the quotes and escape sequences.
type stringLit struct {
	Text string
	L    loc.Loc
}

type intLit struct {
	Text string
	L    loc.Loc
}

type floatLit struct {
	Text string
	L    loc.Loc
}

// A constLit is one of nil, true, false, or self.
type constLit struct {
	Name string
	L    loc.Loc
}

type varRef struct {
	Name  string
	Depth *intLit // nil if unspecified
	L     loc.Loc
}

func (n *arrayLit) Loc() loc.Loc   { return n.L }
func (n *splat) Loc() loc.Loc      { return n.L }
func (n *closureRef) Loc() loc.Loc { return n.L }
func (n *symbolLit) Loc() loc.Loc  { return n.L }
func (n *stringLit) Loc() loc.Loc  { return n.L }
func (n *intLit) Loc() loc.Loc     { return n.L }
func (n *floatLit) Loc() loc.Loc   { return n.L }
func (n *constLit) Loc() loc.Loc   { return n.L }
func (n *varRef) Loc() loc.Loc     { return n.L }
