package ir

import (
	"strconv"
	"strings"
)

// An Operand is an immutable value or reference in the IR.
//
// Operands are never modified after construction.
// Passes that rewrite an operand produce a new Operand
// (or return the receiver unchanged),
// and record substitutions in a ValueMap.
type Operand interface {
	String() string
	buildString(*strings.Builder) *strings.Builder

	// HasKnownValue reports whether the operand's value
	// is fixed at compile time.
	HasKnownValue() bool

	// CanCopyPropagate reports whether a use of a variable
	// bound to this operand may be replaced by the operand itself.
	// Compound values return false,
	// since replacing would break sharing between referrers.
	CanCopyPropagate() bool

	// Value returns the operand with every referenced operand
	// recursively substituted through m.
	Value(m ValueMap) Operand

	// SimplifiedOperand returns the operand with its immediate
	// components substituted through m.
	// Nested compound values are not recursed into,
	// so later changes to m remain observable through them.
	// If force is set, variables bound to values that
	// cannot be copy propagated are substituted anyway.
	SimplifiedOperand(m ValueMap, force bool) Operand

	// FetchCompileTimeArrayElement returns the element at index,
	// or the sub-array starting at index if getSubArray is set.
	// It returns nil if the value cannot be determined at compile time.
	FetchCompileTimeArrayElement(index int, getSubArray bool) Operand

	// AddUsedVariables appends every variable referenced
	// by the operand to vs and returns the result.
	AddUsedVariables(vs []*Variable) []*Variable

	// CloneForInlining returns an equivalent operand
	// with variables and labels renamed through ii.
	CloneForInlining(ii *InlinerInfo) Operand
}

// A ValueMap maps operands to their currently known values.
// Operands are keyed by identity.
type ValueMap map[Operand]Operand

// operand implements the defaults of the Operand interface.
// It intentionally does not implement AddUsedVariables.
type operand struct{}

func (operand) HasKnownValue() bool                            { return false }
func (operand) CanCopyPropagate() bool                         { return false }
func (operand) FetchCompileTimeArrayElement(int, bool) Operand { return nil }

// literal is embedded by the immutable literal operands.
type literal struct{ operand }

func (literal) HasKnownValue() bool                         { return true }
func (literal) CanCopyPropagate() bool                      { return true }
func (literal) AddUsedVariables(vs []*Variable) []*Variable { return vs }

type Fixnum struct {
	literal
	Int int64
}

// NewFixnum returns a new Fixnum literal.
func NewFixnum(x int64) *Fixnum { return &Fixnum{Int: x} }

func (f *Fixnum) Value(ValueMap) Operand                   { return f }
func (f *Fixnum) SimplifiedOperand(ValueMap, bool) Operand { return f }
func (f *Fixnum) CloneForInlining(*InlinerInfo) Operand    { return f }

type Float struct {
	literal
	Float float64
}

// NewFloat returns a new Float literal.
func NewFloat(x float64) *Float { return &Float{Float: x} }

func (f *Float) Value(ValueMap) Operand                   { return f }
func (f *Float) SimplifiedOperand(ValueMap, bool) Operand { return f }
func (f *Float) CloneForInlining(*InlinerInfo) Operand    { return f }

type StringLiteral struct {
	literal
	Str string
}

// NewString returns a new StringLiteral.
func NewString(s string) *StringLiteral { return &StringLiteral{Str: s} }

func (s *StringLiteral) Value(ValueMap) Operand                   { return s }
func (s *StringLiteral) SimplifiedOperand(ValueMap, bool) Operand { return s }
func (s *StringLiteral) CloneForInlining(*InlinerInfo) Operand    { return s }

type Symbol struct {
	literal
	Name string
}

// NewSymbol returns a new Symbol literal.
func NewSymbol(name string) *Symbol { return &Symbol{Name: name} }

func (s *Symbol) Value(ValueMap) Operand                   { return s }
func (s *Symbol) SimplifiedOperand(ValueMap, bool) Operand { return s }
func (s *Symbol) CloneForInlining(*InlinerInfo) Operand    { return s }

type Boolean struct {
	literal
	Bool bool
}

var (
	True  = &Boolean{Bool: true}
	False = &Boolean{Bool: false}
)

func (b *Boolean) Value(ValueMap) Operand                   { return b }
func (b *Boolean) SimplifiedOperand(ValueMap, bool) Operand { return b }
func (b *Boolean) CloneForInlining(*InlinerInfo) Operand    { return b }

type Nil struct{ literal }

// NilValue is the nil literal.
// It is also the closure argument of a call that passes no block.
var NilValue = &Nil{}

func (n *Nil) Value(ValueMap) Operand                   { return n }
func (n *Nil) SimplifiedOperand(ValueMap, bool) Operand { return n }
func (n *Nil) CloneForInlining(*InlinerInfo) Operand    { return n }

func (f *Fixnum) String() string        { return f.buildString(new(strings.Builder)).String() }
func (f *Float) String() string         { return f.buildString(new(strings.Builder)).String() }
func (s *StringLiteral) String() string { return s.buildString(new(strings.Builder)).String() }
func (s *Symbol) String() string        { return s.buildString(new(strings.Builder)).String() }
func (b *Boolean) String() string       { return b.buildString(new(strings.Builder)).String() }
func (n *Nil) String() string           { return n.buildString(new(strings.Builder)).String() }

func (f *Fixnum) buildString(s *strings.Builder) *strings.Builder {
	s.WriteString(strconv.FormatInt(f.Int, 10))
	return s
}

func (f *Float) buildString(s *strings.Builder) *strings.Builder {
	str := strconv.FormatFloat(f.Float, 'g', -1, 64)
	if !strings.ContainsAny(str, ".eEIN") {
		str += ".0"
	}
	s.WriteString(str)
	return s
}

func (l *StringLiteral) buildString(s *strings.Builder) *strings.Builder {
	s.WriteString(strconv.Quote(l.Str))
	return s
}

func (l *Symbol) buildString(s *strings.Builder) *strings.Builder {
	s.WriteRune(':')
	s.WriteString(l.Name)
	return s
}

func (b *Boolean) buildString(s *strings.Builder) *strings.Builder {
	s.WriteString(strconv.FormatBool(b.Bool))
	return s
}

func (*Nil) buildString(s *strings.Builder) *strings.Builder {
	s.WriteString("nil")
	return s
}
