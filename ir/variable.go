package ir

import (
	"strconv"
	"strings"
)

type VarKind int

const (
	LocalVar VarKind = iota
	TemporaryVar
	// ClosureLocalVar is a variable declared by a closure body.
	ClosureLocalVar
)

// A Variable is a named storage location of a Scope.
//
// Variables are interned by their Scope,
// so two *Variables are the same variable
// if and only if they are the same pointer.
type Variable struct {
	operand
	Name string
	Kind VarKind
	// Depth is the number of closure scopes
	// between the use and the declaring scope.
	// It is always 0 for temporaries.
	Depth int
	Scope *Scope
}

func (v *Variable) Value(m ValueMap) Operand {
	x, ok := m[v]
	if !ok || x == Operand(v) {
		return v
	}
	return x.Value(m)
}

func (v *Variable) SimplifiedOperand(m ValueMap, force bool) Operand {
	x, ok := m[v]
	if !ok || !force && !x.CanCopyPropagate() {
		return v
	}
	return x
}

func (v *Variable) CanCopyPropagate() bool { return true }

func (v *Variable) AddUsedVariables(vs []*Variable) []*Variable {
	return append(vs, v)
}

func (v *Variable) CloneForInlining(ii *InlinerInfo) Operand {
	return ii.RenamedVariable(v)
}

// Self is the receiver of the method being executed.
type Self struct{ operand }

// SelfValue is the self operand.
var SelfValue = &Self{}

func (s *Self) Value(ValueMap) Operand                      { return s }
func (s *Self) SimplifiedOperand(ValueMap, bool) Operand    { return s }
func (s *Self) AddUsedVariables(vs []*Variable) []*Variable { return vs }

// CloneForInlining returns the receiver of the inlined call.
// A closure is inlined into its defining scope,
// so within a closure body self is unchanged.
func (s *Self) CloneForInlining(ii *InlinerInfo) Operand {
	if ii.InliningClosure() {
		return s
	}
	return ii.CallReceiver()
}

// A Label names a BasicBlock.
type Label struct {
	operand
	Name string
}

func (l *Label) Value(ValueMap) Operand                      { return l }
func (l *Label) SimplifiedOperand(ValueMap, bool) Operand    { return l }
func (l *Label) AddUsedVariables(vs []*Variable) []*Variable { return vs }

func (l *Label) CloneForInlining(ii *InlinerInfo) Operand {
	return ii.RenamedLabel(l)
}

// A Closure is a block literal.
// Its body is the CFG of a ClosureScope.
type Closure struct {
	operand
	Scope *Scope
}

func (c *Closure) Value(ValueMap) Operand                      { return c }
func (c *Closure) SimplifiedOperand(ValueMap, bool) Operand    { return c }
func (c *Closure) AddUsedVariables(vs []*Variable) []*Variable { return vs }
func (c *Closure) CloneForInlining(*InlinerInfo) Operand       { return c }

func (v *Variable) String() string { return v.buildString(new(strings.Builder)).String() }
func (s *Self) String() string     { return s.buildString(new(strings.Builder)).String() }
func (l *Label) String() string    { return l.buildString(new(strings.Builder)).String() }
func (c *Closure) String() string  { return c.buildString(new(strings.Builder)).String() }

func (v *Variable) buildString(s *strings.Builder) *strings.Builder {
	s.WriteString(v.Name)
	if v.Depth > 0 {
		s.WriteRune('^')
		s.WriteString(strconv.Itoa(v.Depth))
	}
	return s
}

func (*Self) buildString(s *strings.Builder) *strings.Builder {
	s.WriteString("self")
	return s
}

func (l *Label) buildString(s *strings.Builder) *strings.Builder {
	s.WriteString(l.Name)
	return s
}

func (c *Closure) buildString(s *strings.Builder) *strings.Builder {
	s.WriteRune('&')
	s.WriteString(c.Scope.Name)
	return s
}
