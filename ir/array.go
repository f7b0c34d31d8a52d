package ir

import "strings"

// An Array is a literal array whose elements are other operands.
//
// Arrays are shared by reference:
// every operand that contains an *Array refers to the same node,
// so a change to the value bound to one of its element variables
// is visible to all referrers.
type Array struct {
	operand
	Elts []Operand
}

// NewArray returns a new Array of the given elements.
func NewArray(elts ...Operand) *Array {
	return &Array{Elts: elts}
}

func (a *Array) HasKnownValue() bool {
	for _, e := range a.Elts {
		if !e.HasKnownValue() {
			return false
		}
	}
	return true
}

// Value returns the array with each element fully resolved.
func (a *Array) Value(m ValueMap) Operand {
	elts, changed := mapElts(a.Elts, func(e Operand) Operand { return e.Value(m) })
	if !changed {
		return a
	}
	return &Array{Elts: elts}
}

// SimplifiedOperand returns the array with each element simplified one level.
func (a *Array) SimplifiedOperand(m ValueMap, force bool) Operand {
	elts, changed := mapElts(a.Elts, func(e Operand) Operand { return e.SimplifiedOperand(m, force) })
	if !changed {
		return a
	}
	return &Array{Elts: elts}
}

// FetchCompileTimeArrayElement returns nil for a negative index,
// an index past the end, or an array containing a Splat,
// whose length is not known at compile time.
// The sub-array at len(a.Elts) is the empty array.
func (a *Array) FetchCompileTimeArrayElement(index int, getSubArray bool) Operand {
	if hasSplat(a) {
		return nil
	}
	switch {
	case index < 0:
		return nil
	case getSubArray && index <= len(a.Elts):
		return NewArray(append([]Operand{}, a.Elts[index:]...)...)
	case !getSubArray && index < len(a.Elts):
		return a.Elts[index]
	}
	return nil
}

func (a *Array) AddUsedVariables(vs []*Variable) []*Variable {
	for _, e := range a.Elts {
		vs = e.AddUsedVariables(vs)
	}
	return vs
}

func (a *Array) CloneForInlining(ii *InlinerInfo) Operand {
	elts, changed := mapElts(a.Elts, func(e Operand) Operand { return e.CloneForInlining(ii) })
	if !changed {
		return a
	}
	return &Array{Elts: elts}
}

func hasSplat(a *Array) bool {
	for _, e := range a.Elts {
		if _, ok := e.(*Splat); ok {
			return true
		}
	}
	return false
}

// mapElts returns the result of f applied to each element,
// and whether any element differs from the original.
// If none differ, the original slice is returned.
func mapElts(elts []Operand, f func(Operand) Operand) ([]Operand, bool) {
	var out []Operand
	for i, e := range elts {
		x := f(e)
		if x != e && out == nil {
			out = make([]Operand, len(elts))
			copy(out, elts[:i])
		}
		if out != nil {
			out[i] = x
		}
	}
	if out == nil {
		return elts, false
	}
	return out, true
}

// A Splat expands an array operand in place,
// for example as an element of an Array or a call argument.
type Splat struct {
	operand
	Array Operand
}

// NewSplat returns a new Splat of the operand.
func NewSplat(array Operand) *Splat { return &Splat{Array: array} }

func (s *Splat) Value(m ValueMap) Operand {
	if x := s.Array.Value(m); x != s.Array {
		return &Splat{Array: x}
	}
	return s
}

func (s *Splat) SimplifiedOperand(m ValueMap, force bool) Operand {
	if x := s.Array.SimplifiedOperand(m, force); x != s.Array {
		return &Splat{Array: x}
	}
	return s
}

func (s *Splat) AddUsedVariables(vs []*Variable) []*Variable {
	return s.Array.AddUsedVariables(vs)
}

func (s *Splat) CloneForInlining(ii *InlinerInfo) Operand {
	if x := s.Array.CloneForInlining(ii); x != s.Array {
		return &Splat{Array: x}
	}
	return s
}

func (a *Array) String() string { return a.buildString(new(strings.Builder)).String() }
func (s *Splat) String() string { return s.buildString(new(strings.Builder)).String() }

func (a *Array) buildString(s *strings.Builder) *strings.Builder {
	s.WriteRune('[')
	for i, e := range a.Elts {
		if i > 0 {
			s.WriteString(", ")
		}
		e.buildString(s)
	}
	s.WriteRune(']')
	return s
}

func (p *Splat) buildString(s *strings.Builder) *strings.Builder {
	s.WriteRune('*')
	p.Array.buildString(s)
	return s
}
