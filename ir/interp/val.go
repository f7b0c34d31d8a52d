package interp

import (
	"strconv"
	"strings"

	"github.com/ConradIrwin/rubyir/ir"
)

// A Val is a run-time value.
type Val interface {
	String() string
}

type Int int64

func (v Int) String() string { return strconv.FormatInt(int64(v), 10) }

type Float float64

func (v Float) String() string { return ir.NewFloat(float64(v)).String() }

type Str string

func (v Str) String() string { return string(v) }

type Sym string

func (v Sym) String() string { return ":" + string(v) }

type Bool bool

func (v Bool) String() string { return strconv.FormatBool(bool(v)) }

type Nil struct{}

func (Nil) String() string { return "nil" }

// Main is the receiver of top-level methods.
type Main struct{}

func (Main) String() string { return "main" }

// An Array is a mutable array.
// Copies of an Array value share their elements.
type Array struct {
	Elems []Val
}

func (a *Array) String() string {
	var s strings.Builder
	s.WriteRune('[')
	for i, e := range a.Elems {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(inspect(e))
	}
	s.WriteRune(']')
	return s.String()
}

// A Proc is a closure along with the frame in which it was created.
type Proc struct {
	Scope *ir.Scope
	env   *env
}

func (p *Proc) String() string { return "&" + p.Scope.Name }

func inspect(v Val) string {
	if s, ok := v.(Str); ok {
		return strconv.Quote(string(s))
	}
	return v.String()
}

func truthy(v Val) bool {
	switch v := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(v)
	}
	return true
}

// toAry converts v to an array:
// an array is itself, nil is empty, and anything else is wrapped.
func toAry(v Val) *Array {
	switch v := v.(type) {
	case *Array:
		return v
	case Nil:
		return &Array{}
	}
	return &Array{Elems: []Val{v}}
}

func equal(a, b Val) bool {
	switch a := a.(type) {
	case Int:
		if f, ok := b.(Float); ok {
			return Float(a) == f
		}
	case Float:
		if i, ok := b.(Int); ok {
			return a == Float(i)
		}
	case *Array:
		b, ok := b.(*Array)
		if !ok || len(a.Elems) != len(b.Elems) {
			return false
		}
		for i := range a.Elems {
			if !equal(a.Elems[i], b.Elems[i]) {
				return false
			}
		}
		return true
	}
	return a == b
}
