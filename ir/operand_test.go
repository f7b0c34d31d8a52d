package ir

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValueAndSimplifiedOperand(t *testing.T) {
	s := NewScope("main", MethodScope)
	a := s.LocalVariable("a", 0)
	b := s.LocalVariable("b", 0)
	inner := NewArray(NewFixnum(3), NewFixnum(4))
	m := ValueMap{a: NewFixnum(1), b: inner}
	c := NewArray(a, b)

	if got, want := c.Value(m).String(), "[1, [3, 4]]"; got != want {
		t.Errorf("Value=%s, want %s", got, want)
	}
	simple := c.SimplifiedOperand(m, false)
	if got, want := simple.String(), "[1, b]"; got != want {
		t.Errorf("SimplifiedOperand(false)=%s, want %s", got, want)
	}
	if simple.(*Array).Elts[1] != Operand(b) {
		t.Errorf("SimplifiedOperand(false) did not keep variable b")
	}
	forced := c.SimplifiedOperand(m, true)
	if got, want := forced.String(), "[1, [3, 4]]"; got != want {
		t.Errorf("SimplifiedOperand(true)=%s, want %s", got, want)
	}
	if forced.(*Array).Elts[1] != Operand(inner) {
		t.Errorf("SimplifiedOperand(true) copied the bound array")
	}
	if c.String() != "[a, b]" {
		t.Errorf("simplifying modified the operand: %s", c)
	}

	// Later bindings are seen through both the original and the simplified operand.
	m[b] = NewArray(NewFixnum(3), NewFixnum(5))
	if got, want := c.Value(m).String(), "[1, [3, 5]]"; got != want {
		t.Errorf("Value after rebinding b=%s, want %s", got, want)
	}
	if got, want := simple.Value(m).String(), "[1, [3, 5]]"; got != want {
		t.Errorf("simplified Value after rebinding b=%s, want %s", got, want)
	}
	if got := c.SimplifiedOperand(ValueMap{}, false); got != Operand(c) {
		t.Errorf("SimplifiedOperand with no substitutions returned a new operand %s", got)
	}
}

func TestVariableValueChain(t *testing.T) {
	s := NewScope("main", MethodScope)
	x := s.LocalVariable("x", 0)
	y := s.LocalVariable("y", 0)
	z := s.TemporaryVariable("%z")
	m := ValueMap{x: y, y: z, z: NewSymbol("done")}
	if got := x.Value(m).String(); got != ":done" {
		t.Errorf("x.Value=%s, want :done", got)
	}
	if got := x.SimplifiedOperand(m, false); got != Operand(y) {
		t.Errorf("x.SimplifiedOperand=%s, want y", got)
	}
	unbound := s.LocalVariable("w", 0)
	if got := unbound.Value(m); got != Operand(unbound) {
		t.Errorf("unbound Value=%s, want w", got)
	}
}

func TestFetchCompileTimeArrayElement(t *testing.T) {
	s := NewScope("main", MethodScope)
	x := s.LocalVariable("x", 0)
	a := NewArray(NewFixnum(1), NewFixnum(2), NewFixnum(3))
	splat := NewArray(NewFixnum(1), NewSplat(x))
	tests := []struct {
		a     *Array
		index int
		rest  bool
		want  string
	}{
		{a: a, index: 0, want: "1"},
		{a: a, index: 2, want: "3"},
		{a: a, index: 3, want: "<nil>"},
		{a: a, index: -1, want: "<nil>"},
		{a: a, index: 1, rest: true, want: "[2, 3]"},
		{a: a, index: 0, rest: true, want: "[1, 2, 3]"},
		{a: a, index: 3, rest: true, want: "[]"},
		{a: a, index: 4, rest: true, want: "<nil>"},
		{a: a, index: -1, rest: true, want: "<nil>"},
		{a: NewArray(), index: 0, want: "<nil>"},
		{a: NewArray(), index: 0, rest: true, want: "[]"},
		{a: splat, index: 0, want: "<nil>"},
		{a: splat, index: 1, rest: true, want: "<nil>"},
	}
	for _, test := range tests {
		got := "<nil>"
		if o := test.a.FetchCompileTimeArrayElement(test.index, test.rest); o != nil {
			got = o.String()
		}
		if got != test.want {
			t.Errorf("%s.FetchCompileTimeArrayElement(%d, %v)=%s, want %s",
				test.a, test.index, test.rest, got, test.want)
		}
	}
	if a.String() != "[1, 2, 3]" {
		t.Errorf("fetching modified the array: %s", a)
	}
}

func TestFetchCompileTimeArrayElementScalar(t *testing.T) {
	s := NewScope("main", MethodScope)
	for _, o := range []Operand{
		NewFixnum(1),
		NewString("x"),
		NilValue,
		s.LocalVariable("v", 0),
		SelfValue,
	} {
		if got := o.FetchCompileTimeArrayElement(0, false); got != nil {
			t.Errorf("%s.FetchCompileTimeArrayElement(0, false)=%s, want nil", o, got)
		}
	}
}

func TestHasKnownValue(t *testing.T) {
	s := NewScope("main", MethodScope)
	x := s.LocalVariable("x", 0)
	tests := []struct {
		o    Operand
		want bool
	}{
		{NewFixnum(1), true},
		{NewFloat(1.5), true},
		{NewString("s"), true},
		{NewSymbol("s"), true},
		{True, true},
		{NilValue, true},
		{NewArray(NewFixnum(1), NewString("s")), true},
		{NewArray(NewFixnum(1), x), false},
		{x, false},
		{SelfValue, false},
		{NewSplat(x), false},
	}
	for _, test := range tests {
		if got := test.o.HasKnownValue(); got != test.want {
			t.Errorf("%s.HasKnownValue()=%v, want %v", test.o, got, test.want)
		}
	}
}

func TestAddUsedVariables(t *testing.T) {
	s := NewScope("main", MethodScope)
	x := s.LocalVariable("x", 0)
	y := s.LocalVariable("y", 0)
	z := s.TemporaryVariable("%z")
	o := NewArray(x, NewFixnum(1), NewArray(y, NewSplat(z)))
	var got []string
	for _, v := range o.AddUsedVariables(nil) {
		got = append(got, v.Name)
	}
	if diff := cmp.Diff([]string{"x", "y", "%z"}, got); diff != "" {
		t.Errorf("AddUsedVariables: %s", diff)
	}
	if vs := NewFixnum(5).AddUsedVariables(nil); len(vs) != 0 {
		t.Errorf("literal used variables %v", vs)
	}
}

func TestOperandString(t *testing.T) {
	m := NewScope("main", MethodScope)
	c := NewScope("blk", ClosureScope)
	c.Parent = m
	tests := []struct {
		o    Operand
		want string
	}{
		{NewFixnum(-12), "-12"},
		{NewFloat(1), "1.0"},
		{NewFloat(2.5), "2.5"},
		{NewFloat(1e100), "1e+100"},
		{NewFloat(math.Inf(1)), "+Inf"},
		{NewString("a\"b\n"), `"a\"b\n"`},
		{NewSymbol("each"), ":each"},
		{True, "true"},
		{False, "false"},
		{NilValue, "nil"},
		{SelfValue, "self"},
		{NewArray(), "[]"},
		{NewArray(NewFixnum(1), NewSplat(NewArray(NewFixnum(2)))), "[1, *[2]]"},
		{m.LocalVariable("x", 0), "x"},
		{c.LocalVariable("x", 1), "x^1"},
		{m.TemporaryVariable("%v0"), "%v0"},
		{&Closure{Scope: c}, "&blk"},
		{m.Label("L3"), "L3"},
	}
	for _, test := range tests {
		if got := test.o.String(); got != test.want {
			t.Errorf("got %s, want %s", got, test.want)
		}
	}
}
