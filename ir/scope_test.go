package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScopeVariablesInterned(t *testing.T) {
	m := NewScope("main", MethodScope)
	if m.LocalVariable("x", 0) != m.LocalVariable("x", 0) {
		t.Errorf("LocalVariable is not interned")
	}
	if m.LocalVariable("x", 0) == m.TemporaryVariable("x") {
		t.Errorf("local and temporary variables of the same name are the same")
	}
	c := NewScope("blk", ClosureScope)
	if k := c.LocalVariable("y", 0).Kind; k != ClosureLocalVar {
		t.Errorf("closure depth-0 local kind=%d, want ClosureLocalVar", k)
	}
	if k := c.LocalVariable("y", 1).Kind; k != LocalVar {
		t.Errorf("closure depth-1 local kind=%d, want LocalVar", k)
	}
	if c.LocalVariable("y", 0) == c.LocalVariable("y", 1) {
		t.Errorf("variables of different depths are the same")
	}
}

func TestNewTemporaryVariable(t *testing.T) {
	s := NewScope("main", MethodScope)
	s.TemporaryVariable("%v1")
	var got []string
	for i := 0; i < 3; i++ {
		got = append(got, s.NewTemporaryVariable().Name)
	}
	if diff := cmp.Diff([]string{"%v0", "%v2", "%v3"}, got); diff != "" {
		t.Errorf("NewTemporaryVariable: %s", diff)
	}
	if n := s.Variables(); n != 4 {
		t.Errorf("Variables()=%d, want 4", n)
	}
}

func TestNewInlineVariable(t *testing.T) {
	s := NewScope("main", MethodScope)
	s.TemporaryVariable("%in0_%v0")
	s.LocalVariable("%in0_%v0_1", 0)
	callee := NewScope("f", MethodScope)
	v := callee.TemporaryVariable("%v0")

	var got []string
	for i := 0; i < 2; i++ {
		r := s.NewInlineVariable("%in0_", v)
		if r.Kind != TemporaryVar {
			t.Errorf("%s has kind %d, want TemporaryVar", r, r.Kind)
		}
		got = append(got, r.Name)
	}
	if diff := cmp.Diff([]string{"%in0_%v0_2", "%in0_%v0_3"}, got); diff != "" {
		t.Errorf("NewInlineVariable: %s", diff)
	}
	if r := s.NewInlineVariable("%in1_", callee.LocalVariable("x", 0)); r.Name != "%in1_x" || r.Kind != LocalVar {
		t.Errorf("NewInlineVariable of an unused name gave %s kind %d", r, r.Kind)
	}
}

func TestNewLabel(t *testing.T) {
	s := NewScope("main", MethodScope)
	l0 := s.Label("L0")
	if s.Label("L0") != l0 {
		t.Errorf("Label is not interned")
	}
	if l := s.NewLabel(); l.Name != "L1" {
		t.Errorf("NewLabel()=%s, want L1", l)
	}
	if l := s.NewLabel(); l.Name != "L2" {
		t.Errorf("NewLabel()=%s, want L2", l)
	}
}

func TestSplitAt(t *testing.T) {
	s := NewScope("main", MethodScope)
	g := s.CFG
	b := NewBasicBlock(g, s.Label("L0"))
	g.AddBlock(b)
	end := NewBasicBlock(g, s.Label("L9"))
	end.Instrs = []Instr{&Return{Val: NilValue}}
	g.AddBlock(end)
	x := s.LocalVariable("x", 0)
	b.Instrs = []Instr{
		&Copy{Res: x, Src: NewFixnum(1)},
		&NoResultCall{Recv: SelfValue, Method: "puts", Args: []Operand{x}},
		&Jump{Target: end.Label},
	}
	tail := b.SplitAt(1, s.NewLabel())
	if diff := cmp.Diff("L0:\n\tx = copy 1\n\tcall self puts(x)", b.String()); diff != "" {
		t.Errorf("head: %s", diff)
	}
	if diff := cmp.Diff("L1:\n\tjump L9", tail.String()); diff != "" {
		t.Errorf("tail: %s", diff)
	}
	if i := g.IndexOf(tail); i != 1 {
		t.Errorf("tail index=%d, want 1", i)
	}
	if g.Block(tail.Label) != tail {
		t.Errorf("tail is not indexed by its label")
	}

	b.AddInstr(&Jump{Target: tail.Label})
	b.AddInstr(&Copy{Res: x, Src: NewFixnum(2)})
	if diff := cmp.Diff("L0:\n\tx = copy 1\n\tcall self puts(x)\n\tx = copy 2\n\tjump L1", b.String()); diff != "" {
		t.Errorf("AddInstr: %s", diff)
	}
}

func TestInsertBlocksPanics(t *testing.T) {
	s := NewScope("main", MethodScope)
	other := NewScope("other", MethodScope)
	b := NewBasicBlock(s.CFG, s.Label("L0"))
	s.CFG.AddBlock(b)
	for _, test := range []struct {
		name string
		b    *BasicBlock
	}{
		{"duplicate", NewBasicBlock(s.CFG, s.Label("L0"))},
		{"foreign", NewBasicBlock(other.CFG, other.Label("L1"))},
	} {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("InsertBlocks did not panic")
				}
			}()
			s.CFG.InsertBlocks(0, test.b)
		})
	}
}
