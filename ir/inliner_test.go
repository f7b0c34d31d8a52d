package ir

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// newCallSite returns a caller CFG with a single block
// holding call, and the block.
func newCallSite(call Instr) (*CFG, *BasicBlock) {
	s := NewScope("main", MethodScope)
	b := NewBasicBlock(s.CFG, s.Label("L0"))
	b.Instrs = []Instr{call, &Return{Val: NilValue}}
	s.CFG.AddBlock(b)
	return s.CFG, b
}

func TestRenamedVariable(t *testing.T) {
	callee := NewScope("f", MethodScope)
	x := callee.LocalVariable("x", 0)
	y := callee.LocalVariable("y", 0)
	tmp := callee.TemporaryVariable("%v0")
	call := &NoResultCall{Recv: SelfValue, Method: "f"}
	g, _ := newCallSite(call)
	ii := NewInlinerInfo(call, g)

	rx := ii.RenamedVariable(x)
	if ii.RenamedVariable(x) != rx {
		t.Errorf("renaming x twice gave different variables")
	}
	if ii.RenamedVariable(y) == rx {
		t.Errorf("x and y renamed to the same variable")
	}
	if rx.Scope != g.Scope {
		t.Errorf("renamed variable belongs to %s, want main", rx.Scope.Name)
	}
	if !strings.HasPrefix(rx.Name, ii.Prefix()) || !strings.HasSuffix(rx.Name, "x") {
		t.Errorf("renamed x is %s, want prefix %s", rx.Name, ii.Prefix())
	}
	if rt := ii.RenamedVariable(tmp); rt.Kind != TemporaryVar {
		t.Errorf("renamed temporary has kind %d", rt.Kind)
	}

	other := NewInlinerInfo(call, g)
	if other.Prefix() == ii.Prefix() {
		t.Errorf("two InlinerInfos have prefix %s", ii.Prefix())
	}
	if other.RenamedVariable(x) == rx {
		t.Errorf("two InlinerInfos renamed x to the same variable")
	}
}

func TestRenamedVariableInClosure(t *testing.T) {
	g, b := newCallSite(&NoResultCall{Recv: SelfValue, Method: "f"})
	blk := NewScope("blk", ClosureScope)
	blk.Parent = g.Scope
	y := &Yield{Res: g.Scope.LocalVariable("r", 0), Block: &Closure{Scope: blk}}
	b.Instrs = append([]Instr{y}, b.Instrs...)

	ii := NewInlinerInfo(b.Instrs[1].(CallBase), g)
	ii.SetupYieldArgsAndYieldResult(y, b, 0)
	outer := ii.RenamedVariable(blk.LocalVariable("sum", 1))
	if outer != g.Scope.LocalVariable("sum", 0) {
		t.Errorf("sum^1 renamed to %s, want the host's sum", outer)
	}
	local := ii.RenamedVariable(blk.LocalVariable("e", 0))
	if local.Depth != 0 || !strings.HasPrefix(local.Name, ii.Prefix()) {
		t.Errorf("closure local e renamed to %s", local)
	}
	if got := SelfValue.CloneForInlining(ii); got != Operand(SelfValue) {
		t.Errorf("self in an inlined closure is %s, want self", got)
	}
}

func TestSelfCloneForMethod(t *testing.T) {
	s := NewScope("main", MethodScope)
	recv := s.TemporaryVariable("%v0")
	call := &Call{Res: s.LocalVariable("r", 0), Recv: recv, Method: "f"}
	g, _ := newCallSite(call)
	ii := NewInlinerInfo(call, g)
	if got := SelfValue.CloneForInlining(ii); got != Operand(recv) {
		t.Errorf("self in an inlined method is %s, want %s", got, recv)
	}
}

func TestRenamedLabelAndBlock(t *testing.T) {
	call := &NoResultCall{Recv: SelfValue, Method: "f"}
	g, _ := newCallSite(call)
	ii := NewInlinerInfo(call, g)
	callee := NewScope("f", MethodScope)
	l := callee.Label("L0")
	rl := ii.RenamedLabel(l)
	if ii.RenamedLabel(l) != rl {
		t.Errorf("renaming L0 twice gave different labels")
	}
	if rl.Name == "L0" {
		t.Errorf("renamed label collides with the caller's L0")
	}

	cb := NewBasicBlock(callee.CFG, l)
	if ii.RenamedBB(cb) != nil {
		t.Errorf("RenamedBB before creation is not nil")
	}
	rb := ii.OrCreateRenamedBB(cb)
	if ii.OrCreateRenamedBB(cb) != rb || ii.RenamedBB(cb) != rb {
		t.Errorf("OrCreateRenamedBB is not memoized")
	}
	if rb.CFG != g || rb.Label != rl {
		t.Errorf("renamed block has CFG %p and label %s, want %p and %s", rb.CFG, rb.Label, g, rl)
	}
	if g.IndexOf(rb) >= 0 {
		t.Errorf("OrCreateRenamedBB added the block to the CFG")
	}
}

func TestResetRenameMaps(t *testing.T) {
	call := &NoResultCall{Recv: SelfValue, Method: "f"}
	g, _ := newCallSite(call)
	ii := NewInlinerInfo(call, g)
	callee := NewScope("f", MethodScope)
	x := callee.LocalVariable("x", 0)
	l := callee.Label("L0")
	b := NewBasicBlock(callee.CFG, l)

	rx := ii.RenamedVariable(x)
	rl := ii.RenamedLabel(l)
	rb := ii.OrCreateRenamedBB(b)
	ii.ResetRenameMaps()
	if ii.RenamedLabel(l) == rl {
		t.Errorf("label renaming survived ResetRenameMaps")
	}
	if rx2 := ii.RenamedVariable(x); rx2 == rx || rx2.Name == rx.Name {
		t.Errorf("variable renaming survived ResetRenameMaps: %s and %s", rx, rx2)
	}
	if ii.RenamedBB(b) != rb {
		t.Errorf("block renaming did not survive ResetRenameMaps")
	}
}

func TestRenamedVariableAvoidsHostNames(t *testing.T) {
	call := &NoResultCall{Recv: SelfValue, Method: "f"}
	g, _ := newCallSite(call)
	ii := NewInlinerInfo(call, g)
	host := g.Scope
	hostTmp := host.TemporaryVariable(ii.Prefix() + "%v0")
	hostX := host.TemporaryVariable(ii.Prefix() + "x")

	callee := NewScope("f", MethodScope)
	calleeTmp := callee.TemporaryVariable("%v0")
	calleeLocal := callee.LocalVariable("x", 0)

	if got := ii.RenamedVariable(calleeTmp); got == hostTmp || got.Name == hostTmp.Name {
		t.Errorf("%s renamed to the host's %s", calleeTmp, hostTmp)
	}
	// A local is printed without its kind,
	// so it must not share a name with a temporary either.
	if got := ii.RenamedVariable(calleeLocal); got.Name == hostX.Name {
		t.Errorf("%s renamed to %s, which names the host's %s", calleeLocal, got, hostX)
	}
}

func TestCallArgs(t *testing.T) {
	s := NewScope("main", MethodScope)
	x := s.LocalVariable("x", 0)
	call := &Call{
		Res:    s.LocalVariable("r", 0),
		Recv:   SelfValue,
		Method: "f",
		Args:   []Operand{NewFixnum(1), x, NewFixnum(2)},
	}
	g, _ := newCallSite(call)
	ii := NewInlinerInfo(call, g)
	if n := ii.ArgsCount(); n != 3 {
		t.Errorf("ArgsCount()=%d, want 3", n)
	}
	tests := []struct {
		index int
		rest  bool
		want  string
	}{
		{index: 0, want: "1"},
		{index: 1, want: "x"},
		{index: 3, want: "<nil>"},
		{index: -1, want: "<nil>"},
		{index: 0, rest: true, want: "[1, x, 2]"},
		{index: 1, rest: true, want: "[x, 2]"},
		{index: 3, rest: true, want: "[]"},
		{index: 5, rest: true, want: "[]"},
	}
	for _, test := range tests {
		got := "<nil>"
		if o := ii.CallArgRest(test.index, test.rest); o != nil {
			got = o.String()
		}
		if got != test.want {
			t.Errorf("CallArgRest(%d, %v)=%s, want %s", test.index, test.rest, got, test.want)
		}
	}
	if ii.CallArg(3) != nil {
		t.Errorf("CallArg(3) is not nil")
	}

	// Arguments are read when the InlinerInfo is made.
	call.Args[1] = NewFixnum(100)
	if got := ii.CallArg(1); got != Operand(x) {
		t.Errorf("CallArg(1)=%s after changing the call, want x", got)
	}
	if got := ii.CallResultVariable(); got != call.Res {
		t.Errorf("CallResultVariable()=%v, want r", got)
	}
	if got := ii.CallClosure(); got != Operand(NilValue) {
		t.Errorf("CallClosure()=%s, want nil", got)
	}
	if got := ii.CallReceiver(); got != Operand(SelfValue) {
		t.Errorf("CallReceiver()=%s, want self", got)
	}
}

func TestCallResultVariableNoResult(t *testing.T) {
	blk := NewScope("blk", ClosureScope)
	c := &Closure{Scope: blk}
	call := &NoResultCall{Recv: SelfValue, Method: "f", Block: c}
	g, _ := newCallSite(call)
	ii := NewInlinerInfo(call, g)
	if v := ii.CallResultVariable(); v != nil {
		t.Errorf("CallResultVariable()=%s, want nil", v)
	}
	if got := ii.CallClosure(); got != Operand(c) {
		t.Errorf("CallClosure()=%s, want &blk", got)
	}
}

func TestInlinerPrefixUnique(t *testing.T) {
	const n = 64
	call := &NoResultCall{Recv: SelfValue, Method: "f"}
	g, _ := newCallSite(call)
	prefixes := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			prefixes[i] = NewInlinerInfo(call, g).Prefix()
		}(i)
	}
	wg.Wait()
	seen := make(map[string]bool)
	for _, p := range prefixes {
		if seen[p] {
			t.Errorf("duplicate prefix %s", p)
		}
		seen[p] = true
	}
}

func TestRecordYieldSite(t *testing.T) {
	call := &NoResultCall{Recv: SelfValue, Method: "f"}
	g, b := newCallSite(call)
	ii := NewInlinerInfo(call, g)
	y0 := &Yield{Res: g.Scope.TemporaryVariable("%a"), Block: NilValue}
	y1 := &Yield{Res: g.Scope.TemporaryVariable("%b"), Block: NilValue}
	ii.RecordYieldSite(b, y0)
	ii.RecordYieldSite(b, y1)
	want := []YieldSite{{Block: b, Yield: y0}, {Block: b, Yield: y1}}
	got := ii.YieldSites()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("YieldSites()=%v, want %v", got, want)
	}
}

func TestSetupYieldArgsAndYieldResult(t *testing.T) {
	lit := NewArray(NewFixnum(1), NewFixnum(2))
	tests := []struct {
		name  string
		arg   func(*Scope) Operand
		arity Arity
		// want is the yield argument,
		// or "tmp" for a new temporary.
		want   string
		toArys int
	}{
		{name: "no arg", arg: func(*Scope) Operand { return nil }, arity: 1, want: "[]"},
		{name: "arity 0", arg: func(s *Scope) Operand { return s.LocalVariable("x", 0) }, arity: 0, want: "[]"},
		{name: "literal array", arg: func(*Scope) Operand { return lit }, arity: 2, want: "[1, 2]"},
		{name: "variable", arg: func(s *Scope) Operand { return s.LocalVariable("x", 0) }, arity: 1, want: "tmp", toArys: 1},
		{name: "var arity", arg: func(s *Scope) Operand { return NewFixnum(5) }, arity: VarArity, want: "tmp", toArys: 1},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			call := &NoResultCall{Recv: SelfValue, Method: "f"}
			g, b := newCallSite(call)
			res := g.Scope.LocalVariable("r", 0)
			y := &Yield{Res: res, Block: NilValue, Arg: test.arg(g.Scope)}
			b.Instrs = []Instr{y}
			vars := g.Scope.Variables()

			ii := NewInlinerInfo(call, g)
			if ii.InliningClosure() {
				t.Errorf("InliningClosure before setup")
			}
			ii.SetupYieldArgsAndYieldResult(y, b, test.arity)
			if !ii.InliningClosure() {
				t.Errorf("not InliningClosure after setup")
			}
			if ii.YieldResult() != res {
				t.Errorf("YieldResult()=%s, want r", ii.YieldResult())
			}

			var toArys []*ToAry
			for _, r := range b.Instrs {
				if r, ok := r.(*ToAry); ok {
					toArys = append(toArys, r)
				}
			}
			if len(toArys) != test.toArys {
				t.Fatalf("got %d ToAry instructions, want %d", len(toArys), test.toArys)
			}
			if test.want != "tmp" {
				if got := ii.YieldArg().String(); got != test.want {
					t.Errorf("YieldArg()=%s, want %s", got, test.want)
				}
				if g.Scope.Variables() != vars {
					t.Errorf("setup allocated a variable")
				}
				return
			}
			tmp, ok := ii.YieldArg().(*Variable)
			if !ok || tmp.Kind != TemporaryVar {
				t.Fatalf("YieldArg()=%s, want a temporary", ii.YieldArg())
			}
			if toArys[0].Res != tmp || toArys[0].Src != y.Arg {
				t.Errorf("got %s, want %s = to_ary %s", toArys[0], tmp, y.Arg)
			}
			if g.Scope.Variables() != vars+1 {
				t.Errorf("setup allocated %d variables, want 1", g.Scope.Variables()-vars)
			}
		})
	}
	if lit.String() != "[1, 2]" {
		t.Errorf("setup modified the literal array")
	}
}

func TestSetupYieldReusesLiteralArray(t *testing.T) {
	lit := NewArray(NewFixnum(1))
	call := &NoResultCall{Recv: SelfValue, Method: "f"}
	g, b := newCallSite(call)
	y := &Yield{Res: g.Scope.LocalVariable("r", 0), Block: NilValue, Arg: lit}
	ii := NewInlinerInfo(call, g)
	ii.SetupYieldArgsAndYieldResult(y, b, 1)
	if ii.YieldArg() != Operand(lit) {
		t.Errorf("YieldArg() is not the yielded literal")
	}
}

func TestReceiveArgCloneForInlining(t *testing.T) {
	blk := NewScope("blk", ClosureScope)
	res := blk.LocalVariable("e", 0)
	tests := []struct {
		name  string
		arg   Operand
		index int
		rest  bool
		want  string
	}{
		{name: "literal", arg: NewArray(NewFixnum(7), NewFixnum(8)), index: 1, want: "copy 8"},
		{name: "literal past end", arg: NewArray(NewFixnum(7)), index: 1, want: "copy nil"},
		{name: "literal rest", arg: NewArray(NewFixnum(7), NewFixnum(8)), index: 1, rest: true, want: "copy [8]"},
		{name: "literal rest past end", arg: NewArray(NewFixnum(7)), index: 3, rest: true, want: "copy []"},
		{name: "splat", arg: NewArray(NewSplat(NewArray(NewFixnum(7)))), index: 0, want: "elem [*[7]] 0"},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			call := &NoResultCall{Recv: SelfValue, Method: "f"}
			g, b := newCallSite(call)
			blk.Parent = g.Scope
			y := &Yield{Res: g.Scope.LocalVariable("r", 0), Block: &Closure{Scope: blk}, Arg: test.arg}
			ii := NewInlinerInfo(call, g)
			ii.SetupYieldArgsAndYieldResult(y, b, 2)
			r := (&ReceiveArg{Res: res, Index: test.index, Rest: test.rest}).CloneForInlining(ii)
			got := strings.TrimPrefix(r.String(), ii.RenamedVariable(res).Name+" = ")
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("got %s, want %s", got, test.want)
			}
		})
	}
}

func TestReceiveArgCloneForMethod(t *testing.T) {
	callee := NewScope("f", MethodScope)
	res := callee.LocalVariable("a", 0)
	s := NewScope("main", MethodScope)
	call := &Call{Res: s.LocalVariable("r", 0), Recv: SelfValue, Method: "f", Args: []Operand{NewFixnum(1)}}
	g, _ := newCallSite(call)
	ii := NewInlinerInfo(call, g)
	for _, test := range []struct {
		r    *ReceiveArg
		want string
	}{
		{&ReceiveArg{Res: res, Index: 0}, "copy 1"},
		{&ReceiveArg{Res: res, Index: 1}, "copy nil"},
		{&ReceiveArg{Res: res, Index: 0, Rest: true}, "copy [1]"},
		{&ReceiveArg{Res: res, Index: 1, Rest: true}, "copy []"},
	} {
		r := test.r.CloneForInlining(ii)
		if _, ok := r.(*Copy); !ok {
			t.Errorf("%s cloned to %T, want *Copy", test.r, r)
			continue
		}
		if got := strings.TrimPrefix(r.String(), ii.RenamedVariable(res).Name+" = "); got != test.want {
			t.Errorf("%s cloned to %s, want %s", test.r, got, test.want)
		}
	}
}
