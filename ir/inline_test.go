package ir_test

import (
	"strings"
	"testing"

	"github.com/ConradIrwin/rubyir/ir"
	"github.com/ConradIrwin/rubyir/irtext"
)

const inlineSrc = `
method main {
L0:
	x = copy 3
	r = call self twice(x) with &inc
	call self puts(r)
	return r
}

method twice {
L0:
	n = recv_arg 0
	b = recv_closure
	a = yield b n
	c = yield b a
	return c
}

closure inc arity 1 in main {
L0:
	v = recv_arg 0
	w = call v +(1)
	return w
}
`

func findCall(t *testing.T, g *ir.CFG, method string) (*ir.BasicBlock, int) {
	t.Helper()
	for _, b := range g.Blocks {
		for i, r := range b.Instrs {
			if c, ok := r.(ir.CallBase); ok && c.MethodName() == method {
				return b, i
			}
		}
	}
	t.Fatalf("no call to %s", method)
	return nil, 0
}

func TestInline(t *testing.T) {
	p, err := irtext.ParseString("inline.rir", inlineSrc)
	if err != nil {
		t.Fatal(err.Error())
	}
	main := p.Method("main")
	b, i := findCall(t, main.CFG, "twice")
	ii := ir.Inline(b, i, p.Method("twice"))
	checkInvariants(t, p)

	if n := len(ii.YieldSites()); n != 2 {
		t.Errorf("got %d yield sites, want 2", n)
	}
	for _, b := range main.CFG.Blocks {
		for _, r := range b.Instrs {
			switch r := r.(type) {
			case *ir.Yield:
				t.Errorf("yield was not inlined: %s", r)
			case ir.CallBase:
				if r.MethodName() == "twice" {
					t.Errorf("call was not inlined: %s", r)
				}
			case *ir.Return:
				if r.Val.String() != "r" {
					t.Errorf("inlined return remains: %s", r)
				}
			}
		}
	}
	if got := runTest(p); got != "5\n" {
		t.Errorf("got %q, want %q\n%s", got, "5\n", p)
	}
	if s := main.String(); !strings.Contains(s, ii.Prefix()+"n = copy") {
		t.Errorf("argument was not received by a renamed copy:\n%s", s)
	}
}

func TestInlineKeepsUninlinableYield(t *testing.T) {
	const src = `
method main {
L0:
	r = call self one() with &blk
	return r
}

method one {
L0:
	b = recv_closure
	v = yield b 1
	return v
}

closure blk arity 1 in main {
L0:
	k = recv_closure
	return k
}
`
	p, err := irtext.ParseString("keep.rir", src)
	if err != nil {
		t.Fatal(err.Error())
	}
	main := p.Method("main")
	b, i := findCall(t, main.CFG, "one")
	ii := ir.Inline(b, i, p.Method("one"))
	checkInvariants(t, p)
	if n := len(ii.YieldSites()); n != 1 {
		t.Fatalf("got %d yield sites, want 1", n)
	}
	var yields int
	for _, b := range main.CFG.Blocks {
		for _, r := range b.Instrs {
			if _, ok := r.(*ir.Yield); ok {
				yields++
			}
		}
	}
	if yields != 1 {
		t.Errorf("got %d yields, want 1:\n%s", yields, main)
	}
	if ir.CanInlineClosure(p.Closure("blk"), main) {
		t.Errorf("CanInlineClosure is true for a closure that receives a block")
	}
}

func TestInlineClosureAtYieldSitePanics(t *testing.T) {
	p, err := irtext.ParseString("inline.rir", inlineSrc)
	if err != nil {
		t.Fatal(err.Error())
	}
	twice := p.Method("twice")
	main := p.Method("main")
	call, i := findCall(t, main.CFG, "twice")
	c := call.Instrs[i].(ir.CallBase)

	t.Run("not a yield", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("no panic")
			}
		}()
		ir.InlineClosureAtYieldSite(c, call, i, p.Closure("inc"))
	})
	t.Run("foreign closure", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("no panic")
			}
		}()
		// inc is defined by main, not twice.
		ir.InlineClosureAtYieldSite(c, twice.CFG.Entry(), 2, p.Closure("inc"))
	})
}

func TestCanInlineClosure(t *testing.T) {
	p, err := irtext.ParseString("inline.rir", inlineSrc)
	if err != nil {
		t.Fatal(err.Error())
	}
	inc := p.Closure("inc")
	if !ir.CanInlineClosure(inc, p.Method("main")) {
		t.Errorf("CanInlineClosure(inc, main) is false")
	}
	if ir.CanInlineClosure(inc, p.Method("twice")) {
		t.Errorf("CanInlineClosure(inc, twice) is true")
	}
}
