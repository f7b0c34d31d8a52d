package irtext

import (
	"strings"
	"testing"

	"github.com/ConradIrwin/rubyir/ir"
	"github.com/eaburns/peggy/peg"
	"github.com/google/go-cmp/cmp"
)

const program = `method main {
L0:
	x = copy [1, 2.5, "s", :sym, true, false, nil, *y]
	r = call self each(x, 1) with &blk
	call x <<(-3)
	%v0 = to_ary r
	e = elem %v0 1 rest
	c = call e ==(nil)
	if c L1 L2
L1:
	return self
L2:
	if :sym L1 L3
L3:
	jump L4
L4:
	return :ok
}

method each {
L0:
	a = recv_arg 0
	b = recv_arg 1 rest
	k = recv_closure
	v = yield k a
	w = yield k
	return w
}

closure blk arity 1 in main {
L0:
	z = recv_arg 0
	x^1 = copy z
	return z
}`

func TestRoundTrip(t *testing.T) {
	p, err := ParseString("test.rir", program)
	if err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	if diff := cmp.Diff(program, p.String()); diff != "" {
		t.Errorf("round trip: %s", diff)
	}
}

func TestParseStructure(t *testing.T) {
	p, err := ParseString("test.rir", program)
	if err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	main := p.Method("main")
	blk := p.Closure("blk")
	switch {
	case main == nil:
		t.Fatalf("no main")
	case blk == nil:
		t.Fatalf("no blk")
	case blk.Parent != main:
		t.Errorf("blk parent is %v, want main", blk.Parent)
	case blk.Arity != 1:
		t.Errorf("blk arity is %d, want 1", blk.Arity)
	}

	call := main.CFG.Entry().Instrs[1].(*ir.Call)
	if c, ok := call.Block.(*ir.Closure); !ok || c.Scope != blk {
		t.Errorf("call block is %s, want &blk", call.Block)
	}
	if call.Res != main.LocalVariable("r", 0) {
		t.Errorf("call result is not main's r")
	}

	tmp := main.CFG.Entry().Instrs[3].(*ir.ToAry).Res
	if tmp.Kind != ir.TemporaryVar {
		t.Errorf("%s has kind %d, want TemporaryVar", tmp, tmp.Kind)
	}

	z := blk.CFG.Entry().Instrs[0].(*ir.ReceiveArg).Res
	if z.Kind != ir.ClosureLocalVar {
		t.Errorf("%s has kind %d, want ClosureLocalVar", z, z.Kind)
	}
	x1 := blk.CFG.Entry().Instrs[1].(*ir.Copy).Res
	if x1.Kind != ir.LocalVar || x1.Depth != 1 {
		t.Errorf("%s has kind %d depth %d, want LocalVar depth 1", x1, x1.Kind, x1.Depth)
	}

	if w := p.Method("each").CFG.Entry().Instrs[4].(*ir.Yield); w.Arg != nil {
		t.Errorf("yield without an argument has argument %s", w.Arg)
	}
}

func TestParseLocations(t *testing.T) {
	p, err := ParseString("test.rir", program)
	if err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	r := p.Method("main").CFG.Entry().Instrs[2]
	got := p.File.Location(r.Loc()).String()
	if want := "test.rir:5.2-5.14"; got != want {
		t.Errorf("location of %s is %s, want %s", r, got, want)
	}
}

func TestParseComments(t *testing.T) {
	const src = `# A comment.
method main { # open
L0: # entry
	# nothing here
	return 1 # one
}
`
	p, err := ParseString("", src)
	if err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	if diff := cmp.Diff("method main {\nL0:\n\treturn 1\n}", p.String()); diff != "" {
		t.Errorf("%s", diff)
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		pos  int
		want string
	}{
		{
			name: "bad scope",
			src:  "func main {}",
			pos:  0,
			want: `"method"`,
		},
		{
			name: "missing equals",
			src:  "method main {\nL0:\n\tx copy 1\n}",
			pos:  21,
			want: `want "="`,
		},
		{
			name: "bad instruction",
			src:  "method main {\nL0:\n\tx = frob 1\n}",
			pos:  23,
			want: `"recv_arg"`,
		},
		{
			name: "unterminated string",
			src:  "method main {\nL0:\n\treturn \"abc\n}",
			pos:  26,
			want: "operand",
		},
		{
			name: "trailing junk",
			src:  "method main {\nL0:\n\tx = recv_arg 0 junk\n\treturn x\n}",
			pos:  34,
			want: "end of line",
		},
		{
			name: "symbol is not a label",
			src:  "method main {\nL0:\n\treturn :ok junk\n}",
			pos:  30,
			want: "end of line",
		},
		{
			name: "space before label colon",
			src:  "method main {\nL0 :\n\treturn 1\n}",
			pos:  16,
			want: `":"`,
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			p, err := ParseString("test.rir", test.src)
			if err == nil {
				t.Fatalf("got %s, want an error", p)
			}
			perr, ok := err.(parseError)
			if !ok {
				t.Fatalf("got %T, want a parseError", err)
			}
			if !strings.HasPrefix(err.Error(), "test.rir:") {
				t.Errorf("error %q does not name the file", err)
			}
			if pos := peg.LeafFails(perr.Tree())[0].Pos; pos != test.pos {
				t.Errorf("failed at %d (%q), want %d (%q)",
					pos, test.src[pos:], test.pos, test.src[test.pos:])
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("got error %q, want it to contain %q", err, test.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "undefined label",
			src:  "method main {\nL0:\n\tjump L9\n}",
			want: "test.rir:3.7-3.8: undefined label L9",
		},
		{
			name: "undefined closure",
			src:  "method main {\nL0:\n\treturn &nope\n}",
			want: "test.rir:3.9-3.13: undefined closure nope",
		},
		{
			name: "undefined parent",
			src:  "closure c arity 0 in nope {\nL0:\n\treturn 1\n}",
			want: "undefined parent scope nope",
		},
		{
			name: "no terminal",
			src:  "method main {\nL0:\n\tx = copy 1\n}",
			want: "does not end in jump, if, or return",
		},
		{
			name: "duplicate label",
			src:  "method main {\nL0:\n\tjump L0\nL0:\n\treturn 1\n}",
			want: "test.rir:4.1-4.2: duplicate label L0",
		},
		{
			name: "duplicate method",
			src:  "method m {\nL0:\n\treturn 1\n}\nmethod m {\nL0:\n\treturn 2\n}",
			want: "test.rir:5.8: method m redefined",
		},
		{
			name: "duplicate closure",
			src:  "closure c arity 0 {\nL0:\n\treturn 1\n}\nclosure c arity 1 {\nL0:\n\treturn 2\n}",
			want: "test.rir:5.9: closure c redefined",
		},
		{
			name: "no blocks",
			src:  "method main {\n}",
			want: "main has no blocks",
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			p, err := ParseString("test.rir", test.src)
			if err == nil {
				t.Fatalf("got %s, want error containing %q", p, test.want)
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("got error %q, want it to contain %q", err, test.want)
			}
		})
	}
}

func TestParseReader(t *testing.T) {
	p, err := Parse("r.rir", strings.NewReader("method m {\nL0:\n\treturn 1\n}"))
	if err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	if p.Method("m") == nil {
		t.Errorf("no method m")
	}
	if p.File.Path != "r.rir" {
		t.Errorf("file path is %s", p.File.Path)
	}
}
