package interp

import (
	"strings"
	"testing"

	"github.com/ConradIrwin/rubyir/irtext"
	"github.com/google/go-cmp/cmp"
)

func run(t *testing.T, src string, args ...Val) (string, Val, error) {
	t.Helper()
	p, err := irtext.ParseString("test.rir", src)
	if err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	var out strings.Builder
	in := New(p)
	in.Out = &out
	in.MaxSteps = 10000
	res, err := in.Run("main", args...)
	return out.String(), res, err
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		src  string
		args []Val
		out  string
		res  string
	}{
		{
			name: "arithmetic",
			src: `method main {
L0:
	x = call 7 +(5)
	y = call x *(2)
	z = call y -(4)
	q = call z /(3)
	m = call -7 %(3)
	f = call 1.5 +(x)
	call self puts(q, m, f)
	return z
}`,
			out: "6\n2\n13.5\n",
			res: "20",
		},
		{
			name: "args",
			src: `method main {
L0:
	a = recv_arg 0
	b = recv_arg 1 rest
	c = recv_arg 5
	call self p(a, b, c)
	return b
}`,
			args: []Val{Int(1), Str("x"), Sym("y")},
			out:  "1, [\"x\", :y], nil\n",
			res:  `["x", :y]`,
		},
		{
			name: "loop",
			src: `method main {
L0:
	i = copy 0
	jump L1
L1:
	c = call i <(3)
	if c L2 L3
L2:
	call self print(i)
	i = call i +(1)
	jump L1
L3:
	return i
}`,
			out: "012",
			res: "3",
		},
		{
			name: "yield",
			src: `method main {
L0:
	n = copy 10
	r = call self twice(1) with &add
	call self puts(n)
	return r
}

method twice {
L0:
	x = recv_arg 0
	b = recv_closure
	y = yield b x
	z = yield b [y, 100]
	return z
}

closure add arity 2 in main {
L0:
	a = recv_arg 0
	c = recv_arg 1
	d = call c nil?()
	if d L1 L2
L1:
	n^1 = call n^1 +(a)
	return n^1
L2:
	s = call a +(c)
	return s
}`,
			out: "11\n",
			res: "111",
		},
		{
			name: "to_ary and elem",
			src: `method main {
L0:
	a = to_ary 5
	b = to_ary nil
	c = to_ary [1, 2]
	d = elem c 1
	e = elem c 0 rest
	f = elem c 7
	g = elem c 7 rest
	call self p(a, b, d, e, f, g)
	return nil
}`,
			out: "[5], [], 2, [1, 2], nil, []\n",
			res: "nil",
		},
		{
			name: "splat",
			src: `method main {
L0:
	a = copy [2, 3]
	b = copy [1, *a, 4]
	call self p(*b)
	return b
}`,
			out: "1, 2, 3, 4\n",
			res: "[1, 2, 3, 4]",
		},
		{
			name: "aliasing",
			src: `method main {
L0:
	a = copy [1]
	b = copy a
	call b <<(2)
	return a
}`,
			res: "[1, 2]",
		},
		{
			name: "each",
			src: `method main {
L0:
	a = copy [1, 2]
	call a each() with &show
	return nil
}

closure show arity 1 in main {
L0:
	x = recv_arg 0
	call self puts(x)
	return x
}`,
			out: "1\n2\n",
			res: "nil",
		},
		{
			name: "strings",
			src: `method main {
L0:
	a = call "ab" +("cd")
	b = call a *(2)
	n = call b size()
	e = call a ==("abcd")
	call self puts(b, n, e)
	return :ok
}`,
			out: "abcdabcd\n8\ntrue\n",
			res: ":ok",
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			out, res, err := run(t, test.src, test.args...)
			if err != nil {
				t.Fatalf("failed: %s", err)
			}
			if diff := cmp.Diff(test.out, out); diff != "" {
				t.Errorf("output: %s", diff)
			}
			if got := inspect(res); got != test.res {
				t.Errorf("result=%s, want %s", got, test.res)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "no block",
			src: `method main {
L0:
	y = yield nil
	return y
}`,
			want: "test.rir:3.2-3.14: no block given (yield)",
		},
		{
			name: "undefined method",
			src: `method main {
L0:
	y = call 1 frob(2)
	return y
}`,
			want: "undefined method frob for 1",
		},
		{
			name: "divide by zero",
			src: `method main {
L0:
	y = call 1 /(0)
	return y
}`,
			want: "divided by 0",
		},
		{
			name: "infinite loop",
			src: `method main {
L0:
	jump L0
}`,
			want: "exceeded 10000 steps",
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			_, res, err := run(t, test.src)
			if err == nil {
				t.Fatalf("got %s, want error containing %q", res, test.want)
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("got error %q, want it to contain %q", err, test.want)
			}
		})
	}
}

func TestRunUndefinedMethod(t *testing.T) {
	p, err := irtext.ParseString("", "method f {\nL0:\n\treturn 1\n}")
	if err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	if _, err := New(p).Run("main"); err == nil {
		t.Errorf("running an undefined method succeeded")
	}
}

func TestTrace(t *testing.T) {
	p, err := irtext.ParseString("", "method main {\nL0:\n\tx = copy 1\n\treturn x\n}")
	if err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	var trace strings.Builder
	in := New(p)
	in.Trace = &trace
	if _, err := in.Run("main"); err != nil {
		t.Fatalf("failed: %s", err)
	}
	want := "main L0: x = copy 1\nmain L0: return x\n"
	if diff := cmp.Diff(want, trace.String()); diff != "" {
		t.Errorf("trace: %s", diff)
	}
}
