package ir_test

import (
	"bufio"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/ConradIrwin/rubyir/ir"
	"github.com/ConradIrwin/rubyir/ir/interp"
	"github.com/ConradIrwin/rubyir/irtext"
	"github.com/google/go-cmp/cmp"
)

func TestOptimize(t *testing.T) {
	const subDir = "testdata"
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err.Error())
	}
	dir := filepath.Join(cwd, subDir)
	fileInfos, err := ioutil.ReadDir(dir)
	if err != nil {
		t.Fatal(err.Error())
	}
	sort.Slice(fileInfos, func(i, j int) bool {
		return fileInfos[i].Name() < fileInfos[j].Name()
	})
	for _, fileInfo := range fileInfos {
		fileInfo := fileInfo
		if filepath.Ext(fileInfo.Name()) != ".rir" {
			continue
		}
		t.Run(fileInfo.Name(), func(t *testing.T) {
			path := filepath.Join(dir, fileInfo.Name())
			want, err := expectedOutput(path)
			if err != nil {
				t.Fatalf(err.Error())
			}
			for _, test := range []struct {
				name string
				opts []ir.Option
				opt  bool
			}{
				{name: "noopt"},
				{name: "noinline", opt: true, opts: []ir.Option{ir.NoInline}},
				{name: "opt", opt: true},
				{name: "small", opt: true, opts: []ir.Option{ir.MaxInlineSize(4), ir.MaxInlines(1)}},
			} {
				test := test
				t.Run(test.name, func(t *testing.T) {
					p, err := irtext.ParseFile(path)
					if err != nil {
						t.Fatalf(err.Error())
					}
					if test.opt {
						var trace strings.Builder
						opts := append([]ir.Option{ir.TraceInlining, ir.TraceTo(&trace)}, test.opts...)
						ir.Optimize(p, opts...)
						t.Log(trace.String())
					}
					checkInvariants(t, p)
					if got := runTest(p); got != want {
						t.Errorf("%s\ngot:\n%q\nwant:\n%q\nprogram:\n%s", path, got, want, p)
					}

					// The printed program must parse to an equivalent program.
					p2, err := irtext.ParseString(path, p.String())
					if err != nil {
						t.Fatalf("failed to parse printed program: %s\n%s", err, p)
					}
					if diff := cmp.Diff(p.String(), p2.String()); diff != "" {
						t.Errorf("reprinted program differs: %s", diff)
					}
					if got := runTest(p2); got != want {
						t.Errorf("reparsed %s\ngot:\n%q\nwant:\n%q", path, got, want)
					}

					// Optimizing the reparsed program again
					// must not merge its inlined variables.
					if test.opt {
						ir.Optimize(p2, test.opts...)
						checkInvariants(t, p2)
						if got := runTest(p2); got != want {
							t.Errorf("reoptimized %s\ngot:\n%q\nwant:\n%q\nprogram:\n%s", path, got, want, p2)
						}
					}
				})
			}
		})
	}
}

func TestOptimizeIdempotent(t *testing.T) {
	p, err := irtext.ParseFile(filepath.Join("testdata", "branch.rir"))
	if err != nil {
		t.Fatal(err.Error())
	}
	ir.Optimize(p)
	once := p.String()
	ir.Optimize(p)
	if diff := cmp.Diff(once, p.String()); diff != "" {
		t.Errorf("optimizing twice changed the program: %s", diff)
	}
}

func TestOptimizeFoldsConstants(t *testing.T) {
	p, err := irtext.ParseFile(filepath.Join("testdata", "branch.rir"))
	if err != nil {
		t.Fatal(err.Error())
	}
	ir.Optimize(p)
	const want = `method main {
L0:
	call self puts("yes")
	call self puts(2)
	return 2
}`
	if diff := cmp.Diff(want, p.String()); diff != "" {
		t.Errorf("got:\n%s\nwant:\n%s\ndiff: %s", p, want, diff)
	}
}

func TestOptimizeInlinesBlocks(t *testing.T) {
	p, err := irtext.ParseFile(filepath.Join("testdata", "each.rir"))
	if err != nil {
		t.Fatal(err.Error())
	}
	var trace strings.Builder
	ir.Optimize(p, ir.TraceInlining, ir.TraceTo(&trace))
	if !strings.Contains(trace.String(), "main: inlined each") {
		t.Errorf("expected each to be inlined, trace:\n%s", trace.String())
	}
	for _, b := range p.Method("main").CFG.Blocks {
		for _, r := range b.Instrs {
			switch r := r.(type) {
			case *ir.Yield:
				t.Errorf("yield remains after inlining: %s", r)
			case ir.CallBase:
				if r.MethodName() == "each" {
					t.Errorf("call remains after inlining: %s", r)
				}
			}
		}
	}
}

func TestOptimizeDoesNotInlineSplat(t *testing.T) {
	p, err := irtext.ParseFile(filepath.Join("testdata", "rest.rir"))
	if err != nil {
		t.Fatal(err.Error())
	}
	var trace strings.Builder
	ir.Optimize(p, ir.TraceInlining, ir.TraceTo(&trace))
	if !strings.Contains(trace.String(), "splat argument") {
		t.Errorf("expected a splat argument rejection, trace:\n%s", trace.String())
	}
	var calls int
	for _, b := range p.Method("main").CFG.Blocks {
		for _, r := range b.Instrs {
			if c, ok := r.(ir.CallBase); ok && c.MethodName() == "sum" {
				calls++
			}
		}
	}
	if calls != 1 {
		t.Errorf("got %d calls to sum, want 1:\n%s", calls, p)
	}
}

func TestOptimizeDoesNotInlineRecursion(t *testing.T) {
	const src = `
method main {
L0:
	x = call self ping(3)
	y = call self loop(0)
	z = call self wrap(1)
	return z
}

method ping {
L0:
	n = recv_arg 0
	r = call self pong(n)
	return r
}

method pong {
L0:
	n = recv_arg 0
	c = call n <=(0)
	if c L1 L2
L1:
	return 0
L2:
	m = call n -(1)
	r = call self ping(m)
	return r
}

method loop {
L0:
	n = recv_arg 0
	r = call self loop(n)
	return r
}

method wrap {
L0:
	n = recv_arg 0
	return n
}
`
	p, err := irtext.ParseString("test.rir", src)
	if err != nil {
		t.Fatal(err.Error())
	}
	var trace strings.Builder
	ir.Optimize(p, ir.TraceInlining, ir.TraceTo(&trace))
	// Rejections are traced on every pass over main.
	rejected := make(map[string]bool)
	for _, line := range strings.Split(trace.String(), "\n") {
		if strings.HasPrefix(line, "main: not inlining") && strings.HasSuffix(line, ": recursive") {
			rejected[line] = true
		}
	}
	if len(rejected) != 2 {
		t.Errorf("got %d recursive rejections, want 2, trace:\n%s", len(rejected), trace.String())
	}
	if !strings.Contains(trace.String(), "main: inlined wrap") {
		t.Errorf("expected wrap to be inlined, trace:\n%s", trace.String())
	}
	var calls []string
	for _, b := range p.Method("main").CFG.Blocks {
		for _, r := range b.Instrs {
			if c, ok := r.(ir.CallBase); ok {
				calls = append(calls, c.MethodName())
			}
		}
	}
	if diff := cmp.Diff([]string{"ping", "loop"}, calls); diff != "" {
		t.Errorf("remaining calls (-want +got):\n%s", diff)
	}
}

func runTest(p *ir.Program) string {
	var stdout strings.Builder
	r := interp.New(p)
	r.Out = &stdout
	r.MaxSteps = 100000
	if _, err := r.Run("main"); err != nil {
		return stdout.String() + "Error: " + err.Error()
	}
	return stdout.String()
}

// expectedOutput returns the comment lines
// before the first scope of the file,
// each followed by a newline.
func expectedOutput(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	var out strings.Builder
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "#") {
			break
		}
		out.WriteString(strings.TrimSpace(strings.TrimPrefix(line, "#")))
		out.WriteRune('\n')
	}
	return out.String(), scanner.Err()
}

func checkInvariants(t *testing.T, p *ir.Program) {
	for _, s := range append(append([]*ir.Scope{}, p.Methods...), p.Closures...) {
		checkScopeInvariants(t, s)
	}
}

func checkScopeInvariants(t *testing.T, s *ir.Scope) {
	g := s.CFG
	if g.Scope != s {
		t.Errorf("%s: CFG scope is %s", s.Name, g.Scope.Name)
	}
	if len(g.Blocks) == 0 {
		t.Errorf("%s: no blocks", s.Name)
		return
	}
	labels := make(map[*ir.Label]bool)
	for _, b := range g.Blocks {
		if labels[b.Label] {
			t.Errorf("%s: duplicate label %s", s.Name, b.Label)
		}
		labels[b.Label] = true
		if g.Block(b.Label) != b {
			t.Errorf("%s: block %s is not indexed by its label", s.Name, b.Label)
		}
		if b.CFG != g {
			t.Errorf("%s: block %s belongs to another CFG", s.Name, b.Label)
		}
		if len(b.Instrs) == 0 {
			t.Errorf("%s: block %s is empty", s.Name, b.Label)
			continue
		}
		for i, r := range b.Instrs {
			_, term := r.(ir.Terminal)
			if last := i == len(b.Instrs)-1; term != last {
				t.Errorf("%s: block %s: terminal=%v at instruction %d of %d: %s",
					s.Name, b.Label, term, i, len(b.Instrs), r)
			}
		}
		for _, l := range b.Instrs[len(b.Instrs)-1].(ir.Terminal).Targets() {
			if g.Block(l) == nil {
				t.Errorf("%s: block %s jumps to undefined label %s", s.Name, b.Label, l)
			}
		}
	}
}
