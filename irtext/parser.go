// Package irtext parses the textual form of IR programs
// printed by ir.Program.String.
//
// A program is a sequence of scopes:
//
//	method main {
//	L0:
//		x = copy [1, 2]
//		y = call self each(x) with &blk
//		return y
//	}
//
//	closure blk arity 1 in main {
//	L0:
//		e = recv_arg 0
//		return e
//	}
//
// Variables whose names begin with % are temporaries;
// others are locals. x^N refers to the local x
// of the scope N levels outside of the closure.
// Comments begin with # and extend to the end of the line.
package irtext

import (
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ConradIrwin/rubyir/ir"
	"github.com/ConradIrwin/rubyir/loc"
	"github.com/eaburns/peggy/peg"
	"github.com/pkg/errors"
)

//go:generate peggy -t=false -o grammar.go grammar.peggy

// ParseFile parses a program from a file path.
func ParseFile(path string) (*ir.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(path, f)
}

// Parse parses a program from an io.Reader.
// The first argument is the file path or "" if unspecified.
func Parse(path string, r io.Reader) (*ir.Program, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return ParseString(path, string(data))
}

// ParseString parses a program from a string.
// The first argument is the file path or "" if unspecified.
func ParseString(path, text string) (*ir.Program, error) {
	_p := _NewParser(text)
	if pos, perr := _FileAccepts(_p, 0); pos < 0 {
		_, t := _FileFail(_p, 0, perr)
		return nil, parseError{path: path, loc: perr, text: _p.text, fail: t}
	}
	_, f := _FileAction(_p, 0)
	b := &builder{
		file:    loc.NewFile(path, text),
		prog:    &ir.Program{},
		parents: make(map[*ir.Scope]ident),
	}
	b.prog.File = b.file
	if err := b.build(f); err != nil {
		return nil, err
	}
	return b.prog, nil
}

type parseError struct {
	path string
	loc  int
	text string
	fail *peg.Fail
}

func (err parseError) Tree() *peg.Fail { return err.fail }

func (err parseError) Error() string {
	e := peg.SimpleError(err.text, err.fail)
	e.FilePath = err.path
	return e.Error()
}

func operands(os *[]operandNode) []operandNode {
	if os == nil {
		return nil
	}
	return *os
}

func isLetter(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r)
}

func l(p *_Parser, s, e int) loc.Loc {
	for s < e {
		r, w := utf8.DecodeRuneInString(p.text[s:])
		if !unicode.IsSpace(r) {
			break
		}
		s += w
	}
	for e > s {
		r, w := utf8.DecodeLastRuneInString(p.text[:e])
		if !unicode.IsSpace(r) {
			break
		}
		e -= w
	}
	return loc.Loc{s + 1, e}
}

// A builder converts a parsed file into an ir.Program.
type builder struct {
	file     *loc.File
	prog     *ir.Program
	scope    *ir.Scope
	parents  map[*ir.Scope]ident
	closures []closureUse
	targets  []labelUse
}

type closureUse struct {
	closure *ir.Closure
	ref     *closureRef
}

type labelUse struct {
	scope *ir.Scope
	label *ir.Label
	l     loc.Loc
}

func (b *builder) build(f *file) error {
	for _, s := range f.Scopes {
		if err := b.buildScope(s); err != nil {
			return err
		}
	}
	return b.resolve()
}

func (b *builder) buildScope(def *scopeDef) error {
	name := def.Name.Name
	var s *ir.Scope
	if def.Closure {
		if b.prog.Closure(name) != nil {
			return errors.Errorf("%s: closure %s redefined", b.file.Location(def.Name.L), name)
		}
		arity, err := b.integer(def.Arity)
		if err != nil {
			return err
		}
		s = ir.NewScope(name, ir.ClosureScope)
		s.Arity = ir.Arity(arity)
		if def.Parent.Name != "" {
			b.parents[s] = def.Parent
		}
		b.prog.Closures = append(b.prog.Closures, s)
	} else {
		if b.prog.Method(name) != nil {
			return errors.Errorf("%s: method %s redefined", b.file.Location(def.Name.L), name)
		}
		s = ir.NewScope(name, ir.MethodScope)
		b.prog.Methods = append(b.prog.Methods, s)
	}
	b.scope = s
	for _, blockDef := range def.Blocks {
		l := s.Label(blockDef.Label.Name)
		if s.CFG.Block(l) != nil {
			return errors.Errorf("%s: duplicate label %s", b.file.Location(blockDef.Label.L), l)
		}
		block := ir.NewBasicBlock(s.CFG, l)
		s.CFG.AddBlock(block)
		for _, n := range blockDef.Instrs {
			r, err := b.instr(n)
			if err != nil {
				return err
			}
			block.Instrs = append(block.Instrs, r)
		}
	}
	return nil
}

func (b *builder) instr(n instrNode) (ir.Instr, error) {
	switch n := n.(type) {
	case *assignInstr:
		res, err := b.variable(n.Res)
		if err != nil {
			return nil, err
		}
		return b.assign(res, n.Rhs, n.L)
	case *callInstr:
		r := &ir.NoResultCall{Method: n.Method, L: n.L}
		var err error
		if r.Recv, r.Args, r.Block, err = b.call(n); err != nil {
			return nil, err
		}
		return r, nil
	case *jumpInstr:
		return &ir.Jump{Target: b.target(n.Target), L: n.L}, nil
	case *ifInstr:
		cond, err := b.operand(n.Cond)
		if err != nil {
			return nil, err
		}
		return &ir.If{Cond: cond, Then: b.target(n.Then), Else: b.target(n.Else), L: n.L}, nil
	case *returnInstr:
		val, err := b.operand(n.Val)
		if err != nil {
			return nil, err
		}
		return &ir.Return{Val: val, L: n.L}, nil
	default:
		panic("impossible")
	}
}

func (b *builder) assign(res *ir.Variable, n instrNode, l loc.Loc) (ir.Instr, error) {
	switch n := n.(type) {
	case *callInstr:
		r := &ir.Call{Res: res, Method: n.Method, L: l}
		var err error
		if r.Recv, r.Args, r.Block, err = b.call(n); err != nil {
			return nil, err
		}
		return r, nil
	case *copyInstr:
		src, err := b.operand(n.Src)
		if err != nil {
			return nil, err
		}
		return &ir.Copy{Res: res, Src: src, L: l}, nil
	case *recvArgInstr:
		i, err := b.integer(n.Index)
		if err != nil {
			return nil, err
		}
		return &ir.ReceiveArg{Res: res, Index: i, Rest: n.Rest, L: l}, nil
	case *recvClosureInstr:
		return &ir.ReceiveClosure{Res: res, L: l}, nil
	case *yieldInstr:
		r := &ir.Yield{Res: res, L: l}
		var err error
		if r.Block, err = b.operand(n.Block); err != nil {
			return nil, err
		}
		if n.Arg != nil {
			if r.Arg, err = b.operand(n.Arg); err != nil {
				return nil, err
			}
		}
		return r, nil
	case *toAryInstr:
		src, err := b.operand(n.Src)
		if err != nil {
			return nil, err
		}
		return &ir.ToAry{Res: res, Src: src, L: l}, nil
	case *elemInstr:
		ary, err := b.operand(n.Array)
		if err != nil {
			return nil, err
		}
		i, err := b.integer(n.Index)
		if err != nil {
			return nil, err
		}
		return &ir.ArrayElement{Res: res, Array: ary, Index: i, Rest: n.Rest, L: l}, nil
	default:
		panic("impossible")
	}
}

func (b *builder) call(n *callInstr) (recv ir.Operand, args []ir.Operand, block ir.Operand, err error) {
	if recv, err = b.operand(n.Recv); err != nil {
		return nil, nil, nil, err
	}
	if args, err = b.operands(n.Args); err != nil {
		return nil, nil, nil, err
	}
	if n.Block != nil {
		if block, err = b.operand(n.Block); err != nil {
			return nil, nil, nil, err
		}
	}
	return recv, args, block, nil
}

func (b *builder) target(id ident) *ir.Label {
	l := b.scope.Label(id.Name)
	b.targets = append(b.targets, labelUse{scope: b.scope, label: l, l: id.L})
	return l
}

func (b *builder) operands(ns []operandNode) ([]ir.Operand, error) {
	var ops []ir.Operand
	for _, n := range ns {
		op, err := b.operand(n)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func (b *builder) operand(n operandNode) (ir.Operand, error) {
	switch n := n.(type) {
	case *arrayLit:
		elts, err := b.operands(n.Elems)
		if err != nil {
			return nil, err
		}
		return ir.NewArray(elts...), nil
	case *splat:
		op, err := b.operand(n.Operand)
		if err != nil {
			return nil, err
		}
		return ir.NewSplat(op), nil
	case *closureRef:
		c := &ir.Closure{}
		b.closures = append(b.closures, closureUse{closure: c, ref: n})
		return c, nil
	case *symbolLit:
		return ir.NewSymbol(n.Name), nil
	case *stringLit:
		s, err := strconv.Unquote(n.Text)
		if err != nil {
			return nil, errors.Errorf("%s: bad string %s", b.file.Location(n.L), n.Text)
		}
		return ir.NewString(s), nil
	case *intLit:
		x, err := strconv.ParseInt(n.Text, 10, 64)
		if err != nil {
			return nil, errors.Errorf("%s: bad integer %s", b.file.Location(n.L), n.Text)
		}
		return ir.NewFixnum(x), nil
	case *floatLit:
		x, err := strconv.ParseFloat(n.Text, 64)
		if err != nil {
			return nil, errors.Errorf("%s: bad float %s", b.file.Location(n.L), n.Text)
		}
		return ir.NewFloat(x), nil
	case *constLit:
		switch n.Name {
		case "nil":
			return ir.NilValue, nil
		case "true":
			return ir.True, nil
		case "false":
			return ir.False, nil
		case "self":
			return ir.SelfValue, nil
		}
		panic("impossible")
	case *varRef:
		v, err := b.variable(n)
		if err != nil {
			return nil, err
		}
		return v, nil
	default:
		panic("impossible")
	}
}

func (b *builder) variable(n *varRef) (*ir.Variable, error) {
	if n.Depth == nil {
		if strings.HasPrefix(n.Name, "%") {
			return b.scope.TemporaryVariable(n.Name), nil
		}
		return b.scope.LocalVariable(n.Name, 0), nil
	}
	depth, err := b.integer(n.Depth)
	if err != nil {
		return nil, err
	}
	return b.scope.LocalVariable(n.Name, depth), nil
}

func (b *builder) integer(n *intLit) (int, error) {
	i, err := strconv.Atoi(n.Text)
	if err != nil {
		return 0, errors.Errorf("%s: bad integer %s", b.file.Location(n.L), n.Text)
	}
	return i, nil
}

// resolve links closure references and parents,
// and checks that every block ends in a terminal
// and every branch target exists.
func (b *builder) resolve() error {
	for _, use := range b.closures {
		if use.closure.Scope = b.prog.Closure(use.ref.Name); use.closure.Scope == nil {
			return errors.Errorf("%s: undefined closure %s", b.file.Location(use.ref.L), use.ref.Name)
		}
	}
	for _, c := range b.prog.Closures {
		parent, ok := b.parents[c]
		if !ok {
			continue
		}
		if c.Parent = b.prog.Method(parent.Name); c.Parent == nil {
			c.Parent = b.prog.Closure(parent.Name)
		}
		if c.Parent == nil {
			return errors.Errorf("%s: closure %s: undefined parent scope %s",
				b.file.Location(parent.L), c.Name, parent.Name)
		}
	}
	for _, use := range b.targets {
		if use.scope.CFG.Block(use.label) == nil {
			return errors.Errorf("%s: undefined label %s", b.file.Location(use.l), use.label)
		}
	}
	for _, s := range append(append([]*ir.Scope{}, b.prog.Methods...), b.prog.Closures...) {
		if len(s.CFG.Blocks) == 0 {
			return errors.Errorf("%s: %s has no blocks", b.file.Path, s.Name)
		}
		for _, block := range s.CFG.Blocks {
			if n := len(block.Instrs); n == 0 || !isTerminal(block.Instrs[n-1]) {
				return errors.Errorf("%s: %s: block %s does not end in jump, if, or return",
					b.file.Path, s.Name, block.Label)
			}
		}
	}
	return nil
}

func isTerminal(r ir.Instr) bool {
	_, ok := r.(ir.Terminal)
	return ok
}
