// Package interp is an interpreter for IR programs.
// It is used to check that optimized programs
// behave the same as the unoptimized originals.
package interp

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ConradIrwin/rubyir/ir"
	"github.com/ConradIrwin/rubyir/loc"
	"github.com/pkg/errors"
)

type Interp struct {
	Out   io.Writer
	Trace io.Writer

	// MaxSteps is the maximum number of instructions to execute;
	// 0 means no limit.
	MaxSteps int

	prog  *ir.Program
	depth int
	n     int
}

// A frame is the activation of a method or closure.
type frame struct {
	*ir.Scope
	*ir.BasicBlock
	n   int
	env *env

	args  []Val
	block Val
}

// env holds the variables of a frame.
// Closures reach variables of enclosing frames through parent.
type env struct {
	vars   map[string]Val
	self   Val
	block  Val
	parent *env
}

type runtimeError struct{ err error }

func New(p *ir.Program) *Interp {
	return &Interp{Out: os.Stdout, prog: p}
}

// Run calls the named method of the program with the given arguments
// and returns its result.
func (interp *Interp) Run(method string, args ...Val) (res Val, err error) {
	m := interp.prog.Method(method)
	if m == nil {
		return nil, errors.Errorf("undefined method %s", method)
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		re, ok := r.(runtimeError)
		if !ok {
			panic(r)
		}
		res = nil
		err = re.err
	}()
	interp.n = 0
	return interp.call(m, Main{}, args, Nil{}), nil
}

func (interp *Interp) call(s *ir.Scope, self Val, args []Val, block Val) Val {
	e := &env{vars: make(map[string]Val), self: self, block: block}
	return interp.eval(&frame{Scope: s, env: e, args: args, block: block})
}

func (interp *Interp) yield(p *Proc, args []Val) Val {
	e := &env{vars: make(map[string]Val), self: p.env.self, block: p.env.block, parent: p.env}
	return interp.eval(&frame{Scope: p.Scope, env: e, args: args, block: p.env.block})
}

func (interp *Interp) fail(f *frame, r ir.Instr, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if interp.prog.File != nil && r != nil && r.Loc() != (loc.Loc{}) {
		msg = fmt.Sprintf("%s: %s", interp.prog.File.Location(r.Loc()), msg)
	}
	panic(runtimeError{errors.Errorf("%s: %s", f.Scope.Name, msg)})
}

func (interp *Interp) eval(f *frame) Val {
	interp.depth++
	defer func() { interp.depth-- }()
	if len(f.Scope.CFG.Blocks) == 0 {
		interp.fail(f, nil, "body is undefined")
	}
	f.BasicBlock = f.Scope.CFG.Entry()
	for {
		if f.n >= len(f.Instrs) {
			interp.fail(f, nil, "block %s has no terminal", f.BasicBlock.Label)
		}
		r := f.Instrs[f.n]
		f.n++
		if interp.MaxSteps > 0 && interp.n >= interp.MaxSteps {
			interp.fail(f, r, "exceeded %d steps", interp.MaxSteps)
		}
		interp.n++
		if interp.Trace != nil {
			fmt.Fprintf(interp.Trace, "%s%s %s: %s\n",
				strings.Repeat("\t", interp.depth-1), f.Scope.Name, f.BasicBlock.Label, r)
		}

		switch r := r.(type) {
		case *ir.Copy:
			interp.set(f, r.Res, interp.val(f, r, r.Src))
		case *ir.Call:
			interp.set(f, r.Res, interp.dispatch(f, r))
		case *ir.NoResultCall:
			interp.dispatch(f, r)
		case *ir.ReceiveArg:
			interp.set(f, r.Res, element(&Array{Elems: f.args}, r.Index, r.Rest))
		case *ir.ReceiveClosure:
			interp.set(f, r.Res, f.block)
		case *ir.Yield:
			p, ok := interp.val(f, r, r.Block).(*Proc)
			if !ok {
				interp.fail(f, r, "no block given (yield)")
			}
			var args []Val
			if r.Arg != nil {
				args = toAry(interp.val(f, r, r.Arg)).Elems
			}
			interp.set(f, r.Res, interp.yield(p, args))
		case *ir.ToAry:
			interp.set(f, r.Res, toAry(interp.val(f, r, r.Src)))
		case *ir.ArrayElement:
			a := toAry(interp.val(f, r, r.Array))
			interp.set(f, r.Res, element(a, r.Index, r.Rest))
		case *ir.Jump:
			interp.jump(f, r, r.Target)
		case *ir.If:
			if truthy(interp.val(f, r, r.Cond)) {
				interp.jump(f, r, r.Then)
			} else {
				interp.jump(f, r, r.Else)
			}
		case *ir.Return:
			return interp.val(f, r, r.Val)
		default:
			panic(fmt.Sprintf("impossible instruction %T", r))
		}
	}
}

func (interp *Interp) jump(f *frame, r ir.Instr, l *ir.Label) {
	b := f.Scope.CFG.Block(l)
	if b == nil {
		interp.fail(f, r, "undefined label %s", l)
	}
	f.BasicBlock = b
	f.n = 0
}

// element returns the i'th element of a, or nil.
// If rest is set, it returns a new array of the elements from i on.
func element(a *Array, i int, rest bool) Val {
	switch {
	case rest && i >= len(a.Elems):
		return &Array{}
	case rest:
		return &Array{Elems: append([]Val{}, a.Elems[i:]...)}
	case i < 0 || i >= len(a.Elems):
		return Nil{}
	default:
		return a.Elems[i]
	}
}

func (interp *Interp) scopeEnv(f *frame, r ir.Instr, v *ir.Variable) *env {
	e := f.env
	for d := v.Depth; d > 0; d-- {
		if e = e.parent; e == nil {
			interp.fail(f, r, "%s: no enclosing scope at depth %d", v, v.Depth)
		}
	}
	return e
}

func (interp *Interp) set(f *frame, v *ir.Variable, x Val) {
	interp.scopeEnv(f, nil, v).vars[v.Name] = x
}

func (interp *Interp) val(f *frame, r ir.Instr, o ir.Operand) Val {
	switch o := o.(type) {
	case *ir.Fixnum:
		return Int(o.Int)
	case *ir.Float:
		return Float(o.Float)
	case *ir.StringLiteral:
		return Str(o.Str)
	case *ir.Symbol:
		return Sym(o.Name)
	case *ir.Boolean:
		return Bool(o.Bool)
	case *ir.Nil:
		return Nil{}
	case *ir.Self:
		return f.env.self
	case *ir.Closure:
		return &Proc{Scope: o.Scope, env: f.env}
	case *ir.Variable:
		if x, ok := interp.scopeEnv(f, r, o).vars[o.Name]; ok {
			return x
		}
		return Nil{}
	case *ir.Array:
		return &Array{Elems: interp.vals(f, r, o.Elts)}
	case *ir.Splat:
		interp.fail(f, r, "splat outside of an argument list")
	}
	interp.fail(f, r, "bad operand %s", o)
	panic("impossible")
}

// vals evaluates a list of operands, expanding splats.
func (interp *Interp) vals(f *frame, r ir.Instr, ops []ir.Operand) []Val {
	vs := make([]Val, 0, len(ops))
	for _, o := range ops {
		if s, ok := o.(*ir.Splat); ok {
			vs = append(vs, toAry(interp.val(f, r, s.Array)).Elems...)
			continue
		}
		vs = append(vs, interp.val(f, r, o))
	}
	return vs
}

func (interp *Interp) dispatch(f *frame, r ir.Instr) Val {
	c := r.(ir.CallBase)
	recv := interp.val(f, r, c.Receiver())
	args := interp.vals(f, r, c.CallArgs())
	block := interp.val(f, r, c.ClosureArg(ir.NilValue))
	if _, ok := recv.(Main); ok {
		if m := interp.prog.Method(c.MethodName()); m != nil {
			return interp.call(m, recv, args, block)
		}
	}
	v, err := builtin(interp, recv, c.MethodName(), args, block)
	if err != nil {
		interp.fail(f, r, "%s", err)
	}
	return v
}
