package ir

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ConradIrwin/rubyir/loc"
	"golang.org/x/exp/slices"
)

type Option func(*optimizer)

var (
	// NoInline disables inlining.
	NoInline Option = func(o *optimizer) { o.noInline = true }
	// TraceInlining prints each inlining decision to the trace writer.
	TraceInlining Option = func(o *optimizer) { o.traceInline = true }
)

// MaxInlineSize sets the largest callee, in instructions, that is inlined.
func MaxInlineSize(n int) Option { return func(o *optimizer) { o.maxSize = n } }

// MaxInlines sets the most calls inlined into a single method.
func MaxInlines(n int) Option { return func(o *optimizer) { o.maxInlines = n } }

// TraceTo sets the trace writer; the default is os.Stdout.
func TraceTo(w io.Writer) Option { return func(o *optimizer) { o.trace = w } }

type optimizer struct {
	*Program
	trace     io.Writer
	recursive map[*Scope]bool

	// options
	noInline    bool
	traceInline bool
	maxSize     int
	maxInlines  int
}

// Optimize optimizes the program in place.
//
// Calls on self to methods of the program are inlined first, one method at a time.
// Then each method and closure is simplified concurrently:
// constants and copies are propagated,
// unused results and unreachable blocks are removed,
// and straight-line blocks are merged.
func Optimize(p *Program, opts ...Option) {
	o := &optimizer{
		Program:    p,
		trace:      os.Stdout,
		maxSize:    32,
		maxInlines: 16,
	}
	for _, opt := range opts {
		opt(o)
	}
	if !o.noInline {
		o.recursive = recursiveMethods(p)
		for _, m := range p.Methods {
			o.inlineCalls(m)
		}
	}
	closureUses := closureUsedVars(p)
	var wg sync.WaitGroup
	for _, s := range append(append([]*Scope{}, p.Methods...), p.Closures...) {
		wg.Add(1)
		go func(s *Scope) {
			defer wg.Done()
			simplify(s.CFG, closureUses[s])
		}(s)
	}
	wg.Wait()
}

func (o *optimizer) tracef(f string, vs ...interface{}) {
	if !o.traceInline {
		return
	}
	for i := range vs {
		if r, ok := vs[i].(Instr); ok && o.File != nil && r.Loc() != (loc.Loc{}) {
			vs[i] = fmt.Sprintf("%s [%s]", r, o.File.Location(r.Loc()))
		}
	}
	fmt.Fprintf(o.trace, f+"\n", vs...)
}

func (o *optimizer) inlineCalls(m *Scope) {
	for n := 0; n < o.maxInlines; n++ {
		b, i, callee := o.nextInlinable(m)
		if b == nil {
			return
		}
		call := b.Instrs[i]
		ii := Inline(b, i, callee)
		o.tracef("%s: inlined %s: %s as %s (%d yield sites)",
			m.Name, callee.Name, call, ii.Prefix(), len(ii.YieldSites()))
	}
	o.tracef("%s: inline limit %d reached", m.Name, o.maxInlines)
}

func (o *optimizer) nextInlinable(m *Scope) (*BasicBlock, int, *Scope) {
	for _, b := range m.CFG.Blocks {
		for i, r := range b.Instrs {
			call, ok := r.(CallBase)
			if !ok || call.Receiver() != Operand(SelfValue) {
				continue
			}
			callee := o.Method(call.MethodName())
			if callee == nil || callee == m {
				continue
			}
			if reason := o.cannotInline(call, callee); reason != "" {
				o.tracef("%s: not inlining %s: %s", m.Name, r, reason)
				continue
			}
			return b, i, callee
		}
	}
	return nil, 0, nil
}

// cannotInline returns the reason callee cannot be inlined at call,
// or "" if it can.
func (o *optimizer) cannotInline(call CallBase, callee *Scope) string {
	for _, a := range call.CallArgs() {
		if _, ok := a.(*Splat); ok {
			return "splat argument"
		}
	}
	if len(callee.CFG.Blocks) == 0 {
		return "no body"
	}
	if o.recursive[callee] {
		return "recursive"
	}
	var size int
	for _, b := range callee.CFG.Blocks {
		size += len(b.Instrs)
		for _, r := range b.Instrs {
			if definesClosure(r) {
				return "defines a closure"
			}
		}
	}
	if size > o.maxSize {
		return fmt.Sprintf("too big (%d > %d)", size, o.maxSize)
	}
	return ""
}

// closureUsedVars returns, for each scope,
// the names of its variables that are used by closures it encloses.
func closureUsedVars(p *Program) map[*Scope]map[string]bool {
	uses := make(map[*Scope]map[string]bool)
	for _, c := range p.Closures {
		for _, b := range c.CFG.Blocks {
			for _, r := range b.Instrs {
				vs := UsedVariables(r)
				if res, ok := r.(ResultInstr); ok {
					vs = append(vs, res.Result())
				}
				for _, v := range vs {
					s := c
					for d := v.Depth; d > 0 && s != nil; d-- {
						s = s.Parent
					}
					if s == nil || s == c {
						continue
					}
					if uses[s] == nil {
						uses[s] = make(map[string]bool)
					}
					uses[s][v.Name] = true
				}
			}
		}
	}
	return uses
}

func simplify(g *CFG, closureUses map[string]bool) {
	if len(g.Blocks) == 0 {
		return
	}
	// A variable is shared if a closure or an enclosing scope can see it.
	// Calls and yields may assign shared variables.
	shared := func(v *Variable) bool { return v.Depth > 0 || closureUses[v.Name] }
	for i := 0; i < 2; i++ {
		propagateConstants(g, shared)
		rmUnreach(g)
		rmDeadResults(g, shared)
		mergeBlocks(g)
	}
}

// propagateConstants simplifies the operands of each instruction
// through the values known to be assigned on every path to it.
// Values flow within a block and into a block's sole predecessor.
func propagateConstants(g *CFG, shared func(*Variable) bool) {
	preds := predecessors(g)
	out := make(map[*BasicBlock]ValueMap)
	for _, b := range g.Blocks {
		m := make(ValueMap)
		if ps := preds[b]; len(ps) == 1 && out[ps[0]] != nil {
			for k, v := range out[ps[0]] {
				m[k] = v
			}
		}
		for i := range b.Instrs {
			r := b.Instrs[i]
			r.SimplifyOperands(m, false)
			r = foldInstr(r, m)
			b.Instrs[i] = r
			switch r.(type) {
			case *Call, *NoResultCall, *Yield:
				killEffects(m, shared)
			}
			res, ok := r.(ResultInstr)
			if !ok {
				continue
			}
			v := res.Result()
			kill(m, v)
			if c, ok := r.(*Copy); ok && c.Src != Operand(v) && !usesVar(c.Src, v) {
				m[v] = c.Src
			}
		}
		out[b] = m
	}
}

// killEffects removes from m the values that a call may change:
// those of shared variables, and arrays, which the call may modify.
func killEffects(m ValueMap, shared func(*Variable) bool) {
	for k, x := range m {
		if _, ok := x.(*Array); ok {
			delete(m, k)
		}
	}
	for k := range m {
		if v, ok := k.(*Variable); ok && shared(v) {
			kill(m, v)
		}
	}
	for k, x := range m {
		for _, u := range x.AddUsedVariables(nil) {
			if shared(u) {
				delete(m, k)
				break
			}
		}
	}
}

// arrayValue returns the literal Array that o holds, or nil.
// Unlike Value, the elements of the array are not resolved,
// so a folded element refers to the same object as the original.
func arrayValue(o Operand, m ValueMap) *Array {
	for n := 0; n <= len(m); n++ {
		switch x := o.(type) {
		case *Array:
			return x
		case *Variable:
			v, ok := m[x]
			if !ok {
				return nil
			}
			o = v
		default:
			return nil
		}
	}
	return nil
}

func hasArray(o Operand) bool {
	switch o.(type) {
	case *Array, *Splat:
		return true
	}
	return false
}

// foldInstr returns a simpler instruction equivalent to r, or r.
func foldInstr(r Instr, m ValueMap) Instr {
	switch r := r.(type) {
	case *ArrayElement:
		a := arrayValue(r.Array, m)
		if a == nil {
			break
		}
		elt := a.FetchCompileTimeArrayElement(r.Index, r.Rest)
		if elt == nil {
			break
		}
		if r.Rest {
			for _, e := range elt.(*Array).Elts {
				if hasArray(e) {
					return r
				}
			}
		} else if hasArray(elt) {
			return r
		}
		return &Copy{Res: r.Res, Src: elt, L: r.L}
	case *ToAry:
		if arrayValue(r.Src, m) != nil {
			return &Copy{Res: r.Res, Src: r.Src, L: r.L}
		}
		if r.Src.Value(m) == Operand(NilValue) {
			return &Copy{Res: r.Res, Src: NewArray(), L: r.L}
		}
	case *If:
		switch t := truthiness(r.Cond.Value(m)); {
		case t > 0:
			return &Jump{Target: r.Then, L: r.L}
		case t < 0:
			return &Jump{Target: r.Else, L: r.L}
		}
	}
	return r
}

// truthiness returns 1 if o is known truthy,
// -1 if it is known falsy, and 0 if it is unknown.
func truthiness(o Operand) int {
	switch o := o.(type) {
	case *Nil:
		return -1
	case *Boolean:
		if o.Bool {
			return 1
		}
		return -1
	case *Fixnum, *Float, *StringLiteral, *Symbol, *Array, *Closure:
		return 1
	}
	return 0
}

// kill removes from m the value of v
// and every value that refers to v.
func kill(m ValueMap, v *Variable) {
	delete(m, v)
	for k, x := range m {
		if usesVar(x, v) {
			delete(m, k)
		}
	}
}

func usesVar(o Operand, v *Variable) bool {
	return slices.Contains(o.AddUsedVariables(nil), v)
}

func predecessors(g *CFG) map[*BasicBlock][]*BasicBlock {
	preds := make(map[*BasicBlock][]*BasicBlock)
	for _, b := range g.Blocks {
		for _, o := range b.Out() {
			preds[o] = append(preds[o], b)
		}
	}
	return preds
}

// rmDeadResults removes instructions without side effects
// whose results are never used.
func rmDeadResults(g *CFG, shared func(*Variable) bool) {
	for {
		used := make(map[*Variable]bool)
		for _, b := range g.Blocks {
			for _, r := range b.Instrs {
				for _, v := range UsedVariables(r) {
					used[v] = true
				}
			}
		}
		var removed bool
		for _, b := range g.Blocks {
			var n int
			for _, r := range b.Instrs {
				if res, ok := r.(ResultInstr); ok && isPure(r) &&
					!used[res.Result()] && !shared(res.Result()) {
					removed = true
					continue
				}
				b.Instrs[n] = r
				n++
			}
			b.Instrs = b.Instrs[:n]
		}
		if !removed {
			return
		}
	}
}

func isPure(r Instr) bool {
	switch r := r.(type) {
	case *Copy, *ReceiveArg, *ReceiveClosure, *ArrayElement:
		return true
	case *ToAry:
		_, ok := r.Src.(*Array)
		return ok
	}
	return false
}

func rmUnreach(g *CFG) {
	seen := make(map[*BasicBlock]bool)
	seen[g.Blocks[0]] = true
	todo := []*BasicBlock{g.Blocks[0]}
	for len(todo) > 0 {
		b := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		for _, o := range b.Out() {
			if !seen[o] {
				seen[o] = true
				todo = append(todo, o)
			}
		}
	}
	var keep []*BasicBlock
	for _, b := range g.Blocks {
		if seen[b] {
			keep = append(keep, b)
		}
	}
	g.SetBlocks(keep)
}

// mergeBlocks appends each block
// that is the only successor of its only predecessor
// onto that predecessor.
func mergeBlocks(g *CFG) {
	preds := predecessors(g)
	into := make(map[*BasicBlock]*BasicBlock)
	find := func(b *BasicBlock) *BasicBlock {
		for into[b] != nil {
			b = into[b]
		}
		return b
	}
	var done []*BasicBlock
	for _, b := range g.Blocks {
		ps := preds[b]
		if b == g.Blocks[0] || len(ps) != 1 || len(ps[0].Out()) != 1 || ps[0] == b {
			done = append(done, b)
			continue
		}
		in := find(ps[0])
		if in == b {
			done = append(done, b)
			continue
		}
		// The last instruction of in only goes out to b,
		// so it is a Jump to b.
		in.Instrs = append(in.Instrs[:len(in.Instrs)-1], b.Instrs...)
		into[b] = in
	}
	g.SetBlocks(done)
}
