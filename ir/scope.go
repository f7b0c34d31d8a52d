package ir

import (
	"fmt"
	"strconv"

	"github.com/ConradIrwin/rubyir/loc"
	"golang.org/x/exp/slices"
)

// A Program is a set of method and closure scopes.
type Program struct {
	Methods  []*Scope
	Closures []*Scope
	// File is the file the program was parsed from, or nil.
	File *loc.File
}

// Method returns the method scope with the given name, or nil.
func (p *Program) Method(name string) *Scope {
	for _, m := range p.Methods {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Closure returns the closure scope with the given name, or nil.
func (p *Program) Closure(name string) *Scope {
	for _, c := range p.Closures {
		if c.Name == name {
			return c
		}
	}
	return nil
}

type ScopeKind int

const (
	MethodScope ScopeKind = iota
	ClosureScope
)

// Arity is the number of parameters a closure declares.
type Arity int

// VarArity is the Arity of a closure with a rest parameter.
const VarArity Arity = -1

// Value returns the arity as an int:
// -1 for variable arity, otherwise the exact parameter count.
func (a Arity) Value() int { return int(a) }

// A Scope is a method or closure body
// and the allocator for its variables and labels.
type Scope struct {
	Name string
	Kind ScopeKind
	// Arity is the declared arity of a closure.
	Arity Arity
	// Parent is the lexically enclosing scope of a closure.
	Parent *Scope
	CFG    *CFG

	vars      map[varKey]*Variable
	names     map[string]bool
	labels    map[string]*Label
	nextTemp  int
	nextLabel int
}

type varKey struct {
	name  string
	kind  VarKind
	depth int
}

// NewScope returns a new scope with an empty CFG.
func NewScope(name string, kind ScopeKind) *Scope {
	s := &Scope{
		Name:   name,
		Kind:   kind,
		vars:   make(map[varKey]*Variable),
		names:  make(map[string]bool),
		labels: make(map[string]*Label),
	}
	s.CFG = &CFG{Scope: s, blocks: make(map[*Label]*BasicBlock)}
	return s
}

func (s *Scope) variable(name string, kind VarKind, depth int) *Variable {
	k := varKey{name: name, kind: kind, depth: depth}
	if v, ok := s.vars[k]; ok {
		return v
	}
	v := &Variable{Name: name, Kind: kind, Depth: depth, Scope: s}
	s.vars[k] = v
	s.names[name] = true
	return v
}

// LocalVariable returns the named local variable
// declared depth scopes outside of s.
// A depth-0 local of a closure scope is a ClosureLocalVar.
func (s *Scope) LocalVariable(name string, depth int) *Variable {
	if depth == 0 && s.Kind == ClosureScope {
		return s.variable(name, ClosureLocalVar, 0)
	}
	return s.variable(name, LocalVar, depth)
}

// TemporaryVariable returns the named temporary variable.
func (s *Scope) TemporaryVariable(name string) *Variable {
	return s.variable(name, TemporaryVar, 0)
}

// NewTemporaryVariable returns a temporary variable
// that is distinct from all other variables of the scope.
func (s *Scope) NewTemporaryVariable() *Variable {
	for {
		name := "%v" + strconv.Itoa(s.nextTemp)
		s.nextTemp++
		if _, ok := s.vars[varKey{name: name, kind: TemporaryVar}]; !ok {
			return s.TemporaryVariable(name)
		}
	}
}

// NewInlineVariable returns a variable of s
// that stands in for v of an inlined scope.
// Its name is v's name with the given prefix,
// suffixed with a number if s already has a variable of that name
// of any kind or depth.
// The returned variable is distinct from all other variables of s.
func (s *Scope) NewInlineVariable(prefix string, v *Variable) *Variable {
	name := prefix + v.Name
	for i := 1; s.names[name]; i++ {
		name = prefix + v.Name + "_" + strconv.Itoa(i)
	}
	if v.Kind == TemporaryVar {
		return s.TemporaryVariable(name)
	}
	return s.LocalVariable(name, v.Depth)
}

// Variables returns the number of distinct variables of the scope.
func (s *Scope) Variables() int { return len(s.vars) }

// Label returns the label of s with the given name.
func (s *Scope) Label(name string) *Label {
	if l, ok := s.labels[name]; ok {
		return l
	}
	l := &Label{Name: name}
	s.labels[name] = l
	return l
}

// NewLabel returns a label that is distinct from all other labels of the scope.
func (s *Scope) NewLabel() *Label {
	for {
		name := "L" + strconv.Itoa(s.nextLabel)
		s.nextLabel++
		if _, ok := s.labels[name]; !ok {
			return s.Label(name)
		}
	}
}

// A CFG is the control flow graph of a Scope.
// Blocks[0] is the entry block.
type CFG struct {
	Scope  *Scope
	Blocks []*BasicBlock
	blocks map[*Label]*BasicBlock
}

// Entry returns the entry block of the CFG.
func (g *CFG) Entry() *BasicBlock {
	if len(g.Blocks) == 0 {
		panic(fmt.Sprintf("%s: empty CFG", g.Scope.Name))
	}
	return g.Blocks[0]
}

// Block returns the block of the CFG with the given label, or nil.
func (g *CFG) Block(l *Label) *BasicBlock { return g.blocks[l] }

// AddBlock appends b to the CFG.
func (g *CFG) AddBlock(b *BasicBlock) { g.InsertBlocks(len(g.Blocks), b) }

// InsertBlocks inserts bs into the block list of the CFG before index i.
func (g *CFG) InsertBlocks(i int, bs ...*BasicBlock) {
	for _, b := range bs {
		if b.CFG != g {
			panic("block of a different CFG")
		}
		if _, ok := g.blocks[b.Label]; ok {
			panic(fmt.Sprintf("duplicate block %s", b.Label))
		}
		g.blocks[b.Label] = b
	}
	g.Blocks = slices.Insert(g.Blocks, i, bs...)
}

// IndexOf returns the index of b in the block list, or -1.
func (g *CFG) IndexOf(b *BasicBlock) int { return slices.Index(g.Blocks, b) }

// SetBlocks replaces the block list of the CFG.
func (g *CFG) SetBlocks(bs []*BasicBlock) {
	g.Blocks = bs
	g.blocks = make(map[*Label]*BasicBlock, len(bs))
	for _, b := range bs {
		g.blocks[b.Label] = b
	}
}

// A BasicBlock is a straight-line sequence of instructions
// ending in a terminal: a Jump, If, or Return.
type BasicBlock struct {
	Label  *Label
	CFG    *CFG
	Instrs []Instr
}

// NewBasicBlock returns a new, empty block owned by g.
// The block is not part of g's block list until added.
func NewBasicBlock(g *CFG, l *Label) *BasicBlock {
	return &BasicBlock{Label: l, CFG: g}
}

// AddInstr appends an instruction to the block.
// If the block ends in a terminal, r is inserted before it.
func (b *BasicBlock) AddInstr(r Instr) {
	if n := len(b.Instrs); n > 0 {
		if _, ok := b.Instrs[n-1].(Terminal); ok {
			b.Instrs = append(b.Instrs[:n-1:n-1], r, b.Instrs[n-1])
			return
		}
	}
	b.Instrs = append(b.Instrs, r)
}

// Out returns the successor blocks of b.
func (b *BasicBlock) Out() []*BasicBlock {
	if len(b.Instrs) == 0 {
		return nil
	}
	t, ok := b.Instrs[len(b.Instrs)-1].(Terminal)
	if !ok {
		return nil
	}
	var out []*BasicBlock
	for _, l := range t.Targets() {
		o := b.CFG.Block(l)
		if o == nil {
			panic(fmt.Sprintf("%s: no block %s", b.CFG.Scope.Name, l))
		}
		out = append(out, o)
	}
	return out
}

// SplitAt moves the instructions after index i
// into a new block labeled l, which is returned.
// The new block is inserted into the CFG after b,
// and b is left without a terminal.
func (b *BasicBlock) SplitAt(i int, l *Label) *BasicBlock {
	tail := NewBasicBlock(b.CFG, l)
	tail.Instrs = append([]Instr{}, b.Instrs[i+1:]...)
	b.Instrs = b.Instrs[: i+1 : i+1]
	b.CFG.InsertBlocks(b.CFG.IndexOf(b)+1, tail)
	return tail
}
