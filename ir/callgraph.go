package ir

import (
	"github.com/aclements/go-moremath/graph/graphalg"
	"golang.org/x/exp/slices"
)

// callGraph is the graph of calls on self between the methods of a program.
// Calls made by a closure are attributed to the method that defines it.
//
// callGraph satisfies the graph.Graph interface.
type callGraph struct {
	methods []*Scope
	index   map[*Scope]int
	out     [][]int
}

func newCallGraph(p *Program) *callGraph {
	g := &callGraph{
		methods: p.Methods,
		index:   make(map[*Scope]int, len(p.Methods)),
		out:     make([][]int, len(p.Methods)),
	}
	for i, m := range p.Methods {
		g.index[m] = i
	}
	for _, s := range append(append([]*Scope{}, p.Methods...), p.Closures...) {
		caller, ok := g.index[definingMethod(s)]
		if !ok {
			continue
		}
		for _, b := range s.CFG.Blocks {
			for _, r := range b.Instrs {
				call, ok := r.(CallBase)
				if !ok || call.Receiver() != Operand(SelfValue) {
					continue
				}
				callee, ok := g.index[p.Method(call.MethodName())]
				if ok && !slices.Contains(g.out[caller], callee) {
					g.out[caller] = append(g.out[caller], callee)
				}
			}
		}
	}
	return g
}

func (g *callGraph) NumNodes() int   { return len(g.methods) }
func (g *callGraph) Out(i int) []int { return g.out[i] }

// definingMethod returns the method that encloses s, or s if it is a method.
func definingMethod(s *Scope) *Scope {
	for s != nil && s.Kind == ClosureScope {
		s = s.Parent
	}
	return s
}

// recursiveMethods returns the methods of p that may call themselves,
// directly or through other methods.
func recursiveMethods(p *Program) map[*Scope]bool {
	g := newCallGraph(p)
	rec := make(map[*Scope]bool)
	scc := graphalg.SCC(g, graphalg.SCCSubnodeComponent)
	for cid := 0; cid < scc.NumNodes(); cid++ {
		nids := scc.Subnodes(cid)
		if len(nids) <= 1 {
			continue
		}
		for _, nid := range nids {
			rec[g.methods[nid]] = true
		}
	}
	for nid, out := range g.out {
		if slices.Contains(out, nid) {
			rec[g.methods[nid]] = true
		}
	}
	return rec
}
