package ir

import (
	"strconv"
	"strings"
)

func (p *Program) String() string        { return p.buildString(new(strings.Builder)).String() }
func (s *Scope) String() string          { return s.buildString(new(strings.Builder)).String() }
func (b *BasicBlock) String() string     { return b.buildString(new(strings.Builder)).String() }
func (r *Copy) String() string           { return r.buildString(new(strings.Builder)).String() }
func (r *Call) String() string           { return r.buildString(new(strings.Builder)).String() }
func (r *NoResultCall) String() string   { return r.buildString(new(strings.Builder)).String() }
func (r *ReceiveArg) String() string     { return r.buildString(new(strings.Builder)).String() }
func (r *ReceiveClosure) String() string { return r.buildString(new(strings.Builder)).String() }
func (r *Yield) String() string          { return r.buildString(new(strings.Builder)).String() }
func (r *ToAry) String() string          { return r.buildString(new(strings.Builder)).String() }
func (r *ArrayElement) String() string   { return r.buildString(new(strings.Builder)).String() }
func (r *Jump) String() string           { return r.buildString(new(strings.Builder)).String() }
func (r *If) String() string             { return r.buildString(new(strings.Builder)).String() }
func (r *Return) String() string         { return r.buildString(new(strings.Builder)).String() }

func (p *Program) buildString(s *strings.Builder) *strings.Builder {
	for _, m := range p.Methods {
		if s.Len() > 0 {
			s.WriteString("\n\n")
		}
		m.buildString(s)
	}
	for _, c := range p.Closures {
		if s.Len() > 0 {
			s.WriteString("\n\n")
		}
		c.buildString(s)
	}
	return s
}

func (sc *Scope) buildString(s *strings.Builder) *strings.Builder {
	if sc.Kind == ClosureScope {
		s.WriteString("closure ")
		s.WriteString(sc.Name)
		s.WriteString(" arity ")
		s.WriteString(strconv.Itoa(sc.Arity.Value()))
		if sc.Parent != nil {
			s.WriteString(" in ")
			s.WriteString(sc.Parent.Name)
		}
	} else {
		s.WriteString("method ")
		s.WriteString(sc.Name)
	}
	s.WriteString(" {")
	for _, b := range sc.CFG.Blocks {
		s.WriteRune('\n')
		b.buildString(s)
	}
	s.WriteString("\n}")
	return s
}

func (b *BasicBlock) buildString(s *strings.Builder) *strings.Builder {
	b.Label.buildString(s)
	s.WriteRune(':')
	for _, r := range b.Instrs {
		s.WriteString("\n\t")
		r.buildString(s)
	}
	return s
}

func buildResult(s *strings.Builder, v *Variable) {
	v.buildString(s)
	s.WriteString(" = ")
}

func (r *Copy) buildString(s *strings.Builder) *strings.Builder {
	buildResult(s, r.Res)
	s.WriteString("copy ")
	r.Src.buildString(s)
	return s
}

func (r *Call) buildString(s *strings.Builder) *strings.Builder {
	buildResult(s, r.Res)
	return buildCall(s, r.Recv, r.Method, r.Args, r.Block)
}

func (r *NoResultCall) buildString(s *strings.Builder) *strings.Builder {
	return buildCall(s, r.Recv, r.Method, r.Args, r.Block)
}

func buildCall(s *strings.Builder, recv Operand, method string, args []Operand, block Operand) *strings.Builder {
	s.WriteString("call ")
	recv.buildString(s)
	s.WriteRune(' ')
	s.WriteString(method)
	s.WriteRune('(')
	for i, a := range args {
		if i > 0 {
			s.WriteString(", ")
		}
		a.buildString(s)
	}
	s.WriteRune(')')
	if block != nil {
		s.WriteString(" with ")
		block.buildString(s)
	}
	return s
}

func (r *ReceiveArg) buildString(s *strings.Builder) *strings.Builder {
	buildResult(s, r.Res)
	s.WriteString("recv_arg ")
	s.WriteString(strconv.Itoa(r.Index))
	if r.Rest {
		s.WriteString(" rest")
	}
	return s
}

func (r *ReceiveClosure) buildString(s *strings.Builder) *strings.Builder {
	buildResult(s, r.Res)
	s.WriteString("recv_closure")
	return s
}

func (r *Yield) buildString(s *strings.Builder) *strings.Builder {
	buildResult(s, r.Res)
	s.WriteString("yield ")
	r.Block.buildString(s)
	if r.Arg != nil {
		s.WriteRune(' ')
		r.Arg.buildString(s)
	}
	return s
}

func (r *ToAry) buildString(s *strings.Builder) *strings.Builder {
	buildResult(s, r.Res)
	s.WriteString("to_ary ")
	r.Src.buildString(s)
	return s
}

func (r *ArrayElement) buildString(s *strings.Builder) *strings.Builder {
	buildResult(s, r.Res)
	s.WriteString("elem ")
	r.Array.buildString(s)
	s.WriteRune(' ')
	s.WriteString(strconv.Itoa(r.Index))
	if r.Rest {
		s.WriteString(" rest")
	}
	return s
}

func (r *Jump) buildString(s *strings.Builder) *strings.Builder {
	s.WriteString("jump ")
	r.Target.buildString(s)
	return s
}

func (r *If) buildString(s *strings.Builder) *strings.Builder {
	s.WriteString("if ")
	r.Cond.buildString(s)
	s.WriteRune(' ')
	r.Then.buildString(s)
	s.WriteRune(' ')
	r.Else.buildString(s)
	return s
}

func (r *Return) buildString(s *strings.Builder) *strings.Builder {
	s.WriteString("return ")
	r.Val.buildString(s)
	return s
}
