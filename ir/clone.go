package ir

func (r *Copy) CloneForInlining(ii *InlinerInfo) Instr {
	return &Copy{Res: ii.RenamedVariable(r.Res), Src: r.Src.CloneForInlining(ii), L: r.L}
}

func (r *Call) CloneForInlining(ii *InlinerInfo) Instr {
	return &Call{
		Res:    ii.RenamedVariable(r.Res),
		Recv:   r.Recv.CloneForInlining(ii),
		Method: r.Method,
		Args:   cloneOperands(r.Args, ii),
		Block:  cloneOperand(r.Block, ii),
		L:      r.L,
	}
}

func (r *NoResultCall) CloneForInlining(ii *InlinerInfo) Instr {
	return &NoResultCall{
		Recv:   r.Recv.CloneForInlining(ii),
		Method: r.Method,
		Args:   cloneOperands(r.Args, ii),
		Block:  cloneOperand(r.Block, ii),
		L:      r.L,
	}
}

// CloneForInlining returns a Copy of the received argument.
//
// When inlining a method, the argument is the call argument.
// When inlining a closure body,
// the argument is an element of the yield argument:
// a compile-time element if the yield argument is a literal Array,
// or an ArrayElement of it otherwise.
func (r *ReceiveArg) CloneForInlining(ii *InlinerInfo) Instr {
	res := ii.RenamedVariable(r.Res)
	if !ii.InliningClosure() {
		arg := ii.CallArgRest(r.Index, r.Rest)
		if arg == nil {
			arg = NilValue
		}
		return &Copy{Res: res, Src: arg, L: r.L}
	}
	yieldArg := ii.YieldArg()
	if a, ok := yieldArg.(*Array); ok {
		switch elt := a.FetchCompileTimeArrayElement(r.Index, r.Rest); {
		case elt != nil:
			return &Copy{Res: res, Src: elt, L: r.L}
		case !hasSplat(a) && r.Rest:
			return &Copy{Res: res, Src: NewArray(), L: r.L}
		case !hasSplat(a):
			return &Copy{Res: res, Src: NilValue, L: r.L}
		}
	}
	return &ArrayElement{Res: res, Array: yieldArg, Index: r.Index, Rest: r.Rest, L: r.L}
}

func (r *ReceiveClosure) CloneForInlining(ii *InlinerInfo) Instr {
	return &Copy{Res: ii.RenamedVariable(r.Res), Src: ii.CallClosure(), L: r.L}
}

func (r *Yield) CloneForInlining(ii *InlinerInfo) Instr {
	return &Yield{
		Res:   ii.RenamedVariable(r.Res),
		Block: r.Block.CloneForInlining(ii),
		Arg:   cloneOperand(r.Arg, ii),
		L:     r.L,
	}
}

func (r *ToAry) CloneForInlining(ii *InlinerInfo) Instr {
	return &ToAry{Res: ii.RenamedVariable(r.Res), Src: r.Src.CloneForInlining(ii), L: r.L}
}

func (r *ArrayElement) CloneForInlining(ii *InlinerInfo) Instr {
	return &ArrayElement{
		Res:   ii.RenamedVariable(r.Res),
		Array: r.Array.CloneForInlining(ii),
		Index: r.Index,
		Rest:  r.Rest,
		L:     r.L,
	}
}

func (r *Jump) CloneForInlining(ii *InlinerInfo) Instr {
	return &Jump{Target: ii.RenamedLabel(r.Target), L: r.L}
}

func (r *If) CloneForInlining(ii *InlinerInfo) Instr {
	return &If{
		Cond: r.Cond.CloneForInlining(ii),
		Then: ii.RenamedLabel(r.Then),
		Else: ii.RenamedLabel(r.Else),
		L:    r.L,
	}
}

func (r *Return) CloneForInlining(ii *InlinerInfo) Instr {
	return &Return{Val: r.Val.CloneForInlining(ii), L: r.L}
}

func cloneOperands(ops []Operand, ii *InlinerInfo) []Operand {
	if ops == nil {
		return nil
	}
	c := make([]Operand, len(ops))
	for i, o := range ops {
		c[i] = o.CloneForInlining(ii)
	}
	return c
}

func cloneOperand(o Operand, ii *InlinerInfo) Operand {
	if o == nil {
		return nil
	}
	return o.CloneForInlining(ii)
}

func (r *Copy) SimplifyOperands(m ValueMap, force bool) {
	r.Src = r.Src.SimplifiedOperand(m, force)
}

func (r *Call) SimplifyOperands(m ValueMap, force bool) {
	r.Recv = r.Recv.SimplifiedOperand(m, force)
	simplifyOperands(r.Args, m, force)
	r.Block = simplifyOperand(r.Block, m, force)
}

func (r *NoResultCall) SimplifyOperands(m ValueMap, force bool) {
	r.Recv = r.Recv.SimplifiedOperand(m, force)
	simplifyOperands(r.Args, m, force)
	r.Block = simplifyOperand(r.Block, m, force)
}

func (*ReceiveArg) SimplifyOperands(ValueMap, bool)     {}
func (*ReceiveClosure) SimplifyOperands(ValueMap, bool) {}

func (r *Yield) SimplifyOperands(m ValueMap, force bool) {
	r.Block = r.Block.SimplifiedOperand(m, force)
	r.Arg = simplifyOperand(r.Arg, m, force)
}

func (r *ToAry) SimplifyOperands(m ValueMap, force bool) {
	r.Src = r.Src.SimplifiedOperand(m, force)
}

func (r *ArrayElement) SimplifyOperands(m ValueMap, force bool) {
	r.Array = r.Array.SimplifiedOperand(m, force)
}

func (*Jump) SimplifyOperands(ValueMap, bool) {}

func (r *If) SimplifyOperands(m ValueMap, force bool) {
	r.Cond = r.Cond.SimplifiedOperand(m, force)
}

func (r *Return) SimplifyOperands(m ValueMap, force bool) {
	r.Val = r.Val.SimplifiedOperand(m, force)
}

func simplifyOperands(ops []Operand, m ValueMap, force bool) {
	for i := range ops {
		ops[i] = ops[i].SimplifiedOperand(m, force)
	}
}

func simplifyOperand(o Operand, m ValueMap, force bool) Operand {
	if o == nil {
		return nil
	}
	return o.SimplifiedOperand(m, force)
}
