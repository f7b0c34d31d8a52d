package irtext

import "github.com/eaburns/peggy/peg"

const (
	_File        int = 0
	_Scope       int = 1
	_Method      int = 2
	_Closure     int = 3
	_Block       int = 4
	_Instr       int = 5
	_Call        int = 6
	_CallExpr    int = 7
	_MethodName  int = 8
	_Jump        int = 9
	_If          int = 10
	_Return      int = 11
	_Assign      int = 12
	_Copy        int = 13
	_RecvArg     int = 14
	_RecvClosure int = 15
	_Yield       int = 16
	_ToAry       int = 17
	_Elem        int = 18
	_Operands    int = 19
	_Operand     int = 20
	_Array       int = 21
	_Splat       int = 22
	_ClosureRef  int = 23
	_Symbol      int = 24
	_String      int = 25
	_Esc         int = 26
	_Number      int = 27
	_Float       int = 28
	_Exponent    int = 29
	_Int         int = 30
	_Const       int = 31
	_Var         int = 32
	_Name        int = 33
	_NameChar    int = 34
	_Letter      int = 35
	_Digit       int = 36
	_Eol         int = 37
	_Newline     int = 38
	_Eof         int = 39
	__           int = 40
	___          int = 41
	_Comment     int = 42

	_N int = 43
)

type _Parser struct {
	text     string
	deltaPos [][_N]int32
	deltaErr [][_N]int32
	node     map[_key]*peg.Node
	fail     map[_key]*peg.Fail
	act      map[_key]interface{}
	lastFail int
	data     interface{}
}

type _key struct {
	start int
	rule  int
}

func _NewParser(text string) *_Parser {
	return &_Parser{
		text:     text,
		deltaPos: make([][_N]int32, len(text)+1),
		deltaErr: make([][_N]int32, len(text)+1),
		node:     make(map[_key]*peg.Node),
		fail:     make(map[_key]*peg.Fail),
		act:      make(map[_key]interface{}),
	}
}

func _max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func _memoize(parser *_Parser, rule, start, pos, perr int) (int, int) {
	parser.lastFail = perr
	derr := perr - start
	parser.deltaErr[start][rule] = int32(derr + 1)
	if pos >= 0 {
		dpos := pos - start
		parser.deltaPos[start][rule] = int32(dpos + 1)
		return dpos, derr
	}
	parser.deltaPos[start][rule] = -1
	return -1, derr
}

func _memo(parser *_Parser, rule, start int) (int, int, bool) {
	dp := parser.deltaPos[start][rule]
	if dp == 0 {
		return 0, 0, false
	}
	if dp > 0 {
		dp--
	}
	de := parser.deltaErr[start][rule] - 1
	return int(dp), int(de), true
}

func _failMemo(parser *_Parser, rule, start, errPos int) (int, *peg.Fail) {
	if start > parser.lastFail {
		return -1, &peg.Fail{}
	}
	dp := parser.deltaPos[start][rule]
	de := parser.deltaErr[start][rule]
	if start+int(de-1) < errPos {
		if dp > 0 {
			return start + int(dp-1), &peg.Fail{}
		}
		return -1, &peg.Fail{}
	}
	f := parser.fail[_key{start: start, rule: rule}]
	if dp < 0 && f != nil {
		return -1, f
	}
	if dp > 0 && f != nil {
		return start + int(dp-1), f
	}
	return start, nil
}

func _accept(parser *_Parser, f func(*_Parser, int) (int, int), pos, perr *int) bool {
	dp, de := f(parser, *pos)
	*perr = _max(*perr, *pos+de)
	if dp < 0 {
		return false
	}
	*pos += dp
	return true
}

func _node(parser *_Parser, f func(*_Parser, int) (int, *peg.Node), node *peg.Node, pos *int) bool {
	p, kid := f(parser, *pos)
	if kid == nil {
		return false
	}
	node.Kids = append(node.Kids, kid)
	*pos = p
	return true
}

func _fail(parser *_Parser, f func(*_Parser, int, int) (int, *peg.Fail), errPos int, node *peg.Fail, pos *int) bool {
	p, kid := f(parser, *pos, errPos)
	if kid.Want != "" || len(kid.Kids) > 0 {
		node.Kids = append(node.Kids, kid)
	}
	if p < 0 {
		return false
	}
	*pos = p
	return true
}

func _next(parser *_Parser, pos int) (rune, int) {
	r, w := peg.DecodeRuneInString(parser.text[pos:])
	return r, w
}

func _sub(parser *_Parser, start, end int, kids []*peg.Node) *peg.Node {
	node := &peg.Node{
		Text: parser.text[start:end],
		Kids: make([]*peg.Node, len(kids)),
	}
	copy(node.Kids, kids)
	return node
}

func _leaf(parser *_Parser, start, end int) *peg.Node {
	return &peg.Node{Text: parser.text[start:end]}
}

// A no-op function to mark a variable as used.
func use(interface{}) {}

func _FileAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _File, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// scopes:Scope* __ Eof
	// scopes:Scope*
	{
		pos1 := pos
		// Scope*
		for {
			pos3 := pos
			// Scope
			if !_accept(parser, _ScopeAccepts, &pos, &perr) {
				goto fail5
			}
			continue
		fail5:
			pos = pos3
			break
		}
		labels[0] = parser.text[pos1:pos]
	}
	// __
	if !_accept(parser, ___Accepts, &pos, &perr) {
		goto fail
	}
	// Eof
	if !_accept(parser, _EofAccepts, &pos, &perr) {
		goto fail
	}
	return _memoize(parser, _File, start, pos, perr)
fail:
	return _memoize(parser, _File, start, -1, perr)
}

func _FileFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _File, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "File",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _File}
	// action
	// scopes:Scope* __ Eof
	// scopes:Scope*
	{
		pos1 := pos
		// Scope*
		for {
			pos3 := pos
			// Scope
			if !_fail(parser, _ScopeFail, errPos, failure, &pos) {
				goto fail5
			}
			continue
		fail5:
			pos = pos3
			break
		}
		labels[0] = parser.text[pos1:pos]
	}
	// __
	if !_fail(parser, ___Fail, errPos, failure, &pos) {
		goto fail
	}
	// Eof
	if !_fail(parser, _EofFail, errPos, failure, &pos) {
		goto fail
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _FileAction(parser *_Parser, start int) (int, *file) {
	var labels [1]string
	use(labels)
	var label0 []*scopeDef
	dp := parser.deltaPos[start][_File]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _File}
	n := parser.act[key]
	if n != nil {
		n := n.(file)
		return start + int(dp-1), &n
	}
	var node file
	pos := start
	// action
	{
		start0 := pos
		// scopes:Scope* __ Eof
		// scopes:Scope*
		{
			pos2 := pos
			// Scope*
			for {
				pos4 := pos
				var node5 *scopeDef
				// Scope
				if p, n := _ScopeAction(parser, pos); n == nil {
					goto fail6
				} else {
					node5 = *n
					pos = p
				}
				label0 = append(label0, node5)
				continue
			fail6:
				pos = pos4
				break
			}
			labels[0] = parser.text[pos2:pos]
		}
		// __
		if p, n := ___Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// Eof
		if p, n := _EofAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		node = func(
			start, end int, scopes []*scopeDef) file {
			return file{Scopes: scopes}
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ScopeAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Scope, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// Method/Closure
	{
		pos3 := pos
		// Method
		if !_accept(parser, _MethodAccepts, &pos, &perr) {
			goto fail4
		}
		goto ok0
	fail4:
		pos = pos3
		// Closure
		if !_accept(parser, _ClosureAccepts, &pos, &perr) {
			goto fail5
		}
		goto ok0
	fail5:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _Scope, start, pos, perr)
fail:
	return _memoize(parser, _Scope, start, -1, perr)
}

func _ScopeFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Scope, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Scope",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Scope}
	// Method/Closure
	{
		pos3 := pos
		// Method
		if !_fail(parser, _MethodFail, errPos, failure, &pos) {
			goto fail4
		}
		goto ok0
	fail4:
		pos = pos3
		// Closure
		if !_fail(parser, _ClosureFail, errPos, failure, &pos) {
			goto fail5
		}
		goto ok0
	fail5:
		pos = pos3
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ScopeAction(parser *_Parser, start int) (int, **scopeDef) {
	dp := parser.deltaPos[start][_Scope]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Scope}
	n := parser.act[key]
	if n != nil {
		n := n.(*scopeDef)
		return start + int(dp-1), &n
	}
	var node *scopeDef
	pos := start
	// Method/Closure
	{
		pos3 := pos
		var node2 *scopeDef
		// Method
		if p, n := _MethodAction(parser, pos); n == nil {
			goto fail4
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// Closure
		if p, n := _ClosureAction(parser, pos); n == nil {
			goto fail5
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail5:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _MethodAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _Method, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// __ "method" !NameChar _ name:Name _ "{" blocks:Block* __ "}"
	// __
	if !_accept(parser, ___Accepts, &pos, &perr) {
		goto fail
	}
	// "method"
	if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "method" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 6
	// !NameChar
	{
		pos2 := pos
		perr4 := perr
		// NameChar
		if !_accept(parser, _NameCharAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// name:Name
	{
		pos5 := pos
		// Name
		if !_accept(parser, _NameAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "{"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// blocks:Block*
	{
		pos6 := pos
		// Block*
		for {
			pos8 := pos
			// Block
			if !_accept(parser, _BlockAccepts, &pos, &perr) {
				goto fail10
			}
			continue
		fail10:
			pos = pos8
			break
		}
		labels[1] = parser.text[pos6:pos]
	}
	// __
	if !_accept(parser, ___Accepts, &pos, &perr) {
		goto fail
	}
	// "}"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	return _memoize(parser, _Method, start, pos, perr)
fail:
	return _memoize(parser, _Method, start, -1, perr)
}

func _MethodFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _Method, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Method",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Method}
	// action
	// __ "method" !NameChar _ name:Name _ "{" blocks:Block* __ "}"
	// __
	if !_fail(parser, ___Fail, errPos, failure, &pos) {
		goto fail
	}
	// "method"
	if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "method" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"method\"",
			})
		}
		goto fail
	}
	pos += 6
	// !NameChar
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// NameChar
		if !_fail(parser, _NameCharFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!NameChar",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// name:Name
	{
		pos5 := pos
		// Name
		if !_fail(parser, _NameFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "{"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"{\"",
			})
		}
		goto fail
	}
	pos++
	// blocks:Block*
	{
		pos6 := pos
		// Block*
		for {
			pos8 := pos
			// Block
			if !_fail(parser, _BlockFail, errPos, failure, &pos) {
				goto fail10
			}
			continue
		fail10:
			pos = pos8
			break
		}
		labels[1] = parser.text[pos6:pos]
	}
	// __
	if !_fail(parser, ___Fail, errPos, failure, &pos) {
		goto fail
	}
	// "}"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"}\"",
			})
		}
		goto fail
	}
	pos++
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _MethodAction(parser *_Parser, start int) (int, **scopeDef) {
	var labels [2]string
	use(labels)
	var label0 ident
	var label1 []*blockDef
	dp := parser.deltaPos[start][_Method]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Method}
	n := parser.act[key]
	if n != nil {
		n := n.(*scopeDef)
		return start + int(dp-1), &n
	}
	var node *scopeDef
	pos := start
	// action
	{
		start0 := pos
		// __ "method" !NameChar _ name:Name _ "{" blocks:Block* __ "}"
		// __
		if p, n := ___Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "method"
		if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "method" {
			goto fail
		}
		pos += 6
		// !NameChar
		{
			pos3 := pos
			// NameChar
			if p, n := _NameCharAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// name:Name
		{
			pos6 := pos
			// Name
			if p, n := _NameAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "{"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
			goto fail
		}
		pos++
		// blocks:Block*
		{
			pos7 := pos
			// Block*
			for {
				pos9 := pos
				var node10 *blockDef
				// Block
				if p, n := _BlockAction(parser, pos); n == nil {
					goto fail11
				} else {
					node10 = *n
					pos = p
				}
				label1 = append(label1, node10)
				continue
			fail11:
				pos = pos9
				break
			}
			labels[1] = parser.text[pos7:pos]
		}
		// __
		if p, n := ___Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "}"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
			goto fail
		}
		pos++
		node = func(
			start, end int, blocks []*blockDef, name ident) *scopeDef {
			return &scopeDef{Name: name, Blocks: blocks, L: l(parser, start, end)}
		}(
			start0, pos, label1, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ClosureAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [4]string
	use(labels)
	if dp, de, ok := _memo(parser, _Closure, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// __ "closure" !NameChar _ name:Name _ "arity" !NameChar _ arity:Int (_ "in" !NameChar _ parent:Name)? _ "{" blocks:Block* __ "}"
	// __
	if !_accept(parser, ___Accepts, &pos, &perr) {
		goto fail
	}
	// "closure"
	if len(parser.text[pos:]) < 7 || parser.text[pos:pos+7] != "closure" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 7
	// !NameChar
	{
		pos2 := pos
		perr4 := perr
		// NameChar
		if !_accept(parser, _NameCharAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// name:Name
	{
		pos5 := pos
		// Name
		if !_accept(parser, _NameAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "arity"
	if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "arity" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 5
	// !NameChar
	{
		pos7 := pos
		perr9 := perr
		// NameChar
		if !_accept(parser, _NameCharAccepts, &pos, &perr) {
			goto ok6
		}
		pos = pos7
		perr = _max(perr9, pos)
		goto fail
	ok6:
		pos = pos7
		perr = perr9
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// arity:Int
	{
		pos10 := pos
		// Int
		if !_accept(parser, _IntAccepts, &pos, &perr) {
			goto fail
		}
		labels[1] = parser.text[pos10:pos]
	}
	// (_ "in" !NameChar _ parent:Name)?
	{
		pos12 := pos
		// (_ "in" !NameChar _ parent:Name)
		// _ "in" !NameChar _ parent:Name
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail13
		}
		// "in"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "in" {
			perr = _max(perr, pos)
			goto fail13
		}
		pos += 2
		// !NameChar
		{
			pos16 := pos
			perr18 := perr
			// NameChar
			if !_accept(parser, _NameCharAccepts, &pos, &perr) {
				goto ok15
			}
			pos = pos16
			perr = _max(perr18, pos)
			goto fail13
		ok15:
			pos = pos16
			perr = perr18
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail13
		}
		// parent:Name
		{
			pos19 := pos
			// Name
			if !_accept(parser, _NameAccepts, &pos, &perr) {
				goto fail13
			}
			labels[2] = parser.text[pos19:pos]
		}
		goto ok20
	fail13:
		pos = pos12
	ok20:
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "{"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// blocks:Block*
	{
		pos21 := pos
		// Block*
		for {
			pos23 := pos
			// Block
			if !_accept(parser, _BlockAccepts, &pos, &perr) {
				goto fail25
			}
			continue
		fail25:
			pos = pos23
			break
		}
		labels[3] = parser.text[pos21:pos]
	}
	// __
	if !_accept(parser, ___Accepts, &pos, &perr) {
		goto fail
	}
	// "}"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	return _memoize(parser, _Closure, start, pos, perr)
fail:
	return _memoize(parser, _Closure, start, -1, perr)
}

func _ClosureFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [4]string
	use(labels)
	pos, failure := _failMemo(parser, _Closure, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Closure",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Closure}
	// action
	// __ "closure" !NameChar _ name:Name _ "arity" !NameChar _ arity:Int (_ "in" !NameChar _ parent:Name)? _ "{" blocks:Block* __ "}"
	// __
	if !_fail(parser, ___Fail, errPos, failure, &pos) {
		goto fail
	}
	// "closure"
	if len(parser.text[pos:]) < 7 || parser.text[pos:pos+7] != "closure" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"closure\"",
			})
		}
		goto fail
	}
	pos += 7
	// !NameChar
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// NameChar
		if !_fail(parser, _NameCharFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!NameChar",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// name:Name
	{
		pos5 := pos
		// Name
		if !_fail(parser, _NameFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "arity"
	if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "arity" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"arity\"",
			})
		}
		goto fail
	}
	pos += 5
	// !NameChar
	{
		pos7 := pos
		nkids8 := len(failure.Kids)
		// NameChar
		if !_fail(parser, _NameCharFail, errPos, failure, &pos) {
			goto ok6
		}
		pos = pos7
		failure.Kids = failure.Kids[:nkids8]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!NameChar",
			})
		}
		goto fail
	ok6:
		pos = pos7
		failure.Kids = failure.Kids[:nkids8]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// arity:Int
	{
		pos10 := pos
		// Int
		if !_fail(parser, _IntFail, errPos, failure, &pos) {
			goto fail
		}
		labels[1] = parser.text[pos10:pos]
	}
	// (_ "in" !NameChar _ parent:Name)?
	{
		pos12 := pos
		// (_ "in" !NameChar _ parent:Name)
		// _ "in" !NameChar _ parent:Name
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail13
		}
		// "in"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "in" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"in\"",
				})
			}
			goto fail13
		}
		pos += 2
		// !NameChar
		{
			pos16 := pos
			nkids17 := len(failure.Kids)
			// NameChar
			if !_fail(parser, _NameCharFail, errPos, failure, &pos) {
				goto ok15
			}
			pos = pos16
			failure.Kids = failure.Kids[:nkids17]
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "!NameChar",
				})
			}
			goto fail13
		ok15:
			pos = pos16
			failure.Kids = failure.Kids[:nkids17]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail13
		}
		// parent:Name
		{
			pos19 := pos
			// Name
			if !_fail(parser, _NameFail, errPos, failure, &pos) {
				goto fail13
			}
			labels[2] = parser.text[pos19:pos]
		}
		goto ok20
	fail13:
		pos = pos12
	ok20:
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "{"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"{\"",
			})
		}
		goto fail
	}
	pos++
	// blocks:Block*
	{
		pos21 := pos
		// Block*
		for {
			pos23 := pos
			// Block
			if !_fail(parser, _BlockFail, errPos, failure, &pos) {
				goto fail25
			}
			continue
		fail25:
			pos = pos23
			break
		}
		labels[3] = parser.text[pos21:pos]
	}
	// __
	if !_fail(parser, ___Fail, errPos, failure, &pos) {
		goto fail
	}
	// "}"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"}\"",
			})
		}
		goto fail
	}
	pos++
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ClosureAction(parser *_Parser, start int) (int, **scopeDef) {
	var labels [4]string
	use(labels)
	var label0 ident
	var label1 *intLit
	var label2 ident
	var label3 []*blockDef
	dp := parser.deltaPos[start][_Closure]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Closure}
	n := parser.act[key]
	if n != nil {
		n := n.(*scopeDef)
		return start + int(dp-1), &n
	}
	var node *scopeDef
	pos := start
	// action
	{
		start0 := pos
		// __ "closure" !NameChar _ name:Name _ "arity" !NameChar _ arity:Int (_ "in" !NameChar _ parent:Name)? _ "{" blocks:Block* __ "}"
		// __
		if p, n := ___Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "closure"
		if len(parser.text[pos:]) < 7 || parser.text[pos:pos+7] != "closure" {
			goto fail
		}
		pos += 7
		// !NameChar
		{
			pos3 := pos
			// NameChar
			if p, n := _NameCharAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// name:Name
		{
			pos6 := pos
			// Name
			if p, n := _NameAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "arity"
		if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "arity" {
			goto fail
		}
		pos += 5
		// !NameChar
		{
			pos8 := pos
			// NameChar
			if p, n := _NameCharAction(parser, pos); n == nil {
				goto ok7
			} else {
				pos = p
			}
			pos = pos8
			goto fail
		ok7:
			pos = pos8
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// arity:Int
		{
			pos11 := pos
			// Int
			if p, n := _IntAction(parser, pos); n == nil {
				goto fail
			} else {
				label1 = *n
				pos = p
			}
			labels[1] = parser.text[pos11:pos]
		}
		// (_ "in" !NameChar _ parent:Name)?
		{
			pos13 := pos
			// (_ "in" !NameChar _ parent:Name)
			// _ "in" !NameChar _ parent:Name
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail14
			} else {
				pos = p
			}
			// "in"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "in" {
				goto fail14
			}
			pos += 2
			// !NameChar
			{
				pos17 := pos
				// NameChar
				if p, n := _NameCharAction(parser, pos); n == nil {
					goto ok16
				} else {
					pos = p
				}
				pos = pos17
				goto fail14
			ok16:
				pos = pos17
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail14
			} else {
				pos = p
			}
			// parent:Name
			{
				pos20 := pos
				// Name
				if p, n := _NameAction(parser, pos); n == nil {
					goto fail14
				} else {
					label2 = *n
					pos = p
				}
				labels[2] = parser.text[pos20:pos]
			}
			goto ok21
		fail14:
			pos = pos13
		ok21:
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "{"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
			goto fail
		}
		pos++
		// blocks:Block*
		{
			pos22 := pos
			// Block*
			for {
				pos24 := pos
				var node25 *blockDef
				// Block
				if p, n := _BlockAction(parser, pos); n == nil {
					goto fail26
				} else {
					node25 = *n
					pos = p
				}
				label3 = append(label3, node25)
				continue
			fail26:
				pos = pos24
				break
			}
			labels[3] = parser.text[pos22:pos]
		}
		// __
		if p, n := ___Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "}"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
			goto fail
		}
		pos++
		node = func(
			start, end int, arity *intLit, blocks []*blockDef, name ident, parent ident) *scopeDef {
			return &scopeDef{
				Closure: true,
				Name:    name,
				Arity:   arity,
				Parent:  parent,
				Blocks:  blocks,
				L:       l(parser, start, end),
			}
		}(
			start0, pos, label1, label3, label0, label2)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _BlockAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _Block, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// __ label:Name ":" Eol instrs:Instr*
	// __
	if !_accept(parser, ___Accepts, &pos, &perr) {
		goto fail
	}
	// label:Name
	{
		pos1 := pos
		// Name
		if !_accept(parser, _NameAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// ":"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// Eol
	if !_accept(parser, _EolAccepts, &pos, &perr) {
		goto fail
	}
	// instrs:Instr*
	{
		pos2 := pos
		// Instr*
		for {
			pos4 := pos
			// Instr
			if !_accept(parser, _InstrAccepts, &pos, &perr) {
				goto fail6
			}
			continue
		fail6:
			pos = pos4
			break
		}
		labels[1] = parser.text[pos2:pos]
	}
	return _memoize(parser, _Block, start, pos, perr)
fail:
	return _memoize(parser, _Block, start, -1, perr)
}

func _BlockFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _Block, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Block",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Block}
	// action
	// __ label:Name ":" Eol instrs:Instr*
	// __
	if !_fail(parser, ___Fail, errPos, failure, &pos) {
		goto fail
	}
	// label:Name
	{
		pos1 := pos
		// Name
		if !_fail(parser, _NameFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// ":"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\":\"",
			})
		}
		goto fail
	}
	pos++
	// Eol
	if !_fail(parser, _EolFail, errPos, failure, &pos) {
		goto fail
	}
	// instrs:Instr*
	{
		pos2 := pos
		// Instr*
		for {
			pos4 := pos
			// Instr
			if !_fail(parser, _InstrFail, errPos, failure, &pos) {
				goto fail6
			}
			continue
		fail6:
			pos = pos4
			break
		}
		labels[1] = parser.text[pos2:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _BlockAction(parser *_Parser, start int) (int, **blockDef) {
	var labels [2]string
	use(labels)
	var label0 ident
	var label1 []instrNode
	dp := parser.deltaPos[start][_Block]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Block}
	n := parser.act[key]
	if n != nil {
		n := n.(*blockDef)
		return start + int(dp-1), &n
	}
	var node *blockDef
	pos := start
	// action
	{
		start0 := pos
		// __ label:Name ":" Eol instrs:Instr*
		// __
		if p, n := ___Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// label:Name
		{
			pos2 := pos
			// Name
			if p, n := _NameAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// ":"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
			goto fail
		}
		pos++
		// Eol
		if p, n := _EolAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// instrs:Instr*
		{
			pos3 := pos
			// Instr*
			for {
				pos5 := pos
				var node6 instrNode
				// Instr
				if p, n := _InstrAction(parser, pos); n == nil {
					goto fail7
				} else {
					node6 = *n
					pos = p
				}
				label1 = append(label1, node6)
				continue
			fail7:
				pos = pos5
				break
			}
			labels[1] = parser.text[pos3:pos]
		}
		node = func(
			start, end int, instrs []instrNode, label ident) *blockDef {
			return &blockDef{Label: label, Instrs: instrs}
		}(
			start0, pos, label1, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _InstrAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Instr, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// __ instr:(Call/Jump/If/Return/Assign) Eol
	// __
	if !_accept(parser, ___Accepts, &pos, &perr) {
		goto fail
	}
	// instr:(Call/Jump/If/Return/Assign)
	{
		pos1 := pos
		// (Call/Jump/If/Return/Assign)
		// Call/Jump/If/Return/Assign
		{
			pos5 := pos
			// Call
			if !_accept(parser, _CallAccepts, &pos, &perr) {
				goto fail6
			}
			goto ok2
		fail6:
			pos = pos5
			// Jump
			if !_accept(parser, _JumpAccepts, &pos, &perr) {
				goto fail7
			}
			goto ok2
		fail7:
			pos = pos5
			// If
			if !_accept(parser, _IfAccepts, &pos, &perr) {
				goto fail8
			}
			goto ok2
		fail8:
			pos = pos5
			// Return
			if !_accept(parser, _ReturnAccepts, &pos, &perr) {
				goto fail9
			}
			goto ok2
		fail9:
			pos = pos5
			// Assign
			if !_accept(parser, _AssignAccepts, &pos, &perr) {
				goto fail10
			}
			goto ok2
		fail10:
			pos = pos5
			goto fail
		ok2:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// Eol
	if !_accept(parser, _EolAccepts, &pos, &perr) {
		goto fail
	}
	return _memoize(parser, _Instr, start, pos, perr)
fail:
	return _memoize(parser, _Instr, start, -1, perr)
}

func _InstrFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Instr, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Instr",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Instr}
	// action
	// __ instr:(Call/Jump/If/Return/Assign) Eol
	// __
	if !_fail(parser, ___Fail, errPos, failure, &pos) {
		goto fail
	}
	// instr:(Call/Jump/If/Return/Assign)
	{
		pos1 := pos
		// (Call/Jump/If/Return/Assign)
		// Call/Jump/If/Return/Assign
		{
			pos5 := pos
			// Call
			if !_fail(parser, _CallFail, errPos, failure, &pos) {
				goto fail6
			}
			goto ok2
		fail6:
			pos = pos5
			// Jump
			if !_fail(parser, _JumpFail, errPos, failure, &pos) {
				goto fail7
			}
			goto ok2
		fail7:
			pos = pos5
			// If
			if !_fail(parser, _IfFail, errPos, failure, &pos) {
				goto fail8
			}
			goto ok2
		fail8:
			pos = pos5
			// Return
			if !_fail(parser, _ReturnFail, errPos, failure, &pos) {
				goto fail9
			}
			goto ok2
		fail9:
			pos = pos5
			// Assign
			if !_fail(parser, _AssignFail, errPos, failure, &pos) {
				goto fail10
			}
			goto ok2
		fail10:
			pos = pos5
			goto fail
		ok2:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// Eol
	if !_fail(parser, _EolFail, errPos, failure, &pos) {
		goto fail
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _InstrAction(parser *_Parser, start int) (int, *instrNode) {
	var labels [1]string
	use(labels)
	var label0 instrNode
	dp := parser.deltaPos[start][_Instr]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Instr}
	n := parser.act[key]
	if n != nil {
		n := n.(instrNode)
		return start + int(dp-1), &n
	}
	var node instrNode
	pos := start
	// action
	{
		start0 := pos
		// __ instr:(Call/Jump/If/Return/Assign) Eol
		// __
		if p, n := ___Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// instr:(Call/Jump/If/Return/Assign)
		{
			pos2 := pos
			// (Call/Jump/If/Return/Assign)
			// Call/Jump/If/Return/Assign
			{
				pos6 := pos
				var node5 instrNode
				// Call
				if p, n := _CallAction(parser, pos); n == nil {
					goto fail7
				} else {
					label0 = *n
					pos = p
				}
				goto ok3
			fail7:
				label0 = node5
				pos = pos6
				// Jump
				if p, n := _JumpAction(parser, pos); n == nil {
					goto fail8
				} else {
					label0 = *n
					pos = p
				}
				goto ok3
			fail8:
				label0 = node5
				pos = pos6
				// If
				if p, n := _IfAction(parser, pos); n == nil {
					goto fail9
				} else {
					label0 = *n
					pos = p
				}
				goto ok3
			fail9:
				label0 = node5
				pos = pos6
				// Return
				if p, n := _ReturnAction(parser, pos); n == nil {
					goto fail10
				} else {
					label0 = *n
					pos = p
				}
				goto ok3
			fail10:
				label0 = node5
				pos = pos6
				// Assign
				if p, n := _AssignAction(parser, pos); n == nil {
					goto fail11
				} else {
					label0 = *n
					pos = p
				}
				goto ok3
			fail11:
				label0 = node5
				pos = pos6
				goto fail
			ok3:
			}
			labels[0] = parser.text[pos2:pos]
		}
		// Eol
		if p, n := _EolAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		node = func(
			start, end int, instr instrNode) instrNode {
			return instrNode(instr)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _CallAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Call, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// "call" !NameChar _ call:CallExpr
	// "call"
	if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "call" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 4
	// !NameChar
	{
		pos2 := pos
		perr4 := perr
		// NameChar
		if !_accept(parser, _NameCharAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// call:CallExpr
	{
		pos5 := pos
		// CallExpr
		if !_accept(parser, _CallExprAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	return _memoize(parser, _Call, start, pos, perr)
fail:
	return _memoize(parser, _Call, start, -1, perr)
}

func _CallFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Call, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Call",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Call}
	// action
	// "call" !NameChar _ call:CallExpr
	// "call"
	if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "call" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"call\"",
			})
		}
		goto fail
	}
	pos += 4
	// !NameChar
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// NameChar
		if !_fail(parser, _NameCharFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!NameChar",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// call:CallExpr
	{
		pos5 := pos
		// CallExpr
		if !_fail(parser, _CallExprFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _CallAction(parser *_Parser, start int) (int, *instrNode) {
	var labels [1]string
	use(labels)
	var label0 *callInstr
	dp := parser.deltaPos[start][_Call]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Call}
	n := parser.act[key]
	if n != nil {
		n := n.(instrNode)
		return start + int(dp-1), &n
	}
	var node instrNode
	pos := start
	// action
	{
		start0 := pos
		// "call" !NameChar _ call:CallExpr
		// "call"
		if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "call" {
			goto fail
		}
		pos += 4
		// !NameChar
		{
			pos3 := pos
			// NameChar
			if p, n := _NameCharAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// call:CallExpr
		{
			pos6 := pos
			// CallExpr
			if p, n := _CallExprAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		node = func(
			start, end int, call *callInstr) instrNode {
			call.L = l(parser, start, end)
			return instrNode(call)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _CallExprAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [4]string
	use(labels)
	if dp, de, ok := _memo(parser, _CallExpr, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// recv:Operand _ method:MethodName _ "(" args:Operands? _ ")" (_ "with" !NameChar _ block:Operand)?
	// recv:Operand
	{
		pos1 := pos
		// Operand
		if !_accept(parser, _OperandAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// method:MethodName
	{
		pos2 := pos
		// MethodName
		if !_accept(parser, _MethodNameAccepts, &pos, &perr) {
			goto fail
		}
		labels[1] = parser.text[pos2:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "("
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// args:Operands?
	{
		pos3 := pos
		// Operands?
		{
			pos5 := pos
			// Operands
			if !_accept(parser, _OperandsAccepts, &pos, &perr) {
				goto fail6
			}
			goto ok7
		fail6:
			pos = pos5
		ok7:
		}
		labels[2] = parser.text[pos3:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// ")"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// (_ "with" !NameChar _ block:Operand)?
	{
		pos9 := pos
		// (_ "with" !NameChar _ block:Operand)
		// _ "with" !NameChar _ block:Operand
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail10
		}
		// "with"
		if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "with" {
			perr = _max(perr, pos)
			goto fail10
		}
		pos += 4
		// !NameChar
		{
			pos13 := pos
			perr15 := perr
			// NameChar
			if !_accept(parser, _NameCharAccepts, &pos, &perr) {
				goto ok12
			}
			pos = pos13
			perr = _max(perr15, pos)
			goto fail10
		ok12:
			pos = pos13
			perr = perr15
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail10
		}
		// block:Operand
		{
			pos16 := pos
			// Operand
			if !_accept(parser, _OperandAccepts, &pos, &perr) {
				goto fail10
			}
			labels[3] = parser.text[pos16:pos]
		}
		goto ok17
	fail10:
		pos = pos9
	ok17:
	}
	return _memoize(parser, _CallExpr, start, pos, perr)
fail:
	return _memoize(parser, _CallExpr, start, -1, perr)
}

func _CallExprFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [4]string
	use(labels)
	pos, failure := _failMemo(parser, _CallExpr, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "CallExpr",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _CallExpr}
	// action
	// recv:Operand _ method:MethodName _ "(" args:Operands? _ ")" (_ "with" !NameChar _ block:Operand)?
	// recv:Operand
	{
		pos1 := pos
		// Operand
		if !_fail(parser, _OperandFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// method:MethodName
	{
		pos2 := pos
		// MethodName
		if !_fail(parser, _MethodNameFail, errPos, failure, &pos) {
			goto fail
		}
		labels[1] = parser.text[pos2:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "("
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"(\"",
			})
		}
		goto fail
	}
	pos++
	// args:Operands?
	{
		pos3 := pos
		// Operands?
		{
			pos5 := pos
			// Operands
			if !_fail(parser, _OperandsFail, errPos, failure, &pos) {
				goto fail6
			}
			goto ok7
		fail6:
			pos = pos5
		ok7:
		}
		labels[2] = parser.text[pos3:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// ")"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\")\"",
			})
		}
		goto fail
	}
	pos++
	// (_ "with" !NameChar _ block:Operand)?
	{
		pos9 := pos
		// (_ "with" !NameChar _ block:Operand)
		// _ "with" !NameChar _ block:Operand
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail10
		}
		// "with"
		if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "with" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"with\"",
				})
			}
			goto fail10
		}
		pos += 4
		// !NameChar
		{
			pos13 := pos
			nkids14 := len(failure.Kids)
			// NameChar
			if !_fail(parser, _NameCharFail, errPos, failure, &pos) {
				goto ok12
			}
			pos = pos13
			failure.Kids = failure.Kids[:nkids14]
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "!NameChar",
				})
			}
			goto fail10
		ok12:
			pos = pos13
			failure.Kids = failure.Kids[:nkids14]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail10
		}
		// block:Operand
		{
			pos16 := pos
			// Operand
			if !_fail(parser, _OperandFail, errPos, failure, &pos) {
				goto fail10
			}
			labels[3] = parser.text[pos16:pos]
		}
		goto ok17
	fail10:
		pos = pos9
	ok17:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _CallExprAction(parser *_Parser, start int) (int, **callInstr) {
	var labels [4]string
	use(labels)
	var label0 operandNode
	var label1 string
	var label2 *[]operandNode
	var label3 operandNode
	dp := parser.deltaPos[start][_CallExpr]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _CallExpr}
	n := parser.act[key]
	if n != nil {
		n := n.(*callInstr)
		return start + int(dp-1), &n
	}
	var node *callInstr
	pos := start
	// action
	{
		start0 := pos
		// recv:Operand _ method:MethodName _ "(" args:Operands? _ ")" (_ "with" !NameChar _ block:Operand)?
		// recv:Operand
		{
			pos2 := pos
			// Operand
			if p, n := _OperandAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// method:MethodName
		{
			pos3 := pos
			// MethodName
			if p, n := _MethodNameAction(parser, pos); n == nil {
				goto fail
			} else {
				label1 = *n
				pos = p
			}
			labels[1] = parser.text[pos3:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "("
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
			goto fail
		}
		pos++
		// args:Operands?
		{
			pos4 := pos
			// Operands?
			{
				pos6 := pos
				label2 = new([]operandNode)
				// Operands
				if p, n := _OperandsAction(parser, pos); n == nil {
					goto fail7
				} else {
					*label2 = *n
					pos = p
				}
				goto ok8
			fail7:
				label2 = nil
				pos = pos6
			ok8:
			}
			labels[2] = parser.text[pos4:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ")"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
			goto fail
		}
		pos++
		// (_ "with" !NameChar _ block:Operand)?
		{
			pos10 := pos
			// (_ "with" !NameChar _ block:Operand)
			// _ "with" !NameChar _ block:Operand
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail11
			} else {
				pos = p
			}
			// "with"
			if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "with" {
				goto fail11
			}
			pos += 4
			// !NameChar
			{
				pos14 := pos
				// NameChar
				if p, n := _NameCharAction(parser, pos); n == nil {
					goto ok13
				} else {
					pos = p
				}
				pos = pos14
				goto fail11
			ok13:
				pos = pos14
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail11
			} else {
				pos = p
			}
			// block:Operand
			{
				pos17 := pos
				// Operand
				if p, n := _OperandAction(parser, pos); n == nil {
					goto fail11
				} else {
					label3 = *n
					pos = p
				}
				labels[3] = parser.text[pos17:pos]
			}
			goto ok18
		fail11:
			pos = pos10
		ok18:
		}
		node = func(
			start, end int, args *[]operandNode, block operandNode, method string, recv operandNode) *callInstr {
			return &callInstr{Recv: recv, Method: method, Args: operands(args), Block: block}
		}(
			start0, pos, label2, label3, label1, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _MethodNameAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _MethodName, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// [^ \t\r\n(]+
	// [^ \t\r\n(]
	if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '(' {
		perr = _max(perr, pos)
		goto fail
	} else {
		pos += w
	}
	for {
		pos1 := pos
		// [^ \t\r\n(]
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '(' {
			perr = _max(perr, pos)
			goto fail3
		} else {
			pos += w
		}
		continue
	fail3:
		pos = pos1
		break
	}
	perr = start
	return _memoize(parser, _MethodName, start, pos, perr)
fail:
	return _memoize(parser, _MethodName, start, -1, perr)
}

func _MethodNameFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _MethodName, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "MethodName",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _MethodName}
	// [^ \t\r\n(]+
	// [^ \t\r\n(]
	if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '(' {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "[^ \\t\\r\\n(]",
			})
		}
		goto fail
	} else {
		pos += w
	}
	for {
		pos1 := pos
		// [^ \t\r\n(]
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '(' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "[^ \\t\\r\\n(]",
				})
			}
			goto fail3
		} else {
			pos += w
		}
		continue
	fail3:
		pos = pos1
		break
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "method name"
	parser.fail[key] = failure
	return -1, failure
}

func _MethodNameAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_MethodName]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _MethodName}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// [^ \t\r\n(]+
	{
		var node2 string
		// [^ \t\r\n(]
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '(' {
			goto fail
		} else {
			node2 = parser.text[pos : pos+w]
			pos += w
		}
		node += node2
	}
	for {
		pos1 := pos
		var node2 string
		// [^ \t\r\n(]
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '(' {
			goto fail3
		} else {
			node2 = parser.text[pos : pos+w]
			pos += w
		}
		node += node2
		continue
	fail3:
		pos = pos1
		break
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _JumpAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Jump, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// "jump" !NameChar _ target:Name
	// "jump"
	if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "jump" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 4
	// !NameChar
	{
		pos2 := pos
		perr4 := perr
		// NameChar
		if !_accept(parser, _NameCharAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// target:Name
	{
		pos5 := pos
		// Name
		if !_accept(parser, _NameAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	return _memoize(parser, _Jump, start, pos, perr)
fail:
	return _memoize(parser, _Jump, start, -1, perr)
}

func _JumpFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Jump, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Jump",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Jump}
	// action
	// "jump" !NameChar _ target:Name
	// "jump"
	if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "jump" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"jump\"",
			})
		}
		goto fail
	}
	pos += 4
	// !NameChar
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// NameChar
		if !_fail(parser, _NameCharFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!NameChar",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// target:Name
	{
		pos5 := pos
		// Name
		if !_fail(parser, _NameFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _JumpAction(parser *_Parser, start int) (int, *instrNode) {
	var labels [1]string
	use(labels)
	var label0 ident
	dp := parser.deltaPos[start][_Jump]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Jump}
	n := parser.act[key]
	if n != nil {
		n := n.(instrNode)
		return start + int(dp-1), &n
	}
	var node instrNode
	pos := start
	// action
	{
		start0 := pos
		// "jump" !NameChar _ target:Name
		// "jump"
		if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "jump" {
			goto fail
		}
		pos += 4
		// !NameChar
		{
			pos3 := pos
			// NameChar
			if p, n := _NameCharAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// target:Name
		{
			pos6 := pos
			// Name
			if p, n := _NameAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		node = func(
			start, end int, target ident) instrNode {
			return instrNode(&jumpInstr{Target: target, L: l(parser, start, end)})
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _IfAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _If, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// "if" !NameChar _ cond:Operand _ then:Name _ els:Name
	// "if"
	if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "if" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 2
	// !NameChar
	{
		pos2 := pos
		perr4 := perr
		// NameChar
		if !_accept(parser, _NameCharAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// cond:Operand
	{
		pos5 := pos
		// Operand
		if !_accept(parser, _OperandAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// then:Name
	{
		pos6 := pos
		// Name
		if !_accept(parser, _NameAccepts, &pos, &perr) {
			goto fail
		}
		labels[1] = parser.text[pos6:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// els:Name
	{
		pos7 := pos
		// Name
		if !_accept(parser, _NameAccepts, &pos, &perr) {
			goto fail
		}
		labels[2] = parser.text[pos7:pos]
	}
	return _memoize(parser, _If, start, pos, perr)
fail:
	return _memoize(parser, _If, start, -1, perr)
}

func _IfFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _If, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "If",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _If}
	// action
	// "if" !NameChar _ cond:Operand _ then:Name _ els:Name
	// "if"
	if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "if" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"if\"",
			})
		}
		goto fail
	}
	pos += 2
	// !NameChar
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// NameChar
		if !_fail(parser, _NameCharFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!NameChar",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// cond:Operand
	{
		pos5 := pos
		// Operand
		if !_fail(parser, _OperandFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// then:Name
	{
		pos6 := pos
		// Name
		if !_fail(parser, _NameFail, errPos, failure, &pos) {
			goto fail
		}
		labels[1] = parser.text[pos6:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// els:Name
	{
		pos7 := pos
		// Name
		if !_fail(parser, _NameFail, errPos, failure, &pos) {
			goto fail
		}
		labels[2] = parser.text[pos7:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _IfAction(parser *_Parser, start int) (int, *instrNode) {
	var labels [3]string
	use(labels)
	var label0 operandNode
	var label1 ident
	var label2 ident
	dp := parser.deltaPos[start][_If]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _If}
	n := parser.act[key]
	if n != nil {
		n := n.(instrNode)
		return start + int(dp-1), &n
	}
	var node instrNode
	pos := start
	// action
	{
		start0 := pos
		// "if" !NameChar _ cond:Operand _ then:Name _ els:Name
		// "if"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "if" {
			goto fail
		}
		pos += 2
		// !NameChar
		{
			pos3 := pos
			// NameChar
			if p, n := _NameCharAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// cond:Operand
		{
			pos6 := pos
			// Operand
			if p, n := _OperandAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// then:Name
		{
			pos7 := pos
			// Name
			if p, n := _NameAction(parser, pos); n == nil {
				goto fail
			} else {
				label1 = *n
				pos = p
			}
			labels[1] = parser.text[pos7:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// els:Name
		{
			pos8 := pos
			// Name
			if p, n := _NameAction(parser, pos); n == nil {
				goto fail
			} else {
				label2 = *n
				pos = p
			}
			labels[2] = parser.text[pos8:pos]
		}
		node = func(
			start, end int, cond operandNode, els ident, then ident) instrNode {
			return instrNode(&ifInstr{Cond: cond, Then: then, Else: els, L: l(parser, start, end)})
		}(
			start0, pos, label0, label2, label1)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ReturnAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Return, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// "return" !NameChar _ val:Operand
	// "return"
	if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "return" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 6
	// !NameChar
	{
		pos2 := pos
		perr4 := perr
		// NameChar
		if !_accept(parser, _NameCharAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// val:Operand
	{
		pos5 := pos
		// Operand
		if !_accept(parser, _OperandAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	return _memoize(parser, _Return, start, pos, perr)
fail:
	return _memoize(parser, _Return, start, -1, perr)
}

func _ReturnFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Return, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Return",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Return}
	// action
	// "return" !NameChar _ val:Operand
	// "return"
	if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "return" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"return\"",
			})
		}
		goto fail
	}
	pos += 6
	// !NameChar
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// NameChar
		if !_fail(parser, _NameCharFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!NameChar",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// val:Operand
	{
		pos5 := pos
		// Operand
		if !_fail(parser, _OperandFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ReturnAction(parser *_Parser, start int) (int, *instrNode) {
	var labels [1]string
	use(labels)
	var label0 operandNode
	dp := parser.deltaPos[start][_Return]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Return}
	n := parser.act[key]
	if n != nil {
		n := n.(instrNode)
		return start + int(dp-1), &n
	}
	var node instrNode
	pos := start
	// action
	{
		start0 := pos
		// "return" !NameChar _ val:Operand
		// "return"
		if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "return" {
			goto fail
		}
		pos += 6
		// !NameChar
		{
			pos3 := pos
			// NameChar
			if p, n := _NameCharAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// val:Operand
		{
			pos6 := pos
			// Operand
			if p, n := _OperandAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		node = func(
			start, end int, val operandNode) instrNode {
			return instrNode(&returnInstr{Val: val, L: l(parser, start, end)})
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _AssignAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _Assign, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// res:Var _ "=" _ rhs:(Call/Copy/RecvArg/RecvClosure/Yield/ToAry/Elem)
	// res:Var
	{
		pos1 := pos
		// Var
		if !_accept(parser, _VarAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "="
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "=" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// rhs:(Call/Copy/RecvArg/RecvClosure/Yield/ToAry/Elem)
	{
		pos2 := pos
		// (Call/Copy/RecvArg/RecvClosure/Yield/ToAry/Elem)
		// Call/Copy/RecvArg/RecvClosure/Yield/ToAry/Elem
		{
			pos6 := pos
			// Call
			if !_accept(parser, _CallAccepts, &pos, &perr) {
				goto fail7
			}
			goto ok3
		fail7:
			pos = pos6
			// Copy
			if !_accept(parser, _CopyAccepts, &pos, &perr) {
				goto fail8
			}
			goto ok3
		fail8:
			pos = pos6
			// RecvArg
			if !_accept(parser, _RecvArgAccepts, &pos, &perr) {
				goto fail9
			}
			goto ok3
		fail9:
			pos = pos6
			// RecvClosure
			if !_accept(parser, _RecvClosureAccepts, &pos, &perr) {
				goto fail10
			}
			goto ok3
		fail10:
			pos = pos6
			// Yield
			if !_accept(parser, _YieldAccepts, &pos, &perr) {
				goto fail11
			}
			goto ok3
		fail11:
			pos = pos6
			// ToAry
			if !_accept(parser, _ToAryAccepts, &pos, &perr) {
				goto fail12
			}
			goto ok3
		fail12:
			pos = pos6
			// Elem
			if !_accept(parser, _ElemAccepts, &pos, &perr) {
				goto fail13
			}
			goto ok3
		fail13:
			pos = pos6
			goto fail
		ok3:
		}
		labels[1] = parser.text[pos2:pos]
	}
	return _memoize(parser, _Assign, start, pos, perr)
fail:
	return _memoize(parser, _Assign, start, -1, perr)
}

func _AssignFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _Assign, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Assign",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Assign}
	// action
	// res:Var _ "=" _ rhs:(Call/Copy/RecvArg/RecvClosure/Yield/ToAry/Elem)
	// res:Var
	{
		pos1 := pos
		// Var
		if !_fail(parser, _VarFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "="
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "=" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"=\"",
			})
		}
		goto fail
	}
	pos++
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// rhs:(Call/Copy/RecvArg/RecvClosure/Yield/ToAry/Elem)
	{
		pos2 := pos
		// (Call/Copy/RecvArg/RecvClosure/Yield/ToAry/Elem)
		// Call/Copy/RecvArg/RecvClosure/Yield/ToAry/Elem
		{
			pos6 := pos
			// Call
			if !_fail(parser, _CallFail, errPos, failure, &pos) {
				goto fail7
			}
			goto ok3
		fail7:
			pos = pos6
			// Copy
			if !_fail(parser, _CopyFail, errPos, failure, &pos) {
				goto fail8
			}
			goto ok3
		fail8:
			pos = pos6
			// RecvArg
			if !_fail(parser, _RecvArgFail, errPos, failure, &pos) {
				goto fail9
			}
			goto ok3
		fail9:
			pos = pos6
			// RecvClosure
			if !_fail(parser, _RecvClosureFail, errPos, failure, &pos) {
				goto fail10
			}
			goto ok3
		fail10:
			pos = pos6
			// Yield
			if !_fail(parser, _YieldFail, errPos, failure, &pos) {
				goto fail11
			}
			goto ok3
		fail11:
			pos = pos6
			// ToAry
			if !_fail(parser, _ToAryFail, errPos, failure, &pos) {
				goto fail12
			}
			goto ok3
		fail12:
			pos = pos6
			// Elem
			if !_fail(parser, _ElemFail, errPos, failure, &pos) {
				goto fail13
			}
			goto ok3
		fail13:
			pos = pos6
			goto fail
		ok3:
		}
		labels[1] = parser.text[pos2:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _AssignAction(parser *_Parser, start int) (int, *instrNode) {
	var labels [2]string
	use(labels)
	var label0 *varRef
	var label1 instrNode
	dp := parser.deltaPos[start][_Assign]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Assign}
	n := parser.act[key]
	if n != nil {
		n := n.(instrNode)
		return start + int(dp-1), &n
	}
	var node instrNode
	pos := start
	// action
	{
		start0 := pos
		// res:Var _ "=" _ rhs:(Call/Copy/RecvArg/RecvClosure/Yield/ToAry/Elem)
		// res:Var
		{
			pos2 := pos
			// Var
			if p, n := _VarAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "="
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "=" {
			goto fail
		}
		pos++
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// rhs:(Call/Copy/RecvArg/RecvClosure/Yield/ToAry/Elem)
		{
			pos3 := pos
			// (Call/Copy/RecvArg/RecvClosure/Yield/ToAry/Elem)
			// Call/Copy/RecvArg/RecvClosure/Yield/ToAry/Elem
			{
				pos7 := pos
				var node6 instrNode
				// Call
				if p, n := _CallAction(parser, pos); n == nil {
					goto fail8
				} else {
					label1 = *n
					pos = p
				}
				goto ok4
			fail8:
				label1 = node6
				pos = pos7
				// Copy
				if p, n := _CopyAction(parser, pos); n == nil {
					goto fail9
				} else {
					label1 = *n
					pos = p
				}
				goto ok4
			fail9:
				label1 = node6
				pos = pos7
				// RecvArg
				if p, n := _RecvArgAction(parser, pos); n == nil {
					goto fail10
				} else {
					label1 = *n
					pos = p
				}
				goto ok4
			fail10:
				label1 = node6
				pos = pos7
				// RecvClosure
				if p, n := _RecvClosureAction(parser, pos); n == nil {
					goto fail11
				} else {
					label1 = *n
					pos = p
				}
				goto ok4
			fail11:
				label1 = node6
				pos = pos7
				// Yield
				if p, n := _YieldAction(parser, pos); n == nil {
					goto fail12
				} else {
					label1 = *n
					pos = p
				}
				goto ok4
			fail12:
				label1 = node6
				pos = pos7
				// ToAry
				if p, n := _ToAryAction(parser, pos); n == nil {
					goto fail13
				} else {
					label1 = *n
					pos = p
				}
				goto ok4
			fail13:
				label1 = node6
				pos = pos7
				// Elem
				if p, n := _ElemAction(parser, pos); n == nil {
					goto fail14
				} else {
					label1 = *n
					pos = p
				}
				goto ok4
			fail14:
				label1 = node6
				pos = pos7
				goto fail
			ok4:
			}
			labels[1] = parser.text[pos3:pos]
		}
		node = func(
			start, end int, res *varRef, rhs instrNode) instrNode {
			return instrNode(&assignInstr{Res: res, Rhs: rhs, L: l(parser, start, end)})
		}(
			start0, pos, label0, label1)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _CopyAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Copy, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// "copy" !NameChar _ src:Operand
	// "copy"
	if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "copy" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 4
	// !NameChar
	{
		pos2 := pos
		perr4 := perr
		// NameChar
		if !_accept(parser, _NameCharAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// src:Operand
	{
		pos5 := pos
		// Operand
		if !_accept(parser, _OperandAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	return _memoize(parser, _Copy, start, pos, perr)
fail:
	return _memoize(parser, _Copy, start, -1, perr)
}

func _CopyFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Copy, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Copy",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Copy}
	// action
	// "copy" !NameChar _ src:Operand
	// "copy"
	if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "copy" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"copy\"",
			})
		}
		goto fail
	}
	pos += 4
	// !NameChar
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// NameChar
		if !_fail(parser, _NameCharFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!NameChar",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// src:Operand
	{
		pos5 := pos
		// Operand
		if !_fail(parser, _OperandFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _CopyAction(parser *_Parser, start int) (int, *instrNode) {
	var labels [1]string
	use(labels)
	var label0 operandNode
	dp := parser.deltaPos[start][_Copy]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Copy}
	n := parser.act[key]
	if n != nil {
		n := n.(instrNode)
		return start + int(dp-1), &n
	}
	var node instrNode
	pos := start
	// action
	{
		start0 := pos
		// "copy" !NameChar _ src:Operand
		// "copy"
		if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "copy" {
			goto fail
		}
		pos += 4
		// !NameChar
		{
			pos3 := pos
			// NameChar
			if p, n := _NameCharAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// src:Operand
		{
			pos6 := pos
			// Operand
			if p, n := _OperandAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		node = func(
			start, end int, src operandNode) instrNode {
			return instrNode(&copyInstr{Src: src, L: l(parser, start, end)})
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _RecvArgAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _RecvArg, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// "recv_arg" !NameChar _ index:Int rest:(_ "rest" !NameChar)?
	// "recv_arg"
	if len(parser.text[pos:]) < 8 || parser.text[pos:pos+8] != "recv_arg" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 8
	// !NameChar
	{
		pos2 := pos
		perr4 := perr
		// NameChar
		if !_accept(parser, _NameCharAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// index:Int
	{
		pos5 := pos
		// Int
		if !_accept(parser, _IntAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// rest:(_ "rest" !NameChar)?
	{
		pos6 := pos
		// (_ "rest" !NameChar)?
		{
			pos8 := pos
			// (_ "rest" !NameChar)
			// _ "rest" !NameChar
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail9
			}
			// "rest"
			if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "rest" {
				perr = _max(perr, pos)
				goto fail9
			}
			pos += 4
			// !NameChar
			{
				pos12 := pos
				perr14 := perr
				// NameChar
				if !_accept(parser, _NameCharAccepts, &pos, &perr) {
					goto ok11
				}
				pos = pos12
				perr = _max(perr14, pos)
				goto fail9
			ok11:
				pos = pos12
				perr = perr14
			}
			goto ok15
		fail9:
			pos = pos8
		ok15:
		}
		labels[1] = parser.text[pos6:pos]
	}
	return _memoize(parser, _RecvArg, start, pos, perr)
fail:
	return _memoize(parser, _RecvArg, start, -1, perr)
}

func _RecvArgFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _RecvArg, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "RecvArg",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _RecvArg}
	// action
	// "recv_arg" !NameChar _ index:Int rest:(_ "rest" !NameChar)?
	// "recv_arg"
	if len(parser.text[pos:]) < 8 || parser.text[pos:pos+8] != "recv_arg" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"recv_arg\"",
			})
		}
		goto fail
	}
	pos += 8
	// !NameChar
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// NameChar
		if !_fail(parser, _NameCharFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!NameChar",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// index:Int
	{
		pos5 := pos
		// Int
		if !_fail(parser, _IntFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// rest:(_ "rest" !NameChar)?
	{
		pos6 := pos
		// (_ "rest" !NameChar)?
		{
			pos8 := pos
			// (_ "rest" !NameChar)
			// _ "rest" !NameChar
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail9
			}
			// "rest"
			if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "rest" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"rest\"",
					})
				}
				goto fail9
			}
			pos += 4
			// !NameChar
			{
				pos12 := pos
				nkids13 := len(failure.Kids)
				// NameChar
				if !_fail(parser, _NameCharFail, errPos, failure, &pos) {
					goto ok11
				}
				pos = pos12
				failure.Kids = failure.Kids[:nkids13]
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "!NameChar",
					})
				}
				goto fail9
			ok11:
				pos = pos12
				failure.Kids = failure.Kids[:nkids13]
			}
			goto ok15
		fail9:
			pos = pos8
		ok15:
		}
		labels[1] = parser.text[pos6:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _RecvArgAction(parser *_Parser, start int) (int, *instrNode) {
	var labels [2]string
	use(labels)
	var label0 *intLit
	var label1 string
	dp := parser.deltaPos[start][_RecvArg]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _RecvArg}
	n := parser.act[key]
	if n != nil {
		n := n.(instrNode)
		return start + int(dp-1), &n
	}
	var node instrNode
	pos := start
	// action
	{
		start0 := pos
		// "recv_arg" !NameChar _ index:Int rest:(_ "rest" !NameChar)?
		// "recv_arg"
		if len(parser.text[pos:]) < 8 || parser.text[pos:pos+8] != "recv_arg" {
			goto fail
		}
		pos += 8
		// !NameChar
		{
			pos3 := pos
			// NameChar
			if p, n := _NameCharAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// index:Int
		{
			pos6 := pos
			// Int
			if p, n := _IntAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		// rest:(_ "rest" !NameChar)?
		{
			pos7 := pos
			// (_ "rest" !NameChar)?
			{
				pos9 := pos
				// (_ "rest" !NameChar)
				// _ "rest" !NameChar
				{
					var node11 string
					// _
					if p, n := __Action(parser, pos); n == nil {
						goto fail10
					} else {
						node11 = *n
						pos = p
					}
					label1, node11 = label1+node11, ""
					// "rest"
					if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "rest" {
						goto fail10
					}
					node11 = parser.text[pos : pos+4]
					pos += 4
					label1, node11 = label1+node11, ""
					// !NameChar
					{
						pos13 := pos
						// NameChar
						if p, n := _NameCharAction(parser, pos); n == nil {
							goto ok12
						} else {
							pos = p
						}
						pos = pos13
						goto fail10
					ok12:
						pos = pos13
						node11 = ""
					}
					label1, node11 = label1+node11, ""
				}
				goto ok16
			fail10:
				label1 = ""
				pos = pos9
			ok16:
			}
			labels[1] = parser.text[pos7:pos]
		}
		node = func(
			start, end int, index *intLit, rest string) instrNode {
			return instrNode(&recvArgInstr{Index: index, Rest: rest != "", L: l(parser, start, end)})
		}(
			start0, pos, label0, label1)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _RecvClosureAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _RecvClosure, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// "recv_closure" !NameChar
	// "recv_closure"
	if len(parser.text[pos:]) < 12 || parser.text[pos:pos+12] != "recv_closure" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 12
	// !NameChar
	{
		pos2 := pos
		perr4 := perr
		// NameChar
		if !_accept(parser, _NameCharAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	return _memoize(parser, _RecvClosure, start, pos, perr)
fail:
	return _memoize(parser, _RecvClosure, start, -1, perr)
}

func _RecvClosureFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _RecvClosure, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "RecvClosure",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _RecvClosure}
	// action
	// "recv_closure" !NameChar
	// "recv_closure"
	if len(parser.text[pos:]) < 12 || parser.text[pos:pos+12] != "recv_closure" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"recv_closure\"",
			})
		}
		goto fail
	}
	pos += 12
	// !NameChar
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// NameChar
		if !_fail(parser, _NameCharFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!NameChar",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _RecvClosureAction(parser *_Parser, start int) (int, *instrNode) {
	dp := parser.deltaPos[start][_RecvClosure]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _RecvClosure}
	n := parser.act[key]
	if n != nil {
		n := n.(instrNode)
		return start + int(dp-1), &n
	}
	var node instrNode
	pos := start
	// action
	{
		start0 := pos
		// "recv_closure" !NameChar
		// "recv_closure"
		if len(parser.text[pos:]) < 12 || parser.text[pos:pos+12] != "recv_closure" {
			goto fail
		}
		pos += 12
		// !NameChar
		{
			pos3 := pos
			// NameChar
			if p, n := _NameCharAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		node = func(
			start, end int) instrNode {
			return instrNode(&recvClosureInstr{L: l(parser, start, end)})
		}(
			start0, pos)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _YieldAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _Yield, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// "yield" !NameChar _ block:Operand (_ arg:Operand)?
	// "yield"
	if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "yield" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 5
	// !NameChar
	{
		pos2 := pos
		perr4 := perr
		// NameChar
		if !_accept(parser, _NameCharAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// block:Operand
	{
		pos5 := pos
		// Operand
		if !_accept(parser, _OperandAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// (_ arg:Operand)?
	{
		pos7 := pos
		// (_ arg:Operand)
		// _ arg:Operand
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail8
		}
		// arg:Operand
		{
			pos10 := pos
			// Operand
			if !_accept(parser, _OperandAccepts, &pos, &perr) {
				goto fail8
			}
			labels[1] = parser.text[pos10:pos]
		}
		goto ok11
	fail8:
		pos = pos7
	ok11:
	}
	return _memoize(parser, _Yield, start, pos, perr)
fail:
	return _memoize(parser, _Yield, start, -1, perr)
}

func _YieldFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _Yield, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Yield",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Yield}
	// action
	// "yield" !NameChar _ block:Operand (_ arg:Operand)?
	// "yield"
	if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "yield" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"yield\"",
			})
		}
		goto fail
	}
	pos += 5
	// !NameChar
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// NameChar
		if !_fail(parser, _NameCharFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!NameChar",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// block:Operand
	{
		pos5 := pos
		// Operand
		if !_fail(parser, _OperandFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// (_ arg:Operand)?
	{
		pos7 := pos
		// (_ arg:Operand)
		// _ arg:Operand
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail8
		}
		// arg:Operand
		{
			pos10 := pos
			// Operand
			if !_fail(parser, _OperandFail, errPos, failure, &pos) {
				goto fail8
			}
			labels[1] = parser.text[pos10:pos]
		}
		goto ok11
	fail8:
		pos = pos7
	ok11:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _YieldAction(parser *_Parser, start int) (int, *instrNode) {
	var labels [2]string
	use(labels)
	var label0 operandNode
	var label1 operandNode
	dp := parser.deltaPos[start][_Yield]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Yield}
	n := parser.act[key]
	if n != nil {
		n := n.(instrNode)
		return start + int(dp-1), &n
	}
	var node instrNode
	pos := start
	// action
	{
		start0 := pos
		// "yield" !NameChar _ block:Operand (_ arg:Operand)?
		// "yield"
		if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "yield" {
			goto fail
		}
		pos += 5
		// !NameChar
		{
			pos3 := pos
			// NameChar
			if p, n := _NameCharAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// block:Operand
		{
			pos6 := pos
			// Operand
			if p, n := _OperandAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		// (_ arg:Operand)?
		{
			pos8 := pos
			// (_ arg:Operand)
			// _ arg:Operand
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail9
			} else {
				pos = p
			}
			// arg:Operand
			{
				pos11 := pos
				// Operand
				if p, n := _OperandAction(parser, pos); n == nil {
					goto fail9
				} else {
					label1 = *n
					pos = p
				}
				labels[1] = parser.text[pos11:pos]
			}
			goto ok12
		fail9:
			pos = pos8
		ok12:
		}
		node = func(
			start, end int, arg operandNode, block operandNode) instrNode {
			return instrNode(&yieldInstr{Block: block, Arg: arg, L: l(parser, start, end)})
		}(
			start0, pos, label1, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ToAryAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _ToAry, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// "to_ary" !NameChar _ src:Operand
	// "to_ary"
	if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "to_ary" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 6
	// !NameChar
	{
		pos2 := pos
		perr4 := perr
		// NameChar
		if !_accept(parser, _NameCharAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// src:Operand
	{
		pos5 := pos
		// Operand
		if !_accept(parser, _OperandAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	return _memoize(parser, _ToAry, start, pos, perr)
fail:
	return _memoize(parser, _ToAry, start, -1, perr)
}

func _ToAryFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _ToAry, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "ToAry",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _ToAry}
	// action
	// "to_ary" !NameChar _ src:Operand
	// "to_ary"
	if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "to_ary" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"to_ary\"",
			})
		}
		goto fail
	}
	pos += 6
	// !NameChar
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// NameChar
		if !_fail(parser, _NameCharFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!NameChar",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// src:Operand
	{
		pos5 := pos
		// Operand
		if !_fail(parser, _OperandFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ToAryAction(parser *_Parser, start int) (int, *instrNode) {
	var labels [1]string
	use(labels)
	var label0 operandNode
	dp := parser.deltaPos[start][_ToAry]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _ToAry}
	n := parser.act[key]
	if n != nil {
		n := n.(instrNode)
		return start + int(dp-1), &n
	}
	var node instrNode
	pos := start
	// action
	{
		start0 := pos
		// "to_ary" !NameChar _ src:Operand
		// "to_ary"
		if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "to_ary" {
			goto fail
		}
		pos += 6
		// !NameChar
		{
			pos3 := pos
			// NameChar
			if p, n := _NameCharAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// src:Operand
		{
			pos6 := pos
			// Operand
			if p, n := _OperandAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		node = func(
			start, end int, src operandNode) instrNode {
			return instrNode(&toAryInstr{Src: src, L: l(parser, start, end)})
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ElemAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _Elem, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// "elem" !NameChar _ ary:Operand _ index:Int rest:(_ "rest" !NameChar)?
	// "elem"
	if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "elem" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 4
	// !NameChar
	{
		pos2 := pos
		perr4 := perr
		// NameChar
		if !_accept(parser, _NameCharAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// ary:Operand
	{
		pos5 := pos
		// Operand
		if !_accept(parser, _OperandAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// index:Int
	{
		pos6 := pos
		// Int
		if !_accept(parser, _IntAccepts, &pos, &perr) {
			goto fail
		}
		labels[1] = parser.text[pos6:pos]
	}
	// rest:(_ "rest" !NameChar)?
	{
		pos7 := pos
		// (_ "rest" !NameChar)?
		{
			pos9 := pos
			// (_ "rest" !NameChar)
			// _ "rest" !NameChar
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail10
			}
			// "rest"
			if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "rest" {
				perr = _max(perr, pos)
				goto fail10
			}
			pos += 4
			// !NameChar
			{
				pos13 := pos
				perr15 := perr
				// NameChar
				if !_accept(parser, _NameCharAccepts, &pos, &perr) {
					goto ok12
				}
				pos = pos13
				perr = _max(perr15, pos)
				goto fail10
			ok12:
				pos = pos13
				perr = perr15
			}
			goto ok16
		fail10:
			pos = pos9
		ok16:
		}
		labels[2] = parser.text[pos7:pos]
	}
	return _memoize(parser, _Elem, start, pos, perr)
fail:
	return _memoize(parser, _Elem, start, -1, perr)
}

func _ElemFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _Elem, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Elem",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Elem}
	// action
	// "elem" !NameChar _ ary:Operand _ index:Int rest:(_ "rest" !NameChar)?
	// "elem"
	if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "elem" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"elem\"",
			})
		}
		goto fail
	}
	pos += 4
	// !NameChar
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// NameChar
		if !_fail(parser, _NameCharFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!NameChar",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// ary:Operand
	{
		pos5 := pos
		// Operand
		if !_fail(parser, _OperandFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// index:Int
	{
		pos6 := pos
		// Int
		if !_fail(parser, _IntFail, errPos, failure, &pos) {
			goto fail
		}
		labels[1] = parser.text[pos6:pos]
	}
	// rest:(_ "rest" !NameChar)?
	{
		pos7 := pos
		// (_ "rest" !NameChar)?
		{
			pos9 := pos
			// (_ "rest" !NameChar)
			// _ "rest" !NameChar
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail10
			}
			// "rest"
			if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "rest" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"rest\"",
					})
				}
				goto fail10
			}
			pos += 4
			// !NameChar
			{
				pos13 := pos
				nkids14 := len(failure.Kids)
				// NameChar
				if !_fail(parser, _NameCharFail, errPos, failure, &pos) {
					goto ok12
				}
				pos = pos13
				failure.Kids = failure.Kids[:nkids14]
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "!NameChar",
					})
				}
				goto fail10
			ok12:
				pos = pos13
				failure.Kids = failure.Kids[:nkids14]
			}
			goto ok16
		fail10:
			pos = pos9
		ok16:
		}
		labels[2] = parser.text[pos7:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ElemAction(parser *_Parser, start int) (int, *instrNode) {
	var labels [3]string
	use(labels)
	var label0 operandNode
	var label1 *intLit
	var label2 string
	dp := parser.deltaPos[start][_Elem]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Elem}
	n := parser.act[key]
	if n != nil {
		n := n.(instrNode)
		return start + int(dp-1), &n
	}
	var node instrNode
	pos := start
	// action
	{
		start0 := pos
		// "elem" !NameChar _ ary:Operand _ index:Int rest:(_ "rest" !NameChar)?
		// "elem"
		if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "elem" {
			goto fail
		}
		pos += 4
		// !NameChar
		{
			pos3 := pos
			// NameChar
			if p, n := _NameCharAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ary:Operand
		{
			pos6 := pos
			// Operand
			if p, n := _OperandAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// index:Int
		{
			pos7 := pos
			// Int
			if p, n := _IntAction(parser, pos); n == nil {
				goto fail
			} else {
				label1 = *n
				pos = p
			}
			labels[1] = parser.text[pos7:pos]
		}
		// rest:(_ "rest" !NameChar)?
		{
			pos8 := pos
			// (_ "rest" !NameChar)?
			{
				pos10 := pos
				// (_ "rest" !NameChar)
				// _ "rest" !NameChar
				{
					var node12 string
					// _
					if p, n := __Action(parser, pos); n == nil {
						goto fail11
					} else {
						node12 = *n
						pos = p
					}
					label2, node12 = label2+node12, ""
					// "rest"
					if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "rest" {
						goto fail11
					}
					node12 = parser.text[pos : pos+4]
					pos += 4
					label2, node12 = label2+node12, ""
					// !NameChar
					{
						pos14 := pos
						// NameChar
						if p, n := _NameCharAction(parser, pos); n == nil {
							goto ok13
						} else {
							pos = p
						}
						pos = pos14
						goto fail11
					ok13:
						pos = pos14
						node12 = ""
					}
					label2, node12 = label2+node12, ""
				}
				goto ok17
			fail11:
				label2 = ""
				pos = pos10
			ok17:
			}
			labels[2] = parser.text[pos8:pos]
		}
		node = func(
			start, end int, ary operandNode, index *intLit, rest string) instrNode {
			return instrNode(&elemInstr{Array: ary, Index: index, Rest: rest != "", L: l(parser, start, end)})
		}(
			start0, pos, label0, label1, label2)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _OperandsAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _Operands, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ first:Operand rest:(_ "," _ o:Operand {…})*
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// first:Operand
	{
		pos1 := pos
		// Operand
		if !_accept(parser, _OperandAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// rest:(_ "," _ o:Operand {…})*
	{
		pos2 := pos
		// (_ "," _ o:Operand {…})*
		for {
			pos4 := pos
			// (_ "," _ o:Operand {…})
			// action
			// _ "," _ o:Operand
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail6
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				perr = _max(perr, pos)
				goto fail6
			}
			pos++
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail6
			}
			// o:Operand
			{
				pos8 := pos
				// Operand
				if !_accept(parser, _OperandAccepts, &pos, &perr) {
					goto fail6
				}
				labels[1] = parser.text[pos8:pos]
			}
			continue
		fail6:
			pos = pos4
			break
		}
		labels[2] = parser.text[pos2:pos]
	}
	return _memoize(parser, _Operands, start, pos, perr)
fail:
	return _memoize(parser, _Operands, start, -1, perr)
}

func _OperandsFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _Operands, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Operands",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Operands}
	// action
	// _ first:Operand rest:(_ "," _ o:Operand {…})*
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// first:Operand
	{
		pos1 := pos
		// Operand
		if !_fail(parser, _OperandFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// rest:(_ "," _ o:Operand {…})*
	{
		pos2 := pos
		// (_ "," _ o:Operand {…})*
		for {
			pos4 := pos
			// (_ "," _ o:Operand {…})
			// action
			// _ "," _ o:Operand
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail6
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\",\"",
					})
				}
				goto fail6
			}
			pos++
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail6
			}
			// o:Operand
			{
				pos8 := pos
				// Operand
				if !_fail(parser, _OperandFail, errPos, failure, &pos) {
					goto fail6
				}
				labels[1] = parser.text[pos8:pos]
			}
			continue
		fail6:
			pos = pos4
			break
		}
		labels[2] = parser.text[pos2:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _OperandsAction(parser *_Parser, start int) (int, *[]operandNode) {
	var labels [3]string
	use(labels)
	var label0 operandNode
	var label1 operandNode
	var label2 []operandNode
	dp := parser.deltaPos[start][_Operands]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Operands}
	n := parser.act[key]
	if n != nil {
		n := n.([]operandNode)
		return start + int(dp-1), &n
	}
	var node []operandNode
	pos := start
	// action
	{
		start0 := pos
		// _ first:Operand rest:(_ "," _ o:Operand {…})*
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// first:Operand
		{
			pos2 := pos
			// Operand
			if p, n := _OperandAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// rest:(_ "," _ o:Operand {…})*
		{
			pos3 := pos
			// (_ "," _ o:Operand {…})*
			for {
				pos5 := pos
				var node6 operandNode
				// (_ "," _ o:Operand {…})
				// action
				{
					start8 := pos
					// _ "," _ o:Operand
					// _
					if p, n := __Action(parser, pos); n == nil {
						goto fail7
					} else {
						pos = p
					}
					// ","
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
						goto fail7
					}
					pos++
					// _
					if p, n := __Action(parser, pos); n == nil {
						goto fail7
					} else {
						pos = p
					}
					// o:Operand
					{
						pos10 := pos
						// Operand
						if p, n := _OperandAction(parser, pos); n == nil {
							goto fail7
						} else {
							label1 = *n
							pos = p
						}
						labels[1] = parser.text[pos10:pos]
					}
					node6 = func(
						start, end int, first operandNode, o operandNode) operandNode {
						return operandNode(o)
					}(
						start8, pos, label0, label1)
				}
				label2 = append(label2, node6)
				continue
			fail7:
				pos = pos5
				break
			}
			labels[2] = parser.text[pos3:pos]
		}
		node = func(
			start, end int, first operandNode, o operandNode, rest []operandNode) []operandNode {
			return []operandNode(append([]operandNode{first}, rest...))
		}(
			start0, pos, label0, label1, label2)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _OperandAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Operand, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// Array/Splat/ClosureRef/Symbol/String/Number/Const/v:Var {…}
	{
		pos3 := pos
		// Array
		if !_accept(parser, _ArrayAccepts, &pos, &perr) {
			goto fail4
		}
		goto ok0
	fail4:
		pos = pos3
		// Splat
		if !_accept(parser, _SplatAccepts, &pos, &perr) {
			goto fail5
		}
		goto ok0
	fail5:
		pos = pos3
		// ClosureRef
		if !_accept(parser, _ClosureRefAccepts, &pos, &perr) {
			goto fail6
		}
		goto ok0
	fail6:
		pos = pos3
		// Symbol
		if !_accept(parser, _SymbolAccepts, &pos, &perr) {
			goto fail7
		}
		goto ok0
	fail7:
		pos = pos3
		// String
		if !_accept(parser, _StringAccepts, &pos, &perr) {
			goto fail8
		}
		goto ok0
	fail8:
		pos = pos3
		// Number
		if !_accept(parser, _NumberAccepts, &pos, &perr) {
			goto fail9
		}
		goto ok0
	fail9:
		pos = pos3
		// Const
		if !_accept(parser, _ConstAccepts, &pos, &perr) {
			goto fail10
		}
		goto ok0
	fail10:
		pos = pos3
		// action
		// v:Var
		{
			pos12 := pos
			// Var
			if !_accept(parser, _VarAccepts, &pos, &perr) {
				goto fail11
			}
			labels[0] = parser.text[pos12:pos]
		}
		goto ok0
	fail11:
		pos = pos3
		goto fail
	ok0:
	}
	perr = start
	return _memoize(parser, _Operand, start, pos, perr)
fail:
	return _memoize(parser, _Operand, start, -1, perr)
}

func _OperandFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Operand, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Operand",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Operand}
	// Array/Splat/ClosureRef/Symbol/String/Number/Const/v:Var {…}
	{
		pos3 := pos
		// Array
		if !_fail(parser, _ArrayFail, errPos, failure, &pos) {
			goto fail4
		}
		goto ok0
	fail4:
		pos = pos3
		// Splat
		if !_fail(parser, _SplatFail, errPos, failure, &pos) {
			goto fail5
		}
		goto ok0
	fail5:
		pos = pos3
		// ClosureRef
		if !_fail(parser, _ClosureRefFail, errPos, failure, &pos) {
			goto fail6
		}
		goto ok0
	fail6:
		pos = pos3
		// Symbol
		if !_fail(parser, _SymbolFail, errPos, failure, &pos) {
			goto fail7
		}
		goto ok0
	fail7:
		pos = pos3
		// String
		if !_fail(parser, _StringFail, errPos, failure, &pos) {
			goto fail8
		}
		goto ok0
	fail8:
		pos = pos3
		// Number
		if !_fail(parser, _NumberFail, errPos, failure, &pos) {
			goto fail9
		}
		goto ok0
	fail9:
		pos = pos3
		// Const
		if !_fail(parser, _ConstFail, errPos, failure, &pos) {
			goto fail10
		}
		goto ok0
	fail10:
		pos = pos3
		// action
		// v:Var
		{
			pos12 := pos
			// Var
			if !_fail(parser, _VarFail, errPos, failure, &pos) {
				goto fail11
			}
			labels[0] = parser.text[pos12:pos]
		}
		goto ok0
	fail11:
		pos = pos3
		goto fail
	ok0:
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "operand"
	parser.fail[key] = failure
	return -1, failure
}

func _OperandAction(parser *_Parser, start int) (int, *operandNode) {
	var labels [1]string
	use(labels)
	var label0 *varRef
	dp := parser.deltaPos[start][_Operand]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Operand}
	n := parser.act[key]
	if n != nil {
		n := n.(operandNode)
		return start + int(dp-1), &n
	}
	var node operandNode
	pos := start
	// Array/Splat/ClosureRef/Symbol/String/Number/Const/v:Var {…}
	{
		pos3 := pos
		var node2 operandNode
		// Array
		if p, n := _ArrayAction(parser, pos); n == nil {
			goto fail4
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// Splat
		if p, n := _SplatAction(parser, pos); n == nil {
			goto fail5
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail5:
		node = node2
		pos = pos3
		// ClosureRef
		if p, n := _ClosureRefAction(parser, pos); n == nil {
			goto fail6
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail6:
		node = node2
		pos = pos3
		// Symbol
		if p, n := _SymbolAction(parser, pos); n == nil {
			goto fail7
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail7:
		node = node2
		pos = pos3
		// String
		if p, n := _StringAction(parser, pos); n == nil {
			goto fail8
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail8:
		node = node2
		pos = pos3
		// Number
		if p, n := _NumberAction(parser, pos); n == nil {
			goto fail9
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail9:
		node = node2
		pos = pos3
		// Const
		if p, n := _ConstAction(parser, pos); n == nil {
			goto fail10
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail10:
		node = node2
		pos = pos3
		// action
		{
			start12 := pos
			// v:Var
			{
				pos13 := pos
				// Var
				if p, n := _VarAction(parser, pos); n == nil {
					goto fail11
				} else {
					label0 = *n
					pos = p
				}
				labels[0] = parser.text[pos13:pos]
			}
			node = func(
				start, end int, v *varRef) operandNode {
				return operandNode(v)
			}(
				start12, pos, label0)
		}
		goto ok0
	fail11:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ArrayAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Array, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// "[" elems:Operands? _ "]"
	// "["
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// elems:Operands?
	{
		pos1 := pos
		// Operands?
		{
			pos3 := pos
			// Operands
			if !_accept(parser, _OperandsAccepts, &pos, &perr) {
				goto fail4
			}
			goto ok5
		fail4:
			pos = pos3
		ok5:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "]"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	return _memoize(parser, _Array, start, pos, perr)
fail:
	return _memoize(parser, _Array, start, -1, perr)
}

func _ArrayFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Array, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Array",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Array}
	// action
	// "[" elems:Operands? _ "]"
	// "["
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"[\"",
			})
		}
		goto fail
	}
	pos++
	// elems:Operands?
	{
		pos1 := pos
		// Operands?
		{
			pos3 := pos
			// Operands
			if !_fail(parser, _OperandsFail, errPos, failure, &pos) {
				goto fail4
			}
			goto ok5
		fail4:
			pos = pos3
		ok5:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "]"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"]\"",
			})
		}
		goto fail
	}
	pos++
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ArrayAction(parser *_Parser, start int) (int, *operandNode) {
	var labels [1]string
	use(labels)
	var label0 *[]operandNode
	dp := parser.deltaPos[start][_Array]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Array}
	n := parser.act[key]
	if n != nil {
		n := n.(operandNode)
		return start + int(dp-1), &n
	}
	var node operandNode
	pos := start
	// action
	{
		start0 := pos
		// "[" elems:Operands? _ "]"
		// "["
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
			goto fail
		}
		pos++
		// elems:Operands?
		{
			pos2 := pos
			// Operands?
			{
				pos4 := pos
				label0 = new([]operandNode)
				// Operands
				if p, n := _OperandsAction(parser, pos); n == nil {
					goto fail5
				} else {
					*label0 = *n
					pos = p
				}
				goto ok6
			fail5:
				label0 = nil
				pos = pos4
			ok6:
			}
			labels[0] = parser.text[pos2:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "]"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
			goto fail
		}
		pos++
		node = func(
			start, end int, elems *[]operandNode) operandNode {
			return operandNode(&arrayLit{Elems: operands(elems), L: l(parser, start, end)})
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _SplatAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Splat, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// "*" _ op:Operand
	// "*"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "*" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// op:Operand
	{
		pos1 := pos
		// Operand
		if !_accept(parser, _OperandAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	return _memoize(parser, _Splat, start, pos, perr)
fail:
	return _memoize(parser, _Splat, start, -1, perr)
}

func _SplatFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Splat, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Splat",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Splat}
	// action
	// "*" _ op:Operand
	// "*"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "*" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"*\"",
			})
		}
		goto fail
	}
	pos++
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// op:Operand
	{
		pos1 := pos
		// Operand
		if !_fail(parser, _OperandFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _SplatAction(parser *_Parser, start int) (int, *operandNode) {
	var labels [1]string
	use(labels)
	var label0 operandNode
	dp := parser.deltaPos[start][_Splat]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Splat}
	n := parser.act[key]
	if n != nil {
		n := n.(operandNode)
		return start + int(dp-1), &n
	}
	var node operandNode
	pos := start
	// action
	{
		start0 := pos
		// "*" _ op:Operand
		// "*"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "*" {
			goto fail
		}
		pos++
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// op:Operand
		{
			pos2 := pos
			// Operand
			if p, n := _OperandAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		node = func(
			start, end int, op operandNode) operandNode {
			return operandNode(&splat{Operand: op, L: l(parser, start, end)})
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ClosureRefAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _ClosureRef, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// "&" name:Name
	// "&"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "&" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// name:Name
	{
		pos1 := pos
		// Name
		if !_accept(parser, _NameAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	return _memoize(parser, _ClosureRef, start, pos, perr)
fail:
	return _memoize(parser, _ClosureRef, start, -1, perr)
}

func _ClosureRefFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _ClosureRef, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "ClosureRef",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _ClosureRef}
	// action
	// "&" name:Name
	// "&"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "&" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"&\"",
			})
		}
		goto fail
	}
	pos++
	// name:Name
	{
		pos1 := pos
		// Name
		if !_fail(parser, _NameFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ClosureRefAction(parser *_Parser, start int) (int, *operandNode) {
	var labels [1]string
	use(labels)
	var label0 ident
	dp := parser.deltaPos[start][_ClosureRef]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _ClosureRef}
	n := parser.act[key]
	if n != nil {
		n := n.(operandNode)
		return start + int(dp-1), &n
	}
	var node operandNode
	pos := start
	// action
	{
		start0 := pos
		// "&" name:Name
		// "&"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "&" {
			goto fail
		}
		pos++
		// name:Name
		{
			pos2 := pos
			// Name
			if p, n := _NameAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		node = func(
			start, end int, name ident) operandNode {
			return operandNode(&closureRef{Name: name.Name, L: l(parser, start, end)})
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _SymbolAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Symbol, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// ":" name:Name
	// ":"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// name:Name
	{
		pos1 := pos
		// Name
		if !_accept(parser, _NameAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	return _memoize(parser, _Symbol, start, pos, perr)
fail:
	return _memoize(parser, _Symbol, start, -1, perr)
}

func _SymbolFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Symbol, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Symbol",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Symbol}
	// action
	// ":" name:Name
	// ":"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\":\"",
			})
		}
		goto fail
	}
	pos++
	// name:Name
	{
		pos1 := pos
		// Name
		if !_fail(parser, _NameFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _SymbolAction(parser *_Parser, start int) (int, *operandNode) {
	var labels [1]string
	use(labels)
	var label0 ident
	dp := parser.deltaPos[start][_Symbol]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Symbol}
	n := parser.act[key]
	if n != nil {
		n := n.(operandNode)
		return start + int(dp-1), &n
	}
	var node operandNode
	pos := start
	// action
	{
		start0 := pos
		// ":" name:Name
		// ":"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
			goto fail
		}
		pos++
		// name:Name
		{
			pos2 := pos
			// Name
			if p, n := _NameAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		node = func(
			start, end int, name ident) operandNode {
			return operandNode(&symbolLit{Name: name.Name, L: l(parser, start, end)})
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _StringAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _String, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// text:(["] (Esc/[^"\\\n])* ["])
	{
		pos0 := pos
		// (["] (Esc/[^"\\\n])* ["])
		// ["] (Esc/[^"\\\n])* ["]
		// ["]
		if r, w := _next(parser, pos); r != '"' {
			perr = _max(perr, pos)
			goto fail
		} else {
			pos += w
		}
		// (Esc/[^"\\\n])*
		for {
			pos3 := pos
			// (Esc/[^"\\\n])
			// Esc/[^"\\\n]
			{
				pos9 := pos
				// Esc
				if !_accept(parser, _EscAccepts, &pos, &perr) {
					goto fail10
				}
				goto ok6
			fail10:
				pos = pos9
				// [^"\\\n]
				if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == '"' || r == '\\' || r == '\n' {
					perr = _max(perr, pos)
					goto fail11
				} else {
					pos += w
				}
				goto ok6
			fail11:
				pos = pos9
				goto fail5
			ok6:
			}
			continue
		fail5:
			pos = pos3
			break
		}
		// ["]
		if r, w := _next(parser, pos); r != '"' {
			perr = _max(perr, pos)
			goto fail
		} else {
			pos += w
		}
		labels[0] = parser.text[pos0:pos]
	}
	perr = start
	return _memoize(parser, _String, start, pos, perr)
fail:
	return _memoize(parser, _String, start, -1, perr)
}

func _StringFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _String, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "String",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _String}
	// action
	// text:(["] (Esc/[^"\\\n])* ["])
	{
		pos0 := pos
		// (["] (Esc/[^"\\\n])* ["])
		// ["] (Esc/[^"\\\n])* ["]
		// ["]
		if r, w := _next(parser, pos); r != '"' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "[\"]",
				})
			}
			goto fail
		} else {
			pos += w
		}
		// (Esc/[^"\\\n])*
		for {
			pos3 := pos
			// (Esc/[^"\\\n])
			// Esc/[^"\\\n]
			{
				pos9 := pos
				// Esc
				if !_fail(parser, _EscFail, errPos, failure, &pos) {
					goto fail10
				}
				goto ok6
			fail10:
				pos = pos9
				// [^"\\\n]
				if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == '"' || r == '\\' || r == '\n' {
					if pos >= errPos {
						failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "[^\"\\\\\\n]",
						})
					}
					goto fail11
				} else {
					pos += w
				}
				goto ok6
			fail11:
				pos = pos9
				goto fail5
			ok6:
			}
			continue
		fail5:
			pos = pos3
			break
		}
		// ["]
		if r, w := _next(parser, pos); r != '"' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "[\"]",
				})
			}
			goto fail
		} else {
			pos += w
		}
		labels[0] = parser.text[pos0:pos]
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "string"
	parser.fail[key] = failure
	return -1, failure
}

func _StringAction(parser *_Parser, start int) (int, *operandNode) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_String]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _String}
	n := parser.act[key]
	if n != nil {
		n := n.(operandNode)
		return start + int(dp-1), &n
	}
	var node operandNode
	pos := start
	// action
	{
		start0 := pos
		// text:(["] (Esc/[^"\\\n])* ["])
		{
			pos1 := pos
			// (["] (Esc/[^"\\\n])* ["])
			// ["] (Esc/[^"\\\n])* ["]
			{
				var node2 string
				// ["]
				if r, w := _next(parser, pos); r != '"' {
					goto fail
				} else {
					node2 = parser.text[pos : pos+w]
					pos += w
				}
				label0, node2 = label0+node2, ""
				// (Esc/[^"\\\n])*
				for {
					pos4 := pos
					var node5 string
					// (Esc/[^"\\\n])
					// Esc/[^"\\\n]
					{
						pos10 := pos
						var node9 string
						// Esc
						if p, n := _EscAction(parser, pos); n == nil {
							goto fail11
						} else {
							node5 = *n
							pos = p
						}
						goto ok7
					fail11:
						node5 = node9
						pos = pos10
						// [^"\\\n]
						if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == '"' || r == '\\' || r == '\n' {
							goto fail12
						} else {
							node5 = parser.text[pos : pos+w]
							pos += w
						}
						goto ok7
					fail12:
						node5 = node9
						pos = pos10
						goto fail6
					ok7:
					}
					node2 += node5
					continue
				fail6:
					pos = pos4
					break
				}
				label0, node2 = label0+node2, ""
				// ["]
				if r, w := _next(parser, pos); r != '"' {
					goto fail
				} else {
					node2 = parser.text[pos : pos+w]
					pos += w
				}
				label0, node2 = label0+node2, ""
			}
			labels[0] = parser.text[pos1:pos]
		}
		node = func(
			start, end int, text string) operandNode {
			return operandNode(&stringLit{Text: text, L: l(parser, start, end)})
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _EscAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Esc, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// "\\" .
	// "\\"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\\" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// .
	if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
		perr = _max(perr, pos)
		goto fail
	} else {
		pos += w
	}
	return _memoize(parser, _Esc, start, pos, perr)
fail:
	return _memoize(parser, _Esc, start, -1, perr)
}

func _EscFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Esc, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Esc",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Esc}
	// "\\" .
	// "\\"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\\" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"\\\\\"",
			})
		}
		goto fail
	}
	pos++
	// .
	if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: ".",
			})
		}
		goto fail
	} else {
		pos += w
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _EscAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_Esc]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Esc}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// "\\" .
	{
		var node0 string
		// "\\"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\\" {
			goto fail
		}
		node0 = parser.text[pos : pos+1]
		pos++
		node, node0 = node+node0, ""
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			goto fail
		} else {
			node0 = parser.text[pos : pos+w]
			pos += w
		}
		node, node0 = node+node0, ""
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _NumberAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Number, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// Float/i:Int {…}
	{
		pos3 := pos
		// Float
		if !_accept(parser, _FloatAccepts, &pos, &perr) {
			goto fail4
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// i:Int
		{
			pos6 := pos
			// Int
			if !_accept(parser, _IntAccepts, &pos, &perr) {
				goto fail5
			}
			labels[0] = parser.text[pos6:pos]
		}
		goto ok0
	fail5:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _Number, start, pos, perr)
fail:
	return _memoize(parser, _Number, start, -1, perr)
}

func _NumberFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Number, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Number",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Number}
	// Float/i:Int {…}
	{
		pos3 := pos
		// Float
		if !_fail(parser, _FloatFail, errPos, failure, &pos) {
			goto fail4
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// i:Int
		{
			pos6 := pos
			// Int
			if !_fail(parser, _IntFail, errPos, failure, &pos) {
				goto fail5
			}
			labels[0] = parser.text[pos6:pos]
		}
		goto ok0
	fail5:
		pos = pos3
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _NumberAction(parser *_Parser, start int) (int, *operandNode) {
	var labels [1]string
	use(labels)
	var label0 *intLit
	dp := parser.deltaPos[start][_Number]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Number}
	n := parser.act[key]
	if n != nil {
		n := n.(operandNode)
		return start + int(dp-1), &n
	}
	var node operandNode
	pos := start
	// Float/i:Int {…}
	{
		pos3 := pos
		var node2 operandNode
		// Float
		if p, n := _FloatAction(parser, pos); n == nil {
			goto fail4
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start6 := pos
			// i:Int
			{
				pos7 := pos
				// Int
				if p, n := _IntAction(parser, pos); n == nil {
					goto fail5
				} else {
					label0 = *n
					pos = p
				}
				labels[0] = parser.text[pos7:pos]
			}
			node = func(
				start, end int, i *intLit) operandNode {
				return operandNode(i)
			}(
				start6, pos, label0)
		}
		goto ok0
	fail5:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _FloatAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Float, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// text:("-"? [0-9]+ ("." [0-9]+ Exponent?/Exponent))
	{
		pos0 := pos
		// ("-"? [0-9]+ ("." [0-9]+ Exponent?/Exponent))
		// "-"? [0-9]+ ("." [0-9]+ Exponent?/Exponent)
		// "-"?
		{
			pos3 := pos
			// "-"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "-" {
				perr = _max(perr, pos)
				goto fail4
			}
			pos++
			goto ok5
		fail4:
			pos = pos3
		ok5:
		}
		// [0-9]+
		// [0-9]
		if r, w := _next(parser, pos); r < '0' || r > '9' {
			perr = _max(perr, pos)
			goto fail
		} else {
			pos += w
		}
		for {
			pos7 := pos
			// [0-9]
			if r, w := _next(parser, pos); r < '0' || r > '9' {
				perr = _max(perr, pos)
				goto fail9
			} else {
				pos += w
			}
			continue
		fail9:
			pos = pos7
			break
		}
		// ("." [0-9]+ Exponent?/Exponent)
		// "." [0-9]+ Exponent?/Exponent
		{
			pos13 := pos
			// "." [0-9]+ Exponent?
			// "."
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "." {
				perr = _max(perr, pos)
				goto fail14
			}
			pos++
			// [0-9]+
			// [0-9]
			if r, w := _next(parser, pos); r < '0' || r > '9' {
				perr = _max(perr, pos)
				goto fail14
			} else {
				pos += w
			}
			for {
				pos17 := pos
				// [0-9]
				if r, w := _next(parser, pos); r < '0' || r > '9' {
					perr = _max(perr, pos)
					goto fail19
				} else {
					pos += w
				}
				continue
			fail19:
				pos = pos17
				break
			}
			// Exponent?
			{
				pos21 := pos
				// Exponent
				if !_accept(parser, _ExponentAccepts, &pos, &perr) {
					goto fail22
				}
				goto ok23
			fail22:
				pos = pos21
			ok23:
			}
			goto ok10
		fail14:
			pos = pos13
			// Exponent
			if !_accept(parser, _ExponentAccepts, &pos, &perr) {
				goto fail24
			}
			goto ok10
		fail24:
			pos = pos13
			goto fail
		ok10:
		}
		labels[0] = parser.text[pos0:pos]
	}
	return _memoize(parser, _Float, start, pos, perr)
fail:
	return _memoize(parser, _Float, start, -1, perr)
}

func _FloatFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Float, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Float",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Float}
	// action
	// text:("-"? [0-9]+ ("." [0-9]+ Exponent?/Exponent))
	{
		pos0 := pos
		// ("-"? [0-9]+ ("." [0-9]+ Exponent?/Exponent))
		// "-"? [0-9]+ ("." [0-9]+ Exponent?/Exponent)
		// "-"?
		{
			pos3 := pos
			// "-"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "-" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"-\"",
					})
				}
				goto fail4
			}
			pos++
			goto ok5
		fail4:
			pos = pos3
		ok5:
		}
		// [0-9]+
		// [0-9]
		if r, w := _next(parser, pos); r < '0' || r > '9' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "[0-9]",
				})
			}
			goto fail
		} else {
			pos += w
		}
		for {
			pos7 := pos
			// [0-9]
			if r, w := _next(parser, pos); r < '0' || r > '9' {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "[0-9]",
					})
				}
				goto fail9
			} else {
				pos += w
			}
			continue
		fail9:
			pos = pos7
			break
		}
		// ("." [0-9]+ Exponent?/Exponent)
		// "." [0-9]+ Exponent?/Exponent
		{
			pos13 := pos
			// "." [0-9]+ Exponent?
			// "."
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "." {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\".\"",
					})
				}
				goto fail14
			}
			pos++
			// [0-9]+
			// [0-9]
			if r, w := _next(parser, pos); r < '0' || r > '9' {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "[0-9]",
					})
				}
				goto fail14
			} else {
				pos += w
			}
			for {
				pos17 := pos
				// [0-9]
				if r, w := _next(parser, pos); r < '0' || r > '9' {
					if pos >= errPos {
						failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "[0-9]",
						})
					}
					goto fail19
				} else {
					pos += w
				}
				continue
			fail19:
				pos = pos17
				break
			}
			// Exponent?
			{
				pos21 := pos
				// Exponent
				if !_fail(parser, _ExponentFail, errPos, failure, &pos) {
					goto fail22
				}
				goto ok23
			fail22:
				pos = pos21
			ok23:
			}
			goto ok10
		fail14:
			pos = pos13
			// Exponent
			if !_fail(parser, _ExponentFail, errPos, failure, &pos) {
				goto fail24
			}
			goto ok10
		fail24:
			pos = pos13
			goto fail
		ok10:
		}
		labels[0] = parser.text[pos0:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _FloatAction(parser *_Parser, start int) (int, *operandNode) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_Float]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Float}
	n := parser.act[key]
	if n != nil {
		n := n.(operandNode)
		return start + int(dp-1), &n
	}
	var node operandNode
	pos := start
	// action
	{
		start0 := pos
		// text:("-"? [0-9]+ ("." [0-9]+ Exponent?/Exponent))
		{
			pos1 := pos
			// ("-"? [0-9]+ ("." [0-9]+ Exponent?/Exponent))
			// "-"? [0-9]+ ("." [0-9]+ Exponent?/Exponent)
			{
				var node2 string
				// "-"?
				{
					pos4 := pos
					// "-"
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "-" {
						goto fail5
					}
					node2 = parser.text[pos : pos+1]
					pos++
					goto ok6
				fail5:
					node2 = ""
					pos = pos4
				ok6:
				}
				label0, node2 = label0+node2, ""
				// [0-9]+
				{
					var node9 string
					// [0-9]
					if r, w := _next(parser, pos); r < '0' || r > '9' {
						goto fail
					} else {
						node9 = parser.text[pos : pos+w]
						pos += w
					}
					node2 += node9
				}
				for {
					pos8 := pos
					var node9 string
					// [0-9]
					if r, w := _next(parser, pos); r < '0' || r > '9' {
						goto fail10
					} else {
						node9 = parser.text[pos : pos+w]
						pos += w
					}
					node2 += node9
					continue
				fail10:
					pos = pos8
					break
				}
				label0, node2 = label0+node2, ""
				// ("." [0-9]+ Exponent?/Exponent)
				// "." [0-9]+ Exponent?/Exponent
				{
					pos14 := pos
					var node13 string
					// "." [0-9]+ Exponent?
					{
						var node16 string
						// "."
						if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "." {
							goto fail15
						}
						node16 = parser.text[pos : pos+1]
						pos++
						node2, node16 = node2+node16, ""
						// [0-9]+
						{
							var node19 string
							// [0-9]
							if r, w := _next(parser, pos); r < '0' || r > '9' {
								goto fail15
							} else {
								node19 = parser.text[pos : pos+w]
								pos += w
							}
							node16 += node19
						}
						for {
							pos18 := pos
							var node19 string
							// [0-9]
							if r, w := _next(parser, pos); r < '0' || r > '9' {
								goto fail20
							} else {
								node19 = parser.text[pos : pos+w]
								pos += w
							}
							node16 += node19
							continue
						fail20:
							pos = pos18
							break
						}
						node2, node16 = node2+node16, ""
						// Exponent?
						{
							pos22 := pos
							// Exponent
							if p, n := _ExponentAction(parser, pos); n == nil {
								goto fail23
							} else {
								node16 = *n
								pos = p
							}
							goto ok24
						fail23:
							node16 = ""
							pos = pos22
						ok24:
						}
						node2, node16 = node2+node16, ""
					}
					goto ok11
				fail15:
					node2 = node13
					pos = pos14
					// Exponent
					if p, n := _ExponentAction(parser, pos); n == nil {
						goto fail25
					} else {
						node2 = *n
						pos = p
					}
					goto ok11
				fail25:
					node2 = node13
					pos = pos14
					goto fail
				ok11:
				}
				label0, node2 = label0+node2, ""
			}
			labels[0] = parser.text[pos1:pos]
		}
		node = func(
			start, end int, text string) operandNode {
			return operandNode(&floatLit{Text: text, L: l(parser, start, end)})
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ExponentAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Exponent, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// [eE] [+\-]? [0-9]+
	// [eE]
	if r, w := _next(parser, pos); r != 'e' && r != 'E' {
		perr = _max(perr, pos)
		goto fail
	} else {
		pos += w
	}
	// [+\-]?
	{
		pos2 := pos
		// [+\-]
		if r, w := _next(parser, pos); r != '+' && r != '-' {
			perr = _max(perr, pos)
			goto fail3
		} else {
			pos += w
		}
		goto ok4
	fail3:
		pos = pos2
	ok4:
	}
	// [0-9]+
	// [0-9]
	if r, w := _next(parser, pos); r < '0' || r > '9' {
		perr = _max(perr, pos)
		goto fail
	} else {
		pos += w
	}
	for {
		pos6 := pos
		// [0-9]
		if r, w := _next(parser, pos); r < '0' || r > '9' {
			perr = _max(perr, pos)
			goto fail8
		} else {
			pos += w
		}
		continue
	fail8:
		pos = pos6
		break
	}
	return _memoize(parser, _Exponent, start, pos, perr)
fail:
	return _memoize(parser, _Exponent, start, -1, perr)
}

func _ExponentFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Exponent, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Exponent",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Exponent}
	// [eE] [+\-]? [0-9]+
	// [eE]
	if r, w := _next(parser, pos); r != 'e' && r != 'E' {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "[eE]",
			})
		}
		goto fail
	} else {
		pos += w
	}
	// [+\-]?
	{
		pos2 := pos
		// [+\-]
		if r, w := _next(parser, pos); r != '+' && r != '-' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "[+\\-]",
				})
			}
			goto fail3
		} else {
			pos += w
		}
		goto ok4
	fail3:
		pos = pos2
	ok4:
	}
	// [0-9]+
	// [0-9]
	if r, w := _next(parser, pos); r < '0' || r > '9' {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "[0-9]",
			})
		}
		goto fail
	} else {
		pos += w
	}
	for {
		pos6 := pos
		// [0-9]
		if r, w := _next(parser, pos); r < '0' || r > '9' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "[0-9]",
				})
			}
			goto fail8
		} else {
			pos += w
		}
		continue
	fail8:
		pos = pos6
		break
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ExponentAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_Exponent]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Exponent}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// [eE] [+\-]? [0-9]+
	{
		var node0 string
		// [eE]
		if r, w := _next(parser, pos); r != 'e' && r != 'E' {
			goto fail
		} else {
			node0 = parser.text[pos : pos+w]
			pos += w
		}
		node, node0 = node+node0, ""
		// [+\-]?
		{
			pos2 := pos
			// [+\-]
			if r, w := _next(parser, pos); r != '+' && r != '-' {
				goto fail3
			} else {
				node0 = parser.text[pos : pos+w]
				pos += w
			}
			goto ok4
		fail3:
			node0 = ""
			pos = pos2
		ok4:
		}
		node, node0 = node+node0, ""
		// [0-9]+
		{
			var node7 string
			// [0-9]
			if r, w := _next(parser, pos); r < '0' || r > '9' {
				goto fail
			} else {
				node7 = parser.text[pos : pos+w]
				pos += w
			}
			node0 += node7
		}
		for {
			pos6 := pos
			var node7 string
			// [0-9]
			if r, w := _next(parser, pos); r < '0' || r > '9' {
				goto fail8
			} else {
				node7 = parser.text[pos : pos+w]
				pos += w
			}
			node0 += node7
			continue
		fail8:
			pos = pos6
			break
		}
		node, node0 = node+node0, ""
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _IntAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Int, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// text:("-"? [0-9]+)
	{
		pos0 := pos
		// ("-"? [0-9]+)
		// "-"? [0-9]+
		// "-"?
		{
			pos3 := pos
			// "-"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "-" {
				perr = _max(perr, pos)
				goto fail4
			}
			pos++
			goto ok5
		fail4:
			pos = pos3
		ok5:
		}
		// [0-9]+
		// [0-9]
		if r, w := _next(parser, pos); r < '0' || r > '9' {
			perr = _max(perr, pos)
			goto fail
		} else {
			pos += w
		}
		for {
			pos7 := pos
			// [0-9]
			if r, w := _next(parser, pos); r < '0' || r > '9' {
				perr = _max(perr, pos)
				goto fail9
			} else {
				pos += w
			}
			continue
		fail9:
			pos = pos7
			break
		}
		labels[0] = parser.text[pos0:pos]
	}
	perr = start
	return _memoize(parser, _Int, start, pos, perr)
fail:
	return _memoize(parser, _Int, start, -1, perr)
}

func _IntFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Int, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Int",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Int}
	// action
	// text:("-"? [0-9]+)
	{
		pos0 := pos
		// ("-"? [0-9]+)
		// "-"? [0-9]+
		// "-"?
		{
			pos3 := pos
			// "-"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "-" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"-\"",
					})
				}
				goto fail4
			}
			pos++
			goto ok5
		fail4:
			pos = pos3
		ok5:
		}
		// [0-9]+
		// [0-9]
		if r, w := _next(parser, pos); r < '0' || r > '9' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "[0-9]",
				})
			}
			goto fail
		} else {
			pos += w
		}
		for {
			pos7 := pos
			// [0-9]
			if r, w := _next(parser, pos); r < '0' || r > '9' {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "[0-9]",
					})
				}
				goto fail9
			} else {
				pos += w
			}
			continue
		fail9:
			pos = pos7
			break
		}
		labels[0] = parser.text[pos0:pos]
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "integer"
	parser.fail[key] = failure
	return -1, failure
}

func _IntAction(parser *_Parser, start int) (int, **intLit) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_Int]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Int}
	n := parser.act[key]
	if n != nil {
		n := n.(*intLit)
		return start + int(dp-1), &n
	}
	var node *intLit
	pos := start
	// action
	{
		start0 := pos
		// text:("-"? [0-9]+)
		{
			pos1 := pos
			// ("-"? [0-9]+)
			// "-"? [0-9]+
			{
				var node2 string
				// "-"?
				{
					pos4 := pos
					// "-"
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "-" {
						goto fail5
					}
					node2 = parser.text[pos : pos+1]
					pos++
					goto ok6
				fail5:
					node2 = ""
					pos = pos4
				ok6:
				}
				label0, node2 = label0+node2, ""
				// [0-9]+
				{
					var node9 string
					// [0-9]
					if r, w := _next(parser, pos); r < '0' || r > '9' {
						goto fail
					} else {
						node9 = parser.text[pos : pos+w]
						pos += w
					}
					node2 += node9
				}
				for {
					pos8 := pos
					var node9 string
					// [0-9]
					if r, w := _next(parser, pos); r < '0' || r > '9' {
						goto fail10
					} else {
						node9 = parser.text[pos : pos+w]
						pos += w
					}
					node2 += node9
					continue
				fail10:
					pos = pos8
					break
				}
				label0, node2 = label0+node2, ""
			}
			labels[0] = parser.text[pos1:pos]
		}
		node = func(
			start, end int, text string) *intLit {
			return &intLit{Text: text, L: l(parser, start, end)}
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ConstAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Const, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// name:("nil"/"true"/"false"/"self") !NameChar
	// name:("nil"/"true"/"false"/"self")
	{
		pos1 := pos
		// ("nil"/"true"/"false"/"self")
		// "nil"/"true"/"false"/"self"
		{
			pos5 := pos
			// "nil"
			if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "nil" {
				perr = _max(perr, pos)
				goto fail6
			}
			pos += 3
			goto ok2
		fail6:
			pos = pos5
			// "true"
			if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "true" {
				perr = _max(perr, pos)
				goto fail7
			}
			pos += 4
			goto ok2
		fail7:
			pos = pos5
			// "false"
			if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "false" {
				perr = _max(perr, pos)
				goto fail8
			}
			pos += 5
			goto ok2
		fail8:
			pos = pos5
			// "self"
			if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "self" {
				perr = _max(perr, pos)
				goto fail9
			}
			pos += 4
			goto ok2
		fail9:
			pos = pos5
			goto fail
		ok2:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// !NameChar
	{
		pos11 := pos
		perr13 := perr
		// NameChar
		if !_accept(parser, _NameCharAccepts, &pos, &perr) {
			goto ok10
		}
		pos = pos11
		perr = _max(perr13, pos)
		goto fail
	ok10:
		pos = pos11
		perr = perr13
	}
	return _memoize(parser, _Const, start, pos, perr)
fail:
	return _memoize(parser, _Const, start, -1, perr)
}

func _ConstFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Const, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Const",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Const}
	// action
	// name:("nil"/"true"/"false"/"self") !NameChar
	// name:("nil"/"true"/"false"/"self")
	{
		pos1 := pos
		// ("nil"/"true"/"false"/"self")
		// "nil"/"true"/"false"/"self"
		{
			pos5 := pos
			// "nil"
			if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "nil" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"nil\"",
					})
				}
				goto fail6
			}
			pos += 3
			goto ok2
		fail6:
			pos = pos5
			// "true"
			if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "true" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"true\"",
					})
				}
				goto fail7
			}
			pos += 4
			goto ok2
		fail7:
			pos = pos5
			// "false"
			if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "false" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"false\"",
					})
				}
				goto fail8
			}
			pos += 5
			goto ok2
		fail8:
			pos = pos5
			// "self"
			if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "self" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"self\"",
					})
				}
				goto fail9
			}
			pos += 4
			goto ok2
		fail9:
			pos = pos5
			goto fail
		ok2:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// !NameChar
	{
		pos11 := pos
		nkids12 := len(failure.Kids)
		// NameChar
		if !_fail(parser, _NameCharFail, errPos, failure, &pos) {
			goto ok10
		}
		pos = pos11
		failure.Kids = failure.Kids[:nkids12]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!NameChar",
			})
		}
		goto fail
	ok10:
		pos = pos11
		failure.Kids = failure.Kids[:nkids12]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ConstAction(parser *_Parser, start int) (int, *operandNode) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_Const]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Const}
	n := parser.act[key]
	if n != nil {
		n := n.(operandNode)
		return start + int(dp-1), &n
	}
	var node operandNode
	pos := start
	// action
	{
		start0 := pos
		// name:("nil"/"true"/"false"/"self") !NameChar
		// name:("nil"/"true"/"false"/"self")
		{
			pos2 := pos
			// ("nil"/"true"/"false"/"self")
			// "nil"/"true"/"false"/"self"
			{
				pos6 := pos
				var node5 string
				// "nil"
				if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "nil" {
					goto fail7
				}
				label0 = parser.text[pos : pos+3]
				pos += 3
				goto ok3
			fail7:
				label0 = node5
				pos = pos6
				// "true"
				if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "true" {
					goto fail8
				}
				label0 = parser.text[pos : pos+4]
				pos += 4
				goto ok3
			fail8:
				label0 = node5
				pos = pos6
				// "false"
				if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "false" {
					goto fail9
				}
				label0 = parser.text[pos : pos+5]
				pos += 5
				goto ok3
			fail9:
				label0 = node5
				pos = pos6
				// "self"
				if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "self" {
					goto fail10
				}
				label0 = parser.text[pos : pos+4]
				pos += 4
				goto ok3
			fail10:
				label0 = node5
				pos = pos6
				goto fail
			ok3:
			}
			labels[0] = parser.text[pos2:pos]
		}
		// !NameChar
		{
			pos12 := pos
			// NameChar
			if p, n := _NameCharAction(parser, pos); n == nil {
				goto ok11
			} else {
				pos = p
			}
			pos = pos12
			goto fail
		ok11:
			pos = pos12
		}
		node = func(
			start, end int, name string) operandNode {
			return operandNode(&constLit{Name: name, L: l(parser, start, end)})
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _VarAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _Var, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// name:(("%"/"_"/Letter) ("%"/NameChar)*) ("^" depth:Int)?
	// name:(("%"/"_"/Letter) ("%"/NameChar)*)
	{
		pos1 := pos
		// (("%"/"_"/Letter) ("%"/NameChar)*)
		// ("%"/"_"/Letter) ("%"/NameChar)*
		// ("%"/"_"/Letter)
		// "%"/"_"/Letter
		{
			pos6 := pos
			// "%"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "%" {
				perr = _max(perr, pos)
				goto fail7
			}
			pos++
			goto ok3
		fail7:
			pos = pos6
			// "_"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "_" {
				perr = _max(perr, pos)
				goto fail8
			}
			pos++
			goto ok3
		fail8:
			pos = pos6
			// Letter
			if !_accept(parser, _LetterAccepts, &pos, &perr) {
				goto fail9
			}
			goto ok3
		fail9:
			pos = pos6
			goto fail
		ok3:
		}
		// ("%"/NameChar)*
		for {
			pos11 := pos
			// ("%"/NameChar)
			// "%"/NameChar
			{
				pos17 := pos
				// "%"
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "%" {
					perr = _max(perr, pos)
					goto fail18
				}
				pos++
				goto ok14
			fail18:
				pos = pos17
				// NameChar
				if !_accept(parser, _NameCharAccepts, &pos, &perr) {
					goto fail19
				}
				goto ok14
			fail19:
				pos = pos17
				goto fail13
			ok14:
			}
			continue
		fail13:
			pos = pos11
			break
		}
		labels[0] = parser.text[pos1:pos]
	}
	// ("^" depth:Int)?
	{
		pos21 := pos
		// ("^" depth:Int)
		// "^" depth:Int
		// "^"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "^" {
			perr = _max(perr, pos)
			goto fail22
		}
		pos++
		// depth:Int
		{
			pos24 := pos
			// Int
			if !_accept(parser, _IntAccepts, &pos, &perr) {
				goto fail22
			}
			labels[1] = parser.text[pos24:pos]
		}
		goto ok25
	fail22:
		pos = pos21
	ok25:
	}
	perr = start
	return _memoize(parser, _Var, start, pos, perr)
fail:
	return _memoize(parser, _Var, start, -1, perr)
}

func _VarFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _Var, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Var",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Var}
	// action
	// name:(("%"/"_"/Letter) ("%"/NameChar)*) ("^" depth:Int)?
	// name:(("%"/"_"/Letter) ("%"/NameChar)*)
	{
		pos1 := pos
		// (("%"/"_"/Letter) ("%"/NameChar)*)
		// ("%"/"_"/Letter) ("%"/NameChar)*
		// ("%"/"_"/Letter)
		// "%"/"_"/Letter
		{
			pos6 := pos
			// "%"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "%" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"%\"",
					})
				}
				goto fail7
			}
			pos++
			goto ok3
		fail7:
			pos = pos6
			// "_"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "_" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"_\"",
					})
				}
				goto fail8
			}
			pos++
			goto ok3
		fail8:
			pos = pos6
			// Letter
			if !_fail(parser, _LetterFail, errPos, failure, &pos) {
				goto fail9
			}
			goto ok3
		fail9:
			pos = pos6
			goto fail
		ok3:
		}
		// ("%"/NameChar)*
		for {
			pos11 := pos
			// ("%"/NameChar)
			// "%"/NameChar
			{
				pos17 := pos
				// "%"
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "%" {
					if pos >= errPos {
						failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"%\"",
						})
					}
					goto fail18
				}
				pos++
				goto ok14
			fail18:
				pos = pos17
				// NameChar
				if !_fail(parser, _NameCharFail, errPos, failure, &pos) {
					goto fail19
				}
				goto ok14
			fail19:
				pos = pos17
				goto fail13
			ok14:
			}
			continue
		fail13:
			pos = pos11
			break
		}
		labels[0] = parser.text[pos1:pos]
	}
	// ("^" depth:Int)?
	{
		pos21 := pos
		// ("^" depth:Int)
		// "^" depth:Int
		// "^"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "^" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"^\"",
				})
			}
			goto fail22
		}
		pos++
		// depth:Int
		{
			pos24 := pos
			// Int
			if !_fail(parser, _IntFail, errPos, failure, &pos) {
				goto fail22
			}
			labels[1] = parser.text[pos24:pos]
		}
		goto ok25
	fail22:
		pos = pos21
	ok25:
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "variable"
	parser.fail[key] = failure
	return -1, failure
}

func _VarAction(parser *_Parser, start int) (int, **varRef) {
	var labels [2]string
	use(labels)
	var label0 string
	var label1 *intLit
	dp := parser.deltaPos[start][_Var]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Var}
	n := parser.act[key]
	if n != nil {
		n := n.(*varRef)
		return start + int(dp-1), &n
	}
	var node *varRef
	pos := start
	// action
	{
		start0 := pos
		// name:(("%"/"_"/Letter) ("%"/NameChar)*) ("^" depth:Int)?
		// name:(("%"/"_"/Letter) ("%"/NameChar)*)
		{
			pos2 := pos
			// (("%"/"_"/Letter) ("%"/NameChar)*)
			// ("%"/"_"/Letter) ("%"/NameChar)*
			{
				var node3 string
				// ("%"/"_"/Letter)
				// "%"/"_"/Letter
				{
					pos7 := pos
					var node6 string
					// "%"
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "%" {
						goto fail8
					}
					node3 = parser.text[pos : pos+1]
					pos++
					goto ok4
				fail8:
					node3 = node6
					pos = pos7
					// "_"
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "_" {
						goto fail9
					}
					node3 = parser.text[pos : pos+1]
					pos++
					goto ok4
				fail9:
					node3 = node6
					pos = pos7
					// Letter
					if p, n := _LetterAction(parser, pos); n == nil {
						goto fail10
					} else {
						node3 = *n
						pos = p
					}
					goto ok4
				fail10:
					node3 = node6
					pos = pos7
					goto fail
				ok4:
				}
				label0, node3 = label0+node3, ""
				// ("%"/NameChar)*
				for {
					pos12 := pos
					var node13 string
					// ("%"/NameChar)
					// "%"/NameChar
					{
						pos18 := pos
						var node17 string
						// "%"
						if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "%" {
							goto fail19
						}
						node13 = parser.text[pos : pos+1]
						pos++
						goto ok15
					fail19:
						node13 = node17
						pos = pos18
						// NameChar
						if p, n := _NameCharAction(parser, pos); n == nil {
							goto fail20
						} else {
							node13 = *n
							pos = p
						}
						goto ok15
					fail20:
						node13 = node17
						pos = pos18
						goto fail14
					ok15:
					}
					node3 += node13
					continue
				fail14:
					pos = pos12
					break
				}
				label0, node3 = label0+node3, ""
			}
			labels[0] = parser.text[pos2:pos]
		}
		// ("^" depth:Int)?
		{
			pos22 := pos
			// ("^" depth:Int)
			// "^" depth:Int
			// "^"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "^" {
				goto fail23
			}
			pos++
			// depth:Int
			{
				pos25 := pos
				// Int
				if p, n := _IntAction(parser, pos); n == nil {
					goto fail23
				} else {
					label1 = *n
					pos = p
				}
				labels[1] = parser.text[pos25:pos]
			}
			goto ok26
		fail23:
			pos = pos22
		ok26:
		}
		node = func(
			start, end int, depth *intLit, name string) *varRef {
			return &varRef{Name: name, Depth: depth, L: l(parser, start, end)}
		}(
			start0, pos, label1, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _NameAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Name, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// name:(("_"/Letter) NameChar*)
	{
		pos0 := pos
		// (("_"/Letter) NameChar*)
		// ("_"/Letter) NameChar*
		// ("_"/Letter)
		// "_"/Letter
		{
			pos5 := pos
			// "_"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "_" {
				perr = _max(perr, pos)
				goto fail6
			}
			pos++
			goto ok2
		fail6:
			pos = pos5
			// Letter
			if !_accept(parser, _LetterAccepts, &pos, &perr) {
				goto fail7
			}
			goto ok2
		fail7:
			pos = pos5
			goto fail
		ok2:
		}
		// NameChar*
		for {
			pos9 := pos
			// NameChar
			if !_accept(parser, _NameCharAccepts, &pos, &perr) {
				goto fail11
			}
			continue
		fail11:
			pos = pos9
			break
		}
		labels[0] = parser.text[pos0:pos]
	}
	perr = start
	return _memoize(parser, _Name, start, pos, perr)
fail:
	return _memoize(parser, _Name, start, -1, perr)
}

func _NameFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Name, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Name",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Name}
	// action
	// name:(("_"/Letter) NameChar*)
	{
		pos0 := pos
		// (("_"/Letter) NameChar*)
		// ("_"/Letter) NameChar*
		// ("_"/Letter)
		// "_"/Letter
		{
			pos5 := pos
			// "_"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "_" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"_\"",
					})
				}
				goto fail6
			}
			pos++
			goto ok2
		fail6:
			pos = pos5
			// Letter
			if !_fail(parser, _LetterFail, errPos, failure, &pos) {
				goto fail7
			}
			goto ok2
		fail7:
			pos = pos5
			goto fail
		ok2:
		}
		// NameChar*
		for {
			pos9 := pos
			// NameChar
			if !_fail(parser, _NameCharFail, errPos, failure, &pos) {
				goto fail11
			}
			continue
		fail11:
			pos = pos9
			break
		}
		labels[0] = parser.text[pos0:pos]
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "name"
	parser.fail[key] = failure
	return -1, failure
}

func _NameAction(parser *_Parser, start int) (int, *ident) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_Name]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Name}
	n := parser.act[key]
	if n != nil {
		n := n.(ident)
		return start + int(dp-1), &n
	}
	var node ident
	pos := start
	// action
	{
		start0 := pos
		// name:(("_"/Letter) NameChar*)
		{
			pos1 := pos
			// (("_"/Letter) NameChar*)
			// ("_"/Letter) NameChar*
			{
				var node2 string
				// ("_"/Letter)
				// "_"/Letter
				{
					pos6 := pos
					var node5 string
					// "_"
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "_" {
						goto fail7
					}
					node2 = parser.text[pos : pos+1]
					pos++
					goto ok3
				fail7:
					node2 = node5
					pos = pos6
					// Letter
					if p, n := _LetterAction(parser, pos); n == nil {
						goto fail8
					} else {
						node2 = *n
						pos = p
					}
					goto ok3
				fail8:
					node2 = node5
					pos = pos6
					goto fail
				ok3:
				}
				label0, node2 = label0+node2, ""
				// NameChar*
				for {
					pos10 := pos
					var node11 string
					// NameChar
					if p, n := _NameCharAction(parser, pos); n == nil {
						goto fail12
					} else {
						node11 = *n
						pos = p
					}
					node2 += node11
					continue
				fail12:
					pos = pos10
					break
				}
				label0, node2 = label0+node2, ""
			}
			labels[0] = parser.text[pos1:pos]
		}
		node = func(
			start, end int, name string) ident {
			return ident{Name: name, L: l(parser, start, end)}
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _NameCharAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _NameChar, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// "_"/Letter/Digit
	{
		pos3 := pos
		// "_"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "_" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos3
		// Letter
		if !_accept(parser, _LetterAccepts, &pos, &perr) {
			goto fail5
		}
		goto ok0
	fail5:
		pos = pos3
		// Digit
		if !_accept(parser, _DigitAccepts, &pos, &perr) {
			goto fail6
		}
		goto ok0
	fail6:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _NameChar, start, pos, perr)
fail:
	return _memoize(parser, _NameChar, start, -1, perr)
}

func _NameCharFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _NameChar, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "NameChar",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _NameChar}
	// "_"/Letter/Digit
	{
		pos3 := pos
		// "_"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "_" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"_\"",
				})
			}
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos3
		// Letter
		if !_fail(parser, _LetterFail, errPos, failure, &pos) {
			goto fail5
		}
		goto ok0
	fail5:
		pos = pos3
		// Digit
		if !_fail(parser, _DigitFail, errPos, failure, &pos) {
			goto fail6
		}
		goto ok0
	fail6:
		pos = pos3
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _NameCharAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_NameChar]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _NameChar}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// "_"/Letter/Digit
	{
		pos3 := pos
		var node2 string
		// "_"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "_" {
			goto fail4
		}
		node = parser.text[pos : pos+1]
		pos++
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// Letter
		if p, n := _LetterAction(parser, pos); n == nil {
			goto fail5
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail5:
		node = node2
		pos = pos3
		// Digit
		if p, n := _DigitAction(parser, pos); n == nil {
			goto fail6
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail6:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _LetterAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Letter, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// r:. &{…}
	// r:.
	{
		pos1 := pos
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			perr = _max(perr, pos)
			goto fail
		} else {
			pos += w
		}
		labels[0] = parser.text[pos1:pos]
	}
	// pred code
	if ok := func(r string) bool { return isLetter(r) }(labels[0]); !ok {
		perr = _max(perr, pos)
		goto fail
	}
	return _memoize(parser, _Letter, start, pos, perr)
fail:
	return _memoize(parser, _Letter, start, -1, perr)
}

func _LetterFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Letter, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Letter",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Letter}
	// r:. &{…}
	// r:.
	{
		pos1 := pos
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: ".",
				})
			}
			goto fail
		} else {
			pos += w
		}
		labels[0] = parser.text[pos1:pos]
	}
	// pred code
	if ok := func(r string) bool { return isLetter(r) }(labels[0]); !ok {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "&{"+"isLetter(r)"+"}",
			})
		}
		goto fail
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _LetterAction(parser *_Parser, start int) (int, *string) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_Letter]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Letter}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// r:. &{…}
	{
		var node0 string
		// r:.
		{
			pos1 := pos
			// .
			if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
				goto fail
			} else {
				label0 = parser.text[pos : pos+w]
				pos += w
			}
			node0 = label0
			labels[0] = parser.text[pos1:pos]
		}
		node, node0 = node+node0, ""
		// pred code
		if ok := func(r string) bool { return isLetter(r) }(labels[0]); !ok {
			goto fail
		}
		node0 = ""
		node, node0 = node+node0, ""
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _DigitAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Digit, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// [0-9]
	if r, w := _next(parser, pos); r < '0' || r > '9' {
		perr = _max(perr, pos)
		goto fail
	} else {
		pos += w
	}
	return _memoize(parser, _Digit, start, pos, perr)
fail:
	return _memoize(parser, _Digit, start, -1, perr)
}

func _DigitFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Digit, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Digit",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Digit}
	// [0-9]
	if r, w := _next(parser, pos); r < '0' || r > '9' {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "[0-9]",
			})
		}
		goto fail
	} else {
		pos += w
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _DigitAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_Digit]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Digit}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// [0-9]
	if r, w := _next(parser, pos); r < '0' || r > '9' {
		goto fail
	} else {
		node = parser.text[pos : pos+w]
		pos += w
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _EolAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Eol, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// _ Newline
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// Newline
	if !_accept(parser, _NewlineAccepts, &pos, &perr) {
		goto fail
	}
	return _memoize(parser, _Eol, start, pos, perr)
fail:
	return _memoize(parser, _Eol, start, -1, perr)
}

func _EolFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Eol, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Eol",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Eol}
	// _ Newline
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// Newline
	if !_fail(parser, _NewlineFail, errPos, failure, &pos) {
		goto fail
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _EolAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_Eol]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Eol}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// _ Newline
	{
		var node0 string
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			node0 = *n
			pos = p
		}
		node, node0 = node+node0, ""
		// Newline
		if p, n := _NewlineAction(parser, pos); n == nil {
			goto fail
		} else {
			node0 = *n
			pos = p
		}
		node, node0 = node+node0, ""
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _NewlineAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Newline, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// "\n"/!.
	{
		pos3 := pos
		// "\n"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos3
		// !.
		{
			pos7 := pos
			perr9 := perr
			// .
			if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
				perr = _max(perr, pos)
				goto ok6
			} else {
				pos += w
			}
			pos = pos7
			perr = _max(perr9, pos)
			goto fail5
		ok6:
			pos = pos7
			perr = perr9
		}
		goto ok0
	fail5:
		pos = pos3
		goto fail
	ok0:
	}
	perr = start
	return _memoize(parser, _Newline, start, pos, perr)
fail:
	return _memoize(parser, _Newline, start, -1, perr)
}

func _NewlineFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Newline, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Newline",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Newline}
	// "\n"/!.
	{
		pos3 := pos
		// "\n"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"\\n\"",
				})
			}
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos3
		// !.
		{
			pos7 := pos
			nkids8 := len(failure.Kids)
			// .
			if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: ".",
					})
				}
				goto ok6
			} else {
				pos += w
			}
			pos = pos7
			failure.Kids = failure.Kids[:nkids8]
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "!.",
				})
			}
			goto fail5
		ok6:
			pos = pos7
			failure.Kids = failure.Kids[:nkids8]
		}
		goto ok0
	fail5:
		pos = pos3
		goto fail
	ok0:
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "end of line"
	parser.fail[key] = failure
	return -1, failure
}

func _NewlineAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_Newline]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Newline}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// "\n"/!.
	{
		pos3 := pos
		var node2 string
		// "\n"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
			goto fail4
		}
		node = parser.text[pos : pos+1]
		pos++
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// !.
		{
			pos7 := pos
			// .
			if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
				goto ok6
			} else {
				pos += w
			}
			pos = pos7
			goto fail5
		ok6:
			pos = pos7
			node = ""
		}
		goto ok0
	fail5:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _EofAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Eof, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// !.
	{
		pos1 := pos
		perr3 := perr
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			perr = _max(perr, pos)
			goto ok0
		} else {
			pos += w
		}
		pos = pos1
		perr = _max(perr3, pos)
		goto fail
	ok0:
		pos = pos1
		perr = perr3
	}
	return _memoize(parser, _Eof, start, pos, perr)
fail:
	return _memoize(parser, _Eof, start, -1, perr)
}

func _EofFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Eof, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Eof",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Eof}
	// !.
	{
		pos1 := pos
		nkids2 := len(failure.Kids)
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: ".",
				})
			}
			goto ok0
		} else {
			pos += w
		}
		pos = pos1
		failure.Kids = failure.Kids[:nkids2]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!.",
			})
		}
		goto fail
	ok0:
		pos = pos1
		failure.Kids = failure.Kids[:nkids2]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _EofAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_Eof]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Eof}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// !.
	{
		pos1 := pos
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			goto ok0
		} else {
			pos += w
		}
		pos = pos1
		goto fail
	ok0:
		pos = pos1
		node = ""
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func __Accepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, __, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// ([ \t\r]/Comment)*
	for {
		pos1 := pos
		// ([ \t\r]/Comment)
		// [ \t\r]/Comment
		{
			pos7 := pos
			// [ \t\r]
			if r, w := _next(parser, pos); r != ' ' && r != '\t' && r != '\r' {
				perr = _max(perr, pos)
				goto fail8
			} else {
				pos += w
			}
			goto ok4
		fail8:
			pos = pos7
			// Comment
			if !_accept(parser, _CommentAccepts, &pos, &perr) {
				goto fail9
			}
			goto ok4
		fail9:
			pos = pos7
			goto fail3
		ok4:
		}
		continue
	fail3:
		pos = pos1
		break
	}
	perr = start
	return _memoize(parser, __, start, pos, perr)
}

func __Fail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, __, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "_",
		Pos:  int(start),
	}
	key := _key{start: start, rule: __}
	// ([ \t\r]/Comment)*
	for {
		pos1 := pos
		// ([ \t\r]/Comment)
		// [ \t\r]/Comment
		{
			pos7 := pos
			// [ \t\r]
			if r, w := _next(parser, pos); r != ' ' && r != '\t' && r != '\r' {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "[ \\t\\r]",
					})
				}
				goto fail8
			} else {
				pos += w
			}
			goto ok4
		fail8:
			pos = pos7
			// Comment
			if !_fail(parser, _CommentFail, errPos, failure, &pos) {
				goto fail9
			}
			goto ok4
		fail9:
			pos = pos7
			goto fail3
		ok4:
		}
		continue
	fail3:
		pos = pos1
		break
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
}

func __Action(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][__]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: __}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// ([ \t\r]/Comment)*
	for {
		pos1 := pos
		var node2 string
		// ([ \t\r]/Comment)
		// [ \t\r]/Comment
		{
			pos7 := pos
			var node6 string
			// [ \t\r]
			if r, w := _next(parser, pos); r != ' ' && r != '\t' && r != '\r' {
				goto fail8
			} else {
				node2 = parser.text[pos : pos+w]
				pos += w
			}
			goto ok4
		fail8:
			node2 = node6
			pos = pos7
			// Comment
			if p, n := _CommentAction(parser, pos); n == nil {
				goto fail9
			} else {
				node2 = *n
				pos = p
			}
			goto ok4
		fail9:
			node2 = node6
			pos = pos7
			goto fail3
		ok4:
		}
		node += node2
		continue
	fail3:
		pos = pos1
		break
	}
	parser.act[key] = node
	return pos, &node
}

func ___Accepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, ___, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// ([ \t\r\n]/Comment)*
	for {
		pos1 := pos
		// ([ \t\r\n]/Comment)
		// [ \t\r\n]/Comment
		{
			pos7 := pos
			// [ \t\r\n]
			if r, w := _next(parser, pos); r != ' ' && r != '\t' && r != '\r' && r != '\n' {
				perr = _max(perr, pos)
				goto fail8
			} else {
				pos += w
			}
			goto ok4
		fail8:
			pos = pos7
			// Comment
			if !_accept(parser, _CommentAccepts, &pos, &perr) {
				goto fail9
			}
			goto ok4
		fail9:
			pos = pos7
			goto fail3
		ok4:
		}
		continue
	fail3:
		pos = pos1
		break
	}
	perr = start
	return _memoize(parser, ___, start, pos, perr)
}

func ___Fail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, ___, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "__",
		Pos:  int(start),
	}
	key := _key{start: start, rule: ___}
	// ([ \t\r\n]/Comment)*
	for {
		pos1 := pos
		// ([ \t\r\n]/Comment)
		// [ \t\r\n]/Comment
		{
			pos7 := pos
			// [ \t\r\n]
			if r, w := _next(parser, pos); r != ' ' && r != '\t' && r != '\r' && r != '\n' {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "[ \\t\\r\\n]",
					})
				}
				goto fail8
			} else {
				pos += w
			}
			goto ok4
		fail8:
			pos = pos7
			// Comment
			if !_fail(parser, _CommentFail, errPos, failure, &pos) {
				goto fail9
			}
			goto ok4
		fail9:
			pos = pos7
			goto fail3
		ok4:
		}
		continue
	fail3:
		pos = pos1
		break
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
}

func ___Action(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][___]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: ___}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// ([ \t\r\n]/Comment)*
	for {
		pos1 := pos
		var node2 string
		// ([ \t\r\n]/Comment)
		// [ \t\r\n]/Comment
		{
			pos7 := pos
			var node6 string
			// [ \t\r\n]
			if r, w := _next(parser, pos); r != ' ' && r != '\t' && r != '\r' && r != '\n' {
				goto fail8
			} else {
				node2 = parser.text[pos : pos+w]
				pos += w
			}
			goto ok4
		fail8:
			node2 = node6
			pos = pos7
			// Comment
			if p, n := _CommentAction(parser, pos); n == nil {
				goto fail9
			} else {
				node2 = *n
				pos = p
			}
			goto ok4
		fail9:
			node2 = node6
			pos = pos7
			goto fail3
		ok4:
		}
		node += node2
		continue
	fail3:
		pos = pos1
		break
	}
	parser.act[key] = node
	return pos, &node
}

func _CommentAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Comment, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// "#" [^\n]*
	// "#"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "#" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// [^\n]*
	for {
		pos2 := pos
		// [^\n]
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == '\n' {
			perr = _max(perr, pos)
			goto fail4
		} else {
			pos += w
		}
		continue
	fail4:
		pos = pos2
		break
	}
	return _memoize(parser, _Comment, start, pos, perr)
fail:
	return _memoize(parser, _Comment, start, -1, perr)
}

func _CommentFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Comment, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Comment",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Comment}
	// "#" [^\n]*
	// "#"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "#" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"#\"",
			})
		}
		goto fail
	}
	pos++
	// [^\n]*
	for {
		pos2 := pos
		// [^\n]
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == '\n' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "[^\\n]",
				})
			}
			goto fail4
		} else {
			pos += w
		}
		continue
	fail4:
		pos = pos2
		break
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _CommentAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_Comment]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Comment}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// "#" [^\n]*
	{
		var node0 string
		// "#"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "#" {
			goto fail
		}
		node0 = parser.text[pos : pos+1]
		pos++
		node, node0 = node+node0, ""
		// [^\n]*
		for {
			pos2 := pos
			var node3 string
			// [^\n]
			if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == '\n' {
				goto fail4
			} else {
				node3 = parser.text[pos : pos+w]
				pos += w
			}
			node0 += node3
			continue
		fail4:
			pos = pos2
			break
		}
		node, node0 = node+node0, ""
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}
