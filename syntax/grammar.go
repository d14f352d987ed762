package syntax

import (
	"github.com/eaburns/peggy/peg"
	"github.com/eaburns/pycheck/loc"
)

type args struct {
	pos []Expr
	kws []Keyword
}

type suffix struct {
	end   int
	call  *args
	index []Expr
	attr  string
}

func union(x Expr, ys []Expr) Expr {
	for _, y := range ys {
		x = &Or{Range: x.GetRange().Join(y.GetRange()), L: x, R: y}
	}
	return x
}

func apply(x Expr, ss []suffix) Expr {
	for _, s := range ss {
		r := loc.Range{x.GetRange()[0], s.end}
		switch {
		case s.call != nil:
			x = &Call{Range: r, Fun: x, Args: s.call.pos, Keywords: s.call.kws}
		case s.index != nil:
			x = &Subscript{Range: r, X: x, Index: s.index}
		default:
			x = &Attr{Range: r, X: x, Name: s.attr}
		}
	}
	return x
}

const (
	_File       int = 0
	_Expression int = 1
	_Stmt       int = 2
	_Sep        int = 3
	_End        int = 4
	_Expr       int = 5
	_Term       int = 6
	_Suffix     int = 7
	_Call       int = 8
	_Args       int = 9
	_PosArg     int = 10
	_KwArg      int = 11
	_KwName     int = 12
	_ArgSep     int = 13
	_Index      int = 14
	_Attr       int = 15
	_Operand    int = 16
	_List       int = 17
	_Paren      int = 18
	_Elem       int = 19
	_ElemSep    int = 20
	_Ident      int = 21
	_Int        int = 22
	_String     int = 23
	_SChar      int = 24
	_DChar      int = 25
	_Char       int = 26
	__          int = 27
	_Space      int = 28
	_Comment    int = 29
	_Nl         int = 30
	_EOF        int = 31

	_N int = 32
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
	// Sep* ss:Stmt* _ EOF
	// Sep*
	for {
		pos2 := pos
		// Sep
		if !_accept(parser, _SepAccepts, &pos, &perr) {
			goto fail4
		}
		continue
	fail4:
		pos = pos2
		break
	}
	// ss:Stmt*
	{
		pos5 := pos
		// Stmt*
		for {
			pos7 := pos
			// Stmt
			if !_accept(parser, _StmtAccepts, &pos, &perr) {
				goto fail9
			}
			continue
		fail9:
			pos = pos7
			break
		}
		labels[0] = parser.text[pos5:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// EOF
	if !_accept(parser, _EOFAccepts, &pos, &perr) {
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
	// Sep* ss:Stmt* _ EOF
	// Sep*
	for {
		pos2 := pos
		// Sep
		if !_fail(parser, _SepFail, errPos, failure, &pos) {
			goto fail4
		}
		continue
	fail4:
		pos = pos2
		break
	}
	// ss:Stmt*
	{
		pos5 := pos
		// Stmt*
		for {
			pos7 := pos
			// Stmt
			if !_fail(parser, _StmtFail, errPos, failure, &pos) {
				goto fail9
			}
			continue
		fail9:
			pos = pos7
			break
		}
		labels[0] = parser.text[pos5:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// EOF
	if !_fail(parser, _EOFFail, errPos, failure, &pos) {
		goto fail
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _FileAction(parser *_Parser, start int) (int, *File) {
	var labels [1]string
	use(labels)
	var label0 []Expr
	dp := parser.deltaPos[start][_File]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _File}
	n := parser.act[key]
	if n != nil {
		n := n.(File)
		return start + int(dp-1), &n
	}
	var node File
	pos := start
	// action
	{
		start0 := pos
		// Sep* ss:Stmt* _ EOF
		// Sep*
		for {
			pos3 := pos
			// Sep
			if p, n := _SepAction(parser, pos); n == nil {
				goto fail5
			} else {
				pos = p
			}
			continue
		fail5:
			pos = pos3
			break
		}
		// ss:Stmt*
		{
			pos6 := pos
			// Stmt*
			for {
				pos8 := pos
				var node9 Expr
				// Stmt
				if p, n := _StmtAction(parser, pos); n == nil {
					goto fail10
				} else {
					node9 = *n
					pos = p
				}
				label0 = append(label0, node9)
				continue
			fail10:
				pos = pos8
				break
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// EOF
		if p, n := _EOFAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		node = func(
			start, end int, ss []Expr) File {
			return File{Stmts: ss}
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ExpressionAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Expression, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// x:Expr Nl EOF
	// x:Expr
	{
		pos1 := pos
		// Expr
		if !_accept(parser, _ExprAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// Nl
	if !_accept(parser, _NlAccepts, &pos, &perr) {
		goto fail
	}
	// EOF
	if !_accept(parser, _EOFAccepts, &pos, &perr) {
		goto fail
	}
	return _memoize(parser, _Expression, start, pos, perr)
fail:
	return _memoize(parser, _Expression, start, -1, perr)
}

func _ExpressionFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Expression, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Expression",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Expression}
	// action
	// x:Expr Nl EOF
	// x:Expr
	{
		pos1 := pos
		// Expr
		if !_fail(parser, _ExprFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// Nl
	if !_fail(parser, _NlFail, errPos, failure, &pos) {
		goto fail
	}
	// EOF
	if !_fail(parser, _EOFFail, errPos, failure, &pos) {
		goto fail
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ExpressionAction(parser *_Parser, start int) (int, *Expr) {
	var labels [1]string
	use(labels)
	var label0 Expr
	dp := parser.deltaPos[start][_Expression]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Expression}
	n := parser.act[key]
	if n != nil {
		n := n.(Expr)
		return start + int(dp-1), &n
	}
	var node Expr
	pos := start
	// action
	{
		start0 := pos
		// x:Expr Nl EOF
		// x:Expr
		{
			pos2 := pos
			// Expr
			if p, n := _ExprAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// Nl
		if p, n := _NlAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// EOF
		if p, n := _EOFAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		node = func(
			start, end int, x Expr) Expr {
			return Expr(x)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _StmtAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Stmt, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// x:Expr _ End Sep*
	// x:Expr
	{
		pos1 := pos
		// Expr
		if !_accept(parser, _ExprAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// End
	if !_accept(parser, _EndAccepts, &pos, &perr) {
		goto fail
	}
	// Sep*
	for {
		pos3 := pos
		// Sep
		if !_accept(parser, _SepAccepts, &pos, &perr) {
			goto fail5
		}
		continue
	fail5:
		pos = pos3
		break
	}
	return _memoize(parser, _Stmt, start, pos, perr)
fail:
	return _memoize(parser, _Stmt, start, -1, perr)
}

func _StmtFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Stmt, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Stmt",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Stmt}
	// action
	// x:Expr _ End Sep*
	// x:Expr
	{
		pos1 := pos
		// Expr
		if !_fail(parser, _ExprFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// End
	if !_fail(parser, _EndFail, errPos, failure, &pos) {
		goto fail
	}
	// Sep*
	for {
		pos3 := pos
		// Sep
		if !_fail(parser, _SepFail, errPos, failure, &pos) {
			goto fail5
		}
		continue
	fail5:
		pos = pos3
		break
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _StmtAction(parser *_Parser, start int) (int, *Expr) {
	var labels [1]string
	use(labels)
	var label0 Expr
	dp := parser.deltaPos[start][_Stmt]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Stmt}
	n := parser.act[key]
	if n != nil {
		n := n.(Expr)
		return start + int(dp-1), &n
	}
	var node Expr
	pos := start
	// action
	{
		start0 := pos
		// x:Expr _ End Sep*
		// x:Expr
		{
			pos2 := pos
			// Expr
			if p, n := _ExprAction(parser, pos); n == nil {
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
		// End
		if p, n := _EndAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// Sep*
		for {
			pos4 := pos
			// Sep
			if p, n := _SepAction(parser, pos); n == nil {
				goto fail6
			} else {
				pos = p
			}
			continue
		fail6:
			pos = pos4
			break
		}
		node = func(
			start, end int, x Expr) Expr {
			return Expr(x)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _SepAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Sep, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// _ (";"/"\n")
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// (";"/"\n")
	// ";"/"\n"
	{
		pos4 := pos
		// ";"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ";" {
			perr = _max(perr, pos)
			goto fail5
		}
		pos++
		goto ok1
	fail5:
		pos = pos4
		// "\n"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
			perr = _max(perr, pos)
			goto fail6
		}
		pos++
		goto ok1
	fail6:
		pos = pos4
		goto fail
	ok1:
	}
	return _memoize(parser, _Sep, start, pos, perr)
fail:
	return _memoize(parser, _Sep, start, -1, perr)
}

func _SepFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Sep, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Sep",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Sep}
	// _ (";"/"\n")
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// (";"/"\n")
	// ";"/"\n"
	{
		pos4 := pos
		// ";"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ";" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\";\"",
				})
			}
			goto fail5
		}
		pos++
		goto ok1
	fail5:
		pos = pos4
		// "\n"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"\\n\"",
				})
			}
			goto fail6
		}
		pos++
		goto ok1
	fail6:
		pos = pos4
		goto fail
	ok1:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _SepAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_Sep]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Sep}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// _ (";"/"\n")
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
		// (";"/"\n")
		// ";"/"\n"
		{
			pos4 := pos
			var node3 string
			// ";"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ";" {
				goto fail5
			}
			node0 = parser.text[pos : pos+1]
			pos++
			goto ok1
		fail5:
			node0 = node3
			pos = pos4
			// "\n"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
				goto fail6
			}
			node0 = parser.text[pos : pos+1]
			pos++
			goto ok1
		fail6:
			node0 = node3
			pos = pos4
			goto fail
		ok1:
		}
		node, node0 = node+node0, ""
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _EndAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _End, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// ";"/"\n"/EOF
	{
		pos3 := pos
		// ";"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ";" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos3
		// "\n"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
			perr = _max(perr, pos)
			goto fail5
		}
		pos++
		goto ok0
	fail5:
		pos = pos3
		// EOF
		if !_accept(parser, _EOFAccepts, &pos, &perr) {
			goto fail6
		}
		goto ok0
	fail6:
		pos = pos3
		goto fail
	ok0:
	}
	perr = start
	return _memoize(parser, _End, start, pos, perr)
fail:
	return _memoize(parser, _End, start, -1, perr)
}

func _EndFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _End, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "End",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _End}
	// ";"/"\n"/EOF
	{
		pos3 := pos
		// ";"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ";" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\";\"",
				})
			}
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos3
		// "\n"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"\\n\"",
				})
			}
			goto fail5
		}
		pos++
		goto ok0
	fail5:
		pos = pos3
		// EOF
		if !_fail(parser, _EOFFail, errPos, failure, &pos) {
			goto fail6
		}
		goto ok0
	fail6:
		pos = pos3
		goto fail
	ok0:
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "\";\" or newline"
	parser.fail[key] = failure
	return -1, failure
}

func _EndAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_End]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _End}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// ";"/"\n"/EOF
	{
		pos3 := pos
		var node2 string
		// ";"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ";" {
			goto fail4
		}
		node = parser.text[pos : pos+1]
		pos++
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// "\n"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
			goto fail5
		}
		node = parser.text[pos : pos+1]
		pos++
		goto ok0
	fail5:
		node = node2
		pos = pos3
		// EOF
		if p, n := _EOFAction(parser, pos); n == nil {
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

func _ExprAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _Expr, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// x:Term ys:(_ "|" y:Term {…})*
	// x:Term
	{
		pos1 := pos
		// Term
		if !_accept(parser, _TermAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// ys:(_ "|" y:Term {…})*
	{
		pos2 := pos
		// (_ "|" y:Term {…})*
		for {
			pos4 := pos
			// (_ "|" y:Term {…})
			// action
			// _ "|" y:Term
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail6
			}
			// "|"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "|" {
				perr = _max(perr, pos)
				goto fail6
			}
			pos++
			// y:Term
			{
				pos8 := pos
				// Term
				if !_accept(parser, _TermAccepts, &pos, &perr) {
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
	return _memoize(parser, _Expr, start, pos, perr)
fail:
	return _memoize(parser, _Expr, start, -1, perr)
}

func _ExprFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _Expr, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Expr",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Expr}
	// action
	// x:Term ys:(_ "|" y:Term {…})*
	// x:Term
	{
		pos1 := pos
		// Term
		if !_fail(parser, _TermFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// ys:(_ "|" y:Term {…})*
	{
		pos2 := pos
		// (_ "|" y:Term {…})*
		for {
			pos4 := pos
			// (_ "|" y:Term {…})
			// action
			// _ "|" y:Term
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail6
			}
			// "|"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "|" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"|\"",
					})
				}
				goto fail6
			}
			pos++
			// y:Term
			{
				pos8 := pos
				// Term
				if !_fail(parser, _TermFail, errPos, failure, &pos) {
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

func _ExprAction(parser *_Parser, start int) (int, *Expr) {
	var labels [3]string
	use(labels)
	var label0 Expr
	var label1 Expr
	var label2 []Expr
	dp := parser.deltaPos[start][_Expr]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Expr}
	n := parser.act[key]
	if n != nil {
		n := n.(Expr)
		return start + int(dp-1), &n
	}
	var node Expr
	pos := start
	// action
	{
		start0 := pos
		// x:Term ys:(_ "|" y:Term {…})*
		// x:Term
		{
			pos2 := pos
			// Term
			if p, n := _TermAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// ys:(_ "|" y:Term {…})*
		{
			pos3 := pos
			// (_ "|" y:Term {…})*
			for {
				pos5 := pos
				var node6 Expr
				// (_ "|" y:Term {…})
				// action
				{
					start8 := pos
					// _ "|" y:Term
					// _
					if p, n := __Action(parser, pos); n == nil {
						goto fail7
					} else {
						pos = p
					}
					// "|"
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "|" {
						goto fail7
					}
					pos++
					// y:Term
					{
						pos10 := pos
						// Term
						if p, n := _TermAction(parser, pos); n == nil {
							goto fail7
						} else {
							label1 = *n
							pos = p
						}
						labels[1] = parser.text[pos10:pos]
					}
					node6 = func(
						start, end int, x Expr, y Expr) Expr {
						return Expr(y)
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
			start, end int, x Expr, y Expr, ys []Expr) Expr {
			return Expr(union(x, ys))
		}(
			start0, pos, label0, label1, label2)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _TermAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _Term, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ x:Operand ss:Suffix*
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// x:Operand
	{
		pos1 := pos
		// Operand
		if !_accept(parser, _OperandAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// ss:Suffix*
	{
		pos2 := pos
		// Suffix*
		for {
			pos4 := pos
			// Suffix
			if !_accept(parser, _SuffixAccepts, &pos, &perr) {
				goto fail6
			}
			continue
		fail6:
			pos = pos4
			break
		}
		labels[1] = parser.text[pos2:pos]
	}
	return _memoize(parser, _Term, start, pos, perr)
fail:
	return _memoize(parser, _Term, start, -1, perr)
}

func _TermFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _Term, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Term",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Term}
	// action
	// _ x:Operand ss:Suffix*
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// x:Operand
	{
		pos1 := pos
		// Operand
		if !_fail(parser, _OperandFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// ss:Suffix*
	{
		pos2 := pos
		// Suffix*
		for {
			pos4 := pos
			// Suffix
			if !_fail(parser, _SuffixFail, errPos, failure, &pos) {
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

func _TermAction(parser *_Parser, start int) (int, *Expr) {
	var labels [2]string
	use(labels)
	var label0 Expr
	var label1 []suffix
	dp := parser.deltaPos[start][_Term]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Term}
	n := parser.act[key]
	if n != nil {
		n := n.(Expr)
		return start + int(dp-1), &n
	}
	var node Expr
	pos := start
	// action
	{
		start0 := pos
		// _ x:Operand ss:Suffix*
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// x:Operand
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
		// ss:Suffix*
		{
			pos3 := pos
			// Suffix*
			for {
				pos5 := pos
				var node6 suffix
				// Suffix
				if p, n := _SuffixAction(parser, pos); n == nil {
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
			start, end int, ss []suffix, x Expr) Expr {
			return Expr(apply(x, ss))
		}(
			start0, pos, label1, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _SuffixAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Suffix, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ s:(Call/Index/Attr)
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// s:(Call/Index/Attr)
	{
		pos1 := pos
		// (Call/Index/Attr)
		// Call/Index/Attr
		{
			pos5 := pos
			// Call
			if !_accept(parser, _CallAccepts, &pos, &perr) {
				goto fail6
			}
			goto ok2
		fail6:
			pos = pos5
			// Index
			if !_accept(parser, _IndexAccepts, &pos, &perr) {
				goto fail7
			}
			goto ok2
		fail7:
			pos = pos5
			// Attr
			if !_accept(parser, _AttrAccepts, &pos, &perr) {
				goto fail8
			}
			goto ok2
		fail8:
			pos = pos5
			goto fail
		ok2:
		}
		labels[0] = parser.text[pos1:pos]
	}
	return _memoize(parser, _Suffix, start, pos, perr)
fail:
	return _memoize(parser, _Suffix, start, -1, perr)
}

func _SuffixFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Suffix, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Suffix",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Suffix}
	// action
	// _ s:(Call/Index/Attr)
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// s:(Call/Index/Attr)
	{
		pos1 := pos
		// (Call/Index/Attr)
		// Call/Index/Attr
		{
			pos5 := pos
			// Call
			if !_fail(parser, _CallFail, errPos, failure, &pos) {
				goto fail6
			}
			goto ok2
		fail6:
			pos = pos5
			// Index
			if !_fail(parser, _IndexFail, errPos, failure, &pos) {
				goto fail7
			}
			goto ok2
		fail7:
			pos = pos5
			// Attr
			if !_fail(parser, _AttrFail, errPos, failure, &pos) {
				goto fail8
			}
			goto ok2
		fail8:
			pos = pos5
			goto fail
		ok2:
		}
		labels[0] = parser.text[pos1:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _SuffixAction(parser *_Parser, start int) (int, *suffix) {
	var labels [1]string
	use(labels)
	var label0 suffix
	dp := parser.deltaPos[start][_Suffix]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Suffix}
	n := parser.act[key]
	if n != nil {
		n := n.(suffix)
		return start + int(dp-1), &n
	}
	var node suffix
	pos := start
	// action
	{
		start0 := pos
		// _ s:(Call/Index/Attr)
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// s:(Call/Index/Attr)
		{
			pos2 := pos
			// (Call/Index/Attr)
			// Call/Index/Attr
			{
				pos6 := pos
				var node5 suffix
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
				// Index
				if p, n := _IndexAction(parser, pos); n == nil {
					goto fail8
				} else {
					label0 = *n
					pos = p
				}
				goto ok3
			fail8:
				label0 = node5
				pos = pos6
				// Attr
				if p, n := _AttrAction(parser, pos); n == nil {
					goto fail9
				} else {
					label0 = *n
					pos = p
				}
				goto ok3
			fail9:
				label0 = node5
				pos = pos6
				goto fail
			ok3:
			}
			labels[0] = parser.text[pos2:pos]
		}
		node = func(
			start, end int, s suffix) suffix {
			return suffix(s)
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
	// "(" Nl as:Args ")"
	// "("
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// Nl
	if !_accept(parser, _NlAccepts, &pos, &perr) {
		goto fail
	}
	// as:Args
	{
		pos1 := pos
		// Args
		if !_accept(parser, _ArgsAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// ")"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
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
	// "(" Nl as:Args ")"
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
	// Nl
	if !_fail(parser, _NlFail, errPos, failure, &pos) {
		goto fail
	}
	// as:Args
	{
		pos1 := pos
		// Args
		if !_fail(parser, _ArgsFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
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
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _CallAction(parser *_Parser, start int) (int, *suffix) {
	var labels [1]string
	use(labels)
	var label0 args
	dp := parser.deltaPos[start][_Call]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Call}
	n := parser.act[key]
	if n != nil {
		n := n.(suffix)
		return start + int(dp-1), &n
	}
	var node suffix
	pos := start
	// action
	{
		start0 := pos
		// "(" Nl as:Args ")"
		// "("
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
			goto fail
		}
		pos++
		// Nl
		if p, n := _NlAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// as:Args
		{
			pos2 := pos
			// Args
			if p, n := _ArgsAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// ")"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
			goto fail
		}
		pos++
		node = func(
			start, end int, as args) suffix {
			return suffix{end: end, call: &as}
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ArgsAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _Args, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// ps:PosArg* ks:KwArg*
	// ps:PosArg*
	{
		pos1 := pos
		// PosArg*
		for {
			pos3 := pos
			// PosArg
			if !_accept(parser, _PosArgAccepts, &pos, &perr) {
				goto fail5
			}
			continue
		fail5:
			pos = pos3
			break
		}
		labels[0] = parser.text[pos1:pos]
	}
	// ks:KwArg*
	{
		pos6 := pos
		// KwArg*
		for {
			pos8 := pos
			// KwArg
			if !_accept(parser, _KwArgAccepts, &pos, &perr) {
				goto fail10
			}
			continue
		fail10:
			pos = pos8
			break
		}
		labels[1] = parser.text[pos6:pos]
	}
	return _memoize(parser, _Args, start, pos, perr)
}

func _ArgsFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _Args, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Args",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Args}
	// action
	// ps:PosArg* ks:KwArg*
	// ps:PosArg*
	{
		pos1 := pos
		// PosArg*
		for {
			pos3 := pos
			// PosArg
			if !_fail(parser, _PosArgFail, errPos, failure, &pos) {
				goto fail5
			}
			continue
		fail5:
			pos = pos3
			break
		}
		labels[0] = parser.text[pos1:pos]
	}
	// ks:KwArg*
	{
		pos6 := pos
		// KwArg*
		for {
			pos8 := pos
			// KwArg
			if !_fail(parser, _KwArgFail, errPos, failure, &pos) {
				goto fail10
			}
			continue
		fail10:
			pos = pos8
			break
		}
		labels[1] = parser.text[pos6:pos]
	}
	parser.fail[key] = failure
	return pos, failure
}

func _ArgsAction(parser *_Parser, start int) (int, *args) {
	var labels [2]string
	use(labels)
	var label0 []Expr
	var label1 []Keyword
	dp := parser.deltaPos[start][_Args]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Args}
	n := parser.act[key]
	if n != nil {
		n := n.(args)
		return start + int(dp-1), &n
	}
	var node args
	pos := start
	// action
	{
		start0 := pos
		// ps:PosArg* ks:KwArg*
		// ps:PosArg*
		{
			pos2 := pos
			// PosArg*
			for {
				pos4 := pos
				var node5 Expr
				// PosArg
				if p, n := _PosArgAction(parser, pos); n == nil {
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
		// ks:KwArg*
		{
			pos7 := pos
			// KwArg*
			for {
				pos9 := pos
				var node10 Keyword
				// KwArg
				if p, n := _KwArgAction(parser, pos); n == nil {
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
		node = func(
			start, end int, ks []Keyword, ps []Expr) args {
			return args{pos: ps, kws: ks}
		}(
			start0, pos, label1, label0)
	}
	parser.act[key] = node
	return pos, &node
}

func _PosArgAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _PosArg, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// !KwName x:Expr Nl ArgSep
	// !KwName
	{
		pos2 := pos
		perr4 := perr
		// KwName
		if !_accept(parser, _KwNameAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// x:Expr
	{
		pos5 := pos
		// Expr
		if !_accept(parser, _ExprAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// Nl
	if !_accept(parser, _NlAccepts, &pos, &perr) {
		goto fail
	}
	// ArgSep
	if !_accept(parser, _ArgSepAccepts, &pos, &perr) {
		goto fail
	}
	return _memoize(parser, _PosArg, start, pos, perr)
fail:
	return _memoize(parser, _PosArg, start, -1, perr)
}

func _PosArgFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _PosArg, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "PosArg",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _PosArg}
	// action
	// !KwName x:Expr Nl ArgSep
	// !KwName
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// KwName
		if !_fail(parser, _KwNameFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!KwName",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// x:Expr
	{
		pos5 := pos
		// Expr
		if !_fail(parser, _ExprFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// Nl
	if !_fail(parser, _NlFail, errPos, failure, &pos) {
		goto fail
	}
	// ArgSep
	if !_fail(parser, _ArgSepFail, errPos, failure, &pos) {
		goto fail
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _PosArgAction(parser *_Parser, start int) (int, *Expr) {
	var labels [1]string
	use(labels)
	var label0 Expr
	dp := parser.deltaPos[start][_PosArg]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _PosArg}
	n := parser.act[key]
	if n != nil {
		n := n.(Expr)
		return start + int(dp-1), &n
	}
	var node Expr
	pos := start
	// action
	{
		start0 := pos
		// !KwName x:Expr Nl ArgSep
		// !KwName
		{
			pos3 := pos
			// KwName
			if p, n := _KwNameAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// x:Expr
		{
			pos6 := pos
			// Expr
			if p, n := _ExprAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		// Nl
		if p, n := _NlAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ArgSep
		if p, n := _ArgSepAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		node = func(
			start, end int, x Expr) Expr {
			return Expr(x)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _KwArgAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _KwArg, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// kw:(n:KwName Nl v:Expr {…}) Nl ArgSep
	// kw:(n:KwName Nl v:Expr {…})
	{
		pos1 := pos
		// (n:KwName Nl v:Expr {…})
		// action
		// n:KwName Nl v:Expr
		// n:KwName
		{
			pos3 := pos
			// KwName
			if !_accept(parser, _KwNameAccepts, &pos, &perr) {
				goto fail
			}
			labels[0] = parser.text[pos3:pos]
		}
		// Nl
		if !_accept(parser, _NlAccepts, &pos, &perr) {
			goto fail
		}
		// v:Expr
		{
			pos4 := pos
			// Expr
			if !_accept(parser, _ExprAccepts, &pos, &perr) {
				goto fail
			}
			labels[1] = parser.text[pos4:pos]
		}
		labels[2] = parser.text[pos1:pos]
	}
	// Nl
	if !_accept(parser, _NlAccepts, &pos, &perr) {
		goto fail
	}
	// ArgSep
	if !_accept(parser, _ArgSepAccepts, &pos, &perr) {
		goto fail
	}
	return _memoize(parser, _KwArg, start, pos, perr)
fail:
	return _memoize(parser, _KwArg, start, -1, perr)
}

func _KwArgFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _KwArg, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "KwArg",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _KwArg}
	// action
	// kw:(n:KwName Nl v:Expr {…}) Nl ArgSep
	// kw:(n:KwName Nl v:Expr {…})
	{
		pos1 := pos
		// (n:KwName Nl v:Expr {…})
		// action
		// n:KwName Nl v:Expr
		// n:KwName
		{
			pos3 := pos
			// KwName
			if !_fail(parser, _KwNameFail, errPos, failure, &pos) {
				goto fail
			}
			labels[0] = parser.text[pos3:pos]
		}
		// Nl
		if !_fail(parser, _NlFail, errPos, failure, &pos) {
			goto fail
		}
		// v:Expr
		{
			pos4 := pos
			// Expr
			if !_fail(parser, _ExprFail, errPos, failure, &pos) {
				goto fail
			}
			labels[1] = parser.text[pos4:pos]
		}
		labels[2] = parser.text[pos1:pos]
	}
	// Nl
	if !_fail(parser, _NlFail, errPos, failure, &pos) {
		goto fail
	}
	// ArgSep
	if !_fail(parser, _ArgSepFail, errPos, failure, &pos) {
		goto fail
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _KwArgAction(parser *_Parser, start int) (int, *Keyword) {
	var labels [3]string
	use(labels)
	var label0 string
	var label1 Expr
	var label2 Keyword
	dp := parser.deltaPos[start][_KwArg]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _KwArg}
	n := parser.act[key]
	if n != nil {
		n := n.(Keyword)
		return start + int(dp-1), &n
	}
	var node Keyword
	pos := start
	// action
	{
		start0 := pos
		// kw:(n:KwName Nl v:Expr {…}) Nl ArgSep
		// kw:(n:KwName Nl v:Expr {…})
		{
			pos2 := pos
			// (n:KwName Nl v:Expr {…})
			// action
			{
				start3 := pos
				// n:KwName Nl v:Expr
				// n:KwName
				{
					pos5 := pos
					// KwName
					if p, n := _KwNameAction(parser, pos); n == nil {
						goto fail
					} else {
						label0 = *n
						pos = p
					}
					labels[0] = parser.text[pos5:pos]
				}
				// Nl
				if p, n := _NlAction(parser, pos); n == nil {
					goto fail
				} else {
					pos = p
				}
				// v:Expr
				{
					pos6 := pos
					// Expr
					if p, n := _ExprAction(parser, pos); n == nil {
						goto fail
					} else {
						label1 = *n
						pos = p
					}
					labels[1] = parser.text[pos6:pos]
				}
				label2 = func(
					start, end int, n string, v Expr) Keyword {
					return Keyword{Range: loc.Range{start, end}, Name: n, Value: v}
				}(
					start3, pos, label0, label1)
			}
			labels[2] = parser.text[pos2:pos]
		}
		// Nl
		if p, n := _NlAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ArgSep
		if p, n := _ArgSepAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		node = func(
			start, end int, kw Keyword, n string, v Expr) Keyword {
			return Keyword(kw)
		}(
			start0, pos, label2, label0, label1)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _KwNameAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _KwName, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// k:Ident _ "=" {…}/"**" {…}
	{
		pos3 := pos
		// action
		// k:Ident _ "="
		// k:Ident
		{
			pos6 := pos
			// Ident
			if !_accept(parser, _IdentAccepts, &pos, &perr) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// "="
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "=" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos3
		// action
		// "**"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "**" {
			perr = _max(perr, pos)
			goto fail7
		}
		pos += 2
		goto ok0
	fail7:
		pos = pos3
		goto fail
	ok0:
	}
	perr = start
	return _memoize(parser, _KwName, start, pos, perr)
fail:
	return _memoize(parser, _KwName, start, -1, perr)
}

func _KwNameFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _KwName, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "KwName",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _KwName}
	// k:Ident _ "=" {…}/"**" {…}
	{
		pos3 := pos
		// action
		// k:Ident _ "="
		// k:Ident
		{
			pos6 := pos
			// Ident
			if !_fail(parser, _IdentFail, errPos, failure, &pos) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// "="
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "=" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"=\"",
				})
			}
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos3
		// action
		// "**"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "**" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"**\"",
				})
			}
			goto fail7
		}
		pos += 2
		goto ok0
	fail7:
		pos = pos3
		goto fail
	ok0:
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "keyword argument"
	parser.fail[key] = failure
	return -1, failure
}

func _KwNameAction(parser *_Parser, start int) (int, *string) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_KwName]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _KwName}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// k:Ident _ "=" {…}/"**" {…}
	{
		pos3 := pos
		var node2 string
		// action
		{
			start5 := pos
			// k:Ident _ "="
			// k:Ident
			{
				pos7 := pos
				// Ident
				if p, n := _IdentAction(parser, pos); n == nil {
					goto fail4
				} else {
					label0 = *n
					pos = p
				}
				labels[0] = parser.text[pos7:pos]
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// "="
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "=" {
				goto fail4
			}
			pos++
			node = func(
				start, end int, k string) string {
				return string(k)
			}(
				start5, pos, label0)
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start9 := pos
			// "**"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "**" {
				goto fail8
			}
			pos += 2
			node = func(
				start, end int, k string) string {
				return ""
			}(
				start9, pos, label0)
		}
		goto ok0
	fail8:
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

func _ArgSepAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _ArgSep, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// "," Nl/&")"
	{
		pos3 := pos
		// "," Nl
		// ","
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		// Nl
		if !_accept(parser, _NlAccepts, &pos, &perr) {
			goto fail4
		}
		goto ok0
	fail4:
		pos = pos3
		// &")"
		{
			pos8 := pos
			perr10 := perr
			// ")"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
				perr = _max(perr, pos)
				goto fail11
			}
			pos++
			goto ok7
		fail11:
			pos = pos8
			perr = _max(perr10, pos)
			goto fail6
		ok7:
			pos = pos8
			perr = perr10
		}
		goto ok0
	fail6:
		pos = pos3
		goto fail
	ok0:
	}
	perr = start
	return _memoize(parser, _ArgSep, start, pos, perr)
fail:
	return _memoize(parser, _ArgSep, start, -1, perr)
}

func _ArgSepFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _ArgSep, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "ArgSep",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _ArgSep}
	// "," Nl/&")"
	{
		pos3 := pos
		// "," Nl
		// ","
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\",\"",
				})
			}
			goto fail4
		}
		pos++
		// Nl
		if !_fail(parser, _NlFail, errPos, failure, &pos) {
			goto fail4
		}
		goto ok0
	fail4:
		pos = pos3
		// &")"
		{
			pos8 := pos
			nkids9 := len(failure.Kids)
			// ")"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\")\"",
					})
				}
				goto fail11
			}
			pos++
			goto ok7
		fail11:
			pos = pos8
			failure.Kids = failure.Kids[:nkids9]
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "&\")\"",
				})
			}
			goto fail6
		ok7:
			pos = pos8
			failure.Kids = failure.Kids[:nkids9]
		}
		goto ok0
	fail6:
		pos = pos3
		goto fail
	ok0:
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "\",\" or \")\""
	parser.fail[key] = failure
	return -1, failure
}

func _ArgSepAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_ArgSep]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _ArgSep}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// "," Nl/&")"
	{
		pos3 := pos
		var node2 string
		// "," Nl
		{
			var node5 string
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				goto fail4
			}
			node5 = parser.text[pos : pos+1]
			pos++
			node, node5 = node+node5, ""
			// Nl
			if p, n := _NlAction(parser, pos); n == nil {
				goto fail4
			} else {
				node5 = *n
				pos = p
			}
			node, node5 = node+node5, ""
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// &")"
		{
			pos8 := pos
			// ")"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
				goto fail11
			}
			pos++
			goto ok7
		fail11:
			pos = pos8
			goto fail6
		ok7:
			pos = pos8
			node = ""
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

func _IndexAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _Index, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// "[" Nl x:Elem xs:Elem* "]"
	// "["
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// Nl
	if !_accept(parser, _NlAccepts, &pos, &perr) {
		goto fail
	}
	// x:Elem
	{
		pos1 := pos
		// Elem
		if !_accept(parser, _ElemAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// xs:Elem*
	{
		pos2 := pos
		// Elem*
		for {
			pos4 := pos
			// Elem
			if !_accept(parser, _ElemAccepts, &pos, &perr) {
				goto fail6
			}
			continue
		fail6:
			pos = pos4
			break
		}
		labels[1] = parser.text[pos2:pos]
	}
	// "]"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	return _memoize(parser, _Index, start, pos, perr)
fail:
	return _memoize(parser, _Index, start, -1, perr)
}

func _IndexFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _Index, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Index",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Index}
	// action
	// "[" Nl x:Elem xs:Elem* "]"
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
	// Nl
	if !_fail(parser, _NlFail, errPos, failure, &pos) {
		goto fail
	}
	// x:Elem
	{
		pos1 := pos
		// Elem
		if !_fail(parser, _ElemFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// xs:Elem*
	{
		pos2 := pos
		// Elem*
		for {
			pos4 := pos
			// Elem
			if !_fail(parser, _ElemFail, errPos, failure, &pos) {
				goto fail6
			}
			continue
		fail6:
			pos = pos4
			break
		}
		labels[1] = parser.text[pos2:pos]
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

func _IndexAction(parser *_Parser, start int) (int, *suffix) {
	var labels [2]string
	use(labels)
	var label0 Expr
	var label1 []Expr
	dp := parser.deltaPos[start][_Index]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Index}
	n := parser.act[key]
	if n != nil {
		n := n.(suffix)
		return start + int(dp-1), &n
	}
	var node suffix
	pos := start
	// action
	{
		start0 := pos
		// "[" Nl x:Elem xs:Elem* "]"
		// "["
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
			goto fail
		}
		pos++
		// Nl
		if p, n := _NlAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// x:Elem
		{
			pos2 := pos
			// Elem
			if p, n := _ElemAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// xs:Elem*
		{
			pos3 := pos
			// Elem*
			for {
				pos5 := pos
				var node6 Expr
				// Elem
				if p, n := _ElemAction(parser, pos); n == nil {
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
		// "]"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
			goto fail
		}
		pos++
		node = func(
			start, end int, x Expr, xs []Expr) suffix {
			return suffix{end: end, index: append([]Expr{x}, xs...)}
		}(
			start0, pos, label0, label1)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _AttrAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Attr, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// "." _ n:Ident
	// "."
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "." {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// n:Ident
	{
		pos1 := pos
		// Ident
		if !_accept(parser, _IdentAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	return _memoize(parser, _Attr, start, pos, perr)
fail:
	return _memoize(parser, _Attr, start, -1, perr)
}

func _AttrFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Attr, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Attr",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Attr}
	// action
	// "." _ n:Ident
	// "."
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "." {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\".\"",
			})
		}
		goto fail
	}
	pos++
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// n:Ident
	{
		pos1 := pos
		// Ident
		if !_fail(parser, _IdentFail, errPos, failure, &pos) {
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

func _AttrAction(parser *_Parser, start int) (int, *suffix) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_Attr]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Attr}
	n := parser.act[key]
	if n != nil {
		n := n.(suffix)
		return start + int(dp-1), &n
	}
	var node suffix
	pos := start
	// action
	{
		start0 := pos
		// "." _ n:Ident
		// "."
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "." {
			goto fail
		}
		pos++
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// n:Ident
		{
			pos2 := pos
			// Ident
			if p, n := _IdentAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		node = func(
			start, end int, n string) suffix {
			return suffix{end: end, attr: n}
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _OperandAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [4]string
	use(labels)
	if dp, de, ok := _memo(parser, _Operand, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// n:Ident {…}/i:Int {…}/s:String {…}/"?" _ p:Ident {…}/List/Paren
	{
		pos3 := pos
		// action
		// n:Ident
		{
			pos5 := pos
			// Ident
			if !_accept(parser, _IdentAccepts, &pos, &perr) {
				goto fail4
			}
			labels[0] = parser.text[pos5:pos]
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// i:Int
		{
			pos7 := pos
			// Int
			if !_accept(parser, _IntAccepts, &pos, &perr) {
				goto fail6
			}
			labels[1] = parser.text[pos7:pos]
		}
		goto ok0
	fail6:
		pos = pos3
		// action
		// s:String
		{
			pos9 := pos
			// String
			if !_accept(parser, _StringAccepts, &pos, &perr) {
				goto fail8
			}
			labels[2] = parser.text[pos9:pos]
		}
		goto ok0
	fail8:
		pos = pos3
		// action
		// "?" _ p:Ident
		// "?"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "?" {
			perr = _max(perr, pos)
			goto fail10
		}
		pos++
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail10
		}
		// p:Ident
		{
			pos12 := pos
			// Ident
			if !_accept(parser, _IdentAccepts, &pos, &perr) {
				goto fail10
			}
			labels[3] = parser.text[pos12:pos]
		}
		goto ok0
	fail10:
		pos = pos3
		// List
		if !_accept(parser, _ListAccepts, &pos, &perr) {
			goto fail13
		}
		goto ok0
	fail13:
		pos = pos3
		// Paren
		if !_accept(parser, _ParenAccepts, &pos, &perr) {
			goto fail14
		}
		goto ok0
	fail14:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _Operand, start, pos, perr)
fail:
	return _memoize(parser, _Operand, start, -1, perr)
}

func _OperandFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [4]string
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
	// n:Ident {…}/i:Int {…}/s:String {…}/"?" _ p:Ident {…}/List/Paren
	{
		pos3 := pos
		// action
		// n:Ident
		{
			pos5 := pos
			// Ident
			if !_fail(parser, _IdentFail, errPos, failure, &pos) {
				goto fail4
			}
			labels[0] = parser.text[pos5:pos]
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// i:Int
		{
			pos7 := pos
			// Int
			if !_fail(parser, _IntFail, errPos, failure, &pos) {
				goto fail6
			}
			labels[1] = parser.text[pos7:pos]
		}
		goto ok0
	fail6:
		pos = pos3
		// action
		// s:String
		{
			pos9 := pos
			// String
			if !_fail(parser, _StringFail, errPos, failure, &pos) {
				goto fail8
			}
			labels[2] = parser.text[pos9:pos]
		}
		goto ok0
	fail8:
		pos = pos3
		// action
		// "?" _ p:Ident
		// "?"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "?" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"?\"",
				})
			}
			goto fail10
		}
		pos++
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail10
		}
		// p:Ident
		{
			pos12 := pos
			// Ident
			if !_fail(parser, _IdentFail, errPos, failure, &pos) {
				goto fail10
			}
			labels[3] = parser.text[pos12:pos]
		}
		goto ok0
	fail10:
		pos = pos3
		// List
		if !_fail(parser, _ListFail, errPos, failure, &pos) {
			goto fail13
		}
		goto ok0
	fail13:
		pos = pos3
		// Paren
		if !_fail(parser, _ParenFail, errPos, failure, &pos) {
			goto fail14
		}
		goto ok0
	fail14:
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

func _OperandAction(parser *_Parser, start int) (int, *Expr) {
	var labels [4]string
	use(labels)
	var label0 string
	var label1 string
	var label2 string
	var label3 string
	dp := parser.deltaPos[start][_Operand]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Operand}
	n := parser.act[key]
	if n != nil {
		n := n.(Expr)
		return start + int(dp-1), &n
	}
	var node Expr
	pos := start
	// n:Ident {…}/i:Int {…}/s:String {…}/"?" _ p:Ident {…}/List/Paren
	{
		pos3 := pos
		var node2 Expr
		// action
		{
			start5 := pos
			// n:Ident
			{
				pos6 := pos
				// Ident
				if p, n := _IdentAction(parser, pos); n == nil {
					goto fail4
				} else {
					label0 = *n
					pos = p
				}
				labels[0] = parser.text[pos6:pos]
			}
			node = func(
				start, end int, n string) Expr {
				return Expr(&Name{Range: loc.Range{start, end}, Text: n})
			}(
				start5, pos, label0)
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start8 := pos
			// i:Int
			{
				pos9 := pos
				// Int
				if p, n := _IntAction(parser, pos); n == nil {
					goto fail7
				} else {
					label1 = *n
					pos = p
				}
				labels[1] = parser.text[pos9:pos]
			}
			node = func(
				start, end int, i string, n string) Expr {
				return Expr(&Int{Range: loc.Range{start, end}, Text: i})
			}(
				start8, pos, label1, label0)
		}
		goto ok0
	fail7:
		node = node2
		pos = pos3
		// action
		{
			start11 := pos
			// s:String
			{
				pos12 := pos
				// String
				if p, n := _StringAction(parser, pos); n == nil {
					goto fail10
				} else {
					label2 = *n
					pos = p
				}
				labels[2] = parser.text[pos12:pos]
			}
			node = func(
				start, end int, i string, n string, s string) Expr {
				return Expr(&Str{Range: loc.Range{start, end}, Text: parser.text[start:end], Data: s})
			}(
				start11, pos, label1, label0, label2)
		}
		goto ok0
	fail10:
		node = node2
		pos = pos3
		// action
		{
			start14 := pos
			// "?" _ p:Ident
			// "?"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "?" {
				goto fail13
			}
			pos++
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail13
			} else {
				pos = p
			}
			// p:Ident
			{
				pos16 := pos
				// Ident
				if p, n := _IdentAction(parser, pos); n == nil {
					goto fail13
				} else {
					label3 = *n
					pos = p
				}
				labels[3] = parser.text[pos16:pos]
			}
			node = func(
				start, end int, i string, n string, p string, s string) Expr {
				return Expr(&Placeholder{Range: loc.Range{start, end}, Name: p})
			}(
				start14, pos, label1, label0, label3, label2)
		}
		goto ok0
	fail13:
		node = node2
		pos = pos3
		// List
		if p, n := _ListAction(parser, pos); n == nil {
			goto fail17
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail17:
		node = node2
		pos = pos3
		// Paren
		if p, n := _ParenAction(parser, pos); n == nil {
			goto fail18
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail18:
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

func _ListAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _List, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// "[" Nl es:Elem* "]"
	// "["
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// Nl
	if !_accept(parser, _NlAccepts, &pos, &perr) {
		goto fail
	}
	// es:Elem*
	{
		pos1 := pos
		// Elem*
		for {
			pos3 := pos
			// Elem
			if !_accept(parser, _ElemAccepts, &pos, &perr) {
				goto fail5
			}
			continue
		fail5:
			pos = pos3
			break
		}
		labels[0] = parser.text[pos1:pos]
	}
	// "]"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	return _memoize(parser, _List, start, pos, perr)
fail:
	return _memoize(parser, _List, start, -1, perr)
}

func _ListFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _List, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "List",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _List}
	// action
	// "[" Nl es:Elem* "]"
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
	// Nl
	if !_fail(parser, _NlFail, errPos, failure, &pos) {
		goto fail
	}
	// es:Elem*
	{
		pos1 := pos
		// Elem*
		for {
			pos3 := pos
			// Elem
			if !_fail(parser, _ElemFail, errPos, failure, &pos) {
				goto fail5
			}
			continue
		fail5:
			pos = pos3
			break
		}
		labels[0] = parser.text[pos1:pos]
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

func _ListAction(parser *_Parser, start int) (int, *Expr) {
	var labels [1]string
	use(labels)
	var label0 []Expr
	dp := parser.deltaPos[start][_List]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _List}
	n := parser.act[key]
	if n != nil {
		n := n.(Expr)
		return start + int(dp-1), &n
	}
	var node Expr
	pos := start
	// action
	{
		start0 := pos
		// "[" Nl es:Elem* "]"
		// "["
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
			goto fail
		}
		pos++
		// Nl
		if p, n := _NlAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// es:Elem*
		{
			pos2 := pos
			// Elem*
			for {
				pos4 := pos
				var node5 Expr
				// Elem
				if p, n := _ElemAction(parser, pos); n == nil {
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
		// "]"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
			goto fail
		}
		pos++
		node = func(
			start, end int, es []Expr) Expr {
			return Expr(&List{Range: loc.Range{start, end}, Elems: es})
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ParenAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Paren, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// "(" Nl x:Expr Nl ")"
	// "("
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// Nl
	if !_accept(parser, _NlAccepts, &pos, &perr) {
		goto fail
	}
	// x:Expr
	{
		pos1 := pos
		// Expr
		if !_accept(parser, _ExprAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// Nl
	if !_accept(parser, _NlAccepts, &pos, &perr) {
		goto fail
	}
	// ")"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	return _memoize(parser, _Paren, start, pos, perr)
fail:
	return _memoize(parser, _Paren, start, -1, perr)
}

func _ParenFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Paren, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Paren",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Paren}
	// action
	// "(" Nl x:Expr Nl ")"
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
	// Nl
	if !_fail(parser, _NlFail, errPos, failure, &pos) {
		goto fail
	}
	// x:Expr
	{
		pos1 := pos
		// Expr
		if !_fail(parser, _ExprFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// Nl
	if !_fail(parser, _NlFail, errPos, failure, &pos) {
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
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ParenAction(parser *_Parser, start int) (int, *Expr) {
	var labels [1]string
	use(labels)
	var label0 Expr
	dp := parser.deltaPos[start][_Paren]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Paren}
	n := parser.act[key]
	if n != nil {
		n := n.(Expr)
		return start + int(dp-1), &n
	}
	var node Expr
	pos := start
	// action
	{
		start0 := pos
		// "(" Nl x:Expr Nl ")"
		// "("
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
			goto fail
		}
		pos++
		// Nl
		if p, n := _NlAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// x:Expr
		{
			pos2 := pos
			// Expr
			if p, n := _ExprAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// Nl
		if p, n := _NlAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ")"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
			goto fail
		}
		pos++
		node = func(
			start, end int, x Expr) Expr {
			return Expr(x)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ElemAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Elem, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// x:Expr Nl ElemSep
	// x:Expr
	{
		pos1 := pos
		// Expr
		if !_accept(parser, _ExprAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// Nl
	if !_accept(parser, _NlAccepts, &pos, &perr) {
		goto fail
	}
	// ElemSep
	if !_accept(parser, _ElemSepAccepts, &pos, &perr) {
		goto fail
	}
	return _memoize(parser, _Elem, start, pos, perr)
fail:
	return _memoize(parser, _Elem, start, -1, perr)
}

func _ElemFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
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
	// x:Expr Nl ElemSep
	// x:Expr
	{
		pos1 := pos
		// Expr
		if !_fail(parser, _ExprFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// Nl
	if !_fail(parser, _NlFail, errPos, failure, &pos) {
		goto fail
	}
	// ElemSep
	if !_fail(parser, _ElemSepFail, errPos, failure, &pos) {
		goto fail
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ElemAction(parser *_Parser, start int) (int, *Expr) {
	var labels [1]string
	use(labels)
	var label0 Expr
	dp := parser.deltaPos[start][_Elem]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Elem}
	n := parser.act[key]
	if n != nil {
		n := n.(Expr)
		return start + int(dp-1), &n
	}
	var node Expr
	pos := start
	// action
	{
		start0 := pos
		// x:Expr Nl ElemSep
		// x:Expr
		{
			pos2 := pos
			// Expr
			if p, n := _ExprAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// Nl
		if p, n := _NlAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ElemSep
		if p, n := _ElemSepAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		node = func(
			start, end int, x Expr) Expr {
			return Expr(x)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ElemSepAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _ElemSep, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// "," Nl/&"]"
	{
		pos3 := pos
		// "," Nl
		// ","
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		// Nl
		if !_accept(parser, _NlAccepts, &pos, &perr) {
			goto fail4
		}
		goto ok0
	fail4:
		pos = pos3
		// &"]"
		{
			pos8 := pos
			perr10 := perr
			// "]"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
				perr = _max(perr, pos)
				goto fail11
			}
			pos++
			goto ok7
		fail11:
			pos = pos8
			perr = _max(perr10, pos)
			goto fail6
		ok7:
			pos = pos8
			perr = perr10
		}
		goto ok0
	fail6:
		pos = pos3
		goto fail
	ok0:
	}
	perr = start
	return _memoize(parser, _ElemSep, start, pos, perr)
fail:
	return _memoize(parser, _ElemSep, start, -1, perr)
}

func _ElemSepFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _ElemSep, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "ElemSep",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _ElemSep}
	// "," Nl/&"]"
	{
		pos3 := pos
		// "," Nl
		// ","
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\",\"",
				})
			}
			goto fail4
		}
		pos++
		// Nl
		if !_fail(parser, _NlFail, errPos, failure, &pos) {
			goto fail4
		}
		goto ok0
	fail4:
		pos = pos3
		// &"]"
		{
			pos8 := pos
			nkids9 := len(failure.Kids)
			// "]"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"]\"",
					})
				}
				goto fail11
			}
			pos++
			goto ok7
		fail11:
			pos = pos8
			failure.Kids = failure.Kids[:nkids9]
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "&\"]\"",
				})
			}
			goto fail6
		ok7:
			pos = pos8
			failure.Kids = failure.Kids[:nkids9]
		}
		goto ok0
	fail6:
		pos = pos3
		goto fail
	ok0:
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "\",\" or \"]\""
	parser.fail[key] = failure
	return -1, failure
}

func _ElemSepAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_ElemSep]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _ElemSep}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// "," Nl/&"]"
	{
		pos3 := pos
		var node2 string
		// "," Nl
		{
			var node5 string
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				goto fail4
			}
			node5 = parser.text[pos : pos+1]
			pos++
			node, node5 = node+node5, ""
			// Nl
			if p, n := _NlAction(parser, pos); n == nil {
				goto fail4
			} else {
				node5 = *n
				pos = p
			}
			node, node5 = node+node5, ""
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// &"]"
		{
			pos8 := pos
			// "]"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
				goto fail11
			}
			pos++
			goto ok7
		fail11:
			pos = pos8
			goto fail6
		ok7:
			pos = pos8
			node = ""
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

func _IdentAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Ident, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// [_a-zA-Z] [_a-zA-Z0-9]*
	// [_a-zA-Z]
	if r, w := _next(parser, pos); r != '_' && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
		perr = _max(perr, pos)
		goto fail
	} else {
		pos += w
	}
	// [_a-zA-Z0-9]*
	for {
		pos2 := pos
		// [_a-zA-Z0-9]
		if r, w := _next(parser, pos); r != '_' && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
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
	perr = start
	return _memoize(parser, _Ident, start, pos, perr)
fail:
	return _memoize(parser, _Ident, start, -1, perr)
}

func _IdentFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Ident, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Ident",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Ident}
	// [_a-zA-Z] [_a-zA-Z0-9]*
	// [_a-zA-Z]
	if r, w := _next(parser, pos); r != '_' && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "[_a-zA-Z]",
			})
		}
		goto fail
	} else {
		pos += w
	}
	// [_a-zA-Z0-9]*
	for {
		pos2 := pos
		// [_a-zA-Z0-9]
		if r, w := _next(parser, pos); r != '_' && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "[_a-zA-Z0-9]",
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
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "identifier"
	parser.fail[key] = failure
	return -1, failure
}

func _IdentAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_Ident]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Ident}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// [_a-zA-Z] [_a-zA-Z0-9]*
	{
		var node0 string
		// [_a-zA-Z]
		if r, w := _next(parser, pos); r != '_' && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			goto fail
		} else {
			node0 = parser.text[pos : pos+w]
			pos += w
		}
		node, node0 = node+node0, ""
		// [_a-zA-Z0-9]*
		for {
			pos2 := pos
			var node3 string
			// [_a-zA-Z0-9]
			if r, w := _next(parser, pos); r != '_' && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
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

func _IntAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Int, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// [0-9] [0-9_]*
	// [0-9]
	if r, w := _next(parser, pos); (r < '0' || r > '9') {
		perr = _max(perr, pos)
		goto fail
	} else {
		pos += w
	}
	// [0-9_]*
	for {
		pos2 := pos
		// [0-9_]
		if r, w := _next(parser, pos); (r < '0' || r > '9') && r != '_' {
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
	perr = start
	return _memoize(parser, _Int, start, pos, perr)
fail:
	return _memoize(parser, _Int, start, -1, perr)
}

func _IntFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Int, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Int",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Int}
	// [0-9] [0-9_]*
	// [0-9]
	if r, w := _next(parser, pos); (r < '0' || r > '9') {
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
	// [0-9_]*
	for {
		pos2 := pos
		// [0-9_]
		if r, w := _next(parser, pos); (r < '0' || r > '9') && r != '_' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "[0-9_]",
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
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "integer"
	parser.fail[key] = failure
	return -1, failure
}

func _IntAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_Int]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Int}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// [0-9] [0-9_]*
	{
		var node0 string
		// [0-9]
		if r, w := _next(parser, pos); (r < '0' || r > '9') {
			goto fail
		} else {
			node0 = parser.text[pos : pos+w]
			pos += w
		}
		node, node0 = node+node0, ""
		// [0-9_]*
		for {
			pos2 := pos
			var node3 string
			// [0-9_]
			if r, w := _next(parser, pos); (r < '0' || r > '9') && r != '_' {
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

func _StringAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _String, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// "'" s:SChar* "'" {…}/"\"" d:DChar* "\"" {…}
	{
		pos3 := pos
		// action
		// "'" s:SChar* "'"
		// "'"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "'" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		// s:SChar*
		{
			pos6 := pos
			// SChar*
			for {
				pos8 := pos
				// SChar
				if !_accept(parser, _SCharAccepts, &pos, &perr) {
					goto fail10
				}
				continue
			fail10:
				pos = pos8
				break
			}
			labels[0] = parser.text[pos6:pos]
		}
		// "'"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "'" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos3
		// action
		// "\"" d:DChar* "\""
		// "\""
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\"" {
			perr = _max(perr, pos)
			goto fail11
		}
		pos++
		// d:DChar*
		{
			pos13 := pos
			// DChar*
			for {
				pos15 := pos
				// DChar
				if !_accept(parser, _DCharAccepts, &pos, &perr) {
					goto fail17
				}
				continue
			fail17:
				pos = pos15
				break
			}
			labels[1] = parser.text[pos13:pos]
		}
		// "\""
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\"" {
			perr = _max(perr, pos)
			goto fail11
		}
		pos++
		goto ok0
	fail11:
		pos = pos3
		goto fail
	ok0:
	}
	perr = start
	return _memoize(parser, _String, start, pos, perr)
fail:
	return _memoize(parser, _String, start, -1, perr)
}

func _StringFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
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
	// "'" s:SChar* "'" {…}/"\"" d:DChar* "\"" {…}
	{
		pos3 := pos
		// action
		// "'" s:SChar* "'"
		// "'"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "'" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"'\"",
				})
			}
			goto fail4
		}
		pos++
		// s:SChar*
		{
			pos6 := pos
			// SChar*
			for {
				pos8 := pos
				// SChar
				if !_fail(parser, _SCharFail, errPos, failure, &pos) {
					goto fail10
				}
				continue
			fail10:
				pos = pos8
				break
			}
			labels[0] = parser.text[pos6:pos]
		}
		// "'"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "'" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"'\"",
				})
			}
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos3
		// action
		// "\"" d:DChar* "\""
		// "\""
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\"" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"\\\"\"",
				})
			}
			goto fail11
		}
		pos++
		// d:DChar*
		{
			pos13 := pos
			// DChar*
			for {
				pos15 := pos
				// DChar
				if !_fail(parser, _DCharFail, errPos, failure, &pos) {
					goto fail17
				}
				continue
			fail17:
				pos = pos15
				break
			}
			labels[1] = parser.text[pos13:pos]
		}
		// "\""
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\"" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"\\\"\"",
				})
			}
			goto fail11
		}
		pos++
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
	failure.Want = "string"
	parser.fail[key] = failure
	return -1, failure
}

func _StringAction(parser *_Parser, start int) (int, *string) {
	var labels [2]string
	use(labels)
	var label0 string
	var label1 string
	dp := parser.deltaPos[start][_String]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _String}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// "'" s:SChar* "'" {…}/"\"" d:DChar* "\"" {…}
	{
		pos3 := pos
		var node2 string
		// action
		{
			start5 := pos
			// "'" s:SChar* "'"
			// "'"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "'" {
				goto fail4
			}
			pos++
			// s:SChar*
			{
				pos7 := pos
				// SChar*
				for {
					pos9 := pos
					var node10 string
					// SChar
					if p, n := _SCharAction(parser, pos); n == nil {
						goto fail11
					} else {
						node10 = *n
						pos = p
					}
					label0 += node10
					continue
				fail11:
					pos = pos9
					break
				}
				labels[0] = parser.text[pos7:pos]
			}
			// "'"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "'" {
				goto fail4
			}
			pos++
			node = func(
				start, end int, s string) string {
				return string(s)
			}(
				start5, pos, label0)
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start13 := pos
			// "\"" d:DChar* "\""
			// "\""
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\"" {
				goto fail12
			}
			pos++
			// d:DChar*
			{
				pos15 := pos
				// DChar*
				for {
					pos17 := pos
					var node18 string
					// DChar
					if p, n := _DCharAction(parser, pos); n == nil {
						goto fail19
					} else {
						node18 = *n
						pos = p
					}
					label1 += node18
					continue
				fail19:
					pos = pos17
					break
				}
				labels[1] = parser.text[pos15:pos]
			}
			// "\""
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\"" {
				goto fail12
			}
			pos++
			node = func(
				start, end int, d string, s string) string {
				return string(d)
			}(
				start13, pos, label1, label0)
		}
		goto ok0
	fail12:
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

func _SCharAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _SChar, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// !"'" c:Char
	// !"'"
	{
		pos2 := pos
		perr4 := perr
		// "'"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "'" {
			perr = _max(perr, pos)
			goto ok1
		}
		pos++
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// c:Char
	{
		pos5 := pos
		// Char
		if !_accept(parser, _CharAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	return _memoize(parser, _SChar, start, pos, perr)
fail:
	return _memoize(parser, _SChar, start, -1, perr)
}

func _SCharFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _SChar, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "SChar",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _SChar}
	// action
	// !"'" c:Char
	// !"'"
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// "'"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "'" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"'\"",
				})
			}
			goto ok1
		}
		pos++
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!\"'\"",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// c:Char
	{
		pos5 := pos
		// Char
		if !_fail(parser, _CharFail, errPos, failure, &pos) {
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

func _SCharAction(parser *_Parser, start int) (int, *string) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_SChar]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _SChar}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// action
	{
		start0 := pos
		// !"'" c:Char
		// !"'"
		{
			pos3 := pos
			// "'"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "'" {
				goto ok2
			}
			pos++
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// c:Char
		{
			pos6 := pos
			// Char
			if p, n := _CharAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		node = func(
			start, end int, c string) string {
			return string(c)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _DCharAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _DChar, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// !"\"" c:Char
	// !"\""
	{
		pos2 := pos
		perr4 := perr
		// "\""
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\"" {
			perr = _max(perr, pos)
			goto ok1
		}
		pos++
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// c:Char
	{
		pos5 := pos
		// Char
		if !_accept(parser, _CharAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	return _memoize(parser, _DChar, start, pos, perr)
fail:
	return _memoize(parser, _DChar, start, -1, perr)
}

func _DCharFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _DChar, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "DChar",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _DChar}
	// action
	// !"\"" c:Char
	// !"\""
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// "\""
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\"" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"\\\"\"",
				})
			}
			goto ok1
		}
		pos++
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!\"\\\"\"",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// c:Char
	{
		pos5 := pos
		// Char
		if !_fail(parser, _CharFail, errPos, failure, &pos) {
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

func _DCharAction(parser *_Parser, start int) (int, *string) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_DChar]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _DChar}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// action
	{
		start0 := pos
		// !"\"" c:Char
		// !"\""
		{
			pos3 := pos
			// "\""
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\"" {
				goto ok2
			}
			pos++
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// c:Char
		{
			pos6 := pos
			// Char
			if p, n := _CharAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		node = func(
			start, end int, c string) string {
			return string(c)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _CharAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Char, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// "\\n" {…}/"\\t" {…}/"\\" c:[^\n] {…}/[^\\\n]
	{
		pos3 := pos
		// action
		// "\\n"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "\\n" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos += 2
		goto ok0
	fail4:
		pos = pos3
		// action
		// "\\t"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "\\t" {
			perr = _max(perr, pos)
			goto fail5
		}
		pos += 2
		goto ok0
	fail5:
		pos = pos3
		// action
		// "\\" c:[^\n]
		// "\\"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\\" {
			perr = _max(perr, pos)
			goto fail6
		}
		pos++
		// c:[^\n]
		{
			pos8 := pos
			// [^\n]
			if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == '\n' {
				perr = _max(perr, pos)
				goto fail6
			} else {
				pos += w
			}
			labels[0] = parser.text[pos8:pos]
		}
		goto ok0
	fail6:
		pos = pos3
		// [^\\\n]
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == '\\' || r == '\n' {
			perr = _max(perr, pos)
			goto fail9
		} else {
			pos += w
		}
		goto ok0
	fail9:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _Char, start, pos, perr)
fail:
	return _memoize(parser, _Char, start, -1, perr)
}

func _CharFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Char, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Char",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Char}
	// "\\n" {…}/"\\t" {…}/"\\" c:[^\n] {…}/[^\\\n]
	{
		pos3 := pos
		// action
		// "\\n"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "\\n" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"\\\\n\"",
				})
			}
			goto fail4
		}
		pos += 2
		goto ok0
	fail4:
		pos = pos3
		// action
		// "\\t"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "\\t" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"\\\\t\"",
				})
			}
			goto fail5
		}
		pos += 2
		goto ok0
	fail5:
		pos = pos3
		// action
		// "\\" c:[^\n]
		// "\\"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\\" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"\\\\\"",
				})
			}
			goto fail6
		}
		pos++
		// c:[^\n]
		{
			pos8 := pos
			// [^\n]
			if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == '\n' {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "[^\\n]",
					})
				}
				goto fail6
			} else {
				pos += w
			}
			labels[0] = parser.text[pos8:pos]
		}
		goto ok0
	fail6:
		pos = pos3
		// [^\\\n]
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == '\\' || r == '\n' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "[^\\\\\\n]",
				})
			}
			goto fail9
		} else {
			pos += w
		}
		goto ok0
	fail9:
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

func _CharAction(parser *_Parser, start int) (int, *string) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_Char]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Char}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// "\\n" {…}/"\\t" {…}/"\\" c:[^\n] {…}/[^\\\n]
	{
		pos3 := pos
		var node2 string
		// action
		{
			start5 := pos
			// "\\n"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "\\n" {
				goto fail4
			}
			pos += 2
			node = func(
				start, end int) string {
				return "\n"
			}(
				start5, pos)
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start7 := pos
			// "\\t"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "\\t" {
				goto fail6
			}
			pos += 2
			node = func(
				start, end int) string {
				return "\t"
			}(
				start7, pos)
		}
		goto ok0
	fail6:
		node = node2
		pos = pos3
		// action
		{
			start9 := pos
			// "\\" c:[^\n]
			// "\\"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\\" {
				goto fail8
			}
			pos++
			// c:[^\n]
			{
				pos11 := pos
				// [^\n]
				if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == '\n' {
					goto fail8
				} else {
					label0 = parser.text[pos : pos+w]
					pos += w
				}
				labels[0] = parser.text[pos11:pos]
			}
			node = func(
				start, end int, c string) string {
				return string(c)
			}(
				start9, pos, label0)
		}
		goto ok0
	fail8:
		node = node2
		pos = pos3
		// [^\\\n]
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == '\\' || r == '\n' {
			goto fail12
		} else {
			node = parser.text[pos : pos+w]
			pos += w
		}
		goto ok0
	fail12:
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

func __Accepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, __, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// (Space/Comment)*
	for {
		pos1 := pos
		// (Space/Comment)
		// Space/Comment
		{
			pos7 := pos
			// Space
			if !_accept(parser, _SpaceAccepts, &pos, &perr) {
				goto fail8
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
	// (Space/Comment)*
	for {
		pos1 := pos
		// (Space/Comment)
		// Space/Comment
		{
			pos7 := pos
			// Space
			if !_fail(parser, _SpaceFail, errPos, failure, &pos) {
				goto fail8
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
	// (Space/Comment)*
	for {
		pos1 := pos
		var node2 string
		// (Space/Comment)
		// Space/Comment
		{
			pos7 := pos
			var node6 string
			// Space
			if p, n := _SpaceAction(parser, pos); n == nil {
				goto fail8
			} else {
				node2 = *n
				pos = p
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

func _SpaceAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Space, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// [ \t\r]/"\\\n"
	{
		pos3 := pos
		// [ \t\r]
		if r, w := _next(parser, pos); r != ' ' && r != '\t' && r != '\r' {
			perr = _max(perr, pos)
			goto fail4
		} else {
			pos += w
		}
		goto ok0
	fail4:
		pos = pos3
		// "\\\n"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "\\\n" {
			perr = _max(perr, pos)
			goto fail5
		}
		pos += 2
		goto ok0
	fail5:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _Space, start, pos, perr)
fail:
	return _memoize(parser, _Space, start, -1, perr)
}

func _SpaceFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Space, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Space",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Space}
	// [ \t\r]/"\\\n"
	{
		pos3 := pos
		// [ \t\r]
		if r, w := _next(parser, pos); r != ' ' && r != '\t' && r != '\r' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "[ \\t\\r]",
				})
			}
			goto fail4
		} else {
			pos += w
		}
		goto ok0
	fail4:
		pos = pos3
		// "\\\n"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "\\\n" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"\\\\\\n\"",
				})
			}
			goto fail5
		}
		pos += 2
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

func _SpaceAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_Space]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Space}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// [ \t\r]/"\\\n"
	{
		pos3 := pos
		var node2 string
		// [ \t\r]
		if r, w := _next(parser, pos); r != ' ' && r != '\t' && r != '\r' {
			goto fail4
		} else {
			node = parser.text[pos : pos+w]
			pos += w
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// "\\\n"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "\\\n" {
			goto fail5
		}
		node = parser.text[pos : pos+2]
		pos += 2
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

func _CommentAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Comment, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// "#" (!"\n" .)*
	// "#"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "#" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// (!"\n" .)*
	for {
		pos2 := pos
		// (!"\n" .)
		// !"\n" .
		// !"\n"
		{
			pos7 := pos
			perr9 := perr
			// "\n"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
				perr = _max(perr, pos)
				goto ok6
			}
			pos++
			pos = pos7
			perr = _max(perr9, pos)
			goto fail4
		ok6:
			pos = pos7
			perr = perr9
		}
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
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
	// "#" (!"\n" .)*
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
	// (!"\n" .)*
	for {
		pos2 := pos
		// (!"\n" .)
		// !"\n" .
		// !"\n"
		{
			pos7 := pos
			nkids8 := len(failure.Kids)
			// "\n"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"\\n\"",
					})
				}
				goto ok6
			}
			pos++
			pos = pos7
			failure.Kids = failure.Kids[:nkids8]
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "!\"\\n\"",
				})
			}
			goto fail4
		ok6:
			pos = pos7
			failure.Kids = failure.Kids[:nkids8]
		}
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: ".",
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
	// "#" (!"\n" .)*
	{
		var node0 string
		// "#"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "#" {
			goto fail
		}
		node0 = parser.text[pos : pos+1]
		pos++
		node, node0 = node+node0, ""
		// (!"\n" .)*
		for {
			pos2 := pos
			var node3 string
			// (!"\n" .)
			// !"\n" .
			{
				var node5 string
				// !"\n"
				{
					pos7 := pos
					// "\n"
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
						goto ok6
					}
					pos++
					pos = pos7
					goto fail4
				ok6:
					pos = pos7
					node5 = ""
				}
				node3, node5 = node3+node5, ""
				// .
				if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
					goto fail4
				} else {
					node5 = parser.text[pos : pos+w]
					pos += w
				}
				node3, node5 = node3+node5, ""
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

func _NlAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Nl, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// _ ("\n" _)*
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// ("\n" _)*
	for {
		pos2 := pos
		// ("\n" _)
		// "\n" _
		// "\n"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		continue
	fail4:
		pos = pos2
		break
	}
	return _memoize(parser, _Nl, start, pos, perr)
fail:
	return _memoize(parser, _Nl, start, -1, perr)
}

func _NlFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Nl, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Nl",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Nl}
	// _ ("\n" _)*
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// ("\n" _)*
	for {
		pos2 := pos
		// ("\n" _)
		// "\n" _
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
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
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

func _NlAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_Nl]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Nl}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// _ ("\n" _)*
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
		// ("\n" _)*
		for {
			pos2 := pos
			var node3 string
			// ("\n" _)
			// "\n" _
			{
				var node5 string
				// "\n"
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
					goto fail4
				}
				node5 = parser.text[pos : pos+1]
				pos++
				node3, node5 = node3+node5, ""
				// _
				if p, n := __Action(parser, pos); n == nil {
					goto fail4
				} else {
					node5 = *n
					pos = p
				}
				node3, node5 = node3+node5, ""
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

func _EOFAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _EOF, start); ok {
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
	perr = start
	return _memoize(parser, _EOF, start, pos, perr)
fail:
	return _memoize(parser, _EOF, start, -1, perr)
}

func _EOFFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _EOF, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "EOF",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _EOF}
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
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "end of input"
	parser.fail[key] = failure
	return -1, failure
}

func _EOFAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_EOF]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _EOF}
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
