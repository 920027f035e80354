package pebble

import (
	"io"
	"strings"
)

// chain          = stmt { ',' stmt }
// stmt           = 'let' ident '=' expr | expr
// expr           = additive
// additive       = multiplicative { ('+' | '-') multiplicative }
// multiplicative = unary { ('*' | '/') unary }
// unary          = '-' unary | primary
// primary        = num | '(' expr ')' | varorcall
// varorcall      = ident [ '(' [ expr { ',' expr } ] ')' ]

// Expr is a parsed statement or chain of statements that can be evaluated
// with an Env.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// names is the list of variable names read in the expression.
	names []string
	// binds is the list of variable names assigned in the expression.
	binds []string
}

// Parse parses one complete chain of statements from src. The entire input
// must be consumed; tokens left over after the chain are an
// UnexpectedTokenError. The given options are applied in order.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	p := parsectx{
		names: make(map[string]bool),
		binds: make(map[string]bool),
	}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	scan := lex(src)
	scan.strict = p.strict
	n, err := parsechain(scan, &p)
	if err != nil {
		return nil, err
	}
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenEOF {
		return nil, &UnexpectedTokenError{Tok: tok}
	}
	ex := Expr{
		n:     n,
		names: setstrs(p.names),
		binds: setstrs(p.binds),
	}
	return &ex, nil
}

// ParseString is a shortcut to parse a string.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// setstrs returns the sorted elements of a set.
func setstrs(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	r := make([]string, 0, len(set))
	for k := range set {
		r = append(r, k)
	}
	sortstrs(r)
	return r
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// parsechain parses statements separated by commas. A single statement is
// returned as itself rather than as a chain of one.
func parsechain(scan *lexer, p *parsectx) (*node, error) {
	n, err := parsestmt(scan, p)
	if err != nil {
		return nil, err
	}
	var stmts []*node
	for {
		_, ok, err := scan.accept(TokenComma)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if stmts == nil {
			stmts = []*node{n}
		}
		s, err := parsestmt(scan, p)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	if stmts == nil {
		return n, nil
	}
	return &node{kind: nodeChain, pos: n.pos, args: stmts}, nil
}

// parsestmt parses an assignment or a bare expression.
func parsestmt(scan *lexer, p *parsectx) (*node, error) {
	let, ok, err := scan.accept(TokenLet)
	if err != nil {
		return nil, err
	}
	if !ok {
		return parseexpr(scan, p)
	}
	name, err := scan.expect(TokenIdent)
	if err != nil {
		return nil, err
	}
	if _, err := scan.expect(TokenEquals); err != nil {
		return nil, err
	}
	rhs, err := parseexpr(scan, p)
	if err != nil {
		return nil, err
	}
	p.binds[name.Text] = true
	return &node{kind: nodeLet, name: name.Text, pos: let.Pos, left: rhs}, nil
}

func parseexpr(scan *lexer, p *parsectx) (*node, error) {
	return parseadditive(scan, p)
}

func parseadditive(scan *lexer, p *parsectx) (*node, error) {
	return parseleft(scan, p, parsemultiplicative, TokenPlus, TokenMinus)
}

func parsemultiplicative(scan *lexer, p *parsectx) (*node, error) {
	return parseleft(scan, p, parseunary, TokenStar, TokenSlash)
}

// parseleft parses one precedence level of left-associative binary operators.
// Each operand is parsed with operand, and each new operator takes the tree
// built so far as its left child.
func parseleft(scan *lexer, p *parsectx, operand func(*lexer, *parsectx) (*node, error), ops ...TokenKind) (*node, error) {
	n, err := operand(scan, p)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := scan.peek()
		if err != nil {
			return nil, err
		}
		if !haskind(ops, tok.Kind) {
			return n, nil
		}
		scan.must()
		rhs, err := operand(scan, p)
		if err != nil {
			return nil, err
		}
		n = &node{kind: binop(tok.Kind), pos: tok.Pos, left: n, right: rhs}
	}
}

func haskind(kinds []TokenKind, k TokenKind) bool {
	for _, v := range kinds {
		if v == k {
			return true
		}
	}
	return false
}

// parseunary parses any number of negations followed by a primary.
func parseunary(scan *lexer, p *parsectx) (*node, error) {
	tok, ok, err := scan.accept(TokenMinus)
	if err != nil {
		return nil, err
	}
	if !ok {
		return parseprimary(scan, p)
	}
	rhs, err := parseunary(scan, p)
	if err != nil {
		return nil, err
	}
	return &node{kind: nodeNeg, pos: tok.Pos, left: rhs}, nil
}

func parseprimary(scan *lexer, p *parsectx) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case TokenNum:
		return &node{kind: nodeNum, name: tok.Text, num: tok.Num, pos: tok.Pos}, nil
	case TokenOpen:
		n, err := parseexpr(scan, p)
		if err != nil {
			return nil, err
		}
		if _, err := scan.expect(TokenClose); err != nil {
			return nil, err
		}
		return n, nil
	case TokenIdent:
		return parsevarorcall(scan, p, tok)
	default:
		return nil, unexpected(tok)
	}
}

// parsevarorcall parses the remainder of a variable reference or function call
// that begins with the identifier id.
func parsevarorcall(scan *lexer, p *parsectx, id Token) (*node, error) {
	_, ok, err := scan.accept(TokenOpen)
	if err != nil {
		return nil, err
	}
	if !ok {
		if _, c := globalconsts[id.Text]; !c {
			p.names[id.Text] = true
		}
		return &node{kind: nodeName, name: id.Text, pos: id.Pos}, nil
	}
	n := &node{kind: nodeCall, name: id.Text, pos: id.Pos}
	_, ok, err = scan.accept(TokenClose)
	if err != nil {
		return nil, err
	}
	if ok {
		// Niladic call.
		return n, nil
	}
	for {
		arg, err := parseexpr(scan, p)
		if err != nil {
			return nil, err
		}
		n.args = append(n.args, arg)
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case TokenClose:
			return n, nil
		case TokenComma:
			// Next argument.
		default:
			return nil, unexpected(tok)
		}
	}
}

// Vars returns the sorted names of the variables the expression reads. Global
// constants are not included.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// Binds returns the sorted names of the variables the expression assigns.
func (e *Expr) Binds() []string {
	return append(([]string)(nil), e.binds...)
}

// String creates a string representation of the parsed expression, with every
// term parenthesized. Parsing the result gives an identical tree.
func (e *Expr) String() string {
	return e.n.String()
}

// binop gets the node kind for a binary operator token.
func binop(k TokenKind) nodeKind {
	switch k {
	case TokenPlus:
		return nodeAdd
	case TokenMinus:
		return nodeSub
	case TokenStar:
		return nodeMul
	case TokenSlash:
		return nodeDiv
	default:
		panic("pebble: not a binary operator: " + k.String())
	}
}
