package pebble

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// Token is a lexical token of the calculator language.
type Token struct {
	// Kind is the type of the token.
	Kind TokenKind
	// Text is the source text of the token. It is empty for EOF.
	Text string
	// Num is the value of a number token.
	Num float64
	// Pos is the 1-based rune column at which the token starts.
	Pos int
}

func (t Token) String() string {
	switch t.Kind {
	case TokenEOF:
		return "EOF"
	case TokenNum:
		return "number " + t.Text
	case TokenIdent:
		return "identifier " + strconv.Quote(t.Text)
	case TokenLet:
		return "keyword let"
	default:
		return strconv.Quote(t.Text)
	}
}

// TokenKind is the type of a token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenEOF indicates the end of the input.
	TokenEOF
	// TokenNum is a decimal number literal.
	TokenNum
	// TokenIdent is a variable, constant, or function name.
	TokenIdent

	TokenPlus  // +
	TokenMinus // -
	TokenStar  // *
	TokenSlash // /
	TokenOpen  // (
	TokenClose // )
	TokenComma // ,
	TokenEquals
	// TokenLet is the reserved word let.
	TokenLet
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token
//go:generate go mod tidy

// Punctuation contains the runes which lex as single-rune tokens.
const Punctuation = "+-*/(),="

var punctkinds = [...]TokenKind{
	TokenPlus,
	TokenMinus,
	TokenStar,
	TokenSlash,
	TokenOpen,
	TokenClose,
	TokenComma,
	TokenEquals,
}

// keywords maps reserved words to their token kinds.
var keywords = map[string]TokenKind{
	"let": TokenLet,
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	p    Token
	eof  bool
	// strict makes unrecognized runes a LexError rather than the end of the
	// token stream.
	strict bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok Token) {
	if l.p.Kind != TokenNone {
		panic("pebble: double push")
	}
	l.p = tok
}

// must scans the pushed token. Panics if there is no pushed token.
func (l *lexer) must() Token {
	tok := l.p
	if tok.Kind == TokenNone {
		panic("pebble: no pushed token")
	}
	l.p = Token{}
	return tok
}

// peek returns the next token without consuming it.
func (l *lexer) peek() (Token, error) {
	if l.p.Kind != TokenNone {
		return l.p, nil
	}
	tok, err := l.next()
	if err != nil {
		return tok, err
	}
	l.push(tok)
	return tok, nil
}

// accept consumes the next token if it has the given kind.
func (l *lexer) accept(kind TokenKind) (Token, bool, error) {
	tok, err := l.peek()
	if err != nil {
		return tok, false, err
	}
	if tok.Kind != kind {
		return tok, false, nil
	}
	return l.must(), true, nil
}

// expect consumes the next token, which must have the given kind.
func (l *lexer) expect(kind TokenKind) (Token, error) {
	tok, err := l.next()
	if err != nil {
		return tok, err
	}
	if tok.Kind != kind {
		return tok, unexpected(tok)
	}
	return tok, nil
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. Once the input is exhausted, or
// once a rune that begins no token is found outside strict mode, every call
// returns an EOF token.
func (l *lexer) next() (Token, error) {
	if l.p.Kind != TokenNone {
		return l.must(), nil
	}
	if l.eof {
		return Token{Kind: TokenEOF, Pos: l.rune + 1}, nil
	}
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.eof = true
				return Token{Kind: TokenEOF, Pos: l.rune + 1}, nil
			}
			return Token{Pos: l.rune}, err
		}
		tok := Token{Pos: l.rune}
		switch {
		case r == ' ', r == '\t', r == '\r', r == '\n':
			continue
		case '0' <= r && r <= '9':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.Kind = TokenNum
			tok.Text = l.buf.String()
			tok.Num = parseNum(tok.Text)
			return tok, nil
		case 'a' <= r && r <= 'z':
			l.unreadRune()
			if err := l.scanIdent(); err != nil {
				return tok, err
			}
			tok.Text = l.buf.String()
			tok.Kind = TokenIdent
			if k, ok := keywords[tok.Text]; ok {
				tok.Kind = k
			}
			return tok, nil
		default:
			if k := strings.IndexRune(Punctuation, r); k >= 0 {
				tok.Text = string(r)
				tok.Kind = punctkinds[k]
				return tok, nil
			}
			if l.strict {
				// Write the rune so that it shows up in the error message.
				l.buf.WriteRune(r)
				return tok, l.error()
			}
			// Anything else ends the token stream.
			l.eof = true
			tok.Kind = TokenEOF
			return tok, nil
		}
	}
}

// scanNum scans digits, then optionally a decimal point and more digits.
func (l *lexer) scanNum() error {
	if err := l.scanDigits(); err != nil {
		return err
	}
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if r != '.' {
		l.unreadRune()
		return nil
	}
	l.buf.WriteRune(r)
	return l.scanDigits()
}

func (l *lexer) scanDigits() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if r < '0' || '9' < r {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

func (l *lexer) scanIdent() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// next unreads the rune that decides ident scanning before
				// calling scanIdent, so we have scanned at least one rune.
				return nil
			}
			return err
		}
		if r < 'a' || 'z' < r {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// parseNum converts the text of a number token. Literals too large for a
// float64 become +Inf.
func parseNum(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// The lexer only admits digits and one decimal point.
		panic("pebble: invalid number: " + s + " (" + err.Error() + ")")
	}
	return f
}

func (l *lexer) error() error {
	return &LexError{
		Text: l.buf.String(),
		Col:  l.rune,
	}
}
