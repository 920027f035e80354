package pebble

import "strconv"

// UnexpectedEOFError is an error indicating that the input ended where the
// grammar required another token. It implements InputError.
type UnexpectedEOFError struct {
	// Col is the position just past the last token scanned.
	Col int
}

func (err *UnexpectedEOFError) Error() string {
	return errpos(err.Col, "unexpected EOF")
}

func (err *UnexpectedEOFError) Pos() int {
	return err.Col
}

// UnexpectedTokenError is an error indicating a token of the wrong kind where
// the grammar required a specific kind, or a token left over after a complete
// statement. It implements InputError.
type UnexpectedTokenError struct {
	// Tok is the offending token.
	Tok Token
}

func (err *UnexpectedTokenError) Error() string {
	return errpos(err.Tok.Pos, "unexpected token "+err.Tok.String())
}

func (err *UnexpectedTokenError) Pos() int {
	return err.Tok.Pos
}

// LexError indicates a rune that begins no token. The lexer only reports it
// when parsing with Strict; otherwise such a rune ends the input. It
// implements InputError.
type LexError struct {
	// Text is the invalid rune.
	Text string
	// Col is the position of the invalid rune.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

// unexpected creates the error for finding tok where some other token was
// required.
func unexpected(tok Token) error {
	if tok.Kind == TokenEOF {
		return &UnexpectedEOFError{Col: tok.Pos}
	}
	return &UnexpectedTokenError{Tok: tok}
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input to Parse implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*UnexpectedEOFError)(nil)
	_ InputError = (*UnexpectedTokenError)(nil)
	_ InputError = (*LexError)(nil)
)
