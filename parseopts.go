package pebble

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type strictopt struct{}

// parsectx holds general data for parsing.
type parsectx struct {
	// names is the set of variable names that have been read this parse.
	names map[string]bool
	// binds is the set of variable names that have been assigned this parse.
	binds map[string]bool
	// strict indicates that runes which begin no token are errors.
	strict bool
}

// Strict tells the parser to reject any character that cannot begin a token
// with a LexError. By default, such a character silently ends the input, so
// that e.g. "1 + 2 $ junk" parses as "1 + 2".
func Strict() ParseOption {
	return strictopt{}
}

func (strictopt) parseOption(p parsectx) parsectx {
	p.strict = true
	return p
}
