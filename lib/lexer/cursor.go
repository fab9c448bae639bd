package klex

// Cursor holds the current token of a parsing session. Advance is the
// only way to move it; there is no pushback.
type Cursor struct {
	tz  *Tokenizer
	cur Token
}

func NewCursor(tz *Tokenizer) *Cursor {
	return &Cursor{tz: tz}
}

// Advance reads the next token, makes it current and returns it.
func (c *Cursor) Advance() Token {
	c.cur = c.tz.Next()
	return c.cur
}

// Current returns the current token. Before the first Advance it is the
// zero Token, which has kind EOF.
func (c *Cursor) Current() Token {
	return c.cur
}

// Tokenizer returns the underlying tokenizer.
func (c *Cursor) Tokenizer() *Tokenizer {
	return c.tz
}

// IsSymbolChar reports whether the tokenizer emits c as a Symbol token.
func IsSymbolChar(c byte) bool {
	ch := int(c)
	return !isSpace(ch) && !isAlnum(ch) && !isNumberPart(ch) && ch != '#'
}
