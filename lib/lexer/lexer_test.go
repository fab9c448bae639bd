package klex

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func scanAll(src string) []Token {
	tz := NewString("test.kal", src)
	var toks []Token
	for {
		tok := tz.Next()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks
		}
	}
}

func kinds(toks []Token) []Kind {
	ks := make([]Kind, len(toks))
	for i, tok := range toks {
		ks[i] = tok.Kind
	}
	return ks
}

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		kinds  []Kind
		spells []string
	}{
		{"empty", "", []Kind{EOF}, []string{""}},
		{"ident", "foo", []Kind{Identifier, EOF}, []string{"foo", ""}},
		{"ident_digits", "foo123", []Kind{Identifier, EOF}, []string{"foo123", ""}},
		{"ident_caps", "FooBar", []Kind{Identifier, EOF}, []string{"FooBar", ""}},
		{"kw_def", "def", []Kind{Def, EOF}, []string{"def", ""}},
		{"kw_extern", "extern", []Kind{Extern, EOF}, []string{"extern", ""}},
		{"kw_prefix", "define", []Kind{Identifier, EOF}, []string{"define", ""}},
		{"kw_case", "Def", []Kind{Identifier, EOF}, []string{"Def", ""}},
		{"number_int", "42", []Kind{Number, EOF}, []string{"42", ""}},
		{"number_frac", "4.5", []Kind{Number, EOF}, []string{"4.5", ""}},
		{"number_lead_dot", ".5", []Kind{Number, EOF}, []string{".5", ""}},
		{"number_then_ident", "1x", []Kind{Number, Identifier, EOF}, []string{"1", "x", ""}},
		{"underscore", "_", []Kind{Symbol, EOF}, []string{"_", ""}},
		{"ops", "<+-*", []Kind{Symbol, Symbol, Symbol, Symbol, EOF}, []string{"<", "+", "-", "*", ""}},
		{"punct", "(,);", []Kind{Symbol, Symbol, Symbol, Symbol, EOF}, []string{"(", ",", ")", ";", ""}},
		{"comment_only", "# nothing here", []Kind{EOF}, []string{""}},
		{"comment_cr", "# a\ra", []Kind{Identifier, EOF}, []string{"a", ""}},
		{"comment_between", "a # b\nc", []Kind{Identifier, Identifier, EOF}, []string{"a", "c", ""}},
		{"call", "foo(1, x)", []Kind{Identifier, Symbol, Number, Symbol, Identifier, Symbol, EOF},
			[]string{"foo", "(", "1", ",", "x", ")", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := scanAll(tt.src)
			if len(toks) != len(tt.kinds) {
				t.Fatalf("got %d tokens %v, want %d", len(toks), toks, len(tt.kinds))
			}
			for i, tok := range toks {
				if tok.Kind != tt.kinds[i] {
					t.Errorf("token %d: kind = %v, want %v", i, tok.Kind, tt.kinds[i])
				}
				if got := tok.Spelling(); got != tt.spells[i] {
					t.Errorf("token %d: spelling = %q, want %q", i, got, tt.spells[i])
				}
			}
		})
	}
}

func TestScanMixedSequence(t *testing.T) {
	toks := scanAll("foo123 + 4.5 # comment\nbar")

	want := []Kind{Identifier, Symbol, Number, Identifier, EOF}
	if got := kinds(toks); len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	if toks[0].Text != "foo123" {
		t.Errorf("toks[0].Text = %q, want foo123", toks[0].Text)
	}
	if !toks[1].Is('+') {
		t.Errorf("toks[1] = %v, want symbol '+'", toks[1])
	}
	if toks[2].Value != 4.5 || toks[2].Err != nil {
		t.Errorf("toks[2] = %v (err %v), want 4.5", toks[2].Value, toks[2].Err)
	}
	if toks[3].Text != "bar" {
		t.Errorf("toks[3].Text = %q, want bar", toks[3].Text)
	}
}

func TestWhitespaceAndCommentsOnly(t *testing.T) {
	inputs := []string{
		"",
		"   \t\n\r\v\f",
		"#",
		"# one\n# two\n\n   # three",
		strings.Repeat("#c\n", 100000),
	}
	for _, src := range inputs {
		toks := scanAll(src)
		if len(toks) != 1 || toks[0].Kind != EOF {
			t.Errorf("scan(%.20q) = %v, want only EOF", src, kinds(toks))
		}
	}
}

func TestMalformedNumber(t *testing.T) {
	for _, src := range []string{"1.2.3", ".", "..", "1..2"} {
		toks := scanAll(src)
		if len(toks) != 2 || toks[0].Kind != Number {
			t.Fatalf("scan(%q) = %v, want Number EOF", src, kinds(toks))
		}
		if toks[0].Err == nil {
			t.Errorf("scan(%q): expected Err on number token", src)
		}
		if toks[0].Text != src {
			t.Errorf("scan(%q): text = %q", src, toks[0].Text)
		}
	}
}

func TestEOFIsSticky(t *testing.T) {
	tz := NewString("", "a")
	tz.Next()
	for i := 0; i < 3; i++ {
		if tok := tz.Next(); tok.Kind != EOF {
			t.Fatalf("call %d after end: got %v, want EOF", i, tok)
		}
	}
}

func TestPositions(t *testing.T) {
	toks := scanAll("def f(x)\n  x * 2.5")
	want := []struct {
		line, col, offset int
	}{
		{1, 1, 0},  // def
		{1, 5, 4},  // f
		{1, 6, 5},  // (
		{1, 7, 6},  // x
		{1, 8, 7},  // )
		{2, 3, 11}, // x
		{2, 5, 13}, // *
		{2, 7, 15}, // 2.5
	}
	for i, w := range want {
		pos := toks[i].Pos
		if pos.Line != w.line || pos.Column != w.col || pos.Offset != w.offset {
			t.Errorf("token %d (%v): pos = %d:%d@%d, want %d:%d@%d",
				i, toks[i], pos.Line, pos.Column, pos.Offset, w.line, w.col, w.offset)
		}
		if pos.Filename != "test.kal" {
			t.Errorf("token %d: filename = %q", i, pos.Filename)
		}
	}
}

func TestReadError(t *testing.T) {
	boom := errors.New("boom")
	tz := New("", io.MultiReader(strings.NewReader("abc def"), iotest.ErrReader(boom)))

	var toks []Token
	for {
		tok := tz.Next()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			break
		}
	}
	if !errors.Is(tz.Err(), boom) {
		t.Fatalf("Err() = %v, want %v", tz.Err(), boom)
	}
	if len(toks) != 3 || toks[1].Text != "def" {
		t.Fatalf("tokens = %v", toks)
	}
	if toks[len(toks)-1].Kind != EOF {
		t.Fatal("stream did not end with EOF")
	}
}

func TestCursor(t *testing.T) {
	c := NewCursor(NewString("", "a 1"))
	if c.Current().Kind != EOF {
		t.Fatalf("initial current = %v, want zero token", c.Current())
	}
	if tok := c.Advance(); tok.Kind != Identifier || c.Current().Text != "a" {
		t.Fatalf("Advance = %v, current = %v", tok, c.Current())
	}
	if tok := c.Advance(); tok.Kind != Number || c.Current().Value != 1 {
		t.Fatalf("Advance = %v, current = %v", tok, c.Current())
	}
	if tok := c.Advance(); tok.Kind != EOF {
		t.Fatalf("Advance = %v, want EOF", tok)
	}
}

func TestIsSymbolChar(t *testing.T) {
	for _, c := range []byte("<+-*/%^!=&|>(),;") {
		if !IsSymbolChar(c) {
			t.Errorf("IsSymbolChar(%q) = false", c)
		}
	}
	for _, c := range []byte("aZ09.# \t\n") {
		if IsSymbolChar(c) {
			t.Errorf("IsSymbolChar(%q) = true", c)
		}
	}
}

func BenchmarkTokenizer(b *testing.B) {
	src := strings.Repeat("def fib(x) fib(x-1)+fib(x-2) # recurse\n", 100)
	b.SetBytes(int64(len(src)))
	for i := 0; i < b.N; i++ {
		tz := NewString("", src)
		for tz.Next().Kind != EOF {
		}
	}
}
