package ast

import (
	"strconv"
	"strings"
)

// String renders n as an S-expression:
//
//	1+2*3           (+ 1 (* 2 3))
//	foo(1, x)       (call foo 1 x)
//	extern sin(x)   (proto sin x)
//	def f(a) a      (def (proto f a) a)
//
// Anonymous functions print their prototype as (proto).
func String(n Node) string {
	var b strings.Builder
	write(&b, n)
	return b.String()
}

func write(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case nil:
		b.WriteString("<nil>")
	case *Number:
		b.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
	case *Variable:
		b.WriteString(n.Name)
	case *Binary:
		b.WriteByte('(')
		b.WriteByte(n.Op)
		b.WriteByte(' ')
		write(b, n.LHS)
		b.WriteByte(' ')
		write(b, n.RHS)
		b.WriteByte(')')
	case *Call:
		b.WriteString("(call ")
		b.WriteString(n.Callee)
		for _, arg := range n.Args {
			b.WriteByte(' ')
			write(b, arg)
		}
		b.WriteByte(')')
	case *Prototype:
		b.WriteString("(proto")
		if n.Name != "" {
			b.WriteByte(' ')
			b.WriteString(n.Name)
		}
		for _, p := range n.Params {
			b.WriteByte(' ')
			b.WriteString(p)
		}
		b.WriteByte(')')
	case *Function:
		b.WriteString("(def ")
		write(b, n.Proto)
		b.WriteByte(' ')
		write(b, n.Body)
		b.WriteByte(')')
	}
}
