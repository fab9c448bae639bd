package ast

// Inspect traverses the tree rooted at n in depth-first, source order.
// It calls f(n); if f returns true, Inspect visits the children of n.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	switch n := n.(type) {
	case *Number, *Variable, *Prototype:
	case *Binary:
		Inspect(n.LHS, f)
		Inspect(n.RHS, f)
	case *Call:
		for _, arg := range n.Args {
			Inspect(arg, f)
		}
	case *Function:
		Inspect(n.Proto, f)
		Inspect(n.Body, f)
	}
}
