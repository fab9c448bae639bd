package ast

// Encoded is an encoder-friendly view of a node, tagged with its kind.
// It is what the JSON and YAML dumps serialize.
type Encoded struct {
	Kind   string     `json:"kind" yaml:"kind"`
	Pos    string     `json:"pos,omitempty" yaml:"pos,omitempty"`
	Value  *float64   `json:"value,omitempty" yaml:"value,omitempty"`
	Name   string     `json:"name,omitempty" yaml:"name,omitempty"`
	Op     string     `json:"op,omitempty" yaml:"op,omitempty"`
	LHS    *Encoded   `json:"lhs,omitempty" yaml:"lhs,omitempty"`
	RHS    *Encoded   `json:"rhs,omitempty" yaml:"rhs,omitempty"`
	Args   []*Encoded `json:"args,omitempty" yaml:"args,omitempty"`
	Params []string   `json:"params,omitempty" yaml:"params,omitempty"`
	Proto  *Encoded   `json:"proto,omitempty" yaml:"proto,omitempty"`
	Body   *Encoded   `json:"body,omitempty" yaml:"body,omitempty"`
}

// Encode converts n into its tagged form. A nil node encodes as nil.
func Encode(n Node) *Encoded {
	if n == nil {
		return nil
	}
	e := &Encoded{}
	if pos := n.Position(); pos.Line > 0 {
		e.Pos = pos.String()
	}
	switch n := n.(type) {
	case *Number:
		e.Kind = "number"
		v := n.Value
		e.Value = &v
	case *Variable:
		e.Kind = "variable"
		e.Name = n.Name
	case *Binary:
		e.Kind = "binary"
		e.Op = string(n.Op)
		e.LHS = Encode(n.LHS)
		e.RHS = Encode(n.RHS)
	case *Call:
		e.Kind = "call"
		e.Name = n.Callee
		e.Args = make([]*Encoded, len(n.Args))
		for i, arg := range n.Args {
			e.Args[i] = Encode(arg)
		}
	case *Prototype:
		e.Kind = "prototype"
		e.Name = n.Name
		e.Params = n.Params
	case *Function:
		e.Kind = "function"
		e.Proto = Encode(n.Proto)
		e.Body = Encode(n.Body)
	}
	return e
}
