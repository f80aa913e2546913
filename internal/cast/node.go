// Package cast is the in-memory C AST: a tagged sum over the pycparser
// "_nodetype" dict shape, as a Go interface with one concrete struct per
// kind. Auxiliary marking data (node ids, mutability, mutation flags) is
// never stored on these structs — it lives in sidecar maps built by
// internal/walker and internal/classifier, so a Node value round-trips
// through MarshalJSON/UnmarshalJSON unchanged by having been walked.
package cast

import (
	"encoding/json"
	"fmt"
)

// Node is any C AST node. Children returns the node's direct children in
// the order a pre-order traversal should visit them; nil entries are never
// included.
type Node interface {
	Kind() string
	Children() []Node
	Clone() Node
}

// Program is the root of a translation unit ("FileAST" in pycparser).
type Program struct {
	Decls []Node
}

func (p *Program) Kind() string     { return "FileAST" }
func (p *Program) Children() []Node { return p.Decls }
func (p *Program) Clone() Node {
	c := &Program{Decls: make([]Node, len(p.Decls))}
	for i, d := range p.Decls {
		c.Decls[i] = cloneOrNil(d)
	}
	return c
}

func (p *Program) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
		Ext      []Node `json:"ext"`
	}{"FileAST", p.Decls})
}

func (p *Program) UnmarshalJSON(data []byte) error {
	var raw struct {
		Ext []json.RawMessage `json:"ext"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decls, err := decodeList(raw.Ext)
	if err != nil {
		return err
	}
	p.Decls = decls
	return nil
}

func cloneOrNil(n Node) Node {
	if n == nil {
		return nil
	}
	return n.Clone()
}

func cloneList(ns []Node) []Node {
	if ns == nil {
		return nil
	}
	out := make([]Node, len(ns))
	for i, n := range ns {
		out[i] = cloneOrNil(n)
	}
	return out
}

// decoderFor is populated by init() in each node-family file via register.
var decoderFor = map[string]func(data []byte) (Node, error){}

func register(nodetype string, newFn func() Node, decode func(data []byte, n Node) error) {
	decoderFor[nodetype] = func(data []byte) (Node, error) {
		n := newFn()
		if err := decode(data, n); err != nil {
			return nil, err
		}
		return n, nil
	}
}

// Decode parses a single pycparser-shaped node dict (or JSON null) into a Node.
func Decode(data []byte) (Node, error) {
	return decodeRaw(data)
}

func decodeRaw(data json.RawMessage) (Node, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var head struct {
		NodeType string `json:"_nodetype"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("cast: decoding node head: %w", err)
	}
	if head.NodeType == "" {
		return nil, fmt.Errorf("cast: node missing _nodetype: %s", string(data))
	}
	dec, ok := decoderFor[head.NodeType]
	if !ok {
		return nil, fmt.Errorf("cast: unknown _nodetype %q", head.NodeType)
	}
	return dec(data)
}

func decodeList(items []json.RawMessage) ([]Node, error) {
	if items == nil {
		return nil, nil
	}
	out := make([]Node, 0, len(items))
	for _, item := range items {
		n, err := decodeRaw(item)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// DecodeProgram parses a full translation unit.
func DecodeProgram(data []byte) (*Program, error) {
	p := &Program{}
	if err := p.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return p, nil
}
