package cast

import "encoding/json"

func init() {
	register("Compound", func() Node { return &Compound{} }, func(d []byte, n Node) error { return n.(*Compound).unmarshal(d) })
	register("If", func() Node { return &If{} }, func(d []byte, n Node) error { return n.(*If).unmarshal(d) })
	register("For", func() Node { return &For{} }, func(d []byte, n Node) error { return n.(*For).unmarshal(d) })
	register("While", func() Node { return &While{} }, func(d []byte, n Node) error { return n.(*While).unmarshal(d) })
	register("DoWhile", func() Node { return &DoWhile{} }, func(d []byte, n Node) error { return n.(*DoWhile).unmarshal(d) })
	register("Return", func() Node { return &Return{} }, func(d []byte, n Node) error { return n.(*Return).unmarshal(d) })
	register("Break", func() Node { return &Break{} }, func(d []byte, n Node) error { return nil })
	register("Continue", func() Node { return &Continue{} }, func(d []byte, n Node) error { return nil })
	register("Goto", func() Node { return &Goto{} }, func(d []byte, n Node) error { return n.(*Goto).unmarshal(d) })
	register("Label", func() Node { return &Label{} }, func(d []byte, n Node) error { return n.(*Label).unmarshal(d) })
	register("EmptyStatement", func() Node { return &EmptyStatement{} }, func(d []byte, n Node) error { return nil })
	register("DeclList", func() Node { return &DeclList{} }, func(d []byte, n Node) error { return n.(*DeclList).unmarshal(d) })
}

// Compound is a `{ ... }` block; Items holds declarations and statements
// in textual order (pycparser's `block_items`).
type Compound struct {
	Items []Node
}

func (c *Compound) Kind() string     { return "Compound" }
func (c *Compound) Children() []Node { return c.Items }
func (c *Compound) Clone() Node      { return &Compound{Items: cloneList(c.Items)} }
func (c *Compound) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType   string `json:"_nodetype"`
		BlockItems []Node `json:"block_items"`
	}{"Compound", c.Items})
}
func (c *Compound) unmarshal(data []byte) error {
	var raw struct {
		BlockItems []json.RawMessage `json:"block_items"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	items, err := decodeList(raw.BlockItems)
	if err != nil {
		return err
	}
	c.Items = items
	return nil
}

// If is `if (cond) then else iffalse` (IfFalse nil when there is no else).
type If struct {
	Cond    Node
	Then    Node
	IfFalse Node
}

func (i *If) Kind() string { return "If" }
func (i *If) Children() []Node {
	if i.IfFalse == nil {
		return []Node{i.Cond, i.Then}
	}
	return []Node{i.Cond, i.Then, i.IfFalse}
}
func (i *If) Clone() Node {
	return &If{Cond: cloneOrNil(i.Cond), Then: cloneOrNil(i.Then), IfFalse: cloneOrNil(i.IfFalse)}
}
func (i *If) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
		Cond     Node   `json:"cond"`
		IfTrue   Node   `json:"iftrue"`
		IfFalse  Node   `json:"iffalse"`
	}{"If", i.Cond, i.Then, i.IfFalse})
}
func (i *If) unmarshal(data []byte) error {
	var raw struct {
		Cond    json.RawMessage `json:"cond"`
		IfTrue  json.RawMessage `json:"iftrue"`
		IfFalse json.RawMessage `json:"iffalse"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var err error
	if i.Cond, err = decodeRaw(raw.Cond); err != nil {
		return err
	}
	if i.Then, err = decodeRaw(raw.IfTrue); err != nil {
		return err
	}
	i.IfFalse, err = decodeRaw(raw.IfFalse)
	return err
}

// For is a C `for (init; cond; next) stmt` loop. The Next slot is excluded
// from mutability by the classifier's contextual guard (spec.md §4.2).
type For struct {
	Init Node
	Cond Node
	Next Node
	Stmt Node
}

func (f *For) Kind() string { return "For" }
func (f *For) Children() []Node {
	var out []Node
	for _, n := range []Node{f.Init, f.Cond, f.Next, f.Stmt} {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}
func (f *For) Clone() Node {
	return &For{Init: cloneOrNil(f.Init), Cond: cloneOrNil(f.Cond), Next: cloneOrNil(f.Next), Stmt: cloneOrNil(f.Stmt)}
}
func (f *For) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
		Init     Node   `json:"init"`
		Cond     Node   `json:"cond"`
		Next     Node   `json:"next"`
		Stmt     Node   `json:"stmt"`
	}{"For", f.Init, f.Cond, f.Next, f.Stmt})
}
func (f *For) unmarshal(data []byte) error {
	var raw struct {
		Init json.RawMessage `json:"init"`
		Cond json.RawMessage `json:"cond"`
		Next json.RawMessage `json:"next"`
		Stmt json.RawMessage `json:"stmt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var err error
	if f.Init, err = decodeRaw(raw.Init); err != nil {
		return err
	}
	if f.Cond, err = decodeRaw(raw.Cond); err != nil {
		return err
	}
	if f.Next, err = decodeRaw(raw.Next); err != nil {
		return err
	}
	f.Stmt, err = decodeRaw(raw.Stmt)
	return err
}

// While is `while (cond) stmt`.
type While struct {
	Cond Node
	Stmt Node
}

func (w *While) Kind() string     { return "While" }
func (w *While) Children() []Node { return []Node{w.Cond, w.Stmt} }
func (w *While) Clone() Node      { return &While{Cond: cloneOrNil(w.Cond), Stmt: cloneOrNil(w.Stmt)} }
func (w *While) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
		Cond     Node   `json:"cond"`
		Stmt     Node   `json:"stmt"`
	}{"While", w.Cond, w.Stmt})
}
func (w *While) unmarshal(data []byte) error {
	var raw struct {
		Cond json.RawMessage `json:"cond"`
		Stmt json.RawMessage `json:"stmt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var err error
	if w.Cond, err = decodeRaw(raw.Cond); err != nil {
		return err
	}
	w.Stmt, err = decodeRaw(raw.Stmt)
	return err
}

// DoWhile is `do stmt while (cond);`.
type DoWhile struct {
	Cond Node
	Stmt Node
}

func (w *DoWhile) Kind() string     { return "DoWhile" }
func (w *DoWhile) Children() []Node { return []Node{w.Stmt, w.Cond} }
func (w *DoWhile) Clone() Node      { return &DoWhile{Cond: cloneOrNil(w.Cond), Stmt: cloneOrNil(w.Stmt)} }
func (w *DoWhile) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
		Cond     Node   `json:"cond"`
		Stmt     Node   `json:"stmt"`
	}{"DoWhile", w.Cond, w.Stmt})
}
func (w *DoWhile) unmarshal(data []byte) error {
	var raw struct {
		Cond json.RawMessage `json:"cond"`
		Stmt json.RawMessage `json:"stmt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var err error
	if w.Cond, err = decodeRaw(raw.Cond); err != nil {
		return err
	}
	w.Stmt, err = decodeRaw(raw.Stmt)
	return err
}

// Return is `return expr;` (Expr nil for a bare `return;`).
type Return struct {
	Expr Node
}

func (r *Return) Kind() string { return "Return" }
func (r *Return) Children() []Node {
	if r.Expr == nil {
		return nil
	}
	return []Node{r.Expr}
}
func (r *Return) Clone() Node { return &Return{Expr: cloneOrNil(r.Expr)} }
func (r *Return) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
		Expr     Node   `json:"expr"`
	}{"Return", r.Expr})
}
func (r *Return) unmarshal(data []byte) error {
	var raw struct {
		Expr json.RawMessage `json:"expr"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var err error
	r.Expr, err = decodeRaw(raw.Expr)
	return err
}

// Break is `break;`.
type Break struct{}

func (b *Break) Kind() string     { return "Break" }
func (b *Break) Children() []Node { return nil }
func (b *Break) Clone() Node      { return &Break{} }
func (b *Break) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
	}{"Break"})
}

// Continue is `continue;`.
type Continue struct{}

func (c *Continue) Kind() string     { return "Continue" }
func (c *Continue) Children() []Node { return nil }
func (c *Continue) Clone() Node      { return &Continue{} }
func (c *Continue) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
	}{"Continue"})
}

// Goto is `goto label;`. After mutation Name must always name an existing
// Label in the same translation unit (spec.md §3 invariants).
type Goto struct {
	Name string
}

func (g *Goto) Kind() string     { return "Goto" }
func (g *Goto) Children() []Node { return nil }
func (g *Goto) Clone() Node      { cp := *g; return &cp }
func (g *Goto) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
		Name     string `json:"name"`
	}{"Goto", g.Name})
}
func (g *Goto) unmarshal(data []byte) error {
	var raw struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	g.Name = raw.Name
	return nil
}

// Label is `name: stmt`.
type Label struct {
	Name string
	Stmt Node
}

func (l *Label) Kind() string     { return "Label" }
func (l *Label) Children() []Node { return []Node{l.Stmt} }
func (l *Label) Clone() Node      { return &Label{Name: l.Name, Stmt: cloneOrNil(l.Stmt)} }
func (l *Label) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
		Name     string `json:"name"`
		Stmt     Node   `json:"stmt"`
	}{"Label", l.Name, l.Stmt})
}
func (l *Label) unmarshal(data []byte) error {
	var raw struct {
		Name string          `json:"name"`
		Stmt json.RawMessage `json:"stmt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	l.Name = raw.Name
	var err error
	l.Stmt, err = decodeRaw(raw.Stmt)
	return err
}

// EmptyStatement is a bare `;`.
type EmptyStatement struct{}

func (e *EmptyStatement) Kind() string     { return "EmptyStatement" }
func (e *EmptyStatement) Children() []Node { return nil }
func (e *EmptyStatement) Clone() Node      { return &EmptyStatement{} }
func (e *EmptyStatement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
	}{"EmptyStatement"})
}

// DeclList is a comma-separated run of declarations sharing one statement
// slot (e.g. the init clause of a `for (int i = 0, j = 0; ...)`).
type DeclList struct {
	Decls []Node
}

func (d *DeclList) Kind() string     { return "DeclList" }
func (d *DeclList) Children() []Node { return d.Decls }
func (d *DeclList) Clone() Node      { return &DeclList{Decls: cloneList(d.Decls)} }
func (d *DeclList) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
		Decls    []Node `json:"decls"`
	}{"DeclList", d.Decls})
}
func (d *DeclList) unmarshal(data []byte) error {
	var raw struct {
		Decls []json.RawMessage `json:"decls"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decls, err := decodeList(raw.Decls)
	if err != nil {
		return err
	}
	d.Decls = decls
	return nil
}
