package cast

import "encoding/json"

func init() {
	register("Decl", func() Node { return &Decl{} }, func(d []byte, n Node) error { return n.(*Decl).unmarshal(d) })
	register("Typename", func() Node { return &Typename{} }, func(d []byte, n Node) error { return n.(*Typename).unmarshal(d) })
	register("TypeDecl", func() Node { return &TypeDecl{} }, func(d []byte, n Node) error { return n.(*TypeDecl).unmarshal(d) })
	register("IdentifierType", func() Node { return &IdentifierType{} }, func(d []byte, n Node) error { return n.(*IdentifierType).unmarshal(d) })
	register("PtrDecl", func() Node { return &PtrDecl{} }, func(d []byte, n Node) error { return n.(*PtrDecl).unmarshal(d) })
	register("ArrayDecl", func() Node { return &ArrayDecl{} }, func(d []byte, n Node) error { return n.(*ArrayDecl).unmarshal(d) })
	register("ParamList", func() Node { return &ParamList{} }, func(d []byte, n Node) error { return n.(*ParamList).unmarshal(d) })
	register("EllipsisParam", func() Node { return &EllipsisParam{} }, func(d []byte, n Node) error { return nil })
	register("FuncDecl", func() Node { return &FuncDecl{} }, func(d []byte, n Node) error { return n.(*FuncDecl).unmarshal(d) })
	register("FuncDef", func() Node { return &FuncDef{} }, func(d []byte, n Node) error { return n.(*FuncDef).unmarshal(d) })
	register("Struct", func() Node { return &Struct{} }, func(d []byte, n Node) error { return n.(*Struct).unmarshal(d) })
}

// Decl declares a name with a type and (optionally) an initializer.
// Quals is the top-level qualifier list; the qualifier mutator mirrors
// any change here into the nested TypeDecl's own Quals slot so the
// unparser sees a consistent tree (spec.md §4.3).
type Decl struct {
	Name  string
	Quals []string
	Type  Node
	Init  Node
}

func (d *Decl) Kind() string { return "Decl" }
func (d *Decl) Children() []Node {
	var out []Node
	if d.Type != nil {
		out = append(out, d.Type)
	}
	if d.Init != nil {
		out = append(out, d.Init)
	}
	return out
}
func (d *Decl) Clone() Node {
	return &Decl{Name: d.Name, Quals: cloneStrings(d.Quals), Type: cloneOrNil(d.Type), Init: cloneOrNil(d.Init)}
}
func (d *Decl) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string   `json:"_nodetype"`
		Name     string   `json:"name"`
		Quals    []string `json:"quals"`
		Type     Node     `json:"type"`
		Init     Node     `json:"init"`
	}{"Decl", d.Name, d.Quals, d.Type, d.Init})
}
func (d *Decl) unmarshal(data []byte) error {
	var raw struct {
		Name  string          `json:"name"`
		Quals []string        `json:"quals"`
		Type  json.RawMessage `json:"type"`
		Init  json.RawMessage `json:"init"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.Name, d.Quals = raw.Name, raw.Quals
	var err error
	if d.Type, err = decodeRaw(raw.Type); err != nil {
		return err
	}
	d.Init, err = decodeRaw(raw.Init)
	return err
}

// Typename is an abstract type reference, e.g. the operand of a Cast or
// sizeof. Name is usually empty (abstract declarators have no name).
type Typename struct {
	Name  string
	Quals []string
	Type  Node
}

func (t *Typename) Kind() string { return "Typename" }
func (t *Typename) Children() []Node {
	if t.Type == nil {
		return nil
	}
	return []Node{t.Type}
}
func (t *Typename) Clone() Node {
	return &Typename{Name: t.Name, Quals: cloneStrings(t.Quals), Type: cloneOrNil(t.Type)}
}
func (t *Typename) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string   `json:"_nodetype"`
		Name     string   `json:"name"`
		Quals    []string `json:"quals"`
		Type     Node     `json:"type"`
	}{"Typename", t.Name, t.Quals, t.Type})
}
func (t *Typename) unmarshal(data []byte) error {
	var raw struct {
		Name  string          `json:"name"`
		Quals []string        `json:"quals"`
		Type  json.RawMessage `json:"type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.Name, t.Quals = raw.Name, raw.Quals
	var err error
	t.Type, err = decodeRaw(raw.Type)
	return err
}

// TypeDecl is the innermost declarator layer pycparser wraps around the
// base type (IdentifierType/Struct/Union/Enum). Its own Quals slot is the
// mirror target the qualifier mutator writes through to (spec.md §4.3).
type TypeDecl struct {
	DeclName string
	Quals    []string
	Type     Node
}

func (t *TypeDecl) Kind() string { return "TypeDecl" }
func (t *TypeDecl) Children() []Node {
	if t.Type == nil {
		return nil
	}
	return []Node{t.Type}
}
func (t *TypeDecl) Clone() Node {
	return &TypeDecl{DeclName: t.DeclName, Quals: cloneStrings(t.Quals), Type: cloneOrNil(t.Type)}
}
func (t *TypeDecl) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string   `json:"_nodetype"`
		DeclName string   `json:"declname"`
		Quals    []string `json:"quals"`
		Type     Node     `json:"type"`
	}{"TypeDecl", t.DeclName, t.Quals, t.Type})
}
func (t *TypeDecl) unmarshal(data []byte) error {
	var raw struct {
		DeclName string          `json:"declname"`
		Quals    []string        `json:"quals"`
		Type     json.RawMessage `json:"type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.DeclName, t.Quals = raw.DeclName, raw.Quals
	var err error
	t.Type, err = decodeRaw(raw.Type)
	return err
}

// IdentifierType is a base type name, e.g. ["unsigned", "int"]. A single
// entry (e.g. ["int"]) is not mutable per spec.md §4.2 (names must have
// at least two entries for the identifier-type mutator to have a
// same-size-class alternative).
type IdentifierType struct {
	Names []string
}

func (i *IdentifierType) Kind() string     { return "IdentifierType" }
func (i *IdentifierType) Children() []Node { return nil }
func (i *IdentifierType) Clone() Node {
	return &IdentifierType{Names: cloneStrings(i.Names)}
}
func (i *IdentifierType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string   `json:"_nodetype"`
		Names    []string `json:"names"`
	}{"IdentifierType", i.Names})
}
func (i *IdentifierType) unmarshal(data []byte) error {
	var raw struct {
		Names []string `json:"names"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	i.Names = raw.Names
	return nil
}

// PtrDecl is a pointer declarator layer: `Type *`.
type PtrDecl struct {
	Quals []string
	Type  Node
}

func (p *PtrDecl) Kind() string { return "PtrDecl" }
func (p *PtrDecl) Children() []Node {
	if p.Type == nil {
		return nil
	}
	return []Node{p.Type}
}
func (p *PtrDecl) Clone() Node {
	return &PtrDecl{Quals: cloneStrings(p.Quals), Type: cloneOrNil(p.Type)}
}
func (p *PtrDecl) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string   `json:"_nodetype"`
		Quals    []string `json:"quals"`
		Type     Node     `json:"type"`
	}{"PtrDecl", p.Quals, p.Type})
}
func (p *PtrDecl) unmarshal(data []byte) error {
	var raw struct {
		Quals []string        `json:"quals"`
		Type  json.RawMessage `json:"type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Quals = raw.Quals
	var err error
	p.Type, err = decodeRaw(raw.Type)
	return err
}

// ArrayDecl is an array declarator layer: `Type name[dim]`.
type ArrayDecl struct {
	Type Node
	Dim  Node
}

func (a *ArrayDecl) Kind() string { return "ArrayDecl" }
func (a *ArrayDecl) Children() []Node {
	var out []Node
	if a.Type != nil {
		out = append(out, a.Type)
	}
	if a.Dim != nil {
		out = append(out, a.Dim)
	}
	return out
}
func (a *ArrayDecl) Clone() Node {
	return &ArrayDecl{Type: cloneOrNil(a.Type), Dim: cloneOrNil(a.Dim)}
}
func (a *ArrayDecl) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
		Type     Node   `json:"type"`
		Dim      Node   `json:"dim"`
	}{"ArrayDecl", a.Type, a.Dim})
}
func (a *ArrayDecl) unmarshal(data []byte) error {
	var raw struct {
		Type json.RawMessage `json:"type"`
		Dim  json.RawMessage `json:"dim"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var err error
	if a.Type, err = decodeRaw(raw.Type); err != nil {
		return err
	}
	a.Dim, err = decodeRaw(raw.Dim)
	return err
}

// ParamList is a function parameter list.
type ParamList struct {
	Params []Node
}

func (p *ParamList) Kind() string     { return "ParamList" }
func (p *ParamList) Children() []Node { return p.Params }
func (p *ParamList) Clone() Node      { return &ParamList{Params: cloneList(p.Params)} }
func (p *ParamList) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
		Params   []Node `json:"params"`
	}{"ParamList", p.Params})
}
func (p *ParamList) unmarshal(data []byte) error {
	var raw struct {
		Params []json.RawMessage `json:"params"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	params, err := decodeList(raw.Params)
	if err != nil {
		return err
	}
	p.Params = params
	return nil
}

// EllipsisParam is the trailing `...` of a variadic parameter list.
type EllipsisParam struct{}

func (e *EllipsisParam) Kind() string     { return "EllipsisParam" }
func (e *EllipsisParam) Children() []Node { return nil }
func (e *EllipsisParam) Clone() Node      { return &EllipsisParam{} }
func (e *EllipsisParam) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
	}{"EllipsisParam"})
}

// FuncDecl is a function's declarator: its parameter list and return type.
type FuncDecl struct {
	Args *ParamList
	Type Node
}

func (f *FuncDecl) Kind() string { return "FuncDecl" }
func (f *FuncDecl) Children() []Node {
	var out []Node
	if f.Args != nil {
		out = append(out, f.Args)
	}
	if f.Type != nil {
		out = append(out, f.Type)
	}
	return out
}
func (f *FuncDecl) Clone() Node {
	c := &FuncDecl{Type: cloneOrNil(f.Type)}
	if f.Args != nil {
		c.Args = f.Args.Clone().(*ParamList)
	}
	return c
}
func (f *FuncDecl) MarshalJSON() ([]byte, error) {
	var args Node
	if f.Args != nil {
		args = f.Args
	}
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
		Args     Node   `json:"args"`
		Type     Node   `json:"type"`
	}{"FuncDecl", args, f.Type})
}
func (f *FuncDecl) unmarshal(data []byte) error {
	var raw struct {
		Args json.RawMessage `json:"args"`
		Type json.RawMessage `json:"type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	argsNode, err := decodeRaw(raw.Args)
	if err != nil {
		return err
	}
	if argsNode != nil {
		pl, ok := argsNode.(*ParamList)
		if !ok {
			return jsonErr("cast: FuncDecl.args is not a ParamList")
		}
		f.Args = pl
	}
	f.Type, err = decodeRaw(raw.Type)
	return err
}

// FuncDef is a function definition: declarator, K&R-style param decls
// (empty for modern prototypes), and body.
type FuncDef struct {
	Decl       Node
	ParamDecls []Node
	Body       Node
}

func (f *FuncDef) Kind() string { return "FuncDef" }
func (f *FuncDef) Children() []Node {
	out := []Node{f.Decl}
	out = append(out, f.ParamDecls...)
	if f.Body != nil {
		out = append(out, f.Body)
	}
	return out
}
func (f *FuncDef) Clone() Node {
	return &FuncDef{Decl: cloneOrNil(f.Decl), ParamDecls: cloneList(f.ParamDecls), Body: cloneOrNil(f.Body)}
}
func (f *FuncDef) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType   string `json:"_nodetype"`
		Decl       Node   `json:"decl"`
		ParamDecls []Node `json:"param_decls"`
		Body       Node   `json:"body"`
	}{"FuncDef", f.Decl, f.ParamDecls, f.Body})
}
func (f *FuncDef) unmarshal(data []byte) error {
	var raw struct {
		Decl       json.RawMessage   `json:"decl"`
		ParamDecls []json.RawMessage `json:"param_decls"`
		Body       json.RawMessage   `json:"body"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var err error
	if f.Decl, err = decodeRaw(raw.Decl); err != nil {
		return err
	}
	if f.ParamDecls, err = decodeList(raw.ParamDecls); err != nil {
		return err
	}
	f.Body, err = decodeRaw(raw.Body)
	return err
}

// Struct is a `struct name { decls... }` type (definition or reference;
// Decls is nil for a forward reference / bare `struct name`).
type Struct struct {
	Name  string
	Decls []Node
}

func (s *Struct) Kind() string     { return "Struct" }
func (s *Struct) Children() []Node { return s.Decls }
func (s *Struct) Clone() Node      { return &Struct{Name: s.Name, Decls: cloneList(s.Decls)} }
func (s *Struct) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
		Name     string `json:"name"`
		Decls    []Node `json:"decls"`
	}{"Struct", s.Name, s.Decls})
}
func (s *Struct) unmarshal(data []byte) error {
	var raw struct {
		Name  string            `json:"name"`
		Decls []json.RawMessage `json:"decls"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Name = raw.Name
	decls, err := decodeList(raw.Decls)
	if err != nil {
		return err
	}
	s.Decls = decls
	return nil
}

func cloneStrings(ss []string) []string {
	if ss == nil {
		return nil
	}
	out := make([]string, len(ss))
	copy(out, ss)
	return out
}
