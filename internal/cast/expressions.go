package cast

import "encoding/json"

func init() {
	register("Constant", func() Node { return &Constant{} }, func(d []byte, n Node) error { return n.(*Constant).unmarshal(d) })
	register("ID", func() Node { return &ID{} }, func(d []byte, n Node) error { return n.(*ID).unmarshal(d) })
	register("BinaryOp", func() Node { return &BinaryOp{} }, func(d []byte, n Node) error { return n.(*BinaryOp).unmarshal(d) })
	register("UnaryOp", func() Node { return &UnaryOp{} }, func(d []byte, n Node) error { return n.(*UnaryOp).unmarshal(d) })
	register("TernaryOp", func() Node { return &TernaryOp{} }, func(d []byte, n Node) error { return n.(*TernaryOp).unmarshal(d) })
	register("Assignment", func() Node { return &Assignment{} }, func(d []byte, n Node) error { return n.(*Assignment).unmarshal(d) })
	register("Cast", func() Node { return &Cast{} }, func(d []byte, n Node) error { return n.(*Cast).unmarshal(d) })
	register("ArrayRef", func() Node { return &ArrayRef{} }, func(d []byte, n Node) error { return n.(*ArrayRef).unmarshal(d) })
	register("StructRef", func() Node { return &StructRef{} }, func(d []byte, n Node) error { return n.(*StructRef).unmarshal(d) })
	register("FuncCall", func() Node { return &FuncCall{} }, func(d []byte, n Node) error { return n.(*FuncCall).unmarshal(d) })
	register("ExprList", func() Node { return &ExprList{} }, func(d []byte, n Node) error { return n.(*ExprList).unmarshal(d) })
	register("InitList", func() Node { return &InitList{} }, func(d []byte, n Node) error { return n.(*InitList).unmarshal(d) })
}

// Constant is a literal: Value holds its textual form (e.g. "2", "3.5f"),
// Type its pycparser type category (e.g. "int", "float", "char").
type Constant struct {
	Value string
	Type  string
}

func (c *Constant) Kind() string     { return "Constant" }
func (c *Constant) Children() []Node { return nil }
func (c *Constant) Clone() Node      { cp := *c; return &cp }
func (c *Constant) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
		Value    string `json:"value"`
		Type     string `json:"type"`
	}{"Constant", c.Value, c.Type})
}
func (c *Constant) unmarshal(data []byte) error {
	var raw struct {
		Value string `json:"value"`
		Type  string `json:"type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.Value, c.Type = raw.Value, raw.Type
	return nil
}

// ID is an identifier reference (variable or function name use).
type ID struct {
	Name string
}

func (i *ID) Kind() string     { return "ID" }
func (i *ID) Children() []Node { return nil }
func (i *ID) Clone() Node      { cp := *i; return &cp }
func (i *ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
		Name     string `json:"name"`
	}{"ID", i.Name})
}
func (i *ID) unmarshal(data []byte) error {
	var raw struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	i.Name = raw.Name
	return nil
}

// BinaryOp is a two-operand operator expression (e.g. `a < b`).
type BinaryOp struct {
	Op    string
	Left  Node
	Right Node
}

func (b *BinaryOp) Kind() string     { return "BinaryOp" }
func (b *BinaryOp) Children() []Node { return []Node{b.Left, b.Right} }
func (b *BinaryOp) Clone() Node {
	return &BinaryOp{Op: b.Op, Left: cloneOrNil(b.Left), Right: cloneOrNil(b.Right)}
}
func (b *BinaryOp) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
		Op       string `json:"op"`
		Left     Node   `json:"left"`
		Right    Node   `json:"right"`
	}{"BinaryOp", b.Op, b.Left, b.Right})
}
func (b *BinaryOp) unmarshal(data []byte) error {
	var raw struct {
		Op    string          `json:"op"`
		Left  json.RawMessage `json:"left"`
		Right json.RawMessage `json:"right"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var err error
	b.Op = raw.Op
	if b.Left, err = decodeRaw(raw.Left); err != nil {
		return err
	}
	if b.Right, err = decodeRaw(raw.Right); err != nil {
		return err
	}
	return nil
}

// UnaryOp is a one-operand operator expression (e.g. `!x`, `-x`, `*p`).
type UnaryOp struct {
	Op   string
	Expr Node
}

func (u *UnaryOp) Kind() string     { return "UnaryOp" }
func (u *UnaryOp) Children() []Node { return []Node{u.Expr} }
func (u *UnaryOp) Clone() Node      { return &UnaryOp{Op: u.Op, Expr: cloneOrNil(u.Expr)} }
func (u *UnaryOp) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
		Op       string `json:"op"`
		Expr     Node   `json:"expr"`
	}{"UnaryOp", u.Op, u.Expr})
}
func (u *UnaryOp) unmarshal(data []byte) error {
	var raw struct {
		Op   string          `json:"op"`
		Expr json.RawMessage `json:"expr"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	u.Op = raw.Op
	var err error
	u.Expr, err = decodeRaw(raw.Expr)
	return err
}

// TernaryOp is `cond ? iftrue : iffalse`.
type TernaryOp struct {
	Cond    Node
	IfTrue  Node
	IfFalse Node
}

func (t *TernaryOp) Kind() string     { return "TernaryOp" }
func (t *TernaryOp) Children() []Node { return []Node{t.Cond, t.IfTrue, t.IfFalse} }
func (t *TernaryOp) Clone() Node {
	return &TernaryOp{Cond: cloneOrNil(t.Cond), IfTrue: cloneOrNil(t.IfTrue), IfFalse: cloneOrNil(t.IfFalse)}
}
func (t *TernaryOp) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
		Cond     Node   `json:"cond"`
		IfTrue   Node   `json:"iftrue"`
		IfFalse  Node   `json:"iffalse"`
	}{"TernaryOp", t.Cond, t.IfTrue, t.IfFalse})
}
func (t *TernaryOp) unmarshal(data []byte) error {
	var raw struct {
		Cond    json.RawMessage `json:"cond"`
		IfTrue  json.RawMessage `json:"iftrue"`
		IfFalse json.RawMessage `json:"iffalse"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var err error
	if t.Cond, err = decodeRaw(raw.Cond); err != nil {
		return err
	}
	if t.IfTrue, err = decodeRaw(raw.IfTrue); err != nil {
		return err
	}
	t.IfFalse, err = decodeRaw(raw.IfFalse)
	return err
}

// Assignment is `lvalue op= rvalue` (op is "=" for plain assignment, or a
// compound-assignment operator such as "+=").
type Assignment struct {
	Op    string
	LValue Node
	RValue Node
}

func (a *Assignment) Kind() string     { return "Assignment" }
func (a *Assignment) Children() []Node { return []Node{a.LValue, a.RValue} }
func (a *Assignment) Clone() Node {
	return &Assignment{Op: a.Op, LValue: cloneOrNil(a.LValue), RValue: cloneOrNil(a.RValue)}
}
func (a *Assignment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
		Op       string `json:"op"`
		LValue   Node   `json:"lvalue"`
		RValue   Node   `json:"rvalue"`
	}{"Assignment", a.Op, a.LValue, a.RValue})
}
func (a *Assignment) unmarshal(data []byte) error {
	var raw struct {
		Op     string          `json:"op"`
		LValue json.RawMessage `json:"lvalue"`
		RValue json.RawMessage `json:"rvalue"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.Op = raw.Op
	var err error
	if a.LValue, err = decodeRaw(raw.LValue); err != nil {
		return err
	}
	a.RValue, err = decodeRaw(raw.RValue)
	return err
}

// Cast is an explicit C-style cast: `(Typename)expr`.
type Cast struct {
	ToType Node
	Expr   Node
}

func (c *Cast) Kind() string     { return "Cast" }
func (c *Cast) Children() []Node { return []Node{c.ToType, c.Expr} }
func (c *Cast) Clone() Node {
	return &Cast{ToType: cloneOrNil(c.ToType), Expr: cloneOrNil(c.Expr)}
}
func (c *Cast) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
		ToType   Node   `json:"to_type"`
		Expr     Node   `json:"expr"`
	}{"Cast", c.ToType, c.Expr})
}
func (c *Cast) unmarshal(data []byte) error {
	var raw struct {
		ToType json.RawMessage `json:"to_type"`
		Expr   json.RawMessage `json:"expr"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var err error
	if c.ToType, err = decodeRaw(raw.ToType); err != nil {
		return err
	}
	c.Expr, err = decodeRaw(raw.Expr)
	return err
}

// ArrayRef is `array[subscript]`.
type ArrayRef struct {
	Name      Node
	Subscript Node
}

func (a *ArrayRef) Kind() string     { return "ArrayRef" }
func (a *ArrayRef) Children() []Node { return []Node{a.Name, a.Subscript} }
func (a *ArrayRef) Clone() Node {
	return &ArrayRef{Name: cloneOrNil(a.Name), Subscript: cloneOrNil(a.Subscript)}
}
func (a *ArrayRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType  string `json:"_nodetype"`
		Name      Node   `json:"name"`
		Subscript Node   `json:"subscript"`
	}{"ArrayRef", a.Name, a.Subscript})
}
func (a *ArrayRef) unmarshal(data []byte) error {
	var raw struct {
		Name      json.RawMessage `json:"name"`
		Subscript json.RawMessage `json:"subscript"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var err error
	if a.Name, err = decodeRaw(raw.Name); err != nil {
		return err
	}
	a.Subscript, err = decodeRaw(raw.Subscript)
	return err
}

// StructRef is `expr.field` or `expr->field` (Type distinguishes them).
type StructRef struct {
	Name  Node
	Type  string
	Field Node
}

func (s *StructRef) Kind() string     { return "StructRef" }
func (s *StructRef) Children() []Node { return []Node{s.Name, s.Field} }
func (s *StructRef) Clone() Node {
	return &StructRef{Name: cloneOrNil(s.Name), Type: s.Type, Field: cloneOrNil(s.Field)}
}
func (s *StructRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
		Name     Node   `json:"name"`
		Type     string `json:"type"`
		Field    Node   `json:"field"`
	}{"StructRef", s.Name, s.Type, s.Field})
}
func (s *StructRef) unmarshal(data []byte) error {
	var raw struct {
		Name  json.RawMessage `json:"name"`
		Type  string          `json:"type"`
		Field json.RawMessage `json:"field"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Type = raw.Type
	var err error
	if s.Name, err = decodeRaw(raw.Name); err != nil {
		return err
	}
	s.Field, err = decodeRaw(raw.Field)
	return err
}

// FuncCall is `name(args...)`. Args is nil for a zero-argument call.
type FuncCall struct {
	Name Node
	Args *ExprList
}

func (f *FuncCall) Kind() string { return "FuncCall" }
func (f *FuncCall) Children() []Node {
	if f.Args == nil {
		return []Node{f.Name}
	}
	return []Node{f.Name, f.Args}
}
func (f *FuncCall) Clone() Node {
	c := &FuncCall{Name: cloneOrNil(f.Name)}
	if f.Args != nil {
		c.Args = f.Args.Clone().(*ExprList)
	}
	return c
}
func (f *FuncCall) MarshalJSON() ([]byte, error) {
	var args Node
	if f.Args != nil {
		args = f.Args
	}
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
		Name     Node   `json:"name"`
		Args     Node   `json:"args"`
	}{"FuncCall", f.Name, args})
}
func (f *FuncCall) unmarshal(data []byte) error {
	var raw struct {
		Name json.RawMessage `json:"name"`
		Args json.RawMessage `json:"args"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var err error
	if f.Name, err = decodeRaw(raw.Name); err != nil {
		return err
	}
	argsNode, err := decodeRaw(raw.Args)
	if err != nil {
		return err
	}
	if argsNode != nil {
		el, ok := argsNode.(*ExprList)
		if !ok {
			return errNotExprList
		}
		f.Args = el
	}
	return nil
}

var errNotExprList = jsonErr("cast: FuncCall.args is not an ExprList")

type jsonErr string

func (e jsonErr) Error() string { return string(e) }

// ExprList is an ordered list of expressions (call arguments, comma operator).
type ExprList struct {
	Exprs []Node
}

func (e *ExprList) Kind() string     { return "ExprList" }
func (e *ExprList) Children() []Node { return e.Exprs }
func (e *ExprList) Clone() Node      { return &ExprList{Exprs: cloneList(e.Exprs)} }
func (e *ExprList) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
		Exprs    []Node `json:"exprs"`
	}{"ExprList", e.Exprs})
}
func (e *ExprList) unmarshal(data []byte) error {
	var raw struct {
		Exprs []json.RawMessage `json:"exprs"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	exprs, err := decodeList(raw.Exprs)
	if err != nil {
		return err
	}
	e.Exprs = exprs
	return nil
}

// InitList is a brace initializer list: `{1, 2, 3}`.
type InitList struct {
	Exprs []Node
}

func (l *InitList) Kind() string     { return "InitList" }
func (l *InitList) Children() []Node { return l.Exprs }
func (l *InitList) Clone() Node      { return &InitList{Exprs: cloneList(l.Exprs)} }
func (l *InitList) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NodeType string `json:"_nodetype"`
		Exprs    []Node `json:"exprs"`
	}{"InitList", l.Exprs})
}
func (l *InitList) unmarshal(data []byte) error {
	var raw struct {
		Exprs []json.RawMessage `json:"exprs"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	exprs, err := decodeList(raw.Exprs)
	if err != nil {
		return err
	}
	l.Exprs = exprs
	return nil
}
