package internal

// R generic type
type R interface{}

// Operator is the operation applied by a BinaryExpr.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpEqual
)

func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpEqual:
		return "eq"
	}
	return "unknown"
}

// Expr is a node of a program tree. The variant set is closed:
// exprVisitor enumerates every variant, so adding one is a compile
// error in every visitor. Trees are never mutated after construction;
// all runtime state lives in environments.
type Expr interface {
	accept(exprVisitor) R
}

type exprVisitor interface {
	visitIntExpr(expr *IntExpr) R
	visitBoolExpr(expr *BoolExpr) R
	visitBinaryExpr(expr *BinaryExpr) R
	visitIfExpr(expr *IfExpr) R
	visitVariableExpr(expr *VariableExpr) R
	visitAssignExpr(expr *AssignExpr) R
	visitLetExpr(expr *LetExpr) R
	visitFnExpr(expr *FnExpr) R
	visitCallExpr(expr *CallExpr) R
}

// IntExpr is an integer literal.
type IntExpr struct {
	Value int64
}

func (s *IntExpr) accept(visitor exprVisitor) R {
	return visitor.visitIntExpr(s)
}

// BoolExpr is a boolean literal.
type BoolExpr struct {
	Value bool
}

func (s *BoolExpr) accept(visitor exprVisitor) R {
	return visitor.visitBoolExpr(s)
}

// BinaryExpr applies Op to both operands, left first. Both sides are
// always evaluated, no short-circuiting.
type BinaryExpr struct {
	Op    Operator
	Left  Expr
	Right Expr
}

func (s *BinaryExpr) accept(visitor exprVisitor) R {
	return visitor.visitBinaryExpr(s)
}

// IfExpr evaluates exactly one of Then/Else depending on Condition.
type IfExpr struct {
	Condition Expr
	Then      Expr
	Else      Expr
}

func (s *IfExpr) accept(visitor exprVisitor) R {
	return visitor.visitIfExpr(s)
}

// VariableExpr reads a variable.
type VariableExpr struct {
	Name string
}

func (s *VariableExpr) accept(visitor exprVisitor) R {
	return visitor.visitVariableExpr(s)
}

// AssignExpr writes an already-bound variable and yields the written
// value.
type AssignExpr struct {
	Name  string
	Value Expr
}

func (s *AssignExpr) accept(visitor exprVisitor) R {
	return visitor.visitAssignExpr(s)
}

// LetExpr binds Name to Value for the extent of Body.
type LetExpr struct {
	Name  string
	Value Expr
	Body  Expr
}

func (s *LetExpr) accept(visitor exprVisitor) R {
	return visitor.visitLetExpr(s)
}

// FnExpr declares a function visible in Rest and, for recursion,
// inside its own Body.
type FnExpr struct {
	Name   string
	Params []string
	Body   Expr
	Rest   Expr
}

func (s *FnExpr) accept(visitor exprVisitor) R {
	return visitor.visitFnExpr(s)
}

// CallExpr invokes a declared function by name.
type CallExpr struct {
	Name      string
	Arguments []Expr
}

func (s *CallExpr) accept(visitor exprVisitor) R {
	return visitor.visitCallExpr(s)
}
