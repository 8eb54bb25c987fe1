package internal

import (
	"fmt"
	"strings"
)

// TreeString renders a whole program as an s-expression.
func TreeString(program Expr) string {
	return program.accept(stringVisitor{}).(string)
}

type stringVisitor struct{}

func (v stringVisitor) visitIntExpr(expr *IntExpr) R {
	return fmt.Sprintf("%d", expr.Value)
}

func (v stringVisitor) visitBoolExpr(expr *BoolExpr) R {
	return fmt.Sprintf("%t", expr.Value)
}

func (v stringVisitor) visitBinaryExpr(expr *BinaryExpr) R {
	return fmt.Sprintf("(%s %v %v)", expr.Op, expr.Left.accept(v), expr.Right.accept(v))
}

func (v stringVisitor) visitIfExpr(expr *IfExpr) R {
	return fmt.Sprintf(
		"(if %v %v %v)",
		expr.Condition.accept(v),
		expr.Then.accept(v),
		expr.Else.accept(v),
	)
}

func (v stringVisitor) visitVariableExpr(expr *VariableExpr) R {
	return expr.Name
}

func (v stringVisitor) visitAssignExpr(expr *AssignExpr) R {
	return fmt.Sprintf("(set %s %v)", expr.Name, expr.Value.accept(v))
}

func (v stringVisitor) visitLetExpr(expr *LetExpr) R {
	return fmt.Sprintf("(let %s %v %v)", expr.Name, expr.Value.accept(v), expr.Body.accept(v))
}

func (v stringVisitor) visitFnExpr(expr *FnExpr) R {
	return fmt.Sprintf(
		"(fn %s (%s) %v %v)",
		expr.Name,
		strings.Join(expr.Params, ", "),
		expr.Body.accept(v),
		expr.Rest.accept(v),
	)
}

func (v stringVisitor) visitCallExpr(expr *CallExpr) R {
	out := "(call " + expr.Name
	for _, arg := range expr.Arguments {
		out += fmt.Sprintf(" %v", arg.accept(v))
	}
	return out + ")"
}

// describe gives the one-node description used in trace events and
// error details. Unlike TreeString it does not recurse.
func describe(expr Expr) string {
	switch ex := expr.(type) {
	case *IntExpr:
		return fmt.Sprintf("%d", ex.Value)
	case *BoolExpr:
		return fmt.Sprintf("%t", ex.Value)
	case *BinaryExpr:
		return "(" + ex.Op.String() + ")"
	case *IfExpr:
		return "(if)"
	case *VariableExpr:
		return ex.Name
	case *AssignExpr:
		return "(set " + ex.Name + ")"
	case *LetExpr:
		return "(let " + ex.Name + ")"
	case *FnExpr:
		return "(fn " + ex.Name + ")"
	case *CallExpr:
		return "(call " + ex.Name + ")"
	}
	return ""
}
