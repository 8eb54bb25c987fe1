package internal

import "testing"

func TestTreeString(t *testing.T) {
	cases := []struct {
		program Expr
		want    string
	}{
		{intc(474), "474"},
		{boolc(true), "true"},
		{bin(OpDiv, bin(OpAdd, intc(400), intc(74)), intc(3)), "(div (add 400 74) 3)"},
		{iff(boolc(false), intc(1), intc(2)), "(if false 1 2)"},
		{let("x", intc(1), set("x", intc(5))), "(let x 1 (set x 5))"},
		{
			fn("f", []string{"top", "bot"},
				bin(OpDiv, read("top"), read("bot")),
				call("f", intc(474), intc(3))),
			"(fn f (top, bot) (div top bot) (call f 474 3))",
		},
	}
	for _, c := range cases {
		if got := TreeString(c.program); got != c.want {
			t.Errorf("TreeString should give %q, got %q", c.want, got)
		}
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		expr Expr
		want string
	}{
		{intc(474), "474"},
		{boolc(false), "false"},
		{bin(OpEqual, intc(1), intc(2)), "(eq)"},
		{iff(boolc(true), intc(1), intc(2)), "(if)"},
		{read("bot"), "bot"},
		{set("bot", intc(2)), "(set bot)"},
		{let("bot", intc(3), read("bot")), "(let bot)"},
		{fn("f", nil, intc(0), intc(0)), "(fn f)"},
		{call("f", intc(0)), "(call f)"},
	}
	for _, c := range cases {
		if got := describe(c.expr); got != c.want {
			t.Errorf("describe should give %q, got %q", c.want, got)
		}
	}
}
