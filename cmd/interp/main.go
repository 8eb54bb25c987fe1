package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/crivera32/interpreter/internal"
	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
)

// pcTracer prints one PC-style line per evaluation step.
type pcTracer struct{}

func (pcTracer) Step(index int, description string, value internal.Value) {
	fmt.Printf("PC=%d -> %s => %s\n", index, description, value)
}

type demo struct {
	name    string
	program internal.Expr
}

func num(value int64) internal.Expr {
	return &internal.IntExpr{Value: value}
}

func bin(op internal.Operator, left, right internal.Expr) internal.Expr {
	return &internal.BinaryExpr{Op: op, Left: left, Right: right}
}

func read(name string) internal.Expr {
	return &internal.VariableExpr{Name: name}
}

// fourSeventyFourOver builds (400 + 74) / bot, the running example of
// the demo programs.
func fourSeventyFourOver(bot internal.Expr) internal.Expr {
	return bin(internal.OpDiv, bin(internal.OpAdd, num(400), num(74)), bot)
}

func demoPrograms() []demo {
	// if (((400 + 74) / 3) == 158) then 474 else 474/0
	guarded := &internal.IfExpr{
		Condition: bin(internal.OpEqual, fourSeventyFourOver(num(3)), num(158)),
		Then:      num(474),
		Else:      bin(internal.OpDiv, num(474), num(0)),
	}

	// let bot = 3 in
	//   (let bot = 2 in bot)
	//   +
	//   (if (bot == 0) then 474/0 else (400+74)/bot)
	shadowed := &internal.LetExpr{
		Name:  "bot",
		Value: num(3),
		Body: bin(
			internal.OpAdd,
			&internal.LetExpr{Name: "bot", Value: num(2), Body: read("bot")},
			&internal.IfExpr{
				Condition: bin(internal.OpEqual, read("bot"), num(0)),
				Then:      bin(internal.OpDiv, num(474), num(0)),
				Else:      fourSeventyFourOver(read("bot")),
			},
		),
	}

	// fn f(top, bot) = if (bot == 0) then 0 else top/bot
	// in let bot = 3 in
	//   (let bot = 2 in bot) + (f(400+74, bot) + f(470+4, 0))
	safeDivide := &internal.FnExpr{
		Name:   "f",
		Params: []string{"top", "bot"},
		Body: &internal.IfExpr{
			Condition: bin(internal.OpEqual, read("bot"), num(0)),
			Then:      num(0),
			Else:      bin(internal.OpDiv, read("top"), read("bot")),
		},
		Rest: &internal.LetExpr{
			Name:  "bot",
			Value: num(3),
			Body: bin(
				internal.OpAdd,
				&internal.LetExpr{Name: "bot", Value: num(2), Body: read("bot")},
				bin(
					internal.OpAdd,
					&internal.CallExpr{Name: "f", Arguments: []internal.Expr{
						bin(internal.OpAdd, num(400), num(74)),
						read("bot"),
					}},
					&internal.CallExpr{Name: "f", Arguments: []internal.Expr{
						bin(internal.OpAdd, num(470), num(4)),
						num(0),
					}},
				),
			),
		},
	}

	return []demo{
		{"p1: integer constant", num(474)},
		{"p2: (400 + 74) / 3", fourSeventyFourOver(num(3))},
		{"p3: ((400 + 74) / 3) == 158", bin(internal.OpEqual, fourSeventyFourOver(num(3)), num(158))},
		{"p4: guarded division", guarded},
		{"p5: shadowed let", shadowed},
		{"p6: function f(top, bot)", safeDivide},
		{"p7: unbound variable", read("z")},
	}
}

func main() {
	trace := flag.Bool("trace", false, "print one line per evaluation step")
	verbose := flag.Bool("verbose", false, "log evaluation steps through logrus")
	flag.Parse()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.ErrorLevel)
	}

	var tracer internal.Tracer
	if *trace {
		tracer = pcTracer{}
	} else if *verbose {
		tracer = internal.NewLogTracer(logger)
	}

	for _, d := range demoPrograms() {
		fmt.Println(color.Bold(color.Green("== " + d.name)))
		fmt.Println(internal.TreeString(d.program))

		value, err := internal.RunProgramWithLogger(d.program, tracer, logger)
		if err != nil {
			fmt.Println(color.Red(">>> " + err.Error()))
			continue
		}
		fmt.Printf(">>> Result: %s\n", value)
	}
}
