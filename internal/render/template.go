// Package render turns calculation results into the forms consumers read:
// `{name}` templates for the UI, a JSON batch for the wire and plain text
// for the terminal.
package render

import (
	"strings"

	"github.com/udisondev/huntercalc/internal/model"
)

// Template renders a row's formulas as one template string, one line per
// formula. Variables appear as {name} tokens; results are literal.
//
//	Base: {base} + {passive} + {weakPoint} + {active} = 50%
//	Draw: {base} + {passive} + {weakPoint} + {active} + {draw} = 80%
func Template(d model.StatDetail) string {
	lines := make([]string, 0, len(d.Formulas))
	for _, f := range d.Formulas {
		lines = append(lines, FormulaTemplate(f))
	}
	return strings.Join(lines, "\n")
}

// FormulaTemplate renders a single formula line.
func FormulaTemplate(f model.Formula) string {
	var b strings.Builder
	if f.Label != "" {
		b.WriteString(f.Label)
		b.WriteString(": ")
	}
	writeExpr(&b, f.Expr)
	b.WriteByte(' ')
	b.WriteString(string(f.Relation))
	b.WriteByte(' ')
	switch len(f.Results) {
	case 0:
	case 1:
		b.WriteString(f.Results[0])
	default:
		b.WriteString("[" + strings.Join(f.Results, " | ") + "]")
	}
	return b.String()
}

// Expr renders an expression alone.
func Expr(e model.Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

func precedence(op model.Op) int {
	switch op {
	case model.OpAdd, model.OpSub:
		return 1
	case model.OpMul, model.OpDiv:
		return 2
	}
	return 3
}

func writeExpr(b *strings.Builder, e model.Expr) {
	switch e.Op {
	case model.OpVar:
		b.WriteString("{" + e.Name + "}")
		return
	case model.OpLit:
		b.WriteString(e.Text)
		return
	}

	p := precedence(e.Op)
	for i, arg := range e.Args {
		if i > 0 {
			b.WriteString(" " + string(e.Op) + " ")
		}
		ap := precedence(arg.Op)
		// right operands of - and ÷ group even at equal precedence
		paren := ap < p || (i > 0 && ap == p && (e.Op == model.OpSub || e.Op == model.OpDiv))
		if paren {
			b.WriteByte('(')
		}
		writeExpr(b, arg)
		if paren {
			b.WriteByte(')')
		}
	}
}

// Resolve substitutes {name} tokens with the matching variable values.
// Unknown tokens are left as they are.
func Resolve(template string, vars []model.Variable) string {
	if len(vars) == 0 {
		return template
	}
	pairs := make([]string, 0, len(vars)*2)
	for _, v := range vars {
		pairs = append(pairs, "{"+v.Name+"}", v.Value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
