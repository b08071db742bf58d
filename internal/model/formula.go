package model

// Op is an expression node kind.
type Op string

const (
	OpVar Op = "var" // reference to a Variable by name
	OpLit Op = "lit" // literal text such as "100%"
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "×"
	OpDiv Op = "÷"
)

// Expr is a calculation expression tree. Leaves are variables or literals,
// inner nodes apply Op to Args left to right.
type Expr struct {
	Op   Op     `json:"op"`
	Name string `json:"name,omitempty"`
	Text string `json:"text,omitempty"`
	Args []Expr `json:"args,omitempty"`
}

// Var references a calculation variable.
func Var(name string) Expr { return Expr{Op: OpVar, Name: name} }

// Lit is a literal operand.
func Lit(text string) Expr { return Expr{Op: OpLit, Text: text} }

func Add(args ...Expr) Expr { return Expr{Op: OpAdd, Args: args} }
func Sub(args ...Expr) Expr { return Expr{Op: OpSub, Args: args} }
func Mul(args ...Expr) Expr { return Expr{Op: OpMul, Args: args} }
func Div(args ...Expr) Expr { return Expr{Op: OpDiv, Args: args} }

// VarNames returns referenced variable names in order of appearance,
// duplicates included.
func (e Expr) VarNames() []string {
	var names []string
	e.walk(func(n Expr) {
		if n.Op == OpVar {
			names = append(names, n.Name)
		}
	})
	return names
}

func (e Expr) walk(fn func(Expr)) {
	fn(e)
	for _, a := range e.Args {
		a.walk(fn)
	}
}

// Relation links an expression to its result.
type Relation string

const (
	Equals Relation = "="
	Approx Relation = "≈" // result was rounded or capped upstream
)

// Formula is one line of a row's calculation: Label: Expr Relation Results.
// Results are literal, already formatted values; more than one result means
// alternates (draw / sliding attack) shown side by side.
type Formula struct {
	Label    string   `json:"label,omitempty"`
	Expr     Expr     `json:"expr"`
	Relation Relation `json:"relation"`
	Results  []string `json:"results"`
}
