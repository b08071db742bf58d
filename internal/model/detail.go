package model

// Display colors used by stat rows and calculation variables.
const (
	ColorGreen  = "green"
	ColorOrange = "orange"
	ColorPurple = "purple"
	ColorBlue   = "blue"
	ColorRed    = "red"
	ColorYellow = "yellow"
	ColorKakhi  = "kakhi"
	ColorWhite  = "white"
)

// StatDetail is one display row of a breakdown panel.
type StatDetail struct {
	Name      string     `json:"name"`
	Value     string     `json:"value"`
	Formulas  []Formula  `json:"formulas,omitempty"`
	Variables []Variable `json:"calculationVariables,omitempty"`
	Info      []string   `json:"info,omitempty"`
	Color     string     `json:"color,omitempty"`

	// Side figures shown next to the value (ailment / element averages).
	Extra1 *int   `json:"extra1,omitempty"`
	Extra2 *int   `json:"extra2,omitempty"`
	Class1 string `json:"class1,omitempty"`
	Class2 string `json:"class2,omitempty"`
}

// Variable is a named, labeled operand referenced by a formula.
type Variable struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Value       string `json:"value"`
	ColorClass  string `json:"colorClass"`
}

// Variable returns the variable with the given name.
func (d *StatDetail) Variable(name string) (Variable, bool) {
	for _, v := range d.Variables {
		if v.Name == name {
			return v, true
		}
	}
	return Variable{}, false
}

// MissingVariables returns names referenced by the row's formulas that are
// not declared in Variables, in first-reference order.
func (d *StatDetail) MissingVariables() []string {
	var missing []string
	seen := make(map[string]bool)
	for _, f := range d.Formulas {
		for _, name := range f.Expr.VarNames() {
			if seen[name] {
				continue
			}
			seen[name] = true
			if _, ok := d.Variable(name); !ok {
				missing = append(missing, name)
			}
		}
	}
	return missing
}
