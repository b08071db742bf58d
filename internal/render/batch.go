package render

import (
	"github.com/udisondev/huntercalc/internal/engine"
	"github.com/udisondev/huntercalc/internal/model"
)

// Row is a StatDetail in wire form, formulas flattened into a template.
type Row struct {
	Name                 string           `json:"name"`
	Value                string           `json:"value"`
	CalculationTemplate  string           `json:"calculationTemplate,omitempty"`
	CalculationVariables []model.Variable `json:"calculationVariables,omitempty"`
	Info                 []string         `json:"info,omitempty"`
	Color                string           `json:"color,omitempty"`
	Extra1               *int             `json:"extra1,omitempty"`
	Extra2               *int             `json:"extra2,omitempty"`
	Class1               string           `json:"class1,omitempty"`
	Class2               string           `json:"class2,omitempty"`
}

// Batch is one published pass as sent to the UI. Each section replaces the
// previous one wholesale.
type Batch struct {
	Pass        string                `json:"pass"`
	Fingerprint string                `json:"fingerprint,omitempty"`
	Attack      []Row                 `json:"attackCalcs"`
	Defense     []Row                 `json:"defenseCalcs"`
	Ammo        *model.AmmoCapacities `json:"ammoCapacities,omitempty"`
	Sharpness   *model.SharpnessBar   `json:"sharpnessBar,omitempty"`
	Extra       model.ExtraData       `json:"extraData,omitempty"`
}

// NewBatch converts an engine result to its wire form.
func NewBatch(res engine.Result) Batch {
	return Batch{
		Pass:        res.Pass.String(),
		Fingerprint: res.Fingerprint,
		Attack:      rows(res.Attack),
		Defense:     rows(res.Defense),
		Ammo:        res.Ammo,
		Sharpness:   res.Sharpness,
		Extra:       res.Extra,
	}
}

func rows(details []model.StatDetail) []Row {
	out := make([]Row, 0, len(details))
	for _, d := range details {
		out = append(out, Row{
			Name:                 d.Name,
			Value:                d.Value,
			CalculationTemplate:  Template(d),
			CalculationVariables: d.Variables,
			Info:                 d.Info,
			Color:                d.Color,
			Extra1:               d.Extra1,
			Extra2:               d.Extra2,
			Class1:               d.Class1,
			Class2:               d.Class2,
		})
	}
	return out
}
