package calc

import (
	"slices"

	"github.com/udisondev/huntercalc/internal/model"
)

// AttackDetails builds the attack panel rows in display order:
// Attack, Attack Potential, Affinity, Affinity Potential, Critical Boost,
// Ailment, Ailment Attack, Element, Element Attack, Elderseal, Heal on Hit,
// Raw Attack Average, Raw Attack Average Potential.
// Conditional rows are omitted when the snapshot gives them nothing to show.
func AttackDetails(stats *model.Stats) []model.StatDetail {
	rows := make([]model.StatDetail, 0, 13)

	rows = append(rows, Attack(stats))
	if stats.ActiveAttack != 0 || stats.EffectivePhysicalSharpnessModifier != 0 {
		rows = append(rows, AttackPotential(stats))
	}

	rows = append(rows, Affinity(stats))
	if stats.ActiveAffinity != 0 || stats.WeakPointAffinity != 0 || stats.DrawAffinity != 0 || stats.SlidingAffinity != 0 {
		rows = append(rows, AffinityPotential(stats))
	}

	rows = append(rows, CriticalBoost(stats))

	if stats.Ailment != "" {
		ailment := Ailment(stats)
		rows = append(rows, ailment, AilmentAttack(stats, ailment))
	}

	if stats.Element != "" {
		element := Element(stats)
		rows = append(rows, element, ElementAttack(stats, element))
	}

	if stats.Elderseal != "" {
		rows = append(rows, model.StatDetail{Name: "Elderseal", Value: stats.Elderseal})
	}

	if stats.HealOnHitPercent != 0 {
		rows = append(rows, model.StatDetail{Name: "Heal on Hit", Value: num(stats.HealOnHitPercent)})
	}

	rows = append(rows, RawAttackAverage(stats), RawAttackAveragePotential(stats))
	return rows
}

// Attack shows total attack.
// Formula: attack + passiveAttack × weaponModifier
// Elementless: attack × (1 + boost/100) + passiveAttack × weaponModifier
func Attack(stats *model.Stats) model.StatDetail {
	row := model.StatDetail{
		Name:  "Attack",
		Value: num(stats.TotalAttack),
		Variables: []model.Variable{
			{Name: "attack", DisplayName: "Base Weapon Attack", Value: num(stats.Attack), ColorClass: model.ColorGreen},
			{Name: "passiveAttack", DisplayName: "Passive Attack", Value: num(stats.PassiveAttack), ColorClass: model.ColorOrange},
			{Name: "weaponModifier", DisplayName: "Weapon Modifier", Value: num(stats.WeaponAttackModifier), ColorClass: model.ColorPurple},
		},
	}

	base := model.Var("attack")
	if stats.Elementless {
		row.Variables = append(row.Variables, elementlessVariable(stats))
		base = model.Mul(base, model.Var("elementlessBoostPercent"))
	}

	row.Formulas = []model.Formula{{
		Expr:     model.Add(base, model.Mul(model.Var("passiveAttack"), model.Var("weaponModifier"))),
		Relation: model.Approx,
		Results:  []string{num(stats.TotalAttack)},
	}}
	return row
}

// AttackPotential shows attack with active buffs and sharpness applied.
// Formula: attack × sharpness + (passiveAttack + activeAttack) × weaponModifier
//
// The elementless multiplier joins the base term only when the weapon deals
// no element and no ailment damage at all.
func AttackPotential(stats *model.Stats) model.StatDetail {
	row := model.StatDetail{
		Name:  "Attack Potential",
		Value: num(stats.TotalAttackPotential),
		Variables: []model.Variable{
			{Name: "attack", DisplayName: "Base Weapon Attack", Value: num(stats.Attack), ColorClass: model.ColorGreen},
			{Name: "sharpnessModifier", DisplayName: "Physical Sharpness Modifier", Value: num(stats.EffectivePhysicalSharpnessModifier), ColorClass: model.ColorBlue},
			{Name: "passiveAttack", DisplayName: "Passive Attack", Value: num(stats.PassiveAttack), ColorClass: model.ColorOrange},
			{Name: "activeAttack", DisplayName: "Active Attack", Value: num(stats.ActiveAttack), ColorClass: model.ColorRed},
			{Name: "weaponModifier", DisplayName: "Weapon Modifier", Value: num(stats.WeaponAttackModifier), ColorClass: model.ColorPurple},
		},
	}

	base := model.Mul(model.Var("attack"), model.Var("sharpnessModifier"))
	if elementlessApplies(stats) {
		base = model.Mul(model.Var("attack"), model.Var("elementlessBoostPercent"), model.Var("sharpnessModifier"))
		row.Variables = append(row.Variables, elementlessVariable(stats))
	}

	row.Formulas = []model.Formula{{
		Expr: model.Add(
			base,
			model.Mul(model.Add(model.Var("passiveAttack"), model.Var("activeAttack")), model.Var("weaponModifier")),
		),
		Relation: model.Approx,
		Results:  []string{num(stats.TotalAttackPotential)},
	}}
	return row
}

func elementlessApplies(stats *model.Stats) bool {
	return stats.ElementlessBoostPercent > 0 && stats.TotalAilmentAttack == 0 && stats.TotalElementAttack == 0
}

func elementlessVariable(stats *model.Stats) model.Variable {
	return model.Variable{
		Name:        "elementlessBoostPercent",
		DisplayName: "Elementless Boost Modifier",
		Value:       num(1 + stats.ElementlessBoostPercent/100),
		ColorClass:  model.ColorKakhi,
	}
}

// Affinity shows weapon plus passive affinity.
func Affinity(stats *model.Stats) model.StatDetail {
	value := percent(stats.TotalAffinity())
	return model.StatDetail{
		Name:  "Affinity",
		Value: value,
		Formulas: []model.Formula{{
			Expr:     model.Add(model.Var("affinity"), model.Var("passiveAffinity")),
			Relation: model.Equals,
			Results:  []string{value},
		}},
		Variables: []model.Variable{
			{Name: "affinity", DisplayName: "Weapon Base Affinity", Value: num(stats.Affinity), ColorClass: model.ColorGreen},
			{Name: "passiveAffinity", DisplayName: "Passive Affinity", Value: num(stats.PassiveAffinity), ColorClass: model.ColorBlue},
		},
	}
}

// AffinityPotential shows affinity with weak point and active bonuses.
// Draw and sliding attack affinity are situational, so they are appended as
// alternate totals next to the base one instead of replacing it.
func AffinityPotential(stats *model.Stats) model.StatDetail {
	total := stats.TotalAffinityPotential()
	terms := []model.Expr{model.Var("base"), model.Var("passive"), model.Var("weakPoint"), model.Var("active")}
	values := []string{percent(total)}

	row := model.StatDetail{
		Name: "Affinity Potential",
		Formulas: []model.Formula{{
			Label:    "Base",
			Expr:     model.Add(terms...),
			Relation: model.Equals,
			Results:  []string{percent(total)},
		}},
		Variables: []model.Variable{
			{Name: "base", DisplayName: "Weapon Base Affinity", Value: num(stats.Affinity), ColorClass: model.ColorGreen},
			{Name: "passive", DisplayName: "Passive Affinity", Value: num(stats.PassiveAffinity), ColorClass: model.ColorYellow},
			{Name: "weakPoint", DisplayName: "Weak Point Affinity", Value: num(stats.WeakPointAffinity), ColorClass: model.ColorBlue},
			{Name: "active", DisplayName: "Active Affinity", Value: num(stats.ActiveAffinity), ColorClass: model.ColorOrange},
		},
	}

	for _, alt := range situationalAffinities(stats) {
		alternate := percent(total + alt.bonus)
		values = append(values, alternate)
		row.Variables = append(row.Variables, model.Variable{
			Name:        alt.name,
			DisplayName: alt.displayName,
			Value:       num(alt.bonus),
			ColorClass:  model.ColorKakhi,
		})
		row.Formulas = append(row.Formulas, model.Formula{
			Label:    alt.label,
			Expr:     model.Add(append(terms[:len(terms):len(terms)], model.Var(alt.name))...),
			Relation: model.Equals,
			Results:  []string{alternate},
		})
	}

	row.Value = alternates(values)
	return row
}

type situationalAffinity struct {
	name        string
	label       string
	displayName string
	bonus       float64
}

// situationalAffinities returns the positive draw / sliding bonuses, draw first.
func situationalAffinities(stats *model.Stats) []situationalAffinity {
	var out []situationalAffinity
	if stats.DrawAffinity > 0 {
		out = append(out, situationalAffinity{name: "draw", label: "Draw", displayName: "Draw Attack Affinity", bonus: stats.DrawAffinity})
	}
	if stats.SlidingAffinity > 0 {
		out = append(out, situationalAffinity{name: "sliding", label: "Slide", displayName: "Sliding Attack Affinity", bonus: stats.SlidingAffinity})
	}
	return out
}

// CriticalBoost shows the critical hit multiplier.
// Formula: 125 + passiveCriticalBoostPercent
func CriticalBoost(stats *model.Stats) model.StatDetail {
	value := percent(stats.CriticalBoostPercent())
	return model.StatDetail{
		Name:  "Critical Boost",
		Value: value,
		Formulas: []model.Formula{{
			Expr:     model.Add(model.Var("base"), model.Var("passive")),
			Relation: model.Equals,
			Results:  []string{value},
		}},
		Variables: []model.Variable{
			{Name: "base", DisplayName: "Base Critical Boost", Value: num(model.BaseCriticalBoostPercent), ColorClass: model.ColorGreen},
			{Name: "passive", DisplayName: "Passive Critical Boost", Value: num(stats.PassiveCriticalBoostPercent), ColorClass: model.ColorBlue},
		},
	}
}

// Ailment is the informational ailment row.
func Ailment(stats *model.Stats) model.StatDetail {
	return statusRow("Ailment", stats.Ailment, "Ailment attack is capped.", stats.AilmentCapped,
		"Effectiveness reduced due to hidden ailment.", stats.AilmentHidden, stats.ElementAttackMultiplier)
}

// Element is the informational element row.
func Element(stats *model.Stats) model.StatDetail {
	return statusRow("Element", stats.Element, "Element attack is capped.", stats.ElementCapped,
		"Effectiveness reduced due to hidden element.", stats.ElementHidden, stats.ElementAttackMultiplier)
}

// statusRow flags capped values in yellow; a hidden value whose multiplier
// is below 1 is yellow too, red when the multiplier suppresses it entirely.
func statusRow(name, value, cappedNote string, capped bool, hiddenNote string, hidden bool, multiplier float64) model.StatDetail {
	row := model.StatDetail{Name: name, Value: value, Info: []string{}}

	if capped {
		row.Info = append(row.Info, cappedNote)
		row.Color = model.ColorYellow
	}

	if hidden && multiplier < 1 {
		row.Info = append(row.Info, hiddenNote)
		if multiplier == 0 {
			row.Color = model.ColorRed
		} else {
			row.Color = model.ColorYellow
		}
	}

	return row
}

// AilmentAttack shows the ailment attack sum, inheriting notes and color
// from the ailment row.
func AilmentAttack(stats *model.Stats, ailment model.StatDetail) model.StatDetail {
	return statusAttackRow(statusAttack{
		name:         "Ailment Attack",
		kind:         "Ailment",
		total:        stats.TotalAilmentAttack,
		base:         stats.BaseAilmentAttack,
		passive:      stats.EffectivePassiveAilmentAttack,
		cap:          stats.AilmentCap,
		hidden:       stats.AilmentHidden,
		multiplier:   stats.ElementAttackMultiplier,
		inheritedRow: ailment,
	})
}

// ElementAttack shows the element attack sum, inheriting notes and color
// from the element row.
func ElementAttack(stats *model.Stats, element model.StatDetail) model.StatDetail {
	return statusAttackRow(statusAttack{
		name:         "Element Attack",
		kind:         "Element",
		total:        stats.TotalElementAttack,
		base:         stats.BaseElementAttack,
		passive:      stats.EffectivePassiveElementAttack,
		cap:          stats.ElementCap,
		hidden:       stats.ElementHidden,
		multiplier:   stats.ElementAttackMultiplier,
		inheritedRow: element,
	})
}

type statusAttack struct {
	name         string
	kind         string
	total        float64
	base         float64
	passive      float64
	cap          float64
	hidden       bool
	multiplier   float64
	inheritedRow model.StatDetail
}

// statusAttackRow picks the formula shape:
//
//	visible:                 base + passive
//	hidden, multiplier != 0: base × multiplier + passive
//	hidden, multiplier == 0: (base + passive) × multiplier
//
// Once the base is fully suppressed the passive bonus is suppressed with it.
func statusAttackRow(a statusAttack) model.StatDetail {
	row := model.StatDetail{
		Name:  a.name,
		Value: num(a.total),
		Color: a.inheritedRow.Color,
		Info:  slices.Clone(a.inheritedRow.Info),
		Variables: []model.Variable{
			{Name: "base", DisplayName: "Weapon Base " + a.kind + " Attack", Value: num(a.base), ColorClass: model.ColorGreen},
			{Name: "passive", DisplayName: "Passive " + a.kind + " Attack", Value: num(a.passive), ColorClass: model.ColorYellow},
			{Name: "cap", DisplayName: a.kind + " Attack Cap", Value: num(a.cap), ColorClass: model.ColorOrange},
		},
	}

	formula := model.Formula{Results: []string{num(a.total)}}
	switch {
	case !a.hidden:
		formula.Expr = model.Add(model.Var("base"), model.Var("passive"))
		formula.Relation = model.Equals
	case a.multiplier != 0:
		formula.Expr = model.Add(model.Mul(model.Var("base"), model.Var("multiplier")), model.Var("passive"))
		formula.Relation = model.Approx
	default:
		formula.Expr = model.Mul(model.Add(model.Var("base"), model.Var("passive")), model.Var("multiplier"))
		formula.Relation = model.Approx
	}

	if a.hidden {
		row.Variables = append(row.Variables, model.Variable{
			Name:        "multiplier",
			DisplayName: "Hidden " + a.kind + " Multiplier",
			Value:       num(a.multiplier),
			ColorClass:  model.ColorBlue,
		})
	}

	row.Formulas = []model.Formula{formula}
	return row
}
