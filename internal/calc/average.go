package calc

import (
	"math"
	"strings"

	"github.com/udisondev/huntercalc/internal/model"
)

const (
	// MaxAffinity caps affinity for expected damage; more never helps.
	MaxAffinity = 100

	// negativeCritMultiplier is used when affinity is zero or negative:
	// a negative crit deals 75%, folded into (1.25 × aff + (1 − aff)).
	negativeCritMultiplier = 1.25

	ailmentDivisor = 30
	elementDivisor = 10
)

// expectedDamage returns attack weighted by crit chance.
// Formula: a × aff × crit + a × (1 − aff), aff = min(affinity, 100) / 100,
// crit = (passiveCritBoost + 125) / 100 for positive affinity, 1.25 otherwise.
func expectedDamage(attack, affinity, passiveCritBoost float64) float64 {
	aff := math.Min(affinity, MaxAffinity)
	crit := negativeCritMultiplier
	if aff > 0 {
		crit = (passiveCritBoost + model.BaseCriticalBoostPercent) / 100
	}
	return attack*(aff/100)*crit + attack*(1-aff/100)
}

// roundHalfUp rounds like the UI does (x.5 goes up, also for negatives).
// NaN and infinities, e.g. from a zero modifier, become 0.
func roundHalfUp(v float64) int {
	r := math.Floor(v + 0.5)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return int(r)
}

// RawAverage returns the expected raw damage per hit.
// Formula: round(expected / weaponAttackModifier)
func RawAverage(attack, affinity, passiveCritBoost, weaponAttackModifier float64) int {
	return roundHalfUp(expectedDamage(attack, affinity, passiveCritBoost) / weaponAttackModifier)
}

// AilmentAverage returns the expected ailment buildup per hit.
// Formula: round(expected × modifier / 30)
func AilmentAverage(ailmentAttack, affinity, passiveCritBoost, modifier float64) int {
	return roundHalfUp(expectedDamage(ailmentAttack, affinity, passiveCritBoost) * modifier / ailmentDivisor)
}

// ElementAverage returns the expected element damage per hit.
// Formula: round(expected × modifier / 10)
func ElementAverage(elementAttack, affinity, passiveCritBoost, modifier float64) int {
	return roundHalfUp(expectedDamage(elementAttack, affinity, passiveCritBoost) * modifier / elementDivisor)
}

// RawAttackAverage is the non-buffed average row. Ailment and element side
// figures ignore affinity here.
func RawAttackAverage(stats *model.Stats) model.StatDetail {
	affinity := math.Min(stats.TotalAffinity(), MaxAffinity)
	row := averageRow(stats, averageInput{
		name:          "Raw Attack Average",
		attackVar:     "totalAttack",
		attackLabel:   "Total Attack",
		affinityVar:   "totalAffinity",
		affinityLabel: "Total Affinity",
		attack:        stats.TotalAttack,
		affinity:      affinity,
	})

	if stats.TotalAilmentAttack != 0 {
		row.Extra1 = intPtr(AilmentAverage(stats.TotalAilmentAttack, 0, 0, 1))
		row.Class1 = stats.Ailment
	}
	if stats.TotalElementAttack != 0 {
		row.Extra2 = intPtr(ElementAverage(stats.TotalElementAttack, 0, 0, 1))
		row.Class2 = stats.Element
	}
	return row
}

// RawAttackAveragePotential is the buffed average row. Ailment and element
// side figures use the elemental sharpness modifier and only count affinity
// when critical status / critical element is active.
func RawAttackAveragePotential(stats *model.Stats) model.StatDetail {
	affinity := math.Min(stats.TotalAffinityPotential(), MaxAffinity)
	row := averageRow(stats, averageInput{
		name:          "Raw Attack Average Potential",
		attackVar:     "totalAttackPotential",
		attackLabel:   "Total Attack Potential",
		affinityVar:   "totalAffinityPotential",
		affinityLabel: "Total Affinity Potential",
		attack:        stats.TotalAttackPotential,
		affinity:      affinity,
	})

	if stats.TotalAilmentAttack != 0 {
		row.Extra1 = intPtr(AilmentAverage(stats.TotalAilmentAttack, sideAffinity(stats.CriticalStatus, affinity),
			stats.PassiveCriticalBoostPercent, stats.EffectiveElementalSharpnessModifier))
		row.Class1 = stats.Ailment
	}
	if stats.TotalElementAttack != 0 {
		row.Extra2 = intPtr(ElementAverage(stats.TotalElementAttack, sideAffinity(stats.CriticalElement, affinity),
			stats.PassiveCriticalBoostPercent, stats.EffectiveElementalSharpnessModifier))
		row.Class2 = stats.Element
	}
	return row
}

func sideAffinity(canCrit bool, affinity float64) float64 {
	if !canCrit {
		return 0
	}
	return math.Max(affinity, 0)
}

type averageInput struct {
	name          string
	attackVar     string
	attackLabel   string
	affinityVar   string
	affinityLabel string
	attack        float64
	affinity      float64
}

// averageRow builds the shared shape of both average rows. Draw and sliding
// bonuses append alternate averages after the primary one.
func averageRow(stats *model.Stats, in averageInput) model.StatDetail {
	critBoost := stats.PassiveCriticalBoostPercent
	modifier := stats.WeaponAttackModifier

	values := []string{num(float64(RawAverage(in.attack, in.affinity, critBoost, modifier)))}
	affinities := []string{num(in.affinity)}
	for _, alt := range situationalAffinities(stats) {
		values = append(values, num(float64(RawAverage(in.attack, in.affinity+alt.bonus, critBoost, modifier))))
		affinities = append(affinities, num(in.affinity+alt.bonus))
	}

	affinityValue := affinities[0] + "%"
	if len(affinities) > 1 {
		affinityValue = "[" + strings.Join(affinities, "|") + "]%"
	}

	attack := model.Var(in.attackVar)
	affinity := model.Var(in.affinityVar)

	return model.StatDetail{
		Name:  in.name,
		Value: alternates(values),
		Formulas: []model.Formula{{
			Expr: model.Div(
				model.Add(
					model.Mul(attack, affinity, model.Var("criticalBoost")),
					model.Mul(attack, model.Sub(model.Lit("100%"), affinity)),
				),
				model.Var("weaponModifier"),
			),
			Relation: model.Equals,
			Results:  values,
		}},
		Variables: []model.Variable{
			{Name: in.attackVar, DisplayName: in.attackLabel, Value: num(in.attack), ColorClass: model.ColorGreen},
			{Name: in.affinityVar, DisplayName: in.affinityLabel, Value: affinityValue, ColorClass: model.ColorBlue},
			{Name: "criticalBoost", DisplayName: "Total Critical Boost", Value: percent(stats.CriticalBoostPercent()), ColorClass: model.ColorKakhi},
			{Name: "weaponModifier", DisplayName: "Weapon Modifier", Value: num(modifier), ColorClass: model.ColorPurple},
		},
	}
}

func intPtr(v int) *int {
	return &v
}
