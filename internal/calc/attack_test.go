package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/huntercalc/internal/model"
)

// greatSwordStats is a melee snapshot with element, ailment and every
// situational bonus set.
func greatSwordStats() *model.Stats {
	return &model.Stats{
		Attack:                              1056,
		PassiveAttack:                       21,
		ActiveAttack:                        15,
		WeaponAttackModifier:                4.8,
		EffectivePhysicalSharpnessModifier:  1.2,
		EffectiveElementalSharpnessModifier: 1.0625,
		TotalAttack:                         1157,
		TotalAttackPotential:                1539,

		Affinity:                    10,
		PassiveAffinity:             20,
		ActiveAffinity:              5,
		WeakPointAffinity:           15,
		DrawAffinity:                30,
		SlidingAffinity:             10,
		PassiveCriticalBoostPercent: 15,

		Ailment:                       "poison",
		BaseAilmentAttack:             240,
		EffectivePassiveAilmentAttack: 60,
		AilmentCap:                    360,
		TotalAilmentAttack:            300,

		Element:                       "fire",
		BaseElementAttack:             270,
		EffectivePassiveElementAttack: 30,
		ElementCap:                    405,
		TotalElementAttack:            300,
		ElementAttackMultiplier:       1,

		Elderseal:        "average",
		HealOnHitPercent: 5,
	}
}

func rowNames(rows []model.StatDetail) []string {
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
	}
	return names
}

func TestAttackDetails_AllRows(t *testing.T) {
	rows := AttackDetails(greatSwordStats())

	assert.Equal(t, []string{
		"Attack",
		"Attack Potential",
		"Affinity",
		"Affinity Potential",
		"Critical Boost",
		"Ailment",
		"Ailment Attack",
		"Element",
		"Element Attack",
		"Elderseal",
		"Heal on Hit",
		"Raw Attack Average",
		"Raw Attack Average Potential",
	}, rowNames(rows))

	for _, row := range rows {
		assert.Empty(t, row.MissingVariables(), "row %q references undeclared variables", row.Name)
	}
}

func TestAttackDetails_MinimalRows(t *testing.T) {
	stats := &model.Stats{Attack: 100, TotalAttack: 100, WeaponAttackModifier: 1}

	rows := AttackDetails(stats)

	assert.Equal(t, []string{
		"Attack",
		"Affinity",
		"Critical Boost",
		"Raw Attack Average",
		"Raw Attack Average Potential",
	}, rowNames(rows))
}

func TestAttackDetails_PotentialRowTriggers(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *model.Stats)
		want   string
	}{
		{"active attack", func(s *model.Stats) { s.ActiveAttack = 5 }, "Attack Potential"},
		{"sharpness modifier", func(s *model.Stats) { s.EffectivePhysicalSharpnessModifier = 1.05 }, "Attack Potential"},
		{"active affinity", func(s *model.Stats) { s.ActiveAffinity = 10 }, "Affinity Potential"},
		{"weak point", func(s *model.Stats) { s.WeakPointAffinity = 15 }, "Affinity Potential"},
		{"draw", func(s *model.Stats) { s.DrawAffinity = 30 }, "Affinity Potential"},
		{"sliding", func(s *model.Stats) { s.SlidingAffinity = 10 }, "Affinity Potential"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := &model.Stats{WeaponAttackModifier: 1}
			tt.mutate(stats)
			assert.Contains(t, rowNames(AttackDetails(stats)), tt.want)
		})
	}
}

func TestAttack(t *testing.T) {
	stats := &model.Stats{Attack: 200, PassiveAttack: 10, WeaponAttackModifier: 1.2, TotalAttack: 212}

	row := Attack(stats)

	assert.Equal(t, "212", row.Value)
	require.Len(t, row.Formulas, 1)
	assert.Equal(t, []string{"attack", "passiveAttack", "weaponModifier"}, row.Formulas[0].Expr.VarNames())
	assert.Equal(t, model.Approx, row.Formulas[0].Relation)
	assert.Equal(t, []string{"212"}, row.Formulas[0].Results)
	_, ok := row.Variable("elementlessBoostPercent")
	assert.False(t, ok)
}

func TestAttack_Elementless(t *testing.T) {
	stats := &model.Stats{Attack: 200, Elementless: true, ElementlessBoostPercent: 10, WeaponAttackModifier: 1, TotalAttack: 220}

	row := Attack(stats)

	assert.Equal(t, []string{"attack", "elementlessBoostPercent", "passiveAttack", "weaponModifier"}, row.Formulas[0].Expr.VarNames())
	v, ok := row.Variable("elementlessBoostPercent")
	require.True(t, ok)
	assert.Equal(t, "1.1", v.Value)
	assert.Empty(t, row.MissingVariables())
}

func TestAttackPotential_ElementlessExclusivity(t *testing.T) {
	tests := []struct {
		name        string
		boost       float64
		ailment     float64
		element     float64
		wantBoosted bool
	}{
		{"no element no ailment", 10, 0, 0, true},
		{"element present", 10, 0, 300, false},
		{"ailment present", 10, 300, 0, false},
		{"both present", 10, 300, 300, false},
		{"no boost", 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := &model.Stats{
				Attack:                             200,
				Elementless:                        true,
				ElementlessBoostPercent:            tt.boost,
				TotalAilmentAttack:                 tt.ailment,
				TotalElementAttack:                 tt.element,
				EffectivePhysicalSharpnessModifier: 1.2,
				WeaponAttackModifier:               1,
			}

			row := AttackPotential(stats)

			_, hasVar := row.Variable("elementlessBoostPercent")
			assert.Equal(t, tt.wantBoosted, hasVar)
			assert.Equal(t, tt.wantBoosted, containsName(row.Formulas[0].Expr.VarNames(), "elementlessBoostPercent"))
			assert.Empty(t, row.MissingVariables())
		})
	}
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func TestAffinity(t *testing.T) {
	row := Affinity(&model.Stats{Affinity: -10, PassiveAffinity: 40})

	assert.Equal(t, "30%", row.Value)
	assert.Equal(t, []string{"30%"}, row.Formulas[0].Results)
}

func TestAffinityPotential_Alternates(t *testing.T) {
	stats := greatSwordStats()

	row := AffinityPotential(stats)

	assert.Equal(t, "50% | 80% | 60%", row.Value)
	require.Len(t, row.Formulas, 3)
	assert.Equal(t, "Base", row.Formulas[0].Label)
	assert.Equal(t, "Draw", row.Formulas[1].Label)
	assert.Equal(t, "Slide", row.Formulas[2].Label)
	assert.Equal(t, []string{"base", "passive", "weakPoint", "active"}, row.Formulas[0].Expr.VarNames())
	assert.Equal(t, []string{"base", "passive", "weakPoint", "active", "draw"}, row.Formulas[1].Expr.VarNames())
	assert.Equal(t, []string{"base", "passive", "weakPoint", "active", "sliding"}, row.Formulas[2].Expr.VarNames())
	assert.Empty(t, row.MissingVariables())
}

func TestAffinityPotential_NoSituational(t *testing.T) {
	row := AffinityPotential(&model.Stats{Affinity: 10, WeakPointAffinity: 50})

	assert.Equal(t, "60%", row.Value)
	assert.Len(t, row.Formulas, 1)
	assert.Len(t, row.Variables, 4)
}

func TestCriticalBoost(t *testing.T) {
	row := CriticalBoost(&model.Stats{PassiveCriticalBoostPercent: 15})

	assert.Equal(t, "140%", row.Value)
	v, ok := row.Variable("base")
	require.True(t, ok)
	assert.Equal(t, "125", v.Value)
}

func TestAilment_Advisories(t *testing.T) {
	tests := []struct {
		name       string
		capped     bool
		hidden     bool
		multiplier float64
		wantColor  string
		wantInfo   int
	}{
		{"plain", false, false, 1, "", 0},
		{"capped", true, false, 1, model.ColorYellow, 1},
		{"hidden reduced", false, true, 0.5, model.ColorYellow, 1},
		{"hidden suppressed", false, true, 0, model.ColorRed, 1},
		{"capped and suppressed", true, true, 0, model.ColorRed, 2},
		{"hidden revealed", false, true, 1, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := &model.Stats{
				Ailment:                 "paralysis",
				AilmentCapped:           tt.capped,
				AilmentHidden:           tt.hidden,
				ElementAttackMultiplier: tt.multiplier,
			}

			row := Ailment(stats)

			assert.Equal(t, "paralysis", row.Value)
			assert.Equal(t, tt.wantColor, row.Color)
			assert.Len(t, row.Info, tt.wantInfo)

			attack := AilmentAttack(stats, row)
			assert.Equal(t, row.Color, attack.Color)
			assert.Equal(t, row.Info, attack.Info)
		})
	}
}

func TestElementAttack_FormulaShapes(t *testing.T) {
	t.Run("visible", func(t *testing.T) {
		stats := &model.Stats{Element: "water", BaseElementAttack: 270, EffectivePassiveElementAttack: 30, TotalElementAttack: 300}

		row := ElementAttack(stats, Element(stats))

		f := row.Formulas[0]
		assert.Equal(t, model.OpAdd, f.Expr.Op)
		assert.Equal(t, model.Equals, f.Relation)
		assert.Equal(t, []string{"300"}, f.Results)
		_, ok := row.Variable("multiplier")
		assert.False(t, ok)
	})

	t.Run("hidden partially revealed", func(t *testing.T) {
		stats := &model.Stats{
			Element:                       "water",
			ElementHidden:                 true,
			ElementAttackMultiplier:       0.33,
			BaseElementAttack:             270,
			EffectivePassiveElementAttack: 30,
			TotalElementAttack:            119,
		}

		row := ElementAttack(stats, Element(stats))

		f := row.Formulas[0]
		require.Equal(t, model.OpAdd, f.Expr.Op)
		assert.Equal(t, model.OpMul, f.Expr.Args[0].Op)
		assert.Equal(t, []string{"base", "multiplier", "passive"}, f.Expr.VarNames())
		assert.Equal(t, model.Approx, f.Relation)
		assert.Empty(t, row.MissingVariables())
	})

	t.Run("hidden suppressed", func(t *testing.T) {
		stats := &model.Stats{
			Element:                       "water",
			ElementHidden:                 true,
			ElementAttackMultiplier:       0,
			BaseElementAttack:             270,
			EffectivePassiveElementAttack: 90,
			TotalElementAttack:            0,
		}

		row := ElementAttack(stats, Element(stats))

		f := row.Formulas[0]
		require.Equal(t, model.OpMul, f.Expr.Op)
		assert.Equal(t, model.OpAdd, f.Expr.Args[0].Op)
		assert.Equal(t, []string{"base", "passive", "multiplier"}, f.Expr.VarNames())
		assert.Equal(t, "0", row.Value)
		assert.Equal(t, []string{"0"}, f.Results)
		assert.Equal(t, model.ColorRed, row.Color)
	})
}

func TestAttackDetails_DoesNotMutateInput(t *testing.T) {
	stats := greatSwordStats()
	before := *stats

	_ = AttackDetails(stats)

	assert.Equal(t, before, *stats)
}
