package calc

import (
	"github.com/udisondev/huntercalc/internal/model"
)

// baseVitals is the health and stamina every hunter starts with.
const baseVitals = 100

// DefenseDetails builds the defense panel: Defense, Health, Stamina and the
// five elemental resistances. Health and Stamina only show up when a skill
// raises them.
func DefenseDetails(stats *model.Stats) []model.StatDetail {
	rows := make([]model.StatDetail, 0, 8)

	rows = append(rows, model.StatDetail{
		Name: "Defense",
		Value: num(stats.Defense+stats.PassiveDefense) +
			" ➝ " + num(stats.MaxDefense+stats.PassiveDefense) +
			" ➟ " + num(stats.AugmentedDefense+stats.PassiveDefense),
	})

	if stats.PassiveHealth != 0 {
		rows = append(rows, model.StatDetail{Name: "Health", Value: num(baseVitals + stats.PassiveHealth)})
	}
	if stats.PassiveStamina != 0 {
		rows = append(rows, model.StatDetail{Name: "Stamina", Value: num(baseVitals + stats.PassiveStamina)})
	}

	resists := []struct {
		name          string
		base, passive float64
	}{
		{"Fire Resist", stats.FireResist, stats.PassiveFireResist},
		{"Water Resist", stats.WaterResist, stats.PassiveWaterResist},
		{"Thunder Resist", stats.ThunderResist, stats.PassiveThunderResist},
		{"Ice Resist", stats.IceResist, stats.PassiveIceResist},
		{"Dragon Resist", stats.DragonResist, stats.PassiveDragonResist},
	}
	for _, r := range resists {
		rows = append(rows, model.StatDetail{Name: r.name, Value: num(r.base + r.passive)})
	}

	return rows
}
