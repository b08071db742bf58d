package calc

import (
	"github.com/udisondev/huntercalc/internal/model"
)

const (
	// MaxCappedAmmo is the most shots sticky, cluster, dragon and slicing
	// ammo can ever hold.
	MaxCappedAmmo = 3
	// MaxAmmoUp is the highest ammo-up skill level.
	MaxAmmoUp = 3
)

// ammoBonus describes which slot an ammo-up tier improves.
type ammoBonus struct {
	kind   model.AmmoKind
	level  int // index into multi-level capacities; ignored for single-level kinds
	capped bool
}

// ammoUpTiers lists the slots improved at each ammo-up tier, tier 1 first.
var ammoUpTiers = [][]ammoBonus{
	{
		{kind: model.AmmoNormal, level: 0},
		{kind: model.AmmoPiercing, level: 0},
		{kind: model.AmmoSpread, level: 0},
		{kind: model.AmmoSticky, level: 0, capped: true},
		{kind: model.AmmoCluster, level: 0, capped: true},
	},
	{
		{kind: model.AmmoNormal, level: 1},
		{kind: model.AmmoPiercing, level: 1},
		{kind: model.AmmoSpread, level: 1},
		{kind: model.AmmoSticky, level: 1, capped: true},
		{kind: model.AmmoCluster, level: 1, capped: true},
		{kind: model.AmmoRecover, level: 0},
		{kind: model.AmmoPoison, level: 0},
		{kind: model.AmmoParalysis, level: 0},
		{kind: model.AmmoSleep, level: 0},
		{kind: model.AmmoExhaust, level: 0},
	},
	{
		{kind: model.AmmoNormal, level: 2},
		{kind: model.AmmoPiercing, level: 2},
		{kind: model.AmmoSpread, level: 2},
		{kind: model.AmmoRecover, level: 1},
		{kind: model.AmmoPoison, level: 1},
		{kind: model.AmmoParalysis, level: 1},
		{kind: model.AmmoSleep, level: 1},
		{kind: model.AmmoExhaust, level: 1},
		{kind: model.AmmoFlaming},
		{kind: model.AmmoWater},
		{kind: model.AmmoFreeze},
		{kind: model.AmmoThunder},
		{kind: model.AmmoDragon, capped: true},
		{kind: model.AmmoSlicing, capped: true},
		{kind: model.AmmoDemon},
		{kind: model.AmmoArmor},
		{kind: model.AmmoTranq},
	},
}

// AmmoCapacities returns a copy of the base ammo table with ammo-up bonuses
// applied. Returns nil when the weapon has no ammo table. The base table in
// stats is never modified.
func AmmoCapacities(stats *model.Stats) *model.AmmoCapacities {
	if stats.AmmoCapacities == nil {
		return nil
	}

	up := stats.AmmoCapacities.Clone()
	for tier := 0; tier < len(ammoUpTiers) && tier < stats.AmmoUp; tier++ {
		for _, b := range ammoUpTiers[tier] {
			if slot := ammoSlot(up, b); slot != nil {
				*slot += ammoIncrement(*slot, b.capped)
			}
		}
	}
	return up
}

func ammoSlot(a *model.AmmoCapacities, b ammoBonus) *int {
	if single := a.Single(b.kind); single != nil {
		return single
	}
	levels := a.Levels(b.kind)
	if b.level >= len(levels) {
		return nil
	}
	return &levels[b.level]
}

// ammoIncrement is the bonus for one occupied slot: standard ammo gains 2
// from 5 shots up and 1 below; capped ammo gains 1 while under 3.
// Empty slots never gain anything.
func ammoIncrement(current int, capped bool) int {
	switch {
	case current <= 0:
		return 0
	case capped:
		if current < MaxCappedAmmo {
			return 1
		}
		return 0
	case current >= 5:
		return 2
	default:
		return 1
	}
}
