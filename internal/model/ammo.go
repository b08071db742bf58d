package model

import "slices"

// AmmoKind names a bowgun ammo type.
type AmmoKind string

const (
	AmmoNormal    AmmoKind = "normal"
	AmmoPiercing  AmmoKind = "piercing"
	AmmoSpread    AmmoKind = "spread"
	AmmoSticky    AmmoKind = "sticky"
	AmmoCluster   AmmoKind = "cluster"
	AmmoRecover   AmmoKind = "recover"
	AmmoPoison    AmmoKind = "poison"
	AmmoParalysis AmmoKind = "paralysis"
	AmmoSleep     AmmoKind = "sleep"
	AmmoExhaust   AmmoKind = "exhaust"
	AmmoFlaming   AmmoKind = "flaming"
	AmmoWater     AmmoKind = "water"
	AmmoFreeze    AmmoKind = "freeze"
	AmmoThunder   AmmoKind = "thunder"
	AmmoDragon    AmmoKind = "dragon"
	AmmoSlicing   AmmoKind = "slicing"
	AmmoDemon     AmmoKind = "demon"
	AmmoArmor     AmmoKind = "armor"
	AmmoTranq     AmmoKind = "tranq"
)

// AmmoCapacities is a bowgun's clip size per ammo kind. Multi-level ammo
// holds one capacity per level; 0 means the level cannot be loaded.
type AmmoCapacities struct {
	Normal    []int `json:"normal" yaml:"normal"`
	Piercing  []int `json:"piercing" yaml:"piercing"`
	Spread    []int `json:"spread" yaml:"spread"`
	Sticky    []int `json:"sticky" yaml:"sticky"`
	Cluster   []int `json:"cluster" yaml:"cluster"`
	Recover   []int `json:"recover" yaml:"recover"`
	Poison    []int `json:"poison" yaml:"poison"`
	Paralysis []int `json:"paralysis" yaml:"paralysis"`
	Sleep     []int `json:"sleep" yaml:"sleep"`
	Exhaust   []int `json:"exhaust" yaml:"exhaust"`

	Flaming int `json:"flaming" yaml:"flaming"`
	Water   int `json:"water" yaml:"water"`
	Freeze  int `json:"freeze" yaml:"freeze"`
	Thunder int `json:"thunder" yaml:"thunder"`
	Dragon  int `json:"dragon" yaml:"dragon"`
	Slicing int `json:"slicing" yaml:"slicing"`
	Demon   int `json:"demon" yaml:"demon"`
	Armor   int `json:"armor" yaml:"armor"`
	Tranq   int `json:"tranq" yaml:"tranq"`
}

// Clone returns a deep copy: no slice is shared with the receiver.
func (a *AmmoCapacities) Clone() *AmmoCapacities {
	if a == nil {
		return nil
	}
	out := *a
	out.Normal = slices.Clone(a.Normal)
	out.Piercing = slices.Clone(a.Piercing)
	out.Spread = slices.Clone(a.Spread)
	out.Sticky = slices.Clone(a.Sticky)
	out.Cluster = slices.Clone(a.Cluster)
	out.Recover = slices.Clone(a.Recover)
	out.Poison = slices.Clone(a.Poison)
	out.Paralysis = slices.Clone(a.Paralysis)
	out.Sleep = slices.Clone(a.Sleep)
	out.Exhaust = slices.Clone(a.Exhaust)
	return &out
}

// Levels returns the capacities of a multi-level kind, or nil.
func (a *AmmoCapacities) Levels(kind AmmoKind) []int {
	switch kind {
	case AmmoNormal:
		return a.Normal
	case AmmoPiercing:
		return a.Piercing
	case AmmoSpread:
		return a.Spread
	case AmmoSticky:
		return a.Sticky
	case AmmoCluster:
		return a.Cluster
	case AmmoRecover:
		return a.Recover
	case AmmoPoison:
		return a.Poison
	case AmmoParalysis:
		return a.Paralysis
	case AmmoSleep:
		return a.Sleep
	case AmmoExhaust:
		return a.Exhaust
	}
	return nil
}

// Single returns a pointer to the capacity of a single-level kind, or nil.
func (a *AmmoCapacities) Single(kind AmmoKind) *int {
	switch kind {
	case AmmoFlaming:
		return &a.Flaming
	case AmmoWater:
		return &a.Water
	case AmmoFreeze:
		return &a.Freeze
	case AmmoThunder:
		return &a.Thunder
	case AmmoDragon:
		return &a.Dragon
	case AmmoSlicing:
		return &a.Slicing
	case AmmoDemon:
		return &a.Demon
	case AmmoArmor:
		return &a.Armor
	case AmmoTranq:
		return &a.Tranq
	}
	return nil
}
