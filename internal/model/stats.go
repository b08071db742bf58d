package model

// Stats is the aggregated snapshot produced by equipment/skill aggregation.
// The calculation engine reads it and never writes to it.
//
// Base values come from the weapon and armor; passive values are contributed
// by skills that are always on; active values only apply while a condition
// holds (buffs, weak point hits, draw attacks).
type Stats struct {
	// Attack
	Attack                              float64 `json:"attack" yaml:"attack"`
	PassiveAttack                       float64 `json:"passiveAttack" yaml:"passiveAttack"`
	ActiveAttack                        float64 `json:"activeAttack" yaml:"activeAttack"`
	WeaponAttackModifier                float64 `json:"weaponAttackModifier" yaml:"weaponAttackModifier"`
	EffectivePhysicalSharpnessModifier  float64 `json:"effectivePhysicalSharpnessModifier" yaml:"effectivePhysicalSharpnessModifier"`
	EffectiveElementalSharpnessModifier float64 `json:"effectiveElementalSharpnessModifier" yaml:"effectiveElementalSharpnessModifier"`
	TotalAttack                         float64 `json:"totalAttack" yaml:"totalAttack"`
	TotalAttackPotential                float64 `json:"totalAttackPotential" yaml:"totalAttackPotential"`

	// Elementless boost applies only to weapons without element or ailment.
	Elementless             bool    `json:"elementless" yaml:"elementless"`
	ElementlessBoostPercent float64 `json:"elementlessBoostPercent" yaml:"elementlessBoostPercent"`

	// Affinity, in percent
	Affinity          float64 `json:"affinity" yaml:"affinity"`
	PassiveAffinity   float64 `json:"passiveAffinity" yaml:"passiveAffinity"`
	ActiveAffinity    float64 `json:"activeAffinity" yaml:"activeAffinity"`
	WeakPointAffinity float64 `json:"weakPointAffinity" yaml:"weakPointAffinity"`
	DrawAffinity      float64 `json:"drawAffinity" yaml:"drawAffinity"`
	SlidingAffinity   float64 `json:"slidingAffinity" yaml:"slidingAffinity"`

	PassiveCriticalBoostPercent float64 `json:"passiveCriticalBoostPercent" yaml:"passiveCriticalBoostPercent"`
	// CriticalStatus lets ailment damage crit (potential average only).
	CriticalStatus bool `json:"criticalStatus" yaml:"criticalStatus"`
	// CriticalElement lets element damage crit (potential average only).
	CriticalElement bool `json:"criticalElement" yaml:"criticalElement"`

	// Ailment
	Ailment                       string  `json:"ailment,omitempty" yaml:"ailment"`
	AilmentCapped                 bool    `json:"ailmentCapped" yaml:"ailmentCapped"`
	AilmentHidden                 bool    `json:"ailmentHidden" yaml:"ailmentHidden"`
	BaseAilmentAttack             float64 `json:"baseAilmentAttack" yaml:"baseAilmentAttack"`
	EffectivePassiveAilmentAttack float64 `json:"effectivePassiveAilmentAttack" yaml:"effectivePassiveAilmentAttack"`
	AilmentCap                    float64 `json:"ailmentCap" yaml:"ailmentCap"`
	TotalAilmentAttack            float64 `json:"totalAilmentAttack" yaml:"totalAilmentAttack"`

	// Element
	Element                       string  `json:"element,omitempty" yaml:"element"`
	ElementCapped                 bool    `json:"elementCapped" yaml:"elementCapped"`
	ElementHidden                 bool    `json:"elementHidden" yaml:"elementHidden"`
	BaseElementAttack             float64 `json:"baseElementAttack" yaml:"baseElementAttack"`
	EffectivePassiveElementAttack float64 `json:"effectivePassiveElementAttack" yaml:"effectivePassiveElementAttack"`
	ElementCap                    float64 `json:"elementCap" yaml:"elementCap"`
	TotalElementAttack            float64 `json:"totalElementAttack" yaml:"totalElementAttack"`

	// ElementAttackMultiplier scales hidden element and hidden ailment alike.
	ElementAttackMultiplier float64 `json:"elementAttackMultiplier" yaml:"elementAttackMultiplier"`

	Elderseal        string  `json:"elderseal,omitempty" yaml:"elderseal"`
	HealOnHitPercent float64 `json:"healOnHitPercent" yaml:"healOnHitPercent"`

	// Defense
	Defense          float64 `json:"defense" yaml:"defense"`
	MaxDefense       float64 `json:"maxDefense" yaml:"maxDefense"`
	AugmentedDefense float64 `json:"augmentedDefense" yaml:"augmentedDefense"`
	PassiveDefense   float64 `json:"passiveDefense" yaml:"passiveDefense"`
	PassiveHealth    float64 `json:"passiveHealth" yaml:"passiveHealth"`
	PassiveStamina   float64 `json:"passiveStamina" yaml:"passiveStamina"`

	// Resistances
	FireResist           float64 `json:"fireResist" yaml:"fireResist"`
	WaterResist          float64 `json:"waterResist" yaml:"waterResist"`
	ThunderResist        float64 `json:"thunderResist" yaml:"thunderResist"`
	IceResist            float64 `json:"iceResist" yaml:"iceResist"`
	DragonResist         float64 `json:"dragonResist" yaml:"dragonResist"`
	PassiveFireResist    float64 `json:"passiveFireResist" yaml:"passiveFireResist"`
	PassiveWaterResist   float64 `json:"passiveWaterResist" yaml:"passiveWaterResist"`
	PassiveThunderResist float64 `json:"passiveThunderResist" yaml:"passiveThunderResist"`
	PassiveIceResist     float64 `json:"passiveIceResist" yaml:"passiveIceResist"`
	PassiveDragonResist  float64 `json:"passiveDragonResist" yaml:"passiveDragonResist"`

	// Sharpness pool per color, index 0 = lowest color. Nil for weapons
	// without sharpness.
	SharpnessLevelsBar  []int `json:"sharpnessLevelsBar,omitempty" yaml:"sharpnessLevelsBar"`
	PassiveSharpness    int   `json:"passiveSharpness" yaml:"passiveSharpness"` // handicraft, in tenths
	SharpnessDataNeeded bool  `json:"sharpnessDataNeeded" yaml:"sharpnessDataNeeded"`

	// Ranged weapons only
	AmmoCapacities *AmmoCapacities `json:"ammoCapacities,omitempty" yaml:"ammoCapacities"`
	AmmoUp         int             `json:"ammoUp" yaml:"ammoUp" jsonschema:"minimum=0,maximum=3"`

	ExtraData ExtraData `json:"extraData,omitempty" yaml:"extraData"`
}

// TotalAffinity returns weapon plus passive affinity, uncapped.
func (s *Stats) TotalAffinity() float64 {
	return s.Affinity + s.PassiveAffinity
}

// TotalAffinityPotential returns affinity including weak point and active
// bonuses, uncapped.
func (s *Stats) TotalAffinityPotential() float64 {
	return s.Affinity + s.PassiveAffinity + s.WeakPointAffinity + s.ActiveAffinity
}

// CriticalBoostPercent returns the critical damage multiplier in percent.
// 125 is the base multiplier for this ruleset.
func (s *Stats) CriticalBoostPercent() float64 {
	return BaseCriticalBoostPercent + s.PassiveCriticalBoostPercent
}

// BaseCriticalBoostPercent is the critical multiplier without skills.
const BaseCriticalBoostPercent = 125

// ExtraData is forwarded unchanged to the UI.
type ExtraData map[string]float64

// Clone returns an independent copy.
func (e ExtraData) Clone() ExtraData {
	if e == nil {
		return nil
	}
	out := make(ExtraData, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}
