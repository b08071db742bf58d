package data

import (
	"errors"
	"fmt"

	"github.com/udisondev/huntercalc/internal/calc"
	"github.com/udisondev/huntercalc/internal/model"
)

// Validate reports every snapshot value the calculators cannot use.
func Validate(stats *model.Stats) error {
	var errs []error

	if stats.WeaponAttackModifier <= 0 {
		errs = append(errs, fmt.Errorf("weaponAttackModifier must be positive, got %v", stats.WeaponAttackModifier))
	}
	if stats.AmmoUp < 0 || stats.AmmoUp > calc.MaxAmmoUp {
		errs = append(errs, fmt.Errorf("ammoUp must be within 0..%d, got %d", calc.MaxAmmoUp, stats.AmmoUp))
	}
	if len(stats.SharpnessLevelsBar) > calc.SharpnessColors {
		errs = append(errs, fmt.Errorf("sharpnessLevelsBar has %d colors, max %d", len(stats.SharpnessLevelsBar), calc.SharpnessColors))
	}
	for i, level := range stats.SharpnessLevelsBar {
		if level < 0 {
			errs = append(errs, fmt.Errorf("sharpnessLevelsBar[%d] is negative", i))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid snapshot: %w", err)
	}
	return nil
}
