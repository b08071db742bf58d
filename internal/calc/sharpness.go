package calc

import (
	"slices"
	"strconv"
	"strings"

	"github.com/udisondev/huntercalc/internal/model"
)

const (
	// MaxSharpnessLevels is the displayed pool without handicraft.
	MaxSharpnessLevels = 40
	// HandicraftLevels is the headroom max handicraft adds on top.
	HandicraftLevels = 5
	// SharpnessColors is the number of color slots on the bar.
	SharpnessColors = 6

	sharpnessWidthModifier = 3.5
)

// SharpnessBar builds the sharpness gauge. Returns nil when the weapon has
// no sharpness pool.
//
// The pool is walked from the highest color down. Passive sharpness (in
// tenths of a handicraft level) promotes levels at the top into active
// segments; missing handicraft is removed from the top first and reported as
// Empty. Pools above 40 are trimmed back to 40 from the top as well.
func SharpnessBar(stats *model.Stats) *model.SharpnessBar {
	if len(stats.SharpnessLevelsBar) == 0 {
		return nil
	}

	pool := slices.Clone(stats.SharpnessLevelsBar)
	total := 0
	for _, level := range pool {
		total += level
	}

	maxHandicraftLevels := max(MaxSharpnessLevels+HandicraftLevels-total, 0)
	handicraft := stats.PassiveSharpness / 10
	levelsToSubtract := max(min(HandicraftLevels-handicraft, maxHandicraftLevels), 0)
	levelsToAdd := max(min(handicraft, maxHandicraftLevels), 0)
	empty := levelsToSubtract

	bar := &model.SharpnessBar{
		Sharps:        make([]model.Sharpness, 0, len(pool)*2),
		WidthModifier: sharpnessWidthModifier,
		LevelsMissing: SharpnessColors - len(pool),
		DataNeeded:    stats.SharpnessDataNeeded,
		Color:         model.ColorWhite,
	}
	if stats.SharpnessDataNeeded {
		bar.Color = model.ColorRed
	}

	tooltip := make([]string, len(pool))
	last := true
	for i := len(pool) - 1; i >= 0; i-- {
		if levelsToSubtract > 0 {
			removed := min(pool[i], levelsToSubtract)
			pool[i] -= removed
			levelsToSubtract -= removed
		}

		promoted := min(pool[i], levelsToAdd)
		if levelsToAdd > 0 {
			bar.Sharps = append(bar.Sharps, model.Sharpness{
				ColorIndex: i,
				Level:      promoted,
				Active:     true,
				Last:       last,
				First:      levelsToAdd == promoted,
			})
			last = false
		}
		if levelsToAdd < pool[i] {
			bar.Sharps = append(bar.Sharps, model.Sharpness{
				ColorIndex: i,
				Level:      pool[i] - levelsToAdd,
			})
		}
		levelsToAdd -= promoted

		if total > MaxSharpnessLevels && pool[i] > 0 {
			trimmed := min(pool[i], total-MaxSharpnessLevels)
			pool[i] -= trimmed
			total -= trimmed
		}
		tooltip[i] = strconv.Itoa(pool[i] * 10)
	}

	slices.Reverse(bar.Sharps)
	bar.Levels = pool
	bar.Empty = empty
	bar.Tooltip = "| " + strings.Join(tooltip, " | ") + " | = " + strconv.Itoa((total-empty)*10)
	return bar
}
