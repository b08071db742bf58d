package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/udisondev/huntercalc/internal/engine"
	"github.com/udisondev/huntercalc/internal/model"
)

// sharpnessGlyphs holds one bar character per color, lowest color first.
const sharpnessGlyphs = "ROYGBW"

// Text writes a terminal rendering of one pass: the attack and defense
// panels with resolved formulas, then sharpness and ammo when present.
func Text(w io.Writer, res engine.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "ATTACK")
	writeRows(tw, res.Attack)
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "DEFENSE")
	writeRows(tw, res.Defense)

	if res.Sharpness != nil {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "SHARPNESS")
		fmt.Fprintf(tw, "  %s\t%s\n", SharpnessGauge(res.Sharpness), res.Sharpness.Tooltip)
	}

	if res.Ammo != nil {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "AMMO")
		writeAmmo(tw, res.Ammo)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	return nil
}

func writeRows(w io.Writer, rows []model.StatDetail) {
	for _, row := range rows {
		value := row.Value
		if row.Extra1 != nil {
			value += fmt.Sprintf(" (%s %d)", row.Class1, *row.Extra1)
		}
		if row.Extra2 != nil {
			value += fmt.Sprintf(" (%s %d)", row.Class2, *row.Extra2)
		}
		fmt.Fprintf(w, "  %s\t%s\n", row.Name, value)

		if len(row.Formulas) > 0 {
			for _, line := range strings.Split(Resolve(Template(row), row.Variables), "\n") {
				fmt.Fprintf(w, "\t  %s\n", line)
			}
		}
		for _, info := range row.Info {
			fmt.Fprintf(w, "\t  ! %s\n", info)
		}
	}
}

// SharpnessGauge draws the bar one character per level: lowercase for
// levels reached through handicraft, uppercase otherwise, '.' for empty.
func SharpnessGauge(bar *model.SharpnessBar) string {
	var b strings.Builder
	for _, s := range bar.Sharps {
		glyph := "?"
		if s.ColorIndex >= 0 && s.ColorIndex < len(sharpnessGlyphs) {
			glyph = sharpnessGlyphs[s.ColorIndex : s.ColorIndex+1]
		}
		if s.Active {
			glyph = strings.ToLower(glyph)
		}
		b.WriteString(strings.Repeat(glyph, s.Level))
	}
	b.WriteString(strings.Repeat(".", max(bar.Empty, 0)))
	return b.String()
}

func writeAmmo(w io.Writer, a *model.AmmoCapacities) {
	multi := []model.AmmoKind{
		model.AmmoNormal, model.AmmoPiercing, model.AmmoSpread, model.AmmoSticky, model.AmmoCluster,
		model.AmmoRecover, model.AmmoPoison, model.AmmoParalysis, model.AmmoSleep, model.AmmoExhaust,
	}
	for _, kind := range multi {
		levels := a.Levels(kind)
		if len(levels) == 0 {
			continue
		}
		parts := make([]string, len(levels))
		for i, v := range levels {
			parts[i] = strconv.Itoa(v)
		}
		fmt.Fprintf(w, "  %s\t%s\n", kind, strings.Join(parts, " / "))
	}

	single := []model.AmmoKind{
		model.AmmoFlaming, model.AmmoWater, model.AmmoFreeze, model.AmmoThunder, model.AmmoDragon,
		model.AmmoSlicing, model.AmmoDemon, model.AmmoArmor, model.AmmoTranq,
	}
	for _, kind := range single {
		fmt.Fprintf(w, "  %s\t%d\n", kind, *a.Single(kind))
	}
}
