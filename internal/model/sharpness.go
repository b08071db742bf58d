package model

// Sharpness is one segment of the sharpness bar.
type Sharpness struct {
	ColorIndex int  `json:"colorIndex"`
	Level      int  `json:"level"`
	Active     bool `json:"active"`
	First      bool `json:"first,omitempty"`
	Last       bool `json:"last,omitempty"`
}

// SharpnessBar is the rendered sharpness gauge, segments ordered from the
// lowest color to the highest.
type SharpnessBar struct {
	Sharps        []Sharpness `json:"sharps"`
	Levels        []int       `json:"levels"`
	Empty         int         `json:"empty"`
	WidthModifier float64     `json:"widthModifier"`
	LevelsMissing int         `json:"levelsMissing"`
	Tooltip       string      `json:"tooltipTemplate"`
	DataNeeded    bool        `json:"sharpnessDataNeeded"`
	Color         string      `json:"color"`
}

// ColorLevels sums segment levels (active and inactive) per color index.
func (b *SharpnessBar) ColorLevels() map[int]int {
	out := make(map[int]int)
	for _, s := range b.Sharps {
		out[s.ColorIndex] += s.Level
	}
	return out
}
