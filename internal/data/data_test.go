package data

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/huntercalc/internal/model"
)

const jsonSnapshot = `{
  "attack": 200,
  "passiveAttack": 10,
  "weaponAttackModifier": 4.8,
  "totalAttack": 248,
  "sharpnessLevelsBar": [5, 5, 5, 5, 10, 0],
  "passiveSharpness": 20,
  "extraData": {"deviation": 1},
  "someFutureField": true
}`

const yamlSnapshot = `
attack: 300
weaponAttackModifier: 1.3
totalAttack: 312
ammoUp: 2
ammoCapacities:
  normal: [5, 3, 0]
  dragon: 2
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"build.json", FormatJSON, false},
		{"BUILD.JSON", FormatJSON, false},
		{"build.yaml", FormatYAML, false},
		{"build.yml", FormatYAML, false},
		{"application/json", FormatJSON, false},
		{"application/json; charset=utf-8", FormatJSON, false},
		{"application/yaml", FormatYAML, false},
		{"text/yaml", FormatYAML, false},
		{"", FormatJSON, false},
		{"build.toml", "", true},
		{"text/plain", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatOf(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadSnapshot_JSON(t *testing.T) {
	stats, err := LoadSnapshot(writeFile(t, "sword.json", jsonSnapshot))
	require.NoError(t, err)

	assert.Equal(t, 200.0, stats.Attack)
	assert.Equal(t, 4.8, stats.WeaponAttackModifier)
	assert.Equal(t, []int{5, 5, 5, 5, 10, 0}, stats.SharpnessLevelsBar)
	assert.Equal(t, 20, stats.PassiveSharpness)
	assert.Equal(t, model.ExtraData{"deviation": 1}, stats.ExtraData)
	assert.Nil(t, stats.AmmoCapacities)
}

func TestLoadSnapshot_YAML(t *testing.T) {
	stats, err := LoadSnapshot(writeFile(t, "bowgun.yaml", yamlSnapshot))
	require.NoError(t, err)

	assert.Equal(t, 300.0, stats.Attack)
	assert.Equal(t, 2, stats.AmmoUp)
	require.NotNil(t, stats.AmmoCapacities)
	assert.Equal(t, []int{5, 3, 0}, stats.AmmoCapacities.Normal)
	assert.Equal(t, 2, stats.AmmoCapacities.Dragon)
}

func TestLoadSnapshot_Errors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := LoadSnapshot(writeFile(t, "build.toml", "attack = 1"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSnapshot(filepath.Join(t.TempDir(), "absent.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := LoadSnapshot(writeFile(t, "broken.json", `{"attack": `))
		assert.ErrorContains(t, err, "decoding json")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadSnapshot(writeFile(t, "broken.yaml", "attack: [1"))
		assert.ErrorContains(t, err, "decoding yaml")
	})

	t.Run("empty yaml fails validation", func(t *testing.T) {
		_, err := LoadSnapshot(writeFile(t, "empty.yaml", ""))
		assert.ErrorContains(t, err, "weaponAttackModifier")
	})
}

func TestDecodeSnapshot_UnknownFormat(t *testing.T) {
	_, err := DecodeSnapshot(strings.NewReader("{}"), Format("toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestValidate(t *testing.T) {
	valid := func() *model.Stats {
		return &model.Stats{WeaponAttackModifier: 1, AmmoUp: 3, SharpnessLevelsBar: []int{1, 2, 3, 4, 5, 6}}
	}

	require.NoError(t, Validate(valid()))

	tests := []struct {
		name   string
		mutate func(*model.Stats)
		want   string
	}{
		{"zero modifier", func(s *model.Stats) { s.WeaponAttackModifier = 0 }, "weaponAttackModifier"},
		{"ammo up too high", func(s *model.Stats) { s.AmmoUp = 4 }, "ammoUp"},
		{"negative ammo up", func(s *model.Stats) { s.AmmoUp = -1 }, "ammoUp"},
		{"too many colors", func(s *model.Stats) { s.SharpnessLevelsBar = append(s.SharpnessLevelsBar, 1) }, "7 colors"},
		{"negative level", func(s *model.Stats) { s.SharpnessLevelsBar[2] = -1 }, "sharpnessLevelsBar[2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)
			assert.ErrorContains(t, Validate(s), tt.want)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	err := Validate(&model.Stats{AmmoUp: 9})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "weaponAttackModifier")
	assert.Contains(t, err.Error(), "ammoUp")
}

func TestSchema(t *testing.T) {
	raw, err := SchemaJSON()
	require.NoError(t, err)

	var schema struct {
		Title      string                    `json:"title"`
		Type       string                    `json:"type"`
		Required   []string                  `json:"required"`
		Properties map[string]map[string]any `json:"properties"`
		Defs       map[string]any            `json:"$defs"`
	}
	require.NoError(t, json.Unmarshal(raw, &schema))

	assert.Equal(t, "Hunter Calc Stats Snapshot", schema.Title)
	assert.Equal(t, "object", schema.Type)
	assert.Empty(t, schema.Required)
	assert.Contains(t, schema.Properties, "weaponAttackModifier")
	assert.Contains(t, schema.Properties, "sharpnessLevelsBar")
	require.Contains(t, schema.Properties, "ammoUp")
	assert.Equal(t, 3.0, schema.Properties["ammoUp"]["maximum"])
	assert.Contains(t, schema.Defs, "AmmoCapacities")
}
