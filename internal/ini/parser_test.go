package ini

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSettings = `; Seamless Co-op configuration
; Edit values below, then restart the game.

[GAMEPLAY]
; Allows other players to invade your world
; 0 = FALSE  1 = TRUE
allow_invaders = 1

; How player names are shown. 0 = Disabled | 1 = Enabled (no lock-on) | 2 = Enabled (with lock-on)
overhead_player_display = 2

; If enabled, the intro logos are skipped on boot
skip_intros = 0

[SCALING]
; Enemy health scaling per extra player, between 0 and 200 percent. Default: 35
enemy_health_scaling = 35

; Game volume during boot (0 = Mute | 10 = max)
game_boot_volume = 5

[PASSWORD]
; Session password. Leave blank to disable
cooppassword =
`

func TestParse(t *testing.T) {
	sections, err := Parse(strings.NewReader(sampleSettings), map[string]string{"allow_invaders": "1"})
	require.NoError(t, err)
	require.Len(t, sections, 3)

	gameplay := sections[0]
	assert.Equal(t, "GAMEPLAY", gameplay.Name)
	require.Len(t, gameplay.Settings, 3)

	t.Run("spaced options become a select", func(t *testing.T) {
		s := gameplay.Settings[0]
		assert.Equal(t, "allow_invaders", s.Key)
		assert.Equal(t, "1", s.Value)
		assert.Equal(t, "select", s.Type)
		require.Len(t, s.Options, 2)
		assert.Equal(t, Option{Value: "0", Label: "FALSE"}, s.Options[0])
		assert.Equal(t, Option{Value: "1", Label: "TRUE"}, s.Options[1])
		assert.Equal(t, "1", s.Default, "default comes from the supplied map")
	})

	t.Run("pipe separated options keep labels with parens", func(t *testing.T) {
		s := gameplay.Settings[1]
		assert.Equal(t, "select", s.Type)
		require.Len(t, s.Options, 3)
		assert.Equal(t, "Enabled (no lock-on)", s.Options[1].Label)
		assert.Equal(t, "Enabled (with lock-on)", s.Options[2].Label)
	})

	t.Run("if-enabled phrasing with 0/1 value is a toggle", func(t *testing.T) {
		s := gameplay.Settings[2]
		assert.Equal(t, "skip_intros", s.Key)
		assert.Equal(t, "select", s.Type)
		require.Len(t, s.Options, 2)
		assert.Equal(t, "Disabled", s.Options[0].Label)
	})

	scaling := sections[1]
	require.Len(t, scaling.Settings, 2)

	t.Run("between-and range with comment default", func(t *testing.T) {
		s := scaling.Settings[0]
		assert.Equal(t, "number", s.Type)
		require.NotNil(t, s.Min)
		require.NotNil(t, s.Max)
		assert.Equal(t, 0, *s.Min)
		assert.Equal(t, 200, *s.Max)
		assert.Equal(t, "35", s.Default, "default extracted from comment text")
	})

	t.Run("wide pipe span is a range not a select", func(t *testing.T) {
		s := scaling.Settings[1]
		assert.Equal(t, "number", s.Type)
		assert.Nil(t, s.Options)
		require.NotNil(t, s.Min)
		require.NotNil(t, s.Max)
		assert.Equal(t, 0, *s.Min)
		assert.Equal(t, 10, *s.Max)
	})

	t.Run("blank value falls back to text", func(t *testing.T) {
		s := sections[2].Settings[0]
		assert.Equal(t, "cooppassword", s.Key)
		assert.Equal(t, "text", s.Type)
		assert.Empty(t, s.Value)
	})
}

func TestParseBlankLineResetsComments(t *testing.T) {
	content := "[A]\n; stale comment\n\nkey = 5\n"
	sections, err := Parse(strings.NewReader(content), nil)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Settings, 1)
	assert.Empty(t, sections[0].Settings[0].Description)
}

func TestParseIgnoresKeysOutsideSections(t *testing.T) {
	content := "orphan = 1\n[A]\nkey = 2\n"
	sections, err := Parse(strings.NewReader(content), nil)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Settings, 1)
	assert.Equal(t, "key", sections[0].Settings[0].Key)
}

func TestParseStripsBOM(t *testing.T) {
	content := "\ufeff[A]\nkey = 1\n"
	sections, err := Parse(strings.NewReader(content), nil)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "A", sections[0].Name)
}

func TestExtractOptions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"three pipe options", "0 = Off | 1 = On | 2 = Auto", 3},
		{"two close pipe options", "0 = Off | 1 = On", 2},
		{"two distant pipe options are not a select", "0 = Mute | 10 = Max", 0},
		{"double spaced pair", "0=FALSE  1=TRUE", 2},
		{"plain prose", "scales enemy health for guests", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, extractOptions(tt.text), tt.want)
		})
	}
}

func TestInferSettingNegativeNumber(t *testing.T) {
	s := inferSetting("offset", "-20", "")
	assert.Equal(t, "number", s.Type)
}
