package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubedojo"
	"github.com/SeamusWaldron/cubedojo/pkg/drill"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestSaveLoadKeepsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dir", "settings.yaml")

	s := Default()
	require.NoError(t, s.Set("edge.bottom", "random"))
	require.NoError(t, s.Set("edge.rule", "current-layer"))
	require.NoError(t, s.Set("innereye.level", "3"))
	require.NoError(t, s.Set("zanshin.flash", "1500ms"))
	require.NoError(t, Save(path, s))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
	assert.True(t, loaded.Edge.Bottom.Random)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("innereye:\n  level: 4\n"), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, s.InnerEye.Level)
	assert.Equal(t, Default().Edge, s.Edge)
}

func TestLoadRejectsBadColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("edge:\n  bottom: purple\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSetValidation(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"nope", "1"},
		{"edge.front", "purple"},
		{"edge.rule", "sideways"},
		{"edge.randomize_each_round", "maybe"},
		{"innereye.level", "5"},
		{"innereye.level", "x"},
		{"zanshin.flash", "-1s"},
		{"zanshin.enabled_types", ""},
		{"zanshin.enabled_types", "pieceRecall,guess"},
		{"f2l.mode", "full"},
		{"f2l.max_solved_pairs", "5"},
		{"f2l.scramble_moves", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			s := Default()
			assert.Error(t, s.Set(tt.key, tt.value))
			assert.Equal(t, Default(), s)
		})
	}

	s := Default()
	assert.ErrorIs(t, s.Set("nope", "1"), ErrUnknownKey)
	assert.ErrorIs(t, s.Set("innereye.level", "0"), drill.ErrInvalidLevel)
}

func TestSetUpdatesDrillSettings(t *testing.T) {
	s := Default()
	require.NoError(t, s.Set("Zanshin.Enabled_Types", "piecerecall, singleStickerRecall"))
	require.NoError(t, s.Set("zanshin.only_visible_stickers", "true"))
	require.NoError(t, s.Set("f2l.mode", "u"))
	require.NoError(t, s.Set("f2l.min_solved_pairs", "4"))
	require.NoError(t, s.Set("f2l.max_solved_pairs", "4"))

	z, err := s.ZanshinSettings()
	require.NoError(t, err)
	assert.Equal(t, []drill.QuestionType{drill.PieceRecall, drill.SingleStickerRecall}, z.EnabledTypes)
	assert.Equal(t, 2*time.Second, z.FlashDuration)
	assert.True(t, z.OnlyVisibleStickers)

	f, err := s.F2LNinjaSettings()
	require.NoError(t, err)
	assert.Equal(t, drill.ScrambleULayer, f.Mode)
	assert.Equal(t, 4, f.MinSolvedPairs)
}

func TestDefaultDrillSettings(t *testing.T) {
	s := Default()

	e, err := s.EdgeKataSettings()
	require.NoError(t, err)
	assert.Equal(t, cubedojo.EdgeRuleImportantSticker, e.Rule)
	assert.Equal(t, cubedojo.Fixed(cubedojo.Red), e.Front)
	assert.Equal(t, 22, e.ScrambleMoves)

	ie, err := s.InnerEyeSettings()
	require.NoError(t, err)
	assert.Equal(t, drill.Level(1), ie.Level)

	assert.Equal(t, cubedojo.Fixed(cubedojo.White), s.OrientationSettings().Bottom)

	s.InnerEye.Level = 9
	_, err = s.InnerEyeSettings()
	assert.ErrorIs(t, err, drill.ErrInvalidLevel)
}

func TestSection(t *testing.T) {
	s := Default()

	out, err := s.Section(drill.KindInnerEye)
	require.NoError(t, err)
	assert.Equal(t, "bottom: white\nlevel: 1\n", out)

	_, err = s.Section(drill.Kind("bogus"))
	assert.ErrorIs(t, err, drill.ErrUnknownKind)
}

func TestKeysSorted(t *testing.T) {
	keys := Keys()
	assert.Contains(t, keys, "edge.rule")
	assert.IsIncreasing(t, keys)
}
