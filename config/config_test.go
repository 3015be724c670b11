package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalnine/solitaire/game"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, "spider", c.Variant)
	assert.Equal(t, 3, c.Brawl.MaxDeckPasses)
	assert.Equal(t, 1, c.Spider.Suits)
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
variant: reyerta
seed: 42
verbose: true
brawl:
  max_deck_passes: 5
`))
	require.NoError(t, err)
	assert.Equal(t, "reyerta", c.Variant)
	assert.Equal(t, int64(42), c.Seed)
	assert.True(t, c.Verbose)
	assert.Equal(t, 5, c.Brawl.MaxDeckPasses)
	assert.Equal(t, 1, c.Spider.Suits)
}

func TestParseRejectsBadSettings(t *testing.T) {
	for _, doc := range []string{
		"variant: klondike",
		"spider:\n  suits: 3",
		"brawl:\n  max_deck_passes: -1",
		"variant: [spider",
	} {
		_, err := Parse([]byte(doc))
		assert.Error(t, err, doc)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solitaire.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variant: eliminator\nseed: 7\n"), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "eliminator", c.Variant)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGameOptionsAreSeeded(t *testing.T) {
	c := Default()
	c.Seed = 99

	a, err := game.NewSession(game.VariantSpider, c.GameOptions(io.Discard))
	require.NoError(t, err)
	b, err := game.NewSession(game.VariantSpider, c.GameOptions(io.Discard))
	require.NoError(t, err)

	assert.Equal(t, a.Table.String(), b.Table.String())
}
