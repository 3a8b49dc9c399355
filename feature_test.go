package aethel_test

import (
	"testing"

	"github.com/fwojciec/aethel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	c := aethel.DefaultCatalog()
	require.Equal(t, 12, c.Len())

	t.Run("preserves display order", func(t *testing.T) {
		t.Parallel()
		list := c.List()
		assert.Equal(t, aethel.FeatureDeepDiveOracle, list[0].ID)
		assert.Equal(t, aethel.FeatureResonanceEngine, list[len(list)-1].ID)
	})

	t.Run("output kinds", func(t *testing.T) {
		t.Parallel()
		vision, err := c.Find(aethel.FeatureAethericVision)
		require.NoError(t, err)
		assert.Equal(t, aethel.KindImage, vision.Kind)
		assert.Equal(t, "imagen-4.0-generate-001", vision.Model)

		resonance, err := c.Find(aethel.FeatureResonanceEngine)
		require.NoError(t, err)
		assert.Equal(t, aethel.KindAudio, resonance.Kind)
		assert.False(t, resonance.IsChat())
	})

	t.Run("chat personas", func(t *testing.T) {
		t.Parallel()
		var chats []string
		for _, f := range c.List() {
			if f.IsChat() {
				chats = append(chats, f.ID)
			}
		}
		assert.Equal(t, []string{
			aethel.FeatureEpicWeaver,
			aethel.FeaturePulsarScribe,
			aethel.FeatureEchoCompanion,
			aethel.FeatureSyntaxSorcerer,
			aethel.FeatureGenesisEngine,
			aethel.FeatureTheAgora,
		}, chats)
	})

	t.Run("every persona has an instruction", func(t *testing.T) {
		t.Parallel()
		for _, f := range c.List() {
			assert.NotEmpty(t, f.Instruction, f.ID)
			assert.NotEmpty(t, f.Model, f.ID)
		}
	})

	t.Run("List returns a copy", func(t *testing.T) {
		t.Parallel()
		list := c.List()
		list[0].Title = "changed"
		f, err := c.Find(aethel.FeatureDeepDiveOracle)
		require.NoError(t, err)
		assert.Equal(t, "Deep Dive Oracle", f.Title)
	})
}

func TestCatalog_Find(t *testing.T) {
	t.Parallel()
	c := aethel.DefaultCatalog()
	_, err := c.Find("no_such_feature")
	assert.ErrorIs(t, err, aethel.ErrFeatureNotFound)
}

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	t.Run("rejects duplicate ids", func(t *testing.T) {
		t.Parallel()
		f := aethel.Feature{ID: "a", Title: "A"}
		_, err := aethel.NewCatalog([]aethel.Feature{f, f})
		assert.ErrorIs(t, err, aethel.ErrValidation)
	})

	t.Run("rejects missing id", func(t *testing.T) {
		t.Parallel()
		_, err := aethel.NewCatalog([]aethel.Feature{{Title: "A"}})
		assert.ErrorIs(t, err, aethel.ErrValidation)
	})

	t.Run("rejects chat features with media output", func(t *testing.T) {
		t.Parallel()
		_, err := aethel.NewCatalog([]aethel.Feature{{ID: "a", Title: "A", Mode: aethel.ModeChat, Kind: aethel.KindImage}})
		assert.ErrorIs(t, err, aethel.ErrValidation)
	})
}
