package aethel_test

import (
	"testing"

	"github.com/fwojciec/aethel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	theme := aethel.DefaultTheme()

	assert.Equal(t, aethel.ThemeDark, theme.Name)
	assert.Equal(t, 15, theme.Text)
	assert.Equal(t, 13, theme.Primary)
	assert.Equal(t, 9, theme.Error)
	assert.Equal(t, 8, theme.Muted)
}

func TestThemeName(t *testing.T) {
	t.Parallel()

	t.Run("toggle", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, aethel.ThemeLight, aethel.ThemeDark.Toggle())
		assert.Equal(t, aethel.ThemeDark, aethel.ThemeLight.Toggle())
	})

	t.Run("labels", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Void Mode", aethel.ThemeDark.Label())
		assert.Equal(t, "Opal Mode", aethel.ThemeLight.Label())
	})

	t.Run("parse", func(t *testing.T) {
		t.Parallel()
		n, err := aethel.ParseThemeName("light")
		require.NoError(t, err)
		assert.Equal(t, aethel.ThemeLight, n)
		_, err = aethel.ParseThemeName("sepia")
		assert.ErrorIs(t, err, aethel.ErrValidation)
	})

	t.Run("light palette", func(t *testing.T) {
		t.Parallel()
		light := aethel.ThemeFor(aethel.ThemeLight)
		assert.Equal(t, aethel.ThemeLight, light.Name)
		assert.Equal(t, 0, light.Text)
	})
}
