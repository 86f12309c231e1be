package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslatePositionLabel(t *testing.T) {
	t.Run("known corrupt label translates", func(t *testing.T) {
		got, ok := TranslatePositionLabel("??????????")
		assert.True(t, ok)
		assert.Equal(t, "ผู้พิพากษา", got)
	})

	t.Run("unknown label passes through unchanged", func(t *testing.T) {
		got, ok := TranslatePositionLabel("นิติกร")
		assert.False(t, ok)
		assert.Equal(t, "นิติกร", got)
	})

	t.Run("empty label passes through", func(t *testing.T) {
		got, ok := TranslatePositionLabel("")
		assert.False(t, ok)
		assert.Empty(t, got)
	})
}
