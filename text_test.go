package sintagrab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sintagrab"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("collapses whitespace runs including newlines", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a b c", sintagrab.Normalize("  a \n\t b \r\n  c  "))
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", sintagrab.Normalize("   \n  "))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"  Deep   Learning \n for X ",
			"already normalized",
			"",
			"\t\t",
		}
		for _, in := range inputs {
			once := sintagrab.Normalize(in)
			assert.Equal(t, once, sintagrab.Normalize(once))
		}
	})
}
