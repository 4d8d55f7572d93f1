package crawl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sintagrab"
	"sintagrab/crawl"
)

func TestNormalizeProfileURL(t *testing.T) {
	t.Parallel()

	t.Run("forces the garuda view", func(t *testing.T) {
		t.Parallel()

		got, err := crawl.NormalizeProfileURL("https://sinta.example.org/authors/profile/12345?view=documents")

		require.NoError(t, err)
		assert.Equal(t, "https://sinta.example.org/authors/profile/12345?view=garuda", got)
	})

	t.Run("strips any page parameter", func(t *testing.T) {
		t.Parallel()

		got, err := crawl.NormalizeProfileURL("https://sinta.example.org/authors/profile/12345?view=garuda&page=7")

		require.NoError(t, err)
		assert.Equal(t, "https://sinta.example.org/authors/profile/12345?view=garuda", got)
	})

	t.Run("keeps unrelated parameters", func(t *testing.T) {
		t.Parallel()

		got, err := crawl.NormalizeProfileURL("https://sinta.example.org/authors/profile/12345?affil=9")

		require.NoError(t, err)
		assert.Equal(t, "https://sinta.example.org/authors/profile/12345?affil=9&view=garuda", got)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		got, err := crawl.NormalizeProfileURL("  https://sinta.example.org/authors/profile/12345 ")

		require.NoError(t, err)
		assert.Equal(t, "https://sinta.example.org/authors/profile/12345?view=garuda", got)
	})

	t.Run("rejects URLs without scheme or host", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"", "not a url", "/authors/profile/12345"} {
			_, err := crawl.NormalizeProfileURL(raw)
			require.Error(t, err, "input %q", raw)
			assert.Equal(t, sintagrab.EINVALID, sintagrab.ErrorCode(err))
		}
	})
}

func TestPageURL(t *testing.T) {
	t.Parallel()

	base := "https://sinta.example.org/authors/profile/12345?view=garuda"

	t.Run("page 1 omits the page parameter", func(t *testing.T) {
		t.Parallel()

		got, err := crawl.PageURL(base, 1)

		require.NoError(t, err)
		assert.Equal(t, base, got)
	})

	t.Run("later pages carry the literal page number", func(t *testing.T) {
		t.Parallel()

		got, err := crawl.PageURL(base, 3)

		require.NoError(t, err)
		assert.Equal(t, "https://sinta.example.org/authors/profile/12345?page=3&view=garuda", got)
	})

	t.Run("re-forces the garuda view", func(t *testing.T) {
		t.Parallel()

		got, err := crawl.PageURL("https://sinta.example.org/authors/profile/12345", 2)

		require.NoError(t, err)
		assert.Equal(t, "https://sinta.example.org/authors/profile/12345?page=2&view=garuda", got)
	})
}
