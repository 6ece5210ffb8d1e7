package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	c := Default()

	s, err := c.Get("manicure-classic")
	require.NoError(t, err)
	assert.Equal(t, 25, s.Price)
	assert.Equal(t, 30, s.Duration)

	_, err = c.Get("no-such-service")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListKeepsSeedOrder(t *testing.T) {
	c := Default()
	list := c.List()
	require.NotEmpty(t, list)
	assert.Equal(t, "manicure-classic", list[0].ID)
	assert.Len(t, list, len(defaultServices))
}

func TestLocalized(t *testing.T) {
	n := Name{EN: "Gel Nails", VI: "Móng Gel", DE: "Gel Nägel"}

	assert.Equal(t, "Móng Gel", n.Localized("vi"))
	assert.Equal(t, "Gel Nägel", n.Localized("de"))
	assert.Equal(t, "Gel Nails", n.Localized("en"))
	assert.Equal(t, "Gel Nails", n.Localized("fr"), "unknown locale falls back to English")

	partial := Name{EN: "Nail Repair"}
	assert.Equal(t, "Nail Repair", partial.Localized("de"), "missing translation falls back to English")
	assert.Equal(t, "Nail Repair", partial.Localized("vi"))
}

func TestSeedIsWellFormed(t *testing.T) {
	for _, s := range defaultServices {
		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.Name.EN)
		assert.GreaterOrEqual(t, s.Price, 0, s.ID)
		assert.Positive(t, s.Duration, s.ID)
	}
}
