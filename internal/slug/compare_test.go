package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JamesDimonaco/timezone-map/internal/domain"
	"github.com/JamesDimonaco/timezone-map/internal/slug"
)

func TestParseCompareParam(t *testing.T) {
	c, _ := newCodec(t)

	set := c.ParseCompareParam("London:Alice,tokyo, São Paulo : Bob ,Atlantis,new-york")

	slots := set.Slots()
	require.Len(t, slots, 4)
	assert.Equal(t, "London", slots[0].City.Name)
	assert.Equal(t, "Alice", slots[0].Label)
	assert.Equal(t, "Tokyo", slots[1].City.Name)
	assert.Empty(t, slots[1].Label)
	assert.Equal(t, "São Paulo", slots[2].City.Name)
	assert.Equal(t, "Bob", slots[2].Label)
	assert.Equal(t, "New York", slots[3].City.Name)
}

func TestParseCompareParam_CapsAtFive(t *testing.T) {
	c, _ := newCodec(t)

	set := c.ParseCompareParam("London,Tokyo,Paris,Berlin,Sydney,Dubai,Chicago")

	assert.Equal(t, domain.MaxCompareSlots, set.Len())
	assert.Equal(t, "Sydney", set.Slots()[4].City.Name)
}

func TestParseCompareParam_Empty(t *testing.T) {
	c, _ := newCodec(t)

	assert.Zero(t, c.ParseCompareParam("").Len())
	assert.Zero(t, c.ParseCompareParam(",,,").Len())
}

func TestFormatCompareParam_RoundTrip(t *testing.T) {
	c, _ := newCodec(t)
	in := "New York:Ana,London,Tokyo:Kenji"

	set := c.ParseCompareParam(in)

	assert.Equal(t, in, slug.FormatCompareParam(set))
	assert.Equal(t, set.Slots(), c.ParseCompareParam(slug.FormatCompareParam(set)).Slots())
}
