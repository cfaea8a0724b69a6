package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeCreative() CreativeDraft {
	return CreativeDraft{
		Format:         FormatSingle,
		Media:          []MediaItem{{ID: "m1", Kind: MediaImage, Content: "data:image/png;base64,AAAA"}},
		Headline:       "Summer is here",
		Description:    "Fresh styles for warm days",
		CallToAction:   "shop-now",
		DestinationURL: "https://shop.example.com/summer",
	}
}

func TestCreativeIsComplete(t *testing.T) {
	assert.True(t, completeCreative().IsComplete())

	mutations := map[string]func(*CreativeDraft){
		"media":           func(d *CreativeDraft) { d.Media = nil },
		"headline":        func(d *CreativeDraft) { d.Headline = " " },
		"description":     func(d *CreativeDraft) { d.Description = "" },
		"call_to_action":  func(d *CreativeDraft) { d.CallToAction = "" },
		"destination_url": func(d *CreativeDraft) { d.DestinationURL = "" },
	}
	for field, mutate := range mutations {
		d := completeCreative()
		mutate(&d)
		assert.False(t, d.IsComplete(), field)
		assert.Contains(t, fieldsOf(t, d.Validate()), field)
	}

	d := completeCreative()
	d.DisplayURL = ""
	assert.True(t, d.IsComplete(), "display url is optional")
}

func TestCreativeLimits(t *testing.T) {
	d := completeCreative()
	d.Headline = strings.Repeat("é", MaxHeadlineLength)
	d.Description = strings.Repeat("x", MaxDescriptionLength)
	d.DestinationURL = "shop.example.com"
	require.NoError(t, d.Validate())

	d.Headline += "!"
	d.Description += "!"
	d.CallToAction = "buy-everything"
	assert.ElementsMatch(t, []string{"headline", "description", "call_to_action"}, fieldsOf(t, d.CheckLimits()))
}

func TestCreativeMediaByFormat(t *testing.T) {
	d := NewCreativeDraft()
	d.AddMedia(MediaItem{ID: "a"})
	d.AddMedia(MediaItem{ID: "b"})
	require.Len(t, d.Media, 1)
	assert.Equal(t, "b", d.Media[0].ID)

	d.SetFormat(FormatCarousel)
	assert.Empty(t, d.Media)
	d.AddMedia(MediaItem{ID: "a"})
	d.AddMedia(MediaItem{ID: "b"})
	d.AddMedia(MediaItem{ID: "c"})
	assert.Len(t, d.Media, 3)

	assert.True(t, d.RemoveMedia("b"))
	assert.False(t, d.RemoveMedia("b"))
	assert.Equal(t, []MediaItem{{ID: "a"}, {ID: "c"}}, d.Media)

	d.SetFormat(FormatVideo)
	assert.Empty(t, d.Media)
}
