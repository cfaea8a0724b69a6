package domain

import (
	"net/url"
	"slices"
	"strings"
	"unicode/utf8"
)

// CreativeFormat is the layout of an ad creative.
type CreativeFormat string

const (
	FormatSingle   CreativeFormat = "single"
	FormatCarousel CreativeFormat = "carousel"
	FormatVideo    CreativeFormat = "video"
)

// Valid reports whether f is a known format.
func (f CreativeFormat) Valid() bool {
	switch f {
	case FormatSingle, FormatCarousel, FormatVideo:
		return true
	}
	return false
}

// MediaKind is the type of an uploaded media item.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Copy limits of a creative, in characters.
const (
	MaxHeadlineLength    = 40
	MaxDescriptionLength = 125
)

// CallsToAction lists the selectable call-to-action buttons.
var CallsToAction = []string{
	"learn-more",
	"shop-now",
	"sign-up",
	"download",
	"get-quote",
	"contact-us",
	"book-now",
	"subscribe",
}

// MediaItem is one uploaded image or video. Content is an opaque reference
// to the asset, typically a data or storage URL.
type MediaItem struct {
	ID      string    `json:"id"`
	Kind    MediaKind `json:"kind"`
	Content string    `json:"content"`
}

// CreativeDraft is the creative studio's in-progress ad.
type CreativeDraft struct {
	Format         CreativeFormat `json:"format"`
	Media          []MediaItem    `json:"media"`
	Headline       string         `json:"headline"`
	Description    string         `json:"description"`
	CallToAction   string         `json:"call_to_action"`
	DestinationURL string         `json:"destination_url"`
	DisplayURL     string         `json:"display_url,omitempty"`
}

// NewCreativeDraft returns an empty single-image draft.
func NewCreativeDraft() CreativeDraft {
	return CreativeDraft{Format: FormatSingle}
}

// SetFormat switches the layout and drops all media.
func (d *CreativeDraft) SetFormat(f CreativeFormat) {
	d.Format = f
	d.Media = nil
}

// AddMedia appends item for carousels and replaces the only item for the
// single and video formats.
func (d *CreativeDraft) AddMedia(item MediaItem) {
	if d.Format == FormatCarousel {
		d.Media = append(d.Media, item)
		return
	}
	d.Media = []MediaItem{item}
}

// RemoveMedia drops the item with the given id and reports whether it was
// present.
func (d *CreativeDraft) RemoveMedia(id string) bool {
	i := slices.IndexFunc(d.Media, func(m MediaItem) bool { return m.ID == id })
	if i < 0 {
		return false
	}
	d.Media = slices.Delete(d.Media, i, i+1)
	return true
}

// IsComplete reports whether the draft may leave the creative studio.
func (d CreativeDraft) IsComplete() bool {
	return len(d.Media) > 0 &&
		strings.TrimSpace(d.Headline) != "" &&
		strings.TrimSpace(d.Description) != "" &&
		d.CallToAction != "" &&
		strings.TrimSpace(d.DestinationURL) != ""
}

// CheckLimits validates format, copy lengths and option values without
// requiring the draft to be complete.
func (d CreativeDraft) CheckLimits() error {
	var v ValidationError
	d.checkLimits(&v)
	return v.Err()
}

// Validate reports every rule an incomplete or malformed draft breaks.
func (d CreativeDraft) Validate() error {
	var v ValidationError
	if len(d.Media) == 0 {
		v.Add("media", "at least one media item is required")
	}
	if strings.TrimSpace(d.Headline) == "" {
		v.Add("headline", "is required")
	}
	if strings.TrimSpace(d.Description) == "" {
		v.Add("description", "is required")
	}
	if d.CallToAction == "" {
		v.Add("call_to_action", "is required")
	}
	if strings.TrimSpace(d.DestinationURL) == "" {
		v.Add("destination_url", "is required")
	}
	d.checkLimits(&v)
	return v.Err()
}

func (d CreativeDraft) checkLimits(v *ValidationError) {
	if !d.Format.Valid() {
		v.Add("format", "must be one of single, carousel, video")
	}
	if d.Format != FormatCarousel && len(d.Media) > 1 {
		v.Add("media", "only carousels may hold more than one item")
	}
	if utf8.RuneCountInString(d.Headline) > MaxHeadlineLength {
		v.Add("headline", "must be at most 40 characters")
	}
	if utf8.RuneCountInString(d.Description) > MaxDescriptionLength {
		v.Add("description", "must be at most 125 characters")
	}
	if d.CallToAction != "" && !slices.Contains(CallsToAction, d.CallToAction) {
		v.Add("call_to_action", "must be one of the supported buttons")
	}
	if u := strings.TrimSpace(d.DestinationURL); u != "" && !isWebURL(u) {
		v.Add("destination_url", "must be a web address")
	}
}

func isWebURL(raw string) bool {
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
