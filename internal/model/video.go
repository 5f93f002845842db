package model

import "strings"

// HighlightsTag is the main tag the API assigns to highlight reels.
const HighlightsTag = "Highlights"

const (
	videosSegment           = "/videos/"
	spoilerFreeVideoSegment = "/videos/spoiler+free/"
)

// Video is a single video listed under an event day.
//
// URL is the canonical address on the upstream site. Pages link to
// SpoilerFreeURL instead, which opens the same video without result
// overlays.
type Video struct {
	// Title is the video title.
	Title string

	// URL is the canonical video URL.
	URL string

	// Championship is the racing class the video belongs to.
	Championship string

	// Tags holds every tag attached to the video.
	Tags []string

	// MainTag is the distinguished category tag ("Highlights", "Full session", ...).
	// Empty when the API omits it.
	MainTag string
}

// IsHighlights returns true if the video's main tag is exactly "Highlights".
func (v *Video) IsHighlights() bool {
	return v.MainTag == HighlightsTag
}

// SpoilerFreeURL returns the spoiler-free variant of the video's URL.
func (v *Video) SpoilerFreeURL() string {
	return SpoilerFreeURL(v.URL)
}

// SpoilerFreeURL rewrites the first "/videos/" path segment of rawURL to
// "/videos/spoiler+free/". Matching is case-sensitive and URLs without the
// segment are returned unchanged. A URL whose first "/videos/" segment is
// already followed by "spoiler+free/" is returned as is, so the rewrite is
// idempotent.
//
// Example:
//
//	SpoilerFreeURL("https://x.com/videos/abc") // "https://x.com/videos/spoiler+free/abc"
//	SpoilerFreeURL("https://x.com/other/abc")  // "https://x.com/other/abc"
func SpoilerFreeURL(rawURL string) string {
	idx := strings.Index(rawURL, videosSegment)
	if idx == -1 || strings.HasPrefix(rawURL[idx:], spoilerFreeVideoSegment) {
		return rawURL
	}
	return rawURL[:idx] + spoilerFreeVideoSegment + rawURL[idx+len(videosSegment):]
}

// Link is one breadcrumb: the display text and the output-relative href of
// an ancestor page.
type Link struct {
	Text string
	Href string
}
