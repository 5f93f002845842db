// Package model defines the season data the site is generated from.
//
// # Hierarchy
//
// The remote API serves a YearIndex, and for each year a YearData made of
// Events (Grands Prix), each split into Days that list Videos:
//
//	YearIndex -> YearData -> Event -> Day -> Video
//
// # Derived views
//
// Values are not mutated after decoding. Every derived view (flattening,
// grouping, filtering, URL rewriting) is a method that recomputes its result
// on each call:
//
//	event.AllVideos()            // every video, day order then list order
//	event.VideosByChampionship() // grouped by first occurrence of each class
//	video.SpoilerFreeURL()       // ".../videos/x" -> ".../videos/spoiler+free/x"
//
// Link is the breadcrumb type shared with the page package.
package model
