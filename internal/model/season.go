package model

import "time"

// YearIndex is the ordered list of season identifiers (e.g. "2020") that the
// remote API currently serves.
//
// The order is the order of the upstream "available_sids" array and is used
// verbatim for the year navigation shown on every page.
type YearIndex []string

// Contains reports whether id is one of the indexed seasons.
func (yi YearIndex) Contains(id string) bool {
	for _, y := range yi {
		if y == id {
			return true
		}
	}
	return false
}

// YearData is one season's bundle of events.
//
// Title is the season identifier echoed back by the API and doubles as the
// file name of the season page ("<Title>.html").
type YearData struct {
	// Title is the season identifier, e.g. "2020".
	Title string

	// Events are the season's Grands Prix in API order.
	Events []*Event
}

// Event is a single Grand Prix weekend.
//
// Example:
//
//	for _, group := range event.VideosByChampionship() {
//	    fmt.Printf("%s (%d videos)\n", group.Name, len(group.Videos))
//	}
type Event struct {
	// ShortName is the URL-safe identifier used for the event page file name.
	ShortName string

	// Title is the display title, e.g. "Qatar GP".
	Title string

	// URLName is the slug the upstream site uses for the event.
	URLName string

	// EndDate is the last day of the event. Zero when the API omitted it or
	// sent a value that could not be parsed.
	EndDate time.Time

	// Days are the event days in API order.
	Days []*Day
}

// HasEndDate returns true if the event carries a usable end date.
func (e *Event) HasEndDate() bool {
	return !e.EndDate.IsZero()
}

// AllVideos flattens the videos of every day, in day order and then in
// within-day order. An event without days yields an empty slice.
func (e *Event) AllVideos() []*Video {
	videos := make([]*Video, 0)
	for _, day := range e.Days {
		videos = append(videos, day.Videos...)
	}
	return videos
}

// ChampionshipGroup is the set of an event's videos that belong to one
// championship (MotoGP, Moto2, ...).
type ChampionshipGroup struct {
	Name   string
	Videos []*Video
}

// VideosByChampionship partitions AllVideos by championship name.
//
// Groups are ordered by the first occurrence of each championship in the
// flattened video list, and videos keep their relative order inside a group.
// The result is computed on every call.
func (e *Event) VideosByChampionship() []ChampionshipGroup {
	groups := make([]ChampionshipGroup, 0)
	positions := make(map[string]int)

	for _, video := range e.AllVideos() {
		idx, ok := positions[video.Championship]
		if !ok {
			idx = len(groups)
			positions[video.Championship] = idx
			groups = append(groups, ChampionshipGroup{Name: video.Championship})
		}
		groups[idx].Videos = append(groups[idx].Videos, video)
	}

	return groups
}

// Highlights returns the event's highlight videos in AllVideos order.
func (e *Event) Highlights() []*Video {
	var highlights []*Video
	for _, video := range e.AllVideos() {
		if video.IsHighlights() {
			highlights = append(highlights, video)
		}
	}
	return highlights
}

// Day is one day of an event (e.g. "Friday", "Race day").
type Day struct {
	Title string

	// Date is carried exactly as the API sends it.
	Date string

	Videos []*Video
}
