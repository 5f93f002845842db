package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/handiism/motogp-nospoiler/internal/model"
)

// EndDate is a best-effort date for the "date_of_end" field.
//
// The API has sent several layouts over the years. Values that match none of
// them decode to the zero time instead of failing the whole season.
type EndDate struct {
	time.Time
}

var endDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// UnmarshalJSON accepts a string in any of endDateLayouts, an empty string or null.
func (ed *EndDate) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		// Not a string (e.g. a number): treat as absent.
		ed.Time = time.Time{}
		return nil
	}
	if s == nil || strings.TrimSpace(*s) == "" {
		ed.Time = time.Time{}
		return nil
	}

	for _, layout := range endDateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(*s)); err == nil {
			ed.Time = t
			return nil
		}
	}

	ed.Time = time.Time{}
	return nil
}

// JSONIndex is the payload listing the available seasons.
type JSONIndex struct {
	AvailableSids []string `json:"available_sids"`
}

// ToYearIndex converts JSONIndex to a model.YearIndex.
func (ji *JSONIndex) ToYearIndex() model.YearIndex {
	index := make(model.YearIndex, len(ji.AvailableSids))
	copy(index, ji.AvailableSids)
	return index
}

// JSONYear is one season's payload.
type JSONYear struct {
	CurrentSid string      `json:"current_sid"`
	Events     []JSONEvent `json:"events"`
}

// ToYearData converts JSONYear to a model.YearData.
func (jy *JSONYear) ToYearData() *model.YearData {
	year := &model.YearData{
		Title:  jy.CurrentSid,
		Events: make([]*model.Event, 0, len(jy.Events)),
	}
	for i := range jy.Events {
		year.Events = append(year.Events, jy.Events[i].ToEvent())
	}
	return year
}

// JSONEvent is a Grand Prix inside a season payload.
type JSONEvent struct {
	Days      []JSONDay `json:"gp_days"`
	ShortName string    `json:"shortname"`
	Title     string    `json:"title"`
	URLName   string    `json:"urlname"`
	EndDate   *EndDate  `json:"date_of_end"`
}

// ToEvent converts JSONEvent to a model.Event.
func (je *JSONEvent) ToEvent() *model.Event {
	event := &model.Event{
		ShortName: je.ShortName,
		Title:     je.Title,
		URLName:   je.URLName,
		Days:      make([]*model.Day, 0, len(je.Days)),
	}
	if je.EndDate != nil {
		event.EndDate = je.EndDate.Time
	}
	for i := range je.Days {
		event.Days = append(event.Days, je.Days[i].ToDay())
	}
	return event
}
