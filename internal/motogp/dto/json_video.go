package dto

import "github.com/handiism/motogp-nospoiler/internal/model"

// JSONDay is one day of an event.
type JSONDay struct {
	Title  string      `json:"title"`
	Date   string      `json:"date"`
	Videos []JSONVideo `json:"videos"`
}

// ToDay converts JSONDay to a model.Day.
func (jd *JSONDay) ToDay() *model.Day {
	day := &model.Day{
		Title:  jd.Title,
		Date:   jd.Date,
		Videos: make([]*model.Video, 0, len(jd.Videos)),
	}
	for i := range jd.Videos {
		day.Videos = append(day.Videos, jd.Videos[i].ToVideo())
	}
	return day
}

// JSONVideo is a video entry.
type JSONVideo struct {
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	Championship string    `json:"champ_name"`
	Tags         []JSONTag `json:"tags"`
	MainTag      *string   `json:"vtid_name"`
}

// JSONTag wraps a single tag name.
type JSONTag struct {
	Tag string `json:"tag"`
}

// ToVideo converts JSONVideo to a model.Video.
func (jv *JSONVideo) ToVideo() *model.Video {
	video := &model.Video{
		Title:        jv.Title,
		URL:          jv.URL,
		Championship: jv.Championship,
		Tags:         make([]string, 0, len(jv.Tags)),
	}
	// A null main tag is the same as none.
	if jv.MainTag != nil {
		video.MainTag = *jv.MainTag
	}
	for _, t := range jv.Tags {
		video.Tags = append(video.Tags, t.Tag)
	}
	return video
}
