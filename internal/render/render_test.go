package render

import (
	"strings"
	"testing"
	"time"

	"github.com/handiism/motogp-nospoiler/internal/model"
	"github.com/handiism/motogp-nospoiler/internal/page"
)

func testSeason() (model.YearIndex, *model.YearData) {
	event := &model.Event{
		ShortName: "qat",
		Title:     "Qatar GP",
		EndDate:   time.Date(2020, 3, 8, 0, 0, 0, 0, time.UTC),
		Days: []*model.Day{
			{
				Title: "Sunday",
				Date:  "8 March",
				Videos: []*model.Video{
					{Title: "Race highlights", URL: "https://x.com/videos/race", Championship: "Moto2", MainTag: model.HighlightsTag},
					{Title: "Interview", URL: "https://x.com/news/interview", Championship: "MotoGP"},
				},
			},
		},
	}
	empty := &model.Event{ShortName: "spa", Title: "Spanish GP"}
	return model.YearIndex{"2021", "2020"}, &model.YearData{Title: "2020", Events: []*model.Event{event, empty}}
}

func TestRenderer_YearPage(t *testing.T) {
	r, err := New("/")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	years, season := testSeason()
	html, err := r.Render(page.BuildYearPage(years, season))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	wantContain := []string{
		"<title>2020 &gt; MotoGP Spoiler-Free List</title>",
		`href="/2021.html"`,
		`href="/2020.html" class="current"`,
		`href="/2020/qat.html"`,
		`href="/2020/spa.html"`,
		"8 March 2020",
	}
	for _, want := range wantContain {
		if !strings.Contains(html, want) {
			t.Errorf("year page missing %q", want)
		}
	}
}

func TestRenderer_EventPage(t *testing.T) {
	r, err := New("/site")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	years, season := testSeason()
	html, err := r.Render(page.BuildEventPage(years, season, season.Events[0]))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	wantContain := []string{
		"<title>2020 &gt; Qatar GP &gt; MotoGP Spoiler-Free List</title>",
		`<a href="/site/2020.html">2020</a>`,
		"<li>Qatar GP</li>",
		`href="https://x.com/videos/spoiler&#43;free/race"`,
		`href="https://x.com/news/interview"`,
		"<h3>Moto2</h3>",
		"<h3>MotoGP</h3>",
		`<span class="badge">Highlights</span>`,
		"<h3>Highlights</h3>",
		`<h4>Sunday <span class="date">8 March</span></h4>`,
	}
	for _, want := range wantContain {
		if !strings.Contains(html, want) {
			t.Errorf("event page missing %q", want)
		}
	}

	if strings.Index(html, "<h3>Moto2</h3>") > strings.Index(html, "<h3>MotoGP</h3>") {
		t.Error("championship groups should follow first occurrence order")
	}

	// The highlight is linked from the highlights section, its championship
	// group and its day. The interview only from its group and its day.
	if n := strings.Count(html, `href="https://x.com/videos/spoiler&#43;free/race"`); n != 3 {
		t.Errorf("highlight linked %d times, want 3", n)
	}
	if n := strings.Count(html, `href="https://x.com/news/interview"`); n != 2 {
		t.Errorf("interview linked %d times, want 2", n)
	}
	schedule := html[strings.Index(html, "<h3>Schedule</h3>"):]
	if !strings.Contains(schedule, `<a href="https://x.com/news/interview">Interview</a> <span class="championship">MotoGP</span>`) {
		t.Error("schedule should list each day's videos")
	}
}

func TestRenderer_EmptyEvent(t *testing.T) {
	r, err := New("")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	years, season := testSeason()
	html, err := r.Render(page.BuildEventPage(years, season, season.Events[1]))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(html, "No videos yet.") {
		t.Error("empty event should still render a page")
	}
}

func TestRenderer_UnknownKind(t *testing.T) {
	r, err := New("/")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := r.Render(page.ViewModel{Kind: page.Kind(42)}); err == nil {
		t.Error("expected error for unknown page kind")
	}
}
