package motogp

import (
	"context"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"slices"
	"testing"
	"time"

	"github.com/handiism/motogp-nospoiler/internal/http"
)

const seasonJSON = `{
	"current_sid": "2020",
	"available_sids": ["2021", "2020", "2019"],
	"events": [
		{
			"shortname": "qat",
			"title": "Qatar GP",
			"urlname": "qatar",
			"date_of_end": "2020-03-08",
			"gp_days": [
				{
					"title": "Sunday",
					"date": "8 March",
					"videos": [
						{
							"title": "Moto2 race",
							"url": "https://www.motogp.com/en/videos/2020/03/08/moto2-race",
							"champ_name": "Moto2",
							"tags": [{"tag": "Race"}, {"tag": "Moto2"}],
							"vtid_name": "Highlights"
						},
						{
							"title": "Paddock",
							"url": "https://www.motogp.com/en/news/paddock",
							"champ_name": "MotoGP",
							"tags": [],
							"vtid_name": null
						}
					]
				}
			]
		},
		{
			"shortname": "spa",
			"title": "Spanish GP",
			"urlname": "spain",
			"date_of_end": "not a date",
			"gp_days": []
		}
	]
}`

func newTestServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			stdhttp.Error(w, "boom", stdhttp.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestClient(server *httptest.Server) *Client {
	return NewClient(http.NewClient("test", 5*time.Second), server.URL+"/", "2020", nil)
}

func TestClient_FetchIndex(t *testing.T) {
	server := newTestServer(t, map[string]string{"/nospoiler/2020": seasonJSON})
	client := newTestClient(server)

	years, err := client.FetchIndex(context.Background())
	if err != nil {
		t.Fatalf("FetchIndex failed: %v", err)
	}

	want := []string{"2021", "2020", "2019"}
	if len(years) != len(want) {
		t.Fatalf("got %d years, want %d", len(years), len(want))
	}
	for i := range want {
		if years[i] != want[i] {
			t.Errorf("years[%d] = %q, want %q", i, years[i], want[i])
		}
	}
}

func TestClient_FetchYear(t *testing.T) {
	server := newTestServer(t, map[string]string{"/nospoiler/2020": seasonJSON})
	client := newTestClient(server)

	year, err := client.FetchYear(context.Background(), "2020")
	if err != nil {
		t.Fatalf("FetchYear failed: %v", err)
	}

	if year.Title != "2020" {
		t.Errorf("Title = %q, want 2020", year.Title)
	}
	if len(year.Events) != 2 {
		t.Fatalf("got %d events, want 2", len(year.Events))
	}

	qatar := year.Events[0]
	if qatar.ShortName != "qat" || qatar.Title != "Qatar GP" || qatar.URLName != "qatar" {
		t.Errorf("unexpected event: %+v", qatar)
	}
	if !qatar.HasEndDate() || qatar.EndDate.Day() != 8 {
		t.Errorf("EndDate = %v, want 2020-03-08", qatar.EndDate)
	}
	if len(qatar.Days) != 1 || qatar.Days[0].Date != "8 March" {
		t.Fatalf("unexpected days: %+v", qatar.Days)
	}

	videos := qatar.AllVideos()
	if len(videos) != 2 {
		t.Fatalf("got %d videos, want 2", len(videos))
	}
	if !videos[0].IsHighlights() {
		t.Error("first video should be highlights")
	}
	if !slices.Contains(videos[0].Tags, "Race") {
		t.Errorf("Tags = %v, want Race", videos[0].Tags)
	}
	if videos[1].IsHighlights() || videos[1].MainTag != "" {
		t.Errorf("null vtid_name should give an empty main tag, got %q", videos[1].MainTag)
	}
	if got := videos[0].SpoilerFreeURL(); got != "https://www.motogp.com/en/videos/spoiler+free/2020/03/08/moto2-race" {
		t.Errorf("SpoilerFreeURL() = %q", got)
	}

	spain := year.Events[1]
	if spain.HasEndDate() {
		t.Errorf("unparseable date_of_end should be zero, got %v", spain.EndDate)
	}
	if len(spain.AllVideos()) != 0 {
		t.Error("event without days should have no videos")
	}
}

func TestClient_Errors(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"/nospoiler/2020": `{"current_sid": "2020"`,
		"/nospoiler/2019": `{"events": []}`,
		"/nospoiler/2018": `{"current_sid": "2017", "events": []}`,
	})
	client := newTestClient(server)
	ctx := context.Background()

	tests := []struct {
		name      string
		call      func() error
		wantFetch bool
	}{
		{"index invalid json", func() error { _, err := client.FetchIndex(ctx); return err }, false},
		{"year invalid json", func() error { _, err := client.FetchYear(ctx, "2020"); return err }, false},
		{"year missing current_sid", func() error { _, err := client.FetchYear(ctx, "2019"); return err }, false},
		{"year mismatched current_sid", func() error { _, err := client.FetchYear(ctx, "2018"); return err }, false},
		{"year server error", func() error { _, err := client.FetchYear(ctx, "1999"); return err }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if err == nil {
				t.Fatal("expected error but got none")
			}

			var fetchErr *FetchError
			var parseErr *ParseError
			if tt.wantFetch {
				if !errors.As(err, &fetchErr) {
					t.Errorf("expected *FetchError, got %T: %v", err, err)
				}
				var statusErr *http.StatusError
				if !errors.As(err, &statusErr) {
					t.Errorf("expected wrapped *http.StatusError, got %v", err)
				}
			} else if !errors.As(err, &parseErr) {
				t.Errorf("expected *ParseError, got %T: %v", err, err)
			}
		})
	}
}

func TestClient_FetchIndexMissingField(t *testing.T) {
	server := newTestServer(t, map[string]string{"/nospoiler/2020": `{"current_sid": "2020", "events": []}`})
	client := newTestClient(server)

	_, err := client.FetchIndex(context.Background())
	if !errors.Is(err, ErrMissingField) {
		t.Errorf("expected ErrMissingField, got %v", err)
	}
}

func TestClient_FetchUnreachable(t *testing.T) {
	server := newTestServer(t, nil)
	client := newTestClient(server)
	server.Close()

	_, err := client.FetchIndex(context.Background())
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
	if fetchErr.Resource != "index" {
		t.Errorf("Resource = %q, want index", fetchErr.Resource)
	}
}
