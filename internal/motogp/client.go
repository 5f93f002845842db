package motogp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/handiism/motogp-nospoiler/internal/http"
	"github.com/handiism/motogp-nospoiler/internal/model"
	"github.com/handiism/motogp-nospoiler/internal/motogp/dto"
)

const (
	// DefaultBaseURL is the MotoGP app video API root.
	DefaultBaseURL = "https://www.motogp.com/en/motogpapp/video"

	// DefaultIndexID is the season requested to discover the list of
	// available seasons. Any season payload carries "available_sids".
	DefaultIndexID = "2020"
)

// ErrMissingField marks a payload that decoded but lacks a required key.
var ErrMissingField = errors.New("missing required field")

// FetchError is returned when the API could not be reached or answered with
// a non-2xx status.
type FetchError struct {
	// Resource is "index" or "year <id>".
	Resource string
	URL      string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError is returned when a response body is not valid JSON or does not
// carry the fields the generator needs.
type ParseError struct {
	Resource string
	URL      string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Resource, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Client fetches season data from the nospoiler endpoint.
//
// Every call issues exactly one request. Nothing is cached and nothing is
// retried.
//
// Example usage:
//
//	client := NewClient(http.NewClient("", 0), DefaultBaseURL, DefaultIndexID, nil)
//
//	years, err := client.FetchIndex(ctx)
//	if err != nil {
//	    return err
//	}
//	for _, id := range years {
//	    year, err := client.FetchYear(ctx, id)
//	    ...
//	}
type Client struct {
	httpClient *http.Client
	baseURL    string
	indexID    string
	logger     *log.Logger
}

// NewClient creates a Client. Empty baseURL and indexID fall back to the
// defaults; logger may be nil to disable request logging.
func NewClient(httpClient *http.Client, baseURL, indexID string, logger *log.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if indexID == "" {
		indexID = DefaultIndexID
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		indexID:    indexID,
		logger:     logger,
	}
}

// EndpointURL returns the nospoiler URL for a season id.
func (c *Client) EndpointURL(id string) string {
	return fmt.Sprintf("%s/nospoiler/%s", c.baseURL, id)
}

// FetchIndex returns the list of seasons the API serves.
//
// Returns a *FetchError on transport failure and a *ParseError when the body
// is not JSON or has no "available_sids" array.
func (c *Client) FetchIndex(ctx context.Context) (model.YearIndex, error) {
	const resource = "index"
	url := c.EndpointURL(c.indexID)

	body, err := c.fetch(ctx, resource, url)
	if err != nil {
		return nil, err
	}

	var payload dto.JSONIndex
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &ParseError{Resource: resource, URL: url, Err: err}
	}
	if payload.AvailableSids == nil {
		return nil, &ParseError{Resource: resource, URL: url, Err: fmt.Errorf("%w: available_sids", ErrMissingField)}
	}

	return payload.ToYearIndex(), nil
}

// FetchYear returns the events of one season.
//
// The payload's "current_sid" must echo id; a missing or different value is
// reported as a *ParseError since the season title names the output files.
func (c *Client) FetchYear(ctx context.Context, id string) (*model.YearData, error) {
	resource := "year " + id
	url := c.EndpointURL(id)

	body, err := c.fetch(ctx, resource, url)
	if err != nil {
		return nil, err
	}

	var payload dto.JSONYear
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &ParseError{Resource: resource, URL: url, Err: err}
	}
	if payload.CurrentSid == "" {
		return nil, &ParseError{Resource: resource, URL: url, Err: fmt.Errorf("%w: current_sid", ErrMissingField)}
	}
	if payload.CurrentSid != id {
		return nil, &ParseError{Resource: resource, URL: url, Err: fmt.Errorf("current_sid %q does not match requested season", payload.CurrentSid)}
	}

	return payload.ToYearData(), nil
}

func (c *Client) fetch(ctx context.Context, resource, url string) ([]byte, error) {
	if c.logger != nil {
		c.logger.Debug("requesting", "resource", resource, "url", url)
	}

	body, err := c.httpClient.Get(ctx, url)
	if err != nil {
		return nil, &FetchError{Resource: resource, URL: url, Err: err}
	}

	if c.logger != nil {
		c.logger.Debug("received", "resource", resource, "bytes", len(body))
	}
	return body, nil
}
