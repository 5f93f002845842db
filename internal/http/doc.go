// Package http provides the HTTP client used to talk to the MotoGP video API.
//
// The Client in this package handles:
//   - User-Agent and Accept headers
//   - Timeout handling
//   - Rejecting non-2xx responses with a *StatusError
//
// # Basic Usage
//
//	client := http.NewClient("motogp-nospoiler", 30*time.Second)
//
//	body, err := client.Get(ctx, "https://www.motogp.com/en/motogpapp/video/nospoiler/2020")
//	var status *http.StatusError
//	if errors.As(err, &status) {
//	    fmt.Println("server answered", status.StatusCode)
//	}
package http
