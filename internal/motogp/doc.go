// Package motogp fetches season data from the MotoGP app "nospoiler" API.
//
// The API exposes one endpoint per season:
//
//	GET <base>/nospoiler/<season>
//
// Every season payload also lists the seasons that exist ("available_sids"),
// so the index is obtained by requesting a fixed season.
//
// # Usage
//
//	client := motogp.NewClient(http.NewClient("", 0), motogp.DefaultBaseURL, motogp.DefaultIndexID, logger)
//
//	years, err := client.FetchIndex(ctx)
//	year, err := client.FetchYear(ctx, "2020")
//
// # Errors
//
// Transport problems (network, timeout, non-2xx) are reported as *FetchError,
// undecodable or incomplete bodies as *ParseError. Neither is retried.
//
// The JSON wire shapes and their conversion to package model live in the dto
// subpackage.
package motogp
