package shopinsight

import "context"

// Fetcher retrieves page bodies with anonymous GET requests.
// A Fetcher owns one HTTP session and is meant to serve a single scrape.
type Fetcher interface {
	// Fetch returns the body of url. Non-2xx responses are errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases the session's idle connections.
	Close() error
}
