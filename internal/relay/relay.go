package relay

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Relay is one intermediary endpoint that forwards a request to the
// upstream provider. Each relay has its own URL wrapping convention and
// its own response unwrapping rule; any relay may be swapped without
// changing the query-service contract.
type Relay struct {
	Name string

	// Wrap builds the relayed URL for a target provider URL.
	Wrap func(target string) string

	// Unwrap extracts the provider payload from the relay's response
	// body. For passthrough relays this is the body itself.
	Unwrap func(body []byte) (json.RawMessage, error)
}

// Passthrough returns a relay that prepends prefix to the raw target
// URL and returns the response body unchanged.
func Passthrough(name, prefix string) Relay {
	return Relay{
		Name: name,
		Wrap: func(target string) string {
			return prefix + target
		},
		Unwrap: func(body []byte) (json.RawMessage, error) {
			return json.RawMessage(body), nil
		},
	}
}

// envelope is the wrapper some relays put around the payload: the
// provider response is carried as one JSON-encoded string.
type envelope struct {
	Contents string `json:"contents"`
}

// Enveloped returns a relay that prepends prefix to the query-escaped
// target URL and unwraps the {"contents": "<json>"} envelope, decoding
// one level of JSON string to reach the payload.
func Enveloped(name, prefix string) Relay {
	return Relay{
		Name: name,
		Wrap: func(target string) string {
			return prefix + url.QueryEscape(target)
		},
		Unwrap: func(body []byte) (json.RawMessage, error) {
			var env envelope
			if err := json.Unmarshal(body, &env); err != nil {
				return nil, fmt.Errorf("decode envelope: %w", err)
			}
			if env.Contents == "" {
				return nil, fmt.Errorf("envelope has no contents")
			}
			return json.RawMessage(env.Contents), nil
		},
	}
}

// DefaultRelays is the ordered fallback chain used in production.
// Order matters: the first relay to return a structurally valid payload
// wins and no further relays are tried.
func DefaultRelays() []Relay {
	return []Relay{
		Passthrough("corsproxy", "https://corsproxy.io/?"),
		Enveloped("allorigins", "https://api.allorigins.win/get?url="),
		Passthrough("cors-anywhere", "https://cors-anywhere.herokuapp.com/"),
	}
}
