package wolfram

import "time"

// DefaultBaseURL is the public WolframAlpha API root.
const DefaultBaseURL = "http://api.wolframalpha.com"

// DefaultLabel heads every WolframAlpha answer.
const DefaultLabel = "WolframAlpha Solution"

// Config holds configuration for the WolframAlpha provider.
type Config struct {
	// Name overrides the provider identifier. Defaults to "wolframalpha".
	Name string

	// BaseURL is the API root. Defaults to DefaultBaseURL.
	BaseURL string

	// AppID is the WolframAlpha application id. Empty means not configured.
	AppID string

	// Label prefixes answers. Defaults to DefaultLabel; set NoLabel to
	// return the bare answer.
	Label   string
	NoLabel bool

	// Timeout for each request. Defaults to 60s.
	Timeout time.Duration
}
