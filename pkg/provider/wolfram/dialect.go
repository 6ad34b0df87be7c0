package wolfram

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rhuss/mathsolver/pkg/provider"
)

type dialect struct{}

// BuildRequest sends the raw question; the appid travels as a query
// parameter because the API accepts no other form of authentication.
func (dialect) BuildRequest(ctx context.Context, baseURL, apiKey, question string) (*http.Request, error) {
	q := url.Values{}
	q.Set("appid", apiKey)
	q.Set("i", question)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/v1/result?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/plain")
	return req, nil
}

// IsOK accepts exactly 200.
func (dialect) IsOK(status int) bool {
	return status == http.StatusOK
}

// Extract returns the body verbatim. Blank bodies are caught by the client.
func (dialect) Extract(_ string, body []byte) provider.Result {
	return provider.Success(string(body))
}
