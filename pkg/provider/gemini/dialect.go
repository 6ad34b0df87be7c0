package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rhuss/mathsolver/pkg/provider"
	"github.com/rhuss/mathsolver/pkg/provider/httpprovider"
)

// promptTemplate frames the question for the generative model.
const promptTemplate = "Solve this math problem step-by-step: %s"

// dialect adapts httpprovider.Client to the generateContent API.
type dialect struct {
	model string
}

func (d dialect) BuildRequest(ctx context.Context, baseURL, apiKey, question string) (*http.Request, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: fmt.Sprintf(promptTemplate, question)}},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", baseURL, url.PathEscape(d.model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", apiKey)
	return req, nil
}

// IsOK accepts any 2xx status.
func (d dialect) IsOK(status int) bool {
	return status >= 200 && status < 300
}

// Extract reads candidates[0].content.parts[0].text.
func (d dialect) Extract(_ string, body []byte) provider.Result {
	var resp generateResponse
	if res, ok := httpprovider.Decode(body, &resp); !ok {
		return res
	}

	if len(resp.Candidates) == 0 {
		return provider.EmptyResponse("no candidates")
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == "" {
		return provider.EmptyResponse("first candidate has no text (finish reason " + resp.Candidates[0].FinishReason + ")")
	}

	return provider.Success(parts[0].Text)
}
