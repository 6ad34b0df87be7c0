package openaicompat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rhuss/mathsolver/pkg/provider"
	"github.com/rhuss/mathsolver/pkg/provider/httpprovider"
)

const promptTemplate = "Solve this math problem step-by-step: %s"

type dialect struct {
	model     string
	maxTokens int
}

func (d dialect) BuildRequest(ctx context.Context, baseURL, apiKey, question string) (*http.Request, error) {
	chatReq := ChatCompletionRequest{
		Model: d.model,
		Messages: []ChatMessage{
			{Role: "user", Content: fmt.Sprintf(promptTemplate, question)},
		},
	}
	if d.maxTokens > 0 {
		chatReq.MaxTokens = &d.maxTokens
	}

	body, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)
	return req, nil
}

// IsOK accepts any 2xx status.
func (d dialect) IsOK(status int) bool {
	return status >= 200 && status < 300
}

// Extract reads choices[0].message.content.
func (d dialect) Extract(_ string, body []byte) provider.Result {
	var resp ChatCompletionResponse
	if res, ok := httpprovider.Decode(body, &resp); !ok {
		return res
	}

	if len(resp.Choices) == 0 {
		return provider.EmptyResponse("no choices")
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return provider.EmptyResponse("first choice has no content (finish reason " + resp.Choices[0].FinishReason + ")")
	}
	return provider.Success(text)
}
