package huggingface

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

// chatTemplate is the Llama 3 single-turn user prompt.
const chatTemplate = "<|begin_of_text|><|start_header_id|>user<|end_header_id|>\n\n" +
	"Solve this math problem step-by-step: %s<|eot_id|>" +
	"<|start_header_id|>assistant<|end_header_id|>\n\n"

type dialect struct {
	model        string
	maxNewTokens int
}

func buildPrompt(question string) string {
	return fmt.Sprintf(chatTemplate, question)
}

func (d dialect) BuildRequest(ctx context.Context, baseURL, apiKey, question string) (*http.Request, error) {
	body, err := json.Marshal(generationRequest{
		Inputs: buildPrompt(question),
		Parameters: generationParameters{
			MaxNewTokens:   d.maxNewTokens,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	// Model ids contain a slash that is part of the path.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/models/"+d.model, bytes.NewReader(body))
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

// Extract reads [0].generated_text. The API ignores return_full_text for
// some models, so an echoed prompt is removed before trimming.
func (d dialect) Extract(question string, body []byte) provider.Result {
	// A model that is still loading answers 200 with an error object.
	var gens []generation
	if res, ok := httpprovider.Decode(body, &gens); !ok {
		return res
	}
	if len(gens) == 0 {
		return provider.EmptyResponse("no generations")
	}
	return provider.Success(cleanGeneration(gens[0].GeneratedText, buildPrompt(question)))
}

// cleanGeneration strips prompt from text when echoed and trims whitespace.
func cleanGeneration(text, prompt string) string {
	if prompt != "" {
		text = strings.Replace(text, prompt, "", 1)
	}
	return strings.TrimSpace(text)
}
