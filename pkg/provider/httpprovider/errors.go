package httpprovider

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/rhuss/mathsolver/pkg/provider"
)

// maxSnippetBytes bounds how much of an error body is kept for diagnostics.
const maxSnippetBytes = 4096

// ReadErrorSnippet reads a bounded prefix of an error response body for
// logging. When the body is a JSON error envelope ({"error": "..."} or
// {"error": {"message": "..."}}) the message is returned; otherwise the
// trimmed raw text.
func ReadErrorSnippet(body io.Reader) string {
	if body == nil {
		return ""
	}

	data, err := io.ReadAll(io.LimitReader(body, maxSnippetBytes))
	if err != nil || len(data) == 0 {
		return ""
	}

	if msg := ErrorMessage(data); msg != "" {
		return msg
	}
	return strings.TrimSpace(string(data))
}

// ErrorMessage returns the message of a JSON error envelope, or "" when the
// data is not one. Both the flat string form and the nested object form
// with a "message" field are recognised.
func ErrorMessage(data []byte) string {
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil || len(envelope.Error) == 0 || string(envelope.Error) == "null" {
		return ""
	}

	var flat string
	if err := json.Unmarshal(envelope.Error, &flat); err == nil {
		return flat
	}

	var nested struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	}
	if err := json.Unmarshal(envelope.Error, &nested); err == nil {
		if nested.Message != "" {
			return nested.Message
		}
		if nested.Status != "" {
			return nested.Status
		}
	}

	return strings.TrimSpace(string(envelope.Error))
}

// Decode unmarshals a success body into v. A body that is not JSON or
// carries an error envelope is a malformed payload; valid JSON of another
// shape is treated as an empty response. ok reports whether v was filled.
func Decode(body []byte, v any) (res provider.Result, ok bool) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return provider.MalformedPayload("decoding response: " + err.Error()), false
	}
	if msg := ErrorMessage(body); msg != "" {
		return provider.MalformedPayload("in-body error: " + msg), false
	}
	if err := json.Unmarshal(body, v); err != nil {
		return provider.EmptyResponse("unexpected response shape: " + err.Error()), false
	}
	return provider.Result{}, true
}
