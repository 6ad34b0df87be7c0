package httpprovider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhuss/mathsolver/pkg/provider"
)

// plainDialect sends GET {base}/answer?key=... and returns the raw body.
type plainDialect struct {
	okStatus int
}

func (d plainDialect) BuildRequest(ctx context.Context, baseURL, apiKey, question string) (*http.Request, error) {
	return http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/answer?key="+apiKey+"&q="+question, nil)
}

func (d plainDialect) IsOK(status int) bool {
	return status == d.okStatus
}

func (d plainDialect) Extract(_ string, body []byte) provider.Result {
	if msg := ErrorMessage(body); msg != "" {
		return provider.MalformedPayload(msg)
	}
	return provider.Success(string(body))
}

func newCountingServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestAttempt_NotConfiguredSendsNothing(t *testing.T) {
	srv, calls := newCountingServer(t, http.StatusOK, "42")

	c := New(Config{Name: "plain", BaseURL: srv.URL}, plainDialect{okStatus: 200})
	res := c.Attempt(context.Background(), "6*7")

	require.False(t, res.OK())
	assert.Equal(t, provider.KindNotConfigured, res.Failure.Kind)
	assert.Zero(t, calls.Load(), "unconfigured provider must not issue a request")
	assert.False(t, c.Configured())
}

func TestAttempt_Success(t *testing.T) {
	srv, calls := newCountingServer(t, http.StatusOK, "42")

	c := New(Config{Name: "plain", BaseURL: srv.URL + "/", APIKey: "k"}, plainDialect{okStatus: 200})
	res := c.Attempt(context.Background(), "6*7")

	require.True(t, res.OK())
	assert.Equal(t, "42", res.Text)
	assert.Equal(t, int64(1), calls.Load())
	assert.Equal(t, "plain", c.Name())
}

func TestAttempt_LabelPrefix(t *testing.T) {
	srv, _ := newCountingServer(t, http.StatusOK, "x = 2")

	c := New(Config{Name: "plain", BaseURL: srv.URL, APIKey: "k", Label: "Plain Solution"}, plainDialect{okStatus: 200})
	res := c.Attempt(context.Background(), "2x=4")

	require.True(t, res.OK())
	assert.Equal(t, "### Plain Solution\nx = 2", res.Text)
}

func TestAttempt_NonOKStatus(t *testing.T) {
	srv, _ := newCountingServer(t, http.StatusTooManyRequests, `{"error":{"message":"slow down"}}`)

	c := New(Config{Name: "plain", BaseURL: srv.URL, APIKey: "k"}, plainDialect{okStatus: 200})
	res := c.Attempt(context.Background(), "1+1")

	require.False(t, res.OK())
	assert.Equal(t, provider.KindNonOKStatus, res.Failure.Kind)
	assert.Equal(t, http.StatusTooManyRequests, res.Failure.StatusCode)
	assert.Equal(t, "slow down", res.Failure.Detail)
}

func TestAttempt_OKPredicateIsExact(t *testing.T) {
	// 201 is a 2xx status but not this dialect's success status.
	srv, _ := newCountingServer(t, http.StatusCreated, "42")

	c := New(Config{Name: "plain", BaseURL: srv.URL, APIKey: "k"}, plainDialect{okStatus: 200})
	res := c.Attempt(context.Background(), "1+1")

	require.False(t, res.OK())
	assert.Equal(t, provider.KindNonOKStatus, res.Failure.Kind)
	assert.Equal(t, http.StatusCreated, res.Failure.StatusCode)
}

func TestAttempt_InBodyErrorIsMalformed(t *testing.T) {
	srv, _ := newCountingServer(t, http.StatusOK, `{"error":"quota exceeded"}`)

	c := New(Config{Name: "plain", BaseURL: srv.URL, APIKey: "k"}, plainDialect{okStatus: 200})
	res := c.Attempt(context.Background(), "1+1")

	require.False(t, res.OK())
	assert.Equal(t, provider.KindMalformedPayload, res.Failure.Kind)
	assert.Equal(t, "quota exceeded", res.Failure.Detail)
}

func TestAttempt_BlankTextIsEmptyResponse(t *testing.T) {
	srv, _ := newCountingServer(t, http.StatusOK, "   \n")

	c := New(Config{Name: "plain", BaseURL: srv.URL, APIKey: "k"}, plainDialect{okStatus: 200})
	res := c.Attempt(context.Background(), "1+1")

	require.False(t, res.OK())
	assert.Equal(t, provider.KindEmptyResponse, res.Failure.Kind)
}

func TestAttempt_TransportErrorRedactsKey(t *testing.T) {
	srv, _ := newCountingServer(t, http.StatusOK, "42")
	url := srv.URL
	srv.Close()

	c := New(Config{Name: "plain", BaseURL: url, APIKey: "secret-key"}, plainDialect{okStatus: 200})
	res := c.Attempt(context.Background(), "1+1")

	require.False(t, res.OK())
	assert.Equal(t, provider.KindTransport, res.Failure.Kind)
	assert.NotContains(t, res.Failure.Detail, "secret-key")
	assert.Contains(t, res.Failure.Detail, "REDACTED")
}

func TestAttempt_TimeoutIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	c := New(Config{Name: "plain", BaseURL: srv.URL, APIKey: "k", Timeout: 50 * time.Millisecond}, plainDialect{okStatus: 200})
	res := c.Attempt(context.Background(), "1+1")

	require.False(t, res.OK())
	assert.Equal(t, provider.KindTransport, res.Failure.Kind)
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"flat string", `{"error":"quota exceeded"}`, "quota exceeded"},
		{"nested message", `{"error":{"code":429,"message":"Resource exhausted","status":"RESOURCE_EXHAUSTED"}}`, "Resource exhausted"},
		{"nested status only", `{"error":{"status":"UNAVAILABLE"}}`, "UNAVAILABLE"},
		{"null error", `{"error":null}`, ""},
		{"no error field", `{"candidates":[]}`, ""},
		{"not json", `x = 2`, ""},
		{"array body", `[{"generated_text":"2"}]`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorMessage([]byte(tt.body)))
		})
	}
}

func TestAttempt_OversizedBodyIsMalformed(t *testing.T) {
	srv, _ := newCountingServer(t, http.StatusOK, strings.Repeat("7", maxResponseBytes+1))

	c := New(Config{Name: "plain", BaseURL: srv.URL, APIKey: "k"}, plainDialect{okStatus: 200})
	res := c.Attempt(context.Background(), "6*7")

	require.False(t, res.OK())
	assert.Equal(t, provider.KindMalformedPayload, res.Failure.Kind)
	assert.Contains(t, res.Failure.Detail, "exceeds")
}

func TestAttempt_BodyAtLimitIsRead(t *testing.T) {
	srv, _ := newCountingServer(t, http.StatusOK, strings.Repeat("7", maxResponseBytes))

	c := New(Config{Name: "plain", BaseURL: srv.URL, APIKey: "k"}, plainDialect{okStatus: 200})
	res := c.Attempt(context.Background(), "6*7")

	require.True(t, res.OK())
	assert.Len(t, res.Text, maxResponseBytes)
}

func TestDecode(t *testing.T) {
	type shape struct {
		Items []string `json:"items"`
	}
	tests := []struct {
		name     string
		body     string
		wantOK   bool
		wantKind provider.FailureKind
	}{
		{"fits", `{"items":["a"]}`, true, ""},
		{"not json", `<html>`, false, provider.KindMalformedPayload},
		{"error envelope", `{"error":"model is loading"}`, false, provider.KindMalformedPayload},
		{"wrong shape", `{"items":{}}`, false, provider.KindEmptyResponse},
		{"array for object", `[1,2]`, false, provider.KindEmptyResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v shape
			res, ok := Decode([]byte(tt.body), &v)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				require.NotNil(t, res.Failure)
				assert.Equal(t, tt.wantKind, res.Failure.Kind)
			}
		})
	}
}
