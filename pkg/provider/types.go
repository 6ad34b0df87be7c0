package provider

import "fmt"

// FailureKind classifies why a provider attempt did not produce an answer.
type FailureKind string

const (
	// KindNotConfigured means the provider has no credential. No request was sent.
	KindNotConfigured FailureKind = "not_configured"

	// KindTransport covers connection refused, timeouts, DNS failures and
	// errors while reading the response body.
	KindTransport FailureKind = "transport_error"

	// KindNonOKStatus means the backend answered with a status outside its
	// success range. StatusCode holds the code.
	KindNonOKStatus FailureKind = "non_ok_status"

	// KindEmptyResponse means the body decoded but carried no usable text.
	KindEmptyResponse FailureKind = "empty_response"

	// KindMalformedPayload means the body could not be decoded or carried
	// an in-body error despite a success status.
	KindMalformedPayload FailureKind = "malformed_payload"
)

// Failure describes an unsuccessful attempt. Detail is diagnostic text for
// logs; it is never shown to end users.
type Failure struct {
	Kind       FailureKind
	StatusCode int
	Detail     string
}

// Error implements the error interface so failures can be logged and wrapped.
func (f *Failure) Error() string {
	msg := string(f.Kind)
	if f.Kind == KindNonOKStatus {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, f.StatusCode)
	}
	if f.Detail != "" {
		msg += ": " + f.Detail
	}
	return msg
}

// Result is the outcome of one provider attempt. Exactly one of Text
// (success) or Failure is meaningful: a nil Failure means success.
type Result struct {
	Text    string
	Failure *Failure
}

// OK reports whether the attempt succeeded.
func (r Result) OK() bool {
	return r.Failure == nil
}

// Success returns a successful Result carrying text.
func Success(text string) Result {
	return Result{Text: text}
}

// NotConfigured returns a failure for a provider that lacks credentials.
func NotConfigured(detail string) Result {
	return Result{Failure: &Failure{Kind: KindNotConfigured, Detail: detail}}
}

// TransportError returns a failure for a network-level error.
func TransportError(err error) Result {
	return Result{Failure: &Failure{Kind: KindTransport, Detail: err.Error()}}
}

// NonOKStatus returns a failure for a rejected request. detail may hold a
// snippet of the response body.
func NonOKStatus(code int, detail string) Result {
	return Result{Failure: &Failure{Kind: KindNonOKStatus, StatusCode: code, Detail: detail}}
}

// EmptyResponse returns a failure for a success-shaped body without text.
func EmptyResponse(detail string) Result {
	return Result{Failure: &Failure{Kind: KindEmptyResponse, Detail: detail}}
}

// MalformedPayload returns a failure for an undecodable body or an in-body error.
func MalformedPayload(detail string) Result {
	return Result{Failure: &Failure{Kind: KindMalformedPayload, Detail: detail}}
}
